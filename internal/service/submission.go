package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"agapept/internal/domain"
	"agapept/internal/dto"
	"agapept/internal/logger"
	"agapept/internal/validation"

	"go.uber.org/zap"
)

const defaultNotifyTimeout = 30 * time.Second

// SubmissionService scores, stores and looks up questionnaire submissions.
type SubmissionService interface {
	Submit(ctx context.Context, req *dto.SubmitRequest) (*dto.SubmitResponse, error)
	Get(ctx context.Context, id int64) (*dto.SubmissionResponse, error)
	ListRecent(ctx context.Context, limit int) (*dto.SubmissionListResponse, error)
	// Wait blocks until background notifications have finished.
	Wait()
}

type submissionService struct {
	repo          domain.SubmissionRepository
	audit         domain.AuditLog
	notifier      domain.Notifier
	results       SubmissionResultCache
	engine        *domain.ScoreEngine
	validator     *validation.Validator
	notifyTimeout time.Duration

	inflight sync.WaitGroup
}

// NewSubmissionService wires the submission pipeline. audit and notifier may
// be nil; results falls back to a no-op cache.
func NewSubmissionService(
	repo domain.SubmissionRepository,
	audit domain.AuditLog,
	notifier domain.Notifier,
	results SubmissionResultCache,
	notifyTimeout time.Duration,
) SubmissionService {
	if results == nil {
		results = noopSubmissionResultCache{}
	}
	if notifyTimeout <= 0 {
		notifyTimeout = defaultNotifyTimeout
	}
	return &submissionService{
		repo:          repo,
		audit:         audit,
		notifier:      notifier,
		results:       results,
		engine:        domain.NewScoreEngine(domain.DefaultRubric()),
		validator:     validation.NewValidator(),
		notifyTimeout: notifyTimeout,
	}
}

// Submit validates before scoring. Only a failed insert fails the request;
// audit, cache and notification problems are logged.
func (s *submissionService) Submit(ctx context.Context, req *dto.SubmitRequest) (*dto.SubmitResponse, error) {
	if errs := s.validator.ValidateSubmitRequest(req); len(errs) > 0 {
		return nil, errs
	}

	answers := *req.Answers
	result := s.engine.ComputeResult(answers)
	submission := domain.NewSubmission(req.Name, req.Age, answers, result)

	if err := s.repo.Create(ctx, submission); err != nil {
		return nil, domain.NewInternalError("failed to store submission", err)
	}

	log := logger.Get().With(zap.Int64("submission_id", submission.ID))
	log.Info("Submission stored",
		zap.String("dominant_type", result.DominantType),
		zap.Float64("overall_score", result.OverallScore),
		zap.Int("answers", len(answers)),
	)

	if s.audit != nil {
		if err := s.audit.Append(ctx, submission); err != nil {
			log.Error("Failed to append audit record", zap.Error(err))
		}
	}

	stored := dto.NewSubmissionResponse(submission)
	if err := s.results.Put(ctx, &stored); err != nil {
		log.Warn("Failed to cache submission result", zap.Error(err))
	}

	s.notify(submission)

	return &dto.SubmitResponse{
		Success:   true,
		ID:        submission.ID,
		Timestamp: submission.FormattedTimestamp(),
		Result:    *result,
	}, nil
}

// notify runs detached from the request so a slow mail server never delays
// the response.
func (s *submissionService) notify(submission *domain.Submission) {
	if s.notifier == nil {
		return
	}
	s.inflight.Add(1)
	go func() {
		defer s.inflight.Done()
		ctx, cancel := context.WithTimeout(context.Background(), s.notifyTimeout)
		defer cancel()
		if err := s.notifier.Notify(ctx, submission); err != nil {
			logger.Get().Warn("Email send error",
				zap.Int64("submission_id", submission.ID),
				zap.Error(err),
			)
		}
	}()
}

func (s *submissionService) Wait() {
	s.inflight.Wait()
}

// Get reads through the result cache.
func (s *submissionService) Get(ctx context.Context, id int64) (*dto.SubmissionResponse, error) {
	cached, err := s.results.Get(ctx, id)
	switch {
	case err == nil:
		return cached, nil
	case !errors.Is(err, ErrResultNotCached):
		logger.Get().Warn("Result cache read failed, falling back to store",
			zap.Int64("submission_id", id), zap.Error(err))
	}

	submission, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, domain.NewInternalError("failed to load submission", err)
	}
	if submission == nil {
		return nil, domain.NewSubmissionNotFoundError(id)
	}

	resp := dto.NewSubmissionResponse(submission)
	if err := s.results.Put(ctx, &resp); err != nil {
		logger.Get().Warn("Failed to cache submission result",
			zap.Int64("submission_id", id), zap.Error(err))
	}
	return &resp, nil
}

func (s *submissionService) ListRecent(ctx context.Context, limit int) (*dto.SubmissionListResponse, error) {
	if limit < 1 || limit > validation.MaxListLimit {
		return nil, domain.ValidationErrors{
			domain.NewOutOfRangeError("limit", limit, 1, validation.MaxListLimit),
		}
	}

	submissions, err := s.repo.ListRecent(ctx, limit)
	if err != nil {
		return nil, domain.NewInternalError("failed to list submissions", err)
	}

	out := make([]dto.SubmissionResponse, 0, len(submissions))
	for _, sub := range submissions {
		out = append(out, dto.NewSubmissionResponse(sub))
	}
	return &dto.SubmissionListResponse{Submissions: out}, nil
}
