package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"agapept/internal/domain"
	"agapept/internal/repository/models"

	"github.com/jmoiron/sqlx"
)

const submissionColumns = `id, timestamp, name, age, scores_json, dominant_type, overall_score,
	description, learning_styles, raw_answers_json, calculation_steps`

// sqlxSubmissionRepository implements domain.SubmissionRepository using sqlx.
type sqlxSubmissionRepository struct {
	db *sqlx.DB
}

// NewSQLXSubmissionRepository creates a new instance of sqlxSubmissionRepository.
func NewSQLXSubmissionRepository(db *sqlx.DB) domain.SubmissionRepository {
	return &sqlxSubmissionRepository{db: db}
}

func fromDomainSubmission(s *domain.Submission) (*models.Submission, error) {
	if s == nil || s.Result == nil {
		return nil, errors.New("submission and its result are required")
	}
	scores, err := json.Marshal(s.Result.CategoryScores)
	if err != nil {
		return nil, fmt.Errorf("failed to encode category scores: %w", err)
	}
	answers := s.Answers
	if answers == nil {
		answers = []domain.Answer{}
	}
	rawAnswers, err := json.Marshal(answers)
	if err != nil {
		return nil, fmt.Errorf("failed to encode answers: %w", err)
	}

	styles := make(models.StringSlice, len(s.Result.RecommendedLearningStyles))
	for i, style := range s.Result.RecommendedLearningStyles {
		styles[i] = string(style)
	}

	return &models.Submission{
		ID:               s.ID,
		Timestamp:        s.FormattedTimestamp(),
		Name:             s.Name,
		Age:              s.Age,
		ScoresJSON:       string(scores),
		DominantType:     s.Result.DominantType,
		OverallScore:     s.Result.OverallScore,
		Description:      s.Result.PersonalizedDescription,
		LearningStyles:   styles,
		RawAnswersJSON:   string(rawAnswers),
		CalculationSteps: models.StringSlice(s.Result.CalculationSteps),
	}, nil
}

func toDomainSubmission(m *models.Submission) (*domain.Submission, error) {
	if m == nil {
		return nil, nil
	}
	ts, err := time.Parse(domain.TimestampLayout, m.Timestamp)
	if err != nil {
		return nil, fmt.Errorf("submission %d: invalid timestamp %q: %w", m.ID, m.Timestamp, err)
	}

	var scores domain.CategoryScores
	if err := json.Unmarshal([]byte(m.ScoresJSON), &scores); err != nil {
		return nil, fmt.Errorf("submission %d: invalid scores: %w", m.ID, err)
	}
	var answers []domain.Answer
	if err := json.Unmarshal([]byte(m.RawAnswersJSON), &answers); err != nil {
		return nil, fmt.Errorf("submission %d: invalid answers: %w", m.ID, err)
	}

	styles := make([]domain.LearningStyle, len(m.LearningStyles))
	for i, style := range m.LearningStyles {
		styles[i] = domain.LearningStyle(style)
	}
	steps := []string(m.CalculationSteps)
	if steps == nil {
		steps = []string{}
	}

	return &domain.Submission{
		ID:        m.ID,
		Timestamp: ts,
		Name:      m.Name,
		Age:       m.Age,
		Answers:   answers,
		Result: &domain.Result{
			CategoryScores:            scores,
			DominantType:              m.DominantType,
			OverallScore:              m.OverallScore,
			RecommendedLearningStyles: styles,
			PersonalizedDescription:   m.Description,
			CalculationSteps:          steps,
		},
	}, nil
}

// Create inserts a submission and sets its auto-incremented ID.
func (r *sqlxSubmissionRepository) Create(ctx context.Context, s *domain.Submission) error {
	model, err := fromDomainSubmission(s)
	if err != nil {
		return err
	}

	query := `INSERT INTO submissions (timestamp, name, age, scores_json, dominant_type, overall_score,
		description, learning_styles, raw_answers_json, calculation_steps)
		VALUES (:timestamp, :name, :age, :scores_json, :dominant_type, :overall_score,
		:description, :learning_styles, :raw_answers_json, :calculation_steps)`

	res, err := r.db.NamedExecContext(ctx, query, model)
	if err != nil {
		return fmt.Errorf("failed to create submission: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read submission id: %w", err)
	}
	s.ID = id
	return nil
}

// GetByID returns nil, nil when no row has the id.
func (r *sqlxSubmissionRepository) GetByID(ctx context.Context, id int64) (*domain.Submission, error) {
	var model models.Submission
	query := "SELECT " + submissionColumns + " FROM submissions WHERE id = ?"
	if err := r.db.GetContext(ctx, &model, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get submission %d: %w", id, err)
	}
	return toDomainSubmission(&model)
}

// ListRecent returns up to limit submissions, newest first.
func (r *sqlxSubmissionRepository) ListRecent(ctx context.Context, limit int) ([]*domain.Submission, error) {
	var rows []models.Submission
	query := "SELECT " + submissionColumns + " FROM submissions ORDER BY id DESC LIMIT ?"
	if err := r.db.SelectContext(ctx, &rows, query, limit); err != nil {
		return nil, fmt.Errorf("failed to list submissions: %w", err)
	}

	out := make([]*domain.Submission, 0, len(rows))
	for i := range rows {
		s, err := toDomainSubmission(&rows[i])
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}
