package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"agapept/internal/domain"
	"agapept/internal/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type submissionFixture struct {
	repo     *MockSubmissionRepository
	audit    *MockAuditLog
	notifier *MockNotifier
	results  *MockSubmissionResultCache
	svc      SubmissionService
}

func newSubmissionFixture() *submissionFixture {
	f := &submissionFixture{
		repo:     new(MockSubmissionRepository),
		audit:    new(MockAuditLog),
		notifier: new(MockNotifier),
		results:  new(MockSubmissionResultCache),
	}
	f.svc = NewSubmissionService(f.repo, f.audit, f.notifier, f.results, time.Second)
	return f
}

func (f *submissionFixture) assertExpectations(t *testing.T) {
	f.svc.Wait()
	f.repo.AssertExpectations(t)
	f.audit.AssertExpectations(t)
	f.notifier.AssertExpectations(t)
	f.results.AssertExpectations(t)
}

func validRequest() *dto.SubmitRequest {
	answers := []domain.Answer{
		{QuestionID: 1, Value: "Very familiar"},
		{QuestionID: 4, Value: "Agree"},
	}
	return &dto.SubmitRequest{Name: "Ana", Age: 9, Answers: &answers}
}

func assignID(id int64) func(mock.Arguments) {
	return func(args mock.Arguments) {
		args.Get(1).(*domain.Submission).ID = id
	}
}

func TestSubmissionService_Submit(t *testing.T) {
	f := newSubmissionFixture()
	req := validRequest()
	expected := domain.ComputeResult(*req.Answers)

	f.repo.On("Create", mock.Anything, mock.MatchedBy(func(s *domain.Submission) bool {
		return s.Name == "Ana" && s.Age == 9 && len(s.Answers) == 2 && s.Result.DominantType == expected.DominantType
	})).Run(assignID(11)).Return(nil).Once()
	f.audit.On("Append", mock.Anything, mock.AnythingOfType("*domain.Submission")).Return(nil).Once()
	f.results.On("Put", mock.Anything, mock.MatchedBy(func(r *dto.SubmissionResponse) bool {
		return r.ID == 11 && r.Name == "Ana"
	})).Return(nil).Once()
	f.notifier.On("Notify", mock.Anything, mock.MatchedBy(func(s *domain.Submission) bool {
		return s.ID == 11
	})).Return(nil).Once()

	resp, err := f.svc.Submit(context.Background(), req)
	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.Equal(t, int64(11), resp.ID)
	assert.Equal(t, *expected, resp.Result)
	_, parseErr := time.Parse(domain.TimestampLayout, resp.Timestamp)
	assert.NoError(t, parseErr)

	f.assertExpectations(t)
}

func TestSubmissionService_Submit_EmptyAnswers(t *testing.T) {
	f := newSubmissionFixture()
	empty := []domain.Answer{}
	req := &dto.SubmitRequest{Name: "Ben", Age: 7, Answers: &empty}

	f.repo.On("Create", mock.Anything, mock.Anything).Run(assignID(1)).Return(nil).Once()
	f.audit.On("Append", mock.Anything, mock.Anything).Return(nil).Once()
	f.results.On("Put", mock.Anything, mock.Anything).Return(nil).Once()
	f.notifier.On("Notify", mock.Anything, mock.Anything).Return(nil).Once()

	resp, err := f.svc.Submit(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "Extraversion", resp.DominantType)
	assert.Equal(t, 0.0, resp.OverallScore)
	assert.Equal(t, []domain.LearningStyle{domain.LearningStyleMultimodal}, resp.RecommendedLearningStyles)
	assert.Empty(t, resp.CalculationSteps)

	f.assertExpectations(t)
}

func TestSubmissionService_Submit_ValidationFailsBeforeScoring(t *testing.T) {
	f := newSubmissionFixture()

	resp, err := f.svc.Submit(context.Background(), &dto.SubmitRequest{Name: " ", Age: 9})
	assert.Nil(t, resp)

	var verrs domain.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Len(t, verrs, 2)

	f.repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	f.assertExpectations(t)
}

func TestSubmissionService_Submit_StoreFailure(t *testing.T) {
	f := newSubmissionFixture()
	dbErr := errors.New("database is locked")
	f.repo.On("Create", mock.Anything, mock.Anything).Return(dbErr).Once()

	resp, err := f.svc.Submit(context.Background(), validRequest())
	assert.Nil(t, resp)

	var domainErr *domain.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, domain.CodeInternal, domainErr.Code)
	assert.ErrorIs(t, err, dbErr)

	f.audit.AssertNotCalled(t, "Append", mock.Anything, mock.Anything)
	f.notifier.AssertNotCalled(t, "Notify", mock.Anything, mock.Anything)
	f.assertExpectations(t)
}

func TestSubmissionService_Submit_SideEffectFailuresAreLogged(t *testing.T) {
	f := newSubmissionFixture()

	f.repo.On("Create", mock.Anything, mock.Anything).Run(assignID(3)).Return(nil).Once()
	f.audit.On("Append", mock.Anything, mock.Anything).Return(errors.New("disk full")).Once()
	f.results.On("Put", mock.Anything, mock.Anything).Return(errors.New("redis down")).Once()
	f.notifier.On("Notify", mock.Anything, mock.Anything).Return(errors.New("535 auth failed")).Once()

	resp, err := f.svc.Submit(context.Background(), validRequest())
	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.Equal(t, int64(3), resp.ID)

	f.assertExpectations(t)
}

func TestSubmissionService_Submit_NotifyHasDeadline(t *testing.T) {
	f := newSubmissionFixture()

	f.repo.On("Create", mock.Anything, mock.Anything).Run(assignID(4)).Return(nil).Once()
	f.audit.On("Append", mock.Anything, mock.Anything).Return(nil).Once()
	f.results.On("Put", mock.Anything, mock.Anything).Return(nil).Once()
	f.notifier.On("Notify", mock.MatchedBy(func(ctx context.Context) bool {
		_, ok := ctx.Deadline()
		return ok
	}), mock.Anything).Return(nil).Once()

	_, err := f.svc.Submit(context.Background(), validRequest())
	require.NoError(t, err)
	f.assertExpectations(t)
}

func TestSubmissionService_Submit_OptionalCollaborators(t *testing.T) {
	repo := new(MockSubmissionRepository)
	repo.On("Create", mock.Anything, mock.Anything).Run(assignID(9)).Return(nil).Once()
	svc := NewSubmissionService(repo, nil, nil, nil, 0)

	resp, err := svc.Submit(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Equal(t, int64(9), resp.ID)
	svc.Wait()
	repo.AssertExpectations(t)
}

func storedSubmission(id int64) *domain.Submission {
	answers := []domain.Answer{{QuestionID: 2, Value: "Frequently"}}
	s := domain.NewSubmission("Ana", 9, answers, domain.ComputeResult(answers))
	s.ID = id
	return s
}

func TestSubmissionService_Get_CacheHit(t *testing.T) {
	f := newSubmissionFixture()
	cached := dto.NewSubmissionResponse(storedSubmission(5))
	f.results.On("Get", mock.Anything, int64(5)).Return(&cached, nil).Once()

	resp, err := f.svc.Get(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, &cached, resp)

	f.repo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
	f.assertExpectations(t)
}

func TestSubmissionService_Get_CacheMissReadsStore(t *testing.T) {
	f := newSubmissionFixture()
	stored := storedSubmission(6)

	f.results.On("Get", mock.Anything, int64(6)).Return(nil, ErrResultNotCached).Once()
	f.repo.On("GetByID", mock.Anything, int64(6)).Return(stored, nil).Once()
	f.results.On("Put", mock.Anything, mock.MatchedBy(func(r *dto.SubmissionResponse) bool { return r.ID == 6 })).Return(nil).Once()

	resp, err := f.svc.Get(context.Background(), 6)
	require.NoError(t, err)
	assert.Equal(t, int64(6), resp.ID)
	assert.Equal(t, "Conscientiousness", resp.DominantType)
	assert.Equal(t, stored.Answers, resp.Answers)

	f.assertExpectations(t)
}

func TestSubmissionService_Get_CacheErrorFallsBack(t *testing.T) {
	f := newSubmissionFixture()

	f.results.On("Get", mock.Anything, int64(7)).Return(nil, errors.New("redis timeout")).Once()
	f.repo.On("GetByID", mock.Anything, int64(7)).Return(storedSubmission(7), nil).Once()
	f.results.On("Put", mock.Anything, mock.Anything).Return(errors.New("redis timeout")).Once()

	resp, err := f.svc.Get(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, int64(7), resp.ID)
	f.assertExpectations(t)
}

func TestSubmissionService_Get_NotFound(t *testing.T) {
	f := newSubmissionFixture()
	f.results.On("Get", mock.Anything, int64(404)).Return(nil, ErrResultNotCached).Once()
	f.repo.On("GetByID", mock.Anything, int64(404)).Return(nil, nil).Once()

	resp, err := f.svc.Get(context.Background(), 404)
	assert.Nil(t, resp)

	var domainErr *domain.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, domain.CodeSubmissionNotFound, domainErr.Code)
	assert.Equal(t, int64(404), domainErr.Context["id"])
	f.assertExpectations(t)
}

func TestSubmissionService_Get_StoreError(t *testing.T) {
	f := newSubmissionFixture()
	f.results.On("Get", mock.Anything, int64(8)).Return(nil, ErrResultNotCached).Once()
	f.repo.On("GetByID", mock.Anything, int64(8)).Return(nil, errors.New("no such table")).Once()

	_, err := f.svc.Get(context.Background(), 8)
	var domainErr *domain.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, domain.CodeInternal, domainErr.Code)
	f.assertExpectations(t)
}

func TestSubmissionService_ListRecent(t *testing.T) {
	f := newSubmissionFixture()
	f.repo.On("ListRecent", mock.Anything, 2).Return([]*domain.Submission{storedSubmission(2), storedSubmission(1)}, nil).Once()

	resp, err := f.svc.ListRecent(context.Background(), 2)
	require.NoError(t, err)
	require.Len(t, resp.Submissions, 2)
	assert.Equal(t, int64(2), resp.Submissions[0].ID)
	assert.Equal(t, int64(1), resp.Submissions[1].ID)
	f.assertExpectations(t)
}

func TestSubmissionService_ListRecent_Empty(t *testing.T) {
	f := newSubmissionFixture()
	f.repo.On("ListRecent", mock.Anything, 20).Return([]*domain.Submission{}, nil).Once()

	resp, err := f.svc.ListRecent(context.Background(), 20)
	require.NoError(t, err)
	assert.NotNil(t, resp.Submissions)
	assert.Empty(t, resp.Submissions)
	f.assertExpectations(t)
}

func TestSubmissionService_ListRecent_Errors(t *testing.T) {
	f := newSubmissionFixture()

	for _, limit := range []int{0, -1, 101} {
		_, err := f.svc.ListRecent(context.Background(), limit)
		var verrs domain.ValidationErrors
		assert.ErrorAs(t, err, &verrs, "limit %d", limit)
	}

	f.repo.On("ListRecent", mock.Anything, 10).Return(nil, errors.New("boom")).Once()
	_, err := f.svc.ListRecent(context.Background(), 10)
	var domainErr *domain.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, domain.CodeInternal, domainErr.Code)
	f.assertExpectations(t)
}
