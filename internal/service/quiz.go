package service

import (
	"context"

	"agapept/internal/domain"
	"agapept/internal/dto"
)

// QuestionSource is the read-only question set.
type QuestionSource interface {
	Shuffled() []domain.Question
}

// QuizService serves the questionnaire.
type QuizService interface {
	ListQuestions(ctx context.Context) *dto.QuestionsResponse
}

type quizService struct {
	questions QuestionSource
}

// NewQuizService creates a new instance of quizService
func NewQuizService(questions QuestionSource) QuizService {
	return &quizService{questions: questions}
}

// ListQuestions returns a newly shuffled copy on every call.
func (s *quizService) ListQuestions(ctx context.Context) *dto.QuestionsResponse {
	return &dto.QuestionsResponse{Questions: s.questions.Shuffled()}
}
