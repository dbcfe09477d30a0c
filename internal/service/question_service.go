package service

import (
	"context"

	"quiz_api_backend/internal/model"
	"quiz_api_backend/internal/repository"
)

type QuestionService struct {
	Repo    *repository.QuestionRepository
	QuizSvc *QuizService
}

func NewQuestionService(repo *repository.QuestionRepository, quizSvc *QuizService) *QuestionService {
	return &QuestionService{Repo: repo, QuizSvc: quizSvc}
}

func (s *QuestionService) Create(ctx context.Context, question *model.Question) error {
	if err := s.Repo.Create(question); err != nil {
		return err
	}
	s.QuizSvc.InvalidateActiveCache(ctx)
	return nil
}

func (s *QuestionService) Get(id uint) (*model.Question, error) {
	return s.Repo.FindByID(id)
}

func (s *QuestionService) ListActive() ([]model.Question, error) {
	return s.Repo.FindActive()
}

func (s *QuestionService) Update(ctx context.Context, question *model.Question) error {
	if err := s.Repo.Update(question); err != nil {
		return err
	}
	s.QuizSvc.InvalidateActiveCache(ctx)
	return nil
}

// ToggleActive 题目 active 标志影响测验展示与计分，翻转后失效缓存
func (s *QuestionService) ToggleActive(ctx context.Context, id uint) (bool, error) {
	active, err := s.Repo.ToggleActive(id)
	if err != nil {
		return false, err
	}
	s.QuizSvc.InvalidateActiveCache(ctx)
	return active, nil
}

func (s *QuestionService) Delete(ctx context.Context, id uint) error {
	if err := s.Repo.Delete(id); err != nil {
		return err
	}
	s.QuizSvc.InvalidateActiveCache(ctx)
	return nil
}
