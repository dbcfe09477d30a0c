package service

import (
	"context"

	"quiz_api_backend/internal/model"
	"quiz_api_backend/internal/repository"
)

type CategoryService struct {
	Repo    *repository.CategoryRepository
	QuizSvc *QuizService
}

func NewCategoryService(repo *repository.CategoryRepository, quizSvc *QuizService) *CategoryService {
	return &CategoryService{Repo: repo, QuizSvc: quizSvc}
}

func (s *CategoryService) Create(category *model.Category) error {
	return s.Repo.Create(category)
}

func (s *CategoryService) Get(id uint) (*model.Category, error) {
	return s.Repo.FindByID(id)
}

func (s *CategoryService) List() ([]model.Category, error) {
	return s.Repo.FindAll()
}

func (s *CategoryService) Update(category *model.Category) error {
	return s.Repo.Update(category)
}

// Delete 删除分类会级联删除其下测验，因此同时失效活动测验缓存
func (s *CategoryService) Delete(ctx context.Context, id uint) error {
	if err := s.Repo.Delete(id); err != nil {
		return err
	}
	s.QuizSvc.InvalidateActiveCache(ctx)
	return nil
}
