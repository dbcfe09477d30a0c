package service

import (
	"quiz_api_backend/internal/model"
	"quiz_api_backend/internal/repository"
)

type OptionService struct {
	Repo *repository.OptionRepository
}

func NewOptionService(repo *repository.OptionRepository) *OptionService {
	return &OptionService{Repo: repo}
}

func (s *OptionService) Create(option *model.Option) error {
	return s.Repo.Create(option)
}

func (s *OptionService) Get(id uint) (*model.Option, error) {
	return s.Repo.FindByID(id)
}

func (s *OptionService) List() ([]model.Option, error) {
	return s.Repo.FindAll()
}

func (s *OptionService) Update(option *model.Option) error {
	return s.Repo.Update(option)
}

func (s *OptionService) Delete(id uint) error {
	return s.Repo.Delete(id)
}
