package repository

import (
	"quiz_api_backend/internal/model"

	"gorm.io/gorm"
)

type QuestionRepository struct {
	DB *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) *QuestionRepository {
	return &QuestionRepository{DB: db}
}

func (r *QuestionRepository) Create(question *model.Question) error {
	return r.DB.Create(question).Error
}

func (r *QuestionRepository) FindByID(id uint) (*model.Question, error) {
	var question model.Question
	err := r.DB.Preload("Options").First(&question, id).Error
	return &question, err
}

func (r *QuestionRepository) FindActive() ([]model.Question, error) {
	var questions []model.Question
	err := r.DB.Preload("Options").Where("is_active = ?", true).Order("created_at desc").Find(&questions).Error
	return questions, err
}

func (r *QuestionRepository) Update(question *model.Question) error {
	return r.DB.Save(question).Error
}

func (r *QuestionRepository) ToggleActive(id uint) (bool, error) {
	err := r.DB.Model(&model.Question{}).
		Where("id = ?", id).
		Update("is_active", gorm.Expr("NOT is_active")).Error
	if err != nil {
		return false, err
	}

	var question model.Question
	if err := r.DB.Select("is_active").First(&question, id).Error; err != nil {
		return false, err
	}
	return question.IsActive, nil
}

func (r *QuestionRepository) Delete(id uint) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("question_id = ?", id).Delete(&model.Option{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Question{}, id).Error
	})
}
