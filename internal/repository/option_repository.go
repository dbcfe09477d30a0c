package repository

import (
	"quiz_api_backend/internal/model"

	"gorm.io/gorm"
)

type OptionRepository struct {
	DB *gorm.DB
}

func NewOptionRepository(db *gorm.DB) *OptionRepository {
	return &OptionRepository{DB: db}
}

func (r *OptionRepository) Create(option *model.Option) error {
	return r.DB.Create(option).Error
}

func (r *OptionRepository) FindByID(id uint) (*model.Option, error) {
	var option model.Option
	err := r.DB.First(&option, id).Error
	return &option, err
}

// FindByIDAndQuestion 评分用：选项必须属于给定题目，否则返回 gorm.ErrRecordNotFound
func (r *OptionRepository) FindByIDAndQuestion(id, questionID uint) (*model.Option, error) {
	var option model.Option
	err := r.DB.Where("id = ? AND question_id = ?", id, questionID).First(&option).Error
	return &option, err
}

func (r *OptionRepository) FindAll() ([]model.Option, error) {
	var options []model.Option
	err := r.DB.Order("question_id asc, id asc").Find(&options).Error
	return options, err
}

func (r *OptionRepository) Update(option *model.Option) error {
	return r.DB.Save(option).Error
}

func (r *OptionRepository) Delete(id uint) error {
	return r.DB.Delete(&model.Option{}, id).Error
}
