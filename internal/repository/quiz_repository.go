package repository

import (
	"quiz_api_backend/internal/model"

	"gorm.io/gorm"
)

type QuizRepository struct {
	DB *gorm.DB
}

func NewQuizRepository(db *gorm.DB) *QuizRepository {
	return &QuizRepository{DB: db}
}

func (r *QuizRepository) Create(quiz *model.Quiz) error {
	return r.DB.Create(quiz).Error
}

func (r *QuizRepository) FindByID(id uint) (*model.Quiz, error) {
	var quiz model.Quiz
	err := r.DB.Preload("Questions.Options").Preload("Category").Preload("CreatedBy").First(&quiz, id).Error
	return &quiz, err
}

func (r *QuizRepository) FindActive() ([]model.Quiz, error) {
	var quizzes []model.Quiz
	err := r.DB.Preload("Questions", "is_active = ?", true).Preload("Questions.Options").
		Preload("CreatedBy").
		Where("is_active = ?", true).
		Order("created_at desc").
		Find(&quizzes).Error
	return quizzes, err
}

func (r *QuizRepository) Update(quiz *model.Quiz) error {
	return r.DB.Save(quiz).Error
}

// ToggleActive 单条 UPDATE 原子翻转，返回新值
func (r *QuizRepository) ToggleActive(id uint) (bool, error) {
	err := r.DB.Model(&model.Quiz{}).
		Where("id = ?", id).
		Update("is_active", gorm.Expr("NOT is_active")).Error
	if err != nil {
		return false, err
	}

	var quiz model.Quiz
	if err := r.DB.Select("is_active").First(&quiz, id).Error; err != nil {
		return false, err
	}
	return quiz.IsActive, nil
}

func (r *QuizRepository) Delete(id uint) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		return deleteQuizCascade(tx, id)
	})
}

// deleteQuizCascade 删除一个测验及其题目、选项、提交和作答记录，需在事务内调用
func deleteQuizCascade(tx *gorm.DB, quizID uint) error {
	var questionIDs []uint
	if err := tx.Model(&model.Question{}).Where("quiz_id = ?", quizID).Pluck("id", &questionIDs).Error; err != nil {
		return err
	}
	if len(questionIDs) > 0 {
		if err := tx.Where("question_id IN ?", questionIDs).Delete(&model.Option{}).Error; err != nil {
			return err
		}
	}
	if err := tx.Where("quiz_id = ?", quizID).Delete(&model.Question{}).Error; err != nil {
		return err
	}

	var submissionIDs []uint
	if err := tx.Model(&model.QuizSubmission{}).Where("quiz_id = ?", quizID).Pluck("id", &submissionIDs).Error; err != nil {
		return err
	}
	if len(submissionIDs) > 0 {
		if err := tx.Where("submission_id IN ?", submissionIDs).Delete(&model.UserAnswer{}).Error; err != nil {
			return err
		}
		if err := tx.Where("quiz_id = ?", quizID).Delete(&model.QuizSubmission{}).Error; err != nil {
			return err
		}
	}

	return tx.Delete(&model.Quiz{}, quizID).Error
}
