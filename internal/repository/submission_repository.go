package repository

import (
	"strings"

	"quiz_api_backend/internal/model"
	"quiz_api_backend/internal/util"

	"gorm.io/gorm"
)

type SubmissionRepository struct {
	DB *gorm.DB
}

func NewSubmissionRepository(db *gorm.DB) *SubmissionRepository {
	return &SubmissionRepository{DB: db}
}

func (r *SubmissionRepository) HasSubmitted(userID, quizID uint) (bool, error) {
	var count int64
	err := r.DB.Model(&model.QuizSubmission{}).
		Where("user_id = ? AND quiz_id = ?", userID, quizID).
		Count(&count).Error
	return count > 0, err
}

// CreateWithAnswers 在单个事务内做重复检查并写入提交与作答记录。
// (user_id, quiz_id) 唯一索引兜底并发下同时通过检查的两次提交。
func (r *SubmissionRepository) CreateWithAnswers(submission *model.QuizSubmission, answers []model.UserAnswer) error {
	err := r.DB.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&model.QuizSubmission{}).
			Where("user_id = ? AND quiz_id = ?", submission.UserID, submission.QuizID).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return util.ErrAlreadySubmitted
		}

		if err := tx.Create(submission).Error; err != nil {
			return err
		}
		for i := range answers {
			answers[i].SubmissionID = submission.ID
		}
		if len(answers) > 0 {
			if err := tx.Create(&answers).Error; err != nil {
				return err
			}
		}
		return nil
	})

	// user_answers 上还有 idx_submission_question 唯一索引，
	// 只把命中 idx_user_quiz 的冲突当作重复提交
	if err != nil && strings.Contains(err.Error(), "Duplicate entry") &&
		strings.Contains(err.Error(), "idx_user_quiz") {
		return util.ErrAlreadySubmitted
	}
	return err
}

func (r *SubmissionRepository) FindByID(id uint) (*model.QuizSubmission, error) {
	var submission model.QuizSubmission
	err := r.DB.Preload("User").Preload("Quiz.Questions.Options").Preload("Answers").
		First(&submission, id).Error
	return &submission, err
}

func (r *SubmissionRepository) FindByUser(userID uint) ([]model.QuizSubmission, error) {
	var submissions []model.QuizSubmission
	err := r.DB.Preload("Quiz.Questions.Options").Preload("Answers").
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&submissions).Error
	return submissions, err
}

func (r *SubmissionRepository) FindAll(page, limit int) ([]model.QuizSubmission, int64, error) {
	var total int64
	if err := r.DB.Model(&model.QuizSubmission{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var submissions []model.QuizSubmission
	offset := (page - 1) * limit
	err := r.DB.Preload("User").Preload("Quiz").
		Order("created_at desc").
		Offset(offset).Limit(limit).
		Find(&submissions).Error
	return submissions, total, err
}
