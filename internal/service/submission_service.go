package service

import (
	"errors"

	"quiz_api_backend/internal/model"
	"quiz_api_backend/internal/util"

	"gorm.io/gorm"
)

// QuestionReader 评分时按 ID 解析题目（含 active 标志）
type QuestionReader interface {
	FindByID(id uint) (*model.Question, error)
}

// OptionResolver 按 (选项ID, 题目ID) 解析选项，选项不属于该题目时返回 gorm.ErrRecordNotFound
type OptionResolver interface {
	FindByIDAndQuestion(id, questionID uint) (*model.Option, error)
}

// SubmissionStore 提交台账，由 repository.SubmissionRepository 实现
type SubmissionStore interface {
	HasSubmitted(userID, quizID uint) (bool, error)
	CreateWithAnswers(submission *model.QuizSubmission, answers []model.UserAnswer) error
	FindByID(id uint) (*model.QuizSubmission, error)
	FindByUser(userID uint) ([]model.QuizSubmission, error)
	FindAll(page, limit int) ([]model.QuizSubmission, int64, error)
}

// AnswerInput 一道题的作答：题目 ID 与所选选项 ID（边界层已限定 1..4）
type AnswerInput struct {
	QuestionID     uint
	SelectedOption int
}

type SubmissionService struct {
	Quizzes     QuizStore
	Questions   QuestionReader
	Options     OptionResolver
	Submissions SubmissionStore
}

func NewSubmissionService(quizzes QuizStore, questions QuestionReader, options OptionResolver, submissions SubmissionStore) *SubmissionService {
	return &SubmissionService{
		Quizzes:     quizzes,
		Questions:   questions,
		Options:     options,
		Submissions: submissions,
	}
}

// SubmitQuiz 对一次答题按提交顺序评分并落库。
//
// 规则：
//   - 测验不存在或未激活 → ErrQuizNotFound，不写任何数据；
//   - 已有该用户对该测验的提交 → ErrAlreadySubmitted，不写任何数据；
//   - 题目 ID 无法解析 → ErrInvalidQuestion；
//   - 同一题目重复作答只按首次出现计分，后续重复整条跳过；
//   - 未激活的题目整条跳过，不计入 total 也不产生作答记录；
//   - 选项解析失败（不存在或不属于该题目）按答错处理，而不是报错。
func (s *SubmissionService) SubmitQuiz(userID, quizID uint, inputs []AnswerInput) (*model.QuizSubmission, error) {
	quiz, err := s.Quizzes.FindByID(quizID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrQuizNotFound
		}
		return nil, err
	}
	if !quiz.IsActive {
		return nil, util.ErrQuizNotFound
	}

	submitted, err := s.Submissions.HasSubmitted(userID, quizID)
	if err != nil {
		return nil, err
	}
	if submitted {
		return nil, util.ErrAlreadySubmitted
	}

	score := 0
	total := 0
	answers := make([]model.UserAnswer, 0, len(inputs))
	seen := make(map[uint]bool, len(inputs))

	for _, in := range inputs {
		question, err := s.Questions.FindByID(in.QuestionID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, util.ErrInvalidQuestion
			}
			return nil, err
		}
		// 每次提交每道题至多一条作答，与 user_answers 的唯一索引一致
		if seen[question.ID] {
			continue
		}
		seen[question.ID] = true
		if !question.IsActive {
			continue
		}
		total++

		isCorrect := false
		option, err := s.Options.FindByIDAndQuestion(uint(in.SelectedOption), question.ID)
		if err == nil {
			isCorrect = option.IsCorrect
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}

		if isCorrect {
			score++
		}

		answers = append(answers, model.UserAnswer{
			QuestionID:     question.ID,
			SelectedOption: in.SelectedOption,
			IsCorrect:      isCorrect,
		})
	}

	submission := &model.QuizSubmission{
		UserID:         userID,
		QuizID:         quizID,
		Score:          score,
		TotalQuestions: total,
	}
	if err := s.Submissions.CreateWithAnswers(submission, answers); err != nil {
		return nil, err
	}

	return s.Submissions.FindByID(submission.ID)
}

func (s *SubmissionService) HasSubmitted(userID, quizID uint) (bool, error) {
	return s.Submissions.HasSubmitted(userID, quizID)
}

// History 当前用户的提交历史，按时间倒序
func (s *SubmissionService) History(userID uint) ([]model.QuizSubmission, error) {
	return s.Submissions.FindByUser(userID)
}

// ListAll 全部提交，管理端分页查询
func (s *SubmissionService) ListAll(page, limit int) ([]model.QuizSubmission, int64, error) {
	return s.Submissions.FindAll(page, limit)
}
