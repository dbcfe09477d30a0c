package model

// QuizSubmission 一次已完成并计分的答题记录。
// (user_id, quiz_id) 上的唯一索引保证同一用户对同一测验至多提交一次，
// 并发的重复提交由数据库约束兜底。
// swagger:model QuizSubmission
type QuizSubmission struct {
	BaseModel
	UserID         uint         `gorm:"uniqueIndex:idx_user_quiz;not null" json:"userId"`
	User           *User        `gorm:"foreignKey:UserID" json:"user,omitempty"`
	QuizID         uint         `gorm:"uniqueIndex:idx_user_quiz;not null" json:"quizId"`
	Quiz           *Quiz        `gorm:"foreignKey:QuizID" json:"quiz,omitempty"`
	Score          int          `gorm:"default:0" json:"score"`
	TotalQuestions int          `gorm:"default:0" json:"totalQuestions"`
	Answers        []UserAnswer `gorm:"foreignKey:SubmissionID" json:"answers,omitempty"`
}

func (QuizSubmission) TableName() string {
	return "quiz_submissions"
}

// UserAnswer 提交内单道题的判分结果，每次提交每道题至多一条
// swagger:model UserAnswer
type UserAnswer struct {
	BaseModel
	SubmissionID   uint `gorm:"uniqueIndex:idx_submission_question;not null" json:"submissionId"`
	QuestionID     uint `gorm:"uniqueIndex:idx_submission_question;not null" json:"questionId"`
	SelectedOption int  `gorm:"not null" json:"selectedOption"`
	IsCorrect      bool `gorm:"default:false" json:"isCorrect"`
}

func (UserAnswer) TableName() string {
	return "user_answers"
}
