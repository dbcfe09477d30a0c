package model

// swagger:model Question
type Question struct {
	BaseModel
	QuizID   uint     `gorm:"index;not null" json:"quizId"`
	Text     string   `gorm:"type:text;not null" json:"text"`
	IsActive bool     `gorm:"default:true" json:"isActive"`
	Options  []Option `gorm:"foreignKey:QuestionID" json:"options,omitempty"`
}

func (Question) TableName() string {
	return "questions"
}
