package model

// Option 一道题允许 0/1/多个正确选项，数据库层面不做唯一正确性约束。
// IsCorrect 不参与默认 JSON 序列化：测验和提交的响应会嵌套选项，
// 答案只能通过管理端选项接口（optionResponse）下发。
// swagger:model Option
type Option struct {
	BaseModel
	QuestionID uint   `gorm:"index;not null" json:"questionId"`
	Text       string `gorm:"size:255;not null" json:"text"`
	IsCorrect  bool   `gorm:"default:false" json:"-"`
}

func (Option) TableName() string {
	return "options"
}
