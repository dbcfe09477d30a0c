package model

type UserRole string

const (
	Admin      UserRole = "admin"
	NormalUser UserRole = "user"
)

// swagger:model User
type User struct {
	BaseModel
	Username string   `gorm:"size:100;unique;not null" json:"username"`
	Email    string   `gorm:"size:100" json:"email"`
	Password string   `gorm:"size:100;not null" json:"-"`
	Role     UserRole `gorm:"type:enum('admin','user');default:'user'" json:"role"`
}

func (User) TableName() string {
	return "users"
}

// IsAdmin 管理员判定是对角色值的纯谓词，不依赖任何全局状态
func (u *User) IsAdmin() bool {
	return u.Role == Admin
}
