package models

import "gorm.io/gorm"

type Role string

const (
	RoleOperator Role = "operator"
	RoleAdmin    Role = "admin"
)

type User struct {
	gorm.Model
	Username     string `gorm:"type:varchar(100);uniqueIndex;not null"`
	FullName     string `gorm:"type:varchar(200)"`
	Email        string `gorm:"type:varchar(191);uniqueIndex;not null"`
	PasswordHash string `gorm:"type:varchar(255);not null"`
	Role         Role   `gorm:"type:varchar(20);not null;index"`
	Verified     bool   `gorm:"not null;default:false"`
}

func (User) TableName() string {
	return "users"
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
