package models

import "time"

type User struct {
	UserID       uint       `gorm:"primaryKey;column:user_id" json:"user_id"`
	Username     string     `gorm:"unique;not null" json:"username"`
	PasswordHash string     `gorm:"not null" json:"-"`
	Email        string     `gorm:"unique;not null" json:"email"`
	Role         string     `gorm:"type:varchar(16);default:'employee'" json:"role"`
	EmpID        *uint      `gorm:"column:emp_id" json:"emp_id"`
	LastLogin    *time.Time `json:"last_login"`
	CreatedAt    time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}
