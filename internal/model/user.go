package model

import (
	"time"
)

// User 用户信息
type User struct {
	ID           uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	Username     string    `json:"username" gorm:"not null;size:50;uniqueIndex"`
	Email        string    `json:"email" gorm:"not null;size:255;uniqueIndex"`
	PasswordHash string    `json:"-" gorm:"not null;size:255"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}
