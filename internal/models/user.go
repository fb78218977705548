package models

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	ID            uint           `gorm:"primaryKey" json:"id"`
	Phone         string         `gorm:"uniqueIndex;size:20;not null" json:"phone"`
	Email         string         `gorm:"uniqueIndex;size:255;not null" json:"email"`
	PasswordHash  string         `gorm:"size:255" json:"-"`
	Balance       float64        `gorm:"type:decimal(15,4);not null;default:0" json:"balance"`
	TotalDeposit  float64        `gorm:"type:decimal(15,4);not null;default:0" json:"total_deposit"`
	TotalWithdraw float64        `gorm:"type:decimal(15,4);not null;default:0" json:"total_withdraw"`
	InviteCode    string         `gorm:"uniqueIndex;size:10;not null" json:"invite_code"`
	ReferredBy    string         `gorm:"size:10" json:"referred_by"` // inviter's code, empty if none
	Status        string         `gorm:"size:10;not null;default:'active';index" json:"status"`
	IsAdmin       bool           `gorm:"default:false" json:"is_admin"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
}

func (User) TableName() string { return "users" }

func (u *User) IsActive() bool { return u.Status == "active" }
