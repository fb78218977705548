package models

import (
	"time"

	"gorm.io/gorm"
)

// WithdrawRequest mirrors DepositRequest. The balance deduction happens at
// approval time, not submission, so a quoted balance never reflects requests
// in flight.
type WithdrawRequest struct {
	ID            uint           `gorm:"primaryKey" json:"id"`
	UserID        uint           `gorm:"not null;index" json:"user_id"`
	Phone         string         `gorm:"size:20;not null" json:"phone"`
	Amount        float64        `gorm:"type:decimal(15,4);not null" json:"amount"`
	AccountNumber string         `gorm:"size:32;not null" json:"account_number"`
	Method        string         `gorm:"size:20;not null" json:"method"`
	Status        string         `gorm:"size:12;not null;index" json:"status"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`

	User User `gorm:"foreignKey:UserID" json:"-"`
}

func (WithdrawRequest) TableName() string { return "withdraw_requests" }
