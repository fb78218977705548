package models

import (
	"time"

	"gorm.io/gorm"
)

// DepositRequest is a user-submitted claim of an external transfer. The balance
// is only credited when an admin approves; submission never mutates it.
type DepositRequest struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	UserID    uint           `gorm:"not null;index" json:"user_id"`
	Phone     string         `gorm:"size:20;not null" json:"phone"`
	Amount    float64        `gorm:"type:decimal(15,4);not null" json:"amount"`
	Method    string         `gorm:"size:20;not null" json:"method"` // EasyPaisa, JazzCash
	TxID      string         `gorm:"size:64;not null" json:"tx_id"`
	ProofURL  string         `gorm:"size:512" json:"proof_url"`
	Status    string         `gorm:"size:12;not null;index" json:"status"` // pending, approved, rejected
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	User User `gorm:"foreignKey:UserID" json:"-"`
}

func (DepositRequest) TableName() string { return "deposit_requests" }
