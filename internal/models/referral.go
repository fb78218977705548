package models

import (
	"time"

	"gorm.io/gorm"
)

// InviteCode maps a user's unique invite code to its owner, so a referred_by
// code on a purchasing user can be resolved to the inviter.
type InviteCode struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Code      string         `gorm:"uniqueIndex;size:10;not null" json:"code"`
	UserID    uint           `gorm:"uniqueIndex;not null" json:"user_id"`
	CreatedAt time.Time      `json:"created_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	User User `gorm:"foreignKey:UserID" json:"-"`
}

func (InviteCode) TableName() string { return "invite_codes" }

// ReferralBonus is an append-only audit record of a bonus paid to an inviter
// when their invitee purchases a plan.
type ReferralBonus struct {
	ID         uint           `gorm:"primaryKey" json:"id"`
	InviterUID uint           `gorm:"not null;index" json:"inviter_uid"`
	InviteeUID uint           `gorm:"not null;index" json:"invitee_uid"`
	Amount     float64        `gorm:"type:decimal(15,4);not null" json:"amount"`
	CreatedAt  time.Time      `json:"created_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`
}

func (ReferralBonus) TableName() string { return "referral_bonuses" }
