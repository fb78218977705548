package models

import (
	"time"

	"gorm.io/gorm"
)

// ActivePlan is a purchased, time-bounded instance of a catalog plan.
// DailyIncome is copied from the catalog at purchase time. LastClaimDate is
// the accrual cursor; it only ever advances, in whole-hour steps.
type ActivePlan struct {
	ID            uint           `gorm:"primaryKey" json:"id"`
	UserID        uint           `gorm:"not null;index" json:"user_id"`
	PlanID        string         `gorm:"size:20;not null" json:"plan_id"`
	PlanName      string         `gorm:"size:40;not null" json:"plan_name"`
	DailyIncome   float64        `gorm:"type:decimal(15,4);not null" json:"daily_income"`
	PurchaseDate  time.Time      `gorm:"not null" json:"purchase_date"`
	LastClaimDate time.Time      `gorm:"not null" json:"last_claim_date"`
	ExpiryDate    time.Time      `gorm:"not null" json:"expiry_date"`
	Status        string         `gorm:"size:12;not null;index" json:"status"` // running, completed
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`

	User User `gorm:"foreignKey:UserID" json:"-"`
}

func (ActivePlan) TableName() string { return "active_plans" }

// PlanAccrual is one plan's pending cursor/status change computed by the
// accrual processor, applied together with the balance credit in one
// transaction. PrevClaimDate is the cursor the computation was based on; the
// ledger only applies an update whose stored cursor still matches it, so two
// racing runs over the same snapshot credit the earnings once.
type PlanAccrual struct {
	PlanID        uint
	PrevClaimDate time.Time
	LastClaimDate time.Time
	Earnings      float64
	Completed     bool
}
