package repository

import (
	"errors"

	"investlion/internal/models"

	"gorm.io/gorm"
)

type ReferralRepository struct {
	db *gorm.DB
}

func NewReferralRepository(db *gorm.DB) *ReferralRepository {
	return &ReferralRepository{db: db}
}

// ResolveCode returns the user id owning an invite code, or 0 when the code
// is unknown. An unknown referred_by code is not an error; the purchase just
// pays no bonus.
func (r *ReferralRepository) ResolveCode(code string) (uint, error) {
	var ic models.InviteCode
	err := r.db.Where("code = ?", code).First(&ic).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return ic.UserID, nil
}

func (r *ReferralRepository) ListBonusesByInviter(inviterUID uint, limit, offset int) ([]models.ReferralBonus, error) {
	var list []models.ReferralBonus
	err := r.db.Where("inviter_uid = ?", inviterUID).
		Order("created_at DESC").
		Limit(limit).Offset(offset).
		Find(&list).Error
	return list, err
}
