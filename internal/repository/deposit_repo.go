package repository

import (
	"investlion/internal/domain"
	"investlion/internal/models"

	"gorm.io/gorm"
)

type DepositRepository struct {
	db *gorm.DB
}

func NewDepositRepository(db *gorm.DB) *DepositRepository {
	return &DepositRepository{db: db}
}

func (r *DepositRepository) Create(d *models.DepositRequest) error {
	return r.db.Create(d).Error
}

func (r *DepositRepository) GetByID(id uint) (*models.DepositRequest, error) {
	var d models.DepositRequest
	if err := r.db.First(&d, id).Error; err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *DepositRepository) ListByUser(userID uint) ([]models.DepositRequest, error) {
	var list []models.DepositRequest
	err := r.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&list).Error
	return list, err
}

func (r *DepositRepository) ListByStatus(status string, limit, offset int) ([]models.DepositRequest, error) {
	var list []models.DepositRequest
	q := r.db.Order("created_at DESC").Limit(limit).Offset(offset)
	if status != "" {
		q = q.Where("status = ?", status)
	}
	err := q.Find(&list).Error
	return list, err
}

// MarkRejected flips a pending request to rejected; nothing else changes.
// Terminal states are absorbing, so a non-pending request is left alone.
func (r *DepositRepository) MarkRejected(id uint) (bool, error) {
	res := r.db.Model(&models.DepositRequest{}).
		Where("id = ? AND status = ?", id, domain.RequestStatusPending).
		Update("status", domain.RequestStatusRejected)
	return res.RowsAffected > 0, res.Error
}

func (r *DepositRepository) CountByStatus(status string) (int64, error) {
	var n int64
	err := r.db.Model(&models.DepositRequest{}).Where("status = ?", status).Count(&n).Error
	return n, err
}

func (r *DepositRepository) SumApproved() (float64, error) {
	var sum float64
	err := r.db.Model(&models.DepositRequest{}).
		Where("status = ?", domain.RequestStatusApproved).
		Select("COALESCE(SUM(amount), 0)").Scan(&sum).Error
	return sum, err
}
