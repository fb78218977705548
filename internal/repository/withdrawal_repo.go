package repository

import (
	"investlion/internal/domain"
	"investlion/internal/models"

	"gorm.io/gorm"
)

type WithdrawalRepository struct {
	db *gorm.DB
}

func NewWithdrawalRepository(db *gorm.DB) *WithdrawalRepository {
	return &WithdrawalRepository{db: db}
}

func (r *WithdrawalRepository) Create(w *models.WithdrawRequest) error {
	return r.db.Create(w).Error
}

func (r *WithdrawalRepository) GetByID(id uint) (*models.WithdrawRequest, error) {
	var w models.WithdrawRequest
	if err := r.db.First(&w, id).Error; err != nil {
		return nil, err
	}
	return &w, nil
}

func (r *WithdrawalRepository) ListByUser(userID uint) ([]models.WithdrawRequest, error) {
	var list []models.WithdrawRequest
	err := r.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&list).Error
	return list, err
}

func (r *WithdrawalRepository) ListByStatus(status string, limit, offset int) ([]models.WithdrawRequest, error) {
	var list []models.WithdrawRequest
	q := r.db.Order("created_at DESC").Limit(limit).Offset(offset)
	if status != "" {
		q = q.Where("status = ?", status)
	}
	err := q.Find(&list).Error
	return list, err
}

func (r *WithdrawalRepository) MarkRejected(id uint) (bool, error) {
	res := r.db.Model(&models.WithdrawRequest{}).
		Where("id = ? AND status = ?", id, domain.RequestStatusPending).
		Update("status", domain.RequestStatusRejected)
	return res.RowsAffected > 0, res.Error
}

func (r *WithdrawalRepository) CountByStatus(status string) (int64, error) {
	var n int64
	err := r.db.Model(&models.WithdrawRequest{}).Where("status = ?", status).Count(&n).Error
	return n, err
}

func (r *WithdrawalRepository) SumApproved() (float64, error) {
	var sum float64
	err := r.db.Model(&models.WithdrawRequest{}).
		Where("status = ?", domain.RequestStatusApproved).
		Select("COALESCE(SUM(amount), 0)").Scan(&sum).Error
	return sum, err
}
