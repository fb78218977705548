package repository

import (
	"investlion/internal/domain"
	"investlion/internal/models"

	"gorm.io/gorm"
)

type ActivePlanRepository struct {
	db *gorm.DB
}

func NewActivePlanRepository(db *gorm.DB) *ActivePlanRepository {
	return &ActivePlanRepository{db: db}
}

func (r *ActivePlanRepository) ListByUser(userID uint) ([]models.ActivePlan, error) {
	var list []models.ActivePlan
	err := r.db.Where("user_id = ?", userID).Order("purchase_date DESC").Find(&list).Error
	return list, err
}

func (r *ActivePlanRepository) ListRunningByUser(userID uint) ([]models.ActivePlan, error) {
	var list []models.ActivePlan
	err := r.db.Where("user_id = ? AND status = ?", userID, domain.PlanStatusRunning).Find(&list).Error
	return list, err
}

func (r *ActivePlanRepository) Count() (int64, error) {
	var n int64
	err := r.db.Model(&models.ActivePlan{}).Count(&n).Error
	return n, err
}
