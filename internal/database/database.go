package database

import (
	"log"

	"investlion/config"
	"investlion/internal/domain"
	"investlion/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func NewDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	db, err := gorm.Open(mysql.Open(cfg.DSN), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Error),
		// duplicate-key violations surface as gorm.ErrDuplicatedKey,
		// which the invite-code retry loop relies on
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	return db, nil
}

// AutoMigrate runs Gorm auto-migration for all models.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.InviteCode{},
		&models.ActivePlan{},
		&models.DepositRequest{},
		&models.WithdrawRequest{},
		&models.ReferralBonus{},
	)
}

// SeedAdmin creates the admin account if no admin exists yet.
func SeedAdmin(db *gorm.DB, cfg *config.AdminConfig) {
	var count int64
	db.Model(&models.User{}).Where("is_admin = ?", true).Count(&count)
	if count > 0 {
		return
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("[seed] admin password hash: %v", err)
		return
	}
	admin := models.User{
		Phone:        domain.PhonePrefix + cfg.Phone,
		Email:        cfg.Phone + "@" + domain.EmailDomain,
		PasswordHash: string(hash),
		InviteCode:   "ADMIN0",
		Status:       domain.UserStatusActive,
		IsAdmin:      true,
	}
	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&admin).Error; err != nil {
			return err
		}
		return tx.Create(&models.InviteCode{Code: admin.InviteCode, UserID: admin.ID}).Error
	})
	if err != nil {
		log.Printf("[seed] admin: %v", err)
		return
	}
	log.Printf("[seed] admin account created for %s", admin.Phone)
}
