package repository

import (
	"errors"

	"investlion/internal/domain"
	"investlion/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrAlreadyProcessed    = errors.New("request already processed")
)

// LedgerRepository is the single entry point for balance mutations. Every
// operation that moves money runs in one transaction: preconditions are
// re-checked under a row lock and increments are SQL expressions, never a
// write-back of a previously fetched balance. Two admins racing on the same
// request, or an approval racing an accrual run, cannot double-credit or
// lose an update.
type LedgerRepository struct {
	db *gorm.DB
}

func NewLedgerRepository(db *gorm.DB) *LedgerRepository {
	return &LedgerRepository{db: db}
}

// ApplyAccrual commits per-plan cursor/status changes plus the balance credit
// as one transaction and returns the amount actually credited. Each cursor
// update is conditional on the stored cursor still matching the one the
// computation read, so two runs racing over the same snapshot cannot both
// credit the same hours: the loser's updates match zero rows and its earnings
// are dropped.
func (r *LedgerRepository) ApplyAccrual(userID uint, updates []models.PlanAccrual) (float64, error) {
	var credited float64
	err := r.db.Transaction(func(tx *gorm.DB) error {
		credited = 0
		for _, u := range updates {
			fields := map[string]interface{}{"last_claim_date": u.LastClaimDate}
			if u.Completed {
				fields["status"] = domain.PlanStatusCompleted
			}
			res := tx.Model(&models.ActivePlan{}).
				Where("id = ? AND user_id = ? AND last_claim_date = ?", u.PlanID, userID, u.PrevClaimDate).
				Updates(fields)
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 1 {
				credited += u.Earnings
			}
		}
		if credited > 0 {
			return tx.Model(&models.User{}).
				Where("id = ?", userID).
				Update("balance", gorm.Expr("balance + ?", credited)).Error
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return credited, nil
}

// ExecutePurchase deducts the invest amount, creates the plan instance and,
// when an inviter was resolved, pays the referral bonus and appends its audit
// record, all in one transaction. The balance precondition is re-checked
// under a row lock; handlers check it once more before calling so an
// insufficient balance aborts before any write.
func (r *LedgerRepository) ExecutePurchase(userID uint, plan *models.ActivePlan, investAmount float64, inviterUID uint, bonus *models.ReferralBonus) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var u models.User
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&u, userID).Error; err != nil {
			return err
		}
		if u.Balance < investAmount {
			return ErrInsufficientBalance
		}
		if err := tx.Model(&models.User{}).
			Where("id = ?", userID).
			Update("balance", gorm.Expr("balance - ?", investAmount)).Error; err != nil {
			return err
		}
		if err := tx.Create(plan).Error; err != nil {
			return err
		}
		if inviterUID != 0 && bonus != nil {
			if err := tx.Model(&models.User{}).
				Where("id = ?", inviterUID).
				Update("balance", gorm.Expr("balance + ?", bonus.Amount)).Error; err != nil {
				return err
			}
			if err := tx.Create(bonus).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// ApproveDeposit flips pending -> approved and credits balance and
// total_deposit together. The conditional status update closes the
// double-approval race: the second admin gets ErrAlreadyProcessed.
func (r *LedgerRepository) ApproveDeposit(dep *models.DepositRequest) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.DepositRequest{}).
			Where("id = ? AND status = ?", dep.ID, domain.RequestStatusPending).
			Update("status", domain.RequestStatusApproved)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrAlreadyProcessed
		}
		return tx.Model(&models.User{}).
			Where("id = ?", dep.UserID).
			Updates(map[string]interface{}{
				"balance":       gorm.Expr("balance + ?", dep.Amount),
				"total_deposit": gorm.Expr("total_deposit + ?", dep.Amount),
			}).Error
	})
}

// ApproveWithdrawal checks the balance precondition at approval time under a
// row lock; an insufficient balance rolls back the status flip as well.
func (r *LedgerRepository) ApproveWithdrawal(w *models.WithdrawRequest) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.WithdrawRequest{}).
			Where("id = ? AND status = ?", w.ID, domain.RequestStatusPending).
			Update("status", domain.RequestStatusApproved)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrAlreadyProcessed
		}
		var u models.User
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&u, w.UserID).Error; err != nil {
			return err
		}
		if u.Balance < w.Amount {
			return ErrInsufficientBalance
		}
		return tx.Model(&models.User{}).
			Where("id = ?", w.UserID).
			Updates(map[string]interface{}{
				"balance":        gorm.Expr("balance - ?", w.Amount),
				"total_withdraw": gorm.Expr("total_withdraw + ?", w.Amount),
			}).Error
	})
}
