package service

import (
	"errors"
	"time"

	"investlion/internal/domain"
	"investlion/internal/models"
)

var (
	ErrPlanNotFound        = errors.New("unknown plan")
	ErrInsufficientBalance = errors.New("insufficient balance")
)

type PurchaseUserStore interface {
	GetByID(id uint) (*models.User, error)
}

type InviteResolver interface {
	ResolveCode(code string) (uint, error)
}

type PurchaseLedger interface {
	ExecutePurchase(userID uint, plan *models.ActivePlan, investAmount float64, inviterUID uint, bonus *models.ReferralBonus) error
}

type PurchaseService struct {
	users   PurchaseUserStore
	invites InviteResolver
	ledger  PurchaseLedger
	now     func() time.Time
}

func NewPurchaseService(users PurchaseUserStore, invites InviteResolver, ledger PurchaseLedger) *PurchaseService {
	return &PurchaseService{users: users, invites: invites, ledger: ledger, now: time.Now}
}

// Purchase buys a catalog plan for the user. An insufficient balance aborts
// before any write. The deduction, the plan instance and the inviter's bonus
// (paid on every purchase by a referred user, with its audit record) commit
// together.
func (s *PurchaseService) Purchase(userID uint, planID string) (*models.ActivePlan, error) {
	cat, ok := domain.PlanByID(planID)
	if !ok {
		return nil, ErrPlanNotFound
	}
	u, err := s.users.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if u.Balance < cat.InvestAmount {
		return nil, ErrInsufficientBalance
	}
	now := s.now()
	plan := &models.ActivePlan{
		UserID:        userID,
		PlanID:        cat.ID,
		PlanName:      cat.Name,
		DailyIncome:   cat.DailyIncome,
		PurchaseDate:  now,
		LastClaimDate: now,
		ExpiryDate:    now.AddDate(0, 0, cat.Duration),
		Status:        domain.PlanStatusRunning,
	}
	var inviterUID uint
	var bonus *models.ReferralBonus
	if u.ReferredBy != "" {
		id, err := s.invites.ResolveCode(u.ReferredBy)
		if err != nil {
			return nil, err
		}
		if id != 0 && id != userID {
			inviterUID = id
			bonus = &models.ReferralBonus{
				InviterUID: id,
				InviteeUID: userID,
				Amount:     domain.ReferralBonusAmount,
				CreatedAt:  now,
			}
		}
	}
	if err := s.ledger.ExecutePurchase(userID, plan, cat.InvestAmount, inviterUID, bonus); err != nil {
		return nil, err
	}
	return plan, nil
}
