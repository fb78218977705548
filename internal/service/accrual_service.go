package service

import (
	"time"

	"investlion/internal/domain"
	"investlion/internal/models"
)

// AccrualPlanStore lists the plans the processor scans.
type AccrualPlanStore interface {
	ListRunningByUser(userID uint) ([]models.ActivePlan, error)
}

// AccrualLedger commits the computed changes atomically and reports how much
// was actually credited; updates computed from a stale cursor are skipped.
type AccrualLedger interface {
	ApplyAccrual(userID uint, updates []models.PlanAccrual) (float64, error)
}

// AccrualService converts elapsed time into credited balance. It runs on each
// authentication transition (login, profile fetch), not on a timer.
type AccrualService struct {
	plans  AccrualPlanStore
	ledger AccrualLedger
	now    func() time.Time
}

func NewAccrualService(plans AccrualPlanStore, ledger AccrualLedger) *AccrualService {
	return &AccrualService{plans: plans, ledger: ledger, now: time.Now}
}

// ComputeAccrual returns the pending change for one plan, or nil when nothing
// is due. Earnings accrue per whole elapsed hour at dailyIncome/24; the claim
// cursor advances by exactly the credited hours so the fractional remainder
// carries into the next run. A plan past its expiry is marked completed even
// when no full hour has elapsed; the final partial hour is forfeited.
func ComputeAccrual(p *models.ActivePlan, now time.Time) *models.PlanAccrual {
	if p.Status != domain.PlanStatusRunning {
		return nil
	}
	hours := int64(now.Sub(p.LastClaimDate) / time.Hour)
	expired := !now.Before(p.ExpiryDate)
	if hours < 1 && !expired {
		return nil
	}
	upd := &models.PlanAccrual{
		PlanID:        p.ID,
		PrevClaimDate: p.LastClaimDate,
		LastClaimDate: p.LastClaimDate,
		Completed:     expired,
	}
	if hours >= 1 {
		upd.Earnings = float64(hours) * p.DailyIncome / 24
		upd.LastClaimDate = p.LastClaimDate.Add(time.Duration(hours) * time.Hour)
	}
	return upd
}

// Process scans the user's running plans and commits all cursor/status
// changes plus the total credit as one transaction. It is idempotent within
// the same hour, and concurrent runs over the same cursor snapshot credit the
// earnings once: the ledger returns what was actually applied.
func (s *AccrualService) Process(userID uint) (float64, error) {
	plans, err := s.plans.ListRunningByUser(userID)
	if err != nil {
		return 0, err
	}
	now := s.now()
	var updates []models.PlanAccrual
	for i := range plans {
		if upd := ComputeAccrual(&plans[i], now); upd != nil {
			updates = append(updates, *upd)
		}
	}
	if len(updates) == 0 {
		return 0, nil
	}
	return s.ledger.ApplyAccrual(userID, updates)
}
