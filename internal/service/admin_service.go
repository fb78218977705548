package service

import (
	"errors"

	"investlion/internal/domain"
	"investlion/internal/models"
)

var ErrAlreadyProcessed = errors.New("request already processed")

type AdminDepositStore interface {
	GetByID(id uint) (*models.DepositRequest, error)
	MarkRejected(id uint) (bool, error)
	CountByStatus(status string) (int64, error)
	SumApproved() (float64, error)
}

type AdminWithdrawalStore interface {
	GetByID(id uint) (*models.WithdrawRequest, error)
	MarkRejected(id uint) (bool, error)
	CountByStatus(status string) (int64, error)
	SumApproved() (float64, error)
}

type AdminUserStore interface {
	GetByID(id uint) (*models.User, error)
	SetStatus(id uint, status string) error
	Count() (int64, error)
	CountByStatus(status string) (int64, error)
}

type PlanCounter interface {
	Count() (int64, error)
}

type ApprovalLedger interface {
	ApproveDeposit(dep *models.DepositRequest) error
	ApproveWithdrawal(w *models.WithdrawRequest) error
}

// AdminService performs the manual verification side of the ledger: approving
// or rejecting deposit and withdrawal requests, and console stats. All
// balance effects go through the ledger's transactional entry point.
type AdminService struct {
	users       AdminUserStore
	deposits    AdminDepositStore
	withdrawals AdminWithdrawalStore
	plans       PlanCounter
	ledger      ApprovalLedger
}

func NewAdminService(users AdminUserStore, deposits AdminDepositStore, withdrawals AdminWithdrawalStore, plans PlanCounter, ledger ApprovalLedger) *AdminService {
	return &AdminService{users: users, deposits: deposits, withdrawals: withdrawals, plans: plans, ledger: ledger}
}

// ApproveDeposit credits the user's balance and total_deposit with the
// request amount. Terminal states are absorbing: a request only ever
// transitions once.
func (s *AdminService) ApproveDeposit(id uint) (*models.DepositRequest, error) {
	dep, err := s.deposits.GetByID(id)
	if err != nil {
		return nil, err
	}
	if dep.Status != domain.RequestStatusPending {
		return nil, ErrAlreadyProcessed
	}
	if err := s.ledger.ApproveDeposit(dep); err != nil {
		return nil, err
	}
	dep.Status = domain.RequestStatusApproved
	return dep, nil
}

func (s *AdminService) RejectDeposit(id uint) error {
	ok, err := s.deposits.MarkRejected(id)
	if err != nil {
		return err
	}
	if !ok {
		return ErrAlreadyProcessed
	}
	return nil
}

// ApproveWithdrawal deducts the amount from the user's balance; it fails and
// leaves everything unchanged when the balance no longer covers the request.
func (s *AdminService) ApproveWithdrawal(id uint) (*models.WithdrawRequest, error) {
	w, err := s.withdrawals.GetByID(id)
	if err != nil {
		return nil, err
	}
	if w.Status != domain.RequestStatusPending {
		return nil, ErrAlreadyProcessed
	}
	if err := s.ledger.ApproveWithdrawal(w); err != nil {
		return nil, err
	}
	w.Status = domain.RequestStatusApproved
	return w, nil
}

func (s *AdminService) RejectWithdrawal(id uint) error {
	ok, err := s.withdrawals.MarkRejected(id)
	if err != nil {
		return err
	}
	if !ok {
		return ErrAlreadyProcessed
	}
	return nil
}

func (s *AdminService) SetUserStatus(id uint, status string) error {
	if status != domain.UserStatusActive && status != domain.UserStatusDisabled {
		return errors.New("invalid status")
	}
	if _, err := s.users.GetByID(id); err != nil {
		return err
	}
	return s.users.SetStatus(id, status)
}

// DashboardStats mirrors the admin console overview.
type DashboardStats struct {
	TotalUsers       int64   `json:"total_users"`
	ActiveUsers      int64   `json:"active_users"`
	TotalDeposits    float64 `json:"total_deposits"`
	TotalWithdrawals float64 `json:"total_withdrawals"`
	PendingDeposits  int64   `json:"pending_deposits"`
	PendingWithdraws int64   `json:"pending_withdraws"`
	TotalPlansSold   int64   `json:"total_plans_sold"`
}

func (s *AdminService) Dashboard() (*DashboardStats, error) {
	stats := &DashboardStats{}
	var err error
	if stats.TotalUsers, err = s.users.Count(); err != nil {
		return nil, err
	}
	if stats.ActiveUsers, err = s.users.CountByStatus(domain.UserStatusActive); err != nil {
		return nil, err
	}
	if stats.TotalDeposits, err = s.deposits.SumApproved(); err != nil {
		return nil, err
	}
	if stats.TotalWithdrawals, err = s.withdrawals.SumApproved(); err != nil {
		return nil, err
	}
	if stats.PendingDeposits, err = s.deposits.CountByStatus(domain.RequestStatusPending); err != nil {
		return nil, err
	}
	if stats.PendingWithdraws, err = s.withdrawals.CountByStatus(domain.RequestStatusPending); err != nil {
		return nil, err
	}
	if stats.TotalPlansSold, err = s.plans.Count(); err != nil {
		return nil, err
	}
	return stats, nil
}
