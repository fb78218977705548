package service

import (
	"errors"

	"investlion/internal/domain"
	"investlion/internal/models"
)

var (
	ErrInvalidAmount      = errors.New("invalid amount")
	ErrInvalidMethod      = errors.New("unsupported payment method")
	ErrBelowMinWithdrawal = errors.New("minimum withdrawal is Rs 200")
)

type DepositStore interface {
	Create(d *models.DepositRequest) error
	ListByUser(userID uint) ([]models.DepositRequest, error)
}

type WithdrawalStore interface {
	Create(w *models.WithdrawRequest) error
	ListByUser(userID uint) ([]models.WithdrawRequest, error)
}

// RequestService handles user-side deposit/withdrawal submissions. Submission
// only creates a pending record; balances are untouched until an admin acts.
type RequestService struct {
	users       PurchaseUserStore
	deposits    DepositStore
	withdrawals WithdrawalStore
}

func NewRequestService(users PurchaseUserStore, deposits DepositStore, withdrawals WithdrawalStore) *RequestService {
	return &RequestService{users: users, deposits: deposits, withdrawals: withdrawals}
}

func validMethod(m string) bool {
	return m == domain.MethodEasyPaisa || m == domain.MethodJazzCash
}

func (s *RequestService) SubmitDeposit(userID uint, amount float64, method, txID, proofURL string) (*models.DepositRequest, error) {
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}
	if !validMethod(method) {
		return nil, ErrInvalidMethod
	}
	u, err := s.users.GetByID(userID)
	if err != nil {
		return nil, err
	}
	d := &models.DepositRequest{
		UserID:   userID,
		Phone:    u.Phone,
		Amount:   amount,
		Method:   method,
		TxID:     txID,
		ProofURL: proofURL,
		Status:   domain.RequestStatusPending,
	}
	if err := s.deposits.Create(d); err != nil {
		return nil, err
	}
	return d, nil
}

// SubmitWithdrawal quotes the current balance as a courtesy check; nothing is
// reserved, so the authoritative check happens again at approval time.
func (s *RequestService) SubmitWithdrawal(userID uint, amount float64, method, accountNumber string) (*models.WithdrawRequest, error) {
	if amount < domain.MinWithdrawAmount {
		return nil, ErrBelowMinWithdrawal
	}
	if !validMethod(method) {
		return nil, ErrInvalidMethod
	}
	u, err := s.users.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if u.Balance < amount {
		return nil, ErrInsufficientBalance
	}
	w := &models.WithdrawRequest{
		UserID:        userID,
		Phone:         u.Phone,
		Amount:        amount,
		AccountNumber: accountNumber,
		Method:        method,
		Status:        domain.RequestStatusPending,
	}
	if err := s.withdrawals.Create(w); err != nil {
		return nil, err
	}
	return w, nil
}
