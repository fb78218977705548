package service

import (
	"errors"
	"testing"

	"investlion/internal/domain"
	"investlion/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockAdminUserStore struct {
	mock.Mock
}

func (m *MockAdminUserStore) GetByID(id uint) (*models.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockAdminUserStore) SetStatus(id uint, status string) error {
	args := m.Called(id, status)
	return args.Error(0)
}

func (m *MockAdminUserStore) Count() (int64, error) {
	args := m.Called()
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockAdminUserStore) CountByStatus(status string) (int64, error) {
	args := m.Called(status)
	return args.Get(0).(int64), args.Error(1)
}

type MockDepositStore struct {
	mock.Mock
}

func (m *MockDepositStore) GetByID(id uint) (*models.DepositRequest, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.DepositRequest), args.Error(1)
}

func (m *MockDepositStore) MarkRejected(id uint) (bool, error) {
	args := m.Called(id)
	return args.Bool(0), args.Error(1)
}

func (m *MockDepositStore) CountByStatus(status string) (int64, error) {
	args := m.Called(status)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockDepositStore) SumApproved() (float64, error) {
	args := m.Called()
	return args.Get(0).(float64), args.Error(1)
}

type MockWithdrawalStore struct {
	mock.Mock
}

func (m *MockWithdrawalStore) GetByID(id uint) (*models.WithdrawRequest, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.WithdrawRequest), args.Error(1)
}

func (m *MockWithdrawalStore) MarkRejected(id uint) (bool, error) {
	args := m.Called(id)
	return args.Bool(0), args.Error(1)
}

func (m *MockWithdrawalStore) CountByStatus(status string) (int64, error) {
	args := m.Called(status)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockWithdrawalStore) SumApproved() (float64, error) {
	args := m.Called()
	return args.Get(0).(float64), args.Error(1)
}

type MockPlanCounter struct {
	mock.Mock
}

func (m *MockPlanCounter) Count() (int64, error) {
	args := m.Called()
	return args.Get(0).(int64), args.Error(1)
}

type MockApprovalLedger struct {
	mock.Mock
}

func (m *MockApprovalLedger) ApproveDeposit(dep *models.DepositRequest) error {
	args := m.Called(dep)
	return args.Error(0)
}

func (m *MockApprovalLedger) ApproveWithdrawal(w *models.WithdrawRequest) error {
	args := m.Called(w)
	return args.Error(0)
}

type adminMocks struct {
	users       *MockAdminUserStore
	deposits    *MockDepositStore
	withdrawals *MockWithdrawalStore
	plans       *MockPlanCounter
	ledger      *MockApprovalLedger
}

func newAdminService() (*AdminService, adminMocks) {
	m := adminMocks{
		users:       new(MockAdminUserStore),
		deposits:    new(MockDepositStore),
		withdrawals: new(MockWithdrawalStore),
		plans:       new(MockPlanCounter),
		ledger:      new(MockApprovalLedger),
	}
	return NewAdminService(m.users, m.deposits, m.withdrawals, m.plans, m.ledger), m
}

func TestAdminService_ApproveDeposit(t *testing.T) {
	t.Run("pending request goes to the ledger", func(t *testing.T) {
		svc, m := newAdminService()
		pending := &models.DepositRequest{ID: 5, UserID: 2, Amount: 1000, Status: domain.RequestStatusPending}
		m.deposits.On("GetByID", uint(5)).Return(pending, nil).Once()
		m.ledger.On("ApproveDeposit", pending).Return(nil).Once()

		dep, err := svc.ApproveDeposit(5)
		require.NoError(t, err)
		assert.Equal(t, domain.RequestStatusApproved, dep.Status)
		m.ledger.AssertExpectations(t)
	})

	t.Run("already approved is rejected before the ledger", func(t *testing.T) {
		svc, m := newAdminService()
		m.deposits.On("GetByID", uint(5)).Return(&models.DepositRequest{ID: 5, Status: domain.RequestStatusApproved}, nil).Once()

		_, err := svc.ApproveDeposit(5)
		assert.ErrorIs(t, err, ErrAlreadyProcessed)
		m.ledger.AssertNotCalled(t, "ApproveDeposit", mock.Anything)
	})

	t.Run("ledger error surfaces unchanged", func(t *testing.T) {
		svc, m := newAdminService()
		pending := &models.DepositRequest{ID: 5, Status: domain.RequestStatusPending}
		m.deposits.On("GetByID", uint(5)).Return(pending, nil).Once()
		m.ledger.On("ApproveDeposit", pending).Return(errors.New("db down")).Once()

		_, err := svc.ApproveDeposit(5)
		assert.Error(t, err)
	})
}

func TestAdminService_RejectDeposit(t *testing.T) {
	t.Run("pending flips to rejected", func(t *testing.T) {
		svc, m := newAdminService()
		m.deposits.On("MarkRejected", uint(6)).Return(true, nil).Once()
		assert.NoError(t, svc.RejectDeposit(6))
	})

	t.Run("terminal state reports already processed", func(t *testing.T) {
		svc, m := newAdminService()
		m.deposits.On("MarkRejected", uint(6)).Return(false, nil).Once()
		assert.ErrorIs(t, svc.RejectDeposit(6), ErrAlreadyProcessed)
	})
}

func TestAdminService_ApproveWithdrawal(t *testing.T) {
	t.Run("pending request goes to the ledger", func(t *testing.T) {
		svc, m := newAdminService()
		pending := &models.WithdrawRequest{ID: 8, UserID: 3, Amount: 400, Status: domain.RequestStatusPending}
		m.withdrawals.On("GetByID", uint(8)).Return(pending, nil).Once()
		m.ledger.On("ApproveWithdrawal", pending).Return(nil).Once()

		w, err := svc.ApproveWithdrawal(8)
		require.NoError(t, err)
		assert.Equal(t, domain.RequestStatusApproved, w.Status)
	})

	t.Run("insufficient balance passes through", func(t *testing.T) {
		svc, m := newAdminService()
		pending := &models.WithdrawRequest{ID: 8, Status: domain.RequestStatusPending}
		insufficient := errors.New("insufficient balance")
		m.withdrawals.On("GetByID", uint(8)).Return(pending, nil).Once()
		m.ledger.On("ApproveWithdrawal", pending).Return(insufficient).Once()

		_, err := svc.ApproveWithdrawal(8)
		assert.ErrorIs(t, err, insufficient)
	})

	t.Run("already rejected reports already processed", func(t *testing.T) {
		svc, m := newAdminService()
		m.withdrawals.On("GetByID", uint(8)).Return(&models.WithdrawRequest{ID: 8, Status: domain.RequestStatusRejected}, nil).Once()

		_, err := svc.ApproveWithdrawal(8)
		assert.ErrorIs(t, err, ErrAlreadyProcessed)
		m.ledger.AssertNotCalled(t, "ApproveWithdrawal", mock.Anything)
	})
}

func TestAdminService_SetUserStatus(t *testing.T) {
	t.Run("valid status", func(t *testing.T) {
		svc, m := newAdminService()
		m.users.On("GetByID", uint(2)).Return(&models.User{ID: 2}, nil).Once()
		m.users.On("SetStatus", uint(2), domain.UserStatusDisabled).Return(nil).Once()
		assert.NoError(t, svc.SetUserStatus(2, domain.UserStatusDisabled))
	})

	t.Run("unknown status", func(t *testing.T) {
		svc, _ := newAdminService()
		assert.Error(t, svc.SetUserStatus(2, "banned"))
	})
}

func TestAdminService_Dashboard(t *testing.T) {
	svc, m := newAdminService()
	m.users.On("Count").Return(int64(120), nil).Once()
	m.users.On("CountByStatus", domain.UserStatusActive).Return(int64(110), nil).Once()
	m.deposits.On("SumApproved").Return(250000.0, nil).Once()
	m.withdrawals.On("SumApproved").Return(90000.0, nil).Once()
	m.deposits.On("CountByStatus", domain.RequestStatusPending).Return(int64(4), nil).Once()
	m.withdrawals.On("CountByStatus", domain.RequestStatusPending).Return(int64(2), nil).Once()
	m.plans.On("Count").Return(int64(310), nil).Once()

	stats, err := svc.Dashboard()
	require.NoError(t, err)
	assert.Equal(t, int64(120), stats.TotalUsers)
	assert.Equal(t, int64(110), stats.ActiveUsers)
	assert.Equal(t, 250000.0, stats.TotalDeposits)
	assert.Equal(t, 90000.0, stats.TotalWithdrawals)
	assert.Equal(t, int64(4), stats.PendingDeposits)
	assert.Equal(t, int64(2), stats.PendingWithdraws)
	assert.Equal(t, int64(310), stats.TotalPlansSold)
}
