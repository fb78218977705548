package handler

import (
	"errors"
	"net/http"

	"investlion/internal/middleware"
	"investlion/internal/repository"
	"investlion/internal/service"

	"github.com/gin-gonic/gin"
)

type WithdrawalHandler struct {
	requests       *service.RequestService
	withdrawalRepo *repository.WithdrawalRepository
}

func NewWithdrawalHandler(requests *service.RequestService, withdrawalRepo *repository.WithdrawalRepository) *WithdrawalHandler {
	return &WithdrawalHandler{requests: requests, withdrawalRepo: withdrawalRepo}
}

// Create submits a pending withdrawal request. Nothing is deducted here; the
// admin deducts at approval time.
func (h *WithdrawalHandler) Create(c *gin.Context) {
	userID := middleware.GetUserID(c)
	var req struct {
		Amount        float64 `json:"amount" binding:"required"`
		Method        string  `json:"method" binding:"required"`
		AccountNumber string  `json:"account_number" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	w, err := h.requests.SubmitWithdrawal(userID, req.Amount, req.Method, req.AccountNumber)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrBelowMinWithdrawal),
			errors.Is(err, service.ErrInvalidMethod),
			errors.Is(err, service.ErrInsufficientBalance):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to submit withdrawal"})
		}
		return
	}
	c.JSON(http.StatusCreated, gin.H{"withdrawal": w, "message": "Withdrawal request submitted for approval."})
}

func (h *WithdrawalHandler) ListMine(c *gin.Context) {
	userID := middleware.GetUserID(c)
	list, err := h.withdrawalRepo.ListByUser(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load withdrawals"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"withdrawals": list})
}
