package handler

import (
	"errors"
	"net/http"

	"investlion/internal/domain"
	"investlion/internal/middleware"
	"investlion/internal/repository"
	"investlion/internal/service"

	"github.com/gin-gonic/gin"
)

type DepositHandler struct {
	requests    *service.RequestService
	depositRepo *repository.DepositRepository
}

func NewDepositHandler(requests *service.RequestService, depositRepo *repository.DepositRepository) *DepositHandler {
	return &DepositHandler{requests: requests, depositRepo: depositRepo}
}

// Account returns the manual transfer target shown on the deposit screen.
func (h *DepositHandler) Account(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"account_number": domain.DepositAccountNumber,
		"holder_name":    domain.DepositHolderName,
		"methods":        []string{domain.MethodEasyPaisa, domain.MethodJazzCash},
	})
}

// Create submits a pending deposit request; the balance is untouched until an
// admin verifies the transfer and approves.
func (h *DepositHandler) Create(c *gin.Context) {
	userID := middleware.GetUserID(c)
	var req struct {
		Amount   float64 `json:"amount" binding:"required"`
		Method   string  `json:"method" binding:"required"`
		TxID     string  `json:"tx_id" binding:"required"`
		ProofURL string  `json:"proof_url"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	d, err := h.requests.SubmitDeposit(userID, req.Amount, req.Method, req.TxID, req.ProofURL)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidAmount), errors.Is(err, service.ErrInvalidMethod):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to submit request"})
		}
		return
	}
	c.JSON(http.StatusCreated, gin.H{"deposit": d, "message": "Deposit request submitted, waiting for admin approval."})
}

func (h *DepositHandler) ListMine(c *gin.Context) {
	userID := middleware.GetUserID(c)
	list, err := h.depositRepo.ListByUser(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load deposits"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"deposits": list})
}
