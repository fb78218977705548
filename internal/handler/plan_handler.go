package handler

import (
	"errors"
	"log"
	"net/http"

	"investlion/internal/domain"
	"investlion/internal/middleware"
	"investlion/internal/repository"
	"investlion/internal/service"
	"investlion/internal/ws"

	"github.com/gin-gonic/gin"
)

type PlanHandler struct {
	purchase *service.PurchaseService
	userRepo *repository.UserRepository
	hub      *ws.ProfileHub
}

func NewPlanHandler(purchase *service.PurchaseService, userRepo *repository.UserRepository, hub *ws.ProfileHub) *PlanHandler {
	return &PlanHandler{purchase: purchase, userRepo: userRepo, hub: hub}
}

// ListCatalog returns the static investment plan catalog.
func (h *PlanHandler) ListCatalog(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"plans": domain.InvestmentPlans})
}

// Purchase buys the plan named in the path for the authenticated user.
func (h *PlanHandler) Purchase(c *gin.Context) {
	userID := middleware.GetUserID(c)
	planID := c.Param("id")
	plan, err := h.purchase.Purchase(userID, planID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrPlanNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, service.ErrInsufficientBalance),
			errors.Is(err, repository.ErrInsufficientBalance):
			c.JSON(http.StatusBadRequest, gin.H{"error": "insufficient balance, please recharge your wallet"})
		default:
			log.Printf("[plans] purchase failed: uid=%d plan=%s err=%v", userID, planID, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "purchase failed, please try again"})
		}
		return
	}
	if u, err := h.userRepo.GetByID(userID); err == nil {
		h.hub.PublishProfile(u)
	}
	c.JSON(http.StatusCreated, gin.H{"plan": plan})
}
