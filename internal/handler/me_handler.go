package handler

import (
	"log"
	"net/http"

	"investlion/internal/middleware"
	"investlion/internal/repository"
	"investlion/internal/service"
	"investlion/internal/ws"

	"github.com/gin-gonic/gin"
)

type MeHandler struct {
	userRepo     *repository.UserRepository
	planRepo     *repository.ActivePlanRepository
	referralRepo *repository.ReferralRepository
	accrual      *service.AccrualService
	hub          *ws.ProfileHub
}

func NewMeHandler(
	userRepo *repository.UserRepository,
	planRepo *repository.ActivePlanRepository,
	referralRepo *repository.ReferralRepository,
	accrual *service.AccrualService,
	hub *ws.ProfileHub,
) *MeHandler {
	return &MeHandler{userRepo: userRepo, planRepo: planRepo, referralRepo: referralRepo, accrual: accrual, hub: hub}
}

// GetProfile runs the accrual processor first, so the returned balance always
// reflects earnings up to the last whole hour.
func (h *MeHandler) GetProfile(c *gin.Context) {
	userID := middleware.GetUserID(c)
	credited, err := h.accrual.Process(userID)
	if err != nil {
		log.Printf("[accrual] profile run failed: uid=%d err=%v", userID, err)
	}
	u, err := h.userRepo.GetByID(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load profile"})
		return
	}
	if credited > 0 {
		h.hub.PublishProfile(u)
	}
	c.JSON(http.StatusOK, gin.H{"profile": u, "credited": credited})
}

func (h *MeHandler) GetPlans(c *gin.Context) {
	userID := middleware.GetUserID(c)
	list, err := h.planRepo.ListByUser(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load plans"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"plans": list})
}

func (h *MeHandler) GetReferrals(c *gin.Context) {
	userID := middleware.GetUserID(c)
	u, err := h.userRepo.GetByID(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load profile"})
		return
	}
	page, limit := parsePagination(c)
	bonuses, err := h.referralRepo.ListBonusesByInviter(userID, limit, (page-1)*limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load bonuses"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"invite_code": u.InviteCode,
		"bonuses":     bonuses,
	})
}
