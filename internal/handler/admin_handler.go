package handler

import (
	"errors"
	"net/http"
	"strconv"

	"investlion/internal/domain"
	"investlion/internal/repository"
	"investlion/internal/service"
	"investlion/internal/ws"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type AdminHandler struct {
	admin          *service.AdminService
	userRepo       *repository.UserRepository
	depositRepo    *repository.DepositRepository
	withdrawalRepo *repository.WithdrawalRepository
	hub            *ws.ProfileHub
}

func NewAdminHandler(
	admin *service.AdminService,
	userRepo *repository.UserRepository,
	depositRepo *repository.DepositRepository,
	withdrawalRepo *repository.WithdrawalRepository,
	hub *ws.ProfileHub,
) *AdminHandler {
	return &AdminHandler{
		admin:          admin,
		userRepo:       userRepo,
		depositRepo:    depositRepo,
		withdrawalRepo: withdrawalRepo,
		hub:            hub,
	}
}

func parsePagination(c *gin.Context) (page, limit int) {
	page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ = strconv.Atoi(c.DefaultQuery("limit", "20"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}
	return page, limit
}

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return uint(id), true
}

func (h *AdminHandler) Dashboard(c *gin.Context) {
	stats, err := h.admin.Dashboard()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load dashboard"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"stats": stats})
}

func (h *AdminHandler) ListUsers(c *gin.Context) {
	page, limit := parsePagination(c)
	users, total, err := h.userRepo.List(limit, (page-1)*limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load users"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"users": users, "total": total, "page": page, "limit": limit})
}

func (h *AdminHandler) SetUserStatus(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.admin.SetUserStatus(id, req.Status); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "status updated"})
}

func (h *AdminHandler) ListDeposits(c *gin.Context) {
	status := c.DefaultQuery("status", domain.RequestStatusPending)
	page, limit := parsePagination(c)
	list, err := h.depositRepo.ListByStatus(status, limit, (page-1)*limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load deposits"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"deposits": list, "page": page, "limit": limit})
}

func (h *AdminHandler) ListWithdrawals(c *gin.Context) {
	status := c.DefaultQuery("status", domain.RequestStatusPending)
	page, limit := parsePagination(c)
	list, err := h.withdrawalRepo.ListByStatus(status, limit, (page-1)*limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load withdrawals"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"withdrawals": list, "page": page, "limit": limit})
}

func (h *AdminHandler) ApproveDeposit(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	dep, err := h.admin.ApproveDeposit(id)
	if err != nil {
		h.writeApprovalError(c, err, "deposit")
		return
	}
	h.pushProfile(dep.UserID)
	c.JSON(http.StatusOK, gin.H{"deposit": dep})
}

func (h *AdminHandler) RejectDeposit(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.admin.RejectDeposit(id); err != nil {
		h.writeApprovalError(c, err, "deposit")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "deposit rejected"})
}

func (h *AdminHandler) ApproveWithdrawal(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	w, err := h.admin.ApproveWithdrawal(id)
	if err != nil {
		h.writeApprovalError(c, err, "withdrawal")
		return
	}
	h.pushProfile(w.UserID)
	c.JSON(http.StatusOK, gin.H{"withdrawal": w})
}

func (h *AdminHandler) RejectWithdrawal(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.admin.RejectWithdrawal(id); err != nil {
		h.writeApprovalError(c, err, "withdrawal")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "withdrawal rejected"})
}

func (h *AdminHandler) writeApprovalError(c *gin.Context, err error, kind string) {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": kind + " request not found"})
	case errors.Is(err, service.ErrAlreadyProcessed), errors.Is(err, repository.ErrAlreadyProcessed):
		c.JSON(http.StatusConflict, gin.H{"error": "request already processed"})
	case errors.Is(err, repository.ErrInsufficientBalance):
		c.JSON(http.StatusConflict, gin.H{"error": "user balance no longer covers this withdrawal"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "operation failed"})
	}
}

func (h *AdminHandler) pushProfile(userID uint) {
	if u, err := h.userRepo.GetByID(userID); err == nil {
		h.hub.PublishProfile(u)
	}
}
