package router

import (
	"time"

	"investlion/config"
	"investlion/internal/handler"
	"investlion/internal/middleware"
	"investlion/internal/repository"
	"investlion/internal/service"
	"investlion/internal/ws"
	"investlion/pkg/cloudinary"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func Setup(cfg *config.Config, db *gorm.DB, cloud cloudinary.Client) *gin.Engine {
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	// Skip gin.Logger() to reduce log noise; use gin.Default() if you need request logging
	r.Use(middleware.RateLimit(middleware.NewInMemoryRateLimiter(100, 60*time.Second)))

	// Repositories
	userRepo := repository.NewUserRepository(db)
	planRepo := repository.NewActivePlanRepository(db)
	depositRepo := repository.NewDepositRepository(db)
	withdrawalRepo := repository.NewWithdrawalRepository(db)
	referralRepo := repository.NewReferralRepository(db)
	ledgerRepo := repository.NewLedgerRepository(db)

	profileHub := ws.NewProfileHub()

	// Services
	authSvc := service.NewAuthService(cfg, userRepo)
	accrualSvc := service.NewAccrualService(planRepo, ledgerRepo)
	purchaseSvc := service.NewPurchaseService(userRepo, referralRepo, ledgerRepo)
	requestSvc := service.NewRequestService(userRepo, depositRepo, withdrawalRepo)
	adminSvc := service.NewAdminService(userRepo, depositRepo, withdrawalRepo, planRepo, ledgerRepo)

	// Handlers
	authHandler := handler.NewAuthHandler(authSvc, accrualSvc)
	meHandler := handler.NewMeHandler(userRepo, planRepo, referralRepo, accrualSvc, profileHub)
	planHandler := handler.NewPlanHandler(purchaseSvc, userRepo, profileHub)
	depositHandler := handler.NewDepositHandler(requestSvc, depositRepo)
	withdrawalHandler := handler.NewWithdrawalHandler(requestSvc, withdrawalRepo)
	uploadHandler := handler.NewUploadHandler(cloud)
	adminHandler := handler.NewAdminHandler(adminSvc, userRepo, depositRepo, withdrawalRepo, profileHub)

	authMw := middleware.AuthRequired(&cfg.JWT)

	api := r.Group("/api/v1")
	{
		authGroup := api.Group("/auth")
		{
			authGroup.POST("/register", authHandler.Register)
			authGroup.POST("/login", authHandler.Login)
			authGroup.POST("/refresh", authHandler.Refresh)
		}

		api.GET("/plans", planHandler.ListCatalog)
		api.POST("/plans/:id/purchase", authMw, planHandler.Purchase)

		me := api.Group("/me")
		me.Use(authMw)
		{
			me.GET("/profile", meHandler.GetProfile)
			me.GET("/plans", meHandler.GetPlans)
			me.GET("/referrals", meHandler.GetReferrals)
			me.GET("/deposits", depositHandler.ListMine)
			me.GET("/withdrawals", withdrawalHandler.ListMine)
			me.POST("/upload/proof", uploadHandler.UploadProof)
		}

		api.GET("/deposits/account", authMw, depositHandler.Account)
		api.POST("/deposits", authMw, depositHandler.Create)
		api.POST("/withdrawals", authMw, withdrawalHandler.Create)

		admin := api.Group("/admin")
		admin.Use(authMw, middleware.AdminRequired())
		{
			admin.GET("/dashboard", adminHandler.Dashboard)
			admin.GET("/users", adminHandler.ListUsers)
			admin.PATCH("/users/:id/status", adminHandler.SetUserStatus)
			admin.GET("/deposits", adminHandler.ListDeposits)
			admin.POST("/deposits/:id/approve", adminHandler.ApproveDeposit)
			admin.POST("/deposits/:id/reject", adminHandler.RejectDeposit)
			admin.GET("/withdrawals", adminHandler.ListWithdrawals)
			admin.POST("/withdrawals/:id/approve", adminHandler.ApproveWithdrawal)
			admin.POST("/withdrawals/:id/reject", adminHandler.RejectWithdrawal)
		}
	}

	r.GET("/ws/profile", ws.UpgradeProfileWS(&cfg.JWT, profileHub))

	return r
}
