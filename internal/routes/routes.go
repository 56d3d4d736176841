package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/delivery-marketplace/internal/audit"
	"github.com/BruksfildServices01/delivery-marketplace/internal/auth"
	"github.com/BruksfildServices01/delivery-marketplace/internal/config"
	"github.com/BruksfildServices01/delivery-marketplace/internal/domain/account"
	"github.com/BruksfildServices01/delivery-marketplace/internal/handlers"
	infraRepo "github.com/BruksfildServices01/delivery-marketplace/internal/infra/repository"
	"github.com/BruksfildServices01/delivery-marketplace/internal/logging"
	"github.com/BruksfildServices01/delivery-marketplace/internal/middleware"
	ucAccount "github.com/BruksfildServices01/delivery-marketplace/internal/usecase/account"
	ucAdmin "github.com/BruksfildServices01/delivery-marketplace/internal/usecase/admin"
	ucAuth "github.com/BruksfildServices01/delivery-marketplace/internal/usecase/auth"
	ucCustomer "github.com/BruksfildServices01/delivery-marketplace/internal/usecase/customer"
	ucVerification "github.com/BruksfildServices01/delivery-marketplace/internal/usecase/verification"
)

// Deps are the process-wide singletons the routes are built from.
type Deps struct {
	DB      *gorm.DB
	Config  *config.Config
	Log     logging.Logger
	Audit   audit.Recorder
	Tokens  ucAuth.TokenStore
	Images  ucCustomer.ImageStore
	Metrics *middleware.Metrics
}

func RegisterRoutes(r *gin.Engine, d Deps) {
	cfg := d.Config

	// ======================================================
	// MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(
		middleware.TraceMiddleware(),
		middleware.LoggerMiddleware(d.Log),
		middleware.CORSMiddleware(),
	)
	if d.Metrics != nil {
		r.Use(d.Metrics.Middleware())
		r.GET("/metrics", gin.WrapH(d.Metrics.Handler()))
	}

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	userRepo := infraRepo.NewUserGormRepository(d.DB)
	deliveryBoyRepo := infraRepo.NewDeliveryBoyGormRepository(d.DB)
	retailerRepo := infraRepo.NewRetailerGormRepository(d.DB)
	customerRepo := infraRepo.NewCustomerGormRepository(d.DB)
	auditRepo := infraRepo.NewAuditGormRepository(d.DB)

	issuer := auth.NewIssuer(
		cfg.JWTAccessSecret,
		cfg.JWTRefreshSecret,
		cfg.AccessTokenTTL,
		cfg.RefreshTokenTTL,
	)

	// ======================================================
	// USE CASES
	// ======================================================
	blockUserUC := ucAccount.NewSetUserBlocked(userRepo, d.Audit)

	adminUC := handlers.AdminUseCases{
		Dashboard: ucAdmin.NewDashboard(userRepo, deliveryBoyRepo, retailerRepo),

		Users:        ucAdmin.NewList(userRepo.ListUsers, "Users fetched successfully"),
		Customers:    ucAdmin.NewList(customerRepo.ListCustomers, "Customers fetched successfully"),
		Retailers:    ucAdmin.NewList(retailerRepo.ListRetailers, "Retailers fetched successfully"),
		DeliveryBoys: ucAdmin.NewList(deliveryBoyRepo.ListDeliveryBoys, "Delivery boys fetched successfully"),
		AuditLogs:    ucAdmin.NewListAuditLogs(auditRepo, cfg.Timezone),

		GetDeliveryBoy:      ucVerification.NewGetDeliveryBoy(deliveryBoyRepo),
		PendingDeliveryBoys: ucVerification.NewListPendingDeliveryBoys(deliveryBoyRepo),
		DeliveryBoyStatus:   ucVerification.NewSetDeliveryBoyStatus(deliveryBoyRepo, d.Audit),
		RetailerStatus:      ucVerification.NewSetRetailerStatus(retailerRepo, d.Audit),

		BlockUser:        blockUserUC,
		BlockDeliveryBoy: ucAccount.NewSetDeliveryBoyBlocked(deliveryBoyRepo, blockUserUC),
		BlockRetailer:    ucAccount.NewSetRetailerBlocked(retailerRepo, blockUserUC),
	}

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(
		ucAuth.NewRegister(userRepo, cfg.CheckEmailDomain),
		ucAuth.NewLoginUser(userRepo, issuer, d.Tokens),
		ucAuth.NewRefreshSession(userRepo, issuer, d.Tokens),
		ucAuth.NewLogout(issuer, d.Tokens),
		ucAuth.NewCurrentUser(userRepo),
		cfg,
		d.Log,
	)

	adminHandler := handlers.NewAdminHandler(adminUC, d.Log)

	userHandler := handlers.NewUserHandler(
		ucCustomer.NewDashboard(userRepo, customerRepo),
		ucCustomer.NewGetProfile(userRepo, customerRepo),
		ucCustomer.NewUpdateProfile(userRepo, customerRepo, d.Images),
		ucCustomer.NewAddresses(customerRepo),
		d.Log,
	)

	authMW := middleware.AuthMiddleware(issuer)

	// ======================================================
	// AUTH
	// ======================================================
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/register", authHandler.Register(account.RoleCustomer))
		authGroup.POST("/retailer/register", authHandler.Register(account.RoleRetailer))
		authGroup.POST("/deliveryboy/register", authHandler.Register(account.RoleDeliveryBoy))

		authGroup.POST("/login", authHandler.Login(account.RoleCustomer))
		authGroup.POST("/retailerlogin", authHandler.Login(account.RoleRetailer))
		authGroup.POST("/deliveryboylogin", authHandler.Login(account.RoleDeliveryBoy))
		authGroup.POST("/adminlogin", authHandler.Login(account.RoleAdmin))

		authGroup.POST("/logout", authHandler.Logout)
		authGroup.POST("/adminLogout", authHandler.Logout)
		authGroup.POST("/refresh-token", authHandler.Refresh)

		authGroup.GET("/me", authMW, authHandler.Me)
	}

	// ======================================================
	// ADMIN
	// ======================================================
	adminGroup := r.Group("/admin")
	adminGroup.Use(authMW, middleware.RequireRole(string(account.RoleAdmin)))
	{
		adminGroup.GET("/dashboard", adminHandler.Dashboard)
		adminGroup.GET("/getallusers", adminHandler.ListUsers)
		adminGroup.GET("/getallcustomers", adminHandler.ListCustomers)
		adminGroup.GET("/get-allReatilers", adminHandler.ListRetailers)
		adminGroup.GET("/delivery-boys", adminHandler.ListDeliveryBoys)
		adminGroup.GET("/audit-logs", adminHandler.ListAuditLogs)

		adminGroup.GET("/deliveryboy/pending", adminHandler.PendingDeliveryBoys)
		adminGroup.GET("/deliveryboy/:id", adminHandler.GetDeliveryBoy)
		adminGroup.PUT("/deliveryboy/:id/approve", adminHandler.ApproveDeliveryBoy)
		adminGroup.PUT("/deliveryboy/:id/reject", adminHandler.RejectDeliveryBoy)
		adminGroup.PATCH("/deliveryboy/:id/block", adminHandler.BlockDeliveryBoy(true))
		adminGroup.PATCH("/deliveryboy/:id/unblock", adminHandler.BlockDeliveryBoy(false))

		adminGroup.PUT("/retailer/approve/:id", adminHandler.ApproveRetailer)
		adminGroup.PUT("/retailer/reject/:id", adminHandler.RejectRetailer)
		adminGroup.PATCH("/retailer/:id/block", adminHandler.BlockRetailer(true))
		adminGroup.PATCH("/retailer/:id/unblock", adminHandler.BlockRetailer(false))

		adminGroup.PATCH("/user/:id/block", adminHandler.BlockUser(true))
		adminGroup.PATCH("/user/:id/unblock", adminHandler.BlockUser(false))
	}

	// ======================================================
	// USER (CUSTOMER)
	// ======================================================
	userGroup := r.Group("/user")
	userGroup.Use(authMW, middleware.RequireRole(string(account.RoleCustomer)))
	{
		userGroup.GET("/dashboard", userHandler.Dashboard)
		userGroup.GET("/profile", userHandler.GetProfile)
		userGroup.PATCH("/profile", userHandler.UpdateProfile)

		userGroup.GET("/addresses", userHandler.ListAddresses)
		userGroup.POST("/addresses", userHandler.AddAddress)
		userGroup.PATCH("/addresses/:id", userHandler.UpdateAddress)
		userGroup.DELETE("/addresses/:id", userHandler.DeleteAddress)
		userGroup.PATCH("/addresses/:id/default", userHandler.SetDefaultAddress)
	}
}
