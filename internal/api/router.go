package api

import (
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/retailnet/pos-admin/internal/api/handler"
	"github.com/retailnet/pos-admin/internal/api/middleware"
	"github.com/retailnet/pos-admin/internal/core/ports"
)

// Deps are the services the API routes are served by.
type Deps struct {
	Auth         ports.AuthService
	Users        ports.UserService
	Stores       ports.StoreService
	Transactions ports.TransactionService
	Dashboard    ports.DashboardService
	References   ports.ReferenceRepository

	Tokens     ports.TokenVerifier
	Identities middleware.IdentityFinder
	Limiter    ports.LoginLimiter

	Log zerolog.Logger
}

// Register mounts the /api routes on e.
//
//	@title						POS Admin API
//	@version					1.0
//	@description				Back office for a point-of-sale network: users, stores, transactions and exports.
//	@BasePath					/
//	@securityDefinitions.apikey	TokenAuth
//	@in							header
//	@name						x-auth-token
func Register(e *echo.Echo, d Deps) {
	authHandler := handler.NewAuthHandler(d.Auth)
	userHandler := handler.NewUserHandler(d.Users)
	storeHandler := handler.NewStoreHandler(d.Stores)
	transactionHandler := handler.NewTransactionHandler(d.Transactions)
	dashboardHandler := handler.NewDashboardHandler(d.Dashboard)
	referenceHandler := handler.NewReferenceHandler(d.References)

	g := e.Group("/api")

	// --- Auth routes ---
	g.POST("/auth/login", authHandler.Login, middleware.LoginThrottle(d.Limiter, d.Log))

	// --- Session routes ---
	s := g.Group("", middleware.Auth(d.Tokens, d.Identities))
	admin := middleware.RequirePrivileged()

	s.GET("/dashboard/stats", dashboardHandler.Stats)

	s.GET("/users", userHandler.List)
	s.GET("/users/roles", referenceHandler.Roles)
	s.GET("/users/stores", referenceHandler.ActiveStores)
	s.PUT("/users/:id", userHandler.Update, admin)

	s.GET("/regions", referenceHandler.Regions)

	s.GET("/stores", storeHandler.List)
	s.POST("/stores", storeHandler.Create, admin)
	s.PUT("/stores/:id", storeHandler.Update, admin)
	s.DELETE("/stores/:id", storeHandler.Delete, admin)

	s.GET("/transactions", transactionHandler.List)
	s.GET("/transactions/export", transactionHandler.Export)
	s.GET("/transactions/summary-export", transactionHandler.SummaryExport)
}
