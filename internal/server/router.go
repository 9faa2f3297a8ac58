package server

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	account "shelfshare/internal/accountService"
	catalog "shelfshare/internal/catalogService"
	lending "shelfshare/internal/lendingService"
	accounthandler "shelfshare/services/account/handler"
	cataloghandler "shelfshare/services/catalog/handler"
	lendinghandler "shelfshare/services/lending/handler"
)

// SetupRouter configures all Gin routes for the application
func SetupRouter(catalogSvc *catalog.CatalogService, accountSvc *account.AccountService, lendingSvc *lending.LendingService, allowedOrigins []string) *gin.Engine {
	router := gin.New() // New router without default middleware for full control over middleware and logging

	router.Use(gin.Recovery())          // recover from panics
	router.Use(RequestLoggerMiddleware) // custom request logging
	router.Use(corsMiddleware(allowedOrigins))

	catalogHandler := cataloghandler.NewCatalogHandler(catalogSvc)
	accountHandler := accounthandler.NewAccountHandler(accountSvc)
	lendingHandler := lendinghandler.NewLendingHandler(lendingSvc)

	router.GET("/health", HealthHandler)

	books := router.Group("/books")
	{
		books.GET("", catalogHandler.ListBooksHandler)
		books.POST("", catalogHandler.CreateBookHandler)
		books.POST("/metadata", catalogHandler.ExtractMetadataHandler)
		books.GET("/:id", catalogHandler.GetBookHandler)
		books.POST("/:id/compare", catalogHandler.CompareConditionHandler)
	}

	users := router.Group("/users")
	{
		users.POST("/register", accountHandler.RegisterHandler)
		users.POST("/login", accountHandler.LoginHandler)
		users.POST("/change-password", accountHandler.ChangePasswordHandler)
		users.POST("/forgot-password", accountHandler.ForgotPasswordHandler)
		users.POST("/reset-password", accountHandler.ResetPasswordHandler)
		users.POST("/verify-email", accountHandler.VerifyEmailHandler)
		users.POST("/verify-phone", accountHandler.VerifyPhoneHandler)
		users.POST("/search", accountHandler.SearchUsersHandler)
		users.GET("/me", accountHandler.MeHandler)
		users.PUT("/profile", accountHandler.UpdateProfileHandler)
		users.GET("/admin/stats", accountHandler.AdminStatsHandler)
		users.GET("/:userId", accountHandler.GetUserHandler)
		users.PUT("/:userId/trust-score", accountHandler.UpdateTrustScoreHandler)
	}

	transactions := router.Group("/transactions")
	{
		transactions.POST("", lendingHandler.BorrowHandler)
		transactions.GET("/my", lendingHandler.MyTransactionsHandler)
	}

	admin := router.Group("/admin")
	{
		admin.GET("/users", accountHandler.AdminListUsersHandler)
		admin.PATCH("/users/:id", accountHandler.AdminPatchUserHandler)
		admin.GET("/transactions", lendingHandler.AdminListTransactionsHandler)
		admin.PATCH("/transactions/:id", lendingHandler.AdminPatchTransactionHandler)
	}

	router.GET("/recommendations", catalogHandler.RecommendationsHandler)

	return router
}

// corsMiddleware allows the browser front end to call the simulator. With no
// configured origins every origin is allowed, which is what local dev wants.
func corsMiddleware(allowedOrigins []string) gin.HandlerFunc {
	cfg := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if len(allowedOrigins) > 0 {
		cfg.AllowOrigins = allowedOrigins
	} else {
		cfg.AllowAllOrigins = true
		cfg.AllowCredentials = false
	}
	return cors.New(cfg)
}
