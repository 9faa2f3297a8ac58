package main

import (
	"fmt"
	"os"

	"github.com/gin-gonic/gin"

	account "shelfshare/internal/accountService"
	catalog "shelfshare/internal/catalogService"
	"shelfshare/internal/config"
	lending "shelfshare/internal/lendingService"
	"shelfshare/internal/repository"
	"shelfshare/internal/seed"
	"shelfshare/internal/server"
	"shelfshare/utils"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	gin.SetMode(cfg.Mode)

	store := repository.NewMemoryStore()
	store.Seed(seed.Books(), seed.Users(), seed.Transactions())

	issuer := account.NewTokenIssuer([]byte(cfg.JWTSecret), cfg.TokenTTL)
	catalogSvc := catalog.NewCatalogService(store)
	accountSvc := account.NewAccountService(store, issuer)
	lendingSvc := lending.NewLendingService(store)

	router := server.SetupRouter(catalogSvc, accountSvc, lendingSvc, cfg.AllowedOrigins)

	utils.Info("seeded in-memory store", map[string]any{
		"books":        len(seed.Books()),
		"users":        len(seed.Users()),
		"transactions": len(seed.Transactions()),
		"token_ttl":    cfg.TokenTTL.String(),
	})

	fmt.Printf("Starting shelfshare mock API on %s...\n", cfg.Addr)
	if err := router.Run(cfg.Addr); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to start server: %v\n", err)
		os.Exit(1)
	}
}
