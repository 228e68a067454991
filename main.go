package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"gikibites/config"
	"gikibites/handlers"
	"gikibites/middleware"
	"gikibites/nav"
	"gikibites/routes"
	"gikibites/session"
	"gikibites/state"
	"gikibites/storage"
)

func main() {
	logger, _ := zap.NewProduction()
	defer logger.Sync()

	sugar := logger.Sugar()

	cfg, err := config.Parse()
	if err != nil {
		sugar.Fatalw("configuration error", "error", err.Error())
	}

	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	kv, err := storage.Open(cfg.DatabasePath)
	if err != nil {
		sugar.Fatalw("storage initialization error", "error", err.Error())
	}

	sessions := session.NewStore(kv, logger)
	guard := nav.NewGuard(sessions)
	intents := nav.NewTracker()
	auth := middleware.NewAuth([]byte(cfg.TokenSecret), sessions)

	h := handlers.New(
		logger,
		auth,
		sessions,
		guard,
		intents,
		state.NewCart(kv, logger),
		state.NewCatalog(kv, logger),
		state.NewOrders(kv, logger),
		state.NewVendors(),
	)

	r := gin.Default()

	// CORS middleware for the storefront frontend
	r.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	})

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"service": "GIKIBITES Storefront API",
			"version": "1.0.0",
		})
	})

	// Welcome
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "Welcome to the GIKIBITES Storefront API",
			"docs":    "/api/order-statuses",
			"health":  "/health",
			"roles":   []string{"customer", "vendor", "admin"},
		})
	})

	routes.SetupRoutes(r, h, auth)

	server := &http.Server{
		Addr:    cfg.Addr,
		Handler: r,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		sugar.Infow("starting gikibites server", "addr", cfg.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		sugar.Info("shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server shutdown error: %w", err)
		}
		sugar.Info("server stopped gracefully")
		return nil
	})

	if err := g.Wait(); err != nil {
		sugar.Fatalw("application terminated with error", "error", err)
	}
}
