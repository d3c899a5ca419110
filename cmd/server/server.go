package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/noctale/noctale/internal/auth"
	"github.com/noctale/noctale/internal/clients/anilist"
	"github.com/noctale/noctale/internal/config"
	apiv1 "github.com/noctale/noctale/internal/handlers/api/v1"
	"github.com/noctale/noctale/internal/orchestrators/gacha"
	"github.com/noctale/noctale/internal/orchestrators/packs"
	redisclient "github.com/noctale/noctale/internal/redis"
	"github.com/noctale/noctale/internal/repositories/inventory"
	"github.com/noctale/noctale/internal/repositories/packstore"
	"github.com/noctale/noctale/internal/search"
)

var httpAddr string

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the API server",
	Long:  `Start the HTTP API server with all configured services.`,
	RunE:  runServer,
}

func init() {
	serverCmd.Flags().StringVar(&httpAddr, "addr", "", "listen address (overrides HTTP_ADDR)")
}

func runServer(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		slog.Info("received shutdown signal, gracefully stopping")
		cancel()
	}()

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if httpAddr != "" {
		cfg.HTTPAddr = httpAddr
	}

	redisClient, err := redisclient.NewClient(cfg.RedisAddr, nil)
	if err != nil {
		return fmt.Errorf("failed to create redis client: %w", err)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			slog.Error("failed to close redis client", "error", err)
		}
	}()

	anilistClient, err := anilist.New(&anilist.Config{URL: cfg.AniListURL})
	if err != nil {
		return fmt.Errorf("failed to create anilist client: %w", err)
	}

	packsService, err := packs.NewOrchestrator(&packs.Config{
		PackRepo:       packstore.NewRedisRepository(redisClient),
		AniListClient:  anilistClient,
		CommunityPacks: cfg.CommunityPacks,
	})
	if err != nil {
		return fmt.Errorf("failed to create packs orchestrator: %w", err)
	}

	inventoryRepo, err := inventory.NewRedisRepository(&inventory.Config{
		Client: redisClient,
	})
	if err != nil {
		return fmt.Errorf("failed to create inventory repository: %w", err)
	}

	gachaService, err := gacha.NewOrchestrator(&gacha.Config{
		PacksService:  packsService,
		Index:         search.Snapshot(),
		InventoryRepo: inventoryRepo,
		Enabled:       cfg.GachaEnabled,
		EventBoost:    cfg.EventBoost,
	})
	if err != nil {
		return fmt.Errorf("failed to create gacha orchestrator: %w", err)
	}

	var tokenService *auth.TokenService
	if cfg.TokenSecret != "" {
		tokenService, err = auth.NewTokenService(&auth.Config{
			Secret: cfg.TokenSecret,
			Issuer: cfg.TokenIssuer,
		})
		if err != nil {
			return fmt.Errorf("failed to create token service: %w", err)
		}
	} else {
		slog.Warn("TOKEN_SECRET is not set, serving without auth")
	}

	handler, err := apiv1.NewHandler(&apiv1.Config{
		PacksService: packsService,
		GachaService: gachaService,
		TokenService: tokenService,
	})
	if err != nil {
		return fmt.Errorf("failed to create api handler: %w", err)
	}

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery(), requestLogger())
	router.GET("/healthz", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	handler.Register(router)

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errChan := make(chan error, 1)
	go func() {
		slog.Info("http server starting", "addr", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("failed to serve: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		slog.Info("shutting down http server")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Error("graceful shutdown failed, forcing close", "error", err)
			return srv.Close()
		}
		slog.Info("server stopped")
		return nil
	case err := <-errChan:
		return err
	}
}

// requestLogger logs one line per request through slog.
func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		slog.Info("request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(start))
	}
}
