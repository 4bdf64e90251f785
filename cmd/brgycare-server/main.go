package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/brgycare/brgycare/internal/config"
	"github.com/brgycare/brgycare/internal/domain/accounts"
	"github.com/brgycare/brgycare/internal/domain/announcements"
	"github.com/brgycare/brgycare/internal/domain/dashboard"
	"github.com/brgycare/brgycare/internal/domain/households"
	"github.com/brgycare/brgycare/internal/domain/inventory"
	"github.com/brgycare/brgycare/internal/domain/messaging"
	"github.com/brgycare/brgycare/internal/domain/reports"
	"github.com/brgycare/brgycare/internal/domain/residents"
	"github.com/brgycare/brgycare/internal/platform/auth"
	"github.com/brgycare/brgycare/internal/platform/blobstore"
	"github.com/brgycare/brgycare/internal/platform/db"
	"github.com/brgycare/brgycare/internal/platform/middleware"
	"github.com/brgycare/brgycare/internal/platform/telemetry"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "brgycare-server",
		Short: "Barangay health management API server",
	}

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(migrateCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer()
		},
	}
}

func migrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Run database migrations",
	}

	upCmd := &cobra.Command{
		Use:   "up",
		Short: "Apply pending migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, _ := cmd.Flags().GetString("dir")

			cfg, err := config.Load()
			if err != nil {
				return err
			}

			ctx := context.Background()
			pool, err := db.NewPool(ctx, cfg.DatabaseURL, cfg.DBMaxConns, cfg.DBMinConns)
			if err != nil {
				return err
			}
			defer pool.Close()

			migrator := db.NewMigrator(pool, dir)
			count, err := migrator.Up(ctx)
			if err != nil {
				return fmt.Errorf("migration failed: %w", err)
			}

			fmt.Printf("Applied %d migration(s) successfully.\n", count)
			return nil
		},
	}
	upCmd.Flags().String("dir", "./migrations", "Path to migrations directory")
	cmd.AddCommand(upCmd)

	statusCmd := &cobra.Command{
		Use:   "status",
		Short: "Show migration status",
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, _ := cmd.Flags().GetString("dir")

			cfg, err := config.Load()
			if err != nil {
				return err
			}

			ctx := context.Background()
			pool, err := db.NewPool(ctx, cfg.DatabaseURL, cfg.DBMaxConns, cfg.DBMinConns)
			if err != nil {
				return err
			}
			defer pool.Close()

			migrator := db.NewMigrator(pool, dir)
			statuses, err := migrator.Status(ctx)
			if err != nil {
				return fmt.Errorf("failed to get migration status: %w", err)
			}

			fmt.Printf("%-10s %-40s %-10s %s\n", "VERSION", "NAME", "STATUS", "APPLIED AT")
			fmt.Println("---------- ---------------------------------------- ---------- --------------------")
			for _, s := range statuses {
				status := "pending"
				appliedAt := ""
				if s.Applied {
					status = "applied"
					if s.AppliedAt != nil {
						appliedAt = s.AppliedAt.Format("2006-01-02 15:04:05")
					}
				}
				fmt.Printf("%-10d %-40s %-10s %s\n", s.Version, s.Name, status, appliedAt)
			}
			return nil
		},
	}
	statusCmd.Flags().String("dir", "./migrations", "Path to migrations directory")
	cmd.AddCommand(statusCmd)

	return cmd
}

func runServer() error {
	// Logger
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	if os.Getenv("ENV") == "development" {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout}).With().Timestamp().Logger()
	}

	// Config
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load config")
	}
	if err := cfg.Validate(); err != nil {
		logger.Fatal().Err(err).Msg("invalid configuration")
	}

	// Database
	ctx := context.Background()
	pool, err := db.NewPool(ctx, cfg.DatabaseURL, cfg.DBMaxConns, cfg.DBMinConns)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer pool.Close()
	logger.Info().Msg("connected to database")

	// Echo server
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// Global middleware
	e.Use(middleware.Recovery(logger))
	e.Use(middleware.RequestID())
	e.Use(middleware.Logger(logger))
	e.Use(middleware.SecurityHeaders())
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: cfg.CORSOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowHeaders: []string{"Authorization", "Content-Type", "X-Request-ID"},
	}))
	e.Use(middleware.BodyLimit("1M", fmt.Sprintf("%d", cfg.MaxUploadBytes)))
	e.Use(telemetry.Middleware())

	// Health and metrics
	e.GET("/health", db.HealthHandler(pool))
	e.GET("/metrics", telemetry.Handler())

	// Repositories
	accountRepo := accounts.NewAccountRepoPG(pool)
	householdRepo := households.NewHouseholdRepoPG(pool)
	residentRepo := residents.NewResidentRepoPG(pool)
	medicineRepo := inventory.NewMedicineRepoPG(pool)
	releaseRepo := inventory.NewReleaseRepoPG(pool)
	announcementRepo := announcements.NewAnnouncementRepoPG(pool)
	messageRepo := messaging.NewMessageRepoPG(pool)
	weeklyRepo := reports.NewWeeklyReportRepoPG(pool)
	monthlyRepo := reports.NewMonthlyReportRepoPG(pool)
	dashboardRepo := dashboard.NewDashboardRepoPG(pool)

	// Services. The household and resident services reference each other
	// through narrow interfaces: residents recount household members on
	// every mutation, households count residents when recomputing totals.
	accountSvc := accounts.NewService(accountRepo, cfg.JWTSecret, time.Duration(cfg.TokenTTLHours)*time.Hour)
	householdSvc := households.NewService(householdRepo, residentRepo)
	residentSvc := residents.NewService(residentRepo, householdSvc)
	inventorySvc := inventory.NewService(medicineRepo, releaseRepo)
	announcementSvc := announcements.NewService(announcementRepo)
	messagingSvc := messaging.NewService(messageRepo)
	reportSvc := reports.NewService(weeklyRepo, monthlyRepo)
	dashboardSvc := dashboard.NewService(dashboardRepo)

	blobs := blobstore.NewInMemoryBlobStore()

	// Public routes
	public := e.Group("/api/v1")
	accountHandler := accounts.NewHandler(accountSvc)
	accountHandler.RegisterPublicRoutes(public)

	// Authenticated routes
	apiV1 := e.Group("/api/v1")
	if cfg.IsDev() && cfg.JWTSecret == "" {
		logger.Warn().Msg("JWT_SECRET not set; all requests run as dev admin")
		apiV1.Use(auth.DevAuthMiddleware())
	} else {
		apiV1.Use(auth.JWTMiddleware(cfg.JWTSecret))
	}

	rateLimitCfg := middleware.RateLimitConfig{
		RequestsPerSecond: cfg.RateLimitRPS,
		BurstSize:         cfg.RateLimitBurst,
	}
	if rateLimitCfg.RequestsPerSecond <= 0 {
		rateLimitCfg = middleware.DefaultRateLimitConfig()
	}
	apiV1.Use(middleware.RateLimit(rateLimitCfg))

	accountHandler.RegisterRoutes(apiV1)
	households.NewHandler(householdSvc).RegisterRoutes(apiV1)
	residents.NewHandler(residentSvc).RegisterRoutes(apiV1)
	inventory.NewHandler(inventorySvc).RegisterRoutes(apiV1)
	announcements.NewHandler(announcementSvc).RegisterRoutes(apiV1)
	messaging.NewHandler(messagingSvc).RegisterRoutes(apiV1)
	reports.NewHandler(reportSvc).RegisterRoutes(apiV1)
	dashboard.NewHandler(dashboardSvc).RegisterRoutes(apiV1)
	blobstore.NewBlobHandler(blobs).RegisterRoutes(apiV1)

	// Start server with graceful shutdown
	go func() {
		addr := ":" + cfg.Port
		logger.Info().Str("addr", addr).Str("env", cfg.Env).Msg("starting server")
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("server stopped unexpectedly")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
