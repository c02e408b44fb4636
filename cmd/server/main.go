package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/brightpath-edu/counseling-scheduler/internal/api/http/handlers"
	"github.com/brightpath-edu/counseling-scheduler/internal/auth"
	"github.com/brightpath-edu/counseling-scheduler/internal/config"
	"github.com/brightpath-edu/counseling-scheduler/internal/events"
	"github.com/brightpath-edu/counseling-scheduler/internal/observability"
	"github.com/brightpath-edu/counseling-scheduler/internal/persistence"
	"github.com/brightpath-edu/counseling-scheduler/internal/repository"
	"github.com/brightpath-edu/counseling-scheduler/internal/service"
	"github.com/brightpath-edu/counseling-scheduler/internal/worker"

	httptransport "github.com/brightpath-edu/counseling-scheduler/internal/api/http"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()

	redis := persistence.NewRedis(cfg.Redis, logger)
	defer redis.Close()

	var (
		users        repository.UserRepository
		appointments repository.AppointmentRepository
		counselors   repository.CounselorRepository
	)
	if pool := pg.PoolHandle(); pool != nil {
		if cfg.Postgres.RunBootstrap {
			if err := persistence.Bootstrap(ctx, pool, logger); err != nil {
				logger.Fatal("failed to bootstrap schema", zap.Error(err))
			}
			hash, err := auth.HashPassword("password", cfg.Auth.BcryptCost)
			if err != nil {
				logger.Fatal("failed to hash seed password", zap.Error(err))
			}
			if err := persistence.SeedDemoData(ctx, pool, hash, logger); err != nil {
				logger.Fatal("failed to seed demo data", zap.Error(err))
			}
		}
		users = repository.NewPostgresUserRepository(pool)
		appointments = repository.NewPostgresAppointmentRepository(pool)
		counselors = repository.NewPostgresCounselorRepository(pool)
	} else {
		store, err := repository.NewSeededMemoryStore(cfg.Auth.BcryptCost)
		if err != nil {
			logger.Fatal("failed to seed memory store", zap.Error(err))
		}
		users = store.Users()
		appointments = store.Appointments()
		counselors = store.Counselors()
	}

	tokenTTL := time.Duration(cfg.Auth.AccessTokenTTLMinutes) * time.Minute
	denylist := redis.NewDenylist(tokenTTL)

	authService := service.NewAuthService(cfg.Auth, users, denylist, logger)
	authMiddleware := auth.NewMiddleware(authService.TokenManager(), denylist)

	dispatcher := events.NewInMemoryDispatcher()
	appointmentService := service.NewAppointmentService(appointments, counselors, dispatcher, logger)
	analyticsService := service.NewAnalyticsService(appointments)
	worker.StartNotificationWorker(service.NewNotificationService(dispatcher, logger))

	metrics := observability.NewMetrics()

	app := fiber.New()
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:         handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, pg, redis),
		Auth:           handlers.NewAuthHandler(authService),
		Appointments:   handlers.NewAppointmentsHandler(appointmentService),
		Counselors:     handlers.NewCounselorsHandler(counselors),
		Analytics:      handlers.NewAnalyticsHandler(analyticsService),
		AuthMiddleware: authMiddleware,
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
