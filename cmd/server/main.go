package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"
	"go.uber.org/zap"

	"rentx/internal/api"
	"rentx/internal/config"
	"rentx/internal/db"
	"rentx/internal/repository"
	"rentx/internal/service"
)

const idempotencyKeyTTL = 24 * time.Hour

func main() {
	cfg, err := config.New()
	if err != nil {
		zap.S().Fatalw("invalid configuration", "error", err)
	}
	defer zap.L().Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	conn, err := sql.Open("postgres", cfg.DatabaseURL)
	if err != nil {
		zap.S().Fatalw("failed to open DB", "error", err)
	}
	defer conn.Close()
	if err := conn.PingContext(ctx); err != nil {
		zap.S().Fatalw("failed to connect to DB", "error", err)
	}
	if err := db.Migrate(ctx, conn); err != nil {
		zap.S().Fatalw("failed to migrate DB", "error", err)
	}

	carRepo := repository.NewCarRepository(conn)
	userRepo := repository.NewUserRepository(conn)
	scheduleRepo := repository.NewScheduleRepository(conn)
	paymentRepo := repository.NewStripeRepository(conn)

	var keys repository.IdempotencyStore
	if cfg.RedisURL != "" {
		keys, err = repository.NewRedisIdempotencyStore(ctx, cfg.RedisURL, idempotencyKeyTTL)
		if err != nil {
			zap.S().Warnw("redis unavailable, idempotency keys are checked in the database only", "error", err)
			keys = nil
		}
	}

	var checkout service.CheckoutProvider
	if cfg.StripeEnabled() {
		checkout = service.NewStripeService(cfg.StripeSecretKey, cfg.Currency, cfg.CheckoutSuccessURL, cfg.CheckoutCancelURL)
	}

	sender := service.NewSenderService(service.SenderConfig{
		SendGridAPIKey:    cfg.SendGridAPIKey,
		SendGridFromEmail: cfg.SendGridFromEmail,
		SendGridFromName:  cfg.SendGridFromName,
		TwilioAccountSID:  cfg.TwilioAccountSID,
		TwilioAuthToken:   cfg.TwilioAuthToken,
		TwilioFromNumber:  cfg.TwilioFromNumber,
	})
	zap.S().Infow("notifications", "email", cfg.SendGridEnabled(), "sms", cfg.TwilioEnabled(), "checkout", cfg.StripeEnabled())

	services := api.Services{
		Cars:      service.NewCarService(carRepo),
		Schedules: service.NewScheduleService(scheduleRepo, carRepo, userRepo, keys, paymentRepo, checkout, sender),
		Auth:      service.NewAuthService(userRepo, cfg.JWTSecret, cfg.TokenTTL, cfg.AdminEmails...),
	}

	jobs := service.NewJobService(repository.NewJobRepository(conn))
	scheduler, err := jobs.Start(cfg.FinishJobSpec)
	if err != nil {
		zap.S().Fatalw("failed to start jobs", "error", err)
	}
	defer scheduler.Stop()

	srv := &http.Server{
		Addr: ":" + cfg.Port,
		Handler: api.NewRouter(api.RouterConfig{
			JWTSecret:           cfg.JWTSecret,
			StripeWebhookSecret: cfg.StripeWebhookSecret,
			RequestTimeout:      cfg.RequestTimeout,
			AllowedOrigins:      cfg.AllowedOrigins,
		}, services),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		zap.S().Infow("rentx api is up and running", "port", cfg.Port, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zap.S().Fatalw("server failed", "error", err)
		}
	}()

	<-ctx.Done()
	zap.S().Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		zap.S().Errorw("graceful shutdown failed", "error", err)
	}
}
