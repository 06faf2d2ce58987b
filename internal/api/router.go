package api

import (
	"net/http"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/justinas/alice"
	"go.uber.org/zap"

	"rentx/internal/auth"
	"rentx/internal/service"
)

// RouterConfig carries what the router needs besides the services.
type RouterConfig struct {
	JWTSecret           string
	StripeWebhookSecret string
	RequestTimeout      time.Duration
	AllowedOrigins      []string
}

type Services struct {
	Cars      service.CarService
	Schedules service.ScheduleService
	Auth      service.AuthService
}

// NewRouter wires every route of the API.
func NewRouter(cfg RouterConfig, svc Services) http.Handler {
	userHandler := NewUserScheduleHandler(svc.Cars, svc.Schedules)
	adminHandler := NewAdminHandler(svc.Cars)
	authHandler := NewAuthHandler(svc.Auth)

	r := mux.NewRouter()
	r.HandleFunc("/health", healthCheckHandler).Methods("GET")

	// Public endpoints
	r.HandleFunc("/cars", userHandler.ListCars).Methods("GET")
	r.HandleFunc("/cars/{carId}", userHandler.GetCar).Methods("GET")
	r.HandleFunc("/schedules_bycars/{carId}", userHandler.GetScheduleByCar).Methods("GET")
	r.HandleFunc("/users", authHandler.Register).Methods("POST")
	r.HandleFunc("/sessions", authHandler.Login).Methods("POST")
	if cfg.StripeWebhookSecret != "" {
		stripeHandler := NewStripeWebhookHandler(cfg.StripeWebhookSecret, svc.Schedules)
		r.HandleFunc("/webhooks/stripe", stripeHandler.HandleWebhook).Methods("POST")
	}

	userMiddleware := alice.New(auth.Middleware(cfg.JWTSecret))
	adminMiddleware := userMiddleware.Append(auth.AdminOnly)

	// User endpoints
	r.Handle("/schedules_bycars/{carId}", userMiddleware.ThenFunc(userHandler.UpdateScheduleByCar)).Methods("PUT")
	r.Handle("/schedules_byuser", userMiddleware.ThenFunc(userHandler.CreateUserSchedule)).Methods("POST")
	r.Handle("/schedules_byuser", userMiddleware.ThenFunc(userHandler.ListUserSchedules)).Methods("GET")

	// Admin endpoints
	r.Handle("/admin/cars", adminMiddleware.ThenFunc(adminHandler.CreateCar)).Methods("POST")
	r.Handle("/admin/cars/{carId}", adminMiddleware.ThenFunc(adminHandler.DeleteCar)).Methods("DELETE")

	stdLog := zap.NewStdLog(zap.L())
	standardMiddleware := alice.New(
		func(next http.Handler) http.Handler { return handlers.LoggingHandler(stdLog.Writer(), next) },
		handlers.RecoveryHandler(handlers.RecoveryLogger(stdLog)),
		handlers.CORS(
			handlers.AllowedOrigins(cfg.AllowedOrigins),
			handlers.AllowedMethods([]string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}),
			handlers.AllowedHeaders([]string{"Authorization", "Content-Type", idempotencyKeyHeader, ifMatchHeader}),
			handlers.ExposedHeaders([]string{etagHeader}),
		),
	)
	if cfg.RequestTimeout > 0 {
		standardMiddleware = standardMiddleware.Append(TimeoutMiddleware(cfg.RequestTimeout))
	}
	return standardMiddleware.Then(r)
}

func healthCheckHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]bool{"alive": true})
}
