package wire

import (
	"net/http"

	"bike-service/internal/adaptor"
	"bike-service/internal/data/repository"
	"bike-service/internal/jobs"
	"bike-service/internal/metrics"
	"bike-service/internal/usecase"
	"bike-service/pkg/mailer"
	"bike-service/pkg/middleware"
	"bike-service/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// App holds the wired application.
type App struct {
	Router     *chi.Mux
	Dispatcher *jobs.Dispatcher
}

// Wiring initializes all dependencies.
func Wiring(repo *repository.Repository, config *utils.Config, logger *zap.Logger) *App {
	metrics.Register()

	mail := mailer.FromConfig(config.Email, logger)
	dispatcher := jobs.NewDispatcher(repo, mail, logger)

	service := usecase.NewService(repo, dispatcher, config, logger)
	handler := adaptor.NewHandler(service, logger)

	router := setupRouter(handler, logger)

	return &App{
		Router:     router,
		Dispatcher: dispatcher,
	}
}

// setupRouter configures the Chi router.
func setupRouter(handler *adaptor.Handler, logger *zap.Logger) *chi.Mux {
	r := chi.NewRouter()

	// Apply global middleware
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS())

	// Apply routes
	wireUser(r, handler.User)
	wireBooking(r, handler.Booking)
	wireMechanic(r, handler.Mechanic)
	wireDashboard(r, handler.Dashboard)

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Prometheus scrape endpoint
	r.Handle("/metrics", promhttp.Handler())

	return r
}
