package server

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"go.uber.org/zap"

	"univadmin/internal/buyer"
	"univadmin/internal/commons"
	"univadmin/internal/config"
	"univadmin/internal/dashboard"
	"univadmin/internal/dispute"
	"univadmin/internal/earnings"
	"univadmin/internal/gig"
	ordercontroller "univadmin/internal/order/controller"
	"univadmin/internal/profile"
	refundcontroller "univadmin/internal/refund/controller"
	"univadmin/internal/settings"
	"univadmin/internal/student"
)

type Controllers struct {
	Dashboard *dashboard.Controller
	Students  *student.Controller
	Buyers    *buyer.Controller
	Gigs      *gig.Controller
	Orders    *ordercontroller.OrderController
	Disputes  *dispute.Controller
	Earnings  *earnings.Controller
	Settings  *settings.Controller
	Profile   *profile.Controller
	Refund    *refundcontroller.RefundController
}

func NewRouter(c Controllers, cfg config.HTTPConfig, logger *zap.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(accessLog(logger))
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.CORSAllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-Id"},
		ExposedHeaders: []string{"X-Request-Id"},
		MaxAge:         300,
	}))
	if cfg.RateLimitRPS > 0 {
		r.Use(httprate.Limit(
			cfg.RateLimitRPS,
			time.Second,
			httprate.WithKeyFuncs(httprate.KeyByIP),
			httprate.WithLimitHandler(rateLimited(logger)),
		))
	}

	r.NotFound(notFound(logger))
	r.MethodNotAllowed(methodNotAllowed(logger))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		commons.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"}, logger)
	})

	r.Route("/admin", func(r chi.Router) {
		r.Get("/", c.Dashboard.HandleOverview)

		r.Get("/students", c.Students.HandleList)
		r.Get("/students/{id}", c.Students.HandleGet)

		r.Get("/buyers", c.Buyers.HandleList)
		r.Get("/buyers/{id}", c.Buyers.HandleGet)

		r.Get("/gigs", c.Gigs.HandleList)
		r.Get("/gigs/{id}", c.Gigs.HandleGet)

		r.Get("/orders", c.Orders.ListOrders)
		r.Get("/orders/{id}", c.Orders.GetOrder)

		r.Get("/disputes", c.Disputes.HandleList)
		r.Get("/disputes/{id}", c.Disputes.HandleGet)

		r.Get("/earnings/transactions", c.Earnings.HandleListTransactions)
		r.Get("/earnings/payouts", c.Earnings.HandleListPayouts)

		r.Get("/settings", c.Settings.HandleGet)
		r.Get("/profile", c.Profile.HandleGet)

		r.Route("/refund", func(r chi.Router) {
			r.Get("/orders", c.Refund.ListOrders)
			r.Post("/validate", c.Refund.Validate)
			r.Post("/", c.Refund.Submit)
		})
	})

	return r
}

func notFound(logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		commons.WriteError(w, commons.NewTraceID(), http.StatusNotFound, commons.CodeNotFound, "route "+r.URL.Path+" not found", logger)
	}
}

func methodNotAllowed(logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		commons.WriteError(w, commons.NewTraceID(), http.StatusMethodNotAllowed, commons.CodeMethod, "method "+r.Method+" not allowed on "+r.URL.Path, logger)
	}
}

func rateLimited(logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		commons.WriteError(w, commons.NewTraceID(), http.StatusTooManyRequests, commons.CodeRateLimit, "too many requests", logger)
	}
}
