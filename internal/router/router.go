package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/op/go-logging"
	"github.com/restotrack/api/internal/config"
	"github.com/restotrack/api/internal/database"
	"github.com/restotrack/api/internal/events"
	"github.com/restotrack/api/internal/handler"
	mw "github.com/restotrack/api/internal/middleware"
	"github.com/restotrack/api/internal/service"
	"github.com/restotrack/api/internal/ws"
)

var log = logging.MustGetLogger("router")

// New creates a Chi router with all application routes wired up.
// notifier receives order and bill events; the hub should be part of it for
// kitchen screens to update live.
func New(cfg *config.Config, queries *database.Queries, pool *pgxpool.Pool, hub *ws.Hub, notifier events.Notifier) chi.Router {
	r := chi.NewRouter()

	// Standard middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(mw.RequestLogger)
	r.Use(middleware.Recoverer)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: false,
		MaxAge:           300, // 5 minutes
	}))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok"}`))
	})

	r.Get("/ws/kitchen", ws.ServeWS(hub, ws.TopicKitchen))

	// Services
	orderService := service.NewOrderService(queries,
		service.WithTransitionPolicy(service.PolicyFor(cfg.StrictStatusTransitions)),
		service.WithOrderNotifier(notifier),
	)
	billingService := service.NewBillingService(pool,
		func(db database.DBTX) service.BillingStore {
			return database.New(db)
		},
		service.WithBillingNotifier(notifier),
	)

	profileHandler := handler.NewProfileHandler(queries)
	r.Route("/profile", profileHandler.RegisterRoutes)

	staffHandler := handler.NewStaffHandler(queries)
	r.Route("/staff", staffHandler.RegisterRoutes)

	menuHandler := handler.NewMenuHandler(queries)
	r.Route("/menu", menuHandler.RegisterRoutes)

	orderHandler := handler.NewOrderHandler(orderService, queries)
	r.Route("/orders", orderHandler.RegisterRoutes)
	r.Route("/kitchen", orderHandler.RegisterKitchenRoutes)

	billingHandler := handler.NewBillingHandler(billingService, queries)
	r.Route("/billing", billingHandler.RegisterRoutes)

	feedbackHandler := handler.NewFeedbackHandler(queries)
	r.Route("/feedback", feedbackHandler.RegisterRoutes)

	tableHandler := handler.NewTableHandler(queries)
	r.Route("/tables", tableHandler.RegisterRoutes)

	reportsHandler := handler.NewReportsHandler(queries)
	r.Route("/reports", reportsHandler.RegisterRoutes)

	log.Info("router initialized with all handlers")
	return r
}
