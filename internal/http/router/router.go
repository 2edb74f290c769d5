package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"service-delivery-admin/internal/http/handlers"
	mw "service-delivery-admin/internal/http/middleware"
	"service-delivery-admin/internal/http/middleware/ratelimit"
	"service-delivery-admin/internal/logx"
)

// New constructs a chi-based http.Handler with base middleware and routes.
func New(
	base *handlers.Handlers,
	dm *handlers.DeliverymanHandler,
	rec *handlers.RecipientHandler,
	ord *handlers.OrderHandler,
	logger logx.Logger,
	rl *ratelimit.Middleware,
) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	if rl != nil {
		r.Use(rl.Handler())
	}
	r.Use(mw.Observability(logger))

	r.Get("/ping", base.Ping)
	r.Method(http.MethodHead, "/healthcheck", http.HandlerFunc(base.HealthcheckHead))
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/deliveryman", func(r chi.Router) {
		r.Get("/", dm.Index)
		r.Post("/", dm.Store)
		r.Put("/", dm.Update)
		r.Get("/{id}", dm.Show)
		r.Delete("/{id}", dm.Delete)
	})

	r.Route("/recipients", func(r chi.Router) {
		r.Get("/", rec.Index)
		r.Post("/", rec.Store)
		r.Put("/", rec.Update)
		r.Get("/{id}", rec.Show)
		r.Delete("/{id}", rec.Delete)
	})

	r.Route("/orders", func(r chi.Router) {
		r.Get("/", ord.Index)
		r.Post("/", ord.Store)
		r.Put("/", ord.Update)
		r.Get("/{id}", ord.Show)
		r.Delete("/{id}", ord.Delete)
	})

	r.NotFound(http.HandlerFunc(base.NotFound))

	return r
}
