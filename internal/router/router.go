package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "petshop-orders/docs"
	"petshop-orders/internal/domain/catalog"
	"petshop-orders/internal/domain/orders"
	"petshop-orders/internal/middleware"
	"petshop-orders/internal/platform/config"
	"petshop-orders/internal/platform/logger"
	"petshop-orders/internal/platform/metrics"
)

type Options struct {
	Config config.Config
	Logger logger.Logger // nil => nop

	// Opcional: caché de pedidos confirmados. nil => no se guardan.
	Cache orders.Cache

	// Opcional: nil => catálogo embebido (o CATALOG_PATH ya cargado por el caller).
	Catalog *catalog.Catalog

	// Opcional: nil => registry propio (evita colisiones entre tests).
	Registry *prometheus.Registry
}

func NewRouter(opts Options) http.Handler {
	cfg := opts.Config

	log := opts.Logger
	if log == nil {
		log = logger.NewNop()
	}
	reg := opts.Registry
	if reg == nil {
		reg = prometheus.NewRegistry()
	}
	cat := opts.Catalog
	if cat == nil {
		cat = catalog.Default()
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.Recover(log))
	r.Use(middleware.RequestLog(log))

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", middleware.SessionHeader},
		ExposedHeaders:   []string{middleware.SessionHeader},
		AllowCredentials: true,
		MaxAge:           300,
	}))
	if cfg.RateLimitRPS > 0 {
		r.Use(httprate.LimitByIP(cfg.RateLimitRPS, time.Second))
	}

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	loc := cfg.Location()
	validator := orders.NewValidator(orders.ValidatorOptions{
		WindowMonths: cfg.BookingWindowMonths,
		Location:     loc,
	})

	ordersSvc := orders.NewService(orders.Options{
		Catalog:   cat,
		Validator: validator,
		Links: orders.LinkBuilder{
			BaseURL:   cfg.WhatsAppBaseURL,
			Recipient: cfg.WhatsAppNumber,
		},
		Cache:    opts.Cache,
		Metrics:  metrics.NewOrderMetrics(reg),
		Logger:   log,
		Location: loc,
	})
	sessions := orders.NewSessions(cfg.SessionTTL, cfg.NotifyTTL, time.Now)

	// Rutas por módulo
	catalog.RegisterRoutes(r, cat)

	r.Group(func(sr chi.Router) {
		sr.Use(middleware.SessionContext(cfg.SessionTTL))
		orders.RegisterRoutes(sr, ordersSvc, sessions)
	})

	return r
}
