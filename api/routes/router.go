package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/sunstateclean/sunstate-backend/api/controllers"
	"github.com/sunstateclean/sunstate-backend/api/middleware"
	"github.com/sunstateclean/sunstate-backend/internal/catalog"
	contactsvc "github.com/sunstateclean/sunstate-backend/internal/contact"
	quotesvc "github.com/sunstateclean/sunstate-backend/internal/quote"
	"github.com/sunstateclean/sunstate-backend/pkg/config"
	"github.com/sunstateclean/sunstate-backend/pkg/logger"
	"github.com/sunstateclean/sunstate-backend/pkg/redis"
)

func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	redisClient *redis.Client,
	cat *catalog.Catalog,
	quoteService quotesvc.Service,
	contactService contactsvc.Service,
	registry *prometheus.Registry,
) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.CORS(),
	)

	contactPolicy := middleware.NewRateLimitPolicy(
		"contact",
		cfg.RateLimit.ContactWindow,
		cfg.RateLimit.ContactIPLimit,
	)
	contactLimiter := func(next http.Handler) http.Handler { return next }
	var redisPinger redis.Pinger
	if redisClient != nil {
		redisPinger = redisClient
		contactLimiter = middleware.RateLimit(contactPolicy, redisClient, logg)
	}

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, redisPinger))
	})

	if registry != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/catalog", controllers.Catalog(cat, logg))

		r.Route("/content", func(r chi.Router) {
			r.Get("/testimonials", controllers.Testimonials())
			r.Get("/faqs", controllers.FAQs())
		})

		r.Route("/quotes/drafts", func(r chi.Router) {
			r.Post("/", controllers.DraftCreate(quoteService, logg))
			r.Route("/{draftId}", func(r chi.Router) {
				r.Get("/", controllers.DraftFetch(quoteService, logg))
				r.Patch("/", controllers.DraftUpdate(quoteService, logg))
				r.Delete("/", controllers.DraftDiscard(quoteService, logg))
				r.Post("/submit", controllers.DraftSubmit(quoteService, logg))
			})
		})

		r.With(contactLimiter).
			Post("/contact", controllers.Contact(contactService, logg))
	})

	return r
}
