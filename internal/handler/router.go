package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/zhouzirui/z-bookstore/backend/internal/config"
	"github.com/zhouzirui/z-bookstore/backend/internal/handler/book"
	"github.com/zhouzirui/z-bookstore/backend/internal/handler/page"
	middlewarePkg "github.com/zhouzirui/z-bookstore/backend/internal/middleware"
	"github.com/zhouzirui/z-bookstore/backend/internal/service/catalog"
	"github.com/zhouzirui/z-bookstore/backend/pkg/utils"
)

// NewRouter wires HTTP routes to the catalog service.
func NewRouter(catalogSvc *catalog.Service, cards page.Cards, httpCfg config.HTTPConfig) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RealIP)
	r.Use(middlewarePkg.RequestID)
	r.Use(middlewarePkg.RequestLogger)
	r.Use(middleware.Recoverer)
	r.Use(middlewarePkg.CORS(httpCfg.AllowedOrigins))

	r.Handle("/metrics", promhttp.Handler())

	r.Group(func(limited chi.Router) {
		limited.Use(middlewarePkg.RateLimit(httpCfg.RateLimitRequests, httpCfg.RateLimitWindow, httpCfg.RateLimitDisabled))

		page.New(catalogSvc, cards).RegisterRoutes(limited)

		limited.Route("/api", func(api chi.Router) {
			api.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
				utils.RespondJSON(w, http.StatusOK, map[string]any{"ok": true})
			})

			book.New(catalogSvc).RegisterRoutes(api)
		})
	})

	return r
}
