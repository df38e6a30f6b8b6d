package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/MrJamesThe3rd/leasedesk/internal/http/auth"
	"github.com/MrJamesThe3rd/leasedesk/internal/http/contract"
	"github.com/MrJamesThe3rd/leasedesk/internal/http/extract"
	"github.com/MrJamesThe3rd/leasedesk/internal/http/respond"
)

func health(w http.ResponseWriter, _ *http.Request) {
	respond.JSON(w, http.StatusOK, map[string]bool{"ok": true})
}

func base(extra ...func(http.Handler) http.Handler) *chi.Mux {
	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(extra...)

	router.Get("/health", health)

	return router
}

// New builds the contracts backend router.
func New(authV1 *auth.Handler, contractsV1 *contract.Handler, origins []string) http.Handler {
	router := base(cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		MaxAge:         300,
	}))

	router.Route("/auth", func(r chi.Router) {
		r.Use(middleware.AllowContentType("application/json"))
		authV1.Routes(r)
	})

	router.Group(func(r chi.Router) {
		r.Use(authV1.Authenticate)

		r.Get("/me", authV1.Me)
		r.Route("/contracts", contractsV1.Routes)
	})

	return router
}

// NewExtractor builds the document extraction service router.
func NewExtractor(extractV1 *extract.Handler) http.Handler {
	router := base()
	extractV1.Routes(router)

	return router
}
