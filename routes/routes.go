package routes

import (
	"log/slog"
	"net/http"
	"time"

	_ "github.com/Dosada05/tournament-finder/docs" // swagger spec
	"github.com/Dosada05/tournament-finder/handlers"
	"github.com/Dosada05/tournament-finder/middleware"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware" // Alias to avoid conflict
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"
)

func SetupRoutes(
	router chi.Router,
	logger *slog.Logger,
	allowedOrigins []string,
	healthHandler *handlers.HealthHandler,
	tournamentHandler *handlers.TournamentHandler,
	registrationHandler *handlers.RegistrationHandler,
	sessionHandler *handlers.SessionHandler,
	webSocketHandler *handlers.WebSocketHandler,
) {
	router.Use(chiMiddleware.RequestID)
	router.Use(chiMiddleware.RealIP)
	router.Use(middleware.RequestLogger(logger))
	router.Use(chiMiddleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-Request-Id"},
		ExposedHeaders:   []string{"X-Request-Id"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	router.Get("/healthz", healthHandler.HealthzHandler)
	router.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	// Websocket upgrades must not run under a request timeout.
	router.Route("/ws/tournaments", func(r chi.Router) {
		r.Get("/", webSocketHandler.ServeWs)
		r.Get("/{tournamentID}", webSocketHandler.ServeWs)
	})

	router.Group(func(r chi.Router) {
		r.Use(chiMiddleware.Timeout(30 * time.Second))

		r.Route("/tournaments", func(r chi.Router) {
			r.Get("/", tournamentHandler.ListHandler)
			r.Post("/refresh", tournamentHandler.RefreshHandler)
			r.Route("/{tournamentID}", func(r chi.Router) {
				r.Get("/", tournamentHandler.GetByIDHandler)
				r.Post("/registrations", registrationHandler.RegisterHandler)
			})
		})

		r.Get("/registrations/verify", registrationHandler.VerifyHandler)

		r.Route("/sessions", func(r chi.Router) {
			r.Post("/", sessionHandler.CreateHandler)
			r.Route("/{sessionID}", func(r chi.Router) {
				r.Get("/", sessionHandler.GetHandler)
				r.Delete("/", sessionHandler.DeleteHandler)
				r.Put("/filters", sessionHandler.SetFiltersHandler)
				r.Delete("/filters", sessionHandler.ClearFiltersHandler)
				r.Delete("/filters/{kind}", sessionHandler.RemoveFilterHandler)
				r.Put("/sort", sessionHandler.SetSortHandler)
			})
		})
	})
}
