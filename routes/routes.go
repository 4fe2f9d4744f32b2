package routes

import (
	"log/slog"
	"net/http"

	_ "github.com/Dosada05/club-records/docs"
	"github.com/Dosada05/club-records/handlers"
	"github.com/Dosada05/club-records/middleware"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"
)

func SetupRoutes(
	router *chi.Mux,
	logger *slog.Logger,
	allowedOrigins []string,
	authHandler *handlers.AuthHandler,
	playerHandler *handlers.PlayerHandler,
	matchHandler *handlers.MatchHandler,
	statHandler *handlers.StatHandler,
	reportHandler *handlers.ReportHandler,
	webSocketHandler *handlers.WebSocketHandler,
	healthHandler *handlers.HealthHandler,
) {
	router.Use(chiMiddleware.RequestID)
	router.Use(chiMiddleware.RealIP)
	router.Use(middleware.RequestLogger(logger))
	router.Use(chiMiddleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-Request-Id"},
		ExposedHeaders:   []string{"X-Request-Id"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	router.Get("/healthz", healthHandler.Health)
	router.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	router.Post("/login", authHandler.Login)

	router.Route("/players", func(r chi.Router) {
		r.Post("/", playerHandler.Register)
		r.Get("/", playerHandler.ListPlayers)
		r.Route("/{playerID}", func(r chi.Router) {
			r.Get("/", playerHandler.GetPlayerByID)
			r.Post("/photo", playerHandler.UploadPhoto)
		})
	})

	router.Route("/matches", func(r chi.Router) {
		r.Get("/", matchHandler.ListMatches)
		r.Post("/", matchHandler.CreateMatch)
		r.Get("/past", matchHandler.ListPastMatches)
		r.Get("/upcoming", matchHandler.ListUpcomingMatches)
		r.Route("/{matchID}", func(r chi.Router) {
			r.Get("/", matchHandler.GetMatchByID)
			r.Put("/", matchHandler.UpdateMatch)
			r.Get("/stats", reportHandler.MatchDetail)
		})
	})

	router.Route("/stats", func(r chi.Router) {
		r.Get("/", statHandler.ListStats)
		r.Post("/", statHandler.RecordStat)
		r.Get("/form-options", statHandler.FormOptions)
	})

	router.Route("/reports", func(r chi.Router) {
		r.Get("/summary", reportHandler.Summary)
		r.Get("/locations", reportHandler.Locations)
		r.Get("/players", reportHandler.Players)
		r.Get("/overview", reportHandler.Overview)
	})

	router.Route("/ws", func(r chi.Router) {
		r.Get("/fixtures", webSocketHandler.ServeFixtures)
		r.Get("/matches/{matchID}", webSocketHandler.ServeMatch)
	})
}
