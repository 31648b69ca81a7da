package routes

import (
	"github.com/Dosada05/recruiting-platform/handlers"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

func SetupRoutes(
	router *chi.Mux,
	allowedOrigin string,
	registrationHandler *handlers.RegistrationHandler,
	mediaHandler *handlers.MediaHandler,
	dashboardHandler *handlers.DashboardHandler,
	healthHandler *handlers.HealthHandler,
	webSocketHandler *handlers.WebSocketHandler,
) {
	router.Use(chiMiddleware.RequestID)
	router.Use(chiMiddleware.RealIP)
	router.Use(chiMiddleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{allowedOrigin},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	router.Get("/health", healthHandler.Check)

	router.Route("/api", func(r chi.Router) {
		r.Post("/players/register", registrationHandler.RegisterPlayer)
		r.Post("/coaches/register", registrationHandler.RegisterCoach)

		r.Post("/players/{playerID}/photo", mediaHandler.UploadPlayerPhoto)

		r.Get("/admin/stats", dashboardHandler.GetStats)
	})

	router.Get("/ws/registrations", webSocketHandler.ServeWs)
}
