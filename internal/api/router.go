package api

import (
	"net/http"
	"time"

	"casthub/internal/api/handler"
	"casthub/internal/api/middleware"
	"casthub/internal/app/service"
	"casthub/internal/common/security"
	"casthub/internal/domain/repository"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/jwtauth/v5"
)

func NewRouter(
	authService *service.AuthService,
	podcastService *service.PodcastService,
	episodeService *service.EpisodeService,
	userRepo repository.UserRepository,
) http.Handler {
	r := chi.NewRouter()

	// Base Middlewares
	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.RealIP)
	r.Use(chiMiddleware.Logger) // Chi's logger
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Timeout(60 * time.Second))

	// Token extraction and signature verification ("Authorization: Bearer T");
	// identity resolution against the credential store follows it, so every
	// handler sees either a resolved caller or none at all.
	r.Use(jwtauth.Verifier(security.TokenAuth))
	r.Use(middleware.Identity(userRepo))

	// Public health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	// API v1 Routes
	r.Route("/api/v1", func(v1 chi.Router) {
		userHandler := handler.NewUserHandler(authService)
		v1.Route("/users", userHandler.RegisterRoutes)

		podcastHandler := handler.NewPodcastHandler(podcastService)
		episodeHandler := handler.NewEpisodeHandler(episodeService)
		v1.Route("/podcasts", func(pr chi.Router) {
			podcastHandler.RegisterRoutes(pr)
			pr.Route("/{podcastID}/episodes", episodeHandler.RegisterRoutes)
		})
	})

	return r
}
