package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jobportal/jobportal-go/internal/crypto"
	"github.com/jobportal/jobportal-go/internal/handler"
	"github.com/jobportal/jobportal-go/internal/middleware"
	"github.com/jobportal/jobportal-go/internal/service"
)

// Deps holds everything the HTTP layer needs.
type Deps struct {
	DB     handler.Pinger
	Tokens *crypto.TokenIssuer
	Auth   *service.AuthService
	Users  *service.UserService
	Jobs   *service.JobService

	// AuthRatePerSecond and AuthRateBurst limit register and login per client IP.
	AuthRatePerSecond float64
	AuthRateBurst     int
}

// New builds the API router. Every API route lives under /api/v1.
func New(d Deps) http.Handler {
	authHandler := handler.NewAuthHandler(d.Auth)
	userHandler := handler.NewUserHandler(d.Users)
	jobHandler := handler.NewJobHandler(d.Jobs)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recovery)

	r.NotFound(handler.NotFound)
	r.MethodNotAllowed(handler.MethodNotAllowed)

	r.Get("/health", handler.Health(d.DB))

	r.Route("/api/v1", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(middleware.RateLimit(d.AuthRatePerSecond, d.AuthRateBurst))
			r.Post("/auth/register", authHandler.HandleRegister)
			r.Post("/auth/login", authHandler.HandleLogin)
		})

		r.Group(func(r chi.Router) {
			r.Use(middleware.JWTAuth(d.Tokens))

			r.Get("/auth/me", authHandler.HandleMe)
			r.Put("/user/update-user", userHandler.HandleUpdateUser)

			r.Post("/job/create-job", jobHandler.HandleCreateJob)
			r.Get("/job/get-job", jobHandler.HandleListJobs)
			r.Patch("/job/update-job/{id}", jobHandler.HandleUpdateJob)
			r.Delete("/job/delete-job/{id}", jobHandler.HandleDeleteJob)
			r.Get("/job/job-stats", jobHandler.HandleJobStats)

			r.Post("/test/test-post", handler.HandleTestPost)
		})
	})

	return r
}
