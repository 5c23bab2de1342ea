package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/niiakoadjei/BlogApp/internal/auth"
	"github.com/niiakoadjei/BlogApp/internal/constants"
	"github.com/niiakoadjei/BlogApp/internal/middleware"
	"github.com/niiakoadjei/BlogApp/internal/utils"
)

// routes builds the router with all middleware and endpoints.
func (s *Server) routes() http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.Recovery)
	r.Use(middleware.SecurityHeaders)
	r.Use(middleware.CORS(&s.config.CORS))
	if s.config.Logging.RequestLog {
		r.Use(middleware.Logging)
	}

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		utils.NotFound(w, "")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		utils.MethodNotAllowed(w)
	})

	r.Get(constants.HealthPath, s.handleHealth)
	r.Get("/version", s.handleVersion)

	r.Route(constants.APIBasePath, func(r chi.Router) {
		// Public authentication endpoints
		r.Route("/auth", func(r chi.Router) {
			r.Post("/signup", s.authHandler.Register)
			r.Post("/login", s.authHandler.Login)
			r.Post("/refresh", s.authHandler.RefreshToken)
			r.Post("/logout", s.authHandler.Logout)
			r.Post("/forgot-password", s.resetHandler.ForgotPassword)
			r.Post("/reset-password", s.resetHandler.ResetPassword)
		})

		// Public post reads
		r.Get("/posts", s.postHandler.ListPosts)
		r.Get("/posts/{postID}", s.postHandler.GetPost)
		r.Get("/users/{username}/posts", s.postHandler.ListUserPosts)

		// Authenticated endpoints
		r.Group(func(r chi.Router) {
			r.Use(auth.RequireAuth(s.authProvider))

			r.Route("/users/me", func(r chi.Router) {
				r.Get("/", s.userHandler.GetCurrentUser)
				r.Put("/", s.userHandler.UpdateUser)
				r.Put("/password", s.userHandler.ChangePassword)
				r.Post("/picture", s.userHandler.UploadPicture)
			})

			r.Post("/posts", s.postHandler.CreatePost)
			r.Put("/posts/{postID}", s.postHandler.UpdatePost)
			r.Delete("/posts/{postID}", s.postHandler.DeletePost)
		})
	})

	// Stored profile pictures
	fileServer := http.FileServer(http.Dir(s.config.Uploads.ImageDir))
	r.Handle("/static/images/*", http.StripPrefix("/static/images/", fileServer))

	return r
}

// handleHealth reports server and database health.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if err := s.db.HealthCheck(r.Context()); err != nil {
		utils.Error(w, http.StatusServiceUnavailable, constants.CodeInternalError,
			"Database unavailable", nil)
		return
	}

	utils.JSON(w, constants.StatusOK, map[string]string{"status": "ok"})
}

// handleVersion reports the application version.
func (s *Server) handleVersion(w http.ResponseWriter, r *http.Request) {
	utils.JSON(w, constants.StatusOK, map[string]string{
		"name":    s.config.App.Name,
		"version": s.config.App.Version,
	})
}
