package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/freshstart/freshstart/internal/service"
	"github.com/freshstart/freshstart/pkg/cleanup"
)

type Server struct {
	mx              *chi.Mux
	authService     service.AuthServiceI
	postsService    service.PostsServiceI
	likesService    service.LikesServiceI
	commentsService service.CommentsServiceI
	userService     service.UserServiceI
	quittingService service.QuittingServiceI
	searchService   service.SearchServiceI
	jwtService      JWTServiceI
}

type ServicesList struct {
	AuthService     service.AuthServiceI
	PostsService    service.PostsServiceI
	LikesService    service.LikesServiceI
	CommentsService service.CommentsServiceI
	UserService     service.UserServiceI
	QuittingService service.QuittingServiceI
	SearchService   service.SearchServiceI
	JwtService      JWTServiceI
}

func New(servicesOptions *ServicesList) *Server {
	return &Server{
		mx:              chi.NewMux(),
		authService:     servicesOptions.AuthService,
		postsService:    servicesOptions.PostsService,
		likesService:    servicesOptions.LikesService,
		commentsService: servicesOptions.CommentsService,
		userService:     servicesOptions.UserService,
		quittingService: servicesOptions.QuittingService,
		searchService:   servicesOptions.SearchService,
		jwtService:      servicesOptions.JwtService,
	}
}

func (s *Server) registerRoutes() {
	s.mx.Use(s.RequestIDMiddleware)
	s.mx.Use(s.SettingUpLoggerMiddleware)
	s.mx.Route("/api/v1", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", s.Register)
			r.Post("/login", s.Login)
			r.Post("/google", s.GoogleLogin)
			r.Post("/refresh", s.Refresh)
			r.Post("/logout", s.Logout)
		})
		r.Group(func(r chi.Router) {
			r.Use(s.AuthMiddleware)
			r.Use(s.LoggerExtensionMiddleware)
			r.Route("/posts", func(r chi.Router) {
				r.Post("/", s.CreatePost)
				r.Get("/feed", s.GetFeed)
				r.Get("/{id}", s.GetPost)
				r.Put("/{id}", s.UpdatePost)
				r.Delete("/{id}", s.DeletePost)
			})
			r.Route("/likes", func(r chi.Router) {
				r.Post("/{postId}", s.LikePost)
				r.Delete("/{postId}", s.UnlikePost)
				r.Get("/{postId}", s.GetLikeInfo)
			})
			r.Route("/comments", func(r chi.Router) {
				r.Post("/{postId}", s.CreateComment)
				r.Get("/{postId}", s.GetComments)
				r.Delete("/{id}", s.DeleteComment)
			})
			r.Route("/users", func(r chi.Router) {
				r.Put("/me/update", s.UpdateProfile)
				r.Get("/{username}", s.GetProfile)
				r.Get("/{username}/posts", s.GetUserPosts)
			})
			r.Route("/quitting", func(r chi.Router) {
				r.Get("/stats", s.GetQuittingStats)
				r.Post("/start", s.StartQuitting)
				r.Post("/stop", s.StopQuitting)
				r.Put("/update-date", s.UpdateQuittingDate)
				r.Get("/history", s.GetQuittingHistory)
				r.Get("/{userId}/stats", s.GetUserQuittingStats)
				r.Get("/{userId}/history", s.GetUserQuittingHistory)
			})
			r.Get("/ai/search", s.SearchPosts)
		})
	})
}

// Run serves until SIGINT or SIGTERM, then drains in-flight requests and
// fires registered cleanup jobs.
func (s *Server) Run(address string) error {
	s.registerRoutes()
	httpServer := &http.Server{
		Addr:    address,
		Handler: s.mx,
	}
	errCh := make(chan error, 1)
	go func() {
		slog.Info("starting server", slog.String("address", address))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	select {
	case err := <-errCh:
		cleanup.CleanUp()
		return err
	case sig := <-stop:
		slog.Info("shutting down", slog.String("signal", sig.String()))
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*15)
	defer cancel()
	err := httpServer.Shutdown(ctx)
	cleanup.CleanUp()
	return err
}
