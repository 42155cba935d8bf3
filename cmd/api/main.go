package main

import (
	"context"
	"log"
	"log/slog"
	"time"

	"github.com/freshstart/freshstart/internal/aiclient"
	"github.com/freshstart/freshstart/internal/api"
	"github.com/freshstart/freshstart/internal/repository"
	"github.com/freshstart/freshstart/internal/service"
	"github.com/freshstart/freshstart/pkg/cleanup"
	"github.com/freshstart/freshstart/pkg/config"
	jwtservice "github.com/freshstart/freshstart/pkg/jwt_service"
)

const refreshTokenGCInterval = time.Hour

func init() {
	service.InitValidator()
}

func main() {
	cfg := config.New()
	dbCfg := repository.PGCfg{
		Address:  cfg.GetString("POSTGRES_DB_ADDRESS"),
		Username: cfg.GetString("POSTGRES_USER"),
		Password: cfg.GetString("POSTGRES_PASSWORD"),
		DB:       cfg.GetString("POSTGRES_DB"),
	}
	pool := repository.NewPool(&dbCfg)

	usersRepo := repository.NewUsersRepoWithConn(pool)
	postsRepo := repository.NewPostsRepoWithConn(pool)
	likesRepo := repository.NewLikesRepoWithConn(pool)
	commentsRepo := repository.NewCommentsRepoWithConn(pool)
	refreshRepo := repository.NewRefreshTokensRepoWithConn(pool)
	quittingRepo := repository.NewQuittingRepoWithConn(pool)

	jwtService := jwtservice.New(
		cfg.GetString("JWT_ACCESS_SECRET"),
		cfg.GetString("JWT_REFRESH_SECRET"),
	)
	authService := service.NewAuthService(usersRepo, refreshRepo, jwtService, service.GoogleOAuthConfig{
		ClientID:     cfg.GetStringOr("GOOGLE_CLIENT_ID", ""),
		ClientSecret: cfg.GetStringOr("GOOGLE_CLIENT_SECRET", ""),
		RedirectURL:  cfg.GetStringOr("GOOGLE_REDIRECT_URL", ""),
	})
	completer := aiclient.New(aiclient.Config{
		APIKey:  cfg.GetStringOr("OPENAI_API_KEY", ""),
		BaseURL: cfg.GetStringOr("OPENAI_BASE_URL", ""),
		Model:   cfg.GetStringOr("OPENAI_MODEL", "gpt-3.5-turbo"),
	})

	startRefreshTokenGC(refreshRepo)

	serv := api.New(&api.ServicesList{
		AuthService:     authService,
		PostsService:    service.NewPostsService(postsRepo, likesRepo, usersRepo),
		LikesService:    service.NewLikesService(likesRepo, postsRepo),
		CommentsService: service.NewCommentsService(commentsRepo, postsRepo, usersRepo),
		UserService:     service.NewUserService(usersRepo, postsRepo),
		QuittingService: service.NewQuittingService(usersRepo, quittingRepo),
		SearchService:   service.NewSearchService(postsRepo, likesRepo, completer),
		JwtService:      jwtService,
	})
	err := serv.Run(cfg.GetStringOr("API_ADDRESS", ":8080"))
	if err != nil {
		log.Println("Server error: " + err.Error())
	}
}

// startRefreshTokenGC sweeps expired refresh tokens in the background. The
// lookup query already filters on expiry, the sweep only keeps the table
// from growing one row per login forever.
func startRefreshTokenGC(repo repository.RefreshTokensRepositoryI) {
	ticker := time.NewTicker(refreshTokenGCInterval)
	done := make(chan struct{})
	go func() {
		for {
			select {
			case <-ticker.C:
				ctx, cancel := context.WithTimeout(context.Background(), time.Second*30)
				removed, err := repo.DeleteExpired(ctx)
				cancel()
				if err != nil {
					slog.Error("refresh token gc error", slog.String("error", err.Error()))
					continue
				}
				if removed > 0 {
					slog.Info("refresh token gc", slog.Int64("removed", removed))
				}
			case <-done:
				return
			}
		}
	}()
	cleanup.Register(&cleanup.Job{
		Name: "refresh token gc",
		F: func() error {
			ticker.Stop()
			close(done)
			return nil
		},
	})
}
