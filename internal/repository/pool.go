package repository

import (
	"context"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/freshstart/freshstart/pkg/cleanup"
)

// NewPool opens a single pgx pool shared by all repositories. The pool close
// is registered as a shutdown job.
func NewPool(cfg DBConfig) PgConnection {
	pool, err := pgxpool.New(context.Background(), cfg.ConnString())
	if err != nil {
		log.Fatal("creating pg pool error: " + err.Error())
	}
	if err := pool.Ping(context.Background()); err != nil {
		log.Fatal("error while pinging pg pool: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing pgxpool",
		F: func() error {
			pool.Close()
			return nil
		},
	})
	return pool
}
