package repository

import (
	"context"
	"errors"
	"log"

	"github.com/jackc/pgx/v5"

	errorvalues "github.com/freshstart/freshstart/internal/error_values"
	"github.com/freshstart/freshstart/pkg/entity"
)

type RefreshTokensRepository struct {
	conn PgConnection
}

func NewRefreshTokensRepo(cfg DBConfig) *RefreshTokensRepository {
	return &RefreshTokensRepository{conn: NewPool(cfg)}
}

func NewRefreshTokensRepoWithConn(conn PgConnection) *RefreshTokensRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for refreshTokensRepo: " + err.Error())
	}
	return &RefreshTokensRepository{
		conn: conn,
	}
}

func (rr *RefreshTokensRepository) Create(ctx context.Context, token *entity.RefreshToken) error {
	_, err := rr.conn.Exec(
		ctx,
		`INSERT INTO refresh_tokens (token, user_id, expires_at) VALUES ($1, $2, $3);`,
		token.Token,
		token.UserID,
		token.ExpiresAt,
	)
	if err != nil {
		return errors.New("creating refresh token db error: " + err.Error())
	}
	return nil
}

// FindByToken ignores expired rows so a stale token behaves exactly like a
// never-issued one even before the cleanup job removes it.
func (rr *RefreshTokensRepository) FindByToken(ctx context.Context, token string) (*entity.RefreshToken, error) {
	var rt entity.RefreshToken
	rt.Token = token
	row := rr.conn.QueryRow(
		ctx,
		`SELECT id, user_id, expires_at FROM refresh_tokens WHERE token = $1 AND expires_at > NOW();`,
		token,
	)
	err := row.Scan(&rt.ID, &rt.UserID, &rt.ExpiresAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrTokenNotFound
		}
		return nil, errors.New("finding refresh token error: " + err.Error())
	}
	return &rt, nil
}

// DeleteByToken is idempotent: removing a token that is already gone is not
// an error, logout must succeed either way.
func (rr *RefreshTokensRepository) DeleteByToken(ctx context.Context, token string) error {
	_, err := rr.conn.Exec(ctx, `DELETE FROM refresh_tokens WHERE token = $1;`, token)
	if err != nil {
		return errors.New("deleting refresh token db error: " + err.Error())
	}
	return nil
}

func (rr *RefreshTokensRepository) DeleteExpired(ctx context.Context) (int64, error) {
	ct, err := rr.conn.Exec(ctx, `DELETE FROM refresh_tokens WHERE expires_at <= NOW();`)
	if err != nil {
		return 0, errors.New("deleting expired refresh tokens error: " + err.Error())
	}
	return ct.RowsAffected(), nil
}
