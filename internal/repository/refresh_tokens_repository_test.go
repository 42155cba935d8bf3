package repository_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v2"
	"github.com/stretchr/testify/assert"

	errorvalues "github.com/freshstart/freshstart/internal/error_values"
	"github.com/freshstart/freshstart/internal/repository"
	"github.com/freshstart/freshstart/pkg/entity"
)

func TestCreateRefreshToken(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	repo := repository.NewRefreshTokensRepoWithConn(mock)
	token := entity.RefreshToken{
		Token:     "signed.jwt.value",
		UserID:    uuid.New(),
		ExpiresAt: time.Now().Add(7 * 24 * time.Hour),
	}
	query := regexp.QuoteMeta(`INSERT INTO refresh_tokens (token, user_id, expires_at) VALUES ($1, $2, $3);`)
	ctx := context.Background()
	t.Run("success", func(t *testing.T) {
		mock.ExpectExec(query).
			WithArgs(token.Token, token.UserID, token.ExpiresAt).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))
		err := repo.Create(ctx, &token)
		assert.NoError(t, err)
	})
	t.Run("db error", func(t *testing.T) {
		mock.ExpectExec(query).
			WithArgs(token.Token, token.UserID, token.ExpiresAt).
			WillReturnError(errors.New("db error"))
		err := repo.Create(ctx, &token)
		assert.Error(t, err)
	})
}

func TestFindRefreshToken(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	repo := repository.NewRefreshTokensRepoWithConn(mock)
	token := entity.RefreshToken{
		ID:        1,
		Token:     "signed.jwt.value",
		UserID:    uuid.New(),
		ExpiresAt: time.Now().Add(time.Hour),
	}
	query := regexp.QuoteMeta(`SELECT id, user_id, expires_at FROM refresh_tokens WHERE token = $1 AND expires_at > NOW();`)
	ctx := context.Background()
	t.Run("success", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs(token.Token).
			WillReturnRows(pgxmock.NewRows([]string{"id", "user_id", "expires_at"}).
				AddRow(token.ID, token.UserID, token.ExpiresAt),
			)
		result, err := repo.FindByToken(ctx, token.Token)
		assert.NoError(t, err)
		assert.Equal(t, token, *result)
	})
	t.Run("unknown or expired token is absent", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs(token.Token).
			WillReturnError(pgx.ErrNoRows)
		_, err := repo.FindByToken(ctx, token.Token)
		assert.ErrorIs(t, err, errorvalues.ErrTokenNotFound)
	})
}

func TestDeleteRefreshToken(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	repo := repository.NewRefreshTokensRepoWithConn(mock)
	query := regexp.QuoteMeta(`DELETE FROM refresh_tokens WHERE token = $1;`)
	ctx := context.Background()
	t.Run("deleting an absent token succeeds", func(t *testing.T) {
		mock.ExpectExec(query).
			WithArgs("gone").
			WillReturnResult(pgxmock.NewResult("DELETE", 0))
		err := repo.DeleteByToken(ctx, "gone")
		assert.NoError(t, err)
	})
	t.Run("db error", func(t *testing.T) {
		mock.ExpectExec(query).
			WithArgs("gone").
			WillReturnError(errors.New("db error"))
		err := repo.DeleteByToken(ctx, "gone")
		assert.Error(t, err)
	})
}

func TestDeleteExpiredRefreshTokens(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	repo := repository.NewRefreshTokensRepoWithConn(mock)
	query := regexp.QuoteMeta(`DELETE FROM refresh_tokens WHERE expires_at <= NOW();`)
	ctx := context.Background()
	t.Run("reports removed rows", func(t *testing.T) {
		mock.ExpectExec(query).
			WillReturnResult(pgxmock.NewResult("DELETE", 3))
		removed, err := repo.DeleteExpired(ctx)
		assert.NoError(t, err)
		assert.Equal(t, int64(3), removed)
	})
}
