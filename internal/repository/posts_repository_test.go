package repository_test

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v2"
	"github.com/stretchr/testify/assert"

	errorvalues "github.com/freshstart/freshstart/internal/error_values"
	"github.com/freshstart/freshstart/internal/repository"
	"github.com/freshstart/freshstart/pkg/entity"
)

const postViewColumnsList = "p.id, p.author_id, p.text, p.image_path, p.likes_count, p.comments_count, p.created_at, p.updated_at, u.username, u.profile_image"

var postViewColumnNames = []string{"id", "author_id", "text", "image_path", "likes_count", "comments_count", "created_at", "updated_at", "username", "profile_image"}

func newPostView(id int64, authorID uuid.UUID, text string) *entity.PostView {
	return &entity.PostView{
		Post: entity.Post{
			ID:        id,
			AuthorID:  authorID,
			Text:      text,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		AuthorUsername: "author_name",
	}
}

func addPostViewRow(rows *pgxmock.Rows, v *entity.PostView) {
	rows.AddRow(v.ID, v.AuthorID, v.Text, v.ImagePath, v.LikesCount, v.CommentsCount, v.CreatedAt, v.UpdatedAt, v.AuthorUsername, v.AuthorProfileImage)
}

func TestCreatePost(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	repo := repository.NewPostsRepoWithConn(mock)
	post := entity.Post{
		AuthorID: uuid.New(),
		Text:     "first smoke-free day",
	}
	ctx := context.Background()
	query := regexp.QuoteMeta(`INSERT INTO posts (author_id, text, image_path) VALUES ($1, $2, $3) RETURNING id;`)
	t.Run("successfully created", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs(post.AuthorID, post.Text, post.ImagePath).
			WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(7)))
		id, err := repo.Create(ctx, &post)
		assert.NoError(t, err)
		assert.Equal(t, int64(7), id)
	})
	t.Run("unknown author", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs(post.AuthorID, post.Text, post.ImagePath).
			WillReturnError(&pgconn.PgError{Code: "23503"})
		_, err := repo.Create(ctx, &post)
		assert.ErrorIs(t, err, errorvalues.ErrUserNotFound)
	})
	t.Run("db error", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs(post.AuthorID, post.Text, post.ImagePath).
			WillReturnError(errors.New("db error"))
		_, err := repo.Create(ctx, &post)
		assert.Error(t, err)
	})
}

func TestGetPostByID(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	repo := repository.NewPostsRepoWithConn(mock)
	post := entity.Post{
		ID:        3,
		AuthorID:  uuid.New(),
		Text:      "day three",
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	query := regexp.QuoteMeta(`SELECT author_id, text, image_path, likes_count, comments_count, created_at, updated_at FROM posts WHERE id = $1;`)
	ctx := context.Background()
	t.Run("success", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs(post.ID).
			WillReturnRows(pgxmock.NewRows([]string{"author_id", "text", "image_path", "likes_count", "comments_count", "created_at", "updated_at"}).
				AddRow(post.AuthorID, post.Text, post.ImagePath, post.LikesCount, post.CommentsCount, post.CreatedAt, post.UpdatedAt),
			)
		result, err := repo.GetByID(ctx, post.ID)
		assert.NoError(t, err)
		assert.Equal(t, post, *result)
	})
	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs(post.ID).
			WillReturnError(pgx.ErrNoRows)
		_, err := repo.GetByID(ctx, post.ID)
		assert.ErrorIs(t, err, errorvalues.ErrPostNotFound)
	})
}

func TestFeed(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	repo := repository.NewPostsRepoWithConn(mock)
	authorID := uuid.New()
	firstPageQuery := regexp.QuoteMeta(`SELECT ` + postViewColumnsList + ` FROM posts p JOIN users u ON u.id = p.author_id ORDER BY p.id DESC LIMIT $1;`)
	cursorPageQuery := regexp.QuoteMeta(`SELECT ` + postViewColumnsList + ` FROM posts p JOIN users u ON u.id = p.author_id WHERE p.id < $1 ORDER BY p.id DESC LIMIT $2;`)
	ctx := context.Background()
	t.Run("first page without cursor", func(t *testing.T) {
		rows := pgxmock.NewRows(postViewColumnNames)
		for _, id := range []int64{5, 4} {
			addPostViewRow(rows, newPostView(id, authorID, fmt.Sprintf("post %d", id)))
		}
		mock.ExpectQuery(firstPageQuery).
			WithArgs(2).
			WillReturnRows(rows)
		result, err := repo.Feed(ctx, 0, 2)
		assert.NoError(t, err)
		assert.Equal(t, 2, len(result))
		assert.Equal(t, int64(5), result[0].ID)
		assert.Equal(t, int64(4), result[1].ID)
	})
	t.Run("page after cursor", func(t *testing.T) {
		rows := pgxmock.NewRows(postViewColumnNames)
		addPostViewRow(rows, newPostView(3, authorID, "post 3"))
		mock.ExpectQuery(cursorPageQuery).
			WithArgs(int64(4), 2).
			WillReturnRows(rows)
		result, err := repo.Feed(ctx, 4, 2)
		assert.NoError(t, err)
		assert.Equal(t, 1, len(result))
		assert.Equal(t, int64(3), result[0].ID)
	})
	t.Run("empty page", func(t *testing.T) {
		mock.ExpectQuery(cursorPageQuery).
			WithArgs(int64(1), 2).
			WillReturnRows(pgxmock.NewRows(postViewColumnNames))
		result, err := repo.Feed(ctx, 1, 2)
		assert.NoError(t, err)
		assert.Equal(t, 0, len(result))
	})
	t.Run("db error", func(t *testing.T) {
		mock.ExpectQuery(firstPageQuery).
			WithArgs(10).
			WillReturnError(errors.New("db error"))
		_, err := repo.Feed(ctx, 0, 10)
		assert.Error(t, err)
	})
}

func TestUpdatePost(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	repo := repository.NewPostsRepoWithConn(mock)
	query := regexp.QuoteMeta(`UPDATE posts SET text = $1, image_path = $2, updated_at = NOW() WHERE id = $3;`)
	post := entity.Post{
		ID:   2,
		Text: "edited",
	}
	ctx := context.Background()
	t.Run("success", func(t *testing.T) {
		mock.ExpectExec(query).
			WithArgs(post.Text, post.ImagePath, post.ID).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		err := repo.Update(ctx, &post)
		assert.NoError(t, err)
	})
	t.Run("not found", func(t *testing.T) {
		mock.ExpectExec(query).
			WithArgs(post.Text, post.ImagePath, post.ID).
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))
		err := repo.Update(ctx, &post)
		assert.ErrorIs(t, err, errorvalues.ErrPostNotFound)
	})
}

func TestAdjustCounters(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	repo := repository.NewPostsRepoWithConn(mock)
	likesQuery := regexp.QuoteMeta(`UPDATE posts SET likes_count = likes_count + $1 WHERE id = $2;`)
	commentsQuery := regexp.QuoteMeta(`UPDATE posts SET comments_count = comments_count + $1 WHERE id = $2;`)
	ctx := context.Background()
	t.Run("likes increment", func(t *testing.T) {
		mock.ExpectExec(likesQuery).
			WithArgs(1, int64(9)).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		err := repo.AdjustLikesCount(ctx, 9, 1)
		assert.NoError(t, err)
	})
	t.Run("likes decrement", func(t *testing.T) {
		mock.ExpectExec(likesQuery).
			WithArgs(-1, int64(9)).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		err := repo.AdjustLikesCount(ctx, 9, -1)
		assert.NoError(t, err)
	})
	t.Run("comments increment on unknown post", func(t *testing.T) {
		mock.ExpectExec(commentsQuery).
			WithArgs(1, int64(9)).
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))
		err := repo.AdjustCommentsCount(ctx, 9, 1)
		assert.ErrorIs(t, err, errorvalues.ErrPostNotFound)
	})
}
