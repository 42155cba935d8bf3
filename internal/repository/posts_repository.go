package repository

import (
	"context"
	"errors"
	"log"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	errorvalues "github.com/freshstart/freshstart/internal/error_values"
	"github.com/freshstart/freshstart/pkg/entity"
)

// postViewColumns joins every post row with its author's public fields.
const postViewColumns = `p.id, p.author_id, p.text, p.image_path, p.likes_count, p.comments_count, p.created_at, p.updated_at, u.username, u.profile_image`

type PostsRepository struct {
	conn PgConnection
}

func NewPostsRepo(cfg DBConfig) *PostsRepository {
	return &PostsRepository{conn: NewPool(cfg)}
}

func NewPostsRepoWithConn(conn PgConnection) *PostsRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for postsRepo: " + err.Error())
	}
	return &PostsRepository{
		conn: conn,
	}
}

func (pr *PostsRepository) Create(ctx context.Context, post *entity.Post) (int64, error) {
	var id int64
	row := pr.conn.QueryRow(
		ctx,
		`INSERT INTO posts (author_id, text, image_path) VALUES ($1, $2, $3) RETURNING id;`,
		post.AuthorID,
		post.Text,
		post.ImagePath,
	)
	if err := row.Scan(&id); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			// FK violation
			case "23503":
				return 0, errorvalues.ErrUserNotFound
			}
		}
		return 0, errors.New("creating post db error: " + err.Error())
	}
	return id, nil
}

func (pr *PostsRepository) GetByID(ctx context.Context, id int64) (*entity.Post, error) {
	var post entity.Post
	post.ID = id
	row := pr.conn.QueryRow(ctx, `SELECT author_id, text, image_path, likes_count, comments_count, created_at, updated_at FROM posts WHERE id = $1;`, id)
	err := row.Scan(&post.AuthorID, &post.Text, &post.ImagePath, &post.LikesCount, &post.CommentsCount, &post.CreatedAt, &post.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrPostNotFound
		}
		return nil, errors.New("getting post by id error: " + err.Error())
	}
	return &post, nil
}

func (pr *PostsRepository) GetViewByID(ctx context.Context, id int64) (*entity.PostView, error) {
	row := pr.conn.QueryRow(
		ctx,
		`SELECT `+postViewColumns+` FROM posts p JOIN users u ON u.id = p.author_id WHERE p.id = $1;`,
		id,
	)
	view := entity.PostView{}
	if err := scanPostView(row, &view); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrPostNotFound
		}
		return nil, errors.New("getting post view by id error: " + err.Error())
	}
	return &view, nil
}

// Feed pages over the primary key, not created_at: the id is strictly
// creation-ordered and collision-free, so pages never skip or repeat posts.
func (pr *PostsRepository) Feed(ctx context.Context, cursor int64, limit int) ([]*entity.PostView, error) {
	var (
		rows pgx.Rows
		err  error
	)
	if cursor > 0 {
		rows, err = pr.conn.Query(
			ctx,
			`SELECT `+postViewColumns+` FROM posts p JOIN users u ON u.id = p.author_id WHERE p.id < $1 ORDER BY p.id DESC LIMIT $2;`,
			cursor,
			limit,
		)
	} else {
		rows, err = pr.conn.Query(
			ctx,
			`SELECT `+postViewColumns+` FROM posts p JOIN users u ON u.id = p.author_id ORDER BY p.id DESC LIMIT $1;`,
			limit,
		)
	}
	if err != nil {
		return nil, errors.New("getting feed page error: " + err.Error())
	}
	return collectPostViews(rows)
}

func (pr *PostsRepository) GetByAuthor(ctx context.Context, authorID uuid.UUID) ([]*entity.PostView, error) {
	rows, err := pr.conn.Query(
		ctx,
		`SELECT `+postViewColumns+` FROM posts p JOIN users u ON u.id = p.author_id WHERE p.author_id = $1 ORDER BY p.id DESC;`,
		authorID,
	)
	if err != nil {
		return nil, errors.New("getting posts by author error: " + err.Error())
	}
	return collectPostViews(rows)
}

func (pr *PostsRepository) ListLatest(ctx context.Context, limit int) ([]*entity.PostView, error) {
	rows, err := pr.conn.Query(
		ctx,
		`SELECT `+postViewColumns+` FROM posts p JOIN users u ON u.id = p.author_id ORDER BY p.id DESC LIMIT $1;`,
		limit,
	)
	if err != nil {
		return nil, errors.New("listing latest posts error: " + err.Error())
	}
	return collectPostViews(rows)
}

func (pr *PostsRepository) CountByAuthor(ctx context.Context, authorID uuid.UUID) (int, error) {
	var count int
	row := pr.conn.QueryRow(ctx, `SELECT COUNT(*) FROM posts WHERE author_id = $1;`, authorID)
	if err := row.Scan(&count); err != nil {
		return 0, errors.New("counting posts by author error: " + err.Error())
	}
	return count, nil
}

func (pr *PostsRepository) Update(ctx context.Context, post *entity.Post) error {
	ct, err := pr.conn.Exec(ctx, `UPDATE posts SET text = $1, image_path = $2, updated_at = NOW() WHERE id = $3;`,
		post.Text, post.ImagePath, post.ID,
	)
	if err != nil {
		return errors.New("error updating post: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrPostNotFound
	}
	return nil
}

func (pr *PostsRepository) Delete(ctx context.Context, id int64) error {
	ct, err := pr.conn.Exec(ctx, `DELETE FROM posts WHERE id = $1;`, id)
	if err != nil {
		return errors.New("error deleting post: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrPostNotFound
	}
	return nil
}

func (pr *PostsRepository) AdjustLikesCount(ctx context.Context, id int64, delta int) error {
	ct, err := pr.conn.Exec(ctx, `UPDATE posts SET likes_count = likes_count + $1 WHERE id = $2;`, delta, id)
	if err != nil {
		return errors.New("adjusting likes count error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrPostNotFound
	}
	return nil
}

func (pr *PostsRepository) AdjustCommentsCount(ctx context.Context, id int64, delta int) error {
	ct, err := pr.conn.Exec(ctx, `UPDATE posts SET comments_count = comments_count + $1 WHERE id = $2;`, delta, id)
	if err != nil {
		return errors.New("adjusting comments count error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrPostNotFound
	}
	return nil
}

func scanPostView(row pgx.Row, view *entity.PostView) error {
	return row.Scan(
		&view.ID,
		&view.AuthorID,
		&view.Text,
		&view.ImagePath,
		&view.LikesCount,
		&view.CommentsCount,
		&view.CreatedAt,
		&view.UpdatedAt,
		&view.AuthorUsername,
		&view.AuthorProfileImage,
	)
}

func collectPostViews(rows pgx.Rows) ([]*entity.PostView, error) {
	defer rows.Close()
	views := make([]*entity.PostView, 0)
	for rows.Next() {
		v := entity.PostView{}
		if err := scanPostView(rows, &v); err != nil {
			return nil, errors.New("unmarshalling post row error: " + err.Error())
		}
		views = append(views, &v)
	}
	if rows.Err() != nil {
		return nil, errors.New("unexpected post rows error: " + rows.Err().Error())
	}
	return views, nil
}
