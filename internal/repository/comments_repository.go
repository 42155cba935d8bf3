package repository

import (
	"context"
	"errors"
	"log"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	errorvalues "github.com/freshstart/freshstart/internal/error_values"
	"github.com/freshstart/freshstart/pkg/entity"
)

type CommentsRepository struct {
	conn PgConnection
}

func NewCommentsRepo(cfg DBConfig) *CommentsRepository {
	return &CommentsRepository{conn: NewPool(cfg)}
}

func NewCommentsRepoWithConn(conn PgConnection) *CommentsRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for commentsRepo: " + err.Error())
	}
	return &CommentsRepository{
		conn: conn,
	}
}

func (cr *CommentsRepository) Create(ctx context.Context, comment *entity.Comment) (int64, error) {
	var id int64
	row := cr.conn.QueryRow(
		ctx,
		`INSERT INTO comments (post_id, author_id, text) VALUES ($1, $2, $3) RETURNING id;`,
		comment.PostID,
		comment.AuthorID,
		comment.Text,
	)
	if err := row.Scan(&id); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			// FK violation
			case "23503":
				return 0, errorvalues.ErrPostNotFound
			}
		}
		return 0, errors.New("creating comment db error: " + err.Error())
	}
	return id, nil
}

func (cr *CommentsRepository) GetByID(ctx context.Context, id int64) (*entity.Comment, error) {
	var comment entity.Comment
	comment.ID = id
	row := cr.conn.QueryRow(ctx, `SELECT post_id, author_id, text, created_at FROM comments WHERE id = $1;`, id)
	err := row.Scan(&comment.PostID, &comment.AuthorID, &comment.Text, &comment.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrCommentNotFound
		}
		return nil, errors.New("getting comment by id error: " + err.Error())
	}
	return &comment, nil
}

func (cr *CommentsRepository) ListByPost(ctx context.Context, postID int64) ([]*entity.CommentView, error) {
	rows, err := cr.conn.Query(
		ctx,
		`SELECT c.id, c.post_id, c.author_id, c.text, c.created_at, u.username, u.profile_image
		 FROM comments c JOIN users u ON u.id = c.author_id
		 WHERE c.post_id = $1 ORDER BY c.id ASC;`,
		postID,
	)
	if err != nil {
		return nil, errors.New("listing comments error: " + err.Error())
	}
	defer rows.Close()
	views := make([]*entity.CommentView, 0)
	for rows.Next() {
		v := entity.CommentView{}
		err := rows.Scan(&v.ID, &v.PostID, &v.AuthorID, &v.Text, &v.CreatedAt, &v.AuthorUsername, &v.AuthorProfileImage)
		if err != nil {
			return nil, errors.New("unmarshalling comment row error: " + err.Error())
		}
		views = append(views, &v)
	}
	if rows.Err() != nil {
		return nil, errors.New("unexpected comment rows error: " + rows.Err().Error())
	}
	return views, nil
}

func (cr *CommentsRepository) Delete(ctx context.Context, id int64) error {
	ct, err := cr.conn.Exec(ctx, `DELETE FROM comments WHERE id = $1;`, id)
	if err != nil {
		return errors.New("deleting comment db error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrCommentNotFound
	}
	return nil
}
