package repository

import (
	"context"
	"errors"
	"log"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	errorvalues "github.com/freshstart/freshstart/internal/error_values"
)

type LikesRepository struct {
	conn PgConnection
}

func NewLikesRepo(cfg DBConfig) *LikesRepository {
	return &LikesRepository{conn: NewPool(cfg)}
}

func NewLikesRepoWithConn(conn PgConnection) *LikesRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for likesRepo: " + err.Error())
	}
	return &LikesRepository{
		conn: conn,
	}
}

// Create relies on the (post_id, user_id) primary key to reject a second
// like instead of a read-then-write check.
func (lr *LikesRepository) Create(ctx context.Context, postID int64, userID uuid.UUID) error {
	_, err := lr.conn.Exec(ctx, `INSERT INTO post_likes (post_id, user_id) VALUES ($1, $2);`, postID, userID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			// unique violation
			case "23505":
				return errorvalues.ErrAlreadyLiked
			// FK violation
			case "23503":
				return errorvalues.ErrPostNotFound
			}
		}
		return errors.New("creating like db error: " + err.Error())
	}
	return nil
}

func (lr *LikesRepository) Delete(ctx context.Context, postID int64, userID uuid.UUID) error {
	ct, err := lr.conn.Exec(ctx, `DELETE FROM post_likes WHERE post_id = $1 AND user_id = $2;`, postID, userID)
	if err != nil {
		return errors.New("deleting like db error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrLikeNotFound
	}
	return nil
}

func (lr *LikesRepository) Exists(ctx context.Context, postID int64, userID uuid.UUID) (bool, error) {
	var exists bool
	row := lr.conn.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM post_likes WHERE post_id = $1 AND user_id = $2);`, postID, userID)
	if err := row.Scan(&exists); err != nil {
		return false, errors.New("checking like existence error: " + err.Error())
	}
	return exists, nil
}

func (lr *LikesRepository) CountByPost(ctx context.Context, postID int64) (int, error) {
	var count int
	row := lr.conn.QueryRow(ctx, `SELECT COUNT(*) FROM post_likes WHERE post_id = $1;`, postID)
	if err := row.Scan(&count); err != nil {
		return 0, errors.New("counting likes error: " + err.Error())
	}
	return count, nil
}

// LikedSet answers "which of these posts did this user like" for a single
// feed page, so the page needs one query instead of one per post.
func (lr *LikesRepository) LikedSet(ctx context.Context, userID uuid.UUID, postIDs []int64) (map[int64]bool, error) {
	liked := make(map[int64]bool, len(postIDs))
	if len(postIDs) == 0 {
		return liked, nil
	}
	rows, err := lr.conn.Query(ctx, `SELECT post_id FROM post_likes WHERE user_id = $1 AND post_id = ANY($2);`, userID, postIDs)
	if err != nil {
		return nil, errors.New("getting liked set error: " + err.Error())
	}
	defer rows.Close()
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, errors.New("unmarshalling liked row error: " + err.Error())
		}
		liked[id] = true
	}
	if rows.Err() != nil {
		return nil, errors.New("unexpected liked rows error: " + rows.Err().Error())
	}
	return liked, nil
}
