package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/freshstart/freshstart/pkg/entity"
)

type UsersRepositoryI interface {
	// Creates new user in database and returns the generated id
	Create(ctx context.Context, user *entity.User) (uuid.UUID, error)
	// Looks up user by username. Used for login and public profiles
	FindByUsername(ctx context.Context, username string) (*entity.User, error)
	// Looks up user by uid
	FindByID(ctx context.Context, uid uuid.UUID) (*entity.User, error)
	// Looks up user by google account id
	FindByGoogleID(ctx context.Context, googleID string) (*entity.User, error)
	// Updates username, email and profile image
	Update(ctx context.Context, user *entity.User) error
	// Checks whether a username is already taken
	UsernameExists(ctx context.Context, username string) (bool, error)
	// Sets or clears the active quitting start date
	SetQuittingStart(ctx context.Context, uid uuid.UUID, start *time.Time) error
}

type PostsRepositoryI interface {
	// Creates a post and returns the generated id
	Create(ctx context.Context, post *entity.Post) (int64, error)
	GetByID(ctx context.Context, id int64) (*entity.Post, error)
	// Author-joined view of a single post
	GetViewByID(ctx context.Context, id int64) (*entity.PostView, error)
	// Feed page: posts with id < cursor (cursor 0 means from the top),
	// id-descending, at most limit rows, author-joined
	Feed(ctx context.Context, cursor int64, limit int) ([]*entity.PostView, error)
	// All posts of one author, id-descending, author-joined
	GetByAuthor(ctx context.Context, authorID uuid.UUID) ([]*entity.PostView, error)
	// Newest posts for the AI search corpus
	ListLatest(ctx context.Context, limit int) ([]*entity.PostView, error)
	CountByAuthor(ctx context.Context, authorID uuid.UUID) (int, error)
	Update(ctx context.Context, post *entity.Post) error
	Delete(ctx context.Context, id int64) error
	// Atomic counter adjustments, delta may be negative
	AdjustLikesCount(ctx context.Context, id int64, delta int) error
	AdjustCommentsCount(ctx context.Context, id int64, delta int) error
}

type LikesRepositoryI interface {
	// Inserts the (postID, userID) pair; the unique index makes concurrent
	// duplicates impossible
	Create(ctx context.Context, postID int64, userID uuid.UUID) error
	Delete(ctx context.Context, postID int64, userID uuid.UUID) error
	Exists(ctx context.Context, postID int64, userID uuid.UUID) (bool, error)
	CountByPost(ctx context.Context, postID int64) (int, error)
	// Which of the given posts the user liked; scans only the given ids
	LikedSet(ctx context.Context, userID uuid.UUID, postIDs []int64) (map[int64]bool, error)
}

type CommentsRepositoryI interface {
	Create(ctx context.Context, comment *entity.Comment) (int64, error)
	GetByID(ctx context.Context, id int64) (*entity.Comment, error)
	// Author-joined comments of a post, oldest first
	ListByPost(ctx context.Context, postID int64) ([]*entity.CommentView, error)
	Delete(ctx context.Context, id int64) error
}

type RefreshTokensRepositoryI interface {
	Create(ctx context.Context, token *entity.RefreshToken) error
	// Exact-value lookup; expired rows are treated as absent
	FindByToken(ctx context.Context, token string) (*entity.RefreshToken, error)
	// Idempotent: deleting an absent token is not an error
	DeleteByToken(ctx context.Context, token string) error
	DeleteExpired(ctx context.Context) (int64, error)
}

type QuittingRepositoryI interface {
	// Archives a finished attempt and returns the generated id
	AddAttempt(ctx context.Context, attempt *entity.QuittingAttempt) (int64, error)
	// Attempt history of a user, most recently finished first
	ListByUser(ctx context.Context, uid uuid.UUID) ([]*entity.QuittingAttempt, error)
}

type DBConfig interface {
	ConnString() string
}

type PgConnection interface {
	Ping(ctx context.Context) error
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Begin(ctx context.Context) (pgx.Tx, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type PGCfg struct {
	Address  string
	Username string
	Password string
	DB       string
}

func (pgcfg *PGCfg) ConnString() string {
	return fmt.Sprintf("postgresql://%s:%s@%s/%s", pgcfg.Username, pgcfg.Password, pgcfg.Address, pgcfg.DB)
}
