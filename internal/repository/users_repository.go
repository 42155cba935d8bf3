package repository

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	errorvalues "github.com/freshstart/freshstart/internal/error_values"
	"github.com/freshstart/freshstart/pkg/entity"
)

const userColumns = `id, username, email, password_hash, google_id, profile_image, quitting_start_date, created_at, updated_at`

type UsersRepository struct {
	conn PgConnection
}

func NewUsersRepo(cfg DBConfig) *UsersRepository {
	return &UsersRepository{conn: NewPool(cfg)}
}

func NewUsersRepoWithConn(conn PgConnection) *UsersRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for usersRepo: " + err.Error())
	}
	return &UsersRepository{
		conn: conn,
	}
}

func (ur *UsersRepository) Create(ctx context.Context, user *entity.User) (uuid.UUID, error) {
	if user == nil {
		return uuid.UUID{}, errors.New("user is nil")
	}
	var id uuid.UUID
	row := ur.conn.QueryRow(
		ctx,
		`INSERT INTO users (username, email, password_hash, google_id, profile_image) VALUES ($1, $2, NULLIF($3, ''), NULLIF($4, ''), $5) RETURNING id;`,
		user.Username,
		user.Email,
		user.PasswordHash,
		user.GoogleID,
		user.ProfileImage,
	)
	if err := row.Scan(&id); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			// Unique violation
			case "23505":
				return uuid.UUID{}, errorvalues.ErrUserExists
			}
		}
		return uuid.UUID{}, errors.New("creating user db error: " + err.Error())
	}
	return id, nil
}

func (ur *UsersRepository) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	row := ur.conn.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE username = $1;`, username)
	return scanUser(row, "searching user by username error: ")
}

func (ur *UsersRepository) FindByID(ctx context.Context, uid uuid.UUID) (*entity.User, error) {
	row := ur.conn.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1;`, uid)
	return scanUser(row, "searching user by id error: ")
}

func (ur *UsersRepository) FindByGoogleID(ctx context.Context, googleID string) (*entity.User, error) {
	row := ur.conn.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE google_id = $1;`, googleID)
	return scanUser(row, "searching user by google id error: ")
}

func (ur *UsersRepository) Update(ctx context.Context, user *entity.User) error {
	ct, err := ur.conn.Exec(ctx, `UPDATE users SET username = $1, email = $2, profile_image = $3, updated_at = NOW() WHERE id = $4;`,
		user.Username,
		user.Email,
		user.ProfileImage,
		user.ID,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return errorvalues.ErrUserExists
		}
		return errors.New("updating user error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrUserNotFound
	}
	return nil
}

func (ur *UsersRepository) UsernameExists(ctx context.Context, username string) (bool, error) {
	var exists bool
	row := ur.conn.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM users WHERE username = $1);`, username)
	if err := row.Scan(&exists); err != nil {
		return false, errors.New("inspecting if username exists error: " + err.Error())
	}
	return exists, nil
}

func (ur *UsersRepository) SetQuittingStart(ctx context.Context, uid uuid.UUID, start *time.Time) error {
	ct, err := ur.conn.Exec(ctx, `UPDATE users SET quitting_start_date = $1, updated_at = NOW() WHERE id = $2;`, start, uid)
	if err != nil {
		return errors.New("updating quitting start error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrUserNotFound
	}
	return nil
}

func scanUser(row pgx.Row, errPrefix string) (*entity.User, error) {
	var (
		user         entity.User
		email        *string
		passwordHash *string
		googleID     *string
	)
	err := row.Scan(
		&user.ID,
		&user.Username,
		&email,
		&passwordHash,
		&googleID,
		&user.ProfileImage,
		&user.QuittingStartDate,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrUserNotFound
		}
		return nil, errors.New(errPrefix + err.Error())
	}
	if email != nil {
		user.Email = *email
	}
	if passwordHash != nil {
		user.PasswordHash = *passwordHash
	}
	if googleID != nil {
		user.GoogleID = *googleID
	}
	return &user, nil
}
