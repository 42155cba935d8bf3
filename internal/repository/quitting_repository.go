package repository

import (
	"context"
	"errors"
	"log"

	"github.com/google/uuid"

	"github.com/freshstart/freshstart/pkg/entity"
)

type QuittingRepository struct {
	conn PgConnection
}

func NewQuittingRepo(cfg DBConfig) *QuittingRepository {
	return &QuittingRepository{conn: NewPool(cfg)}
}

func NewQuittingRepoWithConn(conn PgConnection) *QuittingRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for quittingRepo: " + err.Error())
	}
	return &QuittingRepository{
		conn: conn,
	}
}

func (qr *QuittingRepository) AddAttempt(ctx context.Context, attempt *entity.QuittingAttempt) (int64, error) {
	var id int64
	row := qr.conn.QueryRow(
		ctx,
		`INSERT INTO quitting_attempts (user_id, start_date, end_date, days_survived) VALUES ($1, $2, $3, $4) RETURNING id;`,
		attempt.UserID,
		attempt.StartDate,
		attempt.EndDate,
		attempt.DaysSurvived,
	)
	if err := row.Scan(&id); err != nil {
		return 0, errors.New("archiving quitting attempt db error: " + err.Error())
	}
	return id, nil
}

func (qr *QuittingRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.QuittingAttempt, error) {
	rows, err := qr.conn.Query(
		ctx,
		`SELECT id, user_id, start_date, end_date, days_survived FROM quitting_attempts WHERE user_id = $1 ORDER BY end_date DESC;`,
		userID,
	)
	if err != nil {
		return nil, errors.New("listing quitting attempts error: " + err.Error())
	}
	defer rows.Close()
	attempts := make([]*entity.QuittingAttempt, 0)
	for rows.Next() {
		a := entity.QuittingAttempt{}
		err := rows.Scan(&a.ID, &a.UserID, &a.StartDate, &a.EndDate, &a.DaysSurvived)
		if err != nil {
			return nil, errors.New("unmarshalling quitting attempt row error: " + err.Error())
		}
		attempts = append(attempts, &a)
	}
	if rows.Err() != nil {
		return nil, errors.New("unexpected quitting attempt rows error: " + rows.Err().Error())
	}
	return attempts, nil
}
