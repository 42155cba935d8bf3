package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	errorvalues "github.com/freshstart/freshstart/internal/error_values"
	"github.com/freshstart/freshstart/internal/repository"
	"github.com/freshstart/freshstart/pkg/entity"
)

type QuittingService struct {
	users    repository.UsersRepositoryI
	attempts repository.QuittingRepositoryI
	now      func() time.Time
}

func NewQuittingService(usersRepo repository.UsersRepositoryI, attemptsRepo repository.QuittingRepositoryI) *QuittingService {
	return &QuittingService{
		users:    usersRepo,
		attempts: attemptsRepo,
		now:      time.Now,
	}
}

func (qs *QuittingService) Stats(ctx context.Context, userID uuid.UUID) (*entity.QuittingStats, error) {
	user, err := qs.findUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return qs.statsFor(user, false), nil
}

func (qs *QuittingService) PublicStats(ctx context.Context, userID uuid.UUID) (*entity.QuittingStats, error) {
	user, err := qs.findUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return qs.statsFor(user, true), nil
}

// Start archives any attempt still running before opening the new one, so no
// smoke-free stretch ever silently disappears.
func (qs *QuittingService) Start(ctx context.Context, userID uuid.UUID) (*entity.QuittingStats, error) {
	user, err := qs.findUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	now := qs.now()
	if user.QuittingStartDate != nil {
		if err := qs.archive(ctx, userID, *user.QuittingStartDate, now); err != nil {
			return nil, err
		}
	}
	if err := qs.users.SetQuittingStart(ctx, userID, &now); err != nil {
		return nil, errors.New("repository updating error: " + err.Error())
	}
	user.QuittingStartDate = &now
	return qs.statsFor(user, false), nil
}

func (qs *QuittingService) Stop(ctx context.Context, userID uuid.UUID) (*entity.QuittingAttempt, error) {
	user, err := qs.findUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user.QuittingStartDate == nil {
		return nil, errorvalues.ErrNoActiveAttempt
	}
	now := qs.now()
	attempt := entity.QuittingAttempt{
		UserID:       userID,
		StartDate:    *user.QuittingStartDate,
		EndDate:      now,
		DaysSurvived: daysBetween(*user.QuittingStartDate, now),
	}
	id, err := qs.attempts.AddAttempt(ctx, &attempt)
	if err != nil {
		return nil, errors.New("repository creating error: " + err.Error())
	}
	attempt.ID = id
	if err := qs.users.SetQuittingStart(ctx, userID, nil); err != nil {
		return nil, errors.New("repository updating error: " + err.Error())
	}
	return &attempt, nil
}

func (qs *QuittingService) UpdateDate(ctx context.Context, userID uuid.UUID, date time.Time) (*entity.QuittingStats, error) {
	if date.IsZero() || date.After(qs.now()) {
		return nil, errorvalues.ErrInvalidDate
	}
	user, err := qs.findUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if err := qs.users.SetQuittingStart(ctx, userID, &date); err != nil {
		return nil, errors.New("repository updating error: " + err.Error())
	}
	user.QuittingStartDate = &date
	return qs.statsFor(user, false), nil
}

func (qs *QuittingService) History(ctx context.Context, userID uuid.UUID) ([]*entity.QuittingAttempt, error) {
	if _, err := qs.findUser(ctx, userID); err != nil {
		return nil, err
	}
	attempts, err := qs.attempts.ListByUser(ctx, userID)
	if err != nil {
		return nil, errors.New("repository listing error: " + err.Error())
	}
	return attempts, nil
}

func (qs *QuittingService) PublicHistory(ctx context.Context, userID uuid.UUID) ([]*entity.QuittingAttempt, error) {
	return qs.History(ctx, userID)
}

func (qs *QuittingService) findUser(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	user, err := qs.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return nil, errorvalues.ErrUserNotFound
		}
		return nil, errors.New("repository searching error: " + err.Error())
	}
	return user, nil
}

func (qs *QuittingService) statsFor(user *entity.User, public bool) *entity.QuittingStats {
	stats := entity.QuittingStats{}
	if public {
		stats.Username = user.Username
	}
	if user.QuittingStartDate == nil {
		return &stats
	}
	elapsed := qs.now().Sub(*user.QuittingStartDate)
	stats.Days = int(elapsed.Hours()) / 24
	stats.Hours = int(elapsed.Hours()) % 24
	stats.Minutes = int(elapsed.Minutes()) % 60
	stats.IsActive = true
	stats.StartDate = user.QuittingStartDate
	return &stats
}

func (qs *QuittingService) archive(ctx context.Context, userID uuid.UUID, start, end time.Time) error {
	_, err := qs.attempts.AddAttempt(ctx, &entity.QuittingAttempt{
		UserID:       userID,
		StartDate:    start,
		EndDate:      end,
		DaysSurvived: daysBetween(start, end),
	})
	if err != nil {
		return errors.New("repository creating error: " + err.Error())
	}
	return nil
}

func daysBetween(start, end time.Time) int {
	return int(end.Sub(start).Hours()) / 24
}
