package service

import (
	"context"
	"errors"

	"github.com/google/uuid"

	errorvalues "github.com/freshstart/freshstart/internal/error_values"
	"github.com/freshstart/freshstart/internal/repository"
	"github.com/freshstart/freshstart/pkg/entity"
)

type UserService struct {
	users repository.UsersRepositoryI
	posts repository.PostsRepositoryI
}

func NewUserService(usersRepo repository.UsersRepositoryI, postsRepo repository.PostsRepositoryI) *UserService {
	return &UserService{
		users: usersRepo,
		posts: postsRepo,
	}
}

// GetProfile is the public projection: no email, no hash, no google id.
func (us *UserService) GetProfile(ctx context.Context, username string) (*entity.Profile, error) {
	user, err := us.users.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return nil, errorvalues.ErrUserNotFound
		}
		return nil, errors.New("repository searching error: " + err.Error())
	}
	postsCount, err := us.posts.CountByAuthor(ctx, user.ID)
	if err != nil {
		return nil, errors.New("repository counting error: " + err.Error())
	}
	return &entity.Profile{
		ID:                user.ID,
		Username:          user.Username,
		ProfileImage:      user.ProfileImage,
		QuittingStartDate: user.QuittingStartDate,
		PostsCount:        postsCount,
		CreatedAt:         user.CreatedAt,
	}, nil
}

func (us *UserService) UpdateProfile(ctx context.Context, userID uuid.UUID, req *UpdateProfileRequest) (*entity.User, error) {
	if err := validateStruct(*req); err != nil {
		return nil, err
	}
	user, err := us.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return nil, errorvalues.ErrUserNotFound
		}
		return nil, errors.New("repository searching error: " + err.Error())
	}
	if req.Username != "" && req.Username != user.Username {
		// check-then-write; the unique index still backstops the race
		taken, err := us.users.UsernameExists(ctx, req.Username)
		if err != nil {
			return nil, errors.New("checking username error: " + err.Error())
		}
		if taken {
			return nil, errorvalues.ErrUserExists
		}
		user.Username = req.Username
	}
	if req.Email != "" {
		user.Email = req.Email
	}
	if req.ProfileImage != "" {
		user.ProfileImage = req.ProfileImage
	}
	if err := us.users.Update(ctx, user); err != nil {
		if errors.Is(err, errorvalues.ErrUserExists) {
			return nil, errorvalues.ErrUserExists
		}
		return nil, errors.New("repository updating error: " + err.Error())
	}
	updated, err := us.users.FindByID(ctx, userID)
	if err != nil {
		return nil, errors.New("repository searching error: " + err.Error())
	}
	return updated, nil
}
