package errorvalues

import "errors"

var (
	ErrInvalidInput = errors.New("invalid input")

	ErrUserExists       = errors.New("such user already exists")
	ErrUserNotFound     = errors.New("user doesn't exists")
	ErrWrongCredentials = errors.New("wrong username or password")

	ErrInvalidToken  = errors.New("invalid token")
	ErrTokenNotFound = errors.New("refresh token not found")

	ErrPostNotFound    = errors.New("post doesn't exist")
	ErrCommentNotFound = errors.New("comment doesn't exist")
	ErrWrongOwner      = errors.New("entity has different owner")

	ErrAlreadyLiked = errors.New("post already liked by user")
	ErrLikeNotFound = errors.New("like doesn't exist")

	ErrNoActiveAttempt = errors.New("no active quitting attempt")
	ErrInvalidDate     = errors.New("invalid quitting date")
)
