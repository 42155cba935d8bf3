package service

import (
	"context"
	"errors"

	"github.com/google/uuid"

	errorvalues "github.com/freshstart/freshstart/internal/error_values"
	"github.com/freshstart/freshstart/internal/repository"
)

type LikesService struct {
	likes repository.LikesRepositoryI
	posts repository.PostsRepositoryI
}

func NewLikesService(likesRepo repository.LikesRepositoryI, postsRepo repository.PostsRepositoryI) *LikesService {
	return &LikesService{
		likes: likesRepo,
		posts: postsRepo,
	}
}

// Like inserts the pair record first and bumps the counter after. The two
// writes are separate; a crash between them leaves a drift the next count
// reconciliation absorbs, never a duplicate like.
func (ls *LikesService) Like(ctx context.Context, postID int64, userID uuid.UUID) error {
	err := ls.likes.Create(ctx, postID, userID)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrAlreadyLiked):
			return errorvalues.ErrAlreadyLiked
		case errors.Is(err, errorvalues.ErrPostNotFound):
			return errorvalues.ErrPostNotFound
		}
		return errors.New("repository creating error: " + err.Error())
	}
	if err := ls.posts.AdjustLikesCount(ctx, postID, 1); err != nil {
		return errors.New("adjusting likes count error: " + err.Error())
	}
	return nil
}

func (ls *LikesService) Unlike(ctx context.Context, postID int64, userID uuid.UUID) error {
	err := ls.likes.Delete(ctx, postID, userID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrLikeNotFound) {
			return errorvalues.ErrLikeNotFound
		}
		return errors.New("repository deletion error: " + err.Error())
	}
	if err := ls.posts.AdjustLikesCount(ctx, postID, -1); err != nil {
		return errors.New("adjusting likes count error: " + err.Error())
	}
	return nil
}

func (ls *LikesService) Info(ctx context.Context, postID int64, userID uuid.UUID) (*LikeInfo, error) {
	if _, err := ls.posts.GetByID(ctx, postID); err != nil {
		if errors.Is(err, errorvalues.ErrPostNotFound) {
			return nil, errorvalues.ErrPostNotFound
		}
		return nil, errors.New("repository searching error: " + err.Error())
	}
	count, err := ls.likes.CountByPost(ctx, postID)
	if err != nil {
		return nil, errors.New("repository counting error: " + err.Error())
	}
	liked, err := ls.likes.Exists(ctx, postID, userID)
	if err != nil {
		return nil, errors.New("repository like lookup error: " + err.Error())
	}
	return &LikeInfo{Count: count, Liked: liked}, nil
}
