package service

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	errorvalues "github.com/freshstart/freshstart/internal/error_values"
	"github.com/freshstart/freshstart/internal/repository"
	"github.com/freshstart/freshstart/pkg/entity"
)

const maxCommentLength = 1000

type CommentsService struct {
	comments repository.CommentsRepositoryI
	posts    repository.PostsRepositoryI
	users    repository.UsersRepositoryI
}

func NewCommentsService(
	commentsRepo repository.CommentsRepositoryI,
	postsRepo repository.PostsRepositoryI,
	usersRepo repository.UsersRepositoryI,
) *CommentsService {
	return &CommentsService{
		comments: commentsRepo,
		posts:    postsRepo,
		users:    usersRepo,
	}
}

func (cs *CommentsService) Create(ctx context.Context, authorID uuid.UUID, postID int64, text string) (*entity.CommentView, error) {
	text = strings.TrimSpace(text)
	if text == "" || len(text) > maxCommentLength {
		return nil, errorvalues.ErrInvalidInput
	}
	id, err := cs.comments.Create(ctx, &entity.Comment{
		PostID:   postID,
		AuthorID: authorID,
		Text:     text,
	})
	if err != nil {
		if errors.Is(err, errorvalues.ErrPostNotFound) {
			return nil, errorvalues.ErrPostNotFound
		}
		return nil, errors.New("repository creating error: " + err.Error())
	}
	if err := cs.posts.AdjustCommentsCount(ctx, postID, 1); err != nil {
		return nil, errors.New("adjusting comments count error: " + err.Error())
	}
	comment, err := cs.comments.GetByID(ctx, id)
	if err != nil {
		return nil, errors.New("repository searching error: " + err.Error())
	}
	author, err := cs.users.FindByID(ctx, authorID)
	if err != nil {
		return nil, errors.New("repository searching error: " + err.Error())
	}
	return &entity.CommentView{
		Comment:            *comment,
		AuthorUsername:     author.Username,
		AuthorProfileImage: author.ProfileImage,
	}, nil
}

func (cs *CommentsService) ListByPost(ctx context.Context, postID int64) ([]*entity.CommentView, error) {
	if _, err := cs.posts.GetByID(ctx, postID); err != nil {
		if errors.Is(err, errorvalues.ErrPostNotFound) {
			return nil, errorvalues.ErrPostNotFound
		}
		return nil, errors.New("repository searching error: " + err.Error())
	}
	comments, err := cs.comments.ListByPost(ctx, postID)
	if err != nil {
		return nil, errors.New("repository listing error: " + err.Error())
	}
	return comments, nil
}

// Delete removes a comment. Only the comment's author may do it.
func (cs *CommentsService) Delete(ctx context.Context, userID uuid.UUID, commentID int64) error {
	comment, err := cs.comments.GetByID(ctx, commentID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrCommentNotFound) {
			return errorvalues.ErrCommentNotFound
		}
		return errors.New("repository searching error: " + err.Error())
	}
	if comment.AuthorID != userID {
		return errorvalues.ErrWrongOwner
	}
	if err := cs.comments.Delete(ctx, commentID); err != nil {
		return errors.New("repository deletion error: " + err.Error())
	}
	if err := cs.posts.AdjustCommentsCount(ctx, comment.PostID, -1); err != nil {
		return errors.New("adjusting comments count error: " + err.Error())
	}
	return nil
}
