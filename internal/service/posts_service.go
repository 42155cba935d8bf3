package service

import (
	"context"
	"errors"

	"github.com/google/uuid"

	errorvalues "github.com/freshstart/freshstart/internal/error_values"
	"github.com/freshstart/freshstart/internal/repository"
	"github.com/freshstart/freshstart/pkg/entity"
)

type PostsService struct {
	posts repository.PostsRepositoryI
	likes repository.LikesRepositoryI
	users repository.UsersRepositoryI
}

func NewPostsService(
	postsRepo repository.PostsRepositoryI,
	likesRepo repository.LikesRepositoryI,
	usersRepo repository.UsersRepositoryI,
) *PostsService {
	return &PostsService{
		posts: postsRepo,
		likes: likesRepo,
		users: usersRepo,
	}
}

func (ps *PostsService) Create(ctx context.Context, authorID uuid.UUID, req *CreatePostRequest) (*entity.PostView, error) {
	if err := validateStruct(*req); err != nil {
		return nil, err
	}
	id, err := ps.posts.Create(ctx, &entity.Post{
		AuthorID:  authorID,
		Text:      req.Text,
		ImagePath: req.ImagePath,
	})
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return nil, errorvalues.ErrUserNotFound
		}
		return nil, errors.New("repository creating error: " + err.Error())
	}
	view, err := ps.posts.GetViewByID(ctx, id)
	if err != nil {
		return nil, errors.New("repository searching error: " + err.Error())
	}
	return view, nil
}

// GetFeed returns one id-descending page annotated with the viewer's likes.
// The next cursor is the last post's id exactly when the page came back
// full; a final page of exactly limit rows costs one extra empty call.
func (ps *PostsService) GetFeed(ctx context.Context, viewerID uuid.UUID, cursor int64, limit int) (*FeedPage, error) {
	if limit < 1 || limit > 50 {
		limit = 10
	}
	posts, err := ps.posts.Feed(ctx, cursor, limit)
	if err != nil {
		return nil, errors.New("repository feed error: " + err.Error())
	}
	if err := ps.annotateLikes(ctx, viewerID, posts); err != nil {
		return nil, err
	}
	page := FeedPage{Posts: posts}
	if len(posts) == limit {
		last := posts[len(posts)-1].ID
		page.NextCursor = &last
	}
	return &page, nil
}

func (ps *PostsService) GetByID(ctx context.Context, viewerID uuid.UUID, postID int64) (*entity.PostView, error) {
	view, err := ps.posts.GetViewByID(ctx, postID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrPostNotFound) {
			return nil, errorvalues.ErrPostNotFound
		}
		return nil, errors.New("repository searching error: " + err.Error())
	}
	liked, err := ps.likes.Exists(ctx, postID, viewerID)
	if err != nil {
		return nil, errors.New("repository like lookup error: " + err.Error())
	}
	view.IsLiked = liked
	return view, nil
}

func (ps *PostsService) Update(ctx context.Context, userID uuid.UUID, postID int64, req *UpdatePostRequest) (*entity.PostView, error) {
	if err := validateStruct(*req); err != nil {
		return nil, err
	}
	post, err := ps.posts.GetByID(ctx, postID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrPostNotFound) {
			return nil, errorvalues.ErrPostNotFound
		}
		return nil, errors.New("repository searching error: " + err.Error())
	}
	if post.AuthorID != userID {
		return nil, errorvalues.ErrWrongOwner
	}
	post.Text = req.Text
	post.ImagePath = req.ImagePath
	if err := ps.posts.Update(ctx, post); err != nil {
		return nil, errors.New("repository updating error: " + err.Error())
	}
	view, err := ps.posts.GetViewByID(ctx, postID)
	if err != nil {
		return nil, errors.New("repository searching error: " + err.Error())
	}
	liked, err := ps.likes.Exists(ctx, postID, userID)
	if err != nil {
		return nil, errors.New("repository like lookup error: " + err.Error())
	}
	view.IsLiked = liked
	return view, nil
}

func (ps *PostsService) Delete(ctx context.Context, userID uuid.UUID, postID int64) error {
	post, err := ps.posts.GetByID(ctx, postID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrPostNotFound) {
			return errorvalues.ErrPostNotFound
		}
		return errors.New("repository searching error: " + err.Error())
	}
	if post.AuthorID != userID {
		return errorvalues.ErrWrongOwner
	}
	if err := ps.posts.Delete(ctx, postID); err != nil {
		return errors.New("repository deletion error: " + err.Error())
	}
	return nil
}

func (ps *PostsService) GetUserPosts(ctx context.Context, viewerID uuid.UUID, username string) ([]*entity.PostView, error) {
	author, err := ps.users.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return nil, errorvalues.ErrUserNotFound
		}
		return nil, errors.New("repository searching error: " + err.Error())
	}
	posts, err := ps.posts.GetByAuthor(ctx, author.ID)
	if err != nil {
		return nil, errors.New("repository searching error: " + err.Error())
	}
	if err := ps.annotateLikes(ctx, viewerID, posts); err != nil {
		return nil, err
	}
	return posts, nil
}

// annotateLikes resolves isLiked with one query over exactly this page's
// post ids, never the whole likes table.
func (ps *PostsService) annotateLikes(ctx context.Context, viewerID uuid.UUID, posts []*entity.PostView) error {
	if len(posts) == 0 {
		return nil
	}
	ids := make([]int64, 0, len(posts))
	for _, p := range posts {
		ids = append(ids, p.ID)
	}
	liked, err := ps.likes.LikedSet(ctx, viewerID, ids)
	if err != nil {
		return errors.New("repository liked set error: " + err.Error())
	}
	for _, p := range posts {
		p.IsLiked = liked[p.ID]
	}
	return nil
}
