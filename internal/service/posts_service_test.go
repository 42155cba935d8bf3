package service_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	errorvalues "github.com/freshstart/freshstart/internal/error_values"
	"github.com/freshstart/freshstart/internal/service"
	"github.com/freshstart/freshstart/pkg/entity"
)

// postsRepoMock keeps an id-descending slice of views so the feed paginates
// for real instead of replaying canned pages.
type postsRepoMock struct {
	state        mockState
	views        []*entity.PostView
	likesAdjusts map[int64]int
	cmntsAdjusts map[int64]int
}

func newPostsRepoMock(views []*entity.PostView) *postsRepoMock {
	return &postsRepoMock{
		views:        views,
		likesAdjusts: map[int64]int{},
		cmntsAdjusts: map[int64]int{},
	}
}

func feedFixture(n int) []*entity.PostView {
	views := make([]*entity.PostView, 0, n)
	for id := n; id >= 1; id-- {
		views = append(views, &entity.PostView{
			Post: entity.Post{
				ID:       int64(id),
				AuthorID: userID,
				Text:     fmt.Sprintf("smoke-free day %d", id),
			},
			AuthorUsername: username,
		})
	}
	return views
}

func (prmock *postsRepoMock) Create(ctx context.Context, post *entity.Post) (int64, error) {
	switch prmock.state {
	case stateUserNotFound:
		return 0, errorvalues.ErrUserNotFound
	case stateDBError:
		return 0, errors.New("db error")
	}
	id := int64(len(prmock.views) + 1)
	view := &entity.PostView{Post: *post, AuthorUsername: username}
	view.ID = id
	prmock.views = append([]*entity.PostView{view}, prmock.views...)
	return id, nil
}

func (prmock *postsRepoMock) GetByID(ctx context.Context, id int64) (*entity.Post, error) {
	if prmock.state == stateDBError {
		return nil, errors.New("db error")
	}
	for _, v := range prmock.views {
		if v.ID == id {
			post := v.Post
			return &post, nil
		}
	}
	return nil, errorvalues.ErrPostNotFound
}

func (prmock *postsRepoMock) GetViewByID(ctx context.Context, id int64) (*entity.PostView, error) {
	if prmock.state == stateDBError {
		return nil, errors.New("db error")
	}
	for _, v := range prmock.views {
		if v.ID == id {
			return v, nil
		}
	}
	return nil, errorvalues.ErrPostNotFound
}

func (prmock *postsRepoMock) Feed(ctx context.Context, cursor int64, limit int) ([]*entity.PostView, error) {
	if prmock.state == stateDBError {
		return nil, errors.New("db error")
	}
	page := make([]*entity.PostView, 0, limit)
	for _, v := range prmock.views {
		if cursor > 0 && v.ID >= cursor {
			continue
		}
		page = append(page, v)
		if len(page) == limit {
			break
		}
	}
	return page, nil
}

func (prmock *postsRepoMock) GetByAuthor(ctx context.Context, authorID uuid.UUID) ([]*entity.PostView, error) {
	if prmock.state == stateDBError {
		return nil, errors.New("db error")
	}
	return prmock.views, nil
}

func (prmock *postsRepoMock) ListLatest(ctx context.Context, limit int) ([]*entity.PostView, error) {
	if prmock.state == stateDBError {
		return nil, errors.New("db error")
	}
	if len(prmock.views) < limit {
		return prmock.views, nil
	}
	return prmock.views[:limit], nil
}

func (prmock *postsRepoMock) CountByAuthor(ctx context.Context, authorID uuid.UUID) (int, error) {
	if prmock.state == stateDBError {
		return 0, errors.New("db error")
	}
	return len(prmock.views), nil
}

func (prmock *postsRepoMock) Update(ctx context.Context, post *entity.Post) error {
	switch prmock.state {
	case statePostNotFound:
		return errorvalues.ErrPostNotFound
	case stateDBError:
		return errors.New("db error")
	}
	for _, v := range prmock.views {
		if v.ID == post.ID {
			v.Post = *post
			return nil
		}
	}
	return errorvalues.ErrPostNotFound
}

func (prmock *postsRepoMock) Delete(ctx context.Context, id int64) error {
	switch prmock.state {
	case statePostNotFound:
		return errorvalues.ErrPostNotFound
	case stateDBError:
		return errors.New("db error")
	}
	for i, v := range prmock.views {
		if v.ID == id {
			prmock.views = append(prmock.views[:i], prmock.views[i+1:]...)
			return nil
		}
	}
	return errorvalues.ErrPostNotFound
}

func (prmock *postsRepoMock) AdjustLikesCount(ctx context.Context, id int64, delta int) error {
	if prmock.state == stateDBError {
		return errors.New("db error")
	}
	prmock.likesAdjusts[id] += delta
	return nil
}

func (prmock *postsRepoMock) AdjustCommentsCount(ctx context.Context, id int64, delta int) error {
	if prmock.state == stateDBError {
		return errors.New("db error")
	}
	prmock.cmntsAdjusts[id] += delta
	return nil
}

type likesRepoMock struct {
	state mockState
	liked map[int64]bool
}

func newLikesRepoMock(liked ...int64) *likesRepoMock {
	lrmock := &likesRepoMock{liked: map[int64]bool{}}
	for _, id := range liked {
		lrmock.liked[id] = true
	}
	return lrmock
}

func (lrmock *likesRepoMock) Create(ctx context.Context, postID int64, uid uuid.UUID) error {
	switch lrmock.state {
	case stateAlreadyLiked:
		return errorvalues.ErrAlreadyLiked
	case statePostNotFound:
		return errorvalues.ErrPostNotFound
	case stateDBError:
		return errors.New("db error")
	}
	if lrmock.liked[postID] {
		return errorvalues.ErrAlreadyLiked
	}
	lrmock.liked[postID] = true
	return nil
}

func (lrmock *likesRepoMock) Delete(ctx context.Context, postID int64, uid uuid.UUID) error {
	switch lrmock.state {
	case stateLikeNotFound:
		return errorvalues.ErrLikeNotFound
	case stateDBError:
		return errors.New("db error")
	}
	if !lrmock.liked[postID] {
		return errorvalues.ErrLikeNotFound
	}
	delete(lrmock.liked, postID)
	return nil
}

func (lrmock *likesRepoMock) Exists(ctx context.Context, postID int64, uid uuid.UUID) (bool, error) {
	if lrmock.state == stateDBError {
		return false, errors.New("db error")
	}
	return lrmock.liked[postID], nil
}

func (lrmock *likesRepoMock) CountByPost(ctx context.Context, postID int64) (int, error) {
	if lrmock.state == stateDBError {
		return 0, errors.New("db error")
	}
	if lrmock.liked[postID] {
		return 1, nil
	}
	return 0, nil
}

func (lrmock *likesRepoMock) LikedSet(ctx context.Context, uid uuid.UUID, postIDs []int64) (map[int64]bool, error) {
	if lrmock.state == stateDBError {
		return nil, errors.New("db error")
	}
	result := map[int64]bool{}
	for _, id := range postIDs {
		if lrmock.liked[id] {
			result[id] = true
		}
	}
	return result, nil
}

func TestCreatePost(t *testing.T) {
	postsMock := newPostsRepoMock(feedFixture(0))
	s := service.NewPostsService(postsMock, newLikesRepoMock(), &usersRepoMock{state: stateSuccess})
	ctx := context.Background()
	t.Run("success", func(t *testing.T) {
		view, err := s.Create(ctx, userID, &service.CreatePostRequest{Text: "day one without cigarettes"})
		assert.NoError(t, err)
		assert.Equal(t, "day one without cigarettes", view.Text)
		assert.Equal(t, username, view.AuthorUsername)
	})
	t.Run("error: empty text", func(t *testing.T) {
		_, err := s.Create(ctx, userID, &service.CreatePostRequest{Text: ""})
		assert.ErrorIs(t, err, errorvalues.ErrInvalidInput)
	})
	t.Run("error: author vanished", func(t *testing.T) {
		postsMock.state = stateUserNotFound
		_, err := s.Create(ctx, userID, &service.CreatePostRequest{Text: "hello"})
		assert.ErrorIs(t, err, errorvalues.ErrUserNotFound)
	})
	t.Run("error: db error", func(t *testing.T) {
		postsMock.state = stateDBError
		_, err := s.Create(ctx, userID, &service.CreatePostRequest{Text: "hello"})
		assert.Error(t, err)
	})
}

func TestGetFeed(t *testing.T) {
	ctx := context.Background()
	t.Run("walks the whole feed in full pages", func(t *testing.T) {
		postsMock := newPostsRepoMock(feedFixture(5))
		s := service.NewPostsService(postsMock, newLikesRepoMock(5, 3), &usersRepoMock{state: stateSuccess})

		page, err := s.GetFeed(ctx, userID, 0, 2)
		assert.NoError(t, err)
		assert.Equal(t, 2, len(page.Posts))
		assert.Equal(t, int64(5), page.Posts[0].ID)
		assert.Equal(t, int64(4), page.Posts[1].ID)
		assert.True(t, page.Posts[0].IsLiked)
		assert.False(t, page.Posts[1].IsLiked)
		if assert.NotNil(t, page.NextCursor) {
			assert.Equal(t, int64(4), *page.NextCursor)
		}

		page, err = s.GetFeed(ctx, userID, *page.NextCursor, 2)
		assert.NoError(t, err)
		assert.Equal(t, 2, len(page.Posts))
		assert.Equal(t, int64(3), page.Posts[0].ID)
		assert.True(t, page.Posts[0].IsLiked)
		if assert.NotNil(t, page.NextCursor) {
			assert.Equal(t, int64(2), *page.NextCursor)
		}

		page, err = s.GetFeed(ctx, userID, *page.NextCursor, 2)
		assert.NoError(t, err)
		assert.Equal(t, 1, len(page.Posts))
		assert.Equal(t, int64(1), page.Posts[0].ID)
		assert.Nil(t, page.NextCursor)
	})
	t.Run("out-of-range limit falls back to the default", func(t *testing.T) {
		postsMock := newPostsRepoMock(feedFixture(5))
		s := service.NewPostsService(postsMock, newLikesRepoMock(), &usersRepoMock{state: stateSuccess})
		for _, limit := range []int{0, -3, 51} {
			page, err := s.GetFeed(ctx, userID, 0, limit)
			assert.NoError(t, err)
			assert.Equal(t, 5, len(page.Posts))
			assert.Nil(t, page.NextCursor)
		}
	})
	t.Run("error: db error", func(t *testing.T) {
		postsMock := newPostsRepoMock(feedFixture(5))
		postsMock.state = stateDBError
		s := service.NewPostsService(postsMock, newLikesRepoMock(), &usersRepoMock{state: stateSuccess})
		_, err := s.GetFeed(ctx, userID, 0, 10)
		assert.Error(t, err)
	})
}

func TestGetPostByID(t *testing.T) {
	postsMock := newPostsRepoMock(feedFixture(3))
	s := service.NewPostsService(postsMock, newLikesRepoMock(2), &usersRepoMock{state: stateSuccess})
	ctx := context.Background()
	t.Run("success with like state", func(t *testing.T) {
		view, err := s.GetByID(ctx, userID, 2)
		assert.NoError(t, err)
		assert.Equal(t, int64(2), view.ID)
		assert.True(t, view.IsLiked)
	})
	t.Run("error: post not found", func(t *testing.T) {
		_, err := s.GetByID(ctx, userID, 99)
		assert.ErrorIs(t, err, errorvalues.ErrPostNotFound)
	})
}

func TestUpdatePost(t *testing.T) {
	postsMock := newPostsRepoMock(feedFixture(3))
	s := service.NewPostsService(postsMock, newLikesRepoMock(), &usersRepoMock{state: stateSuccess})
	ctx := context.Background()
	t.Run("success", func(t *testing.T) {
		view, err := s.Update(ctx, userID, 2, &service.UpdatePostRequest{Text: "edited"})
		assert.NoError(t, err)
		assert.Equal(t, "edited", view.Text)
	})
	t.Run("error: wrong owner", func(t *testing.T) {
		_, err := s.Update(ctx, uuid.New(), 2, &service.UpdatePostRequest{Text: "edited"})
		assert.ErrorIs(t, err, errorvalues.ErrWrongOwner)
	})
	t.Run("error: post not found", func(t *testing.T) {
		_, err := s.Update(ctx, userID, 99, &service.UpdatePostRequest{Text: "edited"})
		assert.ErrorIs(t, err, errorvalues.ErrPostNotFound)
	})
	t.Run("error: invalid text", func(t *testing.T) {
		_, err := s.Update(ctx, userID, 2, &service.UpdatePostRequest{Text: ""})
		assert.ErrorIs(t, err, errorvalues.ErrInvalidInput)
	})
}

func TestDeletePost(t *testing.T) {
	postsMock := newPostsRepoMock(feedFixture(3))
	s := service.NewPostsService(postsMock, newLikesRepoMock(), &usersRepoMock{state: stateSuccess})
	ctx := context.Background()
	t.Run("error: wrong owner", func(t *testing.T) {
		err := s.Delete(ctx, uuid.New(), 2)
		assert.ErrorIs(t, err, errorvalues.ErrWrongOwner)
	})
	t.Run("success", func(t *testing.T) {
		assert.NoError(t, s.Delete(ctx, userID, 2))
	})
	t.Run("error: already deleted", func(t *testing.T) {
		err := s.Delete(ctx, userID, 2)
		assert.ErrorIs(t, err, errorvalues.ErrPostNotFound)
	})
}

func TestGetUserPosts(t *testing.T) {
	postsMock := newPostsRepoMock(feedFixture(3))
	usersMock := &usersRepoMock{state: stateSuccess}
	s := service.NewPostsService(postsMock, newLikesRepoMock(1), usersMock)
	ctx := context.Background()
	t.Run("success", func(t *testing.T) {
		posts, err := s.GetUserPosts(ctx, userID, username)
		assert.NoError(t, err)
		assert.Equal(t, 3, len(posts))
		assert.True(t, posts[2].IsLiked)
	})
	t.Run("error: unknown author", func(t *testing.T) {
		usersMock.state = stateUserNotFound
		_, err := s.GetUserPosts(ctx, userID, "nobody")
		assert.ErrorIs(t, err, errorvalues.ErrUserNotFound)
	})
}
