package service_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	errorvalues "github.com/freshstart/freshstart/internal/error_values"
	"github.com/freshstart/freshstart/internal/service"
	"github.com/freshstart/freshstart/pkg/entity"
)

type commentsRepoMock struct {
	state    mockState
	comments map[int64]*entity.Comment
	nextID   int64
}

func newCommentsRepoMock(seed ...*entity.Comment) *commentsRepoMock {
	crmock := &commentsRepoMock{comments: map[int64]*entity.Comment{}, nextID: 1}
	for _, c := range seed {
		crmock.comments[c.ID] = c
		if c.ID >= crmock.nextID {
			crmock.nextID = c.ID + 1
		}
	}
	return crmock
}

func (crmock *commentsRepoMock) Create(ctx context.Context, comment *entity.Comment) (int64, error) {
	switch crmock.state {
	case statePostNotFound:
		return 0, errorvalues.ErrPostNotFound
	case stateDBError:
		return 0, errors.New("db error")
	}
	stored := *comment
	stored.ID = crmock.nextID
	stored.CreatedAt = time.Now()
	crmock.comments[stored.ID] = &stored
	crmock.nextID++
	return stored.ID, nil
}

func (crmock *commentsRepoMock) GetByID(ctx context.Context, id int64) (*entity.Comment, error) {
	if crmock.state == stateDBError {
		return nil, errors.New("db error")
	}
	comment, ok := crmock.comments[id]
	if !ok {
		return nil, errorvalues.ErrCommentNotFound
	}
	return comment, nil
}

func (crmock *commentsRepoMock) ListByPost(ctx context.Context, postID int64) ([]*entity.CommentView, error) {
	if crmock.state == stateDBError {
		return nil, errors.New("db error")
	}
	views := []*entity.CommentView{}
	for id := int64(1); id < crmock.nextID; id++ {
		if comment, ok := crmock.comments[id]; ok && comment.PostID == postID {
			views = append(views, &entity.CommentView{Comment: *comment, AuthorUsername: username})
		}
	}
	return views, nil
}

func (crmock *commentsRepoMock) Delete(ctx context.Context, id int64) error {
	switch crmock.state {
	case stateCommentNotFound:
		return errorvalues.ErrCommentNotFound
	case stateDBError:
		return errors.New("db error")
	}
	if _, ok := crmock.comments[id]; !ok {
		return errorvalues.ErrCommentNotFound
	}
	delete(crmock.comments, id)
	return nil
}

func TestCreateCommentService(t *testing.T) {
	ctx := context.Background()
	t.Run("success bumps the counter", func(t *testing.T) {
		postsMock := newPostsRepoMock(feedFixture(3))
		s := service.NewCommentsService(newCommentsRepoMock(), postsMock, &usersRepoMock{state: stateSuccess})
		view, err := s.Create(ctx, userID, 2, "  you got this  ")
		assert.NoError(t, err)
		assert.Equal(t, "you got this", view.Text)
		assert.Equal(t, username, view.AuthorUsername)
		assert.Equal(t, 1, postsMock.cmntsAdjusts[2])
	})
	t.Run("error: blank text", func(t *testing.T) {
		s := service.NewCommentsService(newCommentsRepoMock(), newPostsRepoMock(feedFixture(3)), &usersRepoMock{state: stateSuccess})
		_, err := s.Create(ctx, userID, 2, "   ")
		assert.ErrorIs(t, err, errorvalues.ErrInvalidInput)
	})
	t.Run("error: text too long", func(t *testing.T) {
		s := service.NewCommentsService(newCommentsRepoMock(), newPostsRepoMock(feedFixture(3)), &usersRepoMock{state: stateSuccess})
		_, err := s.Create(ctx, userID, 2, strings.Repeat("a", 1001))
		assert.ErrorIs(t, err, errorvalues.ErrInvalidInput)
	})
	t.Run("error: post not found", func(t *testing.T) {
		commentsMock := newCommentsRepoMock()
		commentsMock.state = statePostNotFound
		s := service.NewCommentsService(commentsMock, newPostsRepoMock(feedFixture(3)), &usersRepoMock{state: stateSuccess})
		_, err := s.Create(ctx, userID, 99, "hello")
		assert.ErrorIs(t, err, errorvalues.ErrPostNotFound)
	})
}

func TestListCommentsService(t *testing.T) {
	ctx := context.Background()
	commentsMock := newCommentsRepoMock(
		&entity.Comment{ID: 1, PostID: 2, AuthorID: userID, Text: "first"},
		&entity.Comment{ID: 2, PostID: 2, AuthorID: userID, Text: "second"},
		&entity.Comment{ID: 3, PostID: 1, AuthorID: userID, Text: "elsewhere"},
	)
	s := service.NewCommentsService(commentsMock, newPostsRepoMock(feedFixture(3)), &usersRepoMock{state: stateSuccess})
	t.Run("oldest first, post-scoped", func(t *testing.T) {
		views, err := s.ListByPost(ctx, 2)
		assert.NoError(t, err)
		assert.Equal(t, 2, len(views))
		assert.Equal(t, "first", views[0].Text)
		assert.Equal(t, "second", views[1].Text)
	})
	t.Run("error: post not found", func(t *testing.T) {
		_, err := s.ListByPost(ctx, 99)
		assert.ErrorIs(t, err, errorvalues.ErrPostNotFound)
	})
}

func TestDeleteCommentService(t *testing.T) {
	ctx := context.Background()
	commenterID := uuid.New()
	seed := func() *commentsRepoMock {
		return newCommentsRepoMock(
			&entity.Comment{ID: 1, PostID: 2, AuthorID: commenterID, Text: "removable"},
		)
	}
	t.Run("comment author deletes own comment", func(t *testing.T) {
		postsMock := newPostsRepoMock(feedFixture(3))
		s := service.NewCommentsService(seed(), postsMock, &usersRepoMock{state: stateSuccess})
		assert.NoError(t, s.Delete(ctx, commenterID, 1))
		assert.Equal(t, -1, postsMock.cmntsAdjusts[2])
	})
	t.Run("error: post author cannot delete a stranger's comment", func(t *testing.T) {
		// the fixture posts are authored by userID
		postsMock := newPostsRepoMock(feedFixture(3))
		s := service.NewCommentsService(seed(), postsMock, &usersRepoMock{state: stateSuccess})
		assert.ErrorIs(t, s.Delete(ctx, userID, 1), errorvalues.ErrWrongOwner)
		assert.Equal(t, 0, postsMock.cmntsAdjusts[2])
	})
	t.Run("error: wrong owner", func(t *testing.T) {
		s := service.NewCommentsService(seed(), newPostsRepoMock(feedFixture(3)), &usersRepoMock{state: stateSuccess})
		assert.ErrorIs(t, s.Delete(ctx, uuid.New(), 1), errorvalues.ErrWrongOwner)
	})
	t.Run("error: comment not found", func(t *testing.T) {
		s := service.NewCommentsService(seed(), newPostsRepoMock(feedFixture(3)), &usersRepoMock{state: stateSuccess})
		assert.ErrorIs(t, s.Delete(ctx, commenterID, 99), errorvalues.ErrCommentNotFound)
	})
}
