package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	errorvalues "github.com/freshstart/freshstart/internal/error_values"
	"github.com/freshstart/freshstart/internal/service"
)

func TestLikePost(t *testing.T) {
	ctx := context.Background()
	t.Run("success bumps the counter once", func(t *testing.T) {
		postsMock := newPostsRepoMock(feedFixture(3))
		s := service.NewLikesService(newLikesRepoMock(), postsMock)
		assert.NoError(t, s.Like(ctx, 2, userID))
		assert.Equal(t, 1, postsMock.likesAdjusts[2])
	})
	t.Run("error: double like leaves the counter alone", func(t *testing.T) {
		postsMock := newPostsRepoMock(feedFixture(3))
		s := service.NewLikesService(newLikesRepoMock(), postsMock)
		assert.NoError(t, s.Like(ctx, 2, userID))
		assert.ErrorIs(t, s.Like(ctx, 2, userID), errorvalues.ErrAlreadyLiked)
		assert.Equal(t, 1, postsMock.likesAdjusts[2])
	})
	t.Run("error: post not found", func(t *testing.T) {
		likesMock := newLikesRepoMock()
		likesMock.state = statePostNotFound
		s := service.NewLikesService(likesMock, newPostsRepoMock(feedFixture(3)))
		assert.ErrorIs(t, s.Like(ctx, 99, userID), errorvalues.ErrPostNotFound)
	})
	t.Run("error: db error", func(t *testing.T) {
		likesMock := newLikesRepoMock()
		likesMock.state = stateDBError
		s := service.NewLikesService(likesMock, newPostsRepoMock(feedFixture(3)))
		assert.Error(t, s.Like(ctx, 2, userID))
	})
}

func TestUnlikePost(t *testing.T) {
	ctx := context.Background()
	t.Run("success drops the counter", func(t *testing.T) {
		postsMock := newPostsRepoMock(feedFixture(3))
		s := service.NewLikesService(newLikesRepoMock(2), postsMock)
		assert.NoError(t, s.Unlike(ctx, 2, userID))
		assert.Equal(t, -1, postsMock.likesAdjusts[2])
	})
	t.Run("error: like not found", func(t *testing.T) {
		postsMock := newPostsRepoMock(feedFixture(3))
		s := service.NewLikesService(newLikesRepoMock(), postsMock)
		assert.ErrorIs(t, s.Unlike(ctx, 2, userID), errorvalues.ErrLikeNotFound)
		assert.Equal(t, 0, postsMock.likesAdjusts[2])
	})
}

func TestLikeInfo(t *testing.T) {
	ctx := context.Background()
	t.Run("liked post", func(t *testing.T) {
		s := service.NewLikesService(newLikesRepoMock(2), newPostsRepoMock(feedFixture(3)))
		info, err := s.Info(ctx, 2, userID)
		assert.NoError(t, err)
		assert.Equal(t, 1, info.Count)
		assert.True(t, info.Liked)
	})
	t.Run("unliked post", func(t *testing.T) {
		s := service.NewLikesService(newLikesRepoMock(), newPostsRepoMock(feedFixture(3)))
		info, err := s.Info(ctx, 2, userID)
		assert.NoError(t, err)
		assert.Equal(t, 0, info.Count)
		assert.False(t, info.Liked)
	})
	t.Run("error: post not found", func(t *testing.T) {
		s := service.NewLikesService(newLikesRepoMock(), newPostsRepoMock(feedFixture(3)))
		_, err := s.Info(ctx, 99, userID)
		assert.ErrorIs(t, err, errorvalues.ErrPostNotFound)
	})
}
