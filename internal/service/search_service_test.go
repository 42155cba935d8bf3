package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	errorvalues "github.com/freshstart/freshstart/internal/error_values"
	"github.com/freshstart/freshstart/internal/service"
)

type completerMock struct {
	content string
	err     error
	calls   int
}

func (cmock *completerMock) Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	cmock.calls++
	if cmock.err != nil {
		return "", cmock.err
	}
	return cmock.content, nil
}

func TestSearchPosts(t *testing.T) {
	ctx := context.Background()
	t.Run("keeps the posts the model picked", func(t *testing.T) {
		completer := &completerMock{content: `["5", "2"]`}
		s := service.NewSearchService(newPostsRepoMock(feedFixture(5)), newLikesRepoMock(2), completer)
		posts, err := s.Search(ctx, userID, "cravings")
		assert.NoError(t, err)
		assert.Equal(t, 2, len(posts))
		assert.Equal(t, int64(5), posts[0].ID)
		assert.Equal(t, int64(2), posts[1].ID)
		assert.False(t, posts[0].IsLiked)
		assert.True(t, posts[1].IsLiked)
	})
	t.Run("empty array means no matches", func(t *testing.T) {
		s := service.NewSearchService(newPostsRepoMock(feedFixture(5)), newLikesRepoMock(), &completerMock{content: `[]`})
		posts, err := s.Search(ctx, userID, "quantum chromodynamics")
		assert.NoError(t, err)
		assert.Equal(t, 0, len(posts))
	})
	t.Run("prose instead of JSON degrades to no matches", func(t *testing.T) {
		completer := &completerMock{content: "Sure! The relevant posts are 5 and 2."}
		s := service.NewSearchService(newPostsRepoMock(feedFixture(5)), newLikesRepoMock(), completer)
		posts, err := s.Search(ctx, userID, "cravings")
		assert.NoError(t, err)
		assert.Equal(t, 0, len(posts))
	})
	t.Run("number array instead of string array degrades too", func(t *testing.T) {
		s := service.NewSearchService(newPostsRepoMock(feedFixture(5)), newLikesRepoMock(), &completerMock{content: `[5, 2]`})
		posts, err := s.Search(ctx, userID, "cravings")
		assert.NoError(t, err)
		assert.Equal(t, 0, len(posts))
	})
	t.Run("unknown ids are dropped", func(t *testing.T) {
		s := service.NewSearchService(newPostsRepoMock(feedFixture(5)), newLikesRepoMock(), &completerMock{content: `["99", "3", "abc"]`})
		posts, err := s.Search(ctx, userID, "cravings")
		assert.NoError(t, err)
		assert.Equal(t, 1, len(posts))
		assert.Equal(t, int64(3), posts[0].ID)
	})
	t.Run("no posts means no model call", func(t *testing.T) {
		completer := &completerMock{content: `[]`}
		s := service.NewSearchService(newPostsRepoMock(feedFixture(0)), newLikesRepoMock(), completer)
		posts, err := s.Search(ctx, userID, "cravings")
		assert.NoError(t, err)
		assert.Equal(t, 0, len(posts))
		assert.Equal(t, 0, completer.calls)
	})
	t.Run("error: blank query", func(t *testing.T) {
		s := service.NewSearchService(newPostsRepoMock(feedFixture(5)), newLikesRepoMock(), &completerMock{})
		_, err := s.Search(ctx, userID, "   ")
		assert.ErrorIs(t, err, errorvalues.ErrInvalidInput)
	})
	t.Run("error: completion failed", func(t *testing.T) {
		completer := &completerMock{err: errors.New("upstream 500")}
		s := service.NewSearchService(newPostsRepoMock(feedFixture(5)), newLikesRepoMock(), completer)
		_, err := s.Search(ctx, userID, "cravings")
		assert.Error(t, err)
	})
}
