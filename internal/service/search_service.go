package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"

	errorvalues "github.com/freshstart/freshstart/internal/error_values"
	"github.com/freshstart/freshstart/internal/repository"
	"github.com/freshstart/freshstart/pkg/entity"
)

const searchCandidateLimit = 50

const searchSystemPrompt = `You are a helpful search assistant for a smoking cessation social network called FreshStart.
Given a search query and a list of posts, find posts that are relevant to the query.

Rules:
- Return posts that are related to the query topic, even if not an exact match
- Think about synonyms and related concepts (e.g. "cravings" relates to "urge to smoke", "hard day" etc.)
- Only exclude posts that are completely unrelated to the query
- If no posts match at all, return an empty array []
- Return ONLY a JSON array of IDs, nothing else. Example: ["id1","id2","id3"]`

// AICompleterI is the LLM surface the search needs: one prompt in, one raw
// completion out.
type AICompleterI interface {
	Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}

type SearchService struct {
	posts     repository.PostsRepositoryI
	likes     repository.LikesRepositoryI
	completer AICompleterI
}

func NewSearchService(
	postsRepo repository.PostsRepositoryI,
	likesRepo repository.LikesRepositoryI,
	completer AICompleterI,
) *SearchService {
	return &SearchService{
		posts:     postsRepo,
		likes:     likesRepo,
		completer: completer,
	}
}

// Search hands the newest posts to the model and keeps the ones whose ids
// come back. The model's output is untrusted: anything that is not a JSON
// string array, or names unknown ids, degrades to fewer or zero matches
// rather than an error.
func (ss *SearchService) Search(ctx context.Context, viewerID uuid.UUID, query string) ([]*entity.PostView, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, errorvalues.ErrInvalidInput
	}
	candidates, err := ss.posts.ListLatest(ctx, searchCandidateLimit)
	if err != nil {
		return nil, errors.New("repository listing error: " + err.Error())
	}
	if len(candidates) == 0 {
		return []*entity.PostView{}, nil
	}
	content, err := ss.completer.Complete(ctx, searchSystemPrompt, buildSearchPrompt(query, candidates))
	if err != nil {
		return nil, errors.New("completion error: " + err.Error())
	}
	matched := filterByCompletion(candidates, content)
	if len(matched) == 0 {
		return matched, nil
	}
	ids := make([]int64, 0, len(matched))
	for _, p := range matched {
		ids = append(ids, p.ID)
	}
	liked, err := ss.likes.LikedSet(ctx, viewerID, ids)
	if err != nil {
		return nil, errors.New("repository liked set error: " + err.Error())
	}
	for _, p := range matched {
		p.IsLiked = liked[p.ID]
	}
	return matched, nil
}

func buildSearchPrompt(query string, posts []*entity.PostView) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Query: %q\n\nPosts:\n", query)
	for i, p := range posts {
		fmt.Fprintf(&b, "[%d] ID:%d | Author:%s | Text: %s\n", i, p.ID, p.AuthorUsername, p.Text)
	}
	return b.String()
}

func filterByCompletion(candidates []*entity.PostView, content string) []*entity.PostView {
	matched := make([]*entity.PostView, 0)
	var rawIDs []string
	if err := sonic.ConfigDefault.Unmarshal([]byte(content), &rawIDs); err != nil {
		return matched
	}
	wanted := make(map[int64]bool, len(rawIDs))
	for _, raw := range rawIDs {
		id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
		if err != nil {
			continue
		}
		wanted[id] = true
	}
	for _, p := range candidates {
		if wanted[p.ID] {
			matched = append(matched, p)
		}
	}
	return matched
}
