package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	errorvalues "github.com/freshstart/freshstart/internal/error_values"
	"github.com/freshstart/freshstart/pkg/entity"
	"github.com/freshstart/freshstart/pkg/httputil"
)

type SearchResponse struct {
	Query string             `json:"query"`
	Posts []*entity.PostView `json:"posts"`
}

func (s *Server) SearchPosts(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("search error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	query := r.URL.Query().Get("q")
	// model round-trips take a while
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*45)
	defer cancel()
	posts, err := s.searchService.Search(ctx, uid, query)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrInvalidInput):
			logger.Error("search error: empty query")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "query is required", nil)
		default:
			logger.Error("search error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "search failed", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, SearchResponse{
		Query: query,
		Posts: posts,
	})
	logger.Info("search results provided")
}
