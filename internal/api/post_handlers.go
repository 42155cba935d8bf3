package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/bytedance/sonic"

	errorvalues "github.com/freshstart/freshstart/internal/error_values"
	"github.com/freshstart/freshstart/internal/service"
	"github.com/freshstart/freshstart/pkg/entity"
	"github.com/freshstart/freshstart/pkg/httputil"
)

type CreatePostRequest struct {
	Text      string `json:"text"`
	ImagePath string `json:"image_path"`
}

type FeedResponse struct {
	Posts      []*entity.PostView `json:"posts"`
	NextCursor *string            `json:"next_cursor"`
}

func (s *Server) CreatePost(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("create post error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	var req CreatePostRequest
	defer r.Body.Close()
	err = sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("create post error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	post, err := s.postsService.Create(ctx, uid, &service.CreatePostRequest{
		Text:      req.Text,
		ImagePath: req.ImagePath,
	})
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrInvalidInput):
			logger.Error("create post error: validation failed")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "text is required", nil)
		case errors.Is(err, errorvalues.ErrUserNotFound):
			logger.Error("create post error: unexist user")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "couldn't create post: user doesn't exists", nil)
		default:
			logger.Error("create post error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while creating post", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, post)
	logger.Info("post created")
}

func (s *Server) GetFeed(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("get feed error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	limit, err := strconv.Atoi(r.URL.Query().Get("limit"))
	if err != nil || limit < 1 || limit > 50 {
		limit = 10
	}
	var cursor int64
	if raw := r.URL.Query().Get("cursor"); raw != "" {
		cursor, err = strconv.ParseInt(raw, 10, 64)
		if err != nil || cursor < 1 {
			logger.Error("get feed error: invalid cursor")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid cursor", nil)
			return
		}
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*15)
	defer cancel()
	page, err := s.postsService.GetFeed(ctx, uid, cursor, limit)
	if err != nil {
		logger.Error("getting feed error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error while getting feed", nil)
		return
	}
	resp := FeedResponse{Posts: page.Posts}
	if page.NextCursor != nil {
		next := strconv.FormatInt(*page.NextCursor, 10)
		resp.NextCursor = &next
	}
	httputil.WriteJSONResponse(w, http.StatusOK, resp)
	logger.Info("feed provided")
}

func (s *Server) GetPost(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("get post error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	id, err := parseIDPathValue(r, "id")
	if err != nil {
		logger.Error("get post error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid post id in path value", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	post, err := s.postsService.GetByID(ctx, uid, id)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrPostNotFound):
			logger.Error("get post error: unexist post")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "post doesn't exist", nil)
		default:
			logger.Error("get post error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while getting post", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, post)
	logger.Info("post provided")
}

func (s *Server) UpdatePost(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("update post error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	id, err := parseIDPathValue(r, "id")
	if err != nil {
		logger.Error("update post error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid post id in path value", nil)
		return
	}
	var req CreatePostRequest
	defer r.Body.Close()
	err = sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("update post error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	post, err := s.postsService.Update(ctx, uid, id, &service.UpdatePostRequest{
		Text:      req.Text,
		ImagePath: req.ImagePath,
	})
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrInvalidInput):
			logger.Error("update post error: validation failed")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "text is required", nil)
		case errors.Is(err, errorvalues.ErrPostNotFound):
			logger.Error("update post error: unexist post")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "post doesn't exist", nil)
		case errors.Is(err, errorvalues.ErrWrongOwner):
			logger.Error("update post error: post has different owner")
			httputil.WriteErrorResponse(w, http.StatusForbidden, "post belongs to another user", nil)
		default:
			logger.Error("update post error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while updating post", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, post)
	logger.Info("post updated")
}

func (s *Server) DeletePost(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("post deletion error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	id, err := parseIDPathValue(r, "id")
	if err != nil {
		logger.Error("post deletion error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid post id in path value", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	err = s.postsService.Delete(ctx, uid, id)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrPostNotFound):
			logger.Error("post deletion error: unexist post")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "post doesn't exist", nil)
		case errors.Is(err, errorvalues.ErrWrongOwner):
			logger.Error("post deletion error: post has different owner")
			httputil.WriteErrorResponse(w, http.StatusForbidden, "post belongs to another user", nil)
		default:
			logger.Error("post deletion error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while deleting post", nil)
		}
		return
	}
	httputil.WriteMessageResponse(w, http.StatusOK, "post deleted")
	logger.Info("post deleted")
}

func parseIDPathValue(r *http.Request, key string) (int64, error) {
	id, err := strconv.ParseInt(r.PathValue(key), 10, 64)
	if err != nil || id < 1 {
		return 0, errors.New("invalid id path value")
	}
	return id, nil
}
