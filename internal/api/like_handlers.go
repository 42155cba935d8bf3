package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	errorvalues "github.com/freshstart/freshstart/internal/error_values"
	"github.com/freshstart/freshstart/pkg/httputil"
)

func (s *Server) LikePost(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("like error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	postID, err := parseIDPathValue(r, "postId")
	if err != nil {
		logger.Error("like error: invalid post id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid post id in path value", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	err = s.likesService.Like(ctx, postID, uid)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrAlreadyLiked):
			logger.Error("like error: already liked")
			httputil.WriteErrorResponse(w, http.StatusConflict, "post already liked", nil)
		case errors.Is(err, errorvalues.ErrPostNotFound):
			logger.Error("like error: unexist post")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "post doesn't exist", nil)
		default:
			logger.Error("like error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while liking post", nil)
		}
		return
	}
	httputil.WriteMessageResponse(w, http.StatusCreated, "post liked")
	logger.Info("post liked")
}

func (s *Server) UnlikePost(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("unlike error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	postID, err := parseIDPathValue(r, "postId")
	if err != nil {
		logger.Error("unlike error: invalid post id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid post id in path value", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	err = s.likesService.Unlike(ctx, postID, uid)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrLikeNotFound):
			logger.Error("unlike error: like doesn't exist")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "like doesn't exist", nil)
		default:
			logger.Error("unlike error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while unliking post", nil)
		}
		return
	}
	httputil.WriteMessageResponse(w, http.StatusOK, "post unliked")
	logger.Info("post unliked")
}

func (s *Server) GetLikeInfo(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("like info error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	postID, err := parseIDPathValue(r, "postId")
	if err != nil {
		logger.Error("like info error: invalid post id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid post id in path value", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	info, err := s.likesService.Info(ctx, postID, uid)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrPostNotFound):
			logger.Error("like info error: unexist post")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "post doesn't exist", nil)
		default:
			logger.Error("like info error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while getting like info", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, info)
	logger.Info("like info provided")
}
