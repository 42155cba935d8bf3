package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/bytedance/sonic"

	errorvalues "github.com/freshstart/freshstart/internal/error_values"
	"github.com/freshstart/freshstart/pkg/entity"
	"github.com/freshstart/freshstart/pkg/httputil"
)

type CreateCommentRequest struct {
	Text string `json:"text"`
}

type CommentsResponse struct {
	Comments []*entity.CommentView `json:"comments"`
}

func (s *Server) CreateComment(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("create comment error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	postID, err := parseIDPathValue(r, "postId")
	if err != nil {
		logger.Error("create comment error: invalid post id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid post id in path value", nil)
		return
	}
	var req CreateCommentRequest
	defer r.Body.Close()
	err = sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("create comment error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	comment, err := s.commentsService.Create(ctx, uid, postID, req.Text)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrInvalidInput):
			logger.Error("create comment error: validation failed")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "text is required", nil)
		case errors.Is(err, errorvalues.ErrPostNotFound):
			logger.Error("create comment error: unexist post")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "post doesn't exist", nil)
		default:
			logger.Error("create comment error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while creating comment", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, comment)
	logger.Info("comment created")
}

func (s *Server) GetComments(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	postID, err := parseIDPathValue(r, "postId")
	if err != nil {
		logger.Error("get comments error: invalid post id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid post id in path value", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	comments, err := s.commentsService.ListByPost(ctx, postID)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrPostNotFound):
			logger.Error("get comments error: unexist post")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "post doesn't exist", nil)
		default:
			logger.Error("get comments error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while getting comments", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, CommentsResponse{Comments: comments})
	logger.Info("comments provided")
}

func (s *Server) DeleteComment(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("comment deletion error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	id, err := parseIDPathValue(r, "id")
	if err != nil {
		logger.Error("comment deletion error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid comment id in path value", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	err = s.commentsService.Delete(ctx, uid, id)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrCommentNotFound):
			logger.Error("comment deletion error: unexist comment")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "comment doesn't exist", nil)
		case errors.Is(err, errorvalues.ErrWrongOwner):
			logger.Error("comment deletion error: comment has different owner")
			httputil.WriteErrorResponse(w, http.StatusForbidden, "comment belongs to another user", nil)
		default:
			logger.Error("comment deletion error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while deleting comment", nil)
		}
		return
	}
	httputil.WriteMessageResponse(w, http.StatusOK, "comment deleted")
	logger.Info("comment deleted")
}
