package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"

	errorvalues "github.com/freshstart/freshstart/internal/error_values"
	"github.com/freshstart/freshstart/pkg/entity"
	"github.com/freshstart/freshstart/pkg/httputil"
)

type UpdateQuittingDateRequest struct {
	NewDate string `json:"new_date"`
}

type QuittingHistoryResponse struct {
	History        []*entity.QuittingAttempt `json:"history"`
	CurrentAttempt *entity.QuittingStats     `json:"current_attempt"`
}

func (s *Server) GetQuittingStats(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("quitting stats error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	stats, err := s.quittingService.Stats(ctx, uid)
	if err != nil {
		s.writeQuittingError(w, logger, "quitting stats", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, stats)
	logger.Info("quitting stats provided")
}

func (s *Server) StartQuitting(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("quitting start error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	stats, err := s.quittingService.Start(ctx, uid)
	if err != nil {
		s.writeQuittingError(w, logger, "quitting start", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, stats)
	logger.Info("quitting attempt started")
}

func (s *Server) StopQuitting(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("quitting stop error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	attempt, err := s.quittingService.Stop(ctx, uid)
	if err != nil {
		if errors.Is(err, errorvalues.ErrNoActiveAttempt) {
			logger.Error("quitting stop error: no active attempt")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "no active quitting attempt", nil)
			return
		}
		s.writeQuittingError(w, logger, "quitting stop", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{
		"message":       "quitting attempt stopped",
		"days_survived": attempt.DaysSurvived,
	})
	logger.Info("quitting attempt stopped")
}

func (s *Server) UpdateQuittingDate(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("quitting date update error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	var req UpdateQuittingDateRequest
	defer r.Body.Close()
	err = sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil || req.NewDate == "" {
		logger.Error("quitting date update error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "new_date is required", nil)
		return
	}
	date, err := time.Parse(time.RFC3339, req.NewDate)
	if err != nil {
		logger.Error("quitting date update error: unparseable date")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid date format", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	stats, err := s.quittingService.UpdateDate(ctx, uid, date)
	if err != nil {
		if errors.Is(err, errorvalues.ErrInvalidDate) {
			logger.Error("quitting date update error: date in the future")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "date cannot be in the future", nil)
			return
		}
		s.writeQuittingError(w, logger, "quitting date update", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, stats)
	logger.Info("quitting date updated")
}

func (s *Server) GetQuittingHistory(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("quitting history error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	s.writeQuittingHistory(w, r, uid, false)
}

func (s *Server) GetUserQuittingStats(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	userID, err := uuid.Parse(r.PathValue("userId"))
	if err != nil {
		logger.Error("public quitting stats error: invalid user id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid user id in path value", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	stats, err := s.quittingService.PublicStats(ctx, userID)
	if err != nil {
		s.writeQuittingError(w, logger, "public quitting stats", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, stats)
	logger.Info("public quitting stats provided")
}

func (s *Server) GetUserQuittingHistory(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	userID, err := uuid.Parse(r.PathValue("userId"))
	if err != nil {
		logger.Error("public quitting history error: invalid user id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid user id in path value", nil)
		return
	}
	s.writeQuittingHistory(w, r, userID, true)
}

func (s *Server) writeQuittingHistory(w http.ResponseWriter, r *http.Request, userID uuid.UUID, public bool) {
	logger := GetLoggerFromCtx(r.Context())
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	var (
		history []*entity.QuittingAttempt
		stats   *entity.QuittingStats
		err     error
	)
	if public {
		history, err = s.quittingService.PublicHistory(ctx, userID)
	} else {
		history, err = s.quittingService.History(ctx, userID)
	}
	if err != nil {
		s.writeQuittingError(w, logger, "quitting history", err)
		return
	}
	stats, err = s.quittingService.Stats(ctx, userID)
	if err != nil {
		s.writeQuittingError(w, logger, "quitting history", err)
		return
	}
	resp := QuittingHistoryResponse{History: history}
	if stats.IsActive {
		resp.CurrentAttempt = stats
	}
	httputil.WriteJSONResponse(w, http.StatusOK, resp)
	logger.Info("quitting history provided")
}

func (s *Server) writeQuittingError(w http.ResponseWriter, logger *slog.Logger, op string, err error) {
	if errors.Is(err, errorvalues.ErrUserNotFound) {
		logger.Error(op + " error: unexist user")
		httputil.WriteErrorResponse(w, http.StatusNotFound, "user doesn't exist", nil)
		return
	}
	logger.Error(op+" error: service error", slog.String("error", err.Error()))
	httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error", nil)
}
