package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"

	errorvalues "github.com/grebnev/fitmate/internal/error_values"
	"github.com/grebnev/fitmate/internal/service"
	"github.com/grebnev/fitmate/pkg/entity"
	"github.com/grebnev/fitmate/pkg/httputil"
)

type SaveResultRequest struct {
	ExerciseID   string   `json:"exerciseId"`
	ExerciseName string   `json:"exerciseName"`
	Date         string   `json:"date,omitempty"`
	WorkoutID    *string  `json:"workoutId,omitempty"`
	SessionID    *string  `json:"sessionId,omitempty"`
	Weight       *float64 `json:"weight,omitempty"`
	Reps         *int     `json:"reps,omitempty"`
	Hits         *int     `json:"hits,omitempty"`
	Misses       *int     `json:"misses,omitempty"`
}

type GetResultsResponse struct {
	UserID  string                  `json:"uid"`
	Results []entity.ExerciseResult `json:"results"`
}

type GetStatsResponse struct {
	UserID string                 `json:"uid"`
	Stats  []entity.ExerciseStats `json:"stats"`
}

type SaveStepsRequest struct {
	Date  string `json:"date,omitempty"`
	Steps int    `json:"steps"`
}

type GetStepsLogResponse struct {
	UserID  string              `json:"uid"`
	Entries []entity.StepsEntry `json:"entries"`
}

// Mobile clients send either a full timestamp or a bare day.
func parseClientDate(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", value)
}

func (s *Server) SaveResult(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("save result error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	var req SaveResultRequest
	defer r.Body.Close()
	err = sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("save result error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	date, err := parseClientDate(req.Date)
	if err != nil {
		logger.Error("save result error: invalid date")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid date format", nil)
		return
	}
	var workoutID *uuid.UUID
	if req.WorkoutID != nil {
		parsed, err := uuid.Parse(*req.WorkoutID)
		if err != nil {
			logger.Error("save result error: invalid workout id")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid workout id", nil)
			return
		}
		workoutID = &parsed
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	result, err := s.resultsService.SaveResult(ctx, uid, &service.SaveResultRequest{
		ExerciseID:   req.ExerciseID,
		ExerciseName: req.ExerciseName,
		Date:         date,
		WorkoutID:    workoutID,
		SessionID:    req.SessionID,
		Weight:       req.Weight,
		Reps:         req.Reps,
		Hits:         req.Hits,
		Misses:       req.Misses,
	})
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			logger.Error("save result error: unexist user")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "user doesn't exist", nil)
			return
		}
		logger.Error("save result error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while saving result", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, result)
	logger.Info("exercise result saved", slog.String("exercise_id", result.ExerciseID))
}

func (s *Server) GetResults(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("get results error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	exerciseID := r.URL.Query().Get("exerciseId")
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*15)
	defer cancel()
	results, err := s.resultsService.GetResults(ctx, uid, exerciseID)
	if err != nil {
		logger.Error("getting results error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error while getting results", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, GetResultsResponse{
		UserID:  uid.String(),
		Results: results,
	})
	logger.Info("results provided")
}

func (s *Server) GetStats(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("get stats error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*15)
	defer cancel()
	stats, err := s.resultsService.GetStats(ctx, uid)
	if err != nil {
		logger.Error("getting stats error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error while getting stats", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, GetStatsResponse{
		UserID: uid.String(),
		Stats:  stats,
	})
	logger.Info("stats provided")
}

func (s *Server) SaveSteps(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("save steps error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	var req SaveStepsRequest
	defer r.Body.Close()
	err = sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("save steps error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	date, err := parseClientDate(req.Date)
	if err != nil {
		logger.Error("save steps error: invalid date")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid date format", nil)
		return
	}
	if date.IsZero() {
		date = time.Now().UTC()
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	entry, err := s.stepsService.SaveEntry(ctx, uid, &service.SaveStepsRequest{
		Date:  date,
		Steps: req.Steps,
	})
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrStepsDateNotAllowed):
			logger.Error("save steps error: future date")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "steps date is in the future", nil)
		case errors.Is(err, errorvalues.ErrUserNotFound):
			logger.Error("save steps error: unexist user")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "user doesn't exist", nil)
		default:
			logger.Error("save steps error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while saving steps", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, entry)
	logger.Info("steps entry saved")
}

func (s *Server) GetStepsLog(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("get steps log error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	date, err := parseClientDate(r.URL.Query().Get("date"))
	if err != nil {
		logger.Error("get steps log error: invalid date")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid date format", nil)
		return
	}
	limit, err := strconv.Atoi(r.URL.Query().Get("limit"))
	if err != nil || limit < 1 || limit > 365 {
		limit = 30
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*15)
	defer cancel()
	entries, err := s.stepsService.GetLog(ctx, uid, date, limit)
	if err != nil {
		logger.Error("getting steps log error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error while getting steps log", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, GetStepsLogResponse{
		UserID:  uid.String(),
		Entries: entries,
	})
	logger.Info("steps log provided")
}
