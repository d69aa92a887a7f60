package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/grebnev/fitmate/pkg/entity"
	"github.com/grebnev/fitmate/pkg/httputil"
)

type GetAchievementsResponse struct {
	Achievements []entity.AchievementStatus `json:"achievements"`
}

type CheckAchievementsResponse struct {
	NewAchievements []entity.AwardedAchievement `json:"newAchievements"`
}

func (s *Server) GetAchievements(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("get achievements error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*15)
	defer cancel()
	statuses, err := s.achievementsService.GetAll(ctx, uid)
	if err != nil {
		logger.Error("getting achievements error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error while getting achievements", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, GetAchievementsResponse{
		Achievements: statuses,
	})
	logger.Info("achievements provided")
}

func (s *Server) CheckAchievements(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("check achievements error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	// Full history scan, so the timeout is wider than usual
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*30)
	defer cancel()
	awarded, err := s.achievementsService.CheckAndAward(ctx, uid)
	if err != nil {
		logger.Error("checking achievements error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error while checking achievements", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, CheckAchievementsResponse{
		NewAchievements: awarded,
	})
	if len(awarded) > 0 {
		logger.Info("new achievements awarded", slog.Int("count", len(awarded)))
	} else {
		logger.Info("no new achievements")
	}
}

func (s *Server) MarkAchievementNotified(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("mark notified error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	achievementID := r.PathValue("id")
	if achievementID == "" {
		logger.Error("mark notified error: empty achievement id")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid achievement id in path value", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	found, err := s.achievementsService.MarkPushNotified(ctx, uid, achievementID)
	if err != nil {
		logger.Error("mark notified error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while marking achievement", nil)
		return
	}
	if !found {
		// The mobile client retries these; a missing award is not an error
		logger.Info("mark notified: award doesn't exist", slog.String("achievement_id", achievementID))
		httputil.WriteSuccessResponse(w, false, "achievement isn't awarded to this user")
		return
	}
	httputil.WriteSuccessResponse(w, true, "achievement marked as notified")
	logger.Info("achievement marked as notified", slog.String("achievement_id", achievementID))
}
