package api

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/bytedance/sonic"
	"github.com/limbo/healthydev/internal/service"
	"github.com/limbo/healthydev/pkg/entity"
	"github.com/limbo/healthydev/pkg/httputil"
)

const (
	maxHeatmapDays     = 3 * 365
	defaultHeatmapDays = 365
)

type AppendActivityRequest struct {
	ActivityType    string         `json:"activity_type"`
	Title           string         `json:"title"`
	DurationMinutes int            `json:"duration_minutes"`
	CompletedAt     *time.Time     `json:"completed_at,omitempty"`
	Metadata        map[string]any `json:"metadata,omitempty"`
}

type ActivitiesResponse struct {
	From       string            `json:"from"`
	To         string            `json:"to"`
	Activities []entity.Activity `json:"activities"`
}

func (s *Server) GetStreaks(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("get streaks error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	streaks, err := s.streakService.Streaks(ctx, uid)
	if err != nil {
		writeServiceError(w, logger, "get streaks", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{"streaks": streaks})
}

// GetStreak answers with a zero streak for a type that never advanced.
func (s *Server) GetStreak(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("get streak error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	streakType := r.PathValue("type")
	if streakType == "" {
		logger.Error("get streak error: empty type")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "streak type required", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	streak, err := s.streakService.CurrentStreak(ctx, uid, streakType)
	if err != nil {
		writeServiceError(w, logger, "get streak", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, streak)
}

func (s *Server) GetActivities(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("get activities error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	from, errFrom := time.Parse(time.DateOnly, r.URL.Query().Get("from"))
	to, errTo := time.Parse(time.DateOnly, r.URL.Query().Get("to"))
	if errFrom != nil || errTo != nil {
		logger.Error("get activities error: invalid range")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "from and to must be dates formatted as YYYY-MM-DD", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*15)
	defer cancel()
	activities, err := s.activityService.QueryRange(ctx, uid, from, to)
	if err != nil {
		writeServiceError(w, logger, "get activities", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, ActivitiesResponse{
		From:       from.Format(time.DateOnly),
		To:         to.Format(time.DateOnly),
		Activities: activities,
	})
	logger.Info("activities provided", "count", len(activities))
}

func (s *Server) AppendActivity(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("append activity error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	var req AppendActivityRequest
	defer r.Body.Close()
	if err = sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Error("append activity error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	appendReq := &service.AppendActivityRequest{
		ActivityType:    req.ActivityType,
		Title:           req.Title,
		DurationMinutes: req.DurationMinutes,
		Metadata:        req.Metadata,
	}
	if req.CompletedAt != nil {
		appendReq.CompletedAt = *req.CompletedAt
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	activity, err := s.activityService.Append(ctx, uid, appendReq)
	if err != nil {
		writeServiceError(w, logger, "append activity", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, activity)
	logger.Info("activity logged")
}

func (s *Server) GetActivitiesForDate(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("get day activities error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	date, err := time.Parse(time.DateOnly, r.PathValue("date"))
	if err != nil {
		logger.Error("get day activities error: invalid date in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "date must be formatted as YYYY-MM-DD", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	activities, err := s.activityService.ActivitiesForDate(ctx, uid, date)
	if err != nil {
		writeServiceError(w, logger, "get day activities", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, ActivitiesResponse{
		From:       date.Format(time.DateOnly),
		To:         date.Format(time.DateOnly),
		Activities: activities,
	})
}

func (s *Server) GetHeatmap(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("get heatmap error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	days := defaultHeatmapDays
	if raw := r.URL.Query().Get("days"); raw != "" {
		days, err = strconv.Atoi(raw)
		if err != nil || days < 1 || days > maxHeatmapDays {
			logger.Error("get heatmap error: invalid days")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "days must be between 1 and "+strconv.Itoa(maxHeatmapDays), nil)
			return
		}
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*15)
	defer cancel()
	heatmap, err := s.activityService.Heatmap(ctx, uid, days)
	if err != nil {
		writeServiceError(w, logger, "get heatmap", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{"days": heatmap})
}

func (s *Server) GetWeeklyStats(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("get weekly stats error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	stats, err := s.activityService.WeeklyStats(ctx, uid)
	if err != nil {
		writeServiceError(w, logger, "get weekly stats", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, stats)
}
