package api

import (
	"context"
	"net/http"
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"github.com/limbo/healthydev/internal/service"
	"github.com/limbo/healthydev/pkg/entity"
	"github.com/limbo/healthydev/pkg/httputil"
)

type CreateBlockRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	TimeRange   string `json:"time_range"`
	Type        string `json:"type"`
	Status      string `json:"status"`
}

type UpdateStatusRequest struct {
	Status string `json:"status"`
}

type ResetRequest struct {
	Confirm bool `json:"confirm"`
}

type ScheduleResponse struct {
	Date   string                 `json:"date"`
	Blocks []entity.ScheduleBlock `json:"blocks"`
}

type TransitionResponse struct {
	Block entity.ScheduleBlock `json:"block"`
	// Failed side effects of a completion; the status change itself is stored
	Notices []string `json:"notices,omitempty"`
}

func (s *Server) GetTodaySchedule(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("get schedule error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*15)
	defer cancel()
	blocks, err := s.scheduleService.LoadToday(ctx, uid)
	if err != nil {
		writeServiceError(w, logger, "get schedule", err)
		return
	}
	resp := ScheduleResponse{Blocks: blocks}
	if len(blocks) > 0 {
		resp.Date = blocks[0].ScheduledDate.Format(time.DateOnly)
	}
	httputil.WriteJSONResponse(w, http.StatusOK, resp)
	logger.Info("schedule provided")
}

func (s *Server) CreateBlock(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("create block error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	var req CreateBlockRequest
	defer r.Body.Close()
	if err = sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Error("create block error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	block, err := s.scheduleService.AddCustomBlock(ctx, uid, &service.CreateBlockRequest{
		Title:       req.Title,
		Description: req.Description,
		TimeRange:   req.TimeRange,
		Type:        entity.BlockType(req.Type),
		Status:      entity.BlockStatus(req.Status),
	})
	if err != nil {
		writeServiceError(w, logger, "create block", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, block)
	logger.Info("block created")
}

func (s *Server) UpdateBlockStatus(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("update status error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		logger.Error("update status error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid block id in path value", nil)
		return
	}
	var req UpdateStatusRequest
	defer r.Body.Close()
	if err = sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Error("update status error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*15)
	defer cancel()
	res, err := s.scheduleService.Transition(ctx, uid, id, entity.BlockStatus(req.Status))
	if err != nil {
		writeServiceError(w, logger, "update status", err)
		return
	}
	resp := TransitionResponse{Block: res.Block}
	for _, notice := range res.Notices {
		resp.Notices = append(resp.Notices, notice.Error())
	}
	if len(resp.Notices) > 0 {
		logger.Warn("status updated with failed side effects", "notices", resp.Notices)
	}
	httputil.WriteJSONResponse(w, http.StatusOK, resp)
	logger.Info("block status updated", "status", res.Block.Status)
}

func (s *Server) GetProgress(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("get progress error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*15)
	defer cancel()
	progress, err := s.scheduleService.Progress(ctx, uid)
	if err != nil {
		writeServiceError(w, logger, "get progress", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, progress)
}

// ResetProgress wipes streaks, today's statuses and the activity log of the caller.
func (s *Server) ResetProgress(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("reset error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	var req ResetRequest
	defer r.Body.Close()
	if err = sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Error("reset error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*20)
	defer cancel()
	if err = s.scheduleService.ResetAll(ctx, uid, req.Confirm); err != nil {
		writeServiceError(w, logger, "reset", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
	logger.Info("progress reset")
}
