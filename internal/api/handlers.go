package api

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	errorvalues "github.com/limbo/frisfocus/internal/error_values"
	"github.com/limbo/frisfocus/internal/rules"
	"github.com/limbo/frisfocus/internal/service"
	"github.com/limbo/frisfocus/pkg/entity"
	"github.com/limbo/frisfocus/pkg/httputil"
)

type GetTotalResponse struct {
	UserID  string `json:"uid"`
	FpTotal int64  `json:"fp_total"`
}

type GetActivityResponse struct {
	UserID  string                       `json:"uid"`
	Page    int                          `json:"page"`
	Limit   int                          `json:"limit"`
	Entries []*entity.FpActivityLogEntry `json:"entries"`
}

type GetLeaderboardResponse struct {
	Scope   string                    `json:"scope"`
	Period  string                    `json:"period"`
	Entries []entity.LeaderboardEntry `json:"entries"`
}

type GetRulesResponse struct {
	Rules []rules.Rule `json:"rules"`
}

type AwardRequest struct {
	UserID         string `json:"user_id" validate:"required,uuid"`
	EventType      string `json:"event_type" validate:"required,max=64"`
	CheckDuplicate bool   `json:"check_duplicate"`
	ResourceID     string `json:"resource_id" validate:"max=255"`
}

func (s *Server) GetTotal(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("get total error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*5)
	defer cancel()
	total, err := s.activityService.GetTotal(ctx, uid)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			logger.Error("get total error: unexist user")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "user not found", nil)
			return
		}
		logger.Error("get total error: service error", zap.Error(err))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error while getting fp total", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, GetTotalResponse{
		UserID:  uid.String(),
		FpTotal: total,
	})
}

func (s *Server) GetActivity(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("get activity error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	limit, err := strconv.Atoi(r.URL.Query().Get("limit"))
	if err != nil || limit < 1 || limit > 100 {
		limit = 20
	}
	page, err := strconv.Atoi(r.URL.Query().Get("page"))
	if err != nil || page < 1 {
		page = 1
	}
	offset := (page - 1) * limit
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*15)
	defer cancel()
	entries, err := s.activityService.GetActivity(ctx, uid, service.PaginationOpts{
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		logger.Error("getting activity log error", zap.Error(err))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error while getting activity log", nil)
		return
	}
	if entries == nil {
		entries = make([]*entity.FpActivityLogEntry, 0)
	}
	httputil.WriteJSONResponse(w, http.StatusOK, GetActivityResponse{
		UserID:  uid.String(),
		Page:    page,
		Limit:   limit,
		Entries: entries,
	})
	logger.Debug("activity log provided", zap.Int("count", len(entries)))
}

func (s *Server) GetLeaderboard(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("get leaderboard error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	query := service.LeaderboardQuery{
		Scope:  r.URL.Query().Get("scope"),
		Period: r.URL.Query().Get("period"),
		UserID: uid,
		Limit:  10,
	}
	if query.Scope == "" {
		query.Scope = service.ScopeAll
	}
	if query.Period == "" {
		query.Period = service.PeriodAllTime
	}
	if raw := r.URL.Query().Get("limit"); raw != "" {
		query.Limit, err = strconv.Atoi(raw)
		if err != nil {
			logger.Error("get leaderboard error: invalid limit")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid limit", err)
			return
		}
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	entries, err := s.leaderboardService.GetLeaderboard(ctx, query)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrInvalidQuery), errors.Is(err, errorvalues.ErrScopeRequiresUser):
			logger.Error("get leaderboard error: invalid query", zap.Error(err))
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid leaderboard query", err)
		default:
			logger.Error("get leaderboard error: service error", zap.Error(err))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error while building leaderboard", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, GetLeaderboardResponse{
		Scope:   query.Scope,
		Period:  query.Period,
		Entries: entries,
	})
}

func (s *Server) GetRules(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSONResponse(w, http.StatusOK, GetRulesResponse{
		Rules: s.awardService.Rules(),
	})
}

// AwardFp is called by other backend services. The body is always the award
// result, the status code mirrors its outcome.
func (s *Server) AwardFp(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req AwardRequest
	if err := httputil.DecodeJSONBody(w, r, &req); err != nil {
		logger.Error("award error: invalid body", zap.Error(err))
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	if err := service.Validate(req); err != nil {
		logger.Error("award error: validation failed", zap.Error(err))
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", err)
		return
	}
	uid := uuid.MustParse(req.UserID)
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	result := s.awardService.AwardFp(ctx, uid, req.EventType, &service.AwardMetadata{
		CheckDuplicate: req.CheckDuplicate,
		ResourceID:     req.ResourceID,
	})
	httputil.WriteJSONResponse(w, awardStatus(result.Outcome), result)
}

func awardStatus(outcome service.AwardOutcome) int {
	switch outcome {
	case service.OutcomeAwarded:
		return http.StatusOK
	case service.OutcomeDuplicate:
		return http.StatusConflict
	case service.OutcomeUnknownEvent:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
