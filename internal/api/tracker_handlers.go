package api

import (
	"errors"
	"net/http"
	"time"

	"go.uber.org/zap"

	errorvalues "github.com/limbo/frisfocus/internal/error_values"
	"github.com/limbo/frisfocus/internal/service"
	"github.com/limbo/frisfocus/internal/tracker"
	"github.com/limbo/frisfocus/pkg/httputil"
)

type DueDateItemDTO struct {
	ID           string     `json:"id" validate:"required,max=64"`
	Title        string     `json:"title" validate:"required,max=200"`
	DueDate      string     `json:"due_date" validate:"required,calendar_date"`
	PointValue   int        `json:"point_value" validate:"min=0"`
	PenaltyValue int        `json:"penalty_value" validate:"min=0"`
	Status       string     `json:"status" validate:"required,oneof=pending completed missed"`
	IsRecurring  bool       `json:"is_recurring"`
	CompletedAt  *time.Time `json:"completed_at"`
}

func (d DueDateItemDTO) toItem() tracker.DueDateItem {
	due, _ := time.Parse(time.DateOnly, d.DueDate)
	return tracker.DueDateItem{
		ID:           d.ID,
		Title:        d.Title,
		DueDate:      due,
		PointValue:   d.PointValue,
		PenaltyValue: d.PenaltyValue,
		Status:       tracker.DueDateStatus(d.Status),
		IsRecurring:  d.IsRecurring,
		CompletedAt:  d.CompletedAt,
	}
}

func dueDateItemToDTO(item tracker.DueDateItem) DueDateItemDTO {
	return DueDateItemDTO{
		ID:           item.ID,
		Title:        item.Title,
		DueDate:      item.DueDate.Format(time.DateOnly),
		PointValue:   item.PointValue,
		PenaltyValue: item.PenaltyValue,
		Status:       string(item.Status),
		IsRecurring:  item.IsRecurring,
		CompletedAt:  item.CompletedAt,
	}
}

// DueDateViewDTO is a derived item in the same shape the derive endpoint
// accepts, plus the display fields.
type DueDateViewDTO struct {
	DueDateItemDTO
	DisplayStatus tracker.DueDateStatus `json:"display_status"`
	DaysUntil     int                   `json:"days_until"`
	Urgent        bool                  `json:"urgent"`
}

type DeriveDueDatesResponse struct {
	Items        []DueDateViewDTO `json:"items"`
	EarnedPoints int              `json:"earned_points"`
	LostPoints   int              `json:"lost_points"`
	NetPoints    int              `json:"net_points"`
}

func deriveResponse(summary tracker.DueDateSummary) DeriveDueDatesResponse {
	resp := DeriveDueDatesResponse{
		Items:        make([]DueDateViewDTO, 0, len(summary.Items)),
		EarnedPoints: summary.EarnedPoints,
		LostPoints:   summary.LostPoints,
		NetPoints:    summary.NetPoints,
	}
	for _, v := range summary.Items {
		resp.Items = append(resp.Items, DueDateViewDTO{
			DueDateItemDTO: dueDateItemToDTO(v.DueDateItem),
			DisplayStatus:  v.DisplayStatus,
			DaysUntil:      v.DaysUntil,
			Urgent:         v.Urgent,
		})
	}
	return resp
}

type DeriveDueDatesRequest struct {
	// Defaults to now in the service zone.
	AsOf  *time.Time       `json:"as_of"`
	Items []DueDateItemDTO `json:"items" validate:"max=1000,dive"`
}

type ScheduleNextRequest struct {
	Item        DueDateItemDTO `json:"item"`
	NextDueDate string         `json:"next_due_date" validate:"required,calendar_date"`
}

type ScheduleNextResponse struct {
	Item DueDateItemDTO `json:"item"`
}

type DeriveBoostersRequest struct {
	Boosters []tracker.Booster `json:"boosters" validate:"max=1000,dive"`
}

func (s *Server) DeriveDueDates(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req DeriveDueDatesRequest
	if !s.decodeValid(w, r, &req, "derive due dates") {
		return
	}
	asOf := time.Now().In(s.loc)
	if req.AsOf != nil {
		asOf = *req.AsOf
	}
	items := make([]tracker.DueDateItem, 0, len(req.Items))
	for _, d := range req.Items {
		items = append(items, d.toItem())
	}
	summary := tracker.DeriveDueDates(items, asOf)
	httputil.WriteJSONResponse(w, http.StatusOK, deriveResponse(summary))
	logger.Debug("due dates derived", zap.Int("items", len(summary.Items)))
}

func (s *Server) ScheduleNextDueDate(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req ScheduleNextRequest
	if !s.decodeValid(w, r, &req, "schedule next due date") {
		return
	}
	nextDue, _ := time.Parse(time.DateOnly, req.NextDueDate)
	next, err := tracker.ScheduleNext(req.Item.toItem(), nextDue)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrNotRecurring),
			errors.Is(err, errorvalues.ErrNotCompleted),
			errors.Is(err, errorvalues.ErrNextDueNotLater):
			logger.Error("schedule next due date error", zap.Error(err))
			httputil.WriteErrorResponse(w, http.StatusUnprocessableEntity, "can't schedule next occurrence", err)
		default:
			logger.Error("schedule next due date error: unexpected", zap.Error(err))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while scheduling", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, ScheduleNextResponse{Item: dueDateItemToDTO(next)})
}

func (s *Server) DeriveBoosters(w http.ResponseWriter, r *http.Request) {
	var req DeriveBoostersRequest
	if !s.decodeValid(w, r, &req, "derive boosters") {
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, tracker.SummarizeBoosters(req.Boosters))
}

// decodeValid writes a 400 and returns false when the body can't be decoded or validated.
func (s *Server) decodeValid(w http.ResponseWriter, r *http.Request, dst any, op string) bool {
	logger := GetLoggerFromCtx(r.Context())
	if err := httputil.DecodeJSONBody(w, r, dst); err != nil {
		logger.Error(op+" error: invalid body", zap.Error(err))
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return false
	}
	if err := service.Validate(dst); err != nil {
		logger.Error(op+" error: validation failed", zap.Error(err))
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", err)
		return false
	}
	return true
}
