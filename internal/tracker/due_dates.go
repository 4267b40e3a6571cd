// Package tracker derives the display state of due-date items and boosters.
// Everything here is a pure function of its arguments.
package tracker

import (
	"time"

	"github.com/google/uuid"

	errorvalues "github.com/limbo/frisfocus/internal/error_values"
)

type DueDateStatus string

const (
	StatusPending   DueDateStatus = "pending"
	StatusCompleted DueDateStatus = "completed"
	StatusMissed    DueDateStatus = "missed"
)

const (
	// Completed items disappear from the working set this many days after completion.
	PurgeAfterDays = 14
	// Pending items due within this many days are urgent.
	UrgentWithinDays = 2
)

// DueDateItem is a deadline with a completion reward and a missed penalty.
// DueDate is a calendar date, its clock part is ignored.
type DueDateItem struct {
	ID           string        `json:"id"`
	Title        string        `json:"title"`
	DueDate      time.Time     `json:"due_date"`
	PointValue   int           `json:"point_value"`
	PenaltyValue int           `json:"penalty_value"`
	Status       DueDateStatus `json:"status"`
	IsRecurring  bool          `json:"is_recurring"`
	CompletedAt  *time.Time    `json:"completed_at,omitempty"`
}

type DueDateView struct {
	DueDateItem
	DisplayStatus DueDateStatus `json:"display_status"`
	DaysUntil     int           `json:"days_until"`
	Urgent        bool          `json:"urgent"`
}

type DueDateSummary struct {
	Items        []DueDateView `json:"items"`
	EarnedPoints int           `json:"earned_points"`
	LostPoints   int           `json:"lost_points"`
	NetPoints    int           `json:"net_points"`
}

// DeriveDueDates projects items onto the calendar day of asOf. Pending items
// past their date show as missed, completed items older than PurgeAfterDays
// are dropped. Input order is kept.
func DeriveDueDates(items []DueDateItem, asOf time.Time) DueDateSummary {
	loc := asOf.Location()
	today := civilDay(asOf, loc)
	summary := DueDateSummary{Items: make([]DueDateView, 0, len(items))}
	for _, item := range items {
		if item.Status == StatusCompleted && item.CompletedAt != nil &&
			daysBetween(civilDay(*item.CompletedAt, loc), today) >= PurgeAfterDays {
			continue
		}
		view := DueDateView{
			DueDateItem:   item,
			DisplayStatus: item.Status,
			DaysUntil:     daysBetween(today, calendarDate(item.DueDate)),
		}
		if item.Status == StatusPending && view.DaysUntil < 0 {
			view.DisplayStatus = StatusMissed
		}
		view.Urgent = view.DisplayStatus == StatusPending &&
			view.DaysUntil >= 0 && view.DaysUntil <= UrgentWithinDays

		switch view.DisplayStatus {
		case StatusCompleted:
			summary.EarnedPoints += item.PointValue
		case StatusMissed:
			summary.LostPoints += item.PenaltyValue
		}
		summary.Items = append(summary.Items, view)
	}
	summary.NetPoints = summary.EarnedPoints - summary.LostPoints
	return summary
}

// Complete marks a pending or missed item done at the given moment. Late
// completion is allowed. An already completed item is returned unchanged.
func Complete(item DueDateItem, at time.Time) DueDateItem {
	if item.Status == StatusCompleted {
		return item
	}
	item.Status = StatusCompleted
	item.CompletedAt = &at
	return item
}

// Undo reopens a completed item. If its date has passed it will derive as missed again.
func Undo(item DueDateItem) (DueDateItem, error) {
	if item.Status != StatusCompleted {
		return item, errorvalues.ErrNotCompleted
	}
	item.Status = StatusPending
	item.CompletedAt = nil
	return item, nil
}

// ScheduleNext spawns the next occurrence of a completed recurring item.
// The original item is not modified.
func ScheduleNext(item DueDateItem, nextDue time.Time) (DueDateItem, error) {
	if !item.IsRecurring {
		return DueDateItem{}, errorvalues.ErrNotRecurring
	}
	if item.Status != StatusCompleted {
		return DueDateItem{}, errorvalues.ErrNotCompleted
	}
	next := calendarDate(nextDue)
	if !next.After(calendarDate(item.DueDate)) {
		return DueDateItem{}, errorvalues.ErrNextDueNotLater
	}
	return DueDateItem{
		ID:           uuid.NewString(),
		Title:        item.Title,
		DueDate:      next,
		PointValue:   item.PointValue,
		PenaltyValue: item.PenaltyValue,
		Status:       StatusPending,
		IsRecurring:  true,
	}, nil
}

// calendarDate keeps the year, month and day of t as written.
func calendarDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// civilDay is the calendar date of instant t as seen in loc.
func civilDay(t time.Time, loc *time.Location) time.Time {
	return calendarDate(t.In(loc))
}

// daysBetween counts whole days from a to b. Both must be calendar dates.
func daysBetween(a, b time.Time) int {
	return int(b.Sub(a).Hours() / 24)
}
