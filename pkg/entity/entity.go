package entity

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID          uuid.UUID `json:"uid"`
	DisplayName string    `json:"display_name"`
	AvatarURL   *string   `json:"avatar_url,omitempty"`
	FpTotal     int64     `json:"fp_total"`
	CreatedAt   time.Time `json:"created_at"`
}

// Append-only ledger row. Description is copied from the rule at award time.
type FpActivityLogEntry struct {
	ID          int64     `json:"id"`
	UserID      uuid.UUID `json:"uid"`
	EventType   string    `json:"event_type"`
	FpAmount    int       `json:"fp_amount"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

// For period boards FpTotal holds the sum of the period's log entries.
type LeaderboardEntry struct {
	Rank        int       `json:"rank"`
	UserID      uuid.UUID `json:"uid"`
	DisplayName string    `json:"display_name"`
	AvatarURL   *string   `json:"avatar_url,omitempty"`
	FpTotal     int64     `json:"fp_total"`
}

type TotalDrift struct {
	UserID      uuid.UUID `json:"uid"`
	StoredTotal int64     `json:"stored_total"`
	LoggedTotal int64     `json:"logged_total"`
}
