package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/limbo/frisfocus/internal/rules"
	"github.com/limbo/frisfocus/pkg/entity"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mock_service.go -package=mocks

type AwardOutcome string

const (
	OutcomeAwarded      AwardOutcome = "awarded"
	OutcomeUnknownEvent AwardOutcome = "unknown_event"
	OutcomeDuplicate    AwardOutcome = "duplicate"
	OutcomeFailed       AwardOutcome = "failed"
)

type AwardMetadata struct {
	CheckDuplicate bool
	ResourceID     string
}

// AwardResult is returned for every award attempt, failed ones included.
type AwardResult struct {
	Success       bool         `json:"success"`
	FpAwarded     int          `json:"fp_awarded"`
	NewTotal      int64        `json:"new_total"`
	Message       string       `json:"message"`
	ActivityLogID *int64       `json:"activity_log_id,omitempty"`
	Outcome       AwardOutcome `json:"outcome"`
}

type PaginationOpts struct {
	Limit  int `validate:"min=1,max=100"`
	Offset int `validate:"min=0"`
}

const (
	ScopeAll     = "all"
	ScopeFriends = "friends"

	PeriodAllTime = "allTime"
	PeriodWeekly  = "weekly"
	PeriodMonthly = "monthly"
)

type LeaderboardQuery struct {
	Scope  string    `validate:"required,oneof=all friends"`
	Period string    `validate:"required,oneof=allTime weekly monthly"`
	UserID uuid.UUID `validate:"-"`
	Limit  int       `validate:"min=1,max=100"`
}

type AwardServiceI interface {
	// Awards the rule amount of eventType to uid. Never returns an error: failures are reported in the result
	AwardFp(ctx context.Context, uid uuid.UUID, eventType string, meta *AwardMetadata) AwardResult
	// Lists configured rules
	Rules() []rules.Rule
}

type ActivityServiceI interface {
	// Lists awards of uid newest first
	GetActivity(ctx context.Context, uid uuid.UUID, pagination PaginationOpts) ([]*entity.FpActivityLogEntry, error)
	// Returns stored running total of uid
	GetTotal(ctx context.Context, uid uuid.UUID) (int64, error)
}

type LeaderboardServiceI interface {
	// Ranks users by all-time total or by the sum of the current week or month
	GetLeaderboard(ctx context.Context, query LeaderboardQuery) ([]entity.LeaderboardEntry, error)
}

type UserServiceI interface {
	GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
}

// LeaderboardCache stores boards under generation-scoped keys. Get and Set
// take keys returned by Key
type LeaderboardCache interface {
	Key(ctx context.Context, key string) (string, error)
	Get(ctx context.Context, fullKey string) ([]entity.LeaderboardEntry, bool, error)
	Set(ctx context.Context, fullKey string, entries []entity.LeaderboardEntry) error
	Invalidate(ctx context.Context) error
}
