package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/limbo/frisfocus/internal/metrics"
	"github.com/limbo/frisfocus/internal/repository"
	"github.com/limbo/frisfocus/internal/rules"
	"github.com/limbo/frisfocus/pkg/entity"
)

type AwardService struct {
	rules        *rules.Table
	guard        *DuplicateGuard
	activityRepo repository.ActivityRepositoryI
	usersRepo    repository.UsersRepositoryI
	cache        LeaderboardCache
	logger       *zap.Logger
}

func NewAwardService(
	table *rules.Table,
	activityRepo repository.ActivityRepositoryI,
	usersRepo repository.UsersRepositoryI,
	clock Clock,
	logger *zap.Logger,
) *AwardService {
	if table == nil || activityRepo == nil || usersRepo == nil {
		panic("award service: nil rule table or repositories")
	}
	return &AwardService{
		rules:        table,
		guard:        NewDuplicateGuard(table, activityRepo, clock),
		activityRepo: activityRepo,
		usersRepo:    usersRepo,
		logger:       logger,
	}
}

// WithCache makes successful awards invalidate cached leaderboards.
func (as *AwardService) WithCache(cache LeaderboardCache) *AwardService {
	as.cache = cache
	return as
}

func (as *AwardService) Rules() []rules.Rule {
	return as.rules.All()
}

func (as *AwardService) AwardFp(ctx context.Context, uid uuid.UUID, eventType string, meta *AwardMetadata) AwardResult {
	started := time.Now()
	result := as.award(ctx, uid, eventType, meta)
	metrics.AwardDuration.Observe(time.Since(started).Seconds())
	metrics.AwardsTotal.WithLabelValues(metricEventLabel(as.rules, eventType), string(result.Outcome)).Inc()
	if result.Success {
		metrics.FpAwarded.WithLabelValues(eventType).Add(float64(result.FpAwarded))
	}
	return result
}

func (as *AwardService) award(ctx context.Context, uid uuid.UUID, eventType string, meta *AwardMetadata) AwardResult {
	if meta == nil {
		meta = &AwardMetadata{}
	}
	logger := as.logger.With(
		zap.String("uid", uid.String()),
		zap.String("event_type", eventType),
	)
	if meta.ResourceID != "" {
		logger = logger.With(zap.String("resource_id", meta.ResourceID))
	}
	rule, ok := as.rules.Lookup(eventType)
	if !ok {
		logger.Warn("award rejected: unknown event type")
		return AwardResult{
			Message: fmt.Sprintf("unknown event type: %s", eventType),
			Outcome: OutcomeUnknownEvent,
		}
	}
	var (
		since    time.Time
		windowed bool
	)
	if meta.CheckDuplicate {
		duplicate, err := as.guard.IsDuplicate(ctx, uid, eventType, meta.ResourceID)
		if err != nil {
			logger.Error("award failed: duplicate check error", zap.Error(err))
			return failedAward()
		}
		if duplicate {
			return as.duplicateAward(ctx, logger, uid, eventType, rule)
		}
		since, windowed = windowStart(rule.Window, as.guard.now())
	}
	entry := &entity.FpActivityLogEntry{
		UserID:      uid,
		EventType:   eventType,
		FpAmount:    rule.FpAmount,
		Description: rule.Description,
	}
	var (
		total int64
		err   error
	)
	if windowed {
		// re-checked under lock
		var awarded bool
		total, awarded, err = as.activityRepo.AwardOnce(ctx, entry, since)
		if err == nil && !awarded {
			return as.duplicateAward(ctx, logger, uid, eventType, rule)
		}
	} else {
		total, err = as.activityRepo.Award(ctx, entry)
	}
	if err != nil {
		logger.Error("award failed: persistence error", zap.Error(err))
		return failedAward()
	}
	if as.cache != nil {
		if err = as.cache.Invalidate(ctx); err != nil {
			logger.Warn("leaderboard cache invalidation failed", zap.Error(err))
		}
	}
	logger.Info("fp awarded", zap.Int("fp_awarded", rule.FpAmount), zap.Int64("new_total", total))
	id := entry.ID
	return AwardResult{
		Success:       true,
		FpAwarded:     rule.FpAmount,
		NewTotal:      total,
		Message:       fmt.Sprintf("awarded %d FP: %s", rule.FpAmount, rule.Description),
		ActivityLogID: &id,
		Outcome:       OutcomeAwarded,
	}
}

func (as *AwardService) duplicateAward(ctx context.Context, logger *zap.Logger, uid uuid.UUID, eventType string, rule rules.Rule) AwardResult {
	total, err := as.usersRepo.GetFpTotal(ctx, uid)
	if err != nil {
		logger.Error("reading total for duplicate award failed", zap.Error(err))
		total = 0
	}
	logger.Debug("award skipped: already awarded in window", zap.String("window", string(rule.Window)))
	return AwardResult{
		NewTotal: total,
		Message:  fmt.Sprintf("FP already awarded for %s in this %s window", eventType, rule.Window),
		Outcome:  OutcomeDuplicate,
	}
}

func failedAward() AwardResult {
	return AwardResult{
		Message: "failed to award FP",
		Outcome: OutcomeFailed,
	}
}

// Unknown event types share one label to keep metric cardinality bounded.
func metricEventLabel(table *rules.Table, eventType string) string {
	if _, ok := table.Lookup(eventType); ok {
		return eventType
	}
	return "unknown"
}
