package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	errorvalues "github.com/limbo/frisfocus/internal/error_values"
	"github.com/limbo/frisfocus/internal/metrics"
	"github.com/limbo/frisfocus/internal/repository"
	"github.com/limbo/frisfocus/pkg/entity"
)

type LeaderboardService struct {
	usersRepo    repository.UsersRepositoryI
	activityRepo repository.ActivityRepositoryI
	friendsRepo  repository.FriendshipsRepositoryI
	cache        LeaderboardCache
	now          Clock
	logger       *zap.Logger
}

func NewLeaderboardService(
	usersRepo repository.UsersRepositoryI,
	activityRepo repository.ActivityRepositoryI,
	friendsRepo repository.FriendshipsRepositoryI,
	clock Clock,
	logger *zap.Logger,
) *LeaderboardService {
	if usersRepo == nil || activityRepo == nil || friendsRepo == nil {
		panic("leaderboard service: nil repositories")
	}
	return &LeaderboardService{
		usersRepo:    usersRepo,
		activityRepo: activityRepo,
		friendsRepo:  friendsRepo,
		now:          clock,
		logger:       logger,
	}
}

func (ls *LeaderboardService) WithCache(cache LeaderboardCache) *LeaderboardService {
	ls.cache = cache
	return ls
}

// GetLeaderboard ranks by stored fp_total for allTime and by the log sum since
// the week or month start otherwise. Ties go to the smaller user id.
func (ls *LeaderboardService) GetLeaderboard(ctx context.Context, query LeaderboardQuery) ([]entity.LeaderboardEntry, error) {
	if err := validate.Struct(query); err != nil {
		return nil, errors.Join(errorvalues.ErrInvalidQuery, err)
	}
	if query.Scope == ScopeFriends && query.UserID == uuid.Nil {
		return nil, errorvalues.ErrScopeRequiresUser
	}
	fullKey, cachedEntries, ok := ls.cached(ctx, leaderboardCacheKey(query))
	if ok {
		return cachedEntries, nil
	}

	var uids []uuid.UUID
	if query.Scope == ScopeFriends {
		friends, err := ls.friendsRepo.AcceptedFriendIDs(ctx, query.UserID)
		if err != nil {
			return nil, errors.New("friendships repository error: " + err.Error())
		}
		uids = append([]uuid.UUID{query.UserID}, friends...)
	}

	var (
		entries []entity.LeaderboardEntry
		err     error
	)
	switch query.Period {
	case PeriodAllTime:
		entries, err = ls.usersRepo.TopByFpTotal(ctx, uids, query.Limit)
	case PeriodWeekly:
		entries, err = ls.activityRepo.TopBySumSince(ctx, WeekStart(ls.now()), uids, query.Limit)
	case PeriodMonthly:
		entries, err = ls.activityRepo.TopBySumSince(ctx, MonthStart(ls.now()), uids, query.Limit)
	}
	if err != nil {
		return nil, errors.New("leaderboard repository error: " + err.Error())
	}
	entries = rank(entries, query.Limit)
	ls.store(ctx, fullKey, entries)
	return entries, nil
}

// cached resolves key to the current cache generation and looks it up.
// The resolved key is empty when caching is off or the generation is unknown.
func (ls *LeaderboardService) cached(ctx context.Context, key string) (string, []entity.LeaderboardEntry, bool) {
	if ls.cache == nil {
		return "", nil, false
	}
	fullKey, err := ls.cache.Key(ctx, key)
	if err != nil {
		metrics.LeaderboardCacheLookups.WithLabelValues("error").Inc()
		ls.logger.Warn("leaderboard cache key resolving failed", zap.String("key", key), zap.Error(err))
		return "", nil, false
	}
	entries, ok, err := ls.cache.Get(ctx, fullKey)
	switch {
	case err != nil:
		metrics.LeaderboardCacheLookups.WithLabelValues("error").Inc()
		ls.logger.Warn("leaderboard cache read failed", zap.String("key", fullKey), zap.Error(err))
		return fullKey, nil, false
	case !ok:
		metrics.LeaderboardCacheLookups.WithLabelValues("miss").Inc()
		return fullKey, nil, false
	}
	metrics.LeaderboardCacheLookups.WithLabelValues("hit").Inc()
	return fullKey, entries, true
}

// store writes under the key resolved before the board was read, so a board
// that raced with an invalidation lands in the stale generation.
func (ls *LeaderboardService) store(ctx context.Context, fullKey string, entries []entity.LeaderboardEntry) {
	if ls.cache == nil || fullKey == "" {
		return
	}
	if err := ls.cache.Set(ctx, fullKey, entries); err != nil {
		ls.logger.Warn("leaderboard cache write failed", zap.String("key", fullKey), zap.Error(err))
	}
}

// rank truncates sorted entries to limit and numbers them from 1.
func rank(entries []entity.LeaderboardEntry, limit int) []entity.LeaderboardEntry {
	if entries == nil {
		entries = make([]entity.LeaderboardEntry, 0)
	}
	if len(entries) > limit {
		entries = entries[:limit]
	}
	for i := range entries {
		entries[i].Rank = i + 1
	}
	return entries
}

func leaderboardCacheKey(query LeaderboardQuery) string {
	key := fmt.Sprintf("%s:%s:%d", query.Scope, query.Period, query.Limit)
	if query.Scope == ScopeFriends {
		key += ":" + query.UserID.String()
	}
	return key
}
