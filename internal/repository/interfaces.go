package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/limbo/frisfocus/pkg/entity"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mock_repository.go -package=mocks

type UsersRepositoryI interface {
	// Looks up user by uid. Can be used for authorization middleware
	FindByID(ctx context.Context, uid uuid.UUID) (*entity.User, error)
	// Returns stored running total of user
	GetFpTotal(ctx context.Context, uid uuid.UUID) (int64, error)
	// Lists users ordered by fp_total desc, id asc. Nil uids means every user
	TopByFpTotal(ctx context.Context, uids []uuid.UUID, limit int) ([]entity.LeaderboardEntry, error)
	// Lists users whose fp_total differs from the sum of their log entries
	FindDrifted(ctx context.Context) ([]entity.TotalDrift, error)
	// Rewrites fp_total from the log. Returns the repaired total
	RepairFpTotal(ctx context.Context, uid uuid.UUID) (int64, error)
}

type ActivityRepositoryI interface {
	// Appends entry and increments owner's fp_total in one transaction.
	// Fills entry.ID and entry.CreatedAt, returns the new total
	Award(ctx context.Context, entry *entity.FpActivityLogEntry) (int64, error)
	// Same as Award but writes nothing and reports false when user already has an
	// entry of entry.EventType created at or after since. Concurrent calls for one
	// user and event type are serialized
	AwardOnce(ctx context.Context, entry *entity.FpActivityLogEntry, since time.Time) (int64, bool, error)
	// Inspects if user has an entry of eventType created at or after since
	ExistsSince(ctx context.Context, uid uuid.UUID, eventType string, since time.Time) (bool, error)
	// Lists entries of user newest first. Requires pagination params provided
	GetByUserID(ctx context.Context, uid uuid.UUID, limit, offset int) ([]*entity.FpActivityLogEntry, error)
	// Sums entries created at or after since per user, ordered by sum desc, id asc. Nil uids means every user
	TopBySumSince(ctx context.Context, since time.Time, uids []uuid.UUID, limit int) ([]entity.LeaderboardEntry, error)
}

type FriendshipsRepositoryI interface {
	// Returns ids on the other side of user's accepted friendships
	AcceptedFriendIDs(ctx context.Context, uid uuid.UUID) ([]uuid.UUID, error)
}
