package service

import (
	"context"
	"errors"

	"github.com/google/uuid"

	errorvalues "github.com/limbo/frisfocus/internal/error_values"
	"github.com/limbo/frisfocus/internal/repository"
	"github.com/limbo/frisfocus/internal/rules"
)

type DuplicateGuard struct {
	rules *rules.Table
	repo  repository.ActivityRepositoryI
	now   Clock
}

func NewDuplicateGuard(table *rules.Table, activityRepo repository.ActivityRepositoryI, clock Clock) *DuplicateGuard {
	return &DuplicateGuard{
		rules: table,
		repo:  activityRepo,
		now:   clock,
	}
}

// IsDuplicate reports whether eventType was already awarded to uid inside the
// rule's current window. resourceID is not a dedup key here.
func (g *DuplicateGuard) IsDuplicate(ctx context.Context, uid uuid.UUID, eventType string, resourceID string) (bool, error) {
	rule, ok := g.rules.Lookup(eventType)
	if !ok {
		return false, errorvalues.ErrUnknownEventType
	}
	since, ok := windowStart(rule.Window, g.now())
	if !ok {
		return false, nil
	}
	exists, err := g.repo.ExistsSince(ctx, uid, eventType, since)
	if err != nil {
		return false, errors.New("repository error: " + err.Error())
	}
	return exists, nil
}
