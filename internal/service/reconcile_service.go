package service

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/limbo/frisfocus/internal/metrics"
	"github.com/limbo/frisfocus/internal/repository"
	"github.com/limbo/frisfocus/pkg/entity"
)

// ReconcileService treats users.fp_total as a materialized sum of the
// activity log and rewrites it when the two disagree.
type ReconcileService struct {
	usersRepo repository.UsersRepositoryI
	logger    *zap.Logger
}

func NewReconcileService(usersRepo repository.UsersRepositoryI, logger *zap.Logger) *ReconcileService {
	return &ReconcileService{
		usersRepo: usersRepo,
		logger:    logger,
	}
}

func (rs *ReconcileService) FindDrift(ctx context.Context) ([]entity.TotalDrift, error) {
	drifts, err := rs.usersRepo.FindDrifted(ctx)
	if err != nil {
		return nil, errors.New("users repository error: " + err.Error())
	}
	metrics.TotalDrifts.Set(float64(len(drifts)))
	for _, d := range drifts {
		rs.logger.Warn("fp total drift",
			zap.String("uid", d.UserID.String()),
			zap.Int64("stored_total", d.StoredTotal),
			zap.Int64("logged_total", d.LoggedTotal),
		)
	}
	return drifts, nil
}

// Repair recomputes every drifted total and returns how many were rewritten.
// A failing user is logged and skipped, the first error is returned at the end.
func (rs *ReconcileService) Repair(ctx context.Context) (int, error) {
	drifts, err := rs.FindDrift(ctx)
	if err != nil {
		return 0, err
	}
	var (
		repaired int
		firstErr error
	)
	for _, d := range drifts {
		total, err := rs.usersRepo.RepairFpTotal(ctx, d.UserID)
		if err != nil {
			rs.logger.Error("repairing fp total failed", zap.String("uid", d.UserID.String()), zap.Error(err))
			if firstErr == nil {
				firstErr = errors.New("users repository error: " + err.Error())
			}
			continue
		}
		repaired++
		rs.logger.Info("fp total repaired", zap.String("uid", d.UserID.String()), zap.Int64("fp_total", total))
	}
	return repaired, firstErr
}
