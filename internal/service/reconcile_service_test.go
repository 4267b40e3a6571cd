package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/limbo/frisfocus/internal/repository/mocks"
	"github.com/limbo/frisfocus/internal/service"
	"github.com/limbo/frisfocus/pkg/entity"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestReconcile(t *testing.T) {
	ctrl := gomock.NewController(t)
	usersRepo := mocks.NewMockUsersRepositoryI(ctrl)
	rs := service.NewReconcileService(usersRepo, zap.NewNop())
	ctx := context.Background()
	ok, broken := uuid.New(), uuid.New()
	drifts := []entity.TotalDrift{
		{UserID: ok, StoredTotal: 115, LoggedTotal: 110},
		{UserID: broken, StoredTotal: 0, LoggedTotal: 10},
	}

	t.Run("no drift", func(t *testing.T) {
		usersRepo.EXPECT().FindDrifted(gomock.Any()).Return(nil, nil)
		repaired, err := rs.Repair(ctx)
		assert.NoError(t, err)
		assert.Zero(t, repaired)
	})
	t.Run("find drift", func(t *testing.T) {
		usersRepo.EXPECT().FindDrifted(gomock.Any()).Return(drifts, nil)
		res, err := rs.FindDrift(ctx)
		assert.NoError(t, err)
		assert.Equal(t, drifts, res)
	})
	t.Run("partial repair", func(t *testing.T) {
		gomock.InOrder(
			usersRepo.EXPECT().FindDrifted(gomock.Any()).Return(drifts, nil),
			usersRepo.EXPECT().RepairFpTotal(gomock.Any(), ok).Return(int64(110), nil),
			usersRepo.EXPECT().RepairFpTotal(gomock.Any(), broken).Return(int64(0), errors.New("deadlock")),
		)
		repaired, err := rs.Repair(ctx)
		assert.Error(t, err)
		assert.Equal(t, 1, repaired)
	})
	t.Run("lookup failure", func(t *testing.T) {
		usersRepo.EXPECT().FindDrifted(gomock.Any()).Return(nil, errors.New("boom"))
		_, err := rs.FindDrift(ctx)
		assert.Error(t, err)
	})
}
