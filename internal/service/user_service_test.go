package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	errorvalues "github.com/limbo/frisfocus/internal/error_values"
	"github.com/limbo/frisfocus/internal/repository/mocks"
	"github.com/limbo/frisfocus/internal/service"
	"github.com/limbo/frisfocus/pkg/entity"
	"github.com/stretchr/testify/assert"
)

func TestMain(m *testing.M) {
	service.InitValidator()
	m.Run()
}

func TestGetUserByID(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	usersRepo := mocks.NewMockUsersRepositoryI(ctrl)
	us := service.NewUserService(usersRepo)
	uid := uuid.New()
	user := &entity.User{
		ID:          uid,
		DisplayName: "ann",
		FpTotal:     110,
		CreatedAt:   time.Now(),
	}
	testCases := []struct {
		Desc         string
		Expected     *entity.User
		ExpectedErr  error
		MockPrepFunc func()
	}{
		{
			Desc:     "found",
			Expected: user,
			MockPrepFunc: func() {
				usersRepo.EXPECT().FindByID(gomock.Any(), uid).Return(user, nil)
			},
		},
		{
			Desc:        "not found",
			ExpectedErr: errorvalues.ErrUserNotFound,
			MockPrepFunc: func() {
				usersRepo.EXPECT().FindByID(gomock.Any(), uid).Return(nil, errorvalues.ErrUserNotFound)
			},
		},
		{
			Desc:        "repository error",
			ExpectedErr: errors.New("repository searching error: conn closed"),
			MockPrepFunc: func() {
				usersRepo.EXPECT().FindByID(gomock.Any(), uid).Return(nil, errors.New("conn closed"))
			},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepFunc()
			res, err := us.GetByID(context.Background(), uid)
			assert.Equal(t, tc.ExpectedErr, err)
			assert.Equal(t, tc.Expected, res)
		})
	}
}

func TestGetActivity(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	activityRepo := mocks.NewMockActivityRepositoryI(ctrl)
	usersRepo := mocks.NewMockUsersRepositoryI(ctrl)
	as := service.NewActivityService(activityRepo, usersRepo)
	uid := uuid.New()
	entries := []*entity.FpActivityLogEntry{
		{ID: 2, UserID: uid, EventType: "log_day", FpAmount: 10, Description: "Logged a day"},
		{ID: 1, UserID: uid, EventType: "task_completed", FpAmount: 2, Description: "Completed a task"},
	}
	testCases := []struct {
		Desc         string
		Pagination   service.PaginationOpts
		Expected     []*entity.FpActivityLogEntry
		ErrTarget    error
		HasErr       bool
		MockPrepFunc func()
	}{
		{
			Desc:       "newest first",
			Pagination: service.PaginationOpts{Limit: 20, Offset: 0},
			Expected:   entries,
			MockPrepFunc: func() {
				activityRepo.EXPECT().GetByUserID(gomock.Any(), uid, 20, 0).Return(entries, nil)
			},
		},
		{
			Desc:         "limit above max",
			Pagination:   service.PaginationOpts{Limit: 500},
			ErrTarget:    errorvalues.ErrInvalidQuery,
			HasErr:       true,
			MockPrepFunc: func() {},
		},
		{
			Desc:         "negative offset",
			Pagination:   service.PaginationOpts{Limit: 10, Offset: -1},
			ErrTarget:    errorvalues.ErrInvalidQuery,
			HasErr:       true,
			MockPrepFunc: func() {},
		},
		{
			Desc:       "repository error",
			Pagination: service.PaginationOpts{Limit: 10, Offset: 10},
			HasErr:     true,
			MockPrepFunc: func() {
				activityRepo.EXPECT().GetByUserID(gomock.Any(), uid, 10, 10).Return(nil, errors.New("boom"))
			},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepFunc()
			res, err := as.GetActivity(context.Background(), uid, tc.Pagination)
			if tc.HasErr {
				assert.Error(t, err)
				if tc.ErrTarget != nil {
					assert.ErrorIs(t, err, tc.ErrTarget)
				}
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tc.Expected, res)
		})
	}
}

func TestGetTotal(t *testing.T) {
	ctrl := gomock.NewController(t)
	activityRepo := mocks.NewMockActivityRepositoryI(ctrl)
	usersRepo := mocks.NewMockUsersRepositoryI(ctrl)
	as := service.NewActivityService(activityRepo, usersRepo)
	uid := uuid.New()

	usersRepo.EXPECT().GetFpTotal(gomock.Any(), uid).Return(int64(110), nil)
	total, err := as.GetTotal(context.Background(), uid)
	assert.NoError(t, err)
	assert.Equal(t, int64(110), total)

	usersRepo.EXPECT().GetFpTotal(gomock.Any(), uid).Return(int64(0), errorvalues.ErrUserNotFound)
	_, err = as.GetTotal(context.Background(), uid)
	assert.ErrorIs(t, err, errorvalues.ErrUserNotFound)
}
