package service

import (
	"context"
	"errors"

	"github.com/google/uuid"

	errorvalues "github.com/limbo/frisfocus/internal/error_values"
	"github.com/limbo/frisfocus/internal/repository"
	"github.com/limbo/frisfocus/pkg/entity"
)

type ActivityService struct {
	activityRepo repository.ActivityRepositoryI
	usersRepo    repository.UsersRepositoryI
}

func NewActivityService(activityRepo repository.ActivityRepositoryI, usersRepo repository.UsersRepositoryI) *ActivityService {
	if activityRepo == nil || usersRepo == nil {
		panic("activity service: nil repositories")
	}
	return &ActivityService{
		activityRepo: activityRepo,
		usersRepo:    usersRepo,
	}
}

func (as *ActivityService) GetActivity(ctx context.Context, uid uuid.UUID, pagination PaginationOpts) ([]*entity.FpActivityLogEntry, error) {
	if err := validate.Struct(pagination); err != nil {
		return nil, errors.Join(errorvalues.ErrInvalidQuery, err)
	}
	entries, err := as.activityRepo.GetByUserID(ctx, uid, pagination.Limit, pagination.Offset)
	if err != nil {
		return nil, errors.New("activity repository error: " + err.Error())
	}
	return entries, nil
}

func (as *ActivityService) GetTotal(ctx context.Context, uid uuid.UUID) (int64, error) {
	total, err := as.usersRepo.GetFpTotal(ctx, uid)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return 0, err
		}
		return 0, errors.New("users repository error: " + err.Error())
	}
	return total, nil
}
