package serviceImp

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"farmdash/entities"
	repo "farmdash/pkg/activity/repository"
	"farmdash/pkg/activity/service"
)

type activitySvc struct{ r repo.ActivityRepository }

func NewActivityService(r repo.ActivityRepository) service.ActivityService {
	return &activitySvc{r}
}

func (s *activitySvc) ListActivities(ctx context.Context) ([]entities.ActivityView, error) {
	list, err := s.r.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]entities.ActivityView, 0, len(list))
	for _, a := range list {
		out = append(out, a.View())
	}
	return out, nil
}

func (s *activitySvc) CreateActivity(ctx context.Context, in entities.ActivityInput) (*entities.ActivityView, error) {
	a := &entities.Activity{ID: uuid.NewString()}
	a.Apply(in)
	if err := s.r.Create(ctx, a); err != nil {
		return nil, err
	}
	return s.reload(ctx, a.ID)
}

func (s *activitySvc) UpdateActivity(ctx context.Context, id string, in entities.ActivityInput) (*entities.ActivityView, error) {
	a, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	a.Apply(in)
	a.Crop = nil
	if err := s.r.Save(ctx, a); err != nil {
		return nil, err
	}
	return s.reload(ctx, id)
}

func (s *activitySvc) DeleteActivity(ctx context.Context, id string) (*entities.ActivityView, error) {
	a, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.r.Delete(ctx, id); err != nil {
		return nil, err
	}
	v := a.View()
	return &v, nil
}

func (s *activitySvc) reload(ctx context.Context, id string) (*entities.ActivityView, error) {
	a, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	v := a.View()
	return &v, nil
}

func (s *activitySvc) find(ctx context.Context, id string) (*entities.Activity, error) {
	a, err := s.r.FindByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, service.ErrNotFound
	}
	return a, err
}
