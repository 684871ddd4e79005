package service

import (
	"context"
	"errors"

	"farmdash/entities"
)

var ErrNotFound = errors.New("activity not found")

// ActivityService answers in the read shape, with the crop expanded when it
// still exists.
type ActivityService interface {
	ListActivities(ctx context.Context) ([]entities.ActivityView, error)
	CreateActivity(ctx context.Context, in entities.ActivityInput) (*entities.ActivityView, error)
	UpdateActivity(ctx context.Context, id string, in entities.ActivityInput) (*entities.ActivityView, error)
	DeleteActivity(ctx context.Context, id string) (*entities.ActivityView, error)
}
