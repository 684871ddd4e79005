package repository

import (
	"context"

	"farmdash/entities"
)

type ActivityRepository interface {
	List(ctx context.Context) ([]entities.Activity, error)
	FindByID(ctx context.Context, id string) (*entities.Activity, error)
	Create(ctx context.Context, a *entities.Activity) error
	Save(ctx context.Context, a *entities.Activity) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}
