package repository

import (
	"context"

	"farmdash/entities"
)

type Repo interface {
	List(ctx context.Context) ([]entities.Resource, error)
	FindByID(ctx context.Context, id string) (*entities.Resource, error)
	Create(ctx context.Context, r *entities.Resource) error
	Update(ctx context.Context, r *entities.Resource) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}
