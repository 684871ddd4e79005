package repository

import (
	"context"

	"farmdash/entities"
)

type CropRepository interface {
	List(ctx context.Context) ([]entities.Crop, error)
	FindByID(ctx context.Context, id string) (*entities.Crop, error)
	Create(ctx context.Context, c *entities.Crop) error
	Save(ctx context.Context, c *entities.Crop) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}
