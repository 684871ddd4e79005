package service

import (
	"context"
	"errors"

	"farmdash/entities"
)

var ErrNotFound = errors.New("crop not found")

type CropService interface {
	ListCrops(ctx context.Context) ([]entities.Crop, error)
	CreateCrop(ctx context.Context, in entities.CropInput) (*entities.Crop, error)
	UpdateCrop(ctx context.Context, id string, in entities.CropInput) (*entities.Crop, error)
	DeleteCrop(ctx context.Context, id string) (*entities.Crop, error)
}
