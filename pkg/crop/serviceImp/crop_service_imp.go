package serviceImp

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"farmdash/entities"
	repo "farmdash/pkg/crop/repository"
	"farmdash/pkg/crop/service"
)

type cropSvc struct{ r repo.CropRepository }

func NewCropService(r repo.CropRepository) service.CropService { return &cropSvc{r} }

func (s *cropSvc) ListCrops(ctx context.Context) ([]entities.Crop, error) {
	return s.r.List(ctx)
}

func (s *cropSvc) CreateCrop(ctx context.Context, in entities.CropInput) (*entities.Crop, error) {
	c := &entities.Crop{ID: uuid.NewString()}
	c.Apply(in)
	if err := s.r.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *cropSvc) UpdateCrop(ctx context.Context, id string, in entities.CropInput) (*entities.Crop, error) {
	c, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	c.Apply(in)
	if err := s.r.Save(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *cropSvc) DeleteCrop(ctx context.Context, id string) (*entities.Crop, error) {
	c, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	return c, s.r.Delete(ctx, id)
}

func (s *cropSvc) find(ctx context.Context, id string) (*entities.Crop, error) {
	c, err := s.r.FindByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, service.ErrNotFound
	}
	return c, err
}
