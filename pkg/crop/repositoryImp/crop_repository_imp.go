package repositoryImp

import (
	"context"

	"gorm.io/gorm"

	"farmdash/entities"
	"farmdash/pkg/crop/repository"
)

type cropRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.CropRepository { return &cropRepo{db} }

func (r *cropRepo) List(ctx context.Context) ([]entities.Crop, error) {
	out := []entities.Crop{}
	return out, r.db.WithContext(ctx).Order("planting_date asc, created_at asc").Find(&out).Error
}

func (r *cropRepo) FindByID(ctx context.Context, id string) (*entities.Crop, error) {
	var c entities.Crop
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&c).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *cropRepo) Create(ctx context.Context, c *entities.Crop) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *cropRepo) Save(ctx context.Context, c *entities.Crop) error {
	return r.db.WithContext(ctx).Save(c).Error
}

// Delete removes the crop only. Activities and resources pointing at it are
// left as they are.
func (r *cropRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.Crop{}).Error
}

func (r *cropRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	return n, r.db.WithContext(ctx).Model(&entities.Crop{}).Count(&n).Error
}
