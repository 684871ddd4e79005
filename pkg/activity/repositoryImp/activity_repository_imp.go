package repositoryImp

import (
	"context"

	"gorm.io/gorm"

	"farmdash/entities"
	"farmdash/pkg/activity/repository"
)

type activityRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.ActivityRepository { return &activityRepo{db} }

// List returns activities oldest first with their crop preloaded; the crop
// stays nil when it has been deleted.
func (r *activityRepo) List(ctx context.Context) ([]entities.Activity, error) {
	out := []entities.Activity{}
	err := r.db.WithContext(ctx).Preload("Crop").Order("date asc, created_at asc").Find(&out).Error
	return out, err
}

func (r *activityRepo) FindByID(ctx context.Context, id string) (*entities.Activity, error) {
	var a entities.Activity
	if err := r.db.WithContext(ctx).Preload("Crop").Where("id = ?", id).First(&a).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *activityRepo) Create(ctx context.Context, a *entities.Activity) error {
	return r.db.WithContext(ctx).Omit("Crop").Create(a).Error
}

func (r *activityRepo) Save(ctx context.Context, a *entities.Activity) error {
	return r.db.WithContext(ctx).Omit("Crop").Save(a).Error
}

func (r *activityRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.Activity{}).Error
}

func (r *activityRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	return n, r.db.WithContext(ctx).Model(&entities.Activity{}).Count(&n).Error
}
