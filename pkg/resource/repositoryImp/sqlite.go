package repositoryImp

import (
	"context"

	"gorm.io/gorm"

	"farmdash/entities"
	"farmdash/pkg/resource/repository"
)

type sqliteRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.Repo { return &sqliteRepo{db: db} }

func (r *sqliteRepo) List(ctx context.Context) ([]entities.Resource, error) {
	list := []entities.Resource{}
	return list, r.db.WithContext(ctx).Preload("Crop").Order("name asc, created_at asc").Find(&list).Error
}

func (r *sqliteRepo) FindByID(ctx context.Context, id string) (*entities.Resource, error) {
	var out entities.Resource
	if err := r.db.WithContext(ctx).Preload("Crop").Where("id = ?", id).First(&out).Error; err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *sqliteRepo) Create(ctx context.Context, res *entities.Resource) error {
	return r.db.WithContext(ctx).Omit("Crop").Create(res).Error
}

func (r *sqliteRepo) Update(ctx context.Context, res *entities.Resource) error {
	return r.db.WithContext(ctx).Omit("Crop").Save(res).Error
}

func (r *sqliteRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.Resource{}).Error
}

func (r *sqliteRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	return n, r.db.WithContext(ctx).Model(&entities.Resource{}).Count(&n).Error
}
