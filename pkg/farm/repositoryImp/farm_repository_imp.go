package repositoryImp

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"agrisense/entities"
	"agrisense/pkg/farm/repository"
)

type farmRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.FarmRepository { return &farmRepo{db} }

func (r *farmRepo) Create(ctx context.Context, f *entities.Farm) error {
	return r.db.WithContext(ctx).Create(f).Error
}

func (r *farmRepo) FindByID(ctx context.Context, id string) (*entities.Farm, error) {
	var f entities.Farm
	err := r.db.WithContext(ctx).Where("farm_id = ?", id).First(&f).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &f, nil
}

func (r *farmRepo) ListByOwner(ctx context.Context, ownerID string) ([]entities.Farm, error) {
	var out []entities.Farm
	err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at ASC").
		Find(&out).Error
	return out, err
}

func (r *farmRepo) AddGreenPoints(ctx context.Context, id string, delta int) (int, error) {
	var total int
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&entities.Farm{}).
			Where("farm_id = ?", id).
			UpdateColumn("green_points", gorm.Expr("green_points + ?", delta))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return repository.ErrNotFound
		}
		return tx.Model(&entities.Farm{}).
			Where("farm_id = ?", id).
			Pluck("green_points", &total).Error
	})
	return total, err
}
