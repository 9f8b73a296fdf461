package repositoryImp

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"agrisense/entities"
	"agrisense/pkg/settings/repository"
)

type gormRepo struct{ db *gorm.DB }

// NewGorm is used when no Redis address is configured.
func NewGorm(db *gorm.DB) repository.SettingsRepository { return &gormRepo{db} }

func (r *gormRepo) Get(ctx context.Context, uid string) (*entities.Settings, error) {
	var rec entities.SettingsRecord
	err := r.db.WithContext(ctx).Where("user_id = ?", uid).First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &rec.Settings, nil
}

func (r *gormRepo) Save(ctx context.Context, uid string, s entities.Settings) error {
	rec := entities.SettingsRecord{UserID: uid, Settings: s, UpdatedAt: time.Now()}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"settings", "updated_at"}),
	}).Create(&rec).Error
}
