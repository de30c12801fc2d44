package mysql

import (
	"context"
	"encoding/json"
	"errors"

	"gorm.io/gorm"

	"github.com/tokobajusablon/storefront/internal/settings/domain"
	"github.com/tokobajusablon/storefront/pkg/db"
)

type settingRepository struct{ db *gorm.DB }

func NewSettingRepository(gdb *gorm.DB) domain.SettingRepository {
	return &settingRepository{db: gdb}
}

func (r *settingRepository) Get(ctx context.Context, key string) (*domain.Setting, error) {
	var setting domain.Setting
	err := r.db.WithContext(ctx).Where("setting_key = ?", key).First(&setting).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &setting, nil
}

func (r *settingRepository) List(ctx context.Context) ([]*domain.Setting, error) {
	var settings []*domain.Setting
	err := r.db.WithContext(ctx).Order("setting_key ASC").Find(&settings).Error
	return settings, err
}

func (r *settingRepository) Upsert(ctx context.Context, key string, value json.RawMessage) error {
	setting := &domain.Setting{Key: key, Value: value}
	return db.UpsertOnConflict(ctx, r.db, setting, []string{"setting_key"}, []string{"value", "updated_at"})
}
