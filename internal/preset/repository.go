package preset

import (
	"context"

	"github.com/changhyeonkim/cardmask/internal/model"
	"gorm.io/gorm"
)

type PresetRepository struct{}

func NewPresetRepository() *PresetRepository {
	return &PresetRepository{}
}

func (r *PresetRepository) IsExist(ctx context.Context, db *gorm.DB, name string) (bool, error) {
	var count int64
	err := db.WithContext(ctx).
		Model(&model.Preset{}).
		Where("name = ?", name).
		Count(&count).Error

	if err != nil {
		return false, err
	}

	return count > 0, nil
}

func (r *PresetRepository) Create(ctx context.Context, db *gorm.DB, preset *model.Preset) error {
	return db.WithContext(ctx).Create(preset).Error
}

func (r *PresetRepository) FindByName(ctx context.Context, db *gorm.DB, name string) (*model.Preset, error) {
	var preset model.Preset
	err := db.WithContext(ctx).Where("name = ?", name).First(&preset).Error
	if err != nil {
		return nil, err
	}
	return &preset, nil
}

func (r *PresetRepository) FindAll(ctx context.Context, db *gorm.DB) ([]model.Preset, error) {
	var presets []model.Preset
	err := db.WithContext(ctx).Order("name").Find(&presets).Error
	if err != nil {
		return nil, err
	}
	return presets, nil
}

// Save writes every column, including zero values.
func (r *PresetRepository) Save(ctx context.Context, db *gorm.DB, preset *model.Preset) error {
	return db.WithContext(ctx).Save(preset).Error
}

// DeleteByName reports whether a row was deleted.
func (r *PresetRepository) DeleteByName(ctx context.Context, db *gorm.DB, name string) (bool, error) {
	result := db.WithContext(ctx).Where("name = ?", name).Delete(&model.Preset{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
