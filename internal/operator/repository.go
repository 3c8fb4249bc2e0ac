package operator

import (
	"context"

	"github.com/changhyeonkim/cardmask/internal/model"
	"gorm.io/gorm"
)

type OperatorRepository struct{}

func NewOperatorRepository() *OperatorRepository {
	return &OperatorRepository{}
}

func (r *OperatorRepository) IsExist(ctx context.Context, db *gorm.DB, email string) (bool, error) {
	var count int64
	err := db.WithContext(ctx).
		Model(&model.Operator{}).
		Where("email = ?", email).
		Count(&count).Error

	if err != nil {
		return false, err
	}

	return count > 0, nil
}

func (r *OperatorRepository) Create(ctx context.Context, db *gorm.DB, operator *model.Operator) error {
	return db.WithContext(ctx).Create(operator).Error
}

func (r *OperatorRepository) FindByEmail(ctx context.Context, db *gorm.DB, email string) (*model.Operator, error) {
	var operator model.Operator
	err := db.WithContext(ctx).Where("email = ?", email).First(&operator).Error
	if err != nil {
		return nil, err
	}
	return &operator, nil
}

func (r *OperatorRepository) FindByID(ctx context.Context, db *gorm.DB, id uint32) (*model.Operator, error) {
	var operator model.Operator
	err := db.WithContext(ctx).Where("id = ?", id).First(&operator).Error
	if err != nil {
		return nil, err
	}
	return &operator, nil
}
