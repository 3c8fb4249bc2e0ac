package operator

import (
	"context"
	"errors"
	"fmt"

	"github.com/changhyeonkim/cardmask/internal/shared/database"
	"gorm.io/gorm"
)

type OperatorService struct {
	db                 *gorm.DB
	operatorRepository *OperatorRepository
}

func NewOperatorService(db *gorm.DB, operatorRepository *OperatorRepository) *OperatorService {
	return &OperatorService{
		db:                 db,
		operatorRepository: operatorRepository,
	}
}

func (s *OperatorService) GetProfile(ctx context.Context, operatorID uint32) (*GetProfileResponse, error) {
	var response *GetProfileResponse

	err := database.ReadOnly(ctx, s.db, func(tx *gorm.DB) error {
		operator, err := s.operatorRepository.FindByID(ctx, tx, operatorID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("운영자를 찾을 수 없습니다 operatorID=%d %w", operatorID, ErrOperatorNotFound)
			}
			return fmt.Errorf("운영자 조회 실패: %w", err)
		}

		response = &GetProfileResponse{
			ID:    operator.ID,
			Name:  operator.Name,
			Email: operator.Email,
		}
		return nil
	})

	if err != nil {
		return nil, err
	}

	return response, nil
}
