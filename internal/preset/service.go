package preset

import (
	"context"
	"errors"
	"fmt"

	"github.com/changhyeonkim/cardmask/internal/model"
	"github.com/changhyeonkim/cardmask/internal/shared/database"
	"github.com/changhyeonkim/cardmask/internal/shared/logger"
	"github.com/changhyeonkim/cardmask/pkg/cardmask"
	"gorm.io/gorm"
)

type PresetService struct {
	db               *gorm.DB
	presetRepository *PresetRepository
}

func NewPresetService(db *gorm.DB, presetRepository *PresetRepository) *PresetService {
	return &PresetService{
		db:               db,
		presetRepository: presetRepository,
	}
}

func (s *PresetService) Create(ctx context.Context, operatorID uint32, request *CreatePresetRequest) (*PresetResponse, error) {
	log := logger.FromContext(ctx)

	opts := request.OptionsPayload.ApplyTo(cardmask.DefaultOptions())
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("프리셋 옵션 오류 name=%s %w: %w", request.Name, ErrInvalidPresetOptions, err)
	}

	var response PresetResponse
	err := database.WithTransaction(ctx, s.db, func(tx *gorm.DB) error {
		exists, err := s.presetRepository.IsExist(ctx, tx, request.Name)
		if err != nil {
			log.Error("Failed to check preset existence", "error", err)
			return fmt.Errorf("check preset existence: %w", err)
		}
		if exists {
			log.Warn("이미 존재하는 프리셋", "name", request.Name)
			return fmt.Errorf("name=%s %w", request.Name, ErrPresetAlreadyExists)
		}

		preset := model.NewPreset(request.Name, request.Description, opts)
		preset.SetCreatedBy(operatorID)

		if err := s.presetRepository.Create(ctx, tx, preset); err != nil {
			log.Error("Failed to create preset", "error", err)
			return fmt.Errorf("create preset: %w", err)
		}

		response = toResponse(preset)
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Info("프리셋 생성 완료", "name", request.Name, "operator_id", operatorID)
	return &response, nil
}

func (s *PresetService) List(ctx context.Context) (*ListPresetsResponse, error) {
	response := &ListPresetsResponse{Presets: []PresetResponse{}}

	err := database.ReadOnly(ctx, s.db, func(tx *gorm.DB) error {
		presets, err := s.presetRepository.FindAll(ctx, tx)
		if err != nil {
			return fmt.Errorf("프리셋 목록 조회 실패: %w", err)
		}

		for i := range presets {
			response.Presets = append(response.Presets, toResponse(&presets[i]))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return response, nil
}

func (s *PresetService) Get(ctx context.Context, name string) (*PresetResponse, error) {
	var response PresetResponse

	err := database.ReadOnly(ctx, s.db, func(tx *gorm.DB) error {
		preset, err := s.find(ctx, tx, name)
		if err != nil {
			return err
		}

		response = toResponse(preset)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &response, nil
}

// Update replaces the description and every option of the named preset.
func (s *PresetService) Update(ctx context.Context, operatorID uint32, name string, request *UpdatePresetRequest) (*PresetResponse, error) {
	log := logger.FromContext(ctx)

	opts := request.OptionsPayload.ApplyTo(cardmask.DefaultOptions())
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("프리셋 옵션 오류 name=%s %w: %w", name, ErrInvalidPresetOptions, err)
	}

	var response PresetResponse
	err := database.WithTransaction(ctx, s.db, func(tx *gorm.DB) error {
		preset, err := s.find(ctx, tx, name)
		if err != nil {
			return err
		}

		preset.Description = request.Description
		preset.SetOptions(opts)
		preset.SetUpdatedBy(operatorID)

		if err := s.presetRepository.Save(ctx, tx, preset); err != nil {
			log.Error("Failed to update preset", "error", err)
			return fmt.Errorf("update preset: %w", err)
		}

		response = toResponse(preset)
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Info("프리셋 수정 완료", "name", name, "operator_id", operatorID)
	return &response, nil
}

func (s *PresetService) Delete(ctx context.Context, operatorID uint32, name string) error {
	log := logger.FromContext(ctx)

	err := database.WithTransaction(ctx, s.db, func(tx *gorm.DB) error {
		deleted, err := s.presetRepository.DeleteByName(ctx, tx, name)
		if err != nil {
			log.Error("Failed to delete preset", "error", err)
			return fmt.Errorf("delete preset: %w", err)
		}
		if !deleted {
			return fmt.Errorf("name=%s %w", name, ErrPresetNotFound)
		}
		return nil
	})
	if err != nil {
		return err
	}

	log.Info("프리셋 삭제 완료", "name", name, "operator_id", operatorID)
	return nil
}

// Resolve loads the named preset as masking options.
func (s *PresetService) Resolve(ctx context.Context, name string) (cardmask.Options, error) {
	var opts cardmask.Options

	err := database.ReadOnly(ctx, s.db, func(tx *gorm.DB) error {
		preset, err := s.find(ctx, tx, name)
		if err != nil {
			return err
		}

		opts, err = preset.Options()
		return err
	})
	if err != nil {
		return cardmask.Options{}, err
	}

	return opts, nil
}

func (s *PresetService) find(ctx context.Context, tx *gorm.DB, name string) (*model.Preset, error) {
	preset, err := s.presetRepository.FindByName(ctx, tx, name)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("프리셋을 찾을 수 없습니다 name=%s %w", name, ErrPresetNotFound)
		}
		return nil, fmt.Errorf("프리셋 조회 실패: %w", err)
	}
	return preset, nil
}
