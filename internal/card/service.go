package card

import (
	"context"
	"fmt"

	"github.com/changhyeonkim/cardmask/internal/config"
	"github.com/changhyeonkim/cardmask/internal/preset"
	sharedError "github.com/changhyeonkim/cardmask/internal/shared/error"
	"github.com/changhyeonkim/cardmask/internal/shared/logger"
	"github.com/changhyeonkim/cardmask/pkg/cardmask"
)

// PresetResolver looks up named masking presets.
type PresetResolver interface {
	Resolve(ctx context.Context, name string) (cardmask.Options, error)
}

// CardService masks card numbers. Raw numbers are never stored and only
// reach the log through logger.MaskCard.
type CardService struct {
	defaults       cardmask.Options
	maxBatch       int
	presetResolver PresetResolver
}

func NewCardService(cfg *config.Config, presetResolver PresetResolver) *CardService {
	return &CardService{
		defaults:       cfg.Mask.Options(),
		maxBatch:       cfg.Mask.MaxBatch,
		presetResolver: presetResolver,
	}
}

// Defaults returns the server-wide masking options.
func (s *CardService) Defaults() cardmask.Options {
	return s.defaults
}

func (s *CardService) Mask(ctx context.Context, request *MaskRequest) (*MaskResponse, error) {
	ctx = withPreset(ctx, request.Preset)
	log := logger.FromContext(ctx)

	opts, err := s.resolveOptions(ctx, request.Preset, request.Options)
	if err != nil {
		return nil, err
	}

	masked, err := maskNumber(request.Number, opts)
	if err != nil {
		log.Warn("카드 마스킹 실패", "card", logger.MaskCard(request.Number), "error", err)
		return nil, err
	}

	log.Debug("카드 마스킹 완료", "card", logger.MaskCard(request.Number))
	return &MaskResponse{Masked: masked}, nil
}

// MaskBatch masks every number with the same options. Invalid numbers fail
// their own item only.
func (s *CardService) MaskBatch(ctx context.Context, request *BatchMaskRequest) (*BatchMaskResponse, error) {
	ctx = withPreset(ctx, request.Preset)
	log := logger.FromContext(ctx)

	if len(request.Numbers) > s.maxBatch {
		log.Warn("배치 크기 초과", "size", len(request.Numbers), "max", s.maxBatch)
		return nil, fmt.Errorf("size=%d max=%d %w", len(request.Numbers), s.maxBatch, ErrBatchTooLarge)
	}

	opts, err := s.resolveOptions(ctx, request.Preset, request.Options)
	if err != nil {
		return nil, err
	}

	response := &BatchMaskResponse{Results: make([]BatchMaskItem, len(request.Numbers))}
	failed := 0
	for i, number := range request.Numbers {
		masked, err := maskNumber(number, opts)
		if err != nil {
			errResp := sharedError.Resolve(err, sharedError.InternalServerError)
			response.Results[i].Error = &errResp
			failed++
			continue
		}
		response.Results[i].Masked = &masked
	}

	log.Debug("배치 마스킹 완료", "size", len(request.Numbers), "failed", failed)
	return response, nil
}

// resolveOptions layers server defaults, the named preset and the inline
// overrides, in that order.
func (s *CardService) resolveOptions(ctx context.Context, presetName string, overrides *preset.OptionsPayload) (cardmask.Options, error) {
	opts := s.defaults

	if presetName != "" {
		resolved, err := s.presetResolver.Resolve(ctx, presetName)
		if err != nil {
			return cardmask.Options{}, err
		}
		opts = resolved
	}

	opts = overrides.ApplyTo(opts)
	if err := opts.Validate(); err != nil {
		return cardmask.Options{}, fmt.Errorf("%w: %w", ErrInvalidMaskOptions, err)
	}

	return opts, nil
}

func withPreset(ctx context.Context, presetName string) context.Context {
	if presetName == "" {
		return ctx
	}
	return logger.With(ctx, "preset", presetName)
}

func maskNumber(number string, opts cardmask.Options) (string, error) {
	masked, err := cardmask.Mask(number, opts)
	if err != nil {
		if cardmask.IsValidationError(err) {
			return "", fmt.Errorf("%w: %w", ErrInvalidCardNumber, err)
		}
		return "", fmt.Errorf("%w: %w", ErrInvalidMaskOptions, err)
	}
	return masked, nil
}
