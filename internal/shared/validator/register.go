package validator

import (
	"fmt"
	"log/slog"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// GetValidator returns the validator instance from Gin binding
func GetValidator() (*validator.Validate, error) {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil, fmt.Errorf("validator 엔진을 가져올 수 없습니다")
	}
	return v, nil
}

// RegisterAll registers all common validators defined in this package
// Domain-specific validators should be registered separately by each domain
func RegisterAll() error {
	v, err := GetValidator()
	if err != nil {
		return fmt.Errorf("validator 엔진 가져오기 실패: %w", err)
	}

	if err := register(v); err != nil {
		return err
	}

	slog.Info("공통 Validator 등록 완료", "validators", "maskchar,presetname")
	return nil
}

// New returns a standalone validator using `validate` struct tags with the
// common validators registered. Used outside gin binding (CLI preset files).
func New() (*validator.Validate, error) {
	v := validator.New(validator.WithRequiredStructEnabled())
	if err := register(v); err != nil {
		return nil, err
	}
	return v, nil
}

func register(v *validator.Validate) error {
	validators := map[string]validator.Func{
		"maskchar":   ValidateMaskChar,
		"presetname": ValidatePresetName,
	}

	for tag, fn := range validators {
		if err := v.RegisterValidation(tag, fn); err != nil {
			return fmt.Errorf("%s validator 등록 실패: %w", tag, err)
		}
	}
	return nil
}
