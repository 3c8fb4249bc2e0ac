package preset

import (
	"net/http"

	sharedError "github.com/changhyeonkim/cardmask/internal/shared/error"
)

const (
	presetNotFound      = "PRESET_NOT_FOUND"       // errInfo
	presetAlreadyExists = "PRESET_ALREADY_EXISTS"  // errInfo
	invalidPresetOpts   = "INVALID_PRESET_OPTIONS" // errInfo
)

var (
	ErrPresetNotFound      = sharedError.NewDomainError(presetNotFound)
	ErrPresetAlreadyExists = sharedError.NewDomainError(presetAlreadyExists)
	// ErrInvalidPresetOptions marks option combinations cardmask rejects.
	ErrInvalidPresetOptions = sharedError.NewDomainError(invalidPresetOpts)
)

func init() {
	sharedError.RegisterDomainErrorResponse(presetNotFound, sharedError.ErrorResponse{
		Status:  http.StatusNotFound,
		Code:    "PRESET-001",
		Message: "마스킹 프리셋을 찾을 수 없습니다.",
	})

	sharedError.RegisterDomainErrorResponse(presetAlreadyExists, sharedError.ErrorResponse{
		Status:  http.StatusConflict,
		Code:    "PRESET-002",
		Message: "이미 존재하는 프리셋 이름입니다.",
	})

	sharedError.RegisterDomainErrorResponse(invalidPresetOpts, sharedError.ErrorResponse{
		Status:  http.StatusBadRequest,
		Code:    "PRESET-003",
		Message: "프리셋 마스킹 옵션이 올바르지 않습니다.",
	})
}
