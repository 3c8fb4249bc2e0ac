package card

import (
	"net/http"

	sharedError "github.com/changhyeonkim/cardmask/internal/shared/error"
)

const (
	invalidCardNumber  = "INVALID_CARD_NUMBER"  // errInfo
	invalidMaskOptions = "INVALID_MASK_OPTIONS" // errInfo
	batchTooLarge      = "BATCH_TOO_LARGE"      // errInfo
)

var (
	ErrInvalidCardNumber  = sharedError.NewDomainError(invalidCardNumber)
	ErrInvalidMaskOptions = sharedError.NewDomainError(invalidMaskOptions)
	ErrBatchTooLarge      = sharedError.NewDomainError(batchTooLarge)
)

func init() {
	sharedError.RegisterDomainErrorResponse(invalidCardNumber, sharedError.ErrorResponse{
		Status:  http.StatusBadRequest,
		Code:    "CARD-001",
		Message: "카드 번호는 13~19자리 숫자여야 합니다.",
	})

	sharedError.RegisterDomainErrorResponse(invalidMaskOptions, sharedError.ErrorResponse{
		Status:  http.StatusBadRequest,
		Code:    "CARD-002",
		Message: "마스킹 옵션이 올바르지 않습니다.",
	})

	sharedError.RegisterDomainErrorResponse(batchTooLarge, sharedError.ErrorResponse{
		Status:  http.StatusRequestEntityTooLarge,
		Code:    "CARD-003",
		Message: "한 번에 마스킹할 수 있는 카드 수를 초과했습니다.",
	})
}
