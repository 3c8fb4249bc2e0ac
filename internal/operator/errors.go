package operator

import (
	"net/http"

	sharedError "github.com/changhyeonkim/cardmask/internal/shared/error"
)

const (
	operatorAlreadyExists = "OPERATOR_ALREADY_EXISTS" // errInfo
	operatorNotFound      = "OPERATOR_NOT_FOUND"      // errInfo
)

var (
	ErrOperatorAlreadyExists = sharedError.NewDomainError(operatorAlreadyExists)
	ErrOperatorNotFound      = sharedError.NewDomainError(operatorNotFound)
)

func init() {
	sharedError.RegisterDomainErrorResponse(operatorNotFound, sharedError.ErrorResponse{
		Status:  http.StatusNotFound,
		Code:    "OPERATOR-001",
		Message: "운영자 정보를 찾을 수 없습니다.",
	})

	sharedError.RegisterDomainErrorResponse(operatorAlreadyExists, sharedError.ErrorResponse{
		Status:  http.StatusConflict,
		Code:    "OPERATOR-002",
		Message: "이미 등록된 운영자입니다.",
	})
}
