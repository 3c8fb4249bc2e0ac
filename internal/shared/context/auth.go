package context

import (
	"net/http"
	"strconv"

	sharedError "github.com/changhyeonkim/cardmask/internal/shared/error"
	"github.com/changhyeonkim/cardmask/internal/shared/logger"
	"github.com/gin-gonic/gin"
)

// Context keys for storing operator authentication information
const (
	OperatorIDKey    = "operator_id"
	OperatorEmailKey = "operator_email"
)

func GetOperatorID(c *gin.Context) (uint32, bool) {
	operatorID, exists := c.Get(OperatorIDKey)
	if !exists {
		return 0, false
	}

	idStr, ok := operatorID.(string)
	if !ok {
		return 0, false
	}

	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil {
		return 0, false
	}

	return uint32(id), true
}

// RequireOperatorID retrieves the authenticated operator's ID from the Gin context.
// If it is missing, an authentication error response is sent and false is returned.
func RequireOperatorID(c *gin.Context) (uint32, bool) {
	operatorID, ok := GetOperatorID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, sharedError.ErrorResponse{
			Status:  http.StatusUnauthorized,
			Code:    "AUTH-000",
			Message: "로그인을 해주세요.",
		})
		c.Abort()
		logger.FromContext(c.Request.Context()).Error("[API] context에 운영자 ID가 존재하지 않습니다.")
		return 0, false
	}
	return operatorID, true
}
