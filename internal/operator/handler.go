package operator

import (
	"net/http"

	sharedContext "github.com/changhyeonkim/cardmask/internal/shared/context"
	"github.com/changhyeonkim/cardmask/internal/shared/handler"
	"github.com/gin-gonic/gin"
)

type OperatorHandler struct {
	operatorService *OperatorService
}

func NewOperatorHandler(operatorService *OperatorService) *OperatorHandler {
	return &OperatorHandler{
		operatorService: operatorService,
	}
}

func (h *OperatorHandler) GetProfile(c *gin.Context) {
	operatorID, ok := sharedContext.RequireOperatorID(c)
	if !ok {
		return
	}

	response, err := h.operatorService.GetProfile(c.Request.Context(), operatorID)
	if err != nil {
		handler.RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}
