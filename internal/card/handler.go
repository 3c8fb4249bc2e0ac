package card

import (
	"net/http"

	"github.com/changhyeonkim/cardmask/internal/shared/handler"
	"github.com/gin-gonic/gin"
)

type CardHandler struct {
	cardService *CardService
}

func NewCardHandler(cardService *CardService) *CardHandler {
	return &CardHandler{
		cardService: cardService,
	}
}

func (h *CardHandler) Mask(c *gin.Context) {
	var request MaskRequest
	if !handler.BindJSON(c, &request) {
		return
	}

	response, err := h.cardService.Mask(c.Request.Context(), &request)
	if err != nil {
		handler.RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *CardHandler) MaskBatch(c *gin.Context) {
	var request BatchMaskRequest
	if !handler.BindJSON(c, &request) {
		return
	}

	response, err := h.cardService.MaskBatch(c.Request.Context(), &request)
	if err != nil {
		handler.RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}
