package preset

import (
	"net/http"

	sharedContext "github.com/changhyeonkim/cardmask/internal/shared/context"
	"github.com/changhyeonkim/cardmask/internal/shared/handler"
	"github.com/gin-gonic/gin"
)

type PresetHandler struct {
	presetService *PresetService
}

func NewPresetHandler(presetService *PresetService) *PresetHandler {
	return &PresetHandler{
		presetService: presetService,
	}
}

func (h *PresetHandler) Create(c *gin.Context) {
	operatorID, ok := sharedContext.RequireOperatorID(c)
	if !ok {
		return
	}

	var request CreatePresetRequest
	if !handler.BindJSON(c, &request) {
		return
	}

	response, err := h.presetService.Create(c.Request.Context(), operatorID, &request)
	if err != nil {
		handler.RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response)
}

func (h *PresetHandler) List(c *gin.Context) {
	response, err := h.presetService.List(c.Request.Context())
	if err != nil {
		handler.RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *PresetHandler) Get(c *gin.Context) {
	response, err := h.presetService.Get(c.Request.Context(), c.Param("name"))
	if err != nil {
		handler.RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *PresetHandler) Update(c *gin.Context) {
	operatorID, ok := sharedContext.RequireOperatorID(c)
	if !ok {
		return
	}

	var request UpdatePresetRequest
	if !handler.BindJSON(c, &request) {
		return
	}

	response, err := h.presetService.Update(c.Request.Context(), operatorID, c.Param("name"), &request)
	if err != nil {
		handler.RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *PresetHandler) Delete(c *gin.Context) {
	operatorID, ok := sharedContext.RequireOperatorID(c)
	if !ok {
		return
	}

	if err := h.presetService.Delete(c.Request.Context(), operatorID, c.Param("name")); err != nil {
		handler.RespondDomainError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
