package card

import (
	"github.com/changhyeonkim/cardmask/internal/preset"
	sharedError "github.com/changhyeonkim/cardmask/internal/shared/error"
)

type MaskRequest struct {
	Number  string                 `json:"number" binding:"required,max=64"`
	Preset  string                 `json:"preset" binding:"omitempty,presetname"`
	Options *preset.OptionsPayload `json:"options"`
}

type MaskResponse struct {
	Masked string `json:"masked"`
}

type BatchMaskRequest struct {
	Numbers []string               `json:"numbers" binding:"required,min=1,dive,max=64"`
	Preset  string                 `json:"preset" binding:"omitempty,presetname"`
	Options *preset.OptionsPayload `json:"options"`
}

// BatchMaskItem holds either the masked number or the error for one input,
// in the same position as the request.
type BatchMaskItem struct {
	Masked *string                    `json:"masked,omitempty"`
	Error  *sharedError.ErrorResponse `json:"error,omitempty"`
}

type BatchMaskResponse struct {
	Results []BatchMaskItem `json:"results"`
}
