package preset

import (
	"time"
	"unicode/utf8"

	"github.com/changhyeonkim/cardmask/internal/model"
	"github.com/changhyeonkim/cardmask/pkg/cardmask"
)

// OptionsPayload carries masking options in requests. Only fields that are
// present override the options they are applied to. groupEvery 0 clears
// any grouping.
type OptionsPayload struct {
	MaskChar        *string `json:"maskChar,omitempty" binding:"omitempty,maskchar"`
	UnmaskedStart   *int    `json:"unmaskedStart,omitempty" binding:"omitempty,gte=0,lte=64"`
	UnmaskedEnd     *int    `json:"unmaskedEnd,omitempty" binding:"omitempty,gte=0,lte=64"`
	PreserveSpacing *bool   `json:"preserveSpacing,omitempty"`
	GroupEvery      *int    `json:"groupEvery,omitempty" binding:"omitempty,gte=0,lte=64,excluded_with=GroupSizes"`
	GroupSizes      []int   `json:"groupSizes,omitempty" binding:"omitempty,max=19,dive,gt=0,lte=64"`
	ShowLength      *bool   `json:"showLength,omitempty"`
	ValidateInput   *bool   `json:"validateInput,omitempty"`
}

// ApplyTo returns base with the present fields of p applied.
func (p *OptionsPayload) ApplyTo(base cardmask.Options) cardmask.Options {
	if p == nil {
		return base
	}

	o := base
	if p.MaskChar != nil {
		if r, size := utf8.DecodeRuneInString(*p.MaskChar); size > 0 {
			o.MaskChar = r
		}
	}
	if p.UnmaskedStart != nil {
		o.UnmaskedStart = *p.UnmaskedStart
	}
	if p.UnmaskedEnd != nil {
		o.UnmaskedEnd = *p.UnmaskedEnd
	}
	if p.PreserveSpacing != nil {
		o.PreserveSpacing = *p.PreserveSpacing
	}
	if p.GroupEvery != nil {
		o.Grouping = cardmask.GroupEvery(*p.GroupEvery)
	} else if len(p.GroupSizes) > 0 {
		o.Grouping = cardmask.GroupSizes(p.GroupSizes...)
	}
	if p.ShowLength != nil {
		o.ShowLength = *p.ShowLength
	}
	if p.ValidateInput != nil {
		o.ValidateInput = *p.ValidateInput
	}
	return o
}

type CreatePresetRequest struct {
	Name        string `json:"name" binding:"required,presetname"`
	Description string `json:"description" binding:"max=255"`
	OptionsPayload
}

// UpdatePresetRequest replaces every option of an existing preset;
// omitted options fall back to the library defaults.
type UpdatePresetRequest struct {
	Description string `json:"description" binding:"max=255"`
	OptionsPayload
}

type PresetResponse struct {
	ID              uint32    `json:"id"`
	Name            string    `json:"name"`
	Description     string    `json:"description,omitempty"`
	MaskChar        string    `json:"maskChar"`
	UnmaskedStart   int       `json:"unmaskedStart"`
	UnmaskedEnd     int       `json:"unmaskedEnd"`
	PreserveSpacing bool      `json:"preserveSpacing"`
	GroupEvery      int       `json:"groupEvery,omitempty"`
	GroupSizes      []int     `json:"groupSizes,omitempty"`
	ShowLength      bool      `json:"showLength"`
	ValidateInput   bool      `json:"validateInput"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

type ListPresetsResponse struct {
	Presets []PresetResponse `json:"presets"`
}

func toResponse(p *model.Preset) PresetResponse {
	resp := PresetResponse{
		ID:              p.ID,
		Name:            p.Name,
		Description:     p.Description,
		MaskChar:        p.MaskChar,
		UnmaskedStart:   p.UnmaskedStart,
		UnmaskedEnd:     p.UnmaskedEnd,
		PreserveSpacing: p.PreserveSpacing,
		GroupEvery:      p.GroupEvery,
		ShowLength:      p.ShowLength,
		ValidateInput:   p.ValidateInput,
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}

	if g, err := p.Grouping(); err == nil && g.Every() == 0 {
		resp.GroupSizes = g.Sizes()
	}
	return resp
}
