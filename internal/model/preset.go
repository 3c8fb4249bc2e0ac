package model

import (
	"fmt"
	"unicode/utf8"

	"github.com/changhyeonkim/cardmask/pkg/cardmask"
)

// Preset is a named set of masking options. It stores configuration only,
// never card numbers.
type Preset struct {
	ID uint32 `gorm:"column:id;primaryKey;autoIncrement"`

	Name        string `gorm:"column:name;type:VARCHAR2(50);not null;uniqueIndex:idx_preset_name"` // 프리셋 이름 (unique)
	Description string `gorm:"column:description;type:VARCHAR2(255)"`

	// Masking options
	MaskChar        string `gorm:"column:mask_char;type:VARCHAR2(4);not null"` // 한 글자 (UTF-8 최대 4바이트)
	UnmaskedStart   int    `gorm:"column:unmasked_start;not null"`
	UnmaskedEnd     int    `gorm:"column:unmasked_end;not null"`
	PreserveSpacing bool   `gorm:"column:preserve_spacing;not null"`
	GroupEvery      int    `gorm:"column:group_every;not null"`           // 0: 사용 안 함
	GroupSizes      string `gorm:"column:group_sizes;type:VARCHAR2(100)"` // 예: "4,6,5"
	ShowLength      bool   `gorm:"column:show_length;not null"`
	ValidateInput   bool   `gorm:"column:validate_input;not null"`

	BaseEntity
}

// TableName specifies the table name for Preset
func (*Preset) TableName() string {
	return "preset"
}

// NewPreset creates a Preset holding opts.
func NewPreset(name, description string, opts cardmask.Options) *Preset {
	p := &Preset{
		Name:        name,
		Description: description,
	}
	p.SetOptions(opts)
	return p
}

// SetOptions overwrites every masking column with opts.
func (p *Preset) SetOptions(opts cardmask.Options) {
	maskChar := opts.MaskChar
	if maskChar == 0 {
		maskChar = cardmask.DefaultMaskChar
	}

	p.MaskChar = string(maskChar)
	p.UnmaskedStart = opts.UnmaskedStart
	p.UnmaskedEnd = opts.UnmaskedEnd
	p.PreserveSpacing = opts.PreserveSpacing
	p.SetGrouping(opts.Grouping)
	p.ShowLength = opts.ShowLength
	p.ValidateInput = opts.ValidateInput
}

// Grouping decodes the stored grouping columns. GroupEvery wins when both are set.
func (p *Preset) Grouping() (cardmask.Grouping, error) {
	if p.GroupEvery > 0 {
		return cardmask.GroupEvery(p.GroupEvery), nil
	}
	return cardmask.ParseGroupSizes(p.GroupSizes)
}

// SetGrouping encodes g into the grouping columns.
func (p *Preset) SetGrouping(g cardmask.Grouping) {
	p.GroupEvery = g.Every()
	p.GroupSizes = ""
	if p.GroupEvery == 0 {
		p.GroupSizes = g.String()
	}
}

// Options converts the preset into masking options.
func (p *Preset) Options() (cardmask.Options, error) {
	grouping, err := p.Grouping()
	if err != nil {
		return cardmask.Options{}, fmt.Errorf("preset %q grouping: %w", p.Name, err)
	}

	maskChar, size := utf8.DecodeRuneInString(p.MaskChar)
	if size == 0 || maskChar == utf8.RuneError {
		maskChar = cardmask.DefaultMaskChar
	}

	opts := cardmask.Options{
		MaskChar:        maskChar,
		UnmaskedStart:   p.UnmaskedStart,
		UnmaskedEnd:     p.UnmaskedEnd,
		PreserveSpacing: p.PreserveSpacing,
		Grouping:        grouping,
		ShowLength:      p.ShowLength,
		ValidateInput:   p.ValidateInput,
	}
	if err := opts.Validate(); err != nil {
		return cardmask.Options{}, fmt.Errorf("preset %q: %w", p.Name, err)
	}
	return opts, nil
}
