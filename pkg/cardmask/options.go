package cardmask

const (
	// DefaultMaskChar replaces each hidden digit.
	DefaultMaskChar = '*'
	// DefaultUnmaskedEnd is the number of trailing digits left visible.
	DefaultUnmaskedEnd = 4
)

// Options controls how a card number is masked.
// Build it with DefaultOptions or NewOptions; the zero value hides the length.
type Options struct {
	MaskChar        rune
	UnmaskedStart   int
	UnmaskedEnd     int
	PreserveSpacing bool
	Grouping        Grouping
	ShowLength      bool
	ValidateInput   bool
}

// DefaultOptions returns '*' masking with the last 4 digits visible.
func DefaultOptions() Options {
	return Options{
		MaskChar:    DefaultMaskChar,
		UnmaskedEnd: DefaultUnmaskedEnd,
		ShowLength:  true,
	}
}

type Option func(*Options)

// NewOptions applies opts in order on top of DefaultOptions.
func NewOptions(opts ...Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

func WithMaskChar(r rune) Option {
	return func(o *Options) { o.MaskChar = r }
}

func WithUnmaskedStart(n int) Option {
	return func(o *Options) { o.UnmaskedStart = n }
}

func WithUnmaskedEnd(n int) Option {
	return func(o *Options) { o.UnmaskedEnd = n }
}

func WithPreserveSpacing(v bool) Option {
	return func(o *Options) { o.PreserveSpacing = v }
}

func WithGrouping(g Grouping) Option {
	return func(o *Options) { o.Grouping = g }
}

func WithShowLength(v bool) Option {
	return func(o *Options) { o.ShowLength = v }
}

func WithValidateInput(v bool) Option {
	return func(o *Options) { o.ValidateInput = v }
}

// Validate reports options that cannot be applied to any input.
func (o Options) Validate() error {
	if o.UnmaskedStart < 0 || o.UnmaskedEnd < 0 {
		return ErrInvalidOptions
	}
	if !o.Grouping.valid() {
		return ErrInvalidOptions
	}
	return nil
}

func (o Options) maskChar() rune {
	if o.MaskChar == 0 {
		return DefaultMaskChar
	}
	return o.MaskChar
}
