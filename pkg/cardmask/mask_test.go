package cardmask_test

import (
	"errors"
	"testing"

	"github.com/changhyeonkim/cardmask/pkg/cardmask"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMask_Defaults(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "Visa", input: "4532123456789012", expected: "************9012"},
		{name: "Mastercard", input: "5500000000000004", expected: "************0004"},
		{name: "Amex", input: "378282246310005", expected: "***********0005"},
		{name: "Diners", input: "30569309025904", expected: "**********5904"},
		{name: "JCB", input: "3530111333300000", expected: "************0000"},
		{name: "Dashes stripped", input: "4532-1234-5678-9012", expected: "************9012"},
		{name: "Spaces stripped", input: "4532 1234 5678 9012", expected: "************9012"},
		{name: "Dots stripped", input: "4532.1234.5678.9012", expected: "************9012"},
		{name: "Letters interleaved", input: "45a3b2c1d2e3f4g5h6i7j8k9l0m1n2o", expected: "************9012"},
		{name: "Short number", input: "12345", expected: "*2345"},
		{name: "Single digit", input: "4", expected: "4"},
		{name: "Exactly unmasked end", input: "4532", expected: "4532"},
		{name: "Empty", input: "", expected: ""},
		{name: "Whitespace only", input: "   ", expected: ""},
		{name: "Letters only", input: "abcd-efgh", expected: ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// When
			result, err := cardmask.Mask(tc.input, cardmask.DefaultOptions())

			// Then
			require.NoError(t, err)
			assert.Equal(t, tc.expected, result)
		})
	}
}

func TestMask_Options(t *testing.T) {
	const visa = "4532123456789012"

	testCases := []struct {
		name     string
		input    string
		opts     []cardmask.Option
		expected string
	}{
		{
			name:     "Custom mask char bullet",
			input:    visa,
			opts:     []cardmask.Option{cardmask.WithMaskChar('•')},
			expected: "••••••••••••9012",
		},
		{
			name:     "Custom mask char X",
			input:    visa,
			opts:     []cardmask.Option{cardmask.WithMaskChar('X')},
			expected: "XXXXXXXXXXXX9012",
		},
		{
			name:     "First 4 and last 4",
			input:    visa,
			opts:     []cardmask.Option{cardmask.WithUnmaskedStart(4)},
			expected: "4532********9012",
		},
		{
			name:     "First 6",
			input:    visa,
			opts:     []cardmask.Option{cardmask.WithUnmaskedStart(6)},
			expected: "453212******9012",
		},
		{
			name:     "Only first digit",
			input:    visa,
			opts:     []cardmask.Option{cardmask.WithUnmaskedStart(1), cardmask.WithUnmaskedEnd(0)},
			expected: "4***************",
		},
		{
			name:     "Last 6",
			input:    visa,
			opts:     []cardmask.Option{cardmask.WithUnmaskedEnd(6)},
			expected: "**********789012",
		},
		{
			name:     "First 2 and last 2",
			input:    visa,
			opts:     []cardmask.Option{cardmask.WithUnmaskedStart(2), cardmask.WithUnmaskedEnd(2)},
			expected: "45************12",
		},
		{
			name:     "Hide everything",
			input:    visa,
			opts:     []cardmask.Option{cardmask.WithUnmaskedStart(0), cardmask.WithUnmaskedEnd(0)},
			expected: "****************",
		},
		{
			name:     "Start exceeds length",
			input:    visa,
			opts:     []cardmask.Option{cardmask.WithUnmaskedStart(20)},
			expected: visa,
		},
		{
			name:     "End exceeds length",
			input:    visa,
			opts:     []cardmask.Option{cardmask.WithUnmaskedEnd(20)},
			expected: visa,
		},
		{
			name:     "Windows exactly partition",
			input:    visa,
			opts:     []cardmask.Option{cardmask.WithUnmaskedStart(8), cardmask.WithUnmaskedEnd(8)},
			expected: visa,
		},
		{
			name:     "Bypass ignores separators even with preserve spacing",
			input:    "4532 1234 5678 9012",
			opts:     []cardmask.Option{cardmask.WithUnmaskedStart(8), cardmask.WithUnmaskedEnd(8), cardmask.WithPreserveSpacing(true)},
			expected: visa,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// When
			result, err := cardmask.Mask(tc.input, cardmask.NewOptions(tc.opts...))

			// Then
			require.NoError(t, err)
			assert.Equal(t, tc.expected, result)
		})
	}
}

func TestMask_PreserveSpacing(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		opts     []cardmask.Option
		expected string
	}{
		{
			name:     "Spaces",
			input:    "4532 1234 5678 9012",
			expected: "**** **** **** 9012",
		},
		{
			name:     "Spaces with unmasked start",
			input:    "4532 1234 5678 9012",
			opts:     []cardmask.Option{cardmask.WithUnmaskedStart(4)},
			expected: "4532 **** **** 9012",
		},
		{
			name:     "Dashes",
			input:    "4532-1234-5678-9012",
			expected: "****-****-****-9012",
		},
		{
			name:     "Mixed separators",
			input:    "4532 1234-5678.9012",
			expected: "**** ****-****.9012",
		},
		{
			name:     "No separators falls through",
			input:    "4532123456789012",
			expected: "************9012",
		},
		{
			name:     "Custom mask char",
			input:    "4532 1234 5678 9012",
			opts:     []cardmask.Option{cardmask.WithMaskChar('X')},
			expected: "XXXX XXXX XXXX 9012",
		},
		{
			name:     "Wins over grouping",
			input:    "4532-1234-5678-9012",
			opts:     []cardmask.Option{cardmask.WithGrouping(cardmask.GroupEvery(4))},
			expected: "****-****-****-9012",
		},
		{
			name:     "Multibyte separators kept",
			input:    "4532·1234·5678·9012",
			expected: "****·****·****·9012",
		},
		{
			name:     "Shortened mask leaves trailing separators",
			input:    "4532 1234 5678 9012",
			opts:     []cardmask.Option{cardmask.WithShowLength(false)},
			expected: "**** 9012  ",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// Given
			opts := append([]cardmask.Option{cardmask.WithPreserveSpacing(true)}, tc.opts...)

			// When
			result, err := cardmask.Mask(tc.input, cardmask.NewOptions(opts...))

			// Then
			require.NoError(t, err)
			assert.Equal(t, tc.expected, result)
		})
	}
}

func TestMask_Grouping(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		opts     []cardmask.Option
		expected string
	}{
		{
			name:     "Every 4",
			input:    "4532123456789012",
			opts:     []cardmask.Option{cardmask.WithGrouping(cardmask.GroupEvery(4))},
			expected: "**** **** **** 9012",
		},
		{
			name:     "Amex 4-6-5",
			input:    "378282246310005",
			opts:     []cardmask.Option{cardmask.WithGrouping(cardmask.GroupSizes(4, 6, 5))},
			expected: "**** ****** *0005",
		},
		{
			name:     "Explicit 4-4-4-4",
			input:    "4532123456789012",
			opts:     []cardmask.Option{cardmask.WithGrouping(cardmask.GroupSizes(4, 4, 4, 4))},
			expected: "**** **** **** 9012",
		},
		{
			name:     "Every 3",
			input:    "4532123456789012",
			opts:     []cardmask.Option{cardmask.WithGrouping(cardmask.GroupEvery(3))},
			expected: "*** *** *** *** 901 2",
		},
		{
			name:     "Incomplete final group",
			input:    "378282246310005",
			opts:     []cardmask.Option{cardmask.WithGrouping(cardmask.GroupEvery(4))},
			expected: "**** **** ***0 005",
		},
		{
			name:     "Bullet mask char",
			input:    "4532123456789012",
			opts:     []cardmask.Option{cardmask.WithGrouping(cardmask.GroupEvery(4)), cardmask.WithMaskChar('•')},
			expected: "•••• •••• •••• 9012",
		},
		{
			name:     "Remainder appended after list",
			input:    "4532123456789012",
			opts:     []cardmask.Option{cardmask.WithGrouping(cardmask.GroupSizes(4))},
			expected: "**** ********9012",
		},
		{
			name:     "Excess group sizes ignored",
			input:    "4532123456789012",
			opts:     []cardmask.Option{cardmask.WithGrouping(cardmask.GroupSizes(8, 8, 8, 8))},
			expected: "******** ****9012",
		},
		{
			name:  "All options combined",
			input: "4532123456789012",
			opts: []cardmask.Option{
				cardmask.WithMaskChar('#'),
				cardmask.WithUnmaskedStart(4),
				cardmask.WithUnmaskedEnd(6),
				cardmask.WithGrouping(cardmask.GroupEvery(4)),
			},
			expected: "4532 #### ##78 9012",
		},
		{
			name:     "Grouping after shortened mask",
			input:    "4532123456789012",
			opts:     []cardmask.Option{cardmask.WithShowLength(false), cardmask.WithGrouping(cardmask.GroupEvery(4))},
			expected: "**** 9012",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// When
			result, err := cardmask.Mask(tc.input, cardmask.NewOptions(tc.opts...))

			// Then
			require.NoError(t, err)
			assert.Equal(t, tc.expected, result)
		})
	}
}

func TestMask_ShowLength(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		opts     []cardmask.Option
		expected string
	}{
		{name: "Default end", input: "4532123456789012", expected: "****9012"},
		{name: "Last 6", input: "4532123456789012", opts: []cardmask.Option{cardmask.WithUnmaskedEnd(6)}, expected: "****789012"},
		{name: "First 4", input: "4532123456789012", opts: []cardmask.Option{cardmask.WithUnmaskedStart(4)}, expected: "4532****9012"},
		{name: "Capped at four", input: "45321234567890123456", expected: "****3456"},
		{name: "Short hidden run kept", input: "123456", expected: "**3456"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// Given
			opts := append([]cardmask.Option{cardmask.WithShowLength(false)}, tc.opts...)

			// When
			result, err := cardmask.Mask(tc.input, cardmask.NewOptions(opts...))

			// Then
			require.NoError(t, err)
			assert.Equal(t, tc.expected, result)
		})
	}

	t.Run("Full length by default", func(t *testing.T) {
		result, err := cardmask.Mask("4532123456789012", cardmask.NewOptions(cardmask.WithShowLength(true)))
		require.NoError(t, err)
		assert.Equal(t, "************9012", result)
	})
}

func TestMask_ValidateInput(t *testing.T) {
	validate := cardmask.NewOptions(cardmask.WithValidateInput(true))

	t.Run("Accepted lengths", func(t *testing.T) {
		for _, input := range []string{"4532123456789", "378282246310005", "4532123456789012", "4532123456789012345"} {
			_, err := cardmask.Mask(input, validate)
			assert.NoError(t, err, input)
		}
	})

	t.Run("Rejected lengths", func(t *testing.T) {
		for _, input := range []string{"123", "453212345678", "45321234567890123456"} {
			// When
			result, err := cardmask.Mask(input, validate)

			// Then
			require.Error(t, err, input)
			assert.Empty(t, result)
			assert.EqualError(t, err, "Invalid card number: must be 13-19 digits")
			assert.True(t, errors.Is(err, cardmask.ErrInvalidCardNumber))

			var ve *cardmask.ValidationError
			require.True(t, errors.As(err, &ve))
			assert.Equal(t, len(input), ve.DigitCount)
			assert.True(t, cardmask.IsValidationError(err))
		}
	})

	t.Run("Empty input returns before validation", func(t *testing.T) {
		result, err := cardmask.Mask("no digits here", validate)
		require.NoError(t, err)
		assert.Empty(t, result)
	})

	t.Run("Validation applies even when bypass would apply", func(t *testing.T) {
		_, err := cardmask.Mask("123", cardmask.NewOptions(cardmask.WithValidateInput(true), cardmask.WithUnmaskedEnd(10)))
		assert.ErrorIs(t, err, cardmask.ErrInvalidCardNumber)
	})

	t.Run("Disabled by default", func(t *testing.T) {
		result, err := cardmask.Mask("123", cardmask.DefaultOptions())
		require.NoError(t, err)
		assert.Equal(t, "123", result)
	})
}

func TestMask_InvalidOptions(t *testing.T) {
	testCases := []struct {
		name string
		opts []cardmask.Option
	}{
		{name: "Negative start", opts: []cardmask.Option{cardmask.WithUnmaskedStart(-1)}},
		{name: "Negative end", opts: []cardmask.Option{cardmask.WithUnmaskedEnd(-1)}},
		{name: "Negative group", opts: []cardmask.Option{cardmask.WithGrouping(cardmask.GroupEvery(-4))}},
		{name: "Zero size in list", opts: []cardmask.Option{cardmask.WithGrouping(cardmask.GroupSizes(4, 0, 4))}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := cardmask.Mask("4532123456789012", cardmask.NewOptions(tc.opts...))
			assert.ErrorIs(t, err, cardmask.ErrInvalidOptions)
		})
	}
}

func TestMask_NoDigitsIgnoresOptions(t *testing.T) {
	// Given: options that could not mask anything
	opts := cardmask.NewOptions(cardmask.WithUnmaskedStart(-1), cardmask.WithGrouping(cardmask.GroupEvery(-4)))

	for _, input := range []string{"", "---", "no digits"} {
		// When
		result, err := cardmask.Mask(input, opts)

		// Then
		require.NoError(t, err, input)
		assert.Equal(t, "", result, input)
	}
}

func TestMask_ZeroOptions(t *testing.T) {
	// Given: the zero value hides the length and keeps no trailing digits
	result, err := cardmask.Mask("4532123456789012", cardmask.Options{})
	require.NoError(t, err)
	assert.Equal(t, "****", result)

	// When: starting from the defaults instead
	result, err = cardmask.Mask("4532123456789012", cardmask.DefaultOptions())

	// Then
	require.NoError(t, err)
	assert.Equal(t, "************9012", result)
}

func TestMask_ZeroMaskCharUsesDefault(t *testing.T) {
	// Given: options built without the factory
	opts := cardmask.Options{UnmaskedEnd: 4, ShowLength: true}

	// When
	result, err := cardmask.Mask("4532123456789012", opts)

	// Then
	require.NoError(t, err)
	assert.Equal(t, "************9012", result)
}

func TestMaskValue(t *testing.T) {
	var nilString *string
	text := "4532 1234 5678 9012"

	testCases := []struct {
		name     string
		input    any
		expected string
	}{
		{name: "Nil", input: nil, expected: ""},
		{name: "Nil pointer", input: nilString, expected: ""},
		{name: "String pointer", input: &text, expected: "************9012"},
		{name: "Int64", input: int64(4532123456789012), expected: "************9012"},
		{name: "Uint64", input: uint64(4532123456789012), expected: "************9012"},
		{name: "Int", input: 4532123456789012, expected: "************9012"},
		{name: "Float64", input: float64(4532123456789012), expected: "************9012"},
		{name: "Bytes", input: []byte("4532-1234-5678-9012"), expected: "************9012"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			result, err := cardmask.MaskValue(tc.input, cardmask.DefaultOptions())
			require.NoError(t, err)
			assert.Equal(t, tc.expected, result)
		})
	}
}

func TestExpandGrouping(t *testing.T) {
	assert.Equal(t, []int{4, 4, 4, 4}, cardmask.ExpandGrouping(cardmask.GroupEvery(4), 16))
	assert.Equal(t, []int{4, 4, 4, 4}, cardmask.ExpandGrouping(cardmask.GroupEvery(4), 15))
	assert.Equal(t, []int{3, 3, 3, 3, 3, 3}, cardmask.ExpandGrouping(cardmask.GroupEvery(3), 16))
	assert.Equal(t, []int{4, 6, 5}, cardmask.ExpandGrouping(cardmask.GroupSizes(4, 6, 5), 15))
	assert.Nil(t, cardmask.ExpandGrouping(cardmask.Grouping{}, 16))
	assert.Empty(t, cardmask.ExpandGrouping(cardmask.GroupEvery(4), 0))
}

func TestParseGroupSizes(t *testing.T) {
	g, err := cardmask.ParseGroupSizes("4, 6,5")
	require.NoError(t, err)
	assert.Equal(t, []int{4, 6, 5}, g.Sizes())
	assert.Equal(t, "4,6,5", g.String())

	g, err = cardmask.ParseGroupSizes("")
	require.NoError(t, err)
	assert.True(t, g.IsZero())

	_, err = cardmask.ParseGroupSizes("4,x")
	assert.Error(t, err)

	_, err = cardmask.ParseGroupSizes("4,0")
	assert.ErrorIs(t, err, cardmask.ErrInvalidOptions)
}
