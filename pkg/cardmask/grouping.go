package cardmask

import (
	"fmt"
	"strconv"
	"strings"
)

// Grouping re-chunks masked output into space separated blocks.
// The zero value means no grouping.
//
// A uniform grouping repeats its size until the output is consumed, while
// an explicit list consumes one block per entry and appends whatever is
// left as a single trailing block. GroupEvery(4) and GroupSizes(4) differ.
type Grouping struct {
	every int
	sizes []int
}

// GroupEvery splits the output into blocks of n.
func GroupEvery(n int) Grouping {
	return Grouping{every: n}
}

// GroupSizes splits the output into blocks of the given sizes, in order.
func GroupSizes(sizes ...int) Grouping {
	if len(sizes) == 0 {
		return Grouping{}
	}
	return Grouping{sizes: append([]int(nil), sizes...)}
}

// IsZero reports whether no grouping was requested.
func (g Grouping) IsZero() bool {
	return g.every == 0 && len(g.sizes) == 0
}

// Every returns the uniform block size, or 0 for list or absent groupings.
func (g Grouping) Every() int {
	return g.every
}

// Sizes returns a copy of the explicit block sizes.
func (g Grouping) Sizes() []int {
	return append([]int(nil), g.sizes...)
}

func (g Grouping) valid() bool {
	if g.every < 0 {
		return false
	}
	for _, s := range g.sizes {
		if s <= 0 {
			return false
		}
	}
	return true
}

// String renders the grouping as "4" or "4,6,5"; empty when absent.
func (g Grouping) String() string {
	if g.every > 0 {
		return strconv.Itoa(g.every)
	}
	parts := make([]string, len(g.sizes))
	for i, s := range g.sizes {
		parts[i] = strconv.Itoa(s)
	}
	return strings.Join(parts, ",")
}

// ParseGroupSizes parses a comma separated list such as "4,6,5".
func ParseGroupSizes(s string) (Grouping, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Grouping{}, nil
	}

	fields := strings.Split(s, ",")
	sizes := make([]int, 0, len(fields))
	for _, f := range fields {
		n, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil {
			return Grouping{}, fmt.Errorf("cardmask: parse group size %q: %w", f, err)
		}
		if n <= 0 {
			return Grouping{}, fmt.Errorf("cardmask: group size %d: %w", n, ErrInvalidOptions)
		}
		sizes = append(sizes, n)
	}
	return GroupSizes(sizes...), nil
}

// ExpandGrouping returns the ordered block sizes applied to an output of
// the given length. A uniform size n expands to ceil(length/n) copies of n.
func ExpandGrouping(g Grouping, length int) []int {
	if g.every > 0 {
		count := (length + g.every - 1) / g.every
		sizes := make([]int, count)
		for i := range sizes {
			sizes[i] = g.every
		}
		return sizes
	}
	if len(g.sizes) == 0 {
		return nil
	}
	return g.Sizes()
}

func applyGrouping(masked []rune, sizes []int) string {
	var b strings.Builder
	b.Grow(len(masked) + len(sizes))

	pos := 0
	for _, size := range sizes {
		if pos >= len(masked) {
			break
		}
		if pos > 0 {
			b.WriteByte(' ')
		}
		end := min(pos+size, len(masked))
		b.WriteString(string(masked[pos:end]))
		pos = end
	}

	if pos < len(masked) {
		if pos > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(string(masked[pos:]))
	}
	return b.String()
}
