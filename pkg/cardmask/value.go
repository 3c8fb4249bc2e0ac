package cardmask

import (
	"encoding/json"
	"fmt"
	"math"
	"reflect"
	"strconv"
)

// MaskValue masks a card number supplied as text or as a number.
// A nil value, or a nil pointer, yields "" without error.
func MaskValue(v any, o Options) (string, error) {
	s, ok := Stringify(v)
	if !ok {
		return "", nil
	}
	return Mask(s, o)
}

// Stringify converts v to its canonical decimal text. It returns false
// when v is absent.
func Stringify(v any) (string, bool) {
	switch x := v.(type) {
	case nil:
		return "", false
	case string:
		return x, true
	case *string:
		if x == nil {
			return "", false
		}
		return *x, true
	case []byte:
		return string(x), true
	case json.Number:
		return x.String(), true
	case int:
		return strconv.FormatInt(int64(x), 10), true
	case int8:
		return strconv.FormatInt(int64(x), 10), true
	case int16:
		return strconv.FormatInt(int64(x), 10), true
	case int32:
		return strconv.FormatInt(int64(x), 10), true
	case int64:
		return strconv.FormatInt(x, 10), true
	case uint:
		return strconv.FormatUint(uint64(x), 10), true
	case uint8:
		return strconv.FormatUint(uint64(x), 10), true
	case uint16:
		return strconv.FormatUint(uint64(x), 10), true
	case uint32:
		return strconv.FormatUint(uint64(x), 10), true
	case uint64:
		return strconv.FormatUint(x, 10), true
	case float32:
		return formatFloat(float64(x), 32), true
	case float64:
		return formatFloat(x, 64), true
	case fmt.Stringer:
		if isNilPointer(x) {
			return "", false
		}
		return x.String(), true
	}

	if isNilPointer(v) {
		return "", false
	}
	return fmt.Sprint(v), true
}

func formatFloat(f float64, bitSize int) string {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return strconv.FormatFloat(f, 'g', -1, bitSize)
	}
	return strconv.FormatFloat(f, 'f', -1, bitSize)
}

func isNilPointer(v any) bool {
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Pointer && rv.IsNil()
}
