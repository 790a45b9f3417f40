package krformat

import (
	"reflect"
	"strconv"
	"strings"

	"golang.org/x/text/width"
)

// Number is the set of numeric types accepted by the formatters.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Value is the set of types accepted where either text or a number may be given.
type Value interface {
	~string | Number
}

// String returns the text form of v.
// Integers are rendered in base 10 and floats in plain decimal notation,
// never in exponent form.
func String[V Value](v V) string {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.String:
		return rv.String()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(rv.Uint(), 10)
	case reflect.Float32:
		return strconv.FormatFloat(rv.Float(), 'f', -1, 32)
	default:
		return strconv.FormatFloat(rv.Float(), 'f', -1, 64)
	}
}

// Digits extracts the ASCII digits from s.
// Full-width digits are folded to ASCII first; every other character is dropped.
func Digits(s string) string {
	s = width.Narrow.String(s)

	var sb strings.Builder
	sb.Grow(len(s))

	for i := 0; i < len(s); i++ {
		if s[i] >= '0' && s[i] <= '9' {
			sb.WriteByte(s[i])
		}
	}

	return sb.String()
}
