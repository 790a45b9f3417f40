// Package format renders numbers, amounts, dates and byte sizes in Korean display form.
//
// Grouping is done by hand rather than through a locale database, so output is
// identical on every platform. Values that cannot be parsed are returned unchanged.
package format

import (
	"strconv"
	"strings"

	"golang.org/x/text/width"

	krformat "github.com/Dorico-Dynamics/txova-go-krformat"
)

const (
	// CurrencyUnit is appended by Currency when withUnit is set.
	CurrencyUnit = "원"

	// groupSeparator separates each run of three integer digits.
	groupSeparator = ","
	// maxFractionDigits is the rounding precision of rendered numbers.
	maxFractionDigits = 3
)

// Currency formats an amount with thousands grouping, followed by 원 when withUnit is set.
// Example: Currency(1234567, true) => "1,234,567원".
// Characters other than digits, '.' and '-' are ignored; if what remains is not a
// number the text form of amount is returned unchanged.
func Currency[V krformat.Value](amount V, withUnit bool) string {
	text := krformat.String(amount)

	n, err := ParseAmount(text)
	if err != nil {
		return text
	}

	formatted := group(n)
	if withUnit {
		return formatted + CurrencyUnit
	}
	return formatted
}

// Number formats a value with thousands grouping.
// Example: Number(-1234567) => "-1,234,567".
func Number[V krformat.Value](number V) string {
	text := krformat.String(number)

	n, err := ParseAmount(text)
	if err != nil {
		return text
	}
	return group(n)
}

// ParseAmount parses s as a number after dropping everything but digits, '.' and '-'.
func ParseAmount(s string) (float64, error) {
	s = width.Narrow.String(s)

	var sb strings.Builder
	sb.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c >= '0' && c <= '9') || c == '.' || c == '-' {
			sb.WriteByte(c)
		}
	}

	cleaned := sb.String()
	if cleaned == "" {
		return 0, krformat.InvalidNumber("no numeric characters", nil)
	}

	n, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, krformat.InvalidNumber("not a number: "+strconv.Quote(cleaned), err)
	}
	return n, nil
}

// group renders n rounded to at most three fraction digits, with the integer
// part split into comma-separated groups of three.
func group(n float64) string {
	neg := n < 0
	if neg {
		n = -n
	}

	s := strconv.FormatFloat(n, 'f', maxFractionDigits, 64)
	intPart, fracPart, _ := strings.Cut(s, ".")
	fracPart = strings.TrimRight(fracPart, "0")

	var sb strings.Builder
	sb.Grow(len(s) + len(intPart)/3 + 1)

	if neg && (strings.Trim(intPart, "0") != "" || fracPart != "") {
		sb.WriteByte('-')
	}
	for i := 0; i < len(intPart); i++ {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			sb.WriteString(groupSeparator)
		}
		sb.WriteByte(intPart[i])
	}
	if fracPart != "" {
		sb.WriteByte('.')
		sb.WriteString(fracPart)
	}

	return sb.String()
}
