// Package pad converts digit strings into hyphenated Korean display formats.
// Non-digit characters are ignored, so already formatted input is accepted too.
package pad

import (
	"fmt"
	"strings"

	krformat "github.com/Dorico-Dynamics/txova-go-krformat"
)

const (
	// Separator joins the digit groups of every padded value.
	Separator = "-"

	// seoulPrefix is the area code that uses a two-digit prefix.
	seoulPrefix = "02"
)

// Phone formats a phone number as 010-1234-5678, 02-123-4567, 02-1234-5678
// or 031-123-4567 depending on its length and area code.
// A 10-digit number without a leading 0 is treated as a mobile number missing its trunk digit.
// Unrecognised lengths are returned as bare digits.
func Phone[V krformat.Value](phone V) string {
	digits, groups := phoneGroups(krformat.String(phone))
	if groups == nil {
		return digits
	}
	return split(digits, groups...)
}

// Business formats a business registration number as 123-45-67890.
// Anything other than 10 digits is returned as bare digits.
func Business[V krformat.Value](business V) string {
	digits := krformat.Digits(krformat.String(business))
	if len(digits) != 10 {
		return digits
	}
	return split(digits, 3, 2, 5)
}

// Card formats a card number in groups of four: 1234-5678-9012-3456.
// A trailing partial group is kept as is.
func Card[V krformat.Value](card V) string {
	digits := krformat.Digits(krformat.String(card))

	var sb strings.Builder
	sb.Grow(len(digits) + len(digits)/4)

	for i := 0; i < len(digits); i++ {
		if i > 0 && i%4 == 0 {
			sb.WriteString(Separator)
		}
		sb.WriteByte(digits[i])
	}

	return sb.String()
}

// ValidatePhone reports whether Phone recognises the shape of phone.
func ValidatePhone(phone string) error {
	digits, groups := phoneGroups(phone)
	if groups == nil {
		return krformat.InvalidPhone(fmt.Sprintf("unrecognised phone number with %d digits", len(digits)))
	}
	return nil
}

// ValidateBusiness reports whether Business recognises the shape of business.
func ValidateBusiness(business string) error {
	digits := krformat.Digits(business)
	if len(digits) != 10 {
		return krformat.InvalidBusinessNumber(fmt.Sprintf("business number must have 10 digits, got %d", len(digits)))
	}
	return nil
}

// phoneGroups normalises phone to its digits and picks the grouping for it.
// The groups are nil when no phone format matches.
func phoneGroups(phone string) (string, []int) {
	digits := krformat.Digits(phone)
	if len(digits) == 10 && digits[0] != '0' {
		digits = "0" + digits
	}

	switch {
	case len(digits) == 11:
		return digits, []int{3, 4, 4}
	case len(digits) == 9 && strings.HasPrefix(digits, seoulPrefix):
		return digits, []int{2, 3, 4}
	case len(digits) == 10 && strings.HasPrefix(digits, seoulPrefix):
		return digits, []int{2, 4, 4}
	case len(digits) == 10:
		return digits, []int{3, 3, 4}
	default:
		return digits, nil
	}
}

// split joins consecutive runs of digits with the given sizes.
// The sizes must add up to len(digits).
func split(digits string, sizes ...int) string {
	parts := make([]string, 0, len(sizes))
	start := 0
	for _, size := range sizes {
		parts = append(parts, digits[start:start+size])
		start += size
	}
	return strings.Join(parts, Separator)
}
