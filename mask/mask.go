// Package mask provides PII (Personally Identifiable Information) masking utilities
// for Korean identifiers. Masked values keep enough structure to stay recognisable
// on screen. Input that does not match the expected shape is returned unchanged.
package mask

import (
	"fmt"
	"strings"

	"github.com/Dorico-Dynamics/txova-go-types/contact"

	krformat "github.com/Dorico-Dynamics/txova-go-krformat"
	"github.com/Dorico-Dynamics/txova-go-krformat/pad"
)

const (
	// DefaultMaskChar is the default character used for masking.
	DefaultMaskChar = '*'

	// DefaultPhoneMaskLength is the conventional mask length passed to Phone.
	DefaultPhoneMaskLength = 4

	// rrnFrontLen is the birth-date segment of a resident registration number.
	rrnFrontLen = 6
	// rrnBackLen is the segment after the birth date.
	rrnBackLen = 7

	// emailMaxVisible caps how many characters of the local part stay visible.
	emailMaxVisible = 3
	// cardVisibleDigits is the number of trailing card digits left visible.
	cardVisibleDigits = 4
)

// Masker provides PII masking with configurable options.
type Masker struct {
	maskChar rune
}

// Option is a functional option for configuring the Masker.
type Option func(*Masker)

// WithMaskChar sets a custom mask character.
func WithMaskChar(char rune) Option {
	return func(m *Masker) {
		m.maskChar = char
	}
}

// NewMasker creates a new Masker with the given options.
func NewMasker(opts ...Option) *Masker {
	m := &Masker{
		maskChar: DefaultMaskChar,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// RRN masks a resident registration number, keeping the birth-date segment and
// revealing up to visibleDigits trailing digits of the back segment.
// Format: 900101-******7.
// Values outside 0..7 are clamped. Input without exactly 13 digits is returned unchanged.
func (m *Masker) RRN(rrn string, visibleDigits int) string {
	digits := krformat.Digits(rrn)
	if len(digits) != rrnFrontLen+rrnBackLen {
		return rrn
	}

	visible := min(max(visibleDigits, 0), rrnBackLen)
	front := digits[:rrnFrontLen]
	back := digits[rrnFrontLen:]

	return front + pad.Separator + string(repeatRune(m.maskChar, rrnBackLen-visible)) + back[rrnBackLen-visible:]
}

// Phone masks the middle group of a phone number.
// Format: 010-****-5678.
//
// The number is first formatted with pad.Phone and the mask always spans the
// whole middle group; maskLength does not change the width. Numbers pad.Phone
// does not recognise are returned in their padded (digits-only) form.
func (m *Masker) Phone(phone string, maskLength int) string {
	formatted := pad.Phone(phone)
	parts := strings.Split(formatted, pad.Separator)
	if len(parts) != 3 {
		return formatted
	}

	parts[1] = string(repeatRune(m.maskChar, len(parts[1])))
	return strings.Join(parts, pad.Separator)
}

// PhoneNumber masks a contact.PhoneNumber.
func (m *Masker) PhoneNumber(phone contact.PhoneNumber) string {
	return m.Phone(phone.String(), DefaultPhoneMaskLength)
}

// Email masks the local part of an email address, keeping roughly its first half
// (at least 1, at most 3 characters) and the full domain.
// Format: te**@example.com.
// Input that does not split into exactly two parts on '@' is returned unchanged.
func (m *Masker) Email(email string) string {
	parts := strings.Split(email, "@")
	if len(parts) != 2 {
		return email
	}

	id := []rune(parts[0])
	visible := min(max((len(id)+1)/2, 1), emailMaxVisible)
	shown := min(visible, len(id))
	maskedLen := max(1, len(id)-visible)

	return string(id[:shown]) + string(repeatRune(m.maskChar, maskedLen)) + "@" + parts[1]
}

// EmailAddress masks a contact.Email.
func (m *Masker) EmailAddress(email contact.Email) string {
	return m.Email(email.String())
}

// Name masks a personal name word by word.
// Two-character words keep the first character; longer words keep the first and last.
// Format: 홍*동.
func (m *Masker) Name(name string) string {
	words := strings.Fields(name)
	if len(words) == 0 {
		return ""
	}

	masked := make([]string, len(words))
	for i, word := range words {
		runes := []rune(word)
		switch len(runes) {
		case 1:
			masked[i] = word
		case 2:
			masked[i] = string(runes[0]) + string(m.maskChar)
		default:
			masked[i] = string(runes[0]) + string(repeatRune(m.maskChar, len(runes)-2)) + string(runes[len(runes)-1])
		}
	}

	return strings.Join(masked, " ")
}

// Card masks a card number, preserving only the last 4 digits and the group separators.
// Format: ****-****-****-3456.
func (m *Masker) Card(card string) string {
	formatted := pad.Card(card)
	total := len(krformat.Digits(formatted))

	hidden := total - cardVisibleDigits
	if total <= cardVisibleDigits {
		hidden = total
	}

	var sb strings.Builder
	sb.Grow(len(formatted))

	seen := 0
	for _, r := range formatted {
		if r < '0' || r > '9' {
			sb.WriteRune(r)
			continue
		}
		if seen < hidden {
			sb.WriteRune(m.maskChar)
		} else {
			sb.WriteRune(r)
		}
		seen++
	}

	return sb.String()
}

// ValidateRRN reports whether RRN would mask rrn.
func ValidateRRN(rrn string) error {
	digits := krformat.Digits(rrn)
	if len(digits) != rrnFrontLen+rrnBackLen {
		return krformat.InvalidRRN(fmt.Sprintf("RRN must have 13 digits, got %d", len(digits)))
	}
	return nil
}

// ValidateEmail reports whether Email would mask email.
func ValidateEmail(email string) error {
	if n := strings.Count(email, "@"); n != 1 {
		return krformat.InvalidEmail(fmt.Sprintf("email must contain exactly one @, got %d", n))
	}
	return nil
}

// repeatRune creates a string of n repeated runes.
func repeatRune(r rune, n int) []rune {
	if n <= 0 {
		return nil
	}
	result := make([]rune, n)
	for i := range result {
		result[i] = r
	}
	return result
}

// Package-level convenience functions using default masker.

var defaultMasker = NewMasker()

// RRN masks a resident registration number using the default masker.
func RRN(rrn string, visibleDigits int) string {
	return defaultMasker.RRN(rrn, visibleDigits)
}

// Phone masks a phone number using the default masker.
func Phone[V krformat.Value](phone V, maskLength int) string {
	return defaultMasker.Phone(krformat.String(phone), maskLength)
}

// PhoneNumber masks a contact.PhoneNumber using the default masker.
func PhoneNumber(phone contact.PhoneNumber) string {
	return defaultMasker.PhoneNumber(phone)
}

// Email masks an email address using the default masker.
func Email(email string) string {
	return defaultMasker.Email(email)
}

// EmailAddress masks a contact.Email using the default masker.
func EmailAddress(email contact.Email) string {
	return defaultMasker.EmailAddress(email)
}

// Name masks a name using the default masker.
func Name(name string) string {
	return defaultMasker.Name(name)
}

// Card masks a card number using the default masker.
func Card[V krformat.Value](card V) string {
	return defaultMasker.Card(krformat.String(card))
}
