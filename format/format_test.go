package format

import (
	"testing"

	krformat "github.com/Dorico-Dynamics/txova-go-krformat"
)

func TestCurrency(t *testing.T) {
	tests := []struct {
		name     string
		got      string
		expected string
	}{
		{name: "with unit", got: Currency(1234567, true), expected: "1,234,567원"},
		{name: "without unit", got: Currency(1234567, false), expected: "1,234,567"},
		{name: "negative", got: Currency(-1234567, true), expected: "-1,234,567원"},
		{name: "zero", got: Currency(0, true), expected: "0원"},
		{name: "under a thousand", got: Currency(999, true), expected: "999원"},
		{name: "exactly a thousand", got: Currency(1000, true), expected: "1,000원"},
		{name: "string with separators", got: Currency("1,234,567원", true), expected: "1,234,567원"},
		{name: "string with spaces", got: Currency(" 12 000 ", false), expected: "12,000"},
		{name: "fraction rounded to three digits", got: Currency(1234.56789, false), expected: "1,234.568"},
		{name: "trailing fraction zeros trimmed", got: Currency("1000.500", false), expected: "1,000.5"},
		{name: "int64", got: Currency(int64(9876543210), true), expected: "9,876,543,210원"},
		{name: "full-width digits", got: Currency("１２３４５", true), expected: "12,345원"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.expected {
				t.Errorf("Currency() = %q, want %q", tt.got, tt.expected)
			}
		})
	}
}

func TestCurrency_PassThrough(t *testing.T) {
	inputs := []string{"abc", "", "1.2.3", "--5", "1-2", "."}

	for _, in := range inputs {
		if got := Currency(in, true); got != in {
			t.Errorf("Currency(%q) = %q, want input unchanged", in, got)
		}
	}
}

func TestNumber(t *testing.T) {
	tests := []struct {
		name     string
		got      string
		expected string
	}{
		{name: "positive", got: Number(1234567), expected: "1,234,567"},
		{name: "negative", got: Number(-1234567), expected: "-1,234,567"},
		{name: "small", got: Number(12), expected: "12"},
		{name: "float", got: Number(0.5), expected: "0.5"},
		{name: "negative rounds to zero", got: Number(-0.0001), expected: "0"},
		{name: "negative fraction", got: Number(-1234.5), expected: "-1,234.5"},
		{name: "string", got: Number("1000000"), expected: "1,000,000"},
		{name: "uint", got: Number(uint64(100000)), expected: "100,000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.expected {
				t.Errorf("Number() = %q, want %q", tt.got, tt.expected)
			}
		})
	}

	if got := Number("not a number"); got != "not a number" {
		t.Errorf("Number(%q) = %q, want input unchanged", "not a number", got)
	}
}

func TestParseAmount(t *testing.T) {
	n, err := ParseAmount("₩-1,234.5")
	if err != nil {
		t.Fatalf("ParseAmount() error = %v", err)
	}
	if n != -1234.5 {
		t.Errorf("ParseAmount() = %v, want -1234.5", n)
	}

	for _, in := range []string{"", "원", "1.2.3"} {
		if _, err := ParseAmount(in); !krformat.IsInvalidNumber(err) {
			t.Errorf("ParseAmount(%q) error = %v, want INVALID_NUMBER", in, err)
		}
	}
}

func BenchmarkCurrency(b *testing.B) {
	for i := 0; i < b.N; i++ {
		Currency(1234567, true)
	}
}
