package format

import (
	"testing"
	"time"

	krformat "github.com/Dorico-Dynamics/txova-go-krformat"
)

func TestDate(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		separator string
		expected  string
	}{
		{name: "default separator", input: "2024-01-15", separator: DefaultDateSeparator, expected: "2024.01.15"},
		{name: "dash separator", input: "2024-01-15", separator: "-", expected: "2024-01-15"},
		{name: "slash separator", input: "2024-01-15", separator: "/", expected: "2024/01/15"},
		{name: "empty separator", input: "2024-01-15", separator: "", expected: "20240115"},
		{name: "slash input", input: "2024/03/05", separator: ".", expected: "2024.03.05"},
		{name: "dotted input", input: "2024.12.31", separator: "-", expected: "2024-12-31"},
		{name: "local timestamp", input: "2024-01-15T23:59:59", separator: ".", expected: "2024.01.15"},
		{name: "space timestamp", input: "2024-07-01 08:00:00", separator: ".", expected: "2024.07.01"},
		{name: "surrounding spaces", input: " 2024-01-15 ", separator: ".", expected: "2024.01.15"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Date(tt.input, tt.separator)
			if result != tt.expected {
				t.Errorf("Date(%q, %q) = %q, want %q", tt.input, tt.separator, result, tt.expected)
			}
		})
	}
}

func TestDate_PassThrough(t *testing.T) {
	inputs := []string{"", "not a date", "2024-13-01", "2024-02-30", "15/01/2024"}

	for _, in := range inputs {
		if got := Date(in, DefaultDateSeparator); got != in {
			t.Errorf("Date(%q) = %q, want input unchanged", in, got)
		}
	}
}

func TestTime(t *testing.T) {
	seoul := time.FixedZone("KST", 9*60*60)

	tests := []struct {
		name     string
		input    time.Time
		expected string
	}{
		{name: "utc", input: time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC), expected: "2024.01.15"},
		{name: "own location", input: time.Date(2024, time.December, 31, 23, 30, 0, 0, seoul), expected: "2024.12.31"},
		{name: "short year", input: time.Date(987, time.March, 4, 0, 0, 0, 0, time.UTC), expected: "987.03.04"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Time(tt.input, DefaultDateSeparator)
			if result != tt.expected {
				t.Errorf("Time(%v) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestParseDate(t *testing.T) {
	got, err := ParseDate("2024-01-15")
	if err != nil {
		t.Fatalf("ParseDate() error = %v", err)
	}
	if got.Year() != 2024 || got.Month() != time.January || got.Day() != 15 {
		t.Errorf("ParseDate() = %v, want 2024-01-15", got)
	}
	if got.Location() != time.Local {
		t.Errorf("ParseDate() location = %v, want Local", got.Location())
	}

	if _, err := ParseDate("yesterday"); !krformat.IsInvalidDate(err) {
		t.Errorf("ParseDate() error = %v, want INVALID_DATE", err)
	}
}
