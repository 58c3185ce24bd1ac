package dateutils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"ISO passes through", "2022-01-03", "2022-01-03"},
		{"Italian full year", "03/01/2022", "2022-01-03"},
		{"Italian dashes", "03-01-2022", "2022-01-03"},
		{"Italian dots", "03.01.2022", "2022-01-03"},
		{"Two-digit year below pivot", "31/12/21", "2021-12-31"},
		{"Two-digit year above pivot", "01/06/99", "1999-06-01"},
		{"Textual Italian date", "13 Dicembre 2021", "2021-12-13"},
		{"Textual lowercase", "1 marzo 2022", "2022-03-01"},
		{"Unparseable returned unchanged", "quando capita", "quando capita"},
		{"Empty returned unchanged", "", ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, ParseDate(tc.input))
		})
	}
}

func TestParseDateCustomFormats(t *testing.T) {
	// Caller-supplied formats replace the default chain entirely.
	assert.Equal(t, "2022-01-03", ParseDate("2022/01/03", "2006/01/02"))
	assert.Equal(t, "03/01/2022", ParseDate("03/01/2022", "2006/01/02"))
}

func TestIsISO(t *testing.T) {
	assert.True(t, IsISO("2022-01-03"))
	assert.False(t, IsISO("03/01/2022"))
	assert.False(t, IsISO(""))
}

func TestMonthFromItalianName(t *testing.T) {
	m, ok := MonthFromItalianName("dicembre")
	assert.True(t, ok)
	assert.Equal(t, time.December, m)

	m, ok = MonthFromItalianName(" GENNAIO ")
	assert.True(t, ok)
	assert.Equal(t, time.January, m)

	_, ok = MonthFromItalianName("frimaio")
	assert.False(t, ok)
}

func TestParseMonthYear(t *testing.T) {
	tests := []struct {
		name          string
		input         string
		expectedMonth int
		expectedYear  int
		expectedOk    bool
	}{
		{"Italian month name", "Dicembre 2021", 12, 2021, true},
		{"Numeric slash", "12/2021", 12, 2021, true},
		{"ISO month", "2021-12", 12, 2021, true},
		{"Single digit month", "3/2022", 3, 2022, true},
		{"Month out of range", "13/2021", 0, 0, false},
		{"Unknown month name", "Brumaio 2021", 0, 0, false},
		{"Bare year", "2021", 0, 0, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			month, year, ok := ParseMonthYear(tc.input)
			assert.Equal(t, tc.expectedOk, ok)
			if tc.expectedOk {
				assert.Equal(t, tc.expectedMonth, month)
				assert.Equal(t, tc.expectedYear, year)
			}
		})
	}
}
