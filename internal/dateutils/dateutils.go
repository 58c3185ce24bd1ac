// Package dateutils normalises the date spellings found in Italian bank and
// payroll documents. Parse failure is signalled positionally: the caller gets
// the original string back unchanged and must treat a non-ISO value as a miss.
package dateutils

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// Layouts commonly seen in statement and payslip text.
const (
	LayoutISO          = "2006-01-02"
	LayoutItalian      = "02/01/2006"
	LayoutItalianShort = "02/01/06"
	LayoutItalianDash  = "02-01-2006"
	LayoutItalianDots  = "02.01.2006"
)

// DefaultFormats is the priority-ordered format chain tried by ParseDate when
// the caller does not pass its own. Full-year layouts come first so a
// four-digit year is never truncated by a two-digit layout.
var DefaultFormats = []string{
	LayoutISO,
	LayoutItalian,
	LayoutItalianDash,
	LayoutItalianDots,
	LayoutItalianShort,
	"02.01.06",
	"02-01-06",
}

// twoDigitYearPivot: two-digit years below it belong to 20xx, the rest to 19xx.
const twoDigitYearPivot = 50

var italianMonths = map[string]time.Month{
	"GENNAIO":   time.January,
	"FEBBRAIO":  time.February,
	"MARZO":     time.March,
	"APRILE":    time.April,
	"MAGGIO":    time.May,
	"GIUGNO":    time.June,
	"LUGLIO":    time.July,
	"AGOSTO":    time.August,
	"SETTEMBRE": time.September,
	"OTTOBRE":   time.October,
	"NOVEMBRE":  time.November,
	"DICEMBRE":  time.December,
}

var textualDatePattern = regexp.MustCompile(`(?i)\b(\d{1,2})\s+([A-Za-zÀ-ù]+)\s+(\d{4})\b`)

// ParseDate converts a date string to ISO YYYY-MM-DD, trying the given formats
// in order, then the textual "13 Dicembre 2021" spelling. If nothing matches,
// the original string is returned unchanged.
func ParseDate(raw string, formats ...string) string {
	s := strings.TrimSpace(raw)
	if s == "" {
		return raw
	}
	if len(formats) == 0 {
		formats = DefaultFormats
	}

	for _, layout := range formats {
		t, err := time.Parse(layout, s)
		if err != nil {
			continue
		}
		if isTwoDigitYearLayout(layout) {
			t = applyYearPivot(t)
		}
		return t.Format(LayoutISO)
	}

	if m := textualDatePattern.FindStringSubmatch(s); m != nil {
		if month, ok := MonthFromItalianName(m[2]); ok {
			return fmt.Sprintf("%s-%02d-%s", m[3], int(month), pad2(m[1]))
		}
	}

	return raw
}

// IsISO reports whether s is an ISO date, i.e. a successful ParseDate result.
func IsISO(s string) bool {
	_, err := time.Parse(LayoutISO, s)
	return err == nil
}

// MonthFromItalianName resolves an Italian month name, case-insensitive.
func MonthFromItalianName(name string) (time.Month, bool) {
	m, ok := italianMonths[strings.ToUpper(strings.TrimSpace(name))]
	return m, ok
}

// ParseMonthYear recovers a payslip reference period from spellings like
// "Dicembre 2021", "12/2021" or "2021-12".
func ParseMonthYear(raw string) (month int, year int, ok bool) {
	s := strings.TrimSpace(raw)

	if m := regexp.MustCompile(`(?i)^([A-Za-zÀ-ù]+)\s+(\d{4})$`).FindStringSubmatch(s); m != nil {
		if mo, found := MonthFromItalianName(m[1]); found {
			return int(mo), atoi(m[2]), true
		}
		return 0, 0, false
	}
	if m := regexp.MustCompile(`^(\d{1,2})/(\d{4})$`).FindStringSubmatch(s); m != nil {
		mo := atoi(m[1])
		if mo >= 1 && mo <= 12 {
			return mo, atoi(m[2]), true
		}
		return 0, 0, false
	}
	if m := regexp.MustCompile(`^(\d{4})-(\d{1,2})$`).FindStringSubmatch(s); m != nil {
		mo := atoi(m[2])
		if mo >= 1 && mo <= 12 {
			return mo, atoi(m[1]), true
		}
	}
	return 0, 0, false
}

func isTwoDigitYearLayout(layout string) bool {
	return strings.Contains(layout, "06") && !strings.Contains(layout, "2006")
}

func applyYearPivot(t time.Time) time.Time {
	yy := t.Year() % 100
	year := 1900 + yy
	if yy < twoDigitYearPivot {
		year = 2000 + yy
	}
	return time.Date(year, t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func pad2(s string) string {
	if len(s) == 1 {
		return "0" + s
	}
	return s
}

func atoi(s string) int {
	n := 0
	for _, r := range s {
		n = n*10 + int(r-'0')
	}
	return n
}
