package prospero

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Date is a calendar day as printed in an article header.
type Date struct {
	Day   int
	Month int
	Year  int
}

// String returns the date as DD/MM/YYYY.
func (d Date) String() string {
	return fmt.Sprintf("%02d/%02d/%04d", d.Day, d.Month, d.Year)
}

// Stem returns the date as YYYYMMDD, the order used in output file names.
func (d Date) Stem() string {
	return fmt.Sprintf("%04d%02d%02d", d.Year, d.Month, d.Day)
}

// months maps the month names found in export headers to month numbers.
// Matching is case-sensitive and French names keep their accents.
var months = map[string]int{
	"janvier":   1,
	"février":   2,
	"mars":      3,
	"avril":     4,
	"mai":       5,
	"juin":      6,
	"juillet":   7,
	"août":      8,
	"septembre": 9,
	"octobre":   10,
	"novembre":  11,
	"décembre":  12,
	"January":   1,
	"February":  2,
	"March":     3,
	"April":     4,
	"May":       5,
	"June":      6,
	"July":      7,
	"August":    8,
	"September": 9,
	"October":   10,
	"November":  11,
	"December":  12,
}

// spaces folds the non-breaking spaces left by entity decoding.
var spaces = strings.NewReplacer("\u00a0", " ", "\u202f", " ")

var (
	dayFirstRe   = regexp.MustCompile(`(\d+) (\S*) (\d{4})`)
	monthFirstRe = regexp.MustCompile(`(\S*)\s+(\d+)[,\s]{2,}(\d{4})`)
)

// ParseDate reads a header date such as "3 mars 2020" or "March 3,  2020".
// The day-first shape is tried before the month-first one. Returns an EDATE
// error when neither shape matches or the month name is unknown.
func ParseDate(s string) (Date, error) {
	folded := spaces.Replace(s)

	var day, month, year string
	if m := dayFirstRe.FindStringSubmatch(folded); m != nil {
		day, month, year = m[1], m[2], m[3]
	} else if m := monthFirstRe.FindStringSubmatch(folded); m != nil {
		month, day, year = m[1], m[2], m[3]
	} else {
		return Date{}, Errorf(EDATE, "problem reading date %q", s)
	}

	mm, ok := months[month]
	if !ok {
		return Date{}, Errorf(EDATE, "unknown month %q in date %q", month, s)
	}

	dd, err := strconv.Atoi(day)
	if err != nil {
		return Date{}, Errorf(EDATE, "invalid day %q in date %q", day, s)
	}
	yyyy, err := strconv.Atoi(year)
	if err != nil {
		return Date{}, Errorf(EDATE, "invalid year %q in date %q", year, s)
	}

	return Date{Day: dd, Month: mm, Year: yyyy}, nil
}
