package parse

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"time"
)

var (
	// M/D/YY, M-D-YYYY, M.D.YY and friends.
	reMDY = regexp.MustCompile(`([0-9]{1,2})[/\-.]([0-9]{1,2})[/\-.]([0-9]{2,4})`)
	// ISO dates. Anchored to 20xx so OCR'd phone numbers don't qualify.
	reISO = regexp.MustCompile(`(20[0-9]{2})-([0-9]{2})-([0-9]{2})`)
	// Any date-shaped token, for unanchored window searches.
	reAnyDate = regexp.MustCompile(`\b(?:[0-9]{1,2}[/\-.][0-9]{1,2}[/\-.][0-9]{2,4}|[0-9]{4}[/\-.][0-9]{1,2}[/\-.][0-9]{1,2})\b`)
)

// NormalizeDate parses a date in M/D/YY, M-D-YYYY, or YYYY-MM-DD form into
// canonical YYYY-MM-DD. Two-digit years follow the usual pivot: yy >= 70 maps
// to 19yy, else 20yy. Returns false for anything that is not a real calendar
// date.
func NormalizeDate(s string) (string, bool) {
	// ISO first: reMDY would otherwise chew the tail of "2025-09-23" into a
	// bogus month/day split.
	if m := reISO.FindStringSubmatch(s); m != nil {
		return ymd(atoi(m[1]), atoi(m[2]), atoi(m[3]))
	}
	if m := reMDY.FindStringSubmatch(s); m != nil {
		mm, dd, yy := atoi(m[1]), atoi(m[2]), atoi(m[3])
		if yy < 100 {
			if yy >= 70 {
				yy += 1900
			} else {
				yy += 2000
			}
		}
		return ymd(yy, mm, dd)
	}
	return "", false
}

// ymd validates the triple against the calendar and formats it.
func ymd(y, m, d int) (string, bool) {
	if y < 1900 || m < 1 || m > 12 || d < 1 || d > 31 {
		return "", false
	}
	t := time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
	if t.Year() != y || int(t.Month()) != m || t.Day() != d {
		return "", false
	}
	return fmt.Sprintf("%04d-%02d-%02d", y, m, d), true
}

func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}

// dateAfterLabel finds a date on the same line as (and following) the given
// label, e.g. "Appointment Date & Time: 2025-09-14". The label is matched
// case-insensitively and literally.
func dateAfterLabel(text, label string) (string, Span, bool) {
	re := regexp.MustCompile(`(?i)` + regexp.QuoteMeta(label) + `[^\n]*?(20[0-9]{2}-[0-9]{2}-[0-9]{2}|[0-9]{1,2}[/\-.][0-9]{1,2}[/\-.][0-9]{2,4})`)
	loc := re.FindStringSubmatchIndex(text)
	if loc == nil {
		return "", Span{}, false
	}
	raw := text[loc[2]:loc[3]]
	d, ok := NormalizeDate(raw)
	if !ok {
		return "", Span{}, false
	}
	return d, Span{Start: loc[2], End: loc[3]}, true
}

// dateAfterPattern is dateAfterLabel for precompiled label patterns whose
// first capture group is the date token.
func dateAfterPattern(text string, re *regexp.Regexp) (string, Span, bool) {
	loc := re.FindStringSubmatchIndex(text)
	if loc == nil || loc[2] < 0 {
		return "", Span{}, false
	}
	d, ok := NormalizeDate(text[loc[2]:loc[3]])
	if !ok {
		return "", Span{}, false
	}
	return d, Span{Start: loc[2], End: loc[3]}, true
}

// anyDate returns the first date-shaped token in text that normalizes to a
// real calendar date.
func anyDate(text string) (string, Span, bool) {
	for _, loc := range reAnyDate.FindAllStringIndex(text, -1) {
		if d, ok := NormalizeDate(text[loc[0]:loc[1]]); ok {
			return d, Span{Start: loc[0], End: loc[1]}, true
		}
	}
	return "", Span{}, false
}

// allDates collects every distinct normalized date in the document, sorted
// ascending. ISO sort order equals calendar order, which is what the BOL
// latest-date fallback relies on.
func allDates(text string) []string {
	seen := map[string]struct{}{}
	for _, tok := range reAnyDate.FindAllString(text, -1) {
		if d, ok := NormalizeDate(tok); ok {
			seen[d] = struct{}{}
		}
	}
	out := make([]string, 0, len(seen))
	for d := range seen {
		out = append(out, d)
	}
	sort.Strings(out)
	return out
}
