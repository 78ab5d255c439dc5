package ocr

import (
	"regexp"
	"strings"
)

var (
	reDate    = regexp.MustCompile(`\b\d{1,2}[/\-.]\d{1,2}[/\-.]\d{2,4}\b|\b20\d{2}-\d{2}-\d{2}\b`)
	reCurr    = regexp.MustCompile(`[$]\s?\d`)
	reStateAb = regexp.MustCompile(`,\s*[a-z]{2}\b`)

	// vertical-bar and underscore runs from table rules misread as text
	reBoxNoise = regexp.MustCompile(`(?m)^[|_\-=~\s]{4,}$`)
)

func hasDatePattern(s string) bool     { return reDate.MatchString(s) }
func hasCurrencyPattern(s string) bool { return reCurr.MatchString(s) }
func hasStatePattern(s string) bool    { return reStateAb.MatchString(s) }

// heuristicConfidence scores decoded text by whether it carries the artifacts
// a freight document normally has (a date, a dollar amount, a "City, ST"
// address tail, enough content to parse at all).
func heuristicConfidence(txt string) float32 {
	txtL := strings.ToLower(txt)
	score := float32(0.2) // base
	if hasDatePattern(txtL) {
		score += 0.2
	}
	if hasCurrencyPattern(txtL) {
		score += 0.15
	}
	if hasStatePattern(txtL) {
		score += 0.15
	}
	if len(txt) > 120 {
		score += 0.1
	} // enough content
	if score > 1.0 {
		score = 1.0
	}
	return score
}

// Normalize makes OCR output line-oriented and predictable: unified newlines,
// no NULs, no trailing whitespace per line.
func Normalize(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	s = strings.ReplaceAll(s, "\x00", " ")
	lines := strings.Split(s, "\n")
	for i, ln := range lines {
		lines[i] = strings.TrimRight(ln, " \t")
	}
	return strings.Join(lines, "\n")
}
