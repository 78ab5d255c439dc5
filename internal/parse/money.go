package parse

import (
	"regexp"
	"strconv"
	"strings"
)

// Plausibility window for a gross-pay candidate. OCR noise routinely misreads
// reference numbers as money; anything outside this range is discarded even
// when it is the only candidate near a totals label.
const (
	minPlausiblePay = 100
	maxPlausiblePay = 100000
)

var (
	// Lines that introduce the document's monetary callouts.
	reMoneyLabel = regexp.MustCompile(`(?i)\b(?:Totals?|Total\s+Rate|Line\s*Haul|Rate)\b`)

	// Currency amount with optional $/USD prefix, thousands separators
	// tolerated (OCR sometimes renders them as spaces).
	reCurrency = regexp.MustCompile(`(?:USD|US)?\s*\$?\s*([0-9]{1,3}(?:[,\s]?[0-9]{3})*(?:\.[0-9]{2})?)`)

	// Dollar-prefixed number for the document-wide fallback scan.
	reDollar = regexp.MustCompile(`\$\s*([0-9][0-9,]*(?:\.[0-9]{2})?)`)

	// Miles label followed by a delimited integer, comma groups tolerated.
	reMiles = regexp.MustCompile(`(?i)\b(?:miles|mi)\b[^0-9\n]*([0-9][0-9,]{0,6})`)
)

// currencyCandidates extracts all plausible currency amounts from s.
func currencyCandidates(s string) []float64 {
	var out []float64
	for _, m := range reCurrency.FindAllStringSubmatch(s, -1) {
		raw := strings.NewReplacer(",", "", " ", "").Replace(m[1])
		n, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			continue
		}
		if n >= minPlausiblePay && n <= maxPlausiblePay {
			out = append(out, n)
		}
	}
	return out
}

// matchGrossPay scans line-by-line for money labels and collects currency
// candidates from each labeled line plus its next two lines (OCR often splits
// a label and its value across lines or columns), taking the maximum. With no
// labeled candidates it falls back to the largest plausible dollar-prefixed
// amount anywhere in the document. The grand total is typically the largest
// figure near a totals label; a surcharge ledger line can still win, which is
// a known limit of the heuristic.
func matchGrossPay(text string) (float64, Span, bool) {
	lines := strings.Split(text, "\n")
	offsets := lineOffsets(text)

	best := 0.0
	var bestSpan Span
	found := false
	for i, line := range lines {
		if !reMoneyLabel.MatchString(line) {
			continue
		}
		end := i + 3
		if end > len(lines) {
			end = len(lines)
		}
		win := strings.Join(lines[i:end], " ")
		for _, cand := range currencyCandidates(win) {
			if !found || cand > best {
				best = cand
				bestSpan = Span{Start: offsets[i], End: offsets[end-1] + len(lines[end-1])}
				found = true
			}
		}
	}
	if found {
		return best, bestSpan, true
	}

	// Global fallback: largest plausible dollar-prefixed amount anywhere.
	for _, loc := range reDollar.FindAllStringSubmatchIndex(text, -1) {
		raw := strings.ReplaceAll(text[loc[2]:loc[3]], ",", "")
		n, err := strconv.ParseFloat(raw, 64)
		if err != nil || n < minPlausiblePay || n > maxPlausiblePay {
			continue
		}
		if !found || n > best {
			best = n
			bestSpan = Span{Start: loc[0], End: loc[1]}
			found = true
		}
	}
	return best, bestSpan, found
}

// matchMiles finds a "Miles"/"Mi" label followed by an integer.
func matchMiles(text string) (int, Span, bool) {
	loc := reMiles.FindStringSubmatchIndex(text)
	if loc == nil {
		return 0, Span{}, false
	}
	raw := strings.ReplaceAll(text[loc[2]:loc[3]], ",", "")
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0, Span{}, false
	}
	return n, Span{Start: loc[2], End: loc[3]}, true
}

// lineOffsets returns the byte offset of each line start in text.
func lineOffsets(text string) []int {
	lines := strings.Split(text, "\n")
	offs := make([]int, len(lines))
	pos := 0
	for i, l := range lines {
		offs[i] = pos
		pos += len(l) + 1
	}
	return offs
}
