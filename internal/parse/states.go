package parse

import (
	"regexp"
	"strings"
)

// stateCodes is the closed set of valid two-letter codes. A two-letter token
// outside this set never populates a state field.
var stateCodes = map[string]struct{}{
	"AL": {}, "AK": {}, "AZ": {}, "AR": {}, "CA": {}, "CO": {}, "CT": {}, "DE": {}, "FL": {}, "GA": {},
	"HI": {}, "ID": {}, "IL": {}, "IN": {}, "IA": {}, "KS": {}, "KY": {}, "LA": {}, "ME": {}, "MD": {},
	"MA": {}, "MI": {}, "MN": {}, "MS": {}, "MO": {}, "MT": {}, "NE": {}, "NV": {}, "NH": {}, "NJ": {},
	"NM": {}, "NY": {}, "NC": {}, "ND": {}, "OH": {}, "OK": {}, "OR": {}, "PA": {}, "RI": {}, "SC": {},
	"SD": {}, "TN": {}, "TX": {}, "UT": {}, "VT": {}, "VA": {}, "WA": {}, "WV": {}, "WI": {}, "WY": {},
}

// stateNames maps full state names to codes for documents that spell the
// state out instead of abbreviating.
var stateNames = map[string]string{
	"Alabama": "AL", "Alaska": "AK", "Arizona": "AZ", "Arkansas": "AR", "California": "CA",
	"Colorado": "CO", "Connecticut": "CT", "Delaware": "DE", "Florida": "FL", "Georgia": "GA",
	"Hawaii": "HI", "Idaho": "ID", "Illinois": "IL", "Indiana": "IN", "Iowa": "IA",
	"Kansas": "KS", "Kentucky": "KY", "Louisiana": "LA", "Maine": "ME", "Maryland": "MD",
	"Massachusetts": "MA", "Michigan": "MI", "Minnesota": "MN", "Mississippi": "MS", "Missouri": "MO",
	"Montana": "MT", "Nebraska": "NE", "Nevada": "NV", "New Hampshire": "NH", "New Jersey": "NJ",
	"New Mexico": "NM", "New York": "NY", "North Carolina": "NC", "North Dakota": "ND", "Ohio": "OH",
	"Oklahoma": "OK", "Oregon": "OR", "Pennsylvania": "PA", "Rhode Island": "RI", "South Carolina": "SC",
	"South Dakota": "SD", "Tennessee": "TN", "Texas": "TX", "Utah": "UT", "Vermont": "VT",
	"Virginia": "VA", "Washington": "WA", "West Virginia": "WV", "Wisconsin": "WI", "Wyoming": "WY",
}

var (
	// ", ST" optionally followed by a ZIP. Uppercase only; a case-insensitive
	// match would hit ordinary words ending in two letters.
	reCommaState = regexp.MustCompile(`,\s*([A-Z]{2})(?:\s+[0-9]{5}(?:-[0-9]{4})?)?\b`)

	reStateName = buildStateNameRe()
)

func buildStateNameRe() *regexp.Regexp {
	names := make([]string, 0, len(stateNames))
	for n := range stateNames {
		names = append(names, regexp.QuoteMeta(n))
	}
	return regexp.MustCompile(`(?i)\b(` + strings.Join(names, "|") + `)\b`)
}

// ValidState reports whether code is a member of the fixed state-code set.
func ValidState(code string) bool {
	_, ok := stateCodes[code]
	return ok
}

// stateFromText pulls a two-letter state code out of free text, preferring
// the ", ST" address form, falling back to a spelled-out state name. Invalid
// codes are rejected rather than propagated.
func stateFromText(text string) (string, bool) {
	if m := reCommaState.FindStringSubmatch(text); m != nil {
		if ValidState(m[1]) {
			return m[1], true
		}
	}
	if m := reStateName.FindStringSubmatch(text); m != nil {
		if code, ok := stateNames[canonicalStateName(m[1])]; ok {
			return code, true
		}
	}
	return "", false
}

// canonicalStateName restores the title-cased key form for a name matched
// case-insensitively.
func canonicalStateName(s string) string {
	words := strings.Fields(strings.ToLower(s))
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
