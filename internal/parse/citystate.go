package parse

import (
	"regexp"
	"strings"
)

// "City, ST" with an optional trailing ZIP. Uppercase-only state so lowercase
// prose ("delivered in ca. two days") never matches.
var reCityState = regexp.MustCompile(`([A-Z][A-Za-z .'\-]+),\s*([A-Z]{2})(?:\s*[0-9]{5})?`)

var reBlankLines = regexp.MustCompile(`\n+`)

type cityState struct {
	place string // "City, ST"
	state string
}

func cityStates(section string) []cityState {
	var out []cityState
	for _, m := range reCityState.FindAllStringSubmatch(section, -1) {
		out = append(out, cityState{
			place: collapseSpaces(m[1]) + ", " + m[2],
			state: m[2],
		})
	}
	return out
}

// pickCityState chooses a "City, ST" from a document section.
//   - preferLast selects the last occurrence (SHIP TO blocks state the final
//     stop late in the block).
//   - excludeState steers away from that state when a differing-state match
//     exists; long-haul destinations rarely share the origin's state, and a
//     differing state is less likely to be an intermediate address line.
func pickCityState(section string, preferLast bool, excludeState string) (cityState, bool) {
	matches := cityStates(section)
	if len(matches) == 0 {
		return cityState{}, false
	}
	pool := matches
	if excludeState != "" {
		var diff []cityState
		for _, m := range matches {
			if m.state != excludeState {
				diff = append(diff, m)
			}
		}
		if len(diff) > 0 {
			pool = diff
		}
	}
	if preferLast {
		return pool[len(pool)-1], true
	}
	return pool[0], true
}

// sectionAfter returns up to maxLines lines of text following the first match
// of re, or "" when the label is absent.
func sectionAfter(text string, re *regexp.Regexp, maxLines int) string {
	loc := re.FindStringIndex(text)
	if loc == nil {
		return ""
	}
	chunk := text[loc[1]:]
	if len(chunk) > 4000 {
		chunk = chunk[:4000]
	}
	lines := reBlankLines.Split(chunk, -1)
	if len(lines) > maxLines {
		lines = lines[:maxLines]
	}
	return strings.Join(lines, "\n")
}
