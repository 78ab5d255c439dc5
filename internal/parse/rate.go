package parse

import (
	"regexp"
	"strings"

	"github.com/haulboard/haulboard/constants"
)

const stopWindowLines = 6 // label line plus the next several lines

var (
	// Stop labels at line start; the loose variants catch OCR runs where the
	// label got glued to preceding text.
	rePickupLabel   = regexp.MustCompile(`(?i)^(?:pickup#?|origin|pu)\b`)
	rePickupLoose   = regexp.MustCompile(`(?i)(pickup|origin)`)
	reDeliveryLabel = regexp.MustCompile(`(?i)^(?:delivery#?|drop(?:off)?|consignee|do)\b`)
	reDeliveryLoose = regexp.MustCompile(`(?i)(delivery|drop)`)

	// Rate cons that state appointment windows do it with this label.
	apptLabel = "Appointment Date & Time"

	// Trailing ZIP (and anything after) on an origin/destination string.
	reTrailingZIP = regexp.MustCompile(`\s+[0-9]{5}(?:-[0-9]{4})?\b.*$`)
)

// stopWindow locates the first line matching strict (falling back to loose)
// and returns the window of that line plus the following lines, with its
// absolute byte offset in text. ok is false when neither pattern matches.
func stopWindow(text string, strict, loose *regexp.Regexp) (window string, start int, ok bool) {
	lines := strings.Split(text, "\n")
	offs := lineOffsets(text)
	idx := -1
	for i, l := range lines {
		if strict.MatchString(strings.TrimSpace(l)) {
			idx = i
			break
		}
	}
	if idx == -1 {
		for i, l := range lines {
			if loose.MatchString(l) {
				idx = i
				break
			}
		}
	}
	if idx == -1 {
		return "", 0, false
	}
	end := idx + stopWindowLines
	if end > len(lines) {
		end = len(lines)
	}
	return strings.Join(lines[idx:end], "\n"), offs[idx], true
}

// stopDate resolves a date for a pickup/delivery window: label-anchored inside
// the window, then any date inside the window, then a document-wide anchored
// search.
func stopDate(doc, window string, windowStart int) (string, Span, bool) {
	if window != "" {
		if d, sp, ok := dateAfterLabel(window, apptLabel); ok {
			return d, Span{Start: windowStart + sp.Start, End: windowStart + sp.End}, true
		}
		if d, sp, ok := anyDate(window); ok {
			return d, Span{Start: windowStart + sp.Start, End: windowStart + sp.End}, true
		}
	}
	return dateAfterLabel(doc, apptLabel)
}

// stopPlace extracts the free-text "City, ST" string for a stop: the window's
// first line content after the label's colon, truncated before any trailing
// ZIP code.
func stopPlace(window string) (string, bool) {
	first := window
	if i := strings.IndexByte(window, '\n'); i >= 0 {
		first = window[:i]
	}
	if i := strings.IndexByte(first, ':'); i >= 0 {
		place := collapseSpaces(reTrailingZIP.ReplaceAllString(first[i+1:], ""))
		if place != "" {
			return place, true
		}
	}
	// No labeled colon; settle for a City, ST match anywhere in the window.
	if cs, ok := pickCityState(window, false, ""); ok {
		return cs.place, true
	}
	return "", false
}

// ParseRate extracts shipment fields from rate-confirmation OCR text. It
// never fails: fields without a confident match are left nil. The returned
// Spans record where in the text each field was matched.
func ParseRate(text string) (Fields, Spans) {
	text = cleanText(text)
	f := Fields{Status: string(constants.LoadStatusPlanned), RawPreview: preview(text)}
	spans := Spans{}

	if pay, sp, ok := matchGrossPay(text); ok {
		f.GrossPay = floatPtr(pay)
		spans["gross_pay"] = sp
	}
	if mi, sp, ok := matchMiles(text); ok {
		f.Miles = intPtr(mi)
		spans["miles"] = sp
	}

	puWin, puStart, puOK := stopWindow(text, rePickupLabel, rePickupLoose)
	doWin, doStart, doOK := stopWindow(text, reDeliveryLabel, reDeliveryLoose)

	if d, sp, ok := stopDate(text, puWin, puStart); ok {
		f.PickupDate = strPtr(d)
		spans["pickup_date"] = sp
	}
	if d, sp, ok := stopDate(text, doWin, doStart); ok {
		f.DeliveryDate = strPtr(d)
		spans["delivery_date"] = sp
	}

	if puOK {
		if st, ok := stateFromText(puWin); ok {
			f.PickupState = strPtr(st)
		}
		if place, ok := stopPlace(puWin); ok {
			f.Origin = strPtr(place)
			spans["origin"] = Span{Start: puStart, End: puStart + len(puWin)}
		}
	}
	if doOK {
		if st, ok := stateFromText(doWin); ok {
			f.DropState = strPtr(st)
		}
		if place, ok := stopPlace(doWin); ok {
			f.Destination = strPtr(place)
			spans["destination"] = Span{Start: doStart, End: doStart + len(doWin)}
		}
	}

	return f, spans
}
