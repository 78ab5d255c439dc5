package parse

import (
	"regexp"
	"sort"
	"strings"

	"github.com/haulboard/haulboard/constants"
)

const shipSectionLines = 15

var (
	reShipFrom = regexp.MustCompile(`(?i)SHIP\s*FROM`)
	reShipTo   = regexp.MustCompile(`(?i)SHIP\s*TO(?:\s*/\s*STOP\s*[0-9]+)?`)

	reShipDate = regexp.MustCompile(`(?i)Ship\s*Date\s*[:\-]?\s*([0-9]{1,2}[/\-][0-9]{1,2}[/\-][0-9]{2,4})`)
	rePUDate   = regexp.MustCompile(`(?i)(?:Pick\s*up|Pickup|PU)\s*(?:Date|Appt|Appointment)?\s*[:\-]?\s*([0-9]{1,2}[/\-][0-9]{1,2}[/\-][0-9]{2,4})`)
	reDelDate  = regexp.MustCompile(`(?i)(?:Delivery|Del|Consignee)\s*(?:Date|Appt|Appointment)?\.?\s*[:\-]?\s*([0-9]{1,2}[/\-][0-9]{1,2}[/\-][0-9]{2,4})`)
	reApptISO  = regexp.MustCompile(`(?i)Appointment\s*Date\s*&\s*Time\s*[:\-]?\s*(20[0-9]{2}-[0-9]{2}-[0-9]{2})`)

	// BOL number: labeled alphanumeric token of plausible length.
	reBOLNum1 = regexp.MustCompile(`(?i)Bill\s*of\s*Lading\s*Number\s*[:#]?\s*([A-Z0-9\-]{5,})`)
	reBOLNum2 = regexp.MustCompile(`(?i)\b(?:BOL|B/L)\s*#\s*([A-Z0-9\-]{5,})`)

	reHasDigit = regexp.MustCompile(`[0-9]`)
)

// firstDate tries the given label patterns in priority order.
func firstDate(text string, patterns ...*regexp.Regexp) (string, Span, bool) {
	for _, re := range patterns {
		if d, sp, ok := dateAfterPattern(text, re); ok {
			return d, sp, true
		}
	}
	return "", Span{}, false
}

// bolFromTo resolves origin and destination for a BOL: the SHIP FROM section's
// first City, ST and the SHIP TO section's last, preferring a differing-state
// match for the destination. Missing sections fall back to a document-wide
// scan (first occurrence for origin, last non-origin-state for destination).
func bolFromTo(text string) (from, to cityState, fromOK, toOK bool) {
	fromSec := sectionAfter(text, reShipFrom, shipSectionLines)
	toSec := sectionAfter(text, reShipTo, shipSectionLines)

	from, fromOK = pickCityState(fromSec, false, "")
	to, toOK = pickCityState(toSec, true, from.state)

	if !fromOK || !toOK {
		all := cityStates(text)
		if !fromOK && len(all) > 0 {
			from, fromOK = all[0], true
		}
		if !toOK && len(all) > 0 {
			pool := all
			if from.state != "" {
				var diff []cityState
				for _, m := range all {
					if m.state != from.state {
						diff = append(diff, m)
					}
				}
				if len(diff) > 0 {
					pool = diff
				}
			}
			to, toOK = pool[len(pool)-1], true
		}
	}
	return from, to, fromOK, toOK
}

// matchBOLNumber finds the document's bill-of-lading number. Among labeled
// candidates it requires at least one digit and prefers the longest token;
// longer tokens are less likely to be truncated OCR noise.
func matchBOLNumber(text string) (string, Span, bool) {
	type cand struct {
		tok string
		sp  Span
	}
	var cands []cand
	for _, re := range []*regexp.Regexp{reBOLNum1, reBOLNum2} {
		for _, loc := range re.FindAllStringSubmatchIndex(text, -1) {
			cands = append(cands, cand{tok: text[loc[2]:loc[3]], sp: Span{Start: loc[2], End: loc[3]}})
		}
	}
	var valid []cand
	for _, c := range cands {
		if reHasDigit.MatchString(c.tok) {
			valid = append(valid, c)
		}
	}
	if len(valid) == 0 {
		return "", Span{}, false
	}
	sort.SliceStable(valid, func(i, j int) bool { return len(valid[i].tok) > len(valid[j].tok) })
	return strings.ToUpper(valid[0].tok), valid[0].sp, true
}

// ParseBOL extracts shipment fields from BOL/POD OCR text. Same contract as
// ParseRate: pure, never fails, absent fields are nil.
func ParseBOL(text string) (Fields, Spans) {
	text = cleanText(text)
	f := Fields{Status: string(constants.LoadStatusPlanned), RawPreview: preview(text)}
	spans := Spans{}

	if d, sp, ok := firstDate(text, reShipDate, rePUDate); ok {
		f.PickupDate = strPtr(d)
		spans["pickup_date"] = sp
	}
	if d, sp, ok := firstDate(text, reDelDate, reApptISO); ok {
		f.DeliveryDate = strPtr(d)
		spans["delivery_date"] = sp
	}

	// Fallback: the latest date anywhere in the document, provided it is not
	// just the pickup date repeated. Known heuristic limit: a signature or
	// print date after the true delivery date wins here.
	if f.DeliveryDate == nil {
		if all := allDates(text); len(all) >= 2 {
			last := all[len(all)-1]
			if f.PickupDate == nil || *f.PickupDate != last {
				f.DeliveryDate = strPtr(last)
			}
		}
	}

	from, to, fromOK, toOK := bolFromTo(text)
	if fromOK {
		f.Origin = strPtr(from.place)
		if ValidState(from.state) {
			f.PickupState = strPtr(from.state)
		}
	}
	if toOK {
		f.Destination = strPtr(to.place)
		if ValidState(to.state) {
			f.DropState = strPtr(to.state)
		}
	}

	if n, sp, ok := matchBOLNumber(text); ok {
		f.BOLNumber = strPtr(n)
		spans["bol_number"] = sp
	}

	return f, spans
}
