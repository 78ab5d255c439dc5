// Package parse turns noisy OCR text from rate confirmations and BOL/POD
// documents into typed shipment fields. Every matcher is a pure function of
// its input text: absent fields are nil, never errors, and parsing the same
// text twice yields identical output.
package parse

import "strings"

// Fields is the typed output record of a parse. All extraction fields are
// optional; absence is an expected outcome on gappy OCR input, not an error.
type Fields struct {
	GrossPay     *float64 `json:"gross_pay"`
	Miles        *int     `json:"miles"`
	PickupDate   *string  `json:"pickup_date"`
	DeliveryDate *string  `json:"delivery_date"`
	Origin       *string  `json:"origin"`
	Destination  *string  `json:"destination"`
	PickupState  *string  `json:"pickup_state"`
	DropState    *string  `json:"drop_state"`
	Status       string   `json:"status"`
	BOLNumber    *string  `json:"bol_number,omitempty"`
	RawPreview   string   `json:"raw_preview"`
}

// Span marks the byte offsets of a matched region in the source text,
// retained for debugging which part of the document produced a field.
type Span struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// Spans maps field names to the source region each value was matched from.
// Fields resolved by fallback logic without a single anchoring match carry
// no span.
type Spans map[string]Span

// rawPreviewLines bounds the text preview kept on the output record.
const rawPreviewLines = 60

func preview(text string) string {
	lines := strings.Split(text, "\n")
	if len(lines) > rawPreviewLines {
		lines = lines[:rawPreviewLines]
	}
	return strings.Join(lines, "\n")
}

func strPtr(s string) *string {
	return &s
}

func floatPtr(f float64) *float64 {
	return &f
}

func intPtr(i int) *int {
	return &i
}

// cleanText replaces NULs and carriage returns so the line-oriented matchers
// see consistent input regardless of which OCR path produced the text.
func cleanText(s string) string {
	s = strings.ReplaceAll(s, "\x00", " ")
	return strings.ReplaceAll(s, "\r", "\n")
}

func collapseSpaces(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
