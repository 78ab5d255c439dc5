package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// ExtractJob tracks one run of the two-stage extraction pipeline for a
// document: text acquisition, then field parsing.
type ExtractJob struct {
	ID                   uuid.UUID       `json:"id"`
	DocumentID           uuid.UUID       `json:"document_id"`
	DriverID             uuid.UUID       `json:"driver_id"`
	LoadID               *uuid.UUID      `json:"load_id,omitempty"`
	Format               string          `json:"format"`
	StartedAt            time.Time       `json:"started_at"`
	FinishedAt           *time.Time      `json:"finished_at,omitempty"`
	Status               *string         `json:"status,omitempty"`
	ErrorMessage         *string         `json:"error_message,omitempty"`
	ExtractionConfidence *float32        `json:"extraction_confidence,omitempty"`
	NeedsReview          bool            `json:"needs_review"`
	OcrText              *string         `json:"ocr_text,omitempty"`
	OcrMethod            *string         `json:"ocr_method,omitempty"`
	Pages                *int            `json:"pages,omitempty"`
	ExtractedJSON        json.RawMessage `json:"extracted_json,omitempty"`
	FieldSpans           json.RawMessage `json:"field_spans,omitempty"`
	SuggestedLabel       *string         `json:"suggested_label,omitempty"`
}
