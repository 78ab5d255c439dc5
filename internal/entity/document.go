package entity

import (
	"time"

	"github.com/google/uuid"
)

// Document represents a stored upload for data transfer between layers.
type Document struct {
	ID          uuid.UUID  `json:"id"`
	DriverID    uuid.UUID  `json:"driver_id"`
	LoadID      *uuid.UUID `json:"load_id,omitempty"`
	DocType     string     `json:"doc_type"`
	SourcePath  string     `json:"source_path"`
	ContentHash []byte     `json:"content_hash"`
	Filename    string     `json:"filename"`
	FileExt     string     `json:"file_ext"`
	MimeType    *string    `json:"mime_type,omitempty"`
	FileSize    int        `json:"file_size"`
	Label       *string    `json:"label,omitempty"`
	UploadedAt  time.Time  `json:"uploaded_at"`
}
