package constants

import (
	"path/filepath"
	"strings"
)

// File formats for the format field in ExtractJob.
const (
	PDF   = "PDF"
	IMAGE = "IMAGE"
)

// FileTypes lists the valid extract_job formats.
var FileTypes = []string{PDF, IMAGE}

// AllowedExtensions holds the default allowed file extensions for document uploads.
var AllowedExtensions = map[string]struct{}{
	"pdf":  {},
	"jpg":  {},
	"jpeg": {},
	"png":  {},
}

// NormalizeExt lowercases and trims the dot from a file extension.
func NormalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}

// MapExtToFormat maps a normalized extension to a file format, or "" if unsupported.
func MapExtToFormat(ext string) string {
	switch NormalizeExt(ext) {
	case "pdf":
		return PDF
	case "jpg", "jpeg", "png":
		return IMAGE
	default:
		return ""
	}
}

// LooksPDF reports whether the declared MIME type or the filename marks the
// file as a PDF. Scanned rate cons frequently arrive with a generic MIME type,
// so the extension is consulted too.
func LooksPDF(mimeType, path string) bool {
	if strings.Contains(strings.ToLower(mimeType), "pdf") {
		return true
	}
	return NormalizeExt(filepath.Ext(path)) == "pdf"
}
