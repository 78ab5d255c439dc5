package constants

import "strings"

// DocumentType selects which field parser applies to an uploaded document.
type DocumentType string

// Stable values (store these exact strings in DB).
const (
	DocTypeRate  DocumentType = "rate"
	DocTypeBOL   DocumentType = "bol"
	DocTypePOD   DocumentType = "pod" // treated identically to bol
	DocTypeOther DocumentType = "other"
)

// DocumentTypes lists the valid document type values.
var DocumentTypes = []string{
	string(DocTypeRate),
	string(DocTypeBOL),
	string(DocTypePOD),
	string(DocTypeOther),
}

// ParseDocumentType maps arbitrary input to a known document type,
// defaulting to "other".
func ParseDocumentType(s string) DocumentType {
	switch DocumentType(strings.ToLower(strings.TrimSpace(s))) {
	case DocTypeRate:
		return DocTypeRate
	case DocTypeBOL:
		return DocTypeBOL
	case DocTypePOD:
		return DocTypePOD
	default:
		return DocTypeOther
	}
}
