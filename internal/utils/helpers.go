package utils

import (
	"encoding/hex"
	"fmt"
	"time"

	"github.com/haulboard/haulboard/gen/ent"
	haulboardpb "github.com/haulboard/haulboard/gen/proto/haulboard/v1"
	"github.com/haulboard/haulboard/internal/entity"
)

func strOrEmpty(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func intOrZero(p *int) int {
	if p == nil {
		return 0
	}
	return *p
}

// ParseYMD parses a YYYY-MM-DD date.
func ParseYMD(s string) (time.Time, error) {
	return time.Parse("2006-01-02", s)
}

// Money renders a decimal string with cents precision.
func Money(v float64) string {
	return fmt.Sprintf("%.2f", v)
}

func moneyOrEmpty(p *float64) string {
	if p == nil {
		return ""
	}
	return Money(*p)
}

func ymdOrEmpty(p *time.Time) string {
	if p == nil {
		return ""
	}
	return p.Format("2006-01-02")
}

func rfc3339OrEmpty(p *time.Time) string {
	if p == nil {
		return ""
	}
	return p.UTC().Format(time.RFC3339)
}

// ---------- ent -> entity ----------

func ToDriver(d *ent.Driver) *entity.Driver {
	return &entity.Driver{
		ID:        d.ID,
		Name:      d.Name,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}

func ToLoad(l *ent.Load) *entity.Load {
	return &entity.Load{
		ID:           l.ID,
		DriverID:     l.DriverID,
		Label:        l.Label,
		Status:       l.Status,
		GrossPay:     l.GrossPay,
		Miles:        l.Miles,
		PickupDate:   l.PickupDate,
		DeliveryDate: l.DeliveryDate,
		Origin:       l.Origin,
		Destination:  l.Destination,
		PickupState:  l.PickupState,
		DropState:    l.DropState,
		BOLNumber:    l.BolNumber,
		CreatedAt:    l.CreatedAt,
		UpdatedAt:    l.UpdatedAt,
	}
}

func ToExpense(e *ent.Expense) *entity.Expense {
	return &entity.Expense{
		ID:         e.ID,
		DriverID:   e.DriverID,
		LoadID:     e.LoadID,
		Category:   e.Category,
		Amount:     e.Amount,
		IncurredAt: e.IncurredAt,
		Note:       e.Note,
		CreatedAt:  e.CreatedAt,
		UpdatedAt:  e.UpdatedAt,
	}
}

func ToDocument(d *ent.Document) *entity.Document {
	return &entity.Document{
		ID:          d.ID,
		DriverID:    d.DriverID,
		LoadID:      d.LoadID,
		DocType:     d.DocType,
		SourcePath:  d.SourcePath,
		ContentHash: d.ContentHash,
		Filename:    d.Filename,
		FileExt:     d.FileExt,
		MimeType:    d.MimeType,
		FileSize:    d.FileSize,
		Label:       d.Label,
		UploadedAt:  d.UploadedAt,
	}
}

func ToExtractJob(j *ent.ExtractJob) *entity.ExtractJob {
	return &entity.ExtractJob{
		ID:                   j.ID,
		DocumentID:           j.DocumentID,
		DriverID:             j.DriverID,
		LoadID:               j.LoadID,
		Format:               j.Format,
		StartedAt:            j.StartedAt,
		FinishedAt:           j.FinishedAt,
		Status:               j.Status,
		ErrorMessage:         j.ErrorMessage,
		ExtractionConfidence: j.ExtractionConfidence,
		NeedsReview:          j.NeedsReview,
		OcrText:              j.OcrText,
		OcrMethod:            j.OcrMethod,
		Pages:                j.Pages,
		ExtractedJSON:        j.ExtractedJSON,
		FieldSpans:           j.FieldSpans,
		SuggestedLabel:       j.SuggestedLabel,
	}
}

// ---------- ent/entity -> pb ----------

func ToPBDriver(d *ent.Driver) *haulboardpb.Driver {
	return &haulboardpb.Driver{
		Id:        d.ID.String(),
		Name:      d.Name,
		CreatedAt: d.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt: d.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

// ToPBLoad renders a load row. netProfit is computed by the caller from the
// expenses attached to the load.
func ToPBLoad(l *ent.Load, netProfit float64) *haulboardpb.Load {
	return &haulboardpb.Load{
		Id:           l.ID.String(),
		DriverId:     l.DriverID.String(),
		Label:        l.Label,
		Status:       l.Status,
		GrossPay:     moneyOrEmpty(l.GrossPay),
		Miles:        int32(intOrZero(l.Miles)),
		PickupDate:   ymdOrEmpty(l.PickupDate),
		DeliveryDate: ymdOrEmpty(l.DeliveryDate),
		Origin:       strOrEmpty(l.Origin),
		Destination:  strOrEmpty(l.Destination),
		PickupState:  strOrEmpty(l.PickupState),
		DropState:    strOrEmpty(l.DropState),
		BolNumber:    strOrEmpty(l.BolNumber),
		NetProfit:    Money(netProfit),
		CreatedAt:    l.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:    l.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

func ToPBExpense(e *ent.Expense) *haulboardpb.Expense {
	loadID := ""
	if e.LoadID != nil {
		loadID = e.LoadID.String()
	}
	return &haulboardpb.Expense{
		Id:         e.ID.String(),
		DriverId:   e.DriverID.String(),
		LoadId:     loadID,
		Category:   e.Category,
		Amount:     Money(e.Amount),
		IncurredAt: e.IncurredAt.Format("2006-01-02"),
		Note:       strOrEmpty(e.Note),
		CreatedAt:  e.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func ToPBDocument(d *ent.Document) *haulboardpb.Document {
	loadID := ""
	if d.LoadID != nil {
		loadID = d.LoadID.String()
	}
	return &haulboardpb.Document{
		Id:             d.ID.String(),
		DriverId:       d.DriverID.String(),
		LoadId:         loadID,
		DocType:        d.DocType,
		Filename:       d.Filename,
		SourcePath:     d.SourcePath,
		ContentHashHex: hex.EncodeToString(d.ContentHash),
		MimeType:       strOrEmpty(d.MimeType),
		FileSize:       int64(d.FileSize),
		Label:          strOrEmpty(d.Label),
		UploadedAt:     d.UploadedAt.UTC().Format(time.RFC3339),
	}
}

func ToPBExtractJob(j *ent.ExtractJob) *haulboardpb.ExtractJob {
	loadID := ""
	if j.LoadID != nil {
		loadID = j.LoadID.String()
	}
	var conf float32
	if j.ExtractionConfidence != nil {
		conf = *j.ExtractionConfidence
	}
	return &haulboardpb.ExtractJob{
		Id:             j.ID.String(),
		DocumentId:     j.DocumentID.String(),
		LoadId:         loadID,
		Status:         strOrEmpty(j.Status),
		OcrMethod:      strOrEmpty(j.OcrMethod),
		Pages:          int32(intOrZero(j.Pages)),
		Confidence:     conf,
		NeedsReview:    j.NeedsReview,
		ExtractedJson:  string(j.ExtractedJSON),
		FieldSpansJson: string(j.FieldSpans),
		SuggestedLabel: strOrEmpty(j.SuggestedLabel),
		ErrorMessage:   strOrEmpty(j.ErrorMessage),
		StartedAt:      j.StartedAt.UTC().Format(time.RFC3339),
		FinishedAt:     rfc3339OrEmpty(j.FinishedAt),
	}
}
