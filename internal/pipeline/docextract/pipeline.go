// Package docextract runs the two-stage document pipeline without touching
// storage: acquire text from the file, then parse typed shipment fields out of
// it. The DB-backed processor builds on this same flow.
package docextract

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/haulboard/haulboard/constants"
	"github.com/haulboard/haulboard/internal/extract"
	"github.com/haulboard/haulboard/internal/parse"
)

type Request struct {
	Path     string
	MimeType string
	DocType  constants.DocumentType
	UserName string // feeds the suggested label; empty means a generic "you"
}

type Result struct {
	Fields         parse.Fields
	Spans          parse.Spans
	SuggestedLabel string
	Text           string
	Method         string
	Pages          int
	Confidence     float32
	Warnings       []string
}

type Pipeline struct {
	tx     extract.TextExtractor
	logger *slog.Logger
}

func New(tx extract.TextExtractor, logger *slog.Logger) *Pipeline {
	if logger == nil {
		logger = slog.Default()
	}
	return &Pipeline{tx: tx, logger: logger}
}

// Run acquires text and parses it with the doc-type-appropriate parser. Rate
// confirmations get the rate parser; BOL, POD and unknown documents all get
// the BOL parser, whose anchors are the more generic of the two.
func (p *Pipeline) Run(ctx context.Context, req Request) (Result, error) {
	tr, err := p.tx.Extract(ctx, req.Path, req.MimeType)
	if err != nil {
		return Result{Warnings: tr.Warnings}, fmt.Errorf("acquire text: %w", err)
	}
	p.logger.Info("text acquired",
		"path", req.Path, "method", tr.Method, "pages", tr.Pages,
		"chars", len(tr.Text), "confidence", tr.Confidence)

	var fields parse.Fields
	var spans parse.Spans
	if req.DocType == constants.DocTypeRate {
		fields, spans = parse.ParseRate(tr.Text)
	} else {
		fields, spans = parse.ParseBOL(tr.Text)
	}

	res := Result{
		Fields:         fields,
		Spans:          spans,
		SuggestedLabel: parse.BuildSuggestedLabel(labelFields(req.DocType, fields), req.UserName),
		Text:           tr.Text,
		Method:         tr.Method,
		Pages:          tr.Pages,
		Confidence:     tr.Confidence,
		Warnings:       tr.Warnings,
	}
	p.logger.Info("fields parsed",
		"path", req.Path, "doc_type", string(req.DocType),
		"label", res.SuggestedLabel, "matched_fields", len(spans))
	return res, nil
}

// labelFields picks the date shown in the label. BOL scans often carry only a
// ship date, which is still a better title than no date at all.
func labelFields(docType constants.DocumentType, f parse.Fields) parse.Fields {
	if docType != constants.DocTypeRate && f.DeliveryDate == nil && f.PickupDate != nil {
		f.DeliveryDate = f.PickupDate
	}
	return f
}
