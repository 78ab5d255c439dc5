package docextract

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/haulboard/haulboard/constants"
	"github.com/haulboard/haulboard/internal/extract"
)

type fakeTextExtractor struct {
	res extract.TextExtractionResult
	err error
}

func (f *fakeTextExtractor) Extract(context.Context, string, string) (extract.TextExtractionResult, error) {
	return f.res, f.err
}

const rateText = `CARRIER RATE CONFIRMATION
Total Rate: $1,200.00
Miles: 341
Pickup#1: Salt Lake City, UT 84101
Appointment Date & Time: 2025-09-14
Shipper: Wasatch Distribution
Delivery#2: Boise, ID 83702
Appointment Date & Time: 2025-09-15
`

const bolText = `BILL OF LADING
Ship Date: 09/10/2025
SHIP FROM
Acme Corp
Denver, CO 80202
SHIP TO
Beta LLC
Reno, NV 89501
`

func TestPipelineRateDocument(t *testing.T) {
	tx := &fakeTextExtractor{res: extract.TextExtractionResult{Text: rateText, Method: "pdf-text", Pages: 1}}
	res, err := New(tx, nil).Run(context.Background(), Request{
		Path:     "/docs/ratecon.pdf",
		MimeType: "application/pdf",
		DocType:  constants.DocTypeRate,
		UserName: "mike",
	})
	require.NoError(t, err)

	require.NotNil(t, res.Fields.GrossPay)
	assert.Equal(t, 1200.0, *res.Fields.GrossPay)
	require.NotNil(t, res.Fields.Miles)
	assert.Equal(t, 341, *res.Fields.Miles)
	assert.Equal(t, "mike UT ID 2025-09-15", res.SuggestedLabel)
	assert.Equal(t, "pdf-text", res.Method)
	assert.Equal(t, 1, res.Pages)
}

func TestPipelineBOLLabelFallsBackToShipDate(t *testing.T) {
	// No delivery date anywhere: the label borrows the ship date.
	tx := &fakeTextExtractor{res: extract.TextExtractionResult{Text: bolText, Method: "pdf-ocr", Pages: 1}}
	res, err := New(tx, nil).Run(context.Background(), Request{
		Path:    "/docs/bol.pdf",
		DocType: constants.DocTypeBOL,
	})
	require.NoError(t, err)

	assert.Nil(t, res.Fields.DeliveryDate)
	assert.Equal(t, "you CO NV 2025-09-10", res.SuggestedLabel)
}

func TestPipelinePODUsesBOLParser(t *testing.T) {
	tx := &fakeTextExtractor{res: extract.TextExtractionResult{Text: bolText, Method: "image-ocr", Pages: 1}}
	res, err := New(tx, nil).Run(context.Background(), Request{
		Path:    "/docs/pod.jpg",
		DocType: constants.DocTypePOD,
	})
	require.NoError(t, err)

	require.NotNil(t, res.Fields.Origin)
	assert.Equal(t, "Denver, CO", *res.Fields.Origin)
	assert.Nil(t, res.Fields.GrossPay)
}

func TestPipelineAcquisitionErrorPropagates(t *testing.T) {
	tx := &fakeTextExtractor{err: errors.New("tesseract: exit 1")}
	_, err := New(tx, nil).Run(context.Background(), Request{Path: "/docs/bad.pdf", DocType: constants.DocTypeRate})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "acquire text")
}
