package ocr

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRunner scripts the external tools. The pdftoppm branch writes real page
// files so the glob in pdfToOCR finds them.
type fakeRunner struct {
	pdftotextOut string
	pdftotextErr error
	pages        []string // per-page tesseract output; "" means that page errors
	calls        []string
}

func (f *fakeRunner) Run(_ context.Context, name string, args ...string) ([]byte, []byte, error) {
	f.calls = append(f.calls, name)
	switch name {
	case "pdftotext":
		if f.pdftotextErr != nil {
			return nil, []byte("pdftotext boom"), f.pdftotextErr
		}
		return []byte(f.pdftotextOut), nil, nil
	case "pdftoppm":
		prefix := args[len(args)-1]
		for i := range f.pages {
			if err := os.WriteFile(fmt.Sprintf("%s-%d.png", prefix, i+1), []byte("png"), 0o644); err != nil {
				return nil, nil, err
			}
		}
		return nil, nil, nil
	case "tesseract":
		img := args[0]
		for i, txt := range f.pages {
			if strings.HasSuffix(img, fmt.Sprintf("-%d.png", i+1)) {
				if txt == "" {
					return nil, []byte("empty page"), errors.New("tesseract crashed")
				}
				return []byte(txt), nil, nil
			}
		}
		// image path, not a rendered page
		if len(f.pages) > 0 {
			return []byte(f.pages[0]), nil, nil
		}
		return nil, nil, errors.New("no scripted output")
	}
	return nil, nil, fmt.Errorf("unexpected command %q", name)
}

func newTestExtractor(r Runner) *Extractor {
	e := NewExtractor(Config{}, nil)
	e.runner = r
	return e
}

const goodTextLayer = `CARRIER RATE CONFIRMATION
Total Rate: $1,200.00
Pickup#1: Salt Lake City, UT 84101
Delivery#2: Boise, ID 83702
Appointment Date & Time: 2025-09-15
`

func TestExtractPDFTextLayer(t *testing.T) {
	r := &fakeRunner{pdftotextOut: goodTextLayer}
	res, err := newTestExtractor(r).Extract(context.Background(), "/docs/ratecon.pdf", "application/pdf")
	require.NoError(t, err)

	assert.Equal(t, "pdf-text", res.Method)
	assert.Equal(t, 1, res.Pages)
	assert.Contains(t, res.Text, "Total Rate: $1,200.00")
	assert.Equal(t, []string{"pdftotext"}, r.calls, "no rasterization for a good text layer")
	assert.Greater(t, res.Confidence, float32(0.5))
}

func TestExtractPDFFallsBackToOCR(t *testing.T) {
	// Text layer too short to be usable.
	r := &fakeRunner{
		pdftotextOut: "p.1",
		pages:        []string{"SHIP FROM Denver, CO", "SHIP TO Reno, NV"},
	}
	res, err := newTestExtractor(r).Extract(context.Background(), "/docs/scan.pdf", "application/pdf")
	require.NoError(t, err)

	assert.Equal(t, "pdf-ocr", res.Method)
	assert.Equal(t, 2, res.Pages)
	assert.Equal(t, "SHIP FROM Denver, CO\n\f\nSHIP TO Reno, NV", res.Text)
	assert.Contains(t, r.calls, "pdftoppm")
}

func TestExtractPDFOCRSkipsBadPage(t *testing.T) {
	r := &fakeRunner{
		pdftotextErr: errors.New("pdftotext missing"),
		pages:        []string{"page one text", "", "page three text"},
	}
	res, err := newTestExtractor(r).Extract(context.Background(), "/docs/scan.pdf", "application/pdf")
	require.NoError(t, err)

	assert.Equal(t, "pdf-ocr", res.Method)
	assert.Equal(t, 3, res.Pages)
	assert.NotContains(t, res.Text, "page two")
	assert.Contains(t, res.Text, "page one text")
	assert.Contains(t, res.Text, "page three text")
	require.NotEmpty(t, res.Warnings)
}

func TestExtractImage(t *testing.T) {
	r := &fakeRunner{pages: []string{"POD signed 09/15/2025 at Boise, ID"}}
	res, err := newTestExtractor(r).Extract(context.Background(), "/docs/pod.jpg", "image/jpeg")
	require.NoError(t, err)

	assert.Equal(t, "image-ocr", res.Method)
	assert.Equal(t, 1, res.Pages)
	assert.Contains(t, res.Text, "POD signed")
}

func TestExtractImageToolFailure(t *testing.T) {
	r := &fakeRunner{}
	_, err := newTestExtractor(r).Extract(context.Background(), "/docs/pod.png", "image/png")
	require.Error(t, err)

	var acqErr *AcquisitionError
	require.ErrorAs(t, err, &acqErr)
	assert.Equal(t, "tesseract", acqErr.Tool)
}

func TestExtractUnsupportedType(t *testing.T) {
	_, err := newTestExtractor(&fakeRunner{}).Extract(context.Background(), "/docs/notes.txt", "text/plain")
	assert.Error(t, err)
}

func TestNormalize(t *testing.T) {
	in := "line one  \r\nline two\t\rline three\x00end"
	assert.Equal(t, "line one\nline two\nline three end", Normalize(in))
}

func TestHeuristicConfidence(t *testing.T) {
	rich := heuristicConfidence(strings.Repeat("x", 130) + " $1,200.00 on 09/15/2025 to Boise, ID")
	poor := heuristicConfidence("|||")
	assert.Greater(t, rich, poor)
	assert.LessOrEqual(t, rich, float32(1.0))
}
