//go:build !ocr

package detect

import (
	"errors"

	"github.com/tsawler/inlay/model"
)

// ErrOCRNotEnabled is returned when the OCR caption detector is used
// but OCR support was not compiled in. Rebuild with -tags ocr to
// enable it. This requires Tesseract to be installed. On macOS:
//
//	brew install tesseract
//
// On Ubuntu/Debian:
//
//	apt-get install tesseract-ocr
var ErrOCRNotEnabled = errors.New("OCR support not enabled; rebuild with -tags ocr")

// OCRConfig controls the caption-marker detector.
type OCRConfig struct {
	// Marker is the caption text printed inside each placeholder
	// frame, matched case-insensitively.
	Marker string

	// Language is the Tesseract language code.
	Language string

	// MinWordConfidence is Tesseract's 0-100 word confidence floor.
	MinWordConfidence float64
}

// DefaultOCRConfig returns default detector settings
func DefaultOCRConfig() OCRConfig {
	return OCRConfig{
		Marker:            "PHOTO",
		Language:          "eng",
		MinWordConfidence: 60,
	}
}

// OCRDetector is a stub that returns errors for all operations.
type OCRDetector struct{}

// NewOCRDetector returns an error indicating OCR support is not
// enabled. To enable it, rebuild with: go build -tags ocr
func NewOCRDetector() (*OCRDetector, error) {
	return nil, ErrOCRNotEnabled
}

// NewOCRDetectorWithConfig returns an error indicating OCR support is
// not enabled.
func NewOCRDetectorWithConfig(config OCRConfig) (*OCRDetector, error) {
	return nil, ErrOCRNotEnabled
}

// Close is a no-op for the stub detector.
// It is safe to call on a nil detector.
func (d *OCRDetector) Close() error {
	return nil
}

// Name returns the detector name
func (d *OCRDetector) Name() string { return "ocr-caption" }

// Detect returns an error indicating OCR support is not enabled.
func (d *OCRDetector) Detect(page PageImage) ([]model.PlaceholderRegion, error) {
	return nil, ErrOCRNotEnabled
}
