//go:build ocr

package detect

import (
	"fmt"
	"strings"

	"github.com/otiai10/gosseract/v2"

	"github.com/tsawler/inlay/model"
	"github.com/tsawler/inlay/units"
)

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

// OCRDetector locates printed placeholder caption markers with
// Tesseract and derives regions from their word bounding boxes.
// Requires Tesseract installed on the system.
type OCRDetector struct {
	client *gosseract.Client
	config OCRConfig
}

// NewOCRDetector creates a detector with default settings.
// The detector should be closed when no longer needed to release
// Tesseract resources.
func NewOCRDetector() (*OCRDetector, error) {
	return NewOCRDetectorWithConfig(DefaultOCRConfig())
}

// NewOCRDetectorWithConfig creates a detector with custom settings
func NewOCRDetectorWithConfig(config OCRConfig) (*OCRDetector, error) {
	client := gosseract.NewClient()
	if err := client.SetLanguage(config.Language); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to set OCR language: %w", err)
	}
	return &OCRDetector{client: client, config: config}, nil
}

// Close releases Tesseract resources
func (d *OCRDetector) Close() error {
	if d.client != nil {
		return d.client.Close()
	}
	return nil
}

// Name returns the detector name
func (d *OCRDetector) Name() string { return "ocr-caption" }

// Detect implements Detector. Each recognized word matching the
// configured marker yields one region at the word's bounding box,
// converted to millimeters at the page's scan DPI.
func (d *OCRDetector) Detect(page PageImage) ([]model.PlaceholderRegion, error) {
	if err := d.client.SetImageFromBytes(page.Data); err != nil {
		return nil, fmt.Errorf("failed to set page image: %w", err)
	}

	boxes, err := d.client.GetBoundingBoxes(gosseract.RIL_WORD)
	if err != nil {
		return nil, fmt.Errorf("OCR failed: %w", err)
	}

	var regions []model.PlaceholderRegion
	for _, box := range boxes {
		if !strings.EqualFold(strings.TrimSpace(box.Word), d.config.Marker) {
			continue
		}
		if box.Confidence < d.config.MinWordConfidence {
			continue
		}

		x, err := units.PxToMM(float64(box.Box.Min.X), page.DPI)
		if err != nil {
			return nil, err
		}
		y, err := units.PxToMM(float64(box.Box.Min.Y), page.DPI)
		if err != nil {
			return nil, err
		}
		w, err := units.PxToMM(float64(box.Box.Dx()), page.DPI)
		if err != nil {
			return nil, err
		}
		h, err := units.PxToMM(float64(box.Box.Dy()), page.DPI)
		if err != nil {
			return nil, err
		}

		confidence := box.Confidence / 100
		if confidence > 1 {
			confidence = 1
		}

		regions = append(regions, model.PlaceholderRegion{
			ID:           fmt.Sprintf("ph-%03d", len(regions)+1),
			Rect:         model.RectMM{X: x, Y: y, Width: w, Height: h},
			Confidence:   confidence,
			SourceMethod: model.SourceDetectorB,
		})
	}

	return regions, nil
}
