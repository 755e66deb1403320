package detect

import (
	"fmt"

	"github.com/tsawler/inlay/model"
	"github.com/tsawler/inlay/units"
)

// Annotation is one hand-drawn placeholder rectangle in scan pixel
// coordinates.
type Annotation struct {
	ID     string  `json:"id"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Notes  string  `json:"notes,omitempty"`
}

// ManualDetector converts operator annotations into placeholder
// regions. Manual regions always carry confidence 1.0 and are exempt
// from the detector confidence floor during validation.
type ManualDetector struct {
	annotations []Annotation
}

// NewManualDetector creates a detector over the given annotations
func NewManualDetector(annotations []Annotation) *ManualDetector {
	return &ManualDetector{annotations: append([]Annotation(nil), annotations...)}
}

// Name returns the detector name
func (d *ManualDetector) Name() string { return "manual" }

// Detect implements Detector. Annotation pixel coordinates are
// converted to millimeters at the page's scan DPI.
func (d *ManualDetector) Detect(page PageImage) ([]model.PlaceholderRegion, error) {
	regions := make([]model.PlaceholderRegion, 0, len(d.annotations))

	for _, ann := range d.annotations {
		x, err := units.PxToMM(ann.X, page.DPI)
		if err != nil {
			return nil, fmt.Errorf("annotation %q: %w", ann.ID, err)
		}
		y, err := units.PxToMM(ann.Y, page.DPI)
		if err != nil {
			return nil, fmt.Errorf("annotation %q: %w", ann.ID, err)
		}
		w, err := units.PxToMM(ann.Width, page.DPI)
		if err != nil {
			return nil, fmt.Errorf("annotation %q: %w", ann.ID, err)
		}
		h, err := units.PxToMM(ann.Height, page.DPI)
		if err != nil {
			return nil, fmt.Errorf("annotation %q: %w", ann.ID, err)
		}

		regions = append(regions, model.PlaceholderRegion{
			ID:           ann.ID,
			Rect:         model.RectMM{X: x, Y: y, Width: w, Height: h},
			Confidence:   1.0,
			SourceMethod: model.SourceManual,
			Notes:        ann.Notes,
		})
	}

	return regions, nil
}
