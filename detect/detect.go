// Package detect defines the placeholder detection contract and the
// built-in detector variants.
//
// Detection models themselves are pluggable: anything implementing
// [Detector] can feed the pipeline. The package ships two concrete
// variants:
//
//   - [ManualDetector] - converts hand-drawn pixel annotations into
//     placeholder regions (always confidence 1.0).
//   - OCR caption detector - locates printed caption markers with
//     Tesseract and derives regions from their bounding boxes.
//     Requires the "ocr" build tag; without it a stub returning
//     [ErrOCRNotEnabled] is compiled instead.
//
// Detectors are registered by name and selected at configuration
// time:
//
//	reg := detect.NewRegistry()
//	reg.Register(detect.NewManualDetector(annotations))
//	d := reg.Get("manual")
package detect

import (
	"sort"

	"github.com/tsawler/inlay/model"
	"github.com/tsawler/inlay/units"
)

// PageImage is one rasterized book page handed to a detector. The
// caller materializes the bytes; detectors perform no I/O.
type PageImage struct {
	// Data is the encoded image (PNG, JPEG, TIFF).
	Data []byte

	// WidthPx and HeightPx are the raster dimensions.
	WidthPx  int
	HeightPx int

	// DPI is the scan resolution, tying raster pixels to physical
	// millimeters.
	DPI float64
}

// Page returns the physical page dimensions implied by the raster
// size and scan DPI.
func (p PageImage) Page() (model.Page, error) {
	w, err := units.PxToMM(float64(p.WidthPx), p.DPI)
	if err != nil {
		return model.Page{}, err
	}
	h, err := units.PxToMM(float64(p.HeightPx), p.DPI)
	if err != nil {
		return model.Page{}, err
	}
	return model.NewPage(w, h), nil
}

// Detector is the interface for placeholder detection backends.
type Detector interface {
	// Detect finds placeholder regions in a rasterized page,
	// expressed in millimeters from the page's top-left corner.
	Detect(page PageImage) ([]model.PlaceholderRegion, error)

	// Name returns the detector name used for registry lookup.
	Name() string
}

// Registry holds detectors keyed by name.
type Registry struct {
	detectors map[string]Detector
}

// NewRegistry creates an empty detector registry
func NewRegistry() *Registry {
	return &Registry{detectors: make(map[string]Detector)}
}

// Register registers a detector under its name
func (r *Registry) Register(d Detector) {
	r.detectors[d.Name()] = d
}

// Get retrieves a detector by name, or nil if not registered
func (r *Registry) Get(name string) Detector {
	return r.detectors[name]
}

// Names returns the registered detector names in sorted order
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.detectors))
	for name := range r.detectors {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
