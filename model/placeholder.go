package model

import "time"

// Schema constants for detection records.
const (
	// SchemaVersion is the current detection record schema version.
	SchemaVersion = "1.0.0"

	// CoordinateSystem identifies the coordinate convention used by
	// all physical geometry: millimeters from the page's top-left.
	CoordinateSystem = "top_left_mm"
)

// SourceMethod identifies how a placeholder region was produced.
type SourceMethod string

// Known source methods.
const (
	// SourceDetectorA is the document-layout detection model.
	SourceDetectorA SourceMethod = "detector-A"

	// SourceDetectorB is the OCR caption-marker detector.
	SourceDetectorB SourceMethod = "detector-B"

	// SourceManual is a hand-drawn annotation. Manual entries always
	// carry confidence 1.0 and are exempt from the detector
	// confidence floor.
	SourceManual SourceMethod = "manual"
)

// PlaceholderRegion is a rectangular region on a scanned page intended
// to receive a user photograph. Regions are immutable once validated;
// the placement resolver consumes them without mutation.
type PlaceholderRegion struct {
	// ID is unique within a page.
	ID string `json:"id"`

	// Rect is the region's physical extent in millimeters.
	Rect RectMM `json:"bbox_mm"`

	// Confidence is the detector's score in [0, 1].
	Confidence float64 `json:"confidence"`

	// SourceMethod records which detector (or manual entry) produced
	// this region.
	SourceMethod SourceMethod `json:"detection_method"`

	// Notes is free-form operator commentary.
	Notes string `json:"notes,omitempty"`
}

// DetectionRecord is the persisted detection output for a single page.
type DetectionRecord struct {
	SchemaVersion    string              `json:"schema_version"`
	Page             int                 `json:"page"`
	BookID           string              `json:"book_id"`
	ScanDPI          float64             `json:"scan_dpi"`
	PageSizeMM       Page                `json:"page_size_mm"`
	CoordinateSystem string              `json:"coordinate_system"`
	Placeholders     []PlaceholderRegion `json:"placeholders"`
	DetectedAt       time.Time           `json:"detected_at"`
}

// NewDetectionRecord builds a record with the current schema version
// and coordinate system filled in.
func NewDetectionRecord(pageNum int, bookID string, scanDPI float64, page Page, placeholders []PlaceholderRegion) DetectionRecord {
	return DetectionRecord{
		SchemaVersion:    SchemaVersion,
		Page:             pageNum,
		BookID:           bookID,
		ScanDPI:          scanDPI,
		PageSizeMM:       page,
		CoordinateSystem: CoordinateSystem,
		Placeholders:     placeholders,
		DetectedAt:       time.Now().UTC(),
	}
}
