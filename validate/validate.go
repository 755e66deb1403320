// Package validate checks detector output for physical and semantic
// consistency before it is allowed to drive print geometry.
//
// Validation never short-circuits: the produced [Report] enumerates
// every violation found so callers can fix source data in one pass.
// Blocking violations (cardinality, bounds, malformed geometry) mean
// the page must not proceed to placement; warnings (confidence,
// overlap) mean the data may still be usable with user awareness.
package validate

import (
	"fmt"

	"github.com/tsawler/inlay/model"
)

// Severity classifies how a violation affects the pipeline.
type Severity string

// Violation severities.
const (
	// SeverityBlocking halts placement for the page.
	SeverityBlocking Severity = "blocking"

	// SeverityWarning is surfaced to the caller; the pipeline may
	// continue.
	SeverityWarning Severity = "warning"
)

// Code identifies a class of validation violation.
type Code string

// Violation codes.
const (
	CodeEmptyPage      Code = "empty-page"
	CodeTooManyRegions Code = "too-many-regions"
	CodeMalformedRect  Code = "malformed-rect"
	CodeOutOfBounds    Code = "out-of-bounds"
	CodeDuplicateID    Code = "duplicate-id"
	CodeBadConfidence  Code = "bad-confidence"
	CodeLowConfidence  Code = "low-confidence"
	CodeOverlap        Code = "overlap"
)

// Violation is one structural or physical problem found in a page's
// placeholder set.
type Violation struct {
	Code     Code     `json:"code"`
	Message  string   `json:"message"`
	Severity Severity `json:"severity"`
}

// Report is the result of validating one page. Violations appear in a
// deterministic order: cardinality first, then per-region checks in
// input order, then pairwise overlap checks.
type Report struct {
	Passed     bool        `json:"passed"`
	Violations []Violation `json:"violations"`
}

// Blocking returns the blocking violations in report order
func (r Report) Blocking() []Violation {
	var out []Violation
	for _, v := range r.Violations {
		if v.Severity == SeverityBlocking {
			out = append(out, v)
		}
	}
	return out
}

// Warnings returns the warning violations in report order
func (r Report) Warnings() []Violation {
	var out []Violation
	for _, v := range r.Violations {
		if v.Severity == SeverityWarning {
			out = append(out, v)
		}
	}
	return out
}

// Config holds validation thresholds.
type Config struct {
	// MaxPlaceholdersPerPage is the upper bound on region count.
	MaxPlaceholdersPerPage int

	// MinDetectionConfidence is the confidence floor for detector
	// regions. Manual regions are exempt.
	MinDetectionConfidence float64

	// MaxOverlapIoU is the strict upper bound on pairwise
	// intersection-over-union. A pair at exactly this value violates.
	MaxOverlapIoU float64
}

// DefaultConfig returns default validation thresholds
func DefaultConfig() Config {
	return Config{
		MaxPlaceholdersPerPage: 6,
		MinDetectionConfidence: 0.70,
		MaxOverlapIoU:          0.10,
	}
}

// Validator validates one page's placeholder set against a page's
// physical bounds and the configured thresholds.
type Validator struct {
	config Config
}

// New creates a validator with default thresholds
func New() *Validator {
	return NewWithConfig(DefaultConfig())
}

// NewWithConfig creates a validator with custom thresholds
func NewWithConfig(config Config) *Validator {
	return &Validator{config: config}
}

// Validate checks every region on the page and returns a report
// listing all violations found. Passed is true iff no blocking
// violation was found; warnings alone do not fail the report.
func (v *Validator) Validate(page model.Page, regions []model.PlaceholderRegion) Report {
	var violations []Violation

	// Cardinality. Zero or excess regions is a failure, never
	// silently clamped.
	if len(regions) == 0 {
		violations = append(violations, Violation{
			Code:     CodeEmptyPage,
			Message:  "page has no placeholders",
			Severity: SeverityBlocking,
		})
	} else if len(regions) > v.config.MaxPlaceholdersPerPage {
		violations = append(violations, Violation{
			Code: CodeTooManyRegions,
			Message: fmt.Sprintf("page has %d placeholders, maximum is %d",
				len(regions), v.config.MaxPlaceholdersPerPage),
			Severity: SeverityBlocking,
		})
	}

	seen := make(map[string]bool, len(regions))
	for _, reg := range regions {
		if seen[reg.ID] {
			violations = append(violations, Violation{
				Code:     CodeDuplicateID,
				Message:  fmt.Sprintf("placeholder id %q appears more than once", reg.ID),
				Severity: SeverityBlocking,
			})
		}
		seen[reg.ID] = true

		if !reg.Rect.IsValid() {
			violations = append(violations, Violation{
				Code: CodeMalformedRect,
				Message: fmt.Sprintf("placeholder %q has malformed rect %+v",
					reg.ID, reg.Rect),
				Severity: SeverityBlocking,
			})
		} else if !reg.Rect.WithinPage(page) {
			violations = append(violations, Violation{
				Code: CodeOutOfBounds,
				Message: fmt.Sprintf("placeholder %q extends outside the %gx%g mm page",
					reg.ID, page.WidthMM, page.HeightMM),
				Severity: SeverityBlocking,
			})
		}

		if reg.Confidence < 0 || reg.Confidence > 1 {
			violations = append(violations, Violation{
				Code: CodeBadConfidence,
				Message: fmt.Sprintf("placeholder %q has confidence %v outside [0, 1]",
					reg.ID, reg.Confidence),
				Severity: SeverityBlocking,
			})
		} else if reg.SourceMethod != model.SourceManual && reg.Confidence < v.config.MinDetectionConfidence {
			violations = append(violations, Violation{
				Code: CodeLowConfidence,
				Message: fmt.Sprintf("placeholder %q confidence %.2f is below the %.2f floor",
					reg.ID, reg.Confidence, v.config.MinDetectionConfidence),
				Severity: SeverityWarning,
			})
		}
	}

	// Pairwise overlap. Both members of a violating pair are
	// reported, in input order.
	for i := 0; i < len(regions); i++ {
		for j := i + 1; j < len(regions); j++ {
			iou := regions[i].Rect.IoU(regions[j].Rect)
			if iou >= v.config.MaxOverlapIoU {
				violations = append(violations,
					Violation{
						Code: CodeOverlap,
						Message: fmt.Sprintf("placeholder %q overlaps %q (IoU %.4f, limit %.2f)",
							regions[i].ID, regions[j].ID, iou, v.config.MaxOverlapIoU),
						Severity: SeverityWarning,
					},
					Violation{
						Code: CodeOverlap,
						Message: fmt.Sprintf("placeholder %q overlaps %q (IoU %.4f, limit %.2f)",
							regions[j].ID, regions[i].ID, iou, v.config.MaxOverlapIoU),
						Severity: SeverityWarning,
					})
			}
		}
	}

	return Report{
		Passed:     !hasBlocking(violations),
		Violations: violations,
	}
}

func hasBlocking(violations []Violation) bool {
	for _, v := range violations {
		if v.Severity == SeverityBlocking {
			return true
		}
	}
	return false
}
