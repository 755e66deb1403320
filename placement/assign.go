package placement

import (
	"errors"
	"fmt"
	"sort"

	"github.com/tsawler/inlay/model"
)

// Sentinel causes for assignment failures.
var (
	// ErrUnknownPlaceholder reports an explicit mapping referencing a
	// placeholder id that does not exist on the page.
	ErrUnknownPlaceholder = errors.New("unknown placeholder")

	// ErrUnknownImage reports an explicit mapping referencing an
	// image identifier not present in the inventory.
	ErrUnknownImage = errors.New("unknown image")
)

// AssignmentError reports a failed assignment. The failure is scoped
// to the page being resolved; sibling pages are unaffected.
type AssignmentError struct {
	PlaceholderID   string
	ImageIdentifier string
	Err             error
}

func (e *AssignmentError) Error() string {
	return fmt.Sprintf("assignment failed for placeholder %q / image %q: %v",
		e.PlaceholderID, e.ImageIdentifier, e.Err)
}

func (e *AssignmentError) Unwrap() error {
	return e.Err
}

// Pair is one placeholder matched with one image.
type Pair struct {
	Placeholder model.PlaceholderRegion
	Image       model.ImageAsset
}

// Assignment is the result of pairing images with placeholders.
type Assignment struct {
	// Pairs in deterministic resolution order.
	Pairs []Pair

	// UnmatchedPlaceholders lists ids of placeholders that received
	// no image, in assignment order.
	UnmatchedPlaceholders []string

	// UnmatchedImages lists identifiers of images that were not
	// placed, in identifier order.
	UnmatchedImages []string
}

// Assigner pairs images with placeholders.
type Assigner interface {
	// Assign pairs the given images with the given placeholders.
	// Implementations must be deterministic over identical inputs
	// regardless of input ordering.
	Assign(placeholders []model.PlaceholderRegion, images []model.ImageAsset) (Assignment, error)

	// Name returns the strategy name.
	Name() string
}

// AutoAssigner pairs the largest placeholders with the
// lexicographically first images: placeholders are ordered by area
// descending with ties broken by id ascending, images by identifier
// ascending, and pairing is positional.
type AutoAssigner struct{}

// NewAutoAssigner creates an automatic assigner
func NewAutoAssigner() *AutoAssigner {
	return &AutoAssigner{}
}

// Name returns the strategy name
func (a *AutoAssigner) Name() string { return "auto" }

// Assign implements Assigner. Count mismatches never fail: unmatched
// placeholders are reported in the result and unmatched images are
// listed but ignored.
func (a *AutoAssigner) Assign(placeholders []model.PlaceholderRegion, images []model.ImageAsset) (Assignment, error) {
	regions := append([]model.PlaceholderRegion(nil), placeholders...)
	sort.SliceStable(regions, func(i, j int) bool {
		ai, aj := regions[i].Rect.Area(), regions[j].Rect.Area()
		if ai != aj {
			return ai > aj
		}
		return regions[i].ID < regions[j].ID
	})

	assets := append([]model.ImageAsset(nil), images...)
	sort.SliceStable(assets, func(i, j int) bool {
		return assets[i].Identifier < assets[j].Identifier
	})

	var out Assignment
	n := len(regions)
	if len(assets) < n {
		n = len(assets)
	}

	for i := 0; i < n; i++ {
		out.Pairs = append(out.Pairs, Pair{Placeholder: regions[i], Image: assets[i]})
	}
	for _, reg := range regions[n:] {
		out.UnmatchedPlaceholders = append(out.UnmatchedPlaceholders, reg.ID)
	}
	for _, img := range assets[n:] {
		out.UnmatchedImages = append(out.UnmatchedImages, img.Identifier)
	}

	return out, nil
}

// Mapping is one caller-specified placeholder-to-image pairing.
type Mapping struct {
	// Page is the 1-indexed page the pairing applies to. Zero applies
	// the pairing to every page.
	Page int `json:"page,omitempty"`

	PlaceholderID   string `json:"placeholder_id"`
	ImageIdentifier string `json:"image_identifier"`
}

// MappingsForPage selects the mappings that apply to the given page:
// those with a matching Page plus the page-independent ones (Page 0).
// Relative order is preserved.
func MappingsForPage(mappings []Mapping, page int) []Mapping {
	var out []Mapping
	for _, m := range mappings {
		if m.Page == 0 || m.Page == page {
			out = append(out, m)
		}
	}
	return out
}

// ExplicitAssigner pairs placeholders with images exactly as the
// caller specified. Referencing an entity that does not exist fails
// the whole page with an *AssignmentError. The assigner applies every
// mapping it was built with; select per-page mappings with
// MappingsForPage before construction.
type ExplicitAssigner struct {
	mappings []Mapping
}

// NewExplicitAssigner creates an assigner from caller-supplied mappings
func NewExplicitAssigner(mappings []Mapping) *ExplicitAssigner {
	return &ExplicitAssigner{mappings: append([]Mapping(nil), mappings...)}
}

// Name returns the strategy name
func (a *ExplicitAssigner) Name() string { return "explicit" }

// Assign implements Assigner.
func (a *ExplicitAssigner) Assign(placeholders []model.PlaceholderRegion, images []model.ImageAsset) (Assignment, error) {
	byID := make(map[string]model.PlaceholderRegion, len(placeholders))
	for _, reg := range placeholders {
		byID[reg.ID] = reg
	}
	byIdent := make(map[string]model.ImageAsset, len(images))
	for _, img := range images {
		byIdent[img.Identifier] = img
	}

	var out Assignment
	mapped := make(map[string]bool, len(a.mappings))
	placed := make(map[string]bool, len(a.mappings))

	for _, m := range a.mappings {
		reg, ok := byID[m.PlaceholderID]
		if !ok {
			return Assignment{}, &AssignmentError{
				PlaceholderID:   m.PlaceholderID,
				ImageIdentifier: m.ImageIdentifier,
				Err:             ErrUnknownPlaceholder,
			}
		}
		img, ok := byIdent[m.ImageIdentifier]
		if !ok {
			return Assignment{}, &AssignmentError{
				PlaceholderID:   m.PlaceholderID,
				ImageIdentifier: m.ImageIdentifier,
				Err:             ErrUnknownImage,
			}
		}
		out.Pairs = append(out.Pairs, Pair{Placeholder: reg, Image: img})
		mapped[m.PlaceholderID] = true
		placed[m.ImageIdentifier] = true
	}

	// Unreferenced entities are reported in deterministic order.
	var unmatched []string
	for _, reg := range placeholders {
		if !mapped[reg.ID] {
			unmatched = append(unmatched, reg.ID)
		}
	}
	sort.Strings(unmatched)
	out.UnmatchedPlaceholders = unmatched

	var unplaced []string
	for _, img := range images {
		if !placed[img.Identifier] {
			unplaced = append(unplaced, img.Identifier)
		}
	}
	sort.Strings(unplaced)
	out.UnmatchedImages = unplaced

	return out, nil
}
