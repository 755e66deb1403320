package placement

import (
	"fmt"

	"github.com/tsawler/inlay/model"
	"github.com/tsawler/inlay/units"
)

// Warning codes emitted during resolution.
const (
	// WarnLowResolution means the source image cannot sustain the
	// configured print DPI at the placeholder's physical size.
	WarnLowResolution = "low-resolution"

	// WarnUnmatchedPlaceholder means a placeholder received no image.
	WarnUnmatchedPlaceholder = "unmatched-placeholder"
)

// Warning is a non-fatal condition noticed while resolving placements.
type Warning struct {
	Code          string `json:"code"`
	PlaceholderID string `json:"placeholder_id,omitempty"`
	Message       string `json:"message"`
}

// Result carries the resolved placements for one page together with
// any warnings raised along the way.
type Result struct {
	Placements []model.PlacementTransform
	Warnings   []Warning
}

// Config holds resolver parameters.
type Config struct {
	// PrintDPI is the target raster resolution for output.
	PrintDPI float64
}

// DefaultConfig returns default resolver parameters
func DefaultConfig() Config {
	return Config{PrintDPI: 300}
}

// Resolver computes placement transforms for one page. The resolver
// exclusively owns the transforms it creates per invocation; it holds
// no state across calls.
type Resolver struct {
	config   Config
	assigner Assigner
}

// NewResolver creates a resolver with automatic assignment and
// default configuration.
func NewResolver() *Resolver {
	return &Resolver{config: DefaultConfig(), assigner: NewAutoAssigner()}
}

// NewResolverWithConfig creates a resolver with the given assignment
// strategy and configuration. A nil assigner falls back to automatic
// assignment.
func NewResolverWithConfig(assigner Assigner, config Config) *Resolver {
	if assigner == nil {
		assigner = NewAutoAssigner()
	}
	return &Resolver{config: config, assigner: assigner}
}

// Resolve assigns images to placeholders and computes one
// PlacementTransform per pair under the given scaling policy.
func (r *Resolver) Resolve(page model.Page, placeholders []model.PlaceholderRegion, images []model.ImageAsset, policy model.ScalingPolicy) (Result, error) {
	if _, err := model.ParseScalingPolicy(string(policy)); err != nil {
		return Result{}, fmt.Errorf("%w: %v", units.ErrInvalidParameter, err)
	}

	assignment, err := r.assigner.Assign(placeholders, images)
	if err != nil {
		return Result{}, err
	}

	var result Result
	for _, pair := range assignment.Pairs {
		pt, err := r.computeTransform(pair.Placeholder, pair.Image, policy)
		if err != nil {
			return Result{}, err
		}
		result.Placements = append(result.Placements, pt)

		// Effective DPI of the placed image. For every policy the
		// source delivers PrintDPI/scale pixels per output inch, so
		// any upscale (scale > 1) prints softer than requested.
		effectiveDPI := r.config.PrintDPI / pt.ScaleFactor
		if effectiveDPI < r.config.PrintDPI {
			result.Warnings = append(result.Warnings, Warning{
				Code:          WarnLowResolution,
				PlaceholderID: pair.Placeholder.ID,
				Message: fmt.Sprintf("image %q yields %.0f effective DPI in placeholder %q, below the %.0f target",
					pair.Image.Identifier, effectiveDPI, pair.Placeholder.ID, r.config.PrintDPI),
			})
		}
	}

	for _, id := range assignment.UnmatchedPlaceholders {
		result.Warnings = append(result.Warnings, Warning{
			Code:          WarnUnmatchedPlaceholder,
			PlaceholderID: id,
			Message:       fmt.Sprintf("no image available for placeholder %q", id),
		})
	}

	return result, nil
}

// computeTransform builds the crop/scale transform placing one image
// into one placeholder. All arithmetic stays in floating point; the
// crop rectangle is rounded to integral pixels exactly once, on
// emission, with round-half-to-even.
func (r *Resolver) computeTransform(reg model.PlaceholderRegion, img model.ImageAsset, policy model.ScalingPolicy) (model.PlacementTransform, error) {
	if !reg.Rect.IsValid() {
		return model.PlacementTransform{}, fmt.Errorf("%w: placeholder %q has a malformed rect %gx%g at (%g, %g)",
			units.ErrInvalidParameter, reg.ID, reg.Rect.Width, reg.Rect.Height, reg.Rect.X, reg.Rect.Y)
	}
	if !img.IsValid() {
		return model.PlacementTransform{}, fmt.Errorf("%w: image %q has non-positive dimensions %dx%d",
			units.ErrInvalidParameter, img.Identifier, img.PixelWidth, img.PixelHeight)
	}

	targetW, err := units.MMToPx(reg.Rect.Width, r.config.PrintDPI)
	if err != nil {
		return model.PlacementTransform{}, err
	}
	targetH, err := units.MMToPx(reg.Rect.Height, r.config.PrintDPI)
	if err != nil {
		return model.PlacementTransform{}, err
	}

	srcW := float64(img.PixelWidth)
	srcH := float64(img.PixelHeight)

	var cropX, cropY, cropW, cropH float64
	var scale float64

	switch policy {
	case model.PolicyFill, model.PolicyCenterCrop:
		// Largest centered rectangle at the target aspect ratio that
		// fits inside the source; the longer axis is cropped
		// symmetrically from both sides.
		rTarget := targetW / targetH
		rImg := srcW / srcH

		if rImg > rTarget {
			cropH = srcH
			cropW = srcH * rTarget
		} else {
			cropW = srcW
			cropH = srcW / rTarget
		}
		cropX = (srcW - cropW) / 2
		cropY = (srcH - cropH) / 2
		scale = targetW / cropW

	case model.PolicyFit:
		// Full-image crop; the renderer centers the scaled image and
		// fills the border.
		cropX, cropY = 0, 0
		cropW, cropH = srcW, srcH
		scale = targetW / srcW
		if s := targetH / srcH; s < scale {
			scale = s
		}
	}

	return model.PlacementTransform{
		PlaceholderID:   reg.ID,
		ImageIdentifier: img.Identifier,
		TargetRect:      reg.Rect,
		ScaleFactor:     scale,
		CropRectPx: model.RectPx{
			X:      units.RoundPx(cropX),
			Y:      units.RoundPx(cropY),
			Width:  units.RoundPx(cropW),
			Height: units.RoundPx(cropH),
		},
		Policy: policy,
	}, nil
}
