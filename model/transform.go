package model

import "fmt"

// ScalingPolicy selects how an image is scaled into a placeholder.
type ScalingPolicy string

// Supported scaling policies.
//
// PolicyFill and PolicyCenterCrop specify identical geometry (crop to
// the target aspect first, centered, then scale to exactly fill) and
// share one code path in the resolver. Both names stay exported for
// caller clarity.
const (
	// PolicyFill crops the image to the placeholder's aspect ratio
	// and scales it to cover the placeholder exactly. No borders;
	// excess is cropped symmetrically.
	PolicyFill ScalingPolicy = "fill"

	// PolicyFit scales the whole image to fit inside the placeholder,
	// leaving symmetric borders on the constrained axis. The renderer
	// is responsible for border fill.
	PolicyFit ScalingPolicy = "fit"

	// PolicyCenterCrop is an alias policy with the same geometry as
	// PolicyFill.
	PolicyCenterCrop ScalingPolicy = "center-crop"
)

// ParseScalingPolicy converts a string to a ScalingPolicy.
func ParseScalingPolicy(s string) (ScalingPolicy, error) {
	switch ScalingPolicy(s) {
	case PolicyFill, PolicyFit, PolicyCenterCrop:
		return ScalingPolicy(s), nil
	}
	return "", fmt.Errorf("unknown scaling policy %q", s)
}

// PlacementTransform is the resolved crop/scale mapping of one image
// into one placeholder. Produced once per (placeholder, image) pair by
// the placement resolver, consumed by calibration and then by the
// renderer. Immutable after creation.
type PlacementTransform struct {
	PlaceholderID   string `json:"placeholder_id"`
	ImageIdentifier string `json:"image_identifier"`

	// TargetRect is the physical destination on the page in
	// millimeters.
	TargetRect RectMM `json:"target_bbox_mm"`

	// ScaleFactor converts cropped source pixels to target pixels at
	// the configured print resolution. Always positive.
	ScaleFactor float64 `json:"scale_factor"`

	// CropRectPx is the region of the source image to use, in source
	// pixel coordinates. Under the fit policy it covers the whole
	// image.
	CropRectPx RectPx `json:"crop_rect_px"`

	// Policy records the scaling policy that produced this transform.
	Policy ScalingPolicy `json:"scaling_mode"`
}
