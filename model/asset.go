package model

// ImageAsset describes a user image available for placement.
// Assets are read-only; pixel data stays with the caller's inventory.
type ImageAsset struct {
	Identifier  string `json:"identifier"`
	PixelWidth  int    `json:"pixel_width"`
	PixelHeight int    `json:"pixel_height"`
}

// AspectRatio returns width over height.
// Returns 0 for an asset with a non-positive height.
func (a ImageAsset) AspectRatio() float64 {
	if a.PixelHeight <= 0 {
		return 0
	}
	return float64(a.PixelWidth) / float64(a.PixelHeight)
}

// IsValid returns true if the asset has an identifier and positive
// pixel dimensions.
func (a ImageAsset) IsValid() bool {
	return a.Identifier != "" && a.PixelWidth > 0 && a.PixelHeight > 0
}
