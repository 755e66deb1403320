// Package inventory maintains the read-only catalog of user images
// available for placement.
//
// The inventory records only identifiers and pixel dimensions; pixel
// data stays on disk for the renderer. Identifiers are normalized to
// Unicode NFC so that the same photo set produces the same automatic
// assignment regardless of which filesystem supplied the names (macOS
// hands back NFD).
//
// [LoadDir] reads dimensions via image.DecodeConfig and understands
// JPEG, PNG, and GIF from the standard library plus BMP, TIFF, and
// WebP via golang.org/x/image.
package inventory

import (
	"fmt"
	"image"
	"os"
	"path/filepath"
	"sort"
	"strings"

	// Image formats registered for DecodeConfig.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"golang.org/x/text/unicode/norm"

	"github.com/tsawler/inlay/model"
)

// imageExtensions are the file extensions LoadDir considers.
var imageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".bmp":  true,
	".tif":  true,
	".tiff": true,
	".webp": true,
}

// Inventory is a read-only mapping from identifier to image asset.
type Inventory struct {
	assets map[string]model.ImageAsset
}

// New creates an empty inventory
func New() *Inventory {
	return &Inventory{assets: make(map[string]model.ImageAsset)}
}

// Add registers an asset. The identifier is normalized to NFC; adding
// a second asset under the same normalized identifier fails.
func (inv *Inventory) Add(asset model.ImageAsset) error {
	asset.Identifier = norm.NFC.String(asset.Identifier)
	if !asset.IsValid() {
		return fmt.Errorf("invalid image asset %q (%dx%d px)",
			asset.Identifier, asset.PixelWidth, asset.PixelHeight)
	}
	if _, exists := inv.assets[asset.Identifier]; exists {
		return fmt.Errorf("duplicate image identifier %q", asset.Identifier)
	}
	inv.assets[asset.Identifier] = asset
	return nil
}

// Get retrieves an asset by identifier. Lookup normalizes the
// identifier, so NFD and NFC spellings of the same name match.
func (inv *Inventory) Get(identifier string) (model.ImageAsset, bool) {
	asset, ok := inv.assets[norm.NFC.String(identifier)]
	return asset, ok
}

// Len returns the number of assets
func (inv *Inventory) Len() int {
	return len(inv.assets)
}

// Assets returns all assets ordered by identifier ascending.
func (inv *Inventory) Assets() []model.ImageAsset {
	out := make([]model.ImageAsset, 0, len(inv.assets))
	for _, asset := range inv.assets {
		out = append(out, asset)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Identifier < out[j].Identifier
	})
	return out
}

// LoadDir builds an inventory from the image files directly inside
// dir. The file name (normalized) becomes the identifier. A file with
// an image extension that cannot be decoded fails the load; callers
// are expected to hand over a curated photo directory.
func LoadDir(dir string) (*Inventory, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read image directory: %w", err)
	}

	inv := New()
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(entry.Name()))
		if !imageExtensions[ext] {
			continue
		}

		path := filepath.Join(dir, entry.Name())
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("failed to open %s: %w", path, err)
		}

		cfg, _, err := image.DecodeConfig(f)
		f.Close()
		if err != nil {
			return nil, fmt.Errorf("failed to decode %s: %w", path, err)
		}

		if err := inv.Add(model.ImageAsset{
			Identifier:  entry.Name(),
			PixelWidth:  cfg.Width,
			PixelHeight: cfg.Height,
		}); err != nil {
			return nil, err
		}
	}

	return inv, nil
}
