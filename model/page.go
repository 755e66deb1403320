package model

// Page represents the physical dimensions of one book page.
// Pages are immutable per document; the origin is the top-left corner.
type Page struct {
	WidthMM  float64 `json:"width"`
	HeightMM float64 `json:"height"`
}

// NewPage creates a page with the given dimensions in millimeters
func NewPage(widthMM, heightMM float64) Page {
	return Page{WidthMM: widthMM, HeightMM: heightMM}
}

// IsValid returns true if the page has positive dimensions
func (p Page) IsValid() bool {
	return p.WidthMM > 0 && p.HeightMM > 0
}

// PaperType describes a supported output paper stock.
type PaperType struct {
	Name              string  `json:"name"`
	WidthMM           float64 `json:"width_mm"`
	HeightMM          float64 `json:"height_mm"`
	PrintableMarginMM float64 `json:"printable_margin_mm"`
	BleedMM           float64 `json:"bleed_mm"`
}

// Page returns the page dimensions for this paper type
func (pt PaperType) Page() Page {
	return Page{WidthMM: pt.WidthMM, HeightMM: pt.HeightMM}
}

// PrintableArea returns the region of the page inside the printable margin
func (pt PaperType) PrintableArea() RectMM {
	m := pt.PrintableMarginMM
	return RectMM{
		X:      m,
		Y:      m,
		Width:  pt.WidthMM - 2*m,
		Height: pt.HeightMM - 2*m,
	}
}

// Built-in paper types.
var (
	// A4 is standard 210x297 mm office paper.
	A4 = PaperType{
		Name:              "A4",
		WidthMM:           210,
		HeightMM:          297,
		PrintableMarginMM: 5,
		BleedMM:           0,
	}

	// Photo7x10 is 7x10 inch photo paper (177.8x254 mm).
	Photo7x10 = PaperType{
		Name:              "7x10_photo",
		WidthMM:           177.8,
		HeightMM:          254,
		PrintableMarginMM: 3,
		BleedMM:           0,
	}
)

// paperCatalog maps paper names to their definitions.
var paperCatalog = map[string]PaperType{
	A4.Name:        A4,
	Photo7x10.Name: Photo7x10,
}

// LookupPaper retrieves a paper type by name.
// The second return value is false if the name is unknown.
func LookupPaper(name string) (PaperType, bool) {
	pt, ok := paperCatalog[name]
	return pt, ok
}
