package model

import "math"

// PointMM represents a 2D point in millimeters (top-left origin).
type PointMM struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Distance calculates the Euclidean distance to another point
func (p PointMM) Distance(other PointMM) float64 {
	dx := p.X - other.X
	dy := p.Y - other.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// RectMM represents a physical rectangle in millimeters.
// X and Y locate the top-left corner relative to the page's top-left.
type RectMM struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// NewRectMM creates a rectangle from coordinates
func NewRectMM(x, y, width, height float64) RectMM {
	return RectMM{X: x, Y: y, Width: width, Height: height}
}

// Left returns the left edge X coordinate
func (r RectMM) Left() float64 {
	return r.X
}

// Right returns the right edge X coordinate
func (r RectMM) Right() float64 {
	return r.X + r.Width
}

// Top returns the top edge Y coordinate
func (r RectMM) Top() float64 {
	return r.Y
}

// Bottom returns the bottom edge Y coordinate
func (r RectMM) Bottom() float64 {
	return r.Y + r.Height
}

// Center returns the center point
func (r RectMM) Center() PointMM {
	return PointMM{
		X: r.X + r.Width/2,
		Y: r.Y + r.Height/2,
	}
}

// Area returns the area of the rectangle in square millimeters
func (r RectMM) Area() float64 {
	return r.Width * r.Height
}

// IsValid returns true if the rectangle satisfies the physical
// invariants: non-negative position and strictly positive dimensions.
func (r RectMM) IsValid() bool {
	return r.X >= 0 && r.Y >= 0 && r.Width > 0 && r.Height > 0
}

// Intersects checks if two rectangles intersect
func (r RectMM) Intersects(other RectMM) bool {
	return !(r.Right() < other.Left() ||
		r.Left() > other.Right() ||
		r.Bottom() < other.Top() ||
		r.Top() > other.Bottom())
}

// Intersection returns the intersection of two rectangles.
// Returns a zero rectangle when they do not overlap.
func (r RectMM) Intersection(other RectMM) RectMM {
	x := math.Max(r.Left(), other.Left())
	y := math.Max(r.Top(), other.Top())
	right := math.Min(r.Right(), other.Right())
	bottom := math.Min(r.Bottom(), other.Bottom())

	if right <= x || bottom <= y {
		return RectMM{}
	}

	return RectMM{
		X:      x,
		Y:      y,
		Width:  right - x,
		Height: bottom - y,
	}
}

// Union returns the smallest rectangle containing both rectangles
func (r RectMM) Union(other RectMM) RectMM {
	x := math.Min(r.Left(), other.Left())
	y := math.Min(r.Top(), other.Top())
	right := math.Max(r.Right(), other.Right())
	bottom := math.Max(r.Bottom(), other.Bottom())

	return RectMM{
		X:      x,
		Y:      y,
		Width:  right - x,
		Height: bottom - y,
	}
}

// IoU calculates the intersection-over-union with another rectangle.
// Returns a value between 0 and 1. A zero-area intersection yields 0
// without a division error.
func (r RectMM) IoU(other RectMM) float64 {
	inter := r.Intersection(other).Area()
	if inter <= 0 {
		return 0
	}

	union := r.Area() + other.Area() - inter
	if union <= 0 {
		return 0
	}

	return inter / union
}

// WithinPage returns true if the rectangle lies fully inside the page
func (r RectMM) WithinPage(page Page) bool {
	return r.X >= 0 && r.Y >= 0 &&
		r.Right() <= page.WidthMM &&
		r.Bottom() <= page.HeightMM
}

// RectPx represents a rectangle in image pixel space, used for crop
// rectangles against a source image.
type RectPx struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

// IsEmpty returns true if the rectangle has zero area
func (r RectPx) IsEmpty() bool {
	return r.Width <= 0 || r.Height <= 0
}
