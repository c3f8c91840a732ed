package tabbar

import (
	"math"

	"github.com/kastheco/capsule/tabs"
)

// Point is a location in the bar's local coordinate space.
type Point struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle in the bar's local coordinate space.
// The zero Rect is what every button holds before the first layout pass.
type Rect struct {
	X, Y, W, H float64
}

// Contains reports whether p lies inside r. Spans are half-open, so two
// buttons that share an edge never both contain the same point.
func (r Rect) Contains(p Point) bool {
	if r.W <= 0 || r.H <= 0 {
		return false
	}
	return p.X >= r.X && p.X < r.X+r.W && p.Y >= r.Y && p.Y < r.Y+r.H
}

// IsZero reports whether r has never been measured.
func (r Rect) IsZero() bool {
	return r == Rect{}
}

// Center returns the center point of the rectangle.
func (r Rect) Center() Point {
	return Point{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// Cells rounds r to terminal cells: start column and width. Column c is
// inside r when its center c+0.5 is, which keeps rendering in agreement with
// hit-testing at cell centers.
func (r Rect) Cells() (start, width int) {
	start = int(math.Ceil(r.X - 0.5))
	end := int(math.Ceil(r.X + r.W - 0.5))
	return start, end - start
}

// CellCenter returns the local point at the center of cell (col, row).
func CellCenter(col, row int) Point {
	return Point{X: float64(col) + 0.5, Y: float64(row) + 0.5}
}

// Metrics describes the capsule's fixed dimensions.
type Metrics struct {
	// Height of each button, excluding the capsule's inner padding.
	Height float64
	// Padding between the capsule edge and the buttons.
	Padding float64
	// MarginX is the outer horizontal inset on each side of the capsule.
	MarginX float64
	// MarginBottom is the outer inset below the capsule.
	MarginBottom float64
}

// DefaultMetrics are the capsule's dimensions in points.
var DefaultMetrics = Metrics{Height: 40, Padding: 5, MarginX: 15, MarginBottom: 10}

// TerminalMetrics are the same proportions expressed in terminal cells. The
// one-cell padding is where the capsule's rounded border is drawn.
var TerminalMetrics = Metrics{Height: 3, Padding: 1, MarginX: 2, MarginBottom: 1}

// CapsuleHeight is the capsule's outer height, padding included.
func (m Metrics) CapsuleHeight() float64 {
	return m.Height + 2*m.Padding
}

// TotalHeight is the vertical space the bar claims below the content.
func (m Metrics) TotalHeight() float64 {
	return m.CapsuleHeight() + m.MarginBottom
}

// Frame is the result of a layout pass.
type Frame struct {
	// Capsule is the capsule's rect in the parent's space: its origin is the
	// origin of the bar's local coordinate space.
	Capsule Rect
	// Buttons holds one rect per tab, indexed by ordinal, in local space.
	Buttons [tabs.Count]Rect
}

// Layout lays out tabs.Count equal-width buttons in a capsule that spans
// width minus the horizontal margins.
func Layout(width float64, m Metrics) Frame {
	var f Frame
	capsuleW := width - 2*m.MarginX
	innerW := capsuleW - 2*m.Padding
	if innerW <= 0 {
		return f
	}
	f.Capsule = Rect{X: m.MarginX, W: capsuleW, H: m.CapsuleHeight()}

	w := innerW / tabs.Count
	for i := range f.Buttons {
		f.Buttons[i] = Rect{X: m.Padding + float64(i)*w, Y: m.Padding, W: w, H: m.Height}
	}
	return f
}
