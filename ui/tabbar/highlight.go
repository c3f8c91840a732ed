package tabbar

import (
	"math"
	"time"

	"github.com/charmbracelet/harmonica"
)

// Motion selects the spring used to move the highlight.
type Motion int

const (
	// Snappy is used when a tap commits a tab: quick, eased out, no overshoot.
	Snappy Motion = iota
	// DragSnappy follows the pointer during a drag: twice as fast, still no
	// bounce.
	DragSnappy
)

// response is the spring's settle period in seconds.
func (m Motion) response() float64 {
	if m == DragSnappy {
		return 0.25
	}
	return 0.5
}

// settleEpsilon is how close, in cells, position and velocity must get to
// the target before the highlight snaps and stops animating.
const settleEpsilon = 0.01

// DefaultFPS is the frame rate used when none is configured.
const DefaultFPS = 60

// Highlight interpolates the active capsule between button rects. The x
// position and the width each run on their own spring.
type Highlight struct {
	fps int

	x, vx float64
	w, vw float64
	y, h  float64

	target Rect
	spring harmonica.Spring

	placed    bool
	animating bool
}

// NewHighlight creates a highlight that steps at fps frames per second.
func NewHighlight(fps int) *Highlight {
	if fps <= 0 {
		fps = DefaultFPS
	}
	return &Highlight{fps: fps}
}

// FrameInterval is the delay between animation frames.
func (h *Highlight) FrameInterval() time.Duration {
	return time.Second / time.Duration(h.fps)
}

// Rect returns the highlight's current, possibly mid-flight, rect.
func (h *Highlight) Rect() Rect {
	return Rect{X: h.x, Y: h.y, W: h.w, H: h.h}
}

// Target returns the rect the highlight is heading to.
func (h *Highlight) Target() Rect {
	return h.target
}

// Animating reports whether more frames are needed.
func (h *Highlight) Animating() bool {
	return h.animating
}

// Snap jumps straight to r and stops any animation.
func (h *Highlight) Snap(r Rect) {
	h.target = r
	h.x, h.w, h.y, h.h = r.X, r.W, r.Y, r.H
	h.vx, h.vw = 0, 0
	h.placed = true
	h.animating = false
}

// MoveTo starts animating toward r with the given motion. The first
// placement always snaps, since there is no previous rect to slide from.
func (h *Highlight) MoveTo(r Rect, m Motion) {
	if !h.placed || r.IsZero() {
		h.Snap(r)
		return
	}
	if r == h.target && !h.animating {
		return
	}
	h.target = r
	h.y, h.h = r.Y, r.H
	angular := 2 * math.Pi / m.response()
	h.spring = harmonica.NewSpring(harmonica.FPS(h.fps), angular, 1.0)
	h.animating = true
}

// Step advances the animation by one frame and reports whether it is still
// running.
func (h *Highlight) Step() bool {
	if !h.animating {
		return false
	}
	h.x, h.vx = h.spring.Update(h.x, h.vx, h.target.X)
	h.w, h.vw = h.spring.Update(h.w, h.vw, h.target.W)

	if settled(h.x, h.vx, h.target.X) && settled(h.w, h.vw, h.target.W) {
		h.Snap(h.target)
	}
	return h.animating
}

func settled(pos, vel, target float64) bool {
	return math.Abs(pos-target) < settleEpsilon && math.Abs(vel) < settleEpsilon
}
