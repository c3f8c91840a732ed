package tabbar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHighlight_FirstPlacementSnaps(t *testing.T) {
	h := NewHighlight(60)
	r := Rect{X: 1, Y: 1, W: 19, H: 3}
	h.MoveTo(r, Snappy)
	assert.False(t, h.Animating())
	assert.Equal(t, r, h.Rect())
}

func TestHighlight_ConvergesWithoutOvershoot(t *testing.T) {
	h := NewHighlight(60)
	from := Rect{X: 1, Y: 1, W: 19, H: 3}
	to := Rect{X: 58, Y: 1, W: 19, H: 3}
	h.Snap(from)
	h.MoveTo(to, Snappy)
	require.True(t, h.Animating())

	prev := h.Rect().X
	frames := 0
	for h.Step() {
		frames++
		x := h.Rect().X
		assert.LessOrEqual(t, x, to.X+settleEpsilon, "critically damped spring must not overshoot")
		assert.GreaterOrEqual(t, x, prev-settleEpsilon, "motion toward the target is monotonic")
		prev = x
		require.Less(t, frames, 600, "highlight never settled")
	}
	assert.Equal(t, to, h.Rect())
	assert.False(t, h.Animating())
}

func TestHighlight_DragMotionSettlesFaster(t *testing.T) {
	run := func(m Motion) int {
		h := NewHighlight(60)
		h.Snap(Rect{X: 1, Y: 1, W: 19, H: 3})
		h.MoveTo(Rect{X: 58, Y: 1, W: 19, H: 3}, m)
		n := 0
		for h.Step() {
			n++
		}
		return n
	}
	assert.Less(t, run(DragSnappy), run(Snappy))
}

func TestHighlight_RetargetMidFlight(t *testing.T) {
	h := NewHighlight(60)
	h.Snap(Rect{X: 1, Y: 1, W: 19, H: 3})
	h.MoveTo(Rect{X: 58, Y: 1, W: 19, H: 3}, DragSnappy)
	for i := 0; i < 3; i++ {
		h.Step()
	}
	mid := h.Rect().X
	assert.Greater(t, mid, 1.0)

	h.MoveTo(Rect{X: 20, Y: 1, W: 19, H: 3}, DragSnappy)
	for h.Step() {
	}
	assert.Equal(t, 20.0, h.Rect().X)
}

func TestHighlight_SameTargetIsNoop(t *testing.T) {
	h := NewHighlight(60)
	r := Rect{X: 1, Y: 1, W: 19, H: 3}
	h.Snap(r)
	h.MoveTo(r, Snappy)
	assert.False(t, h.Animating())
	assert.False(t, h.Step())
}

func TestHighlight_FrameInterval(t *testing.T) {
	assert.Equal(t, time.Second/30, NewHighlight(30).FrameInterval())
	assert.Equal(t, time.Second/DefaultFPS, NewHighlight(0).FrameInterval())
}
