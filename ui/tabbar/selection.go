package tabbar

import (
	"fmt"

	"github.com/kastheco/capsule/tabs"
)

// ActiveTabBinding is the write path to whoever owns the active tab. The bar
// never stores the canonical value; it reads it and proposes changes here.
type ActiveTabBinding interface {
	ActiveTab() tabs.Tab
	SetActiveTab(tabs.Tab)
}

// State is the phase of the selection interaction.
type State string

const (
	StateIdle     State = "idle"
	StateDragging State = "dragging"
)

// Event is a gesture that can move the selection between states.
type Event string

const (
	EventTap       Event = "tap"
	EventDragStart Event = "drag_start"
	EventDragMove  Event = "drag_move"
	EventDragEnd   Event = "drag_end"
)

// transitionTable defines all valid state transitions.
// Key: current state → event → new state.
var transitionTable = map[State]map[Event]State{
	StateIdle: {
		EventTap:       StateIdle,
		EventDragStart: StateDragging,
	},
	StateDragging: {
		EventTap:      StateIdle,
		EventDragMove: StateDragging,
		EventDragEnd:  StateIdle,
	},
}

// ApplyTransition returns the new state for the given current state and event.
// Returns an error if the transition is not valid.
func ApplyTransition(current State, event Event) (State, error) {
	events, ok := transitionTable[current]
	if !ok {
		return "", fmt.Errorf("no transitions defined for state %q", current)
	}
	next, ok := events[event]
	if !ok {
		return "", fmt.Errorf("invalid transition: %q + %q", current, event)
	}
	return next, nil
}

// Selection resolves taps and drags into active-tab changes. It holds the
// transient drag preview and the measured button bounds.
type Selection struct {
	binding ActiveTabBinding

	state    State
	dragging tabs.Tab
	hasDrag  bool

	bounds [tabs.Count]Rect
}

// NewSelection creates an idle selection bound to the active-tab owner.
func NewSelection(binding ActiveTabBinding) *Selection {
	return &Selection{binding: binding, state: StateIdle}
}

// State returns the current interaction phase.
func (s *Selection) State() State {
	return s.state
}

// Active returns the committed active tab.
func (s *Selection) Active() tabs.Tab {
	return s.binding.ActiveTab()
}

// Dragging returns the tab under the pointer during a drag, if any.
func (s *Selection) Dragging() (tabs.Tab, bool) {
	return s.dragging, s.hasDrag
}

// Display returns the tab the highlight should follow: the drag preview when
// there is one, otherwise the active tab.
func (s *Selection) Display() tabs.Tab {
	if s.hasDrag {
		return s.dragging
	}
	return s.binding.ActiveTab()
}

// Bounds returns the last measured button rects.
func (s *Selection) Bounds() [tabs.Count]Rect {
	return s.bounds
}

// Measure records the rect of the button at ordinal i.
func (s *Selection) Measure(i int, r Rect) {
	if i < 0 || i >= tabs.Count {
		return
	}
	s.bounds[i] = r
}

// MeasureAll replaces every button rect from a layout pass.
func (s *Selection) MeasureAll(rects [tabs.Count]Rect) {
	s.bounds = rects
}

// HitTest returns the first button whose rect contains p.
func (s *Selection) HitTest(p Point) (tabs.Tab, bool) {
	for i, r := range s.bounds {
		if r.Contains(p) {
			return tabs.FromIndex(i)
		}
	}
	return tabs.Home, false
}

func (s *Selection) advance(e Event) bool {
	next, err := ApplyTransition(s.state, e)
	if err != nil {
		return false
	}
	s.state = next
	return true
}

// Tap commits t immediately. Any drag preview is dropped without committing.
func (s *Selection) Tap(t tabs.Tab) {
	if !t.Valid() || !s.advance(EventTap) {
		return
	}
	s.clearDrag()
	if s.binding.ActiveTab() != t {
		s.binding.SetActiveTab(t)
	}
}

// BeginDrag starts a drag from the button for source. Only the active
// button can start a drag; any other source is refused with no state change.
func (s *Selection) BeginDrag(source tabs.Tab) bool {
	if source != s.binding.ActiveTab() || s.state != StateIdle {
		return false
	}
	return s.advance(EventDragStart)
}

// DragTo moves the drag preview to the first button containing p. When no
// button contains p the preview keeps its previous value. It returns the
// preview and whether one is set.
func (s *Selection) DragTo(p Point) (tabs.Tab, bool) {
	if !s.advance(EventDragMove) {
		return s.Dragging()
	}
	if t, ok := s.HitTest(p); ok {
		s.dragging, s.hasDrag = t, true
	}
	return s.Dragging()
}

// EndDrag finishes a drag: the preview, if any, becomes the active tab and
// is then cleared unconditionally. It reports whether a commit happened.
func (s *Selection) EndDrag() bool {
	if !s.advance(EventDragEnd) {
		return false
	}
	t, ok := s.dragging, s.hasDrag
	s.clearDrag()
	if !ok {
		return false
	}
	if s.binding.ActiveTab() != t {
		s.binding.SetActiveTab(t)
	}
	return true
}

// CancelDrag handles a drag interrupted by the system. It behaves exactly
// like a release.
func (s *Selection) CancelDrag() bool {
	return s.EndDrag()
}

func (s *Selection) clearDrag() {
	s.dragging, s.hasDrag = tabs.Home, false
}
