package tabbar

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/kastheco/capsule/log"
	"github.com/kastheco/capsule/tabs"
	zone "github.com/lrstanley/bubblezone"
)

// ZoneID marks the capsule in the rendered view. Its top-left corner is the
// origin of the bar's local coordinate space.
const ZoneID = "zone-tab-bar"

// Palette is the set of colors the bar draws with. Accent is the only
// user-configurable one.
type Palette struct {
	Accent lipgloss.TerminalColor
	Text   lipgloss.TerminalColor
	Muted  lipgloss.TerminalColor
	Base   lipgloss.TerminalColor
}

func (p Palette) withDefaults() Palette {
	for _, c := range []*lipgloss.TerminalColor{&p.Accent, &p.Text, &p.Muted, &p.Base} {
		if *c == nil {
			*c = lipgloss.NoColor{}
		}
	}
	return p
}

// Options configures a Model.
type Options struct {
	Metrics    Metrics
	FPS        int
	Animate    bool
	ShowLabels bool
	ASCIIIcons bool
	Palette    Palette
	// Zone, when set, is used to mark the capsule for hit detection.
	Zone *zone.Manager
}

// FrameMsg advances the highlight animation by one frame.
type FrameMsg time.Time

// Model is the floating tab bar: a capsule of equal-width buttons with a
// highlight that follows the active tab, or the tab under the pointer while
// dragging.
type Model struct {
	opts Options

	selection *Selection
	highlight *Highlight
	frame     Frame

	// tap candidate armed by a press on an inactive button
	pressed tabs.Tab
	armed   bool

	ticking bool
	styles  *cellStyles
}

// New creates a tab bar that reads and writes the active tab through binding.
func New(binding ActiveTabBinding, opts Options) *Model {
	if opts.Metrics == (Metrics{}) {
		opts.Metrics = TerminalMetrics
	}
	opts.Palette = opts.Palette.withDefaults()
	return &Model{
		opts:      opts,
		selection: NewSelection(binding),
		highlight: NewHighlight(opts.FPS),
		styles:    newCellStyles(opts.Palette),
	}
}

// Selection exposes the gesture state machine.
func (m *Model) Selection() *Selection {
	return m.selection
}

// Highlight exposes the highlight animator.
func (m *Model) Highlight() *Highlight {
	return m.highlight
}

// Frame returns the last layout pass.
func (m *Model) Frame() Frame {
	return m.frame
}

// Height is the number of rows the bar occupies, bottom margin included.
func (m *Model) Height() int {
	return int(m.opts.Metrics.TotalHeight())
}

// SetSize reruns the layout pass for a new width, re-measures every button
// and snaps the highlight onto its button.
func (m *Model) SetSize(width int) {
	m.frame = Layout(float64(width), m.opts.Metrics)
	m.selection.MeasureAll(m.frame.Buttons)
	m.highlight.Snap(m.frame.Buttons[m.selection.Display().Index()])
	log.InfoLog.Printf("tab bar laid out at width %d: capsule %+v", width, m.frame.Capsule)
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model. Mouse input is routed through HandleMouse by
// the owner, which knows where the bar sits on screen.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg.(type) {
	case FrameMsg:
		if m.highlight.Step() {
			return m, m.frameCmd()
		}
		m.ticking = false
	}
	return m, nil
}

// HandleMouse interprets a mouse event whose screen position is translated
// by origin, the screen cell of the capsule's top-left corner. Drags are
// always interpreted in this stable local space, never relative to the
// moving highlight.
func (m *Model) HandleMouse(msg tea.MouseMsg, originX, originY int) tea.Cmd {
	p := CellCenter(msg.X-originX, msg.Y-originY)
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return nil
		}
		return m.Press(p)
	case tea.MouseActionMotion:
		return m.Move(p)
	case tea.MouseActionRelease:
		return m.Release(p)
	}
	return nil
}

// Press handles a left press at local point p. A press on the active button
// starts a drag; a press on any other button arms a tap.
func (m *Model) Press(p Point) tea.Cmd {
	m.armed = false
	t, ok := m.selection.HitTest(p)
	if !ok {
		return nil
	}
	if m.selection.BeginDrag(t) {
		return nil
	}
	m.pressed, m.armed = t, true
	return nil
}

// Move handles pointer motion while the button is held.
func (m *Model) Move(p Point) tea.Cmd {
	if m.selection.State() != StateDragging {
		return nil
	}
	before := m.selection.Display()
	m.selection.DragTo(p)
	if m.selection.Display() == before {
		return nil
	}
	return m.retarget(DragSnappy)
}

// Release handles the button coming up. It ends a drag, or completes an
// armed tap when released over the same button.
func (m *Model) Release(p Point) tea.Cmd {
	if m.selection.State() == StateDragging {
		m.selection.EndDrag()
		return m.retarget(Snappy)
	}
	if !m.armed {
		return nil
	}
	m.armed = false
	if t, ok := m.selection.HitTest(p); ok && t == m.pressed {
		return m.Tap(t)
	}
	return nil
}

// Tap commits t as the active tab.
func (m *Model) Tap(t tabs.Tab) tea.Cmd {
	m.armed = false
	m.selection.Tap(t)
	return m.retarget(Snappy)
}

// Cancel ends an in-progress drag as if it were released.
func (m *Model) Cancel() tea.Cmd {
	m.armed = false
	if m.selection.State() != StateDragging {
		return nil
	}
	m.selection.CancelDrag()
	return m.retarget(Snappy)
}

// Sync moves the highlight to the display-active tab after the active tab
// changed outside the bar.
func (m *Model) Sync() tea.Cmd {
	return m.retarget(Snappy)
}

func (m *Model) retarget(motion Motion) tea.Cmd {
	target := m.frame.Buttons[m.selection.Display().Index()]
	if !m.opts.Animate {
		m.highlight.Snap(target)
		return nil
	}
	m.highlight.MoveTo(target, motion)
	if !m.highlight.Animating() || m.ticking {
		return nil
	}
	m.ticking = true
	return m.frameCmd()
}

func (m *Model) frameCmd() tea.Cmd {
	return tea.Tick(m.highlight.FrameInterval(), func(t time.Time) tea.Msg {
		return FrameMsg(t)
	})
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.frame.Capsule.IsZero() {
		return ""
	}
	met := m.opts.Metrics
	pad := int(met.Padding)
	innerW := int(m.frame.Capsule.W) - 2*pad

	rows := m.renderRows(innerW, int(met.Height), pad)

	// The border occupies the first cell of padding.
	inset := max(pad-1, 0)
	capsule := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(m.opts.Palette.Muted).
		Padding(inset).
		Width(innerW + 2*inset).
		Render(rows)
	if m.opts.Zone != nil {
		capsule = m.opts.Zone.Mark(ZoneID, capsule)
	}
	return lipgloss.NewStyle().
		MarginLeft(int(met.MarginX)).
		MarginBottom(int(met.MarginBottom)).
		Render(capsule)
}
