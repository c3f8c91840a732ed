package ui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/kastheco/capsule/log"
	"github.com/kastheco/capsule/tabs"
	"github.com/muesli/reflow/truncate"
)

// Page is the full-screen view shown for one tab.
type Page struct {
	Tab     tabs.Tab
	Caption string
	// Render draws the page. When nil the page shows its glyph, label and
	// caption centered.
	Render func(width int, height int) string
}

var defaultCaptions = [tabs.Count]string{
	"Everything starts here.",
	"Find what you are looking for.",
	"Nothing new since you last looked.",
	"Preferences and account.",
}

// DefaultPages returns one placeholder page per tab.
func DefaultPages() []Page {
	pages := make([]Page, 0, tabs.Count)
	for _, t := range tabs.All() {
		pages = append(pages, Page{Tab: t, Caption: defaultCaptions[t.Index()]})
	}
	return pages
}

var (
	pageGlyphStyle   = lipgloss.NewStyle().Foreground(ColorSubtle)
	pageTitleStyle   = lipgloss.NewStyle().Foreground(ColorText).Bold(true)
	pageCaptionStyle = lipgloss.NewStyle().Foreground(ColorMuted)
)

// ContentHost owns the active tab and shows the page for it. There is no
// tab strip of its own: the floating bar is the only way to switch.
type ContentHost struct {
	pages  [tabs.Count]Page
	active tabs.Tab

	width  int
	height int
	ascii  bool

	observers []func(tabs.Tab)
}

// NewContentHost creates a host starting on Home. Pages are keyed by their
// Tab; any tab without a page gets the default one.
func NewContentHost(pages ...Page) *ContentHost {
	h := &ContentHost{active: tabs.Home}
	for _, p := range DefaultPages() {
		h.pages[p.Tab.Index()] = p
	}
	for _, p := range pages {
		if !p.Tab.Valid() {
			log.WarningLog.Printf("ignoring page for unknown tab %d", int(p.Tab))
			continue
		}
		h.pages[p.Tab.Index()] = p
	}
	return h
}

// SetASCIIIcons switches page glyphs to the plain fallback set.
func (h *ContentHost) SetASCIIIcons(ascii bool) {
	h.ascii = ascii
}

// ActiveTab returns the tab whose page is shown.
func (h *ContentHost) ActiveTab() tabs.Tab {
	return h.active
}

// SetActiveTab switches the visible page and notifies observers. Invalid tabs
// and writes of the current value are ignored.
func (h *ContentHost) SetActiveTab(t tabs.Tab) {
	if !t.Valid() || t == h.active {
		return
	}
	h.active = t
	for _, fn := range h.observers {
		fn(t)
	}
}

// Subscribe registers fn to run after every active-tab change.
func (h *ContentHost) Subscribe(fn func(tabs.Tab)) {
	h.observers = append(h.observers, fn)
}

// Page returns the page registered for t.
func (h *ContentHost) Page(t tabs.Tab) Page {
	return h.pages[t.Index()]
}

// SetSize sets the area pages render into.
func (h *ContentHost) SetSize(width, height int) {
	h.width = width
	h.height = height
}

func (h *ContentHost) String() string {
	if h.width <= 0 || h.height <= 0 {
		return ""
	}
	p := h.pages[h.active.Index()]
	if p.Render != nil {
		return lipgloss.Place(h.width, h.height, lipgloss.Left, lipgloss.Top, p.Render(h.width, h.height))
	}

	caption := p.Caption
	if lipgloss.Width(caption) > h.width {
		caption = truncate.StringWithTail(caption, uint(h.width), "…")
	}
	block := lipgloss.JoinVertical(lipgloss.Center,
		pageGlyphStyle.Render(p.Tab.Glyph(h.ascii)),
		"",
		pageTitleStyle.Render(p.Tab.Label()),
		pageCaptionStyle.Render(caption),
	)
	return lipgloss.Place(h.width, h.height, lipgloss.Center, lipgloss.Center, block)
}
