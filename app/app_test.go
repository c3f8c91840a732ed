package app

import (
	"context"
	"os"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/kastheco/capsule/config"
	"github.com/kastheco/capsule/log"
	"github.com/kastheco/capsule/tabs"
	"github.com/kastheco/capsule/ui/tabbar"
	zone "github.com/lrstanley/bubblezone"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestMain runs before all tests to set up the test environment
func TestMain(m *testing.M) {
	// Initialize the logger before any tests run
	log.Initialize(false)
	defer log.Close()

	exitCode := m.Run()
	os.Exit(exitCode)
}

const (
	testWidth  = 80
	testHeight = 24
)

func newTestHome(t *testing.T, cfg *config.Config) *home {
	t.Helper()
	zones := zone.New()
	t.Cleanup(zones.Close)
	h := newHome(context.Background(), cfg, zones)
	h.Update(tea.WindowSizeMsg{Width: testWidth, Height: testHeight})
	return h
}

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// buttonCenter returns the screen cell in the middle of tab's button.
func buttonCenter(h *home, tab tabs.Tab) (int, int) {
	ox, oy := h.layoutOrigin()
	start, w := h.bar.Frame().Buttons[tab.Index()].Cells()
	return ox + start + w/2, oy + 2
}

func mouseMsg(action tea.MouseAction, x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: action, Button: tea.MouseButtonLeft}
}

func TestHome_StartsOnHome(t *testing.T) {
	h := newTestHome(t, nil)
	assert.Equal(t, tabs.Home, h.content.ActiveTab())
	assert.Nil(t, h.Init())
}

func TestHome_WindowSizeLaysOutBar(t *testing.T) {
	h := newTestHome(t, config.DefaultConfig())
	capsule := h.bar.Frame().Capsule
	assert.Equal(t, float64(testWidth)-2*tabbar.TerminalMetrics.MarginX, capsule.W)

	x, y := h.layoutOrigin()
	assert.Equal(t, int(tabbar.TerminalMetrics.MarginX), x)
	assert.Equal(t, testHeight-h.bar.Height(), y)
}

func TestHome_NumberKeysSelectTabs(t *testing.T) {
	h := newTestHome(t, config.DefaultConfig())
	for i, tab := range tabs.All() {
		h.Update(runeKey(string(rune('1' + i))))
		assert.Equal(t, tab, h.content.ActiveTab())
	}
}

func TestHome_ArrowAndTabKeysCycle(t *testing.T) {
	h := newTestHome(t, config.DefaultConfig())

	h.Update(tea.KeyMsg{Type: tea.KeyLeft})
	assert.Equal(t, tabs.Settings, h.content.ActiveTab(), "left wraps from the first tab")

	h.Update(tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, tabs.Home, h.content.ActiveTab())

	h.Update(runeKey("l"))
	assert.Equal(t, tabs.Search, h.content.ActiveTab())

	h.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	h.Update(runeKey("h"))
	assert.Equal(t, tabs.Settings, h.content.ActiveTab())
}

func TestHome_KeySelectionAnimatesHighlight(t *testing.T) {
	h := newTestHome(t, config.DefaultConfig())
	_, cmd := h.Update(runeKey("3"))
	assert.NotNil(t, cmd)
	assert.True(t, h.bar.Highlight().Animating())
	assert.Equal(t, h.bar.Frame().Buttons[tabs.Notifications.Index()], h.bar.Highlight().Target())
}

func TestHome_ClickSelectsTab(t *testing.T) {
	h := newTestHome(t, config.DefaultConfig())
	x, y := buttonCenter(h, tabs.Settings)

	h.Update(mouseMsg(tea.MouseActionPress, x, y))
	assert.Equal(t, tabs.Home, h.content.ActiveTab())
	h.Update(mouseMsg(tea.MouseActionRelease, x, y))
	assert.Equal(t, tabs.Settings, h.content.ActiveTab())
}

func TestHome_DragShowsPreviewThenCommits(t *testing.T) {
	h := newTestHome(t, config.DefaultConfig())
	hx, hy := buttonCenter(h, tabs.Home)
	nx, ny := buttonCenter(h, tabs.Notifications)

	h.Update(mouseMsg(tea.MouseActionPress, hx, hy))
	h.Update(mouseMsg(tea.MouseActionMotion, nx, ny))
	assert.Equal(t, tabs.Home, h.content.ActiveTab(), "dragging does not commit")
	assert.Contains(t, h.statusBar.String(), "→ "+tabs.Notifications.Label())

	h.Update(mouseMsg(tea.MouseActionRelease, nx, ny))
	assert.Equal(t, tabs.Notifications, h.content.ActiveTab())
	assert.NotContains(t, h.statusBar.String(), "→")
}

func TestHome_BlurEndsDrag(t *testing.T) {
	h := newTestHome(t, config.DefaultConfig())
	hx, hy := buttonCenter(h, tabs.Home)
	sx, sy := buttonCenter(h, tabs.Search)

	h.Update(mouseMsg(tea.MouseActionPress, hx, hy))
	h.Update(mouseMsg(tea.MouseActionMotion, sx, sy))
	h.Update(tea.BlurMsg{})

	assert.Equal(t, tabs.Search, h.content.ActiveTab())
	assert.Equal(t, tabbar.StateIdle, h.bar.Selection().State())
}

func TestHome_EscEndsDrag(t *testing.T) {
	h := newTestHome(t, config.DefaultConfig())
	hx, hy := buttonCenter(h, tabs.Home)
	gx, gy := buttonCenter(h, tabs.Settings)

	h.Update(mouseMsg(tea.MouseActionPress, hx, hy))
	h.Update(mouseMsg(tea.MouseActionMotion, gx, gy))
	h.Update(tea.KeyMsg{Type: tea.KeyEsc})

	assert.Equal(t, tabs.Settings, h.content.ActiveTab())
	assert.Equal(t, tabbar.StateIdle, h.bar.Selection().State())
}

func TestHome_KeyDuringDragDropsPreview(t *testing.T) {
	h := newTestHome(t, config.DefaultConfig())
	hx, hy := buttonCenter(h, tabs.Home)
	gx, gy := buttonCenter(h, tabs.Settings)

	h.Update(mouseMsg(tea.MouseActionPress, hx, hy))
	h.Update(mouseMsg(tea.MouseActionMotion, gx, gy))
	h.Update(runeKey("2"))

	assert.Equal(t, tabs.Search, h.content.ActiveTab())
	_, dragging := h.bar.Selection().Dragging()
	assert.False(t, dragging)
}

func TestHome_HelpToggle(t *testing.T) {
	h := newTestHome(t, config.DefaultConfig())

	h.Update(runeKey("?"))
	require.True(t, h.showHelp)
	assert.Contains(t, h.View(), "drag the highlight")

	h.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, h.showHelp)
}

func TestHome_Quit(t *testing.T) {
	h := newTestHome(t, config.DefaultConfig())
	_, cmd := h.Update(runeKey("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestHome_ViewFillsScreen(t *testing.T) {
	h := newTestHome(t, config.DefaultConfig())
	view := h.View()

	lines := strings.Split(view, "\n")
	assert.Len(t, lines, testHeight)
	assert.Contains(t, lines[0], "capsule")
	assert.Contains(t, view, "╭")
}

func TestHome_ViewEmptyBeforeSize(t *testing.T) {
	zones := zone.New()
	defer zones.Close()
	h := newHome(context.Background(), config.DefaultConfig(), zones)
	assert.Empty(t, h.View())
}

func TestHome_InvalidAccentFallsBack(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.AccentColor = "nope"
	h := newTestHome(t, cfg)
	assert.NotEmpty(t, h.View())
}

func TestHome_FrameMessagesDriveAnimation(t *testing.T) {
	h := newTestHome(t, config.DefaultConfig())
	_, cmd := h.Update(runeKey("4"))
	for i := 0; cmd != nil; i++ {
		require.Less(t, i, 1000, "animation never settled")
		_, cmd = h.Update(tabbar.FrameMsg{})
	}
	assert.Equal(t, h.bar.Frame().Buttons[tabs.Settings.Index()], h.bar.Highlight().Rect())
}
