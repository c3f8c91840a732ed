package app

import (
	"context"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/kastheco/capsule/config"
	"github.com/kastheco/capsule/keys"
	"github.com/kastheco/capsule/log"
	"github.com/kastheco/capsule/tabs"
	"github.com/kastheco/capsule/ui"
	"github.com/kastheco/capsule/ui/tabbar"
	zone "github.com/lrstanley/bubblezone"
)

// statusBarHeight is the number of rows above the page content.
const statusBarHeight = 1

// Run is the main entrypoint into the application.
func Run(ctx context.Context, cfg *config.Config) error {
	// Set the terminal's default background to the theme base color so the
	// cells around the floating bar blend into the page.
	restore := ui.SetTerminalBackground(ui.ColorBase)
	defer restore()

	zones := zone.New()
	defer zones.Close()

	p := tea.NewProgram(
		newHome(ctx, cfg, zones),
		tea.WithContext(ctx),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(), // press, drag motion and release
		tea.WithReportFocus(),     // blur cancels a drag
	)
	_, err := p.Run()
	return err
}

type home struct {
	ctx context.Context

	// appConfig stores persistent application configuration
	appConfig *config.Config

	// -- UI Components --

	// content owns the active tab and shows its page
	content *ui.ContentHost
	// bar is the floating tab bar bound to content
	bar *tabbar.Model
	// statusBar is the top row
	statusBar *ui.StatusBar
	// help renders the key bindings
	help help.Model
	// zones tracks marked regions for mouse hit detection
	zones *zone.Manager

	// -- State --

	showHelp   bool
	termWidth  int
	termHeight int
}

func newHome(ctx context.Context, cfg *config.Config, zones *zone.Manager) *home {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	accent, err := ui.ParseAccent(cfg.AccentColor)
	if err != nil {
		log.WarningLog.Printf("%v, using default", err)
		accent = ui.ColorPine
	}

	h := &home{
		ctx:       ctx,
		appConfig: cfg,
		content:   ui.NewContentHost(),
		statusBar: ui.NewStatusBar(zones),
		help:      help.New(),
		zones:     zones,
	}
	h.content.SetASCIIIcons(cfg.ASCIIIcons)
	h.content.Subscribe(func(t tabs.Tab) {
		log.InfoLog.Printf("active tab is now %s", t)
	})
	h.bar = tabbar.New(h.content, tabbar.Options{
		FPS:        cfg.FPS,
		Animate:    cfg.IsAnimationEnabled(),
		ShowLabels: cfg.ShowLabels,
		ASCIIIcons: cfg.ASCIIIcons,
		Palette:    ui.BarPalette(accent),
		Zone:       zones,
	})
	h.help.ShowAll = true
	h.help.Styles.FullKey = lipgloss.NewStyle().Foreground(ui.ColorPine)
	h.help.Styles.FullDesc = lipgloss.NewStyle().Foreground(ui.ColorSubtle)
	h.help.Styles.FullSeparator = lipgloss.NewStyle().Foreground(ui.ColorOverlay)
	h.updateStatusBar()
	return h
}

// updateHandleWindowSizeEvent sets the sizes of the components.
func (m *home) updateHandleWindowSizeEvent(msg tea.WindowSizeMsg) {
	m.termWidth = msg.Width
	m.termHeight = msg.Height

	contentHeight := max(msg.Height-statusBarHeight, 0)
	m.statusBar.SetSize(msg.Width)
	m.content.SetSize(msg.Width, contentHeight)
	m.help.Width = msg.Width
	m.bar.SetSize(msg.Width)
}

// updateStatusBar mirrors the committed tab and any drag preview.
func (m *home) updateStatusBar() {
	data := ui.StatusBarData{
		Active: m.content.ActiveTab().Label(),
		Hint:   keys.GlobalkeyBindings[keys.KeyHelp].Help().Key + " help",
	}
	if t, ok := m.bar.Selection().Dragging(); ok {
		data.Preview = t.Label()
	}
	m.statusBar.SetData(data)
}

func (m *home) Init() tea.Cmd {
	return m.bar.Init()
}

func (m *home) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.updateHandleWindowSizeEvent(msg)
	case tea.KeyMsg:
		_, cmd = m.handleKeyPress(msg)
	case tea.MouseMsg:
		cmd = m.handleMouse(msg)
	case tea.BlurMsg:
		// Losing focus mid-drag ends the drag like a release.
		cmd = m.bar.Cancel()
	case tabbar.FrameMsg:
		_, cmd = m.bar.Update(msg)
	}
	m.updateStatusBar()
	return m, cmd
}

func (m *home) handleQuit() (tea.Model, tea.Cmd) {
	// A drag still in flight commits before exit.
	m.bar.Cancel()
	return m, tea.Quit
}

func (m *home) View() string {
	if m.termWidth == 0 || m.termHeight == 0 {
		return ""
	}
	contentHeight := max(m.termHeight-statusBarHeight, 0)

	page := m.content.String()
	if m.showHelp {
		page = m.helpView(contentHeight)
	}
	page = ui.OverlayBottom(ui.FitHeight(page, contentHeight), m.bar.View())

	result := lipgloss.JoinVertical(lipgloss.Left, m.statusBar.String(), page)
	result = m.zones.Scan(result)
	return ui.FitHeight(result, m.termHeight)
}
