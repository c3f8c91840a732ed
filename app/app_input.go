package app

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/kastheco/capsule/keys"
	"github.com/kastheco/capsule/log"
	"github.com/kastheco/capsule/tabs"
	"github.com/kastheco/capsule/ui"
)

func (m *home) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	name, ok := keys.GlobalKeyStringsMap[msg.String()]
	if !ok {
		return m, nil
	}

	active := m.content.ActiveTab()
	switch name {
	case keys.KeyHome, keys.KeySearch, keys.KeyNotifications, keys.KeySettings:
		t, ok := tabs.FromIndex(int(name - keys.KeyHome))
		if !ok {
			return m, nil
		}
		return m, m.bar.Tap(t)
	case keys.KeyPrev, keys.KeyCycleBack:
		return m, m.bar.Tap(active.Prev())
	case keys.KeyNext, keys.KeyCycle:
		return m, m.bar.Tap(active.Next())
	case keys.KeyCancel:
		if m.showHelp {
			m.showHelp = false
			return m, nil
		}
		return m, m.bar.Cancel()
	case keys.KeyHelp:
		m.showHelp = !m.showHelp
		return m, nil
	case keys.KeyQuit:
		return m.handleQuit()
	}
	return m, nil
}

// handleMouse routes a mouse event to the help hint or the tab bar.
func (m *home) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
		if z := m.zones.Get(ui.ZoneHelp); z != nil && z.InBounds(msg) {
			m.showHelp = !m.showHelp
			return nil
		}
	}

	x, y := m.barOrigin()
	return m.bar.HandleMouse(msg, x, y)
}

// barOrigin returns the screen cell of the capsule's top-left corner. The
// zone is scanned asynchronously, so until it is available the origin is
// derived from the layout: the bar sits at the bottom of the screen.
func (m *home) barOrigin() (int, int) {
	if z := m.zones.Get(ui.ZoneTabBar); z != nil && !z.IsZero() {
		return z.StartX, z.StartY
	}
	return m.layoutOrigin()
}

func (m *home) layoutOrigin() (int, int) {
	capsule := m.bar.Frame().Capsule
	y := m.termHeight - m.bar.Height() + int(capsule.Y)
	if y < 0 {
		log.WarningLog.Printf("terminal too short for the tab bar: %d rows", m.termHeight)
		y = 0
	}
	return int(capsule.X), y
}
