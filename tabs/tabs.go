package tabs

// Tab identifies one of the fixed destinations in the tab bar.
type Tab int

const (
	Home Tab = iota
	Search
	Notifications
	Settings
)

// Count is the number of tabs. The set never changes at runtime.
const Count = 4

var all = [Count]Tab{Home, Search, Notifications, Settings}

var labels = [Count]string{"Home", "Search", "Notifications", "Settings"}

// Icon identifiers, named after the symbols the bar was designed with.
var icons = [Count]string{"house", "magnifyingglass", "bell", "gearshape"}

// Nerd Font glyphs for each icon, plus a plain fallback for terminals
// without a patched font.
var (
	glyphs      = [Count]string{"\uf015", "\uf002", "\uf0f3", "\uf013"}
	asciiGlyphs = [Count]string{"⌂", "?", "!", "*"}
)

// All returns every tab in display order.
func All() []Tab {
	out := make([]Tab, Count)
	copy(out, all[:])
	return out
}

// FromIndex returns the tab at ordinal i.
func FromIndex(i int) (Tab, bool) {
	if i < 0 || i >= Count {
		return Home, false
	}
	return all[i], true
}

// Valid reports whether t is one of the defined tabs.
func (t Tab) Valid() bool {
	return t >= Home && t <= Settings
}

// Index returns the tab's ordinal position.
func (t Tab) Index() int {
	return int(t)
}

// Label returns the display label.
func (t Tab) Label() string {
	if !t.Valid() {
		return ""
	}
	return labels[t]
}

// Icon returns the icon identifier.
func (t Tab) Icon() string {
	if !t.Valid() {
		return ""
	}
	return icons[t]
}

// Glyph returns the terminal glyph for the tab's icon.
func (t Tab) Glyph(ascii bool) string {
	if !t.Valid() {
		return ""
	}
	if ascii {
		return asciiGlyphs[t]
	}
	return glyphs[t]
}

// Next returns the tab after t, wrapping around.
func (t Tab) Next() Tab {
	return all[(t.Index()+1)%Count]
}

// Prev returns the tab before t, wrapping around.
func (t Tab) Prev() Tab {
	return all[(t.Index()-1+Count)%Count]
}

func (t Tab) String() string {
	if !t.Valid() {
		return "Tab(?)"
	}
	return labels[t]
}
