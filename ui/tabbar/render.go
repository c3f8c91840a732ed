package tabbar

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/kastheco/capsule/tabs"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/truncate"
)

type cellRole int

const (
	roleBlank cellRole = iota
	roleEdge
	roleIcon
	roleLabel
)

// cellKey selects the style for a run of cells.
type cellKey struct {
	role cellRole
	// active marks the display-active button's icon and label.
	active bool
	// inside marks cells under the highlight's interior.
	inside bool
}

type cell struct {
	s    string
	key  cellKey
	skip bool // covered by the wide rune to its left
}

type cellStyles struct {
	palette Palette
	cache   map[cellKey]lipgloss.Style
}

func newCellStyles(p Palette) *cellStyles {
	return &cellStyles{palette: p, cache: make(map[cellKey]lipgloss.Style)}
}

func (c *cellStyles) get(k cellKey) lipgloss.Style {
	if st, ok := c.cache[k]; ok {
		return st
	}
	st := lipgloss.NewStyle()
	switch {
	case k.role == roleEdge:
		st = st.Foreground(c.palette.Accent)
	case k.role == roleBlank:
	case k.inside:
		// Under the highlight, including icons it is sliding across.
		st = st.Foreground(c.palette.Base)
	case k.active:
		st = st.Foreground(c.palette.Accent)
	default:
		st = st.Foreground(c.palette.Text)
	}
	if k.active {
		st = st.Bold(true)
	}
	if k.inside {
		st = st.Background(c.palette.Accent)
	}
	c.cache[k] = st
	return st
}

// renderRows draws the buttons and the highlight into a rows×width cell grid.
// Grid column 0 is local x = pad.
func (m *Model) renderRows(width, rows, pad int) string {
	if width <= 0 || rows <= 0 {
		return ""
	}
	grid := make([][]cell, rows)
	for r := range grid {
		grid[r] = make([]cell, width)
		for c := range grid[r] {
			grid[r][c] = cell{s: " "}
		}
	}

	m.drawHighlight(grid, pad)

	display := m.selection.Display()
	mid := rows / 2
	for i, r := range m.selection.Bounds() {
		tab, _ := tabs.FromIndex(i)
		start, w := r.Cells()
		content, iconW := m.buttonContent(tab, w)
		col := start - pad + (w-runewidth.StringWidth(content))/2
		writeText(grid[mid], col, content, iconW, tab == display)
	}

	var b strings.Builder
	for r, row := range grid {
		if r > 0 {
			b.WriteByte('\n')
		}
		m.writeRow(&b, row)
	}
	return b.String()
}

// buttonContent returns the glyph, followed by the label when labels are on
// and the button is wide enough. The highlight's edges and one cell of air on
// each side are kept clear.
func (m *Model) buttonContent(t tabs.Tab, buttonW int) (string, int) {
	glyph := t.Glyph(m.opts.ASCIIIcons)
	glyphW := runewidth.StringWidth(glyph)
	if !m.opts.ShowLabels {
		return glyph, glyphW
	}
	avail := buttonW - 4 - glyphW - 1
	if avail < 3 {
		return glyph, glyphW
	}
	label := t.Label()
	if runewidth.StringWidth(label) > avail {
		label = truncate.StringWithTail(label, uint(avail), "…")
	}
	return glyph + " " + label, glyphW
}

func (m *Model) drawHighlight(grid [][]cell, pad int) {
	start, w := m.highlight.Rect().Cells()
	start -= pad
	if w < 2 {
		return
	}
	rows := len(grid)
	end := start + w - 1
	put := func(r, c int, s string, k cellKey) {
		if c < 0 || c >= len(grid[r]) {
			return
		}
		grid[r][c] = cell{s: s, key: k}
	}
	edge := cellKey{role: roleEdge}
	for r := 0; r < rows; r++ {
		for c := start; c <= end; c++ {
			switch {
			case rows >= 3 && r == 0:
				put(r, c, horizontal(c, start, end, "╭", "╮"), edge)
			case rows >= 3 && r == rows-1:
				put(r, c, horizontal(c, start, end, "╰", "╯"), edge)
			case c == start:
				put(r, c, side(rows, "│", "("), edge)
			case c == end:
				put(r, c, side(rows, "│", ")"), edge)
			default:
				put(r, c, " ", cellKey{role: roleBlank, inside: true})
			}
		}
	}
}

func horizontal(c, start, end int, left, right string) string {
	switch c {
	case start:
		return left
	case end:
		return right
	}
	return "─"
}

// side picks the vertical edge glyph; short bars fall back to parentheses.
func side(rows int, tall, short string) string {
	if rows >= 3 {
		return tall
	}
	return short
}

// writeText lays s into row starting at col. The first iconW cells are the
// icon; the rest is label text.
func writeText(row []cell, col int, s string, iconW int, active bool) {
	x := col
	for _, r := range s {
		rw := runewidth.RuneWidth(r)
		if rw == 0 {
			continue
		}
		if x >= 0 && x+rw <= len(row) {
			role := roleLabel
			if x-col < iconW {
				role = roleIcon
			}
			inside := row[x].key.inside
			row[x] = cell{s: string(r), key: cellKey{role: role, active: active, inside: inside}}
			for k := 1; k < rw; k++ {
				row[x+k] = cell{skip: true}
			}
		}
		x += rw
	}
}

// writeRow renders runs of equally styled cells.
func (m *Model) writeRow(b *strings.Builder, row []cell) {
	var run strings.Builder
	var key cellKey
	flush := func() {
		if run.Len() == 0 {
			return
		}
		b.WriteString(m.styles.get(key).Render(run.String()))
		run.Reset()
	}
	for i, c := range row {
		if c.skip {
			continue
		}
		if i > 0 && c.key != key {
			flush()
		}
		key = c.key
		run.WriteString(c.s)
	}
	flush()
}
