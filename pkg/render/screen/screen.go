package screen

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/matzehuels/dragbox/pkg/dom"
)

// Theme supplies colors for nodes that do not set their own. Empty fields
// leave the terminal default.
type Theme struct {
	Foreground string
	Background string
	Border     string
}

// Options configures [Render].
type Options struct {
	Theme Theme

	// Plain disables colors and attributes; only characters are drawn.
	Plain bool
}

// attrs are the visual attributes of one cell.
type attrs struct {
	fg, bg string
	bold   bool
	faint  bool
}

type cell struct {
	ch string
	attrs
}

// canvas is a fixed-size grid of cells clipped to the viewport.
type canvas struct {
	w, h  int
	cells [][]cell
}

func newCanvas(w, h int) *canvas {
	c := &canvas{w: max(w, 0), h: max(h, 0)}
	c.cells = make([][]cell, c.h)
	for y := range c.cells {
		row := make([]cell, c.w)
		for x := range row {
			row[x].ch = " "
		}
		c.cells[y] = row
	}
	return c
}

func (c *canvas) set(x, y int, ch string, a attrs) {
	if x < 0 || y < 0 || x >= c.w || y >= c.h {
		return
	}
	c.cells[y][x] = cell{ch: ch, attrs: a}
}

// Render draws doc's painted nodes onto a grid the size of the viewport and
// returns it as newline-separated rows. Nodes are drawn in paint order, so
// positioned nodes such as drag ghosts appear on top. Nodes whose effective
// opacity is below 1 are drawn faint.
func Render(doc *dom.Document, opts Options) string {
	w, h := doc.Window().Size()
	c := newCanvas(int(w), int(h))

	for _, n := range doc.PaintOrder() {
		drawNode(c, doc, n, opts.Theme)
	}
	return c.String(opts.Plain)
}

func drawNode(c *canvas, doc *dom.Document, n *dom.Node, theme Theme) {
	r := doc.Rect(n)
	if r.Empty() {
		return
	}
	s := n.Style()
	base := attrs{
		fg:    firstNonEmpty(s.Get(dom.PropColor), theme.Foreground),
		bg:    firstNonEmpty(s.Get(dom.PropBackground), theme.Background),
		bold:  s.Get(dom.PropFontWeight) == "bold",
		faint: effectiveOpacity(n) < 1,
	}

	x0, y0 := int(r.Left), int(r.Top)
	x1, y1 := int(r.Right), int(r.Bottom)

	if s.Get(dom.PropBackground) != "" || (n == doc.Body() && base.bg != "") {
		for y := y0; y < y1; y++ {
			for x := x0; x < x1; x++ {
				c.set(x, y, " ", base)
			}
		}
	}

	inset := 0
	if b, ok := dom.BorderStyle(s.Get(dom.PropBorder)); ok {
		inset = 1
		ba := base
		ba.fg = firstNonEmpty(s.Get(dom.PropBorderColor), theme.Border, base.fg)
		drawBorder(c, b, x0, y0, x1-1, y1-1, ba)
	}

	if n.Text() == "" {
		return
	}
	padV, padH := dom.ParsePadding(s.Get(dom.PropPadding))
	tx := x0 + inset + int(padH)
	ty := y0 + inset + int(padV)
	maxX := x1 - inset - int(padH)
	maxY := y1 - inset - int(padV)
	for i, line := range strings.Split(ansi.Strip(n.Text()), "\n") {
		y := ty + i
		if y >= maxY {
			break
		}
		x := tx
		for _, ch := range line {
			if x >= maxX {
				break
			}
			c.set(x, y, string(ch), base)
			x++
		}
	}
}

func drawBorder(c *canvas, b lipgloss.Border, x0, y0, x1, y1 int, a attrs) {
	if x1 <= x0 || y1 <= y0 {
		return
	}
	for x := x0 + 1; x < x1; x++ {
		c.set(x, y0, b.Top, a)
		c.set(x, y1, b.Bottom, a)
	}
	for y := y0 + 1; y < y1; y++ {
		c.set(x0, y, b.Left, a)
		c.set(x1, y, b.Right, a)
	}
	c.set(x0, y0, b.TopLeft, a)
	c.set(x1, y0, b.TopRight, a)
	c.set(x0, y1, b.BottomLeft, a)
	c.set(x1, y1, b.BottomRight, a)
}

// effectiveOpacity multiplies n's opacity with its ancestors'.
func effectiveOpacity(n *dom.Node) float64 {
	o := 1.0
	for p := n; p != nil; p = p.Parent() {
		o *= dom.ParseOpacity(p.Style().Get(dom.PropOpacity))
	}
	return o
}

// String joins the rows, styling runs of cells that share attributes.
func (c *canvas) String(plain bool) string {
	var sb strings.Builder
	for y, row := range c.cells {
		if y > 0 {
			sb.WriteByte('\n')
		}
		var run strings.Builder
		var cur attrs
		flush := func() {
			if run.Len() == 0 {
				return
			}
			if plain {
				sb.WriteString(run.String())
			} else {
				sb.WriteString(styleFor(cur).Render(run.String()))
			}
			run.Reset()
		}
		for x, cl := range row {
			if x > 0 && cl.attrs != cur {
				flush()
			}
			cur = cl.attrs
			run.WriteString(cl.ch)
		}
		flush()
	}
	return sb.String()
}

func styleFor(a attrs) lipgloss.Style {
	st := lipgloss.NewStyle().Bold(a.bold).Faint(a.faint)
	if a.fg != "" {
		st = st.Foreground(lipgloss.Color(a.fg))
	}
	if a.bg != "" {
		st = st.Background(lipgloss.Color(a.bg))
	}
	return st
}

func firstNonEmpty(vs ...string) string {
	for _, v := range vs {
		if v != "" {
			return v
		}
	}
	return ""
}
