package cli

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/dragbox/pkg/dom"
	"github.com/matzehuels/dragbox/pkg/render/screen"
	"github.com/matzehuels/dragbox/pkg/scenario"
)

// Status bar styles
var (
	statusDimStyle = lipgloss.NewStyle().Foreground(colorDim)
	statusKeyStyle = lipgloss.NewStyle().Foreground(colorGray).Bold(true)
)

// =============================================================================
// BoardModel - Interactive drag board
// =============================================================================

// BoardModel is the bubbletea model hosting a document. Mouse messages become
// pointer events and window size messages resize the viewport; the last row
// of the terminal is a status bar.
type BoardModel struct {
	doc    *dom.Document
	render screen.Options
	accent lipgloss.Style

	// container is the id of the board's drag-container.
	container string
}

// NewBoardModel creates a board model over doc. Accent colors the status bar.
func NewBoardModel(doc *dom.Document, container string, theme screen.Theme, accent string) BoardModel {
	st := lipgloss.NewStyle().Bold(true)
	if accent != "" {
		st = st.Foreground(lipgloss.Color(accent))
	}
	return BoardModel{
		doc:       doc,
		render:    screen.Options{Theme: theme},
		accent:    st,
		container: container,
	}
}

func (m BoardModel) Init() tea.Cmd {
	return nil
}

func (m BoardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		h := msg.Height - 1
		if h < 1 {
			h = 1
		}
		m.doc.Resize(float64(msg.Width), float64(h))
	case tea.MouseMsg:
		if typ, in, ok := pointerInput(msg); ok {
			m.doc.DispatchPointer(typ, in)
		}
	}
	return m, nil
}

func (m BoardModel) View() string {
	var b strings.Builder
	b.WriteString(screen.Render(m.doc, m.render))
	b.WriteString("\n")
	b.WriteString(m.statusLine())
	return b.String()
}

func (m BoardModel) statusLine() string {
	if dragging := scenario.Dragging(m.doc); len(dragging) > 0 {
		return m.accent.Render("dragging "+m.label(dragging[0])) +
			statusDimStyle.Render("  release over a tile to drop")
	}

	order := scenario.Orders(m.doc)[m.container]
	labels := make([]string, len(order))
	for i, id := range order {
		labels[i] = m.label(id)
	}
	return statusKeyStyle.Render("q") + statusDimStyle.Render(" quit  ") +
		m.accent.Render(strings.Join(labels, " · "))
}

// label returns a node's text, falling back to its id.
func (m BoardModel) label(id string) string {
	if n := m.doc.GetElementByID(id); n != nil && n.Text() != "" {
		return n.Text()
	}
	return id
}

// pointerInput translates a terminal mouse message. Wheel events and presses
// of unknown buttons are dropped.
func pointerInput(msg tea.MouseMsg) (dom.EventType, dom.Input, bool) {
	in := dom.Mouse{X: float64(msg.X), Y: float64(msg.Y)}
	switch msg.Action {
	case tea.MouseActionPress:
		switch msg.Button {
		case tea.MouseButtonLeft:
			in.Button = dom.ButtonPrimary
		case tea.MouseButtonMiddle:
			in.Button = dom.ButtonAuxiliary
		case tea.MouseButtonRight:
			in.Button = dom.ButtonSecondary
		default:
			return "", nil, false
		}
		return dom.EventDown, in, true
	case tea.MouseActionMotion:
		return dom.EventMove, in, true
	case tea.MouseActionRelease:
		return dom.EventUp, in, true
	}
	return "", nil, false
}
