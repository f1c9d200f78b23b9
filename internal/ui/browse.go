package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"golang.org/x/text/unicode/norm"

	"vista/internal/inspect"
)

// row is one visible line of the tree: a node plus its distance from the root.
type row struct {
	node  *inspect.Node
	depth int
}

type browseModel struct {
	root        *inspect.Node
	rows        []row
	expanded    map[*inspect.Node]bool
	cursor      int
	vp          viewport.Model
	width       int
	ready       bool
	unsubscribe func()
}

// NewBrowseModel returns a Bubble Tea model over a finished display tree:
// up/down move the cursor, enter or space toggles a node, q quits. The model
// only renders; it never rebuilds the tree.
func NewBrowseModel(root *inspect.Node) tea.Model {
	m := &browseModel{
		root:     root,
		expanded: map[*inspect.Node]bool{root: true},
		width:    80,
	}
	m.unsubscribe = root.Subscribe(func(*inspect.Node) {})
	m.reflow()
	return m
}

// Browse runs the interactive browser over root until the user quits.
func Browse(root *inspect.Node) error {
	p := tea.NewProgram(NewBrowseModel(root), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func (m *browseModel) Init() tea.Cmd {
	return nil
}

func (m *browseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			m.unsubscribe()
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.rows)-1 {
				m.cursor++
			}
		case "home", "g":
			m.cursor = 0
		case "end", "G":
			m.cursor = len(m.rows) - 1
		case "enter", " ":
			m.toggle(m.rows[m.cursor].node)
		}
		m.sync()
	case tea.WindowSizeMsg:
		m.width = msg.Width
		height := msg.Height - 2
		if height < 1 {
			height = 1
		}
		if !m.ready {
			m.vp = viewport.New(msg.Width, height)
			m.ready = true
		} else {
			m.vp.Width = msg.Width
			m.vp.Height = height
		}
		m.sync()
	}
	return m, nil
}

var (
	headerStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("7"))
	cursorStyle  = lipgloss.NewStyle().Reverse(true)
	labelStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	summaryStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	helpStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

func (m *browseModel) View() string {
	if !m.ready {
		return ""
	}
	var b strings.Builder
	b.WriteString(headerStyle.Render(truncate(rowText(row{node: m.root}), m.width)))
	b.WriteString("\n")
	b.WriteString(m.vp.View())
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("↑/↓ move · enter toggle · q quit"))
	return b.String()
}

// toggle flips the expansion state of a node with children.
func (m *browseModel) toggle(n *inspect.Node) {
	if n.IsLeaf() {
		return
	}
	m.expanded[n] = !m.expanded[n]
	m.reflow()
	if m.cursor >= len(m.rows) {
		m.cursor = len(m.rows) - 1
	}
}

// reflow rebuilds the visible rows from the expansion state, depth-first.
func (m *browseModel) reflow() {
	m.rows = m.rows[:0]
	m.walk(m.root, 0)
}

func (m *browseModel) walk(n *inspect.Node, depth int) {
	m.rows = append(m.rows, row{node: n, depth: depth})
	if !m.expanded[n] {
		return
	}
	for _, c := range n.Children {
		m.walk(c, depth+1)
	}
}

// sync re-renders the rows into the viewport and keeps the cursor visible.
func (m *browseModel) sync() {
	if !m.ready {
		return
	}
	m.vp.SetContent(m.renderRows())
	if m.cursor < m.vp.YOffset {
		m.vp.SetYOffset(m.cursor)
	} else if m.cursor >= m.vp.YOffset+m.vp.Height {
		m.vp.SetYOffset(m.cursor - m.vp.Height + 1)
	}
}

func (m *browseModel) renderRows() string {
	var b strings.Builder
	for i, r := range m.rows {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(m.renderRow(r, i == m.cursor))
	}
	return b.String()
}

func (m *browseModel) renderRow(r row, selected bool) string {
	marker := "  "
	if !r.node.IsLeaf() {
		if m.expanded[r.node] {
			marker = "▾ "
		} else {
			marker = "▸ "
		}
	}
	line := strings.Repeat("  ", r.depth) + marker + rowText(r)
	line = truncate(line, m.width)
	if selected {
		return cursorStyle.Render(line)
	}
	if r.node.Label != "" && !r.node.IsLeaf() {
		return labelStyle.Render(line)
	}
	if strings.HasPrefix(r.node.Value, "<") {
		return summaryStyle.Render(line)
	}
	return line
}

// rowText mirrors the printer's line format: label, " = " when both parts are
// present, value. Newlines inside values (stack traces) collapse to spaces so
// one node stays one row.
func rowText(r row) string {
	n := r.node
	var text string
	switch {
	case n.Label != "" && n.Value != "":
		text = fmt.Sprintf("%s = %s", n.Label, n.Value)
	case n.Label != "":
		text = n.Label
	default:
		text = n.Value
	}
	return strings.ReplaceAll(text, "\n", " ")
}

// truncate caps value at width display cells. Text is normalized to NFC
// before measuring so combining sequences count as what the terminal shows.
func truncate(value string, width int) string {
	value = norm.NFC.String(value)
	if width <= 0 {
		return value
	}
	if runewidth.StringWidth(value) <= width {
		return value
	}
	if width <= 3 {
		return runewidth.Truncate(value, width, "")
	}
	return runewidth.Truncate(value, width, "...")
}
