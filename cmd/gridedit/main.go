package main

import (
	"fmt"
	"log"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/TimZoet/floah"
)

var (
	cellStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			Width(8).
			Align(lipgloss.Center)
	cursorStyle = cellStyle.
			Border(lipgloss.ThickBorder()).
			BorderForeground(lipgloss.Color("205"))
	emptyStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	helpStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

const help = `arrows move · a/A append row/col · i/I insert row/col at cursor
d/D remove row/col at cursor · e insert label · x remove · X extract · C clear · q quit`

type model struct {
	layout *floah.Layout
	grid   *floah.Grid

	curX, curY int
	next       int // sequence number for new labels
	status     string
}

func newModel() model {
	g := floah.NewGrid()
	for i := 0; i < 3; i++ {
		g.AppendRow()
		g.AppendColumn()
	}
	g.Insert(floah.NewLabel("L1"), 0, 0)
	g.Insert(floah.NewLabel("L2"), 1, 1)
	g.Insert(floah.NewLabel("L3"), 2, 2)

	l := floah.NewLayout()
	l.SetRoot(g)

	return model{layout: l, grid: g, next: 4}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	g := m.grid
	inBounds := m.curX < g.ColumnCount() && m.curY < g.RowCount()
	m.status = ""

	switch key.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "left", "h":
		if m.curX > 0 {
			m.curX--
		}
	case "right", "l":
		if m.curX < g.ColumnCount()-1 {
			m.curX++
		}
	case "up", "k":
		if m.curY > 0 {
			m.curY--
		}
	case "down", "j":
		if m.curY < g.RowCount()-1 {
			m.curY++
		}
	case "a":
		g.AppendRow()
	case "A":
		g.AppendColumn()
	case "i":
		g.InsertRow(min(m.curY, g.RowCount()))
	case "I":
		g.InsertColumn(min(m.curX, g.ColumnCount()))
	case "d":
		if m.curY < g.RowCount() {
			g.RemoveRow(m.curY)
		}
	case "D":
		if m.curX < g.ColumnCount() {
			g.RemoveColumn(m.curX)
		}
	case "e":
		if inBounds {
			name := fmt.Sprintf("L%d", m.next)
			m.next++
			g.Insert(floah.NewLabel(name), m.curX, m.curY)
		}
	case "x":
		if inBounds {
			g.Remove(m.curX, m.curY)
		}
	case "X":
		if inBounds {
			if e := g.Extract(m.curX, m.curY); e != nil {
				m.status = fmt.Sprintf("extracted %s", labelText(e))
			}
		}
	case "C":
		g.RemoveAllRowsAndColumns()
	}

	m.clampCursor()
	return m, nil
}

func (m *model) clampCursor() {
	if m.curX >= m.grid.ColumnCount() {
		m.curX = max(m.grid.ColumnCount()-1, 0)
	}
	if m.curY >= m.grid.RowCount() {
		m.curY = max(m.grid.RowCount()-1, 0)
	}
}

func (m model) View() string {
	var b strings.Builder

	b.WriteString(renderGrid(m.grid, m.curX, m.curY))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("%dx%d grid · generation %d",
		m.grid.ColumnCount(), m.grid.RowCount(), m.layout.Generation()))
	if m.status != "" {
		b.WriteString(" · " + m.status)
	}
	b.WriteString("\n" + helpStyle.Render(help) + "\n")

	return b.String()
}

func renderGrid(g *floah.Grid, curX, curY int) string {
	if g.RowCount() == 0 || g.ColumnCount() == 0 {
		return emptyStyle.Render("(no rows or columns)")
	}

	rows := make([]string, g.RowCount())
	for y := 0; y < g.RowCount(); y++ {
		cells := make([]string, g.ColumnCount())
		for x := 0; x < g.ColumnCount(); x++ {
			text := labelText(g.Get(x, y))
			if text == "" {
				text = emptyStyle.Render("·")
			}
			style := cellStyle
			if x == curX && y == curY {
				style = cursorStyle
			}
			cells[x] = style.Render(text)
		}
		rows[y] = lipgloss.JoinHorizontal(lipgloss.Top, cells...)
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func labelText(e floah.Element) string {
	if l, ok := e.(*floah.Label); ok {
		return l.Text()
	}
	return ""
}

func main() {
	m := newModel()

	// Without a terminal there is nothing to interact with; dump the
	// starting grid and exit.
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Println(renderGrid(m.grid, -1, -1))
		return
	}

	if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
		log.Fatal(err)
	}
}
