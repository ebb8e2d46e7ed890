package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	log "github.com/sirupsen/logrus"

	"github.com/san-kum/glyphrain/internal/rain"
	"github.com/san-kum/glyphrain/internal/viz"
)

// Model is the landing page: rain in the background, header on top.
type Model struct {
	renderer *rain.Renderer
	host     *TeaHost
	surface  *viz.CellSurface
	theme    viz.Theme
	header   viz.Header

	cols, rows int
	mounted    bool
	showHeader bool
	showHelp   bool
	showStats  bool
	log        *log.Entry
}

// NewModel wires a renderer to a terminal surface. The renderer is
// mounted when the first window size arrives.
func NewModel(r *rain.Renderer, h *TeaHost, s *viz.CellSurface, theme viz.Theme, header viz.Header, showHeader bool, logger *log.Entry) Model {
	if logger == nil {
		logger = log.NewEntry(log.StandardLogger())
	}
	return Model{
		renderer:   r,
		host:       h,
		surface:    s,
		theme:      theme,
		header:     header,
		showHeader: showHeader,
		log:        logger.WithField("component", "tui"),
	}
}

func (m Model) Init() tea.Cmd { return nil }

// Update handles input, resizes and frame ticks.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			m.unmount()
			return m, tea.Quit
		case "h":
			m.showHeader = !m.showHeader
		case "s":
			m.showStats = !m.showStats
		case "?":
			m.showHelp = !m.showHelp
		}
	case tea.WindowSizeMsg:
		m.cols, m.rows = msg.Width, msg.Height
		if !m.mounted {
			m.host.SetTerminalSize(msg.Width, msg.Height)
			m.renderer.Mount(m.surface, m.host)
			m.mounted = true
		} else {
			m.host.HandleResize(msg)
		}
		m.log.WithFields(log.Fields{"cols": msg.Width, "rows": msg.Height}).Debug("window size")
		return m, m.host.Cmd()
	case FrameMsg:
		m.host.HandleFrame(msg)
		return m, m.host.Cmd()
	}
	return m, nil
}

func (m *Model) unmount() {
	m.renderer.Unmount()
	m.surface.Detach()
}

// View renders the rain with the header, help and stats overlaid.
func (m Model) View() string {
	if !m.mounted {
		return ""
	}
	lines := m.surface.Lines()
	if len(lines) > m.rows {
		lines = lines[:m.rows]
	}

	if m.showHeader {
		overlay(lines, 1, viz.HeaderView(m.theme, m.header, m.cols))
	}
	if m.showHelp {
		help := viz.HelpView(m.theme)
		overlay(lines, len(lines)-strings.Count(help, "\n")-2, help)
	}
	if m.showStats && len(lines) > 0 {
		vp := m.renderer.Viewport()
		stats := fmt.Sprintf(" %s  frame %d  columns %d  viewport %dx%d px",
			m.renderer.State(), m.renderer.Frames(), m.renderer.Columns().Len(), vp.Width, vp.Height)
		lines[len(lines)-1] = viz.StatusLine(m.theme, stats, m.cols)
	}
	return strings.Join(lines, "\n")
}

// overlay replaces whole lines starting at row with the lines of block.
func overlay(lines []string, row int, block string) {
	if row < 0 {
		row = 0
	}
	for i, l := range strings.Split(block, "\n") {
		if row+i >= len(lines) {
			return
		}
		lines[row+i] = l
	}
}
