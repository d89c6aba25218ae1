// ============================================================================
// layerdeck - SVG layer editor
// ============================================================================
//
// Package:     layerpanel
// Description: Main Bubbletea model for the interactive layer panel
// Author:      Mike Stoffels
// Created:     2026-10-15
// License:     MIT
// ============================================================================

package layerpanel

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/msto63/layerdeck/foundation/utils/slicex"
	"github.com/msto63/layerdeck/foundation/utils/stringx"
	"github.com/msto63/layerdeck/internal/document"
	"github.com/msto63/layerdeck/internal/session"
	"github.com/msto63/layerdeck/pkg/core/version"
)

// Config holds panel configuration
type Config struct {
	ShowIDs bool
}

// Model is the Bubbletea model of the layer panel
type Model struct {
	// State
	width     int
	height    int
	ready     bool
	saving    bool
	prompting bool
	quitArmed bool
	status    string
	err       error

	// Components
	viewport viewport.Model
	spinner  spinner.Model
	input    textinput.Model

	// Document state
	sess    *session.Session
	view    view
	cursor  int
	showIDs bool
}

// New creates a panel over an open session
func New(sess *session.Session, cfg Config) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(ColorPrimary)

	in := textinput.New()
	in.Placeholder = "Datei speichern unter..."
	in.Width = 50

	return Model{
		spinner: sp,
		input:   in,
		sess:    sess,
		showIDs: cfg.ShowIDs,
	}
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.prompting {
			return m.handlePrompt(msg)
		}
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		headerHeight := 4 // Title panel
		footerHeight := 4 // Status bar + help
		viewportHeight := msg.Height - headerHeight - footerHeight
		if viewportHeight < 1 {
			viewportHeight = 1
		}

		if !m.ready {
			m.viewport = viewport.New(msg.Width-4, viewportHeight)
			m.viewport.YPosition = headerHeight
			m.ready = true
		} else {
			m.viewport.Width = msg.Width - 4
			m.viewport.Height = viewportHeight
		}
		m.refresh()

	case spinner.TickMsg:
		if m.saving {
			m.spinner, cmd = m.spinner.Update(msg)
			cmds = append(cmds, cmd)
		}

	case savedMsg:
		m.saving = false
		if msg.err != nil {
			m.err = msg.err
		} else {
			m.sess.MarkSaved(msg.path)
			m.err = nil
			m.status = "Gespeichert: " + msg.path
		}
	}

	return m, tea.Batch(cmds...)
}

// handleKeyPress handles keyboard input
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type != tea.KeyRunes || string(msg.Runes) != "q" {
		m.quitArmed = false
	}

	switch msg.Type {
	case tea.KeyCtrlC:
		return m, tea.Quit

	case tea.KeyUp:
		m.moveCursor(-1)
	case tea.KeyDown:
		m.moveCursor(1)
	case tea.KeyShiftUp:
		m.moveEntry(-1)
	case tea.KeyShiftDown:
		m.moveEntry(1)
	case tea.KeySpace, tea.KeyEnter:
		m.toggle()
	case tea.KeyTab:
		m.switchView()

	case tea.KeyRunes:
		switch string(msg.Runes) {
		case "q":
			if m.saving {
				m.status = "Speichern läuft - bitte warten"
				return m, nil
			}
			if m.sess.Dirty() && !m.quitArmed {
				m.quitArmed = true
				m.status = "Ungespeicherte Änderungen - q erneut drücken zum Beenden"
				return m, nil
			}
			return m, tea.Quit

		case "k":
			m.moveCursor(-1)
		case "j":
			m.moveCursor(1)
		case "K":
			m.moveEntry(-1)
		case "J":
			m.moveEntry(1)
		case " ":
			m.toggle()

		case "g":
			m.cursor = 0
		case "G":
			m.cursor = m.rowCount() - 1

		case "i":
			m.showIDs = !m.showIDs

		case "s":
			return m.save(m.sess.Path())

		case "w":
			m.prompting = true
			m.input.SetValue(m.sess.Path())
			m.input.Focus()
			return m, textinput.Blink
		}
	}

	m.refresh()
	return m, nil
}

// handlePrompt handles input while the save-as prompt is open
func (m Model) handlePrompt(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return m, tea.Quit
	case tea.KeyEsc:
		m.prompting = false
		m.input.Blur()
		return m, nil
	case tea.KeyEnter:
		m.prompting = false
		m.input.Blur()
		path := strings.TrimSpace(m.input.Value())
		if path == "" {
			return m, nil
		}
		return m.save(path)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// save renders the document here and leaves only the file write to the command
func (m Model) save(path string) (tea.Model, tea.Cmd) {
	if m.saving {
		return m, nil
	}
	snap, err := m.sess.Snapshot(path)
	if err != nil {
		m.err = err
		return m, nil
	}
	m.saving = true
	m.status = ""
	return m, tea.Batch(m.spinner.Tick, func() tea.Msg {
		return savedMsg{path: snap.Path, err: snap.Write()}
	})
}

func (m *Model) rowCount() int {
	if m.view == viewStack {
		return len(m.sess.Root().Positions)
	}
	return len(session.Rows(m.sess.Root()))
}

func (m *Model) moveCursor(delta int) {
	m.cursor += delta
}

func (m *Model) switchView() {
	root := m.sess.Root()
	if m.view == viewCatalog {
		p, ok := m.selectedPos()
		m.view = viewStack
		if ok {
			if l, err := root.Resolve(p); err == nil {
				m.cursor = slicex.IndexOf(root.Positions, l.ID)
			}
		}
		return
	}

	m.view = viewCatalog
	if m.cursor >= 0 && m.cursor < len(root.Positions) {
		m.cursor = session.Selection{ID: root.Positions[m.cursor]}.Row(root)
	}
}

// selectedPos returns the catalog position under the cursor
func (m *Model) selectedPos() (document.Pos, bool) {
	root := m.sess.Root()
	if m.view == viewStack {
		if m.cursor < 0 || m.cursor >= len(root.Positions) {
			return nil, false
		}
		return root.PosOf(root.Positions[m.cursor])
	}
	rows := session.Rows(root)
	if m.cursor < 0 || m.cursor >= len(rows) {
		return nil, false
	}
	return rows[m.cursor], true
}

func (m *Model) toggle() {
	p, ok := m.selectedPos()
	if !ok || m.saving {
		return
	}
	m.report(m.sess.Toggle(p))
}

func (m *Model) moveEntry(delta int) {
	if m.saving {
		return
	}

	if m.view == viewStack {
		dst := m.cursor + delta
		if dst < 0 || dst >= len(m.sess.Root().Positions) {
			return
		}
		if m.report(m.sess.MovePosition(m.cursor, dst)) {
			m.cursor = dst
		}
		return
	}

	p, ok := m.selectedPos()
	if !ok {
		return
	}
	dst, ok := session.Step(m.sess.Root(), p, delta)
	if !ok {
		return
	}
	sel := session.Select(m.sess.Root(), p)
	if m.report(m.sess.Move(p, dst)) {
		m.cursor = sel.Row(m.sess.Root())
	}
}

// report records the outcome of an edit for the status bar
func (m *Model) report(err error) bool {
	m.err = err
	if err == nil {
		m.status = ""
	}
	return err == nil
}

// refresh clamps the cursor and renders the rows into the viewport
func (m *Model) refresh() {
	n := m.rowCount()
	if m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	if !m.ready {
		return
	}

	var lines []string
	if m.view == viewStack {
		lines = m.stackLines()
	} else {
		lines = m.catalogLines()
	}
	for i := range lines {
		if i == m.cursor {
			lines[i] = SelectedRowStyle.Render(lines[i])
		}
	}
	m.viewport.SetContent(strings.Join(lines, "\n"))

	if m.cursor < m.viewport.YOffset {
		m.viewport.SetYOffset(m.cursor)
	} else if m.cursor >= m.viewport.YOffset+m.viewport.Height {
		m.viewport.SetYOffset(m.cursor - m.viewport.Height + 1)
	}
}

func (m *Model) catalogLines() []string {
	root := m.sess.Root()
	rows := session.Rows(root)
	lines := make([]string, 0, len(rows))

	for _, p := range rows {
		l, err := root.Resolve(p)
		if err != nil {
			lines = append(lines, StatusErrorStyle.Render(err.Error()))
			continue
		}

		switch p := p.(type) {
		case document.CategoryPos:
			line := CategoryRowStyle.Render(IconCategory + m.fit(l.Name))
			if c, ok := root.Catalog[p.Index].(document.Category); ok && c.Include {
				line += " " + RadioBadgeStyle.Render("[1 aus n]")
			}
			lines = append(lines, line+m.idSuffix(l))
		case document.CategoryElementPos:
			lines = append(lines, "  "+m.layerLine(l))
		default:
			lines = append(lines, m.layerLine(l))
		}
	}
	return lines
}

func (m *Model) stackLines() []string {
	root := m.sess.Root()
	lines := make([]string, 0, len(root.Positions))
	for i, id := range root.Positions {
		l, _ := root.Lookup(id)
		lines = append(lines, IndexStyle.Render(fmt.Sprintf("%3d ", i))+m.layerLine(l))
	}
	return lines
}

func (m *Model) layerLine(l document.Layer) string {
	if l.Hidden {
		return HiddenRowStyle.Render(IconHidden+m.fit(l.Name)) + m.idSuffix(l)
	}
	return RowStyle.Render(IconVisible+m.fit(l.Name)) + m.idSuffix(l)
}

// fit shortens a name to the room left in a row
func (m *Model) fit(name string) string {
	room := m.viewport.Width - 12
	if room < 8 {
		room = 8
	}
	return stringx.Truncate(name, room, "…")
}

func (m *Model) idSuffix(l document.Layer) string {
	if !m.showIDs {
		return ""
	}
	return " " + IDStyle.Render(string(l.ID))
}

// View renders the UI
func (m Model) View() string {
	if !m.ready {
		return "Lade Ebenen..."
	}

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(PanelStyle.Width(m.width - 2).Render(m.viewport.View()))
	b.WriteString("\n")
	b.WriteString(m.renderStatusBar())
	b.WriteString("\n")
	if m.prompting {
		b.WriteString(m.input.View())
	} else {
		b.WriteString(m.renderHelpBar())
	}
	return b.String()
}

// renderHeader renders the title with file and view
func (m Model) renderHeader() string {
	name := m.sess.Path()
	if name == "" {
		name = "(stdin)"
	}
	header := lipgloss.JoinHorizontal(lipgloss.Center,
		LogoStyle.Render(Logo),
		strings.Repeat(" ", 3),
		SubHeaderStyle.Render(name),
		strings.Repeat(" ", 3),
		HelpDescStyle.Render("["+m.view.String()+"]"),
	)
	return TitlePanelStyle.Width(m.width - 4).Render(header)
}

// renderStatusBar renders edit state and the last error
func (m Model) renderStatusBar() string {
	var left string
	switch {
	case m.saving:
		left = m.spinner.View() + " Speichere..."
	case m.err != nil:
		left = StatusErrorStyle.Render(m.err.Error())
	case m.status != "":
		left = HelpDescStyle.Render(m.status)
	}

	right := StatusOKStyle.Render("gespeichert")
	if m.sess.Dirty() {
		right = StatusDirtyStyle.Render("geändert")
	}
	right = HelpDescStyle.Render(fmt.Sprintf("%d Ebenen  v%s  ", m.sess.Root().Len(), version.Version)) + right

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right) - 4
	if gap < 2 {
		gap = 2
	}
	return StatusBarStyle.Width(m.width - 2).Render(left + strings.Repeat(" ", gap) + right)
}

// renderHelpBar renders the help shortcuts bar
func (m Model) renderHelpBar() string {
	items := []string{
		RenderKeyHint("↑/↓", "Auswahl"),
		RenderKeyHint("Space", "Sichtbarkeit"),
		RenderKeyHint("K/J", "Verschieben"),
		RenderKeyHint("Tab", "Ansicht"),
		RenderKeyHint("i", "IDs"),
		RenderKeyHint("s/w", "Speichern"),
		RenderKeyHint("q", "Beenden"),
	}
	return HelpStyle.Render(strings.Join(items, "  "))
}

// Run starts the layer panel TUI
func Run(sess *session.Session, cfg Config) error {
	p := tea.NewProgram(New(sess, cfg), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
