// ============================================================================
// sable - token-stream parser toolchain
// ============================================================================
//
// Package:     inspector
// Description: Bubbletea model for browsing the parsed forms of a token file
// Author:      Mike Stoffels
// Created:     2026-10-18
// License:     MIT
// ============================================================================

package inspector

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/msto63/sable/foundation/lang"
	"github.com/msto63/sable/foundation/lang/ast"
	"github.com/msto63/sable/internal/render"
)

// ViewMode selects how the current form is shown
type ViewMode int

const (
	ModeTree ViewMode = iota
	ModeSexpr
)

// Config holds inspector configuration
type Config struct {
	Path   string
	Engine *lang.Engine
}

// formsLoadedMsg carries the result of parsing the token file
type formsLoadedMsg struct {
	result *lang.Result
	err    error
}

// Model is the bubbletea model of the inspector
type Model struct {
	width   int
	height  int
	ready   bool
	loading bool
	err     error

	viewport viewport.Model
	spinner  spinner.Model

	path   string
	engine *lang.Engine
	result *lang.Result
	index  int
	mode   ViewMode
}

// New creates an inspector for the token file at cfg.Path
func New(cfg Config) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(render.ColorPrimary)

	engine := cfg.Engine
	if engine == nil {
		engine = lang.New(lang.Options{})
	}

	return Model{
		spinner: sp,
		loading: true,
		path:    cfg.Path,
		engine:  engine,
	}
}

// Init starts loading the token file
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.loadForms)
}

func (m Model) loadForms() tea.Msg {
	result, err := m.engine.ParseFile(m.path)
	return formsLoadedMsg{result: result, err: err}
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		headerHeight := 3 // title panel
		footerHeight := 4 // status bar + help
		viewportHeight := msg.Height - headerHeight - footerHeight - 2
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
		m.updateViewportContent()

	case spinner.TickMsg:
		if m.loading {
			m.spinner, cmd = m.spinner.Update(msg)
			cmds = append(cmds, cmd)
		}

	case formsLoadedMsg:
		m.loading = false
		m.result = msg.result
		m.err = msg.err
		m.index = 0
		m.updateViewportContent()
	}

	m.viewport, cmd = m.viewport.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

// handleKeyPress handles keyboard input
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		return m, tea.Quit

	case tea.KeyRunes:
		switch string(msg.Runes) {
		case "q":
			return m, tea.Quit
		case "n", "l":
			m.selectForm(m.index + 1)
		case "p", "h":
			m.selectForm(m.index - 1)
		case "j":
			m.viewport.LineDown(1)
		case "k":
			m.viewport.LineUp(1)
		case "g":
			m.viewport.GotoTop()
		case "G":
			m.viewport.GotoBottom()
		case "t":
			if m.mode == ModeTree {
				m.mode = ModeSexpr
			} else {
				m.mode = ModeTree
			}
			m.updateViewportContent()
		}

	case tea.KeyRight, tea.KeyTab:
		m.selectForm(m.index + 1)

	case tea.KeyLeft, tea.KeyShiftTab:
		m.selectForm(m.index - 1)

	case tea.KeyPgUp:
		m.viewport.ViewUp()

	case tea.KeyPgDown:
		m.viewport.ViewDown()

	case tea.KeyUp:
		m.viewport.LineUp(1)

	case tea.KeyDown:
		m.viewport.LineDown(1)
	}

	return m, nil
}

// selectForm moves to form i, clamped to the available forms
func (m *Model) selectForm(i int) {
	n := m.formCount()
	if n == 0 {
		return
	}
	if i < 0 {
		i = 0
	}
	if i >= n {
		i = n - 1
	}
	if i != m.index {
		m.index = i
		m.updateViewportContent()
		m.viewport.GotoTop()
	}
}

func (m Model) formCount() int {
	if m.result == nil {
		return 0
	}
	return len(m.result.Forms)
}

// current returns the selected form
func (m Model) current() (ast.Expr, bool) {
	if m.formCount() == 0 {
		return nil, false
	}
	return m.result.Forms[m.index], true
}

func (m *Model) updateViewportContent() {
	if !m.ready {
		return
	}
	m.viewport.SetContent(m.content())
}

// content renders the body of the viewport
func (m Model) content() string {
	switch {
	case m.loading:
		return ""
	case m.err != nil:
		return ErrorStyle.Render(render.New(render.FormatSexpr, false).Diagnostic(m.path, m.err))
	}

	form, ok := m.current()
	if !ok {
		return HelpDescStyle.Render("no forms")
	}
	if m.mode == ModeSexpr {
		return form.String()
	}
	return ast.NewTreePrinter().Print(form)
}

// View renders the UI
func (m Model) View() string {
	if !m.ready {
		return "Loading " + m.path + "..."
	}

	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(FormPanelStyle.Width(m.width - 2).Render(m.viewport.View()))
	b.WriteString("\n")
	b.WriteString(m.renderStatusBar())
	b.WriteString("\n")
	b.WriteString(m.renderHelpBar())

	return b.String()
}

func (m Model) renderHeader() string {
	header := lipgloss.JoinHorizontal(lipgloss.Center,
		LogoStyle.Render(Logo),
		strings.Repeat(" ", 3),
		SourceStyle.Render(m.path),
	)
	return TitlePanelStyle.Width(m.width - 4).Render(header)
}

func (m Model) renderStatusBar() string {
	var left string
	switch {
	case m.loading:
		left = m.spinner.View() + " Parsing..."
	case m.err != nil:
		left = "parse failed"
	default:
		left = fmt.Sprintf("Form %d/%d", m.index+1, m.formCount())
		if m.formCount() == 0 {
			left = "Form 0/0"
		}
	}

	right := ""
	if form, ok := m.current(); ok {
		right = ast.Collect([]ast.Expr{form}).String()
	}

	padding := m.width - lipgloss.Width(left) - lipgloss.Width(right) - 2
	if padding < 1 {
		padding = 1
	}
	return StatusBarStyle.Width(m.width).Render(left + strings.Repeat(" ", padding) + right)
}

func (m Model) renderHelpBar() string {
	hints := []string{
		RenderKeyHint("n/p", "form"),
		RenderKeyHint("j/k", "scroll"),
		RenderKeyHint("t", "tree/sexpr"),
		RenderKeyHint("q", "quit"),
	}
	return strings.Join(hints, "  ")
}

// Run starts the inspector in the alternate screen and blocks until quit
func Run(cfg Config) error {
	_, err := tea.NewProgram(New(cfg), tea.WithAltScreen()).Run()
	return err
}
