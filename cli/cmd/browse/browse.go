// Package browse implements an interactive fuzzy finder over resolved
// dotenv variables.
package browse

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"
	"github.com/sahilm/fuzzy"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ardnew/denv/lang"
	"github.com/ardnew/denv/log"
)

const (
	prompt = "❯ "

	defaultWidth = 80
	defaultRows  = 10
)

// Styles.
var (
	promptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("6")).
			Bold(true)
	hintStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	valueStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	suggestionStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("4"))
	selectedStyle   = lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("4"))
)

// model is the Bubble Tea model for the browser.
type model struct {
	ctxFunc  func() context.Context
	input    textinput.Model
	logger   log.Logger
	keys     []string
	values   []string
	matches  fuzzy.Matches // current fuzzy match results
	selected int           // index into matches
	chosen   int           // index into keys, or -1
	width    int
	rows     int
	quitting bool
}

// Run browses the variables of ns until the user selects one or quits.
// A selected variable is written to out as a KEY=VALUE line.
func Run(
	ctx context.Context,
	ns *lang.Namespace,
	out io.Writer,
	logger log.Logger,
	opts ...tea.ProgramOption,
) error {
	logger.TraceContext(ctx, "browse start", slog.Int("variables", ns.Len()))

	m := newModel(ctx, ns, logger)

	p := tea.NewProgram(m, append([]tea.ProgramOption{tea.WithContext(ctx)}, opts...)...)

	final, err := p.Run()
	if err != nil {
		return err
	}

	key, value, ok := final.(model).choice()
	if !ok {
		return nil
	}

	_, err = fmt.Fprintf(out, "%s=%s\n", key, value)

	return err
}

func newModel(ctx context.Context, ns *lang.Namespace, logger log.Logger) model {
	ti := textinput.New()
	ti.Prompt = promptStyle.Render(prompt)
	ti.Placeholder = "filter variables"
	ti.Focus()
	ti.Width = defaultWidth

	m := model{
		ctxFunc: func() context.Context { return ctx },
		input:   ti,
		logger:  logger,
		keys:    make([]string, 0, ns.Len()),
		values:  make([]string, 0, ns.Len()),
		chosen:  -1,
		width:   defaultWidth,
		rows:    defaultRows,
	}

	for key, value := range ns.All() {
		m.keys = append(m.keys, key)
		m.values = append(m.values, value)
	}

	m.refresh()

	return m
}

// choice returns the variable selected by the user, if any.
func (m model) choice() (key, value string, ok bool) {
	if m.chosen < 0 || m.chosen >= len(m.keys) {
		return "", "", false
	}

	return m.keys[m.chosen], m.values[m.chosen], true
}

// refresh recomputes the matches for the current query.
// An empty query matches every variable in file order.
func (m *model) refresh() {
	query := strings.TrimSpace(m.input.Value())

	if query == "" {
		m.matches = make(fuzzy.Matches, len(m.keys))
		for i, key := range m.keys {
			m.matches[i] = fuzzy.Match{Str: key, Index: i}
		}
	} else {
		m.matches = fuzzy.Find(query, m.keys)
	}

	m.selected = min(m.selected, max(len(m.matches)-1, 0))
}

func (m model) Init() tea.Cmd {
	return textinput.Blink
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.input.Width = msg.Width - len(prompt) - 2
		m.rows = max(msg.Height-3, 1)

		return m, nil
	}

	var cmd tea.Cmd

	m.input, cmd = m.input.Update(msg)

	return m, cmd
}

func (m model) handleKey(msg tea.KeyMsg) (model, tea.Cmd) {
	m.logger.TraceContext(
		m.ctxFunc(),
		"browse keypress",
		slog.String("key", msg.String()),
	)

	switch msg.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		m.quitting = true

		return m, tea.Quit

	case tea.KeyEnter:
		if len(m.matches) > 0 {
			m.chosen = m.matches[m.selected].Index
		}

		m.quitting = true

		return m, tea.Quit

	case tea.KeyUp, tea.KeyCtrlP, tea.KeyShiftTab:
		if m.selected > 0 {
			m.selected--
		}

		return m, nil

	case tea.KeyDown, tea.KeyCtrlN, tea.KeyTab:
		if m.selected < len(m.matches)-1 {
			m.selected++
		}

		return m, nil
	}

	var cmd tea.Cmd

	m.input, cmd = m.input.Update(msg)
	m.refresh()

	return m, cmd
}

func (m model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString(m.input.View())
	b.WriteString("\n")

	// Scroll so the selected match stays visible.
	first := max(m.selected-m.rows+1, 0)
	last := min(first+m.rows, len(m.matches))

	for i := first; i < last; i++ {
		match := m.matches[i]
		b.WriteString(renderCandidate(match, i == m.selected))
		b.WriteString(hintStyle.Render(" = "))

		room := m.width - len(match.Str) - 3
		b.WriteString(valueStyle.Render(ellipsize(m.values[match.Index], room)))
		b.WriteString("\n")
	}

	b.WriteString(hintStyle.Render(
		fmt.Sprintf("%d/%d  enter select · esc quit", len(m.matches), len(m.keys)),
	))
	b.WriteString("\n")

	return b.String()
}

// renderCandidate styles the key of match, highlighting matched characters.
func renderCandidate(match fuzzy.Match, selected bool) string {
	baseStyle := suggestionStyle
	highlightStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("4")).
		Bold(true)

	if selected {
		baseStyle = selectedStyle
		highlightStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("4")).
			Bold(true)
	}

	matchSet := make(map[int]bool, len(match.MatchedIndexes))
	for _, idx := range match.MatchedIndexes {
		matchSet[idx] = true
	}

	var b strings.Builder

	for i, r := range match.Str {
		ch := string(r)
		if matchSet[i] {
			b.WriteString(highlightStyle.Render(ch))
		} else {
			b.WriteString(baseStyle.Render(ch))
		}
	}

	return b.String()
}

// ellipsize shortens s to at most n runes, marking the cut with "…".
// Newlines are shown escaped so each variable occupies one row.
func ellipsize(s string, n int) string {
	s = strings.ReplaceAll(s, "\n", `\n`)

	r := []rune(s)
	if len(r) <= n {
		return s
	}

	if n <= 1 {
		return "…"
	}

	return string(r[:n-1]) + "…"
}
