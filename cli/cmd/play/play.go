package play

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/lipgloss"
	"github.com/goccy/go-yaml"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ardnew/jsxc/jsx"
	"github.com/ardnew/jsxc/log"
	"github.com/ardnew/jsxc/vdom"
)

// view selects what the output pane shows.
type view int

const (
	viewCode view = iota // code
	viewTree             // tree
	viewHTML             // html
	viewCount
)

func (v view) String() string {
	switch v {
	case viewCode:
		return "code"
	case viewTree:
		return "tree"
	case viewHTML:
		return "html"
	default:
		return fmt.Sprintf("view(%d)", int(v))
	}
}

// Styles.
var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("6")).
			Bold(true)
	flagStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("5"))
	paneStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("15"))
	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	hintStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	ruleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

const (
	defaultWidth  = 80
	defaultHeight = 24
	chromeLines   = 3 // title, rule, hint
)

const sample = `<ul class="items">
  <li id="first">Hello, {name}!</li>
  <Item value={2} />
</ul>`

// model is the Bubble Tea model of the playground.
type model struct {
	ctxFunc  func() context.Context
	logger   log.Logger
	opts     []jsx.Option
	editor   textarea.Model
	output   viewport.Model
	history  *History
	histIdx  int
	result   string
	failed   bool
	width    int
	height   int
	view     view
	strategy jsx.Strategy
	strict   bool
	quitting bool
}

// Run starts the playground on text. Empty text starts from a sample
// fragment. Submitted fragments are kept in a history file under cacheDir.
func Run(
	ctx context.Context,
	text string,
	cacheDir string,
	logger log.Logger,
	opts ...jsx.Option,
) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	var path string
	if cacheDir != "" {
		path = filepath.Join(cacheDir, baseHistory)
	}

	history := NewHistory(path)
	if err := history.Load(); err != nil {
		logger.WarnContext(ctx, "could not load history",
			slog.String("path", path),
			slog.Any("error", err),
		)
	}

	if text == "" {
		text = sample
	}

	m := newModel(ctx, text, history, logger, opts...)

	final, err := tea.NewProgram(m, tea.WithContext(ctx), tea.WithAltScreen()).Run()
	if err != nil {
		return err
	}

	if fm, ok := final.(model); ok {
		if err := history.Add(fm.editor.Value()); err != nil {
			logger.WarnContext(ctx, "could not save history", slog.Any("error", err))
		}
	}

	return nil
}

func newModel(
	ctx context.Context,
	text string,
	history *History,
	logger log.Logger,
	opts ...jsx.Option,
) model {
	cfg := jsx.NewConfig(opts...)

	ed := textarea.New()
	ed.ShowLineNumbers = true
	ed.Placeholder = "markup fragment"
	ed.SetValue(text)
	ed.Focus()

	m := model{
		ctxFunc:  func() context.Context { return ctx },
		logger:   logger,
		opts:     opts,
		editor:   ed,
		output:   viewport.New(defaultWidth, 0),
		history:  history,
		histIdx:  history.Len(),
		strategy: cfg.Strategy(),
		strict:   cfg.Strict(),
	}

	m.resize(defaultWidth, defaultHeight)
	m.refresh()

	return m
}

func (m model) Init() tea.Cmd {
	return textarea.Blink
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)

		return m, nil
	}

	var cmd tea.Cmd

	m.editor, cmd = m.editor.Update(msg)

	return m, cmd
}

func (m model) handleKey(msg tea.KeyMsg) (model, tea.Cmd) {
	m.logger.TraceContext(m.ctxFunc(), "play keypress",
		slog.String("key", msg.String()),
	)

	switch msg.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		m.quitting = true

		return m, tea.Quit

	case tea.KeyCtrlS:
		m.strict = !m.strict
		m.refresh()

		return m, nil

	case tea.KeyCtrlL:
		m.strategy = (m.strategy + 1) % jsx.Strategy(len(strategies()))
		m.refresh()

		return m, nil

	case tea.KeyCtrlO:
		m.view = (m.view + 1) % viewCount
		m.refresh()

		return m, nil

	case tea.KeyCtrlP:
		return m.recall(m.histIdx - 1), nil

	case tea.KeyCtrlN:
		return m.recall(m.histIdx + 1), nil

	case tea.KeyPgUp, tea.KeyPgDown:
		var cmd tea.Cmd

		m.output, cmd = m.output.Update(msg)

		return m, cmd
	}

	var cmd tea.Cmd

	before := m.editor.Value()
	m.editor, cmd = m.editor.Update(msg)

	if m.editor.Value() != before {
		m.histIdx = m.history.Len()
		m.refresh()
	}

	return m, cmd
}

// recall loads history entry i into the editor. Moving past the newest entry
// keeps the current text.
func (m model) recall(i int) model {
	entry, err := m.history.Get(i)
	if err != nil {
		return m
	}

	m.histIdx = i
	m.editor.SetValue(entry)
	m.refresh()

	return m
}

func strategies() []string {
	var out []string
	for s := range jsx.Strategies() {
		out = append(out, s)
	}

	return out
}

func (m *model) resize(width, height int) {
	m.width, m.height = width, height

	pane := max((height-chromeLines)/2, 3)

	m.editor.SetWidth(width)
	m.editor.SetHeight(pane)

	m.output.Width = width
	m.output.Height = max(height-chromeLines-pane, 1)
}

// refresh recomputes the output pane from the editor content.
func (m *model) refresh() {
	m.result, m.failed = m.render(m.editor.Value())

	style := paneStyle
	if m.failed {
		style = errorStyle
	}

	m.output.SetContent(style.Render(m.result))
}

func (m model) config() []jsx.Option {
	return append(m.opts[:len(m.opts):len(m.opts)],
		jsx.WithStrict(m.strict),
		jsx.WithLocator(m.strategy),
		jsx.WithLogger(m.logger),
	)
}

// render returns the output for text in the current view and whether it is
// an error message.
func (m model) render(text string) (string, bool) {
	ctx := m.ctxFunc()
	opts := m.config()

	switch m.view {
	case viewTree:
		var trees []*jsx.Node

		for f := range jsx.Fragments(text, m.strategy) {
			root, err := jsx.Parse(ctx, f.Text, opts...)
			if err != nil {
				return err.Error(), true
			}

			trees = append(trees, root)
		}

		buf, err := yaml.Marshal(trees)
		if err != nil {
			return err.Error(), true
		}

		return string(buf), false

	case viewHTML:
		code, err := jsx.Transform(ctx, text, opts...)
		if err != nil {
			return err.Error(), true
		}

		d, err := vdom.Evaluate(ctx, strings.TrimSpace(code), nil, opts...)
		if err != nil {
			return err.Error(), true
		}

		return d.HTML(), false

	default:
		code, err := jsx.Transform(ctx, text, opts...)
		if err != nil {
			return err.Error(), true
		}

		return code, false
	}
}

func (m model) View() string {
	if m.quitting {
		return ""
	}

	strict := "off"
	if m.strict {
		strict = "on"
	}

	title := titleStyle.Render("jsxc play") + "  " +
		flagStyle.Render(fmt.Sprintf("strict:%s  locator:%s  view:%s",
			strict, m.strategy, m.view))

	hint := hintStyle.Render(
		"ctrl+s strict • ctrl+l locator • ctrl+o view • ctrl+p/n history • esc quit")

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		m.editor.View(),
		ruleStyle.Render(strings.Repeat("─", max(m.width, 1))),
		m.output.View(),
		hint,
	)
}
