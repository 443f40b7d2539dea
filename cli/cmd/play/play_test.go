package play

import (
	"context"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ardnew/jsxc/jsx"
	"github.com/ardnew/jsxc/log"
)

func update(t *testing.T, m model, msg tea.Msg) model {
	t.Helper()

	next, _ := m.Update(msg)

	got, ok := next.(model)
	if !ok {
		t.Fatalf("Update() returned %T", next)
	}

	return got
}

func TestModel_Views(t *testing.T) {
	t.Parallel()

	m := newModel(context.Background(), `<p id="x">hi</p>`, NewHistory(""), log.Logger{})

	if want := "VElement('p', {id: 'x'},["; !strings.Contains(m.result, want) || m.failed {
		t.Fatalf("code view = %q, want %q", m.result, want)
	}

	m = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlO})
	if m.view != viewTree || !strings.Contains(m.result, "name: p") {
		t.Errorf("tree view = %q", m.result)
	}

	m = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlO})
	if m.view != viewHTML || m.result != `<p id="x">hi</p>` {
		t.Errorf("html view = %q", m.result)
	}

	m = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlO})
	if m.view != viewCode {
		t.Errorf("view = %v, want %v", m.view, viewCode)
	}
}

func TestModel_ToggleStrict(t *testing.T) {
	t.Parallel()

	m := newModel(context.Background(), `<p>x</p>`, NewHistory(""), log.Logger{})
	if m.strict {
		t.Fatal("strict mode enabled by default")
	}

	m = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})
	if !m.strict {
		t.Fatal("ctrl+s did not enable strict mode")
	}

	m = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})
	if m.strict {
		t.Error("ctrl+s did not disable strict mode")
	}
}

func TestModel_ToggleLocator(t *testing.T) {
	t.Parallel()

	m := newModel(context.Background(), "", NewHistory(""), log.Logger{},
		jsx.WithLocator(jsx.StrategyPattern))

	if m.strategy != jsx.StrategyPattern {
		t.Fatalf("strategy = %v, want %v", m.strategy, jsx.StrategyPattern)
	}

	m = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlL})
	if m.strategy != jsx.StrategyScoped {
		t.Errorf("strategy = %v, want %v", m.strategy, jsx.StrategyScoped)
	}
}

func TestModel_Typing(t *testing.T) {
	t.Parallel()

	m := newModel(context.Background(), "", NewHistory(""), log.Logger{})
	if m.result != "" {
		t.Fatalf("empty editor rendered %q", m.result)
	}

	for _, r := range "<br/>" {
		m = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}

	if want := "VElement('br', null,\n\tnull\n)"; m.result != want {
		t.Errorf("result = %q, want %q", m.result, want)
	}
}

func TestModel_Recall(t *testing.T) {
	t.Parallel()

	h := NewHistory("")
	for _, e := range []string{"<a>1</a>", "<b>2</b>"} {
		if err := h.Add(e); err != nil {
			t.Fatal(err)
		}
	}

	m := newModel(context.Background(), "<i/>", h, log.Logger{})

	m = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlP})
	if got := m.editor.Value(); got != "<b>2</b>" {
		t.Errorf("after ctrl+p editor = %q", got)
	}

	m = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlP})
	m = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlP})
	if got := m.editor.Value(); got != "<a>1</a>" {
		t.Errorf("recall past oldest: editor = %q", got)
	}

	m = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlN})
	if got := m.editor.Value(); got != "<b>2</b>" {
		t.Errorf("after ctrl+n editor = %q", got)
	}
}

func TestModel_Quit(t *testing.T) {
	t.Parallel()

	m := newModel(context.Background(), "", NewHistory(""), log.Logger{})

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if cmd == nil {
		t.Fatal("esc returned no command")
	}

	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("esc did not quit")
	}

	if next.View() != "" {
		t.Error("View() not empty after quitting")
	}
}
