package jsx

import (
	"context"
	"errors"
	"testing"
)

func TestExtend(t *testing.T) {
	t.Parallel()

	upper := func(_ *Renderer, content string, _ *Node) string {
		return "T(" + content + ")"
	}

	tests := []struct {
		name   string
		extend any
		input  string
		want   string
	}{
		{
			name:   "nil",
			extend: nil,
			input:  `<p>hi</p>`,
			want:   "VElement('p', null,[\n\tVText('hi')\n])",
		},
		{
			name:   "shorthand label blanks text",
			extend: "h",
			input:  `<p>hi</p>`,
			want:   "h('p', null,[\n\t'hi'\n])",
		},
		{
			name:   "label mapping",
			extend: map[string]any{"element": "E", "component": "C", "text": ""},
			input:  `<A><p>hi</p></A>`,
			want:   "C('A', null,[\n\tE('p', null,[\n\t\t'hi'\n\t])\n])",
		},
		{
			name:   "string mapping",
			extend: map[string]string{"text": "txt"},
			input:  `<p>hi</p>`,
			want:   "VElement('p', null,[\n\ttxt('hi')\n])",
		},
		{
			name:   "unnamed hook function",
			extend: map[string]any{"text": upper},
			input:  `<p>hi</p>`,
			want:   "VElement('p', null,[\n\tT('hi')\n])",
		},
		{
			name:   "named hook type",
			extend: map[string]any{"text": TextHook(upper)},
			input:  `<p>hi</p>`,
			want:   "VElement('p', null,[\n\tT('hi')\n])",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			opts, err := Extend(tt.extend)
			if err != nil {
				t.Fatalf("Extend() error = %v", err)
			}

			got, err := Transform(context.Background(), tt.input, opts...)
			if err != nil {
				t.Fatal(err)
			}

			if got != tt.want {
				t.Errorf("Transform() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestExtend_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		extend any
		want   error
	}{
		{"unsupported type", 42, ErrUnknownOption},
		{"unknown label", map[string]any{"fragment": "F"}, ErrUnknownOption},
		{"unknown hook", map[string]any{"render": func() {}}, ErrUnknownOption},
		{"wrong signature", map[string]any{"props": func(string) string { return "" }}, ErrInvalidHook},
		{"wrong value type", map[string]any{"text": 1}, ErrInvalidHook},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if _, err := Extend(tt.extend); !errors.Is(err, tt.want) {
				t.Errorf("Extend() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestNewConfig(t *testing.T) {
	t.Parallel()

	cfg := NewConfig()
	if cfg.Labels() != DefaultLabels() {
		t.Errorf("Labels() = %+v, want %+v", cfg.Labels(), DefaultLabels())
	}

	if cfg.Strategy() != StrategyScoped || cfg.Strict() || cfg.Cache() {
		t.Errorf("unexpected defaults: %+v", cfg)
	}

	cfg = NewConfig(WithLabel("h"), WithElementLabel("el"), WithStrict(true))
	if want := (Labels{Component: "h", Element: "el"}); cfg.Labels() != want {
		t.Errorf("Labels() = %+v, want %+v", cfg.Labels(), want)
	}

	if !cfg.Strict() {
		t.Error("Strict() = false")
	}

	// Options never mutate a configuration already built.
	base := NewConfig()
	_ = NewConfig(WithConfig(base), WithTextLabel(""))

	if base.Labels().Text != "VText" {
		t.Error("WithConfig aliased the base configuration")
	}
}
