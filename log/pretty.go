package log

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"strconv"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

// palette holds the styles used to render each kind of log value. Styles are
// bound to a renderer for the output writer, so color is dropped when the
// writer is not a terminal.
type palette struct {
	key, str, num, dur, when, null lipgloss.Style
	yes, no                        lipgloss.Style
	trace, debug, info, warn, fail lipgloss.Style
}

func newPalette(w io.Writer) palette {
	r := lipgloss.NewRenderer(w)
	fg := func(c string) lipgloss.Style {
		return r.NewStyle().Foreground(lipgloss.Color(c))
	}

	return palette{
		key:   fg("8"),
		str:   fg("6"),
		num:   fg("3"),
		dur:   fg("5"),
		when:  fg("4"),
		null:  fg("8"),
		yes:   fg("2"),
		no:    fg("1"),
		trace: fg("8"),
		debug: fg("4"),
		info:  fg("2"),
		warn:  fg("3").Bold(true),
		fail:  fg("1").Bold(true),
	}
}

func (p palette) level(l slog.Level) lipgloss.Style {
	switch {
	case l >= slog.LevelError:
		return p.fail
	case l >= slog.LevelWarn:
		return p.warn
	case l >= slog.LevelInfo:
		return p.info
	case l > slog.Level(LevelTrace):
		return p.debug
	default:
		return p.trace
	}
}

// value renders v in the style of its kind.
func (p palette) value(v slog.Value) string {
	switch v.Kind() {
	case slog.KindString:
		return p.str.Render(v.String())

	case slog.KindInt64:
		return p.num.Render(strconv.FormatInt(v.Int64(), 10))

	case slog.KindUint64:
		return p.num.Render(strconv.FormatUint(v.Uint64(), 10))

	case slog.KindFloat64:
		return p.num.Render(strconv.FormatFloat(v.Float64(), 'g', -1, 64))

	case slog.KindBool:
		if v.Bool() {
			return p.yes.Render("true")
		}

		return p.no.Render("false")

	case slog.KindDuration:
		return p.dur.Render(v.Duration().String())

	case slog.KindTime:
		return p.when.Render(v.Time().String())

	default:
		if v.Any() == nil {
			return p.null.Render("null")
		}

		return p.str.Render(fmt.Sprint(v.Any()))
	}
}

// prettyHandler is a [slog.Handler] producing styled output for terminals.
// Attributes are flattened: group members are keyed "group.key".
type prettyHandler struct {
	opts   slog.HandlerOptions
	mu     *sync.Mutex
	w      io.Writer
	style  palette
	attrs  []slog.Attr
	groups []string
	json   bool
}

func newPrettyTextHandler(w io.Writer, opts *slog.HandlerOptions) *prettyHandler {
	return newPrettyHandler(w, opts, false)
}

func newPrettyJSONHandler(w io.Writer, opts *slog.HandlerOptions) *prettyHandler {
	return newPrettyHandler(w, opts, true)
}

func newPrettyHandler(w io.Writer, opts *slog.HandlerOptions, json bool) *prettyHandler {
	if opts == nil {
		opts = &slog.HandlerOptions{}
	}

	return &prettyHandler{
		opts:  *opts,
		mu:    &sync.Mutex{},
		w:     w,
		style: newPalette(w),
		json:  json,
	}
}

func (h *prettyHandler) Enabled(_ context.Context, level slog.Level) bool {
	threshold := slog.LevelInfo
	if h.opts.Level != nil {
		threshold = h.opts.Level.Level()
	}

	return level >= threshold
}

func (h *prettyHandler) Handle(_ context.Context, r slog.Record) error {
	fields := make([]slog.Attr, 0, 4+len(h.attrs)+r.NumAttrs())

	builtin := []slog.Attr{
		slog.Time(slog.TimeKey, r.Time),
		slog.Any(slog.LevelKey, r.Level),
	}

	if h.opts.AddSource {
		if src := r.Source(); src != nil {
			builtin = append(builtin,
				slog.String(slog.SourceKey, fmt.Sprintf("%s:%d", src.File, src.Line)))
		}
	}

	builtin = append(builtin, slog.String(slog.MessageKey, r.Message))

	for _, a := range builtin {
		if a.Key == slog.TimeKey && r.Time.IsZero() {
			continue
		}

		if a = h.replace(nil, a); a.Key != "" {
			fields = append(fields, a)
		}
	}

	fields = append(fields, h.attrs...)

	r.Attrs(func(a slog.Attr) bool {
		fields = h.flatten(fields, h.groups, a)

		return true
	})

	var buf bytes.Buffer

	if h.json {
		h.encodeJSON(&buf, r.Level, fields)
	} else {
		h.encodeText(&buf, r.Level, fields)
	}

	buf.WriteByte('\n')

	h.mu.Lock()
	defer h.mu.Unlock()

	_, err := h.w.Write(buf.Bytes())

	return err
}

func (h *prettyHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	c := *h
	c.attrs = slices.Clip(h.attrs)

	for _, a := range attrs {
		c.attrs = h.flatten(c.attrs, h.groups, a)
	}

	return &c
}

func (h *prettyHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}

	c := *h
	c.groups = append(slices.Clip(h.groups), name)

	return &c
}

func (h *prettyHandler) replace(groups []string, a slog.Attr) slog.Attr {
	if h.opts.ReplaceAttr == nil || a.Value.Kind() == slog.KindGroup {
		return a
	}

	return h.opts.ReplaceAttr(groups, a)
}

// flatten appends a to dst, expanding groups and qualifying keys with the
// open group names.
func (h *prettyHandler) flatten(dst []slog.Attr, groups []string, a slog.Attr) []slog.Attr {
	a.Value = a.Value.Resolve()

	if a.Value.Kind() == slog.KindGroup {
		members := a.Value.Group()
		if len(members) == 0 {
			return dst
		}

		inner := groups
		if a.Key != "" {
			inner = append(slices.Clip(groups), a.Key)
		}

		for _, m := range members {
			dst = h.flatten(dst, inner, m)
		}

		return dst
	}

	if a = h.replace(groups, a); a.Key == "" {
		return dst
	}

	if len(groups) > 0 {
		a.Key = strings.Join(groups, ".") + "." + a.Key
	}

	return append(dst, a)
}

func (h *prettyHandler) render(level slog.Level, a slog.Attr) string {
	if a.Key == slog.LevelKey {
		return h.style.level(level).Render(a.Value.String())
	}

	return h.style.value(a.Value)
}

func (h *prettyHandler) encodeText(buf *bytes.Buffer, level slog.Level, fields []slog.Attr) {
	for i, a := range fields {
		if i > 0 {
			buf.WriteByte(' ')
		}

		buf.WriteString(h.style.key.Render(a.Key))
		buf.WriteByte('=')
		buf.WriteString(h.render(level, a))
	}
}

func (h *prettyHandler) encodeJSON(buf *bytes.Buffer, level slog.Level, fields []slog.Attr) {
	buf.WriteString("{")

	for i, a := range fields {
		if i > 0 {
			buf.WriteByte(',')
		}

		buf.WriteString("\n  ")
		buf.WriteString(h.style.key.Render(a.Key))
		buf.WriteString(": ")
		buf.WriteString(h.render(level, a))
	}

	buf.WriteString("\n}")
}
