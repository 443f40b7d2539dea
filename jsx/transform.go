package jsx

import (
	"context"
	"io"
	"log/slog"
	"strings"

	"github.com/klauspost/readahead"
)

// Transform replaces every fragment found in input with its rendered call
// expression. Text outside fragments is reproduced unchanged, and input
// without fragments is returned as is.
//
// In strict mode the first malformed fragment aborts the transform with an
// [*Error]; otherwise malformed fragments render best-effort.
func Transform(ctx context.Context, input string, opts ...Option) (string, error) {
	r := newRenderer(ctx, NewConfig(opts...))

	out := r.Expand(input)
	if r.err != nil {
		return "", r.err
	}

	r.cfg.logger.TraceContext(ctx, "transform complete",
		slog.Int("input_bytes", len(input)),
		slog.Int("output_bytes", len(out)),
	)

	return out, nil
}

// TransformReader reads all of rd and transforms it.
func TransformReader(
	ctx context.Context,
	rd io.Reader,
	opts ...Option,
) (string, error) {
	ra := readahead.NewReader(rd)
	defer ra.Close()

	data, err := io.ReadAll(ra)
	if err != nil {
		return "", ErrReadInput.Wrap(err).
			With(slog.String("source", "reader"))
	}

	return Transform(ctx, string(data), opts...)
}

// Parse parses one fragment into a tree. The fragment must begin with its
// root tag; text after the root closes is ignored.
func Parse(ctx context.Context, fragment string, opts ...Option) (*Node, error) {
	return parse(ctx, fragment, NewConfig(opts...))
}

// Render renders a tree parsed by [Parse].
func Render(ctx context.Context, n *Node, opts ...Option) (string, error) {
	r := newRenderer(ctx, NewConfig(opts...))

	out := r.Node(n)
	if r.err != nil {
		return "", r.err
	}

	return out, nil
}

// Expand replaces the fragments in src with their rendered text. Fragments
// nested in src start again at depth 1.
func (r *Renderer) Expand(src string) string {
	var (
		b     strings.Builder
		count int
	)

	l := NewLocator(src, r.cfg.strategy)

	for f := range l.All() {
		if count == 0 {
			b.Grow(len(src))
			b.WriteString(f.Prefix)
		}

		count++

		r.cfg.logger.TraceContext(r.ctx, "fragment located",
			slog.Int("start", f.Start),
			slog.Int("end", f.End),
			slog.String("locator", r.cfg.strategy.String()),
		)

		b.WriteString(r.fragment(f.Text))
		b.WriteString(f.Suffix)
	}

	r.fail(l.Err())

	if count == 0 {
		return src
	}

	return b.String()
}

// fragment renders one located fragment, consulting the cache when enabled.
func (r *Renderer) fragment(text string) string {
	var key uint64

	if r.cfg.cacheable() {
		key = cacheKey(text, r.key)
		if out, ok := loadRendered(key); ok {
			r.cfg.logger.TraceContext(r.ctx, "cache hit",
				slog.Int("bytes", len(text)))

			return out
		}
	}

	n, err := parse(r.ctx, text, r.cfg)

	r.fail(err)

	if n == nil {
		return text
	}

	prev := r.err
	out := r.Node(n)

	if r.cfg.cacheable() && err == nil && r.err == prev {
		storeRendered(key, out)
	}

	return out
}
