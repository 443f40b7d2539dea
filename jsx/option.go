package jsx

import (
	"fmt"
	"log/slog"
	"maps"
	"slices"

	"github.com/ardnew/jsxc/log"
)

// Labels are the identifiers emitted for each node kind.
type Labels struct {
	Component string
	Element   string
	Text      string
}

// DefaultLabels returns the identifiers used when none are configured.
func DefaultLabels() Labels {
	return Labels{
		Component: "VComponent",
		Element:   "VElement",
		Text:      "VText",
	}
}

// Hook signatures. Each receives the [Renderer] so that an override can defer
// to the default implementation or to other hooks.
type (
	TypeHook      func(r *Renderer, name string, n *Node) string
	PropsHook     func(r *Renderer, attrs Attributes, n *Node) string
	ChildrenHook  func(r *Renderer, children []*Node, n *Node) string
	NodeHook      func(r *Renderer, n *Node) string
	ElementHook   func(r *Renderer, typ, props, children string, n *Node) string
	ComponentHook func(r *Renderer, typ, props, children string, n *Node) string
	TextHook      func(r *Renderer, content string, n *Node) string
)

// Hooks holds the rendering overrides. A nil field selects the default.
type Hooks struct {
	Type      TypeHook
	Props     PropsHook
	Children  ChildrenHook
	Node      NodeHook
	Element   ElementHook
	Component ComponentHook
	Text      TextHook
}

func (h Hooks) empty() bool {
	return h.Type == nil && h.Props == nil && h.Children == nil &&
		h.Node == nil && h.Element == nil && h.Component == nil &&
		h.Text == nil
}

// Config is the immutable configuration of a transform.
type Config struct {
	logger   log.Logger
	labels   Labels
	hooks    Hooks
	strategy Strategy
	strict   bool
	cache    bool
}

// Option applies a configuration option to Config.
type Option func(Config) Config

// NewConfig returns the default configuration modified by opts.
func NewConfig(opts ...Option) Config {
	return apply(Config{
		labels:   DefaultLabels(),
		strategy: DefaultStrategy,
	}, opts...)
}

// apply applies multiple options to a config.
func apply(cfg Config, opts ...Option) Config {
	for _, opt := range opts {
		if opt != nil {
			cfg = opt(cfg)
		}
	}

	return cfg
}

func (c Config) Labels() Labels     { return c.labels }
func (c Config) Hooks() Hooks       { return c.hooks }
func (c Config) Strategy() Strategy { return c.strategy }
func (c Config) Strict() bool       { return c.strict }
func (c Config) Cache() bool        { return c.cache }
func (c Config) Logger() log.Logger { return c.logger }

// WithConfig replaces the configuration with cfg.
func WithConfig(cfg Config) Option {
	return func(Config) Config { return cfg }
}

// WithComponentLabel sets the identifier emitted for components.
func WithComponentLabel(label string) Option {
	return func(c Config) Config {
		c.labels.Component = label

		return c
	}
}

// WithElementLabel sets the identifier emitted for elements.
func WithElementLabel(label string) Option {
	return func(c Config) Config {
		c.labels.Element = label

		return c
	}
}

// WithTextLabel sets the identifier emitted for text nodes. An empty label
// renders text content unwrapped.
func WithTextLabel(label string) Option {
	return func(c Config) Config {
		c.labels.Text = label

		return c
	}
}

// WithLabel uses label for both components and elements and renders text
// content unwrapped.
func WithLabel(label string) Option {
	return func(c Config) Config {
		c.labels = Labels{Component: label, Element: label}

		return c
	}
}

// WithTypeHook overrides the type hook.
func WithTypeHook(h TypeHook) Option {
	return func(c Config) Config {
		c.hooks.Type = h

		return c
	}
}

// WithPropsHook overrides the props hook.
func WithPropsHook(h PropsHook) Option {
	return func(c Config) Config {
		c.hooks.Props = h

		return c
	}
}

// WithChildrenHook overrides the children hook.
func WithChildrenHook(h ChildrenHook) Option {
	return func(c Config) Config {
		c.hooks.Children = h

		return c
	}
}

// WithNodeHook overrides the node hook.
func WithNodeHook(h NodeHook) Option {
	return func(c Config) Config {
		c.hooks.Node = h

		return c
	}
}

// WithElementHook overrides the element hook.
func WithElementHook(h ElementHook) Option {
	return func(c Config) Config {
		c.hooks.Element = h

		return c
	}
}

// WithComponentHook overrides the component hook.
func WithComponentHook(h ComponentHook) Option {
	return func(c Config) Config {
		c.hooks.Component = h

		return c
	}
}

// WithTextHook overrides the text hook.
func WithTextHook(h TextHook) Option {
	return func(c Config) Config {
		c.hooks.Text = h

		return c
	}
}

// WithStrict reports malformed fragments as errors instead of degrading.
func WithStrict(strict bool) Option {
	return func(c Config) Config {
		c.strict = strict

		return c
	}
}

// WithLocator selects the fragment boundary strategy.
func WithLocator(s Strategy) Option {
	return func(c Config) Config {
		c.strategy = s

		return c
	}
}

// WithLogger sets the logger that traces locator and builder decisions.
func WithLogger(logger log.Logger) Option {
	return func(c Config) Config {
		c.logger = logger

		return c
	}
}

// WithCache enables the process-wide render cache. Configurations with hooks
// never use it.
func WithCache(enable bool) Option {
	return func(c Config) Config {
		c.cache = enable

		return c
	}
}

// Extend converts a configuration value into options.
//
// A string is shorthand for [WithLabel]. A map[string]any may set the labels
// "component", "element" and "text" to strings, and the hooks "type",
// "props", "children", "node", "element", "component" and "text" to
// functions. The label and hook sharing a name are told apart by the type of
// the value.
func Extend(v any) ([]Option, error) {
	switch v := v.(type) {
	case nil:
		return nil, nil

	case string:
		return []Option{WithLabel(v)}, nil

	case map[string]string:
		m := make(map[string]any, len(v))
		for k, s := range v {
			m[k] = s
		}

		return Extend(m)

	case map[string]any:
		opts := make([]Option, 0, len(v))

		for _, name := range slices.Sorted(maps.Keys(v)) {
			opt, err := extendOne(name, v[name])
			if err != nil {
				return nil, err
			}

			opts = append(opts, opt)
		}

		return opts, nil

	default:
		return nil, ErrUnknownOption.With(
			slog.String("type", fmt.Sprintf("%T", v)),
		)
	}
}

func extendOne(name string, value any) (Option, error) {
	if label, ok := value.(string); ok {
		switch name {
		case "component":
			return WithComponentLabel(label), nil

		case "element":
			return WithElementLabel(label), nil

		case "text":
			return WithTextLabel(label), nil

		default:
			return nil, ErrUnknownOption.With(slog.String("option", name))
		}
	}

	if opt := hookOption(name, value); opt != nil {
		return opt, nil
	}

	switch name {
	case "type", "props", "children", "node", "element", "component", "text":
		return nil, ErrInvalidHook.With(
			slog.String("hook", name),
			slog.String("type", fmt.Sprintf("%T", value)),
		)

	default:
		return nil, ErrUnknownOption.With(slog.String("option", name))
	}
}

// hookOption returns nil when value is not a function of the hook's
// signature.
func hookOption(name string, value any) Option {
	switch name {
	case "type":
		switch f := value.(type) {
		case TypeHook:
			return WithTypeHook(f)
		case func(*Renderer, string, *Node) string:
			return WithTypeHook(f)
		}

	case "props":
		switch f := value.(type) {
		case PropsHook:
			return WithPropsHook(f)
		case func(*Renderer, Attributes, *Node) string:
			return WithPropsHook(f)
		}

	case "children":
		switch f := value.(type) {
		case ChildrenHook:
			return WithChildrenHook(f)
		case func(*Renderer, []*Node, *Node) string:
			return WithChildrenHook(f)
		}

	case "node":
		switch f := value.(type) {
		case NodeHook:
			return WithNodeHook(f)
		case func(*Renderer, *Node) string:
			return WithNodeHook(f)
		}

	case "element":
		switch f := value.(type) {
		case ElementHook:
			return WithElementHook(f)
		case func(*Renderer, string, string, string, *Node) string:
			return WithElementHook(f)
		}

	case "component":
		switch f := value.(type) {
		case ComponentHook:
			return WithComponentHook(f)
		case func(*Renderer, string, string, string, *Node) string:
			return WithComponentHook(f)
		}

	case "text":
		switch f := value.(type) {
		case TextHook:
			return WithTextHook(f)
		case func(*Renderer, string, *Node) string:
			return WithTextHook(f)
		}
	}

	return nil
}
