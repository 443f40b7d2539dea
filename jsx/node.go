package jsx

import (
	"encoding/json"
	"fmt"
	"iter"
	"strings"
	"unicode"
)

// Kind identifies the variant of a [Node].
type Kind int

const (
	// KindElement is a built-in host node, named in lowercase.
	KindElement Kind = iota

	// KindComponent is a user-defined node whose name contains an uppercase
	// character.
	KindComponent

	// KindText is a literal or expression leaf synthesized from a node body.
	KindText
)

// String returns the lowercase name of the kind.
func (k Kind) String() string {
	switch k {
	case KindElement:
		return "element"

	case KindComponent:
		return "component"

	case KindText:
		return "text"

	default:
		return "unknown"
	}
}

// MarshalText implements [encoding.TextMarshaler].
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// KindOf classifies a tag name. Names containing an uppercase character are
// components.
func KindOf(name string) Kind {
	if strings.IndexFunc(name, unicode.IsUpper) >= 0 {
		return KindComponent
	}

	return KindElement
}

// voidTags never have children.
var voidTags = map[string]struct{}{
	"area":   {},
	"base":   {},
	"br":     {},
	"col":    {},
	"embed":  {},
	"hr":     {},
	"img":    {},
	"input":  {},
	"keygen": {},
	"link":   {},
	"meta":   {},
	"param":  {},
	"source": {},
	"track":  {},
	"wbr":    {},
}

// IsVoidTag reports whether name belongs to the fixed void-tag set.
func IsVoidTag(name string) bool {
	_, ok := voidTags[name]

	return ok
}

// Position is a location in the scanned text.
type Position struct {
	Offset int `json:"offset" yaml:"offset"`
	Line   int `json:"line"   yaml:"line"`
	Column int `json:"column" yaml:"column"`
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Value is an attribute value: either a string literal or raw expression
// text that is passed through unquoted.
type Value struct {
	Text string `json:"text" yaml:"text"`
	Raw  bool   `json:"raw"  yaml:"raw"`
}

// Attribute is one name/value pair of an opening tag.
// A spread attribute ({...expr}) has an empty Name and a raw Value.
type Attribute struct {
	Name   string `json:"name,omitempty"   yaml:"name,omitempty"`
	Value  Value  `json:"value"            yaml:"value"`
	Spread bool   `json:"spread,omitempty" yaml:"spread,omitempty"`
}

// Attributes is an insertion-ordered set of attributes unique by name.
type Attributes struct {
	list  []Attribute
	index map[string]int
}

// Set adds attr or, if an attribute of the same name exists, replaces its
// value in place. Spread attributes are always appended.
func (a *Attributes) Set(attr Attribute) {
	if attr.Spread {
		a.list = append(a.list, attr)

		return
	}

	if a.index == nil {
		a.index = make(map[string]int)
	}

	if i, ok := a.index[attr.Name]; ok {
		a.list[i] = attr

		return
	}

	a.index[attr.Name] = len(a.list)
	a.list = append(a.list, attr)
}

// Get returns the attribute with the given name.
func (a Attributes) Get(name string) (Attribute, bool) {
	if i, ok := a.index[name]; ok {
		return a.list[i], true
	}

	return Attribute{}, false
}

// Len returns the number of attributes.
func (a Attributes) Len() int { return len(a.list) }

// All returns an iterator over the attributes in insertion order.
func (a Attributes) All() iter.Seq[Attribute] {
	return func(yield func(Attribute) bool) {
		for _, attr := range a.list {
			if !yield(attr) {
				return
			}
		}
	}
}

// MarshalJSON encodes the attributes as an ordered array.
func (a Attributes) MarshalJSON() ([]byte, error) {
	if len(a.list) == 0 {
		return []byte("[]"), nil
	}

	return json.Marshal(a.list)
}

// MarshalYAML encodes the attributes as an ordered sequence.
func (a Attributes) MarshalYAML() (any, error) {
	if len(a.list) == 0 {
		return []Attribute{}, nil
	}

	return a.list, nil
}

// Node is one vertex of a parsed fragment.
//
// Element and component nodes carry either Children or, for a node whose body
// is one {expression}, the expression text in Raw (braces included). Text
// nodes carry Text: the literal content when Expr is false, or expression
// source when Expr is true.
type Node struct {
	Kind       Kind       `json:"kind"               yaml:"kind"`
	Name       string     `json:"name,omitempty"     yaml:"name,omitempty"`
	Attributes Attributes `json:"attributes"         yaml:"attributes"`
	Children   []*Node    `json:"children,omitempty" yaml:"children,omitempty"`
	Raw        string     `json:"raw,omitempty"      yaml:"raw,omitempty"`
	Text       string     `json:"text,omitempty"     yaml:"text,omitempty"`
	Expr       bool       `json:"expr,omitempty"     yaml:"expr,omitempty"`
	Depth      int        `json:"depth"              yaml:"depth"`
	Void       bool       `json:"void,omitempty"     yaml:"void,omitempty"`
	Pos        Position   `json:"pos"                yaml:"pos"`
}

// IsRaw reports whether the node body is a single opaque expression.
func (n *Node) IsRaw() bool { return n.Raw != "" }

// Walk calls fn for n and every descendant in depth-first order until fn
// returns false.
func (n *Node) Walk(fn func(*Node) bool) bool {
	if !fn(n) {
		return false
	}

	for _, c := range n.Children {
		if !c.Walk(fn) {
			return false
		}
	}

	return true
}

func newText(text string, expr bool, depth int, pos Position) *Node {
	return &Node{
		Kind:  KindText,
		Text:  text,
		Expr:  expr,
		Depth: depth,
		Void:  true,
		Pos:   pos,
	}
}
