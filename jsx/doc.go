// Package jsx expands markup fragments embedded in script source text into
// nested call expressions.
//
// A fragment is a balanced tag span such as
//
//	<div id="x">hi</div>
//
// found inside otherwise ordinary source. The surrounding text is never
// parsed: a [Locator] identifies candidate spans by their syntactic
// neighborhood, each span is parsed into a [Node] tree, and the tree is
// rendered back into text by a [Renderer]:
//
//	VElement('div', {id: 'x'},[
//		VText('hi')
//	])
//
// Everything outside the recognized spans is reproduced byte-for-byte.
//
// # Nodes
//
// Tag names containing an uppercase character are components, all others are
// elements. Text leaves are synthesized from literal runs and from
// brace-delimited expressions in a node body. The tags area, base, br, col,
// embed, hr, img, input, keygen, link, meta, param, source, track and wbr are
// void and never have children.
//
// A node whose entire body is a single {expression} is a raw node. Its
// expression is passed through as opaque script text after any fragments
// nested inside it have been expanded.
//
// # Rendering
//
// The three output identifiers are configured with [WithComponentLabel],
// [WithElementLabel] and [WithTextLabel], or all at once with [WithLabel].
// Each of the seven rendering steps (type, props, children, node, element,
// component, text) can be replaced with a hook, see [Hooks].
//
// # Errors
//
// By default malformed fragments degrade silently into best-effort output.
// [WithStrict] turns the three structural faults into errors whose kind is
// one of [UnterminatedTag], [UnbalancedExpression] or [UnmatchedClosingTag].
package jsx
