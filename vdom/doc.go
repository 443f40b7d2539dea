// Package vdom evaluates generated call-expression text into descriptor
// trees.
//
// The output of [jsx.Transform] is a nested call of the configured element,
// component and text labels. [Evaluate] compiles that text with expr-lang,
// binding each label to a constructor, and returns the resulting
// [Descriptor]. Script values referenced by the expression are supplied in an
// environment map:
//
//	code, _ := jsx.Transform(ctx, `<p>{greeting}</p>`)
//	d, _ := vdom.Evaluate(ctx, code, map[string]any{"greeting": "hi"})
//	d.WriteHTML(os.Stdout) // <p>hi</p>
//
// Only expressions within the expr-lang grammar evaluate. Generated code that
// relies on host-language constructs such as arrow functions or spread
// properties is reported as a compile error.
package vdom
