package tmpl

import (
	"io"
	"os"
	"strings"
)

// Template is a parsed template document.
type Template struct {
	name  string
	nodes []Node
}

// ParseFile reads and parses the template at path.
func ParseFile(path string) (*Template, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(path, string(src))
}

// Name returns the name the template was parsed with.
func (t *Template) Name() string {
	return t.name
}

// Nodes returns the parsed tree.
func (t *Template) Nodes() []Node {
	return t.nodes
}

// Arity returns the number of arguments the template needs: one more than
// the highest field index, or zero when it has no fields.
func (t *Template) Arity() int {
	n := 0
	for _, node := range t.nodes {
		if f, ok := node.(Field); ok && f.Index+1 > n {
			n = f.Index + 1
		}
	}
	return n
}

// Render expands the template with args.
func (t *Template) Render(args []Arg) (string, error) {
	var b strings.Builder
	for _, node := range t.nodes {
		switch n := node.(type) {
		case Text:
			b.WriteString(n.Value)
		case Field:
			if err := t.renderField(&b, n, args); err != nil {
				return "", err
			}
		}
	}
	return b.String(), nil
}

// Execute renders the template and writes the result to w.
func (t *Template) Execute(w io.Writer, args []Arg) error {
	out, err := t.Render(args)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, out)
	return err
}

func (t *Template) renderField(b *strings.Builder, f Field, args []Arg) error {
	fail := func(msg string) error {
		return &RenderError{Template: t.name, Offset: f.Offset, Index: f.Index, Msg: msg}
	}

	if f.Index >= len(args) {
		return fail("index out of range for the given values")
	}
	arg := args[f.Index]

	if f.Repeat == nil {
		if arg.Seq {
			return fail("sequence value needs a repeat spec")
		}
		b.WriteString(arg.Text)
		return nil
	}
	if !arg.Seq {
		return fail("repeat spec applied to a plain value")
	}
	f.Repeat.expand(b, arg.Items)
	return nil
}

func (r *Repeat) expand(b *strings.Builder, items []string) {
	for i, item := range items {
		if i > 0 {
			b.WriteString(r.Glue)
		}
		for _, piece := range r.Body {
			if piece.Element {
				b.WriteString(item)
				continue
			}
			b.WriteString(piece.Text)
		}
	}
}
