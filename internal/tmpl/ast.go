package tmpl

import "fmt"

// Node is one element of a parsed template.
type Node interface {
	node()
}

// Text is literal output.
type Text struct {
	Value string
}

// Field substitutes one argument.
type Field struct {
	Index int
	// Repeat is nil for a plain substitution.
	Repeat *Repeat
	// Offset is the byte position of the opening brace, for diagnostics.
	Offset int
}

// Repeat expands a sequence argument element by element.
type Repeat struct {
	Delim rune
	Glue  string
	Body  []Piece
}

// Piece is a run of body text, or the element placeholder when Element is
// set.
type Piece struct {
	Text    string
	Element bool
}

func (Text) node()  {}
func (Field) node() {}

// Arg is a value substituted into a template: plain text, or a sequence
// when Seq is set.
type Arg struct {
	Text  string
	Items []string
	Seq   bool
}

// Scalar creates a plain text argument.
func Scalar(s string) Arg {
	return Arg{Text: s}
}

// Sequence creates a sequence argument.
func Sequence(items ...string) Arg {
	return Arg{Items: items, Seq: true}
}

// SyntaxError reports a template that cannot be parsed.
type SyntaxError struct {
	Template string
	Offset   int
	Msg      string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("template %s: offset %d: %s", e.Template, e.Offset, e.Msg)
}

// RenderError reports a field that cannot be rendered with the given
// arguments.
type RenderError struct {
	Template string
	Offset   int
	Index    int
	Msg      string
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("template %s: field {%d} at offset %d: %s", e.Template, e.Index, e.Offset, e.Msg)
}
