// internal/directive/types.go
package directive

import "fmt"

const (
	// ListPrefix marks a choice list declaration.
	ListPrefix = "CHOICES_"
	// RequestPrefix marks a generation request declaration.
	RequestPrefix = "LIST_CHOICES_"
	// VariadicSuffix marks a slot reference that expands to the power set
	// of its list.
	VariadicSuffix = "..."

	defineKeyword = "#define"
)

// Declaration is the tagged result of classifying one input line. The
// concrete type is one of ListDeclaration, RequestDeclaration,
// OtherDeclaration or Malformed.
type Declaration interface {
	// LineNumber is the 1-based position of the line in the input stream.
	LineNumber() int
	declaration()
}

// ListDeclaration declares a named choice list.
type ListDeclaration struct {
	Line    int
	Name    string
	Options []string
}

// SlotRef references a choice list from a generation request.
type SlotRef struct {
	List     string
	Variadic bool
}

// String renders the reference the way it is written in the input.
func (s SlotRef) String() string {
	if s.Variadic {
		return s.List + VariadicSuffix
	}
	return s.List
}

// RequestDeclaration declares a named generation request.
type RequestDeclaration struct {
	Line  int
	Name  string
	Slots []SlotRef
}

// OtherDeclaration is a well-formed #define that is neither a list nor a
// request.
type OtherDeclaration struct {
	Line int
	Name string
}

// Malformed is a line that cannot be accepted.
type Malformed struct {
	Line   int
	Text   string
	Reason string
}

func (d ListDeclaration) LineNumber() int    { return d.Line }
func (d RequestDeclaration) LineNumber() int { return d.Line }
func (d OtherDeclaration) LineNumber() int   { return d.Line }
func (d Malformed) LineNumber() int          { return d.Line }

func (ListDeclaration) declaration()    {}
func (RequestDeclaration) declaration() {}
func (OtherDeclaration) declaration()   {}
func (Malformed) declaration()          {}

// ParseError is returned for the first Malformed line of a stream.
type ParseError struct {
	Line   int
	Text   string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %s: %q", e.Line, e.Reason, e.Text)
}
