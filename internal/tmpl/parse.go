package tmpl

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

const (
	openMarker  = "=(="
	closeMarker = "=)="
)

type numbering int

const (
	numberingUnset numbering = iota
	numberingAuto
	numberingManual
)

type parser struct {
	name  string
	src   string
	pos   int
	next  int
	mode  numbering
	text  strings.Builder
	nodes []Node
}

// Parse parses src into a Template. name is only used in diagnostics.
func Parse(name, src string) (*Template, error) {
	p := &parser{name: name, src: src}
	if err := p.parse(); err != nil {
		return nil, err
	}
	return &Template{name: name, nodes: p.nodes}, nil
}

// MustParse is like Parse but panics on error.
func MustParse(name, src string) *Template {
	t, err := Parse(name, src)
	if err != nil {
		panic(err)
	}
	return t
}

func (p *parser) errorf(offset int, format string, args ...any) error {
	return &SyntaxError{Template: p.name, Offset: offset, Msg: fmt.Sprintf(format, args...)}
}

func (p *parser) flush() {
	if p.text.Len() > 0 {
		p.nodes = append(p.nodes, Text{Value: p.text.String()})
		p.text.Reset()
	}
}

func (p *parser) parse() error {
	for p.pos < len(p.src) {
		rest := p.src[p.pos:]
		switch {
		case strings.HasPrefix(rest, openMarker):
			p.text.WriteByte('{')
			p.pos += len(openMarker)
		case strings.HasPrefix(rest, closeMarker):
			p.text.WriteByte('}')
			p.pos += len(closeMarker)
		case strings.HasPrefix(rest, "{{"):
			p.text.WriteByte('{')
			p.pos += 2
		case strings.HasPrefix(rest, "}}"):
			p.text.WriteByte('}')
			p.pos += 2
		case rest[0] == '{':
			p.flush()
			field, err := p.parseField()
			if err != nil {
				return err
			}
			p.nodes = append(p.nodes, field)
		case rest[0] == '}':
			return p.errorf(p.pos, "single '}' encountered")
		default:
			p.text.WriteByte(rest[0])
			p.pos++
		}
	}
	p.flush()
	return nil
}

// parseField consumes one replacement field starting at the opening brace.
func (p *parser) parseField() (Field, error) {
	start := p.pos
	p.pos++

	nameStart := p.pos
	for p.pos < len(p.src) && p.src[p.pos] != ':' && p.src[p.pos] != '}' {
		if p.src[p.pos] == '{' {
			return Field{}, p.errorf(p.pos, "unexpected '{' in field name")
		}
		p.pos++
	}
	if p.pos >= len(p.src) {
		return Field{}, p.errorf(start, "unterminated replacement field")
	}
	name := p.src[nameStart:p.pos]

	spec := ""
	if p.src[p.pos] == ':' {
		p.pos++
		specStart := p.pos
		depth := 0
		for ; p.pos < len(p.src); p.pos++ {
			c := p.src[p.pos]
			if c == '{' {
				depth++
			} else if c == '}' {
				if depth == 0 {
					break
				}
				depth--
			}
		}
		if p.pos >= len(p.src) {
			return Field{}, p.errorf(start, "unterminated replacement field")
		}
		spec = p.src[specStart:p.pos]
	}
	p.pos++ // closing brace

	index, err := p.fieldIndex(start, name)
	if err != nil {
		return Field{}, err
	}

	field := Field{Index: index, Offset: start}
	if spec != "" {
		repeat, err := p.parseRepeat(start, spec)
		if err != nil {
			return Field{}, err
		}
		field.Repeat = repeat
	}
	return field, nil
}

func (p *parser) fieldIndex(offset int, name string) (int, error) {
	if name == "" {
		if p.mode == numberingManual {
			return 0, p.errorf(offset, "cannot switch from manual field numbering to automatic")
		}
		p.mode = numberingAuto
		idx := p.next
		p.next++
		return idx, nil
	}

	for _, c := range name {
		if c < '0' || c > '9' {
			return 0, p.errorf(offset, "invalid field name %q", name)
		}
	}
	if p.mode == numberingAuto {
		return 0, p.errorf(offset, "cannot switch from automatic field numbering to manual")
	}
	p.mode = numberingManual
	idx, err := strconv.Atoi(name)
	if err != nil {
		return 0, p.errorf(offset, "invalid field index %q: %v", name, err)
	}
	return idx, nil
}

// parseRepeat splits <delim><glue><delim><body> and tokenizes the body.
func (p *parser) parseRepeat(offset int, spec string) (*Repeat, error) {
	delim, size := utf8.DecodeRuneInString(spec)
	rest := spec[size:]
	end := strings.IndexRune(rest, delim)
	if end < 0 {
		return nil, p.errorf(offset, "repeat spec %q is missing its second delimiter %q", spec, delim)
	}

	repeat := &Repeat{Delim: delim, Glue: rest[:end]}
	body := rest[end+size:]

	var text strings.Builder
	flush := func() {
		if text.Len() > 0 {
			repeat.Body = append(repeat.Body, Piece{Text: text.String()})
			text.Reset()
		}
	}
	for i := 0; i < len(body); {
		r, n := utf8.DecodeRuneInString(body[i:])
		tail := body[i:]
		switch {
		case r == delim:
			flush()
			repeat.Body = append(repeat.Body, Piece{Element: true})
			i += n
		case strings.HasPrefix(tail, openMarker):
			text.WriteByte('{')
			i += len(openMarker)
		case strings.HasPrefix(tail, closeMarker):
			text.WriteByte('}')
			i += len(closeMarker)
		case strings.HasPrefix(tail, "{{"):
			text.WriteByte('{')
			i += 2
		case strings.HasPrefix(tail, "}}"):
			text.WriteByte('}')
			i += 2
		default:
			text.WriteString(tail[:n])
			i += n
		}
	}
	flush()
	return repeat, nil
}
