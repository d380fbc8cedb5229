// internal/directive/parser.go
package directive

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"unicode"

	"github.com/specialistvlad/choicegen/internal/ctxlog"
)

// maxLineSize bounds a single declaration line. Request lines produced by
// the preprocessor stay far below this.
const maxLineSize = 1 << 20

// Classify turns a single input line into a Declaration. It never fails;
// problems are reported as a Malformed value.
func Classify(lineNo int, line string) Declaration {
	text := strings.TrimSpace(line)

	keyword, rest := splitToken(text)
	if keyword != defineKeyword {
		return Malformed{Line: lineNo, Text: text, Reason: "not a #define directive"}
	}

	name, value := splitToken(rest)
	if name == "" {
		return Malformed{Line: lineNo, Text: text, Reason: "#define without a name"}
	}

	switch {
	case strings.HasPrefix(name, RequestPrefix):
		reqName := strings.TrimPrefix(name, RequestPrefix)
		if reqName == "" {
			return Malformed{Line: lineNo, Text: text, Reason: "empty request name"}
		}
		items, reason := splitValues(value)
		if reason != "" {
			return Malformed{Line: lineNo, Text: text, Reason: reason}
		}
		slots := make([]SlotRef, 0, len(items))
		for _, item := range items {
			ref := SlotRef{List: item}
			if strings.HasSuffix(item, VariadicSuffix) {
				ref = SlotRef{List: strings.TrimSpace(strings.TrimSuffix(item, VariadicSuffix)), Variadic: true}
			}
			if ref.List == "" {
				return Malformed{Line: lineNo, Text: text, Reason: "variadic marker without a list name"}
			}
			slots = append(slots, ref)
		}
		return RequestDeclaration{Line: lineNo, Name: reqName, Slots: slots}

	case strings.HasPrefix(name, ListPrefix):
		listName := strings.TrimPrefix(name, ListPrefix)
		if listName == "" {
			return Malformed{Line: lineNo, Text: text, Reason: "empty choice list name"}
		}
		options, reason := splitValues(value)
		if reason != "" {
			return Malformed{Line: lineNo, Text: text, Reason: reason}
		}
		seen := make(map[string]struct{}, len(options))
		for _, opt := range options {
			if _, dup := seen[opt]; dup {
				return Malformed{Line: lineNo, Text: text, Reason: fmt.Sprintf("duplicate option %q", opt)}
			}
			seen[opt] = struct{}{}
		}
		return ListDeclaration{Line: lineNo, Name: listName, Options: options}

	default:
		return OtherDeclaration{Line: lineNo, Name: name}
	}
}

// Parse reads every line of r and returns the accepted declarations in
// input order. The first Malformed line aborts parsing with a *ParseError.
func Parse(ctx context.Context, r io.Reader) ([]Declaration, error) {
	logger := ctxlog.FromContext(ctx)

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	var decls []Declaration
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}

		decl := Classify(lineNo, line)
		switch d := decl.(type) {
		case Malformed:
			return nil, &ParseError{Line: d.Line, Text: d.Text, Reason: d.Reason}
		case OtherDeclaration:
			logger.Debug("Ignoring unrelated define.", "line", d.Line, "name", d.Name)
		}
		decls = append(decls, decl)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read declarations: %w", err)
	}

	logger.Debug("Declarations parsed.", "lines", lineNo, "declarations", len(decls))
	return decls, nil
}

// splitToken returns the first whitespace-delimited token of s and the
// remainder with leading whitespace removed.
func splitToken(s string) (string, string) {
	s = strings.TrimLeftFunc(s, unicode.IsSpace)
	idx := strings.IndexFunc(s, unicode.IsSpace)
	if idx < 0 {
		return s, ""
	}
	return s[:idx], strings.TrimLeftFunc(s[idx:], unicode.IsSpace)
}

// splitValues splits a comma-separated value into trimmed items. An empty
// value yields no items; an empty item inside a non-empty value is rejected.
func splitValues(value string) ([]string, string) {
	value = strings.TrimSpace(value)
	if value == "" {
		return []string{}, ""
	}
	parts := strings.Split(value, ",")
	items := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			return nil, "empty item in comma-separated value"
		}
		items = append(items, p)
	}
	return items, ""
}
