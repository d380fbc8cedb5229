package registry

import (
	"context"

	"github.com/specialistvlad/choicegen/internal/ctxlog"
	"github.com/specialistvlad/choicegen/internal/directive"
)

// ChoiceList is a named, ordered set of option labels for one
// configuration axis.
type ChoiceList struct {
	Name    string
	Options []string
}

// Request is a named generation request: the ordered slots whose choice
// lists are combined.
type Request struct {
	Name  string
	Slots []directive.SlotRef
}

// Registry holds the choice lists and generation requests of a single run.
// Both tables remember the position of the first declaration of a name.
type Registry struct {
	lists        map[string]*ChoiceList
	listOrder    []string
	requests     map[string]*Request
	requestOrder []string
}

// New creates and initializes a new Registry instance.
func New() *Registry {
	return &Registry{
		lists:    make(map[string]*ChoiceList),
		requests: make(map[string]*Request),
	}
}

// FromDeclarations builds a Registry from parsed declarations. A repeated
// name replaces the earlier value and keeps the earlier position.
func FromDeclarations(ctx context.Context, decls []directive.Declaration) *Registry {
	logger := ctxlog.FromContext(ctx)
	r := New()
	for _, decl := range decls {
		switch d := decl.(type) {
		case directive.ListDeclaration:
			if r.DefineList(d.Name, d.Options) {
				logger.Warn("Choice list redefined, the later definition wins.", "list", d.Name, "line", d.Line)
			}
		case directive.RequestDeclaration:
			if r.DefineRequest(d.Name, d.Slots) {
				logger.Warn("Generation request redefined, the later definition wins.", "request", d.Name, "line", d.Line)
			}
		}
	}
	logger.Debug("Registry populated.", "lists", len(r.lists), "requests", len(r.requests))
	return r
}

// DefineList stores a choice list and reports whether it replaced an
// existing one.
func (r *Registry) DefineList(name string, options []string) bool {
	_, replaced := r.lists[name]
	if !replaced {
		r.listOrder = append(r.listOrder, name)
	}
	r.lists[name] = &ChoiceList{Name: name, Options: append([]string(nil), options...)}
	return replaced
}

// DefineRequest stores a generation request and reports whether it replaced
// an existing one.
func (r *Registry) DefineRequest(name string, slots []directive.SlotRef) bool {
	_, replaced := r.requests[name]
	if !replaced {
		r.requestOrder = append(r.requestOrder, name)
	}
	r.requests[name] = &Request{Name: name, Slots: append([]directive.SlotRef(nil), slots...)}
	return replaced
}

// Lookup returns a copy of the options of the named list.
func (r *Registry) Lookup(name string) ([]string, bool) {
	l, ok := r.lists[name]
	if !ok {
		return nil, false
	}
	return append([]string(nil), l.Options...), true
}

// Has reports whether a list with the given name was declared.
func (r *Registry) Has(name string) bool {
	_, ok := r.lists[name]
	return ok
}

// List returns the named choice list.
func (r *Registry) List(name string) (*ChoiceList, bool) {
	l, ok := r.lists[name]
	return l, ok
}

// Lists returns every declared list in declaration order.
func (r *Registry) Lists() []*ChoiceList {
	out := make([]*ChoiceList, 0, len(r.listOrder))
	for _, name := range r.listOrder {
		out = append(out, r.lists[name])
	}
	return out
}

// Requests returns every generation request in declaration order.
func (r *Registry) Requests() []*Request {
	out := make([]*Request, 0, len(r.requestOrder))
	for _, name := range r.requestOrder {
		out = append(out, r.requests[name])
	}
	return out
}
