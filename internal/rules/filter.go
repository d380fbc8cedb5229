package rules

import (
	"fmt"

	"github.com/specialistvlad/choicegen/internal/combo"
)

// Roles binds each semantic role to the name of the choice list that plays
// it in a request.
type Roles struct {
	Redundancy string
	Conversion string
	StrategyA  string
	StrategyB  string
}

// DefaultRoles returns the bindings used by the solver's request
// declarations.
func DefaultRoles() Roles {
	return Roles{
		Redundancy: "RESTRICTION",
		Conversion: "CONVERSION",
		StrategyA:  "SELECTOR",
		StrategyB:  "LOWER_BOUND",
	}
}

// Filter applies the enabled rules, in order, to tuples.
type Filter struct {
	roles  Roles
	labels Labels
	rules  []Rule
}

// NewFilter creates a Filter with every rule enabled except the ones named
// in disabled.
func NewFilter(roles Roles, labels Labels, disabled ...string) (*Filter, error) {
	off := make(map[string]bool, len(disabled))
	for _, name := range disabled {
		off[name] = true
	}

	f := &Filter{roles: roles, labels: labels}
	for _, rule := range All() {
		if off[rule.Name] {
			delete(off, rule.Name)
			continue
		}
		f.rules = append(f.rules, rule)
	}
	for name := range off {
		return nil, fmt.Errorf("unknown compatibility rule %q", name)
	}
	return f, nil
}

// Bind collects the role values of t. It reports false when a role is not
// bound to a fixed slot of the tuple's request, in which case the rules do
// not apply.
func (f *Filter) Bind(t combo.Tuple) (Assignment, bool) {
	var a Assignment
	targets := []struct {
		list string
		dst  *string
	}{
		{f.roles.Redundancy, &a.Redundancy},
		{f.roles.Conversion, &a.Conversion},
		{f.roles.StrategyA, &a.StrategyA},
		{f.roles.StrategyB, &a.StrategyB},
	}
	for _, target := range targets {
		v, ok := t.Lookup(target.list)
		if !ok || v.Variadic {
			return Assignment{}, false
		}
		*target.dst = v.Label
	}
	return a, true
}

// Check returns whether t survives and, if not, the name of the first rule
// that rejected it.
func (f *Filter) Check(t combo.Tuple) (bool, string) {
	a, ok := f.Bind(t)
	if !ok {
		return true, ""
	}
	for _, rule := range f.rules {
		if !rule.Keep(f.labels, a) {
			return false, rule.Name
		}
	}
	return true, ""
}

// Keep reports whether t survives every enabled rule.
func (f *Filter) Keep(t combo.Tuple) bool {
	keep, _ := f.Check(t)
	return keep
}

// Applies reports whether every role is bound to a fixed slot of the
// request described by t.
func (f *Filter) Applies(t combo.Tuple) bool {
	_, ok := f.Bind(t)
	return ok
}
