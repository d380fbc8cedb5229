package rules

import "strings"

// Assignment is the part of a tuple the rules look at, addressed by role.
type Assignment struct {
	Redundancy string
	Conversion string
	StrategyA  string
	StrategyB  string
}

// Labels names the option labels the rules react to.
type Labels struct {
	// ExclusiveMarker and PriorityMarker are matched as substrings of a
	// strategy label.
	ExclusiveMarker string
	PriorityMarker  string

	RedundantValue     string
	RequiredConversion string

	BaselineConversion string
	BaselineStrategyA  string
	BaselineStrategyB  string
}

// DefaultLabels returns the labels used by the solver's option lists.
func DefaultLabels() Labels {
	return Labels{
		ExclusiveMarker:    "Single",
		PriorityMarker:     "Most",
		RedundantValue:     "Redundant",
		RequiredConversion: "Skip",
		BaselineConversion: "Normal",
		BaselineStrategyA:  "First",
		BaselineStrategyB:  "No",
	}
}

// Exclusive reports whether a strategy label carries the exclusive marker.
func (l Labels) Exclusive(strategy string) bool {
	return l.ExclusiveMarker != "" && strings.Contains(strategy, l.ExclusiveMarker)
}

// Priority reports whether a strategy label carries the priority marker.
func (l Labels) Priority(strategy string) bool {
	return l.PriorityMarker != "" && strings.Contains(strategy, l.PriorityMarker)
}

// Redundant reports whether the update mode is the redundant one.
func (l Labels) Redundant(a Assignment) bool {
	return a.Redundancy == l.RedundantValue
}

// Reciprocity is R1. It returns true when the tuple may be kept.
func (l Labels) Reciprocity(a Assignment) bool {
	exclA, exclB := l.Exclusive(a.StrategyA), l.Exclusive(a.StrategyB)
	if !exclA && !exclB {
		return true
	}
	if a.StrategyA == a.StrategyB {
		return true
	}
	return l.Priority(a.StrategyA) && !exclB
}

// ModeDependency is R2. It returns true when the tuple may be kept.
func (l Labels) ModeDependency(a Assignment) bool {
	if !l.Exclusive(a.StrategyA) && !l.Exclusive(a.StrategyB) {
		return true
	}
	return l.Redundant(a) && a.Conversion == l.RequiredConversion
}

// BaselinePruning is R3. It returns true when the tuple may be kept.
func (l Labels) BaselinePruning(a Assignment) bool {
	if l.Redundant(a) {
		return true
	}
	return a.Conversion == l.BaselineConversion &&
		a.StrategyA == l.BaselineStrategyA &&
		a.StrategyB == l.BaselineStrategyB
}

// Rule is a named keep predicate.
type Rule struct {
	Name string
	Keep func(Labels, Assignment) bool
}

// Rule names, usable in configuration to disable a rule.
const (
	RuleReciprocity     = "reciprocity"
	RuleModeDependency  = "mode_dependency"
	RuleBaselinePruning = "baseline_pruning"
)

// All returns the rules in evaluation order.
func All() []Rule {
	return []Rule{
		{Name: RuleReciprocity, Keep: Labels.Reciprocity},
		{Name: RuleModeDependency, Keep: Labels.ModeDependency},
		{Name: RuleBaselinePruning, Keep: Labels.BaselinePruning},
	}
}
