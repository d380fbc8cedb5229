package hcl

import (
	"github.com/specialistvlad/choicegen/internal/config"
	"github.com/specialistvlad/choicegen/internal/schema"
)

// set copies src into dst when the attribute was present in the file.
func set[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}

// applyGenerator translates the HCL `generator` block onto the model.
func applyGenerator(g *config.Generator, s *schema.Generator) {
	if s == nil {
		return
	}
	set(&g.OutputDir, s.OutputDir)
	set(&g.CompareTemplate, s.CompareTemplate)
	set(&g.InstantiationTemplate, s.InstantiationTemplate)
	set(&g.SourceExtension, s.SourceExtension)
	set(&g.ObjectExtension, s.ObjectExtension)
	set(&g.DependencyExtension, s.DependencyExtension)
	set(&g.DependencyTarget, s.DependencyTarget)
	set(&g.ObjectList, s.ObjectList)
	set(&g.IncludeList, s.IncludeList)
	set(&g.RefreshChanged, s.RefreshChanged)
	set(&g.Manifest, s.Manifest)
}

// applyRules translates the HCL `rules` block onto the model.
func applyRules(r *config.Rules, s *schema.Rules) {
	if s == nil {
		return
	}
	set(&r.Roles.Redundancy, s.Redundancy)
	set(&r.Roles.Conversion, s.Conversion)
	set(&r.Roles.StrategyA, s.StrategyA)
	set(&r.Roles.StrategyB, s.StrategyB)

	set(&r.Labels.ExclusiveMarker, s.ExclusiveMarker)
	set(&r.Labels.PriorityMarker, s.PriorityMarker)
	set(&r.Labels.RedundantValue, s.RedundantValue)
	set(&r.Labels.RequiredConversion, s.RequiredConversion)
	set(&r.Labels.BaselineConversion, s.BaselineConversion)
	set(&r.Labels.BaselineStrategyA, s.BaselineStrategyA)
	set(&r.Labels.BaselineStrategyB, s.BaselineStrategyB)

	if s.Disabled != nil {
		r.Disabled = append([]string(nil), s.Disabled...)
	}
}
