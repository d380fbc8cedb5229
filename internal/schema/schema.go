// Package schema declares the HCL block structure of a generator
// configuration file, as decoded by gohcl.
package schema

// File represents the top-level structure of a configuration file. Both
// blocks are optional; an attribute left out keeps its previous value.
type File struct {
	Generator *Generator `hcl:"generator,block"`
	Rules     *Rules     `hcl:"rules,block"`
}

// Generator represents the `generator` block: output layout and templates.
type Generator struct {
	OutputDir             *string `hcl:"output_dir,optional"`
	CompareTemplate       *string `hcl:"compare_template,optional"`
	InstantiationTemplate *string `hcl:"instantiation_template,optional"`

	SourceExtension     *string `hcl:"source_extension,optional"`
	ObjectExtension     *string `hcl:"object_extension,optional"`
	DependencyExtension *string `hcl:"dependency_extension,optional"`

	DependencyTarget *string `hcl:"dependency_target,optional"`
	ObjectList       *string `hcl:"object_list,optional"`
	IncludeList      *string `hcl:"include_list,optional"`

	RefreshChanged *bool   `hcl:"refresh_changed,optional"`
	Manifest       *string `hcl:"manifest,optional"`
}

// Rules represents the `rules` block: which lists play which role in the
// compatibility filter, and the labels the rules react to.
type Rules struct {
	Redundancy *string `hcl:"redundancy,optional"`
	Conversion *string `hcl:"conversion,optional"`
	StrategyA  *string `hcl:"strategy_a,optional"`
	StrategyB  *string `hcl:"strategy_b,optional"`

	ExclusiveMarker    *string `hcl:"exclusive_marker,optional"`
	PriorityMarker     *string `hcl:"priority_marker,optional"`
	RedundantValue     *string `hcl:"redundant_value,optional"`
	RequiredConversion *string `hcl:"required_conversion,optional"`
	BaselineConversion *string `hcl:"baseline_conversion,optional"`
	BaselineStrategyA  *string `hcl:"baseline_strategy_a,optional"`
	BaselineStrategyB  *string `hcl:"baseline_strategy_b,optional"`

	Disabled []string `hcl:"disabled,optional"`
}
