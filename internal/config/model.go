package config

import (
	"errors"
	"fmt"

	"github.com/specialistvlad/choicegen/internal/rules"
)

// Model is the unified, format-agnostic representation of the generator
// configuration.
type Model struct {
	Generator Generator
	Rules     Rules
}

// Generator holds output and template settings.
type Generator struct {
	OutputDir             string
	CompareTemplate       string
	InstantiationTemplate string

	SourceExtension     string
	ObjectExtension     string
	DependencyExtension string

	DependencyTarget string
	ObjectList       string
	IncludeList      string

	RefreshChanged bool
	Manifest       string
}

// Rules holds the role bindings and labels of the compatibility filter.
type Rules struct {
	Roles    rules.Roles
	Labels   rules.Labels
	Disabled []string
}

// Defaults returns the configuration matching the solver's build layout.
func Defaults() *Model {
	return &Model{
		Generator: Generator{
			OutputDir:             "build/generated",
			CompareTemplate:       "src/generator_template_compare.tpp",
			InstantiationTemplate: "src/generator_template_instantiation.tpp",
			SourceExtension:       ".cpp",
			ObjectExtension:       ".o",
			DependencyExtension:   ".d",
			DependencyTarget:      "$(TARGET)",
			ObjectList:            "list.d",
			IncludeList:           "generated.d",
		},
		Rules: Rules{
			Roles:  rules.DefaultRoles(),
			Labels: rules.DefaultLabels(),
		},
	}
}

// Validate checks that every required setting is present.
func (m *Model) Validate() error {
	var errs []error
	required := []struct {
		name, value string
	}{
		{"output_dir", m.Generator.OutputDir},
		{"compare_template", m.Generator.CompareTemplate},
		{"instantiation_template", m.Generator.InstantiationTemplate},
		{"object_list", m.Generator.ObjectList},
		{"include_list", m.Generator.IncludeList},
	}
	for _, r := range required {
		if r.value == "" {
			errs = append(errs, fmt.Errorf("%s must not be empty", r.name))
		}
	}
	if m.Generator.ObjectList != "" && m.Generator.ObjectList == m.Generator.IncludeList {
		errs = append(errs, errors.New("object_list and include_list must differ"))
	}
	return errors.Join(errs...)
}
