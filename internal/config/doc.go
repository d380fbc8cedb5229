// Package config defines the format-agnostic configuration model of the
// generator, along with the Loader interface for reading it from files.
//
// The `config.Model` is the single source of truth for the `engine`
// package. Concrete loaders, such as the HCL one, are provided in separate
// packages and only fill in the settings a file actually sets.
package config
