// Package hcl provides the concrete HCL implementation of the config.Loader
// interface. It is responsible for file discovery, parsing, evaluation
// against the generator's evaluation context and translation into the
// format-agnostic config.Model.
package hcl
