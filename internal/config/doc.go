// Package config defines the format-agnostic catalog model for the
// application, along with the Loader interface for reading it from
// configuration files.
//
// The `config.Model` is the raw, unvalidated input to the `registry` and
// `routes` packages. Concrete loaders, such as for HCL and YAML, are
// provided in separate packages.
package config
