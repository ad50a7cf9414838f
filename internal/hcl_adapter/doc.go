// Package hcl_adapter reads gallery catalogs written in HCL and translates
// them into the format-agnostic config.Model.
//
// A catalog file contains `visualization` blocks, in display order, and
// optional `route "<slug>"` blocks carrying route-only metadata. Attribute
// values are full HCL expressions, so long descriptions can be assembled
// with functions such as join() and format().
package hcl_adapter
