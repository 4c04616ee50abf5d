// Package catalog holds the closed identifier sets of the scripting
// platform: events, game values, actions and their kinds.
//
// The identifier types in zz_catalog.go are generated from the catalog
// documents in assets/ and must not be edited by hand. Every generated type
// is an ordinal into a sorted Set, marshals to and from its wire name, and
// encodes itself as a variant tag. ActionID tags are 11 bits wide; all other
// sets use the default tag width.
package catalog

//go:generate go run ../../cmd/catalogen -assets ../../assets -out zz_catalog.go -action-width 11
