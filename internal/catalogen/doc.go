// Package catalogen generates the identifier types of package catalog from
// the catalog documents (events.json, game_values.json, actions.json).
//
// Each identifier set is deduplicated and sorted by raw id, so an
// identifier's ordinal is stable for a given set of documents. Go names are
// the type name followed by the UpperCamel form of the id; wire names are the
// snake_case form, with digit runs between letters split off.
package catalogen
