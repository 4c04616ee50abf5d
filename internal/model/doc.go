// Package model defines the value graph of one program: a Module holds
// ordered Lines, a Line holds ordered Operations, and an Operation holds
// ordered NamedArguments, each carrying one tagged Value.
//
// The graph is built once by a loader, is read-only afterwards, and knows how
// to decompose itself into the encoder's vocabulary through EncodeBits.
package model
