// Package encoder writes typed value graphs into a dense, non byte aligned
// bit stream.
//
// An Encoder offers one method per primitive (Bool, Int8 ... Uint64,
// Float32, Float64, Char, String, Bytes) and one per compound shape (Seq,
// Map, Tuple, None/Some and the four variant kinds). Types implement
// Encodable to describe themselves with that vocabulary; Value walks any
// other Go value by reflection.
//
// Every field is written least significant bit first at its full width,
// except variant tags, whose width is fixed per Enum when the Enum is
// registered. Length prefixes use the native word width. An optional, and
// any pointer or interface met while walking, writes a presence bit before
// its payload unless the Encoder was built with LegacyOptionals.
//
// Strings are written in two passes. While walking, an occurrence only
// records its value and the current bit position. Finish sorts the distinct
// strings, writes them as a table of 16-bit lengths and bytes, and then
// copies the main stream, inserting at every recorded position the index of
// the string in the smallest width that can address the whole table:
//
//	table:  len(s0) s0 len(s1) s1 ...
//	body:   ... bits ... idx ... bits ... idx ...
//
// A table with at most one string needs zero index bits. When nothing
// recorded a string the main stream is returned as is.
package encoder
