// Package decoder turns IIS response bodies into typed records.
//
// The first pass (ParseObject) is a flat, best-effort scan of a single JSON
// object into a map of string keys to string values. String values are
// unquoted and unescaped; numbers and literals are kept as written; nested
// objects and arrays are kept as opaque JSON substrings. The projections
// (ParseLoginResponse, ParsePersonalInfo, ParseMarkbook, ParseGroupInfo) read
// keys from that map and decode nested substrings with gjson when they need
// them.
//
// Nothing in this package panics or returns an error for malformed input.
// Optional numerics that fail to parse become absent; a missing required key
// makes the projection report false.
package decoder
