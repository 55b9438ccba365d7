// Package version parses and orders dotted-integer version strings such as the
// "version" field of product.json.
//
// Parsing is strict: each segment must be a non-negative decimal integer.
// Ordering pads the shorter version with zero segments, so "1.5" == "1.5.0"
// and "1.5" < "1.5.1".
//
//	cmp, err := version.Compare("1.5", "1.5.1") // -1, nil
package version
