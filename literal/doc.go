// Package literal renders host values as literal text that evaluates back
// to the same value bit for bit, and evaluates such text.
//
// Plain number formatting loses two things, and both are preserved here:
//
//   - the sign of zero: -0 renders as "-0"
//   - NaN payloads: a NaN renders as a NaNConstructor call over its eight
//     little-endian bytes plus the signalling flag
//
// 64-bit integers render as "new Long(low,high)" so no digits are lost to
// float64 rounding. Strings that would need escaping are never escaped;
// they go to a caller-owned Pool and render as "constants[i]":
//
//	pool := literal.NewPool()
//	s, _ := literal.Render("it's", pool) // constants[0]
//	v, _ := literal.Eval(s, pool)        // "it's"
//
// Render and Eval are reentrant. A Pool must not be shared between
// concurrent rendering passes.
package literal
