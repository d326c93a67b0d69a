// Package stack models emittable code units and their effect on the
// operand stack.
//
// # Main Types
//
//   - Size: net depth change plus peak depth of a piece of code
//   - Width / Category: slot width of a value category (0, 1 or 2)
//   - Manipulation: emittable unit with a validity flag and Apply
//   - Context: session state threaded through Apply
//   - Tracker: sequential depth verification against max stack
//   - Consumer: optional operand count checked by Tracker before applying
//
// # Composition
//
// Sizes compose left to right:
//
//	a.Aggregate(b) = {impact: a.impact + b.impact,
//	                  maximal: max(a.maximal, a.impact + b.maximal)}
//
// Compound applies manipulations in order and aggregates their sizes.
// Illegal is the marker for code that cannot be emitted; applying it panics,
// so callers check IsValid first (Tracker does this for you).
package stack
