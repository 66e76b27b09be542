// Package register turns raw fixed-width register words into typed, scaled,
// range-checked values and back.
//
// The wire protocol carries no type information: every register is an
// untyped run of 16-bit words. A RegisterSpec declares the contract for one
// logical register (address, word count, bank, scaling, bounds,
// writability) and the Engine enforces it against a word-level Transport.
// A Registry holds the per-model table of named specs.
//
// All multi-word composition and decimal scaling is exact integer/decimal
// arithmetic; binary floats would silently drift measurement values.
package register
