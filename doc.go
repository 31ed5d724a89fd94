// Package abf provides arbitrary-precision binary floating point values
// that track, bit for bit, how much of every result is meaningful.
//
// Unlike a hardware float or double, a Value carries its mantissa as an
// arbitrary-precision integer together with a power-of-two scale and a
// fixed suffix of guard bits that are defined to be below guaranteed
// precision. Every operation decides how many result bits carry
// information and rounds the rest away, so a chain of operations never
// silently accumulates meaningless width.
//
// The module is split by concern:
//
//	round   shift-right-with-round-to-nearest over big.Int, with carry
//	        detection for callers that track bit lengths
//	value   the Value representation, its three comparison tiers, the
//	        arithmetic operators, and narrowing conversions
//	newton  Newton-Raphson kernels (integer square root, fixed-point
//	        reciprocal, top bits of a huge power) over plain big.Int
//
// The core is purely functional over immutable values: nothing is mutated
// after construction and there is no shared scratch state, so independent
// Values may be used from any number of goroutines.
//
// Text parsing and formatting, named mathematical constants, and any I/O
// surface are external to this module; they consume the construction,
// comparison, and arithmetic operations exposed here.
package abf
