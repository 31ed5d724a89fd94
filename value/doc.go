// Package value provides the arbitrary-precision binary floating point
// Value: a signed arbitrary-precision mantissa, a power-of-two scale, and
// a cached bit length, representing mantissa * 2^scale.
//
// Precision Model
//
// A fixed count of the mantissa's least significant bits, GuardBits, is
// defined to be below guaranteed precision. Operators round their raw
// results back into the guard region instead of into meaningful bits, so
// the suffix absorbs the noise of a whole chain of operations. This
// replaces ad hoc epsilon comparisons with a type invariant:
//
//	precision = size - GuardBits
//	accuracy  = precision - scale
//
// A Value whose entire magnitude is indistinguishable from zero within the
// guard margin classifies as Zero; only a mantissa that is literally zero
// is StrictZero. The two differ deliberately: subtracting two values that
// agree within precision leaves guard noise, which classifies as Zero
// without being bit-equal to it.
//
// Comparison Tiers
//
// Because "equal" is ambiguous for a type tracking partial precision,
// three orderings are exposed as distinct named operations rather than
// overloads: Cmp (precision aware, the type's native ordering), CmpExact
// (bit exact over the full mantissa including guard bits), and CmpBits
// (Cmp with a caller-chosen tolerance). Cmp need not be transitive;
// CmpExact is.
//
// Values are immutable. Every operator returns a new Value, none mutate in
// place, and no package-level state exists, so independent Values are safe
// for concurrent use.
package value
