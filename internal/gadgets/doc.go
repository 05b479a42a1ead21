// Package gadgets implements the in-circuit representations of the shielded
// note scheme: circuit-representable notes, addresses, keys and positions,
// and the derivation gadgets (note commitment, nullifier, spend-authorization
// key randomization) that reproduce, constraint for constraint, the
// off-circuit definitions in internal/shielded.
//
// Every gadget type is a struct of frontend variables usable directly as a
// field of a gnark circuit struct. Concrete values enter through the New*
// constructors, which build witness assignments and enforce each type's
// closed set of supported allocation modes: requesting an unsupported mode is
// a caller-programming error and panics immediately. Synthesis-class failures
// (an encoding that does not decompress to a valid group element) are
// returned as errors and abort the whole proof-construction pass.
//
// Gadget operations never store the constraint system; every derivation takes
// the frontend.API explicitly, so one constraint-system instance per proof
// pass is visible in the type signatures. Gadgets are immutable after
// construction: each derivation is a pure function returning a new gadget.
package gadgets
