// Package shielded implements the off-circuit data model of a shielded note
// scheme: notes, addresses, nullifier keys and spend-authorization keys,
// together with their commitment, nullifier and key-randomization derivations.
//
// Overview:
//   - Every type here has exactly one in-circuit counterpart in
//     internal/gadgets; the derivations in both packages must agree
//     value-for-value, since circuits assert equality between in-circuit
//     derivations and publicly declared values produced here.
//   - The group is the twisted Edwards curve embedded in the BLS12-377 scalar
//     field; group elements cross package boundaries in their field-compressed
//     form (see Compress/Decompress).
//   - All hashing is Poseidon2 over the same field, domain-separated per
//     derivation so that commitments and nullifiers can never collide even on
//     overlapping inputs.
//
// Security Model:
//   - Note blindings and randomizers are sampled with crypto/rand.
//   - Nullifiers are unlinkable to note contents without the nullifier key.
//   - Decompression is deterministic: every prover that decompresses the same
//     encoding obtains the identical canonical representative.
package shielded
