// nullifier.go - Nullifier keys and nullifier derivation.

package shielded

import (
	"github.com/consensys/gnark-crypto/ecc/bls12-377/fr"
)

// Position identifies a note's location in the append-only commitment
// accumulator. It is encoded as a single field element.
type Position uint64

// NullifierKey is the per-viewing-capability scalar from which nullifiers are
// derived.
type NullifierKey fr.Element

// Nullifier is the public value revealed when a note is spent. Publishing it
// prevents the note from being spent again without revealing which note it
// was.
type Nullifier fr.Element

// GenerateNullifierKey samples a fresh random nullifier key.
func GenerateNullifierKey() (NullifierKey, error) {
	var nk fr.Element
	if _, err := nk.SetRandom(); err != nil {
		return NullifierKey{}, err
	}
	return NullifierKey(nk), nil
}

// DeriveNullifier derives the nullifier for a note commitment at a position:
//
//	hash_3(ds; nk, commitment, position)
//
// with the nullifier domain separator ds, distinct from the note commitment
// separator. The in-circuit derivation must produce the identical value.
func DeriveNullifier(nk NullifierKey, pos Position, cm NoteCommitment) Nullifier {
	var position fr.Element
	position.SetUint64(uint64(pos))
	nf := hashWithSeparator(
		nullifierDomainSep,
		fr.Element(nk),
		fr.Element(cm),
		position,
	)
	return Nullifier(nf)
}
