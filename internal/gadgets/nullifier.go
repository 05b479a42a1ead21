// nullifier.go - Position, nullifier key and nullifier derivation gadgets.

package gadgets

import (
	"fmt"

	"github.com/consensys/gnark-crypto/ecc/bls12-377/fr"
	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/std/hash/poseidon2"

	"github.com/elqudus28/penumbra/internal/shielded"
)

// PositionVar is a bounded integer witnessed as a single field element; it
// carries no further structure.
type PositionVar struct {
	Inner frontend.Variable
}

// NewPositionVar allocates a position. Positions are witness-only.
func NewPositionVar(pos shielded.Position, mode Mode) PositionVar {
	mustSupport("PositionVar", mode, PrivateWitness)
	return PositionVar{Inner: uint64(pos)}
}

// NullifierKeyVar wraps the per-viewing-capability nullifier key.
type NullifierKeyVar struct {
	Inner frontend.Variable
}

// NewNullifierKeyVar allocates a nullifier key. Nullifier keys are
// witness-only.
func NewNullifierKeyVar(nk shielded.NullifierKey, mode Mode) NullifierKeyVar {
	mustSupport("NullifierKeyVar", mode, PrivateWitness)
	return NullifierKeyVar{Inner: frVariable(fr.Element(nk))}
}

// NullifierVar wraps the field element of a nullifier.
type NullifierVar struct {
	Inner frontend.Variable
}

// NewNullifierVar allocates a nullifier. Nullifiers are public-input only:
// they must appear as a value the verifier checks against the revocation
// set.
func NewNullifierVar(nf shielded.Nullifier, mode Mode) NullifierVar {
	mustSupport("NullifierVar", mode, PublicInput)
	return NullifierVar{Inner: frVariable(fr.Element(nf))}
}

// IsEqual returns a boolean variable set when both nullifiers wrap the same
// field value.
func (n *NullifierVar) IsEqual(api frontend.API, other *NullifierVar) frontend.Variable {
	return api.IsZero(api.Sub(n.Inner, other.Inner))
}

// DeriveNullifier derives the nullifier for a note commitment at a position:
//
//	hash_3(ds; nk, commitment, position)
//
// where ds is the nullifier domain separator, allocated as a circuit
// constant and distinct from the note commitment separator.
func (nk *NullifierKeyVar) DeriveNullifier(api frontend.API, position *PositionVar, commitment *NoteCommitmentVar) (NullifierVar, error) {
	h, err := poseidon2.NewMerkleDamgardHasher(api)
	if err != nil {
		return NullifierVar{}, fmt.Errorf("nullifier hash: %w", err)
	}
	h.Write(
		frVariable(shielded.NullifierDomainSeparator()),
		nk.Inner,
		commitment.Inner,
		position.Inner,
	)
	return NullifierVar{Inner: h.Sum()}, nil
}
