// note.go - Note witness gadget and note commitment derivation.

package gadgets

import (
	"fmt"

	"github.com/consensys/gnark-crypto/ecc/bls12-377/fr"
	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/std/hash/poseidon2"

	"github.com/elqudus28/penumbra/internal/shielded"
)

// NoteVar is the in-circuit form of a shielded note.
type NoteVar struct {
	Value    ValueVar
	Blinding frontend.Variable
	Address  AddressVar
}

// NewNoteVar allocates a note. Notes are witness-only.
func NewNoteVar(note shielded.Note, mode Mode) (NoteVar, error) {
	mustSupport("NoteVar", mode, PrivateWitness)
	address, err := NewAddressVar(note.Address, PrivateWitness)
	if err != nil {
		return NoteVar{}, err
	}
	return NoteVar{
		Value:    NewValueVar(note.Value, PrivateWitness),
		Blinding: frVariable(note.Blinding),
		Address:  address,
	}, nil
}

// NoteCommitmentVar wraps the field element of a note commitment.
type NoteCommitmentVar struct {
	Inner frontend.Variable
}

// NewNoteCommitmentVar allocates a note commitment. Commitments support both
// modes: witness when used as an intermediate, public input when asserted
// against a published value.
func NewNoteCommitmentVar(cm shielded.NoteCommitment, mode Mode) NoteCommitmentVar {
	mustSupport("NoteCommitmentVar", mode, PublicInput, PrivateWitness)
	return NoteCommitmentVar{Inner: frVariable(fr.Element(cm))}
}

// IsEqual returns a boolean variable set when both commitments wrap the same
// field value. Usable in further conditional constraints.
func (c *NoteCommitmentVar) IsEqual(api frontend.API, other *NoteCommitmentVar) frontend.Variable {
	return api.IsZero(api.Sub(c.Inner, other.Inner))
}

// Commit derives the note commitment in-circuit:
//
//	hash_6(ds; blinding, amount, asset id, compress(g_d), pk_s, clue key)
//
// where ds is the note commitment domain separator, allocated as a circuit
// constant. The hash consumes the independently witnessed field form of the
// transmission key, not an in-circuit compression of the element form.
func (n *NoteVar) Commit(api frontend.API) (NoteCommitmentVar, error) {
	h, err := poseidon2.NewMerkleDamgardHasher(api)
	if err != nil {
		return NoteCommitmentVar{}, fmt.Errorf("note commitment hash: %w", err)
	}
	h.Write(
		frVariable(shielded.NoteCommitmentDomainSeparator()),
		n.Blinding,
		n.Value.Amount.Inner,
		n.Value.AssetID.Inner,
		compressToField(n.Address.DiversifiedGenerator),
		n.Address.TransmissionKeyS,
		n.Address.ClueKey,
	)
	return NoteCommitmentVar{Inner: h.Sum()}, nil
}
