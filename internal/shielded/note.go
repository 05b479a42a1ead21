// note.go - Notes and note commitments.

package shielded

import (
	"github.com/consensys/gnark-crypto/ecc/bls12-377/fr"
)

// NoteCommitment is a binding, hiding commitment to a note's contents.
type NoteCommitment fr.Element

// Note is a shielded note: a value, a per-note blinding factor, and the
// address of the recipient.
type Note struct {
	Value    Value
	Blinding fr.Element
	Address  Address
}

// NewNote builds a note for the given value and address with a freshly
// sampled blinding factor. The blinding must be independent per note so that
// commitments do not correlate values or addresses across notes.
func NewNote(value Value, address Address) (Note, error) {
	var blinding fr.Element
	if _, err := blinding.SetRandom(); err != nil {
		return Note{}, err
	}
	return Note{Value: value, Blinding: blinding, Address: address}, nil
}

// Commit derives the note commitment:
//
//	hash_6(ds; blinding, amount, asset id, compress(g_d), pk_s, clue key)
//
// with the note commitment domain separator ds. The in-circuit derivation in
// internal/gadgets must produce the identical field value.
func (n *Note) Commit() NoteCommitment {
	var amount fr.Element
	amount.SetUint64(uint64(n.Value.Amount))
	cm := hashWithSeparator(
		noteCommitDomainSep,
		n.Blinding,
		amount,
		fr.Element(n.Value.AssetID),
		Compress(&n.Address.DiversifiedGenerator),
		n.Address.TransmissionKey,
		n.Address.ClueKey,
	)
	return NoteCommitment(cm)
}
