package gadgets

import (
	"testing"

	"github.com/consensys/gnark-crypto/ecc"
	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/test"
	"github.com/stretchr/testify/require"

	"github.com/elqudus28/penumbra/internal/shielded"
)

type nullifierBindingCircuit struct {
	NullifierKey NullifierKeyVar
	Position     PositionVar
	Commitment   NoteCommitmentVar
	Nullifier    NullifierVar `gnark:",public"`
}

func (c *nullifierBindingCircuit) Define(api frontend.API) error {
	nf, err := c.NullifierKey.DeriveNullifier(api, &c.Position, &c.Commitment)
	if err != nil {
		return err
	}
	api.AssertIsEqual(nf.Inner, c.Nullifier.Inner)
	return nil
}

func nullifierAssignment(nk shielded.NullifierKey, pos shielded.Position, cm shielded.NoteCommitment, nf shielded.Nullifier) *nullifierBindingCircuit {
	return &nullifierBindingCircuit{
		NullifierKey: NewNullifierKeyVar(nk, PrivateWitness),
		Position:     NewPositionVar(pos, PrivateWitness),
		Commitment:   NewNoteCommitmentVar(cm, PrivateWitness),
		Nullifier:    NewNullifierVar(nf, PublicInput),
	}
}

func TestDeriveNullifierMatchesNativeDerivation(t *testing.T) {
	note, nk, _, _ := testFixtures(t)
	cm := note.Commit()
	nf := shielded.DeriveNullifier(nk, 7, cm)

	err := test.IsSolved(
		&nullifierBindingCircuit{},
		nullifierAssignment(nk, 7, cm, nf),
		ecc.BLS12_377.ScalarField(),
	)
	require.NoError(t, err)
}

func TestDeriveNullifierRejectsTamperedInputs(t *testing.T) {
	note, nk, _, _ := testFixtures(t)
	cm := note.Commit()
	nf := shielded.DeriveNullifier(nk, 7, cm)
	field := ecc.BLS12_377.ScalarField()

	otherNK, err := shielded.GenerateNullifierKey()
	require.NoError(t, err)
	err = test.IsSolved(&nullifierBindingCircuit{}, nullifierAssignment(otherNK, 7, cm, nf), field)
	require.Error(t, err, "different nullifier key")

	other, _, _, _ := testFixtures(t)
	err = test.IsSolved(&nullifierBindingCircuit{}, nullifierAssignment(nk, 7, other.Commit(), nf), field)
	require.Error(t, err, "different commitment")

	err = test.IsSolved(&nullifierBindingCircuit{}, nullifierAssignment(nk, 8, cm, nf), field)
	require.Error(t, err, "different position")
}
