package gadgets

import (
	"testing"

	"github.com/consensys/gnark-crypto/ecc"
	"github.com/consensys/gnark-crypto/ecc/bls12-377/fr"
	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/test"
	"github.com/stretchr/testify/require"

	"github.com/elqudus28/penumbra/internal/shielded"
)

type commitBindingCircuit struct {
	Note       NoteVar
	Commitment NoteCommitmentVar `gnark:",public"`
}

func (c *commitBindingCircuit) Define(api frontend.API) error {
	cm, err := c.Note.Commit(api)
	if err != nil {
		return err
	}
	api.AssertIsEqual(cm.Inner, c.Commitment.Inner)
	return nil
}

func TestCommitMatchesNativeDerivation(t *testing.T) {
	note, _, _, _ := testFixtures(t)

	noteVar, err := NewNoteVar(note, PrivateWitness)
	require.NoError(t, err)
	assignment := &commitBindingCircuit{
		Note:       noteVar,
		Commitment: NewNoteCommitmentVar(note.Commit(), PublicInput),
	}
	err = test.IsSolved(&commitBindingCircuit{}, assignment, ecc.BLS12_377.ScalarField())
	require.NoError(t, err)
}

func TestCommitRejectsWrongCommitment(t *testing.T) {
	note, _, _, _ := testFixtures(t)

	noteVar, err := NewNoteVar(note, PrivateWitness)
	require.NoError(t, err)

	cm := fr.Element(note.Commit())
	var wrong fr.Element
	wrong.SetOne()
	wrong.Add(&cm, &wrong)
	assignment := &commitBindingCircuit{
		Note:       noteVar,
		Commitment: NewNoteCommitmentVar(shielded.NoteCommitment(wrong), PublicInput),
	}
	err = test.IsSolved(&commitBindingCircuit{}, assignment, ecc.BLS12_377.ScalarField())
	require.Error(t, err)
}

type commitmentEqualityCircuit struct {
	First    NoteCommitmentVar
	Second   NoteCommitmentVar
	Expected frontend.Variable `gnark:",public"`
}

func (c *commitmentEqualityCircuit) Define(api frontend.API) error {
	api.AssertIsEqual(c.First.IsEqual(api, &c.Second), c.Expected)
	return nil
}

func TestCommitmentIsEqual(t *testing.T) {
	note, _, _, _ := testFixtures(t)
	other, _, _, _ := testFixtures(t)
	field := ecc.BLS12_377.ScalarField()

	err := test.IsSolved(&commitmentEqualityCircuit{}, &commitmentEqualityCircuit{
		First:    NewNoteCommitmentVar(note.Commit(), PrivateWitness),
		Second:   NewNoteCommitmentVar(note.Commit(), PrivateWitness),
		Expected: 1,
	}, field)
	require.NoError(t, err)

	err = test.IsSolved(&commitmentEqualityCircuit{}, &commitmentEqualityCircuit{
		First:    NewNoteCommitmentVar(note.Commit(), PrivateWitness),
		Second:   NewNoteCommitmentVar(other.Commit(), PrivateWitness),
		Expected: 0,
	}, field)
	require.NoError(t, err)
}
