package gadgets

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/elqudus28/penumbra/internal/shielded"
)

func testFixtures(t *testing.T) (shielded.Note, shielded.NullifierKey, shielded.AuthorizationKey, *shielded.SpendAuthRandomizer) {
	t.Helper()
	address, err := shielded.GenerateAddress()
	require.NoError(t, err)
	note, err := shielded.NewNote(shielded.Value{Amount: 100, AssetID: shielded.NewAssetID("upenumbra")}, address)
	require.NoError(t, err)
	nk, err := shielded.GenerateNullifierKey()
	require.NoError(t, err)
	ak, err := shielded.GenerateAuthorizationKey()
	require.NoError(t, err)
	r := shielded.SpendAuthRandomizerFromBig(big.NewInt(12345))
	return note, nk, ak, r
}

func TestAllocationModeContracts(t *testing.T) {
	note, nk, ak, r := testFixtures(t)
	nf := shielded.DeriveNullifier(nk, 0, note.Commit())
	rk, err := shielded.Randomize(ak, r)
	require.NoError(t, err)

	allModes := []Mode{Constant, PublicInput, PrivateWitness}

	cases := []struct {
		name      string
		supported []Mode
		allocate  func(mode Mode)
	}{
		{"AmountVar", []Mode{PrivateWitness}, func(m Mode) { NewAmountVar(note.Value.Amount, m) }},
		{"AssetIDVar", []Mode{PrivateWitness}, func(m Mode) { NewAssetIDVar(note.Value.AssetID, m) }},
		{"ValueVar", []Mode{PrivateWitness}, func(m Mode) { NewValueVar(note.Value, m) }},
		{"AddressVar", []Mode{PrivateWitness}, func(m Mode) { _, _ = NewAddressVar(note.Address, m) }},
		{"NoteVar", []Mode{PrivateWitness}, func(m Mode) { _, _ = NewNoteVar(note, m) }},
		{"NoteCommitmentVar", []Mode{PublicInput, PrivateWitness}, func(m Mode) { NewNoteCommitmentVar(note.Commit(), m) }},
		{"PositionVar", []Mode{PrivateWitness}, func(m Mode) { NewPositionVar(0, m) }},
		{"NullifierKeyVar", []Mode{PrivateWitness}, func(m Mode) { NewNullifierKeyVar(nk, m) }},
		{"NullifierVar", []Mode{PublicInput}, func(m Mode) { NewNullifierVar(nf, m) }},
		{"AuthorizationKeyVar", []Mode{PrivateWitness}, func(m Mode) { _, _ = NewAuthorizationKeyVar(ak, m) }},
		{"SpendAuthRandomizerVar", []Mode{PrivateWitness}, func(m Mode) { NewSpendAuthRandomizerVar(r, m) }},
		{"RandomizedVerificationKeyVar", []Mode{PublicInput}, func(m Mode) { _, _ = NewRandomizedVerificationKeyVar(rk, m) }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			for _, mode := range allModes {
				supported := false
				for _, s := range tc.supported {
					if mode == s {
						supported = true
					}
				}
				if supported {
					require.NotPanics(t, func() { tc.allocate(mode) }, "mode %s", mode)
				} else {
					require.Panics(t, func() { tc.allocate(mode) }, "mode %s", mode)
				}
			}
		})
	}
}

func TestModeString(t *testing.T) {
	require.Equal(t, "constant", Constant.String())
	require.Equal(t, "public input", PublicInput.String())
	require.Equal(t, "private witness", PrivateWitness.String())
	require.Equal(t, "mode(9)", Mode(9).String())
}
