// circuit.go - Spend-claim circuit: the reference consumer of the gadget
// layer.
//
// The circuit proves knowledge of a note opening behind a published
// commitment, correct derivation of the published nullifier, and that the
// published one-time verification key is the prover's authorization key
// randomized with a known scalar. It is deliberately not the full
// transaction-validity circuit: value balance, accumulator membership and
// fees live elsewhere.

package spendclaim

import (
	"github.com/consensys/gnark/frontend"

	"github.com/elqudus28/penumbra/internal/gadgets"
)

// Circuit is the spend-claim constraint system.
type Circuit struct {
	// Public inputs
	NoteCommitment            gadgets.NoteCommitmentVar            `gnark:",public"`
	Nullifier                 gadgets.NullifierVar                 `gnark:",public"`
	RandomizedVerificationKey gadgets.RandomizedVerificationKeyVar `gnark:",public"`

	// Private witnesses
	Note                gadgets.NoteVar
	Position            gadgets.PositionVar
	NullifierKey        gadgets.NullifierKeyVar
	AuthorizationKey    gadgets.AuthorizationKeyVar
	SpendAuthRandomizer gadgets.SpendAuthRandomizerVar
}

// Define implements the spend-claim constraints.
func (c *Circuit) Define(api frontend.API) error {
	// The transmission key's two witnessed forms must denote the same point.
	c.Note.Address.EnforceTransmissionKeyConsistency(api)

	// Recompute the note commitment and bind it to the public input.
	cm, err := c.Note.Commit(api)
	if err != nil {
		return err
	}
	api.AssertIsEqual(cm.Inner, c.NoteCommitment.Inner)

	// Derive the nullifier from the recomputed commitment.
	nf, err := c.NullifierKey.DeriveNullifier(api, &c.Position, &cm)
	if err != nil {
		return err
	}
	api.AssertIsEqual(nf.Inner, c.Nullifier.Inner)

	// A degenerate authorization key must never satisfy the circuit.
	gadgets.ElementNotIdentity(api, 1, c.AuthorizationKey.Inner)

	// Bind the randomized key to the declared public key, comparing
	// field-compressed forms.
	rk, err := c.AuthorizationKey.Randomize(api, &c.SpendAuthRandomizer)
	if err != nil {
		return err
	}
	api.AssertIsEqual(rk.CompressToField(api), c.RandomizedVerificationKey.CompressToField(api))

	return nil
}
