// spendclaim.go - Proof construction and verification for the spend-claim
// circuit.
//
// Follows the usual Groth16 flow on BLS12-377: compile once, set up or load
// cached keys, build the witness from concrete secret values, prove, verify
// against public inputs only.

package spendclaim

import (
	"bytes"
	"fmt"
	"os"

	"github.com/consensys/gnark-crypto/ecc"
	"github.com/consensys/gnark/backend/groth16"
	"github.com/consensys/gnark/constraint"
	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/frontend/cs/r1cs"

	"github.com/elqudus28/penumbra/internal/gadgets"
	"github.com/elqudus28/penumbra/internal/shielded"
)

// Witness carries the concrete secret values behind one spend claim.
type Witness struct {
	Note                shielded.Note
	Position            shielded.Position
	NullifierKey        shielded.NullifierKey
	AuthorizationKey    shielded.AuthorizationKey
	SpendAuthRandomizer *shielded.SpendAuthRandomizer
}

// Claim is the public statement of one spend claim: the values the verifier
// sees.
type Claim struct {
	Commitment                shielded.NoteCommitment
	Nullifier                 shielded.Nullifier
	RandomizedVerificationKey shielded.RandomizedVerificationKey
}

// Claim derives the public statement from the secret witness.
func (w *Witness) Claim() (Claim, error) {
	cm := w.Note.Commit()
	nf := shielded.DeriveNullifier(w.NullifierKey, w.Position, cm)
	rk, err := shielded.Randomize(w.AuthorizationKey, w.SpendAuthRandomizer)
	if err != nil {
		return Claim{}, fmt.Errorf("derive claim: %w", err)
	}
	return Claim{Commitment: cm, Nullifier: nf, RandomizedVerificationKey: rk}, nil
}

// Compile compiles the spend-claim circuit to R1CS over BLS12-377.
func Compile() (constraint.ConstraintSystem, error) {
	var circuit Circuit
	return frontend.Compile(ecc.BLS12_377.ScalarField(), r1cs.NewBuilder, &circuit)
}

// SetupOrLoadKeys loads cached Groth16 keys from disk, or runs setup and
// caches the result. Setup is not a trusted ceremony here; production
// deployments replace this with ceremony output.
func SetupOrLoadKeys(ccs constraint.ConstraintSystem, pkPath, vkPath string) (groth16.ProvingKey, groth16.VerifyingKey, error) {
	if _, err := os.Stat(pkPath); err == nil {
		if _, err := os.Stat(vkPath); err == nil {
			pk := groth16.NewProvingKey(ecc.BLS12_377)
			vk := groth16.NewVerifyingKey(ecc.BLS12_377)
			pkFile, err := os.Open(pkPath)
			if err != nil {
				return nil, nil, err
			}
			defer pkFile.Close()
			if _, err := pk.ReadFrom(pkFile); err != nil {
				return nil, nil, fmt.Errorf("read proving key: %w", err)
			}
			vkFile, err := os.Open(vkPath)
			if err != nil {
				return nil, nil, err
			}
			defer vkFile.Close()
			if _, err := vk.ReadFrom(vkFile); err != nil {
				return nil, nil, fmt.Errorf("read verifying key: %w", err)
			}
			return pk, vk, nil
		}
	}

	pk, vk, err := groth16.Setup(ccs)
	if err != nil {
		return nil, nil, fmt.Errorf("groth16 setup: %w", err)
	}
	pkFile, err := os.Create(pkPath)
	if err != nil {
		return nil, nil, err
	}
	defer pkFile.Close()
	if _, err := pk.WriteTo(pkFile); err != nil {
		return nil, nil, fmt.Errorf("write proving key: %w", err)
	}
	vkFile, err := os.Create(vkPath)
	if err != nil {
		return nil, nil, err
	}
	defer vkFile.Close()
	if _, err := vk.WriteTo(vkFile); err != nil {
		return nil, nil, fmt.Errorf("write verifying key: %w", err)
	}
	return pk, vk, nil
}

// buildAssignment allocates every gadget from the concrete witness and
// claim. A failed allocation aborts the whole proof-construction pass.
func buildAssignment(w *Witness, claim Claim) (*Circuit, error) {
	note, err := gadgets.NewNoteVar(w.Note, gadgets.PrivateWitness)
	if err != nil {
		return nil, err
	}
	ak, err := gadgets.NewAuthorizationKeyVar(w.AuthorizationKey, gadgets.PrivateWitness)
	if err != nil {
		return nil, err
	}
	rk, err := gadgets.NewRandomizedVerificationKeyVar(claim.RandomizedVerificationKey, gadgets.PublicInput)
	if err != nil {
		return nil, err
	}
	return &Circuit{
		NoteCommitment:            gadgets.NewNoteCommitmentVar(claim.Commitment, gadgets.PublicInput),
		Nullifier:                 gadgets.NewNullifierVar(claim.Nullifier, gadgets.PublicInput),
		RandomizedVerificationKey: rk,
		Note:                      note,
		Position:                  gadgets.NewPositionVar(w.Position, gadgets.PrivateWitness),
		NullifierKey:              gadgets.NewNullifierKeyVar(w.NullifierKey, gadgets.PrivateWitness),
		AuthorizationKey:          ak,
		SpendAuthRandomizer:       gadgets.NewSpendAuthRandomizerVar(w.SpendAuthRandomizer, gadgets.PrivateWitness),
	}, nil
}

// publicAssignment allocates only the public half of the circuit, for
// verification.
func publicAssignment(claim Claim) (*Circuit, error) {
	rk, err := gadgets.NewRandomizedVerificationKeyVar(claim.RandomizedVerificationKey, gadgets.PublicInput)
	if err != nil {
		return nil, err
	}
	return &Circuit{
		NoteCommitment:            gadgets.NewNoteCommitmentVar(claim.Commitment, gadgets.PublicInput),
		Nullifier:                 gadgets.NewNullifierVar(claim.Nullifier, gadgets.PublicInput),
		RandomizedVerificationKey: rk,
	}, nil
}

// Prove derives the claim from the witness and produces a Groth16 proof for
// it.
func Prove(ccs constraint.ConstraintSystem, pk groth16.ProvingKey, w *Witness) (Claim, []byte, error) {
	claim, err := w.Claim()
	if err != nil {
		return Claim{}, nil, err
	}
	assignment, err := buildAssignment(w, claim)
	if err != nil {
		return Claim{}, nil, fmt.Errorf("build witness: %w", err)
	}
	fullWitness, err := frontend.NewWitness(assignment, ecc.BLS12_377.ScalarField())
	if err != nil {
		return Claim{}, nil, fmt.Errorf("build witness: %w", err)
	}
	proof, err := groth16.Prove(ccs, pk, fullWitness)
	if err != nil {
		return Claim{}, nil, fmt.Errorf("groth16 prove: %w", err)
	}
	var buf bytes.Buffer
	if _, err := proof.WriteTo(&buf); err != nil {
		return Claim{}, nil, fmt.Errorf("marshal proof: %w", err)
	}
	return claim, buf.Bytes(), nil
}

// Verify checks a proof against the public statement only.
func Verify(proofBytes []byte, vk groth16.VerifyingKey, claim Claim) error {
	proof := groth16.NewProof(ecc.BLS12_377)
	if _, err := proof.ReadFrom(bytes.NewReader(proofBytes)); err != nil {
		return fmt.Errorf("unmarshal proof: %w", err)
	}
	assignment, err := publicAssignment(claim)
	if err != nil {
		return fmt.Errorf("build public witness: %w", err)
	}
	publicWitness, err := frontend.NewWitness(assignment, ecc.BLS12_377.ScalarField(), frontend.PublicOnly())
	if err != nil {
		return fmt.Errorf("build public witness: %w", err)
	}
	if err := groth16.Verify(proof, vk, publicWitness); err != nil {
		return fmt.Errorf("verify spend claim: %w", err)
	}
	return nil
}
