// spendauth.go - Spend-authorization keys and per-proof key randomization.

package shielded

import (
	"crypto/rand"
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bls12-377/fr"
	"github.com/consensys/gnark-crypto/ecc/bls12-377/twistededwards"
)

// AuthorizationKey is a spend-authorization public key, held in its
// field-compressed form. Keys are identified by this form: decompression
// always yields the sign-canonical representative.
type AuthorizationKey fr.Element

// RandomizedVerificationKey is a one-time public key bound to a single proof
// instance, held in its field-compressed form.
type RandomizedVerificationKey fr.Element

// SpendAuthRandomizer is the fresh per-proof scalar mixed into the
// authorization key.
type SpendAuthRandomizer struct {
	inner *big.Int
}

// GenerateAuthorizationKey samples a random spend-authorization key. Real
// wallets derive this from a spending key; tests and the demo driver sample
// it directly.
func GenerateAuthorizationKey() (AuthorizationKey, error) {
	p, err := RandomGroupElement()
	if err != nil {
		return AuthorizationKey{}, err
	}
	return AuthorizationKey(Compress(&p)), nil
}

// GenerateSpendAuthRandomizer samples a uniform scalar modulo the group
// order.
func GenerateSpendAuthRandomizer() (*SpendAuthRandomizer, error) {
	r, err := rand.Int(rand.Reader, &edwards.Order)
	if err != nil {
		return nil, err
	}
	return &SpendAuthRandomizer{inner: r}, nil
}

// SpendAuthRandomizerFromBig builds a randomizer from an explicit scalar,
// reduced modulo the group order. Used by tests that need fixed randomizers.
func SpendAuthRandomizerFromBig(v *big.Int) *SpendAuthRandomizer {
	r := new(big.Int).Mod(v, &edwards.Order)
	return &SpendAuthRandomizer{inner: r}
}

// Bytes returns the canonical little-endian 32-byte serialization of the
// randomizer. This is the form witnessed byte-by-byte in circuits, because
// the in-circuit scalar multiplication consumes a bit sequence.
func (r *SpendAuthRandomizer) Bytes() [32]byte {
	var out [32]byte
	r.inner.FillBytes(out[:])
	// FillBytes is big-endian; reverse into little-endian order.
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out
}

// Randomize computes the one-time verification key ak + r*B for the fixed
// basepoint B. The result is unlinkable to ak without r while remaining
// verifiable against the fixed relationship.
func Randomize(ak AuthorizationKey, r *SpendAuthRandomizer) (RandomizedVerificationKey, error) {
	a, err := Decompress(fr.Element(ak))
	if err != nil {
		return RandomizedVerificationKey{}, err
	}
	var rb, out twistededwards.PointAffine
	rb.ScalarMultiplication(&edwards.Base, r.inner)
	out.Add(&a, &rb)
	return RandomizedVerificationKey(Compress(&out)), nil
}
