// value.go - Scalar gadgets: amounts, asset identifiers and values.

package gadgets

import (
	"github.com/consensys/gnark-crypto/ecc/bls12-377/fr"
	"github.com/consensys/gnark/frontend"

	"github.com/elqudus28/penumbra/internal/shielded"
)

// AmountVar wraps a single field element holding a note amount. No
// constraints are added at allocation time; range checking, where required,
// is the responsibility of the enclosing circuit.
type AmountVar struct {
	Inner frontend.Variable
}

// NewAmountVar allocates an amount. Amounts are witness-only.
func NewAmountVar(amount shielded.Amount, mode Mode) AmountVar {
	mustSupport("AmountVar", mode, PrivateWitness)
	return AmountVar{Inner: uint64(amount)}
}

// AssetIDVar wraps the canonical field encoding of an asset identifier.
type AssetIDVar struct {
	Inner frontend.Variable
}

// NewAssetIDVar allocates an asset identifier. Asset identifiers are
// witness-only.
func NewAssetIDVar(id shielded.AssetID, mode Mode) AssetIDVar {
	mustSupport("AssetIDVar", mode, PrivateWitness)
	return AssetIDVar{Inner: frVariable(fr.Element(id))}
}

// ValueVar composes an amount and an asset identifier.
type ValueVar struct {
	Amount  AmountVar
	AssetID AssetIDVar
}

// NewValueVar allocates a value. Values are witness-only: a value crossing
// into the public-input set would breach the privacy boundary.
func NewValueVar(v shielded.Value, mode Mode) ValueVar {
	mustSupport("ValueVar", mode, PrivateWitness)
	return ValueVar{
		Amount:  NewAmountVar(v.Amount, PrivateWitness),
		AssetID: NewAssetIDVar(v.AssetID, PrivateWitness),
	}
}
