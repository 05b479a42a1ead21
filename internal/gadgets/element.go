// element.go - Group element helpers shared by the gadget types.

package gadgets

import (
	edwards "github.com/consensys/gnark-crypto/ecc/bls12-377/twistededwards"
	tedwards "github.com/consensys/gnark-crypto/ecc/twistededwards"
	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/std/algebra/native/twistededwards"

	"github.com/elqudus28/penumbra/internal/shielded"
)

// newCurve instantiates the embedded twisted Edwards curve gadget on the
// circuit's field.
func newCurve(api frontend.API) (twistededwards.Curve, error) {
	return twistededwards.NewEdCurve(api, tedwards.BLS12_377)
}

// pointWitness builds the witness assignment for a group element.
func pointWitness(p edwards.PointAffine) twistededwards.Point {
	return twistededwards.Point{X: frVariable(p.X), Y: frVariable(p.Y)}
}

// basepoint returns the fixed spend-authorization basepoint as circuit
// constants.
func basepoint() twistededwards.Point {
	b := shielded.Basepoint()
	return twistededwards.Point{X: frVariable(b.X), Y: frVariable(b.Y)}
}

// identityPoint returns the group identity (0, 1) as circuit constants.
func identityPoint() twistededwards.Point {
	return twistededwards.Point{X: 0, Y: 1}
}

// compressToField returns the field-compressed form of an in-circuit group
// element. Compression is the projection onto the Y wire; the sign convention
// is fixed off-circuit by decompression (see shielded.Decompress).
func compressToField(p twistededwards.Point) frontend.Variable {
	return p.Y
}

// ElementNotIdentity conditionally enforces that element is not the group
// identity. With enforce set, synthesis fails for the identity element; with
// enforce clear no constraint is violated regardless of the element. A zero
// or identity key indicates a degenerate or forged key and is rejected only
// where the enclosing protocol requires it.
func ElementNotIdentity(api frontend.API, enforce frontend.Variable, element twistededwards.Point) {
	xIsZero := api.IsZero(element.X)
	yIsOne := api.IsZero(api.Sub(element.Y, 1))
	isIdentity := api.Mul(xIsZero, yIsOne)
	api.AssertIsEqual(api.Mul(enforce, isIdentity), 0)
}
