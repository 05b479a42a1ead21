// element.go - Group element encoding for the embedded twisted Edwards curve.
//
// Group elements are exchanged in their field-compressed form: a single field
// element holding the Y coordinate of a sign-canonical representative.
// Decompression recovers the X coordinate from the curve equation and always
// selects the root that is not lexicographically largest, so it is a pure
// deterministic function of the encoding.

package shielded

import (
	"crypto/rand"
	"errors"
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bls12-377/fr"
	"github.com/consensys/gnark-crypto/ecc/bls12-377/twistededwards"
)

// ErrInvalidEncoding is returned when a field element does not decompress to a
// point of the prime-order subgroup.
var ErrInvalidEncoding = errors.New("shielded: invalid group element encoding")

var edwards = twistededwards.GetEdwardsCurve()

// Basepoint returns the fixed generator used for spend-authorization key
// randomization.
func Basepoint() twistededwards.PointAffine {
	var p twistededwards.PointAffine
	p.Set(&edwards.Base)
	return p
}

// GroupOrder returns the order of the prime-order subgroup.
func GroupOrder() *big.Int {
	return new(big.Int).Set(&edwards.Order)
}

// Identity returns the group identity element (0, 1).
func Identity() twistededwards.PointAffine {
	var p twistededwards.PointAffine
	p.X.SetZero()
	p.Y.SetOne()
	return p
}

// IsIdentity reports whether p is the group identity.
func IsIdentity(p *twistededwards.PointAffine) bool {
	return p.X.IsZero() && p.Y.IsOne()
}

// Compress returns the field-compressed form of a group element.
func Compress(p *twistededwards.PointAffine) fr.Element {
	return p.Y
}

// Decompress recovers the sign-canonical group element denoted by s.
// It fails if s is not the Y coordinate of a point in the prime-order
// subgroup. Decompression happens outside the constraint system; circuits
// only witness its result.
func Decompress(s fr.Element) (twistededwards.PointAffine, error) {
	var p twistededwards.PointAffine

	// x^2 = (1 - y^2) / (a - d*y^2)
	var y2, u, v fr.Element
	y2.Square(&s)
	u.SetOne()
	u.Sub(&u, &y2)
	v.Mul(&edwards.D, &y2)
	v.Sub(&edwards.A, &v)
	if v.IsZero() {
		return p, ErrInvalidEncoding
	}
	v.Inverse(&v)

	var x2, x fr.Element
	x2.Mul(&u, &v)
	if x.Sqrt(&x2) == nil {
		return p, ErrInvalidEncoding
	}
	// Canonical representative: the root that is not lexicographically largest.
	if x.LexicographicallyLargest() {
		x.Neg(&x)
	}

	p.X.Set(&x)
	p.Y.Set(&s)
	if !p.IsOnCurve() {
		return p, ErrInvalidEncoding
	}

	// Subgroup check: order*p must be the identity.
	var q twistededwards.PointAffine
	q.ScalarMultiplication(&p, &edwards.Order)
	if !IsIdentity(&q) {
		return p, ErrInvalidEncoding
	}
	return p, nil
}

// RandomGroupElement samples a uniformly random element of the prime-order
// subgroup. Used by key generation and tests.
func RandomGroupElement() (twistededwards.PointAffine, error) {
	var p twistededwards.PointAffine
	s, err := rand.Int(rand.Reader, &edwards.Order)
	if err != nil {
		return p, err
	}
	p.ScalarMultiplication(&edwards.Base, s)
	return p, nil
}
