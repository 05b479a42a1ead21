// address.go - Composite witness gadget for shielded addresses.

package gadgets

import (
	"fmt"

	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/std/algebra/native/twistededwards"

	"github.com/elqudus28/penumbra/internal/shielded"
)

// AddressVar is the in-circuit form of a shielded address.
//
// The transmission key appears twice: as a group element and as an
// independently witnessed field-compressed form. Hashing consumes the field
// form directly, which avoids paying for in-circuit compression on every
// address use; the price is that the two forms are not tied together by
// allocation alone. Callers that need the tie call
// EnforceTransmissionKeyConsistency, and the decompression performed before
// allocation is a documented external precondition.
type AddressVar struct {
	DiversifiedGenerator twistededwards.Point
	TransmissionKey      twistededwards.Point
	TransmissionKeyS     frontend.Variable
	ClueKey              frontend.Variable
}

// NewAddressVar allocates an address. Addresses are witness-only.
//
// The transmission key's group-element form is obtained by decompressing the
// stored field form off-circuit; a field form that is not a valid point
// encoding is a synthesis failure.
func NewAddressVar(addr shielded.Address, mode Mode) (AddressVar, error) {
	mustSupport("AddressVar", mode, PrivateWitness)
	tk, err := addr.TransmissionKeyElement()
	if err != nil {
		return AddressVar{}, fmt.Errorf("allocate address: %w", err)
	}
	return AddressVar{
		DiversifiedGenerator: pointWitness(addr.DiversifiedGenerator),
		TransmissionKey:      pointWitness(tk),
		TransmissionKeyS:     frVariable(addr.TransmissionKey),
		ClueKey:              frVariable(addr.ClueKey),
	}, nil
}

// EnforceTransmissionKeyConsistency constrains the independently witnessed
// field form of the transmission key to equal the in-circuit compression of
// its group-element form.
func (a *AddressVar) EnforceTransmissionKeyConsistency(api frontend.API) {
	api.AssertIsEqual(compressToField(a.TransmissionKey), a.TransmissionKeyS)
}
