// address.go - Shielded payment addresses.

package shielded

import (
	"github.com/consensys/gnark-crypto/ecc/bls12-377/fr"
	"github.com/consensys/gnark-crypto/ecc/bls12-377/twistededwards"
)

// Address is a shielded payment address: a diversified generator, a
// transmission key held in its field-compressed form, and a clue key.
//
// The compressed transmission key is the form consumed by the commitment
// hash; the group-element form is recovered by decompression when a circuit
// needs to witness it. Both forms denote the same point for any address
// produced by NewAddress.
type Address struct {
	DiversifiedGenerator twistededwards.PointAffine
	TransmissionKey      fr.Element
	ClueKey              fr.Element
}

// NewAddress builds an address from the group-element forms of its keys.
func NewAddress(diversifiedGenerator, transmissionKey twistededwards.PointAffine, clueKey fr.Element) Address {
	return Address{
		DiversifiedGenerator: diversifiedGenerator,
		TransmissionKey:      Compress(&transmissionKey),
		ClueKey:              clueKey,
	}
}

// GenerateAddress samples a fresh random address. Used by tests and the demo
// driver; real wallets derive addresses from viewing keys instead.
func GenerateAddress() (Address, error) {
	gd, err := RandomGroupElement()
	if err != nil {
		return Address{}, err
	}
	pk, err := RandomGroupElement()
	if err != nil {
		return Address{}, err
	}
	var clue fr.Element
	if _, err := clue.SetRandom(); err != nil {
		return Address{}, err
	}
	return NewAddress(gd, pk, clue), nil
}

// TransmissionKeyElement decompresses the transmission key to its
// group-element form. Fails if the stored encoding is not a valid point.
func (a *Address) TransmissionKeyElement() (twistededwards.PointAffine, error) {
	return Decompress(a.TransmissionKey)
}
