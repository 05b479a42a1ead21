// asset.go - Asset identifiers and note values.

package shielded

import (
	"github.com/consensys/gnark-crypto/ecc/bls12-377/fr"
	"golang.org/x/crypto/blake2b"
)

// Amount is a note amount. It is a 64-bit integer so it always embeds exactly
// in the field with no reduction.
type Amount uint64

// AssetID is the canonical field encoding of an asset's domain-separated
// hash.
type AssetID fr.Element

// NewAssetID derives the asset identifier for a denomination string.
func NewAssetID(denom string) AssetID {
	digest := blake2b.Sum256(append([]byte("penumbra.asset"), []byte(denom)...))
	var id fr.Element
	id.SetBytes(digest[:])
	return AssetID(id)
}

// Value is an amount of a specific asset.
type Value struct {
	Amount  Amount
	AssetID AssetID
}
