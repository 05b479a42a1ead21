// mode.go - Allocation modes and per-type mode contracts.

package gadgets

import (
	"fmt"
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bls12-377/fr"
)

// Mode is the visibility of an allocated circuit variable.
type Mode uint8

const (
	// Constant is a value fixed at circuit-definition time.
	Constant Mode = iota
	// PublicInput is a value known to the verifier.
	PublicInput
	// PrivateWitness is a value known only to the prover.
	PrivateWitness
)

func (m Mode) String() string {
	switch m {
	case Constant:
		return "constant"
	case PublicInput:
		return "public input"
	case PrivateWitness:
		return "private witness"
	default:
		return fmt.Sprintf("mode(%d)", uint8(m))
	}
}

// mustSupport enforces a type's closed mode set. An unsupported mode is a bug
// in the calling circuit design, not bad runtime data: it is fatal and never
// coerced to a supported mode.
func mustSupport(typ string, mode Mode, supported ...Mode) {
	for _, s := range supported {
		if mode == s {
			return
		}
	}
	panic(fmt.Sprintf("gadgets: %s does not support allocation as %s", typ, mode))
}

// frVariable converts a field element into a witness assignment value.
func frVariable(e fr.Element) *big.Int {
	return e.BigInt(new(big.Int))
}
