// registry.go - Append-only nullifier registry (revocation set).
//
// The registry records every published nullifier and rejects duplicates,
// which is how double spends surface to a verifier. It is persisted as a
// single JSON file.
//
// NOTE: the registry is not thread-safe by itself; guard it with a
// sync.Mutex for concurrent access.

package spendclaim

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/consensys/gnark-crypto/ecc/bls12-377/fr"

	"github.com/elqudus28/penumbra/internal/shielded"
)

// ErrDoubleSpend is returned when a nullifier is appended twice.
var ErrDoubleSpend = errors.New("spendclaim: nullifier already in registry")

// NullifierRegistry is the append-only set of revealed nullifiers.
type NullifierRegistry struct {
	Nullifiers []string `json:"nullifiers"`
}

// NewNullifierRegistry creates an empty registry.
func NewNullifierRegistry() *NullifierRegistry {
	return &NullifierRegistry{Nullifiers: make([]string, 0)}
}

// Append records a nullifier, rejecting duplicates.
func (r *NullifierRegistry) Append(nf shielded.Nullifier) error {
	if r.Has(nf) {
		return ErrDoubleSpend
	}
	r.Nullifiers = append(r.Nullifiers, nullifierString(nf))
	return nil
}

// Has reports whether a nullifier has already been revealed.
func (r *NullifierRegistry) Has(nf shielded.Nullifier) bool {
	s := nullifierString(nf)
	for _, existing := range r.Nullifiers {
		if existing == s {
			return true
		}
	}
	return false
}

// SaveToFile persists the registry as JSON, overwriting any existing file.
func (r *NullifierRegistry) SaveToFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}

// LoadOrCreateRegistry loads the registry at path, or returns a fresh empty
// registry when the file does not exist yet. Any other read failure is an
// error: a corrupt registry must never be silently replaced by an empty one.
func LoadOrCreateRegistry(path string) (*NullifierRegistry, error) {
	r, err := LoadRegistryFromFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return NewNullifierRegistry(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("load nullifier registry: %w", err)
	}
	return r, nil
}

// LoadRegistryFromFile loads a registry previously written by SaveToFile.
func LoadRegistryFromFile(path string) (*NullifierRegistry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	var r NullifierRegistry
	if err := json.NewDecoder(f).Decode(&r); err != nil {
		return nil, err
	}
	return &r, nil
}

func nullifierString(nf shielded.Nullifier) string {
	e := fr.Element(nf)
	return e.String()
}
