// main.go - Demo driver for the spend-claim circuit.
//
// Compiles the circuit, sets up (or loads) Groth16 keys, builds a sample
// shielded note, proves a spend claim for it, verifies the proof against the
// public statement only, and records the nullifier in the registry. A second
// append of the same nullifier demonstrates double-spend rejection.
package main

import (
	"errors"
	"flag"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"

	"github.com/elqudus28/penumbra/internal/shielded"
	"github.com/elqudus28/penumbra/internal/transactions/spendclaim"
)

func main() {
	configPath := flag.String("config", "spendclaim.json", "path to config file")
	flag.Parse()

	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	cfg, err := LoadConfig(*configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("load config")
	}
	if level, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		log = log.Level(level)
	}

	if err := run(cfg, log); err != nil {
		log.Fatal().Err(err).Msg("spend claim demo failed")
	}
}

func run(cfg *Config, log zerolog.Logger) error {
	start := time.Now()
	ccs, err := spendclaim.Compile()
	if err != nil {
		return err
	}
	log.Info().
		Int("constraints", ccs.GetNbConstraints()).
		Dur("elapsed", time.Since(start)).
		Msg("circuit compiled")

	if err := os.MkdirAll(cfg.KeyDir, 0o755); err != nil {
		return err
	}
	start = time.Now()
	pk, vk, err := spendclaim.SetupOrLoadKeys(
		ccs,
		filepath.Join(cfg.KeyDir, "spendclaim.pk"),
		filepath.Join(cfg.KeyDir, "spendclaim.vk"),
	)
	if err != nil {
		return err
	}
	log.Info().Dur("elapsed", time.Since(start)).Msg("proving keys ready")

	witness, err := sampleWitness(cfg)
	if err != nil {
		return err
	}

	start = time.Now()
	claim, proof, err := spendclaim.Prove(ccs, pk, witness)
	if err != nil {
		return err
	}
	log.Info().
		Int("proof_bytes", len(proof)).
		Dur("elapsed", time.Since(start)).
		Msg("proof generated")

	start = time.Now()
	if err := spendclaim.Verify(proof, vk, claim); err != nil {
		return err
	}
	log.Info().Dur("elapsed", time.Since(start)).Msg("proof verified")

	registry, err := spendclaim.LoadOrCreateRegistry(cfg.RegistryPath)
	if err != nil {
		return err
	}
	if err := registry.Append(claim.Nullifier); err != nil {
		return err
	}
	if err := registry.Append(claim.Nullifier); !errors.Is(err, spendclaim.ErrDoubleSpend) {
		return errors.New("expected double-spend rejection")
	}
	log.Info().Msg("nullifier recorded, double spend rejected")

	return registry.SaveToFile(cfg.RegistryPath)
}

// sampleWitness builds a random note and key material for the demo.
func sampleWitness(cfg *Config) (*spendclaim.Witness, error) {
	address, err := shielded.GenerateAddress()
	if err != nil {
		return nil, err
	}
	note, err := shielded.NewNote(shielded.Value{
		Amount:  shielded.Amount(cfg.Amount),
		AssetID: shielded.NewAssetID(cfg.Denom),
	}, address)
	if err != nil {
		return nil, err
	}
	nk, err := shielded.GenerateNullifierKey()
	if err != nil {
		return nil, err
	}
	ak, err := shielded.GenerateAuthorizationKey()
	if err != nil {
		return nil, err
	}
	randomizer, err := shielded.GenerateSpendAuthRandomizer()
	if err != nil {
		return nil, err
	}
	return &spendclaim.Witness{
		Note:                note,
		Position:            42,
		NullifierKey:        nk,
		AuthorizationKey:    ak,
		SpendAuthRandomizer: randomizer,
	}, nil
}
