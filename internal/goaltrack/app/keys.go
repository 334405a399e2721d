package app

import (
	"crypto/ed25519"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log/slog"
	"os"

	"github.com/strivehq/goaltrack/pkg/jwtx"
)

// InitSigningKeys builds the token signer and verifier from an ed25519 seed.
//
// When cfg.SigningKeyFile is set the seed is loaded from that file, or
// generated and written there if the file does not exist yet, so tokens
// survive restarts. Without it an ephemeral key is generated on startup and
// every existing token becomes invalid.
func InitSigningKeys(cfg Config, logger *slog.Logger) (jwtx.Signer, jwtx.Verifier, error) {
	var seed []byte

	switch {
	case cfg.SigningKeyFile != "":
		data, err := os.ReadFile(cfg.SigningKeyFile)
		switch {
		case err == nil:
			if len(data) != ed25519.SeedSize {
				return nil, nil, fmt.Errorf("signing key file %s: want %d bytes, got %d",
					cfg.SigningKeyFile, ed25519.SeedSize, len(data))
			}
			seed = data
			logger.Info("signing key loaded", "path", cfg.SigningKeyFile)

		case os.IsNotExist(err):
			seed = make([]byte, ed25519.SeedSize)
			if _, err := rand.Read(seed); err != nil {
				return nil, nil, fmt.Errorf("failed to generate signing key: %w", err)
			}
			if err := os.WriteFile(cfg.SigningKeyFile, seed, 0o600); err != nil {
				return nil, nil, fmt.Errorf("failed to persist signing key: %w", err)
			}
			logger.Info("signing key generated and persisted", "path", cfg.SigningKeyFile)

		default:
			return nil, nil, fmt.Errorf("failed to read signing key file: %w", err)
		}

	default:
		seed = make([]byte, ed25519.SeedSize)
		if _, err := rand.Read(seed); err != nil {
			return nil, nil, fmt.Errorf("failed to generate signing key: %w", err)
		}
		logger.Warn("ephemeral signing key generated, all existing tokens are now invalid")
	}

	priv := ed25519.NewKeyFromSeed(seed)
	pub := priv.Public().(ed25519.PublicKey)
	kid := keyID(pub)

	signer, err := jwtx.NewSignerEdDSA(kid, priv)
	if err != nil {
		return nil, nil, err
	}
	verifier, err := jwtx.NewVerifierEdDSA(kid, pub)
	if err != nil {
		return nil, nil, err
	}

	logger.Info("token signing initialized", "algorithm", "EdDSA", "kid", kid)
	return signer, verifier, nil
}

// keyID derives a stable identifier from the public key so a persisted key
// keeps its kid across restarts.
func keyID(pub ed25519.PublicKey) string {
	sum := sha256.Sum256(pub)
	return hex.EncodeToString(sum[:8])
}
