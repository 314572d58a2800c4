package app

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"

	"github.com/toolshed/handyman/pkg/cryptox"
	"github.com/toolshed/handyman/pkg/jwtx"
)

// loadOrGenerateSigningKey reads the Ed25519 signing key from path,
// generating and persisting a fresh one on first start. The kid is derived
// from the key material so it stays stable across restarts.
func loadOrGenerateSigningKey(path string) (jwtx.Signer, error) {
	path = filepath.Clean(path)

	pemKey, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		pemKey, err = cryptox.GenerateEd25519Key()
		if err != nil {
			return nil, fmt.Errorf("generate signing key: %w", err)
		}
		if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
			return nil, fmt.Errorf("create key directory: %w", err)
		}
		if err := os.WriteFile(path, pemKey, 0600); err != nil {
			return nil, fmt.Errorf("persist signing key: %w", err)
		}
	} else if err != nil {
		return nil, fmt.Errorf("read signing key: %w", err)
	}

	signer, err := jwtx.NewSignerEdDSA(keyID(pemKey), pemKey)
	if err != nil {
		return nil, fmt.Errorf("load signing key: %w", err)
	}
	if err := signer.Validate(); err != nil {
		return nil, fmt.Errorf("validate signing key: %w", err)
	}

	return signer, nil
}

// keyID is a short fingerprint of the PEM bytes, enough to disambiguate
// keys in a JWKS without leaking anything.
func keyID(pemKey []byte) string {
	sum := sha256.Sum256(pemKey)
	return hex.EncodeToString(sum[:8])
}
