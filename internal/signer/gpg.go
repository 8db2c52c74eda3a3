package signer

import (
	"bytes"
	"crypto"
	"fmt"
	"os"

	"github.com/ProtonMail/go-crypto/openpgp"
	"github.com/ProtonMail/go-crypto/openpgp/armor"
	"github.com/ProtonMail/go-crypto/openpgp/packet"
)

var (
	_ Signer   = (*GPGSigner)(nil)
	_ Verifier = (*GPGVerifier)(nil)
)

// GPGSigner implements Signer interface using GPG
type GPGSigner struct {
	entity *openpgp.Entity
}

// NewGPGSigner creates a new GPG signer from a private key file
func NewGPGSigner(keyPath, passphrase string) (*GPGSigner, error) {
	entityList, err := readKeyRing(keyPath)
	if err != nil {
		return nil, err
	}

	entity := entityList[0]
	if entity.PrivateKey == nil {
		return nil, fmt.Errorf("key file does not contain a private key")
	}

	// Decrypt private key if passphrase provided
	if passphrase != "" {
		if entity.PrivateKey.Encrypted {
			if err := entity.PrivateKey.Decrypt([]byte(passphrase)); err != nil {
				return nil, fmt.Errorf("failed to decrypt private key: %w", err)
			}
		}

		for _, subkey := range entity.Subkeys {
			if subkey.PrivateKey != nil && subkey.PrivateKey.Encrypted {
				if err := subkey.PrivateKey.Decrypt([]byte(passphrase)); err != nil {
					return nil, fmt.Errorf("failed to decrypt subkey: %w", err)
				}
			}
		}
	}

	return NewGPGSignerFromEntity(entity), nil
}

// NewGPGSignerFromEntity wraps an already decrypted entity
func NewGPGSignerFromEntity(entity *openpgp.Entity) *GPGSigner {
	return &GPGSigner{entity: entity}
}

// SignDetached creates an armored detached signature (mirrors.yaml.asc)
func (s *GPGSigner) SignDetached(data []byte) ([]byte, error) {
	var buf bytes.Buffer

	err := openpgp.ArmoredDetachSign(&buf, s.entity, bytes.NewReader(data), &packet.Config{
		DefaultHash: crypto.SHA512,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create detached signature: %w", err)
	}

	return buf.Bytes(), nil
}

// GetPublicKey returns the public key in armored format
func (s *GPGSigner) GetPublicKey() ([]byte, error) {
	var buf bytes.Buffer

	w, err := armor.Encode(&buf, openpgp.PublicKeyType, nil)
	if err != nil {
		return nil, err
	}

	err = s.entity.Serialize(w)
	if err != nil {
		w.Close()
		return nil, err
	}

	if err := w.Close(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// GPGVerifier implements Verifier interface against a public keyring
type GPGVerifier struct {
	keyring openpgp.EntityList
}

// NewGPGVerifier loads a keyring file for signature verification
func NewGPGVerifier(keyringPath string) (*GPGVerifier, error) {
	entityList, err := readKeyRing(keyringPath)
	if err != nil {
		return nil, err
	}
	return &GPGVerifier{keyring: entityList}, nil
}

// NewGPGVerifierFromArmored builds a verifier from an in-memory armored keyring
func NewGPGVerifierFromArmored(data []byte) (*GPGVerifier, error) {
	entityList, err := openpgp.ReadArmoredKeyRing(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to read key: %w", err)
	}
	if len(entityList) == 0 {
		return nil, fmt.Errorf("no keys found in keyring")
	}
	return &GPGVerifier{keyring: entityList}, nil
}

// VerifyDetached checks an armored detached signature over data
func (v *GPGVerifier) VerifyDetached(data, signature []byte) error {
	_, err := openpgp.CheckArmoredDetachedSignature(v.keyring, bytes.NewReader(data), bytes.NewReader(signature), nil)
	if err != nil {
		return fmt.Errorf("signature verification failed: %w", err)
	}
	return nil
}

func readKeyRing(keyPath string) (openpgp.EntityList, error) {
	if keyPath == "" {
		return nil, fmt.Errorf("key path is empty")
	}

	keyFile, err := os.Open(keyPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open key file: %w", err)
	}
	defer keyFile.Close()

	// Try to parse as armored key first
	entityList, err := openpgp.ReadArmoredKeyRing(keyFile)
	if err != nil {
		// Try as binary key
		if _, seekErr := keyFile.Seek(0, 0); seekErr != nil {
			return nil, fmt.Errorf("failed to rewind key file: %w", seekErr)
		}
		entityList, err = openpgp.ReadKeyRing(keyFile)
		if err != nil {
			return nil, fmt.Errorf("failed to read key: %w", err)
		}
	}

	if len(entityList) == 0 {
		return nil, fmt.Errorf("no keys found in key file")
	}

	return entityList, nil
}
