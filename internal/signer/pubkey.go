package signer

import (
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"fmt"
	"os"
)

// CheckPublicKey makes sure the file referenced by the pubkey field holds a
// PEM encoded RSA public key or certificate that pkg(8) can use.
func CheckPublicKey(path string) error {
	if path == "" {
		return fmt.Errorf("pubkey path is empty")
	}

	keyData, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read pubkey file: %w", err)
	}

	block, _ := pem.Decode(keyData)
	if block == nil {
		return fmt.Errorf("failed to decode PEM block in %s", path)
	}

	switch block.Type {
	case "PUBLIC KEY":
		key, err := x509.ParsePKIXPublicKey(block.Bytes)
		if err != nil {
			return fmt.Errorf("failed to parse public key: %w", err)
		}
		if _, ok := key.(*rsa.PublicKey); !ok {
			return fmt.Errorf("key is not an RSA public key")
		}
	case "RSA PUBLIC KEY":
		if _, err := x509.ParsePKCS1PublicKey(block.Bytes); err != nil {
			return fmt.Errorf("failed to parse public key: %w", err)
		}
	case "CERTIFICATE":
		if _, err := x509.ParseCertificate(block.Bytes); err != nil {
			return fmt.Errorf("failed to parse certificate: %w", err)
		}
	default:
		return fmt.Errorf("unexpected PEM block type %q", block.Type)
	}

	return nil
}
