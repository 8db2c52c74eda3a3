package signer

// Signer interface for signing mirror lists
type Signer interface {
	// SignDetached creates an armored detached signature
	SignDetached(data []byte) ([]byte, error)

	// GetPublicKey returns the armored public key
	GetPublicKey() ([]byte, error)
}

// Verifier interface for checking mirror list signatures
type Verifier interface {
	// VerifyDetached checks an armored detached signature over data
	VerifyDetached(data, signature []byte) error
}
