package signer

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"os"
	"path/filepath"
	"testing"

	"github.com/ProtonMail/go-crypto/openpgp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSigner(t *testing.T) *GPGSigner {
	t.Helper()

	entity, err := openpgp.NewEntity("Mirror Publisher", "test", "mirrors@example.org", nil)
	require.NoError(t, err)

	return NewGPGSignerFromEntity(entity)
}

func TestDetachedSignatureRoundTrip(t *testing.T) {
	s := newTestSigner(t)
	data := []byte("repositories:\n  - name: GhostBSD\n")

	sig, err := s.SignDetached(data)
	require.NoError(t, err)

	pub, err := s.GetPublicKey()
	require.NoError(t, err)

	v, err := NewGPGVerifierFromArmored(pub)
	require.NoError(t, err)

	assert.NoError(t, v.VerifyDetached(data, sig))
	assert.Error(t, v.VerifyDetached([]byte("repositories: []\n"), sig))
}

func TestVerifierRejectsForeignKey(t *testing.T) {
	publisher := newTestSigner(t)
	stranger := newTestSigner(t)
	data := []byte("mirror list")

	sig, err := stranger.SignDetached(data)
	require.NoError(t, err)

	pub, err := publisher.GetPublicKey()
	require.NoError(t, err)

	keyringPath := filepath.Join(t.TempDir(), "keyring.asc")
	require.NoError(t, os.WriteFile(keyringPath, pub, 0644))

	v, err := NewGPGVerifier(keyringPath)
	require.NoError(t, err)

	assert.Error(t, v.VerifyDetached(data, sig))
}

func TestNewGPGVerifierErrors(t *testing.T) {
	_, err := NewGPGVerifier("")
	assert.Error(t, err)

	_, err = NewGPGVerifier(filepath.Join(t.TempDir(), "missing.asc"))
	assert.Error(t, err)

	garbage := filepath.Join(t.TempDir(), "garbage.asc")
	require.NoError(t, os.WriteFile(garbage, []byte("not a key"), 0644))
	_, err = NewGPGVerifier(garbage)
	assert.Error(t, err)
}

func TestCheckPublicKey(t *testing.T) {
	dir := t.TempDir()

	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	der, err := x509.MarshalPKIXPublicKey(&key.PublicKey)
	require.NoError(t, err)

	valid := filepath.Join(dir, "ghostbsd.cert")
	require.NoError(t, os.WriteFile(valid, pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: der}), 0644))
	assert.NoError(t, CheckPublicKey(valid))

	pkcs1 := filepath.Join(dir, "pkcs1.cert")
	require.NoError(t, os.WriteFile(pkcs1, pem.EncodeToMemory(&pem.Block{
		Type:  "RSA PUBLIC KEY",
		Bytes: x509.MarshalPKCS1PublicKey(&key.PublicKey),
	}), 0644))
	assert.NoError(t, CheckPublicKey(pkcs1))

	invalid := filepath.Join(dir, "invalid.cert")
	require.NoError(t, os.WriteFile(invalid, []byte("hello"), 0644))
	assert.Error(t, CheckPublicKey(invalid))

	assert.Error(t, CheckPublicKey(filepath.Join(dir, "missing.cert")))
	assert.Error(t, CheckPublicKey(""))
}
