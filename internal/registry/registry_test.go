package registry

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ProtonMail/go-crypto/openpgp"
	"github.com/ghostbsd/software-properties-station/internal/models"
	"github.com/ghostbsd/software-properties-station/internal/signer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func entry(name string) models.RepositoryEntry {
	return models.RepositoryEntry{
		Name:      name,
		LatestURL: "https://" + name + ".example.org/${ABI}/latest",
		BaseURL:   "https://" + name + ".example.org/${ABI}/base",
	}
}

func TestDefaultRegistry(t *testing.T) {
	r := Default()

	assert.Equal(t, []string{"GhostBSD", "GhostBSD_Canada", "GhostBSD_France"}, r.Names())
	assert.Equal(t, 3, r.Len())

	e, err := r.Lookup("GhostBSD_France")
	require.NoError(t, err)
	assert.Equal(t, "https://pkg.fr.ghostbsd.org/unstable/${ABI}/latest", e.LatestURL)
	assert.Equal(t, "https://pkg.fr.ghostbsd.org/unstable/${ABI}/base", e.BaseURL)
}

func TestLookupUnknown(t *testing.T) {
	r := Default()

	_, err := r.Lookup("Z")
	require.Error(t, err)
	assert.True(t, models.IsType(err, models.ErrUnknownRepository))
	assert.Contains(t, err.Error(), "Z")
}

func TestNamesStableAndCopied(t *testing.T) {
	r, err := New(entry("A"), entry("C"), entry("B"))
	require.NoError(t, err)

	first := r.Names()
	first[0] = "mutated"

	assert.Equal(t, []string{"A", "C", "B"}, r.Names())
	assert.Equal(t, r.Names(), r.Names())

	entries := r.Entries()
	require.Len(t, entries, 3)
	assert.Equal(t, "B", entries[2].Name)
}

func TestNewRejectsInvalidEntries(t *testing.T) {
	tests := []struct {
		name    string
		entries []models.RepositoryEntry
	}{
		{"empty", nil},
		{"duplicate", []models.RepositoryEntry{entry("A"), entry("A")}},
		{"blank name", []models.RepositoryEntry{entry(" ")}},
		{"name with colon", []models.RepositoryEntry{entry("A:B")}},
		{"missing base", []models.RepositoryEntry{{Name: "A", LatestURL: "https://a/${ABI}"}}},
		{"missing placeholder", []models.RepositoryEntry{{Name: "A", LatestURL: "https://a/latest", BaseURL: "https://a/${ABI}/base"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.entries...)
			require.Error(t, err)
			assert.True(t, models.IsType(err, models.ErrInvalidConfig))
		})
	}
}

const mirrorsYAML = `repositories:
  - name: GhostBSD_Local
    latest_url: "http://mirror.lan/${ABI}/latest"
    base_url: "http://mirror.lan/${ABI}/base"
  - name: GhostBSD
    latest_url: "https://pkg.ghostbsd.org/stable/${ABI}/latest"
    base_url: "https://pkg.ghostbsd.org/stable/${ABI}/base"
`

func TestParse(t *testing.T) {
	r, err := Parse([]byte(mirrorsYAML))
	require.NoError(t, err)

	assert.Equal(t, []string{"GhostBSD_Local", "GhostBSD"}, r.Names())
	e, err := r.Lookup("GhostBSD_Local")
	require.NoError(t, err)
	assert.Equal(t, "http://mirror.lan/${ABI}/base", e.BaseURL)
}

func TestParseRejectsUnknownFields(t *testing.T) {
	_, err := Parse([]byte("repositories:\n  - name: A\n    mirror: x\n"))
	require.Error(t, err)
	assert.True(t, models.IsType(err, models.ErrInvalidConfig))
}

func TestLoadFileWithSignature(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "mirrors.yaml")
	require.NoError(t, os.WriteFile(path, []byte(mirrorsYAML), 0644))

	entity, err := openpgp.NewEntity("Mirror Publisher", "", "mirrors@example.org", nil)
	require.NoError(t, err)
	s := signer.NewGPGSignerFromEntity(entity)

	pub, err := s.GetPublicKey()
	require.NoError(t, err)
	verifier, err := signer.NewGPGVerifierFromArmored(pub)
	require.NoError(t, err)

	// No signature yet
	_, err = LoadFile(path, verifier)
	require.Error(t, err)
	assert.True(t, models.IsType(err, models.ErrSignature))

	sig, err := s.SignDetached([]byte(mirrorsYAML))
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path+SignatureSuffix, sig, 0644))

	r, err := LoadFile(path, verifier)
	require.NoError(t, err)
	assert.Equal(t, 2, r.Len())

	// Tampered list
	require.NoError(t, os.WriteFile(path, []byte(mirrorsYAML+"  - name: evil\n"), 0644))
	_, err = LoadFile(path, verifier)
	require.Error(t, err)
	assert.True(t, models.IsType(err, models.ErrSignature))
}

func TestLoadFileUnsigned(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mirrors.yaml")
	require.NoError(t, os.WriteFile(path, []byte(mirrorsYAML), 0644))

	r, err := LoadFile(path, nil)
	require.NoError(t, err)
	assert.Equal(t, 2, r.Len())

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"), nil)
	require.Error(t, err)
	assert.True(t, models.IsType(err, models.ErrFileOp))
}
