package pkgconf

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/ghostbsd/software-properties-station/internal/generator"
	"github.com/ghostbsd/software-properties-station/internal/models"
)

const (
	// DefaultPubkeyPath is the certificate pkg(8) uses to verify GhostBSD packages
	DefaultPubkeyPath = "/usr/share/keys/ssl/certs/ghostbsd.cert"

	// BaseSuffix is appended to the block name of the base system block
	BaseSuffix = "-base"

	// URLMarker must appear in every valid configuration
	URLMarker = "url:"

	signatureType = "pubkey"
)

// Options controls how blocks are named and signed
type Options struct {
	// BlockName, when set, keys both blocks by this fixed name instead of the mirror name
	BlockName string
	// PubkeyPath defaults to DefaultPubkeyPath
	PubkeyPath string
}

// Generator implements the generator.Generator interface for pkg(8) repository files
type Generator struct {
	blockName  string
	pubkeyPath string
}

// NewGenerator creates a new pkg(8) configuration generator
func NewGenerator(opts Options) generator.Generator {
	pubkey := opts.PubkeyPath
	if pubkey == "" {
		pubkey = DefaultPubkeyPath
	}

	return &Generator{
		blockName:  opts.BlockName,
		pubkeyPath: pubkey,
	}
}

// Render creates the two-block configuration. Block order and field order
// are fixed; pkg(8) reads the result as UCL.
func (g *Generator) Render(entry models.RepositoryEntry) ([]byte, error) {
	if entry.LatestURL == "" || entry.BaseURL == "" {
		return nil, fmt.Errorf("repository %s has an empty URL", entry.Name)
	}

	name := g.BlockName(entry)
	if name == "" {
		return nil, fmt.Errorf("empty block name")
	}

	var buf bytes.Buffer
	writeBlock(&buf, name, entry.LatestURL, g.pubkeyPath)
	writeBlock(&buf, name+BaseSuffix, entry.BaseURL, g.pubkeyPath)

	return buf.Bytes(), nil
}

// Markers returns the block markers followed by the url marker
func (g *Generator) Markers(entry models.RepositoryEntry) []string {
	name := g.BlockName(entry)
	return []string{
		name + ":",
		name + BaseSuffix + ":",
		URLMarker,
	}
}

// BlockName returns the fixed block name if configured, the mirror name otherwise
func (g *Generator) BlockName(entry models.RepositoryEntry) string {
	if g.blockName != "" {
		return g.blockName
	}
	return entry.Name
}

// Matches reports whether content was rendered for entry. With per-mirror
// naming the block marker identifies the mirror; with a fixed block name all
// mirrors share markers, so the primary URL is compared instead.
func (g *Generator) Matches(content string, entry models.RepositoryEntry) bool {
	if g.blockName == "" {
		return strings.Contains(content, entry.Name+":")
	}
	return strings.Contains(content, fmt.Sprintf("url: \"%s\"", entry.LatestURL))
}

func writeBlock(buf *bytes.Buffer, name, url, pubkey string) {
	fmt.Fprintf(buf, "%s: {\n", name)
	fmt.Fprintf(buf, "  url: \"%s\",\n", url)
	fmt.Fprintf(buf, "  signature_type: \"%s\",\n", signatureType)
	fmt.Fprintf(buf, "  pubkey: \"%s\",\n", pubkey)
	buf.WriteString("  enabled: yes\n")
	buf.WriteString("}\n")
}
