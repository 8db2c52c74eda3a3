package generator

import (
	"github.com/ghostbsd/software-properties-station/internal/models"
)

// Generator interface for repository configuration renderers
type Generator interface {
	// Render produces the full configuration file content for an entry
	Render(entry models.RepositoryEntry) ([]byte, error)

	// Markers returns the substrings a correctly written file must contain
	Markers(entry models.RepositoryEntry) []string

	// BlockName returns the name of the primary block written for an entry
	BlockName(entry models.RepositoryEntry) string

	// Matches reports whether content looks like it was rendered for entry
	Matches(content string, entry models.RepositoryEntry) bool
}
