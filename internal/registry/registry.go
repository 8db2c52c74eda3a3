// Package registry holds the immutable table of known package mirrors.
package registry

import (
	"fmt"
	"strings"

	"github.com/ghostbsd/software-properties-station/internal/models"
)

// Registry maps mirror names to their URL templates. It is never mutated
// after construction, so it is safe to share.
type Registry struct {
	names   []string
	entries map[string]models.RepositoryEntry
}

// New builds a registry preserving the order of entries
func New(entries ...models.RepositoryEntry) (*Registry, error) {
	r := &Registry{
		names:   make([]string, 0, len(entries)),
		entries: make(map[string]models.RepositoryEntry, len(entries)),
	}

	for _, entry := range entries {
		if err := validateEntry(entry); err != nil {
			return nil, &models.StationError{
				Type:       models.ErrInvalidConfig,
				Repository: entry.Name,
				Err:        err,
			}
		}
		if _, exists := r.entries[entry.Name]; exists {
			return nil, &models.StationError{
				Type:       models.ErrInvalidConfig,
				Repository: entry.Name,
				Err:        fmt.Errorf("duplicate repository name"),
			}
		}

		r.names = append(r.names, entry.Name)
		r.entries[entry.Name] = entry
	}

	if len(r.names) == 0 {
		return nil, &models.StationError{
			Type: models.ErrInvalidConfig,
			Err:  fmt.Errorf("no repositories defined"),
		}
	}

	return r, nil
}

// Lookup returns the entry registered under name
func (r *Registry) Lookup(name string) (models.RepositoryEntry, error) {
	entry, ok := r.entries[name]
	if !ok {
		return models.RepositoryEntry{}, &models.StationError{
			Type:       models.ErrUnknownRepository,
			Repository: name,
			Err:        fmt.Errorf("repository '%s' not found", name),
		}
	}
	return entry, nil
}

// Names returns all registered names in registration order
func (r *Registry) Names() []string {
	names := make([]string, len(r.names))
	copy(names, r.names)
	return names
}

// Entries returns all entries in registration order
func (r *Registry) Entries() []models.RepositoryEntry {
	entries := make([]models.RepositoryEntry, 0, len(r.names))
	for _, name := range r.names {
		entries = append(entries, r.entries[name])
	}
	return entries
}

// Len returns the number of registered mirrors
func (r *Registry) Len() int {
	return len(r.names)
}

func validateEntry(entry models.RepositoryEntry) error {
	if strings.TrimSpace(entry.Name) == "" {
		return fmt.Errorf("repository name is empty")
	}
	if strings.ContainsAny(entry.Name, " \t\n:{}\"") {
		return fmt.Errorf("repository name contains invalid characters")
	}
	if entry.LatestURL == "" {
		return fmt.Errorf("latest URL is empty")
	}
	if entry.BaseURL == "" {
		return fmt.Errorf("base URL is empty")
	}
	if !strings.Contains(entry.LatestURL, models.ABIPlaceholder) || !strings.Contains(entry.BaseURL, models.ABIPlaceholder) {
		return fmt.Errorf("URLs must contain the %s placeholder", models.ABIPlaceholder)
	}
	return nil
}
