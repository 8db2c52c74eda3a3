package station

import (
	"fmt"
	"strings"

	"github.com/ghostbsd/software-properties-station/internal/models"
)

// Validate checks that the configuration file holds the markers of some
// registered mirror. This is a substring check only; the file is not parsed.
func (w *Writer) Validate() error {
	content, err := w.readConfig()
	if err != nil {
		return err
	}

	var lastErr error
	for _, entry := range w.registry.Entries() {
		if !w.generator.Matches(content, entry) {
			continue
		}
		if lastErr = checkMarkers(content, w.generator.Markers(entry)); lastErr == nil {
			return nil
		}
	}

	if lastErr == nil {
		lastErr = fmt.Errorf("no known repository found in configuration")
	}
	return &models.StationError{Type: models.ErrValidation, Err: lastErr}
}

// IsConfigValid reports whether Validate succeeds
func (w *Writer) IsConfigValid() bool {
	if err := w.Validate(); err != nil {
		w.log.Debugf("Configuration is not valid: %v", err)
		return false
	}
	return true
}

// validateFor re-reads the file after a write and checks the markers of entry
func (w *Writer) validateFor(entry models.RepositoryEntry) error {
	content, err := w.readConfig()
	if err != nil {
		return &models.StationError{Type: models.ErrFileOp, Repository: entry.Name, Err: err}
	}

	if err := checkMarkers(content, w.generator.Markers(entry)); err != nil {
		return &models.StationError{Type: models.ErrValidation, Repository: entry.Name, Err: err}
	}
	return nil
}

func checkMarkers(content string, markers []string) error {
	for _, marker := range markers {
		if !strings.Contains(content, marker) {
			return fmt.Errorf("missing %q in configuration", marker)
		}
	}
	return nil
}
