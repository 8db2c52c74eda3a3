// Package station rewrites the pkg(8) repository configuration to point at a
// selected mirror and inspects what is currently configured.
package station

import (
	"context"
	"fmt"
	"os"

	"github.com/ghostbsd/software-properties-station/internal/generator"
	"github.com/ghostbsd/software-properties-station/internal/models"
	"github.com/ghostbsd/software-properties-station/internal/registry"
	"github.com/ghostbsd/software-properties-station/internal/signer"
	"github.com/ghostbsd/software-properties-station/internal/utils"
	"github.com/sirupsen/logrus"
)

const (
	// DefaultConfigFile is the repository configuration read by pkg(8)
	DefaultConfigFile = "/etc/pkg/GhostBSD.conf"

	// BackupSuffix is appended to the configuration path for the gzip backup
	BackupSuffix = ".bak.gz"

	configFileMode = 0644
	backupFileMode = 0600
)

// Writer selects mirrors by rewriting a single configuration file
type Writer struct {
	registry   *registry.Registry
	generator  generator.Generator
	path       string
	backup     bool
	pubkeyPath string
	log        logrus.FieldLogger
}

// Option configures a Writer
type Option func(*Writer)

// WithLogger sets the diagnostic log sink
func WithLogger(log logrus.FieldLogger) Option {
	return func(w *Writer) {
		w.log = log
	}
}

// WithBackup keeps a gzip copy of the previous configuration before each write
func WithBackup(enabled bool) Option {
	return func(w *Writer) {
		w.backup = enabled
	}
}

// WithPubkeyCheck warns after a write when path is not a usable public key
func WithPubkeyCheck(path string) Option {
	return func(w *Writer) {
		w.pubkeyPath = path
	}
}

// NewWriter creates a writer for the configuration file at path
func NewWriter(reg *registry.Registry, gen generator.Generator, path string, opts ...Option) *Writer {
	w := &Writer{
		registry:  reg,
		generator: gen,
		path:      path,
		log:       logrus.StandardLogger(),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// BackupPath returns where the previous configuration is kept
func (w *Writer) BackupPath() string {
	return w.path + BackupSuffix
}

// SelectRepository points the configuration at the named mirror. Every
// failure is reported through the returned Result.
func (w *Writer) SelectRepository(ctx context.Context, name string) models.Result {
	log := w.log.WithFields(logrus.Fields{"repository": name, "path": w.path})
	log.Debug("Selecting repository")

	if err := ctx.Err(); err != nil {
		return failure(name, err)
	}

	entry, err := w.registry.Lookup(name)
	if err != nil {
		log.Errorf("Repository lookup failed: %v", err)
		return failure(name, err)
	}

	content, err := w.generator.Render(entry)
	if err != nil {
		log.Errorf("Failed to render configuration: %v", err)
		return failure(name, &models.StationError{Type: models.ErrInvalidConfig, Repository: name, Err: err})
	}

	if w.backup {
		if err := w.saveBackup(); err != nil {
			log.Errorf("Failed to back up configuration: %v", err)
			return failure(name, err)
		}
	}

	if err := utils.WriteFileAtomic(w.path, content, configFileMode); err != nil {
		log.Errorf("Error updating configuration: %v", err)
		return failure(name, &models.StationError{
			Type:       models.ErrFileOp,
			Repository: name,
			Err:        fmt.Errorf("failed to write %s: %w", w.path, err),
		})
	}
	log.WithField("sha256", utils.SHA256Hex(content)).
		Infof("Configuration updated with repository %s", name)

	if err := w.validateFor(entry); err != nil {
		log.Errorf("Configuration validation failed: %v", err)
		return failure(name, err)
	}
	log.Info("Configuration file validated")

	if w.pubkeyPath != "" {
		if err := signer.CheckPublicKey(w.pubkeyPath); err != nil {
			log.Warnf("pkg(8) will not be able to verify packages: %v", err)
		}
	}

	return models.Result{
		Success: true,
		Message: fmt.Sprintf("%s selected and configuration updated.", name),
	}
}

// CurrentRepository returns the first registered mirror, in registry order,
// that the configuration file was rendered for. When a hand-edited file
// matches several mirrors the answer is whichever comes first.
func (w *Writer) CurrentRepository() (string, error) {
	content, err := w.readConfig()
	if err != nil {
		return "", err
	}

	for _, entry := range w.registry.Entries() {
		if w.generator.Matches(content, entry) {
			return entry.Name, nil
		}
	}

	return "", &models.StationError{
		Type: models.ErrNotConfigured,
		Err:  fmt.Errorf("no known repository currently configured"),
	}
}

func (w *Writer) readConfig() (string, error) {
	data, err := os.ReadFile(w.path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", &models.StationError{
				Type: models.ErrNotConfigured,
				Err:  fmt.Errorf("configuration file %s does not exist", w.path),
			}
		}
		return "", &models.StationError{
			Type: models.ErrFileOp,
			Err:  fmt.Errorf("failed to read %s: %w", w.path, err),
		}
	}
	return string(data), nil
}

// failure converts an error into the user-facing Result
func failure(name string, err error) models.Result {
	var message string
	switch {
	case models.IsType(err, models.ErrUnknownRepository):
		message = fmt.Sprintf("Repository '%s' not found.", name)
	case models.IsType(err, models.ErrValidation):
		message = fmt.Sprintf("Configuration validation failed: %v", unwrapStation(err))
	default:
		message = fmt.Sprintf("Failed to select repository %s: %v", name, unwrapStation(err))
	}

	return models.Result{
		Success: false,
		Message: message,
		Err:     err,
	}
}

func unwrapStation(err error) error {
	if se, ok := err.(*models.StationError); ok && se.Err != nil {
		return se.Err
	}
	return err
}
