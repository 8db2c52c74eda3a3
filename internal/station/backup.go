package station

import (
	"context"
	"fmt"
	"os"

	"github.com/ghostbsd/software-properties-station/internal/models"
	"github.com/ghostbsd/software-properties-station/internal/utils"
)

// saveBackup stores the current configuration, if any, next to it as gzip
func (w *Writer) saveBackup() error {
	exists, err := utils.FileExists(w.path)
	if err != nil {
		return &models.StationError{
			Type: models.ErrFileOp,
			Err:  fmt.Errorf("failed to stat %s: %w", w.path, err),
		}
	}
	if !exists {
		w.log.Debug("No previous configuration to back up")
		return nil
	}

	data, err := os.ReadFile(w.path)
	if err != nil {
		return &models.StationError{
			Type: models.ErrFileOp,
			Err:  fmt.Errorf("failed to read %s: %w", w.path, err),
		}
	}

	if err := utils.WriteGzipFile(w.BackupPath(), data, backupFileMode); err != nil {
		return &models.StationError{
			Type: models.ErrFileOp,
			Err:  fmt.Errorf("failed to write backup %s: %w", w.BackupPath(), err),
		}
	}

	w.log.WithField("backup", w.BackupPath()).Debug("Previous configuration backed up")
	return nil
}

// Restore puts the backed up configuration back in place
func (w *Writer) Restore(ctx context.Context) models.Result {
	if err := ctx.Err(); err != nil {
		return models.Result{Message: fmt.Sprintf("Failed to restore configuration: %v", err), Err: err}
	}

	data, err := utils.ReadGzipFile(w.BackupPath())
	if err != nil {
		serr := &models.StationError{
			Type: models.ErrFileOp,
			Err:  fmt.Errorf("failed to read backup %s: %w", w.BackupPath(), err),
		}
		w.log.Error(serr.Error())
		return models.Result{Message: fmt.Sprintf("Failed to restore configuration: %v", serr.Err), Err: serr}
	}

	if err := utils.WriteFileAtomic(w.path, data, configFileMode); err != nil {
		serr := &models.StationError{
			Type: models.ErrFileOp,
			Err:  fmt.Errorf("failed to write %s: %w", w.path, err),
		}
		w.log.Error(serr.Error())
		return models.Result{Message: fmt.Sprintf("Failed to restore configuration: %v", serr.Err), Err: serr}
	}

	w.log.WithField("path", w.path).Info("Configuration restored from backup")
	return models.Result{
		Success: true,
		Message: fmt.Sprintf("Configuration restored from %s.", w.BackupPath()),
	}
}
