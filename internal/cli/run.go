package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ghostbsd/software-properties-station/internal/generator/pkgconf"
	"github.com/ghostbsd/software-properties-station/internal/models"
	"github.com/ghostbsd/software-properties-station/internal/registry"
	"github.com/ghostbsd/software-properties-station/internal/signer"
	"github.com/ghostbsd/software-properties-station/internal/station"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// geteuid is replaced in tests
var geteuid = os.Geteuid

func run(cmd *cobra.Command, opts *rootOptions, args []string) error {
	noAction := len(args) == 0 && !opts.list && !opts.current && !opts.validate && !opts.restore
	if noAction {
		return launchFrontend(cmd)
	}

	reg, err := loadRegistry(&opts.config)
	if err != nil {
		return err
	}
	logrus.Debugf("Loaded repositories: %v", reg.Names())

	w := newWriter(reg, &opts.config)
	out := cmd.OutOrStdout()

	switch {
	case opts.list:
		fmt.Fprintln(out, "Available repositories:")
		for _, name := range reg.Names() {
			fmt.Fprintf(out, "  - %s\n", name)
		}
		return nil

	case opts.current:
		name, err := w.CurrentRepository()
		switch {
		case err == nil:
			fmt.Fprintf(out, "Current repository: %s\n", name)
		case models.IsType(err, models.ErrNotConfigured):
			fmt.Fprintln(out, "No known repository currently configured.")
		default:
			logrus.Errorf("Error reading current configuration: %v", err)
			fmt.Fprintln(out, "Error reading current configuration.")
		}
		return nil

	case opts.validate:
		if err := w.Validate(); err != nil {
			printResult(cmd, models.Result{Message: fmt.Sprintf("Configuration is invalid: %v", err), Err: err})
			return ErrReported
		}
		printResult(cmd, models.Result{Success: true, Message: "Configuration is valid."})
		return nil

	case opts.restore:
		if err := requirePrivileges(opts.config.ConfigFile); err != nil {
			return err
		}
		return report(cmd, w.Restore(cmd.Context()))
	}

	if err := requirePrivileges(opts.config.ConfigFile); err != nil {
		return err
	}
	return report(cmd, w.SelectRepository(cmd.Context(), args[0]))
}

func loadRegistry(config *models.StationConfig) (*registry.Registry, error) {
	if config.ReposFile == "" {
		return registry.Default(), nil
	}

	if config.ReposKeyring == "" {
		logrus.Warnf("Mirror list %s is not signature checked", config.ReposFile)
		return registry.LoadFile(config.ReposFile, nil)
	}

	verifier, err := signer.NewGPGVerifier(config.ReposKeyring)
	if err != nil {
		return nil, &models.StationError{
			Type: models.ErrSignature,
			Err:  fmt.Errorf("failed to load keyring: %w", err),
		}
	}
	logrus.Debugf("Verifying mirror list against %s", config.ReposKeyring)
	return registry.LoadFile(config.ReposFile, verifier)
}

func newWriter(reg *registry.Registry, config *models.StationConfig) *station.Writer {
	gen := pkgconf.NewGenerator(pkgconf.Options{
		BlockName:  config.BlockName,
		PubkeyPath: config.PubkeyPath,
	})

	pubkey := config.PubkeyPath
	if pubkey == "" {
		pubkey = pkgconf.DefaultPubkeyPath
	}

	return station.NewWriter(reg, gen, config.ConfigFile,
		station.WithLogger(logrus.StandardLogger()),
		station.WithBackup(config.Backup),
		station.WithPubkeyCheck(pubkey),
	)
}

// requirePrivileges refuses to touch the system configuration unless running as root
func requirePrivileges(path string) error {
	if !isSystemConfig(path) {
		return nil
	}
	if geteuid() != 0 {
		return fmt.Errorf("this command must be run as root, please use 'sudo' or log in as root")
	}
	return nil
}

func report(cmd *cobra.Command, result models.Result) error {
	printResult(cmd, result)
	if !result.Success {
		return ErrReported
	}
	return nil
}

// isSystemConfig reports whether path names the system configuration file,
// after cleaning and resolving symlinks in its directory.
func isSystemConfig(path string) bool {
	return resolvePath(path) == resolvePath(station.DefaultConfigFile)
}

// resolvePath makes path absolute and resolves symlinks in its parent
// directory. The file itself need not exist yet.
func resolvePath(path string) string {
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}
	path = filepath.Clean(path)

	if resolved, err := filepath.EvalSymlinks(path); err == nil {
		return resolved
	}
	if dir, err := filepath.EvalSymlinks(filepath.Dir(path)); err == nil {
		return filepath.Join(dir, filepath.Base(path))
	}
	return path
}
