package cli

import (
	"errors"
	"fmt"

	"github.com/ghostbsd/software-properties-station/internal/models"
	"github.com/ghostbsd/software-properties-station/internal/station"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// ErrReported is returned when the failure was already shown to the user
// and only a non-zero exit status remains to be set.
var ErrReported = errors.New("failure already reported")

// Version is set at build time
var Version = "dev"

type rootOptions struct {
	config   models.StationConfig
	list     bool
	current  bool
	validate bool
	restore  bool
	verbose  bool
}

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "software-properties-station [repository]",
		Short: "Select the package repository mirror used by pkg(8)",
		Long: `Software Properties Station rewrites the pkg(8) repository
configuration to point at one of a set of known GhostBSD mirrors.

Run with a repository name to select it, with --list to see the known
mirrors or with --current to see which one is configured. Without
arguments the graphical front-end is started.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Setup logging; callers release it with CloseLog once Execute returns
			err := setupLogging(logrus.StandardLogger(), cmd.ErrOrStderr(), opts.config.LogFile, opts.verbose)
			if err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "Logging to %s disabled: %v\n", opts.config.LogFile, err)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateConfig(opts, args); err != nil {
				return err
			}
			return run(cmd, opts, args)
		},
	}

	// Actions
	rootCmd.Flags().BoolVarP(&opts.list, "list", "l", false, "List the available repositories")
	rootCmd.Flags().BoolVarP(&opts.current, "current", "c", false, "Show the currently configured repository")
	rootCmd.Flags().BoolVar(&opts.validate, "validate", false, "Check that the configuration file looks valid")
	rootCmd.Flags().BoolVar(&opts.restore, "restore", false, "Restore the configuration saved by --backup")
	rootCmd.MarkFlagsMutuallyExclusive("list", "current", "validate", "restore")

	// Target and rendering
	rootCmd.Flags().StringVar(&opts.config.ConfigFile, "config-file", station.DefaultConfigFile, "pkg(8) repository configuration file")
	rootCmd.Flags().StringVar(&opts.config.ReposFile, "repos-file", "", "YAML mirror list to use instead of the built-in one")
	rootCmd.Flags().StringVar(&opts.config.ReposKeyring, "repos-keyring", "", "OpenPGP keyring the mirror list signature must verify against")
	rootCmd.Flags().StringVar(&opts.config.BlockName, "block-name", "", "Key both blocks by this fixed name instead of the mirror name")
	rootCmd.Flags().StringVar(&opts.config.PubkeyPath, "pubkey", "", "Public key path written to the configuration")
	rootCmd.Flags().BoolVar(&opts.config.Backup, "backup", false, "Keep a gzip copy of the previous configuration")

	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&opts.config.LogFile, "log-file", defaultLogFile(), "Append diagnostic logs to this file (empty to disable)")

	// Add subcommands
	rootCmd.AddCommand(NewSignReposCmd())
	rootCmd.AddCommand(NewVersionCmd())

	return rootCmd
}

func validateConfig(opts *rootOptions, args []string) error {
	if opts.config.ConfigFile == "" {
		return &models.StationError{
			Type: models.ErrInvalidConfig,
			Err:  fmt.Errorf("config-file is required"),
		}
	}

	if len(args) > 0 && (opts.list || opts.current || opts.validate || opts.restore) {
		return &models.StationError{
			Type: models.ErrInvalidConfig,
			Err:  fmt.Errorf("a repository name cannot be combined with --list, --current, --validate or --restore"),
		}
	}

	if opts.config.ReposKeyring != "" && opts.config.ReposFile == "" {
		return &models.StationError{
			Type: models.ErrInvalidConfig,
			Err:  fmt.Errorf("repos-keyring requires repos-file"),
		}
	}

	return nil
}

// NewVersionCmd creates the version command
func NewVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "software-properties-station %s\n", Version)
		},
	}
}
