package cli

import (
	"fmt"
	"os"
	"os/exec"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

const (
	// frontendEnv overrides the graphical front-end executable
	frontendEnv = "SPS_FRONTEND"

	defaultFrontend = "software-properties-station-gtk"
)

// launchFrontend starts the graphical front-end and waits for it to exit
func launchFrontend(cmd *cobra.Command) error {
	name := os.Getenv(frontendEnv)
	if name == "" {
		name = defaultFrontend
	}

	path, err := exec.LookPath(name)
	if err != nil {
		return fmt.Errorf("graphical front-end %s is not available, run with --help for command line usage: %w", name, err)
	}

	logrus.Debugf("Starting graphical front-end %s", path)

	frontend := exec.CommandContext(cmd.Context(), path)
	frontend.Stdin = cmd.InOrStdin()
	frontend.Stdout = cmd.OutOrStdout()
	frontend.Stderr = cmd.ErrOrStderr()

	if err := frontend.Run(); err != nil {
		return fmt.Errorf("graphical front-end exited: %w", err)
	}
	return nil
}
