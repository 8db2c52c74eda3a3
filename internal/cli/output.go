package cli

import (
	"github.com/fatih/color"
	"github.com/ghostbsd/software-properties-station/internal/models"
	"github.com/spf13/cobra"
)

var (
	successColor = color.New(color.FgGreen)
	failureColor = color.New(color.FgRed, color.Bold)
)

// printResult writes successes to stdout and failures to stderr
func printResult(cmd *cobra.Command, result models.Result) {
	if result.Success {
		successColor.Fprintln(cmd.OutOrStdout(), result.Message)
		return
	}
	failureColor.Fprintln(cmd.ErrOrStderr(), result.Message)
}
