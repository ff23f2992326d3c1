package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const version = "0.1.0"

// Exit codes
const (
	ExitSuccess      = 0
	ExitMatches      = 1
	ExitUsageError   = 2
	ExitRuntimeError = 3
)

var rootCmd = &cobra.Command{
	Use:   "gitred",
	Short: "Find deletion-heavy git commits",
	Long:  "Gitred scans commit history and flags commits dominated by deletions: refactors, reverts, and dead-code removals.",
}

// Run executes the root command and returns an exit code.
func Run() int {
	rootCmd.AddCommand(scanCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)

	if err := rootCmd.Execute(); err != nil {
		// Cobra already prints the error
		return ExitUsageError
	}

	return exitCode
}

// exitCode is set by command handlers to control the process exit code.
var exitCode = ExitSuccess

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print gitred version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(os.Stdout, "gitred version %s\n", version)
	},
}
