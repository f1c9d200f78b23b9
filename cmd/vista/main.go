package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"vista/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "vista",
	Short: "Inspect arbitrary values as bounded display trees",
	Long:  `Vista decodes values and builds bounded, displayable trees from them, the way an evaluation environment presents results it cannot predict the shape of`,
}

func init() {
	rootCmd.Version = version.Version

	rootCmd.AddCommand(inspectCmd)
	rootCmd.AddCommand(viewCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
}

// main executes the root command. If command execution returns an error, the
// process exits with status code 1.
func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// isTerminal reports whether f is attached to a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// useColor resolves the persistent --color flag against the given stream.
func useColor(cmd *cobra.Command, f *os.File) bool {
	flag, err := cmd.Root().PersistentFlags().GetString("color")
	if err != nil {
		return false
	}
	return flag == "on" || (flag == "auto" && isTerminal(f))
}
