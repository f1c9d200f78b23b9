package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"vista/internal/inspect"
	"vista/internal/ui"
)

var viewCmd = &cobra.Command{
	Use:   "view [flags] file",
	Short: "Browse the display tree for a file interactively",
	Long:  `View decodes a file into a value and opens its display tree in an interactive browser`,
	Args:  cobra.ExactArgs(1),
	RunE:  runView,
}

func init() {
	viewCmd.Flags().String("label", "", "label for the root node (defaults to the file name)")
}

func runView(cmd *cobra.Command, args []string) error {
	label, err := cmd.Flags().GetString("label")
	if err != nil {
		return fmt.Errorf("failed to get label flag: %w", err)
	}
	if label == "" {
		label = filepath.Base(args[0])
	}

	var tree *inspect.Node
	value, err := loadValue(args[0])
	if err != nil {
		tree = inspect.CreateError(err)
	} else {
		tree = inspect.Create(value, label)
	}
	return ui.Browse(tree)
}
