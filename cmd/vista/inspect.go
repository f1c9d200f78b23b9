package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"vista/internal/inspect"
	"vista/internal/inspect/wire"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect [flags] file...",
	Short: "Build and print the display tree for each input file",
	Long:  `Inspect decodes each input file into a value, builds its bounded display tree and prints it in the chosen format`,
	Args:  cobra.MinimumNArgs(1),
	RunE:  runInspect,
}

func init() {
	inspectCmd.Flags().String("format", "pretty", "output format (pretty|json|wire)")
	inspectCmd.Flags().String("label", "", "label for the root node (defaults to the file name)")
	inspectCmd.Flags().Int("jobs", 0, "maximum parallel builds (0 = GOMAXPROCS)")
	inspectCmd.Flags().StringP("output", "o", "", "write output to file instead of stdout")
}

type inspectResult struct {
	path   string
	tree   *inspect.Node
	failed bool
}

func runInspect(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	label, err := cmd.Flags().GetString("label")
	if err != nil {
		return fmt.Errorf("failed to get label flag: %w", err)
	}
	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return fmt.Errorf("failed to get jobs flag: %w", err)
	}
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}
	output, err := cmd.Flags().GetString("output")
	if err != nil {
		return fmt.Errorf("failed to get output flag: %w", err)
	}
	if err := validateFormat(format, len(args)); err != nil {
		return err
	}

	// Build all trees in parallel; each result lands in its own slot, so the
	// output order stays the argument order.
	results := make([]inspectResult, len(args))
	g, gctx := errgroup.WithContext(cmd.Context())
	g.SetLimit(min(jobs, len(args)))
	for i, path := range args {
		i, path := i, path
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			results[i] = buildTree(path, label)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	out := io.Writer(os.Stdout)
	if output != "" {
		f, err := os.Create(output)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		out = f
	}

	errColor := color.New(color.FgRed)
	failures := 0
	for _, res := range results {
		if res.failed {
			failures++
			header := fmt.Sprintf("%s: %s", res.path, res.tree.Message)
			if res.tree.SourceLine > 0 {
				header = fmt.Sprintf("%s (line %d)", header, res.tree.SourceLine)
			}
			if useColor(cmd, os.Stderr) {
				errColor.Fprintln(os.Stderr, header)
			} else {
				fmt.Fprintln(os.Stderr, header)
			}
		}
		if err := emit(out, res.tree, format); err != nil {
			return err
		}
	}
	if failures > 0 {
		return fmt.Errorf("%d of %d inputs failed to decode", failures, len(args))
	}
	return nil
}

// buildTree decodes one file and formats it; a decode failure becomes the
// error's own display tree.
func buildTree(path, label string) inspectResult {
	if label == "" {
		label = filepath.Base(path)
	}
	value, err := loadValue(path)
	if err != nil {
		return inspectResult{path: path, tree: inspect.CreateError(err), failed: true}
	}
	return inspectResult{path: path, tree: inspect.Create(value, label)}
}

// validateFormat checks the format name up front. A wire stream is a single
// payload, so the wire format cannot carry several trees at once.
func validateFormat(format string, inputs int) error {
	switch format {
	case "pretty", "json":
		return nil
	case "wire":
		if inputs > 1 {
			return fmt.Errorf("wire output holds a single payload, got %d inputs", inputs)
		}
		return nil
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

func emit(w io.Writer, tree *inspect.Node, format string) error {
	switch format {
	case "pretty":
		inspect.Print(w, tree)
		return nil
	case "json":
		return inspect.WriteJSON(w, tree)
	case "wire":
		data, err := wire.Encode(tree)
		if err != nil {
			return err
		}
		_, err = w.Write(data)
		return err
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}
