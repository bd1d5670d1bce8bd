// Command csvview shows comma- or semicolon-separated files as aligned tables
// in the terminal, using the same parser as the web viewer.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/JonMunkholm/csvview/internal/core"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "csvview",
		Short:         "Display CSV files as tables",
		Long:          `csvview detects whether a file is comma- or semicolon-separated and prints it as an aligned table`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")

	root.AddCommand(newDetectCmd())
	root.AddCommand(newShowCmd())
	return root
}

func main() {
	root := newRootCmd()
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "csvview:", err)
		os.Exit(1)
	}
}

// readInput reads path, or stdin when path is "-", and decodes it to UTF-8.
func readInput(cmd *cobra.Command, path string) (string, error) {
	var data []byte
	var err error
	if path == "-" {
		data, err = io.ReadAll(cmd.InOrStdin())
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	return core.Decode(data), nil
}

// useColor resolves the --color flag for output written to w.
func useColor(cmd *cobra.Command, w io.Writer) (bool, error) {
	mode, err := cmd.Root().PersistentFlags().GetString("color")
	if err != nil {
		return false, fmt.Errorf("failed to get color flag: %w", err)
	}

	switch mode {
	case "on":
		return true, nil
	case "off":
		return false, nil
	case "auto":
		f, ok := w.(*os.File)
		return ok && isTerminal(f), nil
	default:
		return false, fmt.Errorf("unknown color mode %q (want auto, on or off)", mode)
	}
}

// isTerminal reports whether f is a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
