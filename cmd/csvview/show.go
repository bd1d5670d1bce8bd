package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/JonMunkholm/csvview/internal/core"
	"github.com/JonMunkholm/csvview/internal/csvtext"
)

func newShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show FILE",
		Short: "Print a CSV file as a table",
		Long:  `Show parses FILE (or stdin with -) and prints it as an aligned table or as JSON.`,
		Args:  cobra.ExactArgs(1),
		RunE:  runShow,
	}

	cmd.Flags().String("delimiter", "auto", "field delimiter (auto|comma|semicolon|,|;)")
	cmd.Flags().String("format", "table", "output format (table|json)")
	cmd.Flags().Int("max-width", 40, "truncate cells wider than this many columns (0 disables)")
	return cmd
}

func runShow(cmd *cobra.Command, args []string) error {
	delimFlag, err := cmd.Flags().GetString("delimiter")
	if err != nil {
		return fmt.Errorf("failed to get delimiter flag: %w", err)
	}
	delim, err := csvtext.ParseDelimiter(delimFlag)
	if err != nil {
		return err
	}

	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	maxWidth, err := cmd.Flags().GetInt("max-width")
	if err != nil {
		return fmt.Errorf("failed to get max-width flag: %w", err)
	}

	raw, err := readInput(cmd, args[0])
	if err != nil {
		return err
	}
	view := core.Preview(raw, delim)

	out := cmd.OutOrStdout()
	switch format {
	case "table":
		color, err := useColor(cmd, out)
		if err != nil {
			return err
		}
		return renderTable(out, view.Rows, renderOpts{Color: color, MaxWidth: maxWidth})
	case "json":
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(view)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}
