package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/JonMunkholm/csvview/internal/csvtext"
)

func newDetectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "detect FILE",
		Short: "Print the detected delimiter of a CSV file",
		Long:  `Detect counts commas and semicolons in the first lines of FILE and prints the winner. Use - for stdin.`,
		Args:  cobra.ExactArgs(1),
		RunE:  runDetect,
	}
}

func runDetect(cmd *cobra.Command, args []string) error {
	raw, err := readInput(cmd, args[0])
	if err != nil {
		return err
	}

	d := csvtext.DetectDelimiter(raw)
	_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s (%s)\n", d.Name(), d)
	return err
}
