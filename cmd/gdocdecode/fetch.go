package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Download the published document markup",
	RunE:  runFetch,
}

func init() {
	fetchCmd.Flags().StringP("output", "o", "", "Output HTML file")
	fetchCmd.MarkFlagRequired("output")
	rootCmd.AddCommand(fetchCmd)
}

func runFetch(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	outputPath, _ := cmd.Flags().GetString("output")

	markup, err := fetchMarkup(cmd.Context())
	if err != nil {
		return err
	}

	if err := os.WriteFile(outputPath, []byte(markup), 0644); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}

	fmt.Fprintf(out, "Fetched %s\n", cfg.URL)
	fmt.Fprintf(out, "Output: %s (%d bytes)\n", outputPath, len(markup))
	return nil
}
