package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/Robert-Tyssen/Google-Doc-Secret-Message-Decoder/internal/pipeline"
	"github.com/spf13/cobra"
)

var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Decode the table into a JSON sidecar of triples and bounds",
	RunE:  runExtract,
}

func init() {
	extractCmd.Flags().StringP("input", "i", "", "Read markup from a local file instead of fetching")
	extractCmd.Flags().StringP("output", "o", "", "Output JSON file")
	extractCmd.MarkFlagRequired("output")
	rootCmd.AddCommand(extractCmd)
}

func runExtract(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	outputPath, _ := cmd.Flags().GetString("output")

	markup, err := loadMarkup(cmd)
	if err != nil {
		return err
	}

	result, err := pipeline.Decode(markup)
	if err != nil {
		return fmt.Errorf("decoding: %w", err)
	}

	data, err := json.MarshalIndent(result.Grid, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding sidecar: %w", err)
	}
	if err := os.WriteFile(outputPath, data, 0644); err != nil {
		return fmt.Errorf("writing sidecar: %w", err)
	}

	fmt.Fprintf(out, "Extracted %d triples from %d spans\n", len(result.Grid.Triples), result.Spans)
	fmt.Fprintf(out, "Sidecar: %s\n", outputPath)
	return nil
}
