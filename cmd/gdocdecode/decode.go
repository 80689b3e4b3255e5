package main

import (
	"fmt"

	"github.com/Robert-Tyssen/Google-Doc-Secret-Message-Decoder/internal/pipeline"
	"github.com/spf13/cobra"
)

var decodeCmd = &cobra.Command{
	Use:   "decode",
	Short: "Fetch the document and print the decoded message",
	RunE:  runDecode,
}

func init() {
	decodeCmd.Flags().StringP("input", "i", "", "Read markup from a local file instead of fetching")
	decodeCmd.Flags().String("png", "", "Also write the message as a PNG image")
	decodeCmd.Flags().Int("scale", 2, "PNG pixel magnification")
	rootCmd.AddCommand(decodeCmd)
}

func runDecode(cmd *cobra.Command, args []string) error {
	pngPath, _ := cmd.Flags().GetString("png")
	scale, _ := cmd.Flags().GetInt("scale")

	result, err := decode(cmd)
	if err != nil {
		return err
	}

	fmt.Fprint(cmd.OutOrStdout(), result.Message)

	if pngPath != "" {
		return writePNG(pngPath, result.Canvas, scale)
	}
	return nil
}

// decode runs the pipeline on the --input file, or fetches cfg.URL.
func decode(cmd *cobra.Command) (*pipeline.Result, error) {
	markup, ok, err := readInput(cmd)
	if err != nil {
		return nil, err
	}
	if !ok {
		return pipeline.Run(cmd.Context(), pipeline.Options{
			URL:     cfg.URL,
			Fetcher: newFetcher(),
		})
	}

	result, err := pipeline.Decode(markup)
	if err != nil {
		return nil, fmt.Errorf("decoding: %w", err)
	}
	return result, nil
}
