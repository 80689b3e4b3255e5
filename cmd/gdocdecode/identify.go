package main

import (
	"fmt"
	"strings"

	"github.com/Robert-Tyssen/Google-Doc-Secret-Message-Decoder/internal/grid"
	"github.com/Robert-Tyssen/Google-Doc-Secret-Message-Decoder/internal/pipeline"
	"github.com/spf13/cobra"
)

var identifyCmd = &cobra.Command{
	Use:   "identify",
	Short: "Inspect the encoded table without printing the message",
	RunE:  runIdentify,
}

func init() {
	identifyCmd.Flags().StringP("input", "i", "", "Read markup from a local file instead of fetching")
	rootCmd.AddCommand(identifyCmd)
}

func runIdentify(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	source, _ := cmd.Flags().GetString("input")
	if source == "" {
		source = cfg.URL
	}

	markup, err := loadMarkup(cmd)
	if err != nil {
		return err
	}

	result, err := pipeline.Decode(markup)
	if err != nil {
		return fmt.Errorf("decoding %s: %w", source, err)
	}
	g := result.Grid

	fmt.Fprintf(out, "Source:     %s\n", source)
	fmt.Fprintf(out, "Markup:     %d bytes\n", len(markup))
	fmt.Fprintf(out, "Spans:      %d (%d header)\n", result.Spans, min(result.Spans, grid.Columns))
	fmt.Fprintf(out, "Triples:    %d\n", len(g.Triples))

	if g.Empty() {
		fmt.Fprintln(out, "Bounds:     none (no data rows)")
		return nil
	}

	fmt.Fprintf(out, "Bounds:     x<=%d y<=%d\n", g.Bounds.XMax, g.Bounds.YMax)
	fmt.Fprintf(out, "Canvas:     %d x %d\n", g.Bounds.Width(), g.Bounds.Height())
	fmt.Fprintf(out, "Duplicates: %d\n", g.Duplicates())
	fmt.Fprintf(out, "Characters: %s\n", strings.Join(quoteAll(g.Chars()), " "))
	return nil
}

func quoteAll(ss []string) []string {
	quoted := make([]string, len(ss))
	for i, s := range ss {
		quoted[i] = fmt.Sprintf("%q", s)
	}
	return quoted
}
