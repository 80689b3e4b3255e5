package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/Robert-Tyssen/Google-Doc-Secret-Message-Decoder/internal/canvas"
	"github.com/Robert-Tyssen/Google-Doc-Secret-Message-Decoder/internal/ir"
	"github.com/spf13/cobra"
)

var renderCmd = &cobra.Command{
	Use:   "render [sidecar.json]",
	Short: "Render a JSON sidecar produced by extract",
	Args:  cobra.ExactArgs(1),
	RunE:  runRender,
}

func init() {
	renderCmd.Flags().String("png", "", "Also write the message as a PNG image")
	renderCmd.Flags().Int("scale", 2, "PNG pixel magnification")
	rootCmd.AddCommand(renderCmd)
}

func runRender(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	path := args[0]
	pngPath, _ := cmd.Flags().GetString("png")
	scale, _ := cmd.Flags().GetInt("scale")

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	var raw ir.Grid
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}

	// Recompute bounds from the triples rather than trusting the file.
	g := &ir.Grid{}
	for _, t := range raw.Triples {
		if t.X < 0 || t.Y < 0 || t.X > ir.MaxCoordinate || t.Y > ir.MaxCoordinate {
			return fmt.Errorf("%s: coordinate outside [0, %d] in %+v", path, ir.MaxCoordinate, t)
		}
		g.Add(t)
	}

	c := canvas.Draw(g)
	fmt.Fprint(out, c.String())

	if pngPath != "" {
		return writePNG(pngPath, c, scale)
	}
	return nil
}

func writePNG(path string, c *canvas.Canvas, scale int) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if err := c.WritePNG(f, scale); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
