package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/Robert-Tyssen/Google-Doc-Secret-Message-Decoder/internal/canvas"
	"github.com/Robert-Tyssen/Google-Doc-Secret-Message-Decoder/internal/extract"
	"github.com/Robert-Tyssen/Google-Doc-Secret-Message-Decoder/internal/fetch"
	"github.com/Robert-Tyssen/Google-Doc-Secret-Message-Decoder/internal/grid"
	"github.com/Robert-Tyssen/Google-Doc-Secret-Message-Decoder/internal/ir"
)

// ErrFetch is wrapped by every error Run returns from the fetch stage.
var ErrFetch = errors.New("fetch failed")

// Fetcher retrieves a document's markup.
type Fetcher interface {
	Get(ctx context.Context, url string) (string, error)
}

// Options controls the full fetch → decode pipeline.
type Options struct {
	URL     string  // required: published document URL
	Fetcher Fetcher // optional: defaults to fetch.NewClient with no size limit
}

// Result holds the output of a pipeline run.
type Result struct {
	Message string         // rendered message, one line per canvas row
	Canvas  *canvas.Canvas // for alternate output formats
	Grid    *ir.Grid
	Spans   int // spans found in the document, header included
}

// Run executes the full pipeline: fetch → extract → build → render.
func Run(ctx context.Context, opts Options) (*Result, error) {
	f := opts.Fetcher
	if f == nil {
		f = fetch.NewClient(0)
	}

	// 1. Fetch markup
	markup, err := f.Get(ctx, opts.URL)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFetch, err)
	}

	return Decode(markup)
}

// Decode runs every stage after the fetch on markup already in hand.
func Decode(markup string) (*Result, error) {
	// 2. Extract the flat span sequence
	spans, err := extract.Spans(markup)
	if err != nil {
		return nil, fmt.Errorf("extract: %w", err)
	}

	// 3. Group spans into triples and bounds
	g, err := grid.Build(spans)
	if err != nil {
		return nil, fmt.Errorf("build: %w", err)
	}
	slog.Debug("decoded table", "spans", len(spans), "triples", len(g.Triples), "bounds", g.Bounds)

	// 4. Render
	c := canvas.Draw(g)
	return &Result{
		Message: c.String(),
		Canvas:  c,
		Grid:    g,
		Spans:   len(spans),
	}, nil
}
