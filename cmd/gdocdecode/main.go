package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/Robert-Tyssen/Google-Doc-Secret-Message-Decoder/internal/config"
	"github.com/Robert-Tyssen/Google-Doc-Secret-Message-Decoder/internal/fetch"
	"github.com/Robert-Tyssen/Google-Doc-Secret-Message-Decoder/internal/pipeline"
	"github.com/spf13/cobra"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "gdocdecode",
	Short: "Decode the character-grid message hidden in a published document table",
	Long: `gdocdecode reads a published document whose table lists
(x-coordinate, character, y-coordinate) rows and draws the characters on a
grid to reveal the message. Run without a subcommand it behaves like decode.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
	RunE:              runDecode,
}

func init() {
	rootCmd.PersistentFlags().String("url", "", "Published document URL (default from GDOCDECODE_URL or the built-in document)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Log pipeline progress to stderr")
}

func setup(cmd *cobra.Command, args []string) error {
	var err error
	cfg, err = config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if u, _ := cmd.Flags().GetString("url"); u != "" {
		cfg.URL = u
	}
	if v, _ := cmd.Flags().GetBool("verbose"); v {
		cfg.LogLevel = slog.LevelDebug
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: cfg.LogLevel,
	})))
	return nil
}

// readInput returns the contents of the --input file. ok is false when the
// flag is unset or the command has none.
func readInput(cmd *cobra.Command) (markup string, ok bool, err error) {
	path, _ := cmd.Flags().GetString("input")
	if path == "" {
		return "", false, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", true, fmt.Errorf("reading input: %w", err)
	}
	return string(data), true, nil
}

// loadMarkup reads markup from the --input file when given, otherwise
// fetches cfg.URL.
func loadMarkup(cmd *cobra.Command) (string, error) {
	markup, ok, err := readInput(cmd)
	if ok || err != nil {
		return markup, err
	}
	return fetchMarkup(cmd.Context())
}

func newFetcher() *fetch.Client {
	return fetch.NewClientWithTimeout(cfg.Timeout, cfg.MaxBytes)
}

func fetchMarkup(ctx context.Context) (string, error) {
	markup, err := newFetcher().Get(ctx, cfg.URL)
	if err != nil {
		return "", fmt.Errorf("%w: %w", pipeline.ErrFetch, err)
	}
	return markup, nil
}

// report writes err to w and returns the process exit status. A failed
// fetch ends the run without a message but is not a usage or decode error,
// so it exits 0.
func report(w io.Writer, err error) int {
	if err == nil {
		return 0
	}
	fmt.Fprintln(w, err)
	if errors.Is(err, pipeline.ErrFetch) {
		return 0
	}
	return 1
}

func main() {
	os.Exit(report(os.Stderr, rootCmd.Execute()))
}
