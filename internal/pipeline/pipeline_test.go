package pipeline

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Robert-Tyssen/Google-Doc-Secret-Message-Decoder/internal/fetch"
	"github.com/Robert-Tyssen/Google-Doc-Secret-Message-Decoder/internal/grid"
)

const testdataDir = "../../testdata"

func loadMarkup(t *testing.T, name string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(testdataDir, name))
	if err != nil {
		t.Skipf("test document not available: %v", err)
	}
	return string(data)
}

func TestFullPipeline(t *testing.T) {
	markup := loadMarkup(t, "published.html")
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write([]byte(markup))
	}))
	defer srv.Close()

	result, err := Run(context.Background(), Options{URL: srv.URL})
	if err != nil {
		t.Fatalf("Pipeline: %v", err)
	}

	want := "█▀▀\n█▀ \n█  \n"
	if result.Message != want {
		t.Errorf("Message = %q, want %q", result.Message, want)
	}
	if result.Spans != 21 {
		t.Errorf("Spans = %d, want 21", result.Spans)
	}
	if len(result.Grid.Triples) != 6 {
		t.Errorf("Triples = %d, want 6", len(result.Grid.Triples))
	}
	if result.Canvas.Rows() != 3 || result.Canvas.Cols() != 3 {
		t.Errorf("canvas is %dx%d, want 3x3", result.Canvas.Cols(), result.Canvas.Rows())
	}

	t.Logf("Pipeline output:\n%s", result.Message)
}

func TestDecodeHI(t *testing.T) {
	markup := `<table>
		<tr><td><span>_</span></td><td><span>_</span></td><td><span>_</span></td></tr>
		<tr><td><span>0</span></td><td><span>H</span></td><td><span>1</span></td></tr>
		<tr><td><span>1</span></td><td><span>I</span></td><td><span>1</span></td></tr>
	</table>`
	result, err := Decode(markup)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if want := "HI\n  \n"; result.Message != want {
		t.Errorf("Message = %q, want %q", result.Message, want)
	}
}

func TestDecodeHeaderOnly(t *testing.T) {
	markup := `<table><tr><td><span>x</span></td><td><span>c</span></td><td><span>y</span></td></tr></table>`
	result, err := Decode(markup)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if result.Message != "" {
		t.Errorf("Message = %q, want empty", result.Message)
	}
	if !result.Grid.Empty() {
		t.Errorf("Grid = %+v, want empty", result.Grid)
	}
}

func TestDecodeFlattensAcrossRows(t *testing.T) {
	// Row membership comes from span position only, so a logical row may
	// straddle <tr> boundaries.
	markup := `<table>
		<tr><td><span>x</span><span>c</span></td></tr>
		<tr><td><span>y</span><span>0</span><span>Z</span></td></tr>
		<tr><td><span>0</span></td></tr>
	</table>`
	result, err := Decode(markup)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if result.Message != "Z\n" {
		t.Errorf("Message = %q, want %q", result.Message, "Z\n")
	}
}

func TestDecodeMalformed(t *testing.T) {
	markup := `<table>
		<tr><td><span>x</span><span>c</span><span>y</span></td></tr>
		<tr><td><span>zero</span><span>A</span><span>0</span></td></tr>
	</table>`
	_, err := Decode(markup)
	if !errors.Is(err, grid.ErrMalformed) {
		t.Errorf("err = %v, want ErrMalformed", err)
	}
}

func TestRunFetchFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	result, err := Run(context.Background(), Options{URL: srv.URL, Fetcher: fetch.NewClient(1 << 10)})
	if result != nil {
		t.Errorf("result = %+v, want nil", result)
	}
	var se *fetch.StatusError
	if !errors.As(err, &se) {
		t.Fatalf("err = %v, want *fetch.StatusError", err)
	}
	if !errors.Is(err, ErrFetch) {
		t.Errorf("err = %v, want ErrFetch", err)
	}
}

func TestRunFetchFailureNotLogged(t *testing.T) {
	var logs bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug})))
	defer slog.SetDefault(prev)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	if _, err := Run(context.Background(), Options{URL: srv.URL}); err == nil {
		t.Fatal("expected fetch error")
	}
	// The caller reports the returned error; the pipeline must not log it too.
	if strings.Contains(logs.String(), "level=ERROR") {
		t.Errorf("fetch failure was logged by the pipeline:\n%s", logs.String())
	}
}

func TestDecodeNotFetchError(t *testing.T) {
	_, err := Decode(`<table><tr><td><span>x</span><span>c</span><span>y</span><span>1</span></td></tr></table>`)
	if err == nil || errors.Is(err, ErrFetch) {
		t.Errorf("err = %v, want non-fetch error", err)
	}
}

type stubFetcher struct {
	markup string
	url    string
}

func (s *stubFetcher) Get(_ context.Context, url string) (string, error) {
	s.url = url
	return s.markup, nil
}

func TestRunUsesFetcher(t *testing.T) {
	stub := &stubFetcher{markup: loadMarkup(t, "published.html")}
	result, err := Run(context.Background(), Options{URL: "https://example.com/pub", Fetcher: stub})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if stub.url != "https://example.com/pub" {
		t.Errorf("fetched %q", stub.url)
	}
	if result.Canvas.Rows() != 3 {
		t.Errorf("Rows = %d, want 3", result.Canvas.Rows())
	}
}
