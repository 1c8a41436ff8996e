package cli

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"sync"
	"testing"

	"github.com/efrogs/rarity/internal/config"
	"github.com/efrogs/rarity/internal/dataset"
)

var captureStdoutMu sync.Mutex

func captureStdout(t *testing.T, fn func()) string {
	t.Helper()
	captureStdoutMu.Lock()
	defer captureStdoutMu.Unlock()

	orig := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("os.Pipe: %v", err)
	}

	os.Stdout = w

	outputCh := make(chan string, 1)
	errCh := make(chan error, 1)
	go func() {
		var buf bytes.Buffer
		_, copyErr := io.Copy(&buf, r)
		_ = r.Close()
		if copyErr != nil {
			errCh <- copyErr
			return
		}
		outputCh <- buf.String()
	}()

	fn()

	os.Stdout = orig
	_ = w.Close()
	select {
	case err := <-errCh:
		t.Fatalf("io.Copy: %v", err)
		return ""
	case output := <-outputCh:
		return output
	}
}

// withEmbeddedDataset installs the embedded dataset and a default config as
// if PersistentPreRunE had run, restoring globals afterwards.
func withEmbeddedDataset(t *testing.T) *dataset.Dataset {
	t.Helper()

	d, err := dataset.Default()
	if err != nil {
		t.Fatalf("dataset.Default: %v", err)
	}

	prevLoaded, prevCfg, prevJSON := loaded, cfg, jsonOutput
	t.Cleanup(func() {
		loaded, cfg, jsonOutput = prevLoaded, prevCfg, prevJSON
	})

	loaded = d
	cfg = &config.Config{}
	jsonOutput = false
	return d
}

// testResponse decodes an envelope whose data is left raw.
type testResponse struct {
	OK    bool            `json:"ok"`
	Data  json.RawMessage `json:"data"`
	Error *ErrorInfo      `json:"error"`
	Meta  *Meta           `json:"meta"`
}

func decodeResponse(t *testing.T, out string) testResponse {
	t.Helper()
	var resp testResponse
	if err := json.Unmarshal([]byte(out), &resp); err != nil {
		t.Fatalf("expected JSON output, got parse error: %v; out=%s", err, out)
	}
	return resp
}
