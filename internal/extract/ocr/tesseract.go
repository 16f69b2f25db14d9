// Package ocr implements the text extraction adapter over a local tesseract
// binary.
package ocr

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/exec"
	"strings"
	"time"

	"jobtrail/internal/config"
	"jobtrail/internal/extract"
)

// Engine implements port.TextRecognizer by shelling out to tesseract.
// Every recognition acquires its resources (downloaded image, engine
// process) scoped to the call and releases them on both success and
// failure paths.
type Engine struct {
	cfg    config.OCRConfig
	runner Runner
	httpc  *http.Client
}

// NewEngine creates a tesseract-backed Engine from config.
func NewEngine(cfg config.OCRConfig) *Engine {
	return NewEngineWithRunner(cfg, execRunner{})
}

// NewEngineWithRunner creates an Engine with a custom command runner (for testing).
func NewEngineWithRunner(cfg config.OCRConfig, runner Runner) *Engine {
	if cfg.Tesseract == "" {
		cfg.Tesseract = "tesseract"
	}
	if cfg.Language == "" {
		cfg.Language = "eng"
	}
	if cfg.InitTimeoutSecs <= 0 {
		cfg.InitTimeoutSecs = 30
	}
	if cfg.RecogTimeoutSecs <= 0 {
		cfg.RecogTimeoutSecs = 30
	}
	return &Engine{
		cfg:    cfg,
		runner: runner,
		httpc:  &http.Client{Timeout: 30 * time.Second},
	}
}

// Available reports whether the tesseract binary can be resolved in this
// runtime. The orchestrator reads this once at startup as the OCR
// capability predicate.
func Available(binary string) bool {
	if binary == "" {
		binary = "tesseract"
	}
	_, err := exec.LookPath(binary)
	return err == nil
}

// Recognize fetches the image behind imageRef and runs tesseract over it,
// returning the raw recognized text. Engine verification and recognition
// each race their own timeout.
func (e *Engine) Recognize(ctx context.Context, imageRef string) (string, error) {
	path, cleanup, err := e.fetchImage(ctx, imageRef)
	if err != nil {
		return "", extract.NewOCRError("fetch", err)
	}
	defer cleanup()

	initTimeout := time.Duration(e.cfg.InitTimeoutSecs) * time.Second
	_, err = extract.RaceTimeout(ctx, initTimeout, func(ctx context.Context) (string, error) {
		out, errb, err := e.runner.Run(ctx, e.cfg.Tesseract, "--version")
		if err != nil {
			return "", fmt.Errorf("tesseract --version: %w (%s)", err, truncate(string(errb), 256))
		}
		return string(out), nil
	})
	if err != nil {
		return "", extract.NewOCRError("init", err)
	}

	recogTimeout := time.Duration(e.cfg.RecogTimeoutSecs) * time.Second
	text, err := extract.RaceTimeout(ctx, recogTimeout, func(ctx context.Context) (string, error) {
		// tesseract <file> stdout -l <lang>
		out, errb, err := e.runner.Run(ctx, e.cfg.Tesseract, path, "stdout", "-l", e.cfg.Language)
		if err != nil {
			return "", fmt.Errorf("tesseract: %w (%s)", err, truncate(string(errb), 512))
		}
		return string(out), nil
	})
	if err != nil {
		return "", extract.NewOCRError("recognize", err)
	}
	return text, nil
}

// fetchImage resolves an image reference to a local file path. Remote
// references are downloaded to a temp file whose cleanup is returned to the
// caller; local paths are used in place.
func (e *Engine) fetchImage(ctx context.Context, imageRef string) (string, func(), error) {
	noop := func() {}

	if !isRemote(imageRef) {
		if _, err := os.Stat(imageRef); err != nil {
			return "", noop, fmt.Errorf("resolving local image: %w", err)
		}
		return imageRef, noop, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, imageRef, http.NoBody)
	if err != nil {
		return "", noop, fmt.Errorf("creating download request: %w", err)
	}
	resp, err := e.httpc.Do(req)
	if err != nil {
		return "", noop, fmt.Errorf("downloading image: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return "", noop, fmt.Errorf("downloading image: unexpected status %d", resp.StatusCode)
	}

	tmp, err := os.CreateTemp("", "jobtrail-ocr-*.img")
	if err != nil {
		return "", noop, fmt.Errorf("creating temp file: %w", err)
	}
	cleanup := func() { _ = os.Remove(tmp.Name()) }

	if _, err := io.Copy(tmp, resp.Body); err != nil {
		_ = tmp.Close()
		cleanup()
		return "", noop, fmt.Errorf("writing temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		cleanup()
		return "", noop, fmt.Errorf("closing temp file: %w", err)
	}
	return tmp.Name(), cleanup, nil
}

func isRemote(ref string) bool {
	return strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://")
}
