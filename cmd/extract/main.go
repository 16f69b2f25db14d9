// Command extract runs the screenshot extraction pipeline against a single
// image reference (local path or URL) and prints the resulting record as JSON.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"

	"jobtrail/internal/config"
	"jobtrail/internal/extract"
	"jobtrail/internal/extract/ocr"
	"jobtrail/internal/extract/vision"
	"jobtrail/internal/port"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	if len(os.Args) < 2 {
		fmt.Println("Usage: extract <image path or URL>")
		os.Exit(1)
	}
	imageRef := os.Args[1]

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	var visionAdapter port.VisionExtractor
	if cfg.Vision.Enabled() {
		visionAdapter = vision.NewClient(&cfg.Vision)
	}

	var ocrAdapter port.TextRecognizer
	if ocr.Available(cfg.OCR.Tesseract) {
		ocrAdapter = ocr.NewEngine(cfg.OCR)
	}

	pipeline := extract.NewPipeline(visionAdapter, ocrAdapter)
	data := pipeline.Extract(context.Background(), imageRef)

	out, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding result: %w", err)
	}
	fmt.Println(string(out))
	return nil
}
