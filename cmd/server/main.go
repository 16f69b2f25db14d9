package main

import (
	"fmt"
	"log"

	"jobtrail/internal/config"
	"jobtrail/internal/extract"
	"jobtrail/internal/extract/ocr"
	"jobtrail/internal/extract/vision"
	"jobtrail/internal/handler"
	"jobtrail/internal/port"
	"jobtrail/internal/repository/postgres"
	"jobtrail/internal/router"
	"jobtrail/internal/service"
	s3storage "jobtrail/internal/storage/s3"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	db, err := postgres.NewDB(&cfg.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	// Initialize repositories
	jobRepo := postgres.NewJobRepo(db)
	statsRepo := postgres.NewStatsRepo(db)

	// Initialize storage
	s3Client, err := s3storage.NewClient(&cfg.S3)
	if err != nil {
		return fmt.Errorf("failed to initialize S3 client: %w", err)
	}

	// Probe extraction capabilities once at startup. A nil adapter tells the
	// pipeline to skip that stage.
	var visionAdapter port.VisionExtractor
	if cfg.Vision.Enabled() {
		visionAdapter = vision.NewClient(&cfg.Vision)
		log.Printf("vision extraction enabled (model %s)", cfg.Vision.Model)
	} else {
		log.Printf("vision extraction disabled: no API key configured")
	}

	var ocrAdapter port.TextRecognizer
	if ocr.Available(cfg.OCR.Tesseract) {
		ocrAdapter = ocr.NewEngine(cfg.OCR)
		log.Printf("ocr extraction enabled (%s, lang %s)", cfg.OCR.Tesseract, cfg.OCR.Language)
	} else {
		log.Printf("ocr extraction disabled: %s not found in PATH", cfg.OCR.Tesseract)
	}

	pipeline := extract.NewPipeline(visionAdapter, ocrAdapter)

	// Initialize services
	jobSvc := service.NewJobService(jobRepo, statsRepo)
	screenshotSvc := service.NewScreenshotService(s3Client, &cfg.S3)
	extractSvc := service.NewExtractService(pipeline)

	// Initialize handlers
	jobH := handler.NewJobHandler(jobSvc)
	extractH := handler.NewExtractHandler(extractSvc)
	screenshotH := handler.NewScreenshotHandler(screenshotSvc)
	healthH := handler.NewHealthHandler(db)

	// Setup router
	r := router.Setup(cfg, jobH, extractH, screenshotH, healthH)

	log.Printf("Server starting on %s", cfg.Server.Port)
	if err := r.Run(cfg.Server.Port); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}
