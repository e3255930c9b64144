package pipeline

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/Samrudhp/EduSummaryV2/internal/chunker"
	"github.com/Samrudhp/EduSummaryV2/internal/parser"
	"github.com/Samrudhp/EduSummaryV2/internal/segment"
	"github.com/Samrudhp/EduSummaryV2/internal/store"
)

// MinExtractedChars is the least text an upload must yield to be processed.
const MinExtractedChars = 100

var (
	ErrInsufficientText = errors.New("could not extract sufficient text")
	ErrInputTooLarge    = errors.New("extracted text exceeds the input limit")
)

// WorkerConfig holds the settings a worker applies to every job.
type WorkerConfig struct {
	Parser        parser.Options
	SectionChunk  chunker.Config
	MaxInputChars int
}

// Worker processes a single document job.
type Worker struct {
	store *store.Store
	stats *ProcessingStats
	log   *slog.Logger
	cfg   WorkerConfig
}

func NewWorker(st *store.Store, stats *ProcessingStats, log *slog.Logger, cfg WorkerConfig) *Worker {
	return &Worker{
		store: st,
		stats: stats,
		log:   log,
		cfg:   cfg,
	}
}

// Process runs the full ingest pipeline for a job.
func (w *Worker) Process(ctx context.Context, job *Job) {
	log := w.log.With("job_id", job.ID, "doc_id", job.DocID, "filename", job.Filename)
	start := time.Now()

	// Phase 0: Dedup check on the raw bytes.
	if !job.Force {
		existing, err := w.store.FindByHash(ctx, job.ContentHash)
		switch {
		case err == nil:
			log.Info("duplicate document, skipping", "existing_doc_id", existing.ID)
			job.SetDuplicateOf(existing.ID)
			job.SetStatus(StatusDupSkipped, "dedup")
			return
		case !errors.Is(err, store.ErrNotFound):
			log.Warn("dedup check failed, proceeding", "error", err)
		}
	}

	// Phase 1: Extract
	job.SetStatus(StatusExtracting, "extracting")
	text, err := w.extract(job)
	if err != nil {
		log.Error("extraction failed", "error", err)
		job.Fail("extracting", err)
		return
	}
	chars := utf8.RuneCountInString(text)
	job.SetTextChars(chars)

	// Phase 2: Segment
	job.SetStatus(StatusSegmenting, "segmenting")
	res, err := segment.Segment(text, segment.WithObserver(segment.LogEvents(log)))
	if err != nil {
		log.Error("segmentation failed", "error", err)
		job.Fail("segmenting", fmt.Errorf("segment: %w", err))
		return
	}
	job.SetSections(len(res.Sections), string(res.Strategy))
	log.Info("segmented document", "sections", len(res.Sections), "strategy", res.Strategy, "page_breaks", len(res.PageBreaks))

	// Phase 3: Chunk
	job.SetStatus(StatusChunking, "chunking")
	chunks, err := chunker.ChunkSections(res.Sections, w.cfg.SectionChunk)
	if err != nil {
		log.Error("chunking failed", "error", err)
		job.Fail("chunking", err)
		return
	}
	job.SetChunks(len(chunks))
	log.Info("chunked document", "chunks", len(chunks))

	// Phase 4: Store
	job.SetStatus(StatusStoring, "storing")
	doc := store.Document{
		ID:          job.DocID,
		Filename:    job.Filename,
		Title:       job.Title,
		ContentHash: job.ContentHash,
		Strategy:    string(res.Strategy),
		CreatedAt:   job.CreatedAt,
	}
	if err := w.store.SaveDocument(ctx, doc, res.Sections, chunks); err != nil {
		log.Error("store failed", "error", err)
		job.Fail("storing", err)
		return
	}

	elapsed := time.Since(start)
	job.SetProcessingTime(elapsed)
	if w.stats != nil {
		w.stats.Record(elapsed, chars)
	}
	log.Info("document processed", "duration_ms", elapsed.Milliseconds())
	job.SetStatus(StatusCompleted, "done")
}

// extract parses the upload and bounds the text before segmentation.
func (w *Worker) extract(job *Job) (string, error) {
	p, err := parser.ForFile(job.Filename, w.cfg.Parser)
	if err != nil {
		return "", err
	}
	text, err := p.Parse(bytes.NewReader(job.FileData()), job.Filename)
	if err != nil {
		return "", fmt.Errorf("parse: %w", err)
	}

	n := utf8.RuneCountInString(strings.TrimSpace(text))
	if n < MinExtractedChars {
		return "", fmt.Errorf("%w (%d chars)", ErrInsufficientText, n)
	}
	if w.cfg.MaxInputChars > 0 && n > w.cfg.MaxInputChars {
		return "", fmt.Errorf("%w: %d > %d chars", ErrInputTooLarge, n, w.cfg.MaxInputChars)
	}
	return text, nil
}
