package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/Samrudhp/EduSummaryV2/internal/chunker"
)

// clearEnv unsets every key Load reads for the duration of the test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"CONFIG_FILE", "PORT", "EDUSUM_API_KEY", "DB_PATH", "WORKER_COUNT", "MAX_QUEUE_SIZE",
		"MAX_UPLOAD_BYTES", "MAX_INPUT_CHARS", "SECTION_CHUNK_SIZE", "SECTION_CHUNK_OVERLAP",
		"DOCUMENT_CHUNK_SIZE", "DOCUMENT_CHUNK_OVERLAP", "JOB_TTL", "STATS_WINDOW", "PDF_FALLBACK_PDFTOTEXT",
	} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Port != "8090" || cfg.DBPath != "./storage/edusum.db" {
		t.Errorf("unexpected port/db path %q %q", cfg.Port, cfg.DBPath)
	}
	if cfg.SectionChunk != chunker.SectionConfig() || cfg.DocumentChunk != chunker.DocumentConfig() {
		t.Errorf("unexpected chunk defaults %+v %+v", cfg.SectionChunk, cfg.DocumentChunk)
	}
	if cfg.MaxInputChars != 2_000_000 || cfg.MaxUploadBytes != 52428800 {
		t.Errorf("unexpected limits %d %d", cfg.MaxInputChars, cfg.MaxUploadBytes)
	}
	if cfg.JobTTL != time.Hour || !cfg.PDFFallbackPdftotext {
		t.Errorf("unexpected ttl/pdf fallback %v %v", cfg.JobTTL, cfg.PDFFallbackPdftotext)
	}
}

func TestLoad_Env(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9000")
	t.Setenv("EDUSUM_API_KEY", "secret")
	t.Setenv("WORKER_COUNT", "0") // non-positive falls back
	t.Setenv("SECTION_CHUNK_SIZE", "200")
	t.Setenv("SECTION_CHUNK_OVERLAP", "20")
	t.Setenv("JOB_TTL", "5m")
	t.Setenv("PDF_FALLBACK_PDFTOTEXT", "false")
	t.Setenv("MAX_QUEUE_SIZE", "not-a-number")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Port != "9000" || cfg.APIKey != "secret" {
		t.Errorf("unexpected port/key %q %q", cfg.Port, cfg.APIKey)
	}
	if cfg.WorkerCount != 4 || cfg.MaxQueueSize != 100 {
		t.Errorf("expected fallback worker/queue sizes, got %d %d", cfg.WorkerCount, cfg.MaxQueueSize)
	}
	if cfg.SectionChunk != (chunker.Config{ChunkSize: 200, Overlap: 20}) {
		t.Errorf("unexpected section chunk %+v", cfg.SectionChunk)
	}
	if cfg.JobTTL != 5*time.Minute || cfg.PDFFallbackPdftotext {
		t.Errorf("unexpected ttl/pdf fallback %v %v", cfg.JobTTL, cfg.PDFFallbackPdftotext)
	}
}

func TestLoad_FileThenEnv(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "edusum.yaml")
	yml := `port: "7000"
api_key: from-file
db_path: /tmp/file.db
worker_count: 8
document_chunk:
  chunk_size: 800
  overlap: 80
job_ttl: 30m
`
	if err := os.WriteFile(path, []byte(yml), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("CONFIG_FILE", path)
	t.Setenv("PORT", "7001")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Port != "7001" {
		t.Errorf("expected env to override file port, got %q", cfg.Port)
	}
	if cfg.APIKey != "from-file" || cfg.DBPath != "/tmp/file.db" || cfg.WorkerCount != 8 {
		t.Errorf("file values not applied: %+v", cfg)
	}
	if cfg.DocumentChunk != (chunker.Config{ChunkSize: 800, Overlap: 80}) {
		t.Errorf("unexpected document chunk %+v", cfg.DocumentChunk)
	}
	if cfg.SectionChunk != chunker.SectionConfig() {
		t.Errorf("expected section chunk defaults kept, got %+v", cfg.SectionChunk)
	}
	if cfg.JobTTL != 30*time.Minute {
		t.Errorf("expected 30m ttl, got %v", cfg.JobTTL)
	}
}

func TestLoad_BadFile(t *testing.T) {
	clearEnv(t)
	t.Setenv("CONFIG_FILE", filepath.Join(t.TempDir(), "missing.yaml"))
	if _, err := Load(); err == nil {
		t.Fatal("expected error for missing config file")
	}
}

func TestValidate(t *testing.T) {
	cfg := Defaults()
	if err := cfg.Validate(); err == nil {
		t.Error("expected error without api key")
	}

	cfg.APIKey = "k"
	if err := cfg.Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}

	cfg.SectionChunk.Overlap = cfg.SectionChunk.ChunkSize
	err := cfg.Validate()
	if !errors.Is(err, chunker.ErrInvalidConfig) {
		t.Errorf("expected ErrInvalidConfig, got %v", err)
	}
}
