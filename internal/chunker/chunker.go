package chunker

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/Samrudhp/EduSummaryV2/internal/outline"
)

// ErrInvalidConfig is returned before any chunking when a Config cannot
// produce sensible chunks.
var ErrInvalidConfig = errors.New("invalid chunk config")

// Config controls chunking behavior. Sizes are in estimated tokens.
type Config struct {
	ChunkSize int `json:"chunk_size" yaml:"chunk_size"` // Target chunk size in tokens.
	Overlap   int `json:"overlap" yaml:"overlap"`       // Overlap between consecutive chunks in tokens.
}

// SectionConfig returns the defaults for section-aware chunking.
func SectionConfig() Config {
	return Config{ChunkSize: 300, Overlap: 30}
}

// DocumentConfig returns the defaults for whole-document chunking.
func DocumentConfig() Config {
	return Config{ChunkSize: 500, Overlap: 50}
}

// Validate reports whether c can be used for chunking.
func (c Config) Validate() error {
	switch {
	case c.ChunkSize <= 0:
		return fmt.Errorf("%w: chunk size %d must be positive", ErrInvalidConfig, c.ChunkSize)
	case c.Overlap < 0:
		return fmt.Errorf("%w: overlap %d must not be negative", ErrInvalidConfig, c.Overlap)
	case c.Overlap >= c.ChunkSize:
		return fmt.Errorf("%w: overlap %d must be smaller than chunk size %d", ErrInvalidConfig, c.Overlap, c.ChunkSize)
	}
	return nil
}

// orDefault replaces an unset config with def.
func (c Config) orDefault(def Config) Config {
	if c.ChunkSize == 0 && c.Overlap == 0 {
		return def
	}
	return c
}

// ChunkSections splits each section's content into overlapping chunks.
// Chunk ids run across all sections in order. A zero Config selects
// SectionConfig.
func ChunkSections(sections []outline.Section, cfg Config) ([]outline.Chunk, error) {
	cfg = cfg.orDefault(SectionConfig())
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var chunks []outline.Chunk
	for _, s := range sections {
		chunks = split(chunks, s.Content, s.ID, s.Title, cfg)
	}
	return chunks, nil
}

// ChunkText chunks a whole document without section provenance. A zero
// Config selects DocumentConfig.
func ChunkText(text string, cfg Config) ([]outline.Chunk, error) {
	cfg = cfg.orDefault(DocumentConfig())
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return split(nil, text, "", "", cfg), nil
}

// split appends the chunks of text to dst, continuing its id sequence.
//
// Words accumulate until the words added since the last emit reach the
// character target. The next chunk is seeded with a tail of the emitted
// words sized by Overlap/ChunkSize; the seed does not count toward the
// target, so every chunk after the first carries new words.
func split(dst []outline.Chunk, text, sectionID, sectionTitle string, cfg Config) []outline.Chunk {
	words := strings.Fields(text)
	if len(words) == 0 {
		return dst
	}
	target := TargetChars(cfg.ChunkSize)

	emit := func(cur []string, seeded int) {
		body := strings.Join(cur, " ")
		dst = append(dst, outline.Chunk{
			ChunkID:      len(dst),
			Text:         body,
			CharCount:    utf8.RuneCountInString(body),
			SectionID:    sectionID,
			SectionTitle: sectionTitle,
			OverlapWords: seeded,
		})
	}

	var cur []string
	seeded, added := 0, 0
	for _, w := range words {
		cur = append(cur, w)
		added += utf8.RuneCountInString(w) + 1
		if added < target {
			continue
		}

		emit(cur, seeded)

		k := len(cur) * cfg.Overlap / cfg.ChunkSize
		cur = append([]string(nil), cur[len(cur)-k:]...)
		seeded, added = k, 0
	}
	if len(cur) > seeded {
		emit(cur, seeded)
	}
	return dst
}
