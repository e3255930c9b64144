package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"unicode/utf8"

	"github.com/Samrudhp/EduSummaryV2/internal/chunker"
	"github.com/Samrudhp/EduSummaryV2/internal/outline"
	"github.com/Samrudhp/EduSummaryV2/internal/segment"
)

// textRequest is the body of the synchronous segment and chunk endpoints.
// Unset chunk fields take the configured defaults.
type textRequest struct {
	Text      string `json:"text"`
	Chunks    bool   `json:"chunks"`
	ChunkSize *int   `json:"chunk_size"`
	Overlap   *int   `json:"overlap"`
}

func (req textRequest) chunkConfig(def chunker.Config) chunker.Config {
	cfg := def
	if req.ChunkSize != nil {
		cfg.ChunkSize = *req.ChunkSize
	}
	if req.Overlap != nil {
		cfg.Overlap = *req.Overlap
	}
	return cfg
}

type segmentResponse struct {
	Strategy     segment.Strategy  `json:"strategy"`
	SectionCount int               `json:"section_count"`
	Pages        int               `json:"pages,omitempty"`
	Sections     []outline.Section `json:"sections"`
	Chunks       []outline.Chunk   `json:"chunks,omitempty"`
}

type chunkResponse struct {
	ChunkCount int             `json:"chunk_count"`
	Chunks     []outline.Chunk `json:"chunks"`
}

// decodeText reads and bounds a textRequest. It writes the error response
// itself and reports false on failure.
func (s *Server) decodeText(w http.ResponseWriter, r *http.Request) (textRequest, bool) {
	var req textRequest
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxUploadBytes)
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			jsonError(w, fmt.Sprintf("request exceeds max size (%d bytes)", tooLarge.Limit), http.StatusRequestEntityTooLarge)
			return req, false
		}
		jsonError(w, "invalid json body: "+err.Error(), http.StatusBadRequest)
		return req, false
	}
	if n := utf8.RuneCountInString(req.Text); n > s.cfg.MaxInputChars {
		jsonError(w, fmt.Sprintf("text has %d chars, limit is %d", n, s.cfg.MaxInputChars), http.StatusRequestEntityTooLarge)
		return req, false
	}
	return req, true
}

func (s *Server) handleSegment(w http.ResponseWriter, r *http.Request) {
	req, ok := s.decodeText(w, r)
	if !ok {
		return
	}

	// Reject a bad chunk config before doing any work.
	cfg := req.chunkConfig(s.cfg.SectionChunk)
	if req.Chunks {
		if err := cfg.Validate(); err != nil {
			jsonError(w, err.Error(), http.StatusBadRequest)
			return
		}
	}

	res, err := segment.Segment(req.Text, segment.WithObserver(segment.LogEvents(s.log)))
	if err != nil {
		segmentError(w, err)
		return
	}

	resp := segmentResponse{
		Strategy:     res.Strategy,
		SectionCount: len(res.Sections),
		Pages:        len(res.PageBreaks),
		Sections:     res.Sections,
	}
	if req.Chunks {
		chunks, err := chunker.ChunkSections(res.Sections, cfg)
		if err != nil {
			segmentError(w, err)
			return
		}
		resp.Chunks = chunks
	}
	writeJSON(w, resp)
}

func (s *Server) handleChunk(w http.ResponseWriter, r *http.Request) {
	req, ok := s.decodeText(w, r)
	if !ok {
		return
	}

	chunks, err := chunker.ChunkText(req.Text, req.chunkConfig(s.cfg.DocumentChunk))
	if err != nil {
		segmentError(w, err)
		return
	}
	if chunks == nil {
		chunks = []outline.Chunk{}
	}
	writeJSON(w, chunkResponse{ChunkCount: len(chunks), Chunks: chunks})
}

func segmentError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, chunker.ErrInvalidConfig):
		jsonError(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, segment.ErrNoContentExtracted):
		jsonError(w, err.Error(), http.StatusUnprocessableEntity)
	default:
		jsonError(w, err.Error(), http.StatusInternalServerError)
	}
}
