package api

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Samrudhp/EduSummaryV2/internal/outline"
	"github.com/Samrudhp/EduSummaryV2/internal/store"
)

// handleListDocuments lists every stored document, newest first.
func (s *Server) handleListDocuments(w http.ResponseWriter, r *http.Request) {
	docs, err := s.store.ListDocuments(r.Context())
	if err != nil {
		jsonError(w, "failed to list documents: "+err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, map[string]any{"documents": docs})
}

func (s *Server) handleGetDocument(w http.ResponseWriter, r *http.Request) {
	doc, err := s.store.GetDocument(r.Context(), chi.URLParam(r, "docID"))
	if err != nil {
		storeError(w, err)
		return
	}
	writeJSON(w, doc)
}

func (s *Server) handleDocumentSections(w http.ResponseWriter, r *http.Request) {
	docID := chi.URLParam(r, "docID")
	sections, err := s.store.Sections(r.Context(), docID)
	if err != nil {
		storeError(w, err)
		return
	}
	writeJSON(w, map[string]any{"doc_id": docID, "sections": sections})
}

// handleDocumentChunks returns a document's chunks, optionally limited to
// one section with ?section_id=.
func (s *Server) handleDocumentChunks(w http.ResponseWriter, r *http.Request) {
	docID := chi.URLParam(r, "docID")
	sectionID := r.URL.Query().Get("section_id")
	chunks, err := s.store.Chunks(r.Context(), docID, sectionID)
	if err != nil {
		storeError(w, err)
		return
	}
	writeJSON(w, map[string]any{
		"doc_id":      docID,
		"section_id":  sectionID,
		"chunk_count": len(chunks),
		"chunks":      chunks,
	})
}

// handleDeleteDocument deletes a document with its sections and chunks.
func (s *Server) handleDeleteDocument(w http.ResponseWriter, r *http.Request) {
	docID := chi.URLParam(r, "docID")
	if err := s.store.DeleteDocument(r.Context(), docID); err != nil {
		storeError(w, err)
		return
	}
	s.log.Info("document deleted", "doc_id", docID)
	writeJSON(w, map[string]any{"doc_id": docID, "deleted": true})
}

// handleStatus reports on the most recently processed textbook.
func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	doc, err := s.store.Latest(ctx)
	if errors.Is(err, store.ErrNotFound) {
		writeJSON(w, map[string]any{
			"ready":         false,
			"textbook_name": nil,
			"total_chunks":  0,
			"sections":      []outline.Info{},
			"message":       "No textbook uploaded",
		})
		return
	}
	if err != nil {
		storeError(w, err)
		return
	}

	sections, err := s.store.Sections(ctx, doc.ID)
	if err != nil {
		storeError(w, err)
		return
	}
	infos := make([]outline.Info, len(sections))
	for i, sec := range sections {
		infos[i] = sec.Info()
	}
	writeJSON(w, map[string]any{
		"ready":         true,
		"textbook_name": doc.Title,
		"doc_id":        doc.ID,
		"total_chunks":  doc.ChunkCount,
		"sections":      infos,
		"message":       "System ready",
	})
}

func storeError(w http.ResponseWriter, err error) {
	if errors.Is(err, store.ErrNotFound) {
		jsonError(w, err.Error(), http.StatusNotFound)
		return
	}
	jsonError(w, err.Error(), http.StatusInternalServerError)
}
