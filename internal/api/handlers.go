package api

import (
	"encoding/json"
	"net/http"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/tradervijeth/Wiki-Forge/internal/domain"
	"github.com/tradervijeth/Wiki-Forge/internal/stats"
	"github.com/tradervijeth/Wiki-Forge/internal/storage"
)

const defaultDatasetName = "processed_articles"

func (s *Server) handleProcessWiki(w http.ResponseWriter, r *http.Request) {
	var req domain.ProcessRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if len(req.Titles) == 0 {
		s.respondWithError(w, http.StatusBadRequest, "Titles list cannot be empty")
		return
	}

	name := storage.SanitizeFileName(req.Name)
	if name == "" {
		name = defaultDatasetName
	}
	outputBase := filepath.Join(s.config.OutputDir, name)

	articles, err := s.processor.Build(r.Context(), req.Titles, outputBase)
	if err != nil {
		s.logger.Error("failed to process articles", zap.Error(err))
		s.respondWithError(w, http.StatusInternalServerError, "Error processing articles: "+err.Error())
		return
	}

	s.respondWithJSON(w, http.StatusOK, domain.ProcessResponse{
		Statistics: stats.Summarize(articles),
	})
}

func (s *Server) handleHealthCheck(w http.ResponseWriter, r *http.Request) {
	s.respondWithJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

// --- Helper Functions ---

func (s *Server) respondWithError(w http.ResponseWriter, code int, message string) {
	s.respondWithJSON(w, code, map[string]string{"error": message})
}

func (s *Server) respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, _ := json.Marshal(payload)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(response)
}
