package server

import (
	"encoding/json"
	"io"
	"net/http"
	"sort"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/NajwaAuliaa/internalAssistant-AICompanyAssist/internal/answer"
	"github.com/NajwaAuliaa/internalAssistant-AICompanyAssist/internal/docstore"
	"github.com/NajwaAuliaa/internalAssistant-AICompanyAssist/internal/extract"
	"github.com/NajwaAuliaa/internalAssistant-AICompanyAssist/internal/metrics"
)

// maxUploadBytes bounds document uploads.
const maxUploadBytes = 64 << 20

type askRequest struct {
	Question string `json:"question"`
}

type askResponse struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

func (s *Server) handleAsk(w http.ResponseWriter, r *http.Request) {
	var req askRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Question == "" {
		s.respondError(w, http.StatusBadRequest, "question is required")
		return
	}
	start := time.Now()
	result, err := s.answerer.Answer(r.Context(), req.Question)
	metrics.QueryDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.QueriesTotal.WithLabelValues("error").Inc()
		s.logger.Error("answer failed",
			zap.String("question", req.Question),
			zap.Error(err))
		s.respondError(w, http.StatusBadGateway, "answer generation failed")
		return
	}
	if result == answer.NoInfoMessage {
		metrics.QueriesTotal.WithLabelValues("no_info").Inc()
	} else {
		metrics.QueriesTotal.WithLabelValues("answered").Inc()
	}
	s.respondJSON(w, http.StatusOK, askResponse{Question: req.Question, Answer: result})
}

type reindexRequest struct {
	Prefix string `json:"prefix"`
	Force  bool   `json:"force"`
}

func (s *Server) handleReindex(w http.ResponseWriter, r *http.Request) {
	var req reindexRequest
	// An empty body means "reindex everything".
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && err != io.EOF {
		s.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	s.logger.Info("reindex requested",
		zap.String("prefix", req.Prefix),
		zap.Bool("force", req.Force))
	report, err := s.ingester.Reindex(r.Context(), req.Prefix, req.Force)
	if err != nil {
		s.logger.Error("reindex failed", zap.Error(err))
		s.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.respondJSON(w, http.StatusOK, report)
}

func (s *Server) handleListDocuments(w http.ResponseWriter, r *http.Request) {
	prefix := r.URL.Query().Get("prefix")
	docs, err := s.store.List(r.Context(), prefix)
	if err != nil {
		s.logger.Error("list documents failed", zap.Error(err))
		s.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	sort.SliceStable(docs, func(i, j int) bool {
		return docs[i].LastModified.After(docs[j].LastModified)
	})
	s.respondJSON(w, http.StatusOK, map[string]interface{}{
		"documents": docs,
		"count":     len(docs),
	})
}

func (s *Server) handleUploadDocument(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid multipart form")
		return
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		s.respondError(w, http.StatusBadRequest, "file field is required")
		return
	}
	defer file.Close()

	key := r.FormValue("key")
	if key == "" {
		key = header.Filename
	}
	if key == "" {
		key = uuid.NewString()
	}
	if prefix := r.FormValue("prefix"); prefix != "" {
		key = joinPrefix(prefix, key)
	}

	content, err := io.ReadAll(io.LimitReader(file, maxUploadBytes))
	if err != nil {
		s.respondError(w, http.StatusInternalServerError, "failed to read upload")
		return
	}
	contentType := header.Header.Get("Content-Type")
	if contentType == "" || contentType == "application/octet-stream" {
		contentType = docstore.ContentTypeFor(key)
	}
	if err := s.store.Put(r.Context(), key, content, contentType); err != nil {
		s.logger.Error("upload failed",
			zap.String("key", key),
			zap.Error(err))
		s.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.logger.Info("document uploaded",
		zap.String("key", key),
		zap.Int("size", len(content)))

	resp := map[string]interface{}{
		"key":          key,
		"size":         len(content),
		"content_type": contentType,
		"status":       "uploaded",
	}
	if r.FormValue("reindex") == "true" {
		report, err := s.ingester.Reindex(r.Context(), r.FormValue("prefix"), false)
		if err != nil {
			s.logger.Error("post-upload reindex failed", zap.Error(err))
		} else {
			resp["reindex"] = report
		}
	}
	s.respondJSON(w, http.StatusCreated, resp)
}

func (s *Server) handleDeleteDocument(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "*")
	if key == "" {
		s.respondError(w, http.StatusBadRequest, "document key is required")
		return
	}
	s.logger.Info("delete requested", zap.String("key", key))
	report := s.ingester.DeleteDocument(r.Context(), key)
	status := http.StatusOK
	if !report.Success {
		status = http.StatusInternalServerError
	}
	s.respondJSON(w, status, report)
}

type batchDeleteRequest struct {
	Keys []string `json:"keys"`
}

func (s *Server) handleBatchDelete(w http.ResponseWriter, r *http.Request) {
	var req batchDeleteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if len(req.Keys) == 0 {
		s.respondError(w, http.StatusBadRequest, "keys is required")
		return
	}
	s.respondJSON(w, http.StatusOK, s.ingester.DeleteDocuments(r.Context(), req.Keys))
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	resp := map[string]interface{}{
		"supported_extensions": extract.SupportedExtensions(),
	}
	if s.catalog != nil {
		stats, err := s.catalog.Stats(r.Context())
		if err != nil {
			s.logger.Error("status: catalog stats failed", zap.Error(err))
			s.respondError(w, http.StatusInternalServerError, err.Error())
			return
		}
		resp["documents"] = stats.Documents
		resp["chunks"] = stats.TotalChunks
		if !stats.LastIndexed.IsZero() {
			resp["last_indexed"] = stats.LastIndexed
		}
	}
	s.respondJSON(w, http.StatusOK, resp)
}

// joinPrefix joins a folder prefix and a file name with a single slash.
func joinPrefix(prefix, name string) string {
	for len(prefix) > 0 && prefix[len(prefix)-1] == '/' {
		prefix = prefix[:len(prefix)-1]
	}
	if prefix == "" {
		return name
	}
	return prefix + "/" + name
}

func (s *Server) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func (s *Server) respondError(w http.ResponseWriter, status int, message string) {
	s.respondJSON(w, status, map[string]string{"error": message})
}
