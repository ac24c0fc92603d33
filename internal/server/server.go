package server

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"autocorrect/internal/corrector"
)

const defaultTopWords = 20

var requestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Name:    "autocorrect_http_request_duration_seconds",
	Help:    "HTTP request duration in seconds",
	Buckets: prometheus.ExponentialBuckets(0.0001, 2, 14),
}, []string{"route"})

// Server exposes a corrector.Service over JSON/HTTP.
type Server struct {
	svc    *corrector.Service
	logger *slog.Logger
}

func New(svc *corrector.Service, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{svc: svc, logger: logger}
}

// Handler returns the API routes.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/correct", s.timed("correct", s.handleCorrect))
	mux.HandleFunc("/api/v1/candidates", s.timed("candidates", s.handleCandidates))
	mux.HandleFunc("/api/v1/top-words", s.timed("top-words", s.handleTopWords))
	mux.HandleFunc("/api/v1/custom-word", s.timed("custom-word", s.handleAddCustomWord))
	mux.HandleFunc("/api/v1/custom-word/", s.timed("custom-word-delete", s.handleRemoveCustomWord))
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"status": "ok",
			"words":  s.svc.Corrector().Store().Len(),
		})
	})
	mux.Handle("/metrics", promhttp.Handler())
	return mux
}

func (s *Server) timed(route string, h http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		h(w, r)
		elapsed := time.Since(start)
		requestDuration.WithLabelValues(route).Observe(elapsed.Seconds())
		s.logger.Debug("request", "method", r.Method, "path", r.URL.Path, "duration", elapsed)
	}
}

func (s *Server) handleCorrect(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}
	var req struct {
		Text string `json:"text"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || strings.TrimSpace(req.Text) == "" {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}
	res := s.svc.Corrector().Check(req.Text)
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"original":    res.Original,
		"corrected":   res.Corrected,
		"suggestions": res.Suggestions,
	})
}

func (s *Server) handleCandidates(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}
	var req struct {
		Word        string `json:"word"`
		MaxDistance *int   `json:"max_distance"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || strings.TrimSpace(req.Word) == "" {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}
	sc := s.svc.Corrector()
	maxDist := sc.Options().MaxEditDistance
	if req.MaxDistance != nil {
		maxDist = *req.MaxDistance
	}
	if maxDist < 0 {
		writeError(w, http.StatusBadRequest, "max_distance must be >= 0")
		return
	}
	word := strings.ToLower(strings.TrimSpace(req.Word))
	cands := sc.Candidates(word, maxDist)
	if cands == nil {
		cands = []corrector.Candidate{}
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"word":       word,
		"candidates": cands,
	})
}

func (s *Server) handleTopWords(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	n := defaultTopWords
	if v := r.URL.Query().Get("n"); v != "" {
		i, err := strconv.Atoi(v)
		if err != nil || i <= 0 {
			writeError(w, http.StatusBadRequest, "n must be a positive integer")
			return
		}
		n = i
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"words": s.svc.Corrector().Store().Top(n),
	})
}

func (s *Server) handleAddCustomWord(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}
	var req struct {
		Word string `json:"word"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || strings.TrimSpace(req.Word) == "" {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}
	if err := s.svc.AddCustomWord(r.Context(), req.Word); err != nil {
		s.logger.Error("add custom word", "word", req.Word, "error", err)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"status": "ok"})
}

func (s *Server) handleRemoveCustomWord(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodDelete {
		http.NotFound(w, r)
		return
	}
	word := strings.TrimPrefix(r.URL.Path, "/api/v1/custom-word/")
	err := s.svc.RemoveCustomWord(r.Context(), word)
	switch {
	case errors.Is(err, corrector.ErrEmptyWord):
		writeError(w, http.StatusBadRequest, "word is required")
	case err != nil:
		s.logger.Error("remove custom word", "word", word, "error", err)
		writeError(w, http.StatusInternalServerError, err.Error())
	default:
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
