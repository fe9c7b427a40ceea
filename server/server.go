// Package server exposes the engine over a local HTTP API for the dashboard
// frontend: upload an export, then query (re-filtered) statistics. Uploaded
// batches live in memory for the life of the process and nowhere else.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/aravinth-kanesh/my-watch-stats/config"
	"github.com/aravinth-kanesh/my-watch-stats/ingest"
	"github.com/aravinth-kanesh/my-watch-stats/pkg/models"
	"github.com/aravinth-kanesh/my-watch-stats/stats"
)

type Server struct {
	cfg    config.ServerConfig
	logger *slog.Logger
	mux    *http.ServeMux

	mu       sync.RWMutex
	sessions map[string]*session
}

type session struct {
	id       string
	filename string
	uploaded time.Time
	source   models.Source
	records  []models.Movie
}

func New(cfg config.ServerConfig, logger *slog.Logger) *Server {
	s := &Server{
		cfg:      cfg,
		logger:   logger,
		mux:      http.NewServeMux(),
		sessions: make(map[string]*session),
	}
	s.mux.HandleFunc("POST /api/upload", s.handleUpload)
	s.mux.HandleFunc("GET /api/stats", s.handleStats)
	s.mux.HandleFunc("DELETE /api/session", s.handleDeleteSession)
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	origin := "*"
	if len(s.cfg.AllowedOrigins) > 0 {
		origin = s.cfg.AllowedOrigins[0]
	}
	w.Header().Set("Access-Control-Allow-Origin", origin)
	w.Header().Set("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
	if r.Method == http.MethodOptions {
		w.WriteHeader(http.StatusOK)
		return
	}
	s.mux.ServeHTTP(w, r)
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{Addr: s.cfg.Addr(), Handler: s}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("http server listening", slog.String("addr", s.cfg.Addr()))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

type uploadResponse struct {
	Session  string        `json:"session"`
	Source   models.Source `json:"source"`
	Records  int           `json:"records"`
	Filename string        `json:"filename"`
}

func (s *Server) handleUpload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxUploadBytes)
	if err := r.ParseMultipartForm(s.cfg.MaxUploadBytes); err != nil {
		s.writeError(w, http.StatusBadRequest, fmt.Errorf("error reading upload: %w", err))
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		s.writeError(w, http.StatusBadRequest, errors.New("missing form field \"file\""))
		return
	}
	defer file.Close()

	if !strings.EqualFold(filepath.Ext(header.Filename), ".csv") {
		s.writeError(w, http.StatusUnprocessableEntity, fmt.Errorf("%s is not a .csv file: expected a Letterboxd or IMDb export", header.Filename))
		return
	}

	result, err := ingest.FromReader(file)
	if err != nil {
		var missing *ingest.MissingColumnsError
		if errors.Is(err, ingest.ErrUnrecognizedFormat) || errors.As(err, &missing) {
			s.writeError(w, http.StatusUnprocessableEntity, err)
			return
		}
		s.writeError(w, http.StatusBadRequest, fmt.Errorf("error parsing export: %w", err))
		return
	}

	sess := &session{
		id:       uuid.NewString(),
		filename: header.Filename,
		uploaded: time.Now(),
		source:   result.Source,
		records:  result.Records,
	}
	s.mu.Lock()
	s.sessions[sess.id] = sess
	s.mu.Unlock()

	s.logger.Info("export uploaded",
		slog.String("session", sess.id),
		slog.String("source", string(sess.source)),
		slog.Int("records", len(sess.records)),
	)
	s.writeJSON(w, http.StatusOK, uploadResponse{
		Session:  sess.id,
		Source:   sess.source,
		Records:  len(sess.records),
		Filename: sess.filename,
	})
}

type statsResponse struct {
	Source        models.Source       `json:"source"`
	Total         int                 `json:"total"`
	Filtered      int                 `json:"filtered"`
	Stats         models.Stats        `json:"stats"`
	Timeline      []models.MonthCount `json:"timeline_filled"`
	Label         string              `json:"label"`
	LabelSingular string              `json:"label_singular"`
	Options       stats.FilterOptions `json:"filter_options"`
	Insights      []string            `json:"insights"`
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	s.mu.RLock()
	sess, ok := s.sessions[r.URL.Query().Get("session")]
	s.mu.RUnlock()
	if !ok {
		s.writeError(w, http.StatusNotFound, errors.New("unknown session"))
		return
	}

	filters, err := parseFilters(r)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}

	filtered := stats.Apply(sess.records, filters)
	st := stats.Compute(filtered)
	label := stats.Label(filtered, sess.source)

	s.writeJSON(w, http.StatusOK, statsResponse{
		Source:        sess.source,
		Total:         len(sess.records),
		Filtered:      len(filtered),
		Stats:         st,
		Timeline:      stats.FillTimeline(st.Timeline),
		Label:         label,
		LabelSingular: stats.Singular(label),
		Options:       stats.Options(sess.records),
		Insights:      stats.Insights(st, label),
	})
}

func (s *Server) handleDeleteSession(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("session")
	s.mu.Lock()
	_, ok := s.sessions[id]
	delete(s.sessions, id)
	s.mu.Unlock()
	if !ok {
		s.writeError(w, http.StatusNotFound, errors.New("unknown session"))
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func parseFilters(r *http.Request) (models.Filters, error) {
	q := r.URL.Query()
	var f models.Filters

	if raw := q.Get("from_year"); raw != "" {
		year, err := strconv.Atoi(raw)
		if err != nil {
			return f, fmt.Errorf("invalid from_year: %q", raw)
		}
		f.FromYear = &year
	}
	if raw := q.Get("to_year"); raw != "" {
		year, err := strconv.Atoi(raw)
		if err != nil {
			return f, fmt.Errorf("invalid to_year: %q", raw)
		}
		f.ToYear = &year
	}
	if raw := q.Get("min_rating"); raw != "" {
		rating, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return f, fmt.Errorf("invalid min_rating: %q", raw)
		}
		f.MinRating = &rating
	}
	f.Genre = q.Get("genre")
	f.TitleType = q.Get("title_type")
	return f, nil
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("error writing response", slog.String("error", err.Error()))
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, err error) {
	s.writeJSON(w, status, map[string]string{"error": err.Error()})
}
