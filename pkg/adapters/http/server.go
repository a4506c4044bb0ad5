package http

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"sync"

	"github.com/aretw0/live/pkg/domain"
	"github.com/aretw0/live/pkg/eventstream"
	"github.com/aretw0/live/pkg/ports"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// DefaultMaxBodySize bounds a single POST /events request.
const DefaultMaxBodySize int64 = 16 * 1024 * 1024

// Server accepts event envelopes over HTTP and feeds them to a handler.
// A batch is decoded completely before any event is dispatched, so a bad
// request renders nothing.
type Server struct {
	mu          sync.Mutex
	handler     ports.EventHandler
	logger      *slog.Logger
	maxBodySize int64
	accepted    int
}

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the request logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *Server) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithMaxBodySize overrides DefaultMaxBodySize.
func WithMaxBodySize(n int64) Option {
	return func(s *Server) {
		if n > 0 {
			s.maxBodySize = n
		}
	}
}

// NewServer creates a Server dispatching to h.
func NewServer(h ports.EventHandler, opts ...Option) *Server {
	s := &Server{
		handler:     h,
		logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
		maxBodySize: DefaultMaxBodySize,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// NewHandler creates the ingestion router. GET /metrics is mounted only
// when gatherer is non-nil.
func NewHandler(h ports.EventHandler, gatherer prometheus.Gatherer, opts ...Option) http.Handler {
	return NewServer(h, opts...).Routes(gatherer)
}

// Routes builds the chi router for s.
func (s *Server) Routes(gatherer prometheus.Gatherer) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Post("/events", s.PostEvents)
	r.Get("/healthz", s.GetHealth)
	if gatherer != nil {
		r.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	}
	return r
}

// Accepted reports how many events have been dispatched so far.
func (s *Server) Accepted() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.accepted
}

type errorResponse struct {
	Error    string `json:"error"`
	Position int    `json:"position"`
}

type acceptedResponse struct {
	Accepted int `json:"accepted"`
}

// PostEvents handles POST /events. The body is NDJSON, or a multi-document
// YAML stream when the Content-Type mentions yaml.
func (s *Server) PostEvents(w http.ResponseWriter, r *http.Request) {
	body := http.MaxBytesReader(w, r.Body, s.maxBodySize)
	defer body.Close()

	var reader eventstream.Reader
	if strings.Contains(r.Header.Get("Content-Type"), "yaml") {
		reader = eventstream.NewYAMLReader(body)
	} else {
		reader = eventstream.NewJSONReader(body)
	}

	events, err := readAll(reader)
	if err != nil {
		status := http.StatusBadRequest
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			status = http.StatusRequestEntityTooLarge
		}
		s.logger.Warn("rejected event batch", "err", err, "position", len(events)+1)
		writeJSON(w, status, errorResponse{Error: err.Error(), Position: len(events) + 1})
		return
	}

	s.mu.Lock()
	for _, ev := range events {
		// Decoding already rejected unknown types.
		_ = eventstream.Dispatch(s.handler, ev)
	}
	s.accepted += len(events)
	s.mu.Unlock()

	s.logger.Debug("accepted event batch", "count", len(events))
	writeJSON(w, http.StatusAccepted, acceptedResponse{Accepted: len(events)})
}

// GetHealth handles GET /healthz.
func (s *Server) GetHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func readAll(r eventstream.Reader) ([]domain.Event, error) {
	var events []domain.Event
	for {
		ev, err := r.Next()
		if errors.Is(err, io.EOF) {
			return events, nil
		}
		if err != nil {
			return events, err
		}
		events = append(events, ev)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("response encode failed", "err", err)
	}
}
