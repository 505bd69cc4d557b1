package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/antarctica/mdlib/internal/fixtures"
	"github.com/antarctica/mdlib/internal/logging"
	"github.com/antarctica/mdlib/pkg/mdlib"
	"github.com/antarctica/mdlib/pkg/standards"
	"github.com/antarctica/mdlib/pkg/standards/stdrecord"
)

const (
	readHeaderTimeout = 5 * time.Second
	shutdownTimeout   = 10 * time.Second
)

// Handler serves generated records.
type Handler struct {
	logger   mdlib.Logger
	metrics  *Metrics
	registry *prometheus.Registry
	opts     []stdrecord.Option
}

// Option configures a Handler.
type Option func(*Handler)

// WithLogger sets the request logger.
func WithLogger(l mdlib.Logger) Option {
	return func(h *Handler) { h.logger = l }
}

// WithRecordOptions passes options, such as a citation resolver, to every
// record generated.
func WithRecordOptions(opts ...stdrecord.Option) Option {
	return func(h *Handler) { h.opts = append(h.opts, opts...) }
}

// New builds a Handler with its own metrics registry.
func New(opts ...Option) *Handler {
	reg := prometheus.NewRegistry()
	h := &Handler{
		logger:   logging.NewNullLogger(),
		metrics:  NewMetrics(reg),
		registry: reg,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Router mounts every endpoint.
func (h *Handler) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Get("/standards/{standard}/{config}", h.HandleRecord)
	r.Get("/healthz", h.HandleHealth)
	r.Handle("/metrics", promhttp.HandlerFor(h.registry, promhttp.HandlerOpts{}))
	return r
}

// HandleRecord handles GET /standards/{standard}/{config}.
func (h *Handler) HandleRecord(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "standard")
	name := chi.URLParam(r, "config")

	std, err := standards.Lookup(id)
	if err != nil {
		h.notFound(w, "unknown", "unknown standard %q, valid standards: %s", id, strings.Join(standards.IDs(), ", "))
		return
	}
	config, err := fixtures.Config(id, name)
	if err != nil {
		h.notFound(w, id, "unknown config %q for %s, valid configs: %s", name, id, strings.Join(fixtures.Names(id), ", "))
		return
	}

	start := time.Now()
	doc, err := std.Generate(r.Context(), config, h.opts...)
	h.metrics.Generation.WithLabelValues(id).Observe(time.Since(start).Seconds())
	if err != nil {
		h.logger.Error("generating %s/%s (request %s): %v", id, name, middleware.GetReqID(r.Context()), err)
		h.count(id, http.StatusInternalServerError)
		http.Error(w, "record could not be generated", http.StatusInternalServerError)
		return
	}

	h.logger.Verbose("generated %s/%s in %s", id, name, time.Since(start))
	h.count(id, http.StatusOK)
	w.Header().Set("Content-Type", "text/xml; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(doc)
}

// HandleHealth handles GET /healthz.
func (h *Handler) HandleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok\n"))
}

// notFound replies 404 with a message listing the valid names.
func (h *Handler) notFound(w http.ResponseWriter, standard, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	h.logger.Verbose("%s", msg)
	h.count(standard, http.StatusNotFound)
	http.Error(w, msg, http.StatusNotFound)
}

func (h *Handler) count(standard string, code int) {
	h.metrics.Requests.WithLabelValues(standard, strconv.Itoa(code)).Inc()
}

// NewHTTPServer builds an HTTP server for handler.
func NewHTTPServer(addr string, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: readHeaderTimeout,
	}
}

// ListenAndServe runs srv until ctx is cancelled, then shuts it down.
func ListenAndServe(ctx context.Context, srv *http.Server) error {
	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}
