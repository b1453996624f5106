// internal/httpserver/server.go
//
// Read-only stats API for wrdl (`wrdl -serve`).
// Responsibilities:
//   - Router + middleware (request IDs, real IP, panic recovery, timeouts,
//     JSON content type, zerolog access log).
//   - Endpoints: "/", "/health", "/stats", "/results", "/results/{id}/share".
//   - Graceful start/stop around net/http.Server.
//
// Notes:
//   - Nothing here mutates the store; games are only recorded by the CLI.
//   - Errors are JSON objects of the form {"error":"<code>"}.

package httpserver

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"github.com/robalobadob/wordle/apps/wrdl/internal/store"
)

// maxResults caps /results when no (or too large a) limit is given.
const maxResults = 100

// Server bundles the router and the store it reads from.
type Server struct {
	r     *chi.Mux
	store store.Store
	log   zerolog.Logger
	http  *http.Server
}

// New constructs a Server, installs middleware, and registers routes.
func New(st store.Store, logger zerolog.Logger) *Server {
	s := &Server{r: chi.NewRouter(), store: st, log: logger}

	// --- middleware ---
	s.r.Use(chimw.RequestID)
	s.r.Use(chimw.RealIP)
	s.r.Use(s.accessLog)
	s.r.Use(chimw.Recoverer)
	s.r.Use(chimw.Timeout(10 * time.Second))
	s.r.Use(jsonContentType)

	// --- diagnostics ---
	s.r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"service":"wrdl","endpoints":["/health","/stats","/results","/results/{id}/share"]}`))
	})
	s.r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"ok":true}`))
	})

	// --- stats ---
	s.r.Get("/stats", s.handleStats)
	s.r.Route("/results", func(r chi.Router) {
		r.Get("/", s.handleResults)
		r.Get("/{id}/share", s.handleShare)
	})

	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "not_found")
	})
	s.r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "method_not_allowed")
	})

	return s
}

// Router exposes the internal router (useful for tests).
func (s *Server) Router() chi.Router { return s.r }

// Start serves HTTP on addr until Shutdown. A clean shutdown returns nil.
func (s *Server) Start(addr string) error {
	s.http = &http.Server{
		Addr:              addr,
		Handler:           s.r,
		ReadHeaderTimeout: 5 * time.Second,
	}
	s.log.Info().Str("addr", addr).Msg("stats server listening")
	if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown drains in-flight requests. Safe to call before Start.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.http == nil {
		return nil
	}
	return s.http.Shutdown(ctx)
}

// ----------------------------- handlers ------------------------------------

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	results, err := s.store.Results(r.Context(), 0)
	if err != nil {
		s.log.Error().Err(err).Msg("load results")
		writeError(w, http.StatusInternalServerError, "db_error")
		return
	}
	_ = json.NewEncoder(w).Encode(store.Summarize(results))
}

func (s *Server) handleResults(w http.ResponseWriter, r *http.Request) {
	limit := maxResults
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			writeError(w, http.StatusBadRequest, "bad_limit")
			return
		}
		limit = min(n, maxResults)
	}
	results, err := s.store.Results(r.Context(), limit)
	if err != nil {
		s.log.Error().Err(err).Msg("load results")
		writeError(w, http.StatusInternalServerError, "db_error")
		return
	}
	_ = json.NewEncoder(w).Encode(results)
}

func (s *Server) handleShare(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_id")
		return
	}
	res, err := s.store.Result(r.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, "not_found")
		return
	}
	if err != nil {
		s.log.Error().Err(err).Int64("id", id).Msg("load result")
		writeError(w, http.StatusInternalServerError, "db_error")
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte(res.Share()))
}

// ----------------------------- middleware ----------------------------------

// jsonContentType sets a default JSON Content-Type header on all responses.
func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		next.ServeHTTP(w, r)
	})
}

// accessLog writes one zerolog line per request.
func (s *Server) accessLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		defer func() {
			s.log.Info().
				Str("reqId", chimw.GetReqID(r.Context())).
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Int("status", ww.Status()).
				Int("bytes", ww.BytesWritten()).
				Dur("took", time.Since(start)).
				Msg("http")
		}()
		next.ServeHTTP(ww, r)
	})
}

// ------------------------------- small util --------------------------------

func writeError(w http.ResponseWriter, status int, code string) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": code})
}
