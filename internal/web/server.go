package web

import (
	"html/template"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/google/uuid"

	"acadcalc/internal/academic"
	"acadcalc/internal/contact"
	"acadcalc/internal/logger"
)

// HeaderRequestID carries the request ID in both directions.
const HeaderRequestID = "X-Request-ID"

// Options configures a Server.
type Options struct {
	Table   *academic.Table
	Desk    *contact.Desk
	Version string
}

// Server serves the calculator page and its JSON API.
type Server struct {
	table   *academic.Table
	desk    *contact.Desk
	version string
	tpl     *template.Template
	router  *chi.Mux
}

// NewServer builds the router. A nil Table means the default table; a nil
// Desk accepts ten contact messages per minute.
func NewServer(opts Options) *Server {
	s := &Server{
		table:   opts.Table,
		desk:    opts.Desk,
		version: opts.Version,
		tpl:     template.Must(template.New("page").Parse(pageHTML)),
	}
	if s.table == nil {
		s.table = academic.DefaultTable()
	}
	if s.desk == nil {
		s.desk = contact.NewDesk(10)
	}
	s.setupRouter()
	return s
}

// Router returns the configured handler.
func (s *Server) Router() http.Handler {
	return s.router
}

func (s *Server) setupRouter() {
	r := chi.NewRouter()

	r.Use(middleware.RealIP)
	r.Use(requestLogger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))

	r.Get("/health", s.handleHealth)

	r.Get("/", s.handleIndex)
	r.Post("/calc", s.handleCalc)
	r.Post("/contact", s.handleContact)

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: []string{"*"},
			AllowedMethods: []string{"GET", "OPTIONS"},
			AllowedHeaders: []string{"Accept", "Content-Type", HeaderRequestID},
			ExposedHeaders: []string{HeaderRequestID},
			MaxAge:         300,
		}))

		r.Get("/groups", s.handleGroups)
		r.Get("/levels", s.handleLevels)
		r.Get("/convert", s.handleConvert)
		r.Get("/classify", s.handleClassify)
	})

	s.router = r
}

// requestLogger tags each request with an ID and logs its outcome.
func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		requestID := r.Header.Get(HeaderRequestID)
		if requestID == "" {
			requestID = uuid.New().String()[:8]
		}
		ctx := logger.WithRequestID(r.Context(), requestID)
		r = r.WithContext(ctx)
		w.Header().Set(HeaderRequestID, requestID)

		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		log := logger.Get(ctx)
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		ev := log.Info()
		if status >= 400 {
			ev = log.Warn()
		}
		if status >= 500 {
			ev = log.Error()
		}
		ev.
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Str("query", r.URL.RawQuery).
			Str("remote_addr", r.RemoteAddr).
			Int("status", status).
			Int("bytes", ww.BytesWritten()).
			Dur("latency", time.Since(start)).
			Msg("Request completed")
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, r, http.StatusOK, map[string]string{
		"status":  "ok",
		"version": s.version,
		"time":    time.Now().UTC().Format(time.RFC3339),
	})
}
