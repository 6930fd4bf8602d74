package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/rs/cors"
	"go.uber.org/zap"

	"github.com/tarunkusetti2004/Orb-of-night-habitat/internal/config"
	"github.com/tarunkusetti2004/Orb-of-night-habitat/internal/store"
	"github.com/tarunkusetti2004/Orb-of-night-habitat/pkg/editor"
	"github.com/tarunkusetti2004/Orb-of-night-habitat/pkg/habitat"
)

// Server is the local development server behind the browser editor. It owns
// one editing session and mirrors every session patch to connected
// websocket clients.
type Server struct {
	cfg     *config.Config
	log     *zap.Logger
	spec    *habitat.Spec
	session *editor.Session
	library *store.Store // nil disables the layout library endpoints
	hub     *hub
}

// New wires a server around an editing session. library may be nil.
func New(cfg *config.Config, logger *zap.Logger, spec *habitat.Spec, session *editor.Session, library *store.Store) *Server {
	s := &Server{
		cfg:     cfg,
		log:     logger,
		spec:    spec,
		session: session,
		library: library,
		hub:     newHub(logger),
	}

	session.Subscribe(func(p editor.Patch) {
		data, err := json.Marshal(p)
		if err != nil {
			logger.Error("marshaling patch", zap.Error(err))
			return
		}
		s.hub.Broadcast(data)
	})

	return s
}

// Handler builds the complete HTTP handler, routes plus middleware.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/healthz", s.handleHealthz)
	mux.HandleFunc("GET /api/layout", s.handleLayout)
	mux.HandleFunc("PUT /api/habitat", s.handleSetHabitat)
	mux.HandleFunc("POST /api/zones", s.handleAddZone)
	mux.HandleFunc("DELETE /api/zones/{id}", s.handleRemoveZone)
	mux.HandleFunc("POST /api/zones/{id}/position", s.handleMoveZone)
	mux.HandleFunc("POST /api/zones/{id}/duplicate", s.handleDuplicateZone)
	mux.HandleFunc("PATCH /api/zones/{id}", s.handleUpdateZone)
	mux.HandleFunc("POST /api/selection", s.handleSelect)
	mux.HandleFunc("POST /api/validate", s.handleValidate)
	mux.HandleFunc("GET /api/export", s.handleExport)
	mux.HandleFunc("POST /api/import", s.handleImport)
	mux.HandleFunc("GET /api/scene", s.handleScene)
	mux.HandleFunc("GET /api/metrics", s.handleMetrics)
	mux.HandleFunc("GET /api/spec", s.handleSpec)
	mux.HandleFunc("GET /ws", s.handleWS)

	if s.library != nil {
		mux.HandleFunc("GET /api/layouts", s.handleListLayouts)
		mux.HandleFunc("POST /api/layouts", s.handleSaveLayout)
		mux.HandleFunc("GET /api/layouts/{id}", s.handleGetLayout)
		mux.HandleFunc("DELETE /api/layouts/{id}", s.handleDeleteLayout)
		mux.HandleFunc("POST /api/layouts/{id}/restore", s.handleRestoreLayout)
	}

	c := cors.New(cors.Options{
		AllowedOrigins: []string{s.cfg.Frontend.Origin},
		AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type"},
	})

	return s.logRequests(c.Handler(mux))
}

// Start launches the HTTP server.
func (s *Server) Start() error {
	addr := s.cfg.Addr()
	s.log.Info("habitat editor server starting",
		zap.String("addr", addr),
		zap.String("frontend_origin", s.cfg.Frontend.Origin),
		zap.Bool("library", s.library != nil),
	)
	return http.ListenAndServe(addr, s.Handler())
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// Unwrap lets http.ResponseController reach the underlying writer, which
// the websocket upgrade needs to hijack the connection.
func (r *statusRecorder) Unwrap() http.ResponseWriter {
	return r.ResponseWriter
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		s.log.Debug("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", rec.status),
			zap.Duration("duration", time.Since(start)),
		)
	})
}
