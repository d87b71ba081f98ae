package biketraffic

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"

	"github.com/theoremus-urban-solutions/bikeshare-traffic/internal"
)

// Server exposes a Service over HTTP.
type Server struct {
	svc    *Service
	http   *http.Server
	logger *slog.Logger
}

// NewServer creates a server listening on port.
func NewServer(svc *Service, port int) *Server {
	s := &Server{
		svc:    svc,
		logger: slog.Default().With(slog.String("component", "http_server")),
	}
	s.http = &http.Server{
		Addr:              fmt.Sprintf(":%d", port),
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
		ErrorLog:          slog.NewLogLogger(slog.Default().Handler(), slog.LevelError),
	}
	return s
}

// Handler returns the API router.
func (s *Server) Handler() http.Handler {
	r := mux.NewRouter()
	r.Use(corsMiddleware)
	r.HandleFunc("/api/health", s.handleHealth).Methods(http.MethodGet, http.MethodOptions)
	r.HandleFunc("/api/stations", s.handleStations).Methods(http.MethodGet, http.MethodOptions)
	r.HandleFunc("/api/stations/{id}/traffic", s.handleStationTraffic).Methods(http.MethodGet, http.MethodOptions)
	r.HandleFunc("/api/traffic.{format:json|xml}", s.handleTraffic).Methods(http.MethodGet, http.MethodOptions)
	r.HandleFunc("/api/traffic", s.handleTraffic).Methods(http.MethodGet, http.MethodOptions)
	return r
}

// Start listens in the background.
func (s *Server) Start() {
	go func() {
		if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			internal.LogError(s.logger, "server error", err)
			os.Exit(1)
		}
	}()
	s.logger.Info("server listening", slog.String("addr", s.http.Addr))
}

// Shutdown stops accepting requests and waits for in-flight ones.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}

// HandleGracefulShutdown blocks until SIGINT or SIGTERM, then shuts the server down.
func (s *Server) HandleGracefulShutdown() {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	<-sigs
	s.logger.Info("shutdown signal received")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := s.Shutdown(ctx); err != nil {
		internal.LogError(s.logger, "server shutdown error", err)
		return
	}
	s.logger.Info("server shut down successfully")
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) handleTraffic(w http.ResponseWriter, r *http.Request) {
	f, err := parseMinuteParam(r.URL.Query().Get("minute"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	format := mux.Vars(r)["format"]
	if format == "" {
		format = r.URL.Query().Get("format")
	}
	format, err = normalizeFormat(format)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	b, err := s.svc.Traffic(r.Context(), f, format)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	if format == "xml" {
		w.Header().Set("Content-Type", "application/xml")
	} else {
		w.Header().Set("Content-Type", "application/json")
	}
	_, _ = w.Write(b)
}

func (s *Server) handleStationTraffic(w http.ResponseWriter, r *http.Request) {
	f, err := parseMinuteParam(r.URL.Query().Get("minute"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	id := mux.Vars(r)["id"]
	st, ok := s.svc.StationTraffic(id, f)
	if !ok {
		writeError(w, http.StatusNotFound, &QueryError{Msg: "No such station: " + id + "."})
		return
	}
	writeJSON(w, http.StatusOK, st)
}

func (s *Server) handleStations(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.svc.Stations())
}

type healthResponse struct {
	Status     string `json:"status"`
	SnapshotID string `json:"snapshot_id"`
	LoadedAt   string `json:"loaded_at"`
	Stations   int    `json:"stations"`
	Trips      int    `json:"trips"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	ds := s.svc.Dataset()
	writeJSON(w, http.StatusOK, healthResponse{
		Status:     "ok",
		SnapshotID: ds.SnapshotID.String(),
		LoadedAt:   ds.LoadedAt.UTC().Format(time.RFC3339),
		Stations:   len(ds.Stations),
		Trips:      len(ds.Trips),
	})
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, errorResponse{Error: err.Error()})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
