package api

import (
	"log/slog"
	"net/http"
	"sync"

	"github.com/gorilla/mux"

	"github.com/katalvlaran/citymap/registry"
)

// Server serves one registry. mu serialises every call into the engine.
type Server struct {
	reg *registry.Registry
	log *slog.Logger
	mu  sync.Mutex
}

// NewServer returns a Server over reg. A nil logger falls back to slog.Default().
func NewServer(reg *registry.Registry, logger *slog.Logger) *Server {
	if reg == nil {
		reg = registry.New()
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &Server{reg: reg, log: logger}
}

// middleware returns the chain installed on every route, outermost first.
// accessLog wraps recoverPanics so a recovered panic is still logged as a 500.
func (s *Server) middleware() []mux.MiddlewareFunc {
	return []mux.MiddlewareFunc{withRequestID, withLogger(s.log), accessLog(s.log), recoverPanics(s.log)}
}

// Routes builds the router with the middleware chain installed.
func (s *Server) Routes() *mux.Router {
	r := mux.NewRouter()
	r.Use(s.middleware()...)

	r.HandleFunc("/health", s.health).Methods(http.MethodGet)

	r.HandleFunc("/graphs", s.listGraphs).Methods(http.MethodGet)
	r.HandleFunc("/graphs", s.createGraph).Methods(http.MethodPost)

	g := r.PathPrefix("/graphs/{graph}").Subrouter()
	g.HandleFunc("", s.getGraph).Methods(http.MethodGet)
	g.HandleFunc("", s.deleteGraph).Methods(http.MethodDelete)
	g.HandleFunc("/current", s.selectGraph).Methods(http.MethodPut)

	g.HandleFunc("/cities", s.addCity).Methods(http.MethodPost)
	g.HandleFunc("/cities/{city}", s.deleteCity).Methods(http.MethodDelete)

	g.HandleFunc("/edges", s.putEdge).Methods(http.MethodPut)
	g.HandleFunc("/edges/{from}/{to}", s.deleteEdge).Methods(http.MethodDelete)

	g.HandleFunc("/bfs", s.bfs).Methods(http.MethodGet)
	g.HandleFunc("/dfs", s.dfs).Methods(http.MethodGet)
	g.HandleFunc("/path", s.shortestPath).Methods(http.MethodGet)

	return r
}
