package api

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/katalvlaran/citymap/bfs"
	"github.com/katalvlaran/citymap/core"
	"github.com/katalvlaran/citymap/dfs"
	"github.com/katalvlaran/citymap/dijkstra"
	"github.com/katalvlaran/citymap/registry"
)

// addressable reports whether name can be used as one path segment.
// The router matches decoded, cleaned paths, so "/" and dot segments
// could never be routed back to the resource.
func addressable(name string) bool {
	return name != "" && name != "." && name != ".." && !strings.Contains(name, "/")
}

func (s *Server) health(w http.ResponseWriter, _ *http.Request) {
	respond(w, http.StatusOK, map[string]string{"status": "ok"})
}

// ----------------------------------------------------------------------------
// Registry

func (s *Server) listGraphs(w http.ResponseWriter, _ *http.Request) {
	current, _, _ := s.reg.Current()
	respond(w, http.StatusOK, graphsResponse{Graphs: s.reg.Names(), Current: current})
}

func (s *Server) createGraph(w http.ResponseWriter, r *http.Request) {
	log := LoggerFromContext(r.Context(), s.log)

	req, err := decode[nameRequest](w, r)
	if err != nil {
		log.Warn("bad graph payload", "error", err)
		respond(w, http.StatusBadRequest, newErrResp("invalid graph payload"))
		return
	}

	if req.Name != "" && !addressable(req.Name) {
		respond(w, http.StatusBadRequest, newErrResp(`graph name must not contain "/" or be "." or ".."`))
		return
	}

	if _, err := s.reg.Add(req.Name); err != nil {
		switch {
		case errors.Is(err, registry.ErrEmptyName):
			respond(w, http.StatusBadRequest, newErrResp(err.Error()))
		case errors.Is(err, registry.ErrDuplicateName):
			respond(w, http.StatusConflict, newErrResp(err.Error()))
		default:
			respond(w, http.StatusInternalServerError, newErrResp(err.Error()))
		}
		return
	}

	log.Info("graph created", "graph", req.Name)
	respond(w, http.StatusCreated, graphsResponse{Graphs: s.reg.Names(), Current: req.Name})
}

func (s *Server) deleteGraph(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["graph"]
	if err := s.reg.Delete(name); err != nil {
		respond(w, http.StatusNotFound, newErrResp(err.Error()))
		return
	}

	LoggerFromContext(r.Context(), s.log).Info("graph deleted", "graph", name)
	respond(w, http.StatusNoContent, nil)
}

func (s *Server) selectGraph(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["graph"]
	if err := s.reg.Select(name); err != nil {
		respond(w, http.StatusNotFound, newErrResp(err.Error()))
		return
	}

	respond(w, http.StatusOK, graphsResponse{Graphs: s.reg.Names(), Current: name})
}

// lookup resolves the {graph} path variable, responding 404 when unknown.
func (s *Server) lookup(w http.ResponseWriter, r *http.Request) (string, *core.Graph, bool) {
	name := mux.Vars(r)["graph"]
	g, ok := s.reg.Get(name)
	if !ok {
		respond(w, http.StatusNotFound, newErrResp(registry.ErrGraphNotFound.Error()))
		return name, nil, false
	}

	return name, g, true
}

func (s *Server) getGraph(w http.ResponseWriter, r *http.Request) {
	name, g, ok := s.lookup(w, r)
	if !ok {
		return
	}

	s.mu.Lock()
	cities := g.AllCities()
	edges := g.Edges()
	count := g.NumberOfCities()
	s.mu.Unlock()

	resp := graphResponse{
		Name:           name,
		Cities:         cities,
		Edges:          make([]edgeResponse, 0, len(edges)),
		NumberOfCities: count,
	}
	for _, e := range edges {
		resp.Edges = append(resp.Edges, edgeResponse{From: e.From, To: e.To, Distance: e.Distance, Time: e.Time})
	}

	respond(w, http.StatusOK, resp)
}

// ----------------------------------------------------------------------------
// Mutation

func (s *Server) addCity(w http.ResponseWriter, r *http.Request) {
	name, g, ok := s.lookup(w, r)
	if !ok {
		return
	}
	log := LoggerFromContext(r.Context(), s.log)

	req, err := decode[nameRequest](w, r)
	if err != nil {
		log.Warn("bad city payload", "error", err)
		respond(w, http.StatusBadRequest, newErrResp("invalid city payload"))
		return
	}
	if !addressable(req.Name) {
		respond(w, http.StatusBadRequest, newErrResp(`city name must be non-empty, must not contain "/" or be "." or ".."`))
		return
	}

	s.mu.Lock()
	changed := !g.ContainsCity(req.Name)
	g.AddCity(req.Name)
	s.mu.Unlock()
	if changed {
		s.reg.MarkModified()
	}

	log.Info("city added", "graph", name, "city", req.Name)
	respond(w, http.StatusNoContent, nil)
}

func (s *Server) deleteCity(w http.ResponseWriter, r *http.Request) {
	name, g, ok := s.lookup(w, r)
	if !ok {
		return
	}
	city := mux.Vars(r)["city"]

	s.mu.Lock()
	changed := g.ContainsCity(city)
	g.DeleteCity(city)
	s.mu.Unlock()
	if changed {
		s.reg.MarkModified()
	}

	LoggerFromContext(r.Context(), s.log).Info("city deleted", "graph", name, "city", city)
	respond(w, http.StatusNoContent, nil)
}

func (s *Server) putEdge(w http.ResponseWriter, r *http.Request) {
	name, g, ok := s.lookup(w, r)
	if !ok {
		return
	}
	log := LoggerFromContext(r.Context(), s.log)

	req, err := decode[edgeRequest](w, r)
	if err != nil {
		log.Warn("bad edge payload", "error", err)
		respond(w, http.StatusBadRequest, newErrResp("invalid edge payload"))
		return
	}
	if !addressable(req.From) || !addressable(req.To) {
		respond(w, http.StatusBadRequest, newErrResp(`edge endpoints must be non-empty, must not contain "/" or be "." or ".."`))
		return
	}

	s.mu.Lock()
	before, existed := g.EdgeWeights(req.From, req.To)
	g.AddEdge(req.From, req.To, req.Distance, req.Time)
	after, exists := g.EdgeWeights(req.From, req.To)
	s.mu.Unlock()
	if exists && (!existed || before != after) {
		s.reg.MarkModified()
	}

	log.Info("edge upserted", "graph", name, "from", req.From, "to", req.To,
		"distance", req.Distance, "time", req.Time)
	respond(w, http.StatusNoContent, nil)
}

func (s *Server) deleteEdge(w http.ResponseWriter, r *http.Request) {
	name, g, ok := s.lookup(w, r)
	if !ok {
		return
	}
	vars := mux.Vars(r)

	s.mu.Lock()
	changed := g.ContainsEdge(vars["from"], vars["to"])
	g.DeleteEdge(vars["from"], vars["to"])
	s.mu.Unlock()
	if changed {
		s.reg.MarkModified()
	}

	LoggerFromContext(r.Context(), s.log).Info("edge deleted", "graph", name, "from", vars["from"], "to", vars["to"])
	respond(w, http.StatusNoContent, nil)
}

// ----------------------------------------------------------------------------
// Algorithms

func (s *Server) bfs(w http.ResponseWriter, r *http.Request) {
	s.traverse(w, r, func(g *core.Graph, start string) []string { return bfs.BFS(g, start) })
}

func (s *Server) dfs(w http.ResponseWriter, r *http.Request) {
	s.traverse(w, r, func(g *core.Graph, start string) []string { return dfs.DFS(g, start) })
}

func (s *Server) traverse(w http.ResponseWriter, r *http.Request, walk func(*core.Graph, string) []string) {
	_, g, ok := s.lookup(w, r)
	if !ok {
		return
	}
	start := r.URL.Query().Get("start")
	if start == "" {
		respond(w, http.StatusBadRequest, newErrResp("missing start parameter"))
		return
	}

	s.mu.Lock()
	order := walk(g, start)
	s.mu.Unlock()

	respond(w, http.StatusOK, traversalResponse{Start: start, Order: order})
}

func (s *Server) shortestPath(w http.ResponseWriter, r *http.Request) {
	_, g, ok := s.lookup(w, r)
	if !ok {
		return
	}

	q := r.URL.Query()
	from, to := q.Get("from"), q.Get("to")
	if from == "" || to == "" {
		respond(w, http.StatusBadRequest, newErrResp("missing from or to parameter"))
		return
	}
	by := q.Get("by")
	if by == "" {
		by = "distance"
	}
	metric, ok := dijkstra.MetricByName(by)
	if !ok {
		respond(w, http.StatusBadRequest, newErrResp("by must be distance or time"))
		return
	}

	s.mu.Lock()
	res := dijkstra.ShortestPath(g, from, to, metric)
	s.mu.Unlock()

	path := res.Path
	if path == nil {
		path = []string{}
	}
	respond(w, http.StatusOK, pathResponse{
		From:           from,
		To:             to,
		By:             by,
		Path:           path,
		DistanceOrTime: res.DistanceOrTime,
		Summary:        dijkstra.Summary(res, dijkstra.UnitFor(by)),
	})
}
