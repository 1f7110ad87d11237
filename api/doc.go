// Package api exposes a registry of city graphs over HTTP/JSON.
//
// Routes (gorilla/mux):
//
//	GET    /health
//	GET    /graphs                          names and current selection
//	POST   /graphs                          {"name"}; new graph becomes current
//	DELETE /graphs/{graph}
//	PUT    /graphs/{graph}/current          select
//	GET    /graphs/{graph}                  cities, edges, number of cities
//	POST   /graphs/{graph}/cities           {"name"}
//	DELETE /graphs/{graph}/cities/{city}
//	PUT    /graphs/{graph}/edges            {"from","to","distance","time"}
//	DELETE /graphs/{graph}/edges/{from}/{to}
//	GET    /graphs/{graph}/bfs?start=
//	GET    /graphs/{graph}/dfs?start=
//	GET    /graphs/{graph}/path?from=&to=&by=distance|time
//
// Engine calls never fail; an unknown start city yields an empty order and
// an unknown or unreachable destination yields an empty path, both with
// status 200. Request-level problems (bad JSON, empty names, unknown graph)
// are reported as {"error": "..."} with a 4xx status.
//
// core.Graph is not safe for concurrent use, so Server serialises every
// engine call behind one mutex.
package api
