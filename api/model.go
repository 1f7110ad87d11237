package api

// nameRequest is the body of POST /graphs and POST /graphs/{graph}/cities.
type nameRequest struct {
	Name string `json:"name"`
}

// edgeRequest is the body of PUT /graphs/{graph}/edges.
type edgeRequest struct {
	From     string  `json:"from"`
	To       string  `json:"to"`
	Distance float64 `json:"distance"`
	Time     float64 `json:"time"`
}

type graphsResponse struct {
	Graphs  []string `json:"graphs"`
	Current string   `json:"current,omitempty"`
}

type edgeResponse struct {
	From     string  `json:"from"`
	To       string  `json:"to"`
	Distance float64 `json:"distance"`
	Time     float64 `json:"time"`
}

type graphResponse struct {
	Name           string         `json:"name"`
	Cities         []string       `json:"cities"`
	Edges          []edgeResponse `json:"edges"`
	NumberOfCities int            `json:"numberOfCities"`
}

type traversalResponse struct {
	Start string   `json:"start"`
	Order []string `json:"order"`
}

type pathResponse struct {
	From           string   `json:"from"`
	To             string   `json:"to"`
	By             string   `json:"by"`
	Path           []string `json:"path"`
	DistanceOrTime float64  `json:"distanceOrTime"`
	Summary        string   `json:"summary"`
}
