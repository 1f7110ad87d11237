package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

const maxBodySize = 1 << 20 // 1 MB

// errorResponse is the JSON envelope for request-level failures.
type errorResponse struct {
	Error string `json:"error"`
}

func newErrResp(msg string) errorResponse {
	return errorResponse{Error: msg}
}

// respond writes v as JSON with the given status code. A nil v writes the
// status only.
func respond(w http.ResponseWriter, code int, v any) {
	if v == nil {
		w.WriteHeader(code)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}

// decode reads exactly one JSON value from the request body into a T,
// rejecting unknown fields and bodies larger than maxBodySize.
func decode[T any](w http.ResponseWriter, r *http.Request) (T, error) {
	body := http.MaxBytesReader(w, r.Body, maxBodySize)
	defer body.Close()

	dec := json.NewDecoder(body)
	dec.DisallowUnknownFields()

	var data T
	if err := dec.Decode(&data); err != nil {
		return data, fmt.Errorf("request: decode: %w", err)
	}

	var trailing struct{}
	if err := dec.Decode(&trailing); !errors.Is(err, io.EOF) {
		if err == nil {
			return data, errors.New("request: decode: body must contain a single JSON value")
		}
		return data, fmt.Errorf("request: decode: %w", err)
	}

	return data, nil
}
