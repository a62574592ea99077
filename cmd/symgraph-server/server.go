package main

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/google/uuid"

	"github.com/njchilds90/symgraph/internal/metrics"
	"github.com/njchilds90/symgraph/tool"
)

// requestIDHeader carries the per-call id back to the client.
const requestIDHeader = "X-Request-Id"

// newServer builds the routes. Metrics are mounted only when h carries them.
func newServer(h *tool.Handler, maxBody int64) http.Handler {
	mux := http.NewServeMux()

	// POST /tool - handle a tool call
	mux.HandleFunc("/tool", func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(requestIDHeader)
		if id == "" {
			id = uuid.New().String()
		}
		w.Header().Set(requestIDHeader, id)

		defer func() {
			if rec := recover(); rec != nil {
				log.Printf("[%s] panic in /tool: %v\n%s", id, rec, string(debug.Stack()))
				http.Error(w, "internal server error", http.StatusInternalServerError)
			}
		}()

		if r.Method != http.MethodPost {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}

		r.Body = http.MaxBytesReader(w, r.Body, maxBody)
		defer r.Body.Close()

		dec := json.NewDecoder(r.Body)
		dec.DisallowUnknownFields()

		var req tool.Request
		if err := dec.Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		// Ensure there's no trailing junk.
		if dec.More() {
			writeError(w, http.StatusBadRequest, "invalid JSON: trailing data")
			return
		}

		call := *h
		call.Logf = func(format string, v ...interface{}) {
			if h.Logf != nil {
				h.Logf("[%s] "+format, append([]interface{}{id}, v...)...)
			}
		}
		resp := call.Handle(req)
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(resp)
	})

	// GET /schema - return tool schema for agent registration
	mux.HandleFunc("/schema", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, tool.Spec())
	})

	// GET /health - liveness check
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"status": "ok",
			"time":   time.Now().UTC().Format(time.RFC3339),
		})
	})

	if h.Metrics != nil {
		mux.Handle(metrics.DefaultPath, h.Metrics.Handler())
	}
	return mux
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
