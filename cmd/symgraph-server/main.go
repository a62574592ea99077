// Command symgraph-server exposes the symgraph tools over HTTP for agent
// frameworks.
//
// Usage:
//
//	go run ./cmd/symgraph-server --listen :8080
//
// Tool call endpoint: POST /tool
// Schema endpoint:    GET  /schema
// Health endpoint:    GET  /health
// Metrics endpoint:   GET  /metrics (unless --no-metrics)
package main

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/alexflint/go-arg"

	"github.com/njchilds90/symgraph/internal/metrics"
	"github.com/njchilds90/symgraph/tool"
)

// DefaultListen is used when --listen is not given.
const DefaultListen = ":8080"

// Args are what are used to build the CLI.
type Args struct {
	Listen string `arg:"--listen,env:SYMGRAPH_LISTEN" help:"address to listen on"`

	MaxBody int64 `arg:"--max-body" default:"1048576" help:"largest accepted request body in bytes"`

	NoMetrics bool `arg:"--no-metrics" help:"do not serve prometheus metrics"`
}

// Main program that returns error.
func Main() error {
	args := Args{
		Listen: DefaultListen,
	}
	parser, err := arg.NewParser(arg.Config{Program: "symgraph-server"}, &args)
	if err != nil {
		// programming error
		return err
	}
	err = parser.Parse(os.Args[1:])
	if err == arg.ErrHelp {
		parser.WriteHelp(os.Stdout)
		return nil
	}
	if err != nil {
		return err
	}

	h := &tool.Handler{Logf: log.Printf}
	if !args.NoMetrics {
		m := &metrics.Metrics{}
		if err := m.Init(); err != nil {
			return err
		}
		h.Metrics = m
	}

	log.Printf("symgraph server listening on %s", args.Listen)
	log.Printf("  POST /tool   - execute a tool call")
	log.Printf("  GET  /schema - tool schema for agent registration")
	log.Printf("  GET  /health - health check")
	if h.Metrics != nil {
		log.Printf("  GET  %s - prometheus metrics", metrics.DefaultPath)
	}

	srv := &http.Server{
		Addr:              args.Listen,
		Handler:           newServer(h, args.MaxBody),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func main() {
	if err := Main(); err != nil {
		fmt.Fprintf(os.Stderr, "symgraph-server: %v\n", err)
		os.Exit(1)
	}
}
