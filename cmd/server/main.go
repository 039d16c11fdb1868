// Package main implements the entry point for the missive-api server,
// which generates email drafts from a subject line through hosted LLM
// completion backends.
package main

import (
	"context"
	"log"
)

// main wires configuration, logging, the completion backends, and the
// HTTP server together, then runs until interrupted.
func main() {
	ctx := context.Background()

	app, err := newApplication(ctx)
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	if err := app.startHTTPServer(ctx, app.setupRouter()); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
