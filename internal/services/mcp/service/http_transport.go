package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	// defaultHTTPAddr binds to localhost only.
	defaultHTTPAddr = "localhost:8085"
	// defaultShutdownTimeout is the maximum time to wait for graceful HTTP server shutdown.
	defaultShutdownTimeout = 10 * time.Second
	// defaultReadHeaderTimeout bounds slow clients sending request headers.
	defaultReadHeaderTimeout = 10 * time.Second
)

// newHTTPHandler routes /mcp to the streamable MCP handler and exposes a
// health check. Every HTTP session shares the same MCP server.
func newHTTPHandler(server *Server) http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/mcp", mcp.NewStreamableHTTPHandler(func(*http.Request) *mcp.Server {
		return server.mcpServer
	}, nil))
	mux.HandleFunc("/mcp/health", handleHealth)
	return mux
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(map[string]string{"status": "ok"}); err != nil {
		log.Printf("write health response: %v", err)
	}
}

// runWithHTTPTransport serves MCP over HTTP until ctx is cancelled.
func runWithHTTPTransport(ctx context.Context, cfg Config) error {
	addr := cfg.HTTPAddr
	if addr == "" {
		addr = defaultHTTPAddr
	}
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", addr, err)
	}
	return serveHTTP(ctx, listener, NewServer(cfg))
}

func serveHTTP(ctx context.Context, listener net.Listener, server *Server) error {
	httpServer := &http.Server{
		Handler:           newHTTPHandler(server),
		ReadHeaderTimeout: defaultReadHeaderTimeout,
	}

	log.Printf("Starting MCP HTTP server on %s", listener.Addr())

	errChan := make(chan error, 1)
	go func() {
		if err := httpServer.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- err
		}
		close(errChan)
	}()

	select {
	case <-ctx.Done():
		log.Printf("Shutting down MCP HTTP server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), defaultShutdownTimeout)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown HTTP server: %w", err)
		}
		return nil
	case err, ok := <-errChan:
		if !ok {
			return nil
		}
		return fmt.Errorf("HTTP server error: %w", err)
	}
}
