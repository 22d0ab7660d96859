package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/louisbranch/charnorm/internal/character/fields"
	"github.com/louisbranch/charnorm/internal/platform/i18n/catalog"
	"github.com/louisbranch/charnorm/internal/services/mcp/domain"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	// serverName identifies the MCP server to clients.
	serverName = "charnorm"
	// serverVersion identifies the MCP server version.
	serverVersion = "0.1.0"
)

const (
	// TransportStdio serves MCP over stdin/stdout.
	TransportStdio = "stdio"
	// TransportHTTP serves MCP over streamable HTTP.
	TransportHTTP = "http"
)

// Config selects the transport and the defaults applied to tool calls.
type Config struct {
	Transport     string
	HTTPAddr      string
	DefaultLocale string
	// Registry overrides the field header table. Nil uses fields.Default.
	Registry *fields.Registry
}

// Server wraps an MCP server with the charnorm tools registered.
type Server struct {
	mcpServer *mcp.Server
}

// NewServer creates a configured MCP server with every tool registered.
func NewServer(cfg Config) *Server {
	mcpServer := mcp.NewServer(&mcp.Implementation{Name: serverName, Version: serverVersion}, nil)
	registerTools(mcpServer, cfg)
	return &Server{mcpServer: mcpServer}
}

func registerTools(server *mcp.Server, cfg Config) {
	locale := cfg.DefaultLocale
	if locale == "" {
		locale = catalog.BaseLocale
	}
	mcp.AddTool(server, domain.FieldsExtractTool(), domain.FieldsExtractHandler(cfg.Registry))
	mcp.AddTool(server, domain.NameValidateTool(), domain.NameValidateHandler(locale))
	mcp.AddTool(server, domain.NameSuggestTool(), domain.NameSuggestHandler(locale))
}

// Run is the service entrypoint for MCP and blocks until context cancellation.
func Run(ctx context.Context, cfg Config) error {
	if cfg.Transport == "" {
		cfg.Transport = TransportStdio
	}

	switch cfg.Transport {
	case TransportStdio:
		return NewServer(cfg).serveWithTransport(ctx, &mcp.StdioTransport{})
	case TransportHTTP:
		return runWithHTTPTransport(ctx, cfg)
	default:
		return fmt.Errorf("transport %q is not supported", cfg.Transport)
	}
}

// serveWithTransport runs the server on transport until the client
// disconnects or ctx ends.
func (s *Server) serveWithTransport(ctx context.Context, transport mcp.Transport) error {
	if s == nil || s.mcpServer == nil {
		return fmt.Errorf("MCP server is not configured")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	err := s.mcpServer.Run(ctx, transport)
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("serve MCP: %w", err)
	}
	return nil
}
