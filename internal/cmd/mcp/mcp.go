// Package mcp parses MCP command flags and selects stdio or HTTP transport.
package mcp

import (
	"context"
	"flag"

	platformcmd "github.com/louisbranch/charnorm/internal/platform/cmd"
	"github.com/louisbranch/charnorm/internal/services/mcp/service"
)

// Config holds MCP command configuration.
type Config struct {
	HTTPAddr      string `env:"MCP_HTTP_ADDR"  envDefault:"localhost:8085"`
	Transport     string `env:"MCP_TRANSPORT"  envDefault:"stdio"`
	DefaultLocale string `env:"DEFAULT_LOCALE" envDefault:"en-US"`
}

// ParseConfig parses environment and flags into a Config. Flags win over the
// environment.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := platformcmd.LoadConfig(&cfg, fs, args, bindFlags); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func bindFlags(fs *flag.FlagSet, cfg *Config) {
	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "HTTP server address (for HTTP transport)")
	fs.StringVar(&cfg.Transport, "transport", cfg.Transport, "Transport type: stdio or http")
	fs.StringVar(&cfg.DefaultLocale, "locale", cfg.DefaultLocale, "Locale for messages when a tool call names none")
}

// Run starts the MCP protocol adapter.
func Run(ctx context.Context, cfg Config) error {
	return platformcmd.RunWithTelemetry(ctx, platformcmd.ServiceMCP, func(ctx context.Context) error {
		return service.Run(ctx, service.Config{
			Transport:     cfg.Transport,
			HTTPAddr:      cfg.HTTPAddr,
			DefaultLocale: cfg.DefaultLocale,
		})
	})
}
