// Package cmd holds startup helpers shared by the charnorm entry points.
package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/louisbranch/charnorm/internal/platform/config"
	"github.com/louisbranch/charnorm/internal/platform/otel"
)

const defaultShutdownTimeout = 5 * time.Second

// Service names reported as the otel service.name resource attribute.
const (
	ServiceCLI = "charnorm"
	ServiceMCP = "charnorm-mcp"
)

// LoadConfig reads CHARNORM_-prefixed environment values into cfg and then
// parses args into fs, so flags bound to cfg fields override the environment.
// bind registers those flags once env defaults are in place.
func LoadConfig[T any](cfg *T, fs *flag.FlagSet, args []string, bind func(*flag.FlagSet, *T)) error {
	if cfg == nil {
		return errors.New("config target is required")
	}
	if fs == nil {
		return errors.New("flag parser is required")
	}
	if err := config.ParseEnv(cfg); err != nil {
		return err
	}
	if bind != nil {
		bind(fs, cfg)
	}
	if args == nil {
		args = []string{}
	}
	return fs.Parse(args)
}

// RunWithTelemetry sets up tracing for service, runs run, and flushes spans
// before returning run's error.
func RunWithTelemetry(ctx context.Context, service string, run func(context.Context) error) error {
	service = strings.TrimSpace(service)
	if service == "" {
		return fmt.Errorf("service name is required")
	}
	if run == nil {
		return fmt.Errorf("run function is required")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	shutdown, err := otel.Setup(ctx, service)
	if err != nil {
		return err
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), defaultShutdownTimeout)
		defer cancel()
		if err := shutdown(shutdownCtx); err != nil {
			log.Printf("%s otel shutdown: %v", service, err)
		}
	}()
	return run(ctx)
}
