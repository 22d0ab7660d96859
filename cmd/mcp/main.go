package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	mcpcmd "github.com/louisbranch/charnorm/internal/cmd/mcp"
)

// main starts the MCP server on stdio or HTTP.
func main() {
	log.SetPrefix("[MCP] ")
	cfg, err := mcpcmd.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		log.Fatalf("parse flags: %v", err)
	}
	if err := run(cfg); err != nil {
		log.Fatalf("failed to serve MCP: %v", err)
	}
}

// run owns the signal context so it is released before main exits.
func run(cfg mcpcmd.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return mcpcmd.Run(ctx, cfg)
}
