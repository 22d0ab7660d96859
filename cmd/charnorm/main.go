// Package main provides a CLI for extracting character fields from prompts
// and validating or correcting character names.
package main

import (
	"context"
	"flag"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	charnormcmd "github.com/louisbranch/charnorm/internal/cmd/charnorm"
	"github.com/louisbranch/charnorm/internal/platform/config"
	apperrors "github.com/louisbranch/charnorm/internal/platform/errors"
)

func main() {
	log.SetPrefix("[CHARNORM] ")
	cfg, err := charnormcmd.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		config.Exitf("parse flags: %v", err)
	}
	if err := run(cfg, os.Stdin, os.Stdout); err != nil {
		config.Exitf("%s: %s", cfg.Command, errorMessage(err, cfg.Locale))
	}
}

// run owns the signal context so it is released before main exits.
func run(cfg charnormcmd.Config, in io.Reader, out io.Writer) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return charnormcmd.Run(ctx, cfg, in, out)
}

// errorMessage localizes domain errors and passes others through.
func errorMessage(err error, locale string) string {
	if apperrors.GetCode(err) == apperrors.CodeUnknown {
		return err.Error()
	}
	_, message := apperrors.Localize(err, locale)
	return message
}
