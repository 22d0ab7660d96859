package cmd

import (
	"context"
	"errors"
	"flag"
	"io"
	"testing"
)

type testConfig struct {
	Address string `env:"CMD_TEST_ADDRESS" envDefault:"127.0.0.1:8080"`
	Mode    string `env:"CMD_TEST_MODE" envDefault:"server"`
}

func bindTestFlags(fs *flag.FlagSet, cfg *testConfig) {
	fs.StringVar(&cfg.Address, "address", cfg.Address, "address")
	fs.StringVar(&cfg.Mode, "mode", cfg.Mode, "mode")
}

func TestLoadConfigReadsEnvAndFlags(t *testing.T) {
	t.Setenv("CHARNORM_CMD_TEST_ADDRESS", "env:9000")
	t.Setenv("CHARNORM_CMD_TEST_MODE", "env-mode")

	var cfg testConfig
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	if err := LoadConfig(&cfg, fs, []string{"-address", "flag:9001"}, bindTestFlags); err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.Address != "flag:9001" {
		t.Fatalf("expected flag value for address, got %q", cfg.Address)
	}
	if cfg.Mode != "env-mode" {
		t.Fatalf("expected env value for mode, got %q", cfg.Mode)
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	var cfg testConfig
	if err := LoadConfig(&cfg, flag.NewFlagSet("test", flag.ContinueOnError), nil, bindTestFlags); err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.Address != "127.0.0.1:8080" || cfg.Mode != "server" {
		t.Fatalf("config = %+v", cfg)
	}
}

func TestLoadConfigRejectsMissingInputs(t *testing.T) {
	var cfg testConfig
	if err := LoadConfig[testConfig](nil, flag.NewFlagSet("test", flag.ContinueOnError), nil, nil); err == nil {
		t.Fatal("expected missing target error")
	}
	if err := LoadConfig(&cfg, nil, nil, bindTestFlags); err == nil {
		t.Fatal("expected missing parser error")
	}
}

func TestLoadConfigRejectsUnknownFlag(t *testing.T) {
	var cfg testConfig
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	if err := LoadConfig(&cfg, fs, []string{"-port", "1"}, bindTestFlags); err == nil {
		t.Fatal("expected unknown flag error")
	}
}

func TestRunWithTelemetryRejectsMissingInputs(t *testing.T) {
	if err := RunWithTelemetry(context.Background(), "", func(context.Context) error { return nil }); err == nil {
		t.Fatal("expected missing service error")
	}
	if err := RunWithTelemetry(context.Background(), ServiceCLI, nil); err == nil {
		t.Fatal("expected missing run function error")
	}
}

func TestRunWithTelemetryReturnsRunError(t *testing.T) {
	want := errors.New("boom")
	called := false
	err := RunWithTelemetry(context.Background(), ServiceMCP, func(context.Context) error {
		called = true
		return want
	})
	if !called {
		t.Fatal("expected run function to be called")
	}
	if !errors.Is(err, want) {
		t.Fatalf("err = %v, want %v", err, want)
	}
}
