// Package charnorm runs the character text normalization tools from the
// command line.
package charnorm

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/louisbranch/charnorm/internal/character/name"
	platformcmd "github.com/louisbranch/charnorm/internal/platform/cmd"
	apperrors "github.com/louisbranch/charnorm/internal/platform/errors"
	"github.com/louisbranch/charnorm/internal/services/mcp/domain"
)

// Commands supported by the CLI.
const (
	CommandExtract  = "extract"
	CommandValidate = "validate"
	CommandSuggest  = "suggest"
)

// Config holds charnorm command configuration.
type Config struct {
	Command string
	Input   string

	// ReadInput is set when no positional input was given and stdin should be read.
	ReadInput bool

	Locale string `env:"DEFAULT_LOCALE" envDefault:"en-US"`
	Pretty bool   `env:"PRETTY"`

	// Strict makes Run fail with a domain error when the name is invalid or
	// the prompt yields no fields.
	Strict bool `env:"STRICT"`
}

// ParseConfig parses environment, flags and the positional command into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := platformcmd.LoadConfig(&cfg, fs, args, bindFlags); err != nil {
		return Config{}, err
	}

	rest := fs.Args()
	if len(rest) == 0 {
		return Config{}, fmt.Errorf("command is required: %s, %s or %s", CommandExtract, CommandValidate, CommandSuggest)
	}
	cfg.Command = rest[0]
	switch cfg.Command {
	case CommandExtract, CommandValidate, CommandSuggest:
	default:
		return Config{}, fmt.Errorf("unknown command %q", cfg.Command)
	}
	if len(rest) > 1 {
		cfg.Input = strings.Join(rest[1:], " ")
	} else {
		cfg.ReadInput = true
	}
	return cfg, nil
}

func bindFlags(fs *flag.FlagSet, cfg *Config) {
	fs.StringVar(&cfg.Locale, "locale", cfg.Locale, "locale for validation messages")
	fs.BoolVar(&cfg.Pretty, "pretty", cfg.Pretty, "indent JSON output")
	fs.BoolVar(&cfg.Strict, "strict", cfg.Strict, "exit non-zero for invalid names or prompts without fields")
}

// Run executes the configured command and writes its JSON result to out.
func Run(ctx context.Context, cfg Config, in io.Reader, out io.Writer) error {
	return platformcmd.RunWithTelemetry(ctx, platformcmd.ServiceCLI, func(ctx context.Context) error {
		return run(ctx, cfg, in, out)
	})
}

func run(ctx context.Context, cfg Config, in io.Reader, out io.Writer) error {
	input := cfg.Input
	if cfg.ReadInput {
		if in == nil {
			return fmt.Errorf("no input provided")
		}
		data, err := io.ReadAll(in)
		if err != nil {
			return fmt.Errorf("read input: %w", err)
		}
		input = string(data)
		if cfg.Command != CommandExtract {
			// Shell pipes append a newline that is not part of the name.
			input = strings.TrimRight(input, "\r\n")
		}
	}

	var (
		result any
		// rejection is reported after the result is written, in strict mode only.
		rejection error
	)
	switch cfg.Command {
	case CommandExtract:
		_, extracted, err := domain.FieldsExtractHandler(nil)(ctx, nil, domain.FieldsExtractInput{Prompt: input})
		if err != nil {
			return err
		}
		if len(extracted.Order) == 0 {
			rejection = apperrors.New(apperrors.CodePromptNoFields, "prompt has no recognizable fields")
		}
		result = extracted
	case CommandValidate:
		_, validated, err := domain.NameValidateHandler(cfg.Locale)(ctx, nil, domain.NameValidateInput{Name: input})
		if err != nil {
			return err
		}
		rejection = name.Check(domain.ComposeName(input))
		result = validated
	case CommandSuggest:
		_, suggested, err := domain.NameSuggestHandler(cfg.Locale)(ctx, nil, domain.NameSuggestInput{Name: input})
		if err != nil {
			return err
		}
		rejection = name.Check(domain.ComposeName(input))
		result = suggested
	default:
		return fmt.Errorf("unknown command %q", cfg.Command)
	}

	encoder := json.NewEncoder(out)
	encoder.SetEscapeHTML(false)
	if cfg.Pretty {
		encoder.SetIndent("", "  ")
	}
	if err := encoder.Encode(result); err != nil {
		return fmt.Errorf("write result: %w", err)
	}
	if cfg.Strict {
		return rejection
	}
	return nil
}
