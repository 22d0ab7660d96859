package charnorm

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"io"
	"strings"
	"testing"

	apperrors "github.com/louisbranch/charnorm/internal/platform/errors"
	"github.com/louisbranch/charnorm/internal/services/mcp/domain"
)

func newFlagSet() *flag.FlagSet {
	fs := flag.NewFlagSet("charnorm", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

func TestParseConfigPositionalInput(t *testing.T) {
	cfg, err := ParseConfig(newFlagSet(), []string{"-locale", "ru-RU", "validate", "Anna", "Maria"})
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.Command != CommandValidate || cfg.Input != "Anna Maria" || cfg.ReadInput {
		t.Fatalf("config = %+v", cfg)
	}
	if cfg.Locale != "ru-RU" {
		t.Fatalf("locale = %q", cfg.Locale)
	}
}

func TestParseConfigReadsStdinWithoutInput(t *testing.T) {
	t.Setenv("CHARNORM_PRETTY", "true")
	cfg, err := ParseConfig(newFlagSet(), []string{"extract"})
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if !cfg.ReadInput || !cfg.Pretty || cfg.Locale != "en-US" {
		t.Fatalf("config = %+v", cfg)
	}
}

func TestParseConfigErrors(t *testing.T) {
	for _, args := range [][]string{nil, {"rename", "x"}, {"-bogus", "validate"}} {
		if _, err := ParseConfig(newFlagSet(), args); err == nil {
			t.Errorf("ParseConfig(%v) expected error", args)
		}
	}
}

func TestRunValidate(t *testing.T) {
	var out bytes.Buffer
	cfg := Config{Command: CommandValidate, Input: "A", Locale: "en-US"}
	if err := Run(context.Background(), cfg, nil, &out); err != nil {
		t.Fatalf("run: %v", err)
	}
	var got domain.NameValidateResult
	if err := json.Unmarshal(out.Bytes(), &got); err != nil {
		t.Fatalf("decode output %q: %v", out.String(), err)
	}
	if got.Valid || got.Reason != "too_short" || got.Code != "CHARACTER_NAME_TOO_SHORT" {
		t.Fatalf("result = %+v", got)
	}
}

func TestRunSuggestFromStdin(t *testing.T) {
	var out bytes.Buffer
	cfg := Config{Command: CommandSuggest, ReadInput: true, Locale: "en-US"}
	if err := Run(context.Background(), cfg, strings.NewReader("Анна$$\n"), &out); err != nil {
		t.Fatalf("run: %v", err)
	}
	var got domain.NameSuggestResult
	if err := json.Unmarshal(out.Bytes(), &got); err != nil {
		t.Fatalf("decode output: %v", err)
	}
	if got.Sanitized != "Анна" || len(got.Suggestions) != 5 || got.Suggestions[1] != "anna" {
		t.Fatalf("result = %+v", got)
	}
}

func TestRunExtractFromStdin(t *testing.T) {
	var out bytes.Buffer
	cfg := Config{Command: CommandExtract, ReadInput: true, Pretty: true}
	prompt := "Appearance: Tall, with grey eyes.\n\nHobbies: Chess."
	if err := Run(context.Background(), cfg, strings.NewReader(prompt), &out); err != nil {
		t.Fatalf("run: %v", err)
	}
	if !strings.Contains(out.String(), "\n  \"fields\"") {
		t.Fatalf("expected indented output, got %q", out.String())
	}
	var got domain.FieldsExtractResult
	if err := json.Unmarshal(out.Bytes(), &got); err != nil {
		t.Fatalf("decode output: %v", err)
	}
	if got.Fields["appearance"] != "Tall, with grey eyes." || got.Fields["hobbies"] != "Chess." {
		t.Fatalf("fields = %v", got.Fields)
	}
}

func TestRunRequiresInputReader(t *testing.T) {
	cfg := Config{Command: CommandValidate, ReadInput: true}
	if err := Run(context.Background(), cfg, nil, io.Discard); err == nil {
		t.Fatal("expected error without input")
	}
}

func TestRunStrictRejectsInvalidName(t *testing.T) {
	var out bytes.Buffer
	cfg := Config{Command: CommandValidate, Input: "  ", Locale: "en-US", Strict: true}
	err := Run(context.Background(), cfg, nil, &out)
	if !apperrors.IsCode(err, apperrors.CodeCharacterNameWhitespaceOnly) {
		t.Fatalf("err = %v, want whitespace-only code", err)
	}
	if out.Len() == 0 {
		t.Fatal("expected result to be written before the error")
	}
}

func TestRunStrictRejectsPromptWithoutFields(t *testing.T) {
	cfg := Config{Command: CommandExtract, Input: "Just a story.", Strict: true}
	err := Run(context.Background(), cfg, nil, io.Discard)
	if !apperrors.IsCode(err, apperrors.CodePromptNoFields) {
		t.Fatalf("err = %v, want prompt no fields code", err)
	}
}

func TestRunStrictAcceptsValidName(t *testing.T) {
	cfg := Config{Command: CommandSuggest, Input: "Дарья", Strict: true}
	if err := Run(context.Background(), cfg, nil, io.Discard); err != nil {
		t.Fatalf("run: %v", err)
	}
}

func TestRunStrictComposesCombiningMarks(t *testing.T) {
	cfg := Config{Command: CommandValidate, Input: "Се\u0308ма", Strict: true}
	if err := Run(context.Background(), cfg, nil, io.Discard); err != nil {
		t.Fatalf("run: %v", err)
	}
}
