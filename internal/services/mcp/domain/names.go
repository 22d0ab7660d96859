package domain

import (
	"context"
	"strings"

	"github.com/louisbranch/charnorm/internal/character/name"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/text/unicode/norm"
)

const (
	// NameValidateToolName is the MCP name of the name validation tool.
	NameValidateToolName = "character_name_validate"
	// NameSuggestToolName is the MCP name of the name suggestion tool.
	NameSuggestToolName = "character_name_suggest"
)

// NameValidateInput represents the MCP tool input for name validation.
type NameValidateInput struct {
	Name   string `json:"name" jsonschema:"candidate character display name"`
	Locale string `json:"locale,omitempty" jsonschema:"optional BCP 47 locale for the message (en-US, ru-RU)"`
}

// NameValidateResult represents the MCP tool output for name validation.
type NameValidateResult struct {
	Valid   bool   `json:"valid" jsonschema:"whether the name is acceptable"`
	Reason  string `json:"reason" jsonschema:"failure reason or none"`
	Code    string `json:"code,omitempty" jsonschema:"machine-readable error code when invalid"`
	Locale  string `json:"locale,omitempty" jsonschema:"locale of the message"`
	Message string `json:"message,omitempty" jsonschema:"localized explanation when invalid"`
}

// NameSuggestInput represents the MCP tool input for name suggestions.
type NameSuggestInput struct {
	Name   string `json:"name" jsonschema:"character display name to correct"`
	Locale string `json:"locale,omitempty" jsonschema:"optional BCP 47 locale for the message (en-US, ru-RU)"`
}

// NameSuggestResult represents the MCP tool output for name suggestions.
type NameSuggestResult struct {
	Valid       bool     `json:"valid" jsonschema:"whether the name is already acceptable"`
	Reason      string   `json:"reason" jsonschema:"failure reason or none"`
	Locale      string   `json:"locale,omitempty" jsonschema:"locale of the message"`
	Message     string   `json:"message,omitempty" jsonschema:"localized explanation when invalid"`
	Sanitized   string   `json:"sanitized" jsonschema:"name with disallowed characters removed"`
	Suggestions []string `json:"suggestions" jsonschema:"up to five replacement names, best first"`
}

// NameValidateTool defines the MCP tool schema for name validation.
func NameValidateTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        NameValidateToolName,
		Description: "Validates a character display name (Latin or Cyrillic) and explains any failure",
	}
}

// NameSuggestTool defines the MCP tool schema for name suggestions.
func NameSuggestTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        NameSuggestToolName,
		Description: "Suggests corrected character display names for an invalid name",
	}
}

// NameValidateHandler validates a name, localizing failures to the requested
// locale or defaultLocale.
func NameValidateHandler(defaultLocale string) mcp.ToolHandlerFor[NameValidateInput, NameValidateResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input NameValidateInput) (*mcp.CallToolResult, NameValidateResult, error) {
		_, span := startToolSpan(ctx, NameValidateToolName)
		defer span.End()

		outcome := name.Review(ComposeName(input.Name), resolveLocale(input.Locale, defaultLocale))
		span.SetAttributes(attribute.Bool("name.valid", outcome.Valid), attribute.String("name.reason", string(outcome.Reason)))
		return nil, NameValidateResult{
			Valid:   outcome.Valid,
			Reason:  string(outcome.Reason),
			Code:    codeString(outcome),
			Locale:  outcome.Locale,
			Message: outcome.Message,
		}, nil
	}
}

// NameSuggestHandler returns replacement candidates for a name. Valid names
// get no suggestions.
func NameSuggestHandler(defaultLocale string) mcp.ToolHandlerFor[NameSuggestInput, NameSuggestResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input NameSuggestInput) (*mcp.CallToolResult, NameSuggestResult, error) {
		_, span := startToolSpan(ctx, NameSuggestToolName)
		defer span.End()

		outcome := name.Review(ComposeName(input.Name), resolveLocale(input.Locale, defaultLocale))
		suggestions := outcome.Suggestions
		if suggestions == nil {
			suggestions = []string{}
		}
		span.SetAttributes(attribute.Bool("name.valid", outcome.Valid), attribute.Int("name.suggestions", len(suggestions)))
		return nil, NameSuggestResult{
			Valid:       outcome.Valid,
			Reason:      string(outcome.Reason),
			Locale:      outcome.Locale,
			Message:     outcome.Message,
			Sanitized:   outcome.Sanitized,
			Suggestions: suggestions,
		}, nil
	}
}

// ComposeName applies NFC so a name typed with combining marks (е + U+0308)
// is reviewed as the precomposed letter (ё) it displays as. The name package
// itself works on runes exactly as given.
func ComposeName(raw string) string {
	return norm.NFC.String(raw)
}

func resolveLocale(requested string, fallback string) string {
	if requested = strings.TrimSpace(requested); requested != "" {
		return requested
	}
	return fallback
}

func codeString(outcome name.Outcome) string {
	if outcome.Valid {
		return ""
	}
	return string(outcome.Code)
}
