package domain

import (
	"context"

	"github.com/louisbranch/charnorm/internal/character/fields"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"go.opentelemetry.io/otel/attribute"
)

// FieldsExtractToolName is the MCP name of the field extraction tool.
const FieldsExtractToolName = "character_fields_extract"

// FieldsExtractInput represents the MCP tool input for field extraction.
type FieldsExtractInput struct {
	Prompt string `json:"prompt" jsonschema:"translated English character prompt"`
}

// FieldsExtractResult represents the MCP tool output for field extraction.
type FieldsExtractResult struct {
	Fields map[string]string `json:"fields" jsonschema:"extracted field content keyed by canonical field name"`
	Order  []string          `json:"order" jsonschema:"found field names in canonical processing order"`
}

// FieldsExtractTool defines the MCP tool schema for field extraction.
func FieldsExtractTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        FieldsExtractToolName,
		Description: "Extracts structured character fields (personality, situation, appearance, location, ...) from a prompt",
	}
}

// FieldsExtractHandler extracts fields with registry. A nil registry uses the
// default header table.
func FieldsExtractHandler(registry *fields.Registry) mcp.ToolHandlerFor[FieldsExtractInput, FieldsExtractResult] {
	if registry == nil {
		registry = fields.Default()
	}
	return func(ctx context.Context, _ *mcp.CallToolRequest, input FieldsExtractInput) (*mcp.CallToolResult, FieldsExtractResult, error) {
		_, span := startToolSpan(ctx, FieldsExtractToolName, attribute.Int("prompt.bytes", len(input.Prompt)))
		defer span.End()

		found := registry.Extract(input.Prompt)
		result := FieldsExtractResult{
			Fields: make(map[string]string, len(found)),
			Order:  []string{},
		}
		for _, field := range registry.Ordered(found) {
			result.Fields[string(field)] = found[field]
			result.Order = append(result.Order, string(field))
		}
		span.SetAttributes(attribute.Int("fields.found", len(result.Order)))
		return nil, result, nil
	}
}
