package domain

import (
	"context"

	platformotel "github.com/louisbranch/charnorm/internal/platform/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/louisbranch/charnorm/internal/services/mcp/domain"

func startToolSpan(ctx context.Context, tool string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	attrs = append([]attribute.KeyValue{attribute.String("mcp.tool", tool)}, attrs...)
	return platformotel.Tracer(tracerName).Start(ctx, "mcp.tool."+tool, trace.WithAttributes(attrs...))
}
