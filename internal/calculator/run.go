package calculator

import (
	"context"
	"fmt"
	"time"

	"simplecalc/internal/observability"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// Run is Evaluate wrapped in a span, metrics and a log line. Hosts other than
// the HTTP API (CLI, MCP) call it; source names the host in telemetry.
func Run(ctx context.Context, source string, op Operator, one, two string) Result {
	ctx, span := tracer.Start(ctx, fmt.Sprintf("calculator.%s", op),
		trace.WithAttributes(
			attribute.String("calculator.operation", op.String()),
			attribute.String("calculator.source", source),
			attribute.String("calculator.operand.one", one),
			attribute.String("calculator.operand.two", two),
		),
	)
	defer span.End()

	logger := observability.LoggerWithTrace(ctx)

	start := time.Now()
	res := Evaluate(op, one, two)
	elapsed := float64(time.Since(start).Microseconds()) / 1000.0 // ms

	if !res.OK() {
		span.RecordError(res.Err)
		span.SetStatus(codes.Error, ComputationError)
		span.SetAttributes(attribute.String("error.kind", res.Kind().String()))
		recordFailure(ctx, op.String(), res.Kind())

		logger.Warn("calculator operation failed",
			zap.String("source", source),
			zap.String("operation", op.String()),
			zap.String("kind", res.Kind().String()),
			zap.Error(res.Err),
		)
		return res
	}

	recordSuccess(ctx, op.String(), res.Value, elapsed)
	span.SetAttributes(attribute.String("calculator.result", res.Text))
	span.SetStatus(codes.Ok, "")

	logger.Info("calculator operation completed",
		zap.String("source", source),
		zap.String("operation", op.String()),
		zap.String("result", res.Text),
		zap.Float64("duration_ms", elapsed),
	)

	return res
}
