package calculator

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"simplecalc/internal/handlers"
	"simplecalc/internal/observability"

	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// tracer is the calculator's dedicated OpenTelemetry tracer.
var tracer = otel.Tracer("calculator")

// GetOperators handles GET /calculator/operators
func GetOperators(w http.ResponseWriter, r *http.Request) {
	handlers.WriteJSON(w, http.StatusOK, OperatorsResponse{Operators: ListOperators()})
}

// Calculate handles POST /calculator/{operator}. The operator path segment
// accepts anything ParseOperator does; both operands arrive as raw text.
func Calculate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := observability.LoggerWithTrace(ctx)
	requestID := observability.RequestIDFromContext(ctx)
	opName := chi.URLParam(r, "operator")

	ctx, span := tracer.Start(ctx, "calculator.calculate",
		trace.WithAttributes(
			attribute.String("request.id", requestID),
		),
	)
	defer span.End()

	op, err := ParseOperator(opName)
	if err != nil {
		observability.RecordError(ctx, span, logger, errorCounter, "unknown", KindOf(err).String(), ComputationError, err, http.StatusBadRequest, w)
		return
	}
	opName = op.String()
	span.SetName(fmt.Sprintf("calculator.%s", opName))
	span.SetAttributes(attribute.String("calculator.operation", opName))

	var req CalcRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		observability.RecordError(ctx, span, logger, errorCounter, opName, "", "invalid request body", err, http.StatusBadRequest, w)
		return
	}

	span.SetAttributes(
		attribute.String("calculator.operand.one", req.OperandOne),
		attribute.String("calculator.operand.two", req.OperandTwo),
	)

	start := time.Now()
	res := Evaluate(op, req.OperandOne, req.OperandTwo)
	elapsed := float64(time.Since(start).Microseconds()) / 1000.0 // ms

	if !res.OK() {
		observability.RecordError(ctx, span, logger, errorCounter, opName, res.Kind().String(), ComputationError, res.Err, http.StatusBadRequest, w)
		return
	}

	recordSuccess(ctx, opName, res.Value, elapsed)

	span.AddEvent("computation.complete", trace.WithAttributes(
		attribute.Float64("result", res.Value),
		attribute.Float64("duration_ms", elapsed),
	))
	span.SetAttributes(attribute.String("calculator.result", res.Text))
	span.SetStatus(codes.Ok, "")

	logger.Info("calculator operation completed",
		zap.String("operation", opName),
		zap.String("operand_one", req.OperandOne),
		zap.String("operand_two", req.OperandTwo),
		zap.String("result", res.Text),
		zap.String("request_id", requestID),
		zap.Float64("duration_ms", elapsed),
	)

	handlers.WriteJSON(w, http.StatusOK, CalcResponse{
		Operation:  opName,
		OperandOne: req.OperandOne,
		OperandTwo: req.OperandTwo,
		Value:      res.Value,
		Result:     res.Text,
	})
}
