package gateway

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/daniilsolovey/editorial/internal/fault"
	"github.com/daniilsolovey/editorial/internal/metrics"
)

type logger[Req, Resp any] struct {
	op  Operation
	log *slog.Logger
}

// Logger records a start observation before the chain runs and a success observation
// after it returns without error. Failures are counted but never logged as success.
func Logger[Req, Resp any](op Operation, log *slog.Logger) Middleware[Req, Resp] {
	if log == nil {
		log = slog.Default()
	}
	return &logger[Req, Resp]{op: op, log: log}
}

func (l *logger[Req, Resp]) Handle(ctx context.Context, req Req, next Handler[Req, Resp]) (Resp, error) {
	attrs := []any{
		"context", l.op.Context,
		"entity", l.op.Entity,
		"operation", l.op.Name,
	}

	start := time.Now()
	l.log.InfoContext(ctx, "gateway request started", append(attrs, "request", req)...)

	resp, err := next(ctx, req)
	duration := time.Since(start)
	if err != nil {
		metrics.ObserveOperation(l.op.String(), fault.KindOf(err).String(), duration)
		return resp, err
	}

	metrics.ObserveOperation(l.op.String(), metrics.ResultSuccess, duration)
	l.log.InfoContext(ctx, "gateway request succeeded", append(attrs, "response", resp, "duration", duration)...)
	return resp, nil
}

// Error is the single failure shape returned by a gateway.
type Error struct {
	Op   Operation
	Kind fault.Kind
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

type errorHandler[Req, Resp any] struct {
	op Operation
}

// ErrorHandler normalizes every failure of the remaining chain, panics included, to *Error.
func ErrorHandler[Req, Resp any](op Operation) Middleware[Req, Resp] {
	return &errorHandler[Req, Resp]{op: op}
}

func (h *errorHandler[Req, Resp]) Handle(ctx context.Context, req Req, next Handler[Req, Resp]) (resp Resp, err error) {
	defer func() {
		if r := recover(); r != nil {
			var zero Resp
			resp, err = zero, &Error{Op: h.op, Kind: fault.Infrastructure, Err: fmt.Errorf("panic: %v", r)}
		}
	}()

	resp, err = next(ctx, req)
	if err != nil {
		var zero Resp
		return zero, &Error{Op: h.op, Kind: fault.KindOf(err), Err: err}
	}
	return resp, nil
}

type validationStage[Req, Resp any] struct{}

// Validation applies the request's declarative rules before the processor runs.
// Requests that do not implement validation.Validatable pass through.
func Validation[Req, Resp any]() Middleware[Req, Resp] {
	return validationStage[Req, Resp]{}
}

func (validationStage[Req, Resp]) Handle(ctx context.Context, req Req, next Handler[Req, Resp]) (Resp, error) {
	if v, ok := any(req).(validation.Validatable); ok {
		if err := v.Validate(); err != nil {
			var zero Resp
			return zero, fault.Invalid(err)
		}
	}
	return next(ctx, req)
}
