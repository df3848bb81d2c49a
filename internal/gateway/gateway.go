// Package gateway runs one use case as an ordered chain of stages.
//
// A chain is built once per operation: zero or more wrapping Middleware
// followed by exactly one terminal Processor.
package gateway

import (
	"context"
	"log/slog"
)

// Operation names the use case a gateway executes.
type Operation struct {
	Context string
	Entity  string
	Name    string
}

func (o Operation) String() string {
	return o.Context + "." + o.Entity + "." + o.Name
}

// Handler invokes the remainder of a chain.
type Handler[Req, Resp any] func(ctx context.Context, req Req) (Resp, error)

// Middleware is a wrapping stage.
type Middleware[Req, Resp any] interface {
	Handle(ctx context.Context, req Req, next Handler[Req, Resp]) (Resp, error)
}

// Processor is the terminal stage and the only one with use-case knowledge.
type Processor[Req, Resp any] interface {
	Process(ctx context.Context, req Req) (Resp, error)
}

// ProcessorFunc adapts a function to Processor.
type ProcessorFunc[Req, Resp any] func(ctx context.Context, req Req) (Resp, error)

func (f ProcessorFunc[Req, Resp]) Process(ctx context.Context, req Req) (Resp, error) {
	return f(ctx, req)
}

// MiddlewareFunc adapts a function to Middleware.
type MiddlewareFunc[Req, Resp any] func(ctx context.Context, req Req, next Handler[Req, Resp]) (Resp, error)

func (f MiddlewareFunc[Req, Resp]) Handle(ctx context.Context, req Req, next Handler[Req, Resp]) (Resp, error) {
	return f(ctx, req, next)
}

type Gateway[Req, Resp any] struct {
	op    Operation
	chain Handler[Req, Resp]
}

// Compose builds a gateway whose middlewares run in the given order before the processor.
func Compose[Req, Resp any](op Operation, processor Processor[Req, Resp], middlewares ...Middleware[Req, Resp]) *Gateway[Req, Resp] {
	chain := Handler[Req, Resp](processor.Process)
	for i := len(middlewares) - 1; i >= 0; i-- {
		mw, next := middlewares[i], chain
		chain = func(ctx context.Context, req Req) (Resp, error) {
			return mw.Handle(ctx, req, next)
		}
	}
	return &Gateway[Req, Resp]{op: op, chain: chain}
}

// New builds the standard chain: Logger, ErrorHandler, Validation, Processor.
func New[Req, Resp any](op Operation, logger *slog.Logger, processor Processor[Req, Resp]) *Gateway[Req, Resp] {
	return Compose(op, processor,
		Logger[Req, Resp](op, logger),
		ErrorHandler[Req, Resp](op),
		Validation[Req, Resp](),
	)
}

func (g *Gateway[Req, Resp]) Operation() Operation { return g.op }

// Execute runs the request through the chain.
func (g *Gateway[Req, Resp]) Execute(ctx context.Context, req Req) (Resp, error) {
	return g.chain(ctx, req)
}
