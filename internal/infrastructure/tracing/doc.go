/*
Package tracing provides in-process request tracing.

# Overview

Each HTTP request gets a span; handlers open child spans around evaluation
and sampling. Completed spans are logged through zap from one collector
goroutine with a bounded buffer.

# Usage

	tracer := tracing.New("calculator", logger)
	defer tracer.Close()

	router.Use(tracing.HTTPMiddleware(tracer))

	err := tracer.Trace(ctx, "sample", func(ctx context.Context) error {
		points, err = eval.SampleContext(ctx, expression, unit)
		return err
	})

# Trace Format

Trace context travels in the X-Trace-ID and X-Span-ID headers. IDs are
random UUIDs.
*/
package tracing
