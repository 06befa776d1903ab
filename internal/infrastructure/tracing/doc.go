/*
Package tracing provides lightweight request tracing for the HTTP API.

Every request gets a span. Trace context arrives and leaves in the X-Trace-ID
and X-Span-ID headers; IDs are random UUIDs. Finished spans are buffered and
logged through zap by a collector goroutine.

# Usage

	tracer := tracing.New("mathsearch", logger.Logger)
	defer tracer.Close()
	router.Use(tracing.HTTPMiddleware(tracer))

	span, ctx := tracer.StartSpan(ctx, "solve")
	defer func() {
		span.Finish()
		tracer.Submit(span)
	}()
*/
package tracing
