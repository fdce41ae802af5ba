// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package parser

import (
	"context"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

// Package-level tracer and meter for bridge operations.
var (
	tracer = otel.Tracer("aleutian.pgbridge")
	meter  = otel.Meter("aleutian.pgbridge")
)

// Metrics for bridge operations.
var (
	opLatency metric.Float64Histogram
	opTotal   metric.Int64Counter
	opErrors  metric.Int64Counter

	metricsOnce sync.Once
	metricsErr  error
)

// initMetrics initializes the metrics. Safe to call multiple times.
func initMetrics() error {
	metricsOnce.Do(func() {
		var err error

		opLatency, err = meter.Float64Histogram(
			"pgbridge_op_duration_seconds",
			metric.WithDescription("Duration of bridge operations"),
			metric.WithUnit("s"),
		)
		if err != nil {
			metricsErr = err
			return
		}

		opTotal, err = meter.Int64Counter(
			"pgbridge_op_total",
			metric.WithDescription("Total number of bridge operations"),
		)
		if err != nil {
			metricsErr = err
			return
		}

		opErrors, err = meter.Int64Counter(
			"pgbridge_op_errors_total",
			metric.WithDescription("Total number of failed bridge operations"),
		)
		if err != nil {
			metricsErr = err
			return
		}
	})
	return metricsErr
}

func recordOpMetrics(ctx context.Context, op string, attrs []attribute.KeyValue, duration time.Duration, opErr error) {
	if err := initMetrics(); err != nil {
		return // Silently skip if metrics init failed
	}

	attrs = append(attrs, attribute.String("operation", op), attribute.Bool("success", opErr == nil))
	set := metric.WithAttributes(attrs...)

	opLatency.Record(ctx, duration.Seconds(), set)
	opTotal.Add(ctx, 1, set)
	if opErr != nil {
		opErrors.Add(ctx, 1, metric.WithAttributes(attribute.String("operation", op)))
	}
}

// startOpSpan creates a span for one bridge operation.
//
// Parameters:
//   - ctx: Parent context
//   - op: Operation name ("parse", "deparse", "scan", "fingerprint")
//   - inputSize: Bytes of SQL for text operations, statement count for Deparse
//
// Returns:
//   - ctx: Context with span
//   - span: The created span (caller must call span.End())
func startOpSpan(ctx context.Context, op string, inputSize int) (context.Context, trace.Span) {
	return tracer.Start(ctx, "Parser."+op,
		trace.WithAttributes(
			attribute.String("pgbridge.operation", op),
			attribute.Int("pgbridge.input_size", inputSize),
		),
	)
}

// endOpSpan records the outcome on a span and ends it.
func endOpSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}

// recordParseMetrics records metrics for a parse operation.
//
// Parameters:
//   - ctx: Context for metric recording
//   - reader: Which tree reader ran ("iterative" or "recursive")
//   - duration: How long the parse took
//   - err: The operation error, nil on success
func recordParseMetrics(ctx context.Context, reader string, duration time.Duration, err error) {
	recordOpMetrics(ctx, "parse", []attribute.KeyValue{attribute.String("reader", reader)}, duration, err)
}

// recordDeparseMetrics records metrics for a deparse operation.
func recordDeparseMetrics(ctx context.Context, duration time.Duration, err error) {
	recordOpMetrics(ctx, "deparse", nil, duration, err)
}

// recordScanMetrics records metrics for a scan operation.
func recordScanMetrics(ctx context.Context, duration time.Duration, err error) {
	recordOpMetrics(ctx, "scan", nil, duration, err)
}

// recordFingerprintMetrics records metrics for a fingerprint operation.
func recordFingerprintMetrics(ctx context.Context, duration time.Duration, err error) {
	recordOpMetrics(ctx, "fingerprint", nil, duration, err)
}
