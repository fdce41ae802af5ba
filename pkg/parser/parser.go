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
	"log/slog"
	"time"

	"github.com/AleutianAI/pgbridge/pkg/logging"
)

// Parser is the entry point for all bridge operations.
//
// Description:
//
//	Parser wraps libpg_query's raw interface: Parse and ParseRecursive
//	read the C parse tree into pkg/ast types, Deparse renders a tree
//	back to SQL, Scan tokenizes, and Fingerprint computes the
//	normalized statement fingerprint.
//
// Thread Safety:
//
//	Parser is safe for concurrent use. Every operation works on
//	call-local C state; Deparse additionally pins its goroutine to an
//	OS thread for the lifetime of its arena context.
//
// Example:
//
//	p := parser.New()
//	result, err := p.Parse(ctx, "SELECT * FROM users")
//	if err != nil {
//	    return fmt.Errorf("parse: %w", err)
//	}
//	fmt.Println(result.Tables()) // [users]
type Parser struct {
	options Options
}

// Options configures Parser behavior.
type Options struct {
	// Logger receives structured debug/warn output. Default: the
	// process-wide logging.Default() logger.
	Logger *slog.Logger

	// CaptureSource retains the original SQL text on each ParseResult.
	// Useful for error reporting, at the cost of holding a second copy
	// of the source. Default: false.
	CaptureSource bool

	// StackChunk is the initial capacity, in entries, of the iterative
	// reader's work and result stacks. Default: 1024.
	StackChunk int
}

// DefaultOptions returns the default options.
func DefaultOptions() Options {
	return Options{
		Logger:        logging.Default(),
		CaptureSource: false,
		StackChunk:    1024,
	}
}

// Option is a functional option for configuring Parser.
type Option func(*Options)

// WithLogger sets the structured logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}

// WithCaptureSource sets whether ParseResult retains the source text.
func WithCaptureSource(capture bool) Option {
	return func(o *Options) {
		o.CaptureSource = capture
	}
}

// WithStackChunk sets the iterative reader's initial stack capacity.
// Values below 1 fall back to the default.
func WithStackChunk(n int) Option {
	return func(o *Options) {
		if n > 0 {
			o.StackChunk = n
		}
	}
}

// New creates a Parser with the given options.
func New(opts ...Option) *Parser {
	options := DefaultOptions()
	for _, opt := range opts {
		opt(&options)
	}
	if options.Logger == nil {
		options.Logger = logging.Default()
	}
	return &Parser{options: options}
}

// Parse parses SQL text into an owned tree using the iterative reader.
//
// Description:
//
//	This is the primary parse path. It survives arbitrarily deep trees
//	because traversal state lives on heap-allocated stacks rather than
//	the goroutine stack. ParseRecursive produces the identical tree
//	and exists as the correctness reference.
//
// Inputs:
//
//	ctx - Context for cancellation. Checked before entering C; the C
//	      parser itself is not cancelable mid-call.
//	sql - SQL source text. Must not contain a NUL byte.
//
// Outputs:
//
//	*ParseResult - Parse tree and parser version. Never nil on success.
//	error        - *Error tagged ErrParse or ErrInvalidSource.
func (p *Parser) Parse(ctx context.Context, sql string) (*ParseResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	ctx, span := startOpSpan(ctx, "parse", len(sql))
	start := time.Now()
	result, err := p.parseIterative(sql)
	recordParseMetrics(ctx, "iterative", time.Since(start), err)
	endOpSpan(span, err)
	if err != nil {
		p.options.Logger.DebugContext(ctx, "parse failed",
			slog.String("reader", "iterative"),
			slog.String("error", err.Error()))
		return nil, err
	}
	if p.options.CaptureSource {
		result.Source = sql
	}
	return result, nil
}

// ParseRecursive parses SQL text using the recursive reader.
//
// The produced tree is identical to Parse for every decoded node kind.
// Node kinds outside the decoded set surface as ast.Other here, where
// the iterative reader treats them as fatal.
func (p *Parser) ParseRecursive(ctx context.Context, sql string) (*ParseResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	ctx, span := startOpSpan(ctx, "parse", len(sql))
	start := time.Now()
	result, err := p.parseRecursive(sql)
	recordParseMetrics(ctx, "recursive", time.Since(start), err)
	endOpSpan(span, err)
	if err != nil {
		p.options.Logger.DebugContext(ctx, "parse failed",
			slog.String("reader", "recursive"),
			slog.String("error", err.Error()))
		return nil, err
	}
	if p.options.CaptureSource {
		result.Source = sql
	}
	return result, nil
}

var defaultParser = New()

// Parse parses SQL with a default-configured Parser.
func Parse(ctx context.Context, sql string) (*ParseResult, error) {
	return defaultParser.Parse(ctx, sql)
}

// ParseRecursive parses SQL with a default-configured Parser using the
// recursive reader.
func ParseRecursive(ctx context.Context, sql string) (*ParseResult, error) {
	return defaultParser.ParseRecursive(ctx, sql)
}

// Deparse renders a tree with a default-configured Parser.
func Deparse(ctx context.Context, result *ParseResult) (string, error) {
	return defaultParser.Deparse(ctx, result)
}

// Scan tokenizes SQL with a default-configured Parser.
func Scan(ctx context.Context, sql string) (*ScanResult, error) {
	return defaultParser.Scan(ctx, sql)
}

// Fingerprint fingerprints SQL with a default-configured Parser.
func Fingerprint(ctx context.Context, sql string) (FingerprintResult, error) {
	return defaultParser.Fingerprint(ctx, sql)
}
