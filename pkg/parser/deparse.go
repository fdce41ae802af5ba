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

/*
#cgo CFLAGS: -I${SRCDIR}/../../libpg_query -I${SRCDIR}/../../libpg_query/src/postgres/include -I${SRCDIR}/../../libpg_query/src/include
#include <stdlib.h>
#include "pg_query_raw.h"
*/
import "C"

import (
	"context"
	"log/slog"
	"time"
)

// Deparse renders a parse tree back to SQL text.
//
// Description:
//
//	The tree is rebuilt as C node structs inside a scoped arena
//	context and handed to PostgreSQL's ruleutils-derived deparser.
//	Multiple statements join with "; ". The output is normalized SQL,
//	not the original source: comments, whitespace, and redundant
//	parentheses do not survive a parse/deparse round trip, but the
//	result parses back to a tree with the same fingerprint.
//
// Inputs:
//
//	ctx    - Context for cancellation. Checked before entering C.
//	result - Tree to render, usually from Parse. May have been
//	         modified in place between the calls.
//
// Outputs:
//
//	string - The rendered SQL. Empty when result holds no statements.
//	error  - *Error tagged ErrDeparse, including for trees that
//	         contain an ast.Other node.
func (p *Parser) Deparse(ctx context.Context, result *ParseResult) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if result == nil || len(result.Stmts) == 0 {
		return "", nil
	}
	ctx, span := startOpSpan(ctx, "deparse", len(result.Stmts))
	start := time.Now()
	sql, err := p.deparse(result)
	recordDeparseMetrics(ctx, time.Since(start), err)
	endOpSpan(span, err)
	if err != nil {
		p.options.Logger.DebugContext(ctx, "deparse failed",
			slog.String("error", err.Error()))
		return "", err
	}
	return sql, nil
}

func (p *Parser) deparse(result *ParseResult) (string, error) {
	dc := enterDeparseContext()
	defer dc.exit()

	w := &writer{}
	stmts := w.writeStmts(result.Stmts)
	if w.err != nil {
		return "", w.err
	}

	res := C.pg_query_deparse_nodes(stmts)
	defer C.pg_query_free_deparse_result(res)
	if res.error != nil {
		return "", cError(ErrDeparse, res.error)
	}
	return goString(res.query), nil
}
