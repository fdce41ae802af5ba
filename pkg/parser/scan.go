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
	"unsafe"
)

// Scan tokenizes SQL text without parsing it.
//
// Description:
//
//	Runs the PostgreSQL lexer over the source and returns every token
//	with its byte span. Whitespace produces no tokens; comments scan
//	as tokens of their own. End points one past the last byte of the
//	token itself, never at the start of the next one.
//
// Inputs:
//
//	ctx - Context for cancellation. Checked before entering C.
//	sql - SQL source text. Must not contain a NUL byte. Text that
//	      fails to parse still scans as long as it lexes.
//
// Outputs:
//
//	*ScanResult - Token stream in source order. Never nil on success.
//	error       - *Error tagged ErrScan or ErrInvalidSource.
func (p *Parser) Scan(ctx context.Context, sql string) (*ScanResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	ctx, span := startOpSpan(ctx, "scan", len(sql))
	start := time.Now()
	result, err := p.scan(sql)
	recordScanMetrics(ctx, time.Since(start), err)
	endOpSpan(span, err)
	if err != nil {
		p.options.Logger.DebugContext(ctx, "scan failed",
			slog.String("error", err.Error()))
		return nil, err
	}
	return result, nil
}

func (p *Parser) scan(sql string) (*ScanResult, error) {
	if err := checkSource(sql); err != nil {
		return nil, err
	}
	csql := C.CString(sql)
	defer C.free(unsafe.Pointer(csql))

	res := C.pg_query_scan_raw(csql)
	defer C.pg_query_free_raw_scan_result(res)
	if res.error != nil {
		return nil, cError(ErrScan, res.error)
	}

	n := int(res.n_tokens)
	tokens := make([]Token, 0, n)
	for _, t := range unsafe.Slice(res.tokens, n) {
		tokens = append(tokens, Token{
			Start:       uint32(t.start),
			End:         uint32(t.end),
			Kind:        int32(t.token),
			KeywordKind: int32(t.keyword_kind),
		})
	}
	return &ScanResult{Version: treeVersion, Tokens: tokens}, nil
}
