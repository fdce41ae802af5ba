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

// Fingerprint computes the normalized statement fingerprint of SQL
// text.
//
// Description:
//
//	Two statements that differ only in literal values, parameter
//	numbers, or insignificant syntax fingerprint to the same value,
//	which makes the fingerprint a stable query-workload identity.
//	Empty and comment-only input fingerprint successfully to the
//	empty-statement value.
//
// Inputs:
//
//	ctx - Context for cancellation. Checked before entering C.
//	sql - SQL source text. Must not contain a NUL byte.
//
// Outputs:
//
//	FingerprintResult - The 64-bit value and its 16-digit hex form.
//	error             - *Error tagged ErrFingerprint (including when
//	                    the text does not parse) or ErrInvalidSource.
func (p *Parser) Fingerprint(ctx context.Context, sql string) (FingerprintResult, error) {
	if err := ctx.Err(); err != nil {
		return FingerprintResult{}, err
	}
	ctx, span := startOpSpan(ctx, "fingerprint", len(sql))
	start := time.Now()
	result, err := p.fingerprint(sql)
	recordFingerprintMetrics(ctx, time.Since(start), err)
	endOpSpan(span, err)
	if err != nil {
		p.options.Logger.DebugContext(ctx, "fingerprint failed",
			slog.String("error", err.Error()))
		return FingerprintResult{}, err
	}
	return result, nil
}

func (p *Parser) fingerprint(sql string) (FingerprintResult, error) {
	if err := checkSource(sql); err != nil {
		return FingerprintResult{}, err
	}
	csql := C.CString(sql)
	defer C.free(unsafe.Pointer(csql))

	parsed := C.pg_query_parse_raw(csql)
	defer C.pg_query_free_raw_parse_result(parsed)
	if parsed.error != nil {
		return FingerprintResult{}, cError(ErrFingerprint, parsed.error)
	}

	res := C.pg_query_fingerprint_raw(parsed)
	defer C.pg_query_free_fingerprint_result(res)
	if res.error != nil {
		return FingerprintResult{}, cError(ErrFingerprint, res.error)
	}
	return FingerprintResult{
		Value: uint64(res.fingerprint),
		Hex:   goString(res.fingerprint_str),
	}, nil
}
