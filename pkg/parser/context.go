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
#include "pg_query_raw.h"
*/
import "C"

import (
	"runtime"
	"unsafe"
)

// deparseContext scopes a PostgreSQL memory arena. All node
// construction between enter and exit allocates from the arena, and
// exit releases everything at once. The arena is tracked per OS
// thread on the C side and does not nest, so the goroutine stays
// pinned to its thread for the context's lifetime.
type deparseContext struct {
	ctx unsafe.Pointer
}

func enterDeparseContext() *deparseContext {
	runtime.LockOSThread()
	return &deparseContext{ctx: C.pg_query_deparse_enter_context()}
}

func (dc *deparseContext) exit() {
	C.pg_query_deparse_exit_context(dc.ctx)
	runtime.UnlockOSThread()
}
