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
#cgo LDFLAGS: ${SRCDIR}/../../libpg_query/libpg_query.a
#include <stdlib.h>
#include "pg_query_raw.h"
*/
import "C"

import (
	"strings"
	"unsafe"
)

// treeVersion is the PostgreSQL version the linked parser implements.
// It is reported in every ParseResult so callers can detect a library
// swap that changes tree shapes.
const treeVersion = int32(C.PG_VERSION_NUM)

// goString converts a C string field to Go. A null pointer reads as
// the empty string; the readers never distinguish the two.
func goString(s *C.char) string {
	if s == nil {
		return ""
	}
	return C.GoString(s)
}

// charFlag converts a single-character C code field ('p', 'a', ...) to
// a one-character Go string. The zero byte reads as "".
func charFlag(c C.char) string {
	if c == 0 {
		return ""
	}
	return string(byte(c))
}

// flagChar is the writer-side inverse of charFlag.
func flagChar(s string) C.char {
	if s == "" {
		return 0
	}
	return C.char(s[0])
}

func listLen(l *C.List) int {
	if l == nil {
		return 0
	}
	return int(l.length)
}

// listItem returns the pointer datum of list cell i. List cells are a
// C union; the pointer member is the first and widest one.
func listItem(l *C.List, i int) unsafe.Pointer {
	cell := unsafe.Pointer(uintptr(unsafe.Pointer(l.elements)) + uintptr(i)*C.sizeof_ListCell)
	return *(*unsafe.Pointer)(cell)
}

func nodeTag(p unsafe.Pointer) C.NodeTag {
	return (*C.Node)(p)._type
}

// cError converts a PgQueryError into the package error type, tagged
// with the given operation sentinel.
func cError(op error, cerr *C.PgQueryError) *Error {
	return &Error{
		Op:        op,
		Message:   goString(cerr.message),
		CursorPos: int32(cerr.cursorpos),
	}
}

// checkSource rejects input that cannot be represented as a C string.
// This runs before any call into the C boundary.
func checkSource(sql string) *Error {
	if strings.IndexByte(sql, 0) >= 0 {
		return invalidSourceErr("source text contains a NUL byte")
	}
	return nil
}
