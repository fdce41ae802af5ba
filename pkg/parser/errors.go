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
	"errors"
	"fmt"
)

// Sentinel errors for the operation that failed. Match with errors.Is.
var (
	// ErrParse indicates the C parser rejected the SQL text.
	ErrParse = errors.New("parse failed")

	// ErrScan indicates the C lexer rejected the SQL text.
	ErrScan = errors.New("scan failed")

	// ErrDeparse indicates the tree could not be rendered back to SQL,
	// either because the deparser rejected it or because it contains a
	// node kind the writer does not support.
	ErrDeparse = errors.New("deparse failed")

	// ErrFingerprint indicates fingerprinting the SQL text failed.
	ErrFingerprint = errors.New("fingerprint failed")

	// ErrInvalidSource indicates the input cannot cross the C boundary
	// at all, such as SQL text containing an embedded NUL byte.
	ErrInvalidSource = errors.New("invalid source text")
)

// Error is the concrete error returned by all public operations.
//
// Op is one of the sentinel errors above; errors.Is(err, parser.ErrParse)
// matches. Message carries the C library's message verbatim.
// CursorPos is the 1-based byte position reported by the parser, or 0
// when the library did not supply one.
type Error struct {
	Op        error
	Message   string
	CursorPos int32
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.CursorPos > 0 {
		return fmt.Sprintf("%s: %s (at or near position %d)", e.Op, e.Message, e.CursorPos)
	}
	return fmt.Sprintf("%s: %s", e.Op, e.Message)
}

// Unwrap exposes the operation sentinel for errors.Is.
func (e *Error) Unwrap() error {
	return e.Op
}

func invalidSourceErr(msg string) *Error {
	return &Error{Op: ErrInvalidSource, Message: msg}
}
