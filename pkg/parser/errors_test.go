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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestError_Message(t *testing.T) {
	t.Run("with cursor position", func(t *testing.T) {
		err := &Error{Op: ErrParse, Message: `syntax error at or near "FROM"`, CursorPos: 8}
		assert.Equal(t, `parse failed: syntax error at or near "FROM" (at or near position 8)`, err.Error())
	})

	t.Run("without cursor position", func(t *testing.T) {
		err := &Error{Op: ErrDeparse, Message: "cannot deparse"}
		assert.Equal(t, "deparse failed: cannot deparse", err.Error())
	})
}

func TestError_Unwrap(t *testing.T) {
	sentinels := []error{ErrParse, ErrScan, ErrDeparse, ErrFingerprint, ErrInvalidSource}
	for _, op := range sentinels {
		err := &Error{Op: op, Message: "m"}
		assert.True(t, errors.Is(err, op), "errors.Is failed for %v", op)
		for _, other := range sentinels {
			if other != op {
				assert.False(t, errors.Is(err, other), "%v matched %v", op, other)
			}
		}
	}
}

func TestError_As(t *testing.T) {
	var wrapped error = &Error{Op: ErrScan, Message: "m", CursorPos: 3}
	var perr *Error
	require.True(t, errors.As(wrapped, &perr))
	assert.Equal(t, int32(3), perr.CursorPos)
}

func TestCheckSource(t *testing.T) {
	assert.Nil(t, checkSource("SELECT 1"))
	assert.Nil(t, checkSource(""))

	err := checkSource("SELECT \x00 1")
	require.NotNil(t, err)
	assert.True(t, errors.Is(err, ErrInvalidSource))
}
