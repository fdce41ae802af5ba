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
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFingerprint_KnownValue(t *testing.T) {
	result, err := Fingerprint(context.Background(), "SELECT * FROM contacts WHERE name='Paul'")
	require.NoError(t, err)
	assert.Equal(t, "0e2581a461ece536", result.Hex)
	assert.Equal(t, fmt.Sprintf("%016x", result.Value), result.Hex)
}

func TestFingerprint_HexShape(t *testing.T) {
	result, err := Fingerprint(context.Background(), "SELECT * FROM users")
	require.NoError(t, err)
	assert.Len(t, result.Hex, 16)
	assert.Equal(t, fmt.Sprintf("%016x", result.Value), result.Hex)
}

// Literal values do not contribute to the fingerprint.
func TestFingerprint_NormalizesValues(t *testing.T) {
	ctx := context.Background()

	fp1, err := Fingerprint(ctx, "SELECT * FROM users WHERE id = 1")
	require.NoError(t, err)
	fp2, err := Fingerprint(ctx, "SELECT * FROM users WHERE id = 999")
	require.NoError(t, err)

	assert.Equal(t, fp1.Value, fp2.Value)
	assert.Equal(t, fp1.Hex, fp2.Hex)
}

func TestFingerprint_DistinguishesStructure(t *testing.T) {
	ctx := context.Background()

	fp1, err := Fingerprint(ctx, "SELECT * FROM users")
	require.NoError(t, err)
	fp2, err := Fingerprint(ctx, "SELECT * FROM accounts")
	require.NoError(t, err)

	assert.NotEqual(t, fp1.Value, fp2.Value)
}

// Empty and comment-only input fingerprint successfully and equal each
// other: both parse to an empty statement list.
func TestFingerprint_EmptyAndCommentOnly(t *testing.T) {
	ctx := context.Background()

	empty, err := Fingerprint(ctx, "")
	require.NoError(t, err)
	comment, err := Fingerprint(ctx, "-- ping")
	require.NoError(t, err)

	assert.Equal(t, empty.Value, comment.Value)
	assert.Equal(t, empty.Hex, comment.Hex)
	assert.Len(t, empty.Hex, 16)
}

func TestFingerprint_InvalidSQL(t *testing.T) {
	_, err := Fingerprint(context.Background(), "NOT VALID SQL @#$")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrFingerprint))
}

func TestFingerprint_EmbeddedNul(t *testing.T) {
	_, err := Fingerprint(context.Background(), "SELECT \x00")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidSource))
}
