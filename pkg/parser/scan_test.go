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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScan_Basic(t *testing.T) {
	result, err := Scan(context.Background(), "SELECT * FROM users")
	require.NoError(t, err)
	require.NotEmpty(t, result.Tokens)

	// First token is the SELECT keyword spanning bytes [0, 6).
	first := result.Tokens[0]
	assert.Equal(t, uint32(0), first.Start)
	assert.Equal(t, uint32(6), first.End)
	assert.Greater(t, first.KeywordKind, int32(0), "SELECT is a keyword")
}

func TestScan_TokenBoundaries(t *testing.T) {
	sql := "SELECT 1"
	result, err := Scan(context.Background(), sql)
	require.NoError(t, err)
	require.Len(t, result.Tokens, 2)

	assert.Equal(t, "SELECT", sql[result.Tokens[0].Start:result.Tokens[0].End])
	assert.Equal(t, "1", sql[result.Tokens[1].Start:result.Tokens[1].End])
	assert.Equal(t, int32(0), result.Tokens[1].KeywordKind, "a literal is not a keyword")
}

func TestScan_SpansCoverNoWhitespace(t *testing.T) {
	sql := "SELECT   id ,  name\nFROM users ;"
	result, err := Scan(context.Background(), sql)
	require.NoError(t, err)

	var prevEnd uint32
	for i, tok := range result.Tokens {
		require.Less(t, tok.Start, tok.End, "token %d has an empty span", i)
		require.GreaterOrEqual(t, tok.Start, prevEnd, "token %d overlaps its predecessor", i)
		require.LessOrEqual(t, int(tok.End), len(sql))
		prevEnd = tok.End
	}
}

func TestScan_SemicolonSpan(t *testing.T) {
	sql := "SELECT 1;"
	result, err := Scan(context.Background(), sql)
	require.NoError(t, err)
	require.Len(t, result.Tokens, 3)

	// The statement terminator is an ordinary one-byte token.
	last := result.Tokens[2]
	assert.Equal(t, uint32(8), last.Start)
	assert.Equal(t, uint32(9), last.End)
	assert.Equal(t, ";", sql[last.Start:last.End])
	assert.Equal(t, int32(0), last.KeywordKind)
}

func TestScan_CommentSpans(t *testing.T) {
	// A comment scans as its own token and is never folded into the
	// span of the token before it.
	sql := "SELECT /* c */ 1"
	result, err := Scan(context.Background(), sql)
	require.NoError(t, err)
	require.Len(t, result.Tokens, 3)

	assert.Equal(t, "SELECT", sql[result.Tokens[0].Start:result.Tokens[0].End])
	assert.Greater(t, result.Tokens[0].KeywordKind, int32(0), "SELECT stays a keyword next to a comment")
	assert.Equal(t, "/* c */", sql[result.Tokens[1].Start:result.Tokens[1].End])
	assert.Equal(t, "1", sql[result.Tokens[2].Start:result.Tokens[2].End])

	sql = "SELECT 1 -- trailing"
	result, err = Scan(context.Background(), sql)
	require.NoError(t, err)
	require.Len(t, result.Tokens, 3)
	assert.Equal(t, "1", sql[result.Tokens[1].Start:result.Tokens[1].End])
	assert.Equal(t, "-- trailing", sql[result.Tokens[2].Start:result.Tokens[2].End])
}

func TestScan_Empty(t *testing.T) {
	result, err := Scan(context.Background(), "")
	require.NoError(t, err)
	assert.Empty(t, result.Tokens)
	assert.GreaterOrEqual(t, result.Version, int32(170000))
}

// Text that fails to parse still scans as long as every token lexes.
func TestScan_UnparsableButLexable(t *testing.T) {
	result, err := Scan(context.Background(), "SELECT FROM WHERE")
	require.NoError(t, err)
	assert.Len(t, result.Tokens, 3)
}

func TestScan_LexError(t *testing.T) {
	// An unterminated quoted string does not lex.
	_, err := Scan(context.Background(), "SELECT 'oops")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrScan))
}

func TestScan_EmbeddedNul(t *testing.T) {
	_, err := Scan(context.Background(), "SELECT \x00")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidSource))
}

func TestScan_QuotedIdentifierKeyword(t *testing.T) {
	// Quoting suppresses keyword classification.
	result, err := Scan(context.Background(), `SELECT "select" FROM t`)
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(result.Tokens), 4)
	assert.Greater(t, result.Tokens[0].KeywordKind, int32(0))
	assert.Equal(t, int32(0), result.Tokens[1].KeywordKind)
}
