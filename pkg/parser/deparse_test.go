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
	"math"
	"testing"

	"github.com/AleutianAI/pgbridge/pkg/ast"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Inputs already in the deparser's canonical form come back verbatim.
func TestDeparse_CanonicalIdentity(t *testing.T) {
	ctx := context.Background()
	for _, sql := range []string{
		"SELECT 1",
		"SELECT * FROM users",
		"INSERT INTO users (name) VALUES ('test')",
		"UPDATE users SET name = 'bob' WHERE id = 1",
		"DELETE FROM users WHERE id = 1",
	} {
		t.Run(sql, func(t *testing.T) {
			result, err := Parse(ctx, sql)
			require.NoError(t, err)

			out, err := Deparse(ctx, result)
			require.NoError(t, err)
			assert.Equal(t, sql, out)
		})
	}
}

// TestDeparse_RoundTrip reparses the deparser's output and compares
// fingerprints. Fingerprints rather than tree equality because
// reformatting shifts every location field.
func TestDeparse_RoundTrip(t *testing.T) {
	ctx := context.Background()
	for _, sql := range sqlCorpus {
		t.Run(sql, func(t *testing.T) {
			result, err := Parse(ctx, sql)
			require.NoError(t, err)

			out, err := Deparse(ctx, result)
			require.NoError(t, err)

			_, err = Parse(ctx, out)
			require.NoError(t, err, "deparsed SQL does not reparse: %s", out)

			origFP, err := Fingerprint(ctx, sql)
			require.NoError(t, err)
			outFP, err := Fingerprint(ctx, out)
			require.NoError(t, err)
			assert.Equal(t, origFP.Hex, outFP.Hex,
				"fingerprint changed across round trip: %s", out)
		})
	}
}

func TestDeparse_RecursiveReaderTree(t *testing.T) {
	ctx := context.Background()
	result, err := ParseRecursive(ctx, "SELECT * FROM users")
	require.NoError(t, err)

	out, err := Deparse(ctx, result)
	require.NoError(t, err)
	assert.Equal(t, "SELECT * FROM users", out)
}

func TestDeparse_MultipleStatements(t *testing.T) {
	ctx := context.Background()
	result, err := Parse(ctx, "SELECT 1; SELECT 2")
	require.NoError(t, err)

	out, err := Deparse(ctx, result)
	require.NoError(t, err)
	assert.Equal(t, "SELECT 1; SELECT 2", out)
}

func TestDeparse_EmptyResult(t *testing.T) {
	ctx := context.Background()

	out, err := Deparse(ctx, &ParseResult{Version: treeVersion})
	require.NoError(t, err)
	assert.Equal(t, "", out)

	out, err = Deparse(ctx, nil)
	require.NoError(t, err)
	assert.Equal(t, "", out)
}

func TestDeparse_OtherNodeFails(t *testing.T) {
	result := &ParseResult{
		Version: treeVersion,
		Stmts: []ast.RawStmt{
			{Stmt: &ast.Other{Raw: "{LOADSTMT :filename pg_stat_statements}"}},
		},
	}
	_, err := Deparse(context.Background(), result)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrDeparse))
}

// An integer constant only a hand-built tree can hold fails rather
// than truncating to a different literal.
func TestDeparse_IntegerOverflowFails(t *testing.T) {
	ctx := context.Background()
	result, err := Parse(ctx, "SELECT 1")
	require.NoError(t, err)

	sel := result.Stmts[0].Stmt.(*ast.SelectStmt)
	konst := sel.TargetList[0].(*ast.ResTarget).Val.(*ast.AConst)
	konst.Val.(*ast.Integer).Ival = math.MaxInt32 + 1

	_, err = Deparse(ctx, result)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrDeparse))
	assert.Contains(t, err.Error(), "32-bit")
}

func TestDeparse_ContextCanceled(t *testing.T) {
	result, err := Parse(context.Background(), "SELECT 1")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = Deparse(ctx, result)
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
}

// A tree modified between parse and deparse renders the modified form.
func TestDeparse_ModifiedTree(t *testing.T) {
	ctx := context.Background()
	result, err := Parse(ctx, "SELECT * FROM users")
	require.NoError(t, err)

	sel := result.Stmts[0].Stmt.(*ast.SelectStmt)
	sel.FromClause[0].(*ast.RangeVar).Relname = "accounts"

	out, err := Deparse(ctx, result)
	require.NoError(t, err)
	assert.Equal(t, "SELECT * FROM accounts", out)
}
