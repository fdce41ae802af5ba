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
	"strings"
	"testing"

	"github.com/AleutianAI/pgbridge/pkg/ast"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_BasicSelect(t *testing.T) {
	result, err := Parse(context.Background(), "SELECT * FROM users")
	require.NoError(t, err)
	require.NotNil(t, result)
	require.Len(t, result.Stmts, 1)

	sel, ok := result.Stmts[0].Stmt.(*ast.SelectStmt)
	require.True(t, ok, "expected *ast.SelectStmt, got %T", result.Stmts[0].Stmt)
	require.Len(t, sel.FromClause, 1)

	rv, ok := sel.FromClause[0].(*ast.RangeVar)
	require.True(t, ok)
	assert.Equal(t, "users", rv.Relname)

	assert.Equal(t, []string{"users"}, result.Tables())
	assert.Equal(t, []string{"SelectStmt"}, result.StatementTypes())
}

func TestParse_MultipleStatements(t *testing.T) {
	result, err := Parse(context.Background(), "SELECT 1; DELETE FROM t WHERE id = 2")
	require.NoError(t, err)
	require.Len(t, result.Stmts, 2)
	assert.Equal(t, []string{"SelectStmt", "DeleteStmt"}, result.StatementTypes())
}

func TestParse_EmptyInput(t *testing.T) {
	for _, sql := range []string{"", "   ", "-- just a comment"} {
		result, err := Parse(context.Background(), sql)
		require.NoError(t, err, "input %q", sql)
		assert.Empty(t, result.Stmts, "input %q", sql)
	}
}

func TestParse_Version(t *testing.T) {
	result, err := Parse(context.Background(), "SELECT 1")
	require.NoError(t, err)
	assert.GreaterOrEqual(t, result.Version, int32(170000))
	assert.Less(t, result.Version, int32(180000))
}

func TestParse_SyntaxError(t *testing.T) {
	_, err := Parse(context.Background(), "SELECT FROM WHERE")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrParse))

	var perr *Error
	require.True(t, errors.As(err, &perr))
	assert.NotEmpty(t, perr.Message)
	assert.Greater(t, perr.CursorPos, int32(0))
}

func TestParse_EmbeddedNul(t *testing.T) {
	_, err := Parse(context.Background(), "SELECT \x00 1")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidSource))
}

func TestParse_ContextCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Parse(ctx, "SELECT 1")
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestParse_CaptureSource(t *testing.T) {
	sql := "SELECT 1"

	plain, err := New().Parse(context.Background(), sql)
	require.NoError(t, err)
	assert.Empty(t, plain.Source)

	capturing, err := New(WithCaptureSource(true)).Parse(context.Background(), sql)
	require.NoError(t, err)
	assert.Equal(t, sql, capturing.Source)
}

func TestParse_StackChunkOption(t *testing.T) {
	p := New(WithStackChunk(16))
	result, err := p.Parse(context.Background(), "SELECT a, b, c FROM t WHERE a = 1 AND b = 2")
	require.NoError(t, err)
	require.Len(t, result.Stmts, 1)
}

// The iterative reader exists for this case: traversal depth bounded by
// memory, not the goroutine stack.
func TestParse_DeepNesting(t *testing.T) {
	depth := 10000
	sql := "SELECT " + strings.Repeat("NOT ", depth) + "true"

	result, err := Parse(context.Background(), sql)
	require.NoError(t, err)
	require.Len(t, result.Stmts, 1)

	// Walk down and count the BoolExpr chain.
	sel := result.Stmts[0].Stmt.(*ast.SelectStmt)
	require.Len(t, sel.TargetList, 1)
	node := sel.TargetList[0].(*ast.ResTarget).Val
	count := 0
	for {
		be, ok := node.(*ast.BoolExpr)
		if !ok {
			break
		}
		require.Equal(t, ast.BoolExprNot, be.Boolop)
		require.Len(t, be.Args, 1)
		node = be.Args[0]
		count++
	}
	assert.Equal(t, depth, count)
}

func TestParse_UnicodeRoundTripsThroughTree(t *testing.T) {
	result, err := Parse(context.Background(), `SELECT 'héllo wörld' FROM "таблица"`)
	require.NoError(t, err)
	require.Len(t, result.Stmts, 1)

	assert.Equal(t, []string{"таблица"}, result.Tables())

	sel := result.Stmts[0].Stmt.(*ast.SelectStmt)
	ac := sel.TargetList[0].(*ast.ResTarget).Val.(*ast.AConst)
	require.IsType(t, &ast.String{}, ac.Val)
	assert.Equal(t, "héllo wörld", ac.Val.(*ast.String).Sval)
}

func TestParseResult_Tables(t *testing.T) {
	t.Run("qualified and deduplicated", func(t *testing.T) {
		result, err := Parse(context.Background(),
			"SELECT * FROM public.users u JOIN orders o ON o.user_id = u.id JOIN orders o2 ON o2.id = o.id")
		require.NoError(t, err)
		assert.Equal(t, []string{"orders", "public.users"}, result.Tables())
	})

	t.Run("cte names excluded", func(t *testing.T) {
		result, err := Parse(context.Background(),
			"WITH recent AS (SELECT * FROM events) SELECT * FROM recent JOIN users ON true")
		require.NoError(t, err)
		assert.Equal(t, []string{"events", "users"}, result.Tables())
	})
}

func TestParseResult_Functions(t *testing.T) {
	result, err := Parse(context.Background(),
		"SELECT count(*), pg_catalog.lower(name), count(id) FROM users")
	require.NoError(t, err)
	assert.Equal(t, []string{"count", "pg_catalog.lower"}, result.Functions())
}

// Enum fields carry a zero Undefined sentinel; C values arrive
// shifted up by one. A plain SELECT therefore reads SetOpNone, never
// the zero value.
func TestParse_EnumZeroSentinel(t *testing.T) {
	ctx := context.Background()

	t.Run("set operation", func(t *testing.T) {
		plain, err := Parse(ctx, "SELECT 1")
		require.NoError(t, err)
		assert.Equal(t, ast.SetOpNone, plain.Stmts[0].Stmt.(*ast.SelectStmt).Op)

		union, err := Parse(ctx, "SELECT 1 UNION SELECT 2")
		require.NoError(t, err)
		assert.Equal(t, ast.SetOpUnion, union.Stmts[0].Stmt.(*ast.SelectStmt).Op)

		assert.Equal(t, ast.SetOpUndefined, (&ast.SelectStmt{}).Op)
	})

	t.Run("sort direction", func(t *testing.T) {
		result, err := Parse(ctx, "SELECT * FROM t ORDER BY a, b DESC")
		require.NoError(t, err)
		sel := result.Stmts[0].Stmt.(*ast.SelectStmt)
		assert.Equal(t, ast.SortByDefault, sel.SortClause[0].(*ast.SortBy).SortbyDir)
		assert.Equal(t, ast.SortByDesc, sel.SortClause[1].(*ast.SortBy).SortbyDir)
	})

	t.Run("a_expr kind", func(t *testing.T) {
		result, err := Parse(ctx, "SELECT 1 + 2")
		require.NoError(t, err)
		sel := result.Stmts[0].Stmt.(*ast.SelectStmt)
		expr := sel.TargetList[0].(*ast.ResTarget).Val.(*ast.AExpr)
		assert.Equal(t, ast.AExprOp, expr.Kind)
	})

	t.Run("join type", func(t *testing.T) {
		result, err := Parse(ctx, "SELECT * FROM a JOIN b ON true")
		require.NoError(t, err)
		sel := result.Stmts[0].Stmt.(*ast.SelectStmt)
		assert.Equal(t, ast.JoinInner, sel.FromClause[0].(*ast.JoinExpr).Jointype)
	})
}

func TestParse_LocationsPreserved(t *testing.T) {
	result, err := Parse(context.Background(), "SELECT id FROM users")
	require.NoError(t, err)

	sel := result.Stmts[0].Stmt.(*ast.SelectStmt)
	rv := sel.FromClause[0].(*ast.RangeVar)
	assert.Equal(t, int32(15), rv.Location)

	rt := sel.TargetList[0].(*ast.ResTarget)
	assert.Equal(t, int32(7), rt.Location)
}
