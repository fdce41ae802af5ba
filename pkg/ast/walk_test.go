// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package ast

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWalkVisitsFieldOrder(t *testing.T) {
	stmt := &SelectStmt{
		TargetList: []Node{
			&ResTarget{Val: &ColumnRef{Fields: []Node{&String{Sval: "a"}}}},
		},
		FromClause: []Node{
			&RangeVar{Relname: "t", Inh: true, Relpersistence: "p"},
		},
		WhereClause: &AExpr{
			Kind:  AExprOp,
			Name:  []Node{&String{Sval: "="}},
			Lexpr: &ColumnRef{Fields: []Node{&String{Sval: "a"}}},
			Rexpr: &AConst{Val: &Integer{Ival: 1}},
		},
	}

	var kinds []string
	Walk(stmt, func(n Node) bool {
		switch n.(type) {
		case *SelectStmt:
			kinds = append(kinds, "select")
		case *ResTarget:
			kinds = append(kinds, "target")
		case *RangeVar:
			kinds = append(kinds, "rangevar")
		case *AExpr:
			kinds = append(kinds, "aexpr")
		case *AConst:
			kinds = append(kinds, "aconst")
		}
		return true
	})

	require.Equal(t, []string{"select", "target", "rangevar", "aexpr", "aconst"}, kinds)
}

func TestWalkPrunesSubtree(t *testing.T) {
	stmt := &SelectStmt{
		FromClause: []Node{
			&RangeSubselect{
				Subquery: &SelectStmt{
					FromClause: []Node{&RangeVar{Relname: "inner"}},
				},
			},
		},
	}

	var rels []string
	Walk(stmt, func(n Node) bool {
		switch n := n.(type) {
		case *RangeSubselect:
			return false
		case *RangeVar:
			rels = append(rels, n.Relname)
		}
		return true
	})

	require.Empty(t, rels, "pruned subtree must not be visited")
}

func TestChildrenSkipsNilFields(t *testing.T) {
	stmt := &InsertStmt{
		Relation: &RangeVar{Relname: "t"},
	}
	kids := Children(stmt)
	require.Len(t, kids, 1)
	rv, ok := kids[0].(*RangeVar)
	require.True(t, ok)
	require.Equal(t, "t", rv.Relname)
}

func TestChildrenNilTypedPointer(t *testing.T) {
	// A nil *WithClause must not surface as a non-nil Node interface.
	stmt := &SelectStmt{WithClause: nil, Larg: nil, Rarg: nil}
	for _, k := range Children(stmt) {
		require.NotNil(t, k)
	}
}

func TestChildrenNestedValuesLists(t *testing.T) {
	stmt := &SelectStmt{
		ValuesLists: []Node{
			&List{Items: []Node{&AConst{Val: &Integer{Ival: 1}}, &AConst{Val: &Integer{Ival: 2}}}},
			&List{Items: []Node{&AConst{Val: &Integer{Ival: 3}}, &AConst{Val: &Integer{Ival: 4}}}},
		},
	}

	var ints []int64
	Walk(stmt, func(n Node) bool {
		if iv, ok := n.(*Integer); ok {
			ints = append(ints, iv.Ival)
		}
		return true
	})
	require.Equal(t, []int64{1, 2, 3, 4}, ints)
}

func TestEnumZeroValuesAreUndefined(t *testing.T) {
	// The zero value of every boundary enum is its Undefined sentinel,
	// so a freshly constructed node carries no accidental meaning.
	require.Equal(t, SetOperation(0), SetOpUndefined)
	require.Equal(t, LimitOption(0), LimitOptionUndefined)
	require.Equal(t, AExprKind(0), AExprUndefined)
	require.Equal(t, ObjectType(0), ObjectUndefined)
	require.Equal(t, AlterTableType(0), AlterTableTypeUndefined)
	require.Equal(t, ConstrType(0), ConstrTypeUndefined)
}
