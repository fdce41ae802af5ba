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
	"reflect"
	"sort"
	"strings"

	"github.com/AleutianAI/pgbridge/pkg/ast"
)

// nodeKindName names a node kind after its Go type, for example
// "SelectStmt". A nil statement names as "".
func nodeKindName(n ast.Node) string {
	if n == nil {
		return ""
	}
	return reflect.TypeOf(n).Elem().Name()
}

// ParseResult is an owned parse tree together with the parser version
// that produced it.
//
// Source is populated only when the parser was built with
// WithCaptureSource(true); otherwise it is empty.
type ParseResult struct {
	Version int32
	Stmts   []ast.RawStmt
	Source  string
}

// Tables returns the names of all tables referenced anywhere in the
// tree, qualified with their schema when one was written, sorted and
// deduplicated. Unqualified references to names introduced by a WITH
// clause are CTE references, not tables, and are excluded.
func (r *ParseResult) Tables() []string {
	cteNames := make(map[string]struct{})
	for i := range r.Stmts {
		ast.Walk(r.Stmts[i].Stmt, func(n ast.Node) bool {
			if cte, ok := n.(*ast.CommonTableExpr); ok {
				cteNames[cte.Ctename] = struct{}{}
			}
			return true
		})
	}

	seen := make(map[string]struct{})
	for i := range r.Stmts {
		ast.Walk(r.Stmts[i].Stmt, func(n ast.Node) bool {
			rv, ok := n.(*ast.RangeVar)
			if !ok {
				return true
			}
			if rv.Schemaname == "" {
				if _, isCTE := cteNames[rv.Relname]; isCTE {
					return true
				}
			}
			name := rv.Relname
			if rv.Schemaname != "" {
				name = rv.Schemaname + "." + name
			}
			if rv.Catalogname != "" {
				name = rv.Catalogname + "." + name
			}
			seen[name] = struct{}{}
			return true
		})
	}
	return sortedKeys(seen)
}

// Functions returns the qualified names of all functions called
// anywhere in the tree, sorted and deduplicated.
func (r *ParseResult) Functions() []string {
	seen := make(map[string]struct{})
	for i := range r.Stmts {
		ast.Walk(r.Stmts[i].Stmt, func(n ast.Node) bool {
			fc, ok := n.(*ast.FuncCall)
			if !ok {
				return true
			}
			var parts []string
			for _, p := range fc.Funcname {
				if s, ok := p.(*ast.String); ok {
					parts = append(parts, s.Sval)
				}
			}
			if len(parts) > 0 {
				seen[strings.Join(parts, ".")] = struct{}{}
			}
			return true
		})
	}
	return sortedKeys(seen)
}

func sortedKeys(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// StatementTypes returns the node kind name of each top-level
// statement, for example "SelectStmt" or "CreateStmt".
func (r *ParseResult) StatementTypes() []string {
	out := make([]string, 0, len(r.Stmts))
	for i := range r.Stmts {
		out = append(out, nodeKindName(r.Stmts[i].Stmt))
	}
	return out
}

// Token is one lexer token with its byte span in the source text.
// Kind and KeywordKind are the C scanner's numeric classifications.
type Token struct {
	Start       uint32
	End         uint32
	Kind        int32
	KeywordKind int32
}

// ScanResult is the token stream of one source text.
type ScanResult struct {
	Version int32
	Tokens  []Token
}

// FingerprintResult identifies a statement up to value normalization:
// two statements that differ only in constants fingerprint equal.
// Hex is the 16-character lowercase hex form of Value.
type FingerprintResult struct {
	Value uint64
	Hex   string
}
