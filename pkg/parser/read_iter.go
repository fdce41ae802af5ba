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
#include <stdlib.h>
#include "pg_query_raw.h"
*/
import "C"

import (
	"fmt"
	"unsafe"

	"github.com/AleutianAI/pgbridge/pkg/ast"
)

// parseIterative runs the C parser and converts its tree with the
// two-phase stack machine. Traversal state lives on heap slices, so
// tree depth is bounded by memory rather than the goroutine stack.
//
// The machine visits each node twice. The expand phase pushes a
// collect marker for the node and then its children in field order;
// LIFO popping means each subtree completes before its parent's
// collect marker runs, at which point the children's results sit on
// the result stack in field order.
func (p *Parser) parseIterative(sql string) (*ParseResult, error) {
	if err := checkSource(sql); err != nil {
		return nil, err
	}
	csql := C.CString(sql)
	defer C.free(unsafe.Pointer(csql))

	res := C.pg_query_parse_raw(csql)
	defer C.pg_query_free_raw_parse_result(res)
	if res.error != nil {
		return nil, cError(ErrParse, res.error)
	}

	n := listLen(res.tree)
	if n == 0 {
		return &ParseResult{Version: treeVersion}, nil
	}
	r := &iterReader{
		work:    make([]workItem, 0, p.options.StackChunk),
		results: make([]ast.Node, 0, p.options.StackChunk),
	}
	stmts := make([]ast.RawStmt, 0, n)
	for i := 0; i < n; i++ {
		ptr := listItem(res.tree, i)
		if ptr == nil || nodeTag(ptr) != C.T_RawStmt {
			continue
		}
		rs := (*C.RawStmt)(ptr)
		stmts = append(stmts, ast.RawStmt{
			Stmt:         r.run(unsafe.Pointer(rs.stmt)),
			StmtLocation: int32(rs.stmt_location),
			StmtLen:      int32(rs.stmt_len),
		})
	}
	return &ParseResult{Version: treeVersion, Stmts: stmts}, nil
}

type workItem struct {
	ptr     unsafe.Pointer
	collect bool
}

type iterReader struct {
	work    []workItem
	results []ast.Node
}

func (r *iterReader) run(root unsafe.Pointer) ast.Node {
	if root == nil {
		return nil
	}
	r.work = append(r.work, workItem{ptr: root})
	for len(r.work) > 0 {
		it := r.work[len(r.work)-1]
		r.work = r.work[:len(r.work)-1]
		if it.ptr == nil {
			// Null list element: a placeholder result keeps list
			// cardinality intact (a bare DISTINCT is such a list).
			r.results = append(r.results, nil)
			continue
		}
		if it.collect {
			r.stepCollect(it.ptr)
			continue
		}
		r.stepExpand(it.ptr)
	}
	if len(r.results) != 1 {
		panic(fmt.Sprintf("pgbridge: iterative reader: %d results left on stack, want 1", len(r.results)))
	}
	out := r.results[0]
	r.results = r.results[:0]
	return out
}

// queueNode schedules a single-child field. Null children are simply
// not queued; the collect phase re-checks the field pointer.
func (r *iterReader) queueNode(p unsafe.Pointer) {
	if p != nil {
		r.work = append(r.work, workItem{ptr: p})
	}
}

// queueList schedules every element of a list, nulls included.
func (r *iterReader) queueList(l *C.List) {
	for i, n := 0, listLen(l); i < n; i++ {
		r.work = append(r.work, workItem{ptr: listItem(l, i)})
	}
}

func (r *iterReader) pop() ast.Node {
	out := r.results[len(r.results)-1]
	r.results = r.results[:len(r.results)-1]
	return out
}

// popIf pops the result of a single-child field, or yields nil when
// the field was null and therefore never queued.
func (r *iterReader) popIf(p unsafe.Pointer) ast.Node {
	if p == nil {
		return nil
	}
	return r.pop()
}

// popList pops one result per list element, preserving placeholders.
func (r *iterReader) popList(l *C.List) []ast.Node {
	n := listLen(l)
	if n == 0 {
		return nil
	}
	out := make([]ast.Node, n)
	for i := 0; i < n; i++ {
		out[i] = r.pop()
	}
	return out
}

// popPtr pops a struct-typed child field's result.
func popPtr[T any](r *iterReader, p unsafe.Pointer) *T {
	if p == nil {
		return nil
	}
	out, _ := any(r.pop()).(*T)
	return out
}

// stepExpand pushes the collect marker and the node's children.
//
// Shallow kinds whose subtrees have bounded depth (values, range vars,
// aliases, role specs) are converted in place and never revisited.
// Everything else queues its children in field order; the matching
// collect case pops in the same order. Keep the two switches in sync.
func (r *iterReader) stepExpand(p unsafe.Pointer) {
	switch nodeTag(p) {
	case C.T_Integer, C.T_Float, C.T_Boolean, C.T_String, C.T_BitString,
		C.T_A_Star, C.T_A_Const, C.T_ParamRef, C.T_RangeVar, C.T_Alias,
		C.T_RoleSpec, C.T_AccessPriv, C.T_TriggerTransition,
		C.T_SQLValueFunction, C.T_SetToDefault, C.T_CTESearchClause,
		C.T_JsonFormat, C.T_VariableShowStmt, C.T_NotifyStmt,
		C.T_ListenStmt, C.T_UnlistenStmt, C.T_CheckPointStmt,
		C.T_DiscardStmt, C.T_DeallocateStmt, C.T_ClosePortalStmt,
		C.T_FetchStmt:
		r.results = append(r.results, readNode(p))
		return
	}

	r.work = append(r.work, workItem{ptr: p, collect: true})

	switch nodeTag(p) {
	case C.T_List:
		r.queueList((*C.List)(p))

	case C.T_SelectStmt:
		s := (*C.SelectStmt)(p)
		r.queueList(s.distinctClause)
		r.queueNode(unsafe.Pointer(s.intoClause))
		r.queueList(s.targetList)
		r.queueList(s.fromClause)
		r.queueNode(unsafe.Pointer(s.whereClause))
		r.queueList(s.groupClause)
		r.queueNode(unsafe.Pointer(s.havingClause))
		r.queueList(s.windowClause)
		r.queueList(s.valuesLists)
		r.queueList(s.sortClause)
		r.queueNode(unsafe.Pointer(s.limitOffset))
		r.queueNode(unsafe.Pointer(s.limitCount))
		r.queueList(s.lockingClause)
		r.queueNode(unsafe.Pointer(s.withClause))
		r.queueNode(unsafe.Pointer(s.larg))
		r.queueNode(unsafe.Pointer(s.rarg))

	case C.T_InsertStmt:
		s := (*C.InsertStmt)(p)
		r.queueList(s.cols)
		r.queueNode(unsafe.Pointer(s.selectStmt))
		r.queueNode(unsafe.Pointer(s.onConflictClause))
		r.queueList(s.returningList)
		r.queueNode(unsafe.Pointer(s.withClause))

	case C.T_UpdateStmt:
		s := (*C.UpdateStmt)(p)
		r.queueList(s.targetList)
		r.queueNode(unsafe.Pointer(s.whereClause))
		r.queueList(s.fromClause)
		r.queueList(s.returningList)
		r.queueNode(unsafe.Pointer(s.withClause))

	case C.T_DeleteStmt:
		s := (*C.DeleteStmt)(p)
		r.queueList(s.usingClause)
		r.queueNode(unsafe.Pointer(s.whereClause))
		r.queueList(s.returningList)
		r.queueNode(unsafe.Pointer(s.withClause))

	case C.T_MergeStmt:
		s := (*C.MergeStmt)(p)
		r.queueNode(unsafe.Pointer(s.sourceRelation))
		r.queueNode(unsafe.Pointer(s.joinCondition))
		r.queueList(s.mergeWhenClauses)
		r.queueList(s.returningList)
		r.queueNode(unsafe.Pointer(s.withClause))

	case C.T_MergeWhenClause:
		s := (*C.MergeWhenClause)(p)
		r.queueNode(unsafe.Pointer(s.condition))
		r.queueList(s.targetList)
		r.queueList(s.values)

	case C.T_MergeAction:
		s := (*C.MergeAction)(p)
		r.queueNode(unsafe.Pointer(s.qual))
		r.queueList(s.targetList)
		r.queueList(s.updateColnos)

	case C.T_CreateStmt:
		s := (*C.CreateStmt)(p)
		r.queueList(s.tableElts)
		r.queueList(s.inhRelations)
		r.queueNode(unsafe.Pointer(s.partbound))
		r.queueNode(unsafe.Pointer(s.partspec))
		r.queueNode(unsafe.Pointer(s.ofTypename))
		r.queueList(s.constraints)
		r.queueList(s.options)

	case C.T_AlterTableStmt:
		r.queueList((*C.AlterTableStmt)(p).cmds)

	case C.T_AlterTableCmd:
		r.queueNode(unsafe.Pointer((*C.AlterTableCmd)(p).def))

	case C.T_DropStmt:
		r.queueList((*C.DropStmt)(p).objects)

	case C.T_TruncateStmt:
		r.queueList((*C.TruncateStmt)(p).relations)

	case C.T_IndexStmt:
		s := (*C.IndexStmt)(p)
		r.queueList(s.indexParams)
		r.queueList(s.indexIncludingParams)
		r.queueList(s.options)
		r.queueNode(unsafe.Pointer(s.whereClause))
		r.queueList(s.excludeOpNames)

	case C.T_CreateSchemaStmt:
		r.queueList((*C.CreateSchemaStmt)(p).schemaElts)

	case C.T_ViewStmt:
		s := (*C.ViewStmt)(p)
		r.queueList(s.aliases)
		r.queueNode(unsafe.Pointer(s.query))
		r.queueList(s.options)

	case C.T_CreateFunctionStmt:
		s := (*C.CreateFunctionStmt)(p)
		r.queueList(s.funcname)
		r.queueList(s.parameters)
		r.queueNode(unsafe.Pointer(s.returnType))
		r.queueList(s.options)
		r.queueNode(unsafe.Pointer(s.sql_body))

	case C.T_AlterFunctionStmt:
		s := (*C.AlterFunctionStmt)(p)
		r.queueNode(unsafe.Pointer(s._func))
		r.queueList(s.actions)

	case C.T_CreateSeqStmt:
		r.queueList((*C.CreateSeqStmt)(p).options)

	case C.T_AlterSeqStmt:
		r.queueList((*C.AlterSeqStmt)(p).options)

	case C.T_CreateTrigStmt:
		s := (*C.CreateTrigStmt)(p)
		r.queueList(s.funcname)
		r.queueList(s.args)
		r.queueList(s.columns)
		r.queueNode(unsafe.Pointer(s.whenClause))
		r.queueList(s.transitionRels)

	case C.T_RuleStmt:
		s := (*C.RuleStmt)(p)
		r.queueNode(unsafe.Pointer(s.whereClause))
		r.queueList(s.actions)

	case C.T_CreateDomainStmt:
		s := (*C.CreateDomainStmt)(p)
		r.queueList(s.domainname)
		r.queueNode(unsafe.Pointer(s.typeName))
		r.queueNode(unsafe.Pointer(s.collClause))
		r.queueList(s.constraints)

	case C.T_CreateTableAsStmt:
		s := (*C.CreateTableAsStmt)(p)
		r.queueNode(unsafe.Pointer(s.query))
		r.queueNode(unsafe.Pointer(s.into))

	case C.T_RefreshMatViewStmt:
		// relation is shallow; nothing to queue

	case C.T_CompositeTypeStmt:
		r.queueList((*C.CompositeTypeStmt)(p).coldeflist)

	case C.T_CreateEnumStmt:
		s := (*C.CreateEnumStmt)(p)
		r.queueList(s.typeName)
		r.queueList(s.vals)

	case C.T_CreateRangeStmt:
		s := (*C.CreateRangeStmt)(p)
		r.queueList(s.typeName)
		r.queueList(s.params)

	case C.T_AlterEnumStmt:
		r.queueList((*C.AlterEnumStmt)(p).typeName)

	case C.T_CreateExtensionStmt:
		r.queueList((*C.CreateExtensionStmt)(p).options)

	case C.T_CreatePublicationStmt:
		s := (*C.CreatePublicationStmt)(p)
		r.queueList(s.options)
		r.queueList(s.pubobjects)

	case C.T_AlterPublicationStmt:
		s := (*C.AlterPublicationStmt)(p)
		r.queueList(s.options)
		r.queueList(s.pubobjects)

	case C.T_CreateSubscriptionStmt:
		s := (*C.CreateSubscriptionStmt)(p)
		r.queueList(s.publication)
		r.queueList(s.options)

	case C.T_AlterSubscriptionStmt:
		s := (*C.AlterSubscriptionStmt)(p)
		r.queueList(s.publication)
		r.queueList(s.options)

	case C.T_AlterOwnerStmt:
		r.queueNode(unsafe.Pointer((*C.AlterOwnerStmt)(p).object))

	case C.T_RenameStmt:
		r.queueNode(unsafe.Pointer((*C.RenameStmt)(p).object))

	case C.T_TransactionStmt:
		r.queueList((*C.TransactionStmt)(p).options)

	case C.T_VariableSetStmt:
		r.queueList((*C.VariableSetStmt)(p).args)

	case C.T_ExplainStmt:
		s := (*C.ExplainStmt)(p)
		r.queueNode(unsafe.Pointer(s.query))
		r.queueList(s.options)

	case C.T_CopyStmt:
		s := (*C.CopyStmt)(p)
		r.queueNode(unsafe.Pointer(s.query))
		r.queueList(s.attlist)
		r.queueList(s.options)
		r.queueNode(unsafe.Pointer(s.whereClause))

	case C.T_GrantStmt:
		s := (*C.GrantStmt)(p)
		r.queueList(s.objects)
		r.queueList(s.privileges)
		r.queueList(s.grantees)

	case C.T_GrantRoleStmt:
		s := (*C.GrantRoleStmt)(p)
		r.queueList(s.granted_roles)
		r.queueList(s.grantee_roles)
		r.queueList(s.opt)

	case C.T_LockStmt:
		r.queueList((*C.LockStmt)(p).relations)

	case C.T_VacuumStmt:
		s := (*C.VacuumStmt)(p)
		r.queueList(s.options)
		r.queueList(s.rels)

	case C.T_VacuumRelation:
		r.queueList((*C.VacuumRelation)(p).va_cols)

	case C.T_DoStmt:
		r.queueList((*C.DoStmt)(p).args)

	case C.T_CallStmt:
		s := (*C.CallStmt)(p)
		r.queueNode(unsafe.Pointer(s.funccall))
		r.queueList(s.outargs)

	case C.T_PrepareStmt:
		s := (*C.PrepareStmt)(p)
		r.queueList(s.argtypes)
		r.queueNode(unsafe.Pointer(s.query))

	case C.T_ExecuteStmt:
		r.queueList((*C.ExecuteStmt)(p).params)

	case C.T_A_Expr:
		s := (*C.A_Expr)(p)
		r.queueList(s.name)
		r.queueNode(unsafe.Pointer(s.lexpr))
		r.queueNode(unsafe.Pointer(s.rexpr))

	case C.T_ColumnRef:
		r.queueList((*C.ColumnRef)(p).fields)

	case C.T_TypeCast:
		s := (*C.TypeCast)(p)
		r.queueNode(unsafe.Pointer(s.arg))
		r.queueNode(unsafe.Pointer(s.typeName))

	case C.T_CollateClause:
		s := (*C.CollateClause)(p)
		r.queueNode(unsafe.Pointer(s.arg))
		r.queueList(s.collname)

	case C.T_FuncCall:
		s := (*C.FuncCall)(p)
		r.queueList(s.funcname)
		r.queueList(s.args)
		r.queueList(s.agg_order)
		r.queueNode(unsafe.Pointer(s.agg_filter))
		r.queueNode(unsafe.Pointer(s.over))

	case C.T_A_Indices:
		s := (*C.A_Indices)(p)
		r.queueNode(unsafe.Pointer(s.lidx))
		r.queueNode(unsafe.Pointer(s.uidx))

	case C.T_A_Indirection:
		s := (*C.A_Indirection)(p)
		r.queueNode(unsafe.Pointer(s.arg))
		r.queueList(s.indirection)

	case C.T_A_ArrayExpr:
		r.queueList((*C.A_ArrayExpr)(p).elements)

	case C.T_SubLink:
		s := (*C.SubLink)(p)
		r.queueNode(unsafe.Pointer(s.testexpr))
		r.queueList(s.operName)
		r.queueNode(unsafe.Pointer(s.subselect))

	case C.T_BoolExpr:
		r.queueList((*C.BoolExpr)(p).args)

	case C.T_NullTest:
		r.queueNode(unsafe.Pointer((*C.NullTest)(p).arg))

	case C.T_BooleanTest:
		r.queueNode(unsafe.Pointer((*C.BooleanTest)(p).arg))

	case C.T_CaseExpr:
		s := (*C.CaseExpr)(p)
		r.queueNode(unsafe.Pointer(s.arg))
		r.queueList(s.args)
		r.queueNode(unsafe.Pointer(s.defresult))

	case C.T_CaseWhen:
		s := (*C.CaseWhen)(p)
		r.queueNode(unsafe.Pointer(s.expr))
		r.queueNode(unsafe.Pointer(s.result))

	case C.T_CoalesceExpr:
		r.queueList((*C.CoalesceExpr)(p).args)

	case C.T_MinMaxExpr:
		r.queueList((*C.MinMaxExpr)(p).args)

	case C.T_RowExpr:
		s := (*C.RowExpr)(p)
		r.queueList(s.args)
		r.queueList(s.colnames)

	case C.T_MultiAssignRef:
		r.queueNode(unsafe.Pointer((*C.MultiAssignRef)(p).source))

	case C.T_CoerceToDomain:
		r.queueNode(unsafe.Pointer((*C.CoerceToDomain)(p).arg))

	case C.T_GroupingFunc:
		s := (*C.GroupingFunc)(p)
		r.queueList(s.args)
		r.queueList(s.refs)

	case C.T_GroupingSet:
		r.queueList((*C.GroupingSet)(p).content)

	case C.T_ResTarget:
		s := (*C.ResTarget)(p)
		r.queueList(s.indirection)
		r.queueNode(unsafe.Pointer(s.val))

	case C.T_RangeSubselect:
		r.queueNode(unsafe.Pointer((*C.RangeSubselect)(p).subquery))

	case C.T_RangeFunction:
		s := (*C.RangeFunction)(p)
		r.queueList(s.functions)
		r.queueList(s.coldeflist)

	case C.T_JoinExpr:
		s := (*C.JoinExpr)(p)
		r.queueNode(unsafe.Pointer(s.larg))
		r.queueNode(unsafe.Pointer(s.rarg))
		r.queueList(s.usingClause)
		r.queueNode(unsafe.Pointer(s.quals))

	case C.T_SortBy:
		s := (*C.SortBy)(p)
		r.queueNode(unsafe.Pointer(s.node))
		r.queueList(s.useOp)

	case C.T_WindowDef:
		s := (*C.WindowDef)(p)
		r.queueList(s.partitionClause)
		r.queueList(s.orderClause)
		r.queueNode(unsafe.Pointer(s.startOffset))
		r.queueNode(unsafe.Pointer(s.endOffset))

	case C.T_WithClause:
		r.queueList((*C.WithClause)(p).ctes)

	case C.T_CommonTableExpr:
		s := (*C.CommonTableExpr)(p)
		r.queueList(s.aliascolnames)
		r.queueNode(unsafe.Pointer(s.ctequery))
		r.queueNode(unsafe.Pointer(s.cycle_clause))
		r.queueList(s.ctecolnames)

	case C.T_CTECycleClause:
		s := (*C.CTECycleClause)(p)
		r.queueList(s.cycle_col_list)
		r.queueNode(unsafe.Pointer(s.cycle_mark_value))
		r.queueNode(unsafe.Pointer(s.cycle_mark_default))

	case C.T_IntoClause:
		s := (*C.IntoClause)(p)
		r.queueList(s.colNames)
		r.queueList(s.options)
		r.queueNode(unsafe.Pointer(s.viewQuery))

	case C.T_OnConflictClause:
		s := (*C.OnConflictClause)(p)
		r.queueNode(unsafe.Pointer(s.infer))
		r.queueList(s.targetList)
		r.queueNode(unsafe.Pointer(s.whereClause))

	case C.T_InferClause:
		s := (*C.InferClause)(p)
		r.queueList(s.indexElems)
		r.queueNode(unsafe.Pointer(s.whereClause))

	case C.T_LockingClause:
		r.queueList((*C.LockingClause)(p).lockedRels)

	case C.T_TypeName:
		s := (*C.TypeName)(p)
		r.queueList(s.names)
		r.queueList(s.typmods)
		r.queueList(s.arrayBounds)

	case C.T_ColumnDef:
		s := (*C.ColumnDef)(p)
		r.queueNode(unsafe.Pointer(s.typeName))
		r.queueNode(unsafe.Pointer(s.raw_default))
		r.queueNode(unsafe.Pointer(s.cooked_default))
		r.queueNode(unsafe.Pointer(s.collClause))
		r.queueList(s.constraints)
		r.queueList(s.fdwoptions)

	case C.T_Constraint:
		s := (*C.Constraint)(p)
		r.queueNode(unsafe.Pointer(s.raw_expr))
		r.queueList(s.keys)
		r.queueList(s.including)
		r.queueList(s.exclusions)
		r.queueList(s.options)
		r.queueNode(unsafe.Pointer(s.where_clause))
		r.queueList(s.fk_attrs)
		r.queueList(s.pk_attrs)
		r.queueList(s.fk_del_set_cols)
		r.queueList(s.old_conpfeqop)

	case C.T_DefElem:
		r.queueNode(unsafe.Pointer((*C.DefElem)(p).arg))

	case C.T_IndexElem:
		s := (*C.IndexElem)(p)
		r.queueNode(unsafe.Pointer(s.expr))
		r.queueList(s.collation)
		r.queueList(s.opclass)
		r.queueList(s.opclassopts)

	case C.T_PartitionSpec:
		r.queueList((*C.PartitionSpec)(p).partParams)

	case C.T_PartitionBoundSpec:
		s := (*C.PartitionBoundSpec)(p)
		r.queueList(s.listdatums)
		r.queueList(s.lowerdatums)
		r.queueList(s.upperdatums)

	case C.T_PartitionElem:
		s := (*C.PartitionElem)(p)
		r.queueNode(unsafe.Pointer(s.expr))
		r.queueList(s.collation)
		r.queueList(s.opclass)

	case C.T_PartitionRangeDatum:
		r.queueNode(unsafe.Pointer((*C.PartitionRangeDatum)(p).value))

	case C.T_FunctionParameter:
		s := (*C.FunctionParameter)(p)
		r.queueNode(unsafe.Pointer(s.argType))
		r.queueNode(unsafe.Pointer(s.defexpr))

	case C.T_ObjectWithArgs:
		s := (*C.ObjectWithArgs)(p)
		r.queueList(s.objname)
		r.queueList(s.objargs)
		r.queueList(s.objfuncargs)

	case C.T_PublicationObjSpec:
		r.queueNode(unsafe.Pointer((*C.PublicationObjSpec)(p).pubtable))

	case C.T_PublicationTable:
		s := (*C.PublicationTable)(p)
		r.queueNode(unsafe.Pointer(s.whereClause))
		r.queueList(s.columns)

	case C.T_JsonValueExpr:
		s := (*C.JsonValueExpr)(p)
		r.queueNode(unsafe.Pointer(s.raw_expr))
		r.queueNode(unsafe.Pointer(s.formatted_expr))

	case C.T_JsonReturning:
		// format is shallow; nothing to queue

	case C.T_JsonOutput:
		s := (*C.JsonOutput)(p)
		r.queueNode(unsafe.Pointer(s.typeName))
		r.queueNode(unsafe.Pointer(s.returning))

	case C.T_JsonKeyValue:
		s := (*C.JsonKeyValue)(p)
		r.queueNode(unsafe.Pointer(s.key))
		r.queueNode(unsafe.Pointer(s.value))

	case C.T_JsonObjectConstructor:
		s := (*C.JsonObjectConstructor)(p)
		r.queueList(s.exprs)
		r.queueNode(unsafe.Pointer(s.output))

	case C.T_JsonArrayConstructor:
		s := (*C.JsonArrayConstructor)(p)
		r.queueList(s.exprs)
		r.queueNode(unsafe.Pointer(s.output))

	case C.T_JsonArrayQueryConstructor:
		s := (*C.JsonArrayQueryConstructor)(p)
		r.queueNode(unsafe.Pointer(s.query))
		r.queueNode(unsafe.Pointer(s.output))

	case C.T_JsonAggConstructor:
		s := (*C.JsonAggConstructor)(p)
		r.queueNode(unsafe.Pointer(s.output))
		r.queueNode(unsafe.Pointer(s.agg_filter))
		r.queueList(s.agg_order)
		r.queueNode(unsafe.Pointer(s.over))

	case C.T_JsonObjectAgg:
		s := (*C.JsonObjectAgg)(p)
		r.queueNode(unsafe.Pointer(s.constructor))
		r.queueNode(unsafe.Pointer(s.arg))

	case C.T_JsonArrayAgg:
		s := (*C.JsonArrayAgg)(p)
		r.queueNode(unsafe.Pointer(s.constructor))
		r.queueNode(unsafe.Pointer(s.arg))

	case C.T_JsonIsPredicate:
		r.queueNode(unsafe.Pointer((*C.JsonIsPredicate)(p).expr))

	case C.T_JsonParseExpr:
		s := (*C.JsonParseExpr)(p)
		r.queueNode(unsafe.Pointer(s.expr))
		r.queueNode(unsafe.Pointer(s.output))

	case C.T_JsonScalarExpr:
		s := (*C.JsonScalarExpr)(p)
		r.queueNode(unsafe.Pointer(s.expr))
		r.queueNode(unsafe.Pointer(s.output))

	case C.T_JsonSerializeExpr:
		s := (*C.JsonSerializeExpr)(p)
		r.queueNode(unsafe.Pointer(s.expr))
		r.queueNode(unsafe.Pointer(s.output))

	default:
		// A tag outside the decoded set here means the linked library
		// no longer matches this reader. Degrading silently would
		// corrupt tree semantics, so this is fatal.
		panic(fmt.Sprintf("pgbridge: iterative reader: unhandled node tag %d", int(nodeTag(p))))
	}
}

// stepCollect assembles a node from its children's results. Pops occur
// in the same field order stepExpand queued.
func (r *iterReader) stepCollect(p unsafe.Pointer) {
	var out ast.Node
	switch nodeTag(p) {
	case C.T_List:
		out = &ast.List{Items: r.popList((*C.List)(p))}

	case C.T_SelectStmt:
		s := (*C.SelectStmt)(p)
		out = &ast.SelectStmt{
			DistinctClause: r.popList(s.distinctClause),
			IntoClause:     popPtr[ast.IntoClause](r, unsafe.Pointer(s.intoClause)),
			TargetList:     r.popList(s.targetList),
			FromClause:     r.popList(s.fromClause),
			WhereClause:    r.popIf(unsafe.Pointer(s.whereClause)),
			GroupClause:    r.popList(s.groupClause),
			GroupDistinct:  bool(s.groupDistinct),
			HavingClause:   r.popIf(unsafe.Pointer(s.havingClause)),
			WindowClause:   r.popList(s.windowClause),
			ValuesLists:    r.popList(s.valuesLists),
			SortClause:     r.popList(s.sortClause),
			LimitOffset:    r.popIf(unsafe.Pointer(s.limitOffset)),
			LimitCount:     r.popIf(unsafe.Pointer(s.limitCount)),
			LimitOption:    ast.LimitOption(int32(s.limitOption) + 1),
			LockingClause:  r.popList(s.lockingClause),
			WithClause:     popPtr[ast.WithClause](r, unsafe.Pointer(s.withClause)),
			Op:             ast.SetOperation(int32(s.op) + 1),
			All:            bool(s.all),
			Larg:           popPtr[ast.SelectStmt](r, unsafe.Pointer(s.larg)),
			Rarg:           popPtr[ast.SelectStmt](r, unsafe.Pointer(s.rarg)),
		}

	case C.T_InsertStmt:
		s := (*C.InsertStmt)(p)
		out = &ast.InsertStmt{
			Relation:         readRangeVarPtr(s.relation),
			Cols:             r.popList(s.cols),
			SelectStmt:       r.popIf(unsafe.Pointer(s.selectStmt)),
			OnConflictClause: popPtr[ast.OnConflictClause](r, unsafe.Pointer(s.onConflictClause)),
			ReturningList:    r.popList(s.returningList),
			WithClause:       popPtr[ast.WithClause](r, unsafe.Pointer(s.withClause)),
			Override:         ast.OverridingKind(int32(s.override) + 1),
		}

	case C.T_UpdateStmt:
		s := (*C.UpdateStmt)(p)
		out = &ast.UpdateStmt{
			Relation:      readRangeVarPtr(s.relation),
			TargetList:    r.popList(s.targetList),
			WhereClause:   r.popIf(unsafe.Pointer(s.whereClause)),
			FromClause:    r.popList(s.fromClause),
			ReturningList: r.popList(s.returningList),
			WithClause:    popPtr[ast.WithClause](r, unsafe.Pointer(s.withClause)),
		}

	case C.T_DeleteStmt:
		s := (*C.DeleteStmt)(p)
		out = &ast.DeleteStmt{
			Relation:      readRangeVarPtr(s.relation),
			UsingClause:   r.popList(s.usingClause),
			WhereClause:   r.popIf(unsafe.Pointer(s.whereClause)),
			ReturningList: r.popList(s.returningList),
			WithClause:    popPtr[ast.WithClause](r, unsafe.Pointer(s.withClause)),
		}

	case C.T_MergeStmt:
		s := (*C.MergeStmt)(p)
		out = &ast.MergeStmt{
			Relation:         readRangeVarPtr(s.relation),
			SourceRelation:   r.popIf(unsafe.Pointer(s.sourceRelation)),
			JoinCondition:    r.popIf(unsafe.Pointer(s.joinCondition)),
			MergeWhenClauses: r.popList(s.mergeWhenClauses),
			ReturningList:    r.popList(s.returningList),
			WithClause:       popPtr[ast.WithClause](r, unsafe.Pointer(s.withClause)),
		}

	case C.T_MergeWhenClause:
		s := (*C.MergeWhenClause)(p)
		out = &ast.MergeWhenClause{
			MatchKind:   ast.MergeMatchKind(int32(s.matchKind) + 1),
			CommandType: ast.CmdType(int32(s.commandType) + 1),
			Override:    ast.OverridingKind(int32(s.override) + 1),
			Condition:   r.popIf(unsafe.Pointer(s.condition)),
			TargetList:  r.popList(s.targetList),
			Values:      r.popList(s.values),
		}

	case C.T_MergeAction:
		s := (*C.MergeAction)(p)
		out = &ast.MergeAction{
			MatchKind:    ast.MergeMatchKind(int32(s.matchKind) + 1),
			CommandType:  ast.CmdType(int32(s.commandType) + 1),
			Override:     ast.OverridingKind(int32(s.override) + 1),
			Qual:         r.popIf(unsafe.Pointer(s.qual)),
			TargetList:   r.popList(s.targetList),
			UpdateColnos: r.popList(s.updateColnos),
		}

	case C.T_CreateStmt:
		s := (*C.CreateStmt)(p)
		out = &ast.CreateStmt{
			Relation:       readRangeVarPtr(s.relation),
			TableElts:      r.popList(s.tableElts),
			InhRelations:   r.popList(s.inhRelations),
			Partbound:      popPtr[ast.PartitionBoundSpec](r, unsafe.Pointer(s.partbound)),
			Partspec:       popPtr[ast.PartitionSpec](r, unsafe.Pointer(s.partspec)),
			OfTypename:     popPtr[ast.TypeName](r, unsafe.Pointer(s.ofTypename)),
			Constraints:    r.popList(s.constraints),
			Options:        r.popList(s.options),
			Oncommit:       ast.OnCommitAction(int32(s.oncommit) + 1),
			Tablespacename: goString(s.tablespacename),
			AccessMethod:   goString(s.accessMethod),
			IfNotExists:    bool(s.if_not_exists),
		}

	case C.T_AlterTableStmt:
		s := (*C.AlterTableStmt)(p)
		out = &ast.AlterTableStmt{
			Relation:  readRangeVarPtr(s.relation),
			Cmds:      r.popList(s.cmds),
			Objtype:   ast.ObjectType(int32(s.objtype) + 1),
			MissingOk: bool(s.missing_ok),
		}

	case C.T_AlterTableCmd:
		s := (*C.AlterTableCmd)(p)
		out = &ast.AlterTableCmd{
			Subtype:   ast.AlterTableType(int32(s.subtype) + 1),
			Name:      goString(s.name),
			Num:       int32(s.num),
			Newowner:  readRoleSpecPtr(s.newowner),
			Def:       r.popIf(unsafe.Pointer(s.def)),
			Behavior:  ast.DropBehavior(int32(s.behavior) + 1),
			MissingOk: bool(s.missing_ok),
			Recurse:   bool(s.recurse),
		}

	case C.T_DropStmt:
		s := (*C.DropStmt)(p)
		out = &ast.DropStmt{
			Objects:    r.popList(s.objects),
			RemoveType: ast.ObjectType(int32(s.removeType) + 1),
			Behavior:   ast.DropBehavior(int32(s.behavior) + 1),
			MissingOk:  bool(s.missing_ok),
			Concurrent: bool(s.concurrent),
		}

	case C.T_TruncateStmt:
		s := (*C.TruncateStmt)(p)
		out = &ast.TruncateStmt{
			Relations:   r.popList(s.relations),
			RestartSeqs: bool(s.restart_seqs),
			Behavior:    ast.DropBehavior(int32(s.behavior) + 1),
		}

	case C.T_IndexStmt:
		s := (*C.IndexStmt)(p)
		out = &ast.IndexStmt{
			Idxname:              goString(s.idxname),
			Relation:             readRangeVarPtr(s.relation),
			AccessMethod:         goString(s.accessMethod),
			TableSpace:           goString(s.tableSpace),
			IndexParams:          r.popList(s.indexParams),
			IndexIncludingParams: r.popList(s.indexIncludingParams),
			Options:              r.popList(s.options),
			WhereClause:          r.popIf(unsafe.Pointer(s.whereClause)),
			ExcludeOpNames:       r.popList(s.excludeOpNames),
			Idxcomment:           goString(s.idxcomment),
			IndexOid:             uint32(s.indexOid),
			OldNumber:            uint32(s.oldNumber),
			Unique:               bool(s.unique),
			NullsNotDistinct:     bool(s.nulls_not_distinct),
			Primary:              bool(s.primary),
			Isconstraint:         bool(s.isconstraint),
			Deferrable:           bool(s.deferrable),
			Initdeferred:         bool(s.initdeferred),
			Transformed:          bool(s.transformed),
			Concurrent:           bool(s.concurrent),
			IfNotExists:          bool(s.if_not_exists),
			ResetDefaultTblspc:   bool(s.reset_default_tblspc),
		}

	case C.T_CreateSchemaStmt:
		s := (*C.CreateSchemaStmt)(p)
		out = &ast.CreateSchemaStmt{
			Schemaname:  goString(s.schemaname),
			Authrole:    readRoleSpecPtr(s.authrole),
			SchemaElts:  r.popList(s.schemaElts),
			IfNotExists: bool(s.if_not_exists),
		}

	case C.T_ViewStmt:
		s := (*C.ViewStmt)(p)
		out = &ast.ViewStmt{
			View:            readRangeVarPtr(s.view),
			Aliases:         r.popList(s.aliases),
			Query:           r.popIf(unsafe.Pointer(s.query)),
			Replace:         bool(s.replace),
			Options:         r.popList(s.options),
			WithCheckOption: ast.ViewCheckOption(int32(s.withCheckOption) + 1),
		}

	case C.T_CreateFunctionStmt:
		s := (*C.CreateFunctionStmt)(p)
		out = &ast.CreateFunctionStmt{
			IsProcedure: bool(s.is_procedure),
			Replace:     bool(s.replace),
			Funcname:    r.popList(s.funcname),
			Parameters:  r.popList(s.parameters),
			ReturnType:  popPtr[ast.TypeName](r, unsafe.Pointer(s.returnType)),
			Options:     r.popList(s.options),
			SQLBody:     r.popIf(unsafe.Pointer(s.sql_body)),
		}

	case C.T_AlterFunctionStmt:
		s := (*C.AlterFunctionStmt)(p)
		out = &ast.AlterFunctionStmt{
			Objtype: ast.ObjectType(int32(s.objtype) + 1),
			Func:    popPtr[ast.ObjectWithArgs](r, unsafe.Pointer(s._func)),
			Actions: r.popList(s.actions),
		}

	case C.T_CreateSeqStmt:
		s := (*C.CreateSeqStmt)(p)
		out = &ast.CreateSeqStmt{
			Sequence:    readRangeVarPtr(s.sequence),
			Options:     r.popList(s.options),
			OwnerID:     uint32(s.ownerId),
			ForIdentity: bool(s.for_identity),
			IfNotExists: bool(s.if_not_exists),
		}

	case C.T_AlterSeqStmt:
		s := (*C.AlterSeqStmt)(p)
		out = &ast.AlterSeqStmt{
			Sequence:    readRangeVarPtr(s.sequence),
			Options:     r.popList(s.options),
			ForIdentity: bool(s.for_identity),
			MissingOk:   bool(s.missing_ok),
		}

	case C.T_CreateTrigStmt:
		s := (*C.CreateTrigStmt)(p)
		out = &ast.CreateTrigStmt{
			Replace:        bool(s.replace),
			Isconstraint:   bool(s.isconstraint),
			Trigname:       goString(s.trigname),
			Relation:       readRangeVarPtr(s.relation),
			Funcname:       r.popList(s.funcname),
			Args:           r.popList(s.args),
			Row:            bool(s.row),
			Timing:         int32(s.timing),
			Events:         int32(s.events),
			Columns:        r.popList(s.columns),
			WhenClause:     r.popIf(unsafe.Pointer(s.whenClause)),
			TransitionRels: r.popList(s.transitionRels),
			Deferrable:     bool(s.deferrable),
			Initdeferred:   bool(s.initdeferred),
			Constrrel:      readRangeVarPtr(s.constrrel),
		}

	case C.T_RuleStmt:
		s := (*C.RuleStmt)(p)
		out = &ast.RuleStmt{
			Relation:    readRangeVarPtr(s.relation),
			Rulename:    goString(s.rulename),
			WhereClause: r.popIf(unsafe.Pointer(s.whereClause)),
			Event:       ast.CmdType(int32(s.event) + 1),
			Instead:     bool(s.instead),
			Actions:     r.popList(s.actions),
			Replace:     bool(s.replace),
		}

	case C.T_CreateDomainStmt:
		s := (*C.CreateDomainStmt)(p)
		out = &ast.CreateDomainStmt{
			Domainname:  r.popList(s.domainname),
			TypeName:    popPtr[ast.TypeName](r, unsafe.Pointer(s.typeName)),
			CollClause:  popPtr[ast.CollateClause](r, unsafe.Pointer(s.collClause)),
			Constraints: r.popList(s.constraints),
		}

	case C.T_CreateTableAsStmt:
		s := (*C.CreateTableAsStmt)(p)
		out = &ast.CreateTableAsStmt{
			Query:        r.popIf(unsafe.Pointer(s.query)),
			Into:         popPtr[ast.IntoClause](r, unsafe.Pointer(s.into)),
			Objtype:      ast.ObjectType(int32(s.objtype) + 1),
			IsSelectInto: bool(s.is_select_into),
			IfNotExists:  bool(s.if_not_exists),
		}

	case C.T_RefreshMatViewStmt:
		s := (*C.RefreshMatViewStmt)(p)
		out = &ast.RefreshMatViewStmt{
			Concurrent: bool(s.concurrent),
			SkipData:   bool(s.skipData),
			Relation:   readRangeVarPtr(s.relation),
		}

	case C.T_CompositeTypeStmt:
		s := (*C.CompositeTypeStmt)(p)
		out = &ast.CompositeTypeStmt{
			Typevar:    readRangeVarPtr(s.typevar),
			Coldeflist: r.popList(s.coldeflist),
		}

	case C.T_CreateEnumStmt:
		s := (*C.CreateEnumStmt)(p)
		out = &ast.CreateEnumStmt{
			TypeName: r.popList(s.typeName),
			Vals:     r.popList(s.vals),
		}

	case C.T_CreateRangeStmt:
		s := (*C.CreateRangeStmt)(p)
		out = &ast.CreateRangeStmt{
			TypeName: r.popList(s.typeName),
			Params:   r.popList(s.params),
		}

	case C.T_AlterEnumStmt:
		s := (*C.AlterEnumStmt)(p)
		out = &ast.AlterEnumStmt{
			TypeName:           r.popList(s.typeName),
			OldVal:             goString(s.oldVal),
			NewVal:             goString(s.newVal),
			NewValNeighbor:     goString(s.newValNeighbor),
			NewValIsAfter:      bool(s.newValIsAfter),
			SkipIfNewValExists: bool(s.skipIfNewValExists),
		}

	case C.T_CreateExtensionStmt:
		s := (*C.CreateExtensionStmt)(p)
		out = &ast.CreateExtensionStmt{
			Extname:     goString(s.extname),
			IfNotExists: bool(s.if_not_exists),
			Options:     r.popList(s.options),
		}

	case C.T_CreatePublicationStmt:
		s := (*C.CreatePublicationStmt)(p)
		out = &ast.CreatePublicationStmt{
			Pubname:      goString(s.pubname),
			Options:      r.popList(s.options),
			Pubobjects:   r.popList(s.pubobjects),
			ForAllTables: bool(s.for_all_tables),
		}

	case C.T_AlterPublicationStmt:
		s := (*C.AlterPublicationStmt)(p)
		out = &ast.AlterPublicationStmt{
			Pubname:      goString(s.pubname),
			Options:      r.popList(s.options),
			Pubobjects:   r.popList(s.pubobjects),
			ForAllTables: bool(s.for_all_tables),
			Action:       ast.AlterPublicationAction(int32(s.action) + 1),
		}

	case C.T_CreateSubscriptionStmt:
		s := (*C.CreateSubscriptionStmt)(p)
		out = &ast.CreateSubscriptionStmt{
			Subname:     goString(s.subname),
			Conninfo:    goString(s.conninfo),
			Publication: r.popList(s.publication),
			Options:     r.popList(s.options),
		}

	case C.T_AlterSubscriptionStmt:
		s := (*C.AlterSubscriptionStmt)(p)
		out = &ast.AlterSubscriptionStmt{
			Kind:        ast.AlterSubscriptionType(int32(s.kind) + 1),
			Subname:     goString(s.subname),
			Conninfo:    goString(s.conninfo),
			Publication: r.popList(s.publication),
			Options:     r.popList(s.options),
		}

	case C.T_AlterOwnerStmt:
		s := (*C.AlterOwnerStmt)(p)
		out = &ast.AlterOwnerStmt{
			ObjectType: ast.ObjectType(int32(s.objectType) + 1),
			Relation:   readRangeVarPtr(s.relation),
			Object:     r.popIf(unsafe.Pointer(s.object)),
			Newowner:   readRoleSpecPtr(s.newowner),
		}

	case C.T_RenameStmt:
		s := (*C.RenameStmt)(p)
		out = &ast.RenameStmt{
			RenameType:   ast.ObjectType(int32(s.renameType) + 1),
			RelationType: ast.ObjectType(int32(s.relationType) + 1),
			Relation:     readRangeVarPtr(s.relation),
			Object:       r.popIf(unsafe.Pointer(s.object)),
			Subname:      goString(s.subname),
			Newname:      goString(s.newname),
			Behavior:     ast.DropBehavior(int32(s.behavior) + 1),
			MissingOk:    bool(s.missing_ok),
		}

	case C.T_TransactionStmt:
		s := (*C.TransactionStmt)(p)
		out = &ast.TransactionStmt{
			Kind:          ast.TransactionStmtKind(int32(s.kind) + 1),
			Options:       r.popList(s.options),
			SavepointName: goString(s.savepoint_name),
			Gid:           goString(s.gid),
			Chain:         bool(s.chain),
			Location:      int32(s.location),
		}

	case C.T_VariableSetStmt:
		s := (*C.VariableSetStmt)(p)
		out = &ast.VariableSetStmt{
			Kind:    ast.VariableSetKind(int32(s.kind) + 1),
			Name:    goString(s.name),
			Args:    r.popList(s.args),
			IsLocal: bool(s.is_local),
		}

	case C.T_ExplainStmt:
		s := (*C.ExplainStmt)(p)
		out = &ast.ExplainStmt{
			Query:   r.popIf(unsafe.Pointer(s.query)),
			Options: r.popList(s.options),
		}

	case C.T_CopyStmt:
		s := (*C.CopyStmt)(p)
		out = &ast.CopyStmt{
			Relation:    readRangeVarPtr(s.relation),
			Query:       r.popIf(unsafe.Pointer(s.query)),
			Attlist:     r.popList(s.attlist),
			IsFrom:      bool(s.is_from),
			IsProgram:   bool(s.is_program),
			Filename:    goString(s.filename),
			Options:     r.popList(s.options),
			WhereClause: r.popIf(unsafe.Pointer(s.whereClause)),
		}

	case C.T_GrantStmt:
		s := (*C.GrantStmt)(p)
		out = &ast.GrantStmt{
			IsGrant:     bool(s.is_grant),
			Targtype:    ast.GrantTargetType(int32(s.targtype) + 1),
			Objtype:     ast.ObjectType(int32(s.objtype) + 1),
			Objects:     r.popList(s.objects),
			Privileges:  r.popList(s.privileges),
			Grantees:    r.popList(s.grantees),
			GrantOption: bool(s.grant_option),
			Grantor:     readRoleSpecPtr(s.grantor),
			Behavior:    ast.DropBehavior(int32(s.behavior) + 1),
		}

	case C.T_GrantRoleStmt:
		s := (*C.GrantRoleStmt)(p)
		out = &ast.GrantRoleStmt{
			GrantedRoles: r.popList(s.granted_roles),
			GranteeRoles: r.popList(s.grantee_roles),
			IsGrant:      bool(s.is_grant),
			Opt:          r.popList(s.opt),
			Grantor:      readRoleSpecPtr(s.grantor),
			Behavior:     ast.DropBehavior(int32(s.behavior) + 1),
		}

	case C.T_LockStmt:
		s := (*C.LockStmt)(p)
		out = &ast.LockStmt{
			Relations: r.popList(s.relations),
			Mode:      int32(s.mode),
			Nowait:    bool(s.nowait),
		}

	case C.T_VacuumStmt:
		s := (*C.VacuumStmt)(p)
		out = &ast.VacuumStmt{
			Options:     r.popList(s.options),
			Rels:        r.popList(s.rels),
			IsVacuumcmd: bool(s.is_vacuumcmd),
		}

	case C.T_VacuumRelation:
		s := (*C.VacuumRelation)(p)
		out = &ast.VacuumRelation{
			Relation: readRangeVarPtr(s.relation),
			Oid:      uint32(s.oid),
			VaCols:   r.popList(s.va_cols),
		}

	case C.T_DoStmt:
		out = &ast.DoStmt{Args: r.popList((*C.DoStmt)(p).args)}

	case C.T_CallStmt:
		s := (*C.CallStmt)(p)
		out = &ast.CallStmt{
			Funccall: popPtr[ast.FuncCall](r, unsafe.Pointer(s.funccall)),
			Outargs:  r.popList(s.outargs),
		}

	case C.T_PrepareStmt:
		s := (*C.PrepareStmt)(p)
		out = &ast.PrepareStmt{
			Name:     goString(s.name),
			Argtypes: r.popList(s.argtypes),
			Query:    r.popIf(unsafe.Pointer(s.query)),
		}

	case C.T_ExecuteStmt:
		s := (*C.ExecuteStmt)(p)
		out = &ast.ExecuteStmt{
			Name:   goString(s.name),
			Params: r.popList(s.params),
		}

	case C.T_A_Expr:
		s := (*C.A_Expr)(p)
		out = &ast.AExpr{
			Kind:     ast.AExprKind(int32(s.kind) + 1),
			Name:     r.popList(s.name),
			Lexpr:    r.popIf(unsafe.Pointer(s.lexpr)),
			Rexpr:    r.popIf(unsafe.Pointer(s.rexpr)),
			Location: int32(s.location),
		}

	case C.T_ColumnRef:
		s := (*C.ColumnRef)(p)
		out = &ast.ColumnRef{Fields: r.popList(s.fields), Location: int32(s.location)}

	case C.T_TypeCast:
		s := (*C.TypeCast)(p)
		out = &ast.TypeCast{
			Arg:      r.popIf(unsafe.Pointer(s.arg)),
			TypeName: popPtr[ast.TypeName](r, unsafe.Pointer(s.typeName)),
			Location: int32(s.location),
		}

	case C.T_CollateClause:
		s := (*C.CollateClause)(p)
		out = &ast.CollateClause{
			Arg:      r.popIf(unsafe.Pointer(s.arg)),
			Collname: r.popList(s.collname),
			Location: int32(s.location),
		}

	case C.T_FuncCall:
		s := (*C.FuncCall)(p)
		out = &ast.FuncCall{
			Funcname:       r.popList(s.funcname),
			Args:           r.popList(s.args),
			AggOrder:       r.popList(s.agg_order),
			AggFilter:      r.popIf(unsafe.Pointer(s.agg_filter)),
			Over:           popPtr[ast.WindowDef](r, unsafe.Pointer(s.over)),
			AggWithinGroup: bool(s.agg_within_group),
			AggStar:        bool(s.agg_star),
			AggDistinct:    bool(s.agg_distinct),
			FuncVariadic:   bool(s.func_variadic),
			Funcformat:     ast.CoercionForm(int32(s.funcformat) + 1),
			Location:       int32(s.location),
		}

	case C.T_A_Indices:
		s := (*C.A_Indices)(p)
		out = &ast.AIndices{
			IsSlice: bool(s.is_slice),
			Lidx:    r.popIf(unsafe.Pointer(s.lidx)),
			Uidx:    r.popIf(unsafe.Pointer(s.uidx)),
		}

	case C.T_A_Indirection:
		s := (*C.A_Indirection)(p)
		out = &ast.AIndirection{
			Arg:         r.popIf(unsafe.Pointer(s.arg)),
			Indirection: r.popList(s.indirection),
		}

	case C.T_A_ArrayExpr:
		s := (*C.A_ArrayExpr)(p)
		out = &ast.AArrayExpr{Elements: r.popList(s.elements), Location: int32(s.location)}

	case C.T_SubLink:
		s := (*C.SubLink)(p)
		out = &ast.SubLink{
			SubLinkType: ast.SubLinkType(int32(s.subLinkType) + 1),
			SubLinkID:   int32(s.subLinkId),
			Testexpr:    r.popIf(unsafe.Pointer(s.testexpr)),
			OperName:    r.popList(s.operName),
			Subselect:   r.popIf(unsafe.Pointer(s.subselect)),
			Location:    int32(s.location),
		}

	case C.T_BoolExpr:
		s := (*C.BoolExpr)(p)
		out = &ast.BoolExpr{
			Boolop:   ast.BoolExprType(int32(s.boolop) + 1),
			Args:     r.popList(s.args),
			Location: int32(s.location),
		}

	case C.T_NullTest:
		s := (*C.NullTest)(p)
		out = &ast.NullTest{
			Arg:          r.popIf(unsafe.Pointer(s.arg)),
			Nulltesttype: ast.NullTestType(int32(s.nulltesttype) + 1),
			Argisrow:     bool(s.argisrow),
			Location:     int32(s.location),
		}

	case C.T_BooleanTest:
		s := (*C.BooleanTest)(p)
		out = &ast.BooleanTest{
			Arg:          r.popIf(unsafe.Pointer(s.arg)),
			Booltesttype: ast.BoolTestType(int32(s.booltesttype) + 1),
			Location:     int32(s.location),
		}

	case C.T_CaseExpr:
		s := (*C.CaseExpr)(p)
		out = &ast.CaseExpr{
			Arg:       r.popIf(unsafe.Pointer(s.arg)),
			Args:      r.popList(s.args),
			Defresult: r.popIf(unsafe.Pointer(s.defresult)),
			Location:  int32(s.location),
		}

	case C.T_CaseWhen:
		s := (*C.CaseWhen)(p)
		out = &ast.CaseWhen{
			Expr:     r.popIf(unsafe.Pointer(s.expr)),
			Result:   r.popIf(unsafe.Pointer(s.result)),
			Location: int32(s.location),
		}

	case C.T_CoalesceExpr:
		s := (*C.CoalesceExpr)(p)
		out = &ast.CoalesceExpr{Args: r.popList(s.args), Location: int32(s.location)}

	case C.T_MinMaxExpr:
		s := (*C.MinMaxExpr)(p)
		out = &ast.MinMaxExpr{
			Op:       ast.MinMaxOp(int32(s.op) + 1),
			Args:     r.popList(s.args),
			Location: int32(s.location),
		}

	case C.T_RowExpr:
		s := (*C.RowExpr)(p)
		out = &ast.RowExpr{
			Args:      r.popList(s.args),
			RowFormat: ast.CoercionForm(int32(s.row_format) + 1),
			Colnames:  r.popList(s.colnames),
			Location:  int32(s.location),
		}

	case C.T_MultiAssignRef:
		s := (*C.MultiAssignRef)(p)
		out = &ast.MultiAssignRef{
			Source:   r.popIf(unsafe.Pointer(s.source)),
			Colno:    int32(s.colno),
			Ncolumns: int32(s.ncolumns),
		}

	case C.T_CoerceToDomain:
		s := (*C.CoerceToDomain)(p)
		out = &ast.CoerceToDomain{
			Arg:            r.popIf(unsafe.Pointer(s.arg)),
			Resulttype:     uint32(s.resulttype),
			Resulttypmod:   int32(s.resulttypmod),
			Resultcollid:   uint32(s.resultcollid),
			Coercionformat: ast.CoercionForm(int32(s.coercionformat) + 1),
			Location:       int32(s.location),
		}

	case C.T_GroupingFunc:
		s := (*C.GroupingFunc)(p)
		out = &ast.GroupingFunc{
			Args:        r.popList(s.args),
			Refs:        r.popList(s.refs),
			Agglevelsup: uint32(s.agglevelsup),
			Location:    int32(s.location),
		}

	case C.T_GroupingSet:
		s := (*C.GroupingSet)(p)
		out = &ast.GroupingSet{
			Kind:     ast.GroupingSetKind(int32(s.kind) + 1),
			Content:  r.popList(s.content),
			Location: int32(s.location),
		}

	case C.T_ResTarget:
		s := (*C.ResTarget)(p)
		out = &ast.ResTarget{
			Name:        goString(s.name),
			Indirection: r.popList(s.indirection),
			Val:         r.popIf(unsafe.Pointer(s.val)),
			Location:    int32(s.location),
		}

	case C.T_RangeSubselect:
		s := (*C.RangeSubselect)(p)
		out = &ast.RangeSubselect{
			Lateral:  bool(s.lateral),
			Subquery: r.popIf(unsafe.Pointer(s.subquery)),
			Alias:    readAliasPtr(s.alias),
		}

	case C.T_RangeFunction:
		s := (*C.RangeFunction)(p)
		out = &ast.RangeFunction{
			Lateral:    bool(s.lateral),
			Ordinality: bool(s.ordinality),
			IsRowsfrom: bool(s.is_rowsfrom),
			Functions:  r.popList(s.functions),
			Alias:      readAliasPtr(s.alias),
			Coldeflist: r.popList(s.coldeflist),
		}

	case C.T_JoinExpr:
		s := (*C.JoinExpr)(p)
		out = &ast.JoinExpr{
			Jointype:       ast.JoinType(int32(s.jointype) + 1),
			IsNatural:      bool(s.isNatural),
			Larg:           r.popIf(unsafe.Pointer(s.larg)),
			Rarg:           r.popIf(unsafe.Pointer(s.rarg)),
			UsingClause:    r.popList(s.usingClause),
			JoinUsingAlias: readAliasPtr(s.join_using_alias),
			Quals:          r.popIf(unsafe.Pointer(s.quals)),
			Alias:          readAliasPtr(s.alias),
			Rtindex:        int32(s.rtindex),
		}

	case C.T_SortBy:
		s := (*C.SortBy)(p)
		out = &ast.SortBy{
			Node:        r.popIf(unsafe.Pointer(s.node)),
			SortbyDir:   ast.SortByDir(int32(s.sortby_dir) + 1),
			SortbyNulls: ast.SortByNulls(int32(s.sortby_nulls) + 1),
			UseOp:       r.popList(s.useOp),
			Location:    int32(s.location),
		}

	case C.T_WindowDef:
		s := (*C.WindowDef)(p)
		out = &ast.WindowDef{
			Name:            goString(s.name),
			Refname:         goString(s.refname),
			PartitionClause: r.popList(s.partitionClause),
			OrderClause:     r.popList(s.orderClause),
			FrameOptions:    int32(s.frameOptions),
			StartOffset:     r.popIf(unsafe.Pointer(s.startOffset)),
			EndOffset:       r.popIf(unsafe.Pointer(s.endOffset)),
			Location:        int32(s.location),
		}

	case C.T_WithClause:
		s := (*C.WithClause)(p)
		out = &ast.WithClause{
			Ctes:      r.popList(s.ctes),
			Recursive: bool(s.recursive),
			Location:  int32(s.location),
		}

	case C.T_CommonTableExpr:
		s := (*C.CommonTableExpr)(p)
		out = &ast.CommonTableExpr{
			Ctename:         goString(s.ctename),
			Aliascolnames:   r.popList(s.aliascolnames),
			Ctematerialized: ast.CTEMaterialize(int32(s.ctematerialized) + 1),
			Ctequery:        r.popIf(unsafe.Pointer(s.ctequery)),
			SearchClause:    readCTESearchClausePtr(s.search_clause),
			CycleClause:     popPtr[ast.CTECycleClause](r, unsafe.Pointer(s.cycle_clause)),
			Location:        int32(s.location),
			Cterecursive:    bool(s.cterecursive),
			Cterefcount:     int32(s.cterefcount),
			Ctecolnames:     r.popList(s.ctecolnames),
		}

	case C.T_CTECycleClause:
		s := (*C.CTECycleClause)(p)
		out = &ast.CTECycleClause{
			CycleColList:     r.popList(s.cycle_col_list),
			CycleMarkColumn:  goString(s.cycle_mark_column),
			CycleMarkValue:   r.popIf(unsafe.Pointer(s.cycle_mark_value)),
			CycleMarkDefault: r.popIf(unsafe.Pointer(s.cycle_mark_default)),
			CyclePathColumn:  goString(s.cycle_path_column),
			Location:         int32(s.location),
		}

	case C.T_IntoClause:
		s := (*C.IntoClause)(p)
		out = &ast.IntoClause{
			Rel:            readRangeVarPtr(s.rel),
			ColNames:       r.popList(s.colNames),
			AccessMethod:   goString(s.accessMethod),
			Options:        r.popList(s.options),
			OnCommit:       ast.OnCommitAction(int32(s.onCommit) + 1),
			TableSpaceName: goString(s.tableSpaceName),
			ViewQuery:      r.popIf(unsafe.Pointer(s.viewQuery)),
			SkipData:       bool(s.skipData),
		}

	case C.T_OnConflictClause:
		s := (*C.OnConflictClause)(p)
		out = &ast.OnConflictClause{
			Action:      ast.OnConflictAction(int32(s.action) + 1),
			Infer:       popPtr[ast.InferClause](r, unsafe.Pointer(s.infer)),
			TargetList:  r.popList(s.targetList),
			WhereClause: r.popIf(unsafe.Pointer(s.whereClause)),
			Location:    int32(s.location),
		}

	case C.T_InferClause:
		s := (*C.InferClause)(p)
		out = &ast.InferClause{
			IndexElems:  r.popList(s.indexElems),
			WhereClause: r.popIf(unsafe.Pointer(s.whereClause)),
			Conname:     goString(s.conname),
			Location:    int32(s.location),
		}

	case C.T_LockingClause:
		s := (*C.LockingClause)(p)
		out = &ast.LockingClause{
			LockedRels: r.popList(s.lockedRels),
			Strength:   ast.LockClauseStrength(int32(s.strength) + 1),
			WaitPolicy: ast.LockWaitPolicy(int32(s.waitPolicy) + 1),
		}

	case C.T_TypeName:
		s := (*C.TypeName)(p)
		out = &ast.TypeName{
			Names:       r.popList(s.names),
			TypeOid:     uint32(s.typeOid),
			Setof:       bool(s.setof),
			PctType:     bool(s.pct_type),
			Typmods:     r.popList(s.typmods),
			Typemod:     int32(s.typemod),
			ArrayBounds: r.popList(s.arrayBounds),
			Location:    int32(s.location),
		}

	case C.T_ColumnDef:
		s := (*C.ColumnDef)(p)
		out = &ast.ColumnDef{
			Colname:          goString(s.colname),
			TypeName:         popPtr[ast.TypeName](r, unsafe.Pointer(s.typeName)),
			Compression:      goString(s.compression),
			Inhcount:         int32(s.inhcount),
			IsLocal:          bool(s.is_local),
			IsNotNull:        bool(s.is_not_null),
			IsFromType:       bool(s.is_from_type),
			Storage:          charFlag(s.storage),
			StorageName:      goString(s.storage_name),
			RawDefault:       r.popIf(unsafe.Pointer(s.raw_default)),
			CookedDefault:    r.popIf(unsafe.Pointer(s.cooked_default)),
			Identity:         charFlag(s.identity),
			IdentitySequence: readRangeVarPtr(s.identitySequence),
			Generated:        charFlag(s.generated),
			CollClause:       popPtr[ast.CollateClause](r, unsafe.Pointer(s.collClause)),
			CollOid:          uint32(s.collOid),
			Constraints:      r.popList(s.constraints),
			Fdwoptions:       r.popList(s.fdwoptions),
			Location:         int32(s.location),
		}

	case C.T_Constraint:
		s := (*C.Constraint)(p)
		out = &ast.Constraint{
			Contype:            ast.ConstrType(int32(s.contype) + 1),
			Conname:            goString(s.conname),
			Deferrable:         bool(s.deferrable),
			Initdeferred:       bool(s.initdeferred),
			Location:           int32(s.location),
			IsNoInherit:        bool(s.is_no_inherit),
			RawExpr:            r.popIf(unsafe.Pointer(s.raw_expr)),
			CookedExpr:         goString(s.cooked_expr),
			GeneratedWhen:      charFlag(s.generated_when),
			Inhcount:           int32(s.inhcount),
			NullsNotDistinct:   bool(s.nulls_not_distinct),
			Keys:               r.popList(s.keys),
			Including:          r.popList(s.including),
			Exclusions:         r.popList(s.exclusions),
			Options:            r.popList(s.options),
			Indexname:          goString(s.indexname),
			Indexspace:         goString(s.indexspace),
			ResetDefaultTblspc: bool(s.reset_default_tblspc),
			AccessMethod:       goString(s.access_method),
			WhereClause:        r.popIf(unsafe.Pointer(s.where_clause)),
			Pktable:            readRangeVarPtr(s.pktable),
			FkAttrs:            r.popList(s.fk_attrs),
			PkAttrs:            r.popList(s.pk_attrs),
			FkMatchtype:        charFlag(s.fk_matchtype),
			FkUpdAction:        charFlag(s.fk_upd_action),
			FkDelAction:        charFlag(s.fk_del_action),
			FkDelSetCols:       r.popList(s.fk_del_set_cols),
			OldConpfeqop:       r.popList(s.old_conpfeqop),
			OldPktableOid:      uint32(s.old_pktable_oid),
			SkipValidation:     bool(s.skip_validation),
			InitiallyValid:     bool(s.initially_valid),
		}

	case C.T_DefElem:
		s := (*C.DefElem)(p)
		out = &ast.DefElem{
			Defnamespace: goString(s.defnamespace),
			Defname:      goString(s.defname),
			Arg:          r.popIf(unsafe.Pointer(s.arg)),
			Defaction:    ast.DefElemAction(int32(s.defaction) + 1),
			Location:     int32(s.location),
		}

	case C.T_IndexElem:
		s := (*C.IndexElem)(p)
		out = &ast.IndexElem{
			Name:          goString(s.name),
			Expr:          r.popIf(unsafe.Pointer(s.expr)),
			Indexcolname:  goString(s.indexcolname),
			Collation:     r.popList(s.collation),
			Opclass:       r.popList(s.opclass),
			Opclassopts:   r.popList(s.opclassopts),
			Ordering:      ast.SortByDir(int32(s.ordering) + 1),
			NullsOrdering: ast.SortByNulls(int32(s.nulls_ordering) + 1),
		}

	case C.T_PartitionSpec:
		s := (*C.PartitionSpec)(p)
		out = &ast.PartitionSpec{
			Strategy:   ast.PartitionStrategy(int32(s.strategy) + 1),
			PartParams: r.popList(s.partParams),
			Location:   int32(s.location),
		}

	case C.T_PartitionBoundSpec:
		s := (*C.PartitionBoundSpec)(p)
		out = &ast.PartitionBoundSpec{
			Strategy:    charFlag(s.strategy),
			IsDefault:   bool(s.is_default),
			Modulus:     int32(s.modulus),
			Remainder:   int32(s.remainder),
			Listdatums:  r.popList(s.listdatums),
			Lowerdatums: r.popList(s.lowerdatums),
			Upperdatums: r.popList(s.upperdatums),
			Location:    int32(s.location),
		}

	case C.T_PartitionElem:
		s := (*C.PartitionElem)(p)
		out = &ast.PartitionElem{
			Name:      goString(s.name),
			Expr:      r.popIf(unsafe.Pointer(s.expr)),
			Collation: r.popList(s.collation),
			Opclass:   r.popList(s.opclass),
			Location:  int32(s.location),
		}

	case C.T_PartitionRangeDatum:
		s := (*C.PartitionRangeDatum)(p)
		out = &ast.PartitionRangeDatum{
			Kind:     ast.PartitionRangeDatumKind(int32(s.kind) + 2),
			Value:    r.popIf(unsafe.Pointer(s.value)),
			Location: int32(s.location),
		}

	case C.T_FunctionParameter:
		s := (*C.FunctionParameter)(p)
		out = &ast.FunctionParameter{
			Name:    goString(s.name),
			ArgType: popPtr[ast.TypeName](r, unsafe.Pointer(s.argType)),
			Mode:    ast.FunctionParameterMode(int32(s.mode) + 1),
			Defexpr: r.popIf(unsafe.Pointer(s.defexpr)),
		}

	case C.T_ObjectWithArgs:
		s := (*C.ObjectWithArgs)(p)
		out = &ast.ObjectWithArgs{
			Objname:         r.popList(s.objname),
			Objargs:         r.popList(s.objargs),
			Objfuncargs:     r.popList(s.objfuncargs),
			ArgsUnspecified: bool(s.args_unspecified),
		}

	case C.T_PublicationObjSpec:
		s := (*C.PublicationObjSpec)(p)
		out = &ast.PublicationObjSpec{
			Pubobjtype: ast.PublicationObjSpecType(int32(s.pubobjtype) + 1),
			Name:       goString(s.name),
			Pubtable:   popPtr[ast.PublicationTable](r, unsafe.Pointer(s.pubtable)),
			Location:   int32(s.location),
		}

	case C.T_PublicationTable:
		s := (*C.PublicationTable)(p)
		out = &ast.PublicationTable{
			Relation:    readRangeVarPtr(s.relation),
			WhereClause: r.popIf(unsafe.Pointer(s.whereClause)),
			Columns:     r.popList(s.columns),
		}

	case C.T_JsonValueExpr:
		s := (*C.JsonValueExpr)(p)
		out = &ast.JsonValueExpr{
			RawExpr:       r.popIf(unsafe.Pointer(s.raw_expr)),
			FormattedExpr: r.popIf(unsafe.Pointer(s.formatted_expr)),
			Format:        readJsonFormatPtr(s.format),
		}

	case C.T_JsonReturning:
		out = readJsonReturningPtr((*C.JsonReturning)(p))

	case C.T_JsonOutput:
		s := (*C.JsonOutput)(p)
		out = &ast.JsonOutput{
			TypeName:  popPtr[ast.TypeName](r, unsafe.Pointer(s.typeName)),
			Returning: popPtr[ast.JsonReturning](r, unsafe.Pointer(s.returning)),
		}

	case C.T_JsonKeyValue:
		s := (*C.JsonKeyValue)(p)
		out = &ast.JsonKeyValue{
			Key:   r.popIf(unsafe.Pointer(s.key)),
			Value: popPtr[ast.JsonValueExpr](r, unsafe.Pointer(s.value)),
		}

	case C.T_JsonObjectConstructor:
		s := (*C.JsonObjectConstructor)(p)
		out = &ast.JsonObjectConstructor{
			Exprs:        r.popList(s.exprs),
			Output:       popPtr[ast.JsonOutput](r, unsafe.Pointer(s.output)),
			AbsentOnNull: bool(s.absent_on_null),
			Unique:       bool(s.unique),
			Location:     int32(s.location),
		}

	case C.T_JsonArrayConstructor:
		s := (*C.JsonArrayConstructor)(p)
		out = &ast.JsonArrayConstructor{
			Exprs:        r.popList(s.exprs),
			Output:       popPtr[ast.JsonOutput](r, unsafe.Pointer(s.output)),
			AbsentOnNull: bool(s.absent_on_null),
			Location:     int32(s.location),
		}

	case C.T_JsonArrayQueryConstructor:
		s := (*C.JsonArrayQueryConstructor)(p)
		out = &ast.JsonArrayQueryConstructor{
			Query:        r.popIf(unsafe.Pointer(s.query)),
			Output:       popPtr[ast.JsonOutput](r, unsafe.Pointer(s.output)),
			Format:       readJsonFormatPtr(s.format),
			AbsentOnNull: bool(s.absent_on_null),
			Location:     int32(s.location),
		}

	case C.T_JsonAggConstructor:
		s := (*C.JsonAggConstructor)(p)
		out = &ast.JsonAggConstructor{
			Output:    popPtr[ast.JsonOutput](r, unsafe.Pointer(s.output)),
			AggFilter: r.popIf(unsafe.Pointer(s.agg_filter)),
			AggOrder:  r.popList(s.agg_order),
			Over:      popPtr[ast.WindowDef](r, unsafe.Pointer(s.over)),
			Location:  int32(s.location),
		}

	case C.T_JsonObjectAgg:
		s := (*C.JsonObjectAgg)(p)
		out = &ast.JsonObjectAgg{
			Constructor:  popPtr[ast.JsonAggConstructor](r, unsafe.Pointer(s.constructor)),
			Arg:          popPtr[ast.JsonKeyValue](r, unsafe.Pointer(s.arg)),
			AbsentOnNull: bool(s.absent_on_null),
			Unique:       bool(s.unique),
		}

	case C.T_JsonArrayAgg:
		s := (*C.JsonArrayAgg)(p)
		out = &ast.JsonArrayAgg{
			Constructor:  popPtr[ast.JsonAggConstructor](r, unsafe.Pointer(s.constructor)),
			Arg:          popPtr[ast.JsonValueExpr](r, unsafe.Pointer(s.arg)),
			AbsentOnNull: bool(s.absent_on_null),
		}

	case C.T_JsonIsPredicate:
		s := (*C.JsonIsPredicate)(p)
		out = &ast.JsonIsPredicate{
			Expr:       r.popIf(unsafe.Pointer(s.expr)),
			Format:     readJsonFormatPtr(s.format),
			ItemType:   ast.JsonValueType(int32(s.item_type) + 1),
			UniqueKeys: bool(s.unique_keys),
			Location:   int32(s.location),
		}

	case C.T_JsonParseExpr:
		s := (*C.JsonParseExpr)(p)
		out = &ast.JsonParseExpr{
			Expr:       popPtr[ast.JsonValueExpr](r, unsafe.Pointer(s.expr)),
			Output:     popPtr[ast.JsonOutput](r, unsafe.Pointer(s.output)),
			UniqueKeys: bool(s.unique_keys),
			Location:   int32(s.location),
		}

	case C.T_JsonScalarExpr:
		s := (*C.JsonScalarExpr)(p)
		out = &ast.JsonScalarExpr{
			Expr:     r.popIf(unsafe.Pointer(s.expr)),
			Output:   popPtr[ast.JsonOutput](r, unsafe.Pointer(s.output)),
			Location: int32(s.location),
		}

	case C.T_JsonSerializeExpr:
		s := (*C.JsonSerializeExpr)(p)
		out = &ast.JsonSerializeExpr{
			Expr:     popPtr[ast.JsonValueExpr](r, unsafe.Pointer(s.expr)),
			Output:   popPtr[ast.JsonOutput](r, unsafe.Pointer(s.output)),
			Location: int32(s.location),
		}

	default:
		panic(fmt.Sprintf("pgbridge: iterative reader: unhandled collect tag %d", int(nodeTag(p))))
	}
	r.results = append(r.results, out)
}
