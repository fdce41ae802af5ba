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
	"math"
	"unsafe"

	"github.com/AleutianAI/pgbridge/pkg/ast"
)

// writer rebuilds C parse tree nodes from ast values inside an active
// deparse context. The first failure sticks; later writes become
// no-ops, so call sites stay free of error plumbing and the caller
// checks w.err once at the end.
type writer struct {
	err error
}

func (w *writer) failf(format string, args ...any) {
	if w.err == nil {
		w.err = &Error{Op: ErrDeparse, Message: fmt.Sprintf(format, args...)}
	}
}

// cint narrows an Integer value to the C int the tree stores. The
// parser never yields a value outside 32 bits; a hand-built tree can,
// and silently truncating one would deparse the wrong literal.
func (w *writer) cint(v int64) C.int {
	if v < math.MinInt32 || v > math.MaxInt32 {
		w.failf("integer value %d does not fit the 32-bit tree field", v)
		return 0
	}
	return C.int(v)
}

// alloc returns a zeroed node of the given size with its tag set.
func alloc(size C.size_t, tag int32) unsafe.Pointer {
	return C.pg_query_alloc_node(size, C.int(tag))
}

// pgStr copies a Go string into the active context. Empty strings
// become NULL, matching how the grammar leaves absent names.
func pgStr(s string) *C.char {
	if s == "" {
		return nil
	}
	cs := C.CString(s)
	defer C.free(unsafe.Pointer(cs))
	return C.pg_query_pstrdup(cs)
}

// cdown removes the zero sentinel the Go enums carry: C enums start at
// 0 where ours start at 1. Unset values clamp to the first C value.
func cdown(v int32) int32 {
	if v <= 0 {
		return 0
	}
	return v - 1
}

// persistence defaults an unset relation persistence to permanent.
func persistence(s string) C.char {
	if s == "" {
		return C.char('p')
	}
	return flagChar(s)
}

// writeStmts builds the statement list handed to the C deparser.
func (w *writer) writeStmts(stmts []ast.RawStmt) *C.List {
	var l *C.List
	for i := range stmts {
		rs := (*C.RawStmt)(alloc(C.sizeof_RawStmt, C.T_RawStmt))
		rs.stmt = (*C.Node)(unsafe.Pointer(w.writeNode(stmts[i].Stmt)))
		rs.stmt_location = C.ParseLoc(stmts[i].StmtLocation)
		rs.stmt_len = C.ParseLoc(stmts[i].StmtLen)
		if l == nil {
			l = C.pg_query_list_make1(unsafe.Pointer(rs))
		} else {
			l = C.pg_query_list_append(l, unsafe.Pointer(rs))
		}
	}
	return l
}

// writeList converts a node slice, keeping nil elements as null list
// cells to preserve cardinality.
func (w *writer) writeList(items []ast.Node) *C.List {
	var l *C.List
	for _, it := range items {
		p := unsafe.Pointer(w.writeNode(it))
		if l == nil {
			l = C.pg_query_list_make1(p)
		} else {
			l = C.pg_query_list_append(l, p)
		}
	}
	return l
}

// writeNode dispatches one ast node on its concrete type. Kinds the
// model cannot represent faithfully, Other above all, record an
// ErrDeparse instead of guessing.
func (w *writer) writeNode(n ast.Node) unsafe.Pointer {
	if n == nil || w.err != nil {
		return nil
	}
	switch v := n.(type) {
	case *ast.Integer:
		iv := (*C.Integer)(alloc(C.sizeof_Integer, C.T_Integer))
		iv.ival = w.cint(v.Ival)
		return unsafe.Pointer(iv)
	case *ast.Float:
		fv := (*C.Float)(alloc(C.sizeof_Float, C.T_Float))
		fv.fval = pgStr(v.Fval)
		return unsafe.Pointer(fv)
	case *ast.Boolean:
		bv := (*C.Boolean)(alloc(C.sizeof_Boolean, C.T_Boolean))
		bv.boolval = C.bool(v.Boolval)
		return unsafe.Pointer(bv)
	case *ast.String:
		sv := (*C.String)(alloc(C.sizeof_String, C.T_String))
		sv.sval = pgStr(v.Sval)
		return unsafe.Pointer(sv)
	case *ast.BitString:
		bv := (*C.BitString)(alloc(C.sizeof_BitString, C.T_BitString))
		bv.bsval = pgStr(v.Bsval)
		return unsafe.Pointer(bv)
	case *ast.Null:
		return nil
	case *ast.AStar:
		return alloc(C.sizeof_A_Star, C.T_A_Star)
	case *ast.List:
		return unsafe.Pointer(w.writeList(v.Items))
	case *ast.AConst:
		return w.writeAConst(v)

	case *ast.SelectStmt:
		return unsafe.Pointer(w.writeSelectStmt(v))
	case *ast.InsertStmt:
		return w.writeInsertStmt(v)
	case *ast.UpdateStmt:
		return w.writeUpdateStmt(v)
	case *ast.DeleteStmt:
		return w.writeDeleteStmt(v)
	case *ast.MergeStmt:
		return w.writeMergeStmt(v)
	case *ast.MergeWhenClause:
		return w.writeMergeWhenClause(v)
	case *ast.MergeAction:
		return w.writeMergeAction(v)
	case *ast.CreateStmt:
		return w.writeCreateStmt(v)
	case *ast.AlterTableStmt:
		return w.writeAlterTableStmt(v)
	case *ast.AlterTableCmd:
		return w.writeAlterTableCmd(v)
	case *ast.DropStmt:
		return w.writeDropStmt(v)
	case *ast.TruncateStmt:
		return w.writeTruncateStmt(v)
	case *ast.IndexStmt:
		return w.writeIndexStmt(v)
	case *ast.CreateSchemaStmt:
		return w.writeCreateSchemaStmt(v)
	case *ast.ViewStmt:
		return w.writeViewStmt(v)
	case *ast.CreateFunctionStmt:
		return w.writeCreateFunctionStmt(v)
	case *ast.AlterFunctionStmt:
		return w.writeAlterFunctionStmt(v)
	case *ast.CreateSeqStmt:
		return w.writeCreateSeqStmt(v)
	case *ast.AlterSeqStmt:
		return w.writeAlterSeqStmt(v)
	case *ast.CreateTrigStmt:
		return w.writeCreateTrigStmt(v)
	case *ast.RuleStmt:
		return w.writeRuleStmt(v)
	case *ast.CreateDomainStmt:
		return w.writeCreateDomainStmt(v)
	case *ast.CreateTableAsStmt:
		return w.writeCreateTableAsStmt(v)
	case *ast.RefreshMatViewStmt:
		return w.writeRefreshMatViewStmt(v)
	case *ast.CompositeTypeStmt:
		return w.writeCompositeTypeStmt(v)
	case *ast.CreateEnumStmt:
		return w.writeCreateEnumStmt(v)
	case *ast.CreateRangeStmt:
		return w.writeCreateRangeStmt(v)
	case *ast.AlterEnumStmt:
		return w.writeAlterEnumStmt(v)
	case *ast.CreateExtensionStmt:
		return w.writeCreateExtensionStmt(v)
	case *ast.CreatePublicationStmt:
		return w.writeCreatePublicationStmt(v)
	case *ast.AlterPublicationStmt:
		return w.writeAlterPublicationStmt(v)
	case *ast.CreateSubscriptionStmt:
		return w.writeCreateSubscriptionStmt(v)
	case *ast.AlterSubscriptionStmt:
		return w.writeAlterSubscriptionStmt(v)
	case *ast.AlterOwnerStmt:
		return w.writeAlterOwnerStmt(v)
	case *ast.RenameStmt:
		return w.writeRenameStmt(v)
	case *ast.TransactionStmt:
		return w.writeTransactionStmt(v)
	case *ast.VariableSetStmt:
		return w.writeVariableSetStmt(v)
	case *ast.VariableShowStmt:
		vs := (*C.VariableShowStmt)(alloc(C.sizeof_VariableShowStmt, C.T_VariableShowStmt))
		vs.name = pgStr(v.Name)
		return unsafe.Pointer(vs)
	case *ast.ExplainStmt:
		return w.writeExplainStmt(v)
	case *ast.CopyStmt:
		return w.writeCopyStmt(v)
	case *ast.GrantStmt:
		return w.writeGrantStmt(v)
	case *ast.GrantRoleStmt:
		return w.writeGrantRoleStmt(v)
	case *ast.LockStmt:
		return w.writeLockStmt(v)
	case *ast.VacuumStmt:
		return w.writeVacuumStmt(v)
	case *ast.VacuumRelation:
		return w.writeVacuumRelation(v)
	case *ast.DoStmt:
		ds := (*C.DoStmt)(alloc(C.sizeof_DoStmt, C.T_DoStmt))
		ds.args = w.writeList(v.Args)
		return unsafe.Pointer(ds)
	case *ast.CallStmt:
		cs := (*C.CallStmt)(alloc(C.sizeof_CallStmt, C.T_CallStmt))
		cs.funccall = (*C.FuncCall)(w.writeNode(v.Funccall))
		cs.outargs = w.writeList(v.Outargs)
		return unsafe.Pointer(cs)
	case *ast.NotifyStmt:
		ns := (*C.NotifyStmt)(alloc(C.sizeof_NotifyStmt, C.T_NotifyStmt))
		ns.conditionname = pgStr(v.Conditionname)
		ns.payload = pgStr(v.Payload)
		return unsafe.Pointer(ns)
	case *ast.ListenStmt:
		ls := (*C.ListenStmt)(alloc(C.sizeof_ListenStmt, C.T_ListenStmt))
		ls.conditionname = pgStr(v.Conditionname)
		return unsafe.Pointer(ls)
	case *ast.UnlistenStmt:
		us := (*C.UnlistenStmt)(alloc(C.sizeof_UnlistenStmt, C.T_UnlistenStmt))
		us.conditionname = pgStr(v.Conditionname)
		return unsafe.Pointer(us)
	case *ast.CheckPointStmt:
		return alloc(C.sizeof_CheckPointStmt, C.T_CheckPointStmt)
	case *ast.DiscardStmt:
		ds := (*C.DiscardStmt)(alloc(C.sizeof_DiscardStmt, C.T_DiscardStmt))
		ds.target = C.DiscardMode(cdown(int32(v.Target)))
		return unsafe.Pointer(ds)
	case *ast.PrepareStmt:
		ps := (*C.PrepareStmt)(alloc(C.sizeof_PrepareStmt, C.T_PrepareStmt))
		ps.name = pgStr(v.Name)
		ps.argtypes = w.writeList(v.Argtypes)
		ps.query = (*C.Node)(w.writeNode(v.Query))
		return unsafe.Pointer(ps)
	case *ast.ExecuteStmt:
		es := (*C.ExecuteStmt)(alloc(C.sizeof_ExecuteStmt, C.T_ExecuteStmt))
		es.name = pgStr(v.Name)
		es.params = w.writeList(v.Params)
		return unsafe.Pointer(es)
	case *ast.DeallocateStmt:
		ds := (*C.DeallocateStmt)(alloc(C.sizeof_DeallocateStmt, C.T_DeallocateStmt))
		ds.name = pgStr(v.Name)
		ds.isall = C.bool(v.IsAll)
		ds.location = C.ParseLoc(v.Location)
		return unsafe.Pointer(ds)
	case *ast.ClosePortalStmt:
		cs := (*C.ClosePortalStmt)(alloc(C.sizeof_ClosePortalStmt, C.T_ClosePortalStmt))
		cs.portalname = pgStr(v.Portalname)
		return unsafe.Pointer(cs)
	case *ast.FetchStmt:
		fs := (*C.FetchStmt)(alloc(C.sizeof_FetchStmt, C.T_FetchStmt))
		fs.direction = C.FetchDirection(cdown(int32(v.Direction)))
		fs.howMany = C.long(v.HowMany)
		fs.portalname = pgStr(v.Portalname)
		fs.ismove = C.bool(v.Ismove)
		return unsafe.Pointer(fs)

	case *ast.AExpr:
		return w.writeAExpr(v)
	case *ast.ColumnRef:
		cr := (*C.ColumnRef)(alloc(C.sizeof_ColumnRef, C.T_ColumnRef))
		cr.fields = w.writeList(v.Fields)
		cr.location = C.ParseLoc(v.Location)
		return unsafe.Pointer(cr)
	case *ast.ParamRef:
		pr := (*C.ParamRef)(alloc(C.sizeof_ParamRef, C.T_ParamRef))
		pr.number = C.int(v.Number)
		pr.location = C.ParseLoc(v.Location)
		return unsafe.Pointer(pr)
	case *ast.TypeCast:
		tc := (*C.TypeCast)(alloc(C.sizeof_TypeCast, C.T_TypeCast))
		tc.arg = (*C.Node)(w.writeNode(v.Arg))
		tc.typeName = w.writeTypeName(v.TypeName)
		tc.location = C.ParseLoc(v.Location)
		return unsafe.Pointer(tc)
	case *ast.CollateClause:
		return unsafe.Pointer(w.writeCollateClause(v))
	case *ast.FuncCall:
		return w.writeFuncCall(v)
	case *ast.AIndices:
		ai := (*C.A_Indices)(alloc(C.sizeof_A_Indices, C.T_A_Indices))
		ai.is_slice = C.bool(v.IsSlice)
		ai.lidx = (*C.Node)(w.writeNode(v.Lidx))
		ai.uidx = (*C.Node)(w.writeNode(v.Uidx))
		return unsafe.Pointer(ai)
	case *ast.AIndirection:
		ai := (*C.A_Indirection)(alloc(C.sizeof_A_Indirection, C.T_A_Indirection))
		ai.arg = (*C.Node)(w.writeNode(v.Arg))
		ai.indirection = w.writeList(v.Indirection)
		return unsafe.Pointer(ai)
	case *ast.AArrayExpr:
		ae := (*C.A_ArrayExpr)(alloc(C.sizeof_A_ArrayExpr, C.T_A_ArrayExpr))
		ae.elements = w.writeList(v.Elements)
		ae.location = C.ParseLoc(v.Location)
		return unsafe.Pointer(ae)
	case *ast.SubLink:
		return w.writeSubLink(v)
	case *ast.BoolExpr:
		be := (*C.BoolExpr)(alloc(C.sizeof_BoolExpr, C.T_BoolExpr))
		be.boolop = C.BoolExprType(cdown(int32(v.Boolop)))
		be.args = w.writeList(v.Args)
		be.location = C.ParseLoc(v.Location)
		return unsafe.Pointer(be)
	case *ast.NullTest:
		nt := (*C.NullTest)(alloc(C.sizeof_NullTest, C.T_NullTest))
		nt.arg = (*C.Expr)(w.writeNode(v.Arg))
		nt.nulltesttype = C.NullTestType(cdown(int32(v.Nulltesttype)))
		nt.argisrow = C.bool(v.Argisrow)
		nt.location = C.ParseLoc(v.Location)
		return unsafe.Pointer(nt)
	case *ast.BooleanTest:
		bt := (*C.BooleanTest)(alloc(C.sizeof_BooleanTest, C.T_BooleanTest))
		bt.arg = (*C.Expr)(w.writeNode(v.Arg))
		bt.booltesttype = C.BoolTestType(cdown(int32(v.Booltesttype)))
		bt.location = C.ParseLoc(v.Location)
		return unsafe.Pointer(bt)
	case *ast.CaseExpr:
		ce := (*C.CaseExpr)(alloc(C.sizeof_CaseExpr, C.T_CaseExpr))
		ce.arg = (*C.Expr)(w.writeNode(v.Arg))
		ce.args = w.writeList(v.Args)
		ce.defresult = (*C.Expr)(w.writeNode(v.Defresult))
		ce.location = C.ParseLoc(v.Location)
		return unsafe.Pointer(ce)
	case *ast.CaseWhen:
		cw := (*C.CaseWhen)(alloc(C.sizeof_CaseWhen, C.T_CaseWhen))
		cw.expr = (*C.Expr)(w.writeNode(v.Expr))
		cw.result = (*C.Expr)(w.writeNode(v.Result))
		cw.location = C.ParseLoc(v.Location)
		return unsafe.Pointer(cw)
	case *ast.CoalesceExpr:
		ce := (*C.CoalesceExpr)(alloc(C.sizeof_CoalesceExpr, C.T_CoalesceExpr))
		ce.args = w.writeList(v.Args)
		ce.location = C.ParseLoc(v.Location)
		return unsafe.Pointer(ce)
	case *ast.MinMaxExpr:
		mm := (*C.MinMaxExpr)(alloc(C.sizeof_MinMaxExpr, C.T_MinMaxExpr))
		mm.op = C.MinMaxOp(cdown(int32(v.Op)))
		mm.args = w.writeList(v.Args)
		mm.location = C.ParseLoc(v.Location)
		return unsafe.Pointer(mm)
	case *ast.RowExpr:
		re := (*C.RowExpr)(alloc(C.sizeof_RowExpr, C.T_RowExpr))
		re.args = w.writeList(v.Args)
		re.row_format = C.CoercionForm(cdown(int32(v.RowFormat)))
		re.colnames = w.writeList(v.Colnames)
		re.location = C.ParseLoc(v.Location)
		return unsafe.Pointer(re)
	case *ast.SQLValueFunction:
		sv := (*C.SQLValueFunction)(alloc(C.sizeof_SQLValueFunction, C.T_SQLValueFunction))
		sv.op = C.SQLValueFunctionOp(cdown(int32(v.Op)))
		sv.typmod = C.int32(v.Typmod)
		sv.location = C.ParseLoc(v.Location)
		return unsafe.Pointer(sv)
	case *ast.SetToDefault:
		sd := (*C.SetToDefault)(alloc(C.sizeof_SetToDefault, C.T_SetToDefault))
		sd.typeId = C.Oid(v.TypeID)
		sd.typeMod = C.int32(v.TypeMod)
		sd.location = C.ParseLoc(v.Location)
		return unsafe.Pointer(sd)
	case *ast.MultiAssignRef:
		ma := (*C.MultiAssignRef)(alloc(C.sizeof_MultiAssignRef, C.T_MultiAssignRef))
		ma.source = (*C.Node)(w.writeNode(v.Source))
		ma.colno = C.int(v.Colno)
		ma.ncolumns = C.int(v.Ncolumns)
		return unsafe.Pointer(ma)
	case *ast.CoerceToDomain:
		cd := (*C.CoerceToDomain)(alloc(C.sizeof_CoerceToDomain, C.T_CoerceToDomain))
		cd.arg = (*C.Expr)(w.writeNode(v.Arg))
		cd.resulttype = C.Oid(v.Resulttype)
		cd.resulttypmod = C.int32(v.Resulttypmod)
		cd.resultcollid = C.Oid(v.Resultcollid)
		cd.coercionformat = C.CoercionForm(cdown(int32(v.Coercionformat)))
		cd.location = C.ParseLoc(v.Location)
		return unsafe.Pointer(cd)
	case *ast.GroupingFunc:
		gf := (*C.GroupingFunc)(alloc(C.sizeof_GroupingFunc, C.T_GroupingFunc))
		gf.args = w.writeList(v.Args)
		gf.refs = w.writeList(v.Refs)
		gf.agglevelsup = C.Index(v.Agglevelsup)
		gf.location = C.ParseLoc(v.Location)
		return unsafe.Pointer(gf)
	case *ast.GroupingSet:
		gs := (*C.GroupingSet)(alloc(C.sizeof_GroupingSet, C.T_GroupingSet))
		gs.kind = C.GroupingSetKind(cdown(int32(v.Kind)))
		gs.content = w.writeList(v.Content)
		gs.location = C.ParseLoc(v.Location)
		return unsafe.Pointer(gs)

	case *ast.ResTarget:
		rt := (*C.ResTarget)(alloc(C.sizeof_ResTarget, C.T_ResTarget))
		rt.name = pgStr(v.Name)
		rt.indirection = w.writeList(v.Indirection)
		rt.val = (*C.Node)(w.writeNode(v.Val))
		rt.location = C.ParseLoc(v.Location)
		return unsafe.Pointer(rt)
	case *ast.RangeVar:
		return unsafe.Pointer(w.writeRangeVar(v))
	case *ast.RangeSubselect:
		rs := (*C.RangeSubselect)(alloc(C.sizeof_RangeSubselect, C.T_RangeSubselect))
		rs.lateral = C.bool(v.Lateral)
		rs.subquery = (*C.Node)(w.writeNode(v.Subquery))
		rs.alias = w.writeAlias(v.Alias)
		return unsafe.Pointer(rs)
	case *ast.RangeFunction:
		rf := (*C.RangeFunction)(alloc(C.sizeof_RangeFunction, C.T_RangeFunction))
		rf.lateral = C.bool(v.Lateral)
		rf.ordinality = C.bool(v.Ordinality)
		rf.is_rowsfrom = C.bool(v.IsRowsfrom)
		rf.functions = w.writeList(v.Functions)
		rf.alias = w.writeAlias(v.Alias)
		rf.coldeflist = w.writeList(v.Coldeflist)
		return unsafe.Pointer(rf)
	case *ast.JoinExpr:
		return w.writeJoinExpr(v)
	case *ast.SortBy:
		sb := (*C.SortBy)(alloc(C.sizeof_SortBy, C.T_SortBy))
		sb.node = (*C.Node)(w.writeNode(v.Node))
		sb.sortby_dir = C.SortByDir(cdown(int32(v.SortbyDir)))
		sb.sortby_nulls = C.SortByNulls(cdown(int32(v.SortbyNulls)))
		sb.useOp = w.writeList(v.UseOp)
		sb.location = C.ParseLoc(v.Location)
		return unsafe.Pointer(sb)
	case *ast.WindowDef:
		return unsafe.Pointer(w.writeWindowDef(v))
	case *ast.WithClause:
		return unsafe.Pointer(w.writeWithClause(v))
	case *ast.CommonTableExpr:
		return w.writeCommonTableExpr(v)
	case *ast.CTESearchClause:
		return unsafe.Pointer(w.writeCTESearchClause(v))
	case *ast.CTECycleClause:
		return unsafe.Pointer(w.writeCTECycleClause(v))
	case *ast.IntoClause:
		return unsafe.Pointer(w.writeIntoClause(v))
	case *ast.OnConflictClause:
		return unsafe.Pointer(w.writeOnConflictClause(v))
	case *ast.InferClause:
		return unsafe.Pointer(w.writeInferClause(v))
	case *ast.LockingClause:
		lc := (*C.LockingClause)(alloc(C.sizeof_LockingClause, C.T_LockingClause))
		lc.lockedRels = w.writeList(v.LockedRels)
		lc.strength = C.LockClauseStrength(cdown(int32(v.Strength)))
		lc.waitPolicy = C.LockWaitPolicy(cdown(int32(v.WaitPolicy)))
		return unsafe.Pointer(lc)
	case *ast.TypeName:
		return unsafe.Pointer(w.writeTypeName(v))
	case *ast.ColumnDef:
		return w.writeColumnDef(v)
	case *ast.Constraint:
		return w.writeConstraint(v)
	case *ast.DefElem:
		de := (*C.DefElem)(alloc(C.sizeof_DefElem, C.T_DefElem))
		de.defnamespace = pgStr(v.Defnamespace)
		de.defname = pgStr(v.Defname)
		de.arg = (*C.Node)(w.writeNode(v.Arg))
		de.defaction = C.DefElemAction(cdown(int32(v.Defaction)))
		de.location = C.ParseLoc(v.Location)
		return unsafe.Pointer(de)
	case *ast.IndexElem:
		ie := (*C.IndexElem)(alloc(C.sizeof_IndexElem, C.T_IndexElem))
		ie.name = pgStr(v.Name)
		ie.expr = (*C.Node)(w.writeNode(v.Expr))
		ie.indexcolname = pgStr(v.Indexcolname)
		ie.collation = w.writeList(v.Collation)
		ie.opclass = w.writeList(v.Opclass)
		ie.opclassopts = w.writeList(v.Opclassopts)
		ie.ordering = C.SortByDir(cdown(int32(v.Ordering)))
		ie.nulls_ordering = C.SortByNulls(cdown(int32(v.NullsOrdering)))
		return unsafe.Pointer(ie)
	case *ast.PartitionSpec:
		return unsafe.Pointer(w.writePartitionSpec(v))
	case *ast.PartitionBoundSpec:
		return unsafe.Pointer(w.writePartitionBoundSpec(v))
	case *ast.PartitionElem:
		pe := (*C.PartitionElem)(alloc(C.sizeof_PartitionElem, C.T_PartitionElem))
		pe.name = pgStr(v.Name)
		pe.expr = (*C.Node)(w.writeNode(v.Expr))
		pe.collation = w.writeList(v.Collation)
		pe.opclass = w.writeList(v.Opclass)
		pe.location = C.ParseLoc(v.Location)
		return unsafe.Pointer(pe)
	case *ast.PartitionRangeDatum:
		pd := (*C.PartitionRangeDatum)(alloc(C.sizeof_PartitionRangeDatum, C.T_PartitionRangeDatum))
		// This C enum starts at -1, so the sentinel shift is -2.
		pd.kind = C.PartitionRangeDatumKind(int32(v.Kind) - 2)
		pd.value = (*C.Node)(w.writeNode(v.Value))
		pd.location = C.ParseLoc(v.Location)
		return unsafe.Pointer(pd)
	case *ast.Alias:
		return unsafe.Pointer(w.writeAlias(v))
	case *ast.RoleSpec:
		return unsafe.Pointer(w.writeRoleSpec(v))
	case *ast.FunctionParameter:
		fp := (*C.FunctionParameter)(alloc(C.sizeof_FunctionParameter, C.T_FunctionParameter))
		fp.name = pgStr(v.Name)
		fp.argType = w.writeTypeName(v.ArgType)
		fp.mode = C.FunctionParameterMode(cdown(int32(v.Mode)))
		fp.defexpr = (*C.Node)(w.writeNode(v.Defexpr))
		return unsafe.Pointer(fp)
	case *ast.ObjectWithArgs:
		return unsafe.Pointer(w.writeObjectWithArgs(v))
	case *ast.AccessPriv:
		ap := (*C.AccessPriv)(alloc(C.sizeof_AccessPriv, C.T_AccessPriv))
		ap.priv_name = pgStr(v.PrivName)
		ap.cols = w.writeList(v.Cols)
		return unsafe.Pointer(ap)
	case *ast.PublicationObjSpec:
		po := (*C.PublicationObjSpec)(alloc(C.sizeof_PublicationObjSpec, C.T_PublicationObjSpec))
		po.pubobjtype = C.PublicationObjSpecType(cdown(int32(v.Pubobjtype)))
		po.name = pgStr(v.Name)
		po.pubtable = w.writePublicationTable(v.Pubtable)
		po.location = C.ParseLoc(v.Location)
		return unsafe.Pointer(po)
	case *ast.PublicationTable:
		return unsafe.Pointer(w.writePublicationTable(v))
	case *ast.TriggerTransition:
		tt := (*C.TriggerTransition)(alloc(C.sizeof_TriggerTransition, C.T_TriggerTransition))
		tt.name = pgStr(v.Name)
		tt.isNew = C.bool(v.IsNew)
		tt.isTable = C.bool(v.IsTable)
		return unsafe.Pointer(tt)

	case *ast.JsonFormat:
		return unsafe.Pointer(w.writeJsonFormat(v))
	case *ast.JsonValueExpr:
		return unsafe.Pointer(w.writeJsonValueExpr(v))
	case *ast.JsonKeyValue:
		return unsafe.Pointer(w.writeJsonKeyValue(v))
	case *ast.JsonObjectConstructor:
		jc := (*C.JsonObjectConstructor)(alloc(C.sizeof_JsonObjectConstructor, C.T_JsonObjectConstructor))
		jc.exprs = w.writeList(v.Exprs)
		jc.output = w.writeJsonOutput(v.Output)
		jc.absent_on_null = C.bool(v.AbsentOnNull)
		jc.unique = C.bool(v.Unique)
		jc.location = C.ParseLoc(v.Location)
		return unsafe.Pointer(jc)
	case *ast.JsonArrayConstructor:
		jc := (*C.JsonArrayConstructor)(alloc(C.sizeof_JsonArrayConstructor, C.T_JsonArrayConstructor))
		jc.exprs = w.writeList(v.Exprs)
		jc.output = w.writeJsonOutput(v.Output)
		jc.absent_on_null = C.bool(v.AbsentOnNull)
		jc.location = C.ParseLoc(v.Location)
		return unsafe.Pointer(jc)
	case *ast.JsonArrayQueryConstructor:
		jc := (*C.JsonArrayQueryConstructor)(alloc(C.sizeof_JsonArrayQueryConstructor, C.T_JsonArrayQueryConstructor))
		jc.query = (*C.Node)(w.writeNode(v.Query))
		jc.output = w.writeJsonOutput(v.Output)
		jc.format = w.writeJsonFormat(v.Format)
		jc.absent_on_null = C.bool(v.AbsentOnNull)
		jc.location = C.ParseLoc(v.Location)
		return unsafe.Pointer(jc)
	case *ast.JsonObjectAgg:
		ja := (*C.JsonObjectAgg)(alloc(C.sizeof_JsonObjectAgg, C.T_JsonObjectAgg))
		ja.constructor = w.writeJsonAggConstructor(v.Constructor)
		ja.arg = w.writeJsonKeyValue(v.Arg)
		ja.absent_on_null = C.bool(v.AbsentOnNull)
		ja.unique = C.bool(v.Unique)
		return unsafe.Pointer(ja)
	case *ast.JsonArrayAgg:
		ja := (*C.JsonArrayAgg)(alloc(C.sizeof_JsonArrayAgg, C.T_JsonArrayAgg))
		ja.constructor = w.writeJsonAggConstructor(v.Constructor)
		ja.arg = w.writeJsonValueExpr(v.Arg)
		ja.absent_on_null = C.bool(v.AbsentOnNull)
		return unsafe.Pointer(ja)
	case *ast.JsonIsPredicate:
		jp := (*C.JsonIsPredicate)(alloc(C.sizeof_JsonIsPredicate, C.T_JsonIsPredicate))
		jp.expr = (*C.Node)(w.writeNode(v.Expr))
		jp.format = w.writeJsonFormat(v.Format)
		jp.item_type = C.JsonValueType(cdown(int32(v.ItemType)))
		jp.unique_keys = C.bool(v.UniqueKeys)
		jp.location = C.ParseLoc(v.Location)
		return unsafe.Pointer(jp)
	case *ast.JsonParseExpr:
		jp := (*C.JsonParseExpr)(alloc(C.sizeof_JsonParseExpr, C.T_JsonParseExpr))
		jp.expr = w.writeJsonValueExpr(v.Expr)
		jp.output = w.writeJsonOutput(v.Output)
		jp.unique_keys = C.bool(v.UniqueKeys)
		jp.location = C.ParseLoc(v.Location)
		return unsafe.Pointer(jp)
	case *ast.JsonScalarExpr:
		js := (*C.JsonScalarExpr)(alloc(C.sizeof_JsonScalarExpr, C.T_JsonScalarExpr))
		js.expr = (*C.Expr)(w.writeNode(v.Expr))
		js.output = w.writeJsonOutput(v.Output)
		js.location = C.ParseLoc(v.Location)
		return unsafe.Pointer(js)
	case *ast.JsonSerializeExpr:
		js := (*C.JsonSerializeExpr)(alloc(C.sizeof_JsonSerializeExpr, C.T_JsonSerializeExpr))
		js.expr = w.writeJsonValueExpr(v.Expr)
		js.output = w.writeJsonOutput(v.Output)
		js.location = C.ParseLoc(v.Location)
		return unsafe.Pointer(js)
	case *ast.JsonReturning:
		return unsafe.Pointer(w.writeJsonReturning(v))

	case *ast.Other:
		w.failf("cannot deparse an Other node; the subtree was not decoded on read")
		return nil
	}
	w.failf("cannot deparse node kind %s", nodeKindName(n))
	return nil
}

// writeAConst fills the in-struct value union after the node header.
func (w *writer) writeAConst(v *ast.AConst) unsafe.Pointer {
	ac := (*C.A_Const)(alloc(C.sizeof_A_Const, C.T_A_Const))
	ac.isnull = C.bool(v.Isnull)
	ac.location = C.ParseLoc(v.Location)
	if v.Isnull {
		return unsafe.Pointer(ac)
	}
	vp := unsafe.Pointer(&ac.val)
	switch val := v.Val.(type) {
	case *ast.Integer:
		iv := (*C.Integer)(vp)
		iv._type = C.T_Integer
		iv.ival = w.cint(val.Ival)
	case *ast.Float:
		fv := (*C.Float)(vp)
		fv._type = C.T_Float
		fv.fval = pgStr(val.Fval)
	case *ast.Boolean:
		bv := (*C.Boolean)(vp)
		bv._type = C.T_Boolean
		bv.boolval = C.bool(val.Boolval)
	case *ast.String:
		sv := (*C.String)(vp)
		sv._type = C.T_String
		sv.sval = pgStr(val.Sval)
	case *ast.BitString:
		bv := (*C.BitString)(vp)
		bv._type = C.T_BitString
		bv.bsval = pgStr(val.Bsval)
	case nil:
		w.failf("constant carries neither a value nor the null flag")
	default:
		w.failf("constant value kind %s is not a scalar", nodeKindName(v.Val))
	}
	return unsafe.Pointer(ac)
}

// --- typed struct writers ---

func (w *writer) writeRangeVar(v *ast.RangeVar) *C.RangeVar {
	if v == nil {
		return nil
	}
	rv := (*C.RangeVar)(alloc(C.sizeof_RangeVar, C.T_RangeVar))
	rv.catalogname = pgStr(v.Catalogname)
	rv.schemaname = pgStr(v.Schemaname)
	rv.relname = pgStr(v.Relname)
	rv.inh = C.bool(v.Inh)
	rv.relpersistence = persistence(v.Relpersistence)
	rv.alias = w.writeAlias(v.Alias)
	rv.location = C.ParseLoc(v.Location)
	return rv
}

func (w *writer) writeAlias(v *ast.Alias) *C.Alias {
	if v == nil {
		return nil
	}
	a := (*C.Alias)(alloc(C.sizeof_Alias, C.T_Alias))
	a.aliasname = pgStr(v.Aliasname)
	a.colnames = w.writeList(v.Colnames)
	return a
}

func (w *writer) writeRoleSpec(v *ast.RoleSpec) *C.RoleSpec {
	if v == nil {
		return nil
	}
	rs := (*C.RoleSpec)(alloc(C.sizeof_RoleSpec, C.T_RoleSpec))
	rs.roletype = C.RoleSpecType(cdown(int32(v.Roletype)))
	rs.rolename = pgStr(v.Rolename)
	rs.location = C.ParseLoc(v.Location)
	return rs
}

func (w *writer) writeTypeName(v *ast.TypeName) *C.TypeName {
	if v == nil {
		return nil
	}
	tn := (*C.TypeName)(alloc(C.sizeof_TypeName, C.T_TypeName))
	tn.names = w.writeList(v.Names)
	tn.typeOid = C.Oid(v.TypeOid)
	tn.setof = C.bool(v.Setof)
	tn.pct_type = C.bool(v.PctType)
	tn.typmods = w.writeList(v.Typmods)
	tn.typemod = C.int32(v.Typemod)
	tn.arrayBounds = w.writeList(v.ArrayBounds)
	tn.location = C.ParseLoc(v.Location)
	return tn
}

func (w *writer) writeCollateClause(v *ast.CollateClause) *C.CollateClause {
	if v == nil {
		return nil
	}
	cc := (*C.CollateClause)(alloc(C.sizeof_CollateClause, C.T_CollateClause))
	cc.arg = (*C.Node)(w.writeNode(v.Arg))
	cc.collname = w.writeList(v.Collname)
	cc.location = C.ParseLoc(v.Location)
	return cc
}

func (w *writer) writeWindowDef(v *ast.WindowDef) *C.WindowDef {
	if v == nil {
		return nil
	}
	wd := (*C.WindowDef)(alloc(C.sizeof_WindowDef, C.T_WindowDef))
	wd.name = pgStr(v.Name)
	wd.refname = pgStr(v.Refname)
	wd.partitionClause = w.writeList(v.PartitionClause)
	wd.orderClause = w.writeList(v.OrderClause)
	wd.frameOptions = C.int(v.FrameOptions)
	wd.startOffset = (*C.Node)(w.writeNode(v.StartOffset))
	wd.endOffset = (*C.Node)(w.writeNode(v.EndOffset))
	wd.location = C.ParseLoc(v.Location)
	return wd
}

func (w *writer) writeWithClause(v *ast.WithClause) *C.WithClause {
	if v == nil {
		return nil
	}
	wc := (*C.WithClause)(alloc(C.sizeof_WithClause, C.T_WithClause))
	wc.ctes = w.writeList(v.Ctes)
	wc.recursive = C.bool(v.Recursive)
	wc.location = C.ParseLoc(v.Location)
	return wc
}

func (w *writer) writeCTESearchClause(v *ast.CTESearchClause) *C.CTESearchClause {
	if v == nil {
		return nil
	}
	sc := (*C.CTESearchClause)(alloc(C.sizeof_CTESearchClause, C.T_CTESearchClause))
	sc.search_col_list = w.writeList(v.SearchColList)
	sc.search_breadth_first = C.bool(v.SearchBreadthFirst)
	sc.search_seq_column = pgStr(v.SearchSeqColumn)
	sc.location = C.ParseLoc(v.Location)
	return sc
}

func (w *writer) writeCTECycleClause(v *ast.CTECycleClause) *C.CTECycleClause {
	if v == nil {
		return nil
	}
	cc := (*C.CTECycleClause)(alloc(C.sizeof_CTECycleClause, C.T_CTECycleClause))
	cc.cycle_col_list = w.writeList(v.CycleColList)
	cc.cycle_mark_column = pgStr(v.CycleMarkColumn)
	cc.cycle_mark_value = (*C.Node)(w.writeNode(v.CycleMarkValue))
	cc.cycle_mark_default = (*C.Node)(w.writeNode(v.CycleMarkDefault))
	cc.cycle_path_column = pgStr(v.CyclePathColumn)
	cc.location = C.ParseLoc(v.Location)
	return cc
}

func (w *writer) writeIntoClause(v *ast.IntoClause) *C.IntoClause {
	if v == nil {
		return nil
	}
	ic := (*C.IntoClause)(alloc(C.sizeof_IntoClause, C.T_IntoClause))
	ic.rel = w.writeRangeVar(v.Rel)
	ic.colNames = w.writeList(v.ColNames)
	ic.accessMethod = pgStr(v.AccessMethod)
	ic.options = w.writeList(v.Options)
	ic.onCommit = C.OnCommitAction(cdown(int32(v.OnCommit)))
	ic.tableSpaceName = pgStr(v.TableSpaceName)
	ic.viewQuery = (*C.Node)(w.writeNode(v.ViewQuery))
	ic.skipData = C.bool(v.SkipData)
	return ic
}

func (w *writer) writeOnConflictClause(v *ast.OnConflictClause) *C.OnConflictClause {
	if v == nil {
		return nil
	}
	oc := (*C.OnConflictClause)(alloc(C.sizeof_OnConflictClause, C.T_OnConflictClause))
	oc.action = C.OnConflictAction(cdown(int32(v.Action)))
	oc.infer = w.writeInferClause(v.Infer)
	oc.targetList = w.writeList(v.TargetList)
	oc.whereClause = (*C.Node)(w.writeNode(v.WhereClause))
	oc.location = C.ParseLoc(v.Location)
	return oc
}

func (w *writer) writeInferClause(v *ast.InferClause) *C.InferClause {
	if v == nil {
		return nil
	}
	ic := (*C.InferClause)(alloc(C.sizeof_InferClause, C.T_InferClause))
	ic.indexElems = w.writeList(v.IndexElems)
	ic.whereClause = (*C.Node)(w.writeNode(v.WhereClause))
	ic.conname = pgStr(v.Conname)
	ic.location = C.ParseLoc(v.Location)
	return ic
}

func (w *writer) writeObjectWithArgs(v *ast.ObjectWithArgs) *C.ObjectWithArgs {
	if v == nil {
		return nil
	}
	oa := (*C.ObjectWithArgs)(alloc(C.sizeof_ObjectWithArgs, C.T_ObjectWithArgs))
	oa.objname = w.writeList(v.Objname)
	oa.objargs = w.writeList(v.Objargs)
	oa.objfuncargs = w.writeList(v.Objfuncargs)
	oa.args_unspecified = C.bool(v.ArgsUnspecified)
	return oa
}

func (w *writer) writePartitionSpec(v *ast.PartitionSpec) *C.PartitionSpec {
	if v == nil {
		return nil
	}
	ps := (*C.PartitionSpec)(alloc(C.sizeof_PartitionSpec, C.T_PartitionSpec))
	ps.strategy = C.PartitionStrategy(cdown(int32(v.Strategy)))
	ps.partParams = w.writeList(v.PartParams)
	ps.location = C.ParseLoc(v.Location)
	return ps
}

func (w *writer) writePartitionBoundSpec(v *ast.PartitionBoundSpec) *C.PartitionBoundSpec {
	if v == nil {
		return nil
	}
	pb := (*C.PartitionBoundSpec)(alloc(C.sizeof_PartitionBoundSpec, C.T_PartitionBoundSpec))
	pb.strategy = flagChar(v.Strategy)
	pb.is_default = C.bool(v.IsDefault)
	pb.modulus = C.int(v.Modulus)
	pb.remainder = C.int(v.Remainder)
	pb.listdatums = w.writeList(v.Listdatums)
	pb.lowerdatums = w.writeList(v.Lowerdatums)
	pb.upperdatums = w.writeList(v.Upperdatums)
	pb.location = C.ParseLoc(v.Location)
	return pb
}

func (w *writer) writePublicationTable(v *ast.PublicationTable) *C.PublicationTable {
	if v == nil {
		return nil
	}
	pt := (*C.PublicationTable)(alloc(C.sizeof_PublicationTable, C.T_PublicationTable))
	pt.relation = w.writeRangeVar(v.Relation)
	pt.whereClause = (*C.Node)(w.writeNode(v.WhereClause))
	pt.columns = w.writeList(v.Columns)
	return pt
}

func (w *writer) writeJsonFormat(v *ast.JsonFormat) *C.JsonFormat {
	if v == nil {
		return nil
	}
	jf := (*C.JsonFormat)(alloc(C.sizeof_JsonFormat, C.T_JsonFormat))
	jf.format_type = C.JsonFormatType(cdown(int32(v.FormatType)))
	jf.encoding = C.JsonEncoding(cdown(int32(v.Encoding)))
	jf.location = C.ParseLoc(v.Location)
	return jf
}

func (w *writer) writeJsonReturning(v *ast.JsonReturning) *C.JsonReturning {
	if v == nil {
		return nil
	}
	jr := (*C.JsonReturning)(alloc(C.sizeof_JsonReturning, C.T_JsonReturning))
	jr.format = w.writeJsonFormat(v.Format)
	jr.typid = C.Oid(v.Typid)
	jr.typmod = C.int32(v.Typmod)
	return jr
}

func (w *writer) writeJsonValueExpr(v *ast.JsonValueExpr) *C.JsonValueExpr {
	if v == nil {
		return nil
	}
	jv := (*C.JsonValueExpr)(alloc(C.sizeof_JsonValueExpr, C.T_JsonValueExpr))
	jv.raw_expr = (*C.Expr)(w.writeNode(v.RawExpr))
	jv.formatted_expr = (*C.Expr)(w.writeNode(v.FormattedExpr))
	jv.format = w.writeJsonFormat(v.Format)
	return jv
}

func (w *writer) writeJsonOutput(v *ast.JsonOutput) *C.JsonOutput {
	if v == nil {
		return nil
	}
	jo := (*C.JsonOutput)(alloc(C.sizeof_JsonOutput, C.T_JsonOutput))
	jo.typeName = w.writeTypeName(v.TypeName)
	jo.returning = w.writeJsonReturning(v.Returning)
	return jo
}

func (w *writer) writeJsonKeyValue(v *ast.JsonKeyValue) *C.JsonKeyValue {
	if v == nil {
		return nil
	}
	kv := (*C.JsonKeyValue)(alloc(C.sizeof_JsonKeyValue, C.T_JsonKeyValue))
	kv.key = (*C.Expr)(w.writeNode(v.Key))
	kv.value = w.writeJsonValueExpr(v.Value)
	return kv
}

func (w *writer) writeJsonAggConstructor(v *ast.JsonAggConstructor) *C.JsonAggConstructor {
	if v == nil {
		return nil
	}
	ac := (*C.JsonAggConstructor)(alloc(C.sizeof_JsonAggConstructor, C.T_JsonAggConstructor))
	ac.output = w.writeJsonOutput(v.Output)
	ac.agg_filter = (*C.Node)(w.writeNode(v.AggFilter))
	ac.agg_order = w.writeList(v.AggOrder)
	ac.over = w.writeWindowDef(v.Over)
	ac.location = C.ParseLoc(v.Location)
	return ac
}

// --- expression writers ---

func (w *writer) writeAExpr(v *ast.AExpr) unsafe.Pointer {
	ae := (*C.A_Expr)(alloc(C.sizeof_A_Expr, C.T_A_Expr))
	ae.kind = C.A_Expr_Kind(cdown(int32(v.Kind)))
	ae.name = w.writeList(v.Name)
	ae.lexpr = (*C.Node)(w.writeNode(v.Lexpr))
	ae.rexpr = (*C.Node)(w.writeNode(v.Rexpr))
	ae.location = C.ParseLoc(v.Location)
	return unsafe.Pointer(ae)
}

func (w *writer) writeFuncCall(v *ast.FuncCall) unsafe.Pointer {
	fc := (*C.FuncCall)(alloc(C.sizeof_FuncCall, C.T_FuncCall))
	fc.funcname = w.writeList(v.Funcname)
	fc.args = w.writeList(v.Args)
	fc.agg_order = w.writeList(v.AggOrder)
	fc.agg_filter = (*C.Node)(w.writeNode(v.AggFilter))
	fc.over = w.writeWindowDef(v.Over)
	fc.agg_within_group = C.bool(v.AggWithinGroup)
	fc.agg_star = C.bool(v.AggStar)
	fc.agg_distinct = C.bool(v.AggDistinct)
	fc.func_variadic = C.bool(v.FuncVariadic)
	fc.funcformat = C.CoercionForm(cdown(int32(v.Funcformat)))
	fc.location = C.ParseLoc(v.Location)
	return unsafe.Pointer(fc)
}

func (w *writer) writeSubLink(v *ast.SubLink) unsafe.Pointer {
	sl := (*C.SubLink)(alloc(C.sizeof_SubLink, C.T_SubLink))
	sl.subLinkType = C.SubLinkType(cdown(int32(v.SubLinkType)))
	sl.subLinkId = C.int(v.SubLinkID)
	sl.testexpr = (*C.Node)(w.writeNode(v.Testexpr))
	sl.operName = w.writeList(v.OperName)
	sl.subselect = (*C.Node)(w.writeNode(v.Subselect))
	sl.location = C.ParseLoc(v.Location)
	return unsafe.Pointer(sl)
}

func (w *writer) writeJoinExpr(v *ast.JoinExpr) unsafe.Pointer {
	je := (*C.JoinExpr)(alloc(C.sizeof_JoinExpr, C.T_JoinExpr))
	je.jointype = C.JoinType(cdown(int32(v.Jointype)))
	je.isNatural = C.bool(v.IsNatural)
	je.larg = (*C.Node)(w.writeNode(v.Larg))
	je.rarg = (*C.Node)(w.writeNode(v.Rarg))
	je.usingClause = w.writeList(v.UsingClause)
	je.join_using_alias = w.writeAlias(v.JoinUsingAlias)
	je.quals = (*C.Node)(w.writeNode(v.Quals))
	je.alias = w.writeAlias(v.Alias)
	je.rtindex = C.int(v.Rtindex)
	return unsafe.Pointer(je)
}

func (w *writer) writeCommonTableExpr(v *ast.CommonTableExpr) unsafe.Pointer {
	cte := (*C.CommonTableExpr)(alloc(C.sizeof_CommonTableExpr, C.T_CommonTableExpr))
	cte.ctename = pgStr(v.Ctename)
	cte.aliascolnames = w.writeList(v.Aliascolnames)
	cte.ctematerialized = C.CTEMaterialize(cdown(int32(v.Ctematerialized)))
	cte.ctequery = (*C.Node)(w.writeNode(v.Ctequery))
	cte.search_clause = w.writeCTESearchClause(v.SearchClause)
	cte.cycle_clause = w.writeCTECycleClause(v.CycleClause)
	cte.location = C.ParseLoc(v.Location)
	cte.cterecursive = C.bool(v.Cterecursive)
	cte.cterefcount = C.int(v.Cterefcount)
	cte.ctecolnames = w.writeList(v.Ctecolnames)
	return unsafe.Pointer(cte)
}
