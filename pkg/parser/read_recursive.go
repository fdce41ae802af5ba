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
	"unsafe"

	"github.com/AleutianAI/pgbridge/pkg/ast"
)

// parseRecursive runs the C parser and converts its tree with the
// recursive reader. This is the correctness reference: the iterative
// reader must produce the identical tree for every decoded node kind.
func (p *Parser) parseRecursive(sql string) (*ParseResult, error) {
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
	return &ParseResult{Version: treeVersion, Stmts: readRawStmts(res.tree)}, nil
}

// readRawStmts converts the top-level statement list. A null or empty
// tree reads as no statements; nothing is fabricated.
func readRawStmts(tree *C.List) []ast.RawStmt {
	n := listLen(tree)
	if n == 0 {
		return nil
	}
	stmts := make([]ast.RawStmt, 0, n)
	for i := 0; i < n; i++ {
		p := listItem(tree, i)
		if p == nil || nodeTag(p) != C.T_RawStmt {
			continue
		}
		rs := (*C.RawStmt)(p)
		stmts = append(stmts, ast.RawStmt{
			Stmt:         readNode(unsafe.Pointer(rs.stmt)),
			StmtLocation: int32(rs.stmt_location),
			StmtLen:      int32(rs.stmt_len),
		})
	}
	return stmts
}

// readNodeList converts a C list, preserving null elements as nil so
// list cardinality survives the round trip (a bare DISTINCT is a
// one-element list holding a null).
func readNodeList(l *C.List) []ast.Node {
	n := listLen(l)
	if n == 0 {
		return nil
	}
	out := make([]ast.Node, n)
	for i := 0; i < n; i++ {
		out[i] = readNode(listItem(l, i))
	}
	return out
}

// readOther serializes an undecoded subtree so nothing is lost on
// read. The writer refuses these nodes, it never guesses.
func readOther(p unsafe.Pointer) ast.Node {
	s := C.pg_query_raw_node_to_string(p)
	defer C.free(unsafe.Pointer(s))
	return &ast.Other{Raw: goString(s)}
}

// readNode dispatches one C node pointer on its tag.
func readNode(p unsafe.Pointer) ast.Node {
	if p == nil {
		return nil
	}
	switch nodeTag(p) {
	case C.T_Integer:
		return &ast.Integer{Ival: int64((*C.Integer)(p).ival)}
	case C.T_Float:
		return &ast.Float{Fval: goString((*C.Float)(p).fval)}
	case C.T_Boolean:
		return &ast.Boolean{Boolval: bool((*C.Boolean)(p).boolval)}
	case C.T_String:
		return &ast.String{Sval: goString((*C.String)(p).sval)}
	case C.T_BitString:
		return &ast.BitString{Bsval: goString((*C.BitString)(p).bsval)}
	case C.T_List:
		return &ast.List{Items: readNodeList((*C.List)(p))}
	case C.T_A_Star:
		return &ast.AStar{}

	case C.T_SelectStmt:
		return readSelectStmt((*C.SelectStmt)(p))
	case C.T_InsertStmt:
		return readInsertStmt((*C.InsertStmt)(p))
	case C.T_UpdateStmt:
		return readUpdateStmt((*C.UpdateStmt)(p))
	case C.T_DeleteStmt:
		return readDeleteStmt((*C.DeleteStmt)(p))
	case C.T_MergeStmt:
		return readMergeStmt((*C.MergeStmt)(p))
	case C.T_CreateStmt:
		return readCreateStmt((*C.CreateStmt)(p))
	case C.T_AlterTableStmt:
		return readAlterTableStmt((*C.AlterTableStmt)(p))
	case C.T_AlterTableCmd:
		return readAlterTableCmd((*C.AlterTableCmd)(p))
	case C.T_DropStmt:
		return readDropStmt((*C.DropStmt)(p))
	case C.T_TruncateStmt:
		return readTruncateStmt((*C.TruncateStmt)(p))
	case C.T_IndexStmt:
		return readIndexStmt((*C.IndexStmt)(p))
	case C.T_CreateSchemaStmt:
		return readCreateSchemaStmt((*C.CreateSchemaStmt)(p))
	case C.T_ViewStmt:
		return readViewStmt((*C.ViewStmt)(p))
	case C.T_CreateFunctionStmt:
		return readCreateFunctionStmt((*C.CreateFunctionStmt)(p))
	case C.T_AlterFunctionStmt:
		return readAlterFunctionStmt((*C.AlterFunctionStmt)(p))
	case C.T_CreateSeqStmt:
		return readCreateSeqStmt((*C.CreateSeqStmt)(p))
	case C.T_AlterSeqStmt:
		return readAlterSeqStmt((*C.AlterSeqStmt)(p))
	case C.T_CreateTrigStmt:
		return readCreateTrigStmt((*C.CreateTrigStmt)(p))
	case C.T_RuleStmt:
		return readRuleStmt((*C.RuleStmt)(p))
	case C.T_CreateDomainStmt:
		return readCreateDomainStmt((*C.CreateDomainStmt)(p))
	case C.T_CreateTableAsStmt:
		return readCreateTableAsStmt((*C.CreateTableAsStmt)(p))
	case C.T_RefreshMatViewStmt:
		return readRefreshMatViewStmt((*C.RefreshMatViewStmt)(p))
	case C.T_CompositeTypeStmt:
		return readCompositeTypeStmt((*C.CompositeTypeStmt)(p))
	case C.T_CreateEnumStmt:
		return readCreateEnumStmt((*C.CreateEnumStmt)(p))
	case C.T_CreateRangeStmt:
		return readCreateRangeStmt((*C.CreateRangeStmt)(p))
	case C.T_AlterEnumStmt:
		return readAlterEnumStmt((*C.AlterEnumStmt)(p))
	case C.T_CreateExtensionStmt:
		return readCreateExtensionStmt((*C.CreateExtensionStmt)(p))
	case C.T_CreatePublicationStmt:
		return readCreatePublicationStmt((*C.CreatePublicationStmt)(p))
	case C.T_AlterPublicationStmt:
		return readAlterPublicationStmt((*C.AlterPublicationStmt)(p))
	case C.T_CreateSubscriptionStmt:
		return readCreateSubscriptionStmt((*C.CreateSubscriptionStmt)(p))
	case C.T_AlterSubscriptionStmt:
		return readAlterSubscriptionStmt((*C.AlterSubscriptionStmt)(p))
	case C.T_AlterOwnerStmt:
		return readAlterOwnerStmt((*C.AlterOwnerStmt)(p))
	case C.T_RenameStmt:
		return readRenameStmt((*C.RenameStmt)(p))
	case C.T_TransactionStmt:
		return readTransactionStmt((*C.TransactionStmt)(p))
	case C.T_VariableSetStmt:
		return readVariableSetStmt((*C.VariableSetStmt)(p))
	case C.T_VariableShowStmt:
		return &ast.VariableShowStmt{Name: goString((*C.VariableShowStmt)(p).name)}
	case C.T_ExplainStmt:
		return readExplainStmt((*C.ExplainStmt)(p))
	case C.T_CopyStmt:
		return readCopyStmt((*C.CopyStmt)(p))
	case C.T_GrantStmt:
		return readGrantStmt((*C.GrantStmt)(p))
	case C.T_GrantRoleStmt:
		return readGrantRoleStmt((*C.GrantRoleStmt)(p))
	case C.T_LockStmt:
		return readLockStmt((*C.LockStmt)(p))
	case C.T_VacuumStmt:
		return readVacuumStmt((*C.VacuumStmt)(p))
	case C.T_VacuumRelation:
		return readVacuumRelation((*C.VacuumRelation)(p))
	case C.T_DoStmt:
		return &ast.DoStmt{Args: readNodeList((*C.DoStmt)(p).args)}
	case C.T_CallStmt:
		return readCallStmt((*C.CallStmt)(p))
	case C.T_NotifyStmt:
		ns := (*C.NotifyStmt)(p)
		return &ast.NotifyStmt{Conditionname: goString(ns.conditionname), Payload: goString(ns.payload)}
	case C.T_ListenStmt:
		return &ast.ListenStmt{Conditionname: goString((*C.ListenStmt)(p).conditionname)}
	case C.T_UnlistenStmt:
		return &ast.UnlistenStmt{Conditionname: goString((*C.UnlistenStmt)(p).conditionname)}
	case C.T_CheckPointStmt:
		return &ast.CheckPointStmt{}
	case C.T_DiscardStmt:
		return &ast.DiscardStmt{Target: ast.DiscardMode(int32((*C.DiscardStmt)(p).target) + 1)}
	case C.T_PrepareStmt:
		return readPrepareStmt((*C.PrepareStmt)(p))
	case C.T_ExecuteStmt:
		es := (*C.ExecuteStmt)(p)
		return &ast.ExecuteStmt{Name: goString(es.name), Params: readNodeList(es.params)}
	case C.T_DeallocateStmt:
		ds := (*C.DeallocateStmt)(p)
		return &ast.DeallocateStmt{Name: goString(ds.name), IsAll: bool(ds.isall), Location: int32(ds.location)}
	case C.T_ClosePortalStmt:
		return &ast.ClosePortalStmt{Portalname: goString((*C.ClosePortalStmt)(p).portalname)}
	case C.T_FetchStmt:
		fs := (*C.FetchStmt)(p)
		return &ast.FetchStmt{
			Direction:  ast.FetchDirection(int32(fs.direction) + 1),
			HowMany:    int64(fs.howMany),
			Portalname: goString(fs.portalname),
			Ismove:     bool(fs.ismove),
		}

	case C.T_A_Expr:
		return readAExpr((*C.A_Expr)(p))
	case C.T_ColumnRef:
		cr := (*C.ColumnRef)(p)
		return &ast.ColumnRef{Fields: readNodeList(cr.fields), Location: int32(cr.location)}
	case C.T_ParamRef:
		pr := (*C.ParamRef)(p)
		return &ast.ParamRef{Number: int32(pr.number), Location: int32(pr.location)}
	case C.T_A_Const:
		return readAConst((*C.A_Const)(p))
	case C.T_TypeCast:
		tc := (*C.TypeCast)(p)
		return &ast.TypeCast{
			Arg:      readNode(unsafe.Pointer(tc.arg)),
			TypeName: readTypeNamePtr(tc.typeName),
			Location: int32(tc.location),
		}
	case C.T_CollateClause:
		return readCollateClausePtr((*C.CollateClause)(p))
	case C.T_FuncCall:
		return readFuncCall((*C.FuncCall)(p))
	case C.T_A_Indices:
		ai := (*C.A_Indices)(p)
		return &ast.AIndices{
			IsSlice: bool(ai.is_slice),
			Lidx:    readNode(unsafe.Pointer(ai.lidx)),
			Uidx:    readNode(unsafe.Pointer(ai.uidx)),
		}
	case C.T_A_Indirection:
		ai := (*C.A_Indirection)(p)
		return &ast.AIndirection{
			Arg:         readNode(unsafe.Pointer(ai.arg)),
			Indirection: readNodeList(ai.indirection),
		}
	case C.T_A_ArrayExpr:
		ae := (*C.A_ArrayExpr)(p)
		return &ast.AArrayExpr{Elements: readNodeList(ae.elements), Location: int32(ae.location)}
	case C.T_SubLink:
		return readSubLink((*C.SubLink)(p))
	case C.T_BoolExpr:
		be := (*C.BoolExpr)(p)
		return &ast.BoolExpr{
			Boolop:   ast.BoolExprType(int32(be.boolop) + 1),
			Args:     readNodeList(be.args),
			Location: int32(be.location),
		}
	case C.T_NullTest:
		nt := (*C.NullTest)(p)
		return &ast.NullTest{
			Arg:          readNode(unsafe.Pointer(nt.arg)),
			Nulltesttype: ast.NullTestType(int32(nt.nulltesttype) + 1),
			Argisrow:     bool(nt.argisrow),
			Location:     int32(nt.location),
		}
	case C.T_BooleanTest:
		bt := (*C.BooleanTest)(p)
		return &ast.BooleanTest{
			Arg:          readNode(unsafe.Pointer(bt.arg)),
			Booltesttype: ast.BoolTestType(int32(bt.booltesttype) + 1),
			Location:     int32(bt.location),
		}
	case C.T_CaseExpr:
		ce := (*C.CaseExpr)(p)
		return &ast.CaseExpr{
			Arg:       readNode(unsafe.Pointer(ce.arg)),
			Args:      readNodeList(ce.args),
			Defresult: readNode(unsafe.Pointer(ce.defresult)),
			Location:  int32(ce.location),
		}
	case C.T_CaseWhen:
		cw := (*C.CaseWhen)(p)
		return &ast.CaseWhen{
			Expr:     readNode(unsafe.Pointer(cw.expr)),
			Result:   readNode(unsafe.Pointer(cw.result)),
			Location: int32(cw.location),
		}
	case C.T_CoalesceExpr:
		ce := (*C.CoalesceExpr)(p)
		return &ast.CoalesceExpr{Args: readNodeList(ce.args), Location: int32(ce.location)}
	case C.T_MinMaxExpr:
		mm := (*C.MinMaxExpr)(p)
		return &ast.MinMaxExpr{
			Op:       ast.MinMaxOp(int32(mm.op) + 1),
			Args:     readNodeList(mm.args),
			Location: int32(mm.location),
		}
	case C.T_RowExpr:
		re := (*C.RowExpr)(p)
		return &ast.RowExpr{
			Args:      readNodeList(re.args),
			RowFormat: ast.CoercionForm(int32(re.row_format) + 1),
			Colnames:  readNodeList(re.colnames),
			Location:  int32(re.location),
		}
	case C.T_SQLValueFunction:
		sv := (*C.SQLValueFunction)(p)
		return &ast.SQLValueFunction{
			Op:       ast.SQLValueFunctionOp(int32(sv.op) + 1),
			Typmod:   int32(sv.typmod),
			Location: int32(sv.location),
		}
	case C.T_SetToDefault:
		sd := (*C.SetToDefault)(p)
		return &ast.SetToDefault{
			TypeID:   uint32(sd.typeId),
			TypeMod:  int32(sd.typeMod),
			Location: int32(sd.location),
		}
	case C.T_MultiAssignRef:
		ma := (*C.MultiAssignRef)(p)
		return &ast.MultiAssignRef{
			Source:   readNode(unsafe.Pointer(ma.source)),
			Colno:    int32(ma.colno),
			Ncolumns: int32(ma.ncolumns),
		}
	case C.T_CoerceToDomain:
		cd := (*C.CoerceToDomain)(p)
		return &ast.CoerceToDomain{
			Arg:            readNode(unsafe.Pointer(cd.arg)),
			Resulttype:     uint32(cd.resulttype),
			Resulttypmod:   int32(cd.resulttypmod),
			Resultcollid:   uint32(cd.resultcollid),
			Coercionformat: ast.CoercionForm(int32(cd.coercionformat) + 1),
			Location:       int32(cd.location),
		}
	case C.T_GroupingFunc:
		gf := (*C.GroupingFunc)(p)
		return &ast.GroupingFunc{
			Args:        readNodeList(gf.args),
			Refs:        readNodeList(gf.refs),
			Agglevelsup: uint32(gf.agglevelsup),
			Location:    int32(gf.location),
		}
	case C.T_GroupingSet:
		gs := (*C.GroupingSet)(p)
		return &ast.GroupingSet{
			Kind:     ast.GroupingSetKind(int32(gs.kind) + 1),
			Content:  readNodeList(gs.content),
			Location: int32(gs.location),
		}

	case C.T_ResTarget:
		rt := (*C.ResTarget)(p)
		return &ast.ResTarget{
			Name:        goString(rt.name),
			Indirection: readNodeList(rt.indirection),
			Val:         readNode(unsafe.Pointer(rt.val)),
			Location:    int32(rt.location),
		}
	case C.T_RangeVar:
		return readRangeVarPtr((*C.RangeVar)(p))
	case C.T_RangeSubselect:
		rs := (*C.RangeSubselect)(p)
		return &ast.RangeSubselect{
			Lateral:  bool(rs.lateral),
			Subquery: readNode(unsafe.Pointer(rs.subquery)),
			Alias:    readAliasPtr(rs.alias),
		}
	case C.T_RangeFunction:
		rf := (*C.RangeFunction)(p)
		return &ast.RangeFunction{
			Lateral:    bool(rf.lateral),
			Ordinality: bool(rf.ordinality),
			IsRowsfrom: bool(rf.is_rowsfrom),
			Functions:  readNodeList(rf.functions),
			Alias:      readAliasPtr(rf.alias),
			Coldeflist: readNodeList(rf.coldeflist),
		}
	case C.T_JoinExpr:
		return readJoinExpr((*C.JoinExpr)(p))
	case C.T_SortBy:
		sb := (*C.SortBy)(p)
		return &ast.SortBy{
			Node:        readNode(unsafe.Pointer(sb.node)),
			SortbyDir:   ast.SortByDir(int32(sb.sortby_dir) + 1),
			SortbyNulls: ast.SortByNulls(int32(sb.sortby_nulls) + 1),
			UseOp:       readNodeList(sb.useOp),
			Location:    int32(sb.location),
		}
	case C.T_WindowDef:
		return readWindowDefPtr((*C.WindowDef)(p))
	case C.T_WithClause:
		return readWithClausePtr((*C.WithClause)(p))
	case C.T_CommonTableExpr:
		return readCommonTableExpr((*C.CommonTableExpr)(p))
	case C.T_CTESearchClause:
		return readCTESearchClausePtr((*C.CTESearchClause)(p))
	case C.T_CTECycleClause:
		return readCTECycleClausePtr((*C.CTECycleClause)(p))
	case C.T_IntoClause:
		return readIntoClausePtr((*C.IntoClause)(p))
	case C.T_OnConflictClause:
		return readOnConflictClausePtr((*C.OnConflictClause)(p))
	case C.T_InferClause:
		return readInferClausePtr((*C.InferClause)(p))
	case C.T_LockingClause:
		lc := (*C.LockingClause)(p)
		return &ast.LockingClause{
			LockedRels: readNodeList(lc.lockedRels),
			Strength:   ast.LockClauseStrength(int32(lc.strength) + 1),
			WaitPolicy: ast.LockWaitPolicy(int32(lc.waitPolicy) + 1),
		}
	case C.T_MergeWhenClause:
		mw := (*C.MergeWhenClause)(p)
		return &ast.MergeWhenClause{
			MatchKind:   ast.MergeMatchKind(int32(mw.matchKind) + 1),
			CommandType: ast.CmdType(int32(mw.commandType) + 1),
			Override:    ast.OverridingKind(int32(mw.override) + 1),
			Condition:   readNode(unsafe.Pointer(mw.condition)),
			TargetList:  readNodeList(mw.targetList),
			Values:      readNodeList(mw.values),
		}
	case C.T_MergeAction:
		ma := (*C.MergeAction)(p)
		return &ast.MergeAction{
			MatchKind:    ast.MergeMatchKind(int32(ma.matchKind) + 1),
			CommandType:  ast.CmdType(int32(ma.commandType) + 1),
			Override:     ast.OverridingKind(int32(ma.override) + 1),
			Qual:         readNode(unsafe.Pointer(ma.qual)),
			TargetList:   readNodeList(ma.targetList),
			UpdateColnos: readNodeList(ma.updateColnos),
		}
	case C.T_TypeName:
		return readTypeNamePtr((*C.TypeName)(p))
	case C.T_ColumnDef:
		return readColumnDef((*C.ColumnDef)(p))
	case C.T_Constraint:
		return readConstraint((*C.Constraint)(p))
	case C.T_DefElem:
		de := (*C.DefElem)(p)
		return &ast.DefElem{
			Defnamespace: goString(de.defnamespace),
			Defname:      goString(de.defname),
			Arg:          readNode(unsafe.Pointer(de.arg)),
			Defaction:    ast.DefElemAction(int32(de.defaction) + 1),
			Location:     int32(de.location),
		}
	case C.T_IndexElem:
		ie := (*C.IndexElem)(p)
		return &ast.IndexElem{
			Name:          goString(ie.name),
			Expr:          readNode(unsafe.Pointer(ie.expr)),
			Indexcolname:  goString(ie.indexcolname),
			Collation:     readNodeList(ie.collation),
			Opclass:       readNodeList(ie.opclass),
			Opclassopts:   readNodeList(ie.opclassopts),
			Ordering:      ast.SortByDir(int32(ie.ordering) + 1),
			NullsOrdering: ast.SortByNulls(int32(ie.nulls_ordering) + 1),
		}
	case C.T_PartitionSpec:
		return readPartitionSpecPtr((*C.PartitionSpec)(p))
	case C.T_PartitionBoundSpec:
		return readPartitionBoundSpecPtr((*C.PartitionBoundSpec)(p))
	case C.T_PartitionElem:
		pe := (*C.PartitionElem)(p)
		return &ast.PartitionElem{
			Name:      goString(pe.name),
			Expr:      readNode(unsafe.Pointer(pe.expr)),
			Collation: readNodeList(pe.collation),
			Opclass:   readNodeList(pe.opclass),
			Location:  int32(pe.location),
		}
	case C.T_PartitionRangeDatum:
		pd := (*C.PartitionRangeDatum)(p)
		// This C enum starts at -1, so the sentinel shift is +2.
		return &ast.PartitionRangeDatum{
			Kind:     ast.PartitionRangeDatumKind(int32(pd.kind) + 2),
			Value:    readNode(unsafe.Pointer(pd.value)),
			Location: int32(pd.location),
		}
	case C.T_Alias:
		return readAliasPtr((*C.Alias)(p))
	case C.T_RoleSpec:
		return readRoleSpecPtr((*C.RoleSpec)(p))
	case C.T_FunctionParameter:
		fp := (*C.FunctionParameter)(p)
		return &ast.FunctionParameter{
			Name:    goString(fp.name),
			ArgType: readTypeNamePtr(fp.argType),
			Mode:    ast.FunctionParameterMode(int32(fp.mode) + 1),
			Defexpr: readNode(unsafe.Pointer(fp.defexpr)),
		}
	case C.T_ObjectWithArgs:
		return readObjectWithArgsPtr((*C.ObjectWithArgs)(p))
	case C.T_AccessPriv:
		ap := (*C.AccessPriv)(p)
		return &ast.AccessPriv{PrivName: goString(ap.priv_name), Cols: readNodeList(ap.cols)}
	case C.T_PublicationObjSpec:
		po := (*C.PublicationObjSpec)(p)
		return &ast.PublicationObjSpec{
			Pubobjtype: ast.PublicationObjSpecType(int32(po.pubobjtype) + 1),
			Name:       goString(po.name),
			Pubtable:   readPublicationTablePtr(po.pubtable),
			Location:   int32(po.location),
		}
	case C.T_PublicationTable:
		return readPublicationTablePtr((*C.PublicationTable)(p))
	case C.T_TriggerTransition:
		tt := (*C.TriggerTransition)(p)
		return &ast.TriggerTransition{
			Name:    goString(tt.name),
			IsNew:   bool(tt.isNew),
			IsTable: bool(tt.isTable),
		}

	case C.T_JsonFormat:
		return readJsonFormatPtr((*C.JsonFormat)(p))
	case C.T_JsonValueExpr:
		return readJsonValueExprPtr((*C.JsonValueExpr)(p))
	case C.T_JsonKeyValue:
		return readJsonKeyValuePtr((*C.JsonKeyValue)(p))
	case C.T_JsonObjectConstructor:
		jc := (*C.JsonObjectConstructor)(p)
		return &ast.JsonObjectConstructor{
			Exprs:        readNodeList(jc.exprs),
			Output:       readJsonOutputPtr(jc.output),
			AbsentOnNull: bool(jc.absent_on_null),
			Unique:       bool(jc.unique),
			Location:     int32(jc.location),
		}
	case C.T_JsonArrayConstructor:
		jc := (*C.JsonArrayConstructor)(p)
		return &ast.JsonArrayConstructor{
			Exprs:        readNodeList(jc.exprs),
			Output:       readJsonOutputPtr(jc.output),
			AbsentOnNull: bool(jc.absent_on_null),
			Location:     int32(jc.location),
		}
	case C.T_JsonArrayQueryConstructor:
		jc := (*C.JsonArrayQueryConstructor)(p)
		return &ast.JsonArrayQueryConstructor{
			Query:        readNode(unsafe.Pointer(jc.query)),
			Output:       readJsonOutputPtr(jc.output),
			Format:       readJsonFormatPtr(jc.format),
			AbsentOnNull: bool(jc.absent_on_null),
			Location:     int32(jc.location),
		}
	case C.T_JsonObjectAgg:
		ja := (*C.JsonObjectAgg)(p)
		return &ast.JsonObjectAgg{
			Constructor:  readJsonAggConstructorPtr(ja.constructor),
			Arg:          readJsonKeyValuePtr(ja.arg),
			AbsentOnNull: bool(ja.absent_on_null),
			Unique:       bool(ja.unique),
		}
	case C.T_JsonArrayAgg:
		ja := (*C.JsonArrayAgg)(p)
		return &ast.JsonArrayAgg{
			Constructor:  readJsonAggConstructorPtr(ja.constructor),
			Arg:          readJsonValueExprPtr(ja.arg),
			AbsentOnNull: bool(ja.absent_on_null),
		}
	case C.T_JsonIsPredicate:
		jp := (*C.JsonIsPredicate)(p)
		return &ast.JsonIsPredicate{
			Expr:       readNode(unsafe.Pointer(jp.expr)),
			Format:     readJsonFormatPtr(jp.format),
			ItemType:   ast.JsonValueType(int32(jp.item_type) + 1),
			UniqueKeys: bool(jp.unique_keys),
			Location:   int32(jp.location),
		}
	case C.T_JsonParseExpr:
		jp := (*C.JsonParseExpr)(p)
		return &ast.JsonParseExpr{
			Expr:       readJsonValueExprPtr(jp.expr),
			Output:     readJsonOutputPtr(jp.output),
			UniqueKeys: bool(jp.unique_keys),
			Location:   int32(jp.location),
		}
	case C.T_JsonScalarExpr:
		js := (*C.JsonScalarExpr)(p)
		return &ast.JsonScalarExpr{
			Expr:     readNode(unsafe.Pointer(js.expr)),
			Output:   readJsonOutputPtr(js.output),
			Location: int32(js.location),
		}
	case C.T_JsonSerializeExpr:
		js := (*C.JsonSerializeExpr)(p)
		return &ast.JsonSerializeExpr{
			Expr:     readJsonValueExprPtr(js.expr),
			Output:   readJsonOutputPtr(js.output),
			Location: int32(js.location),
		}
	}
	return readOther(p)
}

// --- value helpers ---

// readAConst dispatches the in-struct value union on its embedded tag.
// A NULL constant carries no value node at all.
func readAConst(ac *C.A_Const) ast.Node {
	out := &ast.AConst{Isnull: bool(ac.isnull), Location: int32(ac.location)}
	if out.Isnull {
		return out
	}
	vp := unsafe.Pointer(&ac.val)
	switch (*C.Node)(vp)._type {
	case C.T_Integer:
		out.Val = &ast.Integer{Ival: int64((*C.Integer)(vp).ival)}
	case C.T_Float:
		out.Val = &ast.Float{Fval: goString((*C.Float)(vp).fval)}
	case C.T_Boolean:
		out.Val = &ast.Boolean{Boolval: bool((*C.Boolean)(vp).boolval)}
	case C.T_String:
		out.Val = &ast.String{Sval: goString((*C.String)(vp).sval)}
	case C.T_BitString:
		out.Val = &ast.BitString{Bsval: goString((*C.BitString)(vp).bsval)}
	}
	return out
}

// --- typed pointer helpers ---
//
// These convert struct-typed child fields. Each accepts nil and is also
// reachable through readNode when the kind appears behind a generic
// Node pointer.

func readRangeVarPtr(rv *C.RangeVar) *ast.RangeVar {
	if rv == nil {
		return nil
	}
	return &ast.RangeVar{
		Catalogname:    goString(rv.catalogname),
		Schemaname:     goString(rv.schemaname),
		Relname:        goString(rv.relname),
		Inh:            bool(rv.inh),
		Relpersistence: charFlag(rv.relpersistence),
		Alias:          readAliasPtr(rv.alias),
		Location:       int32(rv.location),
	}
}

func readAliasPtr(a *C.Alias) *ast.Alias {
	if a == nil {
		return nil
	}
	return &ast.Alias{Aliasname: goString(a.aliasname), Colnames: readNodeList(a.colnames)}
}

func readTypeNamePtr(tn *C.TypeName) *ast.TypeName {
	if tn == nil {
		return nil
	}
	return &ast.TypeName{
		Names:       readNodeList(tn.names),
		TypeOid:     uint32(tn.typeOid),
		Setof:       bool(tn.setof),
		PctType:     bool(tn.pct_type),
		Typmods:     readNodeList(tn.typmods),
		Typemod:     int32(tn.typemod),
		ArrayBounds: readNodeList(tn.arrayBounds),
		Location:    int32(tn.location),
	}
}

func readCollateClausePtr(cc *C.CollateClause) *ast.CollateClause {
	if cc == nil {
		return nil
	}
	return &ast.CollateClause{
		Arg:      readNode(unsafe.Pointer(cc.arg)),
		Collname: readNodeList(cc.collname),
		Location: int32(cc.location),
	}
}

func readWithClausePtr(wc *C.WithClause) *ast.WithClause {
	if wc == nil {
		return nil
	}
	return &ast.WithClause{
		Ctes:      readNodeList(wc.ctes),
		Recursive: bool(wc.recursive),
		Location:  int32(wc.location),
	}
}

func readWindowDefPtr(wd *C.WindowDef) *ast.WindowDef {
	if wd == nil {
		return nil
	}
	return &ast.WindowDef{
		Name:            goString(wd.name),
		Refname:         goString(wd.refname),
		PartitionClause: readNodeList(wd.partitionClause),
		OrderClause:     readNodeList(wd.orderClause),
		FrameOptions:    int32(wd.frameOptions),
		StartOffset:     readNode(unsafe.Pointer(wd.startOffset)),
		EndOffset:       readNode(unsafe.Pointer(wd.endOffset)),
		Location:        int32(wd.location),
	}
}

func readIntoClausePtr(ic *C.IntoClause) *ast.IntoClause {
	if ic == nil {
		return nil
	}
	return &ast.IntoClause{
		Rel:            readRangeVarPtr(ic.rel),
		ColNames:       readNodeList(ic.colNames),
		AccessMethod:   goString(ic.accessMethod),
		Options:        readNodeList(ic.options),
		OnCommit:       ast.OnCommitAction(int32(ic.onCommit) + 1),
		TableSpaceName: goString(ic.tableSpaceName),
		ViewQuery:      readNode(unsafe.Pointer(ic.viewQuery)),
		SkipData:       bool(ic.skipData),
	}
}

func readOnConflictClausePtr(oc *C.OnConflictClause) *ast.OnConflictClause {
	if oc == nil {
		return nil
	}
	return &ast.OnConflictClause{
		Action:      ast.OnConflictAction(int32(oc.action) + 1),
		Infer:       readInferClausePtr(oc.infer),
		TargetList:  readNodeList(oc.targetList),
		WhereClause: readNode(unsafe.Pointer(oc.whereClause)),
		Location:    int32(oc.location),
	}
}

func readInferClausePtr(ic *C.InferClause) *ast.InferClause {
	if ic == nil {
		return nil
	}
	return &ast.InferClause{
		IndexElems:  readNodeList(ic.indexElems),
		WhereClause: readNode(unsafe.Pointer(ic.whereClause)),
		Conname:     goString(ic.conname),
		Location:    int32(ic.location),
	}
}

func readRoleSpecPtr(rs *C.RoleSpec) *ast.RoleSpec {
	if rs == nil {
		return nil
	}
	return &ast.RoleSpec{
		Roletype: ast.RoleSpecType(int32(rs.roletype) + 1),
		Rolename: goString(rs.rolename),
		Location: int32(rs.location),
	}
}

func readObjectWithArgsPtr(oa *C.ObjectWithArgs) *ast.ObjectWithArgs {
	if oa == nil {
		return nil
	}
	return &ast.ObjectWithArgs{
		Objname:         readNodeList(oa.objname),
		Objargs:         readNodeList(oa.objargs),
		Objfuncargs:     readNodeList(oa.objfuncargs),
		ArgsUnspecified: bool(oa.args_unspecified),
	}
}

func readCTESearchClausePtr(sc *C.CTESearchClause) *ast.CTESearchClause {
	if sc == nil {
		return nil
	}
	return &ast.CTESearchClause{
		SearchColList:      readNodeList(sc.search_col_list),
		SearchBreadthFirst: bool(sc.search_breadth_first),
		SearchSeqColumn:    goString(sc.search_seq_column),
		Location:           int32(sc.location),
	}
}

func readCTECycleClausePtr(cc *C.CTECycleClause) *ast.CTECycleClause {
	if cc == nil {
		return nil
	}
	return &ast.CTECycleClause{
		CycleColList:     readNodeList(cc.cycle_col_list),
		CycleMarkColumn:  goString(cc.cycle_mark_column),
		CycleMarkValue:   readNode(unsafe.Pointer(cc.cycle_mark_value)),
		CycleMarkDefault: readNode(unsafe.Pointer(cc.cycle_mark_default)),
		CyclePathColumn:  goString(cc.cycle_path_column),
		Location:         int32(cc.location),
	}
}

func readPartitionSpecPtr(ps *C.PartitionSpec) *ast.PartitionSpec {
	if ps == nil {
		return nil
	}
	return &ast.PartitionSpec{
		Strategy:   ast.PartitionStrategy(int32(ps.strategy) + 1),
		PartParams: readNodeList(ps.partParams),
		Location:   int32(ps.location),
	}
}

func readPartitionBoundSpecPtr(pb *C.PartitionBoundSpec) *ast.PartitionBoundSpec {
	if pb == nil {
		return nil
	}
	return &ast.PartitionBoundSpec{
		Strategy:    charFlag(pb.strategy),
		IsDefault:   bool(pb.is_default),
		Modulus:     int32(pb.modulus),
		Remainder:   int32(pb.remainder),
		Listdatums:  readNodeList(pb.listdatums),
		Lowerdatums: readNodeList(pb.lowerdatums),
		Upperdatums: readNodeList(pb.upperdatums),
		Location:    int32(pb.location),
	}
}

func readPublicationTablePtr(pt *C.PublicationTable) *ast.PublicationTable {
	if pt == nil {
		return nil
	}
	return &ast.PublicationTable{
		Relation:    readRangeVarPtr(pt.relation),
		WhereClause: readNode(unsafe.Pointer(pt.whereClause)),
		Columns:     readNodeList(pt.columns),
	}
}

func readJsonFormatPtr(jf *C.JsonFormat) *ast.JsonFormat {
	if jf == nil {
		return nil
	}
	return &ast.JsonFormat{
		FormatType: ast.JsonFormatType(int32(jf.format_type) + 1),
		Encoding:   ast.JsonEncoding(int32(jf.encoding) + 1),
		Location:   int32(jf.location),
	}
}

func readJsonReturningPtr(jr *C.JsonReturning) *ast.JsonReturning {
	if jr == nil {
		return nil
	}
	return &ast.JsonReturning{
		Format: readJsonFormatPtr(jr.format),
		Typid:  uint32(jr.typid),
		Typmod: int32(jr.typmod),
	}
}

func readJsonValueExprPtr(jv *C.JsonValueExpr) *ast.JsonValueExpr {
	if jv == nil {
		return nil
	}
	return &ast.JsonValueExpr{
		RawExpr:       readNode(unsafe.Pointer(jv.raw_expr)),
		FormattedExpr: readNode(unsafe.Pointer(jv.formatted_expr)),
		Format:        readJsonFormatPtr(jv.format),
	}
}

func readJsonOutputPtr(jo *C.JsonOutput) *ast.JsonOutput {
	if jo == nil {
		return nil
	}
	return &ast.JsonOutput{
		TypeName:  readTypeNamePtr(jo.typeName),
		Returning: readJsonReturningPtr(jo.returning),
	}
}

func readJsonKeyValuePtr(kv *C.JsonKeyValue) *ast.JsonKeyValue {
	if kv == nil {
		return nil
	}
	return &ast.JsonKeyValue{
		Key:   readNode(unsafe.Pointer(kv.key)),
		Value: readJsonValueExprPtr(kv.value),
	}
}

func readJsonAggConstructorPtr(ac *C.JsonAggConstructor) *ast.JsonAggConstructor {
	if ac == nil {
		return nil
	}
	return &ast.JsonAggConstructor{
		Output:    readJsonOutputPtr(ac.output),
		AggFilter: readNode(unsafe.Pointer(ac.agg_filter)),
		AggOrder:  readNodeList(ac.agg_order),
		Over:      readWindowDefPtr(ac.over),
		Location:  int32(ac.location),
	}
}

// --- expression readers ---

func readAExpr(ae *C.A_Expr) ast.Node {
	return &ast.AExpr{
		Kind:     ast.AExprKind(int32(ae.kind) + 1),
		Name:     readNodeList(ae.name),
		Lexpr:    readNode(unsafe.Pointer(ae.lexpr)),
		Rexpr:    readNode(unsafe.Pointer(ae.rexpr)),
		Location: int32(ae.location),
	}
}

func readFuncCall(fc *C.FuncCall) ast.Node {
	return &ast.FuncCall{
		Funcname:       readNodeList(fc.funcname),
		Args:           readNodeList(fc.args),
		AggOrder:       readNodeList(fc.agg_order),
		AggFilter:      readNode(unsafe.Pointer(fc.agg_filter)),
		Over:           readWindowDefPtr(fc.over),
		AggWithinGroup: bool(fc.agg_within_group),
		AggStar:        bool(fc.agg_star),
		AggDistinct:    bool(fc.agg_distinct),
		FuncVariadic:   bool(fc.func_variadic),
		Funcformat:     ast.CoercionForm(int32(fc.funcformat) + 1),
		Location:       int32(fc.location),
	}
}

func readSubLink(sl *C.SubLink) ast.Node {
	return &ast.SubLink{
		SubLinkType: ast.SubLinkType(int32(sl.subLinkType) + 1),
		SubLinkID:   int32(sl.subLinkId),
		Testexpr:    readNode(unsafe.Pointer(sl.testexpr)),
		OperName:    readNodeList(sl.operName),
		Subselect:   readNode(unsafe.Pointer(sl.subselect)),
		Location:    int32(sl.location),
	}
}

func readJoinExpr(je *C.JoinExpr) ast.Node {
	return &ast.JoinExpr{
		Jointype:       ast.JoinType(int32(je.jointype) + 1),
		IsNatural:      bool(je.isNatural),
		Larg:           readNode(unsafe.Pointer(je.larg)),
		Rarg:           readNode(unsafe.Pointer(je.rarg)),
		UsingClause:    readNodeList(je.usingClause),
		JoinUsingAlias: readAliasPtr(je.join_using_alias),
		Quals:          readNode(unsafe.Pointer(je.quals)),
		Alias:          readAliasPtr(je.alias),
		Rtindex:        int32(je.rtindex),
	}
}

func readCommonTableExpr(cte *C.CommonTableExpr) ast.Node {
	return &ast.CommonTableExpr{
		Ctename:         goString(cte.ctename),
		Aliascolnames:   readNodeList(cte.aliascolnames),
		Ctematerialized: ast.CTEMaterialize(int32(cte.ctematerialized) + 1),
		Ctequery:        readNode(unsafe.Pointer(cte.ctequery)),
		SearchClause:    readCTESearchClausePtr(cte.search_clause),
		CycleClause:     readCTECycleClausePtr(cte.cycle_clause),
		Location:        int32(cte.location),
		Cterecursive:    bool(cte.cterecursive),
		Cterefcount:     int32(cte.cterefcount),
		Ctecolnames:     readNodeList(cte.ctecolnames),
	}
}

// --- statement readers ---

func readSelectStmt(s *C.SelectStmt) *ast.SelectStmt {
	if s == nil {
		return nil
	}
	return &ast.SelectStmt{
		DistinctClause: readNodeList(s.distinctClause),
		IntoClause:     readIntoClausePtr(s.intoClause),
		TargetList:     readNodeList(s.targetList),
		FromClause:     readNodeList(s.fromClause),
		WhereClause:    readNode(unsafe.Pointer(s.whereClause)),
		GroupClause:    readNodeList(s.groupClause),
		GroupDistinct:  bool(s.groupDistinct),
		HavingClause:   readNode(unsafe.Pointer(s.havingClause)),
		WindowClause:   readNodeList(s.windowClause),
		ValuesLists:    readNodeList(s.valuesLists),
		SortClause:     readNodeList(s.sortClause),
		LimitOffset:    readNode(unsafe.Pointer(s.limitOffset)),
		LimitCount:     readNode(unsafe.Pointer(s.limitCount)),
		LimitOption:    ast.LimitOption(int32(s.limitOption) + 1),
		LockingClause:  readNodeList(s.lockingClause),
		WithClause:     readWithClausePtr(s.withClause),
		Op:             ast.SetOperation(int32(s.op) + 1),
		All:            bool(s.all),
		Larg:           readSelectStmt(s.larg),
		Rarg:           readSelectStmt(s.rarg),
	}
}

func readInsertStmt(s *C.InsertStmt) ast.Node {
	return &ast.InsertStmt{
		Relation:         readRangeVarPtr(s.relation),
		Cols:             readNodeList(s.cols),
		SelectStmt:       readNode(unsafe.Pointer(s.selectStmt)),
		OnConflictClause: readOnConflictClausePtr(s.onConflictClause),
		ReturningList:    readNodeList(s.returningList),
		WithClause:       readWithClausePtr(s.withClause),
		Override:         ast.OverridingKind(int32(s.override) + 1),
	}
}

func readUpdateStmt(s *C.UpdateStmt) ast.Node {
	return &ast.UpdateStmt{
		Relation:      readRangeVarPtr(s.relation),
		TargetList:    readNodeList(s.targetList),
		WhereClause:   readNode(unsafe.Pointer(s.whereClause)),
		FromClause:    readNodeList(s.fromClause),
		ReturningList: readNodeList(s.returningList),
		WithClause:    readWithClausePtr(s.withClause),
	}
}

func readDeleteStmt(s *C.DeleteStmt) ast.Node {
	return &ast.DeleteStmt{
		Relation:      readRangeVarPtr(s.relation),
		UsingClause:   readNodeList(s.usingClause),
		WhereClause:   readNode(unsafe.Pointer(s.whereClause)),
		ReturningList: readNodeList(s.returningList),
		WithClause:    readWithClausePtr(s.withClause),
	}
}

func readMergeStmt(s *C.MergeStmt) ast.Node {
	return &ast.MergeStmt{
		Relation:         readRangeVarPtr(s.relation),
		SourceRelation:   readNode(unsafe.Pointer(s.sourceRelation)),
		JoinCondition:    readNode(unsafe.Pointer(s.joinCondition)),
		MergeWhenClauses: readNodeList(s.mergeWhenClauses),
		ReturningList:    readNodeList(s.returningList),
		WithClause:       readWithClausePtr(s.withClause),
	}
}

func readCreateStmt(s *C.CreateStmt) ast.Node {
	return &ast.CreateStmt{
		Relation:       readRangeVarPtr(s.relation),
		TableElts:      readNodeList(s.tableElts),
		InhRelations:   readNodeList(s.inhRelations),
		Partbound:      readPartitionBoundSpecPtr(s.partbound),
		Partspec:       readPartitionSpecPtr(s.partspec),
		OfTypename:     readTypeNamePtr(s.ofTypename),
		Constraints:    readNodeList(s.constraints),
		Options:        readNodeList(s.options),
		Oncommit:       ast.OnCommitAction(int32(s.oncommit) + 1),
		Tablespacename: goString(s.tablespacename),
		AccessMethod:   goString(s.accessMethod),
		IfNotExists:    bool(s.if_not_exists),
	}
}

func readAlterTableStmt(s *C.AlterTableStmt) ast.Node {
	return &ast.AlterTableStmt{
		Relation:  readRangeVarPtr(s.relation),
		Cmds:      readNodeList(s.cmds),
		Objtype:   ast.ObjectType(int32(s.objtype) + 1),
		MissingOk: bool(s.missing_ok),
	}
}

func readAlterTableCmd(c *C.AlterTableCmd) ast.Node {
	return &ast.AlterTableCmd{
		Subtype:   ast.AlterTableType(int32(c.subtype) + 1),
		Name:      goString(c.name),
		Num:       int32(c.num),
		Newowner:  readRoleSpecPtr(c.newowner),
		Def:       readNode(unsafe.Pointer(c.def)),
		Behavior:  ast.DropBehavior(int32(c.behavior) + 1),
		MissingOk: bool(c.missing_ok),
		Recurse:   bool(c.recurse),
	}
}

func readDropStmt(s *C.DropStmt) ast.Node {
	return &ast.DropStmt{
		Objects:    readNodeList(s.objects),
		RemoveType: ast.ObjectType(int32(s.removeType) + 1),
		Behavior:   ast.DropBehavior(int32(s.behavior) + 1),
		MissingOk:  bool(s.missing_ok),
		Concurrent: bool(s.concurrent),
	}
}

func readTruncateStmt(s *C.TruncateStmt) ast.Node {
	return &ast.TruncateStmt{
		Relations:   readNodeList(s.relations),
		RestartSeqs: bool(s.restart_seqs),
		Behavior:    ast.DropBehavior(int32(s.behavior) + 1),
	}
}

func readIndexStmt(s *C.IndexStmt) ast.Node {
	return &ast.IndexStmt{
		Idxname:              goString(s.idxname),
		Relation:             readRangeVarPtr(s.relation),
		AccessMethod:         goString(s.accessMethod),
		TableSpace:           goString(s.tableSpace),
		IndexParams:          readNodeList(s.indexParams),
		IndexIncludingParams: readNodeList(s.indexIncludingParams),
		Options:              readNodeList(s.options),
		WhereClause:          readNode(unsafe.Pointer(s.whereClause)),
		ExcludeOpNames:       readNodeList(s.excludeOpNames),
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
}

func readCreateSchemaStmt(s *C.CreateSchemaStmt) ast.Node {
	return &ast.CreateSchemaStmt{
		Schemaname:  goString(s.schemaname),
		Authrole:    readRoleSpecPtr(s.authrole),
		SchemaElts:  readNodeList(s.schemaElts),
		IfNotExists: bool(s.if_not_exists),
	}
}

func readViewStmt(s *C.ViewStmt) ast.Node {
	return &ast.ViewStmt{
		View:            readRangeVarPtr(s.view),
		Aliases:         readNodeList(s.aliases),
		Query:           readNode(unsafe.Pointer(s.query)),
		Replace:         bool(s.replace),
		Options:         readNodeList(s.options),
		WithCheckOption: ast.ViewCheckOption(int32(s.withCheckOption) + 1),
	}
}

func readCreateFunctionStmt(s *C.CreateFunctionStmt) ast.Node {
	return &ast.CreateFunctionStmt{
		IsProcedure: bool(s.is_procedure),
		Replace:     bool(s.replace),
		Funcname:    readNodeList(s.funcname),
		Parameters:  readNodeList(s.parameters),
		ReturnType:  readTypeNamePtr(s.returnType),
		Options:     readNodeList(s.options),
		SQLBody:     readNode(unsafe.Pointer(s.sql_body)),
	}
}

func readAlterFunctionStmt(s *C.AlterFunctionStmt) ast.Node {
	return &ast.AlterFunctionStmt{
		Objtype: ast.ObjectType(int32(s.objtype) + 1),
		Func:    readObjectWithArgsPtr(s._func),
		Actions: readNodeList(s.actions),
	}
}

func readCreateSeqStmt(s *C.CreateSeqStmt) ast.Node {
	return &ast.CreateSeqStmt{
		Sequence:    readRangeVarPtr(s.sequence),
		Options:     readNodeList(s.options),
		OwnerID:     uint32(s.ownerId),
		ForIdentity: bool(s.for_identity),
		IfNotExists: bool(s.if_not_exists),
	}
}

func readAlterSeqStmt(s *C.AlterSeqStmt) ast.Node {
	return &ast.AlterSeqStmt{
		Sequence:    readRangeVarPtr(s.sequence),
		Options:     readNodeList(s.options),
		ForIdentity: bool(s.for_identity),
		MissingOk:   bool(s.missing_ok),
	}
}

func readCreateTrigStmt(s *C.CreateTrigStmt) ast.Node {
	return &ast.CreateTrigStmt{
		Replace:        bool(s.replace),
		Isconstraint:   bool(s.isconstraint),
		Trigname:       goString(s.trigname),
		Relation:       readRangeVarPtr(s.relation),
		Funcname:       readNodeList(s.funcname),
		Args:           readNodeList(s.args),
		Row:            bool(s.row),
		Timing:         int32(s.timing),
		Events:         int32(s.events),
		Columns:        readNodeList(s.columns),
		WhenClause:     readNode(unsafe.Pointer(s.whenClause)),
		TransitionRels: readNodeList(s.transitionRels),
		Deferrable:     bool(s.deferrable),
		Initdeferred:   bool(s.initdeferred),
		Constrrel:      readRangeVarPtr(s.constrrel),
	}
}

func readRuleStmt(s *C.RuleStmt) ast.Node {
	return &ast.RuleStmt{
		Relation:    readRangeVarPtr(s.relation),
		Rulename:    goString(s.rulename),
		WhereClause: readNode(unsafe.Pointer(s.whereClause)),
		Event:       ast.CmdType(int32(s.event) + 1),
		Instead:     bool(s.instead),
		Actions:     readNodeList(s.actions),
		Replace:     bool(s.replace),
	}
}

func readCreateDomainStmt(s *C.CreateDomainStmt) ast.Node {
	return &ast.CreateDomainStmt{
		Domainname:  readNodeList(s.domainname),
		TypeName:    readTypeNamePtr(s.typeName),
		CollClause:  readCollateClausePtr(s.collClause),
		Constraints: readNodeList(s.constraints),
	}
}

func readCreateTableAsStmt(s *C.CreateTableAsStmt) ast.Node {
	return &ast.CreateTableAsStmt{
		Query:        readNode(unsafe.Pointer(s.query)),
		Into:         readIntoClausePtr(s.into),
		Objtype:      ast.ObjectType(int32(s.objtype) + 1),
		IsSelectInto: bool(s.is_select_into),
		IfNotExists:  bool(s.if_not_exists),
	}
}

func readRefreshMatViewStmt(s *C.RefreshMatViewStmt) ast.Node {
	return &ast.RefreshMatViewStmt{
		Concurrent: bool(s.concurrent),
		SkipData:   bool(s.skipData),
		Relation:   readRangeVarPtr(s.relation),
	}
}

func readCompositeTypeStmt(s *C.CompositeTypeStmt) ast.Node {
	return &ast.CompositeTypeStmt{
		Typevar:    readRangeVarPtr(s.typevar),
		Coldeflist: readNodeList(s.coldeflist),
	}
}

func readCreateEnumStmt(s *C.CreateEnumStmt) ast.Node {
	return &ast.CreateEnumStmt{
		TypeName: readNodeList(s.typeName),
		Vals:     readNodeList(s.vals),
	}
}

func readCreateRangeStmt(s *C.CreateRangeStmt) ast.Node {
	return &ast.CreateRangeStmt{
		TypeName: readNodeList(s.typeName),
		Params:   readNodeList(s.params),
	}
}

func readAlterEnumStmt(s *C.AlterEnumStmt) ast.Node {
	return &ast.AlterEnumStmt{
		TypeName:           readNodeList(s.typeName),
		OldVal:             goString(s.oldVal),
		NewVal:             goString(s.newVal),
		NewValNeighbor:     goString(s.newValNeighbor),
		NewValIsAfter:      bool(s.newValIsAfter),
		SkipIfNewValExists: bool(s.skipIfNewValExists),
	}
}

func readCreateExtensionStmt(s *C.CreateExtensionStmt) ast.Node {
	return &ast.CreateExtensionStmt{
		Extname:     goString(s.extname),
		IfNotExists: bool(s.if_not_exists),
		Options:     readNodeList(s.options),
	}
}

func readCreatePublicationStmt(s *C.CreatePublicationStmt) ast.Node {
	return &ast.CreatePublicationStmt{
		Pubname:      goString(s.pubname),
		Options:      readNodeList(s.options),
		Pubobjects:   readNodeList(s.pubobjects),
		ForAllTables: bool(s.for_all_tables),
	}
}

func readAlterPublicationStmt(s *C.AlterPublicationStmt) ast.Node {
	return &ast.AlterPublicationStmt{
		Pubname:      goString(s.pubname),
		Options:      readNodeList(s.options),
		Pubobjects:   readNodeList(s.pubobjects),
		ForAllTables: bool(s.for_all_tables),
		Action:       ast.AlterPublicationAction(int32(s.action) + 1),
	}
}

func readCreateSubscriptionStmt(s *C.CreateSubscriptionStmt) ast.Node {
	return &ast.CreateSubscriptionStmt{
		Subname:     goString(s.subname),
		Conninfo:    goString(s.conninfo),
		Publication: readNodeList(s.publication),
		Options:     readNodeList(s.options),
	}
}

func readAlterSubscriptionStmt(s *C.AlterSubscriptionStmt) ast.Node {
	return &ast.AlterSubscriptionStmt{
		Kind:        ast.AlterSubscriptionType(int32(s.kind) + 1),
		Subname:     goString(s.subname),
		Conninfo:    goString(s.conninfo),
		Publication: readNodeList(s.publication),
		Options:     readNodeList(s.options),
	}
}

func readAlterOwnerStmt(s *C.AlterOwnerStmt) ast.Node {
	return &ast.AlterOwnerStmt{
		ObjectType: ast.ObjectType(int32(s.objectType) + 1),
		Relation:   readRangeVarPtr(s.relation),
		Object:     readNode(unsafe.Pointer(s.object)),
		Newowner:   readRoleSpecPtr(s.newowner),
	}
}

func readRenameStmt(s *C.RenameStmt) ast.Node {
	return &ast.RenameStmt{
		RenameType:   ast.ObjectType(int32(s.renameType) + 1),
		RelationType: ast.ObjectType(int32(s.relationType) + 1),
		Relation:     readRangeVarPtr(s.relation),
		Object:       readNode(unsafe.Pointer(s.object)),
		Subname:      goString(s.subname),
		Newname:      goString(s.newname),
		Behavior:     ast.DropBehavior(int32(s.behavior) + 1),
		MissingOk:    bool(s.missing_ok),
	}
}

func readTransactionStmt(s *C.TransactionStmt) ast.Node {
	return &ast.TransactionStmt{
		Kind:          ast.TransactionStmtKind(int32(s.kind) + 1),
		Options:       readNodeList(s.options),
		SavepointName: goString(s.savepoint_name),
		Gid:           goString(s.gid),
		Chain:         bool(s.chain),
		Location:      int32(s.location),
	}
}

func readVariableSetStmt(s *C.VariableSetStmt) ast.Node {
	return &ast.VariableSetStmt{
		Kind:    ast.VariableSetKind(int32(s.kind) + 1),
		Name:    goString(s.name),
		Args:    readNodeList(s.args),
		IsLocal: bool(s.is_local),
	}
}

func readExplainStmt(s *C.ExplainStmt) ast.Node {
	return &ast.ExplainStmt{
		Query:   readNode(unsafe.Pointer(s.query)),
		Options: readNodeList(s.options),
	}
}

func readCopyStmt(s *C.CopyStmt) ast.Node {
	return &ast.CopyStmt{
		Relation:    readRangeVarPtr(s.relation),
		Query:       readNode(unsafe.Pointer(s.query)),
		Attlist:     readNodeList(s.attlist),
		IsFrom:      bool(s.is_from),
		IsProgram:   bool(s.is_program),
		Filename:    goString(s.filename),
		Options:     readNodeList(s.options),
		WhereClause: readNode(unsafe.Pointer(s.whereClause)),
	}
}

func readGrantStmt(s *C.GrantStmt) ast.Node {
	return &ast.GrantStmt{
		IsGrant:     bool(s.is_grant),
		Targtype:    ast.GrantTargetType(int32(s.targtype) + 1),
		Objtype:     ast.ObjectType(int32(s.objtype) + 1),
		Objects:     readNodeList(s.objects),
		Privileges:  readNodeList(s.privileges),
		Grantees:    readNodeList(s.grantees),
		GrantOption: bool(s.grant_option),
		Grantor:     readRoleSpecPtr(s.grantor),
		Behavior:    ast.DropBehavior(int32(s.behavior) + 1),
	}
}

func readGrantRoleStmt(s *C.GrantRoleStmt) ast.Node {
	return &ast.GrantRoleStmt{
		GrantedRoles: readNodeList(s.granted_roles),
		GranteeRoles: readNodeList(s.grantee_roles),
		IsGrant:      bool(s.is_grant),
		Opt:          readNodeList(s.opt),
		Grantor:      readRoleSpecPtr(s.grantor),
		Behavior:     ast.DropBehavior(int32(s.behavior) + 1),
	}
}

func readLockStmt(s *C.LockStmt) ast.Node {
	return &ast.LockStmt{
		Relations: readNodeList(s.relations),
		Mode:      int32(s.mode),
		Nowait:    bool(s.nowait),
	}
}

func readVacuumStmt(s *C.VacuumStmt) ast.Node {
	return &ast.VacuumStmt{
		Options:     readNodeList(s.options),
		Rels:        readNodeList(s.rels),
		IsVacuumcmd: bool(s.is_vacuumcmd),
	}
}

func readVacuumRelation(s *C.VacuumRelation) ast.Node {
	return &ast.VacuumRelation{
		Relation: readRangeVarPtr(s.relation),
		Oid:      uint32(s.oid),
		VaCols:   readNodeList(s.va_cols),
	}
}

func readCallStmt(s *C.CallStmt) ast.Node {
	out := &ast.CallStmt{Outargs: readNodeList(s.outargs)}
	if s.funccall != nil {
		out.Funccall = readFuncCall(s.funccall).(*ast.FuncCall)
	}
	return out
}

func readPrepareStmt(s *C.PrepareStmt) ast.Node {
	return &ast.PrepareStmt{
		Name:     goString(s.name),
		Argtypes: readNodeList(s.argtypes),
		Query:    readNode(unsafe.Pointer(s.query)),
	}
}

// --- column/constraint readers ---

func readColumnDef(cd *C.ColumnDef) ast.Node {
	return &ast.ColumnDef{
		Colname:          goString(cd.colname),
		TypeName:         readTypeNamePtr(cd.typeName),
		Compression:      goString(cd.compression),
		Inhcount:         int32(cd.inhcount),
		IsLocal:          bool(cd.is_local),
		IsNotNull:        bool(cd.is_not_null),
		IsFromType:       bool(cd.is_from_type),
		Storage:          charFlag(cd.storage),
		StorageName:      goString(cd.storage_name),
		RawDefault:       readNode(unsafe.Pointer(cd.raw_default)),
		CookedDefault:    readNode(unsafe.Pointer(cd.cooked_default)),
		Identity:         charFlag(cd.identity),
		IdentitySequence: readRangeVarPtr(cd.identitySequence),
		Generated:        charFlag(cd.generated),
		CollClause:       readCollateClausePtr(cd.collClause),
		CollOid:          uint32(cd.collOid),
		Constraints:      readNodeList(cd.constraints),
		Fdwoptions:       readNodeList(cd.fdwoptions),
		Location:         int32(cd.location),
	}
}

func readConstraint(c *C.Constraint) ast.Node {
	return &ast.Constraint{
		Contype:            ast.ConstrType(int32(c.contype) + 1),
		Conname:            goString(c.conname),
		Deferrable:         bool(c.deferrable),
		Initdeferred:       bool(c.initdeferred),
		Location:           int32(c.location),
		IsNoInherit:        bool(c.is_no_inherit),
		RawExpr:            readNode(unsafe.Pointer(c.raw_expr)),
		CookedExpr:         goString(c.cooked_expr),
		GeneratedWhen:      charFlag(c.generated_when),
		Inhcount:           int32(c.inhcount),
		NullsNotDistinct:   bool(c.nulls_not_distinct),
		Keys:               readNodeList(c.keys),
		Including:          readNodeList(c.including),
		Exclusions:         readNodeList(c.exclusions),
		Options:            readNodeList(c.options),
		Indexname:          goString(c.indexname),
		Indexspace:         goString(c.indexspace),
		ResetDefaultTblspc: bool(c.reset_default_tblspc),
		AccessMethod:       goString(c.access_method),
		WhereClause:        readNode(unsafe.Pointer(c.where_clause)),
		Pktable:            readRangeVarPtr(c.pktable),
		FkAttrs:            readNodeList(c.fk_attrs),
		PkAttrs:            readNodeList(c.pk_attrs),
		FkMatchtype:        charFlag(c.fk_matchtype),
		FkUpdAction:        charFlag(c.fk_upd_action),
		FkDelAction:        charFlag(c.fk_del_action),
		FkDelSetCols:       readNodeList(c.fk_del_set_cols),
		OldConpfeqop:       readNodeList(c.old_conpfeqop),
		OldPktableOid:      uint32(c.old_pktable_oid),
		SkipValidation:     bool(c.skip_validation),
		InitiallyValid:     bool(c.initially_valid),
	}
}
