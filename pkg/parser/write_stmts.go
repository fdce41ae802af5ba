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
#include "pg_query_raw.h"
*/
import "C"

import (
	"unsafe"

	"github.com/AleutianAI/pgbridge/pkg/ast"
)

func (w *writer) writeSelectStmt(v *ast.SelectStmt) *C.SelectStmt {
	if v == nil {
		return nil
	}
	s := (*C.SelectStmt)(alloc(C.sizeof_SelectStmt, C.T_SelectStmt))
	s.distinctClause = w.writeList(v.DistinctClause)
	s.intoClause = w.writeIntoClause(v.IntoClause)
	s.targetList = w.writeList(v.TargetList)
	s.fromClause = w.writeList(v.FromClause)
	s.whereClause = (*C.Node)(w.writeNode(v.WhereClause))
	s.groupClause = w.writeList(v.GroupClause)
	s.groupDistinct = C.bool(v.GroupDistinct)
	s.havingClause = (*C.Node)(w.writeNode(v.HavingClause))
	s.windowClause = w.writeList(v.WindowClause)
	s.valuesLists = w.writeList(v.ValuesLists)
	s.sortClause = w.writeList(v.SortClause)
	s.limitOffset = (*C.Node)(w.writeNode(v.LimitOffset))
	s.limitCount = (*C.Node)(w.writeNode(v.LimitCount))
	s.limitOption = C.LimitOption(cdown(int32(v.LimitOption)))
	s.lockingClause = w.writeList(v.LockingClause)
	s.withClause = w.writeWithClause(v.WithClause)
	s.op = C.SetOperation(cdown(int32(v.Op)))
	s.all = C.bool(v.All)
	s.larg = w.writeSelectStmt(v.Larg)
	s.rarg = w.writeSelectStmt(v.Rarg)
	return s
}

func (w *writer) writeInsertStmt(v *ast.InsertStmt) unsafe.Pointer {
	s := (*C.InsertStmt)(alloc(C.sizeof_InsertStmt, C.T_InsertStmt))
	s.relation = w.writeRangeVar(v.Relation)
	s.cols = w.writeList(v.Cols)
	s.selectStmt = (*C.Node)(w.writeNode(v.SelectStmt))
	s.onConflictClause = w.writeOnConflictClause(v.OnConflictClause)
	s.returningList = w.writeList(v.ReturningList)
	s.withClause = w.writeWithClause(v.WithClause)
	s.override = C.OverridingKind(cdown(int32(v.Override)))
	return unsafe.Pointer(s)
}

func (w *writer) writeUpdateStmt(v *ast.UpdateStmt) unsafe.Pointer {
	s := (*C.UpdateStmt)(alloc(C.sizeof_UpdateStmt, C.T_UpdateStmt))
	s.relation = w.writeRangeVar(v.Relation)
	s.targetList = w.writeList(v.TargetList)
	s.whereClause = (*C.Node)(w.writeNode(v.WhereClause))
	s.fromClause = w.writeList(v.FromClause)
	s.returningList = w.writeList(v.ReturningList)
	s.withClause = w.writeWithClause(v.WithClause)
	return unsafe.Pointer(s)
}

func (w *writer) writeDeleteStmt(v *ast.DeleteStmt) unsafe.Pointer {
	s := (*C.DeleteStmt)(alloc(C.sizeof_DeleteStmt, C.T_DeleteStmt))
	s.relation = w.writeRangeVar(v.Relation)
	s.usingClause = w.writeList(v.UsingClause)
	s.whereClause = (*C.Node)(w.writeNode(v.WhereClause))
	s.returningList = w.writeList(v.ReturningList)
	s.withClause = w.writeWithClause(v.WithClause)
	return unsafe.Pointer(s)
}

func (w *writer) writeMergeStmt(v *ast.MergeStmt) unsafe.Pointer {
	s := (*C.MergeStmt)(alloc(C.sizeof_MergeStmt, C.T_MergeStmt))
	s.relation = w.writeRangeVar(v.Relation)
	s.sourceRelation = (*C.Node)(w.writeNode(v.SourceRelation))
	s.joinCondition = (*C.Node)(w.writeNode(v.JoinCondition))
	s.mergeWhenClauses = w.writeList(v.MergeWhenClauses)
	s.returningList = w.writeList(v.ReturningList)
	s.withClause = w.writeWithClause(v.WithClause)
	return unsafe.Pointer(s)
}

func (w *writer) writeMergeWhenClause(v *ast.MergeWhenClause) unsafe.Pointer {
	s := (*C.MergeWhenClause)(alloc(C.sizeof_MergeWhenClause, C.T_MergeWhenClause))
	s.matchKind = C.MergeMatchKind(cdown(int32(v.MatchKind)))
	s.commandType = C.CmdType(cdown(int32(v.CommandType)))
	s.override = C.OverridingKind(cdown(int32(v.Override)))
	s.condition = (*C.Node)(w.writeNode(v.Condition))
	s.targetList = w.writeList(v.TargetList)
	s.values = w.writeList(v.Values)
	return unsafe.Pointer(s)
}

func (w *writer) writeMergeAction(v *ast.MergeAction) unsafe.Pointer {
	s := (*C.MergeAction)(alloc(C.sizeof_MergeAction, C.T_MergeAction))
	s.matchKind = C.MergeMatchKind(cdown(int32(v.MatchKind)))
	s.commandType = C.CmdType(cdown(int32(v.CommandType)))
	s.override = C.OverridingKind(cdown(int32(v.Override)))
	s.qual = (*C.Node)(w.writeNode(v.Qual))
	s.targetList = w.writeList(v.TargetList)
	s.updateColnos = w.writeList(v.UpdateColnos)
	return unsafe.Pointer(s)
}

func (w *writer) writeCreateStmt(v *ast.CreateStmt) unsafe.Pointer {
	s := (*C.CreateStmt)(alloc(C.sizeof_CreateStmt, C.T_CreateStmt))
	s.relation = w.writeRangeVar(v.Relation)
	s.tableElts = w.writeList(v.TableElts)
	s.inhRelations = w.writeList(v.InhRelations)
	s.partbound = w.writePartitionBoundSpec(v.Partbound)
	s.partspec = w.writePartitionSpec(v.Partspec)
	s.ofTypename = w.writeTypeName(v.OfTypename)
	s.constraints = w.writeList(v.Constraints)
	s.options = w.writeList(v.Options)
	s.oncommit = C.OnCommitAction(cdown(int32(v.Oncommit)))
	s.tablespacename = pgStr(v.Tablespacename)
	s.accessMethod = pgStr(v.AccessMethod)
	s.if_not_exists = C.bool(v.IfNotExists)
	return unsafe.Pointer(s)
}

func (w *writer) writeAlterTableStmt(v *ast.AlterTableStmt) unsafe.Pointer {
	s := (*C.AlterTableStmt)(alloc(C.sizeof_AlterTableStmt, C.T_AlterTableStmt))
	s.relation = w.writeRangeVar(v.Relation)
	s.cmds = w.writeList(v.Cmds)
	s.objtype = C.ObjectType(cdown(int32(v.Objtype)))
	s.missing_ok = C.bool(v.MissingOk)
	return unsafe.Pointer(s)
}

func (w *writer) writeAlterTableCmd(v *ast.AlterTableCmd) unsafe.Pointer {
	s := (*C.AlterTableCmd)(alloc(C.sizeof_AlterTableCmd, C.T_AlterTableCmd))
	s.subtype = C.AlterTableType(cdown(int32(v.Subtype)))
	s.name = pgStr(v.Name)
	s.num = C.int16(v.Num)
	s.newowner = w.writeRoleSpec(v.Newowner)
	s.def = (*C.Node)(w.writeNode(v.Def))
	s.behavior = C.DropBehavior(cdown(int32(v.Behavior)))
	s.missing_ok = C.bool(v.MissingOk)
	s.recurse = C.bool(v.Recurse)
	return unsafe.Pointer(s)
}

func (w *writer) writeDropStmt(v *ast.DropStmt) unsafe.Pointer {
	s := (*C.DropStmt)(alloc(C.sizeof_DropStmt, C.T_DropStmt))
	s.objects = w.writeList(v.Objects)
	s.removeType = C.ObjectType(cdown(int32(v.RemoveType)))
	s.behavior = C.DropBehavior(cdown(int32(v.Behavior)))
	s.missing_ok = C.bool(v.MissingOk)
	s.concurrent = C.bool(v.Concurrent)
	return unsafe.Pointer(s)
}

func (w *writer) writeTruncateStmt(v *ast.TruncateStmt) unsafe.Pointer {
	s := (*C.TruncateStmt)(alloc(C.sizeof_TruncateStmt, C.T_TruncateStmt))
	s.relations = w.writeList(v.Relations)
	s.restart_seqs = C.bool(v.RestartSeqs)
	s.behavior = C.DropBehavior(cdown(int32(v.Behavior)))
	return unsafe.Pointer(s)
}

func (w *writer) writeIndexStmt(v *ast.IndexStmt) unsafe.Pointer {
	s := (*C.IndexStmt)(alloc(C.sizeof_IndexStmt, C.T_IndexStmt))
	s.idxname = pgStr(v.Idxname)
	s.relation = w.writeRangeVar(v.Relation)
	s.accessMethod = pgStr(v.AccessMethod)
	s.tableSpace = pgStr(v.TableSpace)
	s.indexParams = w.writeList(v.IndexParams)
	s.indexIncludingParams = w.writeList(v.IndexIncludingParams)
	s.options = w.writeList(v.Options)
	s.whereClause = (*C.Node)(w.writeNode(v.WhereClause))
	s.excludeOpNames = w.writeList(v.ExcludeOpNames)
	s.idxcomment = pgStr(v.Idxcomment)
	s.indexOid = C.Oid(v.IndexOid)
	s.oldNumber = C.RelFileNumber(v.OldNumber)
	s.unique = C.bool(v.Unique)
	s.nulls_not_distinct = C.bool(v.NullsNotDistinct)
	s.primary = C.bool(v.Primary)
	s.isconstraint = C.bool(v.Isconstraint)
	s.deferrable = C.bool(v.Deferrable)
	s.initdeferred = C.bool(v.Initdeferred)
	s.transformed = C.bool(v.Transformed)
	s.concurrent = C.bool(v.Concurrent)
	s.if_not_exists = C.bool(v.IfNotExists)
	s.reset_default_tblspc = C.bool(v.ResetDefaultTblspc)
	return unsafe.Pointer(s)
}

func (w *writer) writeCreateSchemaStmt(v *ast.CreateSchemaStmt) unsafe.Pointer {
	s := (*C.CreateSchemaStmt)(alloc(C.sizeof_CreateSchemaStmt, C.T_CreateSchemaStmt))
	s.schemaname = pgStr(v.Schemaname)
	s.authrole = w.writeRoleSpec(v.Authrole)
	s.schemaElts = w.writeList(v.SchemaElts)
	s.if_not_exists = C.bool(v.IfNotExists)
	return unsafe.Pointer(s)
}

func (w *writer) writeViewStmt(v *ast.ViewStmt) unsafe.Pointer {
	s := (*C.ViewStmt)(alloc(C.sizeof_ViewStmt, C.T_ViewStmt))
	s.view = w.writeRangeVar(v.View)
	s.aliases = w.writeList(v.Aliases)
	s.query = (*C.Node)(w.writeNode(v.Query))
	s.replace = C.bool(v.Replace)
	s.options = w.writeList(v.Options)
	s.withCheckOption = C.ViewCheckOption(cdown(int32(v.WithCheckOption)))
	return unsafe.Pointer(s)
}

func (w *writer) writeCreateFunctionStmt(v *ast.CreateFunctionStmt) unsafe.Pointer {
	s := (*C.CreateFunctionStmt)(alloc(C.sizeof_CreateFunctionStmt, C.T_CreateFunctionStmt))
	s.is_procedure = C.bool(v.IsProcedure)
	s.replace = C.bool(v.Replace)
	s.funcname = w.writeList(v.Funcname)
	s.parameters = w.writeList(v.Parameters)
	s.returnType = w.writeTypeName(v.ReturnType)
	s.options = w.writeList(v.Options)
	s.sql_body = (*C.Node)(w.writeNode(v.SQLBody))
	return unsafe.Pointer(s)
}

func (w *writer) writeAlterFunctionStmt(v *ast.AlterFunctionStmt) unsafe.Pointer {
	s := (*C.AlterFunctionStmt)(alloc(C.sizeof_AlterFunctionStmt, C.T_AlterFunctionStmt))
	s.objtype = C.ObjectType(cdown(int32(v.Objtype)))
	s._func = w.writeObjectWithArgs(v.Func)
	s.actions = w.writeList(v.Actions)
	return unsafe.Pointer(s)
}

func (w *writer) writeCreateSeqStmt(v *ast.CreateSeqStmt) unsafe.Pointer {
	s := (*C.CreateSeqStmt)(alloc(C.sizeof_CreateSeqStmt, C.T_CreateSeqStmt))
	s.sequence = w.writeRangeVar(v.Sequence)
	s.options = w.writeList(v.Options)
	s.ownerId = C.Oid(v.OwnerID)
	s.for_identity = C.bool(v.ForIdentity)
	s.if_not_exists = C.bool(v.IfNotExists)
	return unsafe.Pointer(s)
}

func (w *writer) writeAlterSeqStmt(v *ast.AlterSeqStmt) unsafe.Pointer {
	s := (*C.AlterSeqStmt)(alloc(C.sizeof_AlterSeqStmt, C.T_AlterSeqStmt))
	s.sequence = w.writeRangeVar(v.Sequence)
	s.options = w.writeList(v.Options)
	s.for_identity = C.bool(v.ForIdentity)
	s.missing_ok = C.bool(v.MissingOk)
	return unsafe.Pointer(s)
}

func (w *writer) writeCreateTrigStmt(v *ast.CreateTrigStmt) unsafe.Pointer {
	s := (*C.CreateTrigStmt)(alloc(C.sizeof_CreateTrigStmt, C.T_CreateTrigStmt))
	s.replace = C.bool(v.Replace)
	s.isconstraint = C.bool(v.Isconstraint)
	s.trigname = pgStr(v.Trigname)
	s.relation = w.writeRangeVar(v.Relation)
	s.funcname = w.writeList(v.Funcname)
	s.args = w.writeList(v.Args)
	s.row = C.bool(v.Row)
	s.timing = C.int16(v.Timing)
	s.events = C.int16(v.Events)
	s.columns = w.writeList(v.Columns)
	s.whenClause = (*C.Node)(w.writeNode(v.WhenClause))
	s.transitionRels = w.writeList(v.TransitionRels)
	s.deferrable = C.bool(v.Deferrable)
	s.initdeferred = C.bool(v.Initdeferred)
	s.constrrel = w.writeRangeVar(v.Constrrel)
	return unsafe.Pointer(s)
}

func (w *writer) writeRuleStmt(v *ast.RuleStmt) unsafe.Pointer {
	s := (*C.RuleStmt)(alloc(C.sizeof_RuleStmt, C.T_RuleStmt))
	s.relation = w.writeRangeVar(v.Relation)
	s.rulename = pgStr(v.Rulename)
	s.whereClause = (*C.Node)(w.writeNode(v.WhereClause))
	s.event = C.CmdType(cdown(int32(v.Event)))
	s.instead = C.bool(v.Instead)
	s.actions = w.writeList(v.Actions)
	s.replace = C.bool(v.Replace)
	return unsafe.Pointer(s)
}

func (w *writer) writeCreateDomainStmt(v *ast.CreateDomainStmt) unsafe.Pointer {
	s := (*C.CreateDomainStmt)(alloc(C.sizeof_CreateDomainStmt, C.T_CreateDomainStmt))
	s.domainname = w.writeList(v.Domainname)
	s.typeName = w.writeTypeName(v.TypeName)
	s.collClause = w.writeCollateClause(v.CollClause)
	s.constraints = w.writeList(v.Constraints)
	return unsafe.Pointer(s)
}

func (w *writer) writeCreateTableAsStmt(v *ast.CreateTableAsStmt) unsafe.Pointer {
	s := (*C.CreateTableAsStmt)(alloc(C.sizeof_CreateTableAsStmt, C.T_CreateTableAsStmt))
	s.query = (*C.Node)(w.writeNode(v.Query))
	s.into = w.writeIntoClause(v.Into)
	s.objtype = C.ObjectType(cdown(int32(v.Objtype)))
	s.is_select_into = C.bool(v.IsSelectInto)
	s.if_not_exists = C.bool(v.IfNotExists)
	return unsafe.Pointer(s)
}

func (w *writer) writeRefreshMatViewStmt(v *ast.RefreshMatViewStmt) unsafe.Pointer {
	s := (*C.RefreshMatViewStmt)(alloc(C.sizeof_RefreshMatViewStmt, C.T_RefreshMatViewStmt))
	s.concurrent = C.bool(v.Concurrent)
	s.skipData = C.bool(v.SkipData)
	s.relation = w.writeRangeVar(v.Relation)
	return unsafe.Pointer(s)
}

func (w *writer) writeCompositeTypeStmt(v *ast.CompositeTypeStmt) unsafe.Pointer {
	s := (*C.CompositeTypeStmt)(alloc(C.sizeof_CompositeTypeStmt, C.T_CompositeTypeStmt))
	s.typevar = w.writeRangeVar(v.Typevar)
	s.coldeflist = w.writeList(v.Coldeflist)
	return unsafe.Pointer(s)
}

func (w *writer) writeCreateEnumStmt(v *ast.CreateEnumStmt) unsafe.Pointer {
	s := (*C.CreateEnumStmt)(alloc(C.sizeof_CreateEnumStmt, C.T_CreateEnumStmt))
	s.typeName = w.writeList(v.TypeName)
	s.vals = w.writeList(v.Vals)
	return unsafe.Pointer(s)
}

func (w *writer) writeCreateRangeStmt(v *ast.CreateRangeStmt) unsafe.Pointer {
	s := (*C.CreateRangeStmt)(alloc(C.sizeof_CreateRangeStmt, C.T_CreateRangeStmt))
	s.typeName = w.writeList(v.TypeName)
	s.params = w.writeList(v.Params)
	return unsafe.Pointer(s)
}

func (w *writer) writeAlterEnumStmt(v *ast.AlterEnumStmt) unsafe.Pointer {
	s := (*C.AlterEnumStmt)(alloc(C.sizeof_AlterEnumStmt, C.T_AlterEnumStmt))
	s.typeName = w.writeList(v.TypeName)
	s.oldVal = pgStr(v.OldVal)
	s.newVal = pgStr(v.NewVal)
	s.newValNeighbor = pgStr(v.NewValNeighbor)
	s.newValIsAfter = C.bool(v.NewValIsAfter)
	s.skipIfNewValExists = C.bool(v.SkipIfNewValExists)
	return unsafe.Pointer(s)
}

func (w *writer) writeCreateExtensionStmt(v *ast.CreateExtensionStmt) unsafe.Pointer {
	s := (*C.CreateExtensionStmt)(alloc(C.sizeof_CreateExtensionStmt, C.T_CreateExtensionStmt))
	s.extname = pgStr(v.Extname)
	s.if_not_exists = C.bool(v.IfNotExists)
	s.options = w.writeList(v.Options)
	return unsafe.Pointer(s)
}

func (w *writer) writeCreatePublicationStmt(v *ast.CreatePublicationStmt) unsafe.Pointer {
	s := (*C.CreatePublicationStmt)(alloc(C.sizeof_CreatePublicationStmt, C.T_CreatePublicationStmt))
	s.pubname = pgStr(v.Pubname)
	s.options = w.writeList(v.Options)
	s.pubobjects = w.writeList(v.Pubobjects)
	s.for_all_tables = C.bool(v.ForAllTables)
	return unsafe.Pointer(s)
}

func (w *writer) writeAlterPublicationStmt(v *ast.AlterPublicationStmt) unsafe.Pointer {
	s := (*C.AlterPublicationStmt)(alloc(C.sizeof_AlterPublicationStmt, C.T_AlterPublicationStmt))
	s.pubname = pgStr(v.Pubname)
	s.options = w.writeList(v.Options)
	s.pubobjects = w.writeList(v.Pubobjects)
	s.for_all_tables = C.bool(v.ForAllTables)
	s.action = C.AlterPublicationAction(cdown(int32(v.Action)))
	return unsafe.Pointer(s)
}

func (w *writer) writeCreateSubscriptionStmt(v *ast.CreateSubscriptionStmt) unsafe.Pointer {
	s := (*C.CreateSubscriptionStmt)(alloc(C.sizeof_CreateSubscriptionStmt, C.T_CreateSubscriptionStmt))
	s.subname = pgStr(v.Subname)
	s.conninfo = pgStr(v.Conninfo)
	s.publication = w.writeList(v.Publication)
	s.options = w.writeList(v.Options)
	return unsafe.Pointer(s)
}

func (w *writer) writeAlterSubscriptionStmt(v *ast.AlterSubscriptionStmt) unsafe.Pointer {
	s := (*C.AlterSubscriptionStmt)(alloc(C.sizeof_AlterSubscriptionStmt, C.T_AlterSubscriptionStmt))
	s.kind = C.AlterSubscriptionType(cdown(int32(v.Kind)))
	s.subname = pgStr(v.Subname)
	s.conninfo = pgStr(v.Conninfo)
	s.publication = w.writeList(v.Publication)
	s.options = w.writeList(v.Options)
	return unsafe.Pointer(s)
}

func (w *writer) writeAlterOwnerStmt(v *ast.AlterOwnerStmt) unsafe.Pointer {
	s := (*C.AlterOwnerStmt)(alloc(C.sizeof_AlterOwnerStmt, C.T_AlterOwnerStmt))
	s.objectType = C.ObjectType(cdown(int32(v.ObjectType)))
	s.relation = w.writeRangeVar(v.Relation)
	s.object = (*C.Node)(w.writeNode(v.Object))
	s.newowner = w.writeRoleSpec(v.Newowner)
	return unsafe.Pointer(s)
}

func (w *writer) writeRenameStmt(v *ast.RenameStmt) unsafe.Pointer {
	s := (*C.RenameStmt)(alloc(C.sizeof_RenameStmt, C.T_RenameStmt))
	s.renameType = C.ObjectType(cdown(int32(v.RenameType)))
	s.relationType = C.ObjectType(cdown(int32(v.RelationType)))
	s.relation = w.writeRangeVar(v.Relation)
	s.object = (*C.Node)(w.writeNode(v.Object))
	s.subname = pgStr(v.Subname)
	s.newname = pgStr(v.Newname)
	s.behavior = C.DropBehavior(cdown(int32(v.Behavior)))
	s.missing_ok = C.bool(v.MissingOk)
	return unsafe.Pointer(s)
}

func (w *writer) writeTransactionStmt(v *ast.TransactionStmt) unsafe.Pointer {
	s := (*C.TransactionStmt)(alloc(C.sizeof_TransactionStmt, C.T_TransactionStmt))
	s.kind = C.TransactionStmtKind(cdown(int32(v.Kind)))
	s.options = w.writeList(v.Options)
	s.savepoint_name = pgStr(v.SavepointName)
	s.gid = pgStr(v.Gid)
	s.chain = C.bool(v.Chain)
	s.location = C.ParseLoc(v.Location)
	return unsafe.Pointer(s)
}

func (w *writer) writeVariableSetStmt(v *ast.VariableSetStmt) unsafe.Pointer {
	s := (*C.VariableSetStmt)(alloc(C.sizeof_VariableSetStmt, C.T_VariableSetStmt))
	s.kind = C.VariableSetKind(cdown(int32(v.Kind)))
	s.name = pgStr(v.Name)
	s.args = w.writeList(v.Args)
	s.is_local = C.bool(v.IsLocal)
	return unsafe.Pointer(s)
}

func (w *writer) writeExplainStmt(v *ast.ExplainStmt) unsafe.Pointer {
	s := (*C.ExplainStmt)(alloc(C.sizeof_ExplainStmt, C.T_ExplainStmt))
	s.query = (*C.Node)(w.writeNode(v.Query))
	s.options = w.writeList(v.Options)
	return unsafe.Pointer(s)
}

func (w *writer) writeCopyStmt(v *ast.CopyStmt) unsafe.Pointer {
	s := (*C.CopyStmt)(alloc(C.sizeof_CopyStmt, C.T_CopyStmt))
	s.relation = w.writeRangeVar(v.Relation)
	s.query = (*C.Node)(w.writeNode(v.Query))
	s.attlist = w.writeList(v.Attlist)
	s.is_from = C.bool(v.IsFrom)
	s.is_program = C.bool(v.IsProgram)
	s.filename = pgStr(v.Filename)
	s.options = w.writeList(v.Options)
	s.whereClause = (*C.Node)(w.writeNode(v.WhereClause))
	return unsafe.Pointer(s)
}

func (w *writer) writeGrantStmt(v *ast.GrantStmt) unsafe.Pointer {
	s := (*C.GrantStmt)(alloc(C.sizeof_GrantStmt, C.T_GrantStmt))
	s.is_grant = C.bool(v.IsGrant)
	s.targtype = C.GrantTargetType(cdown(int32(v.Targtype)))
	s.objtype = C.ObjectType(cdown(int32(v.Objtype)))
	s.objects = w.writeList(v.Objects)
	s.privileges = w.writeList(v.Privileges)
	s.grantees = w.writeList(v.Grantees)
	s.grant_option = C.bool(v.GrantOption)
	s.grantor = w.writeRoleSpec(v.Grantor)
	s.behavior = C.DropBehavior(cdown(int32(v.Behavior)))
	return unsafe.Pointer(s)
}

func (w *writer) writeGrantRoleStmt(v *ast.GrantRoleStmt) unsafe.Pointer {
	s := (*C.GrantRoleStmt)(alloc(C.sizeof_GrantRoleStmt, C.T_GrantRoleStmt))
	s.granted_roles = w.writeList(v.GrantedRoles)
	s.grantee_roles = w.writeList(v.GranteeRoles)
	s.is_grant = C.bool(v.IsGrant)
	s.opt = w.writeList(v.Opt)
	s.grantor = w.writeRoleSpec(v.Grantor)
	s.behavior = C.DropBehavior(cdown(int32(v.Behavior)))
	return unsafe.Pointer(s)
}

func (w *writer) writeLockStmt(v *ast.LockStmt) unsafe.Pointer {
	s := (*C.LockStmt)(alloc(C.sizeof_LockStmt, C.T_LockStmt))
	s.relations = w.writeList(v.Relations)
	s.mode = C.int(v.Mode)
	s.nowait = C.bool(v.Nowait)
	return unsafe.Pointer(s)
}

func (w *writer) writeVacuumStmt(v *ast.VacuumStmt) unsafe.Pointer {
	s := (*C.VacuumStmt)(alloc(C.sizeof_VacuumStmt, C.T_VacuumStmt))
	s.options = w.writeList(v.Options)
	s.rels = w.writeList(v.Rels)
	s.is_vacuumcmd = C.bool(v.IsVacuumcmd)
	return unsafe.Pointer(s)
}

func (w *writer) writeVacuumRelation(v *ast.VacuumRelation) unsafe.Pointer {
	s := (*C.VacuumRelation)(alloc(C.sizeof_VacuumRelation, C.T_VacuumRelation))
	s.relation = w.writeRangeVar(v.Relation)
	s.oid = C.Oid(v.Oid)
	s.va_cols = w.writeList(v.VaCols)
	return unsafe.Pointer(s)
}

func (w *writer) writeColumnDef(v *ast.ColumnDef) unsafe.Pointer {
	s := (*C.ColumnDef)(alloc(C.sizeof_ColumnDef, C.T_ColumnDef))
	s.colname = pgStr(v.Colname)
	s.typeName = w.writeTypeName(v.TypeName)
	s.compression = pgStr(v.Compression)
	s.inhcount = C.int(v.Inhcount)
	s.is_local = C.bool(v.IsLocal)
	s.is_not_null = C.bool(v.IsNotNull)
	s.is_from_type = C.bool(v.IsFromType)
	s.storage = flagChar(v.Storage)
	s.storage_name = pgStr(v.StorageName)
	s.raw_default = (*C.Node)(w.writeNode(v.RawDefault))
	s.cooked_default = (*C.Node)(w.writeNode(v.CookedDefault))
	s.identity = flagChar(v.Identity)
	s.identitySequence = w.writeRangeVar(v.IdentitySequence)
	s.generated = flagChar(v.Generated)
	s.collClause = w.writeCollateClause(v.CollClause)
	s.collOid = C.Oid(v.CollOid)
	s.constraints = w.writeList(v.Constraints)
	s.fdwoptions = w.writeList(v.Fdwoptions)
	s.location = C.ParseLoc(v.Location)
	return unsafe.Pointer(s)
}

func (w *writer) writeConstraint(v *ast.Constraint) unsafe.Pointer {
	s := (*C.Constraint)(alloc(C.sizeof_Constraint, C.T_Constraint))
	s.contype = C.ConstrType(cdown(int32(v.Contype)))
	s.conname = pgStr(v.Conname)
	s.deferrable = C.bool(v.Deferrable)
	s.initdeferred = C.bool(v.Initdeferred)
	s.location = C.ParseLoc(v.Location)
	s.is_no_inherit = C.bool(v.IsNoInherit)
	s.raw_expr = (*C.Node)(w.writeNode(v.RawExpr))
	s.cooked_expr = pgStr(v.CookedExpr)
	s.generated_when = flagChar(v.GeneratedWhen)
	s.inhcount = C.int(v.Inhcount)
	s.nulls_not_distinct = C.bool(v.NullsNotDistinct)
	s.keys = w.writeList(v.Keys)
	s.including = w.writeList(v.Including)
	s.exclusions = w.writeList(v.Exclusions)
	s.options = w.writeList(v.Options)
	s.indexname = pgStr(v.Indexname)
	s.indexspace = pgStr(v.Indexspace)
	s.reset_default_tblspc = C.bool(v.ResetDefaultTblspc)
	s.access_method = pgStr(v.AccessMethod)
	s.where_clause = (*C.Node)(w.writeNode(v.WhereClause))
	s.pktable = w.writeRangeVar(v.Pktable)
	s.fk_attrs = w.writeList(v.FkAttrs)
	s.pk_attrs = w.writeList(v.PkAttrs)
	s.fk_matchtype = flagChar(v.FkMatchtype)
	s.fk_upd_action = flagChar(v.FkUpdAction)
	s.fk_del_action = flagChar(v.FkDelAction)
	s.fk_del_set_cols = w.writeList(v.FkDelSetCols)
	s.old_conpfeqop = w.writeList(v.OldConpfeqop)
	s.old_pktable_oid = C.Oid(v.OldPktableOid)
	s.skip_validation = C.bool(v.SkipValidation)
	s.initially_valid = C.bool(v.InitiallyValid)
	return unsafe.Pointer(s)
}
