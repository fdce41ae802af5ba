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

// Visitor is called for each node reached by Walk. Returning false
// prunes the subtree below the node.
type Visitor func(Node) bool

// Walk traverses the tree rooted at n in depth-first, field order,
// calling v for every non-nil node.
//
// Thread Safety: safe for concurrent use on trees that are not being
// mutated.
func Walk(n Node, v Visitor) {
	if n == nil || !v(n) {
		return
	}
	for _, c := range Children(n) {
		Walk(c, v)
	}
}

func app(dst []Node, kids ...Node) []Node {
	for _, k := range kids {
		if k != nil {
			dst = append(dst, k)
		}
	}
	return dst
}

func appList(dst []Node, items []Node) []Node {
	for _, k := range items {
		if k != nil {
			dst = append(dst, k)
		}
	}
	return dst
}

func ptr[T any](p *T) Node {
	if p == nil {
		return nil
	}
	return any(p).(Node)
}

// Children returns the direct non-nil children of n in field order.
// Leaf kinds return nil.
func Children(n Node) []Node {
	var out []Node
	switch n := n.(type) {
	case *List:
		out = appList(out, n.Items)

	case *SelectStmt:
		out = appList(out, n.DistinctClause)
		out = app(out, ptr(n.IntoClause))
		out = appList(out, n.TargetList)
		out = appList(out, n.FromClause)
		out = app(out, n.WhereClause)
		out = appList(out, n.GroupClause)
		out = app(out, n.HavingClause)
		out = appList(out, n.WindowClause)
		out = appList(out, n.ValuesLists)
		out = appList(out, n.SortClause)
		out = app(out, n.LimitOffset, n.LimitCount)
		out = appList(out, n.LockingClause)
		out = app(out, ptr(n.WithClause), ptr(n.Larg), ptr(n.Rarg))

	case *InsertStmt:
		out = app(out, ptr(n.Relation))
		out = appList(out, n.Cols)
		out = app(out, n.SelectStmt, ptr(n.OnConflictClause))
		out = appList(out, n.ReturningList)
		out = app(out, ptr(n.WithClause))

	case *UpdateStmt:
		out = app(out, ptr(n.Relation))
		out = appList(out, n.TargetList)
		out = app(out, n.WhereClause)
		out = appList(out, n.FromClause)
		out = appList(out, n.ReturningList)
		out = app(out, ptr(n.WithClause))

	case *DeleteStmt:
		out = app(out, ptr(n.Relation))
		out = appList(out, n.UsingClause)
		out = app(out, n.WhereClause)
		out = appList(out, n.ReturningList)
		out = app(out, ptr(n.WithClause))

	case *MergeStmt:
		out = app(out, ptr(n.Relation), n.SourceRelation, n.JoinCondition)
		out = appList(out, n.MergeWhenClauses)
		out = appList(out, n.ReturningList)
		out = app(out, ptr(n.WithClause))

	case *CreateStmt:
		out = app(out, ptr(n.Relation))
		out = appList(out, n.TableElts)
		out = appList(out, n.InhRelations)
		out = app(out, ptr(n.Partbound), ptr(n.Partspec), ptr(n.OfTypename))
		out = appList(out, n.Constraints)
		out = appList(out, n.Options)

	case *AlterTableStmt:
		out = app(out, ptr(n.Relation))
		out = appList(out, n.Cmds)

	case *AlterTableCmd:
		out = app(out, ptr(n.Newowner), n.Def)

	case *DropStmt:
		out = appList(out, n.Objects)

	case *TruncateStmt:
		out = appList(out, n.Relations)

	case *IndexStmt:
		out = app(out, ptr(n.Relation))
		out = appList(out, n.IndexParams)
		out = appList(out, n.IndexIncludingParams)
		out = appList(out, n.Options)
		out = app(out, n.WhereClause)
		out = appList(out, n.ExcludeOpNames)

	case *CreateSchemaStmt:
		out = app(out, ptr(n.Authrole))
		out = appList(out, n.SchemaElts)

	case *ViewStmt:
		out = app(out, ptr(n.View))
		out = appList(out, n.Aliases)
		out = app(out, n.Query)
		out = appList(out, n.Options)

	case *CreateFunctionStmt:
		out = appList(out, n.Funcname)
		out = appList(out, n.Parameters)
		out = app(out, ptr(n.ReturnType))
		out = appList(out, n.Options)
		out = app(out, n.SQLBody)

	case *AlterFunctionStmt:
		out = app(out, ptr(n.Func))
		out = appList(out, n.Actions)

	case *CreateSeqStmt:
		out = app(out, ptr(n.Sequence))
		out = appList(out, n.Options)

	case *AlterSeqStmt:
		out = app(out, ptr(n.Sequence))
		out = appList(out, n.Options)

	case *CreateTrigStmt:
		out = app(out, ptr(n.Relation))
		out = appList(out, n.Funcname)
		out = appList(out, n.Args)
		out = appList(out, n.Columns)
		out = app(out, n.WhenClause)
		out = appList(out, n.TransitionRels)
		out = app(out, ptr(n.Constrrel))

	case *RuleStmt:
		out = app(out, ptr(n.Relation), n.WhereClause)
		out = appList(out, n.Actions)

	case *CreateDomainStmt:
		out = appList(out, n.Domainname)
		out = app(out, ptr(n.TypeName), ptr(n.CollClause))
		out = appList(out, n.Constraints)

	case *CreateTableAsStmt:
		out = app(out, n.Query, ptr(n.Into))

	case *RefreshMatViewStmt:
		out = app(out, ptr(n.Relation))

	case *CompositeTypeStmt:
		out = app(out, ptr(n.Typevar))
		out = appList(out, n.Coldeflist)

	case *CreateEnumStmt:
		out = appList(out, n.TypeName)
		out = appList(out, n.Vals)

	case *CreateRangeStmt:
		out = appList(out, n.TypeName)
		out = appList(out, n.Params)

	case *AlterEnumStmt:
		out = appList(out, n.TypeName)

	case *CreateExtensionStmt:
		out = appList(out, n.Options)

	case *CreatePublicationStmt:
		out = appList(out, n.Options)
		out = appList(out, n.Pubobjects)

	case *AlterPublicationStmt:
		out = appList(out, n.Options)
		out = appList(out, n.Pubobjects)

	case *CreateSubscriptionStmt:
		out = appList(out, n.Publication)
		out = appList(out, n.Options)

	case *AlterSubscriptionStmt:
		out = appList(out, n.Publication)
		out = appList(out, n.Options)

	case *AlterOwnerStmt:
		out = app(out, ptr(n.Relation), n.Object, ptr(n.Newowner))

	case *RenameStmt:
		out = app(out, ptr(n.Relation), n.Object)

	case *TransactionStmt:
		out = appList(out, n.Options)

	case *VariableSetStmt:
		out = appList(out, n.Args)

	case *ExplainStmt:
		out = app(out, n.Query)
		out = appList(out, n.Options)

	case *CopyStmt:
		out = app(out, ptr(n.Relation), n.Query)
		out = appList(out, n.Attlist)
		out = appList(out, n.Options)
		out = app(out, n.WhereClause)

	case *GrantStmt:
		out = appList(out, n.Objects)
		out = appList(out, n.Privileges)
		out = appList(out, n.Grantees)
		out = app(out, ptr(n.Grantor))

	case *GrantRoleStmt:
		out = appList(out, n.GrantedRoles)
		out = appList(out, n.GranteeRoles)
		out = appList(out, n.Opt)
		out = app(out, ptr(n.Grantor))

	case *LockStmt:
		out = appList(out, n.Relations)

	case *VacuumStmt:
		out = appList(out, n.Options)
		out = appList(out, n.Rels)

	case *VacuumRelation:
		out = app(out, ptr(n.Relation))
		out = appList(out, n.VaCols)

	case *DoStmt:
		out = appList(out, n.Args)

	case *CallStmt:
		out = app(out, ptr(n.Funccall))
		out = appList(out, n.Outargs)

	case *PrepareStmt:
		out = appList(out, n.Argtypes)
		out = app(out, n.Query)

	case *ExecuteStmt:
		out = appList(out, n.Params)

	case *AExpr:
		out = appList(out, n.Name)
		out = app(out, n.Lexpr, n.Rexpr)

	case *ColumnRef:
		out = appList(out, n.Fields)

	case *AConst:
		out = app(out, n.Val)

	case *TypeCast:
		out = app(out, n.Arg, ptr(n.TypeName))

	case *CollateClause:
		out = app(out, n.Arg)
		out = appList(out, n.Collname)

	case *FuncCall:
		out = appList(out, n.Funcname)
		out = appList(out, n.Args)
		out = appList(out, n.AggOrder)
		out = app(out, n.AggFilter, ptr(n.Over))

	case *AIndices:
		out = app(out, n.Lidx, n.Uidx)

	case *AIndirection:
		out = app(out, n.Arg)
		out = appList(out, n.Indirection)

	case *AArrayExpr:
		out = appList(out, n.Elements)

	case *SubLink:
		out = app(out, n.Testexpr)
		out = appList(out, n.OperName)
		out = app(out, n.Subselect)

	case *BoolExpr:
		out = appList(out, n.Args)

	case *NullTest:
		out = app(out, n.Arg)

	case *BooleanTest:
		out = app(out, n.Arg)

	case *CaseExpr:
		out = app(out, n.Arg)
		out = appList(out, n.Args)
		out = app(out, n.Defresult)

	case *CaseWhen:
		out = app(out, n.Expr, n.Result)

	case *CoalesceExpr:
		out = appList(out, n.Args)

	case *MinMaxExpr:
		out = appList(out, n.Args)

	case *RowExpr:
		out = appList(out, n.Args)
		out = appList(out, n.Colnames)

	case *MultiAssignRef:
		out = app(out, n.Source)

	case *CoerceToDomain:
		out = app(out, n.Arg)

	case *GroupingFunc:
		out = appList(out, n.Args)
		out = appList(out, n.Refs)

	case *GroupingSet:
		out = appList(out, n.Content)

	case *ResTarget:
		out = appList(out, n.Indirection)
		out = app(out, n.Val)

	case *RangeVar:
		out = app(out, ptr(n.Alias))

	case *RangeSubselect:
		out = app(out, n.Subquery, ptr(n.Alias))

	case *RangeFunction:
		out = appList(out, n.Functions)
		out = app(out, ptr(n.Alias))
		out = appList(out, n.Coldeflist)

	case *JoinExpr:
		out = app(out, n.Larg, n.Rarg)
		out = appList(out, n.UsingClause)
		out = app(out, ptr(n.JoinUsingAlias), n.Quals, ptr(n.Alias))

	case *SortBy:
		out = app(out, n.Node)
		out = appList(out, n.UseOp)

	case *WindowDef:
		out = appList(out, n.PartitionClause)
		out = appList(out, n.OrderClause)
		out = app(out, n.StartOffset, n.EndOffset)

	case *WithClause:
		out = appList(out, n.Ctes)

	case *CommonTableExpr:
		out = appList(out, n.Aliascolnames)
		out = app(out, n.Ctequery, ptr(n.SearchClause), ptr(n.CycleClause))
		out = appList(out, n.Ctecolnames)

	case *CTESearchClause:
		out = appList(out, n.SearchColList)

	case *CTECycleClause:
		out = appList(out, n.CycleColList)
		out = app(out, n.CycleMarkValue, n.CycleMarkDefault)

	case *IntoClause:
		out = app(out, ptr(n.Rel))
		out = appList(out, n.ColNames)
		out = appList(out, n.Options)
		out = app(out, n.ViewQuery)

	case *OnConflictClause:
		out = app(out, ptr(n.Infer))
		out = appList(out, n.TargetList)
		out = app(out, n.WhereClause)

	case *InferClause:
		out = appList(out, n.IndexElems)
		out = app(out, n.WhereClause)

	case *LockingClause:
		out = appList(out, n.LockedRels)

	case *MergeWhenClause:
		out = app(out, n.Condition)
		out = appList(out, n.TargetList)
		out = appList(out, n.Values)

	case *MergeAction:
		out = app(out, n.Qual)
		out = appList(out, n.TargetList)
		out = appList(out, n.UpdateColnos)

	case *TypeName:
		out = appList(out, n.Names)
		out = appList(out, n.Typmods)
		out = appList(out, n.ArrayBounds)

	case *ColumnDef:
		out = app(out, ptr(n.TypeName), n.RawDefault, n.CookedDefault, ptr(n.IdentitySequence), ptr(n.CollClause))
		out = appList(out, n.Constraints)
		out = appList(out, n.Fdwoptions)

	case *Constraint:
		out = app(out, n.RawExpr)
		out = appList(out, n.Keys)
		out = appList(out, n.Including)
		out = appList(out, n.Exclusions)
		out = appList(out, n.Options)
		out = app(out, n.WhereClause, ptr(n.Pktable))
		out = appList(out, n.FkAttrs)
		out = appList(out, n.PkAttrs)
		out = appList(out, n.FkDelSetCols)
		out = appList(out, n.OldConpfeqop)

	case *DefElem:
		out = app(out, n.Arg)

	case *IndexElem:
		out = app(out, n.Expr)
		out = appList(out, n.Collation)
		out = appList(out, n.Opclass)
		out = appList(out, n.Opclassopts)

	case *PartitionSpec:
		out = appList(out, n.PartParams)

	case *PartitionBoundSpec:
		out = appList(out, n.Listdatums)
		out = appList(out, n.Lowerdatums)
		out = appList(out, n.Upperdatums)

	case *PartitionElem:
		out = app(out, n.Expr)
		out = appList(out, n.Collation)
		out = appList(out, n.Opclass)

	case *PartitionRangeDatum:
		out = app(out, n.Value)

	case *Alias:
		out = appList(out, n.Colnames)

	case *FunctionParameter:
		out = app(out, ptr(n.ArgType), n.Defexpr)

	case *ObjectWithArgs:
		out = appList(out, n.Objname)
		out = appList(out, n.Objargs)
		out = appList(out, n.Objfuncargs)

	case *AccessPriv:
		out = appList(out, n.Cols)

	case *PublicationObjSpec:
		out = app(out, ptr(n.Pubtable))

	case *PublicationTable:
		out = app(out, ptr(n.Relation), n.WhereClause)

	case *JsonReturning:
		out = app(out, ptr(n.Format))

	case *JsonValueExpr:
		out = app(out, n.RawExpr, n.FormattedExpr, ptr(n.Format))

	case *JsonOutput:
		out = app(out, ptr(n.TypeName), ptr(n.Returning))

	case *JsonKeyValue:
		out = app(out, n.Key, ptr(n.Value))

	case *JsonObjectConstructor:
		out = appList(out, n.Exprs)
		out = app(out, ptr(n.Output))

	case *JsonArrayConstructor:
		out = appList(out, n.Exprs)
		out = app(out, ptr(n.Output))

	case *JsonArrayQueryConstructor:
		out = app(out, n.Query, ptr(n.Output), ptr(n.Format))

	case *JsonAggConstructor:
		out = app(out, ptr(n.Output), n.AggFilter)
		out = appList(out, n.AggOrder)
		out = app(out, ptr(n.Over))

	case *JsonObjectAgg:
		out = app(out, ptr(n.Constructor), ptr(n.Arg))

	case *JsonArrayAgg:
		out = app(out, ptr(n.Constructor), ptr(n.Arg))

	case *JsonIsPredicate:
		out = app(out, n.Expr, ptr(n.Format))

	case *JsonParseExpr:
		out = app(out, ptr(n.Expr), ptr(n.Output))

	case *JsonScalarExpr:
		out = app(out, n.Expr, ptr(n.Output))

	case *JsonSerializeExpr:
		out = app(out, ptr(n.Expr), ptr(n.Output))
	}
	return out
}
