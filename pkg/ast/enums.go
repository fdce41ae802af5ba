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

// Enumerated attributes of the parse tree.
//
// Every enum type in this file follows the same numbering convention:
// the zero value means "undefined / not set", and each defined value is
// the corresponding C enum value shifted by +1. The parser package shifts
// by +1 when reading the C tree and by -1 when writing it back, so a
// zero value in the owned model always round-trips to the C default.

// SetOperation identifies the set operation of a SELECT statement.
type SetOperation int32

const (
	SetOpUndefined SetOperation = iota
	SetOpNone
	SetOpUnion
	SetOpIntersect
	SetOpExcept
)

// LimitOption identifies the style of a LIMIT clause.
type LimitOption int32

const (
	LimitOptionUndefined LimitOption = iota
	LimitOptionDefault
	LimitOptionCount
	LimitOptionWithTies
)

// AExprKind identifies the flavor of an A_Expr operator expression.
type AExprKind int32

const (
	AExprUndefined AExprKind = iota
	AExprOp
	AExprOpAny
	AExprOpAll
	AExprDistinct
	AExprNotDistinct
	AExprNullIf
	AExprIn
	AExprLike
	AExprILike
	AExprSimilar
	AExprBetween
	AExprNotBetween
	AExprBetweenSym
	AExprNotBetweenSym
)

// BoolExprType identifies AND, OR, and NOT expressions.
type BoolExprType int32

const (
	BoolExprUndefined BoolExprType = iota
	BoolExprAnd
	BoolExprOr
	BoolExprNot
)

// SubLinkType identifies the context of a sublink (subquery expression).
type SubLinkType int32

const (
	SubLinkUndefined SubLinkType = iota
	SubLinkExists
	SubLinkAll
	SubLinkAny
	SubLinkRowCompare
	SubLinkExpr
	SubLinkMultiExpr
	SubLinkArray
	SubLinkCTE
)

// NullTestType distinguishes IS NULL from IS NOT NULL.
type NullTestType int32

const (
	NullTestUndefined NullTestType = iota
	NullTestIsNull
	NullTestIsNotNull
)

// BoolTestType identifies IS [NOT] TRUE / FALSE / UNKNOWN tests.
type BoolTestType int32

const (
	BoolTestUndefined BoolTestType = iota
	BoolTestIsTrue
	BoolTestIsNotTrue
	BoolTestIsFalse
	BoolTestIsNotFalse
	BoolTestIsUnknown
	BoolTestIsNotUnknown
)

// MinMaxOp distinguishes GREATEST from LEAST.
type MinMaxOp int32

const (
	MinMaxUndefined MinMaxOp = iota
	MinMaxGreatest
	MinMaxLeast
)

// JoinType identifies the join variant of a JoinExpr.
type JoinType int32

const (
	JoinTypeUndefined JoinType = iota
	JoinInner
	JoinLeft
	JoinFull
	JoinRight
	JoinSemi
	JoinAnti
	JoinRightAnti
	JoinUniqueOuter
	JoinUniqueInner
)

// SortByDir identifies the direction of an ORDER BY item.
type SortByDir int32

const (
	SortByDirUndefined SortByDir = iota
	SortByDefault
	SortByAsc
	SortByDesc
	SortByUsing
)

// SortByNulls identifies NULLS FIRST / NULLS LAST ordering.
type SortByNulls int32

const (
	SortByNullsUndefined SortByNulls = iota
	SortByNullsDefault
	SortByNullsFirst
	SortByNullsLast
)

// CTEMaterialize identifies the MATERIALIZED option of a CTE.
type CTEMaterialize int32

const (
	CTEMaterializeUndefined CTEMaterialize = iota
	CTEMaterializeDefault
	CTEMaterializeAlways
	CTEMaterializeNever
)

// OnCommitAction identifies the ON COMMIT behavior of a temp table.
type OnCommitAction int32

const (
	OnCommitUndefined OnCommitAction = iota
	OnCommitNoop
	OnCommitPreserveRows
	OnCommitDeleteRows
	OnCommitDrop
)

// ObjectType identifies the object class targeted by a DDL statement.
type ObjectType int32

const (
	ObjectUndefined ObjectType = iota
	ObjectAccessMethod
	ObjectAggregate
	ObjectAMOp
	ObjectAMProc
	ObjectAttribute
	ObjectCast
	ObjectColumn
	ObjectCollation
	ObjectConversion
	ObjectDatabase
	ObjectDefault
	ObjectDefACL
	ObjectDomain
	ObjectDomConstraint
	ObjectEventTrigger
	ObjectExtension
	ObjectFDW
	ObjectForeignServer
	ObjectForeignTable
	ObjectFunction
	ObjectIndex
	ObjectLanguage
	ObjectLargeObject
	ObjectMatView
	ObjectOpClass
	ObjectOperator
	ObjectOpFamily
	ObjectParameterACL
	ObjectPolicy
	ObjectProcedure
	ObjectPublication
	ObjectPublicationNamespace
	ObjectPublicationRel
	ObjectRole
	ObjectRoutine
	ObjectRule
	ObjectSchema
	ObjectSequence
	ObjectSubscription
	ObjectStatisticExt
	ObjectTableConstraint
	ObjectTable
	ObjectTablespace
	ObjectTransform
	ObjectTrigger
	ObjectTSConfiguration
	ObjectTSDictionary
	ObjectTSParser
	ObjectTSTemplate
	ObjectTypeType
	ObjectUserMapping
	ObjectView
)

// DropBehavior distinguishes RESTRICT from CASCADE.
type DropBehavior int32

const (
	DropBehaviorUndefined DropBehavior = iota
	DropRestrict
	DropCascade
)

// OnConflictAction identifies the ON CONFLICT resolution of an INSERT.
type OnConflictAction int32

const (
	OnConflictUndefined OnConflictAction = iota
	OnConflictNone
	OnConflictNothing
	OnConflictUpdate
)

// GroupingSetKind identifies the flavor of a GROUPING SETS element.
type GroupingSetKind int32

const (
	GroupingSetUndefined GroupingSetKind = iota
	GroupingSetEmpty
	GroupingSetSimple
	GroupingSetRollup
	GroupingSetCube
	GroupingSetSets
)

// CmdType identifies the command class of a rule event or merge action.
type CmdType int32

const (
	CmdTypeUndefined CmdType = iota
	CmdUnknown
	CmdSelect
	CmdUpdate
	CmdInsert
	CmdDelete
	CmdMerge
	CmdUtility
	CmdNothing
)

// TransactionStmtKind identifies the verb of a transaction statement.
type TransactionStmtKind int32

const (
	TransactionUndefined TransactionStmtKind = iota
	TransactionBegin
	TransactionStart
	TransactionCommit
	TransactionRollback
	TransactionSavepoint
	TransactionRelease
	TransactionRollbackTo
	TransactionPrepare
	TransactionCommitPrepared
	TransactionRollbackPrepared
)

// ConstrType identifies the kind of a table or column constraint.
type ConstrType int32

const (
	ConstrTypeUndefined ConstrType = iota
	ConstrNull
	ConstrNotNull
	ConstrDefault
	ConstrIdentity
	ConstrGenerated
	ConstrCheck
	ConstrPrimary
	ConstrUnique
	ConstrExclusion
	ConstrForeign
	ConstrAttrDeferrable
	ConstrAttrNotDeferrable
	ConstrAttrDeferred
	ConstrAttrImmediate
)

// DefElemAction identifies how a DefElem alters an option.
type DefElemAction int32

const (
	DefElemActionUndefined DefElemAction = iota
	DefElemUnspec
	DefElemSet
	DefElemAdd
	DefElemDrop
)

// RoleSpecType identifies how a role is referenced.
type RoleSpecType int32

const (
	RoleSpecTypeUndefined RoleSpecType = iota
	RoleSpecCString
	RoleSpecCurrentRole
	RoleSpecCurrentUser
	RoleSpecSessionUser
	RoleSpecPublic
)

// CoercionForm identifies how a function call or cast is displayed.
type CoercionForm int32

const (
	CoercionFormUndefined CoercionForm = iota
	CoerceExplicitCall
	CoerceExplicitCast
	CoerceImplicitCast
	CoerceSQLSyntax
)

// VariableSetKind identifies the flavor of a SET statement.
type VariableSetKind int32

const (
	VariableSetUndefined VariableSetKind = iota
	VarSetValue
	VarSetDefault
	VarSetCurrent
	VarSetMulti
	VarReset
	VarResetAll
)

// LockClauseStrength identifies the strength of a row-locking clause.
type LockClauseStrength int32

const (
	LockClauseStrengthUndefined LockClauseStrength = iota
	LCSNone
	LCSForKeyShare
	LCSForShare
	LCSForNoKeyUpdate
	LCSForUpdate
)

// LockWaitPolicy identifies NOWAIT / SKIP LOCKED behavior.
type LockWaitPolicy int32

const (
	LockWaitPolicyUndefined LockWaitPolicy = iota
	LockWaitBlock
	LockWaitSkip
	LockWaitError
)

// ViewCheckOption identifies WITH [CASCADED|LOCAL] CHECK OPTION.
type ViewCheckOption int32

const (
	ViewCheckOptionUndefined ViewCheckOption = iota
	NoCheckOption
	LocalCheckOption
	CascadedCheckOption
)

// DiscardMode identifies the target of a DISCARD statement.
type DiscardMode int32

const (
	DiscardModeUndefined DiscardMode = iota
	DiscardAll
	DiscardPlans
	DiscardSequences
	DiscardTemp
)

// FetchDirection identifies the direction of a FETCH or MOVE.
type FetchDirection int32

const (
	FetchDirectionUndefined FetchDirection = iota
	FetchForward
	FetchBackward
	FetchAbsolute
	FetchRelative
)

// FunctionParameterMode identifies IN / OUT / INOUT / VARIADIC / TABLE
// parameters. The C representation is a char code; the shifted numbering
// here follows the declaration order of the C enum.
type FunctionParameterMode int32

const (
	FunctionParameterModeUndefined FunctionParameterMode = iota
	FuncParamIn
	FuncParamOut
	FuncParamInOut
	FuncParamVariadic
	FuncParamTable
	FuncParamDefault
)

// AlterTableType identifies the subcommand of an ALTER TABLE.
type AlterTableType int32

const (
	AlterTableTypeUndefined AlterTableType = iota
	ATAddColumn
	ATAddColumnToView
	ATColumnDefault
	ATCookedColumnDefault
	ATDropNotNull
	ATSetNotNull
	ATDropExpression
	ATCheckNotNull
	ATSetStatistics
	ATSetOptions
	ATResetOptions
	ATSetStorage
	ATSetCompression
	ATDropColumn
	ATAddIndex
	ATReAddIndex
	ATAddConstraint
	ATReAddConstraint
	ATReAddDomainConstraint
	ATAlterConstraint
	ATValidateConstraint
	ATAddIndexConstraint
	ATDropConstraint
	ATReAddComment
	ATAlterColumnType
	ATAlterColumnGenericOptions
	ATChangeOwner
	ATClusterOn
	ATDropCluster
	ATSetLogged
	ATSetUnLogged
	ATDropOids
	ATSetAccessMethod
	ATSetTableSpace
	ATSetRelOptions
	ATResetRelOptions
	ATReplaceRelOptions
	ATEnableTrig
	ATEnableAlwaysTrig
	ATEnableReplicaTrig
	ATDisableTrig
	ATEnableTrigAll
	ATDisableTrigAll
	ATEnableTrigUser
	ATDisableTrigUser
	ATEnableRule
	ATEnableAlwaysRule
	ATEnableReplicaRule
	ATDisableRule
	ATAddInherit
	ATDropInherit
	ATAddOf
	ATDropOf
	ATReplicaIdentity
	ATEnableRowSecurity
	ATDisableRowSecurity
	ATForceRowSecurity
	ATNoForceRowSecurity
	ATGenericOptions
	ATAttachPartition
	ATDetachPartition
	ATDetachPartitionFinalize
	ATAddIdentity
	ATSetIdentity
	ATDropIdentity
	ATReAddStatistics
)

// GrantTargetType identifies the scope of a GRANT.
type GrantTargetType int32

const (
	GrantTargetUndefined GrantTargetType = iota
	ACLTargetObject
	ACLTargetAllInSchema
	ACLTargetDefaults
)

// OverridingKind identifies OVERRIDING SYSTEM/USER VALUE on INSERT.
type OverridingKind int32

const (
	OverridingUndefined OverridingKind = iota
	OverridingNotSet
	OverridingUserValue
	OverridingSystemValue
)

// PartitionRangeDatumKind identifies a range-bound datum: MINVALUE, a
// concrete value, or MAXVALUE. The C enum is unusual in starting at -1,
// so the shift here is +2 rather than +1.
type PartitionRangeDatumKind int32

const (
	PartitionRangeDatumUndefined PartitionRangeDatumKind = iota
	PartitionRangeDatumMinValue
	PartitionRangeDatumValue
	PartitionRangeDatumMaxValue
)

// PartitionStrategy identifies LIST / RANGE / HASH partitioning. The C
// representation is a char code ('l', 'r', 'h'); the bridge maps it to
// this compact numbering.
type PartitionStrategy int32

const (
	PartitionStrategyUndefined PartitionStrategy = iota
	PartitionStrategyList
	PartitionStrategyRange
	PartitionStrategyHash
)

// AlterPublicationAction identifies SET / ADD / DROP on a publication.
type AlterPublicationAction int32

const (
	AlterPublicationActionUndefined AlterPublicationAction = iota
	APAddObjects
	APDropObjects
	APSetObjects
)

// AlterSubscriptionType identifies the subcommand of ALTER SUBSCRIPTION.
type AlterSubscriptionType int32

const (
	AlterSubscriptionTypeUndefined AlterSubscriptionType = iota
	AlterSubscriptionOptions
	AlterSubscriptionConnection
	AlterSubscriptionSetPublication
	AlterSubscriptionAddPublication
	AlterSubscriptionDropPublication
	AlterSubscriptionRefresh
	AlterSubscriptionEnabled
	AlterSubscriptionSkip
)

// PublicationObjSpecType identifies the object class of a publication
// member.
type PublicationObjSpecType int32

const (
	PublicationObjSpecTypeUndefined PublicationObjSpecType = iota
	PublicationObjTable
	PublicationObjTablesInSchema
	PublicationObjTablesInCurSchema
	PublicationObjContinuation
)

// MergeMatchKind identifies MATCHED / NOT MATCHED [BY SOURCE|TARGET].
type MergeMatchKind int32

const (
	MergeMatchKindUndefined MergeMatchKind = iota
	MergeWhenMatched
	MergeWhenNotMatchedBySource
	MergeWhenNotMatchedByTarget
)

// SQLValueFunctionOp identifies which SQL value function was written
// (CURRENT_DATE, CURRENT_USER, and friends).
type SQLValueFunctionOp int32

const (
	SQLValueFunctionOpUndefined SQLValueFunctionOp = iota
	SVFOpCurrentDate
	SVFOpCurrentTime
	SVFOpCurrentTimeN
	SVFOpCurrentTimestamp
	SVFOpCurrentTimestampN
	SVFOpLocalTime
	SVFOpLocalTimeN
	SVFOpLocalTimestamp
	SVFOpLocalTimestampN
	SVFOpCurrentRole
	SVFOpCurrentUser
	SVFOpUser
	SVFOpSessionUser
	SVFOpCurrentCatalog
	SVFOpCurrentSchema
)

// JsonFormatType identifies the FORMAT clause of a SQL/JSON value.
type JsonFormatType int32

const (
	JsonFormatTypeUndefined JsonFormatType = iota
	JsFormatDefault
	JsFormatJson
	JsFormatJsonb
)

// JsonEncoding identifies the ENCODING clause of FORMAT JSON.
type JsonEncoding int32

const (
	JsonEncodingUndefined JsonEncoding = iota
	JsEncDefault
	JsEncUtf8
	JsEncUtf16
	JsEncUtf32
)

// JsonValueType identifies the item type of an IS JSON predicate.
type JsonValueType int32

const (
	JsonValueTypeUndefined JsonValueType = iota
	JsTypeAny
	JsTypeObject
	JsTypeArray
	JsTypeScalar
)
