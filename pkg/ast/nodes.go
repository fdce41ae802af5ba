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

// Node is the discriminated union over all parse-tree node kinds.
//
// Every node kind is a pointer-to-struct implementation of this interface.
// A nil Node means "absent": a single-child field that the statement does
// not use, or a structurally significant empty slot inside a list (for
// example the bare-DISTINCT marker in SelectStmt.DistinctClause).
//
// Struct field order below is the canonical child order. Both readers and
// the writer visit children in exactly this order; changing it would
// break the iterative reader's stack protocol.
type Node interface {
	isNode()
}

// RawStmt wraps one top-level statement with its position in the source
// text. StmtLen of 0 means "rest of the string".
type RawStmt struct {
	Stmt         Node
	StmtLocation int32
	StmtLen      int32
}

// =========================================================================
// Primitive values
// =========================================================================

// Integer is a literal integer value.
type Integer struct {
	Ival int64
}

// Float is a literal numeric value kept in its textual, precision-
// preserving form.
type Float struct {
	Fval string
}

// Boolean is a literal boolean value.
type Boolean struct {
	Boolval bool
}

// String is a literal string value, also used for identifiers inside
// name lists.
type String struct {
	Sval string
}

// BitString is a literal bit-string value (b'...' or x'...').
type BitString struct {
	Bsval string
}

// Null is the literal NULL.
type Null struct{}

// AStar is the "*" in a column reference or COUNT(*).
type AStar struct{}

// List is an ordered sequence of nodes. Lists nest: VALUES clauses are
// lists of lists.
type List struct {
	Items []Node
}

// Other preserves a node kind the bridge does not decode. Raw holds the
// C library's serialized text form of the subtree so no information is
// lost on read; the writer refuses to deparse it.
type Other struct {
	Raw string
}

// =========================================================================
// DML statements
// =========================================================================

// SelectStmt is a SELECT, VALUES, or set-operation statement. For set
// operations Op is the operator and Larg/Rarg are the operand selects.
type SelectStmt struct {
	DistinctClause []Node
	IntoClause     *IntoClause
	TargetList     []Node
	FromClause     []Node
	WhereClause    Node
	GroupClause    []Node
	GroupDistinct  bool
	HavingClause   Node
	WindowClause   []Node
	ValuesLists    []Node
	SortClause     []Node
	LimitOffset    Node
	LimitCount     Node
	LimitOption    LimitOption
	LockingClause  []Node
	WithClause     *WithClause
	Op             SetOperation
	All            bool
	Larg           *SelectStmt
	Rarg           *SelectStmt
}

// InsertStmt is an INSERT statement.
type InsertStmt struct {
	Relation         *RangeVar
	Cols             []Node
	SelectStmt       Node
	OnConflictClause *OnConflictClause
	ReturningList    []Node
	WithClause       *WithClause
	Override         OverridingKind
}

// UpdateStmt is an UPDATE statement.
type UpdateStmt struct {
	Relation      *RangeVar
	TargetList    []Node
	WhereClause   Node
	FromClause    []Node
	ReturningList []Node
	WithClause    *WithClause
}

// DeleteStmt is a DELETE statement.
type DeleteStmt struct {
	Relation      *RangeVar
	UsingClause   []Node
	WhereClause   Node
	ReturningList []Node
	WithClause    *WithClause
}

// MergeStmt is a MERGE statement.
type MergeStmt struct {
	Relation         *RangeVar
	SourceRelation   Node
	JoinCondition    Node
	MergeWhenClauses []Node
	ReturningList    []Node
	WithClause       *WithClause
}

// =========================================================================
// DDL statements
// =========================================================================

// CreateStmt is a CREATE TABLE statement.
type CreateStmt struct {
	Relation       *RangeVar
	TableElts      []Node
	InhRelations   []Node
	Partbound      *PartitionBoundSpec
	Partspec       *PartitionSpec
	OfTypename     *TypeName
	Constraints    []Node
	Options        []Node
	Oncommit       OnCommitAction
	Tablespacename string
	AccessMethod   string
	IfNotExists    bool
}

// AlterTableStmt is an ALTER TABLE (or VIEW, INDEX, ...) statement whose
// subcommands are AlterTableCmd nodes.
type AlterTableStmt struct {
	Relation  *RangeVar
	Cmds      []Node
	Objtype   ObjectType
	MissingOk bool
}

// AlterTableCmd is one subcommand of an ALTER TABLE statement.
type AlterTableCmd struct {
	Subtype   AlterTableType
	Name      string
	Num       int32
	Newowner  *RoleSpec
	Def       Node
	Behavior  DropBehavior
	MissingOk bool
	Recurse   bool
}

// DropStmt is a DROP statement for any object class.
type DropStmt struct {
	Objects    []Node
	RemoveType ObjectType
	Behavior   DropBehavior
	MissingOk  bool
	Concurrent bool
}

// TruncateStmt is a TRUNCATE statement.
type TruncateStmt struct {
	Relations   []Node
	RestartSeqs bool
	Behavior    DropBehavior
}

// IndexStmt is a CREATE INDEX statement.
type IndexStmt struct {
	Idxname              string
	Relation             *RangeVar
	AccessMethod         string
	TableSpace           string
	IndexParams          []Node
	IndexIncludingParams []Node
	Options              []Node
	WhereClause          Node
	ExcludeOpNames       []Node
	Idxcomment           string
	IndexOid             uint32
	OldNumber            uint32
	Unique               bool
	NullsNotDistinct     bool
	Primary              bool
	Isconstraint         bool
	Deferrable           bool
	Initdeferred         bool
	Transformed          bool
	Concurrent           bool
	IfNotExists          bool
	ResetDefaultTblspc   bool
}

// CreateSchemaStmt is a CREATE SCHEMA statement.
type CreateSchemaStmt struct {
	Schemaname  string
	Authrole    *RoleSpec
	SchemaElts  []Node
	IfNotExists bool
}

// ViewStmt is a CREATE [OR REPLACE] VIEW statement.
type ViewStmt struct {
	View            *RangeVar
	Aliases         []Node
	Query           Node
	Replace         bool
	Options         []Node
	WithCheckOption ViewCheckOption
}

// CreateFunctionStmt is a CREATE FUNCTION or CREATE PROCEDURE statement.
type CreateFunctionStmt struct {
	IsProcedure bool
	Replace     bool
	Funcname    []Node
	Parameters  []Node
	ReturnType  *TypeName
	Options     []Node
	SQLBody     Node
}

// AlterFunctionStmt is an ALTER FUNCTION/PROCEDURE/ROUTINE statement.
type AlterFunctionStmt struct {
	Objtype ObjectType
	Func    *ObjectWithArgs
	Actions []Node
}

// CreateSeqStmt is a CREATE SEQUENCE statement.
type CreateSeqStmt struct {
	Sequence    *RangeVar
	Options     []Node
	OwnerID     uint32
	ForIdentity bool
	IfNotExists bool
}

// AlterSeqStmt is an ALTER SEQUENCE statement.
type AlterSeqStmt struct {
	Sequence    *RangeVar
	Options     []Node
	ForIdentity bool
	MissingOk   bool
}

// CreateTrigStmt is a CREATE TRIGGER statement.
type CreateTrigStmt struct {
	Replace        bool
	Isconstraint   bool
	Trigname       string
	Relation       *RangeVar
	Funcname       []Node
	Args           []Node
	Row            bool
	Timing         int32
	Events         int32
	Columns        []Node
	WhenClause     Node
	TransitionRels []Node
	Deferrable     bool
	Initdeferred   bool
	Constrrel      *RangeVar
}

// RuleStmt is a CREATE RULE statement.
type RuleStmt struct {
	Relation    *RangeVar
	Rulename    string
	WhereClause Node
	Event       CmdType
	Instead     bool
	Actions     []Node
	Replace     bool
}

// CreateDomainStmt is a CREATE DOMAIN statement.
type CreateDomainStmt struct {
	Domainname  []Node
	TypeName    *TypeName
	CollClause  *CollateClause
	Constraints []Node
}

// CreateTableAsStmt is CREATE TABLE AS / CREATE MATERIALIZED VIEW /
// SELECT INTO.
type CreateTableAsStmt struct {
	Query        Node
	Into         *IntoClause
	Objtype      ObjectType
	IsSelectInto bool
	IfNotExists  bool
}

// RefreshMatViewStmt is a REFRESH MATERIALIZED VIEW statement.
type RefreshMatViewStmt struct {
	Concurrent bool
	SkipData   bool
	Relation   *RangeVar
}

// CompositeTypeStmt is a CREATE TYPE ... AS (...) statement.
type CompositeTypeStmt struct {
	Typevar    *RangeVar
	Coldeflist []Node
}

// CreateEnumStmt is a CREATE TYPE ... AS ENUM statement.
type CreateEnumStmt struct {
	TypeName []Node
	Vals     []Node
}

// CreateRangeStmt is a CREATE TYPE ... AS RANGE statement.
type CreateRangeStmt struct {
	TypeName []Node
	Params   []Node
}

// AlterEnumStmt is an ALTER TYPE ... ADD/RENAME VALUE statement.
type AlterEnumStmt struct {
	TypeName           []Node
	OldVal             string
	NewVal             string
	NewValNeighbor     string
	NewValIsAfter      bool
	SkipIfNewValExists bool
}

// CreateExtensionStmt is a CREATE EXTENSION statement.
type CreateExtensionStmt struct {
	Extname     string
	IfNotExists bool
	Options     []Node
}

// CreatePublicationStmt is a CREATE PUBLICATION statement.
type CreatePublicationStmt struct {
	Pubname      string
	Options      []Node
	Pubobjects   []Node
	ForAllTables bool
}

// AlterPublicationStmt is an ALTER PUBLICATION statement.
type AlterPublicationStmt struct {
	Pubname      string
	Options      []Node
	Pubobjects   []Node
	ForAllTables bool
	Action       AlterPublicationAction
}

// CreateSubscriptionStmt is a CREATE SUBSCRIPTION statement.
type CreateSubscriptionStmt struct {
	Subname     string
	Conninfo    string
	Publication []Node
	Options     []Node
}

// AlterSubscriptionStmt is an ALTER SUBSCRIPTION statement.
type AlterSubscriptionStmt struct {
	Kind        AlterSubscriptionType
	Subname     string
	Conninfo    string
	Publication []Node
	Options     []Node
}

// AlterOwnerStmt is an ALTER ... OWNER TO statement.
type AlterOwnerStmt struct {
	ObjectType ObjectType
	Relation   *RangeVar
	Object     Node
	Newowner   *RoleSpec
}

// RenameStmt is an ALTER ... RENAME statement.
type RenameStmt struct {
	RenameType   ObjectType
	RelationType ObjectType
	Relation     *RangeVar
	Object       Node
	Subname      string
	Newname      string
	Behavior     DropBehavior
	MissingOk    bool
}

// =========================================================================
// Session, transaction, and utility statements
// =========================================================================

// TransactionStmt is BEGIN, COMMIT, ROLLBACK, SAVEPOINT, and friends.
type TransactionStmt struct {
	Kind          TransactionStmtKind
	Options       []Node
	SavepointName string
	Gid           string
	Chain         bool
	Location      int32
}

// VariableSetStmt is a SET statement.
type VariableSetStmt struct {
	Kind    VariableSetKind
	Name    string
	Args    []Node
	IsLocal bool
}

// VariableShowStmt is a SHOW statement.
type VariableShowStmt struct {
	Name string
}

// ExplainStmt is an EXPLAIN statement.
type ExplainStmt struct {
	Query   Node
	Options []Node
}

// CopyStmt is a COPY statement.
type CopyStmt struct {
	Relation    *RangeVar
	Query       Node
	Attlist     []Node
	IsFrom      bool
	IsProgram   bool
	Filename    string
	Options     []Node
	WhereClause Node
}

// GrantStmt is a GRANT or REVOKE statement on objects.
type GrantStmt struct {
	IsGrant     bool
	Targtype    GrantTargetType
	Objtype     ObjectType
	Objects     []Node
	Privileges  []Node
	Grantees    []Node
	GrantOption bool
	Grantor     *RoleSpec
	Behavior    DropBehavior
}

// GrantRoleStmt is a GRANT or REVOKE statement on role membership.
type GrantRoleStmt struct {
	GrantedRoles []Node
	GranteeRoles []Node
	IsGrant      bool
	Opt          []Node
	Grantor      *RoleSpec
	Behavior     DropBehavior
}

// LockStmt is a LOCK TABLE statement.
type LockStmt struct {
	Relations []Node
	Mode      int32
	Nowait    bool
}

// VacuumStmt is a VACUUM or ANALYZE statement.
type VacuumStmt struct {
	Options     []Node
	Rels        []Node
	IsVacuumcmd bool
}

// VacuumRelation is one target relation of a VACUUM or ANALYZE.
type VacuumRelation struct {
	Relation *RangeVar
	Oid      uint32
	VaCols   []Node
}

// DoStmt is a DO (anonymous code block) statement.
type DoStmt struct {
	Args []Node
}

// CallStmt is a CALL statement.
type CallStmt struct {
	Funccall *FuncCall
	Outargs  []Node
}

// NotifyStmt is a NOTIFY statement.
type NotifyStmt struct {
	Conditionname string
	Payload       string
}

// ListenStmt is a LISTEN statement.
type ListenStmt struct {
	Conditionname string
}

// UnlistenStmt is an UNLISTEN statement.
type UnlistenStmt struct {
	Conditionname string
}

// CheckPointStmt is a CHECKPOINT statement.
type CheckPointStmt struct{}

// DiscardStmt is a DISCARD statement.
type DiscardStmt struct {
	Target DiscardMode
}

// PrepareStmt is a PREPARE statement.
type PrepareStmt struct {
	Name     string
	Argtypes []Node
	Query    Node
}

// ExecuteStmt is an EXECUTE statement.
type ExecuteStmt struct {
	Name   string
	Params []Node
}

// DeallocateStmt is a DEALLOCATE statement. IsAll is set for
// DEALLOCATE ALL, in which case Name is empty.
type DeallocateStmt struct {
	Name     string
	IsAll    bool
	Location int32
}

// ClosePortalStmt is a CLOSE cursor statement.
type ClosePortalStmt struct {
	Portalname string
}

// FetchStmt is a FETCH or MOVE statement.
type FetchStmt struct {
	Direction  FetchDirection
	HowMany    int64
	Portalname string
	Ismove     bool
}

// =========================================================================
// Expressions
// =========================================================================

// AExpr is an operator expression: comparisons, arithmetic, LIKE,
// BETWEEN, IN, and the rest of the A_Expr family.
type AExpr struct {
	Kind     AExprKind
	Name     []Node
	Lexpr    Node
	Rexpr    Node
	Location int32
}

// ColumnRef is a possibly qualified column reference; Fields holds
// String and AStar parts.
type ColumnRef struct {
	Fields   []Node
	Location int32
}

// ParamRef is a $n parameter reference.
type ParamRef struct {
	Number   int32
	Location int32
}

// AConst is a literal constant. Val is one of *Integer, *Float,
// *Boolean, *String, or *BitString; it is nil when Isnull is set.
type AConst struct {
	Val      Node
	Isnull   bool
	Location int32
}

// TypeCast is a CAST(expr AS type) or expr::type expression.
type TypeCast struct {
	Arg      Node
	TypeName *TypeName
	Location int32
}

// CollateClause is an expr COLLATE name expression.
type CollateClause struct {
	Arg      Node
	Collname []Node
	Location int32
}

// FuncCall is a function or aggregate invocation, including window
// functions via Over.
type FuncCall struct {
	Funcname       []Node
	Args           []Node
	AggOrder       []Node
	AggFilter      Node
	Over           *WindowDef
	AggWithinGroup bool
	AggStar        bool
	AggDistinct    bool
	FuncVariadic   bool
	Funcformat     CoercionForm
	Location       int32
}

// AIndices is an array subscript or slice bound.
type AIndices struct {
	IsSlice bool
	Lidx    Node
	Uidx    Node
}

// AIndirection is subscripting or field selection applied to an
// expression.
type AIndirection struct {
	Arg         Node
	Indirection []Node
}

// AArrayExpr is an ARRAY[...] constructor.
type AArrayExpr struct {
	Elements []Node
	Location int32
}

// SubLink is a subquery appearing in expression context.
type SubLink struct {
	SubLinkType SubLinkType
	SubLinkID   int32
	Testexpr    Node
	OperName    []Node
	Subselect   Node
	Location    int32
}

// BoolExpr is an AND, OR, or NOT expression. The parser flattens
// repeated applications, so Args may hold more than two operands.
type BoolExpr struct {
	Boolop   BoolExprType
	Args     []Node
	Location int32
}

// NullTest is an IS [NOT] NULL test.
type NullTest struct {
	Arg          Node
	Nulltesttype NullTestType
	Argisrow     bool
	Location     int32
}

// BooleanTest is an IS [NOT] TRUE/FALSE/UNKNOWN test.
type BooleanTest struct {
	Arg          Node
	Booltesttype BoolTestType
	Location     int32
}

// CaseExpr is a CASE expression; Args holds CaseWhen nodes.
type CaseExpr struct {
	Arg       Node
	Args      []Node
	Defresult Node
	Location  int32
}

// CaseWhen is one WHEN ... THEN ... arm of a CASE expression.
type CaseWhen struct {
	Expr     Node
	Result   Node
	Location int32
}

// CoalesceExpr is a COALESCE(...) expression.
type CoalesceExpr struct {
	Args     []Node
	Location int32
}

// MinMaxExpr is a GREATEST(...) or LEAST(...) expression.
type MinMaxExpr struct {
	Op       MinMaxOp
	Args     []Node
	Location int32
}

// RowExpr is a ROW(...) constructor.
type RowExpr struct {
	Args      []Node
	RowFormat CoercionForm
	Colnames  []Node
	Location  int32
}

// SQLValueFunction is a parameterless SQL value function such as
// CURRENT_DATE or SESSION_USER.
type SQLValueFunction struct {
	Op       SQLValueFunctionOp
	Typmod   int32
	Location int32
}

// SetToDefault is the DEFAULT marker in INSERT and UPDATE value lists.
type SetToDefault struct {
	TypeID   uint32
	TypeMod  int32
	Location int32
}

// MultiAssignRef is the source of a multiple-column assignment in
// UPDATE ... SET (a, b) = (...).
type MultiAssignRef struct {
	Source   Node
	Colno    int32
	Ncolumns int32
}

// CoerceToDomain is a run-time domain coercion produced for domain
// defaults appearing in the raw tree.
type CoerceToDomain struct {
	Arg            Node
	Resulttype     uint32
	Resulttypmod   int32
	Resultcollid   uint32
	Coercionformat CoercionForm
	Location       int32
}

// GroupingFunc is a GROUPING(...) expression inside a grouping-sets
// query.
type GroupingFunc struct {
	Args        []Node
	Refs        []Node
	Agglevelsup uint32
	Location    int32
}

// GroupingSet is one element of GROUP BY GROUPING SETS / ROLLUP / CUBE.
type GroupingSet struct {
	Kind     GroupingSetKind
	Content  []Node
	Location int32
}

// =========================================================================
// Clauses and helpers
// =========================================================================

// ResTarget is a result target: a SELECT output column or an assignment
// target in INSERT/UPDATE.
type ResTarget struct {
	Name        string
	Indirection []Node
	Val         Node
	Location    int32
}

// RangeVar is a reference to a table, view, or sequence.
// Relpersistence is a one-character code ('p', 'u', 't'); empty means
// unset.
type RangeVar struct {
	Catalogname    string
	Schemaname     string
	Relname        string
	Inh            bool
	Relpersistence string
	Alias          *Alias
	Location       int32
}

// RangeSubselect is a subquery in the FROM clause.
type RangeSubselect struct {
	Lateral  bool
	Subquery Node
	Alias    *Alias
}

// RangeFunction is a function call in the FROM clause.
type RangeFunction struct {
	Lateral    bool
	Ordinality bool
	IsRowsfrom bool
	Functions  []Node
	Alias      *Alias
	Coldeflist []Node
}

// JoinExpr is a JOIN between two range items.
type JoinExpr struct {
	Jointype       JoinType
	IsNatural      bool
	Larg           Node
	Rarg           Node
	UsingClause    []Node
	JoinUsingAlias *Alias
	Quals          Node
	Alias          *Alias
	Rtindex        int32
}

// SortBy is one element of an ORDER BY clause.
type SortBy struct {
	Node        Node
	SortbyDir   SortByDir
	SortbyNulls SortByNulls
	UseOp       []Node
	Location    int32
}

// WindowDef is a window definition or OVER clause.
type WindowDef struct {
	Name            string
	Refname         string
	PartitionClause []Node
	OrderClause     []Node
	FrameOptions    int32
	StartOffset     Node
	EndOffset       Node
	Location        int32
}

// WithClause is the WITH clause of a statement.
type WithClause struct {
	Ctes      []Node
	Recursive bool
	Location  int32
}

// CommonTableExpr is one CTE of a WITH clause.
type CommonTableExpr struct {
	Ctename         string
	Aliascolnames   []Node
	Ctematerialized CTEMaterialize
	Ctequery        Node
	SearchClause    *CTESearchClause
	CycleClause     *CTECycleClause
	Location        int32
	Cterecursive    bool
	Cterefcount     int32
	Ctecolnames     []Node
}

// CTESearchClause is the SEARCH clause of a recursive CTE.
type CTESearchClause struct {
	SearchColList      []Node
	SearchBreadthFirst bool
	SearchSeqColumn    string
	Location           int32
}

// CTECycleClause is the CYCLE clause of a recursive CTE.
type CTECycleClause struct {
	CycleColList     []Node
	CycleMarkColumn  string
	CycleMarkValue   Node
	CycleMarkDefault Node
	CyclePathColumn  string
	Location         int32
}

// IntoClause is the INTO target of SELECT INTO and CREATE TABLE AS.
type IntoClause struct {
	Rel            *RangeVar
	ColNames       []Node
	AccessMethod   string
	Options        []Node
	OnCommit       OnCommitAction
	TableSpaceName string
	ViewQuery      Node
	SkipData       bool
}

// OnConflictClause is the ON CONFLICT clause of an INSERT.
type OnConflictClause struct {
	Action      OnConflictAction
	Infer       *InferClause
	TargetList  []Node
	WhereClause Node
	Location    int32
}

// InferClause is the conflict-target specification of ON CONFLICT.
type InferClause struct {
	IndexElems  []Node
	WhereClause Node
	Conname     string
	Location    int32
}

// LockingClause is a FOR UPDATE / FOR SHARE clause.
type LockingClause struct {
	LockedRels []Node
	Strength   LockClauseStrength
	WaitPolicy LockWaitPolicy
}

// MergeWhenClause is one WHEN arm of a MERGE statement.
type MergeWhenClause struct {
	MatchKind   MergeMatchKind
	CommandType CmdType
	Override    OverridingKind
	Condition   Node
	TargetList  []Node
	Values      []Node
}

// MergeAction mirrors a planned merge action when it appears in the
// raw tree.
type MergeAction struct {
	MatchKind    MergeMatchKind
	CommandType  CmdType
	Override     OverridingKind
	Qual         Node
	TargetList   []Node
	UpdateColnos []Node
}

// TypeName is a reference to a (possibly parameterized, possibly array)
// type.
type TypeName struct {
	Names       []Node
	TypeOid     uint32
	Setof       bool
	PctType     bool
	Typmods     []Node
	Typemod     int32
	ArrayBounds []Node
	Location    int32
}

// ColumnDef is a column definition in CREATE TABLE and friends.
// Storage, Identity, and Generated are one-character codes; empty means
// unset.
type ColumnDef struct {
	Colname          string
	TypeName         *TypeName
	Compression      string
	Inhcount         int32
	IsLocal          bool
	IsNotNull        bool
	IsFromType       bool
	Storage          string
	StorageName      string
	RawDefault       Node
	CookedDefault    Node
	Identity         string
	IdentitySequence *RangeVar
	Generated        string
	CollClause       *CollateClause
	CollOid          uint32
	Constraints      []Node
	Fdwoptions       []Node
	Location         int32
}

// Constraint is a table or column constraint. The FK action and match
// fields are one-character codes; empty means unset.
type Constraint struct {
	Contype            ConstrType
	Conname            string
	Deferrable         bool
	Initdeferred       bool
	Location           int32
	IsNoInherit        bool
	RawExpr            Node
	CookedExpr         string
	GeneratedWhen      string
	Inhcount           int32
	NullsNotDistinct   bool
	Keys               []Node
	Including          []Node
	Exclusions         []Node
	Options            []Node
	Indexname          string
	Indexspace         string
	ResetDefaultTblspc bool
	AccessMethod       string
	WhereClause        Node
	Pktable            *RangeVar
	FkAttrs            []Node
	PkAttrs            []Node
	FkMatchtype        string
	FkUpdAction        string
	FkDelAction        string
	FkDelSetCols       []Node
	OldConpfeqop       []Node
	OldPktableOid      uint32
	SkipValidation     bool
	InitiallyValid     bool
}

// DefElem is a generic name/value option element.
type DefElem struct {
	Defnamespace string
	Defname      string
	Arg          Node
	Defaction    DefElemAction
	Location     int32
}

// IndexElem is one column or expression of an index definition.
type IndexElem struct {
	Name          string
	Expr          Node
	Indexcolname  string
	Collation     []Node
	Opclass       []Node
	Opclassopts   []Node
	Ordering      SortByDir
	NullsOrdering SortByNulls
}

// PartitionSpec is the PARTITION BY clause of CREATE TABLE.
type PartitionSpec struct {
	Strategy   PartitionStrategy
	PartParams []Node
	Location   int32
}

// PartitionBoundSpec is the FOR VALUES clause of a partition.
// Strategy is a one-character code; empty means unset.
type PartitionBoundSpec struct {
	Strategy    string
	IsDefault   bool
	Modulus     int32
	Remainder   int32
	Listdatums  []Node
	Lowerdatums []Node
	Upperdatums []Node
	Location    int32
}

// PartitionElem is one column or expression of a PARTITION BY clause.
type PartitionElem struct {
	Name      string
	Expr      Node
	Collation []Node
	Opclass   []Node
	Location  int32
}

// PartitionRangeDatum is one bound datum of a range partition.
type PartitionRangeDatum struct {
	Kind     PartitionRangeDatumKind
	Value    Node
	Location int32
}

// Alias is a table or column alias.
type Alias struct {
	Aliasname string
	Colnames  []Node
}

// RoleSpec is a reference to a role, including the CURRENT_USER family
// of pseudo-roles.
type RoleSpec struct {
	Roletype RoleSpecType
	Rolename string
	Location int32
}

// FunctionParameter is one parameter of a CREATE FUNCTION statement.
type FunctionParameter struct {
	Name    string
	ArgType *TypeName
	Mode    FunctionParameterMode
	Defexpr Node
}

// ObjectWithArgs names a function or operator together with its
// argument types.
type ObjectWithArgs struct {
	Objname         []Node
	Objargs         []Node
	Objfuncargs     []Node
	ArgsUnspecified bool
}

// AccessPriv is one privilege name of a GRANT statement.
type AccessPriv struct {
	PrivName string
	Cols     []Node
}

// PublicationObjSpec is one member of a publication object list.
type PublicationObjSpec struct {
	Pubobjtype PublicationObjSpecType
	Name       string
	Pubtable   *PublicationTable
	Location   int32
}

// PublicationTable is a table reference inside a publication.
type PublicationTable struct {
	Relation    *RangeVar
	WhereClause Node
	Columns     []Node
}

// TriggerTransition is a REFERENCING OLD/NEW TABLE clause element of
// CREATE TRIGGER.
type TriggerTransition struct {
	Name    string
	IsNew   bool
	IsTable bool
}

// =========================================================================
// SQL/JSON constructors and predicates
// =========================================================================

// JsonFormat is the FORMAT JSON clause attached to SQL/JSON values.
type JsonFormat struct {
	FormatType JsonFormatType
	Encoding   JsonEncoding
	Location   int32
}

// JsonReturning is the resolved RETURNING type of a SQL/JSON construct.
type JsonReturning struct {
	Format *JsonFormat
	Typid  uint32
	Typmod int32
}

// JsonValueExpr is an expression plus its JSON format, the value form
// SQL/JSON constructors consume.
type JsonValueExpr struct {
	RawExpr       Node
	FormattedExpr Node
	Format        *JsonFormat
}

// JsonOutput is the RETURNING clause of a SQL/JSON constructor.
type JsonOutput struct {
	TypeName  *TypeName
	Returning *JsonReturning
}

// JsonKeyValue is one key : value pair of JSON_OBJECT or
// JSON_OBJECTAGG.
type JsonKeyValue struct {
	Key   Node
	Value *JsonValueExpr
}

// JsonObjectConstructor is a JSON_OBJECT(...) expression.
type JsonObjectConstructor struct {
	Exprs        []Node
	Output       *JsonOutput
	AbsentOnNull bool
	Unique       bool
	Location     int32
}

// JsonArrayConstructor is a JSON_ARRAY(value, ...) expression.
type JsonArrayConstructor struct {
	Exprs        []Node
	Output       *JsonOutput
	AbsentOnNull bool
	Location     int32
}

// JsonArrayQueryConstructor is a JSON_ARRAY(subquery) expression.
type JsonArrayQueryConstructor struct {
	Query        Node
	Output       *JsonOutput
	Format       *JsonFormat
	AbsentOnNull bool
	Location     int32
}

// JsonAggConstructor is the common aggregate envelope of
// JSON_OBJECTAGG and JSON_ARRAYAGG.
type JsonAggConstructor struct {
	Output    *JsonOutput
	AggFilter Node
	AggOrder  []Node
	Over      *WindowDef
	Location  int32
}

// JsonObjectAgg is a JSON_OBJECTAGG(...) expression.
type JsonObjectAgg struct {
	Constructor  *JsonAggConstructor
	Arg          *JsonKeyValue
	AbsentOnNull bool
	Unique       bool
}

// JsonArrayAgg is a JSON_ARRAYAGG(...) expression.
type JsonArrayAgg struct {
	Constructor  *JsonAggConstructor
	Arg          *JsonValueExpr
	AbsentOnNull bool
}

// JsonIsPredicate is an expr IS [NOT] JSON predicate.
type JsonIsPredicate struct {
	Expr       Node
	Format     *JsonFormat
	ItemType   JsonValueType
	UniqueKeys bool
	Location   int32
}

// JsonParseExpr is a JSON(...) expression.
type JsonParseExpr struct {
	Expr       *JsonValueExpr
	Output     *JsonOutput
	UniqueKeys bool
	Location   int32
}

// JsonScalarExpr is a JSON_SCALAR(...) expression.
type JsonScalarExpr struct {
	Expr     Node
	Output   *JsonOutput
	Location int32
}

// JsonSerializeExpr is a JSON_SERIALIZE(...) expression.
type JsonSerializeExpr struct {
	Expr     *JsonValueExpr
	Output   *JsonOutput
	Location int32
}

// isNode implementations. One line per kind; the set here is the
// complete decoded universe.

func (*Integer) isNode()                {}
func (*Float) isNode()                  {}
func (*Boolean) isNode()                {}
func (*String) isNode()                 {}
func (*BitString) isNode()              {}
func (*Null) isNode()                   {}
func (*AStar) isNode()                  {}
func (*List) isNode()                   {}
func (*Other) isNode()                  {}
func (*SelectStmt) isNode()             {}
func (*InsertStmt) isNode()             {}
func (*UpdateStmt) isNode()             {}
func (*DeleteStmt) isNode()             {}
func (*MergeStmt) isNode()              {}
func (*CreateStmt) isNode()             {}
func (*AlterTableStmt) isNode()         {}
func (*AlterTableCmd) isNode()          {}
func (*DropStmt) isNode()               {}
func (*TruncateStmt) isNode()           {}
func (*IndexStmt) isNode()              {}
func (*CreateSchemaStmt) isNode()       {}
func (*ViewStmt) isNode()               {}
func (*CreateFunctionStmt) isNode()     {}
func (*AlterFunctionStmt) isNode()      {}
func (*CreateSeqStmt) isNode()          {}
func (*AlterSeqStmt) isNode()           {}
func (*CreateTrigStmt) isNode()         {}
func (*RuleStmt) isNode()               {}
func (*CreateDomainStmt) isNode()       {}
func (*CreateTableAsStmt) isNode()      {}
func (*RefreshMatViewStmt) isNode()     {}
func (*CompositeTypeStmt) isNode()      {}
func (*CreateEnumStmt) isNode()         {}
func (*CreateRangeStmt) isNode()        {}
func (*AlterEnumStmt) isNode()          {}
func (*CreateExtensionStmt) isNode()    {}
func (*CreatePublicationStmt) isNode()  {}
func (*AlterPublicationStmt) isNode()   {}
func (*CreateSubscriptionStmt) isNode() {}
func (*AlterSubscriptionStmt) isNode()  {}
func (*AlterOwnerStmt) isNode()         {}
func (*RenameStmt) isNode()             {}
func (*TransactionStmt) isNode()        {}
func (*VariableSetStmt) isNode()        {}
func (*VariableShowStmt) isNode()       {}
func (*ExplainStmt) isNode()            {}
func (*CopyStmt) isNode()               {}
func (*GrantStmt) isNode()              {}
func (*GrantRoleStmt) isNode()          {}
func (*LockStmt) isNode()               {}
func (*VacuumStmt) isNode()             {}
func (*VacuumRelation) isNode()         {}
func (*DoStmt) isNode()                 {}
func (*CallStmt) isNode()               {}
func (*NotifyStmt) isNode()             {}
func (*ListenStmt) isNode()             {}
func (*UnlistenStmt) isNode()           {}
func (*CheckPointStmt) isNode()         {}
func (*DiscardStmt) isNode()            {}
func (*PrepareStmt) isNode()            {}
func (*ExecuteStmt) isNode()            {}
func (*DeallocateStmt) isNode()         {}
func (*ClosePortalStmt) isNode()        {}
func (*FetchStmt) isNode()              {}
func (*AExpr) isNode()                  {}
func (*ColumnRef) isNode()              {}
func (*ParamRef) isNode()               {}
func (*AConst) isNode()                 {}
func (*TypeCast) isNode()               {}
func (*CollateClause) isNode()          {}
func (*FuncCall) isNode()               {}
func (*AIndices) isNode()               {}
func (*AIndirection) isNode()           {}
func (*AArrayExpr) isNode()             {}
func (*SubLink) isNode()                {}
func (*BoolExpr) isNode()               {}
func (*NullTest) isNode()               {}
func (*BooleanTest) isNode()            {}
func (*CaseExpr) isNode()               {}
func (*CaseWhen) isNode()               {}
func (*CoalesceExpr) isNode()           {}
func (*MinMaxExpr) isNode()             {}
func (*RowExpr) isNode()                {}
func (*SQLValueFunction) isNode()       {}
func (*SetToDefault) isNode()           {}
func (*MultiAssignRef) isNode()         {}
func (*CoerceToDomain) isNode()         {}
func (*GroupingFunc) isNode()           {}
func (*GroupingSet) isNode()            {}
func (*ResTarget) isNode()              {}
func (*RangeVar) isNode()               {}
func (*RangeSubselect) isNode()         {}
func (*RangeFunction) isNode()          {}
func (*JoinExpr) isNode()               {}
func (*SortBy) isNode()                 {}
func (*WindowDef) isNode()              {}
func (*WithClause) isNode()             {}
func (*CommonTableExpr) isNode()        {}
func (*CTESearchClause) isNode()        {}
func (*CTECycleClause) isNode()         {}
func (*IntoClause) isNode()             {}
func (*OnConflictClause) isNode()       {}
func (*InferClause) isNode()            {}
func (*LockingClause) isNode()          {}
func (*MergeWhenClause) isNode()        {}
func (*MergeAction) isNode()            {}
func (*TypeName) isNode()               {}
func (*ColumnDef) isNode()              {}
func (*Constraint) isNode()             {}
func (*DefElem) isNode()                {}
func (*IndexElem) isNode()              {}
func (*PartitionSpec) isNode()          {}
func (*PartitionBoundSpec) isNode()     {}
func (*PartitionElem) isNode()          {}
func (*PartitionRangeDatum) isNode()    {}
func (*Alias) isNode()                  {}
func (*RoleSpec) isNode()               {}
func (*FunctionParameter) isNode()      {}
func (*ObjectWithArgs) isNode()         {}
func (*AccessPriv) isNode()             {}
func (*PublicationObjSpec) isNode()     {}
func (*PublicationTable) isNode()       {}
func (*TriggerTransition) isNode()      {}

func (*JsonFormat) isNode()                {}
func (*JsonReturning) isNode()             {}
func (*JsonValueExpr) isNode()             {}
func (*JsonOutput) isNode()                {}
func (*JsonKeyValue) isNode()              {}
func (*JsonObjectConstructor) isNode()     {}
func (*JsonArrayConstructor) isNode()      {}
func (*JsonArrayQueryConstructor) isNode() {}
func (*JsonAggConstructor) isNode()        {}
func (*JsonObjectAgg) isNode()             {}
func (*JsonArrayAgg) isNode()              {}
func (*JsonIsPredicate) isNode()           {}
func (*JsonParseExpr) isNode()             {}
func (*JsonScalarExpr) isNode()            {}
func (*JsonSerializeExpr) isNode()         {}
