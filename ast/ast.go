// Copyright 2026 The Dhall-Go Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package ast defines the abstract syntax tree consumed and produced by the
// normalizer, along with the capture-avoiding Shift operator.
//
// Expr is intentionally syntax-only: evaluation never mutates or rebuilds an
// Expr in place, and the evaluator (package internal/normalize) never hands
// an Expr back out except as the final, read-back result of Normalize. The
// separation mirrors the Node/Value/Decl/Expr marker-interface idiom of
// cuelang.org/go's internal ADT, generalized to a single Expr family since
// the language described here has no separate declaration grammar.
package ast

import "github.com/cockroachdb/apd/v2"

// A Node is any AST node.
type Node interface {
	astNode()
}

// An Expr is any expression node. Every concrete node type in this package
// implements Expr via a cheap marker method rather than exposing a Kind()
// enum, so that adding a node kind is a compile error at every switch that
// needs to handle it (the same trade-off cuelang.org/go's adt package makes).
type Expr interface {
	Node
	astExpr()
}

// Var is a variable reference. Index counts shadowing occurrences of Name
// from the innermost enclosing binder outward, starting at 0.
type Var struct {
	Name  string
	Index int
}

// Lam is a lambda abstraction `λ(Name : Type) -> Body`.
type Lam struct {
	Name string
	Type Expr
	Body Expr
}

// Pi is a dependent function type `∀(Name : Type) -> Body`.
type Pi struct {
	Name string
	Type Expr
	Body Expr
}

// App is function application `Fn Arg`.
type App struct {
	Fn  Expr
	Arg Expr
}

// Let is `let Name : Type = Value in Body`. Type may be nil (inferred).
type Let struct {
	Name  string
	Type  Expr
	Value Expr
	Body  Expr
}

// Annot is a type ascription `Expr : Type`.
type Annot struct {
	Expr Expr
	Type Expr
}

// Note is a transparent, position-only wrapper around an expression. It
// carries no normalization-relevant information: evaluating, shifting, or
// reading back a Note just recurses into Inner and the Note itself never
// survives into a normal form.
type Note struct {
	Inner Expr
}

// If is `if Cond then Then else Else`.
type If struct {
	Cond, Then, Else Expr
}

// BoolLit is a boolean literal.
type BoolLit struct{ Value bool }

// NaturalLit is an arbitrary-precision non-negative integer literal.
type NaturalLit struct{ Value *apd.Decimal }

// IntegerLit is an arbitrary-precision signed integer literal.
type IntegerLit struct{ Value *apd.Decimal }

// TextChunk is one `Prefix${Expr}` segment of an interpolated text literal.
type TextChunk struct {
	Prefix string
	Expr   Expr
}

// TextLit is an interpolated text literal: zero or more (string, expr)
// chunks followed by a trailing string suffix.
type TextLit struct {
	Chunks []TextChunk
	Suffix string
}

// EmptyListLit is `[] : List ElemType`. ElemType is mandatory since an empty
// list carries no element to infer it from.
type EmptyListLit struct{ ElemType Expr }

// NEListLit is a non-empty list literal; Elems has at least one element.
type NEListLit struct{ Elems []Expr }

// EmptyOptionalLit is `None ElemType` in already-elaborated form.
type EmptyOptionalLit struct{ ElemType Expr }

// NEOptionalLit is `Some Value`.
type NEOptionalLit struct{ Value Expr }

// RecordField is one label/value pair of a RecordLit.
type RecordField struct {
	Label string
	Value Expr
}

// RecordLit is a record literal `{ l1 = v1, l2 = v2, ... }`. Labels are
// unique but need not be pre-sorted; readback sorts on output.
type RecordLit struct{ Fields []RecordField }

// RecordTypeField is one label/type pair of a RecordType.
type RecordTypeField struct {
	Label string
	Type  Expr
}

// RecordType is a record type `{ l1 : T1, l2 : T2, ... }`.
type RecordType struct{ Fields []RecordTypeField }

// Alt is one label of a union, with an optional payload type (nil for a
// constant alternative that carries no payload).
type Alt struct {
	Label string
	Type  Expr
}

// UnionType is a union type `< L1 : T1 | L2 | ... >`.
type UnionType struct{ Alts []Alt }

// UnionLit is an already-constructed union value: selecting alternative
// Label out of Alts, with payload Value (nil for a constant alternative).
// Source Dhall never writes this directly — it is produced by applying a
// union constructor to a payload, or by embedding an already-normalized
// value — but it is a first-class AST node so readback has somewhere to put
// the result.
type UnionLit struct {
	Label string
	Value Expr
	Alts  []Alt
}

// Field is field selection `Target.Label`.
type Field struct {
	Target Expr
	Label  string
}

// Projection is record projection `Target.{ L1, L2, ... }`.
type Projection struct {
	Target Expr
	Labels []string
}

// Merge is `merge Handlers Scrutinee : Annotation`. Annotation may be nil.
type Merge struct {
	Handlers   Expr
	Scrutinee  Expr
	Annotation Expr
}

// BinOpKind enumerates the fixed set of binary operators.
type BinOpKind int

const (
	BoolAnd BinOpKind = iota
	BoolOr
	BoolEQ
	BoolNE
	NaturalPlus
	NaturalTimes
	TextAppend
	ListAppend
	ImportAlt
)

// BinOp is a binary operator application `L op R`.
type BinOp struct {
	Op   BinOpKind
	L, R Expr
}

// Builtin is a reference to a built-in identifier, unapplied.
type Builtin struct{ Name BuiltinID }

// Embed wraps an already-normalized sub-expression for (re-)injection into
// an input AST position — see EmbedAbsurd.
type Embed struct{ Normalized Expr }

func (*Var) astNode()              {}
func (*Lam) astNode()              {}
func (*Pi) astNode()               {}
func (*App) astNode()              {}
func (*Let) astNode()              {}
func (*Annot) astNode()            {}
func (*Note) astNode()             {}
func (*If) astNode()               {}
func (*BoolLit) astNode()          {}
func (*NaturalLit) astNode()       {}
func (*IntegerLit) astNode()       {}
func (*TextLit) astNode()          {}
func (*EmptyListLit) astNode()     {}
func (*NEListLit) astNode()        {}
func (*EmptyOptionalLit) astNode() {}
func (*NEOptionalLit) astNode()    {}
func (*RecordLit) astNode()        {}
func (*RecordType) astNode()       {}
func (*UnionType) astNode()        {}
func (*UnionLit) astNode()         {}
func (*Field) astNode()            {}
func (*Projection) astNode()       {}
func (*Merge) astNode()            {}
func (*BinOp) astNode()            {}
func (*Builtin) astNode()          {}
func (*Embed) astNode()            {}

func (*Var) astExpr()              {}
func (*Lam) astExpr()              {}
func (*Pi) astExpr()               {}
func (*App) astExpr()              {}
func (*Let) astExpr()              {}
func (*Annot) astExpr()            {}
func (*Note) astExpr()             {}
func (*If) astExpr()               {}
func (*BoolLit) astExpr()          {}
func (*NaturalLit) astExpr()       {}
func (*IntegerLit) astExpr()       {}
func (*TextLit) astExpr()          {}
func (*EmptyListLit) astExpr()     {}
func (*NEListLit) astExpr()        {}
func (*EmptyOptionalLit) astExpr() {}
func (*NEOptionalLit) astExpr()    {}
func (*RecordLit) astExpr()        {}
func (*RecordType) astExpr()       {}
func (*UnionType) astExpr()        {}
func (*UnionLit) astExpr()         {}
func (*Field) astExpr()            {}
func (*Projection) astExpr()       {}
func (*Merge) astExpr()            {}
func (*BinOp) astExpr()            {}
func (*Builtin) astExpr()          {}
func (*Embed) astExpr()            {}
