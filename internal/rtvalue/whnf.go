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

package rtvalue

import "github.com/cockroachdb/apd/v2"
import "github.com/dhall-go/normalizer/ast"

// WHNF is a value reduced just far enough to expose its outermost
// constructor. Every concrete type below implements WHNF via a cheap marker
// method, the same idiom package ast uses for Expr.
type WHNF interface {
	whnf()
}

// Lam is a lambda value: the parameter type (lazily evaluated) plus the
// environment and un-evaluated body captured at construction time. The body
// is only evaluated when the lambda is applied or read back.
type Lam struct {
	Name      string
	ParamType Thunk
	Env       *Env
	Body      ast.Expr
}

// AppliedBuiltin is a builtin identifier together with the arguments applied
// to it so far. It is fully applied once len(Args) == Name.Arity().
type AppliedBuiltin struct {
	Env  *Env
	Name ast.BuiltinID
	Args []WHNF
}

// BoolLit is a boolean value.
type BoolLit struct{ Value bool }

// NaturalLit is an arbitrary-precision non-negative integer value.
type NaturalLit struct{ Value *apd.Decimal }

// Expr is an opaque value the evaluator could not usefully destructure —
// the output of the generic layer treatment for node kinds with no
// dedicated WHNF constructor, and the representation used to preserve
// free/skipped variables.
type Expr struct{ X ast.Expr }

// EmptyOptionalLit is `None t`.
type EmptyOptionalLit struct{ ElemType Thunk }

// NEOptionalLit is `Some v`.
type NEOptionalLit struct{ Payload Thunk }

// EmptyListLit is `[] : List t`.
type EmptyListLit struct{ ElemType Thunk }

// NEListLit is a non-empty list value; Elems always has at least one entry.
type NEListLit struct{ Elems []Thunk }

// RecordField pairs a label with its (lazy) value.
type RecordField struct {
	Label string
	Value Thunk
}

// RecordLit is a record value. Fields are unique by label; iteration order
// for readback is always ascending-label, imposed at readback time rather
// than stored here, so construction order has no observable effect.
type RecordLit struct{ Fields []RecordField }

// UnionType is a union type value, carrying the environment needed to
// evaluate any alternative's payload type on demand.
type UnionType struct {
	Env  *Env
	Alts []ast.Alt
}

// UnionConstructor is the field-selection of a union type: a chosen
// alternative not yet (or never, for a constant alternative) applied to a
// payload.
type UnionConstructor struct {
	Env   *Env
	Label string
	Alts  []ast.Alt
}

// UnionLit is a fully-constructed union value.
type UnionLit struct {
	Label   string
	Payload Thunk
	Env     *Env
	Alts    []ast.Alt
}

// TextSegment is one piece of a TextLit value: either a literal string or a
// live interpolation still to be forced.
type TextSegment struct {
	Str    string
	Interp Thunk
	IsExpr bool // true if Interp is meaningful, false if Str is
}

// TextLit is an interpolated text value.
type TextLit struct{ Segments []TextSegment }

func (*Lam) whnf()              {}
func (*AppliedBuiltin) whnf()   {}
func (*BoolLit) whnf()          {}
func (*NaturalLit) whnf()       {}
func (Expr) whnf()              {}
func (*EmptyOptionalLit) whnf() {}
func (*NEOptionalLit) whnf()    {}
func (*EmptyListLit) whnf()     {}
func (*NEListLit) whnf()        {}
func (*RecordLit) whnf()        {}
func (*UnionType) whnf()        {}
func (*UnionConstructor) whnf() {}
func (*UnionLit) whnf()         {}
func (*TextLit) whnf()          {}
