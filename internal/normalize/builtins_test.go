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

package normalize

import (
	"testing"

	"github.com/cockroachdb/apd/v2"
	"github.com/stretchr/testify/assert"

	"github.com/dhall-go/normalizer/ast"
	"github.com/dhall-go/normalizer/internal/debug"
	"github.com/dhall-go/normalizer/internal/rtvalue"
)

func nat(n int64) *ast.NaturalLit { return &ast.NaturalLit{Value: apd.New(n, 0)} }

func app(fn ast.Expr, args ...ast.Expr) ast.Expr {
	for _, a := range args {
		fn = &ast.App{Fn: fn, Arg: a}
	}
	return fn
}

func builtin(id ast.BuiltinID) ast.Expr { return &ast.Builtin{Name: id} }

func renderTop(e ast.Expr) string {
	c := unlimited()
	w := Evaluate(c, rtvalue.Empty(), e)
	return debug.ExprString(Readback(c, w))
}

func TestBuiltinsDirectReduction(t *testing.T) {
	testCases := []struct {
		name string
		in   ast.Expr
		want string
	}{
		{
			name: "Natural/isZero on zero",
			in:   app(builtin(ast.NaturalIsZero), nat(0)),
			want: "true",
		},
		{
			name: "Natural/isZero on nonzero",
			in:   app(builtin(ast.NaturalIsZero), nat(3)),
			want: "false",
		},
		{
			name: "Natural/even",
			in:   app(builtin(ast.NaturalEven), nat(4)),
			want: "true",
		},
		{
			name: "Natural/odd",
			in:   app(builtin(ast.NaturalOdd), nat(4)),
			want: "false",
		},
		{
			name: "Natural/subtract caps at zero",
			in:   app(builtin(ast.NaturalSubtract), nat(5), nat(2)),
			want: "0",
		},
		{
			name: "Natural/subtract normal case",
			in:   app(builtin(ast.NaturalSubtract), nat(2), nat(5)),
			want: "3",
		},
		{
			name: "Natural/toInteger",
			in:   app(builtin(ast.NaturalToInteger), nat(7)),
			want: "7",
		},
		{
			name: "Natural/show",
			in:   app(builtin(ast.NaturalShow), nat(42)),
			want: `"42"`,
		},
		{
			name: "Text/show on a plain string",
			in:   app(builtin(ast.TextShow), &ast.TextLit{Suffix: "hello"}),
			want: `"\"hello\""`,
		},
		{
			name: "List/length on empty list",
			in:   app(builtin(ast.ListLength), builtin(ast.NaturalType), &ast.EmptyListLit{ElemType: builtin(ast.NaturalType)}),
			want: "0",
		},
		{
			name: "List/length on nonempty list",
			in:   app(builtin(ast.ListLength), builtin(ast.NaturalType), &ast.NEListLit{Elems: []ast.Expr{nat(1), nat(2), nat(3)}}),
			want: "3",
		},
		{
			name: "List/head on nonempty list",
			in:   app(builtin(ast.ListHead), builtin(ast.NaturalType), &ast.NEListLit{Elems: []ast.Expr{nat(1), nat(2)}}),
			want: "Some 1",
		},
		{
			name: "List/head on empty list",
			in:   app(builtin(ast.ListHead), builtin(ast.NaturalType), &ast.EmptyListLit{ElemType: builtin(ast.NaturalType)}),
			want: "None Natural",
		},
		{
			name: "List/last on nonempty list",
			in:   app(builtin(ast.ListLast), builtin(ast.NaturalType), &ast.NEListLit{Elems: []ast.Expr{nat(1), nat(2), nat(3)}}),
			want: "Some 3",
		},
		{
			name: "List/reverse",
			in:   app(builtin(ast.ListReverse), builtin(ast.NaturalType), &ast.NEListLit{Elems: []ast.Expr{nat(1), nat(2), nat(3)}}),
			want: "[3, 2, 1]",
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, renderTop(tc.in))
		})
	}
}

// TestListBuildFoldFusion exercises the List/build List/fold fusion
// identity: List/build a (List/fold a xs) must reduce straight back to xs
// without materializing any intermediate cons/nil applications.
func TestListBuildFoldFusion(t *testing.T) {
	xs := &ast.NEListLit{Elems: []ast.Expr{nat(1), nat(2), nat(3)}}
	fused := app(builtin(ast.ListBuild), builtin(ast.NaturalType),
		app(builtin(ast.ListFold), builtin(ast.NaturalType), xs))
	assert.Equal(t, renderTop(xs), renderTop(fused))
}

// TestOptionalBuildFoldFusion mirrors TestListBuildFoldFusion for Optional.
func TestOptionalBuildFoldFusion(t *testing.T) {
	opt := &ast.NEOptionalLit{Value: nat(9)}
	fused := app(builtin(ast.OptionalBuild), builtin(ast.NaturalType),
		app(builtin(ast.OptionalFold), builtin(ast.NaturalType), opt))
	assert.Equal(t, renderTop(opt), renderTop(fused))
}

// TestNaturalBuildFoldFusion mirrors the same identity for Natural/build
// against Natural/fold. Natural/build takes no type argument, so the fused
// form is Natural/build (Natural/fold n).
func TestNaturalBuildFoldFusion(t *testing.T) {
	n := nat(5)
	fused := app(builtin(ast.NaturalBuild), app(builtin(ast.NaturalFold), n))
	assert.Equal(t, renderTop(n), renderTop(fused))
}

// TestListBuildDirectUnfold checks the CPS-unfolding path fires when the
// generator is a genuine polymorphic function rather than a Fold in
// disguise: List/build Natural g, for g := λ(list) -> λ(cons) -> λ(nil) ->
// cons 1 (cons 2 nil), must produce [1, 2].
func TestListBuildDirectUnfold(t *testing.T) {
	dummy := builtin(ast.NaturalType)
	consVar := func(idx int) ast.Expr { return &ast.Var{Name: "cons", Index: idx} }
	nilVar := func(idx int) ast.Expr { return &ast.Var{Name: "nil", Index: idx} }
	g := &ast.Lam{Name: "list", Type: dummy, Body: &ast.Lam{Name: "cons", Type: dummy, Body: &ast.Lam{
		Name: "nil", Type: dummy,
		Body: app(consVar(0), nat(1), app(consVar(0), nat(2), nilVar(0))),
	}}}
	built := app(builtin(ast.ListBuild), dummy, g)
	assert.Equal(t, "[1, 2]", renderTop(built))
}

func TestQuoteTextEscaping(t *testing.T) {
	testCases := []struct {
		name string
		in   string
		want string
	}{
		{name: "quote and backslash", in: `a"b\c`, want: `"a\"b\\c"`},
		{name: "interpolation opener escaped", in: "a${b", want: "\"a\\u0024{b\""},
		{name: "newline and tab", in: "a\nb\tc", want: `"a\nb\tc"`},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, quoteText(tc.in))
		})
	}
}

func TestFoldNaturalDirectCountsDown(t *testing.T) {
	// Natural/fold 3 Natural (λ(x) -> x + 1) 0 = 3.
	succ := &ast.Lam{Name: "x", Type: builtin(ast.NaturalType), Body: &ast.BinOp{
		Op: ast.NaturalPlus, L: &ast.Var{Name: "x", Index: 0}, R: nat(1),
	}}
	in := app(builtin(ast.NaturalFold), nat(3), builtin(ast.NaturalType), succ, nat(0))
	assert.Equal(t, "3", renderTop(in))
}
