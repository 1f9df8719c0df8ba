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

package ast_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"github.com/dhall-go/normalizer/ast"
	"github.com/dhall-go/normalizer/internal/debug"
)

func TestShiftFreeVariable(t *testing.T) {
	testCases := []struct {
		name  string
		delta int
		label string
		cutoff int
		in    ast.Expr
		want  string
	}{
		{
			name:   "above cutoff is shifted",
			delta:  1,
			label:  "x",
			cutoff: 0,
			in:     &ast.Var{Name: "x", Index: 0},
			want:   "x@1",
		},
		{
			name:   "below cutoff is untouched",
			delta:  1,
			label:  "x",
			cutoff: 2,
			in:     &ast.Var{Name: "x", Index: 1},
			want:   "x@1",
		},
		{
			name:   "different name is untouched",
			delta:  1,
			label:  "x",
			cutoff: 0,
			in:     &ast.Var{Name: "y", Index: 0},
			want:   "y@0",
		},
		{
			name:   "negative delta undoes a prior shift",
			delta:  -1,
			label:  "x",
			cutoff: 0,
			in:     &ast.Var{Name: "x", Index: 1},
			want:   "x@0",
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := ast.Shift(tc.delta, tc.label, tc.cutoff, tc.in)
			assert.Equal(t, tc.want, debug.ExprString(got))
		})
	}
}

// TestShiftBumpsCutoffAtMatchingBinder checks that a Lam binding the same
// name being shifted bumps the cutoff for its body but not for its own
// parameter type, which is still evaluated in the enclosing scope.
func TestShiftBumpsCutoffAtMatchingBinder(t *testing.T) {
	// λ(x : x@0) -> x@0, shifted by 1 on "x" from cutoff 0.
	// The outer x@0 in Type refers to some x bound further out, so it shifts.
	// The x@0 in Body refers to the Lam's own parameter, so it must NOT
	// shift (its cutoff has bumped to 1, and 0 < 1).
	in := &ast.Lam{
		Name: "x",
		Type: &ast.Var{Name: "x", Index: 0},
		Body: &ast.Var{Name: "x", Index: 0},
	}
	got := ast.Shift(1, "x", 0, in)
	want := "λ(x : x@1) ->\n  x@0"
	assert.Equal(t, want, debug.ExprString(got))
}

// TestShiftBumpsCutoffOnlyForMatchingName checks that a binder for a
// different name leaves the shifted name's cutoff alone.
func TestShiftBumpsCutoffOnlyForMatchingName(t *testing.T) {
	// λ(y : Bool) -> x@0, shifted by 1 on "x" from cutoff 0: the body's
	// cutoff for "x" is unaffected by the "y" binder, so x@0 still shifts.
	in := &ast.Lam{
		Name: "y",
		Type: &ast.BoolLit{Value: true},
		Body: &ast.Var{Name: "x", Index: 0},
	}
	got := ast.Shift(1, "x", 0, in)
	want := "λ(y : true) ->\n  x@1"
	assert.Equal(t, want, debug.ExprString(got))
}

func TestShiftRecursesThroughEveryPosition(t *testing.T) {
	// if x@0 then [x@0] else [x@0] # [x@0], shifted by 1 on "x".
	v := func() ast.Expr { return &ast.Var{Name: "x", Index: 0} }
	in := &ast.If{
		Cond: v(),
		Then: &ast.NEListLit{Elems: []ast.Expr{v()}},
		Else: &ast.BinOp{
			Op: ast.ListAppend,
			L:  &ast.NEListLit{Elems: []ast.Expr{v()}},
			R:  &ast.NEListLit{Elems: []ast.Expr{v()}},
		},
	}
	got := ast.Shift(1, "x", 0, in)
	want := "if x@1 then [x@1] else [x@1] # [x@1]"
	assert.Equal(t, want, debug.ExprString(got))
}

func TestShiftOnUnionPreservesConstantAlternatives(t *testing.T) {
	in := &ast.UnionType{Alts: []ast.Alt{
		{Label: "Left", Type: &ast.Var{Name: "x", Index: 0}},
		{Label: "Right"},
	}}
	got := ast.Shift(1, "x", 0, in).(*ast.UnionType)
	assert.Equal(t, "<Left : x@1 | Right>", debug.ExprString(got))
	assert.Nil(t, got.Alts[1].Type)

	gotLabels := make([]string, len(got.Alts))
	for i, a := range got.Alts {
		gotLabels[i] = a.Label
	}
	if diff := cmp.Diff([]string{"Left", "Right"}, gotLabels); diff != "" {
		t.Errorf("Shift reordered or dropped alternatives (-want +got):\n%s", diff)
	}
}
