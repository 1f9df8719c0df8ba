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

package dhall_test

import (
	"errors"
	"testing"

	"github.com/cockroachdb/apd/v2"
	"github.com/kylelemons/godebug/diff"
	"github.com/stretchr/testify/assert"

	"github.com/dhall-go/normalizer/ast"
	"github.com/dhall-go/normalizer/internal/debug"

	"github.com/dhall-go/normalizer"
)

func nat(n int64) *ast.NaturalLit { return &ast.NaturalLit{Value: apd.New(n, 0)} }

func TestNormalizeReducesApplication(t *testing.T) {
	// (λ(x : Natural) -> x) 9 = 9.
	lam := &ast.Lam{Name: "x", Type: &ast.Builtin{Name: ast.NaturalType}, Body: &ast.Var{Name: "x", Index: 0}}
	in := &ast.App{Fn: lam, Arg: nat(9)}
	got := dhall.Normalize(in)
	assert.Equal(t, "9", debug.ExprString(got))
}

func TestNormalizeWithBudgetMatchesNormalizeWhenUnbounded(t *testing.T) {
	lam := &ast.Lam{Name: "x", Type: &ast.Builtin{Name: ast.NaturalType}, Body: &ast.BinOp{
		Op: ast.NaturalPlus, L: &ast.Var{Name: "x", Index: 0}, R: nat(1),
	}}
	in := &ast.App{Fn: lam, Arg: nat(41)}

	want := debug.ExprString(dhall.Normalize(in))
	got, err := dhall.NormalizeWithBudget(in)
	assert.NoError(t, err)
	if d := diff.Diff(want, debug.ExprString(got)); d != "" {
		t.Errorf("NormalizeWithBudget disagreed with Normalize:\n%s", d)
	}
}

func TestNormalizeWithBudgetExceeded(t *testing.T) {
	_, err := dhall.NormalizeWithBudget(nat(5), dhall.WithStepBudget(0))
	assert.Error(t, err)
	assert.True(t, errors.Is(err, dhall.ErrBudgetExceeded))
}

func TestNormalizeWithBudgetSucceedsWithEnoughSteps(t *testing.T) {
	got, err := dhall.NormalizeWithBudget(nat(5), dhall.WithStepBudget(10))
	assert.NoError(t, err)
	assert.Equal(t, "5", debug.ExprString(got))
}
