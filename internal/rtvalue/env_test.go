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

package rtvalue_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dhall-go/normalizer/ast"
	"github.com/dhall-go/normalizer/internal/debug"
	"github.com/dhall-go/normalizer/internal/rtvalue"
)

func TestLookupOnEmptyEnvPreservesFreeVariable(t *testing.T) {
	env := rtvalue.Empty()
	got := rtvalue.Lookup(env, "x", 0)
	assert.Equal(t, "x@0", debug.WHNFString(got))
}

func TestLookupResolvesBoundEntry(t *testing.T) {
	env := rtvalue.Empty().ExtendBound("x", &rtvalue.BoolLit{Value: true})
	got := rtvalue.Lookup(env, "x", 0)
	assert.Equal(t, "true", debug.WHNFString(got))
}

func TestLookupSeesThroughOuterBindingsByIndex(t *testing.T) {
	env := rtvalue.Empty().
		ExtendBound("x", &rtvalue.BoolLit{Value: true}).
		ExtendBound("x", &rtvalue.BoolLit{Value: false})
	assert.Equal(t, "false", debug.WHNFString(rtvalue.Lookup(env, "x", 0)))
	assert.Equal(t, "true", debug.WHNFString(rtvalue.Lookup(env, "x", 1)))
}

// TestExtendSkipShiftsCapturedBoundValues exercises ExtendSkip's ShiftWHNF
// call: a value bound under "y" before a fresh "x" skip-frame is pushed must
// have its own free occurrences of "x" shifted by one, since from inside the
// new frame that free "x" now refers one level further out.
func TestExtendSkipShiftsCapturedBoundValues(t *testing.T) {
	inner := rtvalue.Empty()
	captured := rtvalue.Expr{X: &ast.Var{Name: "x", Index: 0}}
	env := inner.ExtendBound("y", captured)

	env2 := env.ExtendSkip("x")

	got := rtvalue.Lookup(env2, "y", 0)
	assert.Equal(t, "x@1", debug.WHNFString(got))
}

// TestExtendSkipDoesNotShiftUnrelatedFreeNames checks ExtendSkip only
// shifts occurrences of the name it is skipping, not every free variable.
func TestExtendSkipDoesNotShiftUnrelatedFreeNames(t *testing.T) {
	captured := rtvalue.Expr{X: &ast.Var{Name: "z", Index: 0}}
	env := rtvalue.Empty().ExtendBound("y", captured).ExtendSkip("x")

	got := rtvalue.Lookup(env, "y", 0)
	assert.Equal(t, "z@0", debug.WHNFString(got))
}

// TestExtendSkipRewritesVariableForReadback checks that looking up the
// skipped name itself yields a residual Var at the rewritten index, the
// shape Readback needs to reconstruct a binder it is evaluating under.
func TestExtendSkipRewritesVariableForReadback(t *testing.T) {
	env := rtvalue.Empty().ExtendSkip("x").ExtendSkip("x")
	assert.Equal(t, "x@0", debug.WHNFString(rtvalue.Lookup(env, "x", 0)))
	assert.Equal(t, "x@1", debug.WHNFString(rtvalue.Lookup(env, "x", 1)))
}

// TestExtendSkipStacksAcrossAnIntermediateBind checks a name bound between
// two skip-frames of another name still resolves correctly by index, and
// that a skip on one name leaves an unrelated name's bound stack order
// intact.
func TestExtendSkipStacksAcrossAnIntermediateBind(t *testing.T) {
	env := rtvalue.Empty().
		ExtendSkip("x").
		ExtendBound("y", &rtvalue.BoolLit{Value: true}).
		ExtendSkip("x")

	assert.Equal(t, "x@0", debug.WHNFString(rtvalue.Lookup(env, "x", 0)))
	assert.Equal(t, "x@1", debug.WHNFString(rtvalue.Lookup(env, "x", 1)))
	assert.Equal(t, "true", debug.WHNFString(rtvalue.Lookup(env, "y", 0)))
}
