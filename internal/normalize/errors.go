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
	"golang.org/x/xerrors"

	"github.com/dhall-go/normalizer/ast"
	"github.com/dhall-go/normalizer/internal/debug"
)

// ErrInvariant is wrapped by any panic raised when a data-model invariant
// is found broken — an over-saturated AppliedBuiltin, an empty
// NEListLit, duplicate record/union labels, and the like. These indicate a
// bug in this package, not a property of the input AST.
var ErrInvariant = xerrors.New("normalize: invariant violated")

// ErrUnreachable is wrapped by any panic raised when control reaches a
// layer case the input AST's shape should have excluded by construction.
var ErrUnreachable = xerrors.New("normalize: unreachable layer case")

// ErrBudgetExceeded is the sentinel NormalizeWithBudget's returned error
// wraps when the configured step budget runs out before reduction
// completes. Normalize itself never returns this — it has no budget.
var ErrBudgetExceeded = xerrors.New("normalize: reduction step budget exceeded")

func invariant(cond bool, format string, args ...interface{}) {
	if cond {
		return
	}
	panic(xerrors.Errorf(format+": %w", append(args, ErrInvariant)...))
}

func unreachable(format string, args ...interface{}) {
	panic(xerrors.Errorf(format+": %w", append(args, ErrUnreachable)...))
}

// budgetExceeded is the panic value ctx.tick raises once the configured
// step budget is spent. It is recovered only at NormalizeWithBudget's
// boundary; any other panic propagates — an invariant violation is a
// programming bug and should crash loudly rather than be reported as a
// value.
type budgetExceeded struct {
	steps int
	expr  ast.Expr
}

func (b *budgetExceeded) Error() string {
	return xerrors.Errorf("after %d reduction steps, while reducing %s: %w",
		b.steps, debug.ExprString(b.expr), ErrBudgetExceeded).Error()
}

func (b *budgetExceeded) Unwrap() error { return ErrBudgetExceeded }
