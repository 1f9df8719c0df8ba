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

// Package dhall is the public surface of the beta-normalizer: a single
// Normalize operation (plus a budgeted variant) over the AST defined in
// package ast. Everything else — the environment, the WHNF value
// representation, the evaluator and its built-in/operator rule table —
// lives in internal packages and is reached only through this file.
package dhall

import (
	"github.com/dhall-go/normalizer/ast"
	"github.com/dhall-go/normalizer/internal/normalize"
)

// Normalize reduces e to its beta-normal form. See internal/normalize.Normalize.
func Normalize(e ast.Expr) ast.Expr {
	return normalize.Normalize(e)
}

// Option configures NormalizeWithBudget.
type Option = normalize.Option

// WithStepBudget bounds the number of reduction steps NormalizeWithBudget
// takes before reporting ErrBudgetExceeded instead of continuing to reduce.
func WithStepBudget(n int) Option {
	return normalize.WithStepBudget(n)
}

// NormalizeWithBudget is Normalize with an optional reduction-step budget,
// for callers that want to guard against non-termination on ill-typed
// input rather than rely on an external watchdog.
func NormalizeWithBudget(e ast.Expr, opts ...Option) (ast.Expr, error) {
	return normalize.NormalizeWithBudget(e, opts...)
}

// ErrBudgetExceeded is returned (wrapped) by NormalizeWithBudget when the
// configured step budget runs out before reduction completes.
var ErrBudgetExceeded = normalize.ErrBudgetExceeded
