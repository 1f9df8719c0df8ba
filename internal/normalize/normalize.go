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
	"github.com/dhall-go/normalizer/ast"
	"github.com/dhall-go/normalizer/internal/rtvalue"
)

// Normalize reduces e to its beta-normal form. It is total and
// deterministic on well-typed input; on ill-typed input it returns the
// partial normal form reachable by the reduction rules. It never
// recovers a panic: an invariant violation here is a programming bug in
// this package and is left to crash the caller.
func Normalize(e ast.Expr) ast.Expr {
	c := unlimited()
	return Readback(c, Evaluate(c, rtvalue.Empty(), e))
}

// Option configures NormalizeWithBudget.
type Option func(*config)

type config struct {
	stepBudget int // < 0 means unlimited
}

// WithStepBudget bounds the number of reduction steps NormalizeWithBudget
// will take before giving up and returning ErrBudgetExceeded, guarding
// against non-termination on ill-typed input.
func WithStepBudget(n int) Option {
	return func(cfg *config) { cfg.stepBudget = n }
}

// NormalizeWithBudget is Normalize with an optional reduction-step budget.
// Unlike Normalize, it recovers an exceeded-budget panic at its own
// boundary and reports it as an error; any other panic (an invariant
// violation or unreachable-case bug) still propagates uncaught.
func NormalizeWithBudget(e ast.Expr, opts ...Option) (result ast.Expr, err error) {
	cfg := config{stepBudget: -1}
	for _, opt := range opts {
		opt(&cfg)
	}
	c := budgeted(cfg.stepBudget)

	defer func() {
		if r := recover(); r != nil {
			if be, ok := r.(*budgetExceeded); ok {
				err = be
				return
			}
			panic(r)
		}
	}()

	w := Evaluate(c, rtvalue.Empty(), e)
	result = Readback(c, w)
	return result, nil
}
