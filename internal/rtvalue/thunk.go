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

import "github.com/dhall-go/normalizer/ast"

// Thunk is either a Forced WHNF or a Suspended (env, expr) pair. It is a
// thin handle onto a shared box so that forcing it once (see package
// internal/normalize's Force) is visible to every holder of the same Thunk
// value — memoization is a local optimization, not a correctness
// requirement, but it is cheap to provide and avoids re-walking shared
// sub-terms.
type Thunk struct {
	box *thunkBox
}

type thunkBox struct {
	forced bool
	whnf   WHNF
	env    *Env
	expr   ast.Expr
}

// Suspend builds a Thunk that will evaluate expr under env when first
// forced.
func Suspend(env *Env, expr ast.Expr) Thunk {
	return Thunk{box: &thunkBox{env: env, expr: expr}}
}

// Forced builds an already-evaluated Thunk.
func Forced(w WHNF) Thunk {
	return Thunk{box: &thunkBox{forced: true, whnf: w}}
}

// IsForced reports whether the thunk has already been forced.
func (t Thunk) IsForced() bool { return t.box.forced }

// Valid reports whether t was ever constructed by Suspend or Forced, as
// opposed to being the zero Thunk{}. A zero Thunk is used to represent the
// absence of a payload on a constant union alternative, which carries no
// value to force.
func (t Thunk) Valid() bool { return t.box != nil }

// Peek returns the thunk's contents without forcing it: ok is true and whnf
// is valid if the thunk is already forced, otherwise env/expr are valid.
func (t Thunk) Peek() (whnf WHNF, env *Env, expr ast.Expr, ok bool) {
	if t.box.forced {
		return t.box.whnf, nil, nil, true
	}
	return nil, t.box.env, t.box.expr, false
}

// Cache records the result of forcing a Suspended thunk, turning it into a
// Forced one and releasing the captured environment and expression.
func (t Thunk) Cache(w WHNF) {
	t.box.forced = true
	t.box.whnf = w
	t.box.env = nil
	t.box.expr = nil
}
