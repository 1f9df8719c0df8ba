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

// Package rtvalue holds the evaluator's runtime data: the per-name
// Environment (C2 in the design) and the WHNF value representation plus its
// Thunk wrapper (C3). It is deliberately separate from package ast: nothing
// in this package ever rebuilds syntax, and nothing in package ast knows
// these types exist. The split is modeled on cuelang.org/go's
// cue/internal/adt/composite.go, which pairs an Environment with the
// evaluated Composite/Arc value graph in exactly this way.
package rtvalue

import "github.com/dhall-go/normalizer/ast"

// entry is either a concrete bound value or a record of a name having been
// passed under without substitution.
type entry struct {
	bound   bool
	value   WHNF // valid iff bound
	skipped int  // valid iff !bound
}

// Env is a persistent, copy-on-extend association from variable name to an
// ordered stack of entries, innermost (most-recently-bound) entry first.
// The zero value is not usable; use Empty().
type Env struct {
	frames map[string][]entry
}

// Empty returns an environment with no bindings.
func Empty() *Env {
	return &Env{frames: map[string][]entry{}}
}

func (e *Env) shallowCopy() *Env {
	nf := make(map[string][]entry, len(e.frames))
	for k, v := range e.frames {
		nf[k] = v
	}
	return &Env{frames: nf}
}

// ExtendBound returns a new environment with Bound(value) pushed as the
// innermost entry on name's stack. The receiver is left unchanged.
func (e *Env) ExtendBound(name string, value WHNF) *Env {
	ne := e.shallowCopy()
	old := ne.frames[name]
	stack := make([]entry, len(old)+1)
	stack[0] = entry{bound: true, value: value}
	copy(stack[1:], old)
	ne.frames[name] = stack
	return ne
}

// ExtendSkip returns a new environment in which every existing Bound(v)
// entry (on every name, not just `name`) has v shifted by +1 on name — a
// value captured before this binder existed may still hold a free
// occurrence of name in its unresolved tail, and that occurrence must now
// refer one level further out. Every existing Skipped(k) entry on name
// becomes Skipped(k+1), and a fresh Skipped(0) is pushed on name's stack.
// The receiver is left unchanged.
func (e *Env) ExtendSkip(name string) *Env {
	ne := &Env{frames: make(map[string][]entry, len(e.frames)+1)}
	for key, stack := range e.frames {
		newStack := make([]entry, len(stack))
		for i, ent := range stack {
			switch {
			case ent.bound:
				newStack[i] = entry{bound: true, value: ShiftWHNF(1, name, 0, ent.value)}
			case key == name:
				newStack[i] = entry{bound: false, skipped: ent.skipped + 1}
			default:
				newStack[i] = ent
			}
		}
		ne.frames[key] = newStack
	}
	old := ne.frames[name]
	stack := make([]entry, len(old)+1)
	stack[0] = entry{bound: false, skipped: 0}
	copy(stack[1:], old)
	ne.frames[name] = stack
	return ne
}

// Lookup resolves a variable. If the idx-th (innermost-first) entry on
// name's stack is Bound, its value is returned. If it is Skipped(m), the
// variable survives into the output as Expr(Var(name, m)) — the rewritten
// de Bruijn index for the output context. If there is no such entry, the
// original free variable is preserved verbatim.
func Lookup(env *Env, name string, idx int) WHNF {
	stack := env.frames[name]
	if idx < len(stack) {
		ent := stack[idx]
		if ent.bound {
			return ent.value
		}
		return Expr{X: &ast.Var{Name: name, Index: ent.skipped}}
	}
	return Expr{X: &ast.Var{Name: name, Index: idx}}
}
