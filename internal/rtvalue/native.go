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

// NativeFunc is a callable value with no surface-syntax representation: it
// exists only to let internal/normalize hand a CPS-style Build builtin its
// cons/nil (or succ/zero, or Some/None) argument as a direct WHNF rather
// than as a syntactic Lam whose body would need to be re-evaluated through
// package ast. The alternative — building an ast.Lam around a handful of
// App/Var nodes and calling Evaluate on it — is the "passing through Exprs"
// approach the normalizer's build-unfolding explicitly avoids; see the Open
// Question resolution in DESIGN.md.
//
// A NativeFunc never appears in a readback result: every call site that
// introduces one also fully applies it before the surrounding builtin
// reduction returns, so it is never observed as a residual value.
type NativeFunc struct {
	Apply func(arg WHNF) WHNF
}

func (*NativeFunc) whnf() {}
