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

package ast

import "github.com/cockroachdb/apd/v2"

// Natural builds a *NaturalLit from a small non-negative int64, for tests
// and for callers constructing ASTs programmatically rather than parsing
// them (this package has no parser).
func Natural(n int64) *NaturalLit {
	if n < 0 {
		panic("ast: Natural: negative value")
	}
	return &NaturalLit{Value: apd.New(n, 0)}
}

// Integer builds an *IntegerLit from an int64.
func Integer(n int64) *IntegerLit {
	return &IntegerLit{Value: apd.New(n, 0)}
}

// Bool builds a *BoolLit.
func Bool(b bool) *BoolLit { return &BoolLit{Value: b} }

// Text builds a *TextLit with no interpolation.
func Text(s string) *TextLit { return &TextLit{Suffix: s} }
