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

// BuiltinID enumerates every primitive the normalizer knows how to reduce,
// plus the handful of type-former builtins (List, Optional, Natural) that
// appear only as opaque arguments during fold/build CPS unfolding.
type BuiltinID int

const (
	OptionalNone BuiltinID = iota
	NaturalIsZero
	NaturalEven
	NaturalOdd
	NaturalToInteger
	NaturalShow
	NaturalSubtract
	NaturalBuild
	NaturalFold
	ListBuild
	ListFold
	ListLength
	ListHead
	ListLast
	ListReverse
	ListIndexed
	OptionalBuild
	OptionalFold
	TextShow

	// Type-former builtins: never reduce further on their own, but are
	// needed as opaque intermediate values when CPS-unfolding the
	// corresponding Build builtin (see internal/normalize/builtins.go).
	NaturalType
	ListType
	OptionalType
)

// Arity is the number of arguments a builtin must receive before
// try-builtin (internal/normalize) is even consulted.
func (b BuiltinID) Arity() int {
	switch b {
	case OptionalNone, NaturalIsZero, NaturalEven, NaturalOdd,
		NaturalToInteger, NaturalShow, NaturalBuild, ListType, OptionalType, TextShow:
		return 1
	case NaturalSubtract, ListLength, ListHead, ListLast, ListReverse,
		ListIndexed, ListBuild, OptionalBuild:
		return 2
	case NaturalFold:
		return 4
	case ListFold, OptionalFold:
		return 5
	case NaturalType:
		return 0
	}
	panic("ast: unknown builtin in Arity")
}

// String implements fmt.Stringer for debug output.
func (b BuiltinID) String() string {
	switch b {
	case OptionalNone:
		return "None"
	case NaturalIsZero:
		return "Natural/isZero"
	case NaturalEven:
		return "Natural/even"
	case NaturalOdd:
		return "Natural/odd"
	case NaturalToInteger:
		return "Natural/toInteger"
	case NaturalShow:
		return "Natural/show"
	case NaturalSubtract:
		return "Natural/subtract"
	case NaturalBuild:
		return "Natural/build"
	case NaturalFold:
		return "Natural/fold"
	case ListBuild:
		return "List/build"
	case ListFold:
		return "List/fold"
	case ListLength:
		return "List/length"
	case ListHead:
		return "List/head"
	case ListLast:
		return "List/last"
	case ListReverse:
		return "List/reverse"
	case ListIndexed:
		return "List/indexed"
	case OptionalBuild:
		return "Optional/build"
	case OptionalFold:
		return "Optional/fold"
	case TextShow:
		return "Text/show"
	case NaturalType:
		return "Natural"
	case ListType:
		return "List"
	case OptionalType:
		return "Optional"
	}
	return "<unknown builtin>"
}
