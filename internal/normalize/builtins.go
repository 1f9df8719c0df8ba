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
	"github.com/cockroachdb/apd/v2"

	"github.com/dhall-go/normalizer/ast"
	"github.com/dhall-go/normalizer/internal/literal"
	"github.com/dhall-go/normalizer/internal/rtvalue"
)

// tryBuiltin implements the built-in reduction table, including the
// Natural/subtract and Text/show reductions and the fold/build fusions. It
// is only ever called once len(args) == b.Arity(); a false return means the
// firing condition for b's current arguments did not hold (most commonly
// because the input AST is ill-typed), and the caller falls back to an
// opaque residual value.
func tryBuiltin(c *ctx, env *rtvalue.Env, b ast.BuiltinID, args []rtvalue.WHNF) (rtvalue.WHNF, bool) {
	switch b {
	case ast.OptionalNone:
		return &rtvalue.EmptyOptionalLit{ElemType: rtvalue.Forced(args[0])}, true

	case ast.NaturalIsZero:
		if n, ok := args[0].(*rtvalue.NaturalLit); ok {
			return &rtvalue.BoolLit{Value: isZero(n.Value)}, true
		}

	case ast.NaturalEven:
		if n, ok := args[0].(*rtvalue.NaturalLit); ok {
			return &rtvalue.BoolLit{Value: natEven(n.Value)}, true
		}

	case ast.NaturalOdd:
		if n, ok := args[0].(*rtvalue.NaturalLit); ok {
			return &rtvalue.BoolLit{Value: !natEven(n.Value)}, true
		}

	case ast.NaturalToInteger:
		if n, ok := args[0].(*rtvalue.NaturalLit); ok {
			return rtvalue.Expr{X: &ast.IntegerLit{Value: n.Value}}, true
		}

	case ast.NaturalShow:
		if n, ok := args[0].(*rtvalue.NaturalLit); ok {
			return &rtvalue.TextLit{Segments: []rtvalue.TextSegment{{Str: n.Value.String()}}}, true
		}

	case ast.NaturalSubtract:
		a, aok := args[0].(*rtvalue.NaturalLit)
		b2, bok := args[1].(*rtvalue.NaturalLit)
		if aok && bok {
			return &rtvalue.NaturalLit{Value: natSubtract(a.Value, b2.Value)}, true
		}

	case ast.TextShow:
		if t, ok := args[0].(*rtvalue.TextLit); ok {
			if s, complete := literalTextString(t); complete {
				return &rtvalue.TextLit{Segments: []rtvalue.TextSegment{{Str: quoteText(s)}}}, true
			}
		}

	case ast.ListLength:
		switch lst := args[1].(type) {
		case *rtvalue.EmptyListLit:
			return &rtvalue.NaturalLit{Value: apd.New(0, 0)}, true
		case *rtvalue.NEListLit:
			return &rtvalue.NaturalLit{Value: apd.New(int64(len(lst.Elems)), 0)}, true
		}

	case ast.ListHead:
		switch lst := args[1].(type) {
		case *rtvalue.EmptyListLit:
			return &rtvalue.EmptyOptionalLit{ElemType: lst.ElemType}, true
		case *rtvalue.NEListLit:
			return &rtvalue.NEOptionalLit{Payload: lst.Elems[0]}, true
		}

	case ast.ListLast:
		switch lst := args[1].(type) {
		case *rtvalue.EmptyListLit:
			return &rtvalue.EmptyOptionalLit{ElemType: lst.ElemType}, true
		case *rtvalue.NEListLit:
			return &rtvalue.NEOptionalLit{Payload: lst.Elems[len(lst.Elems)-1]}, true
		}

	case ast.ListReverse:
		switch lst := args[1].(type) {
		case *rtvalue.EmptyListLit:
			return &rtvalue.EmptyListLit{ElemType: lst.ElemType}, true
		case *rtvalue.NEListLit:
			n := len(lst.Elems)
			rev := make([]rtvalue.Thunk, n)
			for i, t := range lst.Elems {
				rev[n-1-i] = t
			}
			return &rtvalue.NEListLit{Elems: rev}, true
		}

	case ast.ListIndexed:
		switch lst := args[1].(type) {
		case *rtvalue.EmptyListLit:
			rt := &ast.RecordType{Fields: []ast.RecordTypeField{
				{Label: "index", Type: &ast.Builtin{Name: ast.NaturalType}},
				{Label: "value", Type: Readback(c, args[0])},
			}}
			return &rtvalue.EmptyListLit{ElemType: rtvalue.Forced(rtvalue.Expr{X: rt})}, true
		case *rtvalue.NEListLit:
			elems := make([]rtvalue.Thunk, len(lst.Elems))
			for i, t := range lst.Elems {
				rec := &rtvalue.RecordLit{Fields: []rtvalue.RecordField{
					{Label: "index", Value: rtvalue.Forced(&rtvalue.NaturalLit{Value: apd.New(int64(i), 0)})},
					{Label: "value", Value: t},
				}}
				elems[i] = rtvalue.Forced(rec)
			}
			return &rtvalue.NEListLit{Elems: elems}, true
		}

	case ast.ListBuild:
		t, g := args[0], args[1]
		if container, ok := fusedContainer(g, ast.ListFold, 2, 1); ok {
			return container, true
		}
		return unfoldListBuild(c, t, g), true

	case ast.ListFold:
		if v, ok := foldListDirect(c, args[1], args[3], args[4]); ok {
			return v, true
		}

	case ast.OptionalBuild:
		t, g := args[0], args[1]
		if container, ok := fusedContainer(g, ast.OptionalFold, 2, 1); ok {
			return container, true
		}
		return unfoldOptionalBuild(c, t, g), true

	case ast.OptionalFold:
		if v, ok := foldOptionalDirect(c, args[1], args[3], args[4]); ok {
			return v, true
		}

	case ast.NaturalBuild:
		g := args[0]
		if container, ok := fusedContainer(g, ast.NaturalFold, 1, 0); ok {
			return container, true
		}
		return unfoldNaturalBuild(c, g), true

	case ast.NaturalFold:
		if n, ok := args[0].(*rtvalue.NaturalLit); ok {
			return foldNaturalDirect(c, n.Value, args[2], args[3]), true
		}
	}
	return nil, false
}

// fusedContainer detects the fold/build fusion identity: g
// fires fusion against dual when g is itself dual partially applied to
// exactly wantArgs arguments (i.e. missing its CPS continuation
// arguments), in which case the argument at containerIdx is the original
// container and the whole Build/Fold round-trip cancels.
func fusedContainer(g rtvalue.WHNF, dual ast.BuiltinID, wantArgs, containerIdx int) (rtvalue.WHNF, bool) {
	ab, ok := g.(*rtvalue.AppliedBuiltin)
	if !ok || ab.Name != dual || len(ab.Args) != wantArgs {
		return nil, false
	}
	return ab.Args[containerIdx], true
}

func unfoldListBuild(c *ctx, t, g rtvalue.WHNF) rtvalue.WHNF {
	nilV := &rtvalue.EmptyListLit{ElemType: rtvalue.Forced(t)}
	consV := &rtvalue.NativeFunc{Apply: func(x rtvalue.WHNF) rtvalue.WHNF {
		return &rtvalue.NativeFunc{Apply: func(xs rtvalue.WHNF) rtvalue.WHNF {
			return prependList(x, xs)
		}}
	}}
	listType := rtvalue.Expr{X: &ast.App{Fn: &ast.Builtin{Name: ast.ListType}, Arg: Readback(c, t)}}
	return normalizeApp(c, normalizeApp(c, normalizeApp(c, g, listType), consV), nilV)
}

func prependList(x, xs rtvalue.WHNF) rtvalue.WHNF {
	switch l := xs.(type) {
	case *rtvalue.EmptyListLit:
		return &rtvalue.NEListLit{Elems: []rtvalue.Thunk{rtvalue.Forced(x)}}
	case *rtvalue.NEListLit:
		elems := make([]rtvalue.Thunk, len(l.Elems)+1)
		elems[0] = rtvalue.Forced(x)
		copy(elems[1:], l.Elems)
		return &rtvalue.NEListLit{Elems: elems}
	}
	unreachable("List/build: cons's second argument was not a list value")
	return nil
}

func foldListDirect(c *ctx, xs, cons, nilVal rtvalue.WHNF) (rtvalue.WHNF, bool) {
	switch l := xs.(type) {
	case *rtvalue.EmptyListLit:
		return nilVal, true
	case *rtvalue.NEListLit:
		acc := nilVal
		for i := len(l.Elems) - 1; i >= 0; i-- {
			elem := Force(c, l.Elems[i])
			acc = normalizeApp(c, normalizeApp(c, cons, elem), acc)
		}
		return acc, true
	}
	return nil, false
}

func unfoldOptionalBuild(c *ctx, t, g rtvalue.WHNF) rtvalue.WHNF {
	noneV := &rtvalue.EmptyOptionalLit{ElemType: rtvalue.Forced(t)}
	someV := &rtvalue.NativeFunc{Apply: func(x rtvalue.WHNF) rtvalue.WHNF {
		return &rtvalue.NEOptionalLit{Payload: rtvalue.Forced(x)}
	}}
	optType := rtvalue.Expr{X: &ast.App{Fn: &ast.Builtin{Name: ast.OptionalType}, Arg: Readback(c, t)}}
	return normalizeApp(c, normalizeApp(c, normalizeApp(c, g, optType), someV), noneV)
}

func foldOptionalDirect(c *ctx, opt, just, nothing rtvalue.WHNF) (rtvalue.WHNF, bool) {
	switch o := opt.(type) {
	case *rtvalue.EmptyOptionalLit:
		return nothing, true
	case *rtvalue.NEOptionalLit:
		payload := Force(c, o.Payload)
		return normalizeApp(c, just, payload), true
	}
	return nil, false
}

func unfoldNaturalBuild(c *ctx, g rtvalue.WHNF) rtvalue.WHNF {
	zero := &rtvalue.NaturalLit{Value: apd.New(0, 0)}
	succ := &rtvalue.NativeFunc{Apply: func(n rtvalue.WHNF) rtvalue.WHNF {
		nat, ok := n.(*rtvalue.NaturalLit)
		if !ok {
			unreachable("Natural/build: successor applied to a non-Natural value")
		}
		return &rtvalue.NaturalLit{Value: addNatural(nat.Value, natOne)}
	}}
	natType := rtvalue.Expr{X: &ast.Builtin{Name: ast.NaturalType}}
	return normalizeApp(c, normalizeApp(c, normalizeApp(c, g, natType), succ), zero)
}

// foldNaturalDirect implements NaturalFold 0 _ _ z = z; NaturalFold n t s z
// = s (NaturalFold (n-1) t s z), as an explicit loop rather than the
// literal recursive definition, since n is unbounded and an unguarded Go
// recursion here would risk a stack overflow on large Naturals.
func foldNaturalDirect(c *ctx, n *apd.Decimal, succ, zero rtvalue.WHNF) rtvalue.WHNF {
	acc := zero
	cur := n
	for !isZero(cur) {
		acc = normalizeApp(c, succ, acc)
		cur = natSubtract(natOne, cur)
	}
	return acc
}

// literalTextString returns the concatenation of t's segments and true iff
// every segment is a literal Str (no live interpolation remains).
func literalTextString(t *rtvalue.TextLit) (string, bool) {
	s := ""
	for _, seg := range t.Segments {
		if seg.IsExpr {
			return "", false
		}
		s += seg.Str
	}
	return s, true
}

func quoteText(s string) string {
	return literal.Quote(s)
}
