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

// Package normalize implements the normalizer's evaluator (C4), last-layer
// simplifier and built-in reduction table (C5), and readback (C6), over
// the AST (package ast) and value representation (package internal/rtvalue)
// defined alongside it. Its dispatch shape is grounded on
// cue/internal/eval/eval.go's head-of-expression switch and
// cue/internal/adt/binop.go's per-operator rule table.
package normalize

import (
	"github.com/dhall-go/normalizer/ast"
	"github.com/dhall-go/normalizer/internal/rtvalue"
)

// ctx threads the optional reduction-step budget through every recursive
// call. Its zero value has budget 0, which would immediately trip — use
// unlimited() or budgeted(n) to construct one.
type ctx struct {
	budget int // < 0 means unlimited
	taken  int
}

func unlimited() *ctx { return &ctx{budget: -1} }

func budgeted(steps int) *ctx { return &ctx{budget: steps} }

func (c *ctx) tick(e ast.Expr) {
	if c.budget < 0 {
		return
	}
	if c.taken >= c.budget {
		panic(&budgetExceeded{steps: c.taken, expr: e})
	}
	c.taken++
}

// Force resolves a Thunk to its WHNF, evaluating and memoizing it on first
// use if it was Suspended. It lives here rather than on rtvalue.Thunk
// itself because forcing re-enters Evaluate, and internal/rtvalue must not
// import internal/normalize (package internal/normalize already imports
// internal/rtvalue for the value types, so the reverse edge would cycle).
func Force(c *ctx, t rtvalue.Thunk) rtvalue.WHNF {
	if w, env, expr, ok := t.Peek(); ok {
		return w
	} else {
		w := Evaluate(c, env, expr)
		t.Cache(w)
		return w
	}
}

// Evaluate reduces e to weak head normal form under env.
func Evaluate(c *ctx, env *rtvalue.Env, e ast.Expr) rtvalue.WHNF {
	c.tick(e)
	switch n := e.(type) {
	case *ast.Var:
		return rtvalue.Lookup(env, n.Name, n.Index)

	case *ast.Annot:
		return Evaluate(c, env, n.Expr)

	case *ast.Note:
		return Evaluate(c, env, n.Inner)

	case *ast.Let:
		rv := Evaluate(c, env, n.Value)
		return Evaluate(c, env.ExtendBound(n.Name, rv), n.Body)

	case *ast.Lam:
		return &rtvalue.Lam{
			Name:      n.Name,
			ParamType: rtvalue.Suspend(env, n.Type),
			Env:       env,
			Body:      n.Body,
		}

	case *ast.Builtin:
		return &rtvalue.AppliedBuiltin{Env: env, Name: n.Name, Args: nil}

	case *ast.BoolLit:
		return &rtvalue.BoolLit{Value: n.Value}

	case *ast.NaturalLit:
		return &rtvalue.NaturalLit{Value: n.Value}

	case *ast.IntegerLit:
		// No dedicated WHNF variant: Integer has no further reduction rules
		// of its own in this normalizer, so it stays opaque.
		return rtvalue.Expr{X: n}

	case *ast.TextLit:
		return evaluateTextLit(env, n)

	case *ast.EmptyListLit:
		return &rtvalue.EmptyListLit{ElemType: rtvalue.Suspend(env, n.ElemType)}

	case *ast.NEListLit:
		invariant(len(n.Elems) > 0, "Evaluate: NEListLit literal with no elements")
		elems := make([]rtvalue.Thunk, len(n.Elems))
		for i, el := range n.Elems {
			elems[i] = rtvalue.Suspend(env, el)
		}
		return &rtvalue.NEListLit{Elems: elems}

	case *ast.EmptyOptionalLit:
		return &rtvalue.EmptyOptionalLit{ElemType: rtvalue.Suspend(env, n.ElemType)}

	case *ast.NEOptionalLit:
		return &rtvalue.NEOptionalLit{Payload: rtvalue.Suspend(env, n.Value)}

	case *ast.RecordLit:
		labels := make([]string, len(n.Fields))
		for i, f := range n.Fields {
			labels[i] = f.Label
		}
		invariant(ast.UniqueLabels(labels) == nil, "Evaluate: RecordLit with duplicate labels")
		fields := make([]rtvalue.RecordField, len(n.Fields))
		for i, f := range n.Fields {
			fields[i] = rtvalue.RecordField{Label: f.Label, Value: rtvalue.Suspend(env, f.Value)}
		}
		return &rtvalue.RecordLit{Fields: fields}

	case *ast.UnionType:
		checkUniqueAlts(n.Alts)
		return &rtvalue.UnionType{Env: env, Alts: n.Alts}

	case *ast.UnionLit:
		checkUniqueAlts(n.Alts)
		var payload rtvalue.Thunk
		if n.Value != nil {
			payload = rtvalue.Suspend(env, n.Value)
		}
		return &rtvalue.UnionLit{Label: n.Label, Payload: payload, Env: env, Alts: n.Alts}

	case *ast.If:
		cond := Evaluate(c, env, n.Cond)
		if b, ok := cond.(*rtvalue.BoolLit); ok {
			if b.Value {
				return Evaluate(c, env, n.Then)
			}
			return Evaluate(c, env, n.Else)
		}
		thenW := Evaluate(c, env, n.Then)
		elseW := Evaluate(c, env, n.Else)
		return rtvalue.Expr{X: &ast.If{
			Cond: Readback(c, cond),
			Then: Readback(c, thenW),
			Else: Readback(c, elseW),
		}}

	case *ast.Pi:
		typeW := Evaluate(c, env, n.Type)
		bodyW := Evaluate(c, env.ExtendSkip(n.Name), n.Body)
		return rtvalue.Expr{X: &ast.Pi{
			Name: n.Name,
			Type: Readback(c, typeW),
			Body: Readback(c, bodyW),
		}}

	case *ast.RecordType:
		fields := make([]ast.RecordTypeField, len(n.Fields))
		for i, f := range n.Fields {
			fields[i] = ast.RecordTypeField{Label: f.Label, Type: Readback(c, Evaluate(c, env, f.Type))}
		}
		return rtvalue.Expr{X: &ast.RecordType{Fields: fields}}

	case *ast.App:
		f := Evaluate(c, env, n.Fn)
		a := Evaluate(c, env, n.Arg)
		return normalizeApp(c, f, a)

	case *ast.BinOp:
		l := Evaluate(c, env, n.L)
		r := Evaluate(c, env, n.R)
		return normalizeBinOp(c, n.Op, l, r)

	case *ast.Field:
		t := Evaluate(c, env, n.Target)
		return normalizeField(c, t, n.Label)

	case *ast.Projection:
		t := Evaluate(c, env, n.Target)
		return normalizeProjection(c, t, n.Labels)

	case *ast.Merge:
		h := Evaluate(c, env, n.Handlers)
		s := Evaluate(c, env, n.Scrutinee)
		var annot rtvalue.WHNF
		if n.Annotation != nil {
			annot = Evaluate(c, env, n.Annotation)
		}
		return normalizeMerge(c, h, s, annot)

	case *ast.Embed:
		return Evaluate(c, env, ast.EmbedAbsurd(n))
	}
	unreachable("Evaluate: unhandled node kind %T", e)
	return nil
}

func checkUniqueAlts(alts []ast.Alt) {
	labels := make([]string, len(alts))
	for i, a := range alts {
		labels[i] = a.Label
	}
	invariant(ast.UniqueLabels(labels) == nil, "Evaluate: union alternatives with duplicate labels")
}

func evaluateTextLit(env *rtvalue.Env, n *ast.TextLit) *rtvalue.TextLit {
	segs := make([]rtvalue.TextSegment, 0, 2*len(n.Chunks)+1)
	for _, ch := range n.Chunks {
		if ch.Prefix != "" {
			segs = append(segs, rtvalue.TextSegment{Str: ch.Prefix})
		}
		segs = append(segs, rtvalue.TextSegment{IsExpr: true, Interp: rtvalue.Suspend(env, ch.Expr)})
	}
	if n.Suffix != "" || len(segs) == 0 {
		segs = append(segs, rtvalue.TextSegment{Str: n.Suffix})
	}
	return &rtvalue.TextLit{Segments: segs}
}
