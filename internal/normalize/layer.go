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

// normalizeApp implements function/builtin/union-constructor application.
func normalizeApp(c *ctx, f, a rtvalue.WHNF) rtvalue.WHNF {
	switch fn := f.(type) {
	case *rtvalue.Lam:
		return Evaluate(c, fn.Env.ExtendBound(fn.Name, a), fn.Body)

	case *rtvalue.NativeFunc:
		return fn.Apply(a)

	case *rtvalue.AppliedBuiltin:
		args := make([]rtvalue.WHNF, len(fn.Args)+1)
		copy(args, fn.Args)
		args[len(fn.Args)] = a
		arity := fn.Name.Arity()
		invariant(len(args) <= arity, "normalizeApp: %s applied beyond its arity", fn.Name)
		if len(args) < arity {
			return &rtvalue.AppliedBuiltin{Env: fn.Env, Name: fn.Name, Args: args}
		}
		if v, ok := tryBuiltin(c, fn.Env, fn.Name, args); ok {
			return v
		}
		return opaqueBuiltinApp(c, fn.Name, args)

	case *rtvalue.UnionConstructor:
		return &rtvalue.UnionLit{Label: fn.Label, Payload: rtvalue.Forced(a), Env: fn.Env, Alts: fn.Alts}

	default:
		return rtvalue.Expr{X: &ast.App{Fn: Readback(c, f), Arg: Readback(c, a)}}
	}
}

// normalizeBinOp implements the binary-operator rule table, including
// ImportAlt.
func normalizeBinOp(c *ctx, op ast.BinOpKind, l, r rtvalue.WHNF) rtvalue.WHNF {
	switch op {
	case ast.BoolAnd:
		lb, lok := l.(*rtvalue.BoolLit)
		rb, rok := r.(*rtvalue.BoolLit)
		if lok && lb.Value {
			return r
		}
		if rok && rb.Value {
			return l
		}
		if lok && !lb.Value {
			return &rtvalue.BoolLit{Value: false}
		}
		if rok && !rb.Value {
			return &rtvalue.BoolLit{Value: false}
		}

	case ast.BoolOr:
		lb, lok := l.(*rtvalue.BoolLit)
		rb, rok := r.(*rtvalue.BoolLit)
		if lok && !lb.Value {
			return r
		}
		if rok && !rb.Value {
			return l
		}
		if lok && lb.Value {
			return &rtvalue.BoolLit{Value: true}
		}
		if rok && rb.Value {
			return &rtvalue.BoolLit{Value: true}
		}

	case ast.BoolEQ:
		lb, lok := l.(*rtvalue.BoolLit)
		rb, rok := r.(*rtvalue.BoolLit)
		if lok && lb.Value {
			return r
		}
		if rok && rb.Value {
			return l
		}
		if lok && rok {
			return &rtvalue.BoolLit{Value: lb.Value == rb.Value}
		}

	case ast.BoolNE:
		lb, lok := l.(*rtvalue.BoolLit)
		rb, rok := r.(*rtvalue.BoolLit)
		if lok && !lb.Value {
			return r
		}
		if rok && !rb.Value {
			return l
		}
		if lok && rok {
			return &rtvalue.BoolLit{Value: lb.Value != rb.Value}
		}

	case ast.NaturalPlus:
		ln, lok := l.(*rtvalue.NaturalLit)
		rn, rok := r.(*rtvalue.NaturalLit)
		if lok && isZero(ln.Value) {
			return r
		}
		if rok && isZero(rn.Value) {
			return l
		}
		if lok && rok {
			return &rtvalue.NaturalLit{Value: addNatural(ln.Value, rn.Value)}
		}

	case ast.NaturalTimes:
		ln, lok := l.(*rtvalue.NaturalLit)
		rn, rok := r.(*rtvalue.NaturalLit)
		if lok && isZero(ln.Value) {
			return &rtvalue.NaturalLit{Value: natZero}
		}
		if rok && isZero(rn.Value) {
			return &rtvalue.NaturalLit{Value: natZero}
		}
		if lok && isOne(ln.Value) {
			return r
		}
		if rok && isOne(rn.Value) {
			return l
		}
		if lok && rok {
			return &rtvalue.NaturalLit{Value: mulNatural(ln.Value, rn.Value)}
		}

	case ast.ListAppend:
		_, lEmpty := l.(*rtvalue.EmptyListLit)
		_, rEmpty := r.(*rtvalue.EmptyListLit)
		if lEmpty {
			return r
		}
		if rEmpty {
			return l
		}
		ln, lok := l.(*rtvalue.NEListLit)
		rn, rok := r.(*rtvalue.NEListLit)
		if lok && rok {
			elems := make([]rtvalue.Thunk, 0, len(ln.Elems)+len(rn.Elems))
			elems = append(elems, ln.Elems...)
			elems = append(elems, rn.Elems...)
			return &rtvalue.NEListLit{Elems: elems}
		}

	case ast.TextAppend:
		lt, lok := l.(*rtvalue.TextLit)
		rt, rok := r.(*rtvalue.TextLit)
		if lok && rok {
			segs := make([]rtvalue.TextSegment, 0, len(lt.Segments)+len(rt.Segments))
			segs = append(segs, lt.Segments...)
			segs = append(segs, rt.Segments...)
			return &rtvalue.TextLit{Segments: segs}
		}

	case ast.ImportAlt:
		// e1 ? e2 = e1, always. This never actually fires on an import-free
		// AST; kept for completeness of the operator table.
		return l
	}
	return rtvalue.Expr{X: &ast.BinOp{Op: op, L: Readback(c, l), R: Readback(c, r)}}
}

// normalizeField implements record field selection and union constructor
// projection.
func normalizeField(c *ctx, target rtvalue.WHNF, label string) rtvalue.WHNF {
	switch v := target.(type) {
	case *rtvalue.UnionType:
		return &rtvalue.UnionConstructor{Env: v.Env, Label: label, Alts: v.Alts}
	case *rtvalue.RecordLit:
		if t, found := lookupField(v, label); found {
			return Force(c, t)
		}
	}
	return rtvalue.Expr{X: &ast.Field{Target: Readback(c, target), Label: label}}
}

// normalizeProjection implements record projection by a label set.
func normalizeProjection(c *ctx, target rtvalue.WHNF, labels []string) rtvalue.WHNF {
	if len(labels) == 0 {
		return &rtvalue.RecordLit{Fields: nil}
	}
	if v, ok := target.(*rtvalue.RecordLit); ok {
		fields := make([]rtvalue.RecordField, 0, len(labels))
		for _, l := range labels {
			if t, found := lookupField(v, l); found {
				fields = append(fields, rtvalue.RecordField{Label: l, Value: t})
			}
		}
		return &rtvalue.RecordLit{Fields: fields}
	}
	return rtvalue.Expr{X: &ast.Projection{Target: Readback(c, target), Labels: labels}}
}

// normalizeMerge implements merge dispatch against a union scrutinee.
func normalizeMerge(c *ctx, handlers, scrutinee, annot rtvalue.WHNF) rtvalue.WHNF {
	if h, ok := handlers.(*rtvalue.RecordLit); ok {
		switch s := scrutinee.(type) {
		case *rtvalue.UnionConstructor:
			if t, found := lookupField(h, s.Label); found {
				return Force(c, t)
			}
		case *rtvalue.UnionLit:
			if t, found := lookupField(h, s.Label); found {
				handler := Force(c, t)
				if !s.Payload.Valid() {
					// A constant alternative carries no payload to apply.
					return handler
				}
				payload := Force(c, s.Payload)
				return normalizeApp(c, handler, payload)
			}
		}
	}
	merge := &ast.Merge{Handlers: Readback(c, handlers), Scrutinee: Readback(c, scrutinee)}
	if annot != nil {
		merge.Annotation = Readback(c, annot)
	}
	return rtvalue.Expr{X: merge}
}

func lookupField(r *rtvalue.RecordLit, label string) (rtvalue.Thunk, bool) {
	for _, f := range r.Fields {
		if f.Label == label {
			return f.Value, true
		}
	}
	return rtvalue.Thunk{}, false
}

func opaqueBuiltinApp(c *ctx, name ast.BuiltinID, args []rtvalue.WHNF) rtvalue.WHNF {
	return rtvalue.Expr{X: foldBuiltinApp(name, readbackAll(c, args))}
}
