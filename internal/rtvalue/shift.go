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

// ShiftThunk lifts ast.Shift to a Thunk: a Forced thunk has its WHNF
// shifted, a Suspended thunk has its captured AST shifted (its captured
// environment is left alone — shifting only ever rewrites the free-variable
// bookkeeping of the value or expression itself).
func ShiftThunk(delta int, label string, cutoff int, t Thunk) Thunk {
	if w, env, expr, ok := t.Peek(); ok {
		return Forced(ShiftWHNF(delta, label, cutoff, w))
	} else {
		return Suspend(env, ast.Shift(delta, label, cutoff, expr))
	}
}

// ShiftWHNF lifts ast.Shift pointwise to WHNF: a Lam
// shifts its parameter-type thunk at the same cutoff and its body at
// cutoff+1 when the Lam binds label, at the same cutoff otherwise (the
// body is still unevaluated syntax, so it goes through
// ast.Shift directly rather than ShiftWHNF); builtins map over their
// argument stack; containers map over their element thunks.
func ShiftWHNF(delta int, label string, cutoff int, w WHNF) WHNF {
	switch v := w.(type) {
	case *Lam:
		return &Lam{
			Name:      v.Name,
			ParamType: ShiftThunk(delta, label, cutoff, v.ParamType),
			Env:       v.Env,
			Body:      ast.Shift(delta, label, bump(cutoff, label, v.Name), v.Body),
		}
	case *AppliedBuiltin:
		args := make([]WHNF, len(v.Args))
		for i, a := range v.Args {
			args[i] = ShiftWHNF(delta, label, cutoff, a)
		}
		return &AppliedBuiltin{Env: v.Env, Name: v.Name, Args: args}
	case *BoolLit, *NaturalLit:
		return v
	case Expr:
		return Expr{X: ast.Shift(delta, label, cutoff, v.X)}
	case *EmptyOptionalLit:
		return &EmptyOptionalLit{ElemType: ShiftThunk(delta, label, cutoff, v.ElemType)}
	case *NEOptionalLit:
		return &NEOptionalLit{Payload: ShiftThunk(delta, label, cutoff, v.Payload)}
	case *EmptyListLit:
		return &EmptyListLit{ElemType: ShiftThunk(delta, label, cutoff, v.ElemType)}
	case *NEListLit:
		elems := make([]Thunk, len(v.Elems))
		for i, e := range v.Elems {
			elems[i] = ShiftThunk(delta, label, cutoff, e)
		}
		return &NEListLit{Elems: elems}
	case *RecordLit:
		fields := make([]RecordField, len(v.Fields))
		for i, f := range v.Fields {
			fields[i] = RecordField{Label: f.Label, Value: ShiftThunk(delta, label, cutoff, f.Value)}
		}
		return &RecordLit{Fields: fields}
	case *UnionType:
		return &UnionType{Env: v.Env, Alts: shiftAlts(delta, label, cutoff, v.Alts)}
	case *UnionConstructor:
		return &UnionConstructor{Env: v.Env, Label: v.Label, Alts: shiftAlts(delta, label, cutoff, v.Alts)}
	case *UnionLit:
		payload := v.Payload
		if payload.Valid() {
			payload = ShiftThunk(delta, label, cutoff, payload)
		}
		return &UnionLit{
			Label:   v.Label,
			Payload: payload,
			Env:     v.Env,
			Alts:    shiftAlts(delta, label, cutoff, v.Alts),
		}
	case *TextLit:
		segs := make([]TextSegment, len(v.Segments))
		for i, s := range v.Segments {
			if s.IsExpr {
				segs[i] = TextSegment{IsExpr: true, Interp: ShiftThunk(delta, label, cutoff, s.Interp)}
			} else {
				segs[i] = s
			}
		}
		return &TextLit{Segments: segs}
	}
	panic("rtvalue: ShiftWHNF: unreachable WHNF kind")
}

func bump(cutoff int, label, boundName string) int {
	if boundName == label {
		return cutoff + 1
	}
	return cutoff
}

func shiftAlts(delta int, label string, cutoff int, alts []ast.Alt) []ast.Alt {
	out := make([]ast.Alt, len(alts))
	for i, a := range alts {
		var t ast.Expr
		if a.Type != nil {
			t = ast.Shift(delta, label, cutoff, a.Type)
		}
		out[i] = ast.Alt{Label: a.Label, Type: t}
	}
	return out
}
