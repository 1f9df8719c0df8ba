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
	"sort"
	"strings"

	"github.com/dhall-go/normalizer/ast"
	"github.com/dhall-go/normalizer/internal/rtvalue"
)

// Readback converts a WHNF back to a syntactic AST in normal form.
// Records and union alternatives are emitted in ascending label order for
// stability across equivalent input orderings; TextLit segments are
// flattened first so adjacent literal runs never appear split apart.
func Readback(c *ctx, w rtvalue.WHNF) ast.Expr {
	switch v := w.(type) {
	case *rtvalue.BoolLit:
		return &ast.BoolLit{Value: v.Value}

	case *rtvalue.NaturalLit:
		return &ast.NaturalLit{Value: v.Value}

	case rtvalue.Expr:
		return v.X

	case *rtvalue.Lam:
		paramType := Readback(c, Force(c, v.ParamType))
		body := Readback(c, Evaluate(c, v.Env.ExtendSkip(v.Name), v.Body))
		return &ast.Lam{Name: v.Name, Type: paramType, Body: body}

	case *rtvalue.AppliedBuiltin:
		return foldBuiltinApp(v.Name, readbackAll(c, v.Args))

	case *rtvalue.EmptyOptionalLit:
		return &ast.EmptyOptionalLit{ElemType: Readback(c, Force(c, v.ElemType))}

	case *rtvalue.NEOptionalLit:
		return &ast.NEOptionalLit{Value: Readback(c, Force(c, v.Payload))}

	case *rtvalue.EmptyListLit:
		return &ast.EmptyListLit{ElemType: Readback(c, Force(c, v.ElemType))}

	case *rtvalue.NEListLit:
		invariant(len(v.Elems) > 0, "Readback: NEListLit with no elements")
		elems := make([]ast.Expr, len(v.Elems))
		for i, t := range v.Elems {
			elems[i] = Readback(c, Force(c, t))
		}
		return &ast.NEListLit{Elems: elems}

	case *rtvalue.RecordLit:
		return &ast.RecordLit{Fields: readbackRecordFields(c, v.Fields)}

	case *rtvalue.UnionType:
		return &ast.UnionType{Alts: readbackAlts(c, v.Env, v.Alts)}

	case *rtvalue.UnionConstructor:
		return &ast.Field{
			Target: &ast.UnionType{Alts: readbackAlts(c, v.Env, v.Alts)},
			Label:  v.Label,
		}

	case *rtvalue.UnionLit:
		var value ast.Expr
		if v.Payload.Valid() {
			value = Readback(c, Force(c, v.Payload))
		}
		return &ast.UnionLit{Label: v.Label, Value: value, Alts: readbackAlts(c, v.Env, v.Alts)}

	case *rtvalue.TextLit:
		return readbackTextLit(c, v)
	}
	unreachable("Readback: unhandled WHNF kind %T", w)
	return nil
}

func readbackAll(c *ctx, ws []rtvalue.WHNF) []ast.Expr {
	out := make([]ast.Expr, len(ws))
	for i, w := range ws {
		out[i] = Readback(c, w)
	}
	return out
}

func readbackRecordFields(c *ctx, fields []rtvalue.RecordField) []ast.RecordField {
	labels := make([]string, len(fields))
	for i, f := range fields {
		labels[i] = f.Label
	}
	invariant(ast.UniqueLabels(labels) == nil, "Readback: RecordLit with duplicate labels")

	idx := make([]int, len(fields))
	for i := range idx {
		idx[i] = i
	}
	sort.Slice(idx, func(i, j int) bool { return fields[idx[i]].Label < fields[idx[j]].Label })

	out := make([]ast.RecordField, len(fields))
	for pos, i := range idx {
		out[pos] = ast.RecordField{Label: fields[i].Label, Value: Readback(c, Force(c, fields[i].Value))}
	}
	return out
}

func readbackAlts(c *ctx, env *rtvalue.Env, alts []ast.Alt) []ast.Alt {
	out := make([]ast.Alt, len(alts))
	for i, a := range alts {
		var t ast.Expr
		if a.Type != nil {
			t = Readback(c, Evaluate(c, env, a.Type))
		}
		out[i] = ast.Alt{Label: a.Label, Type: t}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Label < out[j].Label })
	return out
}

func readbackTextLit(c *ctx, v *rtvalue.TextLit) *ast.TextLit {
	segs := flattenTextSegments(c, v.Segments)
	var chunks []ast.TextChunk
	var buf strings.Builder
	for _, s := range segs {
		if s.IsExpr {
			chunks = append(chunks, ast.TextChunk{Prefix: buf.String(), Expr: Readback(c, Force(c, s.Interp))})
			buf.Reset()
			continue
		}
		buf.WriteString(s.Str)
	}
	return &ast.TextLit{Chunks: chunks, Suffix: buf.String()}
}

func foldBuiltinApp(name ast.BuiltinID, argExprs []ast.Expr) ast.Expr {
	var e ast.Expr = &ast.Builtin{Name: name}
	for _, a := range argExprs {
		e = &ast.App{Fn: e, Arg: a}
	}
	return e
}
