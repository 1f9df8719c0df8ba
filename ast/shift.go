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

// Shift adjusts every free occurrence of a variable named label in e whose
// index is >= cutoff by delta. It is the standard capture-avoiding shift for
// named-de-Bruijn representations: a binder that introduces label bumps
// cutoff by one for its body (but not for its own type annotation, which is
// evaluated in the binder's enclosing scope).
//
// Shift is structural and total; it never inspects builtin identity or
// numeric content, and it recurses into every subexpression position
// exactly once.
func Shift(delta int, label string, cutoff int, e Expr) Expr {
	if e == nil {
		return nil
	}
	switch n := e.(type) {
	case *Var:
		if n.Name == label && n.Index >= cutoff {
			return &Var{Name: n.Name, Index: n.Index + delta}
		}
		return n

	case *Lam:
		bodyCutoff := cutoff
		if n.Name == label {
			bodyCutoff++
		}
		return &Lam{
			Name: n.Name,
			Type: Shift(delta, label, cutoff, n.Type),
			Body: Shift(delta, label, bodyCutoff, n.Body),
		}

	case *Pi:
		bodyCutoff := cutoff
		if n.Name == label {
			bodyCutoff++
		}
		return &Pi{
			Name: n.Name,
			Type: Shift(delta, label, cutoff, n.Type),
			Body: Shift(delta, label, bodyCutoff, n.Body),
		}

	case *App:
		return &App{Fn: Shift(delta, label, cutoff, n.Fn), Arg: Shift(delta, label, cutoff, n.Arg)}

	case *Let:
		bodyCutoff := cutoff
		if n.Name == label {
			bodyCutoff++
		}
		return &Let{
			Name:  n.Name,
			Type:  Shift(delta, label, cutoff, n.Type),
			Value: Shift(delta, label, cutoff, n.Value),
			Body:  Shift(delta, label, bodyCutoff, n.Body),
		}

	case *Annot:
		return &Annot{Expr: Shift(delta, label, cutoff, n.Expr), Type: Shift(delta, label, cutoff, n.Type)}

	case *Note:
		return &Note{Inner: Shift(delta, label, cutoff, n.Inner)}

	case *If:
		return &If{
			Cond: Shift(delta, label, cutoff, n.Cond),
			Then: Shift(delta, label, cutoff, n.Then),
			Else: Shift(delta, label, cutoff, n.Else),
		}

	case *BoolLit, *NaturalLit, *IntegerLit, *Builtin:
		return n

	case *TextLit:
		chunks := make([]TextChunk, len(n.Chunks))
		for i, c := range n.Chunks {
			chunks[i] = TextChunk{Prefix: c.Prefix, Expr: Shift(delta, label, cutoff, c.Expr)}
		}
		return &TextLit{Chunks: chunks, Suffix: n.Suffix}

	case *EmptyListLit:
		return &EmptyListLit{ElemType: Shift(delta, label, cutoff, n.ElemType)}

	case *NEListLit:
		elems := make([]Expr, len(n.Elems))
		for i, el := range n.Elems {
			elems[i] = Shift(delta, label, cutoff, el)
		}
		return &NEListLit{Elems: elems}

	case *EmptyOptionalLit:
		return &EmptyOptionalLit{ElemType: Shift(delta, label, cutoff, n.ElemType)}

	case *NEOptionalLit:
		return &NEOptionalLit{Value: Shift(delta, label, cutoff, n.Value)}

	case *RecordLit:
		fields := make([]RecordField, len(n.Fields))
		for i, f := range n.Fields {
			fields[i] = RecordField{Label: f.Label, Value: Shift(delta, label, cutoff, f.Value)}
		}
		return &RecordLit{Fields: fields}

	case *RecordType:
		fields := make([]RecordTypeField, len(n.Fields))
		for i, f := range n.Fields {
			fields[i] = RecordTypeField{Label: f.Label, Type: Shift(delta, label, cutoff, f.Type)}
		}
		return &RecordType{Fields: fields}

	case *UnionType:
		return &UnionType{Alts: shiftAlts(delta, label, cutoff, n.Alts)}

	case *UnionLit:
		return &UnionLit{
			Label: n.Label,
			Value: Shift(delta, label, cutoff, n.Value),
			Alts:  shiftAlts(delta, label, cutoff, n.Alts),
		}

	case *Field:
		return &Field{Target: Shift(delta, label, cutoff, n.Target), Label: n.Label}

	case *Projection:
		return &Projection{Target: Shift(delta, label, cutoff, n.Target), Labels: n.Labels}

	case *Merge:
		return &Merge{
			Handlers:   Shift(delta, label, cutoff, n.Handlers),
			Scrutinee:  Shift(delta, label, cutoff, n.Scrutinee),
			Annotation: Shift(delta, label, cutoff, n.Annotation),
		}

	case *BinOp:
		return &BinOp{Op: n.Op, L: Shift(delta, label, cutoff, n.L), R: Shift(delta, label, cutoff, n.R)}

	case *Embed:
		return &Embed{Normalized: Shift(delta, label, cutoff, n.Normalized)}
	}
	panic("ast: Shift: unreachable node kind")
}

func shiftAlts(delta int, label string, cutoff int, alts []Alt) []Alt {
	out := make([]Alt, len(alts))
	for i, a := range alts {
		var t Expr
		if a.Type != nil {
			t = Shift(delta, label, cutoff, a.Type)
		}
		out[i] = Alt{Label: a.Label, Type: t}
	}
	return out
}
