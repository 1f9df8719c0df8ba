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

// EmbedAbsurd injects a normalized sub-expression into an input AST
// position. It exists because some input ASTs carry already-normalized
// sub-trees (for instance a previously normalized import) annotated with
// their original type; such a sub-tree must be allowed to participate in a
// further round of evaluation without ever itself containing another Embed
// node — a normalized expression cannot, by construction, embed a further
// not-yet-normalized one.
//
// EmbedAbsurd asserts this invariant: it panics if e contains a nested
// *Embed node anywhere in its non-embedded spine, since that would mean a
// value claimed to be fully normalized was not. Otherwise it returns e
// unchanged, unwrapped of any top-level Embed marker.
func EmbedAbsurd(e Expr) Expr {
	if emb, ok := e.(*Embed); ok {
		e = emb.Normalized
	}
	assertNoEmbed(e)
	return e
}

func assertNoEmbed(e Expr) {
	switch n := e.(type) {
	case nil:
	case *Embed:
		panic("ast: EmbedAbsurd: normalized expression still contains an Embed node")
	case *Var, *BoolLit, *NaturalLit, *IntegerLit, *Builtin:
	case *Lam:
		assertNoEmbed(n.Type)
		assertNoEmbed(n.Body)
	case *Pi:
		assertNoEmbed(n.Type)
		assertNoEmbed(n.Body)
	case *App:
		assertNoEmbed(n.Fn)
		assertNoEmbed(n.Arg)
	case *Let:
		assertNoEmbed(n.Type)
		assertNoEmbed(n.Value)
		assertNoEmbed(n.Body)
	case *Annot:
		assertNoEmbed(n.Expr)
		assertNoEmbed(n.Type)
	case *Note:
		assertNoEmbed(n.Inner)
	case *If:
		assertNoEmbed(n.Cond)
		assertNoEmbed(n.Then)
		assertNoEmbed(n.Else)
	case *TextLit:
		for _, c := range n.Chunks {
			assertNoEmbed(c.Expr)
		}
	case *EmptyListLit:
		assertNoEmbed(n.ElemType)
	case *NEListLit:
		for _, el := range n.Elems {
			assertNoEmbed(el)
		}
	case *EmptyOptionalLit:
		assertNoEmbed(n.ElemType)
	case *NEOptionalLit:
		assertNoEmbed(n.Value)
	case *RecordLit:
		for _, f := range n.Fields {
			assertNoEmbed(f.Value)
		}
	case *RecordType:
		for _, f := range n.Fields {
			assertNoEmbed(f.Type)
		}
	case *UnionType:
		for _, a := range n.Alts {
			assertNoEmbed(a.Type)
		}
	case *UnionLit:
		assertNoEmbed(n.Value)
		for _, a := range n.Alts {
			assertNoEmbed(a.Type)
		}
	case *Field:
		assertNoEmbed(n.Target)
	case *Projection:
		assertNoEmbed(n.Target)
	case *Merge:
		assertNoEmbed(n.Handlers)
		assertNoEmbed(n.Scrutinee)
		assertNoEmbed(n.Annotation)
	case *BinOp:
		assertNoEmbed(n.L)
		assertNoEmbed(n.R)
	default:
		panic("ast: assertNoEmbed: unreachable node kind")
	}
}
