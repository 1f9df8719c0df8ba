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

// Package debug prints an ast.Expr or rtvalue.WHNF in human-readable,
// indented form, for use in invariant-violation panic messages and test
// failure output. The result is not a valid surface-syntax rendering — this
// module has no pretty-printer — it is a debugging aid, adapted from
// cuelang.org/go's cue/internal/debug.WriteNode/NodeString pair to a tree
// that has two distinct node families (syntax and value) rather than CUE's
// single adt family.
package debug

import (
	"fmt"
	"io"
	"strings"

	"github.com/dhall-go/normalizer/ast"
	"github.com/dhall-go/normalizer/internal/rtvalue"
)

// WriteExpr prints e to w.
func WriteExpr(w io.Writer, e ast.Expr) {
	p := printer{w: w}
	p.expr(e)
}

// ExprString returns e's debug rendering as a string.
func ExprString(e ast.Expr) string {
	b := &strings.Builder{}
	WriteExpr(b, e)
	return b.String()
}

// WriteWHNF prints a forced value to w. It does not force any Thunk it
// encounters — every thunk, forced or suspended, prints as "<thunk>" rather
// than triggering evaluation as a side effect of debugging.
func WriteWHNF(w io.Writer, v rtvalue.WHNF) {
	p := printer{w: w}
	p.whnf(v)
}

// WHNFString returns v's debug rendering as a string.
func WHNFString(v rtvalue.WHNF) string {
	b := &strings.Builder{}
	WriteWHNF(b, v)
	return b.String()
}

type printer struct {
	w     io.Writer
	depth int
}

func (p *printer) printf(format string, args ...interface{}) {
	fmt.Fprintf(p.w, format, args...)
}

func (p *printer) indent() {
	p.printf("%s", strings.Repeat("  ", p.depth))
}

func (p *printer) nested(f func()) {
	p.depth++
	f()
	p.depth--
}

func (p *printer) expr(e ast.Expr) {
	if e == nil {
		p.printf("<nil>")
		return
	}
	switch n := e.(type) {
	case *ast.Var:
		p.printf("%s@%d", n.Name, n.Index)
	case *ast.Lam:
		p.printf("λ(%s : ", n.Name)
		p.expr(n.Type)
		p.printf(") ->\n")
		p.nested(func() { p.indent(); p.expr(n.Body) })
	case *ast.Pi:
		p.printf("∀(%s : ", n.Name)
		p.expr(n.Type)
		p.printf(") ->\n")
		p.nested(func() { p.indent(); p.expr(n.Body) })
	case *ast.App:
		p.expr(n.Fn)
		p.printf(" ")
		p.expr(n.Arg)
	case *ast.Let:
		p.printf("let %s = ", n.Name)
		p.expr(n.Value)
		p.printf(" in\n")
		p.nested(func() { p.indent(); p.expr(n.Body) })
	case *ast.Annot:
		p.expr(n.Expr)
		p.printf(" : ")
		p.expr(n.Type)
	case *ast.Note:
		p.expr(n.Inner)
	case *ast.If:
		p.printf("if ")
		p.expr(n.Cond)
		p.printf(" then ")
		p.expr(n.Then)
		p.printf(" else ")
		p.expr(n.Else)
	case *ast.BoolLit:
		p.printf("%v", n.Value)
	case *ast.NaturalLit:
		p.printf("%s", n.Value.String())
	case *ast.IntegerLit:
		p.printf("%s", n.Value.String())
	case *ast.TextLit:
		p.printf("%q", n.Suffix)
	case *ast.EmptyListLit:
		p.printf("[] : List ")
		p.expr(n.ElemType)
	case *ast.NEListLit:
		p.printf("[")
		for i, el := range n.Elems {
			if i > 0 {
				p.printf(", ")
			}
			p.expr(el)
		}
		p.printf("]")
	case *ast.EmptyOptionalLit:
		p.printf("None ")
		p.expr(n.ElemType)
	case *ast.NEOptionalLit:
		p.printf("Some ")
		p.expr(n.Value)
	case *ast.RecordLit:
		p.printf("{")
		for i, f := range n.Fields {
			if i > 0 {
				p.printf(", ")
			}
			p.printf("%s = ", f.Label)
			p.expr(f.Value)
		}
		p.printf("}")
	case *ast.RecordType:
		p.printf("{")
		for i, f := range n.Fields {
			if i > 0 {
				p.printf(", ")
			}
			p.printf("%s : ", f.Label)
			p.expr(f.Type)
		}
		p.printf("}")
	case *ast.UnionType:
		p.printf("<")
		p.altsExpr(n.Alts)
		p.printf(">")
	case *ast.UnionLit:
		p.printf("<%s", n.Label)
		if n.Value != nil {
			p.printf(" = ")
			p.expr(n.Value)
		}
		p.printf(" | ")
		p.altsExpr(n.Alts)
		p.printf(">")
	case *ast.Field:
		p.expr(n.Target)
		p.printf(".%s", n.Label)
	case *ast.Projection:
		p.expr(n.Target)
		p.printf(".{%s}", strings.Join(n.Labels, ", "))
	case *ast.Merge:
		p.printf("merge ")
		p.expr(n.Handlers)
		p.printf(" ")
		p.expr(n.Scrutinee)
	case *ast.BinOp:
		p.expr(n.L)
		p.printf(" %s ", binOpSymbol(n.Op))
		p.expr(n.R)
	case *ast.Builtin:
		p.printf("%s", n.Name)
	case *ast.Embed:
		p.printf("<embed ")
		p.expr(n.Normalized)
		p.printf(">")
	default:
		p.printf("<unknown ast node %T>", n)
	}
}

func (p *printer) altsExpr(alts []ast.Alt) {
	for i, a := range alts {
		if i > 0 {
			p.printf(" | ")
		}
		p.printf("%s", a.Label)
		if a.Type != nil {
			p.printf(" : ")
			p.expr(a.Type)
		}
	}
}

func binOpSymbol(op ast.BinOpKind) string {
	switch op {
	case ast.BoolAnd:
		return "&&"
	case ast.BoolOr:
		return "||"
	case ast.BoolEQ:
		return "=="
	case ast.BoolNE:
		return "!="
	case ast.NaturalPlus:
		return "+"
	case ast.NaturalTimes:
		return "*"
	case ast.TextAppend:
		return "++"
	case ast.ListAppend:
		return "#"
	case ast.ImportAlt:
		return "?"
	}
	return "<?op?>"
}

func (p *printer) whnf(v rtvalue.WHNF) {
	switch n := v.(type) {
	case *rtvalue.Lam:
		p.printf("λ(%s : <thunk>) -> <body %T>", n.Name, n.Body)
	case *rtvalue.AppliedBuiltin:
		p.printf("%s", n.Name)
		for _, a := range n.Args {
			p.printf(" (")
			p.whnf(a)
			p.printf(")")
		}
	case *rtvalue.BoolLit:
		p.printf("%v", n.Value)
	case *rtvalue.NaturalLit:
		p.printf("%s", n.Value.String())
	case rtvalue.Expr:
		p.expr(n.X)
	case *rtvalue.EmptyOptionalLit:
		p.printf("None <thunk>")
	case *rtvalue.NEOptionalLit:
		p.printf("Some <thunk>")
	case *rtvalue.EmptyListLit:
		p.printf("[] <thunk>")
	case *rtvalue.NEListLit:
		p.printf("[<%d elems>]", len(n.Elems))
	case *rtvalue.RecordLit:
		p.printf("{")
		for i, f := range n.Fields {
			if i > 0 {
				p.printf(", ")
			}
			p.printf("%s = <thunk>", f.Label)
		}
		p.printf("}")
	case *rtvalue.UnionType:
		p.printf("<union type, %d alts>", len(n.Alts))
	case *rtvalue.UnionConstructor:
		p.printf("<constructor %s>", n.Label)
	case *rtvalue.UnionLit:
		p.printf("<%s = <thunk>>", n.Label)
	case *rtvalue.TextLit:
		p.printf("<text, %d segments>", len(n.Segments))
	default:
		p.printf("<unknown whnf %T>", n)
	}
}
