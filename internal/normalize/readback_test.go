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
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dhall-go/normalizer/ast"
	"github.com/dhall-go/normalizer/internal/rtvalue"
)

// TestReadbackSortsRecordFieldsAscending checks that field order in the
// readback result never depends on construction order.
func TestReadbackSortsRecordFieldsAscending(t *testing.T) {
	in := &ast.RecordLit{Fields: []ast.RecordField{
		{Label: "z", Value: nat(1)},
		{Label: "a", Value: nat(2)},
	}}
	assert.Equal(t, "{a = 2, z = 1}", renderTop(in))
}

// TestReadbackSortsUnionAltsAscending mirrors the record-field ordering
// guarantee for a union type's alternatives.
func TestReadbackSortsUnionAltsAscending(t *testing.T) {
	in := &ast.UnionType{Alts: []ast.Alt{
		{Label: "Z"},
		{Label: "A", Type: builtin(ast.NaturalType)},
	}}
	assert.Equal(t, "<A : Natural | Z>", renderTop(in))
}

// TestReadbackFlattensResolvedInterpolation checks that an interpolation
// splice which forces to a literal TextLit is inlined into the surrounding
// run rather than surviving as a separate chunk.
func TestReadbackFlattensResolvedInterpolation(t *testing.T) {
	in := &ast.TextLit{
		Chunks: []ast.TextChunk{{Prefix: "a", Expr: &ast.TextLit{Suffix: "b"}}},
		Suffix: "c",
	}
	assert.Equal(t, `"abc"`, renderTop(in))
}

// TestReadbackPreservesLiveInterpolation checks that an interpolation
// splice which does not resolve to a literal text value survives readback
// as a genuine chunk rather than being forced into garbage text. (The debug
// printer renders only a TextLit's Suffix, so this inspects the returned
// node's fields directly instead of going through its rendered string.)
func TestReadbackPreservesLiveInterpolation(t *testing.T) {
	in := &ast.TextLit{
		Chunks: []ast.TextChunk{{Prefix: "n=", Expr: nat(5)}},
		Suffix: "",
	}
	c := unlimited()
	w := Evaluate(c, rtvalue.Empty(), in)
	out := Readback(c, w).(*ast.TextLit)
	assert.Equal(t, "", out.Suffix)
	assert.Len(t, out.Chunks, 1)
	assert.Equal(t, "n=", out.Chunks[0].Prefix)
	assert.Equal(t, "5", out.Chunks[0].Expr.(*ast.NaturalLit).Value.String())
}
