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
	"strings"

	"github.com/dhall-go/normalizer/internal/rtvalue"
)

// flattenTextSegments implements the TextLit collapsing rule: forcing an
// interpolation whose value is itself a TextLit inlines its segments
// recursively, and adjacent Str runs are concatenated into one. The result
// never contains an IsExpr segment whose forced value is itself a TextLit.
func flattenTextSegments(c *ctx, segs []rtvalue.TextSegment) []rtvalue.TextSegment {
	var out []rtvalue.TextSegment
	var buf strings.Builder

	flush := func() {
		if buf.Len() > 0 {
			out = append(out, rtvalue.TextSegment{Str: buf.String()})
			buf.Reset()
		}
	}

	var walk func([]rtvalue.TextSegment)
	walk = func(segs []rtvalue.TextSegment) {
		for _, seg := range segs {
			if !seg.IsExpr {
				buf.WriteString(seg.Str)
				continue
			}
			forced := Force(c, seg.Interp)
			if inner, ok := forced.(*rtvalue.TextLit); ok {
				walk(inner.Segments)
				continue
			}
			flush()
			out = append(out, rtvalue.TextSegment{IsExpr: true, Interp: rtvalue.Forced(forced)})
		}
	}
	walk(segs)
	flush()

	if len(out) == 0 {
		return []rtvalue.TextSegment{{Str: ""}}
	}
	return out
}
