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

import "github.com/cockroachdb/apd/v2"

// apdCtx backs every Natural/Integer arithmetic operation. cuelang.org/go's
// cue/internal/adt/binop.go uses apd.BaseContext with Precision 24 since
// CUE numbers are bounded-precision decimals; Naturals here are unbounded
// integers; Precision 0 tells apd to never round, which is the documented
// way to get exact arbitrary-precision integer arithmetic out of this
// library for addition, subtraction and multiplication.
var apdCtx apd.Context

func init() {
	apdCtx = apd.BaseContext
	apdCtx.Precision = 0
}

var natZero = apd.New(0, 0)
var natOne = apd.New(1, 0)

func isZero(d *apd.Decimal) bool { return d.Cmp(natZero) == 0 }
func isOne(d *apd.Decimal) bool  { return d.Cmp(natOne) == 0 }

func natEven(d *apd.Decimal) bool {
	var rounded, halved apd.Decimal
	if _, err := apdCtx.RoundToIntegralValue(&rounded, d); err != nil {
		unreachable("Natural/even: rounding failed: %v", err)
	}
	// QuoInteger reports DivisionImpossible whenever the quotient has more
	// digits than the context's Precision, so it cannot run under apdCtx's
	// Precision 0; give it just enough digits for an exact quotient.
	quoCtx := apdCtx
	quoCtx.Precision = uint32(rounded.NumDigits()) + 1
	if _, err := quoCtx.QuoInteger(&halved, &rounded, apd.New(2, 0)); err != nil {
		unreachable("Natural/even: integer division failed: %v", err)
	}
	var twice apd.Decimal
	if _, err := apdCtx.Mul(&twice, &halved, apd.New(2, 0)); err != nil {
		unreachable("Natural/even: multiplication failed: %v", err)
	}
	return twice.Cmp(&rounded) == 0
}

func addNatural(x, y *apd.Decimal) *apd.Decimal {
	z := new(apd.Decimal)
	if _, err := apdCtx.Add(z, x, y); err != nil {
		unreachable("Natural/+: addition failed: %v", err)
	}
	return z
}

func mulNatural(x, y *apd.Decimal) *apd.Decimal {
	z := new(apd.Decimal)
	if _, err := apdCtx.Mul(z, x, y); err != nil {
		unreachable("Natural/*: multiplication failed: %v", err)
	}
	return z
}

// natSubtract implements Natural/subtract a b = max(b - a, 0).
func natSubtract(a, b *apd.Decimal) *apd.Decimal {
	z := new(apd.Decimal)
	if _, err := apdCtx.Sub(z, b, a); err != nil {
		unreachable("Natural/subtract: subtraction failed: %v", err)
	}
	if z.Sign() < 0 {
		return natZero
	}
	return z
}
