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

import "golang.org/x/xerrors"

// ErrDuplicateLabel is the sentinel wrapped by UniqueLabels when it finds a
// repeated record or union label. Callers match it with xerrors.Is, the
// same idiom cue/ast/ident.go uses for ErrIsExpression.
var ErrDuplicateLabel = xerrors.New("duplicate label")

// UniqueLabels reports ErrDuplicateLabel (wrapped with the offending label)
// if labels contains any repeat. RecordLit, RecordType, UnionType and
// UnionLit all require unique labels (invariant 3 of the data model); this
// helper is the one place that rule is checked, so construction sites and
// tests share the same definition of "unique".
func UniqueLabels(labels []string) error {
	seen := make(map[string]bool, len(labels))
	for _, l := range labels {
		if seen[l] {
			return xerrors.Errorf("%q: %w", l, ErrDuplicateLabel)
		}
		seen[l] = true
	}
	return nil
}
