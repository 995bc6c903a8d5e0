// Copyright 2026 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package grounding

import (
	"cmp"
	"slices"
	"unicode/utf8"
)

// An insertion is a string to be inserted into a text at an offset of the
// original, unmodified text.
type insertion struct {
	offset int // insertion point
	start  int // start of the segment the insertion annotates
	order  int // position of the originating support
	text   string
}

// splice applies ins to text.
//
// Every offset is in the coordinates of the original text, so insertions are
// applied from the highest offset down: each one touches only text to the
// right of all insertions still pending. Insertions at the same offset end up
// in ascending order.
func splice(text string, ins []insertion) string {
	if len(ins) == 0 {
		return text
	}
	sorted := slices.Clone(ins)
	slices.SortStableFunc(sorted, func(a, b insertion) int {
		if c := cmp.Compare(b.offset, a.offset); c != 0 {
			return c
		}
		if c := cmp.Compare(b.start, a.start); c != 0 {
			return c
		}
		return cmp.Compare(b.order, a.order)
	})
	out := text
	for _, in := range sorted {
		out = out[:in.offset] + in.text + out[in.offset:]
	}
	return out
}

// clampOffset clamps i into [0, len(text)] and moves it back to the start of
// the rune it falls in.
func clampOffset(text string, i int) int {
	i = max(0, min(i, len(text)))
	for i > 0 && i < len(text) && !utf8.RuneStart(text[i]) {
		i--
	}
	return i
}
