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

// Package support provides helpers for converting between the grounding
// types and the types of the Google AI client libraries.
package support

// TransformSlice applies f to each element of from and returns
// a new slice with the results. It returns nil for a nil slice.
func TransformSlice[From, To any](from []From, f func(From) To) []To {
	if from == nil {
		return nil
	}
	to := make([]To, len(from))
	for i, e := range from {
		to[i] = f(e)
	}
	return to
}

// Int widens a 32-bit index.
func Int(i int32) int { return int(i) }

// Float64 widens a 32-bit score.
func Float64(f float32) float64 { return float64(f) }
