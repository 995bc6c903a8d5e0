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

// Package grounding annotates the text of a search-grounded Gemini response
// with its citations.
//
// A model called with Google Search grounding returns, next to its text,
// grounding metadata: the web sources it consulted (chunks) and the spans of
// the text each source supports. [Parse] splices citation markers such as
// " [1, 2]" after every supported span and appends a numbered source list.
// [ParseMarkdown] does the same with Markdown links and a "Sources" section,
// followed by the search suggestion HTML that Google asks applications to
// display.
//
// # Getting a Response
//
// The annotator works on a [Response], which can be obtained from
//   - JSON in the shape of the Gemini REST API, via [encoding/json],
//   - a loosely typed map, via [FromMap],
//   - a Google AI v1beta protobuf message, via [FromProto],
//   - a google.golang.org/genai response, via [FromGenAI].
//
// # Offsets
//
// Segment offsets are byte offsets into the original UTF-8 text. Offsets
// beyond the text are clamped, and an offset that falls inside a multi-byte
// character is moved to the start of that character. A support without an
// end offset is ignored.
//
// # Logging
//
// The functions of this package are silent. To see why a support was
// skipped, use an [Annotator] with a Logger; skipped supports are reported
// at debug level.
package grounding
