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

import "strings"

// Ptr returns a pointer to its argument.
// It can be used to initialize pointer fields:
//
//	seg := &grounding.Segment{EndIndex: grounding.Ptr(16)}
func Ptr[T any](t T) *T { return &t }

// A Response is a model response: its text and the candidates it was taken
// from. Only the grounding metadata of the first candidate is used.
type Response struct {
	// Text is the response text that segment offsets refer to.
	Text string `json:"text"`

	Candidates []*Candidate `json:"candidates,omitempty"`
}

// A Candidate is one response variant generated by the model.
type Candidate struct {
	GroundingMetadata *Metadata `json:"groundingMetadata,omitempty"`

	// Content is consulted only to derive Response.Text when a decoded
	// payload does not carry it.
	Content *Content `json:"content,omitempty"`
}

// Content is the multi-part content of a candidate.
type Content struct {
	Role  string  `json:"role,omitempty"`
	Parts []*Part `json:"parts,omitempty"`
}

// A Part is one part of a candidate's content. Parts other than text are
// not represented.
type Part struct {
	Text string `json:"text,omitempty"`
}

// Metadata is the grounding metadata returned with a candidate when
// grounding is enabled.
type Metadata struct {
	// SearchEntryPoint holds the Google Search suggestion to display with
	// the response.
	SearchEntryPoint *SearchEntryPoint `json:"searchEntryPoint,omitempty"`
	// GroundingChunks lists the sources. Supports refer to them by index.
	GroundingChunks []*Chunk `json:"groundingChunks,omitempty"`
	// GroundingSupports lists the spans of the text backed by chunks.
	GroundingSupports []*Support `json:"groundingSupports,omitempty"`
	// WebSearchQueries are the queries the model ran.
	WebSearchQueries []string `json:"webSearchQueries,omitempty"`
}

// SearchEntryPoint is the Google Search entry point.
type SearchEntryPoint struct {
	// RenderedContent is an HTML and CSS snippet that can be embedded in a
	// web page.
	RenderedContent string `json:"renderedContent,omitempty"`
}

// A Chunk is a single citable source. A chunk without Web has nothing to
// render.
type Chunk struct {
	Web *WebSource `json:"web,omitempty"`
}

// WebSource is a chunk taken from the web.
type WebSource struct {
	URI   string `json:"uri,omitempty"`
	Title string `json:"title,omitempty"`
}

// A Support declares that a segment of the original text is backed by the
// chunks at GroundingChunkIndices.
type Support struct {
	Segment *Segment `json:"segment,omitempty"`
	// GroundingChunkIndices are 0-based indices into
	// Metadata.GroundingChunks.
	GroundingChunkIndices []int `json:"groundingChunkIndices,omitempty"`
	// ConfidenceScores, in [0, 1], parallel GroundingChunkIndices.
	ConfidenceScores []float64 `json:"confidenceScores,omitempty"`
}

// A Segment is a range of the original text, [StartIndex, EndIndex) in
// bytes. A nil StartIndex means 0. A segment with a nil EndIndex cannot be
// annotated.
type Segment struct {
	StartIndex *int   `json:"startIndex,omitempty"`
	EndIndex   *int   `json:"endIndex,omitempty"`
	Text       string `json:"text,omitempty"`
}

// A Source is a chunk that can be listed as a web source.
type Source struct {
	// Index is the 1-based number the source is cited by.
	Index int
	Title string
	URI   string
}

// GroundingMetadata returns the grounding metadata of the first candidate,
// or nil if there is none.
func (r *Response) GroundingMetadata() *Metadata {
	if r == nil || len(r.Candidates) == 0 || r.Candidates[0] == nil {
		return nil
	}
	return r.Candidates[0].GroundingMetadata
}

// Sources returns the chunks that have a web source, in chunk order.
func (m *Metadata) Sources() []Source {
	if m == nil {
		return nil
	}
	var srcs []Source
	for i, c := range m.GroundingChunks {
		if c == nil || c.Web == nil {
			continue
		}
		srcs = append(srcs, Source{Index: i + 1, Title: c.Web.Title, URI: c.Web.URI})
	}
	return srcs
}

// chunk returns the chunk at index i, or nil if i is out of range.
func (m *Metadata) chunk(i int) *Chunk {
	if i < 0 || i >= len(m.GroundingChunks) {
		return nil
	}
	return m.GroundingChunks[i]
}

func (m *Metadata) searchSuggestion() string {
	if m.SearchEntryPoint == nil {
		return ""
	}
	return m.SearchEntryPoint.RenderedContent
}

// contentText concatenates the text parts of the first candidate.
func contentText(cands []*Candidate) string {
	if len(cands) == 0 || cands[0] == nil || cands[0].Content == nil {
		return ""
	}
	var b strings.Builder
	for _, p := range cands[0].Content.Parts {
		if p != nil {
			b.WriteString(p.Text)
		}
	}
	return b.String()
}
