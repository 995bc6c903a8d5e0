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
	pb "cloud.google.com/go/ai/generativelanguage/apiv1beta/generativelanguagepb"
	"google.golang.org/genai"

	"github.com/gsans/gsans-google-ai-gemini-2-angular/grounding/internal/support"
)

// Both client libraries use proto3-style offsets, which cannot tell a missing
// end index from 0. An end index of 0 would annotate an empty segment at the
// start of the text, so it is read as missing.
func newSegment(start, end int32, text string) *Segment {
	s := &Segment{StartIndex: Ptr(int(start)), Text: text}
	if end > 0 {
		s.EndIndex = Ptr(int(end))
	}
	return s
}

// FromProto converts a response of the Google AI v1beta API, as returned by
// cloud.google.com/go/ai/generativelanguage/apiv1beta. Text is the
// concatenation of the text parts of the first candidate.
func FromProto(p *pb.GenerateContentResponse) *Response {
	if p == nil {
		return nil
	}
	cands := support.TransformSlice(p.GetCandidates(), (Candidate{}).fromProto)
	return &Response{Text: contentText(cands), Candidates: cands}
}

func (Candidate) fromProto(p *pb.Candidate) *Candidate {
	if p == nil {
		return nil
	}
	return &Candidate{
		GroundingMetadata: (Metadata{}).fromProto(p.GetGroundingMetadata()),
		Content:           (Content{}).fromProto(p.GetContent()),
	}
}

func (Content) fromProto(p *pb.Content) *Content {
	if p == nil {
		return nil
	}
	c := &Content{Role: p.GetRole()}
	for _, part := range p.GetParts() {
		if t := part.GetText(); t != "" {
			c.Parts = append(c.Parts, &Part{Text: t})
		}
	}
	return c
}

func (Metadata) fromProto(p *pb.GroundingMetadata) *Metadata {
	if p == nil {
		return nil
	}
	m := &Metadata{
		GroundingChunks:   support.TransformSlice(p.GetGroundingChunks(), (Chunk{}).fromProto),
		GroundingSupports: support.TransformSlice(p.GetGroundingSupports(), (Support{}).fromProto),
		WebSearchQueries:  p.GetWebSearchQueries(),
	}
	if sep := p.GetSearchEntryPoint(); sep != nil {
		m.SearchEntryPoint = &SearchEntryPoint{RenderedContent: sep.GetRenderedContent()}
	}
	return m
}

func (Chunk) fromProto(p *pb.GroundingChunk) *Chunk {
	if p == nil {
		return nil
	}
	w := p.GetWeb()
	if w == nil {
		return &Chunk{}
	}
	return &Chunk{Web: &WebSource{URI: w.GetUri(), Title: w.GetTitle()}}
}

func (Support) fromProto(p *pb.GroundingSupport) *Support {
	if p == nil {
		return nil
	}
	s := &Support{
		GroundingChunkIndices: support.TransformSlice(p.GetGroundingChunkIndices(), support.Int),
		ConfidenceScores:      support.TransformSlice(p.GetConfidenceScores(), support.Float64),
	}
	if seg := p.GetSegment(); seg != nil {
		s.Segment = newSegment(seg.GetStartIndex(), seg.GetEndIndex(), seg.GetText())
	}
	return s
}

// FromGenAI converts a response of the google.golang.org/genai client.
// Text is the result of the response's Text method.
func FromGenAI(r *genai.GenerateContentResponse) *Response {
	if r == nil {
		return nil
	}
	return &Response{
		Text:       r.Text(),
		Candidates: support.TransformSlice(r.Candidates, (Candidate{}).fromGenAI),
	}
}

func (Candidate) fromGenAI(c *genai.Candidate) *Candidate {
	if c == nil {
		return nil
	}
	return &Candidate{
		GroundingMetadata: (Metadata{}).fromGenAI(c.GroundingMetadata),
		Content:           (Content{}).fromGenAI(c.Content),
	}
}

func (Content) fromGenAI(c *genai.Content) *Content {
	if c == nil {
		return nil
	}
	out := &Content{Role: c.Role}
	for _, part := range c.Parts {
		if part == nil || part.Thought || part.Text == "" {
			continue
		}
		out.Parts = append(out.Parts, &Part{Text: part.Text})
	}
	return out
}

func (Metadata) fromGenAI(m *genai.GroundingMetadata) *Metadata {
	if m == nil {
		return nil
	}
	out := &Metadata{
		GroundingChunks:   support.TransformSlice(m.GroundingChunks, (Chunk{}).fromGenAI),
		GroundingSupports: support.TransformSlice(m.GroundingSupports, (Support{}).fromGenAI),
		WebSearchQueries:  m.WebSearchQueries,
	}
	if m.SearchEntryPoint != nil {
		out.SearchEntryPoint = &SearchEntryPoint{RenderedContent: m.SearchEntryPoint.RenderedContent}
	}
	return out
}

func (Chunk) fromGenAI(c *genai.GroundingChunk) *Chunk {
	if c == nil {
		return nil
	}
	if c.Web == nil {
		return &Chunk{}
	}
	return &Chunk{Web: &WebSource{URI: c.Web.URI, Title: c.Web.Title}}
}

func (Support) fromGenAI(s *genai.GroundingSupport) *Support {
	if s == nil {
		return nil
	}
	out := &Support{
		GroundingChunkIndices: support.TransformSlice(s.GroundingChunkIndices, support.Int),
		ConfidenceScores:      support.TransformSlice(s.ConfidenceScores, support.Float64),
	}
	if s.Segment != nil {
		out.Segment = newSegment(s.Segment.StartIndex, s.Segment.EndIndex, s.Segment.Text)
	}
	return out
}
