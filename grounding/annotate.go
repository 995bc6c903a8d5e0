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
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
)

// Format is the output format of an annotation.
type Format int

const (
	// FormatText marks supported spans with " [1, 2]" and lists the sources
	// as "1. Title - URI".
	FormatText Format = iota
	// FormatMarkdown marks supported spans with "[[1](URI)]" links and
	// appends a "**Sources**" section and the search suggestion.
	FormatMarkdown
)

func (f Format) String() string {
	switch f {
	case FormatText:
		return "text"
	case FormatMarkdown:
		return "markdown"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// ParseFormat returns the Format named s: "text", "markdown" or "md".
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "text", "txt":
		return FormatText, nil
	case "markdown", "md":
		return FormatMarkdown, nil
	}
	return 0, fmt.Errorf("unknown format %q", s)
}

// An Annotator annotates responses with their grounding citations.
// The zero value is ready to use. Configure it by setting its exported
// fields before first use; after that, an Annotator is safe for concurrent
// use by multiple goroutines.
type Annotator struct {
	// Logger, if non-nil, receives a debug record for every support that
	// cannot be annotated.
	Logger *slog.Logger
}

var defaultAnnotator Annotator

// Parse returns the text of r with a " [i, j]" marker after every supported
// segment, followed by a newline and the numbered list of web sources.
// If r has no grounding metadata, Parse returns its text unchanged.
func Parse(r *Response) string {
	return defaultAnnotator.Parse(r)
}

// ParseMarkdown returns the text of r with Markdown citation links after
// every supported segment, followed by a "**Sources**" section and the
// search suggestion.
// If r has no grounding metadata, ParseMarkdown returns its text unchanged.
func ParseMarkdown(r *Response) string {
	return defaultAnnotator.ParseMarkdown(r)
}

// Annotate calls Parse or ParseMarkdown, according to f.
func Annotate(r *Response, f Format) string {
	return defaultAnnotator.Annotate(r, f)
}

// Annotate calls a.Parse or a.ParseMarkdown, according to f.
func (a *Annotator) Annotate(r *Response, f Format) string {
	if f == FormatMarkdown {
		return a.ParseMarkdown(r)
	}
	return a.Parse(r)
}

// Parse is like the package-level [Parse].
func (a *Annotator) Parse(r *Response) string {
	if r == nil {
		return ""
	}
	md := r.GroundingMetadata()
	if md == nil {
		return r.Text
	}
	return a.annotateSegments(r.Text, md, textMarker) + textSuffix(md)
}

// ParseMarkdown is like the package-level [ParseMarkdown].
func (a *Annotator) ParseMarkdown(r *Response) string {
	if r == nil {
		return ""
	}
	md := r.GroundingMetadata()
	if md == nil {
		return r.Text
	}
	return a.annotateSegments(r.Text, md, markdownMarker) + markdownSuffix(md)
}

// annotateSegments inserts the marker of every support after the end of its
// segment.
func (a *Annotator) annotateSegments(text string, md *Metadata, marker func(*Metadata, *Support) string) string {
	var ins []insertion
	for i, s := range md.GroundingSupports {
		start, end, err := s.bounds(text)
		if err != nil {
			a.skipped(i, err.Error())
			continue
		}
		m := marker(md, s)
		if m == "" {
			a.skipped(i, "no renderable chunk")
			continue
		}
		ins = append(ins, insertion{offset: end, start: start, order: i, text: m})
	}
	return splice(text, ins)
}

func (a *Annotator) skipped(support int, reason string) {
	if a == nil || a.Logger == nil {
		return
	}
	a.Logger.Debug("grounding support skipped", "support", support, "reason", reason)
}

// bounds returns the segment of s, clamped to text.
func (s *Support) bounds(text string) (start, end int, err error) {
	if s == nil || s.Segment == nil {
		return 0, 0, errNoSegment
	}
	if s.Segment.EndIndex == nil {
		return 0, 0, errNoEndIndex
	}
	end = clampOffset(text, *s.Segment.EndIndex)
	if s.Segment.StartIndex != nil {
		start = clampOffset(text, *s.Segment.StartIndex)
	}
	if start > end {
		return 0, 0, fmt.Errorf("start index %d after end index %d", start, end)
	}
	return start, end, nil
}

var (
	errNoSegment  = errors.New("no segment")
	errNoEndIndex = errors.New("no end index")
)

// textMarker returns " [i, j, ...]" for the chunks s cites, numbered from 1.
func textMarker(md *Metadata, s *Support) string {
	var nums []string
	for _, ci := range s.GroundingChunkIndices {
		if ci < 0 || ci >= len(md.GroundingChunks) {
			continue
		}
		nums = append(nums, strconv.Itoa(ci+1))
	}
	if len(nums) == 0 {
		return ""
	}
	return " [" + strings.Join(nums, ", ") + "]"
}

// markdownMarker returns a "[[i](uri)]" link for every chunk s cites that
// has a URI.
func markdownMarker(md *Metadata, s *Support) string {
	var b strings.Builder
	for _, ci := range s.GroundingChunkIndices {
		c := md.chunk(ci)
		if c == nil || c.Web == nil || c.Web.URI == "" {
			continue
		}
		fmt.Fprintf(&b, "[[%d](%s)]", ci+1, c.Web.URI)
	}
	return b.String()
}

func textSuffix(md *Metadata) string {
	var b strings.Builder
	b.WriteString("\n")
	for _, src := range md.Sources() {
		fmt.Fprintf(&b, "%d. %s - %s\n", src.Index, src.Title, src.URI)
	}
	return b.String()
}

// markdownSuffix returns the "**Sources**" section, listing the sources that
// have both a title and a URI, and the search suggestion. With nothing to
// list it returns only the search suggestion, even for an empty chunk list.
func markdownSuffix(md *Metadata) string {
	var lines []string
	for _, src := range md.Sources() {
		if src.Title == "" || src.URI == "" {
			continue
		}
		lines = append(lines, fmt.Sprintf("%d. [%s](%s)", src.Index, src.Title, src.URI))
	}
	search := md.searchSuggestion()
	if len(lines) == 0 {
		return search
	}
	return "\n**Sources**\n" + strings.Join(lines, "\n") + "\n\n" + search
}
