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
	"encoding/json"
	"fmt"
	"math"
	"reflect"

	"github.com/mitchellh/mapstructure"
)

// wireResponse is the decoded form of a Response. A nil Text means the
// payload did not carry one.
type wireResponse struct {
	Text       *string      `json:"text"`
	Candidates []*Candidate `json:"candidates"`
}

func (w *wireResponse) response() *Response {
	r := &Response{Candidates: w.Candidates}
	if w.Text != nil {
		r.Text = *w.Text
	} else {
		r.Text = contentText(w.Candidates)
	}
	return r
}

// UnmarshalJSON decodes a response in the shape of the Gemini REST API.
// If the payload has no "text" field, Text is set to the concatenated text
// parts of the first candidate.
func (r *Response) UnmarshalJSON(data []byte) error {
	var w wireResponse
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	*r = *w.response()
	return nil
}

// FromMap decodes a response held in a loosely typed map, such as the result
// of decoding a REST response body into an any. Keys are the JSON field
// names of the REST API. Numbers that must be integers, such as segment
// offsets and chunk indices, are rejected if they have a fractional part.
func FromMap(m map[string]any) (*Response, error) {
	var w wireResponse
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook: integralFloatHook,
		TagName:    "json",
		Result:     &w,
	})
	if err != nil {
		return nil, err
	}
	if err := dec.Decode(m); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}
	return w.response(), nil
}

// integralFloatHook converts JSON numbers to ints, failing on fractions and
// on values out of the range of int instead of truncating them.
func integralFloatHook(from, to reflect.Type, data any) (any, error) {
	if to.Kind() != reflect.Int || from.Kind() != reflect.Float64 {
		return data, nil
	}
	f := reflect.ValueOf(data).Float()
	if f != math.Trunc(f) || math.IsInf(f, 0) {
		return nil, fmt.Errorf("%v is not an integer", f)
	}
	// float64(math.MaxInt) rounds up to 2^63, which int cannot hold.
	if f < math.MinInt || f >= float64(math.MaxInt) {
		return nil, fmt.Errorf("%v overflows int", f)
	}
	return int(f), nil
}
