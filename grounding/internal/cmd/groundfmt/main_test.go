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

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/gsans/gsans-google-ai-gemini-2-angular/grounding/internal/testhelpers"
)

func execute(t *testing.T, stdin []byte, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	var out, errOut bytes.Buffer
	if args == nil {
		// A nil slice makes cobra fall back to os.Args.
		args = []string{}
	}
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetIn(bytes.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	err = cmd.Execute()
	return out.String(), errOut.String(), err
}

func fixture(t *testing.T, name string) string {
	t.Helper()
	return filepath.Join(testhelpers.TestdataDir(t), name)
}

func TestInputs(t *testing.T) {
	search := fixture(t, "search.json")
	for _, test := range []struct {
		args   []string
		golden string
	}{
		{[]string{search}, "search.txt"},
		{[]string{"--input", "json", search}, "search.txt"},
		{[]string{"-i", "proto", search}, "search.txt"},
		{[]string{"-i", "genai", search}, "search.txt"},
		{[]string{"--format", "markdown", search}, "search.md"},
		{[]string{"-f", "md", "-i", "proto", search}, "search.md"},
		{[]string{"-f", "md", "-i", "genai", search}, "search.md"},
	} {
		got, _, err := execute(t, nil, test.args...)
		if err != nil {
			t.Fatalf("%v: %v", test.args, err)
		}
		want := string(testhelpers.ReadFile(t, test.golden))
		if !strings.HasSuffix(want, "\n") {
			want += "\n"
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("%v: mismatch (-want, +got):\n%s", test.args, diff)
		}
	}
}

func TestMultipleFiles(t *testing.T) {
	got, _, err := execute(t, nil, "-f", "markdown", fixture(t, "sky.json"), fixture(t, "search.json"), fixture(t, "sky.json"))
	if err != nil {
		t.Fatal(err)
	}
	sky := string(testhelpers.ReadFile(t, "sky.md"))
	search := string(testhelpers.ReadFile(t, "search.md"))
	want := sky + "\n" + search + "\n" + "\n" + sky
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mismatch (-want, +got):\n%s", diff)
	}
}

func TestStdin(t *testing.T) {
	got, _, err := execute(t, testhelpers.ReadFile(t, "sky.json"))
	if err != nil {
		t.Fatal(err)
	}
	if want := string(testhelpers.ReadFile(t, "sky.txt")); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestVerbose(t *testing.T) {
	search := fixture(t, "search.json")
	_, stderr, err := execute(t, nil, "-v", "-f", "markdown", search)
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{
		"level=DEBUG",
		`msg="grounding support skipped"`,
		"input=" + search,
		`reason="no renderable chunk"`,
	} {
		if !strings.Contains(stderr, want) {
			t.Errorf("stderr %q does not contain %q", stderr, want)
		}
	}

	_, stderr, err = execute(t, nil, search)
	if err != nil {
		t.Fatal(err)
	}
	if stderr != "" {
		t.Errorf("got stderr %q without --verbose, want empty", stderr)
	}
}

func TestErrors(t *testing.T) {
	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.json")
	if err := os.WriteFile(bad, []byte(`{"candidates": 1}`), 0o644); err != nil {
		t.Fatal(err)
	}
	missing := filepath.Join(dir, "missing.json")
	for _, test := range []struct {
		args  []string
		stdin string
		want  string
	}{
		{[]string{"--format", "html"}, "{}", `unknown format "html"`},
		{[]string{"--input", "yaml"}, "{}", `unknown input encoding "yaml"`},
		{nil, "not json", "stdin: "},
		{[]string{fixture(t, "sky.json"), bad}, "", bad + ": "},
		{[]string{"-i", "proto", bad}, "", bad + ": "},
		{[]string{missing}, "", missing},
	} {
		out, _, err := execute(t, []byte(test.stdin), test.args...)
		if err == nil {
			t.Errorf("%v: got nil, want error", test.args)
			continue
		}
		if !strings.Contains(err.Error(), test.want) {
			t.Errorf("%v: got error %q, want it to contain %q", test.args, err, test.want)
		}
		if out != "" {
			t.Errorf("%v: got output %q on error, want none", test.args, out)
		}
	}
}
