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

// Package testhelpers locates the response fixtures shared by the tests of
// several packages.
package testhelpers

import (
	"os"
	"path/filepath"
	"testing"
)

// ModuleRootDir finds the location of the root directory of this repository
// by walking up from the working directory until it finds go.mod.
func ModuleRootDir(t testing.TB) string {
	t.Helper()
	dir, err := os.Getwd()
	if err != nil {
		t.Fatal("Getwd:", err)
	}
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parentDir := filepath.Dir(dir)
		if parentDir == dir {
			t.Fatal("unable to find go.mod")
		}
		dir = parentDir
	}
}

// TestdataDir returns the directory holding the response fixtures and their
// expected annotations.
func TestdataDir(t testing.TB) string {
	t.Helper()
	return filepath.Join(ModuleRootDir(t), "grounding", "testdata")
}

// ReadFile returns the contents of the named file in TestdataDir.
func ReadFile(t testing.TB, name string) []byte {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(TestdataDir(t), name))
	if err != nil {
		t.Fatal(err)
	}
	return data
}
