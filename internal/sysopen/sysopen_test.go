/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */

package sysopen

import "testing"

func TestOpenURLRejectsBadSchemes(t *testing.T) {
	orig := startCommand
	defer func() { startCommand = orig }()
	startCommand = func(name string, args ...string) error { return nil }

	for _, raw := range []string{"file:///etc/passwd", "javascript:alert(1)", "ftp://host/x", "not a url at all"} {
		if err := OpenURL(raw); err == nil {
			t.Fatalf("OpenURL(%q) accepted", raw)
		}
	}
}

func TestOpenURLLaunchesHandler(t *testing.T) {
	orig := startCommand
	defer func() { startCommand = orig }()

	var gotArgs []string
	startCommand = func(name string, args ...string) error {
		gotArgs = append([]string{name}, args...)
		return nil
	}
	if err := OpenURL("https://example.com/docs"); err != nil {
		t.Fatalf("OpenURL: %v", err)
	}
	if len(gotArgs) == 0 {
		t.Fatal("no handler launched")
	}
	if gotArgs[len(gotArgs)-1] != "https://example.com/docs" {
		t.Fatalf("handler args = %v", gotArgs)
	}
}
