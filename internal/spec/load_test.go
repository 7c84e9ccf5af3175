/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */

package spec

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const sampleYAML = `
title: Connection
message:
  - Enter the connection settings.
prompts:
  - Plain shorthand prompt
  - name: host
    message: Host
    required: true
  - name: mode
    message: Mode
    validateSet: [Direct, Proxy]
    showSetAs: radio
    default: Direct
buttons:
  - OK
  - name: cancel
    text: Cancel
    isCancel: true
timeout: 30
countdown: true
`

func TestParseYAMLWithShorthand(t *testing.T) {
	d, err := Parse([]byte(sampleYAML))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if err := d.Normalize(); err != nil {
		t.Fatalf("Normalize: %v", err)
	}
	if len(d.Prompts) != 3 {
		t.Fatalf("prompts = %d", len(d.Prompts))
	}
	if d.Prompts[0].Message != "Plain shorthand prompt" || d.Prompts[0].Kind != InputText {
		t.Fatalf("shorthand prompt = %+v", d.Prompts[0])
	}
	if d.Prompts[0].Name != "Input_0" {
		t.Fatalf("shorthand prompt name = %q", d.Prompts[0].Name)
	}
	if d.Prompts[2].ShowSetAs != SetRadio || d.Prompts[2].DefaultValue != "Direct" {
		t.Fatalf("choice prompt = %+v", d.Prompts[2])
	}
	if d.Buttons[0].Text != "OK" || !d.Buttons[1].IsCancel {
		t.Fatalf("buttons = %+v", d.Buttons)
	}
	if d.Timeout != 30 || !d.Countdown {
		t.Fatalf("timing options = %d %v", d.Timeout, d.Countdown)
	}
}

func TestParseJSONDocument(t *testing.T) {
	doc := `{"title":"T","prompts":[{"name":"a","type":"password"}],"buttons":["OK"]}`
	d, err := Parse([]byte(doc))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if d.Prompts[0].Kind != InputPassword {
		t.Fatalf("kind = %q", d.Prompts[0].Kind)
	}
}

func TestParseRejectsBadInputType(t *testing.T) {
	doc := `{"prompts":[{"name":"a","type":"slider"}]}`
	if _, err := Parse([]byte(doc)); err == nil || !strings.Contains(err.Error(), "invalid dialog document") {
		t.Fatalf("expected schema error, got %v", err)
	}
}

func TestParseRejectsBadSelectionMode(t *testing.T) {
	doc := `{"gridOptions":{"selectionMode":"cells"}}`
	if _, err := Parse([]byte(doc)); err == nil {
		t.Fatalf("expected schema error")
	}
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dlg.yaml")
	if err := os.WriteFile(path, []byte(sampleYAML), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	d, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if d.Title != "Connection" {
		t.Fatalf("title = %q", d.Title)
	}
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}
