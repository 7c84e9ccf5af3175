/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */

package ui

import (
	"testing"

	"modalkit/internal/result"
)

func TestRadioToggleCheckWritesLabel(t *testing.T) {
	m := result.Map{"mode": nil}
	radioToggle(m, "mode", "Direct", true)
	if m["mode"] != "Direct" {
		t.Fatalf("mode = %v", m["mode"])
	}
}

func TestRadioToggleUncheckClearsMatchingValue(t *testing.T) {
	m := result.Map{"mode": "Direct"}
	radioToggle(m, "mode", "Direct", false)
	if m["mode"] != "" {
		t.Fatalf("uncheck of current value should clear, got %v", m["mode"])
	}
}

func TestRadioToggleUncheckKeepsForeignValue(t *testing.T) {
	// The sibling wrote its own label already; the late uncheck of the old
	// toggle must not wipe it.
	m := result.Map{"mode": "Proxy"}
	radioToggle(m, "mode", "Direct", false)
	if m["mode"] != "Proxy" {
		t.Fatalf("uncheck of stale toggle clobbered value: %v", m["mode"])
	}
}

func TestRadioSwitchSequence(t *testing.T) {
	m := result.Map{"mode": nil}
	radioToggle(m, "mode", "Direct", true)
	// switching: the old toggle unchecks first, then the new one checks
	radioToggle(m, "mode", "Direct", false)
	radioToggle(m, "mode", "Proxy", true)
	if m["mode"] != "Proxy" {
		t.Fatalf("switch sequence ended at %v", m["mode"])
	}
}
