/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */

// Package result defines the shared output record of a dialog invocation.
//
// A Map is owned by exactly one dialog instance and mutated only from the UI
// thread; every widget change callback writes into it by prompt or button
// name. On close the map is finalized (copied) and handed to the caller, after
// which the dialog and its widgets are discarded.
package result

import "fmt"

// KeyTimedOut is set to true when a configured timeout expires before the
// dialog is dismissed. The key is present only when a timeout was configured.
const KeyTimedOut = "TimedOut"

// GridSelectKey returns the reserved key holding the selection payload of
// grid instance k (1-based).
func GridSelectKey(k int) string { return fmt.Sprintf("grid_select%d", k) }

// Map is the single mutable mapping from identifier to current value.
type Map map[string]any

// Clone returns an independent shallow copy. Used to finalize the map on
// close so later widget teardown cannot disturb the returned record.
func (m Map) Clone() Map {
	out := make(Map, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// String returns the value under key stringified, or "" when absent or nil.
func (m Map) String(key string) string {
	v, ok := m[key]
	if !ok || v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprintf("%v", v)
}

// Bool reports the value under key as a boolean, false when absent or not a bool.
func (m Map) Bool(key string) bool {
	b, _ := m[key].(bool)
	return b
}
