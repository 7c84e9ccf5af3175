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

import "modalkit/internal/result"

// radioToggle commits the result-map effect of toggling one exclusive choice
// of prompt name. Checking writes the toggle's label; unchecking clears the
// entry only while the label is still the committed value, so an uncheck
// arriving after a sibling already wrote its own label never wipes the
// fresh selection.
func radioToggle(m result.Map, name, label string, checked bool) {
	if checked {
		m[name] = label
		return
	}
	if m.String(name) == label {
		m[name] = ""
	}
}
