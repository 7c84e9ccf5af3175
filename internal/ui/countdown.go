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
	"strconv"

	"modalkit/internal/result"
)

// countdown tracks the remaining whole seconds of a dialog timeout.
type countdown struct {
	remaining int
}

// tick consumes one second and reports whether the timeout expired. Expiry
// records TimedOut in m; all other entries keep their current values.
func (c *countdown) tick(m result.Map) (expired bool) {
	c.remaining--
	if c.remaining > 0 {
		return false
	}
	m[result.KeyTimedOut] = true
	return true
}

func (c *countdown) label() string { return countdownLabel(c.remaining) }

func countdownLabel(seconds int) string {
	return "Closing in " + strconv.Itoa(seconds) + " s"
}
