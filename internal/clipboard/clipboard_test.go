/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */

package clipboard

import "testing"

func TestSetTextUsesWriter(t *testing.T) {
	orig := writeText
	defer func() { writeText = orig }()

	var got string
	writeText = func(text string) error {
		got = text
		return nil
	}
	if err := SetText("hello"); err != nil {
		t.Fatalf("SetText: %v", err)
	}
	if got != "hello" {
		t.Fatalf("writer got %q", got)
	}
}
