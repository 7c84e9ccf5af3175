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

// Reserved action buttons synthesized by the engine. They are never supplied
// by the caller; the engine owns their handlers.
const (
	ButtonExplore = "Explore"
	ButtonSave    = "Save"
	ButtonCopy    = "Copy"
)

// EffectiveButtons returns the button list with reserved action buttons
// spliced in immediately after index 0 when their triggering conditions hold:
// grid present with visible search adds Explore and Save, a requested copy
// button with message text adds Copy. The caller's list is not modified.
func (d *Dialog) EffectiveButtons() []Button {
	var extra []Button
	if d.HasGrid() && !d.GridOptions.HideSearch {
		extra = append(extra,
			Button{Name: ButtonExplore, Text: ButtonExplore, reserved: true},
			Button{Name: ButtonSave, Text: ButtonSave, reserved: true},
		)
	}
	if d.ShowCopyButton && len(d.Messages) > 0 {
		extra = append(extra, Button{Name: ButtonCopy, Text: ButtonCopy, reserved: true})
	}
	if len(extra) == 0 {
		return d.Buttons
	}

	out := make([]Button, 0, len(d.Buttons)+len(extra))
	if len(d.Buttons) == 0 {
		return append(out, extra...)
	}
	out = append(out, d.Buttons[0])
	out = append(out, extra...)
	out = append(out, d.Buttons[1:]...)
	return out
}
