//go:build fyne && cgo

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
	"log/slog"
	"strings"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"modalkit/internal/spec"
	"modalkit/internal/sysopen"
)

// promptWidget is the factory's product for one prompt: the composite ready
// for insertion, the focusable input for validation refocus, and the raw
// input widget exposed to the preparation hook.
type promptWidget struct {
	object fyne.CanvasObject
	focus  fyne.Focusable
	input  fyne.CanvasObject
}

// radioMember is one exclusive toggle inside a radio exclusivity scope.
type radioMember struct {
	check  *widget.Check
	prompt string
	label  string
}

// selectAllEntry selects its existing text when it gains keyboard focus, so
// a tab into a pre-filled field replaces rather than appends.
type selectAllEntry struct {
	widget.Entry
}

func newSelectAllEntry(multiLine bool) *selectAllEntry {
	e := &selectAllEntry{}
	e.MultiLine = multiLine
	if multiLine {
		e.Wrapping = fyne.TextWrapWord
	}
	e.ExtendBaseWidget(e)
	return e
}

func (e *selectAllEntry) FocusGained() {
	e.Entry.FocusGained()
	if e.Text != "" {
		e.TypedShortcut(&fyne.ShortcutSelectAll{})
	}
}

// buildPrompt dispatches exhaustively on the prompt variant and binds the
// produced widget's change notification to the shared result map under the
// prompt's name. A fixed choice set overrides the input kind.
func (s *session) buildPrompt(idx int) (*promptWidget, error) {
	p := &s.d.Prompts[idx]
	name := p.Name

	if p.HasChoiceSet() {
		if p.ShowSetAs == spec.SetRadio {
			return s.buildRadioSet(p), nil
		}
		return s.buildComboSet(p), nil
	}

	switch p.Kind {
	case spec.InputCheckbox:
		check := widget.NewCheck(p.Message, func(v bool) { s.m[name] = v })
		check.SetChecked(s.m.Bool(name))
		if p.ReadOnly {
			check.Disable()
		}
		return &promptWidget{object: check, focus: check, input: check}, nil

	case spec.InputPassword:
		entry := widget.NewPasswordEntry()
		entry.OnChanged = func(v string) { s.m[name] = v }
		if v := s.m.String(name); v != "" {
			entry.SetText(v)
		}
		if p.ReadOnly {
			entry.Disable()
		}
		return s.composite(p, entry, entry), nil

	case spec.InputDate:
		if s.m.String(name) == "" {
			s.m[name] = time.Now().Format(time.DateOnly)
		}
		entry := widget.NewEntry()
		entry.OnChanged = func(v string) { s.m[name] = v }
		entry.SetText(s.m.String(name))
		entry.SetPlaceHolder(time.DateOnly)
		if p.ReadOnly {
			entry.Disable()
		}
		return s.composite(p, entry, entry), nil

	case spec.InputLink:
		target := s.m.String(name)
		if target == "" {
			target = p.Message
		}
		link := widget.NewHyperlink(p.Message, nil)
		link.OnTapped = func() {
			s.m[name] = true
			if err := sysopen.OpenURL(target); err != nil {
				s.log.Warn("link open failed", slog.String("target", target), slog.Any("err", err))
				dialog.ShowError(err, s.win)
			}
		}
		return &promptWidget{object: link, focus: link, input: link}, nil

	case spec.InputFileOpen, spec.InputFileSave:
		return s.buildFilePrompt(p), nil

	default:
		return s.buildTextPrompt(p), nil
	}
}

func (s *session) buildComboSet(p *spec.Prompt) *promptWidget {
	name := p.Name
	sel := widget.NewSelect(p.ValidateSet, func(v string) { s.m[name] = v })
	if cur := s.m.String(name); cur != "" {
		sel.SetSelected(cur)
	}
	if p.ReadOnly {
		sel.Disable()
	}
	return s.composite(p, sel, sel)
}

// buildRadioSet renders a fixed choice set as individual exclusive toggles.
// The exclusivity scope is the prompt's radioGroup, or the prompt itself when
// none is named; checking a toggle writes its label, unchecking the toggle
// whose label matches the current value clears the entry.
func (s *session) buildRadioSet(p *spec.Prompt) *promptWidget {
	name := p.Name
	scope := p.RadioGroup
	if scope == "" {
		scope = "prompt:" + name
	}

	items := make([]fyne.CanvasObject, 0, len(p.ValidateSet))
	var first *widget.Check
	for _, option := range p.ValidateSet {
		member := &radioMember{prompt: name, label: option}
		member.check = widget.NewCheck(option, func(on bool) {
			if on {
				for _, other := range s.radios[scope] {
					if other != member && other.check.Checked {
						other.check.SetChecked(false)
					}
				}
			}
			radioToggle(s.m, member.prompt, member.label, on)
		})
		s.radios[scope] = append(s.radios[scope], member)
		if p.ReadOnly {
			member.check.Disable()
		}
		if first == nil {
			first = member.check
		}
		items = append(items, member.check)
	}
	if cur := s.m.String(name); cur != "" {
		for _, member := range s.radios[scope] {
			if member.prompt == name && member.label == cur {
				member.check.SetChecked(true)
				break
			}
		}
	}
	box := container.NewVBox(items...)
	return s.composite(p, box, first)
}

// buildFilePrompt pairs an editable path field with a picker button driving
// the toolkit's file dialog; a confirmed pick sets the field, which fires the
// field's own binding.
func (s *session) buildFilePrompt(p *spec.Prompt) *promptWidget {
	name := p.Name
	entry := widget.NewEntry()
	entry.OnChanged = func(v string) { s.m[name] = v }
	if v := s.m.String(name); v != "" {
		entry.SetText(v)
	}
	if p.ReadOnly {
		entry.Disable()
	}

	pick := widget.NewButtonWithIcon("", theme.FolderOpenIcon(), func() {
		if p.Kind == spec.InputFileSave {
			dialog.NewFileSave(func(uri fyne.URIWriteCloser, err error) {
				if err != nil {
					dialog.ShowError(err, s.win)
					return
				}
				if uri == nil {
					return
				}
				defer uri.Close()
				entry.SetText(uri.URI().Path())
			}, s.win).Show()
			return
		}
		dialog.NewFileOpen(func(uri fyne.URIReadCloser, err error) {
			if err != nil {
				dialog.ShowError(err, s.win)
				return
			}
			if uri == nil {
				return
			}
			defer uri.Close()
			entry.SetText(uri.URI().Path())
		}, s.win).Show()
	})
	if p.ReadOnly {
		pick.Disable()
	}

	row := container.NewBorder(nil, nil, nil, pick, entry)
	return s.composite(p, row, entry)
}

func (s *session) buildTextPrompt(p *spec.Prompt) *promptWidget {
	name := p.Name
	def := s.m.String(name)
	lines := p.LineHeight
	if lines <= 1 {
		if n := strings.Count(def, "\n") + 1; n > 1 {
			lines = n
		}
	}

	entry := newSelectAllEntry(lines > 1)
	entry.OnChanged = func(v string) { s.m[name] = v }
	if def != "" {
		entry.SetText(def)
	}
	if lines > 1 {
		entry.SetMinRowsVisible(lines)
	}
	if p.ReadOnly {
		entry.Disable()
	}
	return s.composite(p, entry, entry)
}

// composite attaches the prompt's label per its message position. Prompts
// wrapped in a per-prompt collapsible get their message as the collapsible
// title instead, so the label is dropped there.
func (s *session) composite(p *spec.Prompt, input fyne.CanvasObject, focus fyne.Focusable) *promptWidget {
	pw := &promptWidget{object: input, focus: focus, input: input}
	if strings.TrimSpace(p.Message) == "" || p.Collapsible {
		return pw
	}
	label := s.promptLabel(p)
	if p.MessagePosition == spec.PosLeft {
		pw.object = container.NewBorder(nil, nil, label, nil, input)
	} else {
		pw.object = container.NewVBox(label, input)
	}
	return pw
}

// promptLabel renders the prompt message, honoring inherited size and color
// overrides via canvas.Text. Families cannot be swapped per widget in Fyne
// (only a theme font, e.g. FYNE_FONT, changes the face), so a family request
// is logged and the theme face kept.
func (s *session) promptLabel(p *spec.Prompt) fyne.CanvasObject {
	if p.Font.Family != "" {
		s.log.Debug("per-prompt font family not supported, theme face used",
			slog.String("prompt", p.Name), slog.String("family", p.Font.Family))
	}
	if p.Font.Size <= 0 && p.Font.Color == "" {
		label := widget.NewLabel(p.Message)
		label.Alignment = textAlign(p.Alignment)
		return label
	}
	text := canvas.NewText(p.Message, parseHexColor(p.Font.Color, theme.Color(theme.ColorNameForeground)))
	if p.Font.Size > 0 {
		text.TextSize = float32(p.Font.Size)
	}
	text.Alignment = textAlign(p.Alignment)
	return text
}
