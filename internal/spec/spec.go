/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */

// Package spec defines the declarative description of one modal dialog: its
// messages, typed input prompts, action buttons, optional tabular data and
// window options. A Dialog is normalized exactly once before widget
// construction; after Normalize the prompt list carries resolved names and
// inherited font attributes and the button list carries resolved roles.
package spec

import (
	"fmt"
	"regexp"
	"strings"

	"modalkit/internal/config"
	"modalkit/internal/gridview"
	"modalkit/internal/result"
)

// InputKind discriminates the prompt variants. The widget factory dispatches
// exhaustively on it.
type InputKind string

const (
	InputText     InputKind = "text"
	InputCheckbox InputKind = "checkbox"
	InputPassword InputKind = "password"
	InputDate     InputKind = "date"
	InputLink     InputKind = "link"
	InputFileOpen InputKind = "fileOpen"
	InputFileSave InputKind = "fileSave"
)

// SetPresentation selects how a fixed choice set renders.
type SetPresentation string

const (
	SetCombo SetPresentation = "combo"
	SetRadio SetPresentation = "radio"
)

// MessagePosition places a prompt's label relative to its input element.
type MessagePosition string

const (
	PosTop  MessagePosition = "top"
	PosLeft MessagePosition = "left"
)

// Alignment is a horizontal content alignment.
type Alignment string

const (
	AlignLeft   Alignment = "left"
	AlignCenter Alignment = "center"
	AlignRight  Alignment = "right"
)

// FontSpec carries the font attributes a prompt may override. Zero values
// inherit from the dialog level at bind time.
type FontSpec struct {
	Family string `yaml:"family" json:"family,omitempty"`
	Size   int    `yaml:"size" json:"size,omitempty"`
	Color  string `yaml:"color" json:"color,omitempty"`
}

func (f *FontSpec) inherit(from FontSpec) {
	if f.Family == "" {
		f.Family = from.Family
	}
	if f.Size == 0 {
		f.Size = from.Size
	}
	if f.Color == "" {
		f.Color = from.Color
	}
}

// Prompt describes one input field. A bare string in a prompts list is
// shorthand for a text prompt with that message.
type Prompt struct {
	Name             string          `yaml:"name" json:"name,omitempty"`
	Message          string          `yaml:"message" json:"message,omitempty"`
	Kind             InputKind       `yaml:"type" json:"type,omitempty"`
	ValidateSet      []string        `yaml:"validateSet" json:"validateSet,omitempty"`
	ShowSetAs        SetPresentation `yaml:"showSetAs" json:"showSetAs,omitempty"`
	ValidateNotEmpty bool            `yaml:"required" json:"required,omitempty"`
	ValidateRegex    string          `yaml:"pattern" json:"pattern,omitempty"`
	DefaultValue     any             `yaml:"default" json:"default,omitempty"`
	ReadOnly         bool            `yaml:"readOnly" json:"readOnly,omitempty"`
	LineHeight       int             `yaml:"lineHeight" json:"lineHeight,omitempty"`
	Alignment        Alignment       `yaml:"alignment" json:"alignment,omitempty"`
	Font             FontSpec        `yaml:"font" json:"font,omitempty"`
	MessagePosition  MessagePosition `yaml:"messagePosition" json:"messagePosition,omitempty"`
	Collapsible      bool            `yaml:"collapsible" json:"collapsible,omitempty"`
	Group            string          `yaml:"group" json:"group,omitempty"`
	Tab              string          `yaml:"tab" json:"tab,omitempty"`
	RadioGroup       string          `yaml:"radioGroup" json:"radioGroup,omitempty"`
	ShowSeparator    bool            `yaml:"showSeparator" json:"showSeparator,omitempty"`
	// KeyringKey pulls the default value from, and stores the committed value
	// to, the OS keyring. Only honored for password prompts.
	KeyringKey string `yaml:"keyringKey" json:"keyringKey,omitempty"`
}

// HasChoiceSet reports whether the fixed choice set overrides the input kind.
func (p *Prompt) HasChoiceSet() bool { return len(p.ValidateSet) > 0 }

// HasConstraint reports whether the validation engine must inspect this prompt.
func (p *Prompt) HasConstraint() bool { return p.ValidateNotEmpty || p.ValidateRegex != "" }

// ClickContext is handed to custom button handlers. The handler fully owns
// the close decision: standard validate-then-close behavior is skipped.
type ClickContext struct {
	Result result.Map
	Close  func()
}

// ButtonHandler is a typed callback for custom buttons.
type ButtonHandler func(ctx *ClickContext)

// Button describes one action. A bare string in a buttons list is shorthand
// for a plain button with that text.
type Button struct {
	Name      string `yaml:"name" json:"name,omitempty"`
	Text      string `yaml:"text" json:"text,omitempty"`
	IsCancel  bool   `yaml:"isCancel" json:"isCancel,omitempty"`
	IsDefault bool   `yaml:"isDefault" json:"isDefault,omitempty"`

	// OnClick is only settable from Go callers, never from a dialog file.
	OnClick ButtonHandler `yaml:"-" json:"-"`

	// reserved marks engine-synthesized action buttons (Explore/Save/Copy).
	reserved bool
}

// Key returns the identity under which the button reports into the result map.
func (b *Button) Key() string {
	if b.Name != "" {
		return b.Name
	}
	return b.Text
}

// IsReserved reports whether the engine synthesized this button.
func (b *Button) IsReserved() bool { return b.reserved }

// WindowOptions carries the window chrome configuration.
type WindowOptions struct {
	Style           string  `yaml:"style" json:"style,omitempty"` // "default" | "none" | "tool"
	ResizeMode      string  `yaml:"resizeMode" json:"resizeMode,omitempty"`
	MinWidth        float32 `yaml:"minWidth" json:"minWidth,omitempty"`
	MinHeight       float32 `yaml:"minHeight" json:"minHeight,omitempty"`
	MaxWidth        float32 `yaml:"maxWidth" json:"maxWidth,omitempty"`
	MaxHeight       float32 `yaml:"maxHeight" json:"maxHeight,omitempty"`
	Topmost         bool    `yaml:"topmost" json:"topmost,omitempty"`
	HideTaskbarIcon bool    `yaml:"hideTaskbarIcon" json:"hideTaskbarIcon,omitempty"`
}

// GridOptions configures the optional tabular view.
type GridOptions struct {
	AsList        bool   `yaml:"asList" json:"asList,omitempty"`
	SelectionMode string `yaml:"selectionMode" json:"selectionMode,omitempty"`
	HideSearch    bool   `yaml:"hideSearch" json:"hideSearch,omitempty"`
}

// Dialog is the full specification object consumed by the engine.
type Dialog struct {
	Title             string           `yaml:"title" json:"title,omitempty"`
	Icon              string           `yaml:"icon" json:"icon,omitempty"`
	Image             string           `yaml:"image" json:"image,omitempty"` // file path or base64 payload
	Messages          []string         `yaml:"message" json:"message,omitempty"`
	Comments          []string         `yaml:"comment" json:"comment,omitempty"`
	Prompts           []Prompt         `yaml:"prompts" json:"prompts,omitempty"`
	Buttons           []Button         `yaml:"buttons" json:"buttons,omitempty"`
	CancelButton      string           `yaml:"cancelButton" json:"cancelButton,omitempty"`
	DefaultButton     string           `yaml:"defaultButton" json:"defaultButton,omitempty"`
	ButtonRows        int              `yaml:"buttonRows" json:"buttonRows,omitempty"`
	ContentAlignment  Alignment        `yaml:"contentAlignment" json:"contentAlignment,omitempty"`
	Font              FontSpec         `yaml:"font" json:"font,omitempty"`
	BackgroundColor   string           `yaml:"backgroundColor" json:"backgroundColor,omitempty"`
	AccentColor       string           `yaml:"accentColor" json:"accentColor,omitempty"`
	Window            WindowOptions    `yaml:"window" json:"window,omitempty"`
	Timeout           int              `yaml:"timeout" json:"timeout,omitempty"` // seconds
	Countdown         bool             `yaml:"countdown" json:"countdown,omitempty"`
	CollapsibleGroups bool             `yaml:"collapsibleGroups" json:"collapsibleGroups,omitempty"`
	ShowCopyButton    bool             `yaml:"copyButton" json:"copyButton,omitempty"`
	Grid              *gridview.Table  `yaml:"grid" json:"grid,omitempty"`
	Grids             []gridview.Table `yaml:"grids" json:"grids,omitempty"`
	GridOptions       GridOptions      `yaml:"gridOptions" json:"gridOptions,omitempty"`

	normalized bool
}

var nameRe = regexp.MustCompile(`^Input_\d+$`)

// Normalize resolves names, roles, grids and inherited attributes. It must
// run exactly once per invocation, before widget construction, and reports
// malformed specifications as errors.
func (d *Dialog) Normalize() error {
	if d.normalized {
		return nil
	}

	// single-sequence shorthand folds into the grid list
	if d.Grid != nil {
		d.Grids = append([]gridview.Table{*d.Grid}, d.Grids...)
		d.Grid = nil
	}
	for i := range d.Grids {
		d.Grids[i].Normalize()
	}

	// prompt names: synthesize Input_<index>, then enforce uniqueness
	seen := make(map[string]int, len(d.Prompts))
	for i := range d.Prompts {
		p := &d.Prompts[i]
		if strings.TrimSpace(p.Name) == "" {
			p.Name = fmt.Sprintf("Input_%d", i)
		}
		if prev, dup := seen[p.Name]; dup {
			return fmt.Errorf("duplicate prompt name %q (prompts %d and %d)", p.Name, prev, i)
		}
		seen[p.Name] = i

		if p.Kind == "" {
			p.Kind = InputText
		}
		if p.HasChoiceSet() && p.ShowSetAs == "" {
			p.ShowSetAs = SetCombo
		}
		if p.MessagePosition == "" {
			p.MessagePosition = PosTop
		}
		// collapsing and left-position message placement are mutually
		// exclusive; collapsible wins
		if p.Collapsible {
			p.MessagePosition = PosTop
		}
		if p.Alignment == "" {
			p.Alignment = d.ContentAlignment
		}
		p.Font.inherit(d.Font)
		if p.ValidateRegex != "" {
			if _, err := regexp.Compile(p.ValidateRegex); err != nil {
				return fmt.Errorf("prompt %q: invalid pattern: %w", p.Name, err)
			}
		}
	}

	if err := d.resolveButtonRoles(); err != nil {
		return err
	}

	if d.ButtonRows < 1 {
		d.ButtonRows = 1
	}
	d.normalized = true
	return nil
}

func (d *Dialog) resolveButtonRoles() error {
	defaults, cancels := 0, 0
	for i := range d.Buttons {
		b := &d.Buttons[i]
		if b.Text == "" {
			b.Text = b.Name
		}
		if d.DefaultButton != "" && b.Key() == d.DefaultButton {
			b.IsDefault = true
		}
		if d.CancelButton != "" && b.Key() == d.CancelButton {
			b.IsCancel = true
		}
		if b.IsDefault {
			defaults++
		}
		if b.IsCancel {
			cancels++
		}
	}
	if defaults > 1 {
		return fmt.Errorf("more than one default button")
	}
	if cancels > 1 {
		return fmt.Errorf("more than one cancel button")
	}
	// a single role-less custom button is promoted to default
	if len(d.Buttons) == 1 && defaults == 0 && cancels == 0 && d.Buttons[0].OnClick == nil {
		d.Buttons[0].IsDefault = true
	}
	return nil
}

// ApplyConfig merges user configuration defaults into unset dialog-level
// attributes. Runs before Normalize so prompts inherit the merged values.
func (d *Dialog) ApplyConfig(cfg config.DialogConfig) {
	if d.Font.Family == "" {
		d.Font.Family = cfg.FontFamily
	}
	if d.Font.Size == 0 {
		d.Font.Size = cfg.FontSize
	}
	if d.Font.Color == "" {
		d.Font.Color = cfg.FontColor
	}
	if d.BackgroundColor == "" {
		d.BackgroundColor = cfg.BackgroundColor
	}
	if d.AccentColor == "" {
		d.AccentColor = cfg.AccentColor
	}
	if d.ButtonRows == 0 {
		d.ButtonRows = cfg.ButtonRows
	}
}

// HasGrid reports whether tabular data was supplied.
func (d *Dialog) HasGrid() bool { return len(d.Grids) > 0 || d.Grid != nil }

// NewResult builds the pre-populated result map for one invocation: one entry
// per prompt (its default), false per non-custom button, TimedOut when a
// timeout is configured and one grid_select<k> slot per grid instance.
func (d *Dialog) NewResult() result.Map {
	m := make(result.Map, len(d.Prompts)+len(d.Buttons)+2)
	for i := range d.Prompts {
		p := &d.Prompts[i]
		switch {
		case p.DefaultValue != nil:
			m[p.Name] = p.DefaultValue
		case p.Kind == InputCheckbox && !p.HasChoiceSet():
			m[p.Name] = false
		default:
			m[p.Name] = nil
		}
	}
	for i := range d.Buttons {
		b := &d.Buttons[i]
		if b.OnClick == nil {
			m[b.Key()] = false
		}
	}
	if d.Timeout > 0 {
		m[result.KeyTimedOut] = false
	}
	for k := range d.Grids {
		m[result.GridSelectKey(k+1)] = nil
	}
	return m
}
