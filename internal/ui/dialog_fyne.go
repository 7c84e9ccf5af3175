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
	"fmt"
	"image/color"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"modalkit/internal/clipboard"
	"modalkit/internal/config"
	"modalkit/internal/crash"
	"modalkit/internal/imaging"
	"modalkit/internal/layout"
	applog "modalkit/internal/log"
	"modalkit/internal/result"
	"modalkit/internal/secret"
	"modalkit/internal/spec"
	"modalkit/internal/telemetry"
	"modalkit/internal/validate"
)

// session owns one dialog invocation: the widget tree, the shared result map
// and the lifecycle state. Everything mutates on the single UI goroutine, so
// the map is never observed torn by any handler.
type session struct {
	d   *spec.Dialog
	log *slog.Logger

	app fyne.App
	win fyne.Window

	m       result.Map
	final   result.Map
	buttons []spec.Button

	prompts []*promptWidget
	byName  map[string]*promptWidget
	radios  map[string][]*radioMember

	grids      []*gridBinding
	activeGrid int

	countdownText *canvas.Text
	cd            countdown
	ticker        *time.Ticker
	tickerDone    chan struct{}

	accent color.Color
	closed bool
}

// Show renders the dialog modally and returns the finalized result map once
// the window is dismissed.
func Show(d *spec.Dialog) (result.Map, error) {
	return ShowWith(d, Options{})
}

// ShowWith is Show with per-invocation options such as the preparation hook.
func ShowWith(d *spec.Dialog, opts Options) (result.Map, error) {
	applog.Init(applog.FromEnv())
	l := applog.WithComponent("ui")
	defer crash.Recover("")

	cfg, err := config.Load()
	if err != nil {
		l.Warn("config load failed, using defaults", slog.Any("err", err))
		cfg = config.Defaults()
	}
	d.ApplyConfig(cfg.Dialog)
	if err := d.Normalize(); err != nil {
		return nil, fmt.Errorf("normalize dialog: %w", err)
	}

	s := &session{
		d:       d,
		log:     l,
		m:       d.NewResult(),
		buttons: d.EffectiveButtons(),
		byName:  map[string]*promptWidget{},
		radios:  map[string][]*radioMember{},
	}
	s.applyKeyringDefaults()

	s.app = app.NewWithID("modalkit")
	// theme colors resolve against the current app, so only after app.New
	s.accent = parseHexColor(d.AccentColor, theme.Color(theme.ColorNamePrimary))
	title := d.Title
	if title == "" {
		title = "Dialog"
	}
	s.win = s.app.NewWindow(title)
	if res := iconResource(d.Icon); res != nil {
		s.win.SetIcon(res)
	}

	content, err := s.buildContent()
	if err != nil {
		return nil, err
	}
	if bg := parseHexColor(d.BackgroundColor, nil); bg != nil {
		rect := canvas.NewRectangle(bg)
		content = container.NewStack(rect, content)
	}
	s.win.SetContent(container.NewPadded(content))
	s.applyWindowOptions()

	// closing the window via the chrome is the unvalidated cancel path
	s.win.SetCloseIntercept(func() { s.cancelClose() })
	s.win.Canvas().SetOnTypedKey(func(ev *fyne.KeyEvent) {
		switch ev.Name {
		case fyne.KeyEscape:
			s.cancelClose()
		case fyne.KeyReturn, fyne.KeyEnter:
			for i := range s.buttons {
				if s.buttons[i].IsDefault {
					s.activateButton(i)
					return
				}
			}
		}
	})

	if opts.Prepare != nil {
		opts.Prepare(&Prepared{
			Result: s.m,
			Focus:  func(name string) { s.focusName(name) },
			Widget: func(name string) any {
				if pw, ok := s.byName[name]; ok {
					return pw.input
				}
				return nil
			},
		})
	}
	s.assignInitialFocus()
	s.startCountdown()

	l.Info("dialog shown",
		slog.String("title", d.Title),
		slog.Int("prompts", len(d.Prompts)),
		slog.Int("buttons", len(s.buttons)),
		slog.Int("grids", len(d.Grids)))
	telemetry.Event("dialog_shown", map[string]any{
		"prompts": len(d.Prompts),
		"grids":   len(d.Grids),
		"timeout": d.Timeout,
	})

	s.win.Show()
	s.app.Run()

	if s.final == nil {
		s.final = s.m.Clone()
	}
	return s.final, nil
}

// buildContent renders the abstract layout tree into Fyne containers and
// splices the grid view in front of the trailing comment/countdown/button
// section.
func (s *session) buildContent() (fyne.CanvasObject, error) {
	d := s.d

	for i := range d.Prompts {
		pw, err := s.buildPrompt(i)
		if err != nil {
			return nil, err
		}
		s.prompts = append(s.prompts, pw)
		s.byName[d.Prompts[i].Name] = pw
	}

	tree := layout.Build(d.Prompts, layout.Options{
		HasImage:          d.Image != "",
		MessageCount:      len(d.Messages),
		CommentCount:      len(d.Comments),
		Countdown:         d.Timeout > 0 && d.Countdown,
		CollapsibleGroups: d.CollapsibleGroups,
		ButtonRows:        d.ButtonRows,
		ButtonCount:       len(s.buttons),
		UntitledTab:       "General",
	})

	var gridObj fyne.CanvasObject
	if len(d.Grids) > 0 {
		gridObj = s.buildGrids()
	}

	var items []fyne.CanvasObject
	gridPlaced := gridObj == nil
	for _, child := range tree.Children {
		if !gridPlaced {
			switch child.Kind {
			case layout.NodeComment, layout.NodeCountdown, layout.NodeButtonRow:
				items = append(items, gridObj)
				gridPlaced = true
			}
		}
		if obj := s.render(child); obj != nil {
			items = append(items, obj)
		}
	}
	if !gridPlaced {
		items = append(items, gridObj)
	}
	return container.NewVBox(items...), nil
}

func (s *session) render(n *layout.Node) fyne.CanvasObject {
	switch n.Kind {
	case layout.NodeImage:
		return s.renderImage()
	case layout.NodeMessage:
		return s.renderMessages()
	case layout.NodeTabs:
		tabs := container.NewAppTabs()
		for _, page := range n.Children {
			tabs.Append(container.NewTabItem(page.Title, s.renderChildren(page)))
		}
		return tabs
	case layout.NodeGroup:
		title := n.Title
		if n.HideHeader {
			title = ""
		}
		return widget.NewCard(title, "", s.renderChildren(n))
	case layout.NodeCollapsible:
		title := n.Title
		if n.HideHeader {
			title = ""
		}
		item := widget.NewAccordionItem(title, s.renderChildren(n))
		item.Open = true
		return widget.NewAccordion(item)
	case layout.NodeStack, layout.NodeTabPage:
		return s.renderChildren(n)
	case layout.NodeSeparator:
		return widget.NewSeparator()
	case layout.NodePrompt:
		return s.prompts[n.PromptIndex].object
	case layout.NodeComment:
		return s.renderComments()
	case layout.NodeCountdown:
		return s.renderCountdown()
	case layout.NodeButtonRow:
		return s.renderButtonRow(n)
	default:
		return s.renderChildren(n)
	}
}

func (s *session) renderChildren(n *layout.Node) fyne.CanvasObject {
	var items []fyne.CanvasObject
	for _, c := range n.Children {
		if obj := s.render(c); obj != nil {
			items = append(items, obj)
		}
	}
	if len(items) == 1 {
		return items[0]
	}
	return container.NewVBox(items...)
}

// renderImage decodes the image reference. An unreadable path or payload
// degrades to an omitted image, logged at warn, never a failed dialog.
func (s *session) renderImage() fyne.CanvasObject {
	img, err := imaging.Decode(s.d.Image)
	if err != nil {
		s.log.Warn("dialog image omitted", slog.Any("err", err))
		return nil
	}
	c := canvas.NewImageFromImage(img)
	c.FillMode = canvas.ImageFillContain
	b := img.Bounds()
	w, h := float32(b.Dx()), float32(b.Dy())
	if w > 320 {
		h = h * 320 / w
		w = 320
	}
	c.SetMinSize(fyne.NewSize(w, h))
	return c
}

func (s *session) renderMessages() fyne.CanvasObject {
	items := make([]fyne.CanvasObject, 0, len(s.d.Messages))
	for _, msg := range s.d.Messages {
		lbl := widget.NewLabel(msg)
		lbl.Wrapping = fyne.TextWrapWord
		lbl.Alignment = textAlign(s.d.ContentAlignment)
		items = append(items, lbl)
	}
	return container.NewVBox(items...)
}

func (s *session) renderComments() fyne.CanvasObject {
	items := make([]fyne.CanvasObject, 0, len(s.d.Comments))
	for _, c := range s.d.Comments {
		lbl := widget.NewLabel(c)
		lbl.Wrapping = fyne.TextWrapWord
		lbl.TextStyle = fyne.TextStyle{Italic: true}
		lbl.Alignment = textAlign(s.d.ContentAlignment)
		items = append(items, lbl)
	}
	return container.NewVBox(items...)
}

func (s *session) renderCountdown() fyne.CanvasObject {
	s.countdownText = canvas.NewText(countdownLabel(s.d.Timeout), s.accent)
	s.countdownText.Alignment = fyne.TextAlignCenter
	return s.countdownText
}

func (s *session) renderButtonRow(n *layout.Node) fyne.CanvasObject {
	items := []fyne.CanvasObject{widget.NewLabel("")}
	for _, c := range n.Children {
		idx := c.ButtonIndex
		b := &s.buttons[idx]
		btn := widget.NewButton(b.Text, func() { s.activateButton(idx) })
		if b.IsDefault {
			btn.Importance = widget.HighImportance
		}
		items = append(items, btn)
	}
	return container.NewHBox(items...)
}

// activateButton routes one button click: reserved actions, custom handlers
// and the cancel path bypass validation; everything else validates first and
// only a passing outcome commits the close.
func (s *session) activateButton(idx int) {
	if s.closed || idx < 0 || idx >= len(s.buttons) {
		return
	}
	b := &s.buttons[idx]
	s.log.Debug("button activated", slog.String("button", b.Key()))

	switch {
	case b.IsReserved():
		s.runReserved(b.Key())
	case b.OnClick != nil:
		b.OnClick(&spec.ClickContext{Result: s.m, Close: func() { s.closeDialog() }})
	case b.IsCancel:
		s.m[b.Key()] = true
		s.closeDialog()
	default:
		out := validate.Run(s.d.Prompts, s.m)
		if !out.OK {
			s.log.Info("validation failed",
				slog.String("prompt", out.PromptName),
				slog.String("message", out.Message))
			telemetry.Event("validation_failed", map[string]any{"prompt": out.PromptName})
			dialog.ShowInformation("Input required", out.Message, s.win)
			s.focusPrompt(out.PromptIndex)
			return
		}
		s.m[b.Key()] = true
		s.saveKeyringValues()
		s.closeDialog()
	}
}

func (s *session) runReserved(key string) {
	switch key {
	case spec.ButtonCopy:
		if err := clipboard.SetText(strings.Join(s.d.Messages, "\n")); err != nil {
			dialog.ShowError(err, s.win)
		}
	case spec.ButtonSave:
		s.saveGrid()
	case spec.ButtonExplore:
		s.exploreGrid()
	}
}

// cancelClose is the ESC / window-chrome path. It activates the cancel button
// when one exists so its result entry reports true, and otherwise closes with
// no button reported.
func (s *session) cancelClose() {
	for i := range s.buttons {
		if s.buttons[i].IsCancel {
			s.activateButton(i)
			return
		}
	}
	s.closeDialog()
}

// closeDialog finalizes the map and tears the window down. The map is
// immutable from this point.
func (s *session) closeDialog() {
	if s.closed {
		return
	}
	s.closed = true
	if s.ticker != nil {
		s.ticker.Stop()
		close(s.tickerDone)
	}
	s.final = s.m.Clone()
	s.log.Info("dialog closed", slog.Bool("timed_out", s.final.Bool(result.KeyTimedOut)))
	s.app.Quit()
}

// startCountdown arms the 1-second timeout tick. Expiry closes the dialog
// unconditionally with TimedOut set, regardless of validation state.
func (s *session) startCountdown() {
	if s.d.Timeout <= 0 {
		return
	}
	s.cd = countdown{remaining: s.d.Timeout}
	s.ticker = time.NewTicker(time.Second)
	s.tickerDone = make(chan struct{})
	go func(t *time.Ticker, done <-chan struct{}) {
		for {
			select {
			case <-done:
				return
			case <-t.C:
			}
			fyne.Do(func() {
				if s.closed {
					return
				}
				expired := s.cd.tick(s.m)
				if s.countdownText != nil {
					s.countdownText.Text = s.cd.label()
					s.countdownText.Refresh()
				}
				if expired {
					s.closeDialog()
				}
			})
		}
	}(s.ticker, s.tickerDone)
}

// assignInitialFocus focuses the first prompt with an empty current value,
// falling back to the first prompt.
func (s *session) assignInitialFocus() {
	target := -1
	for i := range s.d.Prompts {
		if s.m.String(s.d.Prompts[i].Name) == "" {
			target = i
			break
		}
	}
	if target < 0 && len(s.d.Prompts) > 0 {
		target = 0
	}
	if target >= 0 {
		s.focusPrompt(target)
	}
}

func (s *session) focusPrompt(i int) {
	if i < 0 || i >= len(s.prompts) {
		return
	}
	if f := s.prompts[i].focus; f != nil {
		s.win.Canvas().Focus(f)
	}
}

func (s *session) focusName(name string) {
	for i := range s.d.Prompts {
		if s.d.Prompts[i].Name == name {
			s.focusPrompt(i)
			return
		}
	}
}

// applyKeyringDefaults pulls stored secrets into password prompts that carry
// a keyring key and no explicit default.
func (s *session) applyKeyringDefaults() {
	for i := range s.d.Prompts {
		p := &s.d.Prompts[i]
		if p.Kind != spec.InputPassword || p.KeyringKey == "" || p.DefaultValue != nil {
			continue
		}
		v, err := secret.Get(p.KeyringKey)
		if err != nil {
			s.log.Warn("keyring read failed", slog.String("key", p.KeyringKey), slog.Any("err", err))
			continue
		}
		if v != "" {
			s.m[p.Name] = v
		}
	}
}

// saveKeyringValues stores committed password values on a validated close.
func (s *session) saveKeyringValues() {
	for i := range s.d.Prompts {
		p := &s.d.Prompts[i]
		if p.Kind != spec.InputPassword || p.KeyringKey == "" {
			continue
		}
		if v := s.m.String(p.Name); v != "" {
			if err := secret.Set(p.KeyringKey, v); err != nil {
				s.log.Warn("keyring write failed", slog.String("key", p.KeyringKey), slog.Any("err", err))
			}
		}
	}
}

func (s *session) applyWindowOptions() {
	w := s.d.Window
	if w.MinWidth > 0 || w.MinHeight > 0 {
		s.win.Resize(fyne.NewSize(max32(w.MinWidth, 320), max32(w.MinHeight, 120)))
	}
	if strings.EqualFold(w.ResizeMode, "fixed") || strings.EqualFold(w.ResizeMode, "noResize") {
		s.win.SetFixedSize(true)
	}
	// topmost, taskbar visibility, window style and max size are
	// window-manager concerns Fyne does not expose; accepted and ignored
	if w.Topmost || w.HideTaskbarIcon {
		s.log.Debug("unsupported window chrome options ignored",
			slog.Bool("topmost", w.Topmost),
			slog.Bool("hide_taskbar_icon", w.HideTaskbarIcon))
	}
	if w.Style != "" && w.Style != "default" {
		s.log.Debug("unsupported window style ignored", slog.String("style", w.Style))
	}
	if w.MaxWidth > 0 || w.MaxHeight > 0 {
		s.log.Debug("window max size ignored",
			slog.Any("max_width", w.MaxWidth), slog.Any("max_height", w.MaxHeight))
	}
	s.win.CenterOnScreen()
}

func max32(v, floor float32) float32 {
	if v > floor {
		return v
	}
	return floor
}

func textAlign(a spec.Alignment) fyne.TextAlign {
	switch a {
	case spec.AlignCenter:
		return fyne.TextAlignCenter
	case spec.AlignRight:
		return fyne.TextAlignTrailing
	default:
		return fyne.TextAlignLeading
	}
}

func iconResource(name string) fyne.Resource {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "info", "information":
		return theme.InfoIcon()
	case "warning":
		return theme.WarningIcon()
	case "error":
		return theme.ErrorIcon()
	case "question", "confirm":
		return theme.QuestionIcon()
	default:
		return nil
	}
}

// parseHexColor reads "#RGB", "#RRGGBB" or "#RRGGBBAA"; anything else yields
// the fallback.
func parseHexColor(s string, fallback color.Color) color.Color {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	hex := func(part string) (uint8, bool) {
		v, err := strconv.ParseUint(part, 16, 8)
		return uint8(v), err == nil
	}
	switch len(s) {
	case 3:
		r, ok1 := hex(strings.Repeat(string(s[0]), 2))
		g, ok2 := hex(strings.Repeat(string(s[1]), 2))
		b, ok3 := hex(strings.Repeat(string(s[2]), 2))
		if ok1 && ok2 && ok3 {
			return color.NRGBA{R: r, G: g, B: b, A: 0xff}
		}
	case 6, 8:
		r, ok1 := hex(s[0:2])
		g, ok2 := hex(s[2:4])
		b, ok3 := hex(s[4:6])
		a := uint8(0xff)
		ok4 := true
		if len(s) == 8 {
			a, ok4 = hex(s[6:8])
		}
		if ok1 && ok2 && ok3 && ok4 {
			return color.NRGBA{R: r, G: g, B: b, A: a}
		}
	}
	return fallback
}
