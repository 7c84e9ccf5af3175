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
	"image/color"
	"testing"

	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"

	applog "modalkit/internal/log"
	"modalkit/internal/spec"
)

func TestPromptLabelAppliesFontSizeAndColor(t *testing.T) {
	s := &session{log: applog.WithComponent("ui")}
	p := &spec.Prompt{Name: "a", Message: "Host", Font: spec.FontSpec{Size: 18, Color: "#ff0000"}}

	obj := s.promptLabel(p)
	text, ok := obj.(*canvas.Text)
	if !ok {
		t.Fatalf("expected canvas.Text for font override, got %T", obj)
	}
	if text.TextSize != 18 {
		t.Fatalf("TextSize = %v", text.TextSize)
	}
	if text.Color != (color.NRGBA{R: 0xff, A: 0xff}) {
		t.Fatalf("Color = %v", text.Color)
	}
}

func TestPromptLabelWithoutOverridesIsPlainLabel(t *testing.T) {
	s := &session{log: applog.WithComponent("ui")}
	p := &spec.Prompt{Name: "a", Message: "Host"}

	if _, ok := s.promptLabel(p).(*widget.Label); !ok {
		t.Fatalf("expected plain label without font overrides")
	}
}
