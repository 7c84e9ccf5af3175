/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */

// Package ui renders a normalized dialog specification as a live Fyne window,
// wires every interactive element to the shared result map and returns the
// finalized map once the window is dismissed. The Fyne implementation is
// gated behind the "fyne" build tag so headless builds and CI stay free of
// toolkit dependencies.
package ui

import "modalkit/internal/result"

// Prepared exposes the live dialog state to the preparation hook, after full
// construction and before the window is shown.
type Prepared struct {
	// Result is the live shared result map. Mutations are visible to the
	// widgets' own bindings but do not update widget display.
	Result result.Map

	// Focus moves keyboard focus to the named prompt's widget.
	Focus func(name string)

	// Widget returns the concrete toolkit widget bound to a prompt name, or
	// nil. Callers assert to fyne.io/fyne/v2 types in fyne builds.
	Widget func(name string) any
}

// Options configures one Show invocation beyond the dialog specification
// itself.
type Options struct {
	// Prepare runs once after the widget tree is fully constructed.
	Prepare func(p *Prepared)
}
