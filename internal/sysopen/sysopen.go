/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */

// Package sysopen hands a file or URL to the operating system's default
// handler.
package sysopen

import (
	"fmt"
	"net/url"
	"os/exec"
	"runtime"
	"strings"
)

// startCommand is swapped out in tests.
var startCommand = func(name string, args ...string) error {
	return exec.Command(name, args...).Start()
}

// Open launches the platform handler for target, which may be a local
// file path or a URL.
func Open(target string) error {
	switch runtime.GOOS {
	case "darwin":
		if path, err := exec.LookPath("open"); err == nil {
			return startCommand(path, target)
		}
	case "windows":
		return startCommand("rundll32", "url.dll,FileProtocolHandler", target)
	default:
		if path, err := exec.LookPath("xdg-open"); err == nil {
			return startCommand(path, target)
		}
		if path, err := exec.LookPath("open"); err == nil {
			return startCommand(path, target)
		}
	}
	return fmt.Errorf("no system opener available for %q", target)
}

// OpenURL launches target after checking it carries a web scheme.
// Link prompts go through here so a malformed spec cannot hand an
// arbitrary command string to the shell handler.
func OpenURL(target string) error {
	u, err := url.Parse(strings.TrimSpace(target))
	if err != nil {
		return fmt.Errorf("invalid url %q: %w", target, err)
	}
	switch u.Scheme {
	case "http", "https", "mailto":
	default:
		return fmt.Errorf("unsupported url scheme %q", u.Scheme)
	}
	return Open(u.String())
}
