/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */

package validate

import (
	"strings"
	"testing"

	"modalkit/internal/result"
	"modalkit/internal/spec"
)

func TestPassWithoutConstraints(t *testing.T) {
	prompts := []spec.Prompt{{Name: "a"}, {Name: "b"}}
	if out := Run(prompts, result.Map{"a": nil, "b": "x"}); !out.OK {
		t.Fatalf("unconstrained prompts must pass: %+v", out)
	}
}

func TestRequiredEmptyFails(t *testing.T) {
	prompts := []spec.Prompt{
		{Name: "a"},
		{Name: "user", Message: "User name", ValidateNotEmpty: true},
	}
	out := Run(prompts, result.Map{"a": "ok", "user": "   "})
	if out.OK {
		t.Fatalf("whitespace-only value must fail a required prompt")
	}
	if out.PromptIndex != 1 || out.PromptName != "user" {
		t.Fatalf("failure target = %d %q", out.PromptIndex, out.PromptName)
	}
	if !strings.Contains(out.Message, "User name") {
		t.Fatalf("message should name the prompt label: %q", out.Message)
	}
}

func TestFirstFailureWins(t *testing.T) {
	prompts := []spec.Prompt{
		{Name: "one", ValidateNotEmpty: true},
		{Name: "two", ValidateNotEmpty: true},
	}
	out := Run(prompts, result.Map{"one": "", "two": ""})
	if out.OK || out.PromptName != "one" {
		t.Fatalf("first failing prompt should be reported, got %+v", out)
	}
}

func TestPatternMatching(t *testing.T) {
	prompts := []spec.Prompt{{Name: "port", Message: "Port", ValidateRegex: `^\d+$`}}
	if out := Run(prompts, result.Map{"port": "8080"}); !out.OK {
		t.Fatalf("matching value failed: %+v", out)
	}
	out := Run(prompts, result.Map{"port": "https"})
	if out.OK || out.PromptName != "port" {
		t.Fatalf("non-matching value must fail: %+v", out)
	}
	// empty value with no required flag skips the pattern
	if out := Run(prompts, result.Map{"port": ""}); !out.OK {
		t.Fatalf("empty optional value should pass: %+v", out)
	}
}

func TestStringifiesNonStringValues(t *testing.T) {
	prompts := []spec.Prompt{{Name: "n", ValidateRegex: `^\d+$`}}
	if out := Run(prompts, result.Map{"n": 42}); !out.OK {
		t.Fatalf("integer value should stringify and match: %+v", out)
	}
}
