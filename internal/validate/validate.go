/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */

// Package validate runs the pre-close validation pass over all prompts.
// It only reads the result map; a failing outcome blocks the close while
// leaving every entered value intact.
package validate

import (
	"fmt"
	"regexp"
	"strings"

	"modalkit/internal/result"
	"modalkit/internal/spec"
)

// Outcome reports the first failing prompt, if any. PromptIndex addresses the
// normalized prompt list so the caller can refocus the failing widget.
type Outcome struct {
	OK          bool
	PromptIndex int
	PromptName  string
	Message     string
}

// Run checks each prompt with a textual constraint, in declaration order,
// against the current result map value. The first failure wins.
func Run(prompts []spec.Prompt, m result.Map) Outcome {
	for i := range prompts {
		p := &prompts[i]
		if !p.HasConstraint() {
			continue
		}
		val := m.String(p.Name)
		if p.ValidateNotEmpty && strings.TrimSpace(val) == "" {
			return Outcome{
				PromptIndex: i,
				PromptName:  p.Name,
				Message:     fmt.Sprintf("Please enter a value for '%s'.", label(p)),
			}
		}
		if p.ValidateRegex != "" && val != "" {
			// patterns are pre-compiled during Normalize; a failure here
			// means the dialog skipped normalization
			re, err := regexp.Compile(p.ValidateRegex)
			if err != nil {
				return Outcome{
					PromptIndex: i,
					PromptName:  p.Name,
					Message:     fmt.Sprintf("Invalid pattern for '%s': %v", label(p), err),
				}
			}
			if !re.MatchString(val) {
				return Outcome{
					PromptIndex: i,
					PromptName:  p.Name,
					Message:     fmt.Sprintf("'%s' must match the pattern %s.", label(p), p.ValidateRegex),
				}
			}
		}
	}
	return Outcome{OK: true}
}

func label(p *spec.Prompt) string {
	if strings.TrimSpace(p.Message) != "" {
		return p.Message
	}
	return p.Name
}
