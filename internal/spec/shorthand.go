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

import "gopkg.in/yaml.v3"

// Bare-string shorthand: a scalar in the prompts list is a message-only text
// prompt, a scalar in the buttons list is a plain button. Dialog files are
// parsed with yaml.v3 for both YAML and JSON documents.

type promptAlias Prompt

// UnmarshalYAML accepts either a scalar (message shorthand) or a mapping.
func (p *Prompt) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode {
		var msg string
		if err := value.Decode(&msg); err != nil {
			return err
		}
		*p = Prompt{Message: msg, Kind: InputText}
		return nil
	}
	var a promptAlias
	if err := value.Decode(&a); err != nil {
		return err
	}
	*p = Prompt(a)
	return nil
}

type buttonAlias Button

// UnmarshalYAML accepts either a scalar (text shorthand) or a mapping.
func (b *Button) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode {
		var text string
		if err := value.Decode(&text); err != nil {
			return err
		}
		*b = Button{Text: text}
		return nil
	}
	var a buttonAlias
	if err := value.Decode(&a); err != nil {
		return err
	}
	*b = Button(a)
	return nil
}
