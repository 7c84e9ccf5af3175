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

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/xeipuuv/gojsonschema"
	"gopkg.in/yaml.v3"
)

// Load reads a dialog file (YAML or JSON), validates it against the dialog
// schema and decodes it. The returned dialog is not yet normalized.
func Load(path string) (*Dialog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read dialog file: %w", err)
	}
	return Parse(data)
}

// Parse validates and decodes a dialog document. YAML is a superset of JSON,
// so a single decode path serves both formats.
func Parse(data []byte) (*Dialog, error) {
	if err := ValidateDocument(data); err != nil {
		return nil, err
	}
	var d Dialog
	if err := yaml.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("decode dialog: %w", err)
	}
	return &d, nil
}

// ValidateDocument checks a raw dialog document against the JSON schema
// without decoding it into a Dialog.
func ValidateDocument(data []byte) error {
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("parse dialog document: %w", err)
	}
	jsonDoc, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("canonicalize dialog document: %w", err)
	}
	res, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(dialogSchema),
		gojsonschema.NewBytesLoader(jsonDoc),
	)
	if err != nil {
		return fmt.Errorf("schema validation: %w", err)
	}
	if !res.Valid() {
		msgs := make([]string, 0, len(res.Errors()))
		for _, e := range res.Errors() {
			msgs = append(msgs, e.String())
		}
		return fmt.Errorf("invalid dialog document: %s", strings.Join(msgs, "; "))
	}
	return nil
}
