/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */

package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"modalkit/internal/result"
	"modalkit/internal/spec"
	"modalkit/internal/ui"
)

var showAsYAML bool

var showCmd = &cobra.Command{
	Use:   "show <dialog file>",
	Short: "Render a dialog and print the final result map",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := spec.Load(args[0])
		if err != nil {
			return err
		}
		m, err := ui.Show(d)
		if err != nil {
			return err
		}
		return printResult(m)
	},
}

var checkCmd = &cobra.Command{
	Use:   "check <dialog file>",
	Short: "Validate a dialog file without showing it",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := spec.Load(args[0])
		if err != nil {
			return err
		}
		if err := d.Normalize(); err != nil {
			return err
		}
		fmt.Printf("%s: OK (%d prompts, %d buttons, %d grids)\n",
			args[0], len(d.Prompts), len(d.Buttons), len(d.Grids))
		return nil
	},
}

func printResult(m result.Map) error {
	if showAsYAML {
		out, err := yaml.Marshal(m)
		if err != nil {
			return fmt.Errorf("encode result: %w", err)
		}
		_, err = os.Stdout.Write(out)
		return err
	}
	out, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return fmt.Errorf("encode result: %w", err)
	}
	fmt.Println(string(out))
	return nil
}

func init() {
	showCmd.Flags().BoolVar(&showAsYAML, "yaml", false, "print the result map as YAML instead of JSON")
	rootCmd.AddCommand(showCmd, checkCmd)
}
