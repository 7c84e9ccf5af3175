/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */

// Command modalkit renders declarative modal dialogs from YAML/JSON files and
// prints the resulting value map. Build with -tags fyne for the full desktop
// UI; headless builds still support the check subcommand.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"modalkit/internal/crash"
	applog "modalkit/internal/log"
	"modalkit/internal/version"
)

var rootCmd = &cobra.Command{
	Use:           "modalkit",
	Short:         "Declarative modal dialogs from YAML or JSON",
	Long:          "modalkit builds a live modal dialog from a declarative description (messages, typed input prompts, action buttons, an optional data grid) and prints the final result map when the dialog closes.",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		applog.Init(applog.FromEnv())
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show the version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(version.String())
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

func main() {
	defer crash.Recover("")
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
