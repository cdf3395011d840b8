// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package cmd

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/andreabedini/souffle/pkg/ast/transform"
)

var minimiseCmd = &cobra.Command{
	Use:   "minimise [flags] datalog_file(s)",
	Short: "minimise a Datalog program.",
	Long: `Parse a given set of Datalog source file(s) and rewrite them into a single
	 semantically equivalent program with redundant clauses and relations removed.`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		// Configure log level
		if GetFlag(cmd, "verbose") {
			log.SetLevel(log.DebugLevel)
		}
		//
		output := GetString(cmd, "output")
		// Parse source files
		program := ReadDatalogFiles(args...)
		//
		var (
			nclauses   = len(program.Clauses())
			nrelations = len(program.Relations())
		)
		// Minimise to a fixed point
		if transform.Minimise(program) {
			log.Debug("minimisation removed ", nclauses-len(program.Clauses()), " clause(s) and ",
				nrelations-len(program.Relations()), " relation(s)")
		}
		// Write out the minimised program
		if output == "" {
			fmt.Print(program.String())
		} else if err := os.WriteFile(output, []byte(program.String()), 0644); err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(minimiseCmd)
	minimiseCmd.Flags().StringP("output", "o", "", "write the minimised program to a given file")
}
