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
	"strconv"

	"github.com/segmentio/encoding/json"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/arcbyte/seqstore/pkg/seq"
	"github.com/arcbyte/seqstore/pkg/util/termio"
	"github.com/arcbyte/seqstore/pkg/value"
)

// inspectCmd builds a sequence from its positional arguments (parsed as
// unsigned integers) and reports its structural state: mode, length and
// capacity. When stdout is a terminal the report is rendered as an aligned
// table; otherwise it's emitted as JSON for machine consumption.
var inspectCmd = &cobra.Command{
	Use:   "inspect [values...]",
	Short: "Build a sequence from its arguments and report its structural state",
	Run: func(cmd *cobra.Command, args []string) {
		arr := seq.New()
		//
		for _, arg := range args {
			n, err := strconv.ParseUint(arg, 10, 64)
			if err != nil {
				fmt.Fprintf(os.Stderr, "invalid value %q: %v\n", arg, err)
				os.Exit(1)
			}
			//
			if err := arr.Push(value.NewWordUint64(n)); err != nil {
				fmt.Fprintf(os.Stderr, "push %q: %v\n", arg, err)
				os.Exit(1)
			}
		}
		//
		reportStructure(arr)
	},
}

type structureReport struct {
	Mode     string `json:"mode"`
	Length   int    `json:"length"`
	Capacity int    `json:"capacity"`
	Frozen   bool   `json:"frozen"`
}

func reportStructure(arr *seq.Array) {
	report := structureReport{
		Mode:     arr.Mode(),
		Length:   arr.Len(),
		Capacity: arr.Capa(),
		Frozen:   arr.IsFrozen(),
	}
	//
	if term.IsTerminal(int(os.Stdout.Fd())) {
		printTable(report)
		return
	}
	//
	enc := json.NewEncoder(os.Stdout)
	if err := enc.Encode(report); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func printTable(report structureReport) {
	table := termio.NewFormattedTable(2, 4)
	//
	table.SetRow(0, termio.NewText("mode"), termio.NewText(report.Mode))
	table.SetRow(1, termio.NewText("length"), termio.NewText(strconv.Itoa(report.Length)))
	table.SetRow(2, termio.NewText("capacity"), termio.NewText(strconv.Itoa(report.Capacity)))
	table.SetRow(3, termio.NewText("frozen"), termio.NewText(strconv.FormatBool(report.Frozen)))
	table.Print(true)
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}
