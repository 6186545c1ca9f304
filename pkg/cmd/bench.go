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
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/arcbyte/seqstore/pkg/gcsim"
	"github.com/arcbyte/seqstore/pkg/seq"
	"github.com/arcbyte/seqstore/pkg/value"
)

// benchCmd drives a queue workload against the array engine: push n items on
// the back, then shift them off the front one at a time, reporting how long
// each half took. On a large array the first shift promotes it to a shared
// root and every later shift just advances the view over that root.
var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Run a push/shift queue workload against the storage engine",
	Run: func(cmd *cobra.Command, args []string) {
		if GetFlag(cmd, "verbose") {
			log.SetLevel(log.DebugLevel)
		}
		//
		n := GetInt(cmd, "n")
		if n <= 0 {
			n = 10000
		}
		//
		runBench(n)
	},
}

func runBench(n int) {
	arr := seq.New()
	coll := gcsim.NewCollector()
	//
	var prevID uint
	//
	start := time.Now()
	//
	for i := 0; i < n; i++ {
		sizeClass := gcsim.SizeClassEmbedded
		if !arr.IsEmbedded() {
			sizeClass = gcsim.SizeClassHeap
		}
		//
		id := coll.NewObject(sizeClass)
		if i > 0 {
			coll.WriteBarrier(id, prevID)
		}
		//
		prevID = id
		//
		if err := arr.Push(value.NewWordUint64(uint64(i))); err != nil {
			log.Fatalf("push %d: %v", i, err)
		}
	}
	//
	pushed := time.Since(start)
	log.Debugf("pushed %d items in %s (mode=%v, capacity=%d)", n, pushed, arr.Mode(), arr.Capa())
	//
	coll.Mark([]uint{prevID})
	freed := coll.Sweep()
	log.Debugf("gc: embedded capacity %d, %d objects tracked, %d reclaimed after mark from tail",
		coll.EmbeddedCapacity(), n, len(freed))
	//
	start = time.Now()
	//
	for arr.Len() > 0 {
		if _, _, err := arr.Shift(); err != nil {
			log.Fatalf("shift: %v", err)
		}
	}
	//
	shifted := time.Since(start)
	log.Infof("push %d: %s, shift %d: %s", n, pushed, n, shifted)
}

func init() {
	benchCmd.Flags().Int("n", 10000, "number of elements to push then shift")
	rootCmd.AddCommand(benchCmd)
}
