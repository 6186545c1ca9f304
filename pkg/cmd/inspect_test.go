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
	"testing"

	"github.com/arcbyte/seqstore/pkg/seq"
	"github.com/arcbyte/seqstore/pkg/util/assert"
	"github.com/arcbyte/seqstore/pkg/value"
)

func Test_ReportStructure_Embedded_00(t *testing.T) {
	arr := seq.New()
	_ = arr.Push(value.NewWordUint64(1))
	//
	report := structureReport{
		Mode:     arr.Mode(),
		Length:   arr.Len(),
		Capacity: arr.Capa(),
		Frozen:   arr.IsFrozen(),
	}
	assert.Equal(t, "embedded", report.Mode)
	assert.Equal(t, 1, report.Length)
}

func Test_PrintTable_DoesNotPanic_01(t *testing.T) {
	printTable(structureReport{Mode: "heap", Length: 10, Capacity: 16, Frozen: false})
}
