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
package util

import (
	"bytes"
	"testing"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func Test_PerfStats_01(t *testing.T) {
	var buf bytes.Buffer
	//
	defer log.SetOutput(log.StandardLogger().Out)
	defer log.SetLevel(log.GetLevel())
	//
	log.SetOutput(&buf)
	log.SetLevel(log.InfoLevel)
	//
	stats := NewPerfStats()
	stats.Log("Nothing")
	assert.Equal(t, 0, buf.Len())
	//
	log.SetLevel(log.DebugLevel)
	stats.Log("Something")
	assert.Contains(t, buf.String(), "Something took")
	assert.GreaterOrEqual(t, stats.Elapsed(), time.Duration(0))
}
