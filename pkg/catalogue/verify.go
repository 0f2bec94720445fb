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
package catalogue

import (
	"context"
	"errors"
	"fmt"

	"github.com/consensys/go-hadamard/pkg/paley"
	"github.com/consensys/go-hadamard/pkg/util"
	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// Status describes the outcome of verifying a single construction.
type Status uint8

const (
	// Verified indicates the construction produced a Hadamard matrix of the
	// expected order.
	Verified Status = iota
	// Skipped indicates the construction lies outside what can be built (e.g.
	// the exponent is beyond the supported polynomial degree).
	Skipped
	// Failed indicates the construction produced an invalid matrix.
	Failed
)

func (s Status) String() string {
	switch s {
	case Verified:
		return "verified"
	case Skipped:
		return "skipped"
	default:
		return "failed"
	}
}

// Result records the outcome of verifying a single construction.
type Result struct {
	Parameters paley.Parameters
	Status     Status
	// Reason for skipping or failing (nil when verified).
	Err error
}

// Verify builds and checks every given construction, running up to
// parallelism constructions at once.  Results are returned in the same order
// as the given parameters.  Constructions are independent of each other, hence
// a failure in one does not prevent others from being verified.  An error is
// returned only if the context is cancelled.
func Verify(ctx context.Context, params []paley.Parameters, parallelism uint) ([]Result, error) {
	var (
		results = make([]Result, len(params))
		group   errgroup.Group
		stats   = util.NewPerfStats()
	)
	//
	group.SetLimit(int(max(parallelism, 1)))
	//
	for i, p := range params {
		if err := ctx.Err(); err != nil {
			break
		}
		//
		group.Go(func() error {
			results[i] = verify(p)
			return nil
		})
	}
	//
	// Jobs never return errors
	_ = group.Wait()
	//
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	//
	stats.Log(fmt.Sprintf("Verifying %d constructions", len(params)))
	//
	return results, nil
}

// Summarise counts results by status.
func Summarise(results []Result) map[Status]uint {
	counts := make(map[Status]uint)
	//
	for _, r := range results {
		counts[r.Status]++
	}
	//
	return counts
}

func verify(p paley.Parameters) (result Result) {
	result.Parameters = p
	// Construction defects are reported as failures, rather than crashing
	// the whole sweep.
	defer func() {
		if r := recover(); r != nil {
			var err *paley.InvariantError
			//
			if e, ok := r.(error); ok && errors.As(e, &err) {
				result.Status, result.Err = Failed, err
				log.Errorf("%v", err)
			} else {
				panic(r)
			}
		}
	}()
	//
	m, err := p.Build()
	//
	switch {
	case err != nil:
		result.Status, result.Err = Skipped, err
		log.Debugf("skipping %s: %v", p, err)
	case !m.IsHadamard():
		result.Status, result.Err = Failed, fmt.Errorf("%s is not Hadamard", p)
	default:
		result.Status = Verified
		log.Debugf("verified %s (order %d)", p, m.Order())
	}
	//
	return result
}
