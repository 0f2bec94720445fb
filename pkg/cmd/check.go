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
	"runtime"

	"github.com/consensys/go-hadamard/pkg/catalogue"
	"github.com/consensys/go-hadamard/pkg/paley"
	"github.com/consensys/go-hadamard/pkg/util/termio"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check [flags]",
	Short: "check Paley constructions produce Hadamard matrices.",
	Long: `Check a fixed set of reference constructions produce Hadamard matrices
	of the expected order.  Optionally, every construction in the catalogue up
	to a given order can be checked as well.`,
	Run: func(cmd *cobra.Command, args []string) {
		var cfg checkConfig
		//
		if len(args) != 0 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}
		//
		configureLogging(cmd)
		//
		cfg.all = GetFlag(cmd, "all")
		cfg.maxOrder = GetUint(cmd, "max-order")
		cfg.parallelism = GetUint(cmd, "parallel")
		cfg.ansiEscapes = GetFlag(cmd, "ansi-escapes")
		//
		results, err := runChecks(cmd, cfg)
		if err != nil {
			fail(err)
		}
		//
		if err := printResults(results, cfg.ansiEscapes); err != nil {
			fail(err)
		}
		//
		if reportSummary(results) {
			os.Exit(1)
		}
	},
}

// checkConfig gathers the options for the check command.
type checkConfig struct {
	// Include every catalogue entry as well as the reference cases.
	all bool
	// Largest catalogue order to include.
	maxOrder uint
	// Number of constructions to verify at once.
	parallelism uint
	// Colour output.
	ansiEscapes bool
}

// referenceCase is a construction together with the order it is known to
// produce.
type referenceCase struct {
	params paley.Parameters
	order  uint
}

var referenceCases = []referenceCase{
	{paley.Parameters{Kind: paley.TypeI, P: 3, K: 1}, 4},
	{paley.Parameters{Kind: paley.TypeI, P: 7, K: 1}, 8},
	{paley.Parameters{Kind: paley.TypeI, P: 11, K: 1}, 12},
	{paley.Parameters{Kind: paley.TypeI, P: 19, K: 1}, 20},
	{paley.Parameters{Kind: paley.TypeI, P: 23, K: 1}, 24},
	{paley.Parameters{Kind: paley.TypeII, P: 13, K: 1}, 28},
	{paley.Parameters{Kind: paley.TypeI, P: 31, K: 1}, 32},
	{paley.Parameters{Kind: paley.TypeII, P: 17, K: 1}, 36},
}

func runChecks(cmd *cobra.Command, cfg checkConfig) ([]catalogue.Result, error) {
	var params []paley.Parameters
	//
	for _, ref := range referenceCases {
		if ref.params.Order() != ref.order {
			return nil, fmt.Errorf("%s has order %d, expected %d", ref.params, ref.params.Order(), ref.order)
		}
		//
		params = append(params, ref.params)
	}
	//
	if cfg.all {
		sweep := catalogue.DefaultConfig()
		sweep.MaxOrder = cfg.maxOrder
		params = append(params, catalogue.Sweep(sweep).All()...)
	}
	//
	log.Debugf("checking %d constructions (parallelism %d)", len(params), cfg.parallelism)
	//
	return catalogue.Verify(cmd.Context(), params, cfg.parallelism)
}

func printResults(results []catalogue.Result, ansi bool) error {
	table := termio.NewTablePrinter(3, uint(len(results)))
	table.AnsiEscapes(ansi)
	//
	for i, r := range results {
		row := uint(i)
		table.SetRow(row, r.Parameters.String(), fmt.Sprintf("%d", r.Parameters.Order()), r.Status.String())
		table.SetEscape(2, row, statusEscape(r.Status))
	}
	//
	return table.Print(os.Stdout)
}

// reportSummary logs the number of results with each status, and reports whether
// any failed.
func reportSummary(results []catalogue.Result) bool {
	counts := catalogue.Summarise(results)
	//
	log.Infof("%d verified, %d skipped, %d failed", counts[catalogue.Verified], counts[catalogue.Skipped],
		counts[catalogue.Failed])
	//
	for _, r := range results {
		if r.Err != nil && r.Status == catalogue.Skipped {
			log.Debugf("%s: %v", r.Parameters, r.Err)
		}
	}
	//
	return counts[catalogue.Failed] > 0
}

func statusEscape(status catalogue.Status) termio.AnsiEscape {
	switch status {
	case catalogue.Verified:
		return termio.NewAnsiEscape().FgColour(termio.TERM_GREEN)
	case catalogue.Skipped:
		return termio.NewAnsiEscape().FgColour(termio.TERM_YELLOW)
	default:
		return termio.NewAnsiEscape().FgColour(termio.TERM_RED)
	}
}

func init() {
	rootCmd.AddCommand(checkCmd)
	checkCmd.Flags().Bool("all", false, "also check every catalogue entry")
	checkCmd.Flags().Uint("max-order", 200, "largest catalogue order to check (with --all)")
	checkCmd.Flags().Uint("parallel", uint(runtime.NumCPU()), "number of constructions to check at once")
}
