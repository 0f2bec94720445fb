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
	"github.com/consensys/go-hadamard/pkg/render"
	"github.com/consensys/go-hadamard/pkg/util/math"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var catalogueCmd = &cobra.Command{
	Use:   "catalogue [flags]",
	Short: "list the orders reachable by Paley constructions.",
	Long: `List every order of Hadamard matrix reachable by a Paley construction over
	GF(p^k) for odd primes p below 200, together with the construction(s) which
	reach it.  The listing can be given as a table, as LaTeX rows or as a list of
	check calls.`,
	Run: func(cmd *cobra.Command, args []string) {
		var cfg catalogueConfig
		//
		if len(args) != 0 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}
		//
		configureLogging(cmd)
		//
		cfg.sweep = catalogue.Config{
			Primes:   math.OddPrimesBelow200,
			MaxPower: GetUint(cmd, "max-power"),
			MaxQ:     uint64(GetUint(cmd, "max-q")),
			MaxOrder: GetUint(cmd, "max-order"),
		}
		cfg.format = GetString(cmd, "format")
		cfg.verify = GetFlag(cmd, "verify")
		cfg.parallelism = GetUint(cmd, "parallel")
		cfg.ansiEscapes = GetFlag(cmd, "ansi-escapes")
		//
		cat := catalogue.Sweep(cfg.sweep)
		log.Debugf("catalogue has %d constructions over %d orders", cat.Len(), len(cat.Orders()))
		//
		if err := printCatalogue(cat, cfg); err != nil {
			fail(err)
		}
		//
		if cfg.verify {
			results, err := catalogue.Verify(cmd.Context(), cat.All(), cfg.parallelism)
			if err != nil {
				fail(err)
			}
			//
			if reportSummary(results) {
				os.Exit(1)
			}
		}
	},
}

// catalogueConfig gathers the options for the catalogue command.
type catalogueConfig struct {
	sweep catalogue.Config
	// One of text, tex or checks.
	format string
	// Build and check every listed construction.
	verify bool
	// Number of constructions to verify at once.
	parallelism uint
	// Colour output (text format only).
	ansiEscapes bool
}

func printCatalogue(cat *catalogue.Catalogue, cfg catalogueConfig) error {
	switch cfg.format {
	case "text":
		return render.CatalogueText(os.Stdout, cat, cfg.ansiEscapes)
	case "tex":
		return render.CatalogueTex(os.Stdout, cat)
	case "checks":
		return render.CatalogueChecks(os.Stdout, cat)
	}
	//
	return fmt.Errorf("unknown catalogue format %q", cfg.format)
}

func init() {
	defaults := catalogue.DefaultConfig()
	//
	rootCmd.AddCommand(catalogueCmd)
	catalogueCmd.Flags().Uint("max-order", defaults.MaxOrder, "largest order to list")
	catalogueCmd.Flags().Uint("max-power", defaults.MaxPower, "largest exponent k to consider")
	catalogueCmd.Flags().Uint("max-q", uint(defaults.MaxQ), "largest field order p^k to consider")
	catalogueCmd.Flags().String("format", "text", "output format (text, tex or checks)")
	catalogueCmd.Flags().Bool("verify", false, "build and check every listed construction")
	catalogueCmd.Flags().Uint("parallel", uint(runtime.NumCPU()), "number of constructions to check at once")
}
