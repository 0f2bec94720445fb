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

	"github.com/consensys/go-hadamard/pkg/paley"
	"github.com/consensys/go-hadamard/pkg/render"
	"github.com/consensys/go-hadamard/pkg/util/termio"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var buildCmd = &cobra.Command{
	Use:   "build [flags]",
	Short: "build a Hadamard matrix using a Paley construction.",
	Long: `Build a Hadamard matrix using Paley's construction (type I or II) over
	the finite field GF(p^k), and print it.  Type I requires p^k ≡ 3 (mod 4) and
	gives order p^k+1, whilst type II requires p^k ≡ 1 (mod 4) and gives order
	2(p^k+1).`,
	Run: func(cmd *cobra.Command, args []string) {
		var cfg buildConfig
		//
		if len(args) != 0 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}
		//
		configureLogging(cmd)
		//
		kind, err := paley.ParseKind(GetString(cmd, "type"))
		if err != nil {
			fmt.Println(err)
			os.Exit(2)
		}
		//
		cfg.params = paley.Parameters{Kind: kind, P: GetUint(cmd, "prime"), K: GetUint(cmd, "power")}
		cfg.format = GetString(cmd, "format")
		//
		if err := buildMatrix(cfg); err != nil {
			fail(err)
		}
	},
}

// buildConfig gathers the options for the build command.
type buildConfig struct {
	params paley.Parameters
	// Requested output format, or empty to select one based on the terminal.
	format string
}

func buildMatrix(cfg buildConfig) error {
	var format render.Format
	//
	m, err := cfg.params.Build()
	if err != nil {
		return err
	}
	//
	if cfg.format != "" {
		if format, err = render.ParseFormat(cfg.format); err != nil {
			return err
		}
	} else {
		width, ok := termio.Width(os.Stdout)
		format = defaultFormat(m.Order(), width, ok)
	}
	//
	log.Debugf("printing %s (order %d) as %s", cfg.params, m.Order(), format)
	//
	return render.Matrix(os.Stdout, m, format)
}

// Select signs when printing to a terminal too narrow for the text format.
func defaultFormat(order uint, width uint, terminal bool) render.Format {
	if terminal && width < render.FormatText.Width(order) {
		return render.FormatSigns
	}
	//
	return render.FormatText
}

func init() {
	rootCmd.AddCommand(buildCmd)
	buildCmd.Flags().StringP("type", "t", "I", "construction type (I or II)")
	buildCmd.Flags().UintP("prime", "p", 3, "characteristic p of the field")
	buildCmd.Flags().UintP("power", "k", 1, "exponent k of the field")
	buildCmd.Flags().String("format", "", "output format (text, signs or tex)")
}
