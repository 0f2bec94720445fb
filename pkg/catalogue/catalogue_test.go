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
	"testing"

	"github.com/consensys/go-hadamard/pkg/paley"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Catalogue_Orders(t *testing.T) {
	cat := Sweep(DefaultConfig())
	orders := cat.Orders()
	//
	require.NotEmpty(t, orders)
	assert.Equal(t, []uint{4, 8, 12, 20, 24, 28, 32, 36, 44, 48, 52, 60}, orders[:12])
	assert.Equal(t, uint(200), orders[len(orders)-1])
	// Every order is a multiple of 4
	for _, order := range orders {
		assert.Zero(t, order%4, "order %d", order)
	}
}

func Test_Catalogue_Entries(t *testing.T) {
	cat := Sweep(DefaultConfig())
	//
	assert.Equal(t, []paley.Parameters{{Kind: paley.TypeI, P: 3, K: 1}}, cat.Entries(4))
	assert.Equal(t, []paley.Parameters{
		{Kind: paley.TypeI, P: 11, K: 1},
		{Kind: paley.TypeII, P: 5, K: 1},
	}, cat.Entries(12))
	assert.Equal(t, []paley.Parameters{
		{Kind: paley.TypeI, P: 19, K: 1},
		{Kind: paley.TypeII, P: 3, K: 2},
	}, cat.Entries(20))
	assert.Equal(t, []paley.Parameters{
		{Kind: paley.TypeI, P: 163, K: 1},
		{Kind: paley.TypeII, P: 3, K: 4},
	}, cat.Entries(164))
	assert.Empty(t, cat.Entries(16))
}

func Test_Catalogue_Consistent(t *testing.T) {
	cat := Sweep(DefaultConfig())
	all := cat.All()
	//
	assert.Equal(t, cat.Len(), uint(len(all)))
	//
	for _, p := range all {
		assert.NoError(t, p.Validate(), p.String())
		assert.LessOrEqual(t, p.Order(), uint(200))
	}
}

func Test_Catalogue_Verify(t *testing.T) {
	cat := Sweep(DefaultConfig())
	//
	results, err := Verify(context.Background(), cat.All(), 4)
	require.NoError(t, err)
	require.Len(t, results, int(cat.Len()))
	//
	for i, r := range results {
		assert.Equal(t, cat.All()[i], r.Parameters)
		assert.Equal(t, Verified, r.Status, "%s: %v", r.Parameters, r.Err)
	}
}

func Test_Catalogue_Skipped(t *testing.T) {
	cfg := Config{Primes: []uint{3}, MaxPower: 6, MaxQ: 1000, MaxOrder: 2000}
	cat := Sweep(cfg)
	//
	assert.Equal(t, []uint{4, 20, 28, 164, 244, 1460}, cat.Orders())
	//
	results, err := Verify(context.Background(), cat.All(), 2)
	require.NoError(t, err)
	//
	counts := Summarise(results)
	assert.Equal(t, uint(5), counts[Verified])
	assert.Equal(t, uint(1), counts[Skipped])
	assert.Equal(t, uint(0), counts[Failed])
	assert.ErrorIs(t, results[5].Err, paley.ErrExponent)
}

func Test_Catalogue_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	//
	_, err := Verify(ctx, Sweep(DefaultConfig()).All(), 1)
	assert.ErrorIs(t, err, context.Canceled)
}

func Test_Status_String(t *testing.T) {
	assert.Equal(t, "verified", Verified.String())
	assert.Equal(t, "skipped", Skipped.String())
	assert.Equal(t, "failed", Failed.String())
}
