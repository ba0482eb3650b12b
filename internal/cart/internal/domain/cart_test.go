// Copyright 2024 camellia-mall
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package domain

import (
	"testing"

	"github.com/camellia-mall/camellia/internal/pkg/pricing"
	"github.com/stretchr/testify/assert"
)

func TestCart_Totals(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		name         string
		cart         Cart
		wantSubtotal int64
		wantShipping int64
	}{
		{
			name:         "空车",
			cart:         Cart{},
			wantSubtotal: 0,
			wantShipping: 0,
		},
		{
			name: "实物加虚拟混合",
			cart: Cart{Items: []CartItem{
				{Price: 6000, Quantity: 1, Kind: KindPhysical},
				{Price: 1000, Quantity: 1, Kind: KindDigital},
			}},
			wantSubtotal: 7000,
			wantShipping: pricing.FlatShippingFee,
		},
		{
			name: "纯虚拟不收运费",
			cart: Cart{Items: []CartItem{
				{Price: 1000, Quantity: 1, Kind: KindDigital},
			}},
			wantSubtotal: 1000,
			wantShipping: 0,
		},
		{
			name: "达到免邮门槛",
			cart: Cart{Items: []CartItem{
				{Price: 6000, Quantity: 2, Kind: KindPhysical},
			}},
			wantSubtotal: 12000,
			wantShipping: 0,
		},
		{
			name: "数量参与小计",
			cart: Cart{Items: []CartItem{
				{Price: 2500, Quantity: 2, Kind: KindPhysical},
			}},
			wantSubtotal: 5000,
			wantShipping: pricing.FlatShippingFee,
		},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.wantSubtotal, tc.cart.Subtotal())
			assert.Equal(t, tc.wantShipping, tc.cart.ShippingEstimate())
		})
	}
}

func TestCart_Classify(t *testing.T) {
	t.Parallel()
	mixed := Cart{Items: []CartItem{
		{Kind: KindPhysical},
		{Kind: KindDigital},
	}}
	assert.True(t, mixed.ContainsPhysical())
	assert.True(t, mixed.ContainsDigital())

	digitalOnly := Cart{Items: []CartItem{{Kind: KindDigital}}}
	assert.False(t, digitalOnly.ContainsPhysical())
	assert.True(t, digitalOnly.ContainsDigital())
}
