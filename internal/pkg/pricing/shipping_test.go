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

package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShippingFee(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		name             string
		subtotal         int64
		requiresShipping bool
		want             int64
	}{
		{
			name:             "无需配送",
			subtotal:         5000,
			requiresShipping: false,
			want:             0,
		},
		{
			name:             "低于免邮门槛收统一运费",
			subtotal:         5000,
			requiresShipping: true,
			want:             FlatShippingFee,
		},
		{
			name:             "高于免邮门槛",
			subtotal:         12000,
			requiresShipping: true,
			want:             0,
		},
		{
			name:             "恰好达到免邮门槛",
			subtotal:         FreeShippingThreshold,
			requiresShipping: true,
			want:             0,
		},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, ShippingFee(tc.subtotal, tc.requiresShipping))
		})
	}
}
