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

// Package pricing 金额相关的共享策略, 所有金额单位为分
package pricing

const (
	// FlatShippingFee 实物订单统一运费
	FlatShippingFee int64 = 500
	// FreeShippingThreshold 小计达到该值免运费
	FreeShippingThreshold int64 = 10000
)

// ShippingFee 运费计算: 无需配送为0, 小计达到免邮门槛为0, 否则收统一运费
func ShippingFee(subtotal int64, requiresShipping bool) int64 {
	if !requiresShipping {
		return 0
	}
	if subtotal >= FreeShippingThreshold {
		return 0
	}
	return FlatShippingFee
}
