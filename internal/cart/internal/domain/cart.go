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
	"github.com/camellia-mall/camellia/internal/pkg/pricing"
)

type Kind uint8

func (k Kind) ToUint8() uint8 {
	return uint8(k)
}

const (
	KindPhysical Kind = 1
	KindDigital  Kind = 2
)

// Cart 一个用户一个购物车, 首次加购时创建
type Cart struct {
	ID  int64
	UID int64
	// 结账时创建的支付意图SN, 重复结账复用
	PaymentIntentSN string
	Items           []CartItem
}

// CartItem 加购时冻结价格快照, 结账价格以此为准
type CartItem struct {
	ID       int64
	CartID   int64
	SPUID    int64
	SKUID    int64
	SKUSN    string
	Name     string
	Price    int64
	Quantity int64
	Image    string
	Kind     Kind
}

func (c Cart) Subtotal() int64 {
	var total int64
	for _, it := range c.Items {
		total += it.Price * it.Quantity
	}
	return total
}

func (c Cart) ContainsPhysical() bool {
	for _, it := range c.Items {
		if it.Kind == KindPhysical {
			return true
		}
	}
	return false
}

func (c Cart) ContainsDigital() bool {
	for _, it := range c.Items {
		if it.Kind == KindDigital {
			return true
		}
	}
	return false
}

// ShippingEstimate 结账前展示用, 订单侧会以同一策略重新计算
func (c Cart) ShippingEstimate() int64 {
	return pricing.ShippingFee(c.Subtotal(), c.ContainsPhysical())
}
