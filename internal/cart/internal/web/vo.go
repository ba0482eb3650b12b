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

package web

import (
	"github.com/camellia-mall/camellia/internal/cart/internal/domain"
	"github.com/ecodeclub/ekit/slice"
)

type AddItemReq struct {
	SKUSN    string `json:"skuSn"`
	Quantity int64  `json:"quantity"`
}

type SetQuantityReq struct {
	ItemID   int64 `json:"itemId"`
	Quantity int64 `json:"quantity"`
}

type RemoveItemReq struct {
	ItemID int64 `json:"itemId"`
}

type Cart struct {
	ID       int64      `json:"id"`
	Items    []CartItem `json:"items,omitempty"`
	Subtotal int64      `json:"subtotal"`
	Shipping int64      `json:"shipping"`
	Total    int64      `json:"total"`
}

type CartItem struct {
	ID       int64  `json:"id"`
	SKUSN    string `json:"skuSn"`
	Name     string `json:"name"`
	Price    int64  `json:"price"`
	Quantity int64  `json:"quantity"`
	Image    string `json:"image"`
	Kind     uint8  `json:"kind"`
}

func newCart(cart domain.Cart) Cart {
	subtotal := cart.Subtotal()
	shipping := cart.ShippingEstimate()
	return Cart{
		ID: cart.ID,
		Items: slice.Map(cart.Items, func(_ int, src domain.CartItem) CartItem {
			return CartItem{
				ID:       src.ID,
				SKUSN:    src.SKUSN,
				Name:     src.Name,
				Price:    src.Price,
				Quantity: src.Quantity,
				Image:    src.Image,
				Kind:     src.Kind.ToUint8(),
			}
		}),
		Subtotal: subtotal,
		Shipping: shipping,
		Total:    subtotal + shipping,
	}
}
