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
	"github.com/camellia-mall/camellia/internal/order/internal/domain"
	"github.com/ecodeclub/ekit/slice"
)

type Address struct {
	Name       string `json:"name"`
	Line1      string `json:"line1"`
	Line2      string `json:"line2,omitempty"`
	City       string `json:"city"`
	Region     string `json:"region,omitempty"`
	PostalCode string `json:"postalCode,omitempty"`
	Country    string `json:"country"`
	Phone      string `json:"phone,omitempty"`
}

func (a Address) toDomain() domain.Address {
	return domain.Address{
		Name:       a.Name,
		Line1:      a.Line1,
		Line2:      a.Line2,
		City:       a.City,
		Region:     a.Region,
		PostalCode: a.PostalCode,
		Country:    a.Country,
		Phone:      a.Phone,
	}
}

func newAddress(a domain.Address) Address {
	return Address{
		Name:       a.Name,
		Line1:      a.Line1,
		Line2:      a.Line2,
		City:       a.City,
		Region:     a.Region,
		PostalCode: a.PostalCode,
		Country:    a.Country,
		Phone:      a.Phone,
	}
}

type CreateOrderReq struct {
	BuyerEmail      string   `json:"buyerEmail"`
	ShippingAddress Address  `json:"shippingAddress"`
	BillingAddress  *Address `json:"billingAddress,omitempty"`
}

type Order struct {
	SN               string      `json:"sn"`
	BuyerEmail       string      `json:"buyerEmail,omitempty"`
	Items            []OrderItem `json:"items,omitempty"`
	ShippingAddress  *Address    `json:"shippingAddress,omitempty"`
	BillingAddress   *Address    `json:"billingAddress,omitempty"`
	Subtotal         int64       `json:"subtotal"`
	ShippingFee      int64       `json:"shippingFee"`
	TaxAmount        int64       `json:"taxAmount"`
	TotalAmount      int64       `json:"totalAmount"`
	Status           uint8       `json:"status"`
	PaymentStatus    uint8       `json:"paymentStatus"`
	ContainsDigital  bool        `json:"containsDigital"`
	RequiresShipping bool        `json:"requiresShipping"`
	TrackingNumber   string      `json:"trackingNumber,omitempty"`
	Ctime            int64       `json:"ctime"`
}

type OrderItem struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Image       string `json:"image,omitempty"`
	SKUSN       string `json:"skuSn"`
	Price       int64  `json:"price"`
	Quantity    int64  `json:"quantity"`
	Kind        uint8  `json:"kind"`
}

func newOrder(o domain.Order) Order {
	res := Order{
		SN:         o.SN,
		BuyerEmail: o.BuyerEmail,
		Items: slice.Map(o.Items, func(_ int, src domain.OrderItem) OrderItem {
			return OrderItem{
				Name:        src.Name,
				Description: src.Description,
				Image:       src.Image,
				SKUSN:       src.SKUSN,
				Price:       src.Price,
				Quantity:    src.Quantity,
				Kind:        uint8(src.Kind),
			}
		}),
		Subtotal:         o.Subtotal,
		ShippingFee:      o.ShippingFee,
		TaxAmount:        o.TaxAmount,
		TotalAmount:      o.TotalAmount,
		Status:           o.Status.ToUint8(),
		PaymentStatus:    o.PaymentStatus.ToUint8(),
		ContainsDigital:  o.ContainsDigital,
		RequiresShipping: o.RequiresShipping,
		TrackingNumber:   o.TrackingNumber,
		Ctime:            o.Ctime,
	}
	if o.ShippingAddress.Name != "" {
		addr := newAddress(o.ShippingAddress)
		res.ShippingAddress = &addr
	}
	if o.BillingAddress != nil {
		addr := newAddress(*o.BillingAddress)
		res.BillingAddress = &addr
	}
	return res
}

type StatusHistory struct {
	From  uint8  `json:"from"`
	To    uint8  `json:"to"`
	Actor string `json:"actor"`
	Note  string `json:"note,omitempty"`
	Ctime int64  `json:"ctime"`
}

type SNReq struct {
	SN string `json:"sn"`
}

type CancelReq struct {
	ID int64 `json:"id"`
}

type ListReq struct {
	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

type ListOrdersResp struct {
	Total  int64   `json:"total"`
	Orders []Order `json:"orders"`
}

type IDReq struct {
	ID int64 `json:"id"`
}

type TransitionReq struct {
	ID     int64  `json:"id"`
	Target uint8  `json:"target"`
	Note   string `json:"note"`
}

type TrackingReq struct {
	ID             int64  `json:"id"`
	TrackingNumber string `json:"trackingNumber"`
}
