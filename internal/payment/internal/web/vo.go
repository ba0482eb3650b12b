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

import "github.com/camellia-mall/camellia/internal/payment/internal/domain"

type CheckoutResp struct {
	IntentSN string `json:"intentSn"`
	// CodeURL 微信收款二维码
	CodeURL string `json:"codeUrl"`
	Amount  int64  `json:"amount"`
}

type OrderSNReq struct {
	OrderSN string `json:"orderSn"`
}

type Payment struct {
	SN             string `json:"sn"`
	OrderSN        string `json:"orderSn"`
	TotalAmount    int64  `json:"totalAmount"`
	RefundedAmount int64  `json:"refundedAmount"`
	PaidAt         int64  `json:"paidAt"`
	Status         uint8  `json:"status"`
}

func newPayment(pmt domain.Payment) Payment {
	return Payment{
		SN:             pmt.SN,
		OrderSN:        pmt.OrderSN,
		TotalAmount:    pmt.TotalAmount,
		RefundedAmount: pmt.RefundedAmount,
		PaidAt:         pmt.PaidAt,
		Status:         pmt.Status.ToUint8(),
	}
}

type ListReq struct {
	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

type ListPaymentsResp struct {
	Total    int64     `json:"total"`
	Payments []Payment `json:"payments"`
}

type RefundReq struct {
	PaymentSN string `json:"paymentSn"`
	Amount    int64  `json:"amount"`
}
