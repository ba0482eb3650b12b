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

package event

const PaymentEventName = "payment_events"

// PaymentEvent 支付终态通知, 订单模块消费后驱动状态机
type PaymentEvent struct {
	OrderSN   string `json:"orderSn"`
	PaymentSN string `json:"paymentSn"`
	// Status 与domain.PaymentStatus一致
	Status uint8 `json:"status"`
}
