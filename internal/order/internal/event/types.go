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

const (
	OrderEventName   = "order_events"
	PaymentEventName = "payment_events"
)

// OrderEvent 每次状态迁移发一条, 通知模块消费后做扇出
type OrderEvent struct {
	OrderSN    string `json:"orderSn"`
	BuyerID    int64  `json:"buyerId"`
	BuyerEmail string `json:"buyerEmail"`
	FromStatus uint8  `json:"fromStatus"`
	ToStatus   uint8  `json:"toStatus"`
}

// PaymentEvent 与支付模块的事件定义保持一致
type PaymentEvent struct {
	OrderSN   string `json:"orderSn"`
	PaymentSN string `json:"paymentSn"`
	Status    uint8  `json:"status"`
}

// 支付事件里的终态取值, 与支付模块的状态编号一致
const (
	PaymentEventStatusPaidSuccess   uint8 = 3
	PaymentEventStatusPaidFailed    uint8 = 4
	PaymentEventStatusTimeoutClosed uint8 = 6
)
