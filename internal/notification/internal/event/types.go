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

const OrderEventName = "order_events"

// OrderEvent 订单状态迁移事件, 状态值与订单模块一致
type OrderEvent struct {
	OrderSN    string `json:"orderSn"`
	BuyerID    int64  `json:"buyerId"`
	BuyerEmail string `json:"buyerEmail"`
	FromStatus uint8  `json:"fromStatus"`
	ToStatus   uint8  `json:"toStatus"`
}

const (
	orderStatusConfirmed       uint8 = 2
	orderStatusPaymentReceived uint8 = 3
	orderStatusProcessing      uint8 = 4
	orderStatusShipped         uint8 = 5
	orderStatusDelivered       uint8 = 6
	orderStatusCancelled       uint8 = 7
)
