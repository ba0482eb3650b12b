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

type Status uint8

func (s Status) ToUint8() uint8 {
	return uint8(s)
}

const (
	StatusPending         Status = 1
	StatusConfirmed       Status = 2
	StatusPaymentReceived Status = 3
	StatusProcessing      Status = 4
	StatusShipped         Status = 5
	StatusDelivered       Status = 6
	StatusCancelled       Status = 7
)

// transitions 状态机唯一的合法迁移表.
// 纯数字商品订单创建后直接送达, 所以Pending可以直达Delivered;
// 支付回调可能先于人工确认到达, 所以Pending也可以直达PaymentReceived
var transitions = map[Status][]Status{
	StatusPending:         {StatusConfirmed, StatusPaymentReceived, StatusDelivered, StatusCancelled},
	StatusConfirmed:       {StatusPaymentReceived, StatusCancelled},
	StatusPaymentReceived: {StatusProcessing},
	StatusProcessing:      {StatusShipped},
	StatusShipped:         {StatusDelivered},
}

// CanTransition 只回答能不能走, 副作用由调用方编排
func CanTransition(from, to Status) bool {
	for _, t := range transitions[from] {
		if t == to {
			return true
		}
	}
	return false
}

type PaymentStatus uint8

func (s PaymentStatus) ToUint8() uint8 {
	return uint8(s)
}

const (
	PaymentStatusPending   PaymentStatus = 1
	PaymentStatusSucceeded PaymentStatus = 2
	PaymentStatusFailed    PaymentStatus = 3
	PaymentStatusRefunded  PaymentStatus = 4
)

type Kind uint8

const (
	KindPhysical Kind = 1
	KindDigital  Kind = 2
)

// Order 创建后即为不可变快照, 只有状态类字段会继续变
type Order struct {
	ID         int64
	SN         string
	BuyerID    int64
	BuyerEmail string
	Items      []OrderItem
	// ShippingAddress 快照, 与用户地址簿无关
	ShippingAddress Address
	// BillingAddress 可选, 为nil表示与收货地址一致
	BillingAddress *Address
	Subtotal       int64
	ShippingFee    int64
	// TaxAmount 目前恒为0
	TaxAmount        int64
	TotalAmount      int64
	Status           Status
	PaymentStatus    PaymentStatus
	ContainsDigital  bool
	RequiresShipping bool
	PaymentIntentSN  string
	TrackingNumber   string
	Ctime            int64
	Utime            int64
}

// OrderItem 下单时刻的商品快照, 后续商品编辑不影响历史订单
type OrderItem struct {
	ID          int64
	OrderID     int64
	SPUID       int64
	SKUID       int64
	SKUSN       string
	Name        string
	Description string
	Image       string
	// Price 下单时刻单价, 单位为分
	Price    int64
	Quantity int64
	Kind     Kind
	// FileURL 数字商品的文件快照
	FileURL string
}

type Address struct {
	ID         int64
	Name       string
	Line1      string
	Line2      string
	City       string
	Region     string
	PostalCode string
	Country    string
	Phone      string
}

// StatusHistory 追加式流水, 一次迁移一行
type StatusHistory struct {
	ID      int64
	OrderID int64
	From    Status
	To      Status
	Actor   string
	Note    string
	Ctime   int64
}
