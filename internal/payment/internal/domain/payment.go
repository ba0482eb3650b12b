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

type PaymentStatus uint8

func (s PaymentStatus) ToUint8() uint8 {
	return uint8(s)
}

const (
	PaymentStatusUnpaid      PaymentStatus = 1
	PaymentStatusProcessing  PaymentStatus = 2
	PaymentStatusPaidSuccess PaymentStatus = 3
	PaymentStatusPaidFailed  PaymentStatus = 4
	// PaymentStatusRefunded 已全额退款
	PaymentStatusRefunded PaymentStatus = 5
	// PaymentStatusTimeoutClosed 超时未支付, 由对账任务关闭
	PaymentStatusTimeoutClosed PaymentStatus = 6
)

// Payment 支付主记录, 金额单位为分
type Payment struct {
	ID      int64
	SN      string
	OrderSN string
	// IntentSN 支付意图SN, 即微信的out-trade-no
	IntentSN    string
	TotalAmount int64
	// RefundedAmount 只增不减, 等于TotalAmount时状态翻转为Refunded
	RefundedAmount int64
	PaidAt         int64
	Status         PaymentStatus
	Ctime          int64
	Utime          int64
}

// Refundable 只有支付成功且还有剩余金额的记录可以继续退,
// 部分退款不翻转状态, 全额退完翻转为Refunded
func (p Payment) Refundable() bool {
	return p.Status == PaymentStatusPaidSuccess && p.RefundedAmount < p.TotalAmount
}

// RemainingRefundable 剩余可退金额
func (p Payment) RemainingRefundable() int64 {
	return p.TotalAmount - p.RefundedAmount
}

type IntentStatus uint8

const (
	// IntentStatusCreated 已创建未支付, 可以改金额
	IntentStatusCreated IntentStatus = 1
	// IntentStatusProcessing 用户支付中, 不可改
	IntentStatusProcessing IntentStatus = 2
	// IntentStatusCaptured 已扣款
	IntentStatusCaptured IntentStatus = 3
	// IntentStatusClosed 已关闭或已撤销
	IntentStatusClosed IntentStatus = 4
)

// Intent 支付意图, 在提供方侧对应一笔预支付单
type Intent struct {
	SN     string
	Amount int64
	Status IntentStatus
	// CodeURL 微信Native支付的收款二维码链接
	CodeURL string
}

// Usable 还能直接用于收款
func (i Intent) Usable() bool {
	return i.Status == IntentStatusCreated
}
