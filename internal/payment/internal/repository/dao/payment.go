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

package dao

import (
	"context"
	"time"

	"github.com/ego-component/egorm"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

var (
	ErrRecordNotFound = gorm.ErrRecordNotFound
	// ErrConcurrentUpdate 并发修改冲突, 通常是重复回调
	ErrConcurrentUpdate = errors.New("支付记录并发修改冲突")
)

type PaymentDAO interface {
	Insert(ctx context.Context, pmt Payment) (int64, error)
	FindBySN(ctx context.Context, sn string) (Payment, error)
	FindByOrderSN(ctx context.Context, orderSN string) (Payment, error)
	FindByIntentSN(ctx context.Context, intentSN string) (Payment, error)
	// MarkPaid 只会把Unpaid/Processing翻转到终态, 重复回调不生效
	MarkPaid(ctx context.Context, intentSN string, status uint8, paidAt int64) error
	// AddRefund 原子累加退款金额, 超出可退余额时不生效
	AddRefund(ctx context.Context, sn string, amount int64, refunded uint8) error
	FindProcessing(ctx context.Context, offset, limit int, ctimeBefore int64) ([]Payment, int64, error)
	List(ctx context.Context, offset, limit int) ([]Payment, int64, error)
}

type PaymentGORMDAO struct {
	db *egorm.Component
}

func NewPaymentGORMDAO(db *egorm.Component) PaymentDAO {
	return &PaymentGORMDAO{db: db}
}

func (d *PaymentGORMDAO) Insert(ctx context.Context, pmt Payment) (int64, error) {
	now := time.Now().UnixMilli()
	pmt.Ctime, pmt.Utime = now, now
	err := d.db.WithContext(ctx).Create(&pmt).Error
	return pmt.Id, err
}

func (d *PaymentGORMDAO) FindBySN(ctx context.Context, sn string) (Payment, error) {
	var res Payment
	err := d.db.WithContext(ctx).Where("sn = ?", sn).First(&res).Error
	return res, err
}

func (d *PaymentGORMDAO) FindByOrderSN(ctx context.Context, orderSN string) (Payment, error) {
	var res Payment
	err := d.db.WithContext(ctx).Where("order_sn = ?", orderSN).First(&res).Error
	return res, err
}

func (d *PaymentGORMDAO) FindByIntentSN(ctx context.Context, intentSN string) (Payment, error) {
	var res Payment
	err := d.db.WithContext(ctx).Where("intent_sn = ?", intentSN).First(&res).Error
	return res, err
}

func (d *PaymentGORMDAO) MarkPaid(ctx context.Context, intentSN string, status uint8, paidAt int64) error {
	res := d.db.WithContext(ctx).Model(&Payment{}).
		Where("intent_sn = ? AND status IN ?", intentSN, []uint8{1, 2}).
		Updates(map[string]any{
			"status":  status,
			"paid_at": paidAt,
			"utime":   time.Now().UnixMilli(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return errors.Wrapf(ErrConcurrentUpdate, "intent_sn: %s", intentSN)
	}
	return nil
}

func (d *PaymentGORMDAO) AddRefund(ctx context.Context, sn string, amount int64, refunded uint8) error {
	// MySQL按SET出现顺序求值, gorm对map键排序,
	// refunded_amount 先赋值, 下面的CASE读到的已经是累加后的新值
	res := d.db.WithContext(ctx).Model(&Payment{}).
		Where("sn = ? AND refunded_amount + ? <= total_amount", sn, amount).
		Updates(map[string]any{
			"refunded_amount": gorm.Expr("refunded_amount + ?", amount),
			"status": gorm.Expr("CASE WHEN refunded_amount >= total_amount THEN ? ELSE status END",
				refunded),
			"utime": time.Now().UnixMilli(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return errors.Wrapf(ErrConcurrentUpdate, "sn: %s", sn)
	}
	return nil
}

func (d *PaymentGORMDAO) FindProcessing(ctx context.Context, offset, limit int, ctimeBefore int64) ([]Payment, int64, error) {
	var (
		res   []Payment
		total int64
	)
	query := d.db.WithContext(ctx).Model(&Payment{}).
		Where("status IN ? AND ctime < ?", []uint8{1, 2}, ctimeBefore)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := query.Order("id ASC").Offset(offset).Limit(limit).Find(&res).Error
	return res, total, err
}

func (d *PaymentGORMDAO) List(ctx context.Context, offset, limit int) ([]Payment, int64, error) {
	var (
		res   []Payment
		total int64
	)
	if err := d.db.WithContext(ctx).Model(&Payment{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := d.db.WithContext(ctx).Order("id DESC").Offset(offset).Limit(limit).Find(&res).Error
	return res, total, err
}

type Payment struct {
	Id             int64  `gorm:"primaryKey,autoIncrement;comment:支付自增ID"`
	SN             string `gorm:"column:sn;type:varchar(255);not null;uniqueIndex:uniq_payment_sn;comment:支付SN"`
	OrderSN        string `gorm:"column:order_sn;type:varchar(255);not null;uniqueIndex:uniq_payment_order_sn;comment:订单SN"`
	IntentSN       string `gorm:"column:intent_sn;type:varchar(255);not null;uniqueIndex:uniq_payment_intent_sn;comment:支付意图SN, 微信out-trade-no"`
	TotalAmount    int64  `gorm:"not null;comment:应付金额, 单位为分"`
	RefundedAmount int64  `gorm:"not null;default:0;comment:已退金额, 单位为分"`
	PaidAt         int64  `gorm:"comment:支付成功时间, 毫秒"`
	Status         uint8  `gorm:"type:tinyint unsigned;not null;default:1;index:idx_payment_status;comment:支付状态"`
	Ctime          int64
	Utime          int64
}

func (Payment) TableName() string {
	return "payments"
}
