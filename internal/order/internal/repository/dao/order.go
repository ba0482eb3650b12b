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
	"github.com/go-sql-driver/mysql"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

var (
	ErrRecordNotFound = gorm.ErrRecordNotFound
	// ErrDuplicateSN 订单SN撞了唯一索引, 调用方换一个SN重试
	ErrDuplicateSN = errors.New("订单SN冲突")
	// ErrConcurrentStatus 状态被并发修改, 守护更新没打中任何行
	ErrConcurrentStatus = errors.New("订单状态并发修改冲突")
)

const uniqueIndexErrNo uint16 = 1062

type OrderDAO interface {
	CreateOrder(ctx context.Context, o Order, items []OrderItem, shipping OrderAddress, billing *OrderAddress, cb func(tx *gorm.DB) error) (int64, error)
	FindBySN(ctx context.Context, sn string) (Order, error)
	FindByID(ctx context.Context, id int64) (Order, error)
	FindItems(ctx context.Context, orderID int64) ([]OrderItem, error)
	FindAddress(ctx context.Context, id int64) (OrderAddress, error)
	ListByBuyer(ctx context.Context, offset, limit int, buyerID int64) ([]Order, int64, error)
	List(ctx context.Context, offset, limit int) ([]Order, int64, error)
	UpdateStatus(ctx context.Context, orderID int64, from, to uint8, history OrderStatusHistory) error
	UpdatePaymentStatus(ctx context.Context, orderID int64, status uint8) error
	UpdateTracking(ctx context.Context, orderID int64, tracking string) error
	FindExpiredPending(ctx context.Context, offset, limit int, ctimeBefore int64) ([]Order, int64, error)
	FindHistory(ctx context.Context, orderID int64) ([]OrderStatusHistory, error)
}

type OrderGORMDAO struct {
	db *egorm.Component
}

func NewOrderGORMDAO(db *egorm.Component) OrderDAO {
	return &OrderGORMDAO{db: db}
}

func (d *OrderGORMDAO) CreateOrder(ctx context.Context, o Order, items []OrderItem, shipping OrderAddress, billing *OrderAddress, cb func(tx *gorm.DB) error) (int64, error) {
	now := time.Now().UnixMilli()
	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// 先落地址拿到稳定ID, 再挂到订单上
		shipping.Ctime, shipping.Utime = now, now
		if err := tx.Create(&shipping).Error; err != nil {
			return err
		}
		o.ShippingAddressId = shipping.Id
		if billing != nil {
			billing.Ctime, billing.Utime = now, now
			if err := tx.Create(billing).Error; err != nil {
				return err
			}
			o.BillingAddressId = billing.Id
		}
		o.Ctime, o.Utime = now, now
		if err := tx.Create(&o).Error; err != nil {
			var me *mysql.MySQLError
			if errors.As(err, &me) && me.Number == uniqueIndexErrNo {
				return errors.Wrapf(ErrDuplicateSN, "sn: %s", o.SN)
			}
			return err
		}
		for i := range items {
			items[i].OrderId = o.Id
			items[i].Ctime, items[i].Utime = now, now
		}
		if err := tx.Create(&items).Error; err != nil {
			return err
		}
		if cb != nil {
			return cb(tx)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return o.Id, nil
}

func (d *OrderGORMDAO) FindBySN(ctx context.Context, sn string) (Order, error) {
	var res Order
	err := d.db.WithContext(ctx).Where("sn = ?", sn).First(&res).Error
	return res, err
}

func (d *OrderGORMDAO) FindByID(ctx context.Context, id int64) (Order, error) {
	var res Order
	err := d.db.WithContext(ctx).Where("id = ?", id).First(&res).Error
	return res, err
}

func (d *OrderGORMDAO) FindItems(ctx context.Context, orderID int64) ([]OrderItem, error) {
	var res []OrderItem
	err := d.db.WithContext(ctx).Where("order_id = ?", orderID).Order("id ASC").Find(&res).Error
	return res, err
}

func (d *OrderGORMDAO) FindAddress(ctx context.Context, id int64) (OrderAddress, error) {
	var res OrderAddress
	err := d.db.WithContext(ctx).Where("id = ?", id).First(&res).Error
	return res, err
}

func (d *OrderGORMDAO) ListByBuyer(ctx context.Context, offset, limit int, buyerID int64) ([]Order, int64, error) {
	var (
		res   []Order
		total int64
	)
	query := d.db.WithContext(ctx).Model(&Order{}).Where("buyer_id = ?", buyerID)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := query.Order("id DESC").Offset(offset).Limit(limit).Find(&res).Error
	return res, total, err
}

func (d *OrderGORMDAO) List(ctx context.Context, offset, limit int) ([]Order, int64, error) {
	var (
		res   []Order
		total int64
	)
	if err := d.db.WithContext(ctx).Model(&Order{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := d.db.WithContext(ctx).Order("id DESC").Offset(offset).Limit(limit).Find(&res).Error
	return res, total, err
}

// UpdateStatus 守护式更新, 状态和流水在同一事务里落库.
// from打不中说明状态已被并发修改, 返回ErrConcurrentStatus由调用方决定重试还是放弃
func (d *OrderGORMDAO) UpdateStatus(ctx context.Context, orderID int64, from, to uint8, history OrderStatusHistory) error {
	now := time.Now().UnixMilli()
	return d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&Order{}).
			Where("id = ? AND status = ?", orderID, from).
			Updates(map[string]any{
				"status": to,
				"utime":  now,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return errors.Wrapf(ErrConcurrentStatus, "order_id: %d, from: %d, to: %d", orderID, from, to)
		}
		history.OrderId = orderID
		history.Ctime = now
		return tx.Create(&history).Error
	})
}

func (d *OrderGORMDAO) UpdatePaymentStatus(ctx context.Context, orderID int64, status uint8) error {
	return d.db.WithContext(ctx).Model(&Order{}).
		Where("id = ?", orderID).
		Updates(map[string]any{
			"payment_status": status,
			"utime":          time.Now().UnixMilli(),
		}).Error
}

func (d *OrderGORMDAO) UpdateTracking(ctx context.Context, orderID int64, tracking string) error {
	return d.db.WithContext(ctx).Model(&Order{}).
		Where("id = ?", orderID).
		Updates(map[string]any{
			"tracking_number": tracking,
			"utime":           time.Now().UnixMilli(),
		}).Error
}

func (d *OrderGORMDAO) FindExpiredPending(ctx context.Context, offset, limit int, ctimeBefore int64) ([]Order, int64, error) {
	var (
		res   []Order
		total int64
	)
	query := d.db.WithContext(ctx).Model(&Order{}).
		Where("status = ? AND payment_status = ? AND ctime < ?", 1, 1, ctimeBefore)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := query.Order("id ASC").Offset(offset).Limit(limit).Find(&res).Error
	return res, total, err
}

func (d *OrderGORMDAO) FindHistory(ctx context.Context, orderID int64) ([]OrderStatusHistory, error) {
	var res []OrderStatusHistory
	err := d.db.WithContext(ctx).Where("order_id = ?", orderID).Order("id ASC").Find(&res).Error
	return res, err
}

type Order struct {
	Id                int64  `gorm:"primaryKey;autoIncrement;comment:订单自增ID"`
	SN                string `gorm:"type:varchar(255);not null;uniqueIndex:uniq_order_sn;comment:订单序列号"`
	BuyerId           int64  `gorm:"not null;index:idx_order_buyer_id;comment:购买者ID, 0表示游客"`
	BuyerEmail        string `gorm:"type:varchar(255);not null;comment:购买者邮箱"`
	PaymentIntentSN   string `gorm:"type:varchar(255);index:idx_order_intent_sn;comment:支付意图SN"`
	ShippingAddressId int64  `gorm:"not null;comment:收货地址快照ID"`
	BillingAddressId  int64  `gorm:"not null;default:0;comment:账单地址快照ID, 0表示与收货地址一致"`
	Subtotal          int64  `gorm:"not null;comment:商品小计;单位为分, 999表示9.99元"`
	ShippingFee       int64  `gorm:"not null;comment:运费;单位为分"`
	TaxAmount         int64  `gorm:"not null;default:0;comment:税费;单位为分"`
	TotalAmount       int64  `gorm:"not null;comment:应付总价;单位为分"`
	Status            uint8  `gorm:"type:tinyint unsigned;not null;default:1;comment:订单状态 1=待处理 2=已确认 3=已收款 4=处理中 5=已发货 6=已送达 7=已取消"`
	PaymentStatus     uint8  `gorm:"type:tinyint unsigned;not null;default:1;comment:支付状态 1=待支付 2=已支付 3=支付失败 4=已退款"`
	ContainsDigital   bool   `gorm:"not null;comment:是否包含数字商品"`
	RequiresShipping  bool   `gorm:"not null;comment:是否需要物流"`
	TrackingNumber    string `gorm:"type:varchar(255);comment:物流单号"`
	Ctime             int64
	Utime             int64
}

type OrderItem struct {
	Id          int64  `gorm:"primaryKey;autoIncrement;comment:订单项自增ID"`
	OrderId     int64  `gorm:"not null;index:idx_item_order_id;comment:订单自增ID"`
	SPUId       int64  `gorm:"not null;comment:SPU自增ID"`
	SKUId       int64  `gorm:"not null;index:idx_item_sku_id;comment:SKU自增ID"`
	SKUSN       string `gorm:"type:varchar(255);not null;comment:SKU序列号"`
	Name        string `gorm:"type:varchar(255);not null;comment:商品名称快照"`
	Description string `gorm:"not null;comment:商品描述快照"`
	Image       string `gorm:"type:varchar(512);comment:商品图片快照"`
	Price       int64  `gorm:"not null;comment:下单时刻单价;单位为分, 999表示9.99元"`
	Quantity    int64  `gorm:"not null;comment:购买数量"`
	Kind        uint8  `gorm:"type:tinyint unsigned;not null;default:1;comment:商品形态 1=实体 2=数字"`
	FileURL     string `gorm:"type:varchar(512);comment:数字商品文件快照"`
	Ctime       int64
	Utime       int64
}

// OrderAddress 订单侧地址快照, 与用户地址簿解耦
type OrderAddress struct {
	Id         int64  `gorm:"primaryKey;autoIncrement;comment:地址快照自增ID"`
	Name       string `gorm:"type:varchar(255);not null;comment:收件人"`
	Line1      string `gorm:"type:varchar(255);not null;comment:地址行1"`
	Line2      string `gorm:"type:varchar(255);comment:地址行2"`
	City       string `gorm:"type:varchar(255);not null;comment:城市"`
	Region     string `gorm:"type:varchar(255);comment:省份或地区"`
	PostalCode string `gorm:"type:varchar(64);comment:邮编"`
	Country    string `gorm:"type:varchar(64);not null;comment:国家"`
	Phone      string `gorm:"type:varchar(64);comment:联系电话"`
	Ctime      int64
	Utime      int64
}

// OrderStatusHistory 只追加不修改
type OrderStatusHistory struct {
	Id         int64  `gorm:"primaryKey;autoIncrement;comment:流水自增ID"`
	OrderId    int64  `gorm:"not null;index:idx_history_order_id;comment:订单自增ID"`
	FromStatus uint8  `gorm:"type:tinyint unsigned;not null;comment:迁移前状态"`
	ToStatus   uint8  `gorm:"type:tinyint unsigned;not null;comment:迁移后状态"`
	Actor      string `gorm:"type:varchar(64);not null;comment:触发方"`
	Note       string `gorm:"type:varchar(512);comment:备注"`
	Ctime      int64
}
