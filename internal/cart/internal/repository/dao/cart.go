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
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrRecordNotFound = gorm.ErrRecordNotFound

type CartDAO interface {
	FindOrCreateByUID(ctx context.Context, uid int64) (Cart, error)
	FindByUID(ctx context.Context, uid int64) (Cart, error)
	FindByID(ctx context.Context, id int64) (Cart, error)
	FindItems(ctx context.Context, cartID int64) ([]CartItem, error)
	AddItem(ctx context.Context, item CartItem) (int64, error)
	SetQuantity(ctx context.Context, cartID, itemID, quantity int64) error
	RemoveItem(ctx context.Context, cartID, itemID int64) error
	Clear(ctx context.Context, cartID int64) error
	UpdateIntentSN(ctx context.Context, cartID int64, intentSN string) error
	// DeleteCartTx 在外部事务里删除购物车与全部条目, 订单落库时调用
	DeleteCartTx(tx *gorm.DB, cartID int64) error
}

type CartGORMDAO struct {
	db *egorm.Component
}

func NewCartGORMDAO(db *egorm.Component) CartDAO {
	return &CartGORMDAO{db: db}
}

func (d *CartGORMDAO) FindOrCreateByUID(ctx context.Context, uid int64) (Cart, error) {
	now := time.Now().UnixMilli()
	cart := Cart{UID: uid, Ctime: now, Utime: now}
	err := d.db.WithContext(ctx).Clauses(clause.OnConflict{
		DoNothing: true,
	}).Create(&cart).Error
	if err != nil {
		return Cart{}, err
	}
	if cart.Id != 0 {
		return cart, nil
	}
	return d.FindByUID(ctx, uid)
}

func (d *CartGORMDAO) FindByUID(ctx context.Context, uid int64) (Cart, error) {
	var res Cart
	err := d.db.WithContext(ctx).Where("uid = ?", uid).First(&res).Error
	return res, err
}

func (d *CartGORMDAO) FindByID(ctx context.Context, id int64) (Cart, error) {
	var res Cart
	err := d.db.WithContext(ctx).Where("id = ?", id).First(&res).Error
	return res, err
}

func (d *CartGORMDAO) FindItems(ctx context.Context, cartID int64) ([]CartItem, error) {
	var res []CartItem
	err := d.db.WithContext(ctx).Where("cart_id = ?", cartID).Order("id ASC").Find(&res).Error
	return res, err
}

func (d *CartGORMDAO) AddItem(ctx context.Context, item CartItem) (int64, error) {
	now := time.Now().UnixMilli()
	item.Ctime = now
	item.Utime = now
	err := d.db.WithContext(ctx).Clauses(clause.OnConflict{
		DoUpdates: clause.Assignments(map[string]any{
			"quantity": gorm.Expr("quantity + ?", item.Quantity),
			"price":    item.Price,
			"utime":    now,
		}),
	}).Create(&item).Error
	return item.Id, err
}

func (d *CartGORMDAO) SetQuantity(ctx context.Context, cartID, itemID, quantity int64) error {
	res := d.db.WithContext(ctx).Model(&CartItem{}).
		Where("id = ? AND cart_id = ?", itemID, cartID).
		Updates(map[string]any{
			"quantity": quantity,
			"utime":    time.Now().UnixMilli(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrRecordNotFound
	}
	return nil
}

func (d *CartGORMDAO) RemoveItem(ctx context.Context, cartID, itemID int64) error {
	return d.db.WithContext(ctx).
		Where("id = ? AND cart_id = ?", itemID, cartID).
		Delete(&CartItem{}).Error
}

func (d *CartGORMDAO) Clear(ctx context.Context, cartID int64) error {
	return d.db.WithContext(ctx).Where("cart_id = ?", cartID).Delete(&CartItem{}).Error
}

func (d *CartGORMDAO) UpdateIntentSN(ctx context.Context, cartID int64, intentSN string) error {
	return d.db.WithContext(ctx).Model(&Cart{}).
		Where("id = ?", cartID).
		Updates(map[string]any{
			"payment_intent_sn": intentSN,
			"utime":             time.Now().UnixMilli(),
		}).Error
}

func (d *CartGORMDAO) DeleteCartTx(tx *gorm.DB, cartID int64) error {
	if err := tx.Where("cart_id = ?", cartID).Delete(&CartItem{}).Error; err != nil {
		return err
	}
	return tx.Where("id = ?", cartID).Delete(&Cart{}).Error
}

type Cart struct {
	Id              int64  `gorm:"primaryKey,autoIncrement;comment:购物车自增ID"`
	UID             int64  `gorm:"column:uid;not null;uniqueIndex:uniq_cart_uid;comment:用户ID, 一人一车"`
	PaymentIntentSN string `gorm:"column:payment_intent_sn;type:varchar(255);comment:支付意图SN"`
	Ctime           int64
	Utime           int64
}

func (Cart) TableName() string {
	return "carts"
}

type CartItem struct {
	Id       int64  `gorm:"primaryKey,autoIncrement;comment:购物车条目自增ID"`
	CartID   int64  `gorm:"column:cart_id;not null;uniqueIndex:uniq_cart_sku;comment:购物车ID"`
	SPUID    int64  `gorm:"column:spu_id;not null;uniqueIndex:uniq_cart_sku;comment:商品SPU ID"`
	SKUID    int64  `gorm:"column:sku_id;not null;uniqueIndex:uniq_cart_sku;comment:商品SKU ID"`
	SKUSN    string `gorm:"column:sku_sn;type:varchar(255);not null;comment:商品SKU序列号"`
	Name     string `gorm:"type:varchar(255);not null;comment:加购时的商品名"`
	Price    int64  `gorm:"not null;comment:加购时的价格快照, 单位为分"`
	Quantity int64  `gorm:"not null;comment:数量"`
	Image    string `gorm:"type:varchar(512);comment:商品图片"`
	Kind     uint8  `gorm:"type:tinyint unsigned;not null;default:1;comment:商品形态 1=实物 2=虚拟"`
	Ctime    int64
	Utime    int64
}

func (CartItem) TableName() string {
	return "cart_items"
}
