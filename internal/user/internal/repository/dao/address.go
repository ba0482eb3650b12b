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
)

type AddressDAO interface {
	ListByUID(ctx context.Context, uid int64) ([]Address, error)
	// Save id为0时新增, 否则按uid+id更新
	Save(ctx context.Context, addr Address) (int64, error)
	Delete(ctx context.Context, uid, id int64) error
	// SetDefault 同一个用户最多一个默认地址
	SetDefault(ctx context.Context, uid, id int64) error
}

type GORMAddressDAO struct {
	db *egorm.Component
}

func NewGORMAddressDAO(db *egorm.Component) AddressDAO {
	return &GORMAddressDAO{db: db}
}

func (ad *GORMAddressDAO) ListByUID(ctx context.Context, uid int64) ([]Address, error) {
	var res []Address
	err := ad.db.WithContext(ctx).Where("uid = ?", uid).
		Order("`default` DESC, id DESC").Find(&res).Error
	return res, err
}

func (ad *GORMAddressDAO) Save(ctx context.Context, addr Address) (int64, error) {
	now := time.Now().UnixMilli()
	addr.Utime = now
	if addr.Id == 0 {
		addr.Ctime = now
		err := ad.db.WithContext(ctx).Create(&addr).Error
		return addr.Id, err
	}
	res := ad.db.WithContext(ctx).Model(&Address{}).
		Where("id = ? AND uid = ?", addr.Id, addr.UID).
		Updates(map[string]any{
			"name":        addr.Name,
			"line1":       addr.Line1,
			"line2":       addr.Line2,
			"city":        addr.City,
			"region":      addr.Region,
			"postal_code": addr.PostalCode,
			"country":     addr.Country,
			"phone":       addr.Phone,
			"utime":       now,
		})
	if res.Error != nil {
		return 0, res.Error
	}
	if res.RowsAffected == 0 {
		return 0, ErrRecordNotFound
	}
	return addr.Id, nil
}

func (ad *GORMAddressDAO) Delete(ctx context.Context, uid, id int64) error {
	res := ad.db.WithContext(ctx).Where("id = ? AND uid = ?", id, uid).Delete(&Address{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrRecordNotFound
	}
	return nil
}

func (ad *GORMAddressDAO) SetDefault(ctx context.Context, uid, id int64) error {
	now := time.Now().UnixMilli()
	return ad.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&Address{}).
			Where("id = ? AND uid = ?", id, uid).
			Updates(map[string]any{"default": true, "utime": now})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrRecordNotFound
		}
		return tx.Model(&Address{}).
			Where("uid = ? AND id != ?", uid, id).
			Updates(map[string]any{"default": false, "utime": now}).Error
	})
}

// Address 地址簿表
type Address struct {
	Id         int64  `gorm:"primaryKey,autoIncrement"`
	UID        int64  `gorm:"column:uid;not null;index:idx_address_uid;comment:所属用户"`
	Name       string `gorm:"type:varchar(128);not null;comment:收件人"`
	Line1      string `gorm:"type:varchar(512);not null;comment:地址行1"`
	Line2      string `gorm:"type:varchar(512);comment:地址行2"`
	City       string `gorm:"type:varchar(128);not null"`
	Region     string `gorm:"type:varchar(128);comment:省/州"`
	PostalCode string `gorm:"type:varchar(32)"`
	Country    string `gorm:"type:varchar(8);not null;comment:ISO国家码"`
	Phone      string `gorm:"type:varchar(32)"`
	Default    bool   `gorm:"not null;default:0;comment:默认地址"`
	Ctime      int64
	Utime      int64
}

func (Address) TableName() string {
	return "user_addresses"
}
