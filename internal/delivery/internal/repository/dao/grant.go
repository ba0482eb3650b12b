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
	"gorm.io/gorm/clause"
)

var (
	ErrRecordNotFound = gorm.ErrRecordNotFound
	// ErrGrantUnusable 授权过期或次数用尽
	ErrGrantUnusable = errors.New("下载授权不可用")
)

type GrantDAO interface {
	// BatchCreate 以order_item_id唯一索引做幂等, 冲突行直接跳过
	BatchCreate(ctx context.Context, grants []DownloadGrant) error
	FindByToken(ctx context.Context, token string) (DownloadGrant, error)
	FindByOrderSN(ctx context.Context, orderSN string) ([]DownloadGrant, error)
	FindByBuyer(ctx context.Context, buyerID int64, offset, limit int) ([]DownloadGrant, error)
	CountByBuyer(ctx context.Context, buyerID int64) (int64, error)
	// Consume 原子消费一次下载机会, 授权不可用时返回ErrGrantUnusable
	Consume(ctx context.Context, token string) error
}

type GrantGORMDAO struct {
	db *egorm.Component
}

func NewGrantGORMDAO(db *egorm.Component) GrantDAO {
	return &GrantGORMDAO{db: db}
}

func (d *GrantGORMDAO) BatchCreate(ctx context.Context, grants []DownloadGrant) error {
	if len(grants) == 0 {
		return nil
	}
	now := time.Now().UnixMilli()
	for i := range grants {
		grants[i].Ctime = now
		grants[i].Utime = now
	}
	return d.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "order_item_id"}},
		DoNothing: true,
	}).Create(&grants).Error
}

func (d *GrantGORMDAO) FindByToken(ctx context.Context, token string) (DownloadGrant, error) {
	var res DownloadGrant
	err := d.db.WithContext(ctx).Where("token = ?", token).First(&res).Error
	return res, err
}

func (d *GrantGORMDAO) FindByOrderSN(ctx context.Context, orderSN string) ([]DownloadGrant, error) {
	var res []DownloadGrant
	err := d.db.WithContext(ctx).Where("order_sn = ?", orderSN).Order("id ASC").Find(&res).Error
	return res, err
}

func (d *GrantGORMDAO) FindByBuyer(ctx context.Context, buyerID int64, offset, limit int) ([]DownloadGrant, error) {
	var res []DownloadGrant
	err := d.db.WithContext(ctx).Where("buyer_id = ?", buyerID).
		Order("id DESC").Offset(offset).Limit(limit).Find(&res).Error
	return res, err
}

func (d *GrantGORMDAO) CountByBuyer(ctx context.Context, buyerID int64) (int64, error) {
	var count int64
	err := d.db.WithContext(ctx).Model(&DownloadGrant{}).
		Where("buyer_id = ?", buyerID).Count(&count).Error
	return count, err
}

func (d *GrantGORMDAO) Consume(ctx context.Context, token string) error {
	now := time.Now().UnixMilli()
	res := d.db.WithContext(ctx).Model(&DownloadGrant{}).
		Where("token = ? AND expires_at > ? AND download_count < max_downloads", token, now).
		Updates(map[string]any{
			"download_count": gorm.Expr("download_count + 1"),
			"completed":      gorm.Expr("download_count + 1 >= max_downloads"),
			"utime":          now,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return errors.Wrapf(ErrGrantUnusable, "token: %s", token)
	}
	return nil
}

type DownloadGrant struct {
	Id            int64  `gorm:"primaryKey;comment:授权ID, 雪花算法生成"`
	OrderSN       string `gorm:"column:order_sn;type:varchar(255);not null;index:idx_order_sn;comment:订单SN"`
	OrderItemID   int64  `gorm:"column:order_item_id;not null;uniqueIndex:uniq_order_item_id;comment:订单条目ID, 幂等键"`
	BuyerID       int64  `gorm:"column:buyer_id;not null;index:idx_buyer_id;comment:买家ID"`
	ProductName   string `gorm:"type:varchar(255);not null;comment:商品名快照"`
	FileURL       string `gorm:"column:file_url;type:varchar(512);not null;comment:文件地址快照"`
	Token         string `gorm:"type:varchar(255);not null;uniqueIndex:uniq_grant_token;comment:下载令牌"`
	ExpiresAt     int64  `gorm:"column:expires_at;not null;comment:过期时间, 毫秒"`
	DownloadCount int64  `gorm:"column:download_count;not null;default:0;comment:已下载次数"`
	MaxDownloads  int64  `gorm:"column:max_downloads;not null;comment:允许下载次数"`
	Completed     bool   `gorm:"not null;default:false;comment:次数是否用尽"`
	Ctime         int64
	Utime         int64
}

func (DownloadGrant) TableName() string {
	return "download_grants"
}
