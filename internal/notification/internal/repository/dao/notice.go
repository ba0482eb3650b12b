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

var ErrRecordNotFound = gorm.ErrRecordNotFound

type NoticeDAO interface {
	Create(ctx context.Context, n Notice) (int64, error)
	ListByUID(ctx context.Context, uid int64, offset, limit int) ([]Notice, error)
	CountUnread(ctx context.Context, uid int64) (int64, error)
	// MarkRead 只能读自己的信, uid不匹配时视为不存在
	MarkRead(ctx context.Context, uid, id int64) error
	MarkAllRead(ctx context.Context, uid int64) error
}

type NoticeGORMDAO struct {
	db *egorm.Component
}

func NewNoticeGORMDAO(db *egorm.Component) NoticeDAO {
	return &NoticeGORMDAO{db: db}
}

func (d *NoticeGORMDAO) Create(ctx context.Context, n Notice) (int64, error) {
	now := time.Now().UnixMilli()
	n.Ctime = now
	n.Utime = now
	err := d.db.WithContext(ctx).Create(&n).Error
	return n.Id, err
}

func (d *NoticeGORMDAO) ListByUID(ctx context.Context, uid int64, offset, limit int) ([]Notice, error) {
	var res []Notice
	err := d.db.WithContext(ctx).Where("uid = ?", uid).
		Order("id DESC").Offset(offset).Limit(limit).Find(&res).Error
	return res, err
}

func (d *NoticeGORMDAO) CountUnread(ctx context.Context, uid int64) (int64, error) {
	var count int64
	err := d.db.WithContext(ctx).Model(&Notice{}).
		Where("uid = ? AND `read` = ?", uid, false).Count(&count).Error
	return count, err
}

func (d *NoticeGORMDAO) MarkRead(ctx context.Context, uid, id int64) error {
	res := d.db.WithContext(ctx).Model(&Notice{}).
		Where("id = ? AND uid = ?", id, uid).
		Updates(map[string]any{
			"read":  true,
			"utime": time.Now().UnixMilli(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrRecordNotFound
	}
	return nil
}

func (d *NoticeGORMDAO) MarkAllRead(ctx context.Context, uid int64) error {
	return d.db.WithContext(ctx).Model(&Notice{}).
		Where("uid = ? AND `read` = ?", uid, false).
		Updates(map[string]any{
			"read":  true,
			"utime": time.Now().UnixMilli(),
		}).Error
}

// Notice 站内信表
type Notice struct {
	Id      int64  `gorm:"primaryKey,autoIncrement"`
	UID     int64  `gorm:"column:uid;not null;index:idx_notice_uid;comment:接收用户ID"`
	OrderSN string `gorm:"column:order_sn;type:varchar(64);comment:关联订单SN"`
	Title   string `gorm:"type:varchar(256);not null;comment:标题"`
	Content string `gorm:"type:varchar(1024);not null;comment:正文"`
	Read    bool   `gorm:"not null;default:0;comment:是否已读"`
	Ctime   int64
	Utime   int64
}

func (Notice) TableName() string {
	return "notices"
}
