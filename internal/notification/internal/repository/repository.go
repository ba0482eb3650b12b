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

package repository

import (
	"context"

	"github.com/camellia-mall/camellia/internal/notification/internal/domain"
	"github.com/camellia-mall/camellia/internal/notification/internal/repository/dao"
	"github.com/ecodeclub/ekit/slice"
)

var ErrRecordNotFound = dao.ErrRecordNotFound

type NoticeRepository interface {
	Create(ctx context.Context, n domain.Notice) (int64, error)
	ListByUID(ctx context.Context, uid int64, offset, limit int) ([]domain.Notice, error)
	CountUnread(ctx context.Context, uid int64) (int64, error)
	MarkRead(ctx context.Context, uid, id int64) error
	MarkAllRead(ctx context.Context, uid int64) error
}

type noticeRepository struct {
	dao dao.NoticeDAO
}

func NewNoticeRepository(d dao.NoticeDAO) NoticeRepository {
	return &noticeRepository{dao: d}
}

func (r *noticeRepository) Create(ctx context.Context, n domain.Notice) (int64, error) {
	return r.dao.Create(ctx, dao.Notice{
		UID:     n.UID,
		OrderSN: n.OrderSN,
		Title:   n.Title,
		Content: n.Content,
		Read:    n.Read,
	})
}

func (r *noticeRepository) ListByUID(ctx context.Context, uid int64, offset, limit int) ([]domain.Notice, error) {
	ns, err := r.dao.ListByUID(ctx, uid, offset, limit)
	if err != nil {
		return nil, err
	}
	return slice.Map(ns, func(_ int, src dao.Notice) domain.Notice {
		return domain.Notice{
			ID:      src.Id,
			UID:     src.UID,
			OrderSN: src.OrderSN,
			Title:   src.Title,
			Content: src.Content,
			Read:    src.Read,
			Ctime:   src.Ctime,
		}
	}), nil
}

func (r *noticeRepository) CountUnread(ctx context.Context, uid int64) (int64, error) {
	return r.dao.CountUnread(ctx, uid)
}

func (r *noticeRepository) MarkRead(ctx context.Context, uid, id int64) error {
	return r.dao.MarkRead(ctx, uid, id)
}

func (r *noticeRepository) MarkAllRead(ctx context.Context, uid int64) error {
	return r.dao.MarkAllRead(ctx, uid)
}
