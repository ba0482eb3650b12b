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

package service

import (
	"context"
	"fmt"

	"github.com/camellia-mall/camellia/internal/notification/internal/domain"
	"github.com/camellia-mall/camellia/internal/notification/internal/repository"
	"github.com/pkg/errors"
)

var ErrNoticeNotFound = errors.New("站内信不存在")

// Pusher 实时推送通道, 由websocket集线器实现, 不在线就丢弃
type Pusher interface {
	SendToUser(uid int64, payload any)
}

//go:generate mockgen -source=./service.go -package=notificationmocks -destination=../../mocks/notification.mock.go -typed Service
type Service interface {
	// Notify 站内信落库, 在线用户同时收到实时推送
	Notify(ctx context.Context, n domain.Notice) (domain.Notice, error)
	List(ctx context.Context, uid int64, offset, limit int) ([]domain.Notice, int64, error)
	MarkRead(ctx context.Context, uid, id int64) error
	MarkAllRead(ctx context.Context, uid int64) error
}

type service struct {
	repo   repository.NoticeRepository
	pusher Pusher
}

func NewService(repo repository.NoticeRepository, pusher Pusher) Service {
	return &service{repo: repo, pusher: pusher}
}

func (s *service) Notify(ctx context.Context, n domain.Notice) (domain.Notice, error) {
	id, err := s.repo.Create(ctx, n)
	if err != nil {
		return domain.Notice{}, fmt.Errorf("站内信落库失败: %w", err)
	}
	n.ID = id
	s.pusher.SendToUser(n.UID, n)
	return n, nil
}

func (s *service) List(ctx context.Context, uid int64, offset, limit int) ([]domain.Notice, int64, error) {
	ns, err := s.repo.ListByUID(ctx, uid, offset, limit)
	if err != nil {
		return nil, 0, err
	}
	unread, err := s.repo.CountUnread(ctx, uid)
	if err != nil {
		return nil, 0, err
	}
	return ns, unread, nil
}

func (s *service) MarkRead(ctx context.Context, uid, id int64) error {
	err := s.repo.MarkRead(ctx, uid, id)
	if errors.Is(err, repository.ErrRecordNotFound) {
		return fmt.Errorf("%w: id: %d", ErrNoticeNotFound, id)
	}
	return err
}

func (s *service) MarkAllRead(ctx context.Context, uid int64) error {
	return s.repo.MarkAllRead(ctx, uid)
}
