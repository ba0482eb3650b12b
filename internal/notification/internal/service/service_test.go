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
	"testing"

	"github.com/camellia-mall/camellia/internal/notification/internal/domain"
	"github.com/camellia-mall/camellia/internal/notification/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeNoticeRepo struct {
	nextID  int64
	notices map[int64]domain.Notice
}

func newFakeNoticeRepo() *fakeNoticeRepo {
	return &fakeNoticeRepo{notices: make(map[int64]domain.Notice)}
}

func (f *fakeNoticeRepo) Create(_ context.Context, n domain.Notice) (int64, error) {
	f.nextID++
	n.ID = f.nextID
	f.notices[n.ID] = n
	return n.ID, nil
}

func (f *fakeNoticeRepo) ListByUID(_ context.Context, uid int64, _, _ int) ([]domain.Notice, error) {
	var res []domain.Notice
	for _, n := range f.notices {
		if n.UID == uid {
			res = append(res, n)
		}
	}
	return res, nil
}

func (f *fakeNoticeRepo) CountUnread(_ context.Context, uid int64) (int64, error) {
	var count int64
	for _, n := range f.notices {
		if n.UID == uid && !n.Read {
			count++
		}
	}
	return count, nil
}

func (f *fakeNoticeRepo) MarkRead(_ context.Context, uid, id int64) error {
	n, ok := f.notices[id]
	if !ok || n.UID != uid {
		return repository.ErrRecordNotFound
	}
	n.Read = true
	f.notices[id] = n
	return nil
}

func (f *fakeNoticeRepo) MarkAllRead(_ context.Context, uid int64) error {
	for id, n := range f.notices {
		if n.UID == uid {
			n.Read = true
			f.notices[id] = n
		}
	}
	return nil
}

type capturingPusher struct {
	payloads map[int64][]any
}

func (c *capturingPusher) SendToUser(uid int64, payload any) {
	if c.payloads == nil {
		c.payloads = make(map[int64][]any)
	}
	c.payloads[uid] = append(c.payloads[uid], payload)
}

func TestService_Notify(t *testing.T) {
	t.Parallel()
	repo := newFakeNoticeRepo()
	pusher := &capturingPusher{}
	svc := NewService(repo, pusher)

	n, err := svc.Notify(context.Background(), domain.Notice{
		UID:     1001,
		OrderSN: "ORD-1",
		Title:   "订单已确认",
		Content: "您的订单 ORD-1 已确认",
	})
	require.NoError(t, err)
	assert.NotZero(t, n.ID)
	// 落库之后才推送, 推送里带着ID
	require.Len(t, pusher.payloads[1001], 1)
	pushed, ok := pusher.payloads[1001][0].(domain.Notice)
	require.True(t, ok)
	assert.Equal(t, n.ID, pushed.ID)

	notices, unread, err := svc.List(context.Background(), 1001, 0, 10)
	require.NoError(t, err)
	assert.Len(t, notices, 1)
	assert.Equal(t, int64(1), unread)
}

func TestService_MarkRead(t *testing.T) {
	t.Parallel()
	repo := newFakeNoticeRepo()
	svc := NewService(repo, &capturingPusher{})
	n, err := svc.Notify(context.Background(), domain.Notice{UID: 1001, Title: "t", Content: "c"})
	require.NoError(t, err)

	t.Run("只能读自己的", func(t *testing.T) {
		err := svc.MarkRead(context.Background(), 2002, n.ID)
		assert.ErrorIs(t, err, ErrNoticeNotFound)
	})

	t.Run("标记已读后未读数归零", func(t *testing.T) {
		require.NoError(t, svc.MarkRead(context.Background(), 1001, n.ID))
		_, unread, err := svc.List(context.Background(), 1001, 0, 10)
		require.NoError(t, err)
		assert.Equal(t, int64(0), unread)
	})
}
