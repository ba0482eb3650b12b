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

	"github.com/camellia-mall/camellia/internal/user/internal/domain"
	"github.com/camellia-mall/camellia/internal/user/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUserRepo struct {
	nextID  int64
	users   map[int64]domain.User
	updates []domain.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[int64]domain.User)}
}

func (f *fakeUserRepo) Create(_ context.Context, u domain.User) (int64, error) {
	for _, existing := range f.users {
		if existing.WechatInfo.OpenId == u.WechatInfo.OpenId {
			return 0, repository.ErrUserDuplicate
		}
	}
	f.nextID++
	u.ID = f.nextID
	f.users[u.ID] = u
	return u.ID, nil
}

func (f *fakeUserRepo) Update(_ context.Context, u domain.User) error {
	f.updates = append(f.updates, u)
	return nil
}

func (f *fakeUserRepo) FindByWechat(_ context.Context, openId string) (domain.User, error) {
	for _, u := range f.users {
		if u.WechatInfo.OpenId == openId {
			return u, nil
		}
	}
	return domain.User{}, repository.ErrRecordNotFound
}

func (f *fakeUserRepo) FindById(_ context.Context, id int64) (domain.User, error) {
	u, ok := f.users[id]
	if !ok {
		return domain.User{}, repository.ErrRecordNotFound
	}
	return u, nil
}

func TestUserService_FindOrCreateByWechat(t *testing.T) {
	t.Parallel()
	repo := newFakeUserRepo()
	svc := NewUserService(repo)
	info := domain.WechatInfo{OpenId: "open-1", UnionId: "union-1"}

	first, err := svc.FindOrCreateByWechat(context.Background(), info)
	require.NoError(t, err)
	assert.NotZero(t, first.ID)
	assert.NotEmpty(t, first.SN)
	assert.Equal(t, first.SN[:4], first.Nickname)

	// 再次扫码读已有的
	second, err := svc.FindOrCreateByWechat(context.Background(), info)
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Len(t, repo.users, 1)
}

func TestUserService_UpdateNonSensitiveInfo(t *testing.T) {
	t.Parallel()
	repo := newFakeUserRepo()
	svc := NewUserService(repo)
	err := svc.UpdateNonSensitiveInfo(context.Background(), domain.User{
		ID:         1,
		SN:         "should-be-dropped",
		Nickname:   "山茶",
		Email:      "buyer@example.com",
		WechatInfo: domain.WechatInfo{OpenId: "should-be-dropped"},
	})
	require.NoError(t, err)
	require.Len(t, repo.updates, 1)
	assert.Empty(t, repo.updates[0].SN)
	assert.Empty(t, repo.updates[0].WechatInfo.OpenId)
	assert.Equal(t, "山茶", repo.updates[0].Nickname)
}

type fakeAddressRepo struct {
	nextID int64
	addrs  map[int64]domain.Address
}

func newFakeAddressRepo() *fakeAddressRepo {
	return &fakeAddressRepo{addrs: make(map[int64]domain.Address)}
}

func (f *fakeAddressRepo) ListByUID(_ context.Context, uid int64) ([]domain.Address, error) {
	var res []domain.Address
	for _, a := range f.addrs {
		if a.UID == uid {
			res = append(res, a)
		}
	}
	return res, nil
}

func (f *fakeAddressRepo) Save(_ context.Context, addr domain.Address) (int64, error) {
	if addr.ID == 0 {
		f.nextID++
		addr.ID = f.nextID
		f.addrs[addr.ID] = addr
		return addr.ID, nil
	}
	existing, ok := f.addrs[addr.ID]
	if !ok || existing.UID != addr.UID {
		return 0, repository.ErrRecordNotFound
	}
	f.addrs[addr.ID] = addr
	return addr.ID, nil
}

func (f *fakeAddressRepo) Delete(_ context.Context, uid, id int64) error {
	a, ok := f.addrs[id]
	if !ok || a.UID != uid {
		return repository.ErrRecordNotFound
	}
	delete(f.addrs, id)
	return nil
}

func (f *fakeAddressRepo) SetDefault(_ context.Context, uid, id int64) error {
	target, ok := f.addrs[id]
	if !ok || target.UID != uid {
		return repository.ErrRecordNotFound
	}
	for aid, a := range f.addrs {
		if a.UID == uid {
			a.Default = aid == id
			f.addrs[aid] = a
		}
	}
	return nil
}

func TestAddressService(t *testing.T) {
	t.Parallel()
	repo := newFakeAddressRepo()
	svc := NewAddressService(repo)
	valid := domain.Address{
		UID:     1001,
		Name:    "张三",
		Line1:   "人民路1号",
		City:    "上海",
		Country: "CN",
	}

	t.Run("必填字段校验", func(t *testing.T) {
		_, err := svc.Save(context.Background(), domain.Address{UID: 1001, Name: "张三"})
		assert.ErrorIs(t, err, ErrInvalidAddress)
	})

	t.Run("保存与默认地址切换", func(t *testing.T) {
		id1, err := svc.Save(context.Background(), valid)
		require.NoError(t, err)
		second := valid
		second.Line1 = "南京路2号"
		id2, err := svc.Save(context.Background(), second)
		require.NoError(t, err)

		require.NoError(t, svc.SetDefault(context.Background(), 1001, id2))
		addrs, err := svc.List(context.Background(), 1001)
		require.NoError(t, err)
		require.Len(t, addrs, 2)
		for _, a := range addrs {
			assert.Equal(t, a.ID == id2, a.Default)
		}
		_ = id1
	})

	t.Run("不能动别人的地址", func(t *testing.T) {
		id, err := svc.Save(context.Background(), valid)
		require.NoError(t, err)
		err = svc.Delete(context.Background(), 2002, id)
		assert.ErrorIs(t, err, ErrAddressNotFound)
		err = svc.SetDefault(context.Background(), 2002, id)
		assert.ErrorIs(t, err, ErrAddressNotFound)
	})
}
