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
	"database/sql"

	"github.com/camellia-mall/camellia/internal/user/internal/domain"
	"github.com/camellia-mall/camellia/internal/user/internal/repository/cache"
	"github.com/camellia-mall/camellia/internal/user/internal/repository/dao"
)

var (
	ErrRecordNotFound = dao.ErrRecordNotFound
	ErrUserDuplicate  = dao.ErrUserDuplicate
)

type UserRepository interface {
	Create(ctx context.Context, u domain.User) (int64, error)
	// Update 只更新非零值字段
	Update(ctx context.Context, u domain.User) error
	FindByWechat(ctx context.Context, openId string) (domain.User, error)
	FindById(ctx context.Context, id int64) (domain.User, error)
}

type CachedUserRepository struct {
	dao   dao.UserDAO
	cache cache.UserCache
}

func NewCachedUserRepository(d dao.UserDAO, c cache.UserCache) UserRepository {
	return &CachedUserRepository{dao: d, cache: c}
}

func (ur *CachedUserRepository) Create(ctx context.Context, u domain.User) (int64, error) {
	return ur.dao.Insert(ctx, dao.User{
		SN:       u.SN,
		Nickname: u.Nickname,
		Email:    nullString(u.Email),
		Phone:    nullString(u.Phone),
		WechatOpenId:  nullString(u.WechatInfo.OpenId),
		WechatUnionId: nullString(u.WechatInfo.UnionId),
	})
}

func (ur *CachedUserRepository) Update(ctx context.Context, u domain.User) error {
	err := ur.dao.UpdateNonZeroFields(ctx, dao.User{
		Id:       u.ID,
		Nickname: u.Nickname,
		Avatar:   u.Avatar,
		Email:    nullString(u.Email),
		Phone:    nullString(u.Phone),
	})
	if err != nil {
		return err
	}
	return ur.cache.Delete(ctx, u.ID)
}

func (ur *CachedUserRepository) FindByWechat(ctx context.Context, openId string) (domain.User, error) {
	u, err := ur.dao.FindByWechat(ctx, openId)
	return ur.entityToDomain(u), err
}

func (ur *CachedUserRepository) FindById(ctx context.Context, id int64) (domain.User, error) {
	u, err := ur.cache.Get(ctx, id)
	if err == nil {
		return u, nil
	}
	ue, err := ur.dao.FindById(ctx, id)
	if err != nil {
		return domain.User{}, err
	}
	u = ur.entityToDomain(ue)
	// 缓存写失败不影响读路径
	_ = ur.cache.Set(ctx, u)
	return u, nil
}

func (ur *CachedUserRepository) entityToDomain(ue dao.User) domain.User {
	return domain.User{
		ID:       ue.Id,
		SN:       ue.SN,
		Nickname: ue.Nickname,
		Avatar:   ue.Avatar,
		Email:    ue.Email.String,
		Phone:    ue.Phone.String,
		WechatInfo: domain.WechatInfo{
			OpenId:  ue.WechatOpenId.String,
			UnionId: ue.WechatUnionId.String,
		},
	}
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
