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

	"github.com/camellia-mall/camellia/internal/user/internal/domain"
	"github.com/camellia-mall/camellia/internal/user/internal/repository"
	uuid "github.com/lithammer/shortuuid/v4"
	"github.com/pkg/errors"
)

//go:generate mockgen -source=./user.go -package=usermocks -destination=../../mocks/user.mock.go -typed UserService
type UserService interface {
	Profile(ctx context.Context, id int64) (domain.User, error)
	// FindOrCreateByWechat 扫码登录, 首次扫码时初始化用户
	FindOrCreateByWechat(ctx context.Context, info domain.WechatInfo) (domain.User, error)
	// UpdateNonSensitiveInfo 更新非敏感数据, SN和微信身份不可改
	UpdateNonSensitiveInfo(ctx context.Context, user domain.User) error
}

type userService struct {
	repo repository.UserRepository
}

func NewUserService(repo repository.UserRepository) UserService {
	return &userService{repo: repo}
}

func (svc *userService) Profile(ctx context.Context, id int64) (domain.User, error) {
	return svc.repo.FindById(ctx, id)
}

func (svc *userService) FindOrCreateByWechat(ctx context.Context,
	info domain.WechatInfo) (domain.User, error) {
	u, err := svc.repo.FindByWechat(ctx, info.OpenId)
	if !errors.Is(err, repository.ErrRecordNotFound) {
		return u, err
	}
	sn := uuid.New()
	u = domain.User{
		SN:         sn,
		Nickname:   sn[:4],
		WechatInfo: info,
	}
	u.ID, err = svc.repo.Create(ctx, u)
	if errors.Is(err, repository.ErrUserDuplicate) {
		// 并发扫码撞上了, 读已有的
		return svc.repo.FindByWechat(ctx, info.OpenId)
	}
	if err != nil {
		return domain.User{}, err
	}
	return u, nil
}

func (svc *userService) UpdateNonSensitiveInfo(ctx context.Context, user domain.User) error {
	user.SN = ""
	user.WechatInfo = domain.WechatInfo{}
	return svc.repo.Update(ctx, user)
}
