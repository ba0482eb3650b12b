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

package user

import (
	"github.com/camellia-mall/camellia/internal/user/internal/domain"
	"github.com/camellia-mall/camellia/internal/user/internal/service"
	"github.com/camellia-mall/camellia/internal/user/internal/web"
)

type (
	Handler        = web.Handler
	User           = domain.User
	WechatInfo     = domain.WechatInfo
	Address        = domain.Address
	UserService    = service.UserService
	AddressService = service.AddressService
)

var (
	ErrAddressNotFound = service.ErrAddressNotFound
	ErrInvalidAddress  = service.ErrInvalidAddress
)

type Module struct {
	Svc     UserService
	AddrSvc AddressService
	Hdl     *Handler
}
