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

//go:build wireinject

package user

import (
	"sync"

	"github.com/camellia-mall/camellia/internal/user/internal/repository"
	"github.com/camellia-mall/camellia/internal/user/internal/repository/cache"
	"github.com/camellia-mall/camellia/internal/user/internal/repository/dao"
	"github.com/camellia-mall/camellia/internal/user/internal/service"
	"github.com/camellia-mall/camellia/internal/user/internal/web"
	"github.com/ecodeclub/ecache"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
	"github.com/gotomicro/ego/core/econf"
)

var ModuleSet = wire.NewSet(
	InitTablesOnce,
	initAddressDAO,
	cache.NewUserECache,
	repository.NewCachedUserRepository,
	repository.NewAddressRepository,
	InitWechatOAuth2Service,
	service.NewUserService,
	service.NewAddressService,
	web.NewHandler)

func InitModule(db *egorm.Component, ec ecache.Cache, admins []string) *Module {
	wire.Build(
		ModuleSet,
		wire.Struct(new(Module), "*"))
	return new(Module)
}

var once = &sync.Once{}

func InitTablesOnce(db *egorm.Component) dao.UserDAO {
	once.Do(func() {
		_ = dao.InitTables(db)
	})
	return dao.NewGORMUserDAO(db)
}

func initAddressDAO(db *egorm.Component) dao.AddressDAO {
	return dao.NewGORMAddressDAO(db)
}

func InitWechatOAuth2Service() service.OAuth2Service {
	type Config struct {
		AppSecretID      string `yaml:"appSecretID"`
		AppSecretKey     string `yaml:"appSecretKey"`
		LoginRedirectURL string `yaml:"loginRedirectURL"`
	}
	var cfg Config
	err := econf.UnmarshalKey("wechat.oauth", &cfg)
	if err != nil {
		panic(err)
	}
	return service.NewWechatOAuth2Service(cfg.AppSecretID, cfg.AppSecretKey, cfg.LoginRedirectURL)
}
