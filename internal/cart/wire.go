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

package cart

import (
	"sync"

	"github.com/camellia-mall/camellia/internal/cart/internal/repository"
	"github.com/camellia-mall/camellia/internal/cart/internal/repository/dao"
	"github.com/camellia-mall/camellia/internal/cart/internal/service"
	"github.com/camellia-mall/camellia/internal/cart/internal/web"
	"github.com/camellia-mall/camellia/internal/product"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
)

var ModuleSet = wire.NewSet(
	InitTablesOnce,
	repository.NewCartRepository,
	service.NewService,
	web.NewHandler)

func InitModule(db *egorm.Component, productModule *product.Module) *Module {
	wire.Build(
		ModuleSet,
		wire.FieldsOf(new(*product.Module), "Svc"),
		wire.Struct(new(Module), "*"))
	return new(Module)
}

var once = &sync.Once{}

func InitTablesOnce(db *egorm.Component) dao.CartDAO {
	once.Do(func() {
		_ = dao.InitTables(db)
	})
	return dao.NewCartGORMDAO(db)
}
