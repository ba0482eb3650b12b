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

package product

import (
	"github.com/camellia-mall/camellia/internal/product/internal/domain"
	"github.com/camellia-mall/camellia/internal/product/internal/service"
	"github.com/camellia-mall/camellia/internal/product/internal/web"
)

type (
	Handler      = web.Handler
	AdminHandler = web.AdminHandler
	Service      = service.Service
	SPU          = domain.SPU
	SKU          = domain.SKU
	AttrPair     = domain.AttrPair
	Category     = domain.Category
	Status       = domain.Status
	Kind         = domain.Kind
)

const (
	StatusOffShelf = domain.StatusOffShelf
	StatusOnShelf  = domain.StatusOnShelf

	KindPhysical = domain.KindPhysical
	KindDigital  = domain.KindDigital
)

type Module struct {
	Svc      Service
	Hdl      *Handler
	AdminHdl *AdminHandler
}
