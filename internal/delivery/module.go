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

package delivery

import (
	"github.com/camellia-mall/camellia/internal/delivery/internal/domain"
	"github.com/camellia-mall/camellia/internal/delivery/internal/service"
	"github.com/camellia-mall/camellia/internal/delivery/internal/web"
)

type (
	Handler       = web.Handler
	Service       = service.Service
	DownloadGrant = domain.DownloadGrant
	GrantRequest  = domain.GrantRequest
	GrantItem     = domain.GrantItem
)

const MaxDownloads = domain.MaxDownloads

var (
	ErrGrantNotFound = service.ErrGrantNotFound
	ErrGrantUnusable = service.ErrGrantUnusable
)

type Module struct {
	Svc Service
	Hdl *Handler
}
