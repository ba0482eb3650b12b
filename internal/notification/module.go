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

package notification

import (
	"github.com/camellia-mall/camellia/internal/notification/internal/domain"
	"github.com/camellia-mall/camellia/internal/notification/internal/event"
	"github.com/camellia-mall/camellia/internal/notification/internal/service"
	"github.com/camellia-mall/camellia/internal/notification/internal/web"
)

type (
	Handler            = web.Handler
	WSHandler          = web.WSHandler
	Hub                = web.Hub
	Service            = service.Service
	Notice             = domain.Notice
	OrderEventConsumer = event.OrderEventConsumer
)

var ErrNoticeNotFound = service.ErrNoticeNotFound

type Module struct {
	Svc           Service
	Hdl           *Handler
	WsHdl         *WSHandler
	OrderConsumer *OrderEventConsumer
}
