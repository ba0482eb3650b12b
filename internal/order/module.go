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

package order

import (
	"github.com/camellia-mall/camellia/internal/order/internal/domain"
	"github.com/camellia-mall/camellia/internal/order/internal/event"
	"github.com/camellia-mall/camellia/internal/order/internal/job"
	"github.com/camellia-mall/camellia/internal/order/internal/service"
	"github.com/camellia-mall/camellia/internal/order/internal/web"
)

type (
	Handler               = web.Handler
	AdminHandler          = web.AdminHandler
	Service               = service.Service
	CreateOrderReq        = service.CreateOrderReq
	Order                 = domain.Order
	OrderItem             = domain.OrderItem
	Address               = domain.Address
	StatusHistory         = domain.StatusHistory
	Status                = domain.Status
	PaymentStatus         = domain.PaymentStatus
	PaymentEventConsumer  = event.PaymentEventConsumer
	CloseExpiredOrdersJob = job.CloseExpiredOrdersJob
)

const (
	StatusPending         = domain.StatusPending
	StatusConfirmed       = domain.StatusConfirmed
	StatusPaymentReceived = domain.StatusPaymentReceived
	StatusProcessing      = domain.StatusProcessing
	StatusShipped         = domain.StatusShipped
	StatusDelivered       = domain.StatusDelivered
	StatusCancelled       = domain.StatusCancelled

	PaymentStatusPending   = domain.PaymentStatusPending
	PaymentStatusSucceeded = domain.PaymentStatusSucceeded
	PaymentStatusFailed    = domain.PaymentStatusFailed
	PaymentStatusRefunded  = domain.PaymentStatusRefunded
)

var (
	ErrOrderNotFound          = service.ErrOrderNotFound
	ErrEmptyCart              = service.ErrEmptyCart
	ErrBuyerEmailRequired     = service.ErrBuyerEmailRequired
	ErrInvalidStateTransition = service.ErrInvalidStateTransition
)

type Module struct {
	Svc             Service
	Hdl             *Handler
	AdminHdl        *AdminHandler
	PaymentConsumer *PaymentEventConsumer
	CloseExpiredJob *CloseExpiredOrdersJob
}
