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

package payment

import (
	"github.com/camellia-mall/camellia/internal/payment/internal/domain"
	"github.com/camellia-mall/camellia/internal/payment/internal/job"
	"github.com/camellia-mall/camellia/internal/payment/internal/service"
	"github.com/camellia-mall/camellia/internal/payment/internal/web"
)

type (
	Handler              = web.Handler
	WechatHandler        = web.WechatHandler
	AdminHandler         = web.AdminHandler
	Payment              = domain.Payment
	Intent               = domain.Intent
	Status               = domain.PaymentStatus
	Service              = service.Service
	SyncPaymentStatusJob = job.SyncPaymentStatusJob
)

const (
	StatusUnpaid        = domain.PaymentStatusUnpaid
	StatusProcessing    = domain.PaymentStatusProcessing
	StatusPaidSuccess   = domain.PaymentStatusPaidSuccess
	StatusPaidFailed    = domain.PaymentStatusPaidFailed
	StatusRefunded      = domain.PaymentStatusRefunded
	StatusTimeoutClosed = domain.PaymentStatusTimeoutClosed
)

var (
	ErrPaymentNotFound      = service.ErrPaymentNotFound
	ErrPaymentNotRefundable = service.ErrPaymentNotRefundable
	ErrRefundAmountExceeded = service.ErrRefundAmountExceeded
)

type Module struct {
	Svc       Service
	Hdl       *Handler
	WechatHdl *WechatHandler
	AdminHdl  *AdminHandler
	SyncJob   *SyncPaymentStatusJob
}
