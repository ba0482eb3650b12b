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

package web

import (
	"errors"

	"github.com/camellia-mall/camellia/internal/payment/internal/domain"
	"github.com/camellia-mall/camellia/internal/payment/internal/service"
	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/gin-gonic/gin"
)

var _ ginx.Handler = (*AdminHandler)(nil)

type AdminHandler struct {
	svc service.Service
}

func NewAdminHandler(svc service.Service) *AdminHandler {
	return &AdminHandler{svc: svc}
}

func (h *AdminHandler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/payment")
	g.POST("/list", ginx.B[ListReq](h.List))
	g.POST("/refund", ginx.B[RefundReq](h.Refund))
}

func (h *AdminHandler) PublicRoutes(_ *gin.Engine) {}

func (h *AdminHandler) List(ctx *ginx.Context, req ListReq) (ginx.Result, error) {
	pmts, total, err := h.svc.List(ctx.Request.Context(), req.Offset, req.Limit)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: ListPaymentsResp{
		Total: total,
		Payments: slice.Map(pmts, func(_ int, src domain.Payment) Payment {
			return newPayment(src)
		}),
	}}, nil
}

func (h *AdminHandler) Refund(ctx *ginx.Context, req RefundReq) (ginx.Result, error) {
	err := h.svc.Refund(ctx.Request.Context(), req.PaymentSN, req.Amount)
	switch {
	case errors.Is(err, service.ErrPaymentNotFound):
		return paymentNotFoundResult, err
	case errors.Is(err, service.ErrPaymentNotRefundable):
		return paymentNotRefundableResult, err
	case errors.Is(err, service.ErrRefundAmountExceeded):
		return refundAmountExceededResult, err
	case err != nil:
		return systemErrorResult, err
	}
	return ginx.Result{Msg: "OK"}, nil
}
