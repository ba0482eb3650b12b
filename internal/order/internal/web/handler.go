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

	"github.com/camellia-mall/camellia/internal/order/internal/domain"
	"github.com/camellia-mall/camellia/internal/order/internal/service"
	"github.com/camellia-mall/camellia/internal/payment"
	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/elog"
)

var _ ginx.Handler = (*Handler)(nil)

type Handler struct {
	svc        service.Service
	paymentSvc payment.Service
	l          *elog.Component
}

func NewHandler(svc service.Service, paymentSvc payment.Service) *Handler {
	return &Handler{
		svc:        svc,
		paymentSvc: paymentSvc,
		l:          elog.DefaultLogger,
	}
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/order")
	g.POST("/create", ginx.BS[CreateOrderReq](h.Create))
	g.POST("/detail", ginx.BS[SNReq](h.Detail))
	g.POST("/list", ginx.BS[ListReq](h.List))
	g.POST("/cancel", ginx.BS[CancelReq](h.Cancel))
}

func (h *Handler) PublicRoutes(_ *gin.Engine) {}

func (h *Handler) Create(ctx *ginx.Context, req CreateOrderReq, sess session.Session) (ginx.Result, error) {
	var billing *domain.Address
	if req.BillingAddress != nil {
		b := req.BillingAddress.toDomain()
		billing = &b
	}
	order, err := h.svc.CreateFromCart(ctx.Request.Context(), service.CreateOrderReq{
		BuyerID:         sess.Claims().Uid,
		BuyerEmail:      req.BuyerEmail,
		ShippingAddress: req.ShippingAddress.toDomain(),
		BillingAddress:  billing,
	})
	switch {
	case errors.Is(err, service.ErrBuyerEmailRequired):
		return buyerEmailRequiredResult, err
	case errors.Is(err, service.ErrEmptyCart):
		return emptyCartResult, err
	case err != nil:
		return systemErrorResult, err
	}
	// 结账意图已经建好, 这里把支付记录和订单绑定
	if order.PaymentIntentSN != "" {
		_, er := h.paymentSvc.CreatePayment(ctx.Request.Context(), payment.Payment{
			OrderSN:     order.SN,
			IntentSN:    order.PaymentIntentSN,
			TotalAmount: order.TotalAmount,
		})
		if er != nil {
			h.l.Error("创建支付记录失败",
				elog.String("orderSn", order.SN), elog.FieldErr(er))
		}
	}
	return ginx.Result{Data: newOrder(order)}, nil
}

func (h *Handler) Detail(ctx *ginx.Context, req SNReq, sess session.Session) (ginx.Result, error) {
	order, err := h.svc.FindBuyerOrder(ctx.Request.Context(), req.SN, sess.Claims().Uid)
	if errors.Is(err, service.ErrOrderNotFound) {
		return orderNotFoundResult, err
	}
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: newOrder(order)}, nil
}

func (h *Handler) List(ctx *ginx.Context, req ListReq, sess session.Session) (ginx.Result, error) {
	orders, total, err := h.svc.ListByBuyer(ctx.Request.Context(), req.Offset, req.Limit, sess.Claims().Uid)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: ListOrdersResp{
		Total: total,
		Orders: slice.Map(orders, func(_ int, src domain.Order) Order {
			return newOrder(src)
		}),
	}}, nil
}

func (h *Handler) Cancel(ctx *ginx.Context, req CancelReq, sess session.Session) (ginx.Result, error) {
	err := h.svc.CancelOrder(ctx.Request.Context(), sess.Claims().Uid, req.ID)
	switch {
	case errors.Is(err, service.ErrOrderNotFound):
		return orderNotFoundResult, err
	case errors.Is(err, service.ErrInvalidStateTransition):
		return invalidStateTransitionResult, err
	case err != nil:
		return systemErrorResult, err
	}
	return ginx.Result{Msg: "OK"}, nil
}
