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
	"fmt"

	"github.com/camellia-mall/camellia/internal/cart"
	"github.com/camellia-mall/camellia/internal/payment/internal/service"
	"github.com/camellia-mall/camellia/internal/pkg/pricing"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-gonic/gin"
)

var _ ginx.Handler = (*Handler)(nil)

type Handler struct {
	svc     service.Service
	cartSvc cart.Service
}

func NewHandler(svc service.Service, cartSvc cart.Service) *Handler {
	return &Handler{svc: svc, cartSvc: cartSvc}
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/payment")
	g.POST("/checkout", ginx.S(h.Checkout))
	g.POST("/detail", ginx.BS[OrderSNReq](h.Detail))
}

func (h *Handler) PublicRoutes(_ *gin.Engine) {}

// Checkout 把当前购物车整车生成或调整一笔支付意图, 意图SN存回购物车
func (h *Handler) Checkout(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	uid := sess.Claims().Uid
	c, err := h.cartSvc.Cart(ctx.Request.Context(), uid)
	if err != nil {
		return systemErrorResult, err
	}
	if len(c.Items) == 0 {
		return cartEmptyResult, fmt.Errorf("购物车为空: uid: %d", uid)
	}
	subtotal := c.Subtotal()
	amount := subtotal + pricing.ShippingFee(subtotal, c.ContainsPhysical())
	intent, err := h.svc.CreateOrUpdateIntent(ctx.Request.Context(),
		c.PaymentIntentSN, amount, "山茶商城购物车结算")
	if err != nil {
		return systemErrorResult, err
	}
	if intent.SN != c.PaymentIntentSN {
		if er := h.cartSvc.UpdateIntentSN(ctx.Request.Context(), c.ID, intent.SN); er != nil {
			return systemErrorResult, er
		}
	}
	return ginx.Result{Data: CheckoutResp{
		IntentSN: intent.SN,
		CodeURL:  intent.CodeURL,
		Amount:   amount,
	}}, nil
}

func (h *Handler) Detail(ctx *ginx.Context, req OrderSNReq, _ session.Session) (ginx.Result, error) {
	pmt, err := h.svc.FindByOrderSN(ctx.Request.Context(), req.OrderSN)
	if errors.Is(err, service.ErrPaymentNotFound) {
		return paymentNotFoundResult, err
	}
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: newPayment(pmt)}, nil
}
