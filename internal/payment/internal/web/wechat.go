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
	"github.com/camellia-mall/camellia/internal/payment/internal/service"
	"github.com/camellia-mall/camellia/internal/payment/internal/service/wechat"
	"github.com/ecodeclub/ginx"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/elog"
	"github.com/wechatpay-apiv3/wechatpay-go/services/payments"
)

var _ ginx.Handler = (*WechatHandler)(nil)

type WechatHandler struct {
	handler wechat.NotifyHandler
	svc     service.Service
	l       *elog.Component
}

func NewWechatHandler(handler wechat.NotifyHandler, svc service.Service) *WechatHandler {
	return &WechatHandler{
		handler: handler,
		svc:     svc,
		l:       elog.DefaultLogger,
	}
}

func (h *WechatHandler) PrivateRoutes(_ *gin.Engine) {}

func (h *WechatHandler) PublicRoutes(server *gin.Engine) {
	server.Any("/pay/callback", ginx.W(h.HandleNativeCallback))
}

func (h *WechatHandler) HandleNativeCallback(ctx *ginx.Context) (ginx.Result, error) {
	transaction := &payments.Transaction{}
	// 验签失败直接报错, 不会走到业务逻辑
	_, err := h.handler.ParseNotifyRequest(ctx.Request.Context(), ctx.Request, transaction)
	if err != nil {
		return ginx.Result{}, err
	}
	intentSN, status, err := wechat.CallbackStatus(transaction)
	if err != nil {
		// 中间态通知, 记一笔即可
		h.l.Warn("忽略微信支付通知", elog.FieldErr(err))
		return ginx.Result{}, nil
	}
	err = h.svc.HandlePaidCallback(ctx.Request.Context(), intentSN, status)
	return ginx.Result{}, err
}
