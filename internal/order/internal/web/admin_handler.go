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
	g := server.Group("/order")
	g.POST("/list", ginx.B[ListReq](h.List))
	g.POST("/detail", ginx.B[SNReq](h.Detail))
	g.POST("/history", ginx.B[IDReq](h.History))
	g.POST("/transition", ginx.B[TransitionReq](h.Transition))
	g.POST("/tracking", ginx.B[TrackingReq](h.UpdateTracking))
}

func (h *AdminHandler) PublicRoutes(_ *gin.Engine) {}

func (h *AdminHandler) List(ctx *ginx.Context, req ListReq) (ginx.Result, error) {
	orders, total, err := h.svc.List(ctx.Request.Context(), req.Offset, req.Limit)
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

func (h *AdminHandler) Detail(ctx *ginx.Context, req SNReq) (ginx.Result, error) {
	order, err := h.svc.FindBySN(ctx.Request.Context(), req.SN)
	if errors.Is(err, service.ErrOrderNotFound) {
		return orderNotFoundResult, err
	}
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: newOrder(order)}, nil
}

func (h *AdminHandler) History(ctx *ginx.Context, req IDReq) (ginx.Result, error) {
	history, err := h.svc.History(ctx.Request.Context(), req.ID)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: slice.Map(history, func(_ int, src domain.StatusHistory) StatusHistory {
		return StatusHistory{
			From:  src.From.ToUint8(),
			To:    src.To.ToUint8(),
			Actor: src.Actor,
			Note:  src.Note,
			Ctime: src.Ctime,
		}
	})}, nil
}

func (h *AdminHandler) Transition(ctx *ginx.Context, req TransitionReq) (ginx.Result, error) {
	err := h.svc.Transition(ctx.Request.Context(), req.ID, domain.Status(req.Target), "admin", req.Note)
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

func (h *AdminHandler) UpdateTracking(ctx *ginx.Context, req TrackingReq) (ginx.Result, error) {
	if err := h.svc.UpdateTracking(ctx.Request.Context(), req.ID, req.TrackingNumber); err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Msg: "OK"}, nil
}
