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

	"github.com/camellia-mall/camellia/internal/cart/internal/service"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-gonic/gin"
)

type Handler struct {
	svc service.Service
}

func NewHandler(svc service.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/cart")
	g.POST("/detail", ginx.S(h.Detail))
	g.POST("/add", ginx.BS[AddItemReq](h.AddItem))
	g.POST("/quantity", ginx.BS[SetQuantityReq](h.SetQuantity))
	g.POST("/remove", ginx.BS[RemoveItemReq](h.RemoveItem))
	g.POST("/clear", ginx.S(h.Clear))
}

func (h *Handler) PublicRoutes(_ *gin.Engine) {}

func (h *Handler) Detail(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	cart, err := h.svc.Cart(ctx.Request.Context(), sess.Claims().Uid)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: newCart(cart)}, nil
}

func (h *Handler) AddItem(ctx *ginx.Context, req AddItemReq, sess session.Session) (ginx.Result, error) {
	cart, err := h.svc.AddItem(ctx.Request.Context(), sess.Claims().Uid, req.SKUSN, req.Quantity)
	switch {
	case errors.Is(err, service.ErrInvalidQuantity):
		return invalidQuantityResult, err
	case errors.Is(err, service.ErrProductOffShelf):
		return productOffShelfResult, err
	case err != nil:
		return systemErrorResult, err
	}
	return ginx.Result{Data: newCart(cart)}, nil
}

func (h *Handler) SetQuantity(ctx *ginx.Context, req SetQuantityReq, sess session.Session) (ginx.Result, error) {
	cart, err := h.svc.SetQuantity(ctx.Request.Context(), sess.Claims().Uid, req.ItemID, req.Quantity)
	if errors.Is(err, service.ErrCartNotFound) {
		return cartItemNotFoundResult, err
	}
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: newCart(cart)}, nil
}

func (h *Handler) RemoveItem(ctx *ginx.Context, req RemoveItemReq, sess session.Session) (ginx.Result, error) {
	cart, err := h.svc.RemoveItem(ctx.Request.Context(), sess.Claims().Uid, req.ItemID)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: newCart(cart)}, nil
}

func (h *Handler) Clear(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	if err := h.svc.Clear(ctx.Request.Context(), sess.Claims().Uid); err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Msg: "OK"}, nil
}
