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

	"github.com/camellia-mall/camellia/internal/product/internal/domain"
	"github.com/camellia-mall/camellia/internal/product/internal/service"
	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/gin-gonic/gin"
)

// Handler 店面侧商品接口, 全部公开访问
type Handler struct {
	svc service.Service
}

func NewHandler(svc service.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) PublicRoutes(server *gin.Engine) {
	g := server.Group("/product")
	g.POST("/detail", ginx.B[SNReq](h.Detail))
	g.POST("/sku/detail", ginx.B[SNReq](h.SKUDetail))
	g.POST("/list", ginx.B[ListSPUsReq](h.List))
	g.POST("/category/list", ginx.W(h.Categories))
}

func (h *Handler) PrivateRoutes(_ *gin.Engine) {}

func (h *Handler) Detail(ctx *ginx.Context, req SNReq) (ginx.Result, error) {
	spu, err := h.svc.FindSPUBySN(ctx.Request.Context(), req.SN)
	if errors.Is(err, service.ErrProductNotFound) {
		return productNotFoundResult, err
	}
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: newSPU(spu)}, nil
}

func (h *Handler) SKUDetail(ctx *ginx.Context, req SNReq) (ginx.Result, error) {
	sku, err := h.svc.FindSKUBySN(ctx.Request.Context(), req.SN)
	if errors.Is(err, service.ErrProductNotFound) {
		return productNotFoundResult, err
	}
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: newSKU(sku)}, nil
}

func (h *Handler) List(ctx *ginx.Context, req ListSPUsReq) (ginx.Result, error) {
	spus, total, err := h.svc.ListSPUs(ctx.Request.Context(), req.Offset, req.Limit, req.CategoryID)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: ListSPUsResp{
			Total: total,
			SPUs: slice.Map(spus, func(_ int, src domain.SPU) SPU {
				return newSPU(src)
			}),
		},
	}, nil
}

func (h *Handler) Categories(ctx *ginx.Context) (ginx.Result, error) {
	cs, err := h.svc.Categories(ctx.Request.Context())
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: CategoriesResp{
			Categories: slice.Map(cs, func(_ int, src domain.Category) Category {
				return newCategory(src)
			}),
		},
	}, nil
}
