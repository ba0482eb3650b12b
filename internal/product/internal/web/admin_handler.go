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

// AdminHandler 运营侧商品管理接口, 挂在管理端口上
type AdminHandler struct {
	svc service.Service
}

func NewAdminHandler(svc service.Service) *AdminHandler {
	return &AdminHandler{svc: svc}
}

func (h *AdminHandler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/product")
	g.POST("/detail", ginx.B[IDReq](h.Detail))
	g.POST("/list", ginx.B[ListSPUsReq](h.List))
	g.POST("/save", ginx.B[SaveSPUReq](h.SaveSPU))
	g.POST("/sku/save", ginx.B[SaveSKUReq](h.SaveSKU))
	g.POST("/category/save", ginx.B[SaveCategoryReq](h.SaveCategory))
	g.POST("/category/list", ginx.W(h.Categories))
	g.POST("/attribute/save", ginx.B[SaveAttributeReq](h.SaveAttribute))
	g.POST("/attribute/value/save", ginx.B[SaveAttributeValueReq](h.SaveAttributeValue))
	g.POST("/attribute/list", ginx.W(h.Attributes))
}

func (h *AdminHandler) PublicRoutes(_ *gin.Engine) {}

// Detail 管理端详情, 不过滤上下架状态
func (h *AdminHandler) Detail(ctx *ginx.Context, req IDReq) (ginx.Result, error) {
	spu, err := h.svc.FindSPUByID(ctx.Request.Context(), req.ID)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: newSPU(spu)}, nil
}

func (h *AdminHandler) List(ctx *ginx.Context, req ListSPUsReq) (ginx.Result, error) {
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

func (h *AdminHandler) SaveSPU(ctx *ginx.Context, req SaveSPUReq) (ginx.Result, error) {
	id, err := h.svc.SaveSPU(ctx.Request.Context(), req.SPU.newDomainSPU())
	if errors.Is(err, service.ErrDigitalFileRequired) {
		return invalidDigitalSPUResult, err
	}
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: SaveResp{ID: id}}, nil
}

func (h *AdminHandler) SaveSKU(ctx *ginx.Context, req SaveSKUReq) (ginx.Result, error) {
	id, err := h.svc.SaveSKU(ctx.Request.Context(), req.SKU.newDomainSKU())
	switch {
	case errors.Is(err, service.ErrEmptyAttrs):
		return invalidSKUAttrsResult, err
	case errors.Is(err, service.ErrDuplicatedAttrs):
		return duplicatedAttrsResult, err
	case err != nil:
		return systemErrorResult, err
	}
	return ginx.Result{Data: SaveResp{ID: id}}, nil
}

func (h *AdminHandler) SaveCategory(ctx *ginx.Context, req SaveCategoryReq) (ginx.Result, error) {
	id, err := h.svc.SaveCategory(ctx.Request.Context(), domain.Category{
		ID:   req.Category.ID,
		Name: req.Category.Name,
		Sort: req.Category.Sort,
	})
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: SaveResp{ID: id}}, nil
}

func (h *AdminHandler) Categories(ctx *ginx.Context) (ginx.Result, error) {
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

func (h *AdminHandler) SaveAttribute(ctx *ginx.Context, req SaveAttributeReq) (ginx.Result, error) {
	id, err := h.svc.SaveAttribute(ctx.Request.Context(), domain.Attribute{
		ID:   req.Attribute.ID,
		Name: req.Attribute.Name,
	})
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: SaveResp{ID: id}}, nil
}

func (h *AdminHandler) SaveAttributeValue(ctx *ginx.Context, req SaveAttributeValueReq) (ginx.Result, error) {
	id, err := h.svc.SaveAttributeValue(ctx.Request.Context(), domain.AttributeValue{
		ID:          req.Value.ID,
		AttributeID: req.Value.AttributeID,
		Value:       req.Value.Value,
	})
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: SaveResp{ID: id}}, nil
}

func (h *AdminHandler) Attributes(ctx *ginx.Context) (ginx.Result, error) {
	attrs, err := h.svc.Attributes(ctx.Request.Context())
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: AttributesResp{
			Attributes: slice.Map(attrs, func(_ int, src domain.Attribute) Attribute {
				return newAttribute(src)
			}),
		},
	}, nil
}
