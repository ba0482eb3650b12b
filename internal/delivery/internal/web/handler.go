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

	"github.com/camellia-mall/camellia/internal/delivery/internal/domain"
	"github.com/camellia-mall/camellia/internal/delivery/internal/service"
	"github.com/ecodeclub/ekit/slice"
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
	g := server.Group("/delivery")
	g.POST("/list", ginx.BS[ListReq](h.List))
	g.POST("/download", ginx.BS[DownloadReq](h.Download))
}

func (h *Handler) PublicRoutes(_ *gin.Engine) {}

func (h *Handler) List(ctx *ginx.Context, req ListReq, sess session.Session) (ginx.Result, error) {
	grants, total, err := h.svc.ListByBuyer(ctx.Request.Context(), sess.Claims().Uid, req.Offset, req.Limit)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: ListResp{
			Total: total,
			Grants: slice.Map(grants, func(_ int, src domain.DownloadGrant) Grant {
				return newGrant(src)
			}),
		},
	}, nil
}

func (h *Handler) Download(ctx *ginx.Context, req DownloadReq, sess session.Session) (ginx.Result, error) {
	fileURL, err := h.svc.Consume(ctx.Request.Context(), req.Token, sess.Claims().Uid)
	switch {
	case errors.Is(err, service.ErrGrantNotFound):
		return grantNotFoundResult, err
	case errors.Is(err, service.ErrGrantUnusable):
		return grantUnusableResult, err
	case err != nil:
		return systemErrorResult, err
	}
	return ginx.Result{Data: DownloadResp{FileURL: fileURL}}, nil
}
