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

	"github.com/camellia-mall/camellia/internal/notification/internal/service"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-gonic/gin"
)

var _ ginx.Handler = (*Handler)(nil)

type Handler struct {
	svc service.Service
}

func NewHandler(svc service.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/notification")
	g.POST("/list", ginx.BS[ListReq](h.List))
	g.POST("/read", ginx.BS[ReadReq](h.MarkRead))
	g.POST("/read-all", ginx.S(h.MarkAllRead))
}

func (h *Handler) PublicRoutes(_ *gin.Engine) {}

func (h *Handler) List(ctx *ginx.Context, req ListReq, sess session.Session) (ginx.Result, error) {
	notices, unread, err := h.svc.List(ctx.Request.Context(), sess.Claims().Uid, req.Offset, req.Limit)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: NoticesResp{
		Notices: newNotices(notices),
		Unread:  unread,
	}}, nil
}

func (h *Handler) MarkRead(ctx *ginx.Context, req ReadReq, sess session.Session) (ginx.Result, error) {
	err := h.svc.MarkRead(ctx.Request.Context(), sess.Claims().Uid, req.ID)
	if errors.Is(err, service.ErrNoticeNotFound) {
		return noticeNotFoundResult, err
	}
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *Handler) MarkAllRead(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	if err := h.svc.MarkAllRead(ctx.Request.Context(), sess.Claims().Uid); err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Msg: "OK"}, nil
}
