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
	"strconv"

	"github.com/camellia-mall/camellia/internal/user/internal/domain"
	"github.com/camellia-mall/camellia/internal/user/internal/service"
	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-gonic/gin"
)

var _ ginx.Handler = (*Handler)(nil)

type Handler struct {
	weSvc   service.OAuth2Service
	userSvc service.UserService
	addrSvc service.AddressService
	// admins 白名单里的 wechat unionID 才能进管理后台
	admins []string
}

func NewHandler(weSvc service.OAuth2Service,
	userSvc service.UserService,
	addrSvc service.AddressService,
	admins []string) *Handler {
	return &Handler{
		weSvc:   weSvc,
		userSvc: userSvc,
		addrSvc: addrSvc,
		admins:  admins,
	}
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	users := server.Group("/users")
	users.GET("/profile", ginx.S(h.Profile))
	users.POST("/profile", ginx.BS[EditReq](h.Edit))

	addrs := server.Group("/users/addresses")
	addrs.POST("/list", ginx.S(h.ListAddresses))
	addrs.POST("/save", ginx.BS[SaveAddressReq](h.SaveAddress))
	addrs.POST("/delete", ginx.BS[AddressIDReq](h.DeleteAddress))
	addrs.POST("/default", ginx.BS[AddressIDReq](h.SetDefaultAddress))
}

func (h *Handler) PublicRoutes(server *gin.Engine) {
	oauth2 := server.Group("/oauth2")
	oauth2.GET("/wechat/auth_url", ginx.W(h.WechatAuthURL))
	oauth2.Any("/wechat/callback", ginx.B[WechatCallback](h.Callback))
	oauth2.Any("/wechat/token/refresh", ginx.W(h.RefreshAccessToken))
}

func (h *Handler) WechatAuthURL(_ *ginx.Context) (ginx.Result, error) {
	res, err := h.weSvc.AuthURL()
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: res}, nil
}

func (h *Handler) Callback(ctx *ginx.Context, req WechatCallback) (ginx.Result, error) {
	info, err := h.weSvc.VerifyCode(ctx.Request.Context(), req.Code)
	if err != nil {
		return systemErrorResult, err
	}
	user, err := h.userSvc.FindOrCreateByWechat(ctx.Request.Context(), info)
	if err != nil {
		return systemErrorResult, err
	}
	admin := slice.Contains(h.admins, user.WechatInfo.UnionId)
	_, err = session.NewSessionBuilder(ctx, user.ID).
		SetJwtData(map[string]string{
			"admin": strconv.FormatBool(admin),
		}).Build()
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: Profile{
		Nickname: user.Nickname,
		Avatar:   user.Avatar,
		Email:    user.Email,
		Phone:    user.Phone,
		IsAdmin:  admin,
	}}, nil
}

func (h *Handler) RefreshAccessToken(ctx *ginx.Context) (ginx.Result, error) {
	if err := session.RenewAccessToken(ctx); err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *Handler) Profile(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	u, err := h.userSvc.Profile(ctx.Request.Context(), sess.Claims().Uid)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: Profile{
		Nickname: u.Nickname,
		Avatar:   u.Avatar,
		Email:    u.Email,
		Phone:    u.Phone,
	}}, nil
}

func (h *Handler) Edit(ctx *ginx.Context, req EditReq, sess session.Session) (ginx.Result, error) {
	err := h.userSvc.UpdateNonSensitiveInfo(ctx.Request.Context(), domain.User{
		ID:       sess.Claims().Uid,
		Nickname: req.Nickname,
		Avatar:   req.Avatar,
		Email:    req.Email,
		Phone:    req.Phone,
	})
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *Handler) ListAddresses(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	addrs, err := h.addrSvc.List(ctx.Request.Context(), sess.Claims().Uid)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: newAddresses(addrs)}, nil
}

func (h *Handler) SaveAddress(ctx *ginx.Context, req SaveAddressReq, sess session.Session) (ginx.Result, error) {
	id, err := h.addrSvc.Save(ctx.Request.Context(), req.Address.toDomain(sess.Claims().Uid))
	switch {
	case errors.Is(err, service.ErrInvalidAddress):
		return invalidAddressResult, err
	case errors.Is(err, service.ErrAddressNotFound):
		return addressNotFoundResult, err
	case err != nil:
		return systemErrorResult, err
	}
	return ginx.Result{Data: id}, nil
}

func (h *Handler) DeleteAddress(ctx *ginx.Context, req AddressIDReq, sess session.Session) (ginx.Result, error) {
	err := h.addrSvc.Delete(ctx.Request.Context(), sess.Claims().Uid, req.ID)
	if errors.Is(err, service.ErrAddressNotFound) {
		return addressNotFoundResult, err
	}
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *Handler) SetDefaultAddress(ctx *ginx.Context, req AddressIDReq, sess session.Session) (ginx.Result, error) {
	err := h.addrSvc.SetDefault(ctx.Request.Context(), sess.Claims().Uid, req.ID)
	if errors.Is(err, service.ErrAddressNotFound) {
		return addressNotFoundResult, err
	}
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Msg: "OK"}, nil
}
