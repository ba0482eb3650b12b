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

package service

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/camellia-mall/camellia/internal/user/internal/domain"
	"github.com/ecodeclub/ekit/net/httpx"
	uuid "github.com/lithammer/shortuuid/v4"
)

const authURLPattern = "https://open.weixin.qq.com/connect/qrconnect?appid=%s&redirect_uri=%s&response_type=code&scope=snsapi_login&state=%s#wechat_redirect"

type OAuth2Service interface {
	AuthURL() (string, error)
	VerifyCode(ctx context.Context, code string) (domain.WechatInfo, error)
}

type WechatOAuth2Service struct {
	appId       string
	appSecret   string
	redirectURL string
	client      *http.Client
}

func NewWechatOAuth2Service(appId, appSecret, redirectURL string) OAuth2Service {
	return &WechatOAuth2Service{
		appId:       appId,
		appSecret:   appSecret,
		redirectURL: url.PathEscape(redirectURL),
		client:      http.DefaultClient,
	}
}

func (s *WechatOAuth2Service) AuthURL() (string, error) {
	state := uuid.New()
	return fmt.Sprintf(authURLPattern, s.appId, s.redirectURL, state), nil
}

func (s *WechatOAuth2Service) VerifyCode(ctx context.Context, code string) (domain.WechatInfo, error) {
	const baseURL = "https://api.weixin.qq.com/sns/oauth2/access_token"
	var res accessTokenResult
	err := httpx.NewRequest(ctx, http.MethodGet, baseURL).
		Client(s.client).
		AddParam("appid", s.appId).
		AddParam("secret", s.appSecret).
		AddParam("code", code).
		AddParam("grant_type", "authorization_code").Do().
		JSONScan(&res)
	if err != nil {
		return domain.WechatInfo{}, err
	}
	if res.ErrCode != 0 {
		return domain.WechatInfo{},
			fmt.Errorf("换取 access_token 失败 %d, %s", res.ErrCode, res.ErrMsg)
	}
	return domain.WechatInfo{
		OpenId:  res.OpenId,
		UnionId: res.UnionId,
	}, nil
}

type accessTokenResult struct {
	ErrCode int64  `json:"errcode"`
	ErrMsg  string `json:"errmsg"`

	AccessToken  string `json:"access_token"`
	ExpiresIn    int64  `json:"expires_in"`
	RefreshToken string `json:"refresh_token"`
	Scope        string `json:"scope"`

	OpenId  string `json:"openid"`
	UnionId string `json:"unionid"`
}
