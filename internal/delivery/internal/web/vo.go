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

import "github.com/camellia-mall/camellia/internal/delivery/internal/domain"

type ListReq struct {
	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

type ListResp struct {
	Total  int64   `json:"total"`
	Grants []Grant `json:"grants,omitempty"`
}

type DownloadReq struct {
	Token string `json:"token"`
}

type DownloadResp struct {
	FileURL string `json:"fileUrl"`
}

type Grant struct {
	OrderSN       string `json:"orderSn"`
	ProductName   string `json:"productName"`
	Token         string `json:"token"`
	ExpiresAt     int64  `json:"expiresAt"`
	DownloadCount int64  `json:"downloadCount"`
	MaxDownloads  int64  `json:"maxDownloads"`
	Completed     bool   `json:"completed"`
}

func newGrant(g domain.DownloadGrant) Grant {
	return Grant{
		OrderSN:       g.OrderSN,
		ProductName:   g.ProductName,
		Token:         g.Token,
		ExpiresAt:     g.ExpiresAt,
		DownloadCount: g.DownloadCount,
		MaxDownloads:  g.MaxDownloads,
		Completed:     g.Completed,
	}
}
