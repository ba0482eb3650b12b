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

package domain

import "time"

const (
	// MaxDownloads 单条授权允许下载的次数
	MaxDownloads int64 = 3
	// GrantTTL 授权有效期
	GrantTTL = 30 * 24 * time.Hour
)

// DownloadGrant 虚拟商品下载授权, 一个订单条目一条
type DownloadGrant struct {
	ID            int64
	OrderSN       string
	OrderItemID   int64
	BuyerID       int64
	ProductName   string
	FileURL       string
	Token         string
	ExpiresAt     int64
	DownloadCount int64
	MaxDownloads  int64
	Completed     bool
	Ctime         int64
}

func (g DownloadGrant) Expired(now time.Time) bool {
	return now.UnixMilli() >= g.ExpiresAt
}

func (g DownloadGrant) Exhausted() bool {
	return g.DownloadCount >= g.MaxDownloads
}

// GrantRequest 订单进入Delivered后发起的授权请求
type GrantRequest struct {
	OrderSN    string
	BuyerID    int64
	BuyerEmail string
	Items      []GrantItem
}

// GrantItem 订单条目里虚拟商品的快照
type GrantItem struct {
	OrderItemID int64
	SPUID       int64
	ProductName string
	FileURL     string
}
