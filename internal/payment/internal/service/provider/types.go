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

package provider

import (
	"context"

	"github.com/camellia-mall/camellia/internal/payment/internal/domain"
	"github.com/pkg/errors"
)

var (
	// ErrIntentNotFound 提供方侧不存在这笔意图
	ErrIntentNotFound = errors.New("支付意图不存在")
	// ErrIntentUnusable 意图已进入不可修改的状态
	ErrIntentUnusable = errors.New("支付意图不可用")
)

// Provider 第三方支付提供方的统一口径
//
//go:generate mockgen -source=./types.go -destination=../../../mocks/provider.mock.go -package=paymentmocks -typed Provider
type Provider interface {
	// CreateIntent 创建一笔新意图, 金额单位为分
	CreateIntent(ctx context.Context, amount int64, description string) (domain.Intent, error)
	// UpdateIntent 改金额, 只有未支付的意图可改
	UpdateIntent(ctx context.Context, sn string, amount int64) (domain.Intent, error)
	// GetIntent 查询提供方侧的真实状态
	GetIntent(ctx context.Context, sn string) (domain.Intent, error)
	// Refund 按金额退款, 返回提供方退款单号
	Refund(ctx context.Context, intentSN, refundSN string, amount, total int64) (string, error)
}
