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

package wechat

import (
	"context"
	"fmt"
	"time"

	"github.com/camellia-mall/camellia/internal/payment/internal/domain"
	"github.com/camellia-mall/camellia/internal/payment/internal/service/provider"
	"github.com/camellia-mall/camellia/internal/pkg/sequencenumber"
	"github.com/gotomicro/ego/core/elog"
	"github.com/pkg/errors"
	"github.com/wechatpay-apiv3/wechatpay-go/core"
	"github.com/wechatpay-apiv3/wechatpay-go/services/payments"
	"github.com/wechatpay-apiv3/wechatpay-go/services/payments/native"
	"github.com/wechatpay-apiv3/wechatpay-go/services/refunddomestic"
)

var errUnknownTransactionState = errors.New("未知的微信事务状态")

// 微信 native 的 trade_state:
// SUCCESS：支付成功
// REFUND：转入退款
// NOTPAY：未支付
// CLOSED：已关闭
// REVOKED：已撤销（付款码支付）
// USERPAYING：用户支付中（付款码支付）
// PAYERROR：支付失败(其他原因，如银行返回失败)
var tradeStateToIntentStatus = map[string]domain.IntentStatus{
	"SUCCESS":    domain.IntentStatusCaptured,
	"REFUND":     domain.IntentStatusCaptured,
	"NOTPAY":     domain.IntentStatusCreated,
	"CLOSED":     domain.IntentStatusClosed,
	"REVOKED":    domain.IntentStatusClosed,
	"USERPAYING": domain.IntentStatusProcessing,
	"PAYERROR":   domain.IntentStatusClosed,
}

//go:generate mockgen -source=./native.go -package=wechatmocks -destination=./mocks/native.mock.go -typed NativeAPIService
type NativeAPIService interface {
	Prepay(ctx context.Context, req native.PrepayRequest) (resp *native.PrepayResponse, result *core.APIResult, err error)
	QueryOrderByOutTradeNo(ctx context.Context, req native.QueryOrderByOutTradeNoRequest) (resp *payments.Transaction, result *core.APIResult, err error)
	CloseOrder(ctx context.Context, req native.CloseOrderRequest) (result *core.APIResult, err error)
}

type RefundAPIService interface {
	Create(ctx context.Context, req refunddomestic.CreateRequest) (resp *refunddomestic.Refund, result *core.APIResult, err error)
}

var _ provider.Provider = (*NativeProvider)(nil)

// NativeProvider 微信Native扫码收款, 一笔意图即一笔以out-trade-no标识的预支付单
type NativeProvider struct {
	svc       NativeAPIService
	refundSvc RefundAPIService
	snGen     *sequencenumber.Generator
	l         *elog.Component

	appID     string
	mchID     string
	notifyURL string
}

func NewNativeProvider(svc NativeAPIService,
	refundSvc RefundAPIService,
	snGen *sequencenumber.Generator,
	appID, mchID, notifyURL string) *NativeProvider {
	return &NativeProvider{
		svc:       svc,
		refundSvc: refundSvc,
		snGen:     snGen,
		l:         elog.DefaultLogger,
		appID:     appID,
		mchID:     mchID,
		notifyURL: notifyURL,
	}
}

func (n *NativeProvider) CreateIntent(ctx context.Context, amount int64, description string) (domain.Intent, error) {
	sn, err := n.snGen.Generate(amount)
	if err != nil {
		return domain.Intent{}, fmt.Errorf("生成意图SN失败: %w", err)
	}
	return n.prepay(ctx, sn, amount, description)
}

// UpdateIntent 微信不支持直接改金额, 先关单再用同一个out-trade-no重新预下单
func (n *NativeProvider) UpdateIntent(ctx context.Context, sn string, amount int64) (domain.Intent, error) {
	_, err := n.svc.CloseOrder(ctx, native.CloseOrderRequest{
		OutTradeNo: core.String(sn),
		Mchid:      core.String(n.mchID),
	})
	if err != nil {
		return domain.Intent{}, fmt.Errorf("%w: 关闭微信预支付单失败: %s", provider.ErrIntentUnusable, err.Error())
	}
	return n.prepay(ctx, sn, amount, "")
}

func (n *NativeProvider) GetIntent(ctx context.Context, sn string) (domain.Intent, error) {
	txn, _, err := n.svc.QueryOrderByOutTradeNo(ctx, native.QueryOrderByOutTradeNoRequest{
		OutTradeNo: core.String(sn),
		Mchid:      core.String(n.mchID),
	})
	if err != nil {
		return domain.Intent{}, fmt.Errorf("%w: %s", provider.ErrIntentNotFound, err.Error())
	}
	status, ok := tradeStateToIntentStatus[*txn.TradeState]
	if !ok {
		return domain.Intent{}, fmt.Errorf("%w: %s", errUnknownTransactionState, *txn.TradeState)
	}
	var amount int64
	if txn.Amount != nil && txn.Amount.Total != nil {
		amount = *txn.Amount.Total
	}
	return domain.Intent{
		SN:     sn,
		Amount: amount,
		Status: status,
	}, nil
}

func (n *NativeProvider) Refund(ctx context.Context, intentSN, refundSN string, amount, total int64) (string, error) {
	resp, _, err := n.refundSvc.Create(ctx, refunddomestic.CreateRequest{
		OutTradeNo:  core.String(intentSN),
		OutRefundNo: core.String(refundSN),
		Amount: &refunddomestic.AmountReq{
			Refund:   core.Int64(amount),
			Total:    core.Int64(total),
			Currency: core.String("CNY"),
		},
	})
	if err != nil {
		return "", fmt.Errorf("微信退款失败: %w", err)
	}
	return *resp.RefundId, nil
}

func (n *NativeProvider) prepay(ctx context.Context, sn string, amount int64, description string) (domain.Intent, error) {
	if description == "" {
		description = "山茶商城订单"
	}
	resp, _, err := n.svc.Prepay(ctx, native.PrepayRequest{
		Appid:       core.String(n.appID),
		Mchid:       core.String(n.mchID),
		Description: core.String(description),
		OutTradeNo:  core.String(sn),
		TimeExpire:  core.Time(time.Now().Add(time.Minute * 30)),
		NotifyUrl:   core.String(n.notifyURL),
		Amount: &native.Amount{
			Currency: core.String("CNY"),
			Total:    core.Int64(amount),
		},
	})
	if err != nil {
		return domain.Intent{}, fmt.Errorf("微信预支付失败: %w", err)
	}
	return domain.Intent{
		SN:      sn,
		Amount:  amount,
		Status:  domain.IntentStatusCreated,
		CodeURL: *resp.CodeUrl,
	}, nil
}

// CallbackStatus 把回调里的事务状态转成支付状态, 忽略中间态
func CallbackStatus(txn *payments.Transaction) (string, domain.PaymentStatus, error) {
	status, ok := tradeStateToIntentStatus[*txn.TradeState]
	if !ok {
		return "", 0, fmt.Errorf("%w: %s", errUnknownTransactionState, *txn.TradeState)
	}
	switch status {
	case domain.IntentStatusCaptured:
		return *txn.OutTradeNo, domain.PaymentStatusPaidSuccess, nil
	case domain.IntentStatusClosed:
		return *txn.OutTradeNo, domain.PaymentStatusPaidFailed, nil
	default:
		return "", 0, fmt.Errorf("忽略的微信支付通知状态: %s", *txn.TradeState)
	}
}
