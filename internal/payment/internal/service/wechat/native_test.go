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
	"testing"

	"github.com/camellia-mall/camellia/internal/payment/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wechatpay-apiv3/wechatpay-go/core"
	"github.com/wechatpay-apiv3/wechatpay-go/services/payments"
)

func TestCallbackStatus(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		name       string
		tradeState string
		wantStatus domain.PaymentStatus
		wantErr    bool
	}{
		{
			name:       "支付成功",
			tradeState: "SUCCESS",
			wantStatus: domain.PaymentStatusPaidSuccess,
		},
		{
			name:       "支付失败",
			tradeState: "PAYERROR",
			wantStatus: domain.PaymentStatusPaidFailed,
		},
		{
			name:       "已关闭",
			tradeState: "CLOSED",
			wantStatus: domain.PaymentStatusPaidFailed,
		},
		{
			name:       "支付中是中间态",
			tradeState: "USERPAYING",
			wantErr:    true,
		},
		{
			name:       "未支付是中间态",
			tradeState: "NOTPAY",
			wantErr:    true,
		},
		{
			name:       "未知状态",
			tradeState: "WHATEVER",
			wantErr:    true,
		},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			txn := &payments.Transaction{
				OutTradeNo: core.String("intent-1"),
				TradeState: core.String(tc.tradeState),
			}
			sn, status, err := CallbackStatus(txn)
			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "intent-1", sn)
			assert.Equal(t, tc.wantStatus, status)
		})
	}
}
