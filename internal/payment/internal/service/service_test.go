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
	"testing"

	"github.com/camellia-mall/camellia/internal/payment/internal/domain"
	"github.com/camellia-mall/camellia/internal/payment/internal/event"
	"github.com/camellia-mall/camellia/internal/payment/internal/repository"
	paymentmocks "github.com/camellia-mall/camellia/internal/payment/mocks"
	"github.com/camellia-mall/camellia/internal/pkg/sequencenumber"
	"github.com/gotomicro/ego/core/elog"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fakePaymentRepo struct {
	payments  map[string]domain.Payment
	refunds   map[string]int64
	markPaid  func(intentSN string, status domain.PaymentStatus) error
	addRefund func(sn string, amount int64) error
}

func newFakePaymentRepo(pmts ...domain.Payment) *fakePaymentRepo {
	r := &fakePaymentRepo{
		payments: make(map[string]domain.Payment, len(pmts)),
		refunds:  make(map[string]int64),
	}
	for _, p := range pmts {
		r.payments[p.SN] = p
	}
	return r
}

func (f *fakePaymentRepo) Create(_ context.Context, pmt domain.Payment) (int64, error) {
	pmt.ID = int64(len(f.payments) + 1)
	f.payments[pmt.SN] = pmt
	return pmt.ID, nil
}

func (f *fakePaymentRepo) FindBySN(_ context.Context, sn string) (domain.Payment, error) {
	pmt, ok := f.payments[sn]
	if !ok {
		return domain.Payment{}, repository.ErrRecordNotFound
	}
	return pmt, nil
}

func (f *fakePaymentRepo) FindByOrderSN(_ context.Context, orderSN string) (domain.Payment, error) {
	for _, pmt := range f.payments {
		if pmt.OrderSN == orderSN {
			return pmt, nil
		}
	}
	return domain.Payment{}, repository.ErrRecordNotFound
}

func (f *fakePaymentRepo) FindByIntentSN(_ context.Context, intentSN string) (domain.Payment, error) {
	for _, pmt := range f.payments {
		if pmt.IntentSN == intentSN {
			return pmt, nil
		}
	}
	return domain.Payment{}, repository.ErrRecordNotFound
}

func (f *fakePaymentRepo) MarkPaid(_ context.Context, intentSN string, status domain.PaymentStatus, _ int64) error {
	if f.markPaid != nil {
		return f.markPaid(intentSN, status)
	}
	for sn, pmt := range f.payments {
		if pmt.IntentSN == intentSN {
			pmt.Status = status
			f.payments[sn] = pmt
			return nil
		}
	}
	return repository.ErrConcurrentUpdate
}

func (f *fakePaymentRepo) AddRefund(_ context.Context, sn string, amount int64) error {
	if f.addRefund != nil {
		return f.addRefund(sn, amount)
	}
	f.refunds[sn] += amount
	pmt := f.payments[sn]
	pmt.RefundedAmount += amount
	if pmt.RefundedAmount >= pmt.TotalAmount {
		pmt.Status = domain.PaymentStatusRefunded
	}
	f.payments[sn] = pmt
	return nil
}

func (f *fakePaymentRepo) FindProcessing(_ context.Context, _, _ int, _ int64) ([]domain.Payment, int64, error) {
	return nil, 0, nil
}

func (f *fakePaymentRepo) List(_ context.Context, _, _ int) ([]domain.Payment, int64, error) {
	return nil, 0, nil
}

type capturingProducer struct {
	events []event.PaymentEvent
}

func (c *capturingProducer) Produce(_ context.Context, evt event.PaymentEvent) error {
	c.events = append(c.events, evt)
	return nil
}

func newTestService(repo repository.PaymentRepository,
	p *paymentmocks.MockProvider,
	producer event.PaymentEventProducer) *service {
	return &service{
		provider: p,
		repo:     repo,
		producer: producer,
		snGen:    sequencenumber.NewGenerator(),
		logger:   elog.DefaultLogger,
	}
}

func TestService_CreateOrUpdateIntent(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		name      string
		currentSN string
		amount    int64
		mock      func(ctrl *gomock.Controller) *paymentmocks.MockProvider
		wantSN    string
		wantErr   error
	}{
		{
			name:      "无现存意图_直接创建",
			currentSN: "",
			amount:    7500,
			mock: func(ctrl *gomock.Controller) *paymentmocks.MockProvider {
				p := paymentmocks.NewMockProvider(ctrl)
				p.EXPECT().CreateIntent(gomock.Any(), int64(7500), gomock.Any()).
					Return(domain.Intent{SN: "intent-new", Amount: 7500, Status: domain.IntentStatusCreated}, nil)
				return p
			},
			wantSN: "intent-new",
		},
		{
			name:      "金额未变_复用现存意图",
			currentSN: "intent-1",
			amount:    7500,
			mock: func(ctrl *gomock.Controller) *paymentmocks.MockProvider {
				p := paymentmocks.NewMockProvider(ctrl)
				p.EXPECT().GetIntent(gomock.Any(), "intent-1").
					Return(domain.Intent{SN: "intent-1", Amount: 7500, Status: domain.IntentStatusCreated}, nil)
				return p
			},
			wantSN: "intent-1",
		},
		{
			name:      "金额变了_原地改价",
			currentSN: "intent-1",
			amount:    8000,
			mock: func(ctrl *gomock.Controller) *paymentmocks.MockProvider {
				p := paymentmocks.NewMockProvider(ctrl)
				p.EXPECT().GetIntent(gomock.Any(), "intent-1").
					Return(domain.Intent{SN: "intent-1", Amount: 7500, Status: domain.IntentStatusCreated}, nil)
				p.EXPECT().UpdateIntent(gomock.Any(), "intent-1", int64(8000)).
					Return(domain.Intent{SN: "intent-1", Amount: 8000, Status: domain.IntentStatusCreated}, nil)
				return p
			},
			wantSN: "intent-1",
		},
		{
			name:      "意图已关闭_换新意图",
			currentSN: "intent-1",
			amount:    8000,
			mock: func(ctrl *gomock.Controller) *paymentmocks.MockProvider {
				p := paymentmocks.NewMockProvider(ctrl)
				p.EXPECT().GetIntent(gomock.Any(), "intent-1").
					Return(domain.Intent{SN: "intent-1", Amount: 7500, Status: domain.IntentStatusClosed}, nil)
				p.EXPECT().CreateIntent(gomock.Any(), int64(8000), gomock.Any()).
					Return(domain.Intent{SN: "intent-2", Amount: 8000, Status: domain.IntentStatusCreated}, nil)
				return p
			},
			wantSN: "intent-2",
		},
		{
			name:      "查询远端失败_换新意图",
			currentSN: "intent-1",
			amount:    8000,
			mock: func(ctrl *gomock.Controller) *paymentmocks.MockProvider {
				p := paymentmocks.NewMockProvider(ctrl)
				p.EXPECT().GetIntent(gomock.Any(), "intent-1").
					Return(domain.Intent{}, errors.New("provider down"))
				p.EXPECT().CreateIntent(gomock.Any(), int64(8000), gomock.Any()).
					Return(domain.Intent{SN: "intent-2", Amount: 8000, Status: domain.IntentStatusCreated}, nil)
				return p
			},
			wantSN: "intent-2",
		},
		{
			name:      "改价失败_换新意图",
			currentSN: "intent-1",
			amount:    8000,
			mock: func(ctrl *gomock.Controller) *paymentmocks.MockProvider {
				p := paymentmocks.NewMockProvider(ctrl)
				p.EXPECT().GetIntent(gomock.Any(), "intent-1").
					Return(domain.Intent{SN: "intent-1", Amount: 7500, Status: domain.IntentStatusCreated}, nil)
				p.EXPECT().UpdateIntent(gomock.Any(), "intent-1", int64(8000)).
					Return(domain.Intent{}, errors.New("关单失败"))
				p.EXPECT().CreateIntent(gomock.Any(), int64(8000), gomock.Any()).
					Return(domain.Intent{SN: "intent-2", Amount: 8000, Status: domain.IntentStatusCreated}, nil)
				return p
			},
			wantSN: "intent-2",
		},
		{
			name:      "金额非法",
			currentSN: "",
			amount:    0,
			mock: func(ctrl *gomock.Controller) *paymentmocks.MockProvider {
				return paymentmocks.NewMockProvider(ctrl)
			},
			wantErr: ErrInvalidAmount,
		},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			svc := newTestService(newFakePaymentRepo(), tc.mock(ctrl), &capturingProducer{})
			intent, err := svc.CreateOrUpdateIntent(context.Background(), tc.currentSN, tc.amount, "测试订单")
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantSN, intent.SN)
			assert.Equal(t, tc.amount, intent.Amount)
		})
	}
}

func TestService_Refund(t *testing.T) {
	t.Parallel()
	paid := domain.Payment{
		ID:          1,
		SN:          "pmt-1",
		OrderSN:     "order-1",
		IntentSN:    "intent-1",
		TotalAmount: 10000,
		Status:      domain.PaymentStatusPaidSuccess,
	}

	t.Run("支付记录不存在", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		svc := newTestService(newFakePaymentRepo(), paymentmocks.NewMockProvider(ctrl), &capturingProducer{})
		err := svc.Refund(context.Background(), "pmt-miss", 100)
		assert.ErrorIs(t, err, ErrPaymentNotFound)
	})

	t.Run("未支付不可退", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		unpaid := paid
		unpaid.Status = domain.PaymentStatusUnpaid
		svc := newTestService(newFakePaymentRepo(unpaid), paymentmocks.NewMockProvider(ctrl), &capturingProducer{})
		err := svc.Refund(context.Background(), "pmt-1", 100)
		assert.ErrorIs(t, err, ErrPaymentNotRefundable)
	})

	t.Run("超出可退余额", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		partially := paid
		partially.RefundedAmount = 9000
		svc := newTestService(newFakePaymentRepo(partially), paymentmocks.NewMockProvider(ctrl), &capturingProducer{})
		err := svc.Refund(context.Background(), "pmt-1", 1500)
		assert.ErrorIs(t, err, ErrRefundAmountExceeded)
	})

	t.Run("全额退完翻转为已退款", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		provider := paymentmocks.NewMockProvider(ctrl)
		provider.EXPECT().Refund(gomock.Any(), "intent-1", gomock.Any(), int64(10000), int64(10000)).
			Return("wx-refund-1", nil)
		repo := newFakePaymentRepo(paid)
		svc := newTestService(repo, provider, &capturingProducer{})
		err := svc.Refund(context.Background(), "pmt-1", 10000)
		require.NoError(t, err)
		got := repo.payments["pmt-1"]
		assert.Equal(t, int64(10000), got.RefundedAmount)
		assert.Equal(t, domain.PaymentStatusRefunded, got.Status)
	})

	t.Run("并发退款台账拒绝入账", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		provider := paymentmocks.NewMockProvider(ctrl)
		provider.EXPECT().Refund(gomock.Any(), "intent-1", gomock.Any(), int64(6000), int64(10000)).
			Return("wx-refund-2", nil)
		repo := newFakePaymentRepo(paid)
		// 另一笔退款抢先入账, 台账守护条件拦下这一笔
		repo.addRefund = func(string, int64) error {
			return repository.ErrConcurrentUpdate
		}
		svc := newTestService(repo, provider, &capturingProducer{})
		err := svc.Refund(context.Background(), "pmt-1", 6000)
		assert.ErrorIs(t, err, ErrRefundAmountExceeded)
	})

	t.Run("提供方退款失败不落账", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		provider := paymentmocks.NewMockProvider(ctrl)
		provider.EXPECT().Refund(gomock.Any(), "intent-1", gomock.Any(), int64(500), int64(10000)).
			Return("", errors.New("余额不足"))
		repo := newFakePaymentRepo(paid)
		svc := newTestService(repo, provider, &capturingProducer{})
		err := svc.Refund(context.Background(), "pmt-1", 500)
		require.Error(t, err)
		assert.Equal(t, int64(0), repo.payments["pmt-1"].RefundedAmount)
	})
}

func TestService_HandlePaidCallback(t *testing.T) {
	t.Parallel()
	pmt := domain.Payment{
		ID:          1,
		SN:          "pmt-1",
		OrderSN:     "order-1",
		IntentSN:    "intent-1",
		TotalAmount: 10000,
		Status:      domain.PaymentStatusUnpaid,
	}

	t.Run("成功落账并发事件", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := newFakePaymentRepo(pmt)
		producer := &capturingProducer{}
		svc := newTestService(repo, paymentmocks.NewMockProvider(ctrl), producer)
		err := svc.HandlePaidCallback(context.Background(), "intent-1", domain.PaymentStatusPaidSuccess)
		require.NoError(t, err)
		assert.Equal(t, domain.PaymentStatusPaidSuccess, repo.payments["pmt-1"].Status)
		require.Len(t, producer.events, 1)
		assert.Equal(t, event.PaymentEvent{
			OrderSN:   "order-1",
			PaymentSN: "pmt-1",
			Status:    domain.PaymentStatusPaidSuccess.ToUint8(),
		}, producer.events[0])
	})

	t.Run("重复回调幂等", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := newFakePaymentRepo(pmt)
		repo.markPaid = func(string, domain.PaymentStatus) error {
			return repository.ErrConcurrentUpdate
		}
		producer := &capturingProducer{}
		svc := newTestService(repo, paymentmocks.NewMockProvider(ctrl), producer)
		err := svc.HandlePaidCallback(context.Background(), "intent-1", domain.PaymentStatusPaidSuccess)
		require.NoError(t, err)
		assert.Empty(t, producer.events)
	})

	t.Run("未知意图", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		svc := newTestService(newFakePaymentRepo(), paymentmocks.NewMockProvider(ctrl), &capturingProducer{})
		err := svc.HandlePaidCallback(context.Background(), "intent-miss", domain.PaymentStatusPaidSuccess)
		assert.ErrorIs(t, err, ErrPaymentNotFound)
	})
}
