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

package event

import (
	"context"
	"testing"

	"github.com/camellia-mall/camellia/internal/email"
	emailmocks "github.com/camellia-mall/camellia/internal/email/mocks"
	"github.com/camellia-mall/camellia/internal/notification/internal/domain"
	"github.com/camellia-mall/camellia/internal/order"
	ordermocks "github.com/camellia-mall/camellia/internal/order/mocks"
	smsclient "github.com/camellia-mall/camellia/internal/sms/client"
	"github.com/gotomicro/ego/core/elog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fakeNoticeService struct {
	notices []domain.Notice
}

func (f *fakeNoticeService) Notify(_ context.Context, n domain.Notice) (domain.Notice, error) {
	n.ID = int64(len(f.notices) + 1)
	f.notices = append(f.notices, n)
	return n, nil
}

func (f *fakeNoticeService) List(_ context.Context, _ int64, _, _ int) ([]domain.Notice, int64, error) {
	return f.notices, 0, nil
}

func (f *fakeNoticeService) MarkRead(_ context.Context, _, _ int64) error { return nil }

func (f *fakeNoticeService) MarkAllRead(_ context.Context, _ int64) error { return nil }

type fakeSMSClient struct {
	reqs []smsclient.SendReq
}

func (f *fakeSMSClient) Send(req smsclient.SendReq) (smsclient.SendResp, error) {
	f.reqs = append(f.reqs, req)
	return smsclient.SendResp{}, nil
}

func newTestConsumer(t *testing.T) (*OrderEventConsumer, *fakeNoticeService, *ordermocks.MockService, *emailmocks.MockService, *fakeSMSClient) {
	ctrl := gomock.NewController(t)
	svc := &fakeNoticeService{}
	orderSvc := ordermocks.NewMockService(ctrl)
	emailSvc := emailmocks.NewMockService(ctrl)
	sms := &fakeSMSClient{}
	c := &OrderEventConsumer{
		svc:           svc,
		orderSvc:      orderSvc,
		emailSvc:      emailSvc,
		smsClient:     sms,
		smsTemplateID: "SMS_SHIPPED",
		logger:        elog.DefaultLogger,
	}
	return c, svc, orderSvc, emailSvc, sms
}

func TestOrderEventConsumer_Handle(t *testing.T) {
	t.Parallel()

	t.Run("收款成功_站内信加邮件", func(t *testing.T) {
		t.Parallel()
		c, svc, _, emailSvc, sms := newTestConsumer(t)
		var sent email.Mail
		emailSvc.EXPECT().SendMail(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, mail email.Mail) error {
				sent = mail
				return nil
			})
		err := c.handle(context.Background(), OrderEvent{
			OrderSN:    "ORD-1",
			BuyerID:    1001,
			BuyerEmail: "buyer@example.com",
			FromStatus: 1,
			ToStatus:   orderStatusPaymentReceived,
		})
		require.NoError(t, err)
		require.Len(t, svc.notices, 1)
		assert.Equal(t, int64(1001), svc.notices[0].UID)
		assert.Equal(t, "付款成功", svc.notices[0].Title)
		assert.Contains(t, svc.notices[0].Content, "ORD-1")
		assert.Equal(t, []string{"buyer@example.com"}, sent.To)
		assert.Empty(t, sms.reqs)
	})

	t.Run("发货_站内信邮件加短信", func(t *testing.T) {
		t.Parallel()
		c, svc, orderSvc, emailSvc, sms := newTestConsumer(t)
		emailSvc.EXPECT().SendMail(gomock.Any(), gomock.Any()).Return(nil)
		orderSvc.EXPECT().FindBySN(gomock.Any(), "ORD-2").Return(order.Order{
			SN:              "ORD-2",
			ShippingAddress: order.Address{Phone: "13800000000"},
			TrackingNumber:  "SF123456",
		}, nil)
		err := c.handle(context.Background(), OrderEvent{
			OrderSN:    "ORD-2",
			BuyerID:    1001,
			BuyerEmail: "buyer@example.com",
			FromStatus: 4,
			ToStatus:   orderStatusShipped,
		})
		require.NoError(t, err)
		require.Len(t, svc.notices, 1)
		require.Len(t, sms.reqs, 1)
		assert.Equal(t, []string{"13800000000"}, sms.reqs[0].PhoneNumbers)
		assert.Equal(t, "SMS_SHIPPED", sms.reqs[0].TemplateID)
		assert.Equal(t, "SF123456", sms.reqs[0].TemplateParam["tracking"])
	})

	t.Run("没有电话不发短信", func(t *testing.T) {
		t.Parallel()
		c, _, orderSvc, emailSvc, sms := newTestConsumer(t)
		emailSvc.EXPECT().SendMail(gomock.Any(), gomock.Any()).Return(nil)
		orderSvc.EXPECT().FindBySN(gomock.Any(), "ORD-3").Return(order.Order{SN: "ORD-3"}, nil)
		err := c.handle(context.Background(), OrderEvent{
			OrderSN:    "ORD-3",
			BuyerID:    1001,
			BuyerEmail: "buyer@example.com",
			ToStatus:   orderStatusShipped,
		})
		require.NoError(t, err)
		assert.Empty(t, sms.reqs)
	})

	t.Run("备货中只发站内信", func(t *testing.T) {
		t.Parallel()
		c, svc, _, _, sms := newTestConsumer(t)
		err := c.handle(context.Background(), OrderEvent{
			OrderSN:    "ORD-4",
			BuyerID:    1001,
			BuyerEmail: "buyer@example.com",
			ToStatus:   orderStatusProcessing,
		})
		require.NoError(t, err)
		require.Len(t, svc.notices, 1)
		assert.Empty(t, sms.reqs)
	})

	t.Run("无关状态直接跳过", func(t *testing.T) {
		t.Parallel()
		c, svc, _, _, _ := newTestConsumer(t)
		err := c.handle(context.Background(), OrderEvent{
			OrderSN: "ORD-5",
			BuyerID: 1001,
			// 回到待处理没有对应模板
			ToStatus: 1,
		})
		require.NoError(t, err)
		assert.Empty(t, svc.notices)
	})
}
