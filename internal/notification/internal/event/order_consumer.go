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
	"encoding/json"
	"fmt"

	"github.com/camellia-mall/camellia/internal/email"
	"github.com/camellia-mall/camellia/internal/notification/internal/domain"
	"github.com/camellia-mall/camellia/internal/notification/internal/service"
	"github.com/camellia-mall/camellia/internal/order"
	smsclient "github.com/camellia-mall/camellia/internal/sms/client"
	"github.com/ecodeclub/mq-api"
	"github.com/gotomicro/ego/core/elog"
)

// noticeTemplate 按订单目标状态选用的文案
type noticeTemplate struct {
	title   string
	content string
	// email 为true时同步发邮件
	email bool
	// sms 为true时同步发短信, 目前只有发货用
	sms bool
}

var noticeTemplates = map[uint8]noticeTemplate{
	orderStatusConfirmed: {
		title:   "订单已确认",
		content: "您的订单 %s 已确认, 我们会尽快处理。",
	},
	orderStatusPaymentReceived: {
		title:   "付款成功",
		content: "您的订单 %s 已收到付款。",
		email:   true,
	},
	orderStatusProcessing: {
		title:   "商家备货中",
		content: "您的订单 %s 正在备货。",
	},
	orderStatusShipped: {
		title:   "订单已发货",
		content: "您的订单 %s 已发货, 请留意物流信息。",
		email:   true,
		sms:     true,
	},
	orderStatusDelivered: {
		title:   "订单已送达",
		content: "您的订单 %s 已送达, 感谢您的惠顾。",
		email:   true,
	},
	orderStatusCancelled: {
		title:   "订单已取消",
		content: "您的订单 %s 已取消。",
		email:   true,
	},
}

// OrderEventConsumer 订单状态事件落成站内信, 并按模板扇出邮件和短信
type OrderEventConsumer struct {
	svc           service.Service
	orderSvc      order.Service
	emailSvc      email.Service
	smsClient     smsclient.Client
	smsTemplateID string
	consumer      mq.Consumer
	logger        *elog.Component
}

func NewOrderEventConsumer(svc service.Service,
	orderSvc order.Service,
	emailSvc email.Service,
	smsClient smsclient.Client,
	smsTemplateID string,
	q mq.MQ) (*OrderEventConsumer, error) {
	const groupID = "notification"
	consumer, err := q.Consumer(OrderEventName, groupID)
	if err != nil {
		return nil, err
	}
	return &OrderEventConsumer{
		svc:           svc,
		orderSvc:      orderSvc,
		emailSvc:      emailSvc,
		smsClient:     smsClient,
		smsTemplateID: smsTemplateID,
		consumer:      consumer,
		logger:        elog.DefaultLogger,
	}, nil
}

func (c *OrderEventConsumer) Start(ctx context.Context) {
	go func() {
		for {
			er := c.Consume(ctx)
			if er != nil {
				c.logger.Error("消费订单事件失败", elog.FieldErr(er))
			}
		}
	}()
}

func (c *OrderEventConsumer) Consume(ctx context.Context) error {
	msg, err := c.consumer.Consume(ctx)
	if err != nil {
		return fmt.Errorf("获取消息失败: %w", err)
	}
	var evt OrderEvent
	if err = json.Unmarshal(msg.Value, &evt); err != nil {
		return fmt.Errorf("解析消息失败: %w", err)
	}
	return c.handle(ctx, evt)
}

func (c *OrderEventConsumer) handle(ctx context.Context, evt OrderEvent) error {
	tmpl, ok := noticeTemplates[evt.ToStatus]
	if !ok {
		// 其余状态没有用户可感知的变化
		return nil
	}
	if evt.BuyerID <= 0 {
		return nil
	}
	content := fmt.Sprintf(tmpl.content, evt.OrderSN)
	_, err := c.svc.Notify(ctx, domain.Notice{
		UID:     evt.BuyerID,
		OrderSN: evt.OrderSN,
		Title:   tmpl.title,
		Content: content,
	})
	if err != nil {
		return fmt.Errorf("写入站内信失败: orderSn: %s: %w", evt.OrderSN, err)
	}
	// 邮件和短信是尽力而为, 失败不影响站内信
	if tmpl.email && evt.BuyerEmail != "" {
		if er := c.emailSvc.SendMail(ctx, email.Mail{
			To:      []string{evt.BuyerEmail},
			Subject: tmpl.title,
			Body:    content,
		}); er != nil {
			c.logger.Error("发送订单通知邮件失败",
				elog.FieldErr(er), elog.String("orderSn", evt.OrderSN))
		}
	}
	if tmpl.sms {
		c.sendShippedSMS(ctx, evt)
	}
	return nil
}

func (c *OrderEventConsumer) sendShippedSMS(ctx context.Context, evt OrderEvent) {
	o, err := c.orderSvc.FindBySN(ctx, evt.OrderSN)
	if err != nil {
		c.logger.Error("回查订单失败",
			elog.FieldErr(err), elog.String("orderSn", evt.OrderSN))
		return
	}
	phone := o.ShippingAddress.Phone
	if phone == "" {
		return
	}
	_, err = c.smsClient.Send(smsclient.SendReq{
		PhoneNumbers: []string{phone},
		TemplateID:   c.smsTemplateID,
		TemplateParam: map[string]string{
			"orderSn":  evt.OrderSN,
			"tracking": o.TrackingNumber,
		},
	})
	if err != nil {
		c.logger.Error("发送发货短信失败",
			elog.FieldErr(err), elog.String("orderSn", evt.OrderSN))
	}
}
