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

	"github.com/ecodeclub/mq-api"
	"github.com/gotomicro/ego/core/elog"
)

// PaymentResultHandler 由订单服务实现, 消费侧只认这个窄接口
type PaymentResultHandler interface {
	HandlePaymentResult(ctx context.Context, orderSN string, paid bool) error
}

// PaymentEventConsumer 消费支付终态事件, 驱动订单状态机
type PaymentEventConsumer struct {
	handler  PaymentResultHandler
	consumer mq.Consumer
	logger   *elog.Component
}

func NewPaymentEventConsumer(handler PaymentResultHandler, q mq.MQ) (*PaymentEventConsumer, error) {
	const groupID = "order"
	consumer, err := q.Consumer(PaymentEventName, groupID)
	if err != nil {
		return nil, err
	}
	return &PaymentEventConsumer{
		handler:  handler,
		consumer: consumer,
		logger:   elog.DefaultLogger,
	}, nil
}

func (c *PaymentEventConsumer) Start(ctx context.Context) {
	go func() {
		for {
			er := c.Consume(ctx)
			if er != nil {
				c.logger.Error("消费支付事件失败", elog.FieldErr(er))
			}
		}
	}()
}

func (c *PaymentEventConsumer) Consume(ctx context.Context) error {
	msg, err := c.consumer.Consume(ctx)
	if err != nil {
		return fmt.Errorf("获取消息失败: %w", err)
	}
	var evt PaymentEvent
	if err = json.Unmarshal(msg.Value, &evt); err != nil {
		return fmt.Errorf("解析消息失败: %w", err)
	}
	switch evt.Status {
	case PaymentEventStatusPaidSuccess:
		err = c.handler.HandlePaymentResult(ctx, evt.OrderSN, true)
	case PaymentEventStatusPaidFailed, PaymentEventStatusTimeoutClosed:
		err = c.handler.HandlePaymentResult(ctx, evt.OrderSN, false)
	default:
		// 其余状态与订单无关
		return nil
	}
	if err != nil {
		c.logger.Error("处理支付结果失败",
			elog.FieldErr(err),
			elog.String("orderSn", evt.OrderSN),
			elog.String("paymentSn", evt.PaymentSN))
	}
	return err
}
