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

package job

import (
	"context"
	"fmt"
	"time"

	"github.com/camellia-mall/camellia/internal/order/internal/domain"
	"github.com/camellia-mall/camellia/internal/order/internal/service"
	"github.com/gotomicro/ego/core/elog"
	"github.com/gotomicro/ego/task/ecron"
)

var _ ecron.NamedJob = (*CloseExpiredOrdersJob)(nil)

// CloseExpiredOrdersJob 超时未付的待处理订单走状态机取消
type CloseExpiredOrdersJob struct {
	svc    service.Service
	minute int64
	limit  int
	l      *elog.Component
}

func NewCloseExpiredOrdersJob(svc service.Service, minute int64, limit int) *CloseExpiredOrdersJob {
	return &CloseExpiredOrdersJob{
		svc:    svc,
		minute: minute,
		limit:  limit,
		l:      elog.DefaultLogger,
	}
}

func (c *CloseExpiredOrdersJob) Name() string {
	return "close_expired_orders_job"
}

func (c *CloseExpiredOrdersJob) Run(ctx context.Context) error {
	// 冗余10秒, 避免和正在支付的订单擦边
	ctime := time.Now().Add(time.Duration(-c.minute)*time.Minute + 10*time.Second).UnixMilli()
	for {
		orders, total, err := c.svc.FindExpiredPending(ctx, 0, c.limit, ctime)
		if err != nil {
			return fmt.Errorf("获取过期订单失败: %w", err)
		}
		for _, order := range orders {
			err = c.svc.Transition(ctx, order.ID, domain.StatusCancelled, "system", "超时未支付自动取消")
			if err != nil {
				c.l.Error("取消过期订单失败",
					elog.FieldErr(err),
					elog.Int64("orderId", order.ID),
					elog.String("orderSn", order.SN))
			}
		}
		if len(orders) < c.limit || int64(c.limit) >= total {
			return nil
		}
	}
}
