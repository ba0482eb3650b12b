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

	"github.com/camellia-mall/camellia/internal/payment/internal/service"
	"github.com/gotomicro/ego/core/elog"
	"github.com/gotomicro/ego/task/ecron"
)

var _ ecron.NamedJob = (*SyncPaymentStatusJob)(nil)

// SyncPaymentStatusJob 兜底对账, 补偿丢失的回调并关闭超时未付的记录
type SyncPaymentStatusJob struct {
	svc     service.Service
	minutes int64
	limit   int
	l       *elog.Component
}

func NewSyncPaymentStatusJob(svc service.Service, minutes int64, limit int) *SyncPaymentStatusJob {
	return &SyncPaymentStatusJob{
		svc:     svc,
		minutes: minutes,
		limit:   limit,
		l:       elog.DefaultLogger,
	}
}

func (s *SyncPaymentStatusJob) Name() string {
	return "sync_payment_status_job"
}

func (s *SyncPaymentStatusJob) Run(ctx context.Context) error {
	ctime := time.Now().Add(time.Duration(-s.minutes) * time.Minute).UnixMilli()
	for {
		pmts, total, err := s.svc.FindProcessing(ctx, 0, s.limit, ctime)
		if err != nil {
			return fmt.Errorf("获取待对账支付记录失败: %w", err)
		}
		for _, pmt := range pmts {
			err = s.svc.SyncProviderStatus(ctx, pmt)
			if err != nil {
				s.l.Error("同步支付状态失败",
					elog.FieldErr(err),
					elog.String("paymentSn", pmt.SN),
					elog.String("intentSn", pmt.IntentSN),
				)
			}
		}
		if len(pmts) < s.limit || int64(s.limit) >= total {
			return nil
		}
	}
}
