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

//go:build e2e

package integration

import (
	"context"
	"testing"
	"time"

	"github.com/camellia-mall/camellia/internal/payment/internal/domain"
	"github.com/camellia-mall/camellia/internal/payment/internal/repository"
	"github.com/camellia-mall/camellia/internal/payment/internal/repository/dao"
	testioc "github.com/camellia-mall/camellia/internal/test/ioc"
	"github.com/ego-component/egorm"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

func TestPaymentModule(t *testing.T) {
	suite.Run(t, new(ModuleTestSuite))
}

type ModuleTestSuite struct {
	suite.Suite
	db   *egorm.Component
	repo repository.PaymentRepository
}

func (s *ModuleTestSuite) SetupSuite() {
	s.db = testioc.InitDB()
	require.NoError(s.T(), dao.InitTables(s.db))
	s.repo = repository.NewPaymentRepository(dao.NewPaymentGORMDAO(s.db))
}

func (s *ModuleTestSuite) TearDownSuite() {
	err := s.db.Exec("DROP TABLE `payments`").Error
	require.NoError(s.T(), err)
}

func (s *ModuleTestSuite) TearDownTest() {
	err := s.db.Exec("TRUNCATE TABLE `payments`").Error
	require.NoError(s.T(), err)
}

func (s *ModuleTestSuite) insertPaid(sn string, total int64) {
	now := time.Now().UnixMilli()
	err := s.db.Create(&dao.Payment{
		SN:          sn,
		OrderSN:     "ORD-" + sn,
		IntentSN:    "PMT-intent-" + sn,
		TotalAmount: total,
		Status:      domain.PaymentStatusPaidSuccess.ToUint8(),
		PaidAt:      now,
		Ctime:       now,
		Utime:       now,
	}).Error
	require.NoError(s.T(), err)
}

func (s *ModuleTestSuite) TestAddRefund_PartialOverHalfKeepsPaidStatus() {
	t := s.T()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	s.insertPaid("PAY-refund-1", 10000)

	// 部分退款超过一半, 状态不能提前翻转成已退款
	err := s.repo.AddRefund(ctx, "PAY-refund-1", 6000)
	require.NoError(t, err)

	pmt, err := s.repo.FindBySN(ctx, "PAY-refund-1")
	require.NoError(t, err)
	require.Equal(t, int64(6000), pmt.RefundedAmount)
	require.Equal(t, domain.PaymentStatusPaidSuccess, pmt.Status)
	require.True(t, pmt.Refundable())
	require.Equal(t, int64(4000), pmt.RemainingRefundable())

	// 退完剩余金额才翻转
	err = s.repo.AddRefund(ctx, "PAY-refund-1", 4000)
	require.NoError(t, err)

	pmt, err = s.repo.FindBySN(ctx, "PAY-refund-1")
	require.NoError(t, err)
	require.Equal(t, int64(10000), pmt.RefundedAmount)
	require.Equal(t, domain.PaymentStatusRefunded, pmt.Status)
	require.False(t, pmt.Refundable())
}

func (s *ModuleTestSuite) TestAddRefund_ExceedingRemainingIsRejected() {
	t := s.T()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	s.insertPaid("PAY-refund-2", 10000)

	require.NoError(t, s.repo.AddRefund(ctx, "PAY-refund-2", 9000))

	err := s.repo.AddRefund(ctx, "PAY-refund-2", 2000)
	require.ErrorIs(t, err, repository.ErrConcurrentUpdate)

	pmt, err := s.repo.FindBySN(ctx, "PAY-refund-2")
	require.NoError(t, err)
	require.Equal(t, int64(9000), pmt.RefundedAmount)
	require.Equal(t, domain.PaymentStatusPaidSuccess, pmt.Status)
}

func (s *ModuleTestSuite) TestMarkPaid_DuplicateCallbackIsNoop() {
	t := s.T()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	now := time.Now().UnixMilli()
	err := s.db.Create(&dao.Payment{
		SN:          "PAY-cb-1",
		OrderSN:     "ORD-PAY-cb-1",
		IntentSN:    "PMT-intent-PAY-cb-1",
		TotalAmount: 10000,
		Status:      1,
		Ctime:       now,
		Utime:       now,
	}).Error
	require.NoError(t, err)

	err = s.repo.MarkPaid(ctx, "PMT-intent-PAY-cb-1", domain.PaymentStatusPaidSuccess, now)
	require.NoError(t, err)

	err = s.repo.MarkPaid(ctx, "PMT-intent-PAY-cb-1", domain.PaymentStatusPaidSuccess, now)
	require.ErrorIs(t, err, repository.ErrConcurrentUpdate)
}
