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
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/camellia-mall/camellia/internal/order/internal/domain"
	"github.com/camellia-mall/camellia/internal/order/internal/repository"
	"github.com/camellia-mall/camellia/internal/order/internal/repository/dao"
	testioc "github.com/camellia-mall/camellia/internal/test/ioc"
	"github.com/ego-component/egorm"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

func TestOrderModule(t *testing.T) {
	suite.Run(t, new(ModuleTestSuite))
}

type ModuleTestSuite struct {
	suite.Suite
	db   *egorm.Component
	repo repository.OrderRepository
}

func (s *ModuleTestSuite) SetupSuite() {
	s.db = testioc.InitDB()
	require.NoError(s.T(), dao.InitTables(s.db))
	s.repo = repository.NewOrderRepository(dao.NewOrderGORMDAO(s.db))
}

func (s *ModuleTestSuite) TearDownSuite() {
	for _, table := range []string{"orders", "order_items", "order_addresses", "order_status_histories"} {
		err := s.db.Exec(fmt.Sprintf("DROP TABLE `%s`", table)).Error
		require.NoError(s.T(), err)
	}
}

func (s *ModuleTestSuite) TearDownTest() {
	for _, table := range []string{"orders", "order_items", "order_addresses", "order_status_histories"} {
		err := s.db.Exec(fmt.Sprintf("TRUNCATE TABLE `%s`", table)).Error
		require.NoError(s.T(), err)
	}
}

func (s *ModuleTestSuite) newOrder(sn string) domain.Order {
	return domain.Order{
		SN:         sn,
		BuyerID:    20001,
		BuyerEmail: "buyer@camellia-mall.com",
		Items: []domain.OrderItem{
			{
				SPUID:    1,
				SKUID:    11,
				SKUSN:    "SKU-go-book",
				Name:     "Go编程实战",
				Price:    1000,
				Quantity: 1,
				Kind:     domain.KindDigital,
				FileURL:  "cos://files/go-book.pdf",
			},
		},
		ShippingAddress: domain.Address{
			Name:    "张三",
			Line1:   "科技园路1号",
			City:    "深圳",
			Country: "CN",
			Phone:   "13800000000",
		},
		Subtotal:        1000,
		ShippingFee:     0,
		TotalAmount:     1000,
		Status:          domain.StatusPending,
		PaymentStatus:   domain.PaymentStatusPending,
		ContainsDigital: true,
	}
}

func (s *ModuleTestSuite) TestCreateOrder_CommitsWholeGraph() {
	t := s.T()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	removed := false
	id, err := s.repo.CreateOrder(ctx, s.newOrder("ORD-e2e-1"), func(tx *gorm.DB) error {
		removed = true
		return nil
	})
	require.NoError(t, err)
	require.True(t, id > 0)
	require.True(t, removed)

	got, err := s.repo.FindBySN(ctx, "ORD-e2e-1")
	require.NoError(t, err)
	require.Equal(t, int64(20001), got.BuyerID)
	require.Len(t, got.Items, 1)
	require.Equal(t, "cos://files/go-book.pdf", got.Items[0].FileURL)
	require.Equal(t, "张三", got.ShippingAddress.Name)
	require.Equal(t, domain.StatusPending, got.Status)
}

func (s *ModuleTestSuite) TestCreateOrder_CartRemovalFailureRollsBack() {
	t := s.T()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := s.repo.CreateOrder(ctx, s.newOrder("ORD-e2e-2"), func(tx *gorm.DB) error {
		return errors.New("模拟删除购物车失败")
	})
	require.Error(t, err)

	_, err = s.repo.FindBySN(ctx, "ORD-e2e-2")
	require.ErrorIs(t, err, repository.ErrRecordNotFound)

	var cnt int64
	require.NoError(t, s.db.WithContext(ctx).Table("order_items").Count(&cnt).Error)
	require.Equal(t, int64(0), cnt)
}

func (s *ModuleTestSuite) TestUpdateStatus_GuardedByFromStatus() {
	t := s.T()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	id, err := s.repo.CreateOrder(ctx, s.newOrder("ORD-e2e-3"), func(tx *gorm.DB) error { return nil })
	require.NoError(t, err)

	err = s.repo.UpdateStatus(ctx, id, domain.StatusPending, domain.StatusConfirmed, domain.StatusHistory{
		From:  domain.StatusPending,
		To:    domain.StatusConfirmed,
		Actor: "admin",
	})
	require.NoError(t, err)

	// from已经过期, 守护更新一行都打不中
	err = s.repo.UpdateStatus(ctx, id, domain.StatusPending, domain.StatusCancelled, domain.StatusHistory{
		From:  domain.StatusPending,
		To:    domain.StatusCancelled,
		Actor: "buyer",
	})
	require.ErrorIs(t, err, dao.ErrConcurrentStatus)

	history, err := s.repo.FindHistory(ctx, id)
	require.NoError(t, err)
	require.Len(t, history, 1)
	require.Equal(t, domain.StatusConfirmed, history[0].To)
	require.Equal(t, "admin", history[0].Actor)
}

func (s *ModuleTestSuite) TestFindExpiredPending() {
	t := s.T()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	id, err := s.repo.CreateOrder(ctx, s.newOrder("ORD-e2e-4"), func(tx *gorm.DB) error { return nil })
	require.NoError(t, err)
	// 确认后的订单不算过期待处理
	confirmedID, err := s.repo.CreateOrder(ctx, s.newOrder("ORD-e2e-5"), func(tx *gorm.DB) error { return nil })
	require.NoError(t, err)
	err = s.repo.UpdateStatus(ctx, confirmedID, domain.StatusPending, domain.StatusConfirmed, domain.StatusHistory{
		From: domain.StatusPending, To: domain.StatusConfirmed, Actor: "admin",
	})
	require.NoError(t, err)

	expired, total, err := s.repo.FindExpiredPending(ctx, 0, 10, time.Now().Add(time.Second).UnixMilli())
	require.NoError(t, err)
	require.Equal(t, int64(1), total)
	require.Len(t, expired, 1)
	require.Equal(t, id, expired[0].ID)
}
