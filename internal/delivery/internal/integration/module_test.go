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

	"github.com/camellia-mall/camellia/internal/delivery/internal/domain"
	"github.com/camellia-mall/camellia/internal/delivery/internal/repository"
	"github.com/camellia-mall/camellia/internal/delivery/internal/repository/dao"
	"github.com/camellia-mall/camellia/internal/delivery/internal/service"
	"github.com/camellia-mall/camellia/internal/pkg/snowflake"
	testioc "github.com/camellia-mall/camellia/internal/test/ioc"
	"github.com/ego-component/egorm"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

func TestDeliveryModule(t *testing.T) {
	suite.Run(t, new(ModuleTestSuite))
}

type ModuleTestSuite struct {
	suite.Suite
	db  *egorm.Component
	svc service.Service
}

func (s *ModuleTestSuite) SetupSuite() {
	s.db = testioc.InitDB()
	require.NoError(s.T(), dao.InitTables(s.db))
	idgen, err := snowflake.NewMallSnowFlake(0, 2)
	require.NoError(s.T(), err)
	repo := repository.NewGrantRepository(dao.NewGrantGORMDAO(s.db))
	// 全部条目都带文件快照, 不会回查商品, 也不发邮件
	s.svc = service.NewService(repo, nil, nil, idgen, "https://camellia-mall.com/delivery/download")
}

func (s *ModuleTestSuite) TearDownSuite() {
	err := s.db.Exec("DROP TABLE `download_grants`").Error
	require.NoError(s.T(), err)
}

func (s *ModuleTestSuite) TearDownTest() {
	err := s.db.Exec("TRUNCATE TABLE `download_grants`").Error
	require.NoError(s.T(), err)
}

func (s *ModuleTestSuite) TestGrantForOrder_SecondCallIsNoop() {
	t := s.T()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	req := domain.GrantRequest{
		OrderSN: "ORD-grant-1",
		BuyerID: 20001,
		Items: []domain.GrantItem{
			{OrderItemID: 301, ProductName: "电子书", FileURL: "cos://files/go-book.pdf"},
			{OrderItemID: 302, ProductName: "课程", FileURL: "cos://files/go-course.zip"},
		},
	}

	require.NoError(t, s.svc.GrantForOrder(ctx, req))
	// 支付事件重投, 再授权一次
	require.NoError(t, s.svc.GrantForOrder(ctx, req))

	var cnt int64
	require.NoError(t, s.db.WithContext(ctx).
		Table("download_grants").Where("order_sn = ?", "ORD-grant-1").Count(&cnt).Error)
	require.Equal(t, int64(2), cnt)

	// 每个条目恰好一条授权
	for _, itemID := range []int64{301, 302} {
		require.NoError(t, s.db.WithContext(ctx).
			Table("download_grants").Where("order_item_id = ?", itemID).Count(&cnt).Error)
		require.Equal(t, int64(1), cnt, "order_item_id: %d", itemID)
	}
}

func (s *ModuleTestSuite) TestConsume_CapsAtMaxDownloads() {
	t := s.T()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, s.svc.GrantForOrder(ctx, domain.GrantRequest{
		OrderSN: "ORD-grant-2",
		BuyerID: 20001,
		Items: []domain.GrantItem{
			{OrderItemID: 401, ProductName: "电子书", FileURL: "cos://files/go-book.pdf"},
		},
	}))

	var grant dao.DownloadGrant
	require.NoError(t, s.db.WithContext(ctx).
		Where("order_item_id = ?", int64(401)).First(&grant).Error)

	for i := int64(0); i < domain.MaxDownloads; i++ {
		fileURL, err := s.svc.Consume(ctx, grant.Token, 20001)
		require.NoError(t, err)
		require.Equal(t, "cos://files/go-book.pdf", fileURL)
	}

	// 次数用尽后守护更新一行都打不中
	_, err := s.svc.Consume(ctx, grant.Token, 20001)
	require.ErrorIs(t, err, service.ErrGrantUnusable)

	// 其他人拿到令牌也不能下载
	_, err = s.svc.Consume(ctx, grant.Token, 99999)
	require.ErrorIs(t, err, service.ErrGrantNotFound)
}
