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

	"github.com/camellia-mall/camellia/internal/delivery/internal/domain"
	"github.com/camellia-mall/camellia/internal/product"
	productmocks "github.com/camellia-mall/camellia/internal/product/mocks"
	"github.com/gotomicro/ego/core/elog"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestService_QualifyingItems(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	productSvc := productmocks.NewMockService(ctrl)
	// 快照缺失但商品仍带文件地址, 回查兜底
	productSvc.EXPECT().FindSPUByID(gomock.Any(), int64(2)).
		Return(product.SPU{ID: 2, DigitalFileURL: "https://cos.example.com/reloaded.pdf"}, nil)
	// 回查失败的条目被跳过
	productSvc.EXPECT().FindSPUByID(gomock.Any(), int64(3)).
		Return(product.SPU{}, errors.New("db down"))

	svc := &service{productSvc: productSvc, logger: elog.DefaultLogger}
	items := svc.qualifyingItems(context.Background(), []domain.GrantItem{
		{OrderItemID: 1, SPUID: 1, ProductName: "电子书", FileURL: "https://cos.example.com/book.pdf"},
		{OrderItemID: 2, SPUID: 2, ProductName: "课程"},
		{OrderItemID: 3, SPUID: 3, ProductName: "模板"},
	})

	assert.Equal(t, []domain.GrantItem{
		{OrderItemID: 1, SPUID: 1, ProductName: "电子书", FileURL: "https://cos.example.com/book.pdf"},
		{OrderItemID: 2, SPUID: 2, ProductName: "课程", FileURL: "https://cos.example.com/reloaded.pdf"},
	}, items)
}

func TestService_GrantForOrder_NoQualifyingItems(t *testing.T) {
	t.Parallel()
	svc := &service{logger: elog.DefaultLogger}
	err := svc.GrantForOrder(context.Background(), domain.GrantRequest{
		OrderSN: "order-sn-1",
		BuyerID: 123,
		Items:   []domain.GrantItem{},
	})
	assert.NoError(t, err)
}
