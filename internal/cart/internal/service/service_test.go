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

	"github.com/camellia-mall/camellia/internal/product"
	productmocks "github.com/camellia-mall/camellia/internal/product/mocks"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestService_AddItem_InvalidQuantity(t *testing.T) {
	t.Parallel()
	svc := NewService(nil, nil)
	_, err := svc.AddItem(context.Background(), 123, "sku-sn", 0)
	assert.ErrorIs(t, err, ErrInvalidQuantity)
	_, err = svc.AddItem(context.Background(), 123, "sku-sn", -1)
	assert.ErrorIs(t, err, ErrInvalidQuantity)
}

func TestService_AddItem_OffShelf(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	productSvc := productmocks.NewMockService(ctrl)
	productSvc.EXPECT().FindSKUBySN(gomock.Any(), "sku-off").
		Return(product.SKU{
			ID:     1,
			SN:     "sku-off",
			Status: product.StatusOffShelf,
		}, nil)

	svc := NewService(nil, productSvc)
	_, err := svc.AddItem(context.Background(), 123, "sku-off", 1)
	assert.ErrorIs(t, err, ErrProductOffShelf)
}
