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

	"github.com/camellia-mall/camellia/internal/cart/internal/domain"
	"github.com/camellia-mall/camellia/internal/cart/internal/repository"
	"github.com/camellia-mall/camellia/internal/product"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

var (
	ErrCartNotFound = repository.ErrRecordNotFound
	// ErrInvalidQuantity 数量必须为正数
	ErrInvalidQuantity = errors.New("商品数量非法")
	// ErrProductOffShelf 加购的商品不在售
	ErrProductOffShelf = errors.New("商品不在售")
)

//go:generate mockgen -source=./service.go -destination=../../mocks/cart.mock.go -package=cartmocks -typed Service
type Service interface {
	// Cart 返回用户购物车, 没有则创建空车
	Cart(ctx context.Context, uid int64) (domain.Cart, error)
	FindByID(ctx context.Context, id int64) (domain.Cart, error)
	AddItem(ctx context.Context, uid int64, skuSN string, quantity int64) (domain.Cart, error)
	SetQuantity(ctx context.Context, uid, itemID, quantity int64) (domain.Cart, error)
	RemoveItem(ctx context.Context, uid, itemID int64) (domain.Cart, error)
	Clear(ctx context.Context, uid int64) error
	// UpdateIntentSN 结账时冗余支付意图SN到购物车
	UpdateIntentSN(ctx context.Context, cartID int64, intentSN string) error
	// DeleteCartTx 订单落库事务内删除购物车, tx由订单侧开启
	DeleteCartTx(tx *gorm.DB, cartID int64) error
}

type service struct {
	repo       repository.CartRepository
	productSvc product.Service
}

func NewService(repo repository.CartRepository, productSvc product.Service) Service {
	return &service{
		repo:       repo,
		productSvc: productSvc,
	}
}

func (s *service) Cart(ctx context.Context, uid int64) (domain.Cart, error) {
	return s.repo.FindOrCreateByUID(ctx, uid)
}

func (s *service) FindByID(ctx context.Context, id int64) (domain.Cart, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *service) AddItem(ctx context.Context, uid int64, skuSN string, quantity int64) (domain.Cart, error) {
	if quantity <= 0 {
		return domain.Cart{}, errors.Wrapf(ErrInvalidQuantity, "quantity: %d", quantity)
	}
	sku, err := s.productSvc.FindSKUBySN(ctx, skuSN)
	if err != nil {
		return domain.Cart{}, errors.Wrapf(err, "查找商品SKU失败 sn: %s", skuSN)
	}
	if sku.Status != product.StatusOnShelf {
		return domain.Cart{}, errors.Wrapf(ErrProductOffShelf, "sku: %s", skuSN)
	}
	spu, err := s.productSvc.FindSPUByID(ctx, sku.SPUID)
	if err != nil {
		return domain.Cart{}, errors.Wrapf(err, "查找商品SPU失败 id: %d", sku.SPUID)
	}
	cart, err := s.repo.FindOrCreateByUID(ctx, uid)
	if err != nil {
		return domain.Cart{}, err
	}
	price := sku.Price
	if price == 0 {
		price = spu.Price
	}
	image := sku.Image
	if image == "" {
		image = spu.Image
	}
	_, err = s.repo.AddItem(ctx, domain.CartItem{
		CartID:   cart.ID,
		SPUID:    spu.ID,
		SKUID:    sku.ID,
		SKUSN:    sku.SN,
		Name:     sku.Name,
		Price:    price,
		Quantity: quantity,
		Image:    image,
		Kind:     domain.Kind(spu.Kind.ToUint8()),
	})
	if err != nil {
		return domain.Cart{}, err
	}
	return s.repo.FindByUID(ctx, uid)
}

func (s *service) SetQuantity(ctx context.Context, uid, itemID, quantity int64) (domain.Cart, error) {
	cart, err := s.repo.FindByUID(ctx, uid)
	if err != nil {
		return domain.Cart{}, err
	}
	if quantity <= 0 {
		// 数量归零视为移除
		err = s.repo.RemoveItem(ctx, cart.ID, itemID)
	} else {
		err = s.repo.SetQuantity(ctx, cart.ID, itemID, quantity)
	}
	if err != nil {
		return domain.Cart{}, err
	}
	return s.repo.FindByUID(ctx, uid)
}

func (s *service) RemoveItem(ctx context.Context, uid, itemID int64) (domain.Cart, error) {
	cart, err := s.repo.FindByUID(ctx, uid)
	if err != nil {
		return domain.Cart{}, err
	}
	if err = s.repo.RemoveItem(ctx, cart.ID, itemID); err != nil {
		return domain.Cart{}, err
	}
	return s.repo.FindByUID(ctx, uid)
}

func (s *service) Clear(ctx context.Context, uid int64) error {
	cart, err := s.repo.FindByUID(ctx, uid)
	if err != nil {
		return err
	}
	return s.repo.Clear(ctx, cart.ID)
}

func (s *service) UpdateIntentSN(ctx context.Context, cartID int64, intentSN string) error {
	return s.repo.UpdateIntentSN(ctx, cartID, intentSN)
}

func (s *service) DeleteCartTx(tx *gorm.DB, cartID int64) error {
	return s.repo.DeleteCartTx(tx, cartID)
}
