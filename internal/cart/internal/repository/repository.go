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

package repository

import (
	"context"

	"github.com/camellia-mall/camellia/internal/cart/internal/domain"
	"github.com/camellia-mall/camellia/internal/cart/internal/repository/dao"
	"github.com/ecodeclub/ekit/slice"
	"gorm.io/gorm"
)

var ErrRecordNotFound = dao.ErrRecordNotFound

type CartRepository interface {
	FindOrCreateByUID(ctx context.Context, uid int64) (domain.Cart, error)
	FindByUID(ctx context.Context, uid int64) (domain.Cart, error)
	FindByID(ctx context.Context, id int64) (domain.Cart, error)
	AddItem(ctx context.Context, item domain.CartItem) (int64, error)
	SetQuantity(ctx context.Context, cartID, itemID, quantity int64) error
	RemoveItem(ctx context.Context, cartID, itemID int64) error
	Clear(ctx context.Context, cartID int64) error
	UpdateIntentSN(ctx context.Context, cartID int64, intentSN string) error
	DeleteCartTx(tx *gorm.DB, cartID int64) error
}

type cartRepository struct {
	dao dao.CartDAO
}

func NewCartRepository(d dao.CartDAO) CartRepository {
	return &cartRepository{dao: d}
}

func (r *cartRepository) FindOrCreateByUID(ctx context.Context, uid int64) (domain.Cart, error) {
	cart, err := r.dao.FindOrCreateByUID(ctx, uid)
	if err != nil {
		return domain.Cart{}, err
	}
	return r.assemble(ctx, cart)
}

func (r *cartRepository) FindByUID(ctx context.Context, uid int64) (domain.Cart, error) {
	cart, err := r.dao.FindByUID(ctx, uid)
	if err != nil {
		return domain.Cart{}, err
	}
	return r.assemble(ctx, cart)
}

func (r *cartRepository) FindByID(ctx context.Context, id int64) (domain.Cart, error) {
	cart, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Cart{}, err
	}
	return r.assemble(ctx, cart)
}

func (r *cartRepository) assemble(ctx context.Context, cart dao.Cart) (domain.Cart, error) {
	items, err := r.dao.FindItems(ctx, cart.Id)
	if err != nil {
		return domain.Cart{}, err
	}
	return domain.Cart{
		ID:              cart.Id,
		UID:             cart.UID,
		PaymentIntentSN: cart.PaymentIntentSN,
		Items: slice.Map(items, func(_ int, src dao.CartItem) domain.CartItem {
			return r.itemToDomain(src)
		}),
	}, nil
}

func (r *cartRepository) AddItem(ctx context.Context, item domain.CartItem) (int64, error) {
	return r.dao.AddItem(ctx, dao.CartItem{
		CartID:   item.CartID,
		SPUID:    item.SPUID,
		SKUID:    item.SKUID,
		SKUSN:    item.SKUSN,
		Name:     item.Name,
		Price:    item.Price,
		Quantity: item.Quantity,
		Image:    item.Image,
		Kind:     item.Kind.ToUint8(),
	})
}

func (r *cartRepository) SetQuantity(ctx context.Context, cartID, itemID, quantity int64) error {
	return r.dao.SetQuantity(ctx, cartID, itemID, quantity)
}

func (r *cartRepository) RemoveItem(ctx context.Context, cartID, itemID int64) error {
	return r.dao.RemoveItem(ctx, cartID, itemID)
}

func (r *cartRepository) Clear(ctx context.Context, cartID int64) error {
	return r.dao.Clear(ctx, cartID)
}

func (r *cartRepository) UpdateIntentSN(ctx context.Context, cartID int64, intentSN string) error {
	return r.dao.UpdateIntentSN(ctx, cartID, intentSN)
}

func (r *cartRepository) DeleteCartTx(tx *gorm.DB, cartID int64) error {
	return r.dao.DeleteCartTx(tx, cartID)
}

func (r *cartRepository) itemToDomain(item dao.CartItem) domain.CartItem {
	return domain.CartItem{
		ID:       item.Id,
		CartID:   item.CartID,
		SPUID:    item.SPUID,
		SKUID:    item.SKUID,
		SKUSN:    item.SKUSN,
		Name:     item.Name,
		Price:    item.Price,
		Quantity: item.Quantity,
		Image:    item.Image,
		Kind:     domain.Kind(item.Kind),
	}
}
