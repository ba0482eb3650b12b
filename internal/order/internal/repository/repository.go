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

	"github.com/camellia-mall/camellia/internal/order/internal/domain"
	"github.com/camellia-mall/camellia/internal/order/internal/repository/dao"
	"github.com/ecodeclub/ekit/slice"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

var (
	ErrRecordNotFound   = dao.ErrRecordNotFound
	ErrDuplicateSN      = dao.ErrDuplicateSN
	ErrConcurrentStatus = dao.ErrConcurrentStatus
)

type OrderRepository interface {
	// CreateOrder 订单图与购物车删除在同一事务里提交
	CreateOrder(ctx context.Context, order domain.Order, removeCart func(tx *gorm.DB) error) (int64, error)
	FindBySN(ctx context.Context, sn string) (domain.Order, error)
	FindByID(ctx context.Context, id int64) (domain.Order, error)
	ListByBuyer(ctx context.Context, offset, limit int, buyerID int64) ([]domain.Order, int64, error)
	List(ctx context.Context, offset, limit int) ([]domain.Order, int64, error)
	UpdateStatus(ctx context.Context, orderID int64, from, to domain.Status, history domain.StatusHistory) error
	UpdatePaymentStatus(ctx context.Context, orderID int64, status domain.PaymentStatus) error
	UpdateTracking(ctx context.Context, orderID int64, tracking string) error
	FindExpiredPending(ctx context.Context, offset, limit int, ctimeBefore int64) ([]domain.Order, int64, error)
	FindHistory(ctx context.Context, orderID int64) ([]domain.StatusHistory, error)
}

type orderRepository struct {
	dao dao.OrderDAO
}

func NewOrderRepository(d dao.OrderDAO) OrderRepository {
	return &orderRepository{dao: d}
}

func (r *orderRepository) CreateOrder(ctx context.Context, order domain.Order, removeCart func(tx *gorm.DB) error) (int64, error) {
	var billing *dao.OrderAddress
	if order.BillingAddress != nil {
		b := r.addressToEntity(*order.BillingAddress)
		billing = &b
	}
	items := slice.Map(order.Items, func(_ int, src domain.OrderItem) dao.OrderItem {
		return r.itemToEntity(src)
	})
	return r.dao.CreateOrder(ctx, r.toEntity(order), items,
		r.addressToEntity(order.ShippingAddress), billing, removeCart)
}

func (r *orderRepository) FindBySN(ctx context.Context, sn string) (domain.Order, error) {
	o, err := r.dao.FindBySN(ctx, sn)
	if err != nil {
		return domain.Order{}, err
	}
	return r.assemble(ctx, o)
}

func (r *orderRepository) FindByID(ctx context.Context, id int64) (domain.Order, error) {
	o, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Order{}, err
	}
	return r.assemble(ctx, o)
}

func (r *orderRepository) ListByBuyer(ctx context.Context, offset, limit int, buyerID int64) ([]domain.Order, int64, error) {
	os, total, err := r.dao.ListByBuyer(ctx, offset, limit, buyerID)
	if err != nil {
		return nil, 0, err
	}
	return slice.Map(os, func(_ int, src dao.Order) domain.Order {
		return r.toDomain(src)
	}), total, nil
}

func (r *orderRepository) List(ctx context.Context, offset, limit int) ([]domain.Order, int64, error) {
	os, total, err := r.dao.List(ctx, offset, limit)
	if err != nil {
		return nil, 0, err
	}
	return slice.Map(os, func(_ int, src dao.Order) domain.Order {
		return r.toDomain(src)
	}), total, nil
}

func (r *orderRepository) UpdateStatus(ctx context.Context, orderID int64, from, to domain.Status, history domain.StatusHistory) error {
	return r.dao.UpdateStatus(ctx, orderID, from.ToUint8(), to.ToUint8(), dao.OrderStatusHistory{
		FromStatus: history.From.ToUint8(),
		ToStatus:   history.To.ToUint8(),
		Actor:      history.Actor,
		Note:       history.Note,
	})
}

func (r *orderRepository) UpdatePaymentStatus(ctx context.Context, orderID int64, status domain.PaymentStatus) error {
	return r.dao.UpdatePaymentStatus(ctx, orderID, status.ToUint8())
}

func (r *orderRepository) UpdateTracking(ctx context.Context, orderID int64, tracking string) error {
	return r.dao.UpdateTracking(ctx, orderID, tracking)
}

func (r *orderRepository) FindExpiredPending(ctx context.Context, offset, limit int, ctimeBefore int64) ([]domain.Order, int64, error) {
	os, total, err := r.dao.FindExpiredPending(ctx, offset, limit, ctimeBefore)
	if err != nil {
		return nil, 0, err
	}
	return slice.Map(os, func(_ int, src dao.Order) domain.Order {
		return r.toDomain(src)
	}), total, nil
}

func (r *orderRepository) FindHistory(ctx context.Context, orderID int64) ([]domain.StatusHistory, error) {
	hs, err := r.dao.FindHistory(ctx, orderID)
	if err != nil {
		return nil, err
	}
	return slice.Map(hs, func(_ int, src dao.OrderStatusHistory) domain.StatusHistory {
		return domain.StatusHistory{
			ID:      src.Id,
			OrderID: src.OrderId,
			From:    domain.Status(src.FromStatus),
			To:      domain.Status(src.ToStatus),
			Actor:   src.Actor,
			Note:    src.Note,
			Ctime:   src.Ctime,
		}
	}), nil
}

// assemble 明细场景要把条目和地址快照都带出来
func (r *orderRepository) assemble(ctx context.Context, o dao.Order) (domain.Order, error) {
	res := r.toDomain(o)
	var eg errgroup.Group
	eg.Go(func() error {
		items, err := r.dao.FindItems(ctx, o.Id)
		if err != nil {
			return err
		}
		res.Items = slice.Map(items, func(_ int, src dao.OrderItem) domain.OrderItem {
			return r.itemToDomain(src)
		})
		return nil
	})
	eg.Go(func() error {
		addr, err := r.dao.FindAddress(ctx, o.ShippingAddressId)
		if err != nil {
			return err
		}
		res.ShippingAddress = r.addressToDomain(addr)
		return nil
	})
	if o.BillingAddressId > 0 {
		eg.Go(func() error {
			addr, err := r.dao.FindAddress(ctx, o.BillingAddressId)
			if err != nil {
				return err
			}
			b := r.addressToDomain(addr)
			res.BillingAddress = &b
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return domain.Order{}, err
	}
	return res, nil
}

func (r *orderRepository) toEntity(o domain.Order) dao.Order {
	return dao.Order{
		Id:               o.ID,
		SN:               o.SN,
		BuyerId:          o.BuyerID,
		BuyerEmail:       o.BuyerEmail,
		PaymentIntentSN:  o.PaymentIntentSN,
		Subtotal:         o.Subtotal,
		ShippingFee:      o.ShippingFee,
		TaxAmount:        o.TaxAmount,
		TotalAmount:      o.TotalAmount,
		Status:           o.Status.ToUint8(),
		PaymentStatus:    o.PaymentStatus.ToUint8(),
		ContainsDigital:  o.ContainsDigital,
		RequiresShipping: o.RequiresShipping,
		TrackingNumber:   o.TrackingNumber,
	}
}

func (r *orderRepository) toDomain(o dao.Order) domain.Order {
	return domain.Order{
		ID:               o.Id,
		SN:               o.SN,
		BuyerID:          o.BuyerId,
		BuyerEmail:       o.BuyerEmail,
		PaymentIntentSN:  o.PaymentIntentSN,
		Subtotal:         o.Subtotal,
		ShippingFee:      o.ShippingFee,
		TaxAmount:        o.TaxAmount,
		TotalAmount:      o.TotalAmount,
		Status:           domain.Status(o.Status),
		PaymentStatus:    domain.PaymentStatus(o.PaymentStatus),
		ContainsDigital:  o.ContainsDigital,
		RequiresShipping: o.RequiresShipping,
		TrackingNumber:   o.TrackingNumber,
		Ctime:            o.Ctime,
		Utime:            o.Utime,
	}
}

func (r *orderRepository) itemToEntity(it domain.OrderItem) dao.OrderItem {
	return dao.OrderItem{
		Id:          it.ID,
		OrderId:     it.OrderID,
		SPUId:       it.SPUID,
		SKUId:       it.SKUID,
		SKUSN:       it.SKUSN,
		Name:        it.Name,
		Description: it.Description,
		Image:       it.Image,
		Price:       it.Price,
		Quantity:    it.Quantity,
		Kind:        uint8(it.Kind),
		FileURL:     it.FileURL,
	}
}

func (r *orderRepository) itemToDomain(it dao.OrderItem) domain.OrderItem {
	return domain.OrderItem{
		ID:          it.Id,
		OrderID:     it.OrderId,
		SPUID:       it.SPUId,
		SKUID:       it.SKUId,
		SKUSN:       it.SKUSN,
		Name:        it.Name,
		Description: it.Description,
		Image:       it.Image,
		Price:       it.Price,
		Quantity:    it.Quantity,
		Kind:        domain.Kind(it.Kind),
		FileURL:     it.FileURL,
	}
}

func (r *orderRepository) addressToEntity(a domain.Address) dao.OrderAddress {
	return dao.OrderAddress{
		Id:         a.ID,
		Name:       a.Name,
		Line1:      a.Line1,
		Line2:      a.Line2,
		City:       a.City,
		Region:     a.Region,
		PostalCode: a.PostalCode,
		Country:    a.Country,
		Phone:      a.Phone,
	}
}

func (r *orderRepository) addressToDomain(a dao.OrderAddress) domain.Address {
	return domain.Address{
		ID:         a.Id,
		Name:       a.Name,
		Line1:      a.Line1,
		Line2:      a.Line2,
		City:       a.City,
		Region:     a.Region,
		PostalCode: a.PostalCode,
		Country:    a.Country,
		Phone:      a.Phone,
	}
}
