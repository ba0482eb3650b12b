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

	"github.com/camellia-mall/camellia/internal/payment/internal/domain"
	"github.com/camellia-mall/camellia/internal/payment/internal/repository/dao"
	"github.com/ecodeclub/ekit/slice"
)

var (
	ErrRecordNotFound   = dao.ErrRecordNotFound
	ErrConcurrentUpdate = dao.ErrConcurrentUpdate
)

type PaymentRepository interface {
	Create(ctx context.Context, pmt domain.Payment) (int64, error)
	FindBySN(ctx context.Context, sn string) (domain.Payment, error)
	FindByOrderSN(ctx context.Context, orderSN string) (domain.Payment, error)
	FindByIntentSN(ctx context.Context, intentSN string) (domain.Payment, error)
	MarkPaid(ctx context.Context, intentSN string, status domain.PaymentStatus, paidAt int64) error
	AddRefund(ctx context.Context, sn string, amount int64) error
	FindProcessing(ctx context.Context, offset, limit int, ctimeBefore int64) ([]domain.Payment, int64, error)
	List(ctx context.Context, offset, limit int) ([]domain.Payment, int64, error)
}

type paymentRepository struct {
	dao dao.PaymentDAO
}

func NewPaymentRepository(d dao.PaymentDAO) PaymentRepository {
	return &paymentRepository{dao: d}
}

func (r *paymentRepository) Create(ctx context.Context, pmt domain.Payment) (int64, error) {
	return r.dao.Insert(ctx, r.toEntity(pmt))
}

func (r *paymentRepository) FindBySN(ctx context.Context, sn string) (domain.Payment, error) {
	pmt, err := r.dao.FindBySN(ctx, sn)
	if err != nil {
		return domain.Payment{}, err
	}
	return r.toDomain(pmt), nil
}

func (r *paymentRepository) FindByOrderSN(ctx context.Context, orderSN string) (domain.Payment, error) {
	pmt, err := r.dao.FindByOrderSN(ctx, orderSN)
	if err != nil {
		return domain.Payment{}, err
	}
	return r.toDomain(pmt), nil
}

func (r *paymentRepository) FindByIntentSN(ctx context.Context, intentSN string) (domain.Payment, error) {
	pmt, err := r.dao.FindByIntentSN(ctx, intentSN)
	if err != nil {
		return domain.Payment{}, err
	}
	return r.toDomain(pmt), nil
}

func (r *paymentRepository) MarkPaid(ctx context.Context, intentSN string, status domain.PaymentStatus, paidAt int64) error {
	return r.dao.MarkPaid(ctx, intentSN, status.ToUint8(), paidAt)
}

func (r *paymentRepository) AddRefund(ctx context.Context, sn string, amount int64) error {
	return r.dao.AddRefund(ctx, sn, amount, domain.PaymentStatusRefunded.ToUint8())
}

func (r *paymentRepository) FindProcessing(ctx context.Context, offset, limit int, ctimeBefore int64) ([]domain.Payment, int64, error) {
	pmts, total, err := r.dao.FindProcessing(ctx, offset, limit, ctimeBefore)
	if err != nil {
		return nil, 0, err
	}
	return slice.Map(pmts, func(_ int, src dao.Payment) domain.Payment {
		return r.toDomain(src)
	}), total, nil
}

func (r *paymentRepository) List(ctx context.Context, offset, limit int) ([]domain.Payment, int64, error) {
	pmts, total, err := r.dao.List(ctx, offset, limit)
	if err != nil {
		return nil, 0, err
	}
	return slice.Map(pmts, func(_ int, src dao.Payment) domain.Payment {
		return r.toDomain(src)
	}), total, nil
}

func (r *paymentRepository) toEntity(p domain.Payment) dao.Payment {
	return dao.Payment{
		Id:             p.ID,
		SN:             p.SN,
		OrderSN:        p.OrderSN,
		IntentSN:       p.IntentSN,
		TotalAmount:    p.TotalAmount,
		RefundedAmount: p.RefundedAmount,
		PaidAt:         p.PaidAt,
		Status:         p.Status.ToUint8(),
	}
}

func (r *paymentRepository) toDomain(p dao.Payment) domain.Payment {
	return domain.Payment{
		ID:             p.Id,
		SN:             p.SN,
		OrderSN:        p.OrderSN,
		IntentSN:       p.IntentSN,
		TotalAmount:    p.TotalAmount,
		RefundedAmount: p.RefundedAmount,
		PaidAt:         p.PaidAt,
		Status:         domain.PaymentStatus(p.Status),
		Ctime:          p.Ctime,
		Utime:          p.Utime,
	}
}
