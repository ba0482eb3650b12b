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

	"github.com/camellia-mall/camellia/internal/delivery/internal/domain"
	"github.com/camellia-mall/camellia/internal/delivery/internal/repository/dao"
	"github.com/ecodeclub/ekit/slice"
)

var (
	ErrRecordNotFound = dao.ErrRecordNotFound
	ErrGrantUnusable  = dao.ErrGrantUnusable
)

type GrantRepository interface {
	BatchCreate(ctx context.Context, grants []domain.DownloadGrant) error
	FindByToken(ctx context.Context, token string) (domain.DownloadGrant, error)
	FindByOrderSN(ctx context.Context, orderSN string) ([]domain.DownloadGrant, error)
	FindByBuyer(ctx context.Context, buyerID int64, offset, limit int) ([]domain.DownloadGrant, error)
	CountByBuyer(ctx context.Context, buyerID int64) (int64, error)
	Consume(ctx context.Context, token string) error
}

type grantRepository struct {
	dao dao.GrantDAO
}

func NewGrantRepository(d dao.GrantDAO) GrantRepository {
	return &grantRepository{dao: d}
}

func (r *grantRepository) BatchCreate(ctx context.Context, grants []domain.DownloadGrant) error {
	return r.dao.BatchCreate(ctx, slice.Map(grants, func(_ int, src domain.DownloadGrant) dao.DownloadGrant {
		return r.toEntity(src)
	}))
}

func (r *grantRepository) FindByToken(ctx context.Context, token string) (domain.DownloadGrant, error) {
	grant, err := r.dao.FindByToken(ctx, token)
	if err != nil {
		return domain.DownloadGrant{}, err
	}
	return r.toDomain(grant), nil
}

func (r *grantRepository) FindByOrderSN(ctx context.Context, orderSN string) ([]domain.DownloadGrant, error) {
	grants, err := r.dao.FindByOrderSN(ctx, orderSN)
	if err != nil {
		return nil, err
	}
	return slice.Map(grants, func(_ int, src dao.DownloadGrant) domain.DownloadGrant {
		return r.toDomain(src)
	}), nil
}

func (r *grantRepository) FindByBuyer(ctx context.Context, buyerID int64, offset, limit int) ([]domain.DownloadGrant, error) {
	grants, err := r.dao.FindByBuyer(ctx, buyerID, offset, limit)
	if err != nil {
		return nil, err
	}
	return slice.Map(grants, func(_ int, src dao.DownloadGrant) domain.DownloadGrant {
		return r.toDomain(src)
	}), nil
}

func (r *grantRepository) CountByBuyer(ctx context.Context, buyerID int64) (int64, error) {
	return r.dao.CountByBuyer(ctx, buyerID)
}

func (r *grantRepository) Consume(ctx context.Context, token string) error {
	return r.dao.Consume(ctx, token)
}

func (r *grantRepository) toEntity(g domain.DownloadGrant) dao.DownloadGrant {
	return dao.DownloadGrant{
		Id:            g.ID,
		OrderSN:       g.OrderSN,
		OrderItemID:   g.OrderItemID,
		BuyerID:       g.BuyerID,
		ProductName:   g.ProductName,
		FileURL:       g.FileURL,
		Token:         g.Token,
		ExpiresAt:     g.ExpiresAt,
		DownloadCount: g.DownloadCount,
		MaxDownloads:  g.MaxDownloads,
		Completed:     g.Completed,
	}
}

func (r *grantRepository) toDomain(g dao.DownloadGrant) domain.DownloadGrant {
	return domain.DownloadGrant{
		ID:            g.Id,
		OrderSN:       g.OrderSN,
		OrderItemID:   g.OrderItemID,
		BuyerID:       g.BuyerID,
		ProductName:   g.ProductName,
		FileURL:       g.FileURL,
		Token:         g.Token,
		ExpiresAt:     g.ExpiresAt,
		DownloadCount: g.DownloadCount,
		MaxDownloads:  g.MaxDownloads,
		Completed:     g.Completed,
		Ctime:         g.Ctime,
	}
}
