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

	"github.com/camellia-mall/camellia/internal/product/internal/domain"
	"github.com/camellia-mall/camellia/internal/product/internal/repository"
	"github.com/ecodeclub/ekit/slice"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

var (
	ErrProductNotFound = repository.ErrRecordNotFound
	ErrDuplicatedAttrs = repository.ErrDuplicatedAttrs
	// ErrDigitalFileRequired 虚拟商品保存时必须带文件地址
	ErrDigitalFileRequired = errors.New("虚拟商品缺少文件地址")
	// ErrEmptyAttrs SKU必须至少有一条销售属性
	ErrEmptyAttrs = errors.New("SKU销售属性不能为空")
)

//go:generate mockgen -source=./service.go -destination=../../mocks/product.mock.go -package=productmocks -typed Service
type Service interface {
	// FindSPUBySN 店面详情页, 只返回上架SPU及其上架SKU
	FindSPUBySN(ctx context.Context, sn string) (domain.SPU, error)
	// FindSKUBySN 加购与下单用, 不限定上架状态由调用方判定
	FindSKUBySN(ctx context.Context, sn string) (domain.SKU, error)
	FindSPUByID(ctx context.Context, id int64) (domain.SPU, error)
	ListSPUs(ctx context.Context, offset, limit int, categoryID int64) ([]domain.SPU, int64, error)
	Categories(ctx context.Context) ([]domain.Category, error)
	Attributes(ctx context.Context) ([]domain.Attribute, error)

	SaveSPU(ctx context.Context, spu domain.SPU) (int64, error)
	SaveSKU(ctx context.Context, sku domain.SKU) (int64, error)
	SaveCategory(ctx context.Context, c domain.Category) (int64, error)
	SaveAttribute(ctx context.Context, a domain.Attribute) (int64, error)
	SaveAttributeValue(ctx context.Context, v domain.AttributeValue) (int64, error)
}

type service struct {
	repo repository.ProductRepository
}

func NewService(repo repository.ProductRepository) Service {
	return &service{repo: repo}
}

func (s *service) FindSPUBySN(ctx context.Context, sn string) (domain.SPU, error) {
	spu, err := s.repo.FindSPUBySN(ctx, sn)
	if err != nil {
		return domain.SPU{}, err
	}
	if spu.Status != domain.StatusOnShelf {
		return domain.SPU{}, errors.Wrapf(ErrProductNotFound, "sn: %s", sn)
	}
	spu.SKUs = slice.FilterMap(spu.SKUs, func(_ int, src domain.SKU) (domain.SKU, bool) {
		return src, src.Status == domain.StatusOnShelf
	})
	return spu, nil
}

func (s *service) FindSKUBySN(ctx context.Context, sn string) (domain.SKU, error) {
	return s.repo.FindSKUBySN(ctx, sn)
}

func (s *service) FindSPUByID(ctx context.Context, id int64) (domain.SPU, error) {
	return s.repo.FindSPUByID(ctx, id)
}

func (s *service) ListSPUs(ctx context.Context, offset, limit int, categoryID int64) ([]domain.SPU, int64, error) {
	var (
		eg    errgroup.Group
		spus  []domain.SPU
		total int64
	)
	eg.Go(func() error {
		var err error
		spus, err = s.repo.FindSPUs(ctx, offset, limit, categoryID)
		return err
	})
	eg.Go(func() error {
		var err error
		total, err = s.repo.CountSPUs(ctx, categoryID)
		return err
	})
	return spus, total, eg.Wait()
}

func (s *service) Categories(ctx context.Context) ([]domain.Category, error) {
	return s.repo.FindCategories(ctx)
}

func (s *service) Attributes(ctx context.Context) ([]domain.Attribute, error) {
	return s.repo.FindAttributes(ctx)
}

func (s *service) SaveSPU(ctx context.Context, spu domain.SPU) (int64, error) {
	if !spu.HasDigitalFile() {
		return 0, errors.Wrapf(ErrDigitalFileRequired, "spu: %s", spu.Name)
	}
	return s.repo.SaveSPU(ctx, spu)
}

func (s *service) SaveSKU(ctx context.Context, sku domain.SKU) (int64, error) {
	if len(sku.Attrs) == 0 {
		return 0, errors.Wrapf(ErrEmptyAttrs, "spu_id: %d", sku.SPUID)
	}
	return s.repo.SaveSKU(ctx, sku)
}

func (s *service) SaveCategory(ctx context.Context, c domain.Category) (int64, error) {
	return s.repo.SaveCategory(ctx, c)
}

func (s *service) SaveAttribute(ctx context.Context, a domain.Attribute) (int64, error) {
	return s.repo.SaveAttribute(ctx, a)
}

func (s *service) SaveAttributeValue(ctx context.Context, v domain.AttributeValue) (int64, error) {
	return s.repo.SaveAttributeValue(ctx, v)
}
