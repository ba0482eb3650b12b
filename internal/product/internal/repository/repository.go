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
	"encoding/json"

	"github.com/camellia-mall/camellia/internal/product/internal/domain"
	"github.com/camellia-mall/camellia/internal/product/internal/repository/dao"
	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ekit/sqlx"
	"github.com/gotomicro/ego/core/elog"
	"github.com/lithammer/shortuuid/v4"
)

var (
	ErrRecordNotFound  = dao.ErrRecordNotFound
	ErrDuplicatedAttrs = dao.ErrDuplicatedAttrs
)

type ProductRepository interface {
	SaveSPU(ctx context.Context, spu domain.SPU) (int64, error)
	FindSPUByID(ctx context.Context, id int64) (domain.SPU, error)
	FindSPUBySN(ctx context.Context, sn string) (domain.SPU, error)
	FindSPUs(ctx context.Context, offset, limit int, categoryID int64) ([]domain.SPU, error)
	CountSPUs(ctx context.Context, categoryID int64) (int64, error)
	SaveSKU(ctx context.Context, sku domain.SKU) (int64, error)
	FindSKUBySN(ctx context.Context, sn string) (domain.SKU, error)
	SaveCategory(ctx context.Context, c domain.Category) (int64, error)
	FindCategories(ctx context.Context) ([]domain.Category, error)
	SaveAttribute(ctx context.Context, a domain.Attribute) (int64, error)
	SaveAttributeValue(ctx context.Context, v domain.AttributeValue) (int64, error)
	FindAttributes(ctx context.Context) ([]domain.Attribute, error)
}

type productRepository struct {
	dao    dao.ProductDAO
	logger *elog.Component
}

func NewProductRepository(d dao.ProductDAO) ProductRepository {
	return &productRepository{
		dao:    d,
		logger: elog.DefaultLogger,
	}
}

func (r *productRepository) SaveSPU(ctx context.Context, spu domain.SPU) (int64, error) {
	if spu.SN == "" {
		spu.SN = r.genSN()
	}
	return r.dao.SaveSPU(ctx, r.spuToEntity(spu))
}

func (r *productRepository) FindSPUByID(ctx context.Context, id int64) (domain.SPU, error) {
	spu, err := r.dao.FindSPUByID(ctx, id)
	if err != nil {
		return domain.SPU{}, err
	}
	return r.assembleSPU(ctx, spu)
}

func (r *productRepository) FindSPUBySN(ctx context.Context, sn string) (domain.SPU, error) {
	spu, err := r.dao.FindSPUBySN(ctx, sn)
	if err != nil {
		return domain.SPU{}, err
	}
	return r.assembleSPU(ctx, spu)
}

func (r *productRepository) assembleSPU(ctx context.Context, spu dao.SPU) (domain.SPU, error) {
	skus, err := r.dao.FindSKUsBySPUID(ctx, spu.Id)
	if err != nil {
		return domain.SPU{}, err
	}
	res := r.spuToDomain(spu)
	res.SKUs = slice.Map(skus, func(_ int, src dao.SKU) domain.SKU {
		return r.skuToDomain(src)
	})
	return res, nil
}

func (r *productRepository) FindSPUs(ctx context.Context, offset, limit int, categoryID int64) ([]domain.SPU, error) {
	spus, err := r.dao.FindSPUs(ctx, offset, limit, categoryID)
	if err != nil {
		return nil, err
	}
	return slice.Map(spus, func(_ int, src dao.SPU) domain.SPU {
		return r.spuToDomain(src)
	}), nil
}

func (r *productRepository) CountSPUs(ctx context.Context, categoryID int64) (int64, error) {
	return r.dao.CountSPUs(ctx, categoryID)
}

func (r *productRepository) SaveSKU(ctx context.Context, sku domain.SKU) (int64, error) {
	if sku.SN == "" {
		sku.SN = r.genSN()
	}
	return r.dao.SaveSKU(ctx, r.skuToEntity(sku))
}

func (r *productRepository) FindSKUBySN(ctx context.Context, sn string) (domain.SKU, error) {
	sku, err := r.dao.FindSKUBySN(ctx, sn)
	if err != nil {
		return domain.SKU{}, err
	}
	return r.skuToDomain(sku), nil
}

func (r *productRepository) SaveCategory(ctx context.Context, c domain.Category) (int64, error) {
	return r.dao.SaveCategory(ctx, dao.Category{
		Id:   c.ID,
		Name: c.Name,
		Sort: c.Sort,
	})
}

func (r *productRepository) FindCategories(ctx context.Context) ([]domain.Category, error) {
	cs, err := r.dao.FindCategories(ctx)
	if err != nil {
		return nil, err
	}
	return slice.Map(cs, func(_ int, src dao.Category) domain.Category {
		return domain.Category{
			ID:   src.Id,
			Name: src.Name,
			Sort: src.Sort,
		}
	}), nil
}

func (r *productRepository) SaveAttribute(ctx context.Context, a domain.Attribute) (int64, error) {
	return r.dao.SaveAttribute(ctx, dao.Attribute{
		Id:   a.ID,
		Name: a.Name,
	})
}

func (r *productRepository) SaveAttributeValue(ctx context.Context, v domain.AttributeValue) (int64, error) {
	return r.dao.SaveAttributeValue(ctx, dao.AttributeValue{
		Id:          v.ID,
		AttributeID: v.AttributeID,
		Value:       v.Value,
	})
}

func (r *productRepository) FindAttributes(ctx context.Context) ([]domain.Attribute, error) {
	attrs, err := r.dao.FindAttributes(ctx)
	if err != nil {
		return nil, err
	}
	ids := slice.Map(attrs, func(_ int, src dao.Attribute) int64 {
		return src.Id
	})
	values, err := r.dao.FindAttributeValues(ctx, ids)
	if err != nil {
		return nil, err
	}
	grouped := make(map[int64][]domain.AttributeValue, len(attrs))
	for _, v := range values {
		grouped[v.AttributeID] = append(grouped[v.AttributeID], domain.AttributeValue{
			ID:          v.Id,
			AttributeID: v.AttributeID,
			Value:       v.Value,
		})
	}
	return slice.Map(attrs, func(_ int, src dao.Attribute) domain.Attribute {
		return domain.Attribute{
			ID:     src.Id,
			Name:   src.Name,
			Values: grouped[src.Id],
		}
	}), nil
}

func (r *productRepository) genSN() string {
	return shortuuid.New()
}

func (r *productRepository) spuToEntity(spu domain.SPU) dao.SPU {
	return dao.SPU{
		Id:          spu.ID,
		SN:          spu.SN,
		CategoryID:  spu.CategoryID,
		Name:        spu.Name,
		Description: spu.Desc,
		Price:       spu.Price,
		Kind:        spu.Kind.ToUint8(),
		DigitalFile: sqlx.NewNullString(spu.DigitalFileURL),
		Image:       spu.Image,
		Status:      spu.Status.ToUint8(),
	}
}

func (r *productRepository) spuToDomain(spu dao.SPU) domain.SPU {
	return domain.SPU{
		ID:             spu.Id,
		SN:             spu.SN,
		CategoryID:     spu.CategoryID,
		Name:           spu.Name,
		Desc:           spu.Description,
		Price:          spu.Price,
		Kind:           domain.Kind(spu.Kind),
		DigitalFileURL: spu.DigitalFile.String,
		Image:          spu.Image,
		Status:         domain.Status(spu.Status),
	}
}

func (r *productRepository) skuToEntity(sku domain.SKU) dao.SKU {
	attrs, err := json.Marshal(sku.Attrs)
	if err != nil {
		r.logger.Error("序列化SKU销售属性失败",
			elog.FieldErr(err),
			elog.Int64("sku_id", sku.ID))
	}
	return dao.SKU{
		Id:          sku.ID,
		SN:          sku.SN,
		SPUID:       sku.SPUID,
		Name:        sku.Name,
		Description: sku.Desc,
		Price:       sku.Price,
		Stock:       sku.Stock,
		Attrs:       string(attrs),
		AttrsHash:   sku.AttrsHash(),
		Image:       sku.Image,
		Status:      sku.Status.ToUint8(),
	}
}

func (r *productRepository) skuToDomain(sku dao.SKU) domain.SKU {
	var attrs []domain.AttrPair
	if sku.Attrs != "" {
		if err := json.Unmarshal([]byte(sku.Attrs), &attrs); err != nil {
			r.logger.Error("反序列化SKU销售属性失败",
				elog.FieldErr(err),
				elog.Int64("sku_id", sku.Id))
		}
	}
	return domain.SKU{
		ID:     sku.Id,
		SN:     sku.SN,
		SPUID:  sku.SPUID,
		Name:   sku.Name,
		Desc:   sku.Description,
		Price:  sku.Price,
		Stock:  sku.Stock,
		Attrs:  attrs,
		Image:  sku.Image,
		Status: domain.Status(sku.Status),
	}
}
