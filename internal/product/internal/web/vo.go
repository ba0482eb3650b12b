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

package web

import (
	"github.com/camellia-mall/camellia/internal/product/internal/domain"
	"github.com/ecodeclub/ekit/slice"
)

type SNReq struct {
	SN string `json:"sn"`
}

type IDReq struct {
	ID int64 `json:"id"`
}

type ListSPUsReq struct {
	Offset     int   `json:"offset"`
	Limit      int   `json:"limit"`
	CategoryID int64 `json:"categoryId,omitempty"`
}

type ListSPUsResp struct {
	Total int64 `json:"total"`
	SPUs  []SPU `json:"spus,omitempty"`
}

type SaveSPUReq struct {
	SPU SPU `json:"spu"`
}

type SaveSKUReq struct {
	SKU SKU `json:"sku"`
}

type SaveCategoryReq struct {
	Category Category `json:"category"`
}

type SaveAttributeReq struct {
	Attribute Attribute `json:"attribute"`
}

type SaveAttributeValueReq struct {
	Value AttributeValue `json:"value"`
}

type SaveResp struct {
	ID int64 `json:"id"`
}

type CategoriesResp struct {
	Categories []Category `json:"categories,omitempty"`
}

type AttributesResp struct {
	Attributes []Attribute `json:"attributes,omitempty"`
}

type SPU struct {
	ID             int64  `json:"id,omitempty"`
	SN             string `json:"sn"`
	CategoryID     int64  `json:"categoryId,omitempty"`
	Name           string `json:"name"`
	Desc           string `json:"desc"`
	Price          int64  `json:"price"`
	Kind           uint8  `json:"kind"`
	DigitalFileURL string `json:"digitalFileUrl,omitempty"`
	Image          string `json:"image"`
	Status         uint8  `json:"status,omitempty"`
	SKUs           []SKU  `json:"skus,omitempty"`
}

type SKU struct {
	ID     int64      `json:"id,omitempty"`
	SN     string     `json:"sn"`
	SPUID  int64      `json:"spuId,omitempty"`
	Name   string     `json:"name"`
	Desc   string     `json:"desc"`
	Price  int64      `json:"price"`
	Stock  int64      `json:"stock"`
	Attrs  []AttrPair `json:"attrs,omitempty"`
	Image  string     `json:"image"`
	Status uint8      `json:"status,omitempty"`
}

type AttrPair struct {
	Attr  string `json:"attr"`
	Value string `json:"value"`
}

type Category struct {
	ID   int64  `json:"id,omitempty"`
	Name string `json:"name"`
	Sort int64  `json:"sort"`
}

type Attribute struct {
	ID     int64            `json:"id,omitempty"`
	Name   string           `json:"name"`
	Values []AttributeValue `json:"values,omitempty"`
}

type AttributeValue struct {
	ID          int64  `json:"id,omitempty"`
	AttributeID int64  `json:"attributeId"`
	Value       string `json:"value"`
}

func newSPU(spu domain.SPU) SPU {
	return SPU{
		ID:             spu.ID,
		SN:             spu.SN,
		CategoryID:     spu.CategoryID,
		Name:           spu.Name,
		Desc:           spu.Desc,
		Price:          spu.Price,
		Kind:           spu.Kind.ToUint8(),
		DigitalFileURL: spu.DigitalFileURL,
		Image:          spu.Image,
		Status:         spu.Status.ToUint8(),
		SKUs: slice.Map(spu.SKUs, func(_ int, src domain.SKU) SKU {
			return newSKU(src)
		}),
	}
}

func newSKU(sku domain.SKU) SKU {
	return SKU{
		ID:    sku.ID,
		SN:    sku.SN,
		SPUID: sku.SPUID,
		Name:  sku.Name,
		Desc:  sku.Desc,
		Price: sku.Price,
		Stock: sku.Stock,
		Attrs: slice.Map(sku.Attrs, func(_ int, src domain.AttrPair) AttrPair {
			return AttrPair{Attr: src.Attr, Value: src.Value}
		}),
		Image:  sku.Image,
		Status: sku.Status.ToUint8(),
	}
}

func (s SPU) newDomainSPU() domain.SPU {
	return domain.SPU{
		ID:             s.ID,
		SN:             s.SN,
		CategoryID:     s.CategoryID,
		Name:           s.Name,
		Desc:           s.Desc,
		Price:          s.Price,
		Kind:           domain.Kind(s.Kind),
		DigitalFileURL: s.DigitalFileURL,
		Image:          s.Image,
		Status:         domain.Status(s.Status),
	}
}

func (s SKU) newDomainSKU() domain.SKU {
	return domain.SKU{
		ID:    s.ID,
		SN:    s.SN,
		SPUID: s.SPUID,
		Name:  s.Name,
		Desc:  s.Desc,
		Price: s.Price,
		Stock: s.Stock,
		Attrs: slice.Map(s.Attrs, func(_ int, src AttrPair) domain.AttrPair {
			return domain.AttrPair{Attr: src.Attr, Value: src.Value}
		}),
		Image:  s.Image,
		Status: domain.Status(s.Status),
	}
}

func newCategory(c domain.Category) Category {
	return Category{ID: c.ID, Name: c.Name, Sort: c.Sort}
}

func newAttribute(a domain.Attribute) Attribute {
	return Attribute{
		ID:   a.ID,
		Name: a.Name,
		Values: slice.Map(a.Values, func(_ int, src domain.AttributeValue) AttributeValue {
			return AttributeValue{
				ID:          src.ID,
				AttributeID: src.AttributeID,
				Value:       src.Value,
			}
		}),
	}
}
