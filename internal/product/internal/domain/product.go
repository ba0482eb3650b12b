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

package domain

import (
	"sort"
	"strings"
)

type Status uint8

func (s Status) ToUint8() uint8 {
	return uint8(s)
}

const (
	StatusOffShelf Status = 1 // 下架
	StatusOnShelf  Status = 2 // 上架
)

type Kind uint8

func (k Kind) ToUint8() uint8 {
	return uint8(k)
}

const (
	KindPhysical Kind = 1 // 实物商品, 需要物流
	KindDigital  Kind = 2 // 虚拟商品, 下单后发放下载授权
)

// SPU 标准化商品, 价格单位为分
type SPU struct {
	ID         int64
	SN         string
	CategoryID int64
	Name       string
	Desc       string
	Price      int64
	Kind       Kind
	// 虚拟商品的文件地址, Kind == KindDigital 时必填
	DigitalFileURL string
	Image          string
	Status         Status
	SKUs           []SKU
}

// HasDigitalFile 虚拟商品必须带可下载文件
func (s SPU) HasDigitalFile() bool {
	return s.Kind != KindDigital || s.DigitalFileURL != ""
}

// SKU 由一组销售属性组合区分的具体规格, 有独立库存, 可覆盖SPU价格
type SKU struct {
	ID    int64
	SN    string
	SPUID int64
	Name  string
	Desc  string
	// 为0表示跟随SPU价格
	Price  int64
	Stock  int64
	Attrs  []AttrPair
	Image  string
	Status Status
}

// AttrPair 一条销售属性, 例如 颜色=红
type AttrPair struct {
	Attr  string `json:"attr"`
	Value string `json:"value"`
}

// AttrsHash 对属性组合做归一化, 同一SPU下组合必须唯一
// 与属性顺序无关: 先按属性名排序再拼接
func (s SKU) AttrsHash() string {
	pairs := make([]string, 0, len(s.Attrs))
	for _, a := range s.Attrs {
		pairs = append(pairs, a.Attr+"="+a.Value)
	}
	sort.Strings(pairs)
	return strings.Join(pairs, ",")
}

type Category struct {
	ID   int64
	Name string
	Sort int64
}

type Attribute struct {
	ID     int64
	Name   string
	Values []AttributeValue
}

type AttributeValue struct {
	ID          int64
	AttributeID int64
	Value       string
}
