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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSKU_AttrsHash(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		name string
		sku  SKU
		want string
	}{
		{
			name: "单属性",
			sku: SKU{
				Attrs: []AttrPair{{Attr: "颜色", Value: "红"}},
			},
			want: "颜色=红",
		},
		{
			name: "多属性按属性名排序",
			sku: SKU{
				Attrs: []AttrPair{
					{Attr: "尺码", Value: "M"},
					{Attr: "颜色", Value: "红"},
				},
			},
			want: "尺码=M,颜色=红",
		},
		{
			name: "属性顺序不影响结果",
			sku: SKU{
				Attrs: []AttrPair{
					{Attr: "颜色", Value: "红"},
					{Attr: "尺码", Value: "M"},
				},
			},
			want: "尺码=M,颜色=红",
		},
		{
			name: "无属性",
			sku:  SKU{},
			want: "",
		},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, tc.sku.AttrsHash())
		})
	}
}

func TestSPU_HasDigitalFile(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		name string
		spu  SPU
		want bool
	}{
		{
			name: "实物商品无需文件",
			spu:  SPU{Kind: KindPhysical},
			want: true,
		},
		{
			name: "虚拟商品带文件",
			spu:  SPU{Kind: KindDigital, DigitalFileURL: "https://cos.example.com/files/guide.pdf"},
			want: true,
		},
		{
			name: "虚拟商品缺文件",
			spu:  SPU{Kind: KindDigital},
			want: false,
		},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, tc.spu.HasDigitalFile())
		})
	}
}
