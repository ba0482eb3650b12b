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

package snowflake

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_NewMallSnowFlake(t *testing.T) {
	testcases := []struct {
		name        string
		nodeId      uint
		bizs        uint
		wantErrFunc require.ErrorAssertionFunc
	}{
		{
			name:   "nodeId超出限制",
			nodeId: 32,
			bizs:   4,
			wantErrFunc: func(t require.TestingT, err error, _ ...interface{}) {
				require.ErrorIs(t, err, ErrExceedNode)
			},
		},
		{
			name:   "biz超出限制",
			nodeId: 3,
			bizs:   33,
			wantErrFunc: func(t require.TestingT, err error, _ ...interface{}) {
				require.ErrorIs(t, err, ErrExceedBiz)
			},
		},
		{
			name:        "生成正常",
			nodeId:      0,
			bizs:        4,
			wantErrFunc: require.NoError,
		},
	}
	for _, tt := range testcases {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewMallSnowFlake(tt.nodeId, tt.bizs)
			tt.wantErrFunc(t, err)
		})
	}
}

func Test_Generate(t *testing.T) {
	idmaker, err := NewMallSnowFlake(1, 4)
	require.NoError(t, err)
	ids := make([]int64, 0)
	for i := 0; i < 4; i++ {
		for j := 0; j < 100000; j++ {
			id, err := idmaker.Generate(uint(i))
			require.NoError(t, err)
			ids = append(ids, id.Int64())
		}
	}
	// 校验生成的id是否重复
	idmap := make(map[int64]struct{}, len(ids))
	for i := 0; i < len(ids); i++ {
		_, ok := idmap[ids[i]]
		require.False(t, ok)
		idmap[ids[i]] = struct{}{}
	}
}

func Test_GenerateBizID(t *testing.T) {
	idmaker, err := NewMallSnowFlake(1, 16)
	require.NoError(t, err)
	testcases := []struct {
		name    string
		biz     uint
		wantErr require.ErrorAssertionFunc
	}{
		{
			name: "biz没找到",
			biz:  16,
			wantErr: func(t require.TestingT, err error, i ...interface{}) {
				require.ErrorIs(t, err, ErrUnknownBiz)
			},
		},
		{
			name:    "biz为1",
			biz:     1,
			wantErr: require.NoError,
		},
	}
	for _, tc := range testcases {
		t.Run(tc.name, func(t *testing.T) {
			id, err := idmaker.Generate(tc.biz)
			tc.wantErr(t, err)
			if err != nil {
				return
			}
			assert.Equal(t, tc.biz, id.BizID())
		})
	}
}
