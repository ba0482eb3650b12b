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
	"errors"
	"fmt"

	"github.com/bwmarrin/snowflake"
	"github.com/ecodeclub/ekit/syncx"
)

// Generator 按业务域隔离的分布式ID生成器
type Generator interface {
	Generate(biz uint) (ID, error)
}

const (
	maxNode uint = 31
	maxBiz  uint = 31
)

var (
	ErrExceedNode = errors.New("node超出限制")
	ErrExceedBiz  = errors.New("biz超出限制")
	ErrUnknownBiz = errors.New("未知的biz")
)

// +---------------------------------------------------------------------------------------+
// | 1 Bit Unused | 41 Bit Timestamp |  5 Bit BizID | 5 Bit NodeID  |   12 Bit Sequence ID |
// +---------------------------------------------------------------------------------------+

// MallSnowFlake node表示第几个节点, biz表示业务域, 从0开始, 最多到31
type MallSnowFlake struct {
	// 键为biz
	nodes syncx.Map[uint, *snowflake.Node]
}

func NewMallSnowFlake(nodeId uint, bizs uint) (*MallSnowFlake, error) {
	msf := &MallSnowFlake{}
	if nodeId > maxNode {
		return nil, fmt.Errorf("%w", ErrExceedNode)
	}
	if bizs > maxBiz+1 {
		return nil, fmt.Errorf("%w", ErrExceedBiz)
	}
	for i := 0; i < int(bizs); i++ {
		nid := (i << 5) | int(nodeId)
		n, err := snowflake.NewNode(int64(nid))
		if err != nil {
			return nil, err
		}
		msf.nodes.Store(uint(i), n)
	}
	return msf, nil
}

type ID int64

func (c *MallSnowFlake) Generate(biz uint) (ID, error) {
	n, ok := c.nodes.Load(biz)
	if !ok {
		return 0, fmt.Errorf("%w", ErrUnknownBiz)
	}
	id := n.Generate()
	return ID(id), nil
}

func (f ID) BizID() uint {
	node := snowflake.ID(f).Node()
	return uint(node >> 5)
}

func (f ID) Int64() int64 {
	return int64(f)
}
