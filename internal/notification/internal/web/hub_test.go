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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient() *client {
	return &client{send: make(chan []byte, sendBufferSize)}
}

func TestHub_SendToUser(t *testing.T) {
	t.Parallel()
	hub := NewHub()
	c1 := newTestClient()
	c2 := newTestClient()
	// 同一用户多端在线
	hub.register(1001, c1)
	hub.register(1001, c2)

	hub.SendToUser(1001, map[string]string{"title": "订单已发货"})

	for _, c := range []*client{c1, c2} {
		select {
		case msg := <-c.send:
			assert.JSONEq(t, `{"title":"订单已发货"}`, string(msg))
		default:
			t.Fatal("未收到推送")
		}
	}
}

func TestHub_SendToUser_OfflineIsNoop(t *testing.T) {
	t.Parallel()
	hub := NewHub()
	hub.SendToUser(9999, map[string]string{"title": "无人在线"})
	assert.Equal(t, 0, hub.OnlineCount())
}

func TestHub_SendToUser_SlowConsumerDropped(t *testing.T) {
	t.Parallel()
	hub := NewHub()
	c := newTestClient()
	hub.register(1001, c)
	// 填满写缓冲, 后续推送应当被丢弃而不是阻塞
	for i := 0; i < sendBufferSize; i++ {
		hub.SendToUser(1001, map[string]int{"seq": i})
	}
	hub.SendToUser(1001, map[string]string{"title": "会被丢弃"})
	assert.Len(t, c.send, sendBufferSize)
}

func TestHub_SendToGroup(t *testing.T) {
	t.Parallel()
	hub := NewHub()
	c1 := newTestClient()
	c2 := newTestClient()
	hub.register(1001, c1)
	hub.register(1002, c2)

	hub.SendToGroup([]int64{1001, 1002, 1003}, map[string]string{"title": "群发"})

	require.Len(t, c1.send, 1)
	require.Len(t, c2.send, 1)
}

func TestHub_Unregister(t *testing.T) {
	t.Parallel()
	hub := NewHub()
	c := newTestClient()
	hub.register(1001, c)
	require.Equal(t, 1, hub.OnlineCount())

	hub.unregister(1001, c)
	assert.Equal(t, 0, hub.OnlineCount())
	// close 之后 send 已关闭, 再次 unregister 不应 panic
	hub.unregister(1001, c)
}
