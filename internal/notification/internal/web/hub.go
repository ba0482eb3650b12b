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
	"encoding/json"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/gotomicro/ego/core/elog"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = 54 * time.Second
	sendBufferSize = 16
)

type client struct {
	conn *websocket.Conn
	send chan []byte
	once sync.Once
}

func (c *client) close() {
	c.once.Do(func() {
		close(c.send)
	})
}

// writePump 唯一的写协程, websocket连接不允许并发写
func (c *client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = c.conn.Close()
	}()
	for {
		select {
		case msg, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// readPump 丢弃客户端消息, 只用读循环探测断连和回应pong
func (c *client) readPump(onClose func()) {
	defer func() {
		onClose()
		_ = c.conn.Close()
	}()
	c.conn.SetReadLimit(512)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return
		}
	}
}

// Hub 在线连接表, 一个用户可以挂多个连接(多端登录)
type Hub struct {
	mu      sync.RWMutex
	clients map[int64]map[*client]struct{}
	logger  *elog.Component
}

func NewHub() *Hub {
	return &Hub{
		clients: make(map[int64]map[*client]struct{}),
		logger:  elog.DefaultLogger,
	}
}

func (h *Hub) register(uid int64, c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	conns, ok := h.clients[uid]
	if !ok {
		conns = make(map[*client]struct{}, 1)
		h.clients[uid] = conns
	}
	conns[c] = struct{}{}
}

func (h *Hub) unregister(uid int64, c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	conns, ok := h.clients[uid]
	if !ok {
		return
	}
	delete(conns, c)
	if len(conns) == 0 {
		delete(h.clients, uid)
	}
	c.close()
}

// SendToUser 尽力而为的推送, 不在线或消费太慢都直接丢弃
func (h *Hub) SendToUser(uid int64, payload any) {
	data, err := json.Marshal(payload)
	if err != nil {
		h.logger.Error("序列化推送消息失败", elog.FieldErr(err), elog.Int64("uid", uid))
		return
	}
	h.mu.RLock()
	defer h.mu.RUnlock()
	for c := range h.clients[uid] {
		select {
		case c.send <- data:
		default:
			// 写缓冲满说明对端已经不健康, 等读循环把它摘掉
		}
	}
}

// SendToGroup 给一批用户推同一条消息, 语义与 SendToUser 一致
func (h *Hub) SendToGroup(uids []int64, payload any) {
	data, err := json.Marshal(payload)
	if err != nil {
		h.logger.Error("序列化推送消息失败", elog.FieldErr(err))
		return
	}
	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, uid := range uids {
		for c := range h.clients[uid] {
			select {
			case c.send <- data:
			default:
			}
		}
	}
}

func (h *Hub) OnlineCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}
