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
	"net/http"

	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/gotomicro/ego/core/elog"
)

// WSHandler 把登录用户的连接挂进集线器
type WSHandler struct {
	hub      *Hub
	upgrader websocket.Upgrader
	logger   *elog.Component
}

func NewWSHandler(hub *Hub) *WSHandler {
	return &WSHandler{
		hub: hub,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
		logger: elog.DefaultLogger,
	}
}

func (h *WSHandler) PrivateRoutes(server *gin.Engine) {
	server.GET("/notification/ws", h.Serve)
}

func (h *WSHandler) PublicRoutes(_ *gin.Engine) {}

func (h *WSHandler) Serve(ctx *gin.Context) {
	gtx := &ginx.Context{Context: ctx}
	sess, err := session.Get(gtx)
	if err != nil {
		h.logger.Error("获取 Session 失败", elog.FieldErr(err))
		ctx.AbortWithStatus(http.StatusUnauthorized)
		return
	}
	uid := sess.Claims().Uid

	conn, err := h.upgrader.Upgrade(ctx.Writer, ctx.Request, nil)
	if err != nil {
		h.logger.Error("升级 WebSocket 失败", elog.FieldErr(err), elog.Int64("uid", uid))
		return
	}
	c := &client{
		conn: conn,
		send: make(chan []byte, sendBufferSize),
	}
	h.hub.register(uid, c)
	go c.writePump()
	go c.readPump(func() {
		h.hub.unregister(uid, c)
	})
}
