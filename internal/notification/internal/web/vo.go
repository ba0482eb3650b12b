package web

import (
	"github.com/camellia-mall/camellia/internal/notification/internal/domain"
	"github.com/ecodeclub/ekit/slice"
)

type ListReq struct {
	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

type ReadReq struct {
	ID int64 `json:"id"`
}

type NoticesResp struct {
	Notices []Notice `json:"notices"`
	Unread  int64    `json:"unread"`
}

type Notice struct {
	ID      int64  `json:"id"`
	OrderSN string `json:"orderSn,omitempty"`
	Title   string `json:"title"`
	Content string `json:"content"`
	Read    bool   `json:"read"`
	Ctime   int64  `json:"ctime"`
}

func newNotice(n domain.Notice) Notice {
	return Notice{
		ID:      n.ID,
		OrderSN: n.OrderSN,
		Title:   n.Title,
		Content: n.Content,
		Read:    n.Read,
		Ctime:   n.Ctime,
	}
}

func newNotices(ns []domain.Notice) []Notice {
	return slice.Map(ns, func(_ int, src domain.Notice) Notice {
		return newNotice(src)
	})
}
