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

package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/camellia-mall/camellia/internal/cart"
	cartmocks "github.com/camellia-mall/camellia/internal/cart/mocks"
	"github.com/camellia-mall/camellia/internal/delivery"
	deliverymocks "github.com/camellia-mall/camellia/internal/delivery/mocks"
	"github.com/camellia-mall/camellia/internal/order/internal/domain"
	"github.com/camellia-mall/camellia/internal/order/internal/event"
	"github.com/camellia-mall/camellia/internal/order/internal/repository"
	"github.com/camellia-mall/camellia/internal/pkg/sequencenumber"
	"github.com/camellia-mall/camellia/internal/product"
	productmocks "github.com/camellia-mall/camellia/internal/product/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type fakeOrderRepo struct {
	mu      sync.Mutex
	nextID  int64
	orders  map[int64]domain.Order
	history map[int64][]domain.StatusHistory
	// 前N次CreateOrder返回SN冲突, 用来验证重试
	dupSNLeft int
	seenSNs   []string
}

func newFakeOrderRepo(orders ...domain.Order) *fakeOrderRepo {
	r := &fakeOrderRepo{
		orders:  make(map[int64]domain.Order, len(orders)),
		history: make(map[int64][]domain.StatusHistory),
	}
	for _, o := range orders {
		r.orders[o.ID] = o
		if o.ID > r.nextID {
			r.nextID = o.ID
		}
	}
	return r
}

func (f *fakeOrderRepo) CreateOrder(_ context.Context, order domain.Order, removeCart func(tx *gorm.DB) error) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.seenSNs = append(f.seenSNs, order.SN)
	if f.dupSNLeft > 0 {
		f.dupSNLeft--
		return 0, repository.ErrDuplicateSN
	}
	if err := removeCart(nil); err != nil {
		return 0, err
	}
	f.nextID++
	order.ID = f.nextID
	for i := range order.Items {
		order.Items[i].ID = f.nextID*100 + int64(i)
	}
	f.orders[order.ID] = order
	return order.ID, nil
}

func (f *fakeOrderRepo) FindBySN(_ context.Context, sn string) (domain.Order, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, o := range f.orders {
		if o.SN == sn {
			return o, nil
		}
	}
	return domain.Order{}, repository.ErrRecordNotFound
}

func (f *fakeOrderRepo) FindByID(_ context.Context, id int64) (domain.Order, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	o, ok := f.orders[id]
	if !ok {
		return domain.Order{}, repository.ErrRecordNotFound
	}
	return o, nil
}

func (f *fakeOrderRepo) ListByBuyer(_ context.Context, _, _ int, buyerID int64) ([]domain.Order, int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var res []domain.Order
	for _, o := range f.orders {
		if o.BuyerID == buyerID {
			res = append(res, o)
		}
	}
	return res, int64(len(res)), nil
}

func (f *fakeOrderRepo) List(_ context.Context, _, _ int) ([]domain.Order, int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	res := make([]domain.Order, 0, len(f.orders))
	for _, o := range f.orders {
		res = append(res, o)
	}
	return res, int64(len(res)), nil
}

func (f *fakeOrderRepo) UpdateStatus(_ context.Context, orderID int64, from, to domain.Status, history domain.StatusHistory) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	o, ok := f.orders[orderID]
	if !ok || o.Status != from {
		return repository.ErrConcurrentStatus
	}
	o.Status = to
	f.orders[orderID] = o
	history.Ctime = time.Now().UnixMilli()
	f.history[orderID] = append(f.history[orderID], history)
	return nil
}

func (f *fakeOrderRepo) UpdatePaymentStatus(_ context.Context, orderID int64, status domain.PaymentStatus) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	o, ok := f.orders[orderID]
	if !ok {
		return repository.ErrRecordNotFound
	}
	o.PaymentStatus = status
	f.orders[orderID] = o
	return nil
}

func (f *fakeOrderRepo) UpdateTracking(_ context.Context, orderID int64, tracking string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	o, ok := f.orders[orderID]
	if !ok {
		return repository.ErrRecordNotFound
	}
	o.TrackingNumber = tracking
	f.orders[orderID] = o
	return nil
}

func (f *fakeOrderRepo) FindExpiredPending(_ context.Context, _, _ int, ctimeBefore int64) ([]domain.Order, int64, error) {
	return nil, 0, nil
}

func (f *fakeOrderRepo) FindHistory(_ context.Context, orderID int64) ([]domain.StatusHistory, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.history[orderID], nil
}

type capturingOrderProducer struct {
	mu     sync.Mutex
	events []event.OrderEvent
}

func (c *capturingOrderProducer) Produce(_ context.Context, evt event.OrderEvent) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.events = append(c.events, evt)
	return nil
}

type orderTestDeps struct {
	repo     *fakeOrderRepo
	cart     *cartmocks.MockService
	product  *productmocks.MockService
	delivery *deliverymocks.MockService
	producer *capturingOrderProducer
}

func newTestService(t *testing.T, repo *fakeOrderRepo) (Service, orderTestDeps) {
	ctrl := gomock.NewController(t)
	deps := orderTestDeps{
		repo:     repo,
		cart:     cartmocks.NewMockService(ctrl),
		product:  productmocks.NewMockService(ctrl),
		delivery: deliverymocks.NewMockService(ctrl),
		producer: &capturingOrderProducer{},
	}
	svc := NewService(repo, deps.cart, deps.product, deps.delivery,
		deps.producer, sequencenumber.NewGenerator())
	return svc, deps
}

func mixedCart() cart.Cart {
	return cart.Cart{
		ID:              11,
		UID:             1001,
		PaymentIntentSN: "PMT-intent-1",
		Items: []cart.CartItem{
			{
				ID:       1,
				CartID:   11,
				SPUID:    21,
				SKUID:    31,
				SKUSN:    "SKU-PHONE-BLK",
				Name:     "樱花手机壳",
				Price:    3000,
				Quantity: 2,
				Image:    "https://img.example.com/case.png",
				Kind:     cart.KindPhysical,
			},
			{
				ID:       2,
				CartID:   11,
				SPUID:    22,
				SKUID:    32,
				SKUSN:    "SKU-EBOOK-GO",
				Name:     "Go实战电子书",
				Price:    1000,
				Quantity: 1,
				Image:    "https://img.example.com/ebook.png",
				Kind:     cart.KindDigital,
			},
		},
	}
}

func TestService_CreateFromCart(t *testing.T) {
	t.Parallel()

	t.Run("混合订单_运费和快照", func(t *testing.T) {
		t.Parallel()
		repo := newFakeOrderRepo()
		svc, deps := newTestService(t, repo)
		c := mixedCart()
		deps.cart.EXPECT().Cart(gomock.Any(), int64(1001)).Return(c, nil)
		deps.cart.EXPECT().DeleteCartTx(gomock.Any(), int64(11)).Return(nil)
		deps.product.EXPECT().FindSPUByID(gomock.Any(), int64(21)).
			Return(product.SPU{ID: 21, Desc: "樱花图案硅胶壳"}, nil)
		deps.product.EXPECT().FindSPUByID(gomock.Any(), int64(22)).
			Return(product.SPU{ID: 22, Desc: "五百页实战指南", DigitalFileURL: "cos://files/go-book.pdf"}, nil)

		order, err := svc.CreateFromCart(context.Background(), CreateOrderReq{
			BuyerID:         1001,
			BuyerEmail:      "buyer@example.com",
			ShippingAddress: domain.Address{Name: "张三", Line1: "人民路1号", City: "上海", PostalCode: "200000", Country: "CN", Phone: "13800000000"},
		})
		require.NoError(t, err)
		assert.NotZero(t, order.ID)
		assert.NotEmpty(t, order.SN)
		assert.Equal(t, int64(7000), order.Subtotal)
		assert.Equal(t, int64(500), order.ShippingFee)
		assert.Equal(t, int64(7500), order.TotalAmount)
		assert.Equal(t, domain.StatusPending, order.Status)
		assert.Equal(t, domain.PaymentStatusPending, order.PaymentStatus)
		assert.True(t, order.ContainsDigital)
		assert.True(t, order.RequiresShipping)
		assert.Equal(t, "PMT-intent-1", order.PaymentIntentSN)
		require.Len(t, order.Items, 2)
		assert.Equal(t, "樱花图案硅胶壳", order.Items[0].Description)
		assert.Empty(t, order.Items[0].FileURL)
		assert.Equal(t, "cos://files/go-book.pdf", order.Items[1].FileURL)
		// 混合订单不自动送达
		assert.Empty(t, deps.producer.events)
	})

	t.Run("纯数字订单_自动送达", func(t *testing.T) {
		t.Parallel()
		repo := newFakeOrderRepo()
		svc, deps := newTestService(t, repo)
		c := cart.Cart{
			ID:  12,
			UID: 1002,
			Items: []cart.CartItem{
				{ID: 3, CartID: 12, SPUID: 22, SKUID: 32, SKUSN: "SKU-EBOOK-GO",
					Name: "Go实战电子书", Price: 1000, Quantity: 1, Kind: cart.KindDigital},
			},
		}
		deps.cart.EXPECT().Cart(gomock.Any(), int64(1002)).Return(c, nil)
		deps.cart.EXPECT().DeleteCartTx(gomock.Any(), int64(12)).Return(nil)
		deps.product.EXPECT().FindSPUByID(gomock.Any(), int64(22)).
			Return(product.SPU{ID: 22, DigitalFileURL: "cos://files/go-book.pdf"}, nil)
		var granted delivery.GrantRequest
		deps.delivery.EXPECT().GrantForOrder(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, req delivery.GrantRequest) error {
				granted = req
				return nil
			})
		deps.delivery.EXPECT().SendDownloadLinks(gomock.Any(), gomock.Any(), "digital@example.com").Return(nil)

		order, err := svc.CreateFromCart(context.Background(), CreateOrderReq{
			BuyerID:    1002,
			BuyerEmail: "digital@example.com",
		})
		require.NoError(t, err)
		assert.Equal(t, int64(0), order.ShippingFee)
		assert.Equal(t, int64(1000), order.TotalAmount)
		assert.Equal(t, domain.StatusDelivered, order.Status)
		// 送达不等于已支付
		assert.Equal(t, domain.PaymentStatusPending, order.PaymentStatus)
		require.Len(t, granted.Items, 1)
		assert.Equal(t, "cos://files/go-book.pdf", granted.Items[0].FileURL)
		assert.Equal(t, int64(1002), granted.BuyerID)

		history, err := svc.History(context.Background(), order.ID)
		require.NoError(t, err)
		require.Len(t, history, 1)
		assert.Equal(t, domain.StatusPending, history[0].From)
		assert.Equal(t, domain.StatusDelivered, history[0].To)
		assert.Equal(t, "system", history[0].Actor)
	})

	t.Run("满额免运费", func(t *testing.T) {
		t.Parallel()
		repo := newFakeOrderRepo()
		svc, deps := newTestService(t, repo)
		c := cart.Cart{
			ID:  13,
			UID: 1003,
			Items: []cart.CartItem{
				{ID: 4, CartID: 13, SPUID: 21, SKUID: 31, SKUSN: "SKU-PHONE-BLK",
					Name: "樱花手机壳", Price: 3000, Quantity: 4, Kind: cart.KindPhysical},
			},
		}
		deps.cart.EXPECT().Cart(gomock.Any(), int64(1003)).Return(c, nil)
		deps.cart.EXPECT().DeleteCartTx(gomock.Any(), int64(13)).Return(nil)
		deps.product.EXPECT().FindSPUByID(gomock.Any(), int64(21)).
			Return(product.SPU{ID: 21, Desc: "硅胶壳"}, nil)

		order, err := svc.CreateFromCart(context.Background(), CreateOrderReq{
			BuyerID:         1003,
			BuyerEmail:      "bulk@example.com",
			ShippingAddress: domain.Address{Name: "李四", Line1: "南京路2号", City: "上海", Country: "CN"},
		})
		require.NoError(t, err)
		assert.Equal(t, int64(12000), order.Subtotal)
		assert.Equal(t, int64(0), order.ShippingFee)
		assert.Equal(t, int64(12000), order.TotalAmount)
		assert.False(t, order.ContainsDigital)
	})

	t.Run("SN冲突重试", func(t *testing.T) {
		t.Parallel()
		repo := newFakeOrderRepo()
		repo.dupSNLeft = 2
		svc, deps := newTestService(t, repo)
		c := mixedCart()
		deps.cart.EXPECT().Cart(gomock.Any(), int64(1001)).Return(c, nil)
		deps.cart.EXPECT().DeleteCartTx(gomock.Any(), int64(11)).Return(nil)
		deps.product.EXPECT().FindSPUByID(gomock.Any(), int64(21)).
			Return(product.SPU{ID: 21}, nil)
		deps.product.EXPECT().FindSPUByID(gomock.Any(), int64(22)).
			Return(product.SPU{ID: 22, DigitalFileURL: "cos://files/go-book.pdf"}, nil)

		order, err := svc.CreateFromCart(context.Background(), CreateOrderReq{
			BuyerID:         1001,
			BuyerEmail:      "buyer@example.com",
			ShippingAddress: domain.Address{Name: "张三", Line1: "人民路1号", City: "上海", Country: "CN"},
		})
		require.NoError(t, err)
		assert.NotZero(t, order.ID)
		require.Len(t, repo.seenSNs, 3)
		// 每次重试都换了新SN
		assert.NotEqual(t, repo.seenSNs[0], repo.seenSNs[1])
		assert.NotEqual(t, repo.seenSNs[1], repo.seenSNs[2])
	})

	t.Run("缺少邮箱", func(t *testing.T) {
		t.Parallel()
		repo := newFakeOrderRepo()
		svc, _ := newTestService(t, repo)
		_, err := svc.CreateFromCart(context.Background(), CreateOrderReq{BuyerID: 1001})
		assert.ErrorIs(t, err, ErrBuyerEmailRequired)
	})

	t.Run("空购物车", func(t *testing.T) {
		t.Parallel()
		repo := newFakeOrderRepo()
		svc, deps := newTestService(t, repo)
		deps.cart.EXPECT().Cart(gomock.Any(), int64(1001)).Return(cart.Cart{ID: 11, UID: 1001}, nil)
		_, err := svc.CreateFromCart(context.Background(), CreateOrderReq{
			BuyerID:    1001,
			BuyerEmail: "buyer@example.com",
		})
		assert.ErrorIs(t, err, ErrEmptyCart)
	})
}

func TestService_Transition(t *testing.T) {
	t.Parallel()

	t.Run("合法迁移记录迁移前状态", func(t *testing.T) {
		t.Parallel()
		repo := newFakeOrderRepo(domain.Order{
			ID: 1, SN: "ORD-1", BuyerID: 1001, BuyerEmail: "buyer@example.com",
			Status: domain.StatusPaymentReceived,
		})
		svc, deps := newTestService(t, repo)
		err := svc.Transition(context.Background(), 1, domain.StatusProcessing, "admin", "开始备货")
		require.NoError(t, err)

		order, err := svc.FindBySN(context.Background(), "ORD-1")
		require.NoError(t, err)
		assert.Equal(t, domain.StatusProcessing, order.Status)

		history, err := svc.History(context.Background(), 1)
		require.NoError(t, err)
		require.Len(t, history, 1)
		assert.Equal(t, domain.StatusPaymentReceived, history[0].From)
		assert.Equal(t, domain.StatusProcessing, history[0].To)
		assert.Equal(t, "admin", history[0].Actor)
		assert.Equal(t, "开始备货", history[0].Note)

		require.Len(t, deps.producer.events, 1)
		assert.Equal(t, "ORD-1", deps.producer.events[0].OrderSN)
		assert.Equal(t, domain.StatusPaymentReceived.ToUint8(), deps.producer.events[0].FromStatus)
		assert.Equal(t, domain.StatusProcessing.ToUint8(), deps.producer.events[0].ToStatus)
	})

	t.Run("非法迁移被拒", func(t *testing.T) {
		t.Parallel()
		repo := newFakeOrderRepo(domain.Order{
			ID: 2, SN: "ORD-2", BuyerID: 1001, Status: domain.StatusProcessing,
		})
		svc, deps := newTestService(t, repo)
		err := svc.Transition(context.Background(), 2, domain.StatusDelivered, "admin", "")
		assert.ErrorIs(t, err, ErrInvalidStateTransition)
		assert.Empty(t, deps.producer.events)
		history, er := svc.History(context.Background(), 2)
		require.NoError(t, er)
		assert.Empty(t, history)
	})

	t.Run("发货送达触发数字交付", func(t *testing.T) {
		t.Parallel()
		repo := newFakeOrderRepo(domain.Order{
			ID: 3, SN: "ORD-3", BuyerID: 1001, BuyerEmail: "buyer@example.com",
			Status:           domain.StatusShipped,
			ContainsDigital:  true,
			RequiresShipping: true,
			Items: []domain.OrderItem{
				{ID: 301, SPUID: 21, Name: "樱花手机壳", Kind: domain.KindPhysical},
				{ID: 302, SPUID: 22, Name: "Go实战电子书", Kind: domain.KindDigital, FileURL: "cos://files/go-book.pdf"},
			},
		})
		svc, deps := newTestService(t, repo)
		var granted delivery.GrantRequest
		deps.delivery.EXPECT().GrantForOrder(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, req delivery.GrantRequest) error {
				granted = req
				return nil
			})
		deps.delivery.EXPECT().SendDownloadLinks(gomock.Any(), "ORD-3", "buyer@example.com").Return(nil)

		err := svc.Transition(context.Background(), 3, domain.StatusDelivered, "admin", "签收")
		require.NoError(t, err)
		// 只有数字商品进授权
		require.Len(t, granted.Items, 1)
		assert.Equal(t, int64(302), granted.Items[0].OrderItemID)
	})

	t.Run("订单不存在", func(t *testing.T) {
		t.Parallel()
		repo := newFakeOrderRepo()
		svc, _ := newTestService(t, repo)
		err := svc.Transition(context.Background(), 999, domain.StatusConfirmed, "admin", "")
		assert.ErrorIs(t, err, ErrOrderNotFound)
	})
}

func TestService_CancelOrder(t *testing.T) {
	t.Parallel()

	t.Run("待处理订单可取消", func(t *testing.T) {
		t.Parallel()
		repo := newFakeOrderRepo(domain.Order{
			ID: 1, SN: "ORD-1", BuyerID: 1001, Status: domain.StatusPending,
		})
		svc, _ := newTestService(t, repo)
		err := svc.CancelOrder(context.Background(), 1001, 1)
		require.NoError(t, err)
		order, err := svc.FindBySN(context.Background(), "ORD-1")
		require.NoError(t, err)
		assert.Equal(t, domain.StatusCancelled, order.Status)
	})

	t.Run("已发货不可取消", func(t *testing.T) {
		t.Parallel()
		repo := newFakeOrderRepo(domain.Order{
			ID: 2, SN: "ORD-2", BuyerID: 1001, Status: domain.StatusShipped,
		})
		svc, _ := newTestService(t, repo)
		err := svc.CancelOrder(context.Background(), 1001, 2)
		assert.ErrorIs(t, err, ErrInvalidStateTransition)
	})

	t.Run("不能取消别人的订单", func(t *testing.T) {
		t.Parallel()
		repo := newFakeOrderRepo(domain.Order{
			ID: 3, SN: "ORD-3", BuyerID: 1001, Status: domain.StatusPending,
		})
		svc, _ := newTestService(t, repo)
		err := svc.CancelOrder(context.Background(), 2002, 3)
		assert.ErrorIs(t, err, ErrOrderNotFound)
	})
}

func TestService_HandlePaymentResult(t *testing.T) {
	t.Parallel()

	t.Run("支付成功推进到已收款", func(t *testing.T) {
		t.Parallel()
		repo := newFakeOrderRepo(domain.Order{
			ID: 1, SN: "ORD-1", BuyerID: 1001, Status: domain.StatusPending,
			PaymentStatus: domain.PaymentStatusPending,
		})
		svc, _ := newTestService(t, repo)
		err := svc.HandlePaymentResult(context.Background(), "ORD-1", true)
		require.NoError(t, err)
		order, err := svc.FindBySN(context.Background(), "ORD-1")
		require.NoError(t, err)
		assert.Equal(t, domain.StatusPaymentReceived, order.Status)
		assert.Equal(t, domain.PaymentStatusSucceeded, order.PaymentStatus)
	})

	t.Run("数字订单已送达只更新支付状态", func(t *testing.T) {
		t.Parallel()
		repo := newFakeOrderRepo(domain.Order{
			ID: 2, SN: "ORD-2", BuyerID: 1001, Status: domain.StatusDelivered,
			PaymentStatus: domain.PaymentStatusPending,
		})
		svc, _ := newTestService(t, repo)
		err := svc.HandlePaymentResult(context.Background(), "ORD-2", true)
		require.NoError(t, err)
		order, err := svc.FindBySN(context.Background(), "ORD-2")
		require.NoError(t, err)
		assert.Equal(t, domain.StatusDelivered, order.Status)
		assert.Equal(t, domain.PaymentStatusSucceeded, order.PaymentStatus)
	})

	t.Run("支付失败", func(t *testing.T) {
		t.Parallel()
		repo := newFakeOrderRepo(domain.Order{
			ID: 3, SN: "ORD-3", BuyerID: 1001, Status: domain.StatusPending,
			PaymentStatus: domain.PaymentStatusPending,
		})
		svc, _ := newTestService(t, repo)
		err := svc.HandlePaymentResult(context.Background(), "ORD-3", false)
		require.NoError(t, err)
		order, err := svc.FindBySN(context.Background(), "ORD-3")
		require.NoError(t, err)
		assert.Equal(t, domain.StatusPending, order.Status)
		assert.Equal(t, domain.PaymentStatusFailed, order.PaymentStatus)
	})
}
