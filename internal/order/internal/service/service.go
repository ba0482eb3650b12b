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
	"fmt"

	"github.com/camellia-mall/camellia/internal/cart"
	"github.com/camellia-mall/camellia/internal/delivery"
	"github.com/camellia-mall/camellia/internal/order/internal/domain"
	"github.com/camellia-mall/camellia/internal/order/internal/event"
	"github.com/camellia-mall/camellia/internal/order/internal/repository"
	"github.com/camellia-mall/camellia/internal/pkg/pricing"
	"github.com/camellia-mall/camellia/internal/pkg/sequencenumber"
	"github.com/camellia-mall/camellia/internal/product"
	"github.com/ecodeclub/ekit/slice"
	"github.com/gotomicro/ego/core/elog"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

var (
	ErrOrderNotFound = errors.New("订单不存在")
	ErrEmptyCart     = errors.New("购物车为空")
	// ErrBuyerEmailRequired 邮箱用于数字商品交付, 不允许占位符
	ErrBuyerEmailRequired     = errors.New("购买者邮箱不能为空")
	ErrInvalidStateTransition = errors.New("订单状态迁移非法")
)

// 创建订单SN撞唯一索引的重试次数
const maxSNRetries = 3

type CreateOrderReq struct {
	BuyerID         int64
	BuyerEmail      string
	ShippingAddress domain.Address
	BillingAddress  *domain.Address
}

//go:generate mockgen -source=./service.go -package=ordermocks -destination=../../mocks/order.mock.go -typed Service
type Service interface {
	// CreateFromCart 以购物车整车下单, 成功后购物车即被删除
	CreateFromCart(ctx context.Context, req CreateOrderReq) (domain.Order, error)
	// Transition 订单状态唯一的写入口, 迁移合法性和副作用都在这里
	Transition(ctx context.Context, orderID int64, target domain.Status, actor, note string) error
	CancelOrder(ctx context.Context, buyerID, orderID int64) error
	FindBySN(ctx context.Context, sn string) (domain.Order, error)
	FindBuyerOrder(ctx context.Context, sn string, buyerID int64) (domain.Order, error)
	ListByBuyer(ctx context.Context, offset, limit int, buyerID int64) ([]domain.Order, int64, error)
	List(ctx context.Context, offset, limit int) ([]domain.Order, int64, error)
	History(ctx context.Context, orderID int64) ([]domain.StatusHistory, error)
	UpdateTracking(ctx context.Context, orderID int64, tracking string) error
	// HandlePaymentResult 支付事件落到订单上, paid=false表示支付失败或超时关闭
	HandlePaymentResult(ctx context.Context, orderSN string, paid bool) error
	FindExpiredPending(ctx context.Context, offset, limit int, ctimeBefore int64) ([]domain.Order, int64, error)
}

type service struct {
	repo        repository.OrderRepository
	cartSvc     cart.Service
	productSvc  product.Service
	deliverySvc delivery.Service
	producer    event.OrderEventProducer
	snGen       *sequencenumber.Generator
	logger      *elog.Component
}

func NewService(repo repository.OrderRepository,
	cartSvc cart.Service,
	productSvc product.Service,
	deliverySvc delivery.Service,
	producer event.OrderEventProducer,
	snGen *sequencenumber.Generator) Service {
	return &service{
		repo:        repo,
		cartSvc:     cartSvc,
		productSvc:  productSvc,
		deliverySvc: deliverySvc,
		producer:    producer,
		snGen:       snGen,
		logger:      elog.DefaultLogger,
	}
}

func (s *service) CreateFromCart(ctx context.Context, req CreateOrderReq) (domain.Order, error) {
	if req.BuyerEmail == "" {
		return domain.Order{}, fmt.Errorf("%w: buyerId: %d", ErrBuyerEmailRequired, req.BuyerID)
	}
	c, err := s.cartSvc.Cart(ctx, req.BuyerID)
	if err != nil {
		return domain.Order{}, err
	}
	if len(c.Items) == 0 {
		return domain.Order{}, fmt.Errorf("%w: uid: %d", ErrEmptyCart, req.BuyerID)
	}
	items, err := s.snapshotItems(ctx, c.Items)
	if err != nil {
		return domain.Order{}, err
	}
	order := s.assembleOrder(req, c, items)
	order.ID, err = s.createWithRetry(ctx, order, c.ID)
	if err != nil {
		return domain.Order{}, err
	}
	// 纯数字商品订单创建即送达, 支付状态仍是待支付
	if order.ContainsDigital && !order.RequiresShipping {
		if er := s.Transition(ctx, order.ID, domain.StatusDelivered, "system", "纯数字商品订单自动送达"); er != nil {
			s.logger.Error("数字商品订单自动送达失败",
				elog.Int64("orderId", order.ID), elog.FieldErr(er))
		} else {
			order.Status = domain.StatusDelivered
		}
	}
	return order, nil
}

// snapshotItems 把购物车条目固化成订单快照, 描述和文件地址从在售商品上取
func (s *service) snapshotItems(ctx context.Context, cartItems []cart.CartItem) ([]domain.OrderItem, error) {
	spus := make(map[int64]product.SPU, len(cartItems))
	res := make([]domain.OrderItem, 0, len(cartItems))
	for _, it := range cartItems {
		spu, ok := spus[it.SPUID]
		if !ok {
			var err error
			spu, err = s.productSvc.FindSPUByID(ctx, it.SPUID)
			if err != nil {
				return nil, fmt.Errorf("加载商品失败: spuId: %d: %w", it.SPUID, err)
			}
			spus[it.SPUID] = spu
		}
		item := domain.OrderItem{
			SPUID:       it.SPUID,
			SKUID:       it.SKUID,
			SKUSN:       it.SKUSN,
			Name:        it.Name,
			Description: spu.Desc,
			Image:       it.Image,
			Price:       it.Price,
			Quantity:    it.Quantity,
			Kind:        domain.Kind(it.Kind),
		}
		if item.Kind == domain.KindDigital {
			item.FileURL = spu.DigitalFileURL
		}
		res = append(res, item)
	}
	return res, nil
}

func (s *service) assembleOrder(req CreateOrderReq, c cart.Cart, items []domain.OrderItem) domain.Order {
	var subtotal int64
	var hasDigital, hasPhysical bool
	for _, it := range items {
		subtotal += it.Price * it.Quantity
		switch it.Kind {
		case domain.KindDigital:
			hasDigital = true
		case domain.KindPhysical:
			hasPhysical = true
		}
	}
	shippingFee := pricing.ShippingFee(subtotal, hasPhysical)
	return domain.Order{
		BuyerID:          req.BuyerID,
		BuyerEmail:       req.BuyerEmail,
		Items:            items,
		ShippingAddress:  req.ShippingAddress,
		BillingAddress:   req.BillingAddress,
		Subtotal:         subtotal,
		ShippingFee:      shippingFee,
		TaxAmount:        0,
		TotalAmount:      subtotal + shippingFee,
		Status:           domain.StatusPending,
		PaymentStatus:    domain.PaymentStatusPending,
		ContainsDigital:  hasDigital,
		RequiresShipping: hasPhysical,
		PaymentIntentSN:  c.PaymentIntentSN,
	}
}

func (s *service) createWithRetry(ctx context.Context, order domain.Order, cartID int64) (int64, error) {
	for i := 0; i < maxSNRetries; i++ {
		sn, err := s.snGen.Generate(order.BuyerID)
		if err != nil {
			return 0, fmt.Errorf("生成订单SN失败: %w", err)
		}
		order.SN = sn
		id, err := s.repo.CreateOrder(ctx, order, func(tx *gorm.DB) error {
			return s.cartSvc.DeleteCartTx(tx, cartID)
		})
		if errors.Is(err, repository.ErrDuplicateSN) {
			continue
		}
		return id, err
	}
	return 0, fmt.Errorf("订单SN连续冲突: buyerId: %d", order.BuyerID)
}

func (s *service) Transition(ctx context.Context, orderID int64, target domain.Status, actor, note string) error {
	order, err := s.repo.FindByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, repository.ErrRecordNotFound) {
			return fmt.Errorf("%w: id: %d", ErrOrderNotFound, orderID)
		}
		return err
	}
	// 迁移前先把当前状态抓出来, 流水里记录的就是它
	from := order.Status
	if !domain.CanTransition(from, target) {
		return fmt.Errorf("%w: %d -> %d", ErrInvalidStateTransition, from, target)
	}
	err = s.repo.UpdateStatus(ctx, orderID, from, target, domain.StatusHistory{
		From:  from,
		To:    target,
		Actor: actor,
		Note:  note,
	})
	if err != nil {
		return err
	}
	if target == domain.StatusDelivered {
		s.deliverDigital(ctx, order)
	}
	evt := event.OrderEvent{
		OrderSN:    order.SN,
		BuyerID:    order.BuyerID,
		BuyerEmail: order.BuyerEmail,
		FromStatus: from.ToUint8(),
		ToStatus:   target.ToUint8(),
	}
	if er := s.producer.Produce(ctx, evt); er != nil {
		s.logger.Error("发送订单事件失败",
			elog.String("orderSn", order.SN), elog.FieldErr(er))
	}
	return nil
}

// deliverDigital 送达时给数字商品发授权和下载链接, 失败不回滚状态
func (s *service) deliverDigital(ctx context.Context, order domain.Order) {
	if !order.ContainsDigital || order.BuyerID <= 0 {
		return
	}
	req := delivery.GrantRequest{
		OrderSN:    order.SN,
		BuyerID:    order.BuyerID,
		BuyerEmail: order.BuyerEmail,
		Items: slice.FilterMap(order.Items, func(_ int, src domain.OrderItem) (delivery.GrantItem, bool) {
			if src.Kind != domain.KindDigital {
				return delivery.GrantItem{}, false
			}
			return delivery.GrantItem{
				OrderItemID: src.ID,
				SPUID:       src.SPUID,
				ProductName: src.Name,
				FileURL:     src.FileURL,
			}, true
		}),
	}
	if err := s.deliverySvc.GrantForOrder(ctx, req); err != nil {
		s.logger.Error("创建下载授权失败",
			elog.String("orderSn", order.SN), elog.FieldErr(err))
		return
	}
	if err := s.deliverySvc.SendDownloadLinks(ctx, order.SN, order.BuyerEmail); err != nil {
		s.logger.Error("发送下载链接失败",
			elog.String("orderSn", order.SN), elog.FieldErr(err))
	}
}

func (s *service) CancelOrder(ctx context.Context, buyerID, orderID int64) error {
	order, err := s.repo.FindByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, repository.ErrRecordNotFound) {
			return fmt.Errorf("%w: id: %d", ErrOrderNotFound, orderID)
		}
		return err
	}
	// 买家只能取消自己的订单, 不暴露他人订单的存在
	if buyerID > 0 && order.BuyerID != buyerID {
		return fmt.Errorf("%w: id: %d", ErrOrderNotFound, orderID)
	}
	return s.Transition(ctx, orderID, domain.StatusCancelled, "buyer", "买家取消订单")
}

func (s *service) FindBySN(ctx context.Context, sn string) (domain.Order, error) {
	order, err := s.repo.FindBySN(ctx, sn)
	if errors.Is(err, repository.ErrRecordNotFound) {
		return domain.Order{}, fmt.Errorf("%w: sn: %s", ErrOrderNotFound, sn)
	}
	return order, err
}

func (s *service) FindBuyerOrder(ctx context.Context, sn string, buyerID int64) (domain.Order, error) {
	order, err := s.FindBySN(ctx, sn)
	if err != nil {
		return domain.Order{}, err
	}
	if order.BuyerID != buyerID {
		return domain.Order{}, fmt.Errorf("%w: sn: %s", ErrOrderNotFound, sn)
	}
	return order, nil
}

func (s *service) ListByBuyer(ctx context.Context, offset, limit int, buyerID int64) ([]domain.Order, int64, error) {
	return s.repo.ListByBuyer(ctx, offset, limit, buyerID)
}

func (s *service) List(ctx context.Context, offset, limit int) ([]domain.Order, int64, error) {
	return s.repo.List(ctx, offset, limit)
}

func (s *service) History(ctx context.Context, orderID int64) ([]domain.StatusHistory, error) {
	return s.repo.FindHistory(ctx, orderID)
}

func (s *service) UpdateTracking(ctx context.Context, orderID int64, tracking string) error {
	return s.repo.UpdateTracking(ctx, orderID, tracking)
}

func (s *service) HandlePaymentResult(ctx context.Context, orderSN string, paid bool) error {
	order, err := s.FindBySN(ctx, orderSN)
	if err != nil {
		return err
	}
	if !paid {
		return s.repo.UpdatePaymentStatus(ctx, order.ID, domain.PaymentStatusFailed)
	}
	if err = s.repo.UpdatePaymentStatus(ctx, order.ID, domain.PaymentStatusSucceeded); err != nil {
		return err
	}
	err = s.Transition(ctx, order.ID, domain.StatusPaymentReceived, "payment", "支付成功")
	if errors.Is(err, ErrInvalidStateTransition) {
		// 纯数字商品订单此时已经送达, 只更新支付状态
		s.logger.Info("订单已越过收款状态",
			elog.String("orderSn", orderSN), elog.Int64("orderId", order.ID))
		return nil
	}
	return err
}

func (s *service) FindExpiredPending(ctx context.Context, offset, limit int, ctimeBefore int64) ([]domain.Order, int64, error) {
	return s.repo.FindExpiredPending(ctx, offset, limit, ctimeBefore)
}
