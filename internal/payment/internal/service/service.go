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
	"time"

	"github.com/camellia-mall/camellia/internal/payment/internal/domain"
	"github.com/camellia-mall/camellia/internal/payment/internal/event"
	"github.com/camellia-mall/camellia/internal/payment/internal/repository"
	"github.com/camellia-mall/camellia/internal/payment/internal/service/provider"
	"github.com/camellia-mall/camellia/internal/pkg/sequencenumber"
	"github.com/gotomicro/ego/core/elog"
	"github.com/pkg/errors"
)

var (
	ErrPaymentNotFound = errors.New("支付记录不存在")
	// ErrPaymentNotRefundable 非支付成功状态或已全额退款
	ErrPaymentNotRefundable = errors.New("支付记录不可退款")
	ErrRefundAmountExceeded = errors.New("退款金额超出可退余额")
	ErrInvalidAmount        = errors.New("金额非法")
)

//go:generate mockgen -source=./service.go -package=paymentmocks -destination=../../mocks/payment.mock.go -typed Service
type Service interface {
	// CreateOrUpdateIntent 把一笔意图调整到目标金额.
	// currentSN为空或远端意图不可用时创建新意图, 调用方负责把返回的SN存回购物车或订单
	CreateOrUpdateIntent(ctx context.Context, currentSN string, amount int64, description string) (domain.Intent, error)
	// CreatePayment 下单后为订单落一条未支付记录
	CreatePayment(ctx context.Context, pmt domain.Payment) (domain.Payment, error)
	FindBySN(ctx context.Context, sn string) (domain.Payment, error)
	FindByOrderSN(ctx context.Context, orderSN string) (domain.Payment, error)
	// HandlePaidCallback 回调与对账共用的终态落账入口
	HandlePaidCallback(ctx context.Context, intentSN string, status domain.PaymentStatus) error
	Refund(ctx context.Context, paymentSN string, amount int64) error
	// SyncProviderStatus 对账单条支付记录, 由定时任务驱动
	SyncProviderStatus(ctx context.Context, pmt domain.Payment) error
	FindProcessing(ctx context.Context, offset, limit int, ctimeBefore int64) ([]domain.Payment, int64, error)
	List(ctx context.Context, offset, limit int) ([]domain.Payment, int64, error)
}

type service struct {
	provider provider.Provider
	repo     repository.PaymentRepository
	producer event.PaymentEventProducer
	snGen    *sequencenumber.Generator
	logger   *elog.Component
}

func NewService(p provider.Provider,
	repo repository.PaymentRepository,
	producer event.PaymentEventProducer,
	snGen *sequencenumber.Generator) Service {
	return &service{
		provider: p,
		repo:     repo,
		producer: producer,
		snGen:    snGen,
		logger:   elog.DefaultLogger,
	}
}

func (s *service) CreateOrUpdateIntent(ctx context.Context, currentSN string, amount int64, description string) (domain.Intent, error) {
	if amount <= 0 {
		return domain.Intent{}, fmt.Errorf("%w: %d", ErrInvalidAmount, amount)
	}
	if currentSN == "" {
		return s.provider.CreateIntent(ctx, amount, description)
	}
	intent, err := s.provider.GetIntent(ctx, currentSN)
	if err != nil {
		// 查不到远端状态就按不可用处理, 直接换一笔新意图
		s.logger.Warn("查询支付意图失败, 创建新意图",
			elog.String("intentSn", currentSN), elog.FieldErr(err))
		return s.provider.CreateIntent(ctx, amount, description)
	}
	if !intent.Usable() {
		return s.provider.CreateIntent(ctx, amount, description)
	}
	if intent.Amount == amount {
		return intent, nil
	}
	updated, err := s.provider.UpdateIntent(ctx, currentSN, amount)
	if err != nil {
		s.logger.Warn("调整支付意图金额失败, 创建新意图",
			elog.String("intentSn", currentSN), elog.FieldErr(err))
		return s.provider.CreateIntent(ctx, amount, description)
	}
	return updated, nil
}

func (s *service) CreatePayment(ctx context.Context, pmt domain.Payment) (domain.Payment, error) {
	if pmt.TotalAmount <= 0 {
		return domain.Payment{}, fmt.Errorf("%w: %d", ErrInvalidAmount, pmt.TotalAmount)
	}
	sn, err := s.snGen.Generate(pmt.TotalAmount)
	if err != nil {
		return domain.Payment{}, fmt.Errorf("生成支付SN失败: %w", err)
	}
	pmt.SN = sn
	pmt.Status = domain.PaymentStatusUnpaid
	id, err := s.repo.Create(ctx, pmt)
	if err != nil {
		return domain.Payment{}, err
	}
	pmt.ID = id
	return pmt, nil
}

func (s *service) FindBySN(ctx context.Context, sn string) (domain.Payment, error) {
	pmt, err := s.repo.FindBySN(ctx, sn)
	if errors.Is(err, repository.ErrRecordNotFound) {
		return domain.Payment{}, fmt.Errorf("%w: sn: %s", ErrPaymentNotFound, sn)
	}
	return pmt, err
}

func (s *service) FindByOrderSN(ctx context.Context, orderSN string) (domain.Payment, error) {
	pmt, err := s.repo.FindByOrderSN(ctx, orderSN)
	if errors.Is(err, repository.ErrRecordNotFound) {
		return domain.Payment{}, fmt.Errorf("%w: orderSn: %s", ErrPaymentNotFound, orderSN)
	}
	return pmt, err
}

func (s *service) HandlePaidCallback(ctx context.Context, intentSN string, status domain.PaymentStatus) error {
	pmt, err := s.repo.FindByIntentSN(ctx, intentSN)
	if err != nil {
		if errors.Is(err, repository.ErrRecordNotFound) {
			return fmt.Errorf("%w: intentSn: %s", ErrPaymentNotFound, intentSN)
		}
		return err
	}
	var paidAt int64
	if status == domain.PaymentStatusPaidSuccess {
		paidAt = time.Now().UnixMilli()
	}
	err = s.repo.MarkPaid(ctx, intentSN, status, paidAt)
	if err != nil {
		if errors.Is(err, repository.ErrConcurrentUpdate) {
			// 重复回调, 之前已落过终态
			s.logger.Info("重复的支付回调", elog.String("intentSn", intentSN))
			return nil
		}
		return err
	}
	evt := event.PaymentEvent{
		OrderSN:   pmt.OrderSN,
		PaymentSN: pmt.SN,
		Status:    status.ToUint8(),
	}
	if er := s.producer.Produce(ctx, evt); er != nil {
		s.logger.Error("发送支付事件失败",
			elog.String("orderSn", pmt.OrderSN), elog.FieldErr(er))
	}
	return nil
}

func (s *service) Refund(ctx context.Context, paymentSN string, amount int64) error {
	pmt, err := s.FindBySN(ctx, paymentSN)
	if err != nil {
		return err
	}
	if !pmt.Refundable() {
		return fmt.Errorf("%w: sn: %s, status: %d", ErrPaymentNotRefundable, pmt.SN, pmt.Status)
	}
	if amount <= 0 || amount > pmt.RemainingRefundable() {
		return fmt.Errorf("%w: 申请 %d, 可退 %d", ErrRefundAmountExceeded, amount, pmt.RemainingRefundable())
	}
	refundSN, err := s.snGen.Generate(pmt.ID)
	if err != nil {
		return fmt.Errorf("生成退款SN失败: %w", err)
	}
	refundID, err := s.provider.Refund(ctx, pmt.IntentSN, refundSN, amount, pmt.TotalAmount)
	if err != nil {
		return fmt.Errorf("提供方退款失败: sn: %s: %w", pmt.SN, err)
	}
	s.logger.Info("退款受理成功",
		elog.String("paymentSn", pmt.SN),
		elog.String("refundSn", refundSN),
		elog.String("providerRefundId", refundID),
		elog.Int64("amount", amount))
	err = s.repo.AddRefund(ctx, pmt.SN, amount)
	if errors.Is(err, repository.ErrConcurrentUpdate) {
		// 并发退款越过了前置校验, 提供方已退款但台账拒绝入账, 需要人工对账
		s.logger.Error("退款台账入账被拒, 提供方已退款",
			elog.String("paymentSn", pmt.SN),
			elog.String("refundSn", refundSN),
			elog.String("providerRefundId", refundID),
			elog.Int64("amount", amount),
			elog.FieldErr(err))
		return fmt.Errorf("%w: 申请 %d, 可退余额不足", ErrRefundAmountExceeded, amount)
	}
	return err
}

func (s *service) SyncProviderStatus(ctx context.Context, pmt domain.Payment) error {
	intent, err := s.provider.GetIntent(ctx, pmt.IntentSN)
	if err != nil {
		return err
	}
	switch intent.Status {
	case domain.IntentStatusCaptured:
		return s.HandlePaidCallback(ctx, pmt.IntentSN, domain.PaymentStatusPaidSuccess)
	case domain.IntentStatusClosed:
		return s.HandlePaidCallback(ctx, pmt.IntentSN, domain.PaymentStatusTimeoutClosed)
	default:
		// 还在支付中, 留给下一轮对账
		return nil
	}
}

func (s *service) FindProcessing(ctx context.Context, offset, limit int, ctimeBefore int64) ([]domain.Payment, int64, error) {
	return s.repo.FindProcessing(ctx, offset, limit, ctimeBefore)
}

func (s *service) List(ctx context.Context, offset, limit int) ([]domain.Payment, int64, error) {
	return s.repo.List(ctx, offset, limit)
}
