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
	"strings"
	"time"

	"github.com/camellia-mall/camellia/internal/delivery/internal/domain"
	"github.com/camellia-mall/camellia/internal/delivery/internal/repository"
	"github.com/camellia-mall/camellia/internal/email"
	"github.com/camellia-mall/camellia/internal/pkg/snowflake"
	"github.com/camellia-mall/camellia/internal/product"
	"github.com/gotomicro/ego/core/elog"
	"github.com/lithammer/shortuuid/v4"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

var (
	ErrGrantNotFound = repository.ErrRecordNotFound
	ErrGrantUnusable = repository.ErrGrantUnusable
)

// BizDownloadGrant 雪花ID的业务域
const BizDownloadGrant uint = 1

//go:generate mockgen -source=./service.go -destination=../../mocks/delivery.mock.go -package=deliverymocks -typed Service
type Service interface {
	// GrantForOrder 为订单里的虚拟商品创建下载授权, 重复调用幂等
	GrantForOrder(ctx context.Context, req domain.GrantRequest) error
	// SendDownloadLinks 把订单的全部下载链接汇总成一封邮件
	SendDownloadLinks(ctx context.Context, orderSN, buyerEmail string) error
	// Consume 校验并消费一次下载机会, 返回文件地址
	Consume(ctx context.Context, token string, uid int64) (string, error)
	ListByBuyer(ctx context.Context, uid int64, offset, limit int) ([]domain.DownloadGrant, int64, error)
}

type service struct {
	repo            repository.GrantRepository
	productSvc      product.Service
	emailSvc        email.Service
	idgen           snowflake.Generator
	downloadBaseURL string
	logger          *elog.Component
}

func NewService(repo repository.GrantRepository,
	productSvc product.Service,
	emailSvc email.Service,
	idgen snowflake.Generator,
	downloadBaseURL string) Service {
	return &service{
		repo:            repo,
		productSvc:      productSvc,
		emailSvc:        emailSvc,
		idgen:           idgen,
		downloadBaseURL: downloadBaseURL,
		logger:          elog.DefaultLogger,
	}
}

func (s *service) GrantForOrder(ctx context.Context, req domain.GrantRequest) error {
	items := s.qualifyingItems(ctx, req.Items)
	if len(items) == 0 {
		return nil
	}
	now := time.Now()
	grants := make([]domain.DownloadGrant, 0, len(items))
	for _, it := range items {
		id, err := s.idgen.Generate(BizDownloadGrant)
		if err != nil {
			return errors.Wrap(err, "生成授权ID失败")
		}
		grants = append(grants, domain.DownloadGrant{
			ID:           int64(id),
			OrderSN:      req.OrderSN,
			OrderItemID:  it.OrderItemID,
			BuyerID:      req.BuyerID,
			ProductName:  it.ProductName,
			FileURL:      it.FileURL,
			Token:        shortuuid.New(),
			ExpiresAt:    now.Add(domain.GrantTTL).UnixMilli(),
			MaxDownloads: domain.MaxDownloads,
		})
	}
	return s.repo.BatchCreate(ctx, grants)
}

// qualifyingItems 带文件地址的虚拟商品才授权, 快照缺失时回查在售商品兜底
func (s *service) qualifyingItems(ctx context.Context, items []domain.GrantItem) []domain.GrantItem {
	res := make([]domain.GrantItem, 0, len(items))
	for _, it := range items {
		if it.FileURL == "" && it.SPUID > 0 {
			spu, err := s.productSvc.FindSPUByID(ctx, it.SPUID)
			if err != nil {
				s.logger.Warn("回查商品文件地址失败",
					elog.FieldErr(err),
					elog.Int64("spu_id", it.SPUID))
			} else {
				it.FileURL = spu.DigitalFileURL
			}
		}
		if it.FileURL == "" {
			continue
		}
		res = append(res, it)
	}
	return res
}

func (s *service) SendDownloadLinks(ctx context.Context, orderSN, buyerEmail string) error {
	if buyerEmail == "" {
		return nil
	}
	grants, err := s.repo.FindByOrderSN(ctx, orderSN)
	if err != nil {
		return err
	}
	if len(grants) == 0 {
		return nil
	}
	var sb strings.Builder
	sb.WriteString("您购买的虚拟商品已经可以下载:\n\n")
	for _, g := range grants {
		sb.WriteString(fmt.Sprintf("%s: %s/delivery/download?token=%s\n",
			g.ProductName, s.downloadBaseURL, g.Token))
	}
	sb.WriteString(fmt.Sprintf("\n每个链接最多可下载%d次, 有效期30天。", domain.MaxDownloads))
	return s.emailSvc.SendMail(ctx, email.Mail{
		To:      []string{buyerEmail},
		Subject: fmt.Sprintf("订单%s的下载链接", orderSN),
		Body:    sb.String(),
	})
}

func (s *service) Consume(ctx context.Context, token string, uid int64) (string, error) {
	grant, err := s.repo.FindByToken(ctx, token)
	if err != nil {
		return "", err
	}
	if grant.BuyerID != uid {
		return "", errors.Wrapf(ErrGrantNotFound, "token: %s, uid: %d", token, uid)
	}
	if err = s.repo.Consume(ctx, token); err != nil {
		return "", err
	}
	return grant.FileURL, nil
}

func (s *service) ListByBuyer(ctx context.Context, uid int64, offset, limit int) ([]domain.DownloadGrant, int64, error) {
	var (
		eg     errgroup.Group
		grants []domain.DownloadGrant
		total  int64
	)
	eg.Go(func() error {
		var err error
		grants, err = s.repo.FindByBuyer(ctx, uid, offset, limit)
		return err
	})
	eg.Go(func() error {
		var err error
		total, err = s.repo.CountByBuyer(ctx, uid)
		return err
	})
	if err := eg.Wait(); err != nil {
		return nil, 0, err
	}
	return grants, total, nil
}
