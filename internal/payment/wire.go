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

//go:build wireinject

package payment

import (
	"sync"

	"github.com/camellia-mall/camellia/internal/cart"
	"github.com/camellia-mall/camellia/internal/payment/internal/event"
	"github.com/camellia-mall/camellia/internal/payment/internal/job"
	"github.com/camellia-mall/camellia/internal/payment/internal/repository"
	"github.com/camellia-mall/camellia/internal/payment/internal/repository/dao"
	"github.com/camellia-mall/camellia/internal/payment/internal/service"
	"github.com/camellia-mall/camellia/internal/payment/internal/service/provider"
	"github.com/camellia-mall/camellia/internal/payment/internal/service/wechat"
	"github.com/camellia-mall/camellia/internal/payment/internal/web"
	"github.com/camellia-mall/camellia/internal/payment/ioc"
	"github.com/camellia-mall/camellia/internal/pkg/sequencenumber"
	"github.com/ecodeclub/mq-api"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
	"github.com/wechatpay-apiv3/wechatpay-go/core/notify"
	"github.com/wechatpay-apiv3/wechatpay-go/services/payments/native"
	"github.com/wechatpay-apiv3/wechatpay-go/services/refunddomestic"
)

var ModuleSet = wire.NewSet(
	InitTablesOnce,
	sequencenumber.NewGenerator,
	initProducer,
	repository.NewPaymentRepository,
	ioc.InitWechatConfig,
	ioc.InitWechatClient,
	ioc.InitNativeApiService,
	ioc.InitRefundService,
	ioc.InitNativeProvider,
	ioc.InitWechatNotifyHandler,
	initSyncJob,
	wire.Bind(new(provider.Provider), new(*wechat.NativeProvider)),
	wire.Bind(new(wechat.NativeAPIService), new(*native.NativeApiService)),
	wire.Bind(new(wechat.RefundAPIService), new(*refunddomestic.RefundsApiService)),
	wire.Bind(new(wechat.NotifyHandler), new(*notify.Handler)),
	service.NewService,
	web.NewHandler,
	web.NewWechatHandler,
	web.NewAdminHandler)

func InitModule(db *egorm.Component, q mq.MQ, cartModule *cart.Module) *Module {
	wire.Build(
		ModuleSet,
		wire.FieldsOf(new(*cart.Module), "Svc"),
		wire.Struct(new(Module), "*"))
	return new(Module)
}

var once = &sync.Once{}

func InitTablesOnce(db *egorm.Component) dao.PaymentDAO {
	once.Do(func() {
		_ = dao.InitTables(db)
	})
	return dao.NewPaymentGORMDAO(db)
}

func initSyncJob(svc service.Service) *job.SyncPaymentStatusJob {
	return job.NewSyncPaymentStatusJob(svc, 31, 100)
}

func initProducer(q mq.MQ) event.PaymentEventProducer {
	producer, err := event.NewPaymentEventProducer(q)
	if err != nil {
		panic(err)
	}
	return producer
}
