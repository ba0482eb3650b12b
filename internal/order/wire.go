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

package order

import (
	"sync"

	"github.com/camellia-mall/camellia/internal/cart"
	"github.com/camellia-mall/camellia/internal/delivery"
	"github.com/camellia-mall/camellia/internal/order/internal/event"
	"github.com/camellia-mall/camellia/internal/order/internal/job"
	"github.com/camellia-mall/camellia/internal/order/internal/repository"
	"github.com/camellia-mall/camellia/internal/order/internal/repository/dao"
	"github.com/camellia-mall/camellia/internal/order/internal/service"
	"github.com/camellia-mall/camellia/internal/order/internal/web"
	"github.com/camellia-mall/camellia/internal/payment"
	"github.com/camellia-mall/camellia/internal/pkg/sequencenumber"
	"github.com/camellia-mall/camellia/internal/product"
	"github.com/ecodeclub/mq-api"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
)

var ModuleSet = wire.NewSet(
	InitTablesOnce,
	sequencenumber.NewGenerator,
	repository.NewOrderRepository,
	initProducer,
	service.NewService,
	initPaymentConsumer,
	initCloseExpiredJob,
	web.NewHandler,
	web.NewAdminHandler)

func InitModule(db *egorm.Component, q mq.MQ,
	cartModule *cart.Module,
	productModule *product.Module,
	deliveryModule *delivery.Module,
	paymentModule *payment.Module) *Module {
	wire.Build(
		ModuleSet,
		wire.FieldsOf(new(*cart.Module), "Svc"),
		wire.FieldsOf(new(*product.Module), "Svc"),
		wire.FieldsOf(new(*delivery.Module), "Svc"),
		wire.FieldsOf(new(*payment.Module), "Svc"),
		wire.Struct(new(Module), "*"))
	return new(Module)
}

var once = &sync.Once{}

func InitTablesOnce(db *egorm.Component) dao.OrderDAO {
	once.Do(func() {
		_ = dao.InitTables(db)
	})
	return dao.NewOrderGORMDAO(db)
}

func initProducer(q mq.MQ) event.OrderEventProducer {
	producer, err := event.NewOrderEventProducer(q)
	if err != nil {
		panic(err)
	}
	return producer
}

func initPaymentConsumer(svc service.Service, q mq.MQ) *event.PaymentEventConsumer {
	consumer, err := event.NewPaymentEventConsumer(svc, q)
	if err != nil {
		panic(err)
	}
	return consumer
}

func initCloseExpiredJob(svc service.Service) *job.CloseExpiredOrdersJob {
	return job.NewCloseExpiredOrdersJob(svc, 30, 100)
}
