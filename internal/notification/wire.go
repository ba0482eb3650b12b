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

package notification

import (
	"sync"

	"github.com/camellia-mall/camellia/internal/email"
	"github.com/camellia-mall/camellia/internal/notification/internal/event"
	"github.com/camellia-mall/camellia/internal/notification/internal/repository"
	"github.com/camellia-mall/camellia/internal/notification/internal/repository/dao"
	"github.com/camellia-mall/camellia/internal/notification/internal/service"
	"github.com/camellia-mall/camellia/internal/notification/internal/web"
	"github.com/camellia-mall/camellia/internal/order"
	smsclient "github.com/camellia-mall/camellia/internal/sms/client"
	"github.com/ecodeclub/mq-api"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
)

var ModuleSet = wire.NewSet(
	InitTablesOnce,
	repository.NewNoticeRepository,
	web.NewHub,
	wire.Bind(new(service.Pusher), new(*web.Hub)),
	service.NewService,
	initOrderConsumer,
	web.NewHandler,
	web.NewWSHandler)

func InitModule(db *egorm.Component, q mq.MQ,
	orderModule *order.Module,
	emailSvc email.Service,
	smsClient smsclient.Client,
	smsTemplateID string) *Module {
	wire.Build(
		ModuleSet,
		wire.FieldsOf(new(*order.Module), "Svc"),
		wire.Struct(new(Module), "*"))
	return new(Module)
}

var once = &sync.Once{}

func InitTablesOnce(db *egorm.Component) dao.NoticeDAO {
	once.Do(func() {
		_ = dao.InitTables(db)
	})
	return dao.NewNoticeGORMDAO(db)
}

func initOrderConsumer(svc service.Service,
	orderSvc order.Service,
	emailSvc email.Service,
	smsClient smsclient.Client,
	smsTemplateID string,
	q mq.MQ) *event.OrderEventConsumer {
	consumer, err := event.NewOrderEventConsumer(svc, orderSvc, emailSvc, smsClient, smsTemplateID, q)
	if err != nil {
		panic(err)
	}
	return consumer
}
