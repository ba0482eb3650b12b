//go:build wireinject

package ioc

import (
	"github.com/camellia-mall/camellia/internal/cart"
	"github.com/camellia-mall/camellia/internal/cos"
	"github.com/camellia-mall/camellia/internal/delivery"
	"github.com/camellia-mall/camellia/internal/notification"
	"github.com/camellia-mall/camellia/internal/order"
	"github.com/camellia-mall/camellia/internal/payment"
	"github.com/camellia-mall/camellia/internal/product"
	"github.com/camellia-mall/camellia/internal/user"
	"github.com/google/wire"
)

var BaseSet = wire.NewSet(InitDB, InitCache, InitRedis, InitMQ)

func InitApp() (*App, error) {
	wire.Build(wire.Struct(new(App), "*"),
		BaseSet,
		InitSession,
		initEmailService,
		initSMSClient,
		initIDGenerator,
		product.InitModule,
		cart.InitModule,
		payment.InitModule,
		InitDeliveryModule,
		order.InitModule,
		InitNotificationModule,
		InitUserModule,
		cos.InitModule,
		wire.FieldsOf(new(*product.Module), "Hdl", "AdminHdl"),
		wire.FieldsOf(new(*cart.Module), "Hdl"),
		wire.FieldsOf(new(*payment.Module), "Hdl", "WechatHdl", "AdminHdl", "SyncJob"),
		wire.FieldsOf(new(*delivery.Module), "Hdl"),
		wire.FieldsOf(new(*order.Module), "Hdl", "AdminHdl", "CloseExpiredJob"),
		wire.FieldsOf(new(*notification.Module), "Hdl", "WsHdl"),
		wire.FieldsOf(new(*user.Module), "Hdl"),
		wire.FieldsOf(new(*cos.Module), "Hdl"),
		initCronJobs,
		initMQConsumers,
		initGinxServer,
		InitAdminServer)
	return new(App), nil
}
