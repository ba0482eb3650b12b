package ioc

import (
	"github.com/camellia-mall/camellia/internal/email"
	"github.com/camellia-mall/camellia/internal/notification"
	"github.com/camellia-mall/camellia/internal/order"
	smsclient "github.com/camellia-mall/camellia/internal/sms/client"
	"github.com/ecodeclub/mq-api"
	"github.com/ego-component/egorm"
	"github.com/gotomicro/ego/core/econf"
)

func InitNotificationModule(db *egorm.Component, q mq.MQ,
	orderModule *order.Module,
	emailSvc email.Service,
	smsClient smsclient.Client) *notification.Module {
	type Config struct {
		Templates struct {
			Shipped string `yaml:"shipped"`
		} `yaml:"templates"`
	}
	var cfg Config
	err := econf.UnmarshalKey("sms", &cfg)
	if err != nil {
		panic(err)
	}
	return notification.InitModule(db, q, orderModule, emailSvc, smsClient, cfg.Templates.Shipped)
}
