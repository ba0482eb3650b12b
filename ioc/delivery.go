package ioc

import (
	"github.com/camellia-mall/camellia/internal/delivery"
	"github.com/camellia-mall/camellia/internal/email"
	"github.com/camellia-mall/camellia/internal/pkg/snowflake"
	"github.com/camellia-mall/camellia/internal/product"
	"github.com/ego-component/egorm"
	"github.com/gotomicro/ego/core/econf"
)

func InitDeliveryModule(db *egorm.Component,
	productModule *product.Module,
	emailSvc email.Service,
	idgen snowflake.Generator) *delivery.Module {
	type Config struct {
		DownloadBaseURL string `yaml:"downloadBaseURL"`
	}
	var cfg Config
	err := econf.UnmarshalKey("delivery", &cfg)
	if err != nil {
		panic(err)
	}
	return delivery.InitModule(db, productModule, emailSvc, idgen, cfg.DownloadBaseURL)
}
