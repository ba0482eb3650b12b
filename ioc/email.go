package ioc

import (
	"github.com/camellia-mall/camellia/internal/email"
	"github.com/camellia-mall/camellia/internal/email/aliyun"
	"github.com/gotomicro/ego/core/econf"
)

func initEmailService() email.Service {
	type Config struct {
		AccessKeyID     string `yaml:"accessKeyID"`
		AccessKeySecret string `yaml:"accessKeySecret"`
		AccountName     string `yaml:"accountName"`
	}
	var cfg Config
	err := econf.UnmarshalKey("email.directmail", &cfg)
	if err != nil {
		panic(err)
	}
	svc, err := aliyun.NewDirectMailAPI(cfg.AccessKeyID, cfg.AccessKeySecret, cfg.AccountName)
	if err != nil {
		panic(err)
	}
	return svc
}
