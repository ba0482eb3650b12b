package ioc

import (
	"github.com/camellia-mall/camellia/internal/sms/client"
	"github.com/gotomicro/ego/core/econf"
)

func initSMSClient() client.Client {
	type Config struct {
		Provider        string `yaml:"provider"`
		AccessKeyID     string `yaml:"accessKeyID"`
		AccessKeySecret string `yaml:"accessKeySecret"`
	}
	var cfg Config
	err := econf.UnmarshalKey("sms.aliyun", &cfg)
	if err != nil {
		panic(err)
	}
	// 本地开发不配置密钥, 短信走控制台日志
	if cfg.Provider == "console" {
		return client.NewConsoleClient()
	}
	aliClient, err := client.NewAliyunSMS(cfg.AccessKeyID, cfg.AccessKeySecret)
	if err != nil {
		panic(err)
	}
	return aliClient
}
