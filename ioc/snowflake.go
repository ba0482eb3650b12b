package ioc

import (
	"github.com/camellia-mall/camellia/internal/pkg/snowflake"
	"github.com/gotomicro/ego/core/econf"
)

func initIDGenerator() snowflake.Generator {
	type Config struct {
		NodeID uint `yaml:"nodeID"`
		Bizs   uint `yaml:"bizs"`
	}
	var cfg Config
	err := econf.UnmarshalKey("snowflake", &cfg)
	if err != nil {
		panic(err)
	}
	gen, err := snowflake.NewMallSnowFlake(cfg.NodeID, cfg.Bizs)
	if err != nil {
		panic(err)
	}
	return gen
}
