package bfconfigs

import (
	"github.com/reusee/dscope"
	"github.com/xioustic/bf-naive/configs"
	"github.com/xioustic/bf-naive/logs"
)

type Module struct {
	dscope.Module
	Configs configs.Module
	Logs    logs.Module
}
