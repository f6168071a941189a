package debugs

import (
	"github.com/reusee/dscope"
	"github.com/xioustic/bf-naive/logs"
)

type Module struct {
	dscope.Module
	Logs logs.Module
}
