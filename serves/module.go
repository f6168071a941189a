package serves

import (
	"github.com/reusee/dscope"
	"github.com/xioustic/bf-naive/bfvm"
	"github.com/xioustic/bf-naive/logs"
)

type Module struct {
	dscope.Module
	VM   bfvm.Module
	Logs logs.Module
}
